package usecases

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"sync"
	"time"

	"goldkarat/internal/interaction/exchangerate"
	"goldkarat/internal/model"
	"goldkarat/internal/scheduler"
)

// MinRefreshInterval is the shortest period auto refresh may run at.
const MinRefreshInterval = 5 * time.Second

var (
	// ErrRefreshAborted is recorded when a refresh ends without an outcome from the rate source.
	ErrRefreshAborted = errors.New("refresh aborted")
	// ErrInvalidInterval is returned for a period that is not a finite number of seconds.
	ErrInvalidInterval = errors.New("invalid refresh interval")
)

type RateInteraction interface {
	GetRate(ctx context.Context) (*exchangerate.Rate, error)
}

type Ticker interface {
	Every(interval time.Duration, fn scheduler.JobFunc) error
	Stop()
}

// RefreshObserver is notified after every settled refresh.
type RefreshObserver interface {
	ObserveRefresh(snapshot model.Snapshot, err error, elapsed time.Duration)
}

type SpotPriceOption func(*SpotPriceEngine)

// WithClock overrides the source of LastUpdated timestamps.
func WithClock(now func() time.Time) SpotPriceOption {
	return func(e *SpotPriceEngine) {
		e.now = now
	}
}

func WithObserver(observer RefreshObserver) SpotPriceOption {
	return func(e *SpotPriceEngine) {
		e.observers = append(e.observers, observer)
	}
}

// SpotPriceEngine keeps the per-gram gold prices fresh. It is the only writer of its snapshot.
type SpotPriceEngine struct {
	logger      *slog.Logger
	interaction RateInteraction
	ticker      Ticker
	observers   []RefreshObserver
	now         func() time.Time

	mu         sync.RWMutex
	state      model.Snapshot
	inFlight   int
	lastSeq    uint64
	appliedSeq uint64

	// timerMu is separate from mu: stopping the ticker may wait for a refresh that needs mu.
	timerMu  sync.Mutex
	interval time.Duration
}

func NewSpotPriceEngine(logger *slog.Logger, interaction RateInteraction, ticker Ticker, opts ...SpotPriceOption) *SpotPriceEngine {
	engine := &SpotPriceEngine{
		logger:      logger.With("component", "spot_price"),
		interaction: interaction,
		ticker:      ticker,
		now:         time.Now,
	}

	for _, opt := range opts {
		opt(engine)
	}

	return engine
}

// ClampInterval returns the interval auto refresh actually runs at.
func ClampInterval(interval time.Duration) time.Duration {
	if interval < MinRefreshInterval {
		return MinRefreshInterval
	}
	return interval
}

// IntervalFromSeconds converts a period given in seconds, saturating at the longest Duration.
func IntervalFromSeconds(seconds float64) (time.Duration, error) {
	if math.IsNaN(seconds) || math.IsInf(seconds, 0) {
		return 0, fmt.Errorf("%w: %v", ErrInvalidInterval, seconds)
	}

	nanos := seconds * float64(time.Second)
	switch {
	case nanos >= math.MaxInt64:
		return time.Duration(math.MaxInt64), nil
	case nanos <= math.MinInt64:
		return time.Duration(math.MinInt64), nil
	}

	return time.Duration(nanos), nil
}

// State returns a copy of the current snapshot.
func (that *SpotPriceEngine) State() model.Snapshot {
	that.mu.RLock()
	defer that.mu.RUnlock()

	return that.state.Clone()
}

// Refresh fetches the current rate and recomputes the karat prices.
// Failures are recorded in the snapshot and the previous prices are kept.
// Overlapping calls are allowed; an outcome older than the last applied one is discarded,
// and so is a failure caused by ctx being cancelled.
func (that *SpotPriceEngine) Refresh(ctx context.Context) (snapshot model.Snapshot) {
	log := that.logger.With("method", "Refresh")

	if ctx.Err() != nil {
		log.Debug("skipping refresh", "error", ctx.Err())
		return that.State()
	}

	seq := that.begin()
	started := time.Now()

	var prices *model.KaratPrices
	err := ErrRefreshAborted

	defer func() {
		cancelled := ctx.Err() != nil && errors.Is(err, context.Canceled)

		var applied bool
		snapshot, applied = that.finish(seq, prices, err, cancelled)

		switch {
		case cancelled:
			log.Debug("discarding cancelled refresh", "seq", seq, "error", err)
			return
		case !applied:
			log.Debug("discarding outdated refresh", "seq", seq, "error", err)
		case err != nil:
			log.Warn("failed to refresh gold price", "error", err, "kind", exchangerate.Kind(err))
		default:
			log.Info("gold price refreshed", "currency", prices.Currency, "per_gram_pure", prices.PerGramPure)
		}

		for _, observer := range that.observers {
			observer.ObserveRefresh(snapshot, err, time.Since(started))
		}
	}()

	rate, err := that.interaction.GetRate(ctx)
	if err != nil {
		return
	}
	if rate == nil {
		err = fmt.Errorf("%w: no rate returned", exchangerate.ErrSchema)
		return
	}

	prices, err = model.NewKaratPrices(rate.Symbol, rate.Value, rate.Date)
	if err != nil {
		err = fmt.Errorf("%w: %w", exchangerate.ErrValue, err)
	}

	return
}

// StartAutoRefresh refreshes every interval, clamped to MinRefreshInterval, replacing any running schedule.
func (that *SpotPriceEngine) StartAutoRefresh(interval time.Duration) (time.Duration, error) {
	effective := ClampInterval(interval)

	that.timerMu.Lock()
	defer that.timerMu.Unlock()

	err := that.ticker.Every(effective, func(ctx context.Context) {
		that.Refresh(ctx)
	})
	if err != nil {
		that.interval = 0
		return 0, fmt.Errorf("schedule refresh: %w", err)
	}

	that.interval = effective
	that.logger.Info("auto refresh scheduled", "requested", interval, "interval", effective)

	return effective, nil
}

// StopAutoRefresh cancels the schedule. It is safe to call when auto refresh is not running.
func (that *SpotPriceEngine) StopAutoRefresh() {
	that.timerMu.Lock()
	defer that.timerMu.Unlock()

	that.ticker.Stop()

	if that.interval != 0 {
		that.logger.Info("auto refresh stopped")
	}
	that.interval = 0
}

// Interval returns the effective auto refresh period, or 0 when it is stopped.
func (that *SpotPriceEngine) Interval() time.Duration {
	that.timerMu.Lock()
	defer that.timerMu.Unlock()

	return that.interval
}

func (that *SpotPriceEngine) begin() uint64 {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.inFlight++
	that.lastSeq++
	that.state.IsLoading = true
	that.state.LastError = nil

	return that.lastSeq
}

func (that *SpotPriceEngine) finish(seq uint64, prices *model.KaratPrices, err error, cancelled bool) (model.Snapshot, bool) {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.inFlight--
	that.state.IsLoading = that.inFlight > 0

	if cancelled || seq < that.appliedSeq {
		return that.state.Clone(), false
	}
	that.appliedSeq = seq

	if err != nil {
		that.state.LastError = err
		return that.state.Clone(), true
	}

	that.state.Prices = prices
	that.state.LastUpdated = that.now()
	that.state.LastError = nil

	return that.state.Clone(), true
}
