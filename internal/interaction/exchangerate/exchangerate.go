package exchangerate

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
)

const DefaultURL = "https://api.exchangerate.host/latest"

// maxBodySize bounds how much of a response is read; a latest-rate payload is a few hundred bytes.
const maxBodySize = 1 << 20

type Interaction struct {
	logger *slog.Logger
	client *http.Client
	url    string
	base   string
	symbol string
}

// NewInteraction creates a new instance of Interaction with an exchangerate.host compatible API.
func NewInteraction(logger *slog.Logger, client *http.Client, endpoint string, base string, symbol string) *Interaction {
	if endpoint == "" {
		endpoint = DefaultURL
	}

	return &Interaction{
		logger: logger.With("component", "exchangerate"),
		client: client,
		url:    endpoint,
		base:   base,
		symbol: symbol,
	}
}

// GetRate returns the current price of one unit of the base asset in the symbol currency.
func (that *Interaction) GetRate(ctx context.Context) (*Rate, error) {
	log := that.logger.With("method", "GetRate", "base", that.base, "symbol", that.symbol)

	target, err := url.Parse(that.url)
	if err != nil {
		return nil, fmt.Errorf("parse url: %w", err)
	}

	query := target.Query()
	query.Set("base", that.base)
	query.Set("symbols", that.symbol)
	target.RawQuery = query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Cache-Control", "no-cache")
	req.Header.Set("Accept", "application/json")

	resp, err := that.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: do request: %w", ErrTransport, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, fmt.Errorf("%w: HTTP %d", ErrTransport, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, fmt.Errorf("%w: read response body: %w", ErrTransport, err)
	}

	rate, err := ParseRate(body, that.base, that.symbol)
	if err != nil {
		if errors.Is(err, ErrSchema) {
			log.Debug("unexpected payload", "body", string(body))
		}
		return nil, err
	}

	log.Debug("rate received", "value", rate.Value, "date", rate.Date)
	return rate, nil
}
