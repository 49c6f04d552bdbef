package telegram_test

import (
	"context"
	"math"
	"net/http"
	"testing"
	"time"

	"github.com/go-telegram/bot/models"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"goldkarat/internal/interaction/exchangerate"
	"goldkarat/internal/interaction/telegram"
	"goldkarat/internal/model"
	"goldkarat/internal/usecases"
	"goldkarat/locales"
	botMock "goldkarat/mocks/bot"
	usecasesMock "goldkarat/mocks/usecases"
	"goldkarat/testing/suite"
)

const pricesEn = "<b>Gold prices per gram (BHD)</b>\n<pre>\nKarat    Price\n24K      BHD 1.997\n22K      BHD 1.830\n21K      BHD 1.747\n18K      BHD 1.497\n</pre>\nLast updated: 2024-10-01 10:00:00"

func newUpdate(userID int64, languageCode string, text string) *models.Update {
	return &models.Update{Message: &models.Message{
		From: &models.User{ID: userID, LanguageCode: languageCode},
		Chat: models.Chat{ID: userID},
		Text: text,
	}}
}

type testEnv struct {
	st          *suite.Suite
	engine      *usecases.SpotPriceEngine
	rates       *usecasesMock.MockRateInteraction
	ticker      *suite.ManualTicker
	interaction *telegram.Interaction
	httpClient  *botMock.MockHttpClient
}

func newTestEnv(t *testing.T) (context.Context, *testEnv) {
	ctx, st := suite.New(t)

	bundle, err := locales.GetBundle(st.BaseDir)
	require.NoError(t, err)

	rates := usecasesMock.NewMockRateInteraction(t)
	ticker := suite.NewManualTicker()
	engine := usecases.NewSpotPriceEngine(st.Logger, rates, ticker, usecases.WithClock(st.Clock()))

	httpClient := botMock.NewMockHttpClient(t)
	interaction, err := telegram.NewInteraction(st.Logger, "token", httpClient, time.Minute, bundle, engine, st.Loc)
	require.NoError(t, err)

	return ctx, &testEnv{st: st, engine: engine, rates: rates, ticker: ticker, interaction: interaction, httpClient: httpClient}
}

// expectText makes the mocked Bot API expect one sendMessage call with the given text.
func (e *testEnv) expectText(t *testing.T, chatID string, check func(text string)) {
	e.httpClient.EXPECT().Do(mock.Anything).RunAndReturn(func(request *http.Request) (*http.Response, error) {
		formData := suite.ParseRequestBody(t, request)

		require.Equal(t, chatID, formData["chat_id"])
		check(formData["text"])
		return suite.TelegramOK(), nil
	}).Once()
}

func (e *testEnv) process(ctx context.Context, update *models.Update) {
	e.interaction.TgBot.ProcessUpdate(ctx, update)

	// Wait for the handler to be executed
	time.Sleep(time.Millisecond * 100)
}

func Test_HandlerPrice(t *testing.T) {
	t.Run("should tell the user prices are not available yet", func(t *testing.T) {
		ctx, env := newTestEnv(t)

		env.expectText(t, "1", func(text string) {
			require.Equal(t, "Prices are not available yet, please try again in a moment.", text)
		})

		env.process(ctx, newUpdate(1, "en", "/price"))
	})

	t.Run("should return karat prices - en", func(t *testing.T) {
		ctx, env := newTestEnv(t)

		// Given: a successful refresh
		env.rates.EXPECT().GetRate(mock.Anything).Return(&exchangerate.Rate{Base: "XAU", Symbol: "BHD", Value: 62.1}, nil).Once()
		env.engine.Refresh(ctx)

		env.expectText(t, "1", func(text string) {
			require.Equal(t, pricesEn, text)
		})

		env.process(ctx, newUpdate(1, "en", "/price"))
	})

	t.Run("should return karat prices - ar", func(t *testing.T) {
		ctx, env := newTestEnv(t)

		env.rates.EXPECT().GetRate(mock.Anything).Return(&exchangerate.Rate{Base: "XAU", Symbol: "BHD", Value: 62.1, Date: time.Date(2024, 10, 1, 0, 0, 0, 0, time.UTC)}, nil).Once()
		env.engine.Refresh(ctx)

		env.expectText(t, "1", func(text string) {
			require.Contains(t, text, "<b>أسعار الذهب للغرام (BHD)</b>")
			require.Contains(t, text, "24K      BHD 1.997\n")
			require.Contains(t, text, "آخر تحديث: 2024-10-01 10:00:00")
			require.Contains(t, text, "تاريخ التسعير: 2024-10-01")
		})

		env.process(ctx, newUpdate(1, "ar", "/price"))
	})

	t.Run("should show stale prices with the last error", func(t *testing.T) {
		ctx, env := newTestEnv(t)

		env.rates.EXPECT().GetRate(mock.Anything).Return(&exchangerate.Rate{Base: "XAU", Symbol: "BHD", Value: 62.1}, nil).Once()
		env.rates.EXPECT().GetRate(mock.Anything).Return(nil, exchangerate.ErrTransport).Once()
		env.engine.Refresh(ctx)
		env.engine.Refresh(ctx)

		env.expectText(t, "1", func(text string) {
			require.Equal(t, pricesEn+"\nError: rate source unavailable", text)
		})

		env.process(ctx, newUpdate(1, "en", "/price"))
	})
}

func Test_HandlerRefresh(t *testing.T) {
	t.Run("should refresh and return the new prices", func(t *testing.T) {
		ctx, env := newTestEnv(t)

		env.rates.EXPECT().GetRate(mock.Anything).Return(&exchangerate.Rate{Base: "XAU", Symbol: "BHD", Value: 62.1}, nil).Once()

		env.expectText(t, "7", func(text string) {
			require.Equal(t, pricesEn, text)
		})

		env.process(ctx, newUpdate(7, "en", "/refresh"))

		require.True(t, env.engine.State().HasPrices())
	})

	t.Run("should report a failed first refresh", func(t *testing.T) {
		ctx, env := newTestEnv(t)

		env.rates.EXPECT().GetRate(mock.Anything).Return(nil, exchangerate.ErrSchema).Once()

		env.expectText(t, "7", func(text string) {
			require.Equal(t, "Prices are not available yet, please try again in a moment.\nError: unexpected rate source response", text)
		})

		env.process(ctx, newUpdate(7, "en", "/refresh"))
	})

	t.Run("should not start another refresh while one is in flight", func(t *testing.T) {
		ctx, env := newTestEnv(t)

		entered := make(chan struct{})
		release := make(chan struct{})
		env.rates.EXPECT().GetRate(mock.Anything).RunAndReturn(func(context.Context) (*exchangerate.Rate, error) {
			close(entered)
			<-release
			return &exchangerate.Rate{Base: "XAU", Symbol: "BHD", Value: 62.1}, nil
		}).Once()

		done := make(chan model.Snapshot)
		go func() { done <- env.engine.Refresh(ctx) }()
		<-entered

		env.expectText(t, "7", func(text string) {
			require.Equal(t, "Updating… prices are already being refreshed.", text)
		})

		env.process(ctx, newUpdate(7, "en", "/refresh"))

		close(release)
		<-done
	})
}

func Test_HandlerInterval(t *testing.T) {
	t.Run("should reschedule auto refresh", func(t *testing.T) {
		ctx, env := newTestEnv(t)

		env.expectText(t, "3", func(text string) {
			require.Equal(t, "Done. Prices will be refreshed every 30 seconds.", text)
		})

		env.process(ctx, newUpdate(3, "en", "/interval 30"))

		require.Equal(t, 30*time.Second, env.engine.Interval())
		require.Equal(t, 30*time.Second, env.ticker.Interval())
	})

	t.Run("should clamp short intervals", func(t *testing.T) {
		ctx, env := newTestEnv(t)

		env.expectText(t, "3", func(text string) {
			require.Equal(t, "Done. Prices will be refreshed every 5 seconds.", text)
		})

		env.process(ctx, newUpdate(3, "en", "/interval 0.5"))

		require.Equal(t, 5*time.Second, env.ticker.Interval())
	})

	t.Run("should saturate very long intervals", func(t *testing.T) {
		ctx, env := newTestEnv(t)

		env.expectText(t, "3", func(text string) {
			require.Contains(t, text, "Done. Prices will be refreshed every 9223372036.")
		})

		env.process(ctx, newUpdate(3, "en", "/interval 1e11"))

		require.Equal(t, time.Duration(math.MaxInt64), env.ticker.Interval())
	})

	t.Run("should explain the usage", func(t *testing.T) {
		for _, text := range []string{"/interval", "/interval abc", "/interval 10 20", "/intervals 10", "/interval NaN", "/interval Inf", "/interval -Inf", "/interval 1e400"} {
			ctx, env := newTestEnv(t)

			env.expectText(t, "3", func(text string) {
				require.Equal(t, "Usage: /interval <seconds>, for example /interval 60. The minimum is 5 seconds.", text)
			})

			env.process(ctx, newUpdate(3, "en", text))

			require.Zero(t, env.engine.Interval())
		}
	})
}

func Test_HandlerStartHelp(t *testing.T) {
	ctx, env := newTestEnv(t)

	env.expectText(t, "5", func(text string) {
		require.Contains(t, text, "Send /price to see the latest prices")
	})
	env.process(ctx, newUpdate(5, "", "/start"))

	env.expectText(t, "5", func(text string) {
		require.Contains(t, text, "/interval <seconds>")
	})
	env.process(ctx, newUpdate(5, "en", "/help"))
}
