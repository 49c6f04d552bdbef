package telegram

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	telegramBot "github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/nicksnyder/go-i18n/v2/i18n"

	"goldkarat/internal/config"
	"goldkarat/internal/model"
)

var ErrWrongNumberOfArguments = fmt.Errorf("wrong number of arguments")

type SpotPriceEngine interface {
	State() model.Snapshot
	Refresh(ctx context.Context) model.Snapshot
	StartAutoRefresh(interval time.Duration) (time.Duration, error)
}

type Interaction struct {
	logger *slog.Logger
	TgBot  *telegramBot.Bot
	bundle *i18n.Bundle
	engine SpotPriceEngine
	loc    *time.Location
}

// NewInteraction creates the bot. pollTimeout bounds each long-poll request to the Bot API.
func NewInteraction(logger *slog.Logger, token string, client telegramBot.HttpClient, pollTimeout time.Duration, bundle *i18n.Bundle, engine SpotPriceEngine, loc *time.Location) (*Interaction, error) {
	cnt := &Interaction{
		logger: logger.With("component", "telegram"),
		bundle: bundle,
		engine: engine,
		loc:    loc,
	}

	opts := []telegramBot.Option{
		telegramBot.WithHTTPClient(pollTimeout, client),
		telegramBot.WithSkipGetMe(),
		telegramBot.WithDefaultHandler(cnt.handler),
	}

	b, err := telegramBot.New(token, opts...)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}

	b.RegisterHandler(telegramBot.HandlerTypeMessageText, "/start", telegramBot.MatchTypeExact, cnt.handlerStart)
	b.RegisterHandler(telegramBot.HandlerTypeMessageText, "/help", telegramBot.MatchTypeExact, cnt.handlerHelp)
	b.RegisterHandler(telegramBot.HandlerTypeMessageText, "/price", telegramBot.MatchTypeExact, cnt.handlerPrice)
	b.RegisterHandler(telegramBot.HandlerTypeMessageText, "/refresh", telegramBot.MatchTypeExact, cnt.handlerRefresh)
	b.RegisterHandler(telegramBot.HandlerTypeMessageText, "/interval", telegramBot.MatchTypePrefix, cnt.handlerInterval)

	cnt.TgBot = b
	return cnt, nil
}

// Start polls Telegram for updates until ctx is done.
func (that *Interaction) Start(ctx context.Context) {
	that.TgBot.Start(ctx)
}

func (that *Interaction) handler(_ context.Context, _ *telegramBot.Bot, update *models.Update) {
	if update.Message == nil || update.Message.From == nil {
		return
	}

	that.logger.Debug("ignoring message", "method", "handler", "user_id", update.Message.From.ID, "text", update.Message.Text)
}

// getLanguageCode returns the language of the user who sent the update.
func getLanguageCode(update *models.Update) string {
	if update.Message == nil || update.Message.From == nil || update.Message.From.LanguageCode == "" {
		return config.DefaultLanguageCode
	}

	return update.Message.From.LanguageCode // "en", "ar", etc.
}

// renderLocaledMessage renders a localized message.
func (that *Interaction) renderLocaledMessage(languageCode string, messageID string, args ...string) (string, error) {
	if len(args)%2 != 0 {
		return "", ErrWrongNumberOfArguments
	}

	templateData := make(map[string]string, len(args)/2)
	for i := 0; i < len(args); i += 2 {
		templateData[args[i]] = args[i+1]
	}

	localizer := i18n.NewLocalizer(that.bundle, languageCode, config.DefaultLanguageCode)

	text, err := localizer.Localize(&i18n.LocalizeConfig{MessageID: messageID, TemplateData: templateData})
	if err != nil {
		return "", fmt.Errorf("localize message: %w", err)
	}

	return text, nil
}

// sendLocaledMessage sends a localized message to the user.
func (that *Interaction) sendLocaledMessage(ctx context.Context, bot *telegramBot.Bot, update *models.Update, messageID string, args ...string) (*models.Message, error) {
	text, err := that.renderLocaledMessage(getLanguageCode(update), messageID, args...)
	if err != nil {
		return nil, fmt.Errorf("render localed message: %w", err)
	}

	msg, err := bot.SendMessage(ctx, &telegramBot.SendMessageParams{ChatID: update.Message.Chat.ID, Text: text})
	if err != nil {
		return nil, fmt.Errorf("send message to telegram user: %w", err)
	}

	return msg, nil
}
