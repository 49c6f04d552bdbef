package telegram

import (
	"context"
	"strconv"
	"strings"
	"time"

	telegramBot "github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"goldkarat/internal/usecases"
)

func (that *Interaction) handlerStart(ctx context.Context, bot *telegramBot.Bot, update *models.Update) {
	log := that.logger.With("method", "handlerStart", "user_id", update.Message.From.ID, "language", update.Message.From.LanguageCode)

	if _, err := that.sendLocaledMessage(ctx, bot, update, "startWelcomeMessage"); err != nil {
		log.Error("failed to send message", "error", err)
		return
	}
}

func (that *Interaction) handlerHelp(ctx context.Context, bot *telegramBot.Bot, update *models.Update) {
	log := that.logger.With("method", "handlerHelp", "user_id", update.Message.From.ID)

	_, err := that.sendLocaledMessage(ctx, bot, update, "helpMessage")
	if err != nil {
		log.Error("error sending message", "error", err)
		return
	}
}

func (that *Interaction) handlerPrice(ctx context.Context, bot *telegramBot.Bot, update *models.Update) {
	log := that.logger.With("method", "handlerPrice", "user_id", update.Message.From.ID)

	text := that.PricesToString(getLanguageCode(update), that.engine.State())
	if err := that.sendHTML(ctx, bot, update, text); err != nil {
		log.Error("error sending message", "error", err)
		return
	}
}

func (that *Interaction) handlerRefresh(ctx context.Context, bot *telegramBot.Bot, update *models.Update) {
	log := that.logger.With("method", "handlerRefresh", "user_id", update.Message.From.ID)

	if that.engine.State().IsLoading {
		if _, err := that.sendLocaledMessage(ctx, bot, update, "refreshInProgressMessage"); err != nil {
			log.Error("failed to send message", "error", err)
		}
		return
	}

	snapshot := that.engine.Refresh(ctx)

	text := that.PricesToString(getLanguageCode(update), snapshot)
	if err := that.sendHTML(ctx, bot, update, text); err != nil {
		log.Error("error sending message", "error", err)
		return
	}
}

func (that *Interaction) handlerInterval(ctx context.Context, bot *telegramBot.Bot, update *models.Update) {
	log := that.logger.With("method", "handlerInterval", "user_id", update.Message.From.ID)

	args := strings.Fields(update.Message.Text)
	if len(args) != 2 || args[0] != "/interval" {
		if _, err := that.sendLocaledMessage(ctx, bot, update, "intervalUsageMessage"); err != nil {
			log.Error("failed to send message", "error", err)
		}
		return
	}

	var interval time.Duration
	seconds, err := strconv.ParseFloat(args[1], 64)
	if err == nil {
		interval, err = usecases.IntervalFromSeconds(seconds)
	}
	if err != nil {
		if _, err = that.sendLocaledMessage(ctx, bot, update, "intervalUsageMessage"); err != nil {
			log.Error("failed to send message", "error", err)
		}
		return
	}

	effective, err := that.engine.StartAutoRefresh(interval)
	if err != nil {
		log.Error("failed to reschedule refresh", "error", err)
		if _, err = that.sendLocaledMessage(ctx, bot, update, "intervalErrorMessage"); err != nil {
			log.Error("failed to send message", "error", err)
		}
		return
	}

	if _, err = that.sendLocaledMessage(ctx, bot, update, "intervalSetMessage", "Seconds", strconv.FormatFloat(effective.Seconds(), 'f', -1, 64)); err != nil {
		log.Error("failed to send message", "error", err)
		return
	}
}

func (that *Interaction) sendHTML(ctx context.Context, bot *telegramBot.Bot, update *models.Update, text string) error {
	_, err := bot.SendMessage(ctx, &telegramBot.SendMessageParams{ChatID: update.Message.Chat.ID, Text: text, ParseMode: models.ParseModeHTML})
	return err
}
