package telegram

import (
	"context"
	"fmt"

	"github.com/androidmobilestore/mnw-wallet/config"
	"github.com/androidmobilestore/mnw-wallet/internal/core/domain"

	"github.com/go-telegram/bot"
	"github.com/rs/zerolog"
)

// Notifier implements ports.AdminNotifier over a Telegram bot. Capability
// links are delivered to the operator chat; the link itself is the
// credential, so the chat must be private.
type Notifier struct {
	bot    *bot.Bot
	chatID string
	log    zerolog.Logger
}

// NewNotifier creates a Telegram notifier for the configured operator chat.
func NewNotifier(cfg config.TelegramConfig, log zerolog.Logger) (*Notifier, error) {
	b, err := bot.New(cfg.BotToken)
	if err != nil {
		return nil, fmt.Errorf("creating telegram bot: %w", err)
	}
	return &Notifier{
		bot:    b,
		chatID: cfg.AdminChatID,
		log:    log,
	}, nil
}

// NotifyExchange announces a pending exchange requiring on-chain settlement.
// The destination address tells the operator where to send without opening
// the panel.
func (n *Notifier) NotifyExchange(ctx context.Context, exchange *domain.Exchange, link string) error {
	text := fmt.Sprintf(
		"Exchange %s\n%s %s -> %s %s (rate %s)",
		exchange.ID,
		exchange.FromAmount, exchange.FromCurrency,
		exchange.ToAmount, exchange.ToCurrency,
		exchange.Rate,
	)
	if exchange.DestinationAddress != nil {
		text += fmt.Sprintf("\nTo: %s", *exchange.DestinationAddress)
	}
	text += fmt.Sprintf("\nSettle: %s", link)
	return n.send(ctx, text)
}

// NotifyWithdrawal announces a new cash-out request.
func (n *Notifier) NotifyWithdrawal(ctx context.Context, withdrawal *domain.Withdrawal, link string) error {
	text := fmt.Sprintf(
		"Withdrawal %s\n%s %s, city %s, code %s\nResolve: %s",
		withdrawal.ID,
		withdrawal.Amount, withdrawal.Currency,
		withdrawal.City, withdrawal.Token, link,
	)
	return n.send(ctx, text)
}

func (n *Notifier) send(ctx context.Context, text string) error {
	_, err := n.bot.SendMessage(ctx, &bot.SendMessageParams{
		ChatID: n.chatID,
		Text:   text,
	})
	if err != nil {
		return fmt.Errorf("sending telegram message: %w", err)
	}
	n.log.Debug().Msg("operator notification sent")
	return nil
}
