package services

import (
	"fmt"
	"log"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"leadflow/internal/models"
)

// TelegramNotifier шлёт сообщение в настроенный чат при конвертации лида.
type TelegramNotifier struct {
	bot    *tgbotapi.BotAPI
	chatID int64
}

func NewTelegramNotifier(botToken string, chatID int64) (*TelegramNotifier, error) {
	bot, err := tgbotapi.NewBotAPI(botToken)
	if err != nil {
		return nil, fmt.Errorf("telegram bot init: %w", err)
	}
	return &TelegramNotifier{bot: bot, chatID: chatID}, nil
}

func (n *TelegramNotifier) NotifyConversion(lead *models.Lead, deal *models.Deal) {
	if n == nil || n.bot == nil || n.chatID == 0 {
		return
	}
	text := fmt.Sprintf("Lead %q converted to deal #%d (%s, amount %.2f)",
		lead.Name, deal.ID, deal.Stage, deal.Amount)
	msg := tgbotapi.NewMessage(n.chatID, text)
	if _, err := n.bot.Send(msg); err != nil {
		log.Printf("[tg][notify] send failed: %v", err)
	}
}
