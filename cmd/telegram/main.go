package main

import (
	"context"
	"fmt"
	"medreminder/internal/config"
	"medreminder/internal/core/domain/notification"
	"medreminder/internal/implementations/deliverer"
	"os"
	"time"
)

// Sends a test reminder to the configured Telegram chat.
func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	if !cfg.TelegramEnabled() {
		fmt.Fprintln(os.Stderr, "error: TELEGRAM_BOT_TOKEN is not set")
		os.Exit(1)
	}

	telegram := deliverer.NewTelegram(
		cfg.TelegramBaseURL,
		cfg.TelegramBotToken,
		cfg.TelegramChatID,
		cfg.TelegramRequestTimeout,
	)
	err = telegram.Deliver(context.Background(), notification.Notification{
		Handle: "test",
		Title:  notification.ReminderTitle,
		Body:   notification.ReminderBody("teste"),
		FireAt: time.Now(),
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "could not send test reminder to chat %d: %v\n", cfg.TelegramChatID, err)
		os.Exit(1)
	}

	fmt.Printf("Test reminder sent to chat %d\n", cfg.TelegramChatID)
}
