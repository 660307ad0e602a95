package bots

import "github.com/go-chi/chi/v5"

// RegisterRoutes mounts the bot webhook endpoints on the given router.
func RegisterRoutes(r chi.Router, telegramHandler *TelegramHandler) {
	r.Post("/api/bots/telegram/webhook", telegramHandler.HandleUpdate)
}
