package bots

import (
	"context"
	"strings"

	"github.com/finuxhq/docqa/internal/composer"
)

const welcomeText = "Hello! I answer questions about FINUX products and services. Ask me anything, or pick a topic below."

// Answerer produces the final answer text for a question. It never fails;
// unanswerable questions get a fixed message.
type Answerer interface {
	Answer(ctx context.Context, q composer.Question) string
}

// Processor connects incoming bot messages to the answer composer.
type Processor struct {
	answerer Answerer
}

// NewProcessor creates a new message processor.
func NewProcessor(answerer Answerer) *Processor {
	return &Processor{answerer: answerer}
}

// HandleMessage processes an incoming message and returns a response.
// "/start" and "/help" get the welcome message with the topic menu;
// everything else is treated as a question.
func (p *Processor) HandleMessage(ctx context.Context, msg IncomingMessage) (*OutgoingMessage, error) {
	text := strings.TrimSpace(msg.Text)
	if text == "" {
		return &OutgoingMessage{
			ChatID: msg.ChatID,
			Text:   "I received an empty message. Please ask a question.",
		}, nil
	}

	switch strings.ToLower(text) {
	case "/start", "/help":
		return &OutgoingMessage{
			ChatID: msg.ChatID,
			Text:   welcomeText,
			Menu:   true,
		}, nil
	}

	answer := p.answerer.Answer(ctx, composer.Question{
		Platform: string(msg.Platform),
		UserID:   msg.UserID,
		Username: msg.Username,
		Text:     text,
	})

	return &OutgoingMessage{
		ChatID: msg.ChatID,
		Text:   answer,
	}, nil
}
