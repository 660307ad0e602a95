package bots

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
)

const telegramAPIBaseURL = "https://api.telegram.org"

// TelegramHandler handles incoming Telegram webhook updates and delivers
// replies through the Bot API.
type TelegramHandler struct {
	gateway *Gateway
	token   string
	apiBase string
	client  *http.Client
}

// NewTelegramHandler creates a new Telegram webhook handler.
func NewTelegramHandler(gateway *Gateway, token string) *TelegramHandler {
	return &TelegramHandler{
		gateway: gateway,
		token:   token,
		apiBase: telegramAPIBaseURL,
		client:  &http.Client{},
	}
}

type telegramUpdate struct {
	UpdateID int64            `json:"update_id"`
	Message  *telegramMessage `json:"message"`
}

type telegramMessage struct {
	MessageID int64         `json:"message_id"`
	From      *telegramUser `json:"from"`
	Chat      telegramChat  `json:"chat"`
	Text      string        `json:"text"`
}

type telegramUser struct {
	ID        int64  `json:"id"`
	IsBot     bool   `json:"is_bot"`
	Username  string `json:"username"`
	FirstName string `json:"first_name"`
}

type telegramChat struct {
	ID int64 `json:"id"`
}

type telegramSendMessage struct {
	ChatID      int64                  `json:"chat_id"`
	Text        string                 `json:"text"`
	ReplyMarkup *telegramReplyKeyboard `json:"reply_markup,omitempty"`
}

type telegramReplyKeyboard struct {
	Keyboard       [][]telegramKeyButton `json:"keyboard"`
	ResizeKeyboard bool                  `json:"resize_keyboard"`
}

type telegramKeyButton struct {
	Text string `json:"text"`
}

// HandleUpdate handles an incoming Telegram webhook update (HTTP POST).
// Telegram retries on non-2xx responses, so malformed or skippable updates
// are acknowledged rather than rejected.
func (h *TelegramHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, "failed to read body", http.StatusBadRequest)
		return
	}
	defer r.Body.Close()

	var update telegramUpdate
	if err := json.Unmarshal(body, &update); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}

	if update.Message == nil || update.Message.Text == "" {
		w.WriteHeader(http.StatusOK)
		return
	}
	// Skip bot messages to avoid loops.
	if update.Message.From != nil && update.Message.From.IsBot {
		w.WriteHeader(http.StatusOK)
		return
	}

	msg := IncomingMessage{
		Platform: PlatformTelegram,
		ChatID:   update.Message.Chat.ID,
		Text:     update.Message.Text,
	}
	if from := update.Message.From; from != nil {
		msg.UserID = strconv.FormatInt(from.ID, 10)
		msg.Username = from.Username
		if msg.Username == "" {
			msg.Username = from.FirstName
		}
	}

	resp, err := h.gateway.Process(r.Context(), msg)
	if err != nil {
		http.Error(w, "processing error", http.StatusInternalServerError)
		return
	}

	if err := h.send(resp); err != nil {
		http.Error(w, "delivery error", http.StatusBadGateway)
		return
	}
	w.WriteHeader(http.StatusOK)
}

// send delivers an outgoing message through the Bot API sendMessage method.
func (h *TelegramHandler) send(msg *OutgoingMessage) error {
	payload := telegramSendMessage{
		ChatID: msg.ChatID,
		Text:   msg.Text,
	}
	if msg.Menu {
		payload.ReplyMarkup = &telegramReplyKeyboard{
			Keyboard: [][]telegramKeyButton{
				{{Text: "What are the account fees?"}, {Text: "How do I open an account?"}},
				{{Text: "How do transfers work?"}, {Text: "What are the branch hours?"}},
			},
			ResizeKeyboard: true,
		}
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal sendMessage: %w", err)
	}

	url := fmt.Sprintf("%s/bot%s/sendMessage", h.apiBase, h.token)
	resp, err := h.client.Post(url, "application/json", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("telegram sendMessage failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("telegram returned status %d: %s", resp.StatusCode, string(respBody))
	}
	return nil
}
