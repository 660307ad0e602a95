package bots

// Platform identifies the messaging surface a question arrived from.
type Platform string

const (
	PlatformTelegram Platform = "telegram"
	PlatformWeb      Platform = "web"
)

// IncomingMessage represents a message received from any platform.
type IncomingMessage struct {
	Platform Platform
	ChatID   int64
	UserID   string
	Username string
	Text     string
}

// OutgoingMessage represents a response to send back.
type OutgoingMessage struct {
	ChatID int64
	Text   string
	// Menu requests a reply keyboard with common question shortcuts.
	Menu bool
}
