package models

import "time"

// Session is the explicit replacement for the browser-storage login marker:
// issued by the gateway, carried in the X-Session-ID header, stored with TTL.
type Session struct {
	ID         string    `json:"id"`
	LoggedIn   bool      `json:"logged_in"`
	Email      string    `json:"email,omitempty"`
	TelegramID int64     `json:"telegram_id,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}
