// Package flash carries one transient, user-dismissible notification
// across a redirect. It is the portal's fire-and-forget display
// primitive: a new message simply overwrites the previous one.
package flash

import (
	"encoding/base64"
	"encoding/json"
	"net/http"
)

const cookieName = "flash"

// Kind classifies how the notification is rendered.
type Kind string

const (
	Success Kind = "success"
	Error   Kind = "error"
)

// Message is a single notification.
type Message struct {
	Kind Kind   `json:"kind"`
	Text string `json:"text"`
}

// Set stores the message for the next page render.
func Set(w http.ResponseWriter, kind Kind, text string) {
	raw, err := json.Marshal(Message{Kind: kind, Text: text})
	if err != nil {
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     cookieName,
		Value:    base64.URLEncoding.EncodeToString(raw),
		Path:     "/",
		MaxAge:   60,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// Pop returns the pending message, if any, and clears it.
func Pop(w http.ResponseWriter, r *http.Request) *Message {
	cookie, err := r.Cookie(cookieName)
	if err != nil || cookie.Value == "" {
		return nil
	}

	http.SetCookie(w, &http.Cookie{
		Name:     cookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	raw, err := base64.URLEncoding.DecodeString(cookie.Value)
	if err != nil {
		return nil
	}
	var msg Message
	if err := json.Unmarshal(raw, &msg); err != nil {
		return nil
	}
	return &msg
}
