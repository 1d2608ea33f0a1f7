package model

import "time"

// ChatCredential is a short-lived token for the external chat provider,
// scoped to a single user. It is handed straight to the caller and never
// persisted here; the provider owns its lifecycle.
type ChatCredential struct {
	UserID    UserID    `json:"userId"`
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
}
