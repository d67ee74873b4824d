package model

import "time"

// SessionID identifies a hosted game session
type SessionID string

// SessionInfo describes a hosted session without its round state
type SessionInfo struct {
	ID         SessionID `json:"id"`
	CreatedAt  time.Time `json:"created_at"`
	LastActive time.Time `json:"last_active"`
}
