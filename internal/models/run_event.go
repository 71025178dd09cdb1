package models

import "time"

type RunEvent struct {
	Datetime time.Time `json:"datetime"`
	Action   string    `json:"action"`
	Outcome  string    `json:"outcome"`
	Message  string    `json:"message,omitempty"`
}
