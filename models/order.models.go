package models

import "time"

// Confirmation is returned when a session submits its order
type Confirmation struct {
	SessionID   string      `json:"session_id"`
	Lines       []OrderLine `json:"lines"`
	GrandTotal  int         `json:"grand_total"`
	SubmittedAt time.Time   `json:"submitted_at"`
	Message     string      `json:"message"`
}

const confirmationMessage = "Order submitted. The kitchen is preparing it."
