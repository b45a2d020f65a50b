package models

import (
	"time"
)

// ChatEvent is a chat message as delivered by the host transport
type ChatEvent struct {
	// MessageID is the transport's identifier for the message
	MessageID string

	// IsRoll is set when the host marks the message as a dice roll
	IsRoll bool

	// Roll is the machine-readable roll result, when the host attaches one
	Roll *RollPayload

	// Content is the raw message body, possibly containing markup
	Content string

	// Flavor is any annotation attached to the message
	Flavor string

	// Speaker is the character alias the message was posted as
	Speaker string

	// UserID is the stable ID of the author
	UserID string

	// UserName is the author's current display name
	UserName string

	// Timestamp is when the message was created
	Timestamp time.Time
}

// RollPayload is a structured roll result attached to a chat event
type RollPayload struct {
	// Formula is the rolled expression
	Formula string

	// Total is the summed result
	Total *int

	// Rolls is the comma separated list of faces, e.g. "4,5,6"
	Rolls string

	// Failure is true when the check failed
	Failure *bool

	// Margin is the signed margin of success or failure
	Margin *int

	// CritSuccess is the host's critical success flag
	CritSuccess *bool

	// CritFailure is the host's critical failure flag
	CritFailure *bool
}
