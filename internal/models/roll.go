package models

import (
	"errors"
	"fmt"
	"time"
)

// DefaultFormula is the only dice expression the system records
const DefaultFormula = "3d6"

// RollRecord represents one parsed 3d6 check posted to chat
type RollRecord struct {
	// ID is the unique identifier for the record
	ID string `json:"id"`

	// Timestamp is when the roll was posted
	Timestamp time.Time `json:"timestamp"`

	// UserID is the stable participant ID of the author
	UserID string `json:"userId"`

	// User is the author's display name at the time of the roll
	User string `json:"user"`

	// Actor is the character name the roll was made for, may equal User
	Actor string `json:"actor"`

	// Formula is the dice expression, "3d6" unless the payload says otherwise
	Formula string `json:"formula"`

	// Total is the summed result, nil when it could not be parsed
	Total *int `json:"total"`

	// Dice holds the three individual faces, nil when unavailable
	Dice []int `json:"dice"`

	// Success is tri-state: nil means indeterminate, not failure
	Success *bool `json:"success"`

	// Margin is the signed distance from the target, nil when unknown
	Margin *int `json:"margin"`

	// IsCritSuccess indicates a critical success
	IsCritSuccess bool `json:"isCritSuccess"`

	// IsCritFailure indicates a critical failure
	IsCritFailure bool `json:"isCritFailure"`

	// Text is the normalized message body
	Text string `json:"text"`

	// Flavor is the free-text annotation attached to the message
	Flavor string `json:"flavor"`
}

// HasDice reports whether the record carries a full set of faces
func (r *RollRecord) HasDice() bool {
	if len(r.Dice) != 3 {
		return false
	}
	for _, d := range r.Dice {
		if d < 1 || d > 6 {
			return false
		}
	}
	return true
}

// Validate checks the record invariants: a total in 3..18, exactly three
// faces in 1..6, and no success on a critical failure. Nil fields pass.
func (r *RollRecord) Validate() error {
	if r.Total != nil && (*r.Total < 3 || *r.Total > 18) {
		return fmt.Errorf("total %d is outside 3..18", *r.Total)
	}

	if r.Dice != nil && !r.HasDice() {
		return fmt.Errorf("dice %v are not three faces in 1..6", r.Dice)
	}

	if r.IsCritFailure && r.Success != nil && *r.Success {
		return errors.New("critical failure cannot be a success")
	}

	return nil
}

// IntPtr returns a pointer to v
func IntPtr(v int) *int {
	return &v
}

// BoolPtr returns a pointer to v
func BoolPtr(v bool) *bool {
	return &v
}
