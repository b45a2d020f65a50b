package discord

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/KirkDiggler/rollstats/internal/models"
	"github.com/bwmarrin/discordgo"
)

// Embed field names a dice bot may attach to a roll message
const (
	FieldFormula  = "formula"
	FieldTotal    = "total"
	FieldRolls    = "rolls"
	FieldMargin   = "margin"
	FieldFailure  = "failure"
	FieldCritical = "critical"
)

// chatEventFromMessage converts a posted message into a chat event.
// Messages from the bot itself, or without an author, return nil.
func chatEventFromMessage(m *discordgo.Message, botID string) *models.ChatEvent {
	if m == nil || m.Author == nil {
		return nil
	}
	if botID != "" && m.Author.ID == botID {
		return nil
	}

	userID, userName := messageAuthor(m)

	event := &models.ChatEvent{
		MessageID: m.ID,
		Content:   m.Content,
		UserID:    userID,
		UserName:  userName,
		Timestamp: m.Timestamp,
	}

	for _, embed := range m.Embeds {
		if embed == nil {
			continue
		}

		if embed.Author != nil && event.Speaker == "" {
			event.Speaker = embed.Author.Name
		}
		if embed.Title != "" && event.Flavor == "" {
			event.Flavor = embed.Title
		}
		if embed.Description != "" {
			event.Content = joinLines(event.Content, embed.Description)
		}

		if payload := payloadFromFields(embed.Fields); payload != nil && event.Roll == nil {
			event.Roll = payload
			event.IsRoll = true
		}
	}

	return event
}

// messageAuthor resolves who rolled. A dice bot answering a slash command
// posts as itself, so the invoking user wins over the message author.
func messageAuthor(m *discordgo.Message) (string, string) {
	if m.Interaction != nil && m.Interaction.User != nil {
		return m.Interaction.User.ID, displayName(m.Interaction.User, m.Interaction.Member)
	}
	return m.Author.ID, displayName(m.Author, m.Member)
}

// displayName prefers the guild nickname, then the global name
func displayName(u *discordgo.User, member *discordgo.Member) string {
	if member != nil && member.Nick != "" {
		return member.Nick
	}
	if u.GlobalName != "" {
		return u.GlobalName
	}
	return u.Username
}

func joinLines(a, b string) string {
	if a == "" {
		return b
	}
	return a + "\n" + b
}

// payloadFromFields reads the known roll fields. Nil when none is present.
func payloadFromFields(fields []*discordgo.MessageEmbedField) *models.RollPayload {
	payload := &models.RollPayload{}
	found := false

	for _, f := range fields {
		if f == nil {
			continue
		}
		value := cleanFieldValue(f.Value)

		switch strings.ToLower(strings.TrimSpace(f.Name)) {
		case FieldFormula:
			if value != "" {
				payload.Formula = value
				found = true
			}
		case FieldTotal:
			if v, err := strconv.Atoi(value); err == nil {
				payload.Total = models.IntPtr(v)
				found = true
			}
		case FieldRolls:
			if faces := normalizeFaces(value); faces != "" {
				payload.Rolls = faces
				found = true
			}
		case FieldMargin:
			if v, err := strconv.Atoi(value); err == nil {
				payload.Margin = models.IntPtr(v)
				found = true
			}
		case FieldFailure:
			if v, ok := parseFlag(value); ok {
				payload.Failure = models.BoolPtr(v)
				found = true
			}
		case FieldCritical:
			success, failure, ok := parseCritical(value)
			if ok {
				payload.CritSuccess = models.BoolPtr(success)
				payload.CritFailure = models.BoolPtr(failure)
				found = true
			}
		}
	}

	if !found {
		return nil
	}
	return payload
}

// cleanFieldValue strips markdown emphasis and code ticks
func cleanFieldValue(v string) string {
	return strings.TrimSpace(strings.NewReplacer("*", "", "`", "", "_", "", "~", "").Replace(v))
}

// normalizeFaces turns "[4, 5, 6]" or "4 5 6" into "4,5,6"
func normalizeFaces(v string) string {
	parts := strings.FieldsFunc(v, func(r rune) bool {
		return !unicode.IsDigit(r)
	})
	return strings.Join(parts, ",")
}

func parseFlag(v string) (bool, bool) {
	switch strings.ToLower(v) {
	case "true", "yes", "failure", "failed", "fail":
		return true, true
	case "false", "no", "success", "succeeded":
		return false, true
	default:
		return false, false
	}
}

// parseCritical reads "success", "failure" or "none"
func parseCritical(v string) (bool, bool, bool) {
	v = strings.ToLower(v)
	switch {
	case strings.Contains(v, "success"):
		return true, false, true
	case strings.Contains(v, "fail"):
		return false, true, true
	case v == "none" || v == "no" || v == "false":
		return false, false, true
	default:
		return false, false, false
	}
}
