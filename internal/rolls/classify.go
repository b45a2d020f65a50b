package rolls

import (
	"github.com/KirkDiggler/rollstats/internal/models"
)

// IsQualifyingRoll decides whether a chat event is a 3d6 check worth recording.
//
// A host-attached roll is accepted as is. Otherwise the text must name the
// 3d6 formula and carry an outcome marker; a bare "3d6" is usually damage.
func IsQualifyingRoll(event *models.ChatEvent) bool {
	if event == nil {
		return false
	}

	if event.IsRoll || event.Roll != nil {
		return true
	}

	text := Normalize(event.Content)
	if !formulaPattern.MatchString(text) {
		return false
	}

	return hasMarginInfo(text)
}
