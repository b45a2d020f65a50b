package rolls

import (
	"strconv"

	"github.com/KirkDiggler/rollstats/internal/dice"
	"github.com/KirkDiggler/rollstats/internal/models"
)

// ExtractFields parses a chat event into a roll record.
//
// Structured payload fields win over text. Fields that cannot be derived are
// left nil. The record has no ID yet; the caller assigns one when storing it.
// Nil is returned only when nothing usable was found.
func ExtractFields(event *models.ChatEvent) *models.RollRecord {
	if event == nil {
		return nil
	}

	text := Normalize(event.Content)
	payload := event.Roll

	record := &models.RollRecord{
		Timestamp: event.Timestamp,
		UserID:    event.UserID,
		User:      event.UserName,
		Actor:     event.Speaker,
		Formula:   models.DefaultFormula,
		Text:      text,
		Flavor:    event.Flavor,
	}
	if record.Actor == "" {
		record.Actor = event.UserName
	}
	if payload != nil && payload.Formula != "" {
		record.Formula = payload.Formula
	}

	record.Total = extractTotal(payload, text)
	record.Dice = extractDice(payload, text)
	record.Success, record.Margin = extractOutcome(payload, text)
	record.IsCritSuccess, record.IsCritFailure = extractCriticals(payload, text)

	// a critical failure is never a success
	if record.IsCritFailure && record.Success != nil && *record.Success {
		record.Success = models.BoolPtr(false)
	}

	if payload == nil &&
		record.Total == nil &&
		record.Dice == nil &&
		record.Success == nil &&
		record.Margin == nil &&
		!record.IsCritSuccess &&
		!record.IsCritFailure {
		return nil
	}

	return record
}

func extractTotal(payload *models.RollPayload, text string) *int {
	var total int
	if payload != nil && payload.Total != nil {
		total = *payload.Total
	} else {
		// MoS=3 would otherwise read as a total of 3
		stripped := mofPattern.ReplaceAllString(mosPattern.ReplaceAllString(text, " "), " ")
		v, ok := firstInt(totalPattern, stripped)
		if !ok {
			return nil
		}
		total = v
	}

	if !dice.ValidTotal(total) {
		return nil
	}
	return models.IntPtr(total)
}

func extractDice(payload *models.RollPayload, text string) []int {
	if payload != nil && payload.Rolls != "" {
		if faces, ok := dice.ParseFaces(payload.Rolls); ok {
			return faces
		}
	}

	m := diceTextPattern.FindStringSubmatch(text)
	if m == nil {
		return nil
	}

	faces := make([]int, 0, dice.Count)
	for _, s := range m[1:] {
		v, err := strconv.Atoi(s)
		if err != nil || !dice.ValidFace(v) {
			return nil
		}
		faces = append(faces, v)
	}
	return faces
}

func extractOutcome(payload *models.RollPayload, text string) (*bool, *int) {
	success, margin := outcomeFromText(text)

	if payload != nil {
		if payload.Failure != nil {
			success = models.BoolPtr(!*payload.Failure)
		}
		if payload.Margin != nil {
			margin = models.IntPtr(*payload.Margin)
		}
	}

	return success, margin
}

// outcomeFromText applies the phrase patterns in precedence order:
// made/missed it by, then MoS/MoF. Only MoF is forced negative.
func outcomeFromText(text string) (*bool, *int) {
	if v, ok := firstInt(madePattern, text); ok {
		return models.BoolPtr(true), models.IntPtr(v)
	}
	if v, ok := firstInt(missedPattern, text); ok {
		return models.BoolPtr(false), models.IntPtr(v)
	}
	if v, ok := firstInt(mosPattern, text); ok {
		return models.BoolPtr(true), models.IntPtr(v)
	}
	if v, ok := firstInt(mofPattern, text); ok {
		return models.BoolPtr(false), models.IntPtr(-abs(v))
	}
	return nil, nil
}

func extractCriticals(payload *models.RollPayload, text string) (bool, bool) {
	critSuccess := HasCriticalSuccess(text)
	critFailure := HasCriticalFailure(text)

	if payload != nil {
		if payload.CritSuccess != nil {
			critSuccess = *payload.CritSuccess
		}
		if payload.CritFailure != nil {
			critFailure = *payload.CritFailure
		}
	}

	return critSuccess, critFailure
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
