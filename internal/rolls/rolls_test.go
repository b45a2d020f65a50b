package rolls

import (
	"testing"
	"time"

	"github.com/KirkDiggler/rollstats/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{name: "empty", raw: "", want: ""},
		{name: "plain text", raw: "  Made   it by 3 ", want: "Made it by 3"},
		{name: "tags removed", raw: "<div class=\"roll\"><b>3d6</b>: Success!</div>", want: "3d6 : Success!"},
		{name: "tags separate words", raw: "<span>Rolled</span><span>(4,5,6)</span>", want: "Rolled (4,5,6)"},
		{name: "entities decoded", raw: "Made&nbsp;it&nbsp;by 2 &amp; more", want: "Made it by 2 & more"},
		{name: "newlines collapsed", raw: "3d6\n\n\tMoS 4", want: "3d6 MoS 4"},
		{name: "comments dropped", raw: "3d6<!-- hidden -->roll", want: "3d6 roll"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.raw))
		})
	}
}

func TestIsQualifyingRoll(t *testing.T) {
	tests := []struct {
		name  string
		event *models.ChatEvent
		want  bool
	}{
		{
			name:  "nil event",
			event: nil,
			want:  false,
		},
		{
			name:  "success with margin",
			event: &models.ChatEvent{Content: "Rolled 3d6: 4,5,6 = 15. Success! Made it by 3."},
			want:  true,
		},
		{
			name:  "damage roll without outcome",
			event: &models.ChatEvent{Content: "You rolled 3d6 for damage: 11"},
			want:  false,
		},
		{
			name:  "outcome without formula",
			event: &models.ChatEvent{Content: "Success! Made it by 3."},
			want:  false,
		},
		{
			name:  "missed it by",
			event: &models.ChatEvent{Content: "<p>3d6 vs Broadsword-12: Missed it by -2</p>"},
			want:  true,
		},
		{
			name:  "MoS abbreviation",
			event: &models.ChatEvent{Content: "3D6 check, MoS: +4"},
			want:  true,
		},
		{
			name:  "MoF abbreviation",
			event: &models.ChatEvent{Content: "3d6 MoF=2"},
			want:  true,
		},
		{
			name:  "failure token only",
			event: &models.ChatEvent{Content: "3d6 Failure!"},
			want:  true,
		},
		{
			name:  "formula must be a whole word",
			event: &models.ChatEvent{Content: "13d66 Success!"},
			want:  false,
		},
		{
			name:  "structured flag wins",
			event: &models.ChatEvent{IsRoll: true, Content: "anything"},
			want:  true,
		},
		{
			name:  "structured payload wins",
			event: &models.ChatEvent{Roll: &models.RollPayload{Total: models.IntPtr(9)}},
			want:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsQualifyingRoll(tt.event))
		})
	}
}

func TestExtractFields_MadeItByWithDice(t *testing.T) {
	now := time.Date(2025, 4, 5, 10, 0, 0, 0, time.UTC)
	record := ExtractFields(&models.ChatEvent{
		Content:   "3d6: Made it by 3. (Rolled (4,5,6) = 15)",
		UserID:    "user-1",
		UserName:  "Alice",
		Speaker:   "Sir Reginald",
		Flavor:    "Broadsword",
		Timestamp: now,
	})
	require.NotNil(t, record)

	require.NotNil(t, record.Total)
	assert.Equal(t, 15, *record.Total)
	assert.Equal(t, []int{4, 5, 6}, record.Dice)
	require.NotNil(t, record.Success)
	assert.True(t, *record.Success)
	require.NotNil(t, record.Margin)
	assert.Equal(t, 3, *record.Margin)

	assert.Equal(t, "user-1", record.UserID)
	assert.Equal(t, "Alice", record.User)
	assert.Equal(t, "Sir Reginald", record.Actor)
	assert.Equal(t, "Broadsword", record.Flavor)
	assert.Equal(t, models.DefaultFormula, record.Formula)
	assert.Equal(t, now, record.Timestamp)
	assert.Empty(t, record.ID)
}

func TestExtractFields_MissedItByWithoutDice(t *testing.T) {
	record := ExtractFields(&models.ChatEvent{Content: "Missed it by -2"})
	require.NotNil(t, record)

	require.NotNil(t, record.Success)
	assert.False(t, *record.Success)
	require.NotNil(t, record.Margin)
	assert.Equal(t, -2, *record.Margin)
	assert.Nil(t, record.Dice)
	assert.Nil(t, record.Total)
}

func TestExtractFields_MissedItByKeepsSign(t *testing.T) {
	record := ExtractFields(&models.ChatEvent{Content: "3d6 Rolled (6,5,4) = 15 Missed it by 2"})
	require.NotNil(t, record)

	require.NotNil(t, record.Success)
	assert.False(t, *record.Success)
	require.NotNil(t, record.Margin)
	assert.Equal(t, 2, *record.Margin)
	require.NotNil(t, record.Total)
	assert.Equal(t, 15, *record.Total)
}

func TestExtractFields_MoFForcedNegative(t *testing.T) {
	record := ExtractFields(&models.ChatEvent{Content: "3d6 = 14 MoF: 3"})
	require.NotNil(t, record)

	require.NotNil(t, record.Success)
	assert.False(t, *record.Success)
	require.NotNil(t, record.Margin)
	assert.Equal(t, -3, *record.Margin)
	require.NotNil(t, record.Total)
	assert.Equal(t, 14, *record.Total)
}

func TestExtractFields_MoSValueIsNotATotal(t *testing.T) {
	record := ExtractFields(&models.ChatEvent{Content: "3d6 MoS=5"})
	require.NotNil(t, record)

	assert.Nil(t, record.Total)
	require.NotNil(t, record.Margin)
	assert.Equal(t, 5, *record.Margin)
	require.NotNil(t, record.Success)
	assert.True(t, *record.Success)
}

func TestExtractFields_MadeItByBeatsMoS(t *testing.T) {
	record := ExtractFields(&models.ChatEvent{Content: "3d6 MoS 7. Made it by 2"})
	require.NotNil(t, record)
	require.NotNil(t, record.Margin)
	assert.Equal(t, 2, *record.Margin)
}

func TestExtractFields_SuccessTokenAloneIsIndeterminate(t *testing.T) {
	event := &models.ChatEvent{Content: "3d6 = 10 Success!"}
	require.True(t, IsQualifyingRoll(event))

	record := ExtractFields(event)
	require.NotNil(t, record)
	assert.Nil(t, record.Success)
	assert.Nil(t, record.Margin)
	require.NotNil(t, record.Total)
	assert.Equal(t, 10, *record.Total)
}

func TestExtractFields_CriticalsFromText(t *testing.T) {
	record := ExtractFields(&models.ChatEvent{Content: "3d6 Rolled (1,1,1) = 3 CRITICAL   success! Made it by 9"})
	require.NotNil(t, record)
	assert.True(t, record.IsCritSuccess)
	assert.False(t, record.IsCritFailure)
}

func TestExtractFields_CriticalFailureIsNeverSuccess(t *testing.T) {
	record := ExtractFields(&models.ChatEvent{Content: "3d6 Rolled (6,6,6) = 18 Critical Failure! Made it by 1"})
	require.NotNil(t, record)
	assert.True(t, record.IsCritFailure)
	require.NotNil(t, record.Success)
	assert.False(t, *record.Success)
}

func TestExtractFields_StructuredPayloadWins(t *testing.T) {
	record := ExtractFields(&models.ChatEvent{
		IsRoll:  true,
		Content: "3d6 Rolled (1,2,3) = 6 Missed it by 5",
		Roll: &models.RollPayload{
			Formula:     "3d6",
			Total:       models.IntPtr(12),
			Rolls:       "3,4,5",
			Failure:     models.BoolPtr(false),
			Margin:      models.IntPtr(2),
			CritSuccess: models.BoolPtr(false),
			CritFailure: models.BoolPtr(false),
		},
	})
	require.NotNil(t, record)

	assert.Equal(t, 12, *record.Total)
	assert.Equal(t, []int{3, 4, 5}, record.Dice)
	assert.True(t, *record.Success)
	assert.Equal(t, 2, *record.Margin)
}

func TestExtractFields_StructuredPartialFallsBackToText(t *testing.T) {
	record := ExtractFields(&models.ChatEvent{
		Content: "Rolled (2,2,2) = 6 Critical Success! Made it by 8",
		Roll: &models.RollPayload{
			Rolls: "bad",
		},
	})
	require.NotNil(t, record)

	assert.Equal(t, 6, *record.Total)
	assert.Equal(t, []int{2, 2, 2}, record.Dice)
	assert.True(t, *record.Success)
	assert.Equal(t, 8, *record.Margin)
	assert.True(t, record.IsCritSuccess)
}

func TestExtractFields_TotalOutOfRangeIsDropped(t *testing.T) {
	record := ExtractFields(&models.ChatEvent{
		Roll: &models.RollPayload{Total: models.IntPtr(25)},
	})
	require.NotNil(t, record)
	assert.Nil(t, record.Total)
}

func TestExtractFields_InvalidTextDiceAreDropped(t *testing.T) {
	record := ExtractFields(&models.ChatEvent{Content: "3d6 Rolled (7,1,2) = 10 Made it by 1"})
	require.NotNil(t, record)
	assert.Nil(t, record.Dice)
}

func TestExtractFields_ActorFallsBackToUser(t *testing.T) {
	record := ExtractFields(&models.ChatEvent{Content: "3d6 MoS 1", UserName: "Bob"})
	require.NotNil(t, record)
	assert.Equal(t, "Bob", record.Actor)
}

func TestExtractFields_NothingUsable(t *testing.T) {
	assert.Nil(t, ExtractFields(nil))
	assert.Nil(t, ExtractFields(&models.ChatEvent{Content: "hello there"}))
}

func TestExtractedRecordsHoldInvariants(t *testing.T) {
	contents := []string{
		"3d6 Rolled (6,6,6) = 18 Critical Failure! Made it by 1",
		"3d6 Rolled (1,1,2) = 4 Critical Success! MoS 10",
		"3d6: Made it by 3. (Rolled (4,5,6) = 15)",
		"3d6 Rolled (0,5,6) = 11 Failure!",
		"3d6 = 2 Missed it by 1",
	}

	for _, content := range contents {
		record := ExtractFields(&models.ChatEvent{Content: content})
		require.NotNil(t, record, content)
		assert.NoError(t, record.Validate(), content)

		if record.Dice != nil {
			require.Len(t, record.Dice, 3, content)
			for _, d := range record.Dice {
				assert.True(t, d >= 1 && d <= 6, content)
			}
		}
		if record.Total != nil {
			assert.True(t, *record.Total >= 3 && *record.Total <= 18, content)
		}
		if record.IsCritFailure && record.Success != nil {
			assert.False(t, *record.Success, content)
		}
	}
}
