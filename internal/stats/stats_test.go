package stats

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/KirkDiggler/rollstats/internal/dice"
	"github.com/KirkDiggler/rollstats/internal/models"
	"github.com/KirkDiggler/rollstats/internal/rolls"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func roll(userID string, total int, faces []int, success *bool, margin *int, text string) *models.RollRecord {
	r := &models.RollRecord{
		UserID: userID,
		User:   userID,
		Dice:   faces,
		Text:   text,
	}
	if total != 0 {
		r.Total = models.IntPtr(total)
	}
	r.Success = success
	r.Margin = margin
	return r
}

func TestComputeEmpty(t *testing.T) {
	bundle := Compute(nil, Filter{})

	assert.Equal(t, 0, bundle.N)
	assert.Nil(t, bundle.AvgTotal)
	assert.Nil(t, bundle.UsuallyPassBy)
	assert.Nil(t, bundle.UsuallyFailBy)
	assert.Equal(t, 0.0, bundle.SuccPct)
	assert.Equal(t, 0.0, bundle.FailPct)

	require.Len(t, bundle.Totals, 16)
	for total := 3; total <= 18; total++ {
		assert.Equal(t, 0, bundle.Totals[total])
	}
	require.Len(t, bundle.DiceCount, 6)
	for face := 1; face <= 6; face++ {
		assert.Equal(t, 0, bundle.DiceCount[face])
	}
}

func TestComputeBasicCounts(t *testing.T) {
	records := []*models.RollRecord{
		roll("a", 15, []int{4, 5, 6}, models.BoolPtr(true), models.IntPtr(3), "Made it by 3"),
		roll("a", 9, []int{1, 2, 6}, models.BoolPtr(false), models.IntPtr(-2), "Missed it by -2"),
		roll("a", 10, nil, models.BoolPtr(true), models.IntPtr(1), "Made it by 1"),
		roll("a", 0, nil, nil, nil, "Success!"),
	}

	bundle := Compute(records, Filter{})

	assert.Equal(t, 4, bundle.N)
	assert.Equal(t, 1, bundle.Totals[15])
	assert.Equal(t, 1, bundle.Totals[9])
	assert.Equal(t, 1, bundle.Totals[10])
	assert.Equal(t, map[int]int{1: 1, 2: 1, 3: 0, 4: 1, 5: 1, 6: 2}, bundle.DiceCount)

	require.NotNil(t, bundle.AvgTotal)
	assert.InDelta(t, 34.0/3.0, *bundle.AvgTotal, 1e-9)

	assert.Equal(t, 2, bundle.Succ)
	assert.Equal(t, 1, bundle.Fail)
	assert.InDelta(t, 50.0, bundle.SuccPct, 1e-9)
	assert.InDelta(t, 25.0, bundle.FailPct, 1e-9)

	require.NotNil(t, bundle.UsuallyPassBy)
	assert.InDelta(t, 2.0, *bundle.UsuallyPassBy, 1e-9)
	require.NotNil(t, bundle.UsuallyFailBy)
	assert.InDelta(t, 2.0, *bundle.UsuallyFailBy, 1e-9)
}

func TestComputeIgnoresMarginsWithWrongSign(t *testing.T) {
	records := []*models.RollRecord{
		roll("a", 10, nil, models.BoolPtr(true), models.IntPtr(0), ""),
		roll("a", 10, nil, models.BoolPtr(false), models.IntPtr(2), ""),
	}

	bundle := Compute(records, Filter{})

	assert.Nil(t, bundle.UsuallyPassBy)
	assert.Nil(t, bundle.UsuallyFailBy)
	assert.Equal(t, 1, bundle.Succ)
	assert.Equal(t, 1, bundle.Fail)
}

func TestComputeMissedItByPositiveIsNotAFailMargin(t *testing.T) {
	record := rolls.ExtractFields(&models.ChatEvent{
		UserID:  "a",
		Content: "3d6 Rolled (6,5,4) = 15 Missed it by 2",
	})
	require.NotNil(t, record)

	bundle := Compute([]*models.RollRecord{record}, Filter{})

	assert.Equal(t, 1, bundle.Fail)
	assert.Nil(t, bundle.UsuallyFailBy)
}

func TestComputeCriticals(t *testing.T) {
	flagged := roll("a", 4, nil, models.BoolPtr(true), models.IntPtr(8), "")
	flagged.IsCritSuccess = true

	both := roll("a", 4, nil, models.BoolPtr(true), models.IntPtr(8), "Critical Success!")
	both.IsCritSuccess = true

	records := []*models.RollRecord{
		flagged,
		both,
		roll("a", 3, nil, nil, nil, "critical success!"),
		roll("a", 18, nil, models.BoolPtr(false), nil, "Critical   Failure!"),
	}

	bundle := Compute(records, Filter{})

	assert.Equal(t, 3, bundle.CritSucc)
	assert.Equal(t, 1, bundle.CritFail)
}

func TestComputeFilters(t *testing.T) {
	records := []*models.RollRecord{
		roll("a", 10, nil, models.BoolPtr(true), nil, ""),
		roll("b", 12, nil, models.BoolPtr(false), nil, ""),
		roll("gm", 3, nil, models.BoolPtr(true), nil, ""),
		nil,
	}

	assert.Equal(t, 3, Compute(records, Filter{}).N)
	assert.Equal(t, 1, Compute(records, Filter{UserID: "b"}).N)
	assert.Equal(t, 2, Compute(records, Filter{ExcludeUserIDs: map[string]bool{"gm": true}}).N)
	assert.Equal(t, 0, Compute(records, Filter{UserID: "gm", ExcludeUserIDs: map[string]bool{"gm": true}}).N)
	assert.Equal(t, 0, Compute(records, Filter{UserID: "nobody"}).N)
}

func TestComputeOutOfRangeValuesAreSkipped(t *testing.T) {
	records := []*models.RollRecord{
		{UserID: "a", Total: models.IntPtr(42), Dice: []int{7, 7, 7}},
		{UserID: "a", Dice: []int{1, 2}},
	}

	bundle := Compute(records, Filter{})

	assert.Equal(t, 2, bundle.N)
	assert.Nil(t, bundle.AvgTotal)
	for face := 1; face <= 6; face++ {
		assert.Equal(t, 0, bundle.DiceCount[face])
	}
}

// roll3d6 draws three faces from random
func roll3d6(random *rand.Rand) ([]int, int) {
	faces := make([]int, dice.Count)
	total := 0
	for i := range faces {
		faces[i] = random.Intn(dice.Sides) + 1
		total += faces[i]
	}
	return faces, total
}

func randomRecords(random *rand.Rand, n int) []*models.RollRecord {
	records := make([]*models.RollRecord, 0, n)
	for i := 0; i < n; i++ {
		faces, total := roll3d6(random)
		target := 10
		margin := target - total
		r := &models.RollRecord{
			UserID:  fmt.Sprintf("user-%d", i%4),
			Total:   models.IntPtr(total),
			Dice:    faces,
			Success: models.BoolPtr(margin >= 0),
			Margin:  models.IntPtr(margin),
		}
		switch {
		case total <= 4:
			r.Text = "Critical Success!"
		case total >= 17:
			r.IsCritFailure = true
		}
		records = append(records, r)
	}
	return records
}

func TestComputeIsOrderIndependent(t *testing.T) {
	random := rand.New(rand.NewSource(1234))
	records := randomRecords(random, 300)

	want := Compute(records, Filter{})

	for i := 0; i < 10; i++ {
		shuffled := append([]*models.RollRecord(nil), records...)
		random.Shuffle(len(shuffled), func(a, b int) {
			shuffled[a], shuffled[b] = shuffled[b], shuffled[a]
		})
		assert.Equal(t, want, Compute(shuffled, Filter{}))
		assert.Equal(t, Compute(records, Filter{UserID: "user-2"}), Compute(shuffled, Filter{UserID: "user-2"}))
	}
}

func TestComputeIsIdempotent(t *testing.T) {
	records := randomRecords(rand.New(rand.NewSource(99)), 50)

	first := Compute(records, Filter{})
	second := Compute(records, Filter{})

	assert.Equal(t, first, second)
	assert.NotSame(t, first, second)
}

func TestCompare(t *testing.T) {
	player := &models.StatisticsBundle{
		N:        10,
		AvgTotal: floatValue(9),
		SuccPct:  60,
		FailPct:  40,
		CritSucc: 1,
		CritFail: 1,
	}
	global := &models.StatisticsBundle{
		N:             30,
		AvgTotal:      floatValue(10.5),
		SuccPct:       50,
		FailPct:       50,
		CritSucc:      1,
		CritFail:      0,
		UsuallyPassBy: floatValue(2),
	}

	rows := Compare(player, global)
	byMetric := make(map[string]models.MetricComparison)
	for _, row := range rows {
		byMetric[row.Metric] = row
	}

	assert.Equal(t, models.DirectionBelow, byMetric[MetricAvgTotal].Direction)
	assert.False(t, byMetric[MetricAvgTotal].Favorable)

	assert.Equal(t, models.DirectionAbove, byMetric[MetricSuccPct].Direction)
	assert.True(t, byMetric[MetricSuccPct].Favorable)

	assert.Equal(t, models.DirectionBelow, byMetric[MetricFailPct].Direction)
	assert.True(t, byMetric[MetricFailPct].Favorable)

	assert.Equal(t, models.DirectionEqual, byMetric[MetricCritSucc].Direction)
	assert.False(t, byMetric[MetricCritSucc].Favorable)

	assert.Equal(t, models.DirectionAbove, byMetric[MetricCritFail].Direction)
	assert.False(t, byMetric[MetricCritFail].Favorable)

	assert.Equal(t, models.DirectionEqual, byMetric[MetricUsuallyPassBy].Direction)
	assert.Nil(t, byMetric[MetricUsuallyPassBy].Player)
}
