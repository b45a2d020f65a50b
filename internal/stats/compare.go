package stats

import (
	"github.com/KirkDiggler/rollstats/internal/models"
)

// Metric names used in comparisons
const (
	MetricRolls         = "rolls"
	MetricAvgTotal      = "avg_total"
	MetricSuccPct       = "succ_pct"
	MetricFailPct       = "fail_pct"
	MetricCritSucc      = "crit_succ"
	MetricCritFail      = "crit_fail"
	MetricUsuallyPassBy = "usually_pass_by"
	MetricUsuallyFailBy = "usually_fail_by"
)

type metric struct {
	name         string
	higherBetter bool
	value        func(b *models.StatisticsBundle) *float64
}

var comparedMetrics = []metric{
	{name: MetricRolls, higherBetter: true, value: func(b *models.StatisticsBundle) *float64 { return intValue(b.N) }},
	{name: MetricAvgTotal, higherBetter: true, value: func(b *models.StatisticsBundle) *float64 { return b.AvgTotal }},
	{name: MetricSuccPct, higherBetter: true, value: func(b *models.StatisticsBundle) *float64 { return floatValue(b.SuccPct) }},
	{name: MetricFailPct, higherBetter: false, value: func(b *models.StatisticsBundle) *float64 { return floatValue(b.FailPct) }},
	{name: MetricCritSucc, higherBetter: true, value: func(b *models.StatisticsBundle) *float64 { return intValue(b.CritSucc) }},
	{name: MetricCritFail, higherBetter: false, value: func(b *models.StatisticsBundle) *float64 { return intValue(b.CritFail) }},
	{name: MetricUsuallyPassBy, higherBetter: true, value: func(b *models.StatisticsBundle) *float64 { return b.UsuallyPassBy }},
	{name: MetricUsuallyFailBy, higherBetter: false, value: func(b *models.StatisticsBundle) *float64 { return b.UsuallyFailBy }},
}

// Compare lines a player's bundle up against the global one.
// A metric missing on either side compares as equal and not favorable.
func Compare(player, global *models.StatisticsBundle) []models.MetricComparison {
	if player == nil {
		player = Empty()
	}
	if global == nil {
		global = Empty()
	}

	out := make([]models.MetricComparison, 0, len(comparedMetrics))
	for _, m := range comparedMetrics {
		p, g := m.value(player), m.value(global)
		row := models.MetricComparison{
			Metric:    m.name,
			Player:    p,
			Global:    g,
			Direction: models.DirectionEqual,
		}

		if p != nil && g != nil {
			switch {
			case *p > *g:
				row.Direction = models.DirectionAbove
				row.Favorable = m.higherBetter
			case *p < *g:
				row.Direction = models.DirectionBelow
				row.Favorable = !m.higherBetter
			}
		}

		out = append(out, row)
	}
	return out
}

func intValue(v int) *float64 {
	f := float64(v)
	return &f
}

func floatValue(v float64) *float64 {
	return &v
}
