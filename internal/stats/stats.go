// Package stats reduces roll records into distribution statistics.
package stats

import (
	"github.com/KirkDiggler/rollstats/internal/dice"
	"github.com/KirkDiggler/rollstats/internal/models"
	"github.com/KirkDiggler/rollstats/internal/rolls"
)

// Filter selects the records a bundle is computed over
type Filter struct {
	// UserID restricts the bundle to one participant; empty means everyone
	UserID string

	// ExcludeUserIDs drops records from these participants (e.g. GMs)
	ExcludeUserIDs map[string]bool
}

// Matches reports whether the record passes the filter
func (f Filter) Matches(r *models.RollRecord) bool {
	if r == nil {
		return false
	}
	if f.UserID != "" && r.UserID != f.UserID {
		return false
	}
	return !f.ExcludeUserIDs[r.UserID]
}

// Apply returns the records that pass the filter, in their original order
func (f Filter) Apply(records []*models.RollRecord) []*models.RollRecord {
	out := make([]*models.RollRecord, 0, len(records))
	for _, r := range records {
		if f.Matches(r) {
			out = append(out, r)
		}
	}
	return out
}

// Empty returns a bundle for zero records
func Empty() *models.StatisticsBundle {
	bundle := &models.StatisticsBundle{
		Totals:    make(map[int]int, dice.MaxTotal-dice.MinTotal+1),
		DiceCount: make(map[int]int, dice.Sides),
	}
	for t := dice.MinTotal; t <= dice.MaxTotal; t++ {
		bundle.Totals[t] = 0
	}
	for f := 1; f <= dice.Sides; f++ {
		bundle.DiceCount[f] = 0
	}
	return bundle
}

// Compute aggregates the records that pass filter.
//
// Null fields are left out of the statistic they would feed. Every running
// sum is an integer, so the result does not depend on record order.
func Compute(records []*models.RollRecord, filter Filter) *models.StatisticsBundle {
	bundle := Empty()

	var (
		sumTotal, nTotal  int
		sumPass, nPass    int
		sumFailAbs, nFail int
	)

	for _, r := range records {
		if !filter.Matches(r) {
			continue
		}
		bundle.N++

		if r.Total != nil && dice.ValidTotal(*r.Total) {
			bundle.Totals[*r.Total]++
			sumTotal += *r.Total
			nTotal++
		}

		if r.HasDice() {
			for _, d := range r.Dice {
				bundle.DiceCount[d]++
			}
		}

		if r.Success != nil {
			if *r.Success {
				bundle.Succ++
				if r.Margin != nil && *r.Margin > 0 {
					sumPass += *r.Margin
					nPass++
				}
			} else {
				bundle.Fail++
				if r.Margin != nil && *r.Margin < 0 {
					sumFailAbs += -*r.Margin
					nFail++
				}
			}
		}

		if r.IsCritSuccess || rolls.HasCriticalSuccess(r.Text) {
			bundle.CritSucc++
		}
		if r.IsCritFailure || rolls.HasCriticalFailure(r.Text) {
			bundle.CritFail++
		}
	}

	if bundle.N > 0 {
		bundle.SuccPct = float64(bundle.Succ) / float64(bundle.N) * 100
		bundle.FailPct = float64(bundle.Fail) / float64(bundle.N) * 100
	}
	bundle.AvgTotal = mean(sumTotal, nTotal)
	bundle.UsuallyPassBy = mean(sumPass, nPass)
	bundle.UsuallyFailBy = mean(sumFailAbs, nFail)

	return bundle
}

func mean(sum, n int) *float64 {
	if n == 0 {
		return nil
	}
	v := float64(sum) / float64(n)
	return &v
}
