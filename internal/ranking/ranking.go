// Package ranking builds per-user leaderboards from roll records.
package ranking

import (
	"sort"

	"github.com/KirkDiggler/rollstats/internal/models"
	"github.com/KirkDiggler/rollstats/internal/stats"
)

// Rankings maps each dimension to its ordered leaderboard
type Rankings map[models.RankingDimension][]*models.RankingEntry

// identity is how one participant is shown on a leaderboard
type identity struct {
	userID string
	user   string
	actor  string
}

// Build computes one bundle per distinct participant and sorts every
// dimension descending. Ties are ordered by display name, then user ID.
func Build(records []*models.RollRecord, filter stats.Filter) Rankings {
	users, byUser := groupByUser(filter.Apply(records))

	bundles := make(map[string]*models.StatisticsBundle, len(users))
	for _, u := range users {
		bundles[u.userID] = stats.Compute(byUser[u.userID], stats.Filter{})
	}

	rankings := make(Rankings, len(models.RankingDimensions))
	for _, dim := range models.RankingDimensions {
		entries := make([]*models.RankingEntry, 0, len(users))
		for _, u := range users {
			entries = append(entries, &models.RankingEntry{
				UserID: u.userID,
				User:   u.user,
				Actor:  u.actor,
				Value:  Metric(dim, bundles[u.userID]),
			})
		}
		sortEntries(entries)
		rankings[dim] = entries
	}

	return rankings
}

// Metric extracts the value a dimension ranks by
func Metric(dim models.RankingDimension, b *models.StatisticsBundle) float64 {
	if b == nil {
		return 0
	}

	switch dim {
	case models.RankingLuckiest:
		return float64(b.CritSucc)
	case models.RankingUnluckiest:
		return float64(b.CritFail)
	case models.RankingBestSuccess:
		return b.SuccPct
	case models.RankingWorstSuccess:
		return b.FailPct
	case models.RankingHighestAverage:
		if b.AvgTotal == nil {
			return 0
		}
		return *b.AvgTotal
	case models.RankingMostRolls:
		return float64(b.N)
	default:
		return 0
	}
}

// TopPerformers keeps only the users sharing each dimension's maximum.
// A dimension whose maximum is zero has no data and comes back empty.
func TopPerformers(rankings Rankings) Rankings {
	top := make(Rankings, len(rankings))
	for dim, entries := range rankings {
		top[dim] = []*models.RankingEntry{}
		if len(entries) == 0 {
			continue
		}

		max := entries[0].Value
		for _, e := range entries[1:] {
			if e.Value > max {
				max = e.Value
			}
		}
		if max <= 0 {
			continue
		}

		for _, e := range entries {
			if e.Value == max {
				top[dim] = append(top[dim], e)
			}
		}
	}
	return top
}

// Group collapses runs of equal values into competition ranks, so two
// entries tied at the top are both 1st and the next entry is 3rd.
// Entries must already be sorted.
func Group(entries []*models.RankingEntry) []*models.RankGroup {
	groups := make([]*models.RankGroup, 0, len(entries))
	for i, e := range entries {
		if n := len(groups); n > 0 && groups[n-1].Value == e.Value {
			groups[n-1].Entries = append(groups[n-1].Entries, e)
			continue
		}
		groups = append(groups, &models.RankGroup{
			Rank:    i + 1,
			Value:   e.Value,
			Entries: []*models.RankingEntry{e},
		})
	}
	return groups
}

func sortEntries(entries []*models.RankingEntry) {
	sort.SliceStable(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]
		if a.Value != b.Value {
			return a.Value > b.Value
		}
		if a.User != b.User {
			return a.User < b.User
		}
		return a.UserID < b.UserID
	})
}

// groupByUser splits records per participant. The display name is the one on
// the participant's latest record; the actor is the first one they rolled as.
func groupByUser(records []*models.RollRecord) ([]*identity, map[string][]*models.RollRecord) {
	byUser := make(map[string][]*models.RollRecord)
	identities := make(map[string]*identity)
	var order []*identity

	for _, r := range records {
		id, ok := identities[r.UserID]
		if !ok {
			id = &identity{userID: r.UserID}
			identities[r.UserID] = id
			order = append(order, id)
		}
		if r.User != "" {
			id.user = r.User
		}
		if id.actor == "" && r.Actor != "" {
			id.actor = r.Actor
		}
		byUser[r.UserID] = append(byUser[r.UserID], r)
	}

	for _, id := range order {
		if id.user == "" {
			id.user = id.userID
		}
		if id.actor == "" {
			id.actor = id.user
		}
	}

	return order, byUser
}
