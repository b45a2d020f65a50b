package stats

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/KirkDiggler/rollstats/internal/dice"
	"github.com/KirkDiggler/rollstats/internal/models"
	aggregate "github.com/KirkDiggler/rollstats/internal/stats"
)

func encodeBundle(bundle *models.StatisticsBundle, userID string, format ExportFormat) (*ExportStatsOutput, error) {
	name := "rollstats-all"
	if userID != "" {
		name = "rollstats-" + userID
	}

	switch format {
	case ExportFormatJSON:
		data, err := json.MarshalIndent(bundle, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("failed to marshal stats: %w", err)
		}
		return &ExportStatsOutput{
			Filename:    name + ".json",
			ContentType: "application/json",
			Data:        data,
		}, nil
	default:
		data, err := bundleCSV(bundle)
		if err != nil {
			return nil, err
		}
		return &ExportStatsOutput{
			Filename:    name + ".csv",
			ContentType: "text/csv",
			Data:        data,
		}, nil
	}
}

// bundleCSV writes one metric per row: the summary metrics, then the
// totals histogram, then the face counts
func bundleCSV(bundle *models.StatisticsBundle) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	rows := [][]string{
		{"metric", "value"},
		{aggregate.MetricRolls, strconv.Itoa(bundle.N)},
		{aggregate.MetricAvgTotal, formatOptional(bundle.AvgTotal)},
		{"succ", strconv.Itoa(bundle.Succ)},
		{"fail", strconv.Itoa(bundle.Fail)},
		{aggregate.MetricSuccPct, formatFloat(bundle.SuccPct)},
		{aggregate.MetricFailPct, formatFloat(bundle.FailPct)},
		{aggregate.MetricCritSucc, strconv.Itoa(bundle.CritSucc)},
		{aggregate.MetricCritFail, strconv.Itoa(bundle.CritFail)},
		{aggregate.MetricUsuallyPassBy, formatOptional(bundle.UsuallyPassBy)},
		{aggregate.MetricUsuallyFailBy, formatOptional(bundle.UsuallyFailBy)},
	}
	for t := dice.MinTotal; t <= dice.MaxTotal; t++ {
		rows = append(rows, []string{"total_" + strconv.Itoa(t), strconv.Itoa(bundle.Totals[t])})
	}
	for f := 1; f <= dice.Sides; f++ {
		rows = append(rows, []string{"face_" + strconv.Itoa(f), strconv.Itoa(bundle.DiceCount[f])})
	}

	if err := w.WriteAll(rows); err != nil {
		return nil, fmt.Errorf("failed to write csv: %w", err)
	}

	return buf.Bytes(), nil
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

func formatOptional(v *float64) string {
	if v == nil {
		return ""
	}
	return formatFloat(*v)
}
