package discord

import (
	"fmt"
	"strings"

	"github.com/KirkDiggler/rollstats/internal/dice"
	"github.com/KirkDiggler/rollstats/internal/models"
	"github.com/KirkDiggler/rollstats/internal/ranking"
	"github.com/KirkDiggler/rollstats/internal/services/stats"
	aggregate "github.com/KirkDiggler/rollstats/internal/stats"
	"github.com/bwmarrin/discordgo"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Discord caps an embed field value at 1024 characters
const maxFieldValue = 1024

var printer = message.NewPrinter(language.English)

var dimensionLabels = map[models.RankingDimension]string{
	models.RankingLuckiest:       "🍀 Luckiest",
	models.RankingUnluckiest:     "💀 Unluckiest",
	models.RankingBestSuccess:    "🎯 Best success rate",
	models.RankingWorstSuccess:   "🙈 Worst success rate",
	models.RankingHighestAverage: "📈 Highest average",
	models.RankingMostRolls:      "🎲 Most rolls",
}

var metricLabels = map[string]string{
	aggregate.MetricRolls:         "Rolls",
	aggregate.MetricAvgTotal:      "Average total",
	aggregate.MetricSuccPct:       "Success rate",
	aggregate.MetricFailPct:       "Failure rate",
	aggregate.MetricCritSucc:      "Critical successes",
	aggregate.MetricCritFail:      "Critical failures",
	aggregate.MetricUsuallyPassBy: "Usually passes by",
	aggregate.MetricUsuallyFailBy: "Usually fails by",
}

func dimensionLabel(dim models.RankingDimension) string {
	if label, ok := dimensionLabels[dim]; ok {
		return label
	}
	return string(dim)
}

func metricLabel(name string) string {
	if label, ok := metricLabels[name]; ok {
		return label
	}
	return name
}

func formatCount(v int) string {
	return printer.Sprintf("%d", v)
}

func formatPercent(v float64) string {
	return printer.Sprintf("%.1f%%", v)
}

func formatDecimal(v *float64) string {
	if v == nil {
		return "n/a"
	}
	return printer.Sprintf("%.2f", *v)
}

// formatMetric formats a comparison value the way its metric is shown
func formatMetric(name string, v *float64) string {
	if v == nil {
		return "n/a"
	}
	switch name {
	case aggregate.MetricSuccPct, aggregate.MetricFailPct:
		return formatPercent(*v)
	case aggregate.MetricRolls, aggregate.MetricCritSucc, aggregate.MetricCritFail:
		return formatCount(int(*v))
	default:
		return formatDecimal(v)
	}
}

// formatRankingValue formats a leaderboard value for its dimension
func formatRankingValue(dim models.RankingDimension, v float64) string {
	switch dim {
	case models.RankingBestSuccess, models.RankingWorstSuccess:
		return formatPercent(v)
	case models.RankingHighestAverage:
		return formatDecimal(&v)
	default:
		return formatCount(int(v))
	}
}

func entryName(e *models.RankingEntry) string {
	if e.Actor != "" && e.Actor != e.User {
		return fmt.Sprintf("%s (%s)", e.User, e.Actor)
	}
	return e.User
}

func truncate(s string) string {
	runes := []rune(s)
	if len(runes) <= maxFieldValue {
		return s
	}
	return string(runes[:maxFieldValue-1]) + "…"
}

// renderBundle renders one statistics bundle
func renderBundle(title string, b *models.StatisticsBundle) *discordgo.MessageEmbed {
	if b == nil {
		b = aggregate.Empty()
	}

	fields := []*discordgo.MessageEmbedField{
		{Name: "Rolls", Value: formatCount(b.N), Inline: true},
		{Name: "Average total", Value: formatDecimal(b.AvgTotal), Inline: true},
		blankField(),
		{Name: "Successes", Value: fmt.Sprintf("%s (%s)", formatCount(b.Succ), formatPercent(b.SuccPct)), Inline: true},
		{Name: "Failures", Value: fmt.Sprintf("%s (%s)", formatCount(b.Fail), formatPercent(b.FailPct)), Inline: true},
		blankField(),
		{Name: "Critical successes", Value: formatCount(b.CritSucc), Inline: true},
		{Name: "Critical failures", Value: formatCount(b.CritFail), Inline: true},
		blankField(),
		{Name: "Usually passes by", Value: formatDecimal(b.UsuallyPassBy), Inline: true},
		{Name: "Usually fails by", Value: formatDecimal(b.UsuallyFailBy), Inline: true},
		blankField(),
		{Name: "Totals", Value: renderTotals(b), Inline: false},
		{Name: "Dice faces", Value: renderFaces(b), Inline: false},
	}

	return &discordgo.MessageEmbed{
		Title:  title,
		Color:  ColorInfo,
		Fields: fields,
	}
}

// blankField pads a row of inline fields
func blankField() *discordgo.MessageEmbedField {
	return &discordgo.MessageEmbedField{Name: "\u200b", Value: "\u200b", Inline: true}
}

// renderTotals draws the 3..18 histogram as a code block
func renderTotals(b *models.StatisticsBundle) string {
	peak := 0
	for t := dice.MinTotal; t <= dice.MaxTotal; t++ {
		if b.Totals[t] > peak {
			peak = b.Totals[t]
		}
	}

	var sb strings.Builder
	sb.WriteString("```\n")
	for t := dice.MinTotal; t <= dice.MaxTotal; t++ {
		sb.WriteString(fmt.Sprintf("%2d %-10s %s\n", t, bar(b.Totals[t], peak, 10), formatCount(b.Totals[t])))
	}
	sb.WriteString("```")
	return sb.String()
}

func renderFaces(b *models.StatisticsBundle) string {
	parts := make([]string, 0, dice.Sides)
	for f := 1; f <= dice.Sides; f++ {
		parts = append(parts, fmt.Sprintf("%d: %s", f, formatCount(b.DiceCount[f])))
	}
	return strings.Join(parts, " · ")
}

func bar(v, peak, width int) string {
	if peak == 0 || v == 0 {
		return ""
	}
	n := v * width / peak
	if n == 0 {
		n = 1
	}
	return strings.Repeat("█", n)
}

// renderComparison renders one row per metric with an arrow for the direction
func renderComparison(out *stats.GetComparisonOutput) *discordgo.MessageEmbed {
	fields := make([]*discordgo.MessageEmbedField, 0, len(out.Rows))
	for _, row := range out.Rows {
		fields = append(fields, &discordgo.MessageEmbedField{
			Name:   metricLabel(row.Metric),
			Value:  fmt.Sprintf("%s vs %s %s", formatMetric(row.Metric, row.Player), formatMetric(row.Metric, row.Global), directionMark(row)),
			Inline: true,
		})
	}

	name := out.User
	if name == "" {
		name = out.UserID
	}

	return &discordgo.MessageEmbed{
		Title:       fmt.Sprintf("%s vs everyone", name),
		Description: "Player value vs global value",
		Color:       ColorInfo,
		Fields:      fields,
	}
}

func directionMark(row models.MetricComparison) string {
	switch {
	case row.Direction == models.DirectionEqual:
		return "="
	case row.Favorable:
		return "✅"
	default:
		return "❌"
	}
}

// renderBoards renders grouped leaderboards, one field per dimension
func renderBoards(boards []*stats.Board) *discordgo.MessageEmbed {
	fields := make([]*discordgo.MessageEmbedField, 0, len(boards))
	for _, board := range boards {
		var lines []string
		for _, g := range board.Groups {
			names := make([]string, 0, len(g.Entries))
			for _, e := range g.Entries {
				names = append(names, entryName(e))
			}
			lines = append(lines, fmt.Sprintf("%s %s: %s", ordinal(g.Rank), strings.Join(names, ", "), formatRankingValue(board.Dimension, g.Value)))
		}
		if len(lines) == 0 {
			lines = append(lines, "No data")
		}

		fields = append(fields, &discordgo.MessageEmbedField{
			Name:  dimensionLabel(board.Dimension),
			Value: truncate(strings.Join(lines, "\n")),
		})
	}

	return &discordgo.MessageEmbed{
		Title:  "Rankings",
		Color:  ColorInfo,
		Fields: fields,
	}
}

// renderTop renders the leaders of every dimension in display order
func renderTop(top ranking.Rankings) *discordgo.MessageEmbed {
	fields := make([]*discordgo.MessageEmbedField, 0, len(models.RankingDimensions))
	for _, dim := range models.RankingDimensions {
		entries := top[dim]
		value := "No data"
		if len(entries) > 0 {
			names := make([]string, 0, len(entries))
			for _, e := range entries {
				names = append(names, entryName(e))
			}
			value = fmt.Sprintf("%s: %s", strings.Join(names, ", "), formatRankingValue(dim, entries[0].Value))
		}
		fields = append(fields, &discordgo.MessageEmbedField{
			Name:   dimensionLabel(dim),
			Value:  truncate(value),
			Inline: true,
		})
	}

	return &discordgo.MessageEmbed{
		Title:  "Top performers",
		Color:  ColorInfo,
		Fields: fields,
	}
}

// renderAttributes renders damage and fatigue totals per actor
func renderAttributes(actors []*models.ActorAttributeSummary) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title: "Damage and fatigue",
		Color: ColorInfo,
	}
	if len(actors) == 0 {
		embed.Description = "Nothing logged yet."
		return embed
	}

	for _, a := range actors {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name: a.ActorName,
			Value: fmt.Sprintf("HP lost: %s in %s hits\nFP spent: %s in %s uses",
				formatCount(a.DamageTaken), formatCount(a.DamageEvents),
				formatCount(a.FatigueSpent), formatCount(a.FatigueEvents)),
			Inline: true,
		})
	}
	return embed
}

// ordinal formats 1, 2, 3, 11 as 1st, 2nd, 3rd, 11th
func ordinal(n int) string {
	suffix := "th"
	switch n % 100 {
	case 11, 12, 13:
	default:
		switch n % 10 {
		case 1:
			suffix = "st"
		case 2:
			suffix = "nd"
		case 3:
			suffix = "rd"
		}
	}
	return fmt.Sprintf("%d%s", n, suffix)
}
