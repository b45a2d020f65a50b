package discord

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/KirkDiggler/rollstats/internal/models"
	"github.com/KirkDiggler/rollstats/internal/services/attributes"
	"github.com/KirkDiggler/rollstats/internal/services/recorder"
	"github.com/KirkDiggler/rollstats/internal/services/stats"
	"github.com/bwmarrin/discordgo"
)

// Subcommands of /stats
const (
	SubcommandView       = "view"
	SubcommandCompare    = "compare"
	SubcommandRankings   = "rankings"
	SubcommandTop        = "top"
	SubcommandReset      = "reset"
	SubcommandToggle     = "toggle"
	SubcommandExport     = "export"
	SubcommandHP         = "hp"
	SubcommandFP         = "fp"
	SubcommandAttributes = "attributes"
	SubcommandSettings   = "settings"
)

// Option names
const (
	OptionUser      = "user"
	OptionDimension = "dimension"
	OptionFormat    = "format"
	OptionActor     = "actor"
	OptionBefore    = "before"
	OptionAfter     = "after"
	OptionHideGM    = "hide_gm_data"
)

const noDataMessage = "No rolls recorded yet."

// StatsCommand handles the /stats command
type StatsCommand struct {
	BaseCommand
	recorderService  recorder.Service
	statsService     stats.Service
	attributeService attributes.Service
}

// request is one parsed /stats invocation
type request struct {
	Subcommand string
	Options    map[string]*discordgo.ApplicationCommandInteractionDataOption
	UserID     string
	UserName   string
}

func (r *request) stringOption(name string) string {
	if o, ok := r.Options[name]; ok && o.Type == discordgo.ApplicationCommandOptionString {
		return strings.TrimSpace(o.StringValue())
	}
	return ""
}

func (r *request) userOption(name string) string {
	if o, ok := r.Options[name]; ok && o.Type == discordgo.ApplicationCommandOptionUser {
		return o.UserValue(nil).ID
	}
	return ""
}

func (r *request) boolOption(name string) (bool, bool) {
	if o, ok := r.Options[name]; ok && o.Type == discordgo.ApplicationCommandOptionBoolean {
		return o.BoolValue(), true
	}
	return false, false
}

func (r *request) intOption(name string) (int, bool) {
	if o, ok := r.Options[name]; ok && o.Type == discordgo.ApplicationCommandOptionInteger {
		return int(o.IntValue()), true
	}
	return 0, false
}

// NewStatsCommand creates a new stats command handler
func NewStatsCommand(recorderService recorder.Service, statsService stats.Service, attributeService attributes.Service) *StatsCommand {
	dimensionChoices := make([]*discordgo.ApplicationCommandOptionChoice, 0, len(models.RankingDimensions))
	for _, dim := range models.RankingDimensions {
		dimensionChoices = append(dimensionChoices, &discordgo.ApplicationCommandOptionChoice{
			Name:  string(dim),
			Value: string(dim),
		})
	}

	userOption := &discordgo.ApplicationCommandOption{
		Type:        discordgo.ApplicationCommandOptionUser,
		Name:        OptionUser,
		Description: "Whose rolls to use",
	}

	attributeOptions := []*discordgo.ApplicationCommandOption{
		{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        OptionActor,
			Description: "Character name",
			Required:    true,
		},
		{
			Type:        discordgo.ApplicationCommandOptionInteger,
			Name:        OptionBefore,
			Description: "Value before the change",
			Required:    true,
		},
		{
			Type:        discordgo.ApplicationCommandOptionInteger,
			Name:        OptionAfter,
			Description: "Value after the change",
			Required:    true,
		},
	}

	return &StatsCommand{
		BaseCommand: BaseCommand{
			Name:        "stats",
			Description: "3d6 roll statistics",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        SubcommandView,
					Description: "Show roll statistics for everyone or one user",
					Options:     []*discordgo.ApplicationCommandOption{userOption},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        SubcommandCompare,
					Description: "Compare a user against everyone",
					Options:     []*discordgo.ApplicationCommandOption{userOption},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        SubcommandRankings,
					Description: "Show the leaderboards",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        OptionDimension,
							Description: "Only this leaderboard",
							Choices:     dimensionChoices,
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        SubcommandTop,
					Description: "Show the leader of each leaderboard",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        SubcommandReset,
					Description: "Clear every recorded roll, damage and fatigue entry",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        SubcommandToggle,
					Description: "Turn roll recording on or off",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        SubcommandExport,
					Description: "Download statistics as a file",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        OptionFormat,
							Description: "File format",
							Choices: []*discordgo.ApplicationCommandOptionChoice{
								{Name: "csv", Value: string(stats.ExportFormatCSV)},
								{Name: "json", Value: string(stats.ExportFormatJSON)},
							},
						},
						userOption,
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        SubcommandHP,
					Description: "Log a change to a character's hit points",
					Options:     attributeOptions,
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        SubcommandFP,
					Description: "Log a change to a character's fatigue points",
					Options:     attributeOptions,
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        SubcommandAttributes,
					Description: "Show damage taken and fatigue spent",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        OptionActor,
							Description: "Only this character",
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        SubcommandSettings,
					Description: "Change who counts in statistics",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionBoolean,
							Name:        OptionHideGM,
							Description: "Leave GM rolls out of statistics and rankings",
							Required:    true,
						},
					},
				},
			},
		},
		recorderService:  recorderService,
		statsService:     statsService,
		attributeService: attributeService,
	}
}

// Handle processes a Discord interaction for the stats command
func (c *StatsCommand) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	if i.Type != discordgo.InteractionApplicationCommand {
		return nil
	}

	data := i.ApplicationCommandData()
	if data.Name != c.Name || len(data.Options) == 0 {
		return nil
	}

	req := newRequest(data.Options[0])
	req.UserID, req.UserName = interactionUser(i)

	resp, err := c.execute(context.Background(), req)
	if err != nil {
		log.Printf("Error handling /%s %s: %v", c.Name, req.Subcommand, err)
		return RespondWithError(s, i, err.Error())
	}

	return Respond(s, i, resp)
}

func newRequest(sub *discordgo.ApplicationCommandInteractionDataOption) *request {
	req := &request{
		Subcommand: strings.ToLower(sub.Name),
		Options:    make(map[string]*discordgo.ApplicationCommandInteractionDataOption, len(sub.Options)),
	}
	for _, o := range sub.Options {
		req.Options[strings.ToLower(o.Name)] = o
	}
	return req
}

// execute runs a subcommand and builds the response
func (c *StatsCommand) execute(ctx context.Context, req *request) (*Response, error) {
	var (
		resp *Response
		err  error
	)

	switch req.Subcommand {
	case SubcommandView:
		resp, err = c.handleView(ctx, req)
	case SubcommandCompare:
		resp, err = c.handleCompare(ctx, req)
	case SubcommandRankings:
		resp, err = c.handleRankings(ctx, req)
	case SubcommandTop:
		resp, err = c.handleTop(ctx)
	case SubcommandReset:
		resp, err = c.handleReset(ctx)
	case SubcommandToggle:
		resp, err = c.handleToggle(ctx)
	case SubcommandExport:
		resp, err = c.handleExport(ctx, req)
	case SubcommandHP:
		resp, err = c.handleAttributeChange(ctx, req, models.AttributeHP)
	case SubcommandFP:
		resp, err = c.handleAttributeChange(ctx, req, models.AttributeFP)
	case SubcommandAttributes:
		resp, err = c.handleAttributes(ctx, req)
	case SubcommandSettings:
		resp, err = c.handleSettings(ctx, req)
	default:
		return nil, fmt.Errorf("unknown subcommand: %s", req.Subcommand)
	}

	if errors.Is(err, stats.ErrNoData) {
		return &Response{Content: noDataMessage, Ephemeral: true}, nil
	}
	return resp, err
}

func (c *StatsCommand) handleView(ctx context.Context, req *request) (*Response, error) {
	output, err := c.statsService.GetStats(ctx, &stats.GetStatsInput{
		UserID: req.userOption(OptionUser),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get stats: %w", err)
	}

	title := "Roll statistics: everyone"
	if output.UserID != "" {
		if output.Bundle == nil || output.Bundle.N == 0 {
			return &Response{
				Content:   fmt.Sprintf("No rolls recorded for <@%s> yet.", output.UserID),
				Ephemeral: true,
			}, nil
		}
		title = fmt.Sprintf("Roll statistics: %s", output.User)
	}

	return &Response{Embeds: []*discordgo.MessageEmbed{renderBundle(title, output.Bundle)}}, nil
}

func (c *StatsCommand) handleCompare(ctx context.Context, req *request) (*Response, error) {
	userID := req.userOption(OptionUser)
	if userID == "" {
		userID = req.UserID
	}

	output, err := c.statsService.GetComparison(ctx, &stats.GetComparisonInput{UserID: userID})
	if err != nil {
		return nil, fmt.Errorf("failed to compare stats: %w", err)
	}
	if output.Player == nil || output.Player.N == 0 {
		return &Response{
			Content:   fmt.Sprintf("No rolls recorded for <@%s> yet.", userID),
			Ephemeral: true,
		}, nil
	}

	return &Response{Embeds: []*discordgo.MessageEmbed{renderComparison(output)}}, nil
}

func (c *StatsCommand) handleRankings(ctx context.Context, req *request) (*Response, error) {
	output, err := c.statsService.GetPrintableRanking(ctx, &stats.GetPrintableRankingInput{
		Dimension: models.RankingDimension(strings.ToLower(req.stringOption(OptionDimension))),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get rankings: %w", err)
	}

	return &Response{Embeds: []*discordgo.MessageEmbed{renderBoards(output.Boards)}}, nil
}

func (c *StatsCommand) handleTop(ctx context.Context) (*Response, error) {
	output, err := c.statsService.GetTopPerformers(ctx, &stats.GetTopPerformersInput{})
	if err != nil {
		return nil, fmt.Errorf("failed to get top performers: %w", err)
	}

	return &Response{Embeds: []*discordgo.MessageEmbed{renderTop(output.Top)}}, nil
}

// handleReset clears the logs and shows the global bundle read back after
func (c *StatsCommand) handleReset(ctx context.Context) (*Response, error) {
	if _, err := c.recorderService.ResetAll(ctx, &recorder.ResetAllInput{}); err != nil {
		return nil, fmt.Errorf("failed to reset logs: %w", err)
	}

	output, err := c.statsService.GetStats(ctx, &stats.GetStatsInput{})
	if err != nil {
		return nil, fmt.Errorf("failed to get stats: %w", err)
	}

	return &Response{
		Content: "Roll and attribute logs cleared.",
		Embeds:  []*discordgo.MessageEmbed{renderBundle("Roll statistics: everyone", output.Bundle)},
	}, nil
}

func (c *StatsCommand) handleToggle(ctx context.Context) (*Response, error) {
	output, err := c.recorderService.ToggleActive(ctx, &recorder.ToggleActiveInput{})
	if err != nil {
		return nil, fmt.Errorf("failed to toggle recording: %w", err)
	}

	state := "off"
	if output.Active {
		state = "on"
	}
	return &Response{Content: fmt.Sprintf("Roll recording is now %s.", state)}, nil
}

func (c *StatsCommand) handleExport(ctx context.Context, req *request) (*Response, error) {
	output, err := c.statsService.ExportStats(ctx, &stats.ExportStatsInput{
		UserID: req.userOption(OptionUser),
		Format: stats.ExportFormat(strings.ToLower(req.stringOption(OptionFormat))),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to export stats: %w", err)
	}

	return &Response{
		Content: fmt.Sprintf("Exported %s", output.Filename),
		Attachments: []*Attachment{{
			Name:        output.Filename,
			ContentType: output.ContentType,
			Data:        output.Data,
		}},
		Ephemeral: true,
	}, nil
}

func (c *StatsCommand) handleAttributeChange(ctx context.Context, req *request, attr models.Attribute) (*Response, error) {
	actor := req.stringOption(OptionActor)
	before, okBefore := req.intOption(OptionBefore)
	after, okAfter := req.intOption(OptionAfter)
	if actor == "" || !okBefore || !okAfter {
		return nil, errors.New("actor and both values are required")
	}

	output, err := c.attributeService.HandleAttributeChange(ctx, &attributes.HandleAttributeChangeInput{
		ActorID:   actorID(actor),
		ActorName: actor,
		UserID:    req.UserID,
		UserName:  req.UserName,
		Attribute: attr,
		Before:    before,
		After:     after,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to log %s change: %w", attr, err)
	}

	if !output.Recorded {
		return &Response{
			Content:   fmt.Sprintf("%s %s did not go down, nothing logged.", actor, attr),
			Ephemeral: true,
		}, nil
	}

	var content string
	switch {
	case output.Damage != nil:
		content = fmt.Sprintf("%s took %s damage (HP %d → %d).", actor, formatCount(output.Damage.DamageTaken), before, after)
	case output.Fatigue != nil:
		content = fmt.Sprintf("%s spent %s fatigue (FP %d → %d).", actor, formatCount(output.Fatigue.FatigueSpent), before, after)
	}
	return &Response{Content: content}, nil
}

func (c *StatsCommand) handleAttributes(ctx context.Context, req *request) (*Response, error) {
	actor := req.stringOption(OptionActor)

	input := &attributes.SummarizeInput{}
	if actor != "" {
		input.ActorID = actorID(actor)
	}

	output, err := c.attributeService.Summarize(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("failed to summarize attributes: %w", err)
	}

	return &Response{Embeds: []*discordgo.MessageEmbed{renderAttributes(output.Actors)}}, nil
}

func (c *StatsCommand) handleSettings(ctx context.Context, req *request) (*Response, error) {
	hide, ok := req.boolOption(OptionHideGM)
	if !ok {
		return nil, fmt.Errorf("%s is required", OptionHideGM)
	}

	output, err := c.statsService.SetHideGMData(ctx, &stats.SetHideGMDataInput{HideGMData: hide})
	if err != nil {
		return nil, fmt.Errorf("failed to save settings: %w", err)
	}

	if output.Settings.HideGMData {
		return &Response{Content: "GM rolls are now left out of statistics."}, nil
	}
	return &Response{Content: "GM rolls are now included in statistics."}, nil
}

// actorID keys characters by name, since Discord has no character sheets
func actorID(name string) string {
	return strings.ToLower(strings.Join(strings.Fields(name), " "))
}
