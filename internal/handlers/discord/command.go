package discord

import (
	"bytes"

	"github.com/bwmarrin/discordgo"
)

// Embed colors
const (
	ColorInfo    = 0x3498db
	ColorSuccess = 0x00ff00
	ColorError   = 0xff0000
)

// CommandHandler defines the interface for Discord command handlers
type CommandHandler interface {
	// GetName returns the command name
	GetName() string

	// GetCommand returns the application command definition
	GetCommand() *discordgo.ApplicationCommand

	// Handle processes a Discord interaction
	Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error
}

// BaseCommand provides common functionality for all commands
type BaseCommand struct {
	Name        string
	Description string
	Options     []*discordgo.ApplicationCommandOption
}

// GetName returns the command name
func (c *BaseCommand) GetName() string {
	return c.Name
}

// GetCommand returns the application command definition
func (c *BaseCommand) GetCommand() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        c.Name,
		Description: c.Description,
		Options:     c.Options,
	}
}

// Attachment is a file sent along with a response
type Attachment struct {
	Name        string
	ContentType string
	Data        []byte
}

// Response is what a command answers with
type Response struct {
	Content     string
	Embeds      []*discordgo.MessageEmbed
	Attachments []*Attachment

	// Ephemeral responses are only shown to the invoking user
	Ephemeral bool
}

// Respond sends a response to an interaction
func Respond(s *discordgo.Session, i *discordgo.InteractionCreate, resp *Response) error {
	data := &discordgo.InteractionResponseData{
		Content: resp.Content,
		Embeds:  resp.Embeds,
	}
	for _, a := range resp.Attachments {
		data.Files = append(data.Files, &discordgo.File{
			Name:        a.Name,
			ContentType: a.ContentType,
			Reader:      bytes.NewReader(a.Data),
		})
	}
	if resp.Ephemeral {
		data.Flags = discordgo.MessageFlagsEphemeral
	}

	return s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: data,
	})
}

// RespondWithError sends an ephemeral error embed to an interaction
func RespondWithError(s *discordgo.Session, i *discordgo.InteractionCreate, errorMessage string) error {
	return Respond(s, i, &Response{
		Embeds: []*discordgo.MessageEmbed{{
			Title:       "Error",
			Description: errorMessage,
			Color:       ColorError,
		}},
		Ephemeral: true,
	})
}

// interactionUser returns the invoking user's ID and display name
func interactionUser(i *discordgo.InteractionCreate) (string, string) {
	if i.Member != nil && i.Member.User != nil {
		return i.Member.User.ID, displayName(i.Member.User, i.Member)
	}
	if i.User != nil {
		return i.User.ID, displayName(i.User, nil)
	}
	return "", ""
}
