// Package discord posts finished games to a Discord channel.
package discord

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/KirkDiggler/ohhell/internal/announcer"
	"github.com/KirkDiggler/ohhell/internal/logger"
)

const (
	colorGold   = 0xf1c40f
	maxEmbedLen = 1024
)

// messageSender is the part of discordgo.Session the announcer uses
type messageSender interface {
	ChannelMessageSendEmbed(channelID string, embed *discordgo.MessageEmbed, options ...discordgo.RequestOption) (*discordgo.Message, error)
}

// Config holds the configuration for the announcer
type Config struct {
	// Discord bot token
	Token string

	// ChannelID receives the announcements
	ChannelID string

	// Logger defaults to a discarding logger
	Logger *slog.Logger
}

// Announcer posts game results as embeds
type Announcer struct {
	sender    messageSender
	channelID string
	log       *slog.Logger
}

// New creates a Discord announcer. Only the REST API is used, so no gateway
// connection is opened.
func New(cfg *Config) (*Announcer, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.Token == "" {
		return nil, errors.New("token cannot be empty")
	}

	if cfg.ChannelID == "" {
		return nil, errors.New("channel ID cannot be empty")
	}

	session, err := discordgo.New("Bot " + cfg.Token)
	if err != nil {
		return nil, fmt.Errorf("failed to create Discord session: %w", err)
	}

	return newAnnouncer(session, cfg.ChannelID, cfg.Logger), nil
}

func newAnnouncer(sender messageSender, channelID string, log *slog.Logger) *Announcer {
	if log == nil {
		log = logger.Discard()
	}
	return &Announcer{
		sender:    sender,
		channelID: channelID,
		log:       log,
	}
}

// AnnounceGameComplete posts the final standings
func (a *Announcer) AnnounceGameComplete(ctx context.Context, input *announcer.AnnounceGameCompleteInput) error {
	if input == nil {
		return errors.New("input cannot be nil")
	}

	embed := renderGameComplete(input)
	if _, err := a.sender.ChannelMessageSendEmbed(a.channelID, embed, discordgo.WithContext(ctx)); err != nil {
		return fmt.Errorf("failed to post game result: %w", err)
	}

	a.log.Info("announced game", "sheet", input.SheetName, "channel", a.channelID)
	return nil
}

// renderGameComplete builds the standings embed
func renderGameComplete(input *announcer.AnnounceGameCompleteInput) *discordgo.MessageEmbed {
	var b strings.Builder
	for i, p := range input.Standings {
		line := fmt.Sprintf("%d. **%s** %d", i+1, p.Name, p.TotalScore)
		if p.Invicto && len(p.Hands) > 0 {
			line += " 🎯"
		}
		if b.Len()+len(line)+1 > maxEmbedLen {
			break
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	fields := []*discordgo.MessageEmbedField{
		{
			Name:   "Standings",
			Value:  strings.TrimSuffix(b.String(), "\n"),
			Inline: false,
		},
	}

	if input.TournamentName != "" {
		fields = append(fields, &discordgo.MessageEmbedField{
			Name:   "Tournament",
			Value:  input.TournamentName,
			Inline: true,
		})
	}
	if input.SheetName != "" {
		fields = append(fields, &discordgo.MessageEmbedField{
			Name:   "Sheet",
			Value:  input.SheetName,
			Inline: true,
		})
	}

	return &discordgo.MessageEmbed{
		Title:       input.Title,
		Description: input.Message,
		Color:       colorGold,
		Fields:      fields,
	}
}
