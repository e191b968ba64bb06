package discord

import (
	"context"
	"errors"
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/ohhell/internal/announcer"
	"github.com/KirkDiggler/ohhell/internal/models"
)

type recordingSender struct {
	channelID string
	embed     *discordgo.MessageEmbed
	err       error
}

func (r *recordingSender) ChannelMessageSendEmbed(channelID string, embed *discordgo.MessageEmbed, _ ...discordgo.RequestOption) (*discordgo.Message, error) {
	r.channelID = channelID
	r.embed = embed
	return &discordgo.Message{}, r.err
}

func standings() []*models.Player {
	alice := models.NewPlayer("Alice")
	alice.AddHandResult(1, 1, 11)
	bob := models.NewPlayer("Bob")
	bob.AddHandResult(1, 0, 0)
	return []*models.Player{alice, bob}
}

func TestNewValidatesConfig(t *testing.T) {
	_, err := New(nil)
	assert.Error(t, err)

	_, err = New(&Config{ChannelID: "c"})
	assert.Error(t, err)

	_, err = New(&Config{Token: "t"})
	assert.Error(t, err)

	a, err := New(&Config{Token: "t", ChannelID: "c"})
	require.NoError(t, err)
	assert.Equal(t, "c", a.channelID)
}

func TestAnnounceGameComplete(t *testing.T) {
	sender := &recordingSender{}
	a := newAnnouncer(sender, "chan-1", nil)

	err := a.AnnounceGameComplete(context.Background(), &announcer.AnnounceGameCompleteInput{
		TournamentName: "Summer Cup",
		SheetName:      "25-03-14#20-15-00",
		Title:          "Game Over",
		Message:        "Alice wins with 11 points!",
		Standings:      standings(),
	})
	require.NoError(t, err)

	assert.Equal(t, "chan-1", sender.channelID)
	require.NotNil(t, sender.embed)
	assert.Equal(t, "Game Over", sender.embed.Title)
	assert.Equal(t, "Alice wins with 11 points!", sender.embed.Description)
	require.Len(t, sender.embed.Fields, 3)
	assert.Equal(t, "1. **Alice** 11 🎯\n2. **Bob** 0", sender.embed.Fields[0].Value)
	assert.Equal(t, "Summer Cup", sender.embed.Fields[1].Value)
}

func TestAnnounceGameCompleteFailure(t *testing.T) {
	sender := &recordingSender{err: errors.New("missing access")}
	a := newAnnouncer(sender, "chan-1", nil)

	err := a.AnnounceGameComplete(context.Background(), &announcer.AnnounceGameCompleteInput{Standings: standings()})
	assert.ErrorContains(t, err, "missing access")

	assert.Error(t, a.AnnounceGameComplete(context.Background(), nil))
}

func TestRenderWithoutOptionalFields(t *testing.T) {
	embed := renderGameComplete(&announcer.AnnounceGameCompleteInput{Standings: standings()})
	assert.Len(t, embed.Fields, 1)
	assert.Equal(t, colorGold, embed.Color)
}
