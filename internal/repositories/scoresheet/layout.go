package scoresheet

import "github.com/KirkDiggler/ohhell/internal/sheets"

// Rows of the game worksheet
const (
	titleRow       = 1
	tournamentRow  = 2
	handCountRow   = 3
	trickCountRow  = 4
	playerNameRow  = 6
	totalScoreRow  = 7
	headerRow      = 8
	firstHandRow   = 9
	firstPlayerCol = 2

	// columnsPerPlayer holds BID, WON and SCORE
	columnsPerPlayer = 3
)

// Layout is the styling of a game worksheet
type Layout struct {
	GameTitle      sheets.Style
	TournamentName sheets.Style
	PlayerNames    sheets.Style
	TotalScores    sheets.Style
	Headers        sheets.Style

	// Column widths in pixels
	CardsDealtWidth int
	BidWidth        int
	WonWidth        int
	ScoreWidth      int
}

// DefaultLayout is the styling used when none is configured
var DefaultLayout = Layout{
	GameTitle: sheets.Style{
		FontSize:   14,
		Bold:       true,
		Horizontal: sheets.AlignLeft,
		Vertical:   sheets.AlignMiddle,
	},
	TournamentName: sheets.Style{
		FontSize:   12,
		Italic:     true,
		Horizontal: sheets.AlignLeft,
		Vertical:   sheets.AlignMiddle,
	},
	PlayerNames: sheets.Style{
		FontSize:   12,
		Bold:       true,
		Horizontal: sheets.AlignCenter,
		Vertical:   sheets.AlignMiddle,
	},
	TotalScores: sheets.Style{
		FontSize:   12,
		Bold:       true,
		Horizontal: sheets.AlignCenter,
		Vertical:   sheets.AlignMiddle,
	},
	Headers: sheets.Style{
		FontSize:   9,
		Bold:       true,
		Horizontal: sheets.AlignCenter,
		Vertical:   sheets.AlignMiddle,
	},
	CardsDealtWidth: 40,
	BidWidth:        40,
	WonWidth:        40,
	ScoreWidth:      40,
}

// playerCol is the first column of a player's block, 1-based
func playerCol(i int) int {
	return firstPlayerCol + i*columnsPerPlayer
}

// lastCol is the last column used by n players
func lastCol(players int) int {
	return firstPlayerCol + players*columnsPerPlayer - 1
}

// directives builds the merges, formats and widths of a game worksheet
func (l Layout) directives(sheet string, players int) []sheets.Directive {
	directives := []sheets.Directive{}

	for i := 0; i < players; i++ {
		col := playerCol(i)
		directives = append(directives,
			sheets.Merge{Range: sheets.Row(sheet, playerNameRow, col, col+columnsPerPlayer-1)},
			sheets.Merge{Range: sheets.Row(sheet, totalScoreRow, col, col+columnsPerPlayer-1)},
		)
	}

	last := lastCol(players)
	directives = append(directives,
		sheets.Format{Range: sheets.Cell(sheet, titleRow, 1), Style: l.GameTitle},
		sheets.Format{Range: sheets.Cell(sheet, tournamentRow, 1), Style: l.TournamentName},
		sheets.Format{Range: sheets.Row(sheet, playerNameRow, firstPlayerCol, last), Style: l.PlayerNames},
		sheets.Format{Range: sheets.Row(sheet, totalScoreRow, firstPlayerCol, last), Style: l.TotalScores},
		sheets.Format{Range: sheets.Row(sheet, headerRow, firstPlayerCol, last), Style: l.Headers},
		sheets.ColumnWidth{Start: 0, End: 1, Pixels: l.CardsDealtWidth},
	)

	for i := 0; i < players; i++ {
		base := playerCol(i) - 1
		directives = append(directives,
			sheets.ColumnWidth{Start: base, End: base + 1, Pixels: l.BidWidth},
			sheets.ColumnWidth{Start: base + 1, End: base + 2, Pixels: l.WonWidth},
			sheets.ColumnWidth{Start: base + 2, End: base + 3, Pixels: l.ScoreWidth},
		)
	}
	return directives
}
