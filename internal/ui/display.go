// Package ui is the terminal front end: pterm rendering and interactive
// prompts around the engine. It holds no game rules; it feeds selections
// and forced-row choices into the engine and renders what comes back.
package ui

import (
	"fmt"

	"github.com/pterm/pterm"
	"github.com/pterm/pterm/putils"

	"github.com/fivetakes/fivetakes/internal/game"
)

// ClearScreen wipes the terminal. Used between players for the
// pass-the-device privacy flow.
func ClearScreen() {
	pterm.Print("\033[H\033[2J")
}

// ShowTitle renders the game banner.
func ShowTitle() {
	ClearScreen()
	title, err := pterm.DefaultBigText.WithLetters(
		putils.LettersFromStringWithStyle("5 ", pterm.FgLightRed.ToStyle()),
		putils.LettersFromStringWithStyle("TAKES", pterm.FgLightCyan.ToStyle()),
	).Srender()
	if err == nil {
		pterm.Print(title)
	}
	pterm.Println()
}

// cardLabel renders a card colored by its penalty weight.
func cardLabel(c game.Card) string {
	text := fmt.Sprintf(" %d ", c.Value())
	switch points := c.Points(); {
	case points >= 5:
		return pterm.NewStyle(pterm.FgLightYellow, pterm.BgRed, pterm.Bold).Sprint(text)
	case points >= 3:
		return pterm.NewStyle(pterm.FgBlack, pterm.BgYellow).Sprint(text)
	case points >= 2:
		return pterm.NewStyle(pterm.FgBlack, pterm.BgGreen).Sprint(text)
	default:
		return pterm.NewStyle(pterm.FgWhite, pterm.BgBlue).Sprint(text)
	}
}

// ShowTable renders all four rows with per-row wipe cost.
func ShowTable(t *game.Table) {
	if t == nil {
		return
	}
	pterm.DefaultSection.WithLevel(2).Println("Table")
	for i, row := range t.Rows() {
		line := pterm.FgLightWhite.Sprintf("Row %d: ", i+1)
		for _, c := range row.Cards() {
			line += cardLabel(c) + " "
		}
		line += pterm.FgGray.Sprintf(" (%d pts)", row.TotalPoints())
		pterm.Println(line)
	}
	pterm.Println()
}

// ShowHand renders a player's hand in ascending order with point values.
func ShowHand(p *game.Player) {
	pterm.FgLightMagenta.Printfln("%s's hand:", p.Name())
	hand := p.Hand()
	if len(hand) == 0 {
		pterm.Println("  (empty)")
		return
	}
	line := "  "
	for _, c := range hand {
		line += cardLabel(c) + " "
	}
	pterm.Println(line)
	pterm.Println()
}

// ShowScores renders the scoreboard.
func ShowScores(scores []game.Score) {
	data := pterm.TableData{{"Player", "Round", "Total"}}
	for _, s := range scores {
		data = append(data, []string{s.Name, fmt.Sprintf("%d", s.RoundScore), fmt.Sprintf("%d", s.TotalScore)})
	}
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
	pterm.Println()
}

// ShowTurnResults renders the recap of a resolved turn in action order.
func ShowTurnResults(results []game.TurnResult, t *game.Table) {
	ClearScreen()
	pterm.DefaultSection.WithLevel(2).Println("Turn results")
	for _, r := range results {
		if len(r.Wiped) == 0 {
			pterm.Info.Printfln("%s played %s onto row %d", r.Player.Name(), cardLabel(r.Card), r.RowIndex+1)
			continue
		}
		wiped := ""
		for _, c := range r.Wiped {
			wiped += cardLabel(c) + " "
		}
		pterm.Warning.Printfln("%s played %s, wiped row %d: %s(+%d pts)",
			r.Player.Name(), cardLabel(r.Card), r.RowIndex+1, wiped, game.PenaltyPoints(r.Wiped))
	}
	pterm.Println()
	ShowTable(t)
}

// ShowPassDevice prompts for the device to be handed to the named player.
func ShowPassDevice(name string) {
	ClearScreen()
	pterm.DefaultBox.
		WithTitle(pterm.LightYellow("| PASS THE DEVICE |")).
		WithTitleTopCenter().
		WithLeftPadding(4).
		WithRightPadding(4).
		Printfln("Hand the device to %s.\nEveryone else, look away!", pterm.LightCyan(name))
	pterm.Println()
}

// ShowRoundEnd renders the between-rounds scoreboard.
func ShowRoundEnd(round int, scores []game.Score) {
	ClearScreen()
	pterm.DefaultSection.Printfln("Round %d complete", round)
	ShowScores(scores)
}

// ShowGameOver renders the winner and final standings.
func ShowGameOver(winner *game.Player, scores []game.Score) {
	ClearScreen()
	pterm.DefaultBox.
		WithTitle(pterm.LightGreen("| GAME OVER |")).
		WithTitleTopCenter().
		WithLeftPadding(4).
		WithRightPadding(4).
		Printfln("%s wins with %d points!", pterm.LightCyan(winner.Name()), winner.TotalScore())
	pterm.Println()
	ShowScores(scores)
}
