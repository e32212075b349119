package ui

import (
	"math/rand"

	"github.com/pterm/pterm"

	"github.com/fivetakes/fivetakes/internal/game"
)

// Controller drives full games through the engine: roster, rounds, turn
// selection, forced-row prompts, and recaps.
type Controller struct {
	// Names pre-seats the roster; empty means prompt interactively.
	Names []string
	// Rand seeds the engine's deck shuffles; nil means time-seeded.
	Rand *rand.Rand
	// TargetScore overrides the game-end threshold; 0 means the standard 50.
	TargetScore int
}

// Run plays games until the table declines another.
func (c *Controller) Run() error {
	ShowTitle()
	pterm.Info.Println("Welcome to 5 Takes!")
	WaitForEnter("")

	for {
		if err := c.playGame(); err != nil {
			return err
		}
		if !ConfirmPlayAgain() {
			break
		}
	}
	pterm.Success.Println("Thanks for playing!")
	return nil
}

func (c *Controller) playGame() error {
	names := c.Names
	if len(names) == 0 {
		var err error
		names, err = PromptPlayerNames()
		if err != nil {
			return err
		}
	}

	g, err := game.NewGame(names, game.Config{Rand: c.Rand, TargetScore: c.TargetScore})
	if err != nil {
		return err
	}

	for {
		if err := c.playRound(g); err != nil {
			return err
		}
		over, err := g.CheckGameEnd()
		if err != nil {
			return err
		}
		if over {
			break
		}
		ShowRoundEnd(g.State().RoundNumber, g.Scores())
		WaitForEnter("")
	}

	ShowGameOver(g.State().Winner, g.Scores())
	return nil
}

func (c *Controller) playRound(g *game.Game) error {
	if err := g.StartRound(); err != nil {
		return err
	}
	ClearScreen()
	pterm.DefaultSection.Printfln("Round %d", g.State().RoundNumber)
	WaitForEnter("")

	for !g.RoundOver() {
		if err := c.playTurn(g); err != nil {
			return err
		}
	}
	return nil
}

func (c *Controller) playTurn(g *game.Game) error {
	// Everyone commits a card, one player at a time on the shared device.
	for _, p := range g.Players() {
		ShowPassDevice(p.Name())
		WaitForEnter("")
		for {
			card, err := PromptCardSelection(p, g.Table())
			if err != nil {
				return err
			}
			if err := g.SelectFor(p, card); err != nil {
				pterm.Error.Println(err)
				continue
			}
			break
		}
		ClearScreen()
		pterm.Success.Printfln("%s has selected a card.", p.Name())
		WaitForEnter("")
	}

	// Anyone whose card is too low picks a row before resolution.
	for _, fc := range g.PlayersNeedingForcedChoice() {
		ShowPassDevice(fc.Player.Name())
		WaitForEnter("")
		row, err := PromptRowChoice(fc.Player, fc.Card, g.Table())
		if err != nil {
			return err
		}
		if err := g.SetForcedRowChoice(fc.Player, row); err != nil {
			return err
		}
		ClearScreen()
		pterm.Success.Printfln("%s has chosen a row.", fc.Player.Name())
		WaitForEnter("")
	}

	results, err := g.ResolveTurn()
	if err != nil {
		return err
	}

	ShowTurnResults(results, g.Table())
	ShowScores(g.Scores())
	WaitForEnter("")
	return nil
}
