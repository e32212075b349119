package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pterm/pterm"

	"github.com/fivetakes/fivetakes/internal/game"
)

// PromptPlayerNames interactively collects a valid roster: first the
// count, then each name. Re-prompts until the rules accept the input.
func PromptPlayerNames() ([]string, error) {
	var count int
	for {
		raw, err := pterm.DefaultInteractiveTextInput.
			WithDefaultText(fmt.Sprintf("Number of players (%d-%d)", game.MinPlayers, game.MaxPlayers)).
			Show()
		if err != nil {
			return nil, err
		}
		count, err = strconv.Atoi(strings.TrimSpace(raw))
		if err != nil || game.ValidatePlayerCount(count) != nil {
			pterm.Error.Printfln("Enter a number between %d and %d", game.MinPlayers, game.MaxPlayers)
			continue
		}
		break
	}

	names := make([]string, 0, count)
	for i := 0; i < count; i++ {
		for {
			name, err := pterm.DefaultInteractiveTextInput.
				WithDefaultText(fmt.Sprintf("Name for player %d", i+1)).
				Show()
			if err != nil {
				return nil, err
			}
			candidate := append(append([]string(nil), names...), name)
			if err := game.ValidatePlayerNames(candidate); err != nil {
				pterm.Error.Println("Names must be non-empty and unique")
				continue
			}
			names = append(names, strings.TrimSpace(name))
			break
		}
	}
	return names, nil
}

// PromptCardSelection shows the table and the player's hand, then asks
// them to pick one card to commit this turn.
func PromptCardSelection(p *game.Player, t *game.Table) (game.Card, error) {
	ShowTable(t)
	ShowHand(p)

	hand := p.Hand()
	options := make([]string, len(hand))
	for i, c := range hand {
		plural := "s"
		if c.Points() == 1 {
			plural = ""
		}
		options[i] = fmt.Sprintf("%d  (%d point%s)", c.Value(), c.Points(), plural)
	}

	chosen, err := pterm.DefaultInteractiveSelect.
		WithOptions(options).
		WithDefaultText(fmt.Sprintf("%s, choose a card to play", p.Name())).
		WithMaxHeight(len(options)).
		Show()
	if err != nil {
		return game.Card{}, err
	}
	for i, opt := range options {
		if opt == chosen {
			return hand[i], nil
		}
	}
	return game.Card{}, fmt.Errorf("selection %q not in hand", chosen)
}

// PromptRowChoice asks a forced player which row to wipe, previewing each
// row's cards and penalty cost.
func PromptRowChoice(p *game.Player, card game.Card, t *game.Table) (int, error) {
	ShowTable(t)
	pterm.Warning.Printfln("%s, your card %s is lower than every row. Choose a row to take.", p.Name(), card)

	rows := t.Rows()
	options := make([]string, len(rows))
	for i, row := range rows {
		values := make([]string, 0, row.Len())
		for _, c := range row.Cards() {
			values = append(values, strconv.Itoa(c.Value()))
		}
		options[i] = fmt.Sprintf("Row %d: %s  (%d pts)", i+1, strings.Join(values, " "), row.TotalPoints())
	}

	chosen, err := pterm.DefaultInteractiveSelect.
		WithOptions(options).
		WithDefaultText("Row to wipe").
		WithMaxHeight(len(options)).
		Show()
	if err != nil {
		return 0, err
	}
	for i, opt := range options {
		if opt == chosen {
			return i, nil
		}
	}
	return 0, fmt.Errorf("selection %q is not a row", chosen)
}

// ConfirmPlayAgain asks whether to start another game.
func ConfirmPlayAgain() bool {
	again, _ := pterm.DefaultInteractiveConfirm.
		WithDefaultText("Play again?").
		Show()
	return again
}

// WaitForEnter pauses until the player confirms.
func WaitForEnter(prompt string) {
	if prompt == "" {
		prompt = "Press Enter to continue"
	}
	pterm.DefaultInteractiveTextInput.WithDefaultText(prompt).Show()
}
