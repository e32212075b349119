package game

import "errors"

// Sentinel errors for the engine. Every failure path wraps one of these with
// fmt.Errorf("...: %w", ...) so callers can branch with errors.Is.
var (
	// Construction errors
	ErrOutOfRange  = errors.New("card value out of range")
	ErrPlayerCount = errors.New("invalid player count")
	ErrPlayerName  = errors.New("invalid player name")
	ErrNoPlayers   = errors.New("no players")

	// State-precondition errors
	ErrIllegalPlacement = errors.New("illegal placement")
	ErrNoValidRow       = errors.New("no valid row for card")
	ErrInvalidRowIndex  = errors.New("invalid row index")
	ErrNotInHand        = errors.New("card not in hand")
	ErrAlreadySelected  = errors.New("card already selected this turn")
	ErrNoSelection      = errors.New("no card selected")
	ErrNegativePoints   = errors.New("negative penalty points")
	ErrNotAllSelected   = errors.New("not all players have selected")

	// Exhaustion errors
	ErrDeckDepleted      = errors.New("deck is empty")
	ErrInsufficientCards = errors.New("not enough cards remaining")
)
