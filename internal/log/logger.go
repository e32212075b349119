package log

import (
	"fmt"
	"io"
	"strings"
)

// EventLogger is the interface for recording game events.
type EventLogger interface {
	Log(event GameEvent)
	Events() []GameEvent
}

// --- MemoryLogger: stores events in memory for recaps and test assertions ---

type MemoryLogger struct {
	events []GameEvent
	seq    int
}

func NewMemoryLogger() *MemoryLogger {
	return &MemoryLogger{}
}

func (l *MemoryLogger) Log(event GameEvent) {
	l.seq++
	event.Seq = l.seq
	l.events = append(l.events, event)
}

func (l *MemoryLogger) Events() []GameEvent {
	return l.events
}

// EventsOfType returns all events matching the given type.
func (l *MemoryLogger) EventsOfType(t EventType) []GameEvent {
	var result []GameEvent
	for _, e := range l.events {
		if e.Type == t {
			result = append(result, e)
		}
	}
	return result
}

// LastEvent returns the most recent event, or a zero event if none.
func (l *MemoryLogger) LastEvent() GameEvent {
	if len(l.events) == 0 {
		return GameEvent{}
	}
	return l.events[len(l.events)-1]
}

// --- TextLogger: writes human-readable lines to an io.Writer ---

type TextLogger struct {
	MemoryLogger
	w io.Writer
}

func NewTextLogger(w io.Writer) *TextLogger {
	return &TextLogger{w: w}
}

func (l *TextLogger) Log(event GameEvent) {
	l.MemoryLogger.Log(event)
	fmt.Fprintln(l.w, FormatEvent(event))
}

// --- Formatting ---

// FormatEvent formats a single event as a human-readable line.
func FormatEvent(e GameEvent) string {
	return fmt.Sprintf("R%-2d T%-2d %-13s| %s", e.Round, e.Turn, e.Type, e.Details)
}

// FormatAll formats all events as a multi-line string.
func FormatAll(events []GameEvent) string {
	var sb strings.Builder
	for _, e := range events {
		sb.WriteString(FormatEvent(e))
		sb.WriteByte('\n')
	}
	return sb.String()
}

// --- Helper constructors for common events ---

func NewRoundStartEvent(round int) GameEvent {
	return GameEvent{
		Round:   round,
		Type:    EventRoundStart,
		Details: fmt.Sprintf("=== Round %d ===", round),
	}
}

func NewSeedRowsEvent(round int, seeds []string) GameEvent {
	return GameEvent{
		Round:   round,
		Type:    EventSeedRows,
		Details: fmt.Sprintf("table seeded with %s", strings.Join(seeds, " ")),
	}
}

func NewDealEvent(round int, player string, count int) GameEvent {
	return GameEvent{
		Round:   round,
		Player:  player,
		Type:    EventDeal,
		Details: fmt.Sprintf("%s dealt %d cards", player, count),
	}
}

func NewPlayEvent(round, turn int, player, card string) GameEvent {
	return GameEvent{
		Round:   round,
		Turn:    turn,
		Player:  player,
		Type:    EventPlay,
		Card:    card,
		Details: fmt.Sprintf("%s plays %s", player, card),
	}
}

func NewPlaceEvent(round, turn int, player, card string, row int) GameEvent {
	return GameEvent{
		Round:   round,
		Turn:    turn,
		Player:  player,
		Type:    EventPlace,
		Card:    card,
		Details: fmt.Sprintf("%s → Row %d", card, row+1),
	}
}

func NewWipeEvent(round, turn int, player string, row int, wiped []string, points int) GameEvent {
	return GameEvent{
		Round:   round,
		Turn:    turn,
		Player:  player,
		Type:    EventWipe,
		Details: fmt.Sprintf("Row %d fills and wipes %s (%d pts to %s)", row+1, strings.Join(wiped, " "), points, player),
	}
}

func NewForcedWipeEvent(round, turn int, player, card string, row int, wiped []string, points int) GameEvent {
	return GameEvent{
		Round:   round,
		Turn:    turn,
		Player:  player,
		Type:    EventForcedWipe,
		Card:    card,
		Details: fmt.Sprintf("%s too low; %s wipes Row %d: %s (%d pts)", card, player, row+1, strings.Join(wiped, " "), points),
	}
}

func NewPenaltyEvent(round, turn int, player string, points, roundScore, totalScore int) GameEvent {
	return GameEvent{
		Round:   round,
		Turn:    turn,
		Player:  player,
		Type:    EventPenalty,
		Details: fmt.Sprintf("%s takes %d pts (round %d, total %d)", player, points, roundScore, totalScore),
	}
}

func NewTurnResolvedEvent(round, turn int) GameEvent {
	return GameEvent{
		Round:   round,
		Turn:    turn,
		Type:    EventTurnResolved,
		Details: fmt.Sprintf("turn %d resolved", turn),
	}
}

func NewRoundOverEvent(round int) GameEvent {
	return GameEvent{
		Round:   round,
		Type:    EventRoundOver,
		Details: fmt.Sprintf("round %d over", round),
	}
}

func NewGameOverEvent(round int, winner string) GameEvent {
	return GameEvent{
		Round:   round,
		Type:    EventGameOver,
		Details: fmt.Sprintf("%s wins!", winner),
	}
}
