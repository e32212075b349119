package log

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryLoggerAssignsSequence(t *testing.T) {
	l := NewMemoryLogger()
	assert.Empty(t, l.Events())
	assert.Equal(t, GameEvent{}, l.LastEvent())

	l.Log(NewRoundStartEvent(1))
	l.Log(NewDealEvent(1, "Alice", 10))
	l.Log(NewDealEvent(1, "Bob", 10))

	events := l.Events()
	require.Len(t, events, 3)
	for i, e := range events {
		assert.Equal(t, i+1, e.Seq)
	}
	assert.Equal(t, EventDeal, l.LastEvent().Type)
	assert.Equal(t, "Bob", l.LastEvent().Player)
}

func TestMemoryLoggerEventsOfType(t *testing.T) {
	l := NewMemoryLogger()
	l.Log(NewRoundStartEvent(1))
	l.Log(NewPlayEvent(1, 1, "Alice", "[15]"))
	l.Log(NewPlayEvent(1, 1, "Bob", "[25]"))
	l.Log(NewTurnResolvedEvent(1, 1))

	plays := l.EventsOfType(EventPlay)
	require.Len(t, plays, 2)
	assert.Equal(t, "Alice", plays[0].Player)
	assert.Equal(t, "Bob", plays[1].Player)

	assert.Empty(t, l.EventsOfType(EventGameOver))
}

func TestTextLoggerWritesLines(t *testing.T) {
	var sb strings.Builder
	l := NewTextLogger(&sb)
	l.Log(NewPlaceEvent(2, 3, "Alice", "[15]", 0))
	l.Log(NewPenaltyEvent(2, 3, "Bob", 3, 3, 12))

	lines := strings.Split(strings.TrimRight(sb.String(), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "[15] → Row 1")
	assert.Contains(t, lines[1], "Bob takes 3 pts (round 3, total 12)")

	// TextLogger retains the memory view as well.
	assert.Len(t, l.Events(), 2)
	assert.Equal(t, 2, l.LastEvent().Seq)
}

func TestFormatEvent(t *testing.T) {
	e := NewWipeEvent(1, 4, "Carol", 2, []string{"[10]", "[11]"}, 8)
	line := FormatEvent(e)
	assert.True(t, strings.HasPrefix(line, "R1  T4 "), "got %q", line)
	assert.Contains(t, line, "Wipe")
	assert.Contains(t, line, "Row 3 fills and wipes [10] [11] (8 pts to Carol)")
}

func TestFormatAll(t *testing.T) {
	assert.Equal(t, "", FormatAll(nil))

	events := []GameEvent{
		NewRoundStartEvent(1),
		NewGameOverEvent(3, "Alice"),
	}
	out := FormatAll(events)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "=== Round 1 ===")
	assert.Contains(t, lines[1], "Alice wins!")
}

func TestEventTypeString(t *testing.T) {
	assert.Equal(t, "ForcedWipe", EventForcedWipe.String())
	assert.Equal(t, "Unknown", EventType(99).String())
}
