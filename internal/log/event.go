package log

// EventType enumerates all observable game events.
type EventType int

const (
	EventRoundStart EventType = iota
	EventSeedRows
	EventDeal
	EventPlay
	EventPlace
	EventWipe
	EventForcedWipe
	EventPenalty
	EventTurnResolved
	EventRoundOver
	EventGameOver
)

func (e EventType) String() string {
	switch e {
	case EventRoundStart:
		return "RoundStart"
	case EventSeedRows:
		return "SeedRows"
	case EventDeal:
		return "Deal"
	case EventPlay:
		return "Play"
	case EventPlace:
		return "Place"
	case EventWipe:
		return "Wipe"
	case EventForcedWipe:
		return "ForcedWipe"
	case EventPenalty:
		return "Penalty"
	case EventTurnResolved:
		return "TurnResolved"
	case EventRoundOver:
		return "RoundOver"
	case EventGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// GameEvent represents a single observable event in a game.
type GameEvent struct {
	Seq     int       // monotonic sequence number
	Round   int       // which round (1-based)
	Turn    int       // which turn within the round (1-based, 0 for round setup)
	Player  string    // acting player's name, empty for table-level events
	Type    EventType // event type
	Card    string    // card text (if applicable)
	Details string    // human-readable detail string
}
