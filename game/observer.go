package game

import "github.com/rs/zerolog"

// Observer receives board mutations. Implementations must not call back into the Game.
type Observer interface {
	// MovePlayed reports a disc dropped at (row, col) and the outcome the drop produced
	MovePlayed(col, row int, player Player, outcome Outcome)
	MoveUndone(col, row int, player Player)
}

// LogObserver writes every board mutation to a zerolog logger at trace level
type LogObserver struct {
	Logger zerolog.Logger
}

func NewLogObserver(logger zerolog.Logger) *LogObserver {
	return &LogObserver{Logger: logger}
}

func (o *LogObserver) MovePlayed(col, row int, player Player, outcome Outcome) {
	event := o.Logger.Trace().
		Stringer("player", player).
		Int("column", col).
		Int("row", row)
	switch outcome.Status {
	case Win:
		event.Msgf("winning move by %s", player)
	case Draw:
		event.Msg("the game is a draw")
	default:
		event.Msg("disc placed")
	}
}

func (o *LogObserver) MoveUndone(col, row int, player Player) {
	o.Logger.Trace().
		Stringer("player", player).
		Int("column", col).
		Int("row", row).
		Msg("disc removed")
}
