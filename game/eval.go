package game

// Heuristic weights
const (
	CenterWeight       = 3    // Per disc of the evaluated player in the centre column
	OpponentThreeScore = -500 // Opponent is one move from completing the window
	ThreeScore         = 50   // Evaluated player is one move from completing the window
	OpponentTwoScore   = -50  // Opponent is building a threat
	DiscWeight         = 5    // Density signal for every other window
)

// Evaluate scores a board from player's perspective, higher being better for player.
// It must not modify the board.
type Evaluate func(b *Board, player Player) int

var _ Evaluate = EvaluateWindows

// EvaluateWindows adds a centre column bonus to the score of every in-bounds window.
// Runs of fewer than four cells at the edges of the grid are not scored.
func EvaluateWindows(b *Board, player Player) int {
	score := 0

	center := Columns / 2
	for row := 0; row < Rows; row++ {
		if b[row][center] == player {
			score += CenterWeight
		}
	}

	b.EachWindow(func(w Window) {
		score += ScoreWindow(w, player)
	})
	return score
}

// ScoreWindow classifies a single window by its counts of player, opponent and empty cells
func ScoreWindow(w Window, player Player) int {
	own := w.Count(player)
	opponent := w.Count(player.Opponent())
	empty := w.Count(Empty)

	switch {
	case opponent == 3 && empty == 1:
		return OpponentThreeScore
	case own == 3 && empty == 1:
		return ThreeScore
	case opponent == 2 && empty == 2:
		return OpponentTwoScore
	default:
		return DiscWeight*own - DiscWeight*opponent
	}
}
