package eval

import "github.com/IlikeChooros/go-othello/pkg/othello"

const (
	edgeBonus   = 0.5
	cornerBonus = 1.0
	stableBonus = 1.0
)

// Weighted count of the player's discs that look safe from flipping.
//
// Only the top row and the left column earn the edge bonus. Three corners
// (top-left, top-right, bottom-left) get the corner bonus on top of it.
// A disc earns the stable bonus when no direction reaches an opponent disc
// before an empty cell or the border; that's a local approximation, not a proof.
func CountStableDiscs(b othello.Board, player othello.Color) float64 {
	other := othello.Opponent(player)
	last := b.Size() - 1
	stable := 0.0

	for row := range b.Size() {
		for col := range b.Size() {
			if b.At(col, row) != player {
				continue
			}

			if row == 0 {
				stable += edgeBonus
				if col == 0 || col == last {
					stable += cornerBonus
				}
			} else if col == 0 {
				stable += edgeBonus
				if row == last {
					stable += cornerBonus
				}
			}

			if !exposed(b, col, row, other) {
				stable += stableBonus
			}
		}
	}
	return stable
}

// Whether walking outward from (col, row) meets an 'other' disc before an
// empty cell or the border, in any direction
func exposed(b othello.Board, col, row int, other othello.Color) bool {
	for _, d := range othello.Directions() {
		c, r := col+d[0], row+d[1]
		for b.InBounds(c, r) {
			cell := b.At(c, r)
			if cell == othello.Empty {
				break
			}
			if cell == other {
				return true
			}
			c += d[0]
			r += d[1]
		}
	}
	return false
}
