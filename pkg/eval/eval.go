// Package eval scores Othello positions from one player's point of view.
package eval

import "github.com/IlikeChooros/go-othello/pkg/othello"

// Linear weights of the heuristic components, coin parity should stay the largest
type Weights struct {
	Parity    float64
	Mobility  float64
	Stability float64
}

var DefaultWeights = Weights{Parity: 0.40, Mobility: 0.25, Stability: 0.35}

// Weights used by ComputeHeuristic
var HeuristicWeights Weights = DefaultWeights

// Set custom heuristic weights, negative values are clamped to 0
func SetWeights(w Weights) {
	HeuristicWeights = Weights{
		Parity:    max(0, w.Parity),
		Mobility:  max(0, w.Mobility),
		Stability: max(0, w.Stability),
	}
}

// Discs of 'color' minus discs of the opponent. Exact score at terminal
// positions, rough estimate everywhere else.
func ComputeUtility(b othello.Board, color othello.Color) float64 {
	dark, light := othello.Score(b)
	switch color {
	case othello.Dark:
		return float64(dark - light)
	case othello.Light:
		return float64(light - dark)
	}
	othello.MustColor(color)
	return 0
}

// Coin parity, mobility and stability combined
func ComputeHeuristic(b othello.Board, color othello.Color) float64 {
	oppo := othello.Opponent(color)
	mobility := float64(othello.CountMoves(b, color) - othello.CountMoves(b, oppo))
	stability := CountStableDiscs(b, color) - CountStableDiscs(b, oppo)
	parity := ComputeUtility(b, color)

	w := HeuristicWeights
	return w.Parity*parity + w.Mobility*mobility + w.Stability*stability
}
