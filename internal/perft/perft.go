// Package perft implements a node-counting walk of the action enumeration
// tree, used to regression-test and benchmark the enumerator.
package perft

import "github.com/pijersi-engine/pijersi"

// Result accumulates the counters printed by the verbose perft command.
type Result struct {
	Nodes    int
	Captures int
}

// Count walks the action tree depth levels deep from g and returns the
// number of leaf nodes reached.
func Count(g *pijersi.GameState, depth int) int {
	if depth == 1 {
		return g.LegalActions.Len
	}

	nodes := 0
	for _, a := range g.GetActions() {
		nodes += Count(g.ApplyAction(a), depth-1)
	}
	return nodes
}

// CountVerbose follows Count but also adds to r.Captures one for every
// capturing action it walks through (an action whose two sub-moves both
// capture still counts once).
func CountVerbose(g *pijersi.GameState, depth int, r *Result) int {
	if depth == 1 {
		for _, a := range g.GetActions() {
			if a.CaptureCode != 0 {
				r.Captures++
			}
		}
		return g.LegalActions.Len
	}

	nodes := 0
	for _, a := range g.GetActions() {
		if a.CaptureCode != 0 {
			r.Captures++
		}
		nodes += CountVerbose(g.ApplyAction(a), depth-1, r)
	}
	return nodes
}
