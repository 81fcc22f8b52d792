/*
zobrist.go gives every GameState a cheap, incrementally-comparable hash
key over pijersi's 45-cell/128-code board, for callers that need position
identity — transposition tables, repetition books, opening-book lookups —
without comparing boards cell by cell.
*/

package pijersi

import "math/rand/v2"

// zobristKeys[hex][code] is an independent random key for "cell hex holds
// code". zobristPlayer holds the side-to-move key. Built once in init()
// with a fixed seed so hashes are reproducible across runs.
var (
	zobristKeys   [NumHexes][hexCodeBase]uint64
	zobristPlayer [2]uint64
)

func buildZobristKeys() {
	rng := rand.New(rand.NewPCG(0x706a6572, 0x73692121)) // fixed seed: reproducible hashes
	for hex := 0; hex < NumHexes; hex++ {
		for code := 0; code < hexCodeBase; code++ {
			zobristKeys[hex][code] = rng.Uint64()
		}
	}
	zobristPlayer[White] = rng.Uint64()
	zobristPlayer[Black] = rng.Uint64()
}

// Hash returns a Zobrist-style hash of the position: the board contents
// plus whose turn it is. Two GameStates with the same hash are, outside of
// an astronomically unlikely collision, the same position.
func (g *GameState) Hash() uint64 {
	var h uint64
	for hex := 0; hex < NumHexes; hex++ {
		h ^= zobristKeys[hex][g.Board[hex]]
	}
	h ^= zobristPlayer[g.Player]
	return h
}
