/*
hexstate.go defines the per-cell content of the board (HexState) and its
bijective 8-bit encoding. The tagged-variant type is the domain model; the
7-bit code in [0,128) is the dense wire/key form used to index the
precomputed transition tables in tables.go.
*/

package pijersi

// Player is a closed enum of the two sides.
type Player int

const (
	White Player = iota
	Black
)

// Opponent returns the other player.
func (p Player) Opponent() Player { return p ^ 1 }

func (p Player) String() string {
	if p == White {
		return "white"
	}
	return "black"
}

// CubeSort is a closed enum of the four cube sorts. ROCK beats SCISSORS,
// SCISSORS beats PAPER, PAPER beats ROCK; WISE beats nothing and is beaten
// by nothing.
type CubeSort int

const (
	Rock CubeSort = iota
	Paper
	Scissors
	Wise
)

// Beats reports whether cube sort a captures cube sort b under the
// rock-paper-scissors relation. WISE never beats and is never beaten by it.
func (a CubeSort) Beats(b CubeSort) bool {
	switch a {
	case Rock:
		return b == Scissors
	case Scissors:
		return b == Paper
	case Paper:
		return b == Rock
	default:
		return false
	}
}

// hexCodeBase is the domain size of a HexState code: 2 (empty bit) * 2
// (stack bit) * 2 (player) * 4 (bottom sort) * 4 (top sort) == 128, though
// only a subset of codes are ever produced by the engine (the WISE-on-top
// constraint and the empty/has_stack coherence rule out the rest).
const hexCodeBase = 128

// HexState is the tagged-union content of one board cell: empty, a single
// cube, or a two-cube stack.
type HexState struct {
	Empty    bool
	HasStack bool
	Player   Player
	Bottom   CubeSort
	Top      CubeSort
}

// EmptyHex is the canonical empty-cell state.
var EmptyHex = HexState{Empty: true}

// NewSingle builds a HexState holding one loose cube.
func NewSingle(player Player, cube CubeSort) HexState {
	return HexState{Player: player, Bottom: cube}
}

// NewStack builds a HexState holding a two-cube stack. Panics if the
// WISE-on-top invariant is violated: a WISE cube may only cap another WISE
// cube.
func NewStack(player Player, bottom, top CubeSort) HexState {
	if top == Wise && bottom != Wise {
		panic("pijersi: WISE top cannot cap a non-WISE bottom")
	}
	return HexState{HasStack: true, Player: player, Bottom: bottom, Top: top}
}

// Encode packs h into its 8-bit code in [0,128).
//
// Bit layout: bit0 = non-empty; bit1 = has_stack; bit2 = player;
// bits3-4 = bottom sort; bits5-6 = top sort.
func (h HexState) Encode() int {
	if h.Empty {
		return 0
	}
	code := 1
	if h.HasStack {
		code |= 1 << 1
	}
	code |= int(h.Player) << 2
	code |= int(h.Bottom) << 3
	code |= int(h.Top) << 5
	return code
}

// DecodeHexState is total over [0,128): it decodes every code, including
// ones the engine never produces (such combinations simply never appear as
// a lookup key). Panics if code is out of range.
func DecodeHexState(code int) HexState {
	if code < 0 || code >= hexCodeBase {
		panic("pijersi: hex code out of range")
	}
	if code&1 == 0 {
		return EmptyHex
	}
	h := HexState{
		HasStack: code&(1<<1) != 0,
		Player:   Player((code >> 2) & 1),
		Bottom:   CubeSort((code >> 3) & 3),
	}
	if h.HasStack {
		h.Top = CubeSort((code >> 5) & 3)
	}
	return h
}

// IterateHexStates calls fn for every legal HexState: EMPTY, plus for each
// player and each bottom sort, SINGLE and every WISE-constraint-respecting
// STACK. This is the legal-state enumerator used to build the transition
// and auxiliary tables in tables.go.
func IterateHexStates(fn func(HexState)) {
	fn(EmptyHex)

	for _, player := range [2]Player{White, Black} {
		for _, bottom := range [4]CubeSort{Rock, Paper, Scissors, Wise} {
			fn(NewSingle(player, bottom))

			if bottom == Wise {
				for _, top := range [4]CubeSort{Rock, Paper, Scissors, Wise} {
					fn(NewStack(player, bottom, top))
				}
			} else {
				for _, top := range [3]CubeSort{Rock, Paper, Scissors} {
					fn(NewStack(player, bottom, top))
				}
			}
		}
	}
}
