/*
action.go defines the compound Action produced by the enumerator and the
fixed-capacity list used to collect them without allocating per move.
*/

package pijersi

// BoardCodes is the ordered sequence of 45 per-cell codes. Value semantics:
// copying a BoardCodes copies the whole board, so every Action and every
// GameState owns its board exclusively.
type BoardCodes [NumHexes]byte

// maxActions is a generous upper bound on the number of legal actions in any
// reachable position. The classic starting position has 186 legal actions;
// this leaves ample headroom for positions with more open stacks and
// directions in play without the caller ever having to check capacity.
const maxActions = 1024

// Action is one compound turn: a cube-move then optionally a stack-move, or
// a stack-move then optionally a cube-move.
type Action struct {
	// NextBoard is the board resulting from applying this action.
	NextBoard BoardCodes
	// PathVertices summarizes the compound move as 2 or 3 hex indices:
	// origin, (mid,) destination.
	PathVertices []int
	// CaptureCode: bit0 set if the first sub-move captured, bit1 if the
	// second did.
	CaptureCode int
	// MoveCode: bit0 set if the first sub-move was a stack-move, bit1 if
	// the second was.
	MoveCode int
}

// ActionList is a preallocated collection of actions, avoiding per-node
// allocation during enumeration.
type ActionList struct {
	Actions [maxActions]Action
	Len     int
}

// Push appends an action to the list.
func (l *ActionList) Push(a Action) {
	l.Actions[l.Len] = a
	l.Len++
}

// Slice returns the populated prefix of the list.
func (l *ActionList) Slice() []Action { return l.Actions[:l.Len] }
