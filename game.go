/*
game.go implements pijersi game state management: the starting position,
terminal detection, rewards, turn/credit bookkeeping, and action
application.
*/

package pijersi

// MaxCredit is the credit counter's reset value: a move that captures or
// changes the number of stacks on the board resets the counter to 20; any
// other move decrements it, and the game is drawn when it reaches zero.
const MaxCredit = 20

// Reward is the outcome of a terminated game from one player's point of
// view.
type Reward int

const (
	Loss Reward = -1
	Draw Reward = 0
	Win  Reward = 1
)

// GameState is the full position: board contents, side to move, turn
// count, and the credit counter that forces a draw when no capture or
// stack-count change has happened recently.
type GameState struct {
	Board  BoardCodes
	Player Player
	Turn   int
	Credit int

	LegalActions ActionList
	terminated   bool
}

// NewGame returns the fixed classic starting position with WHITE to move.
func NewGame() *GameState {
	g := &GameState{Player: White, Turn: 1, Credit: MaxCredit}

	place := func(name string, cube CubeSort, player Player) {
		g.Board[HexIndexByName(name)] = byte(NewSingle(player, cube).Encode())
	}
	placeStack := func(name string, bottom, top CubeSort, player Player) {
		g.Board[HexIndexByName(name)] = byte(NewStack(player, bottom, top).Encode())
	}

	place("a1", Rock, White)
	place("a2", Paper, White)
	place("a3", Scissors, White)
	place("a4", Rock, White)
	place("a5", Paper, White)
	place("a6", Scissors, White)

	place("b1", Paper, White)
	place("b2", Scissors, White)
	place("b3", Rock, White)
	placeStack("b4", Wise, Wise, White)
	place("b5", Scissors, White)
	place("b6", Rock, White)
	place("b7", Paper, White)

	place("f1", Paper, Black)
	place("f2", Rock, Black)
	place("f3", Scissors, Black)
	placeStack("f4", Wise, Wise, Black)
	place("f5", Rock, Black)
	place("f6", Scissors, Black)
	place("f7", Paper, Black)

	place("g1", Scissors, Black)
	place("g2", Paper, Black)
	place("g3", Rock, Black)
	place("g4", Scissors, Black)
	place("g5", Paper, Black)
	place("g6", Rock, Black)

	g.refresh()
	return g
}

// refresh recomputes the legal action list and terminal flag for the
// current board and side to move. Called after construction and after
// every applied action.
func (g *GameState) refresh() {
	GenActions(g.Board, g.Player, &g.LegalActions)
	g.terminated = g.PlayerIsArrived(White) || g.PlayerIsArrived(Black) ||
		g.Credit == 0 || g.LegalActions.Len == 0
}

// PlayerIsArrived reports whether player has at least one fighter (a
// non-WISE cube) on player's own goal row — the race-to-the-far-row win
// condition.
func (g *GameState) PlayerIsArrived(player Player) bool {
	for _, hex := range GoalIndices(player) {
		if HasFighter(player, int(g.Board[hex])) {
			return true
		}
	}
	return false
}

// IsTerminated reports whether the game has ended: a player has arrived,
// the credit counter has run out, or the side to move has no legal
// action.
func (g *GameState) IsTerminated() bool { return g.terminated }

// GetRewards returns the reward for each player. The result is only
// meaningful once IsTerminated reports true: on a non-terminal position
// nobody has arrived and credit remains, so the side to move is reported
// as the loser.
func (g *GameState) GetRewards() (white, black Reward) {
	whiteArrived := g.PlayerIsArrived(White)
	blackArrived := g.PlayerIsArrived(Black)

	switch {
	case whiteArrived && blackArrived:
		return Draw, Draw
	case whiteArrived:
		return Win, Loss
	case blackArrived:
		return Loss, Win
	}

	if g.Credit == 0 {
		return Draw, Draw
	}

	// No legal action for the side to move: that player loses.
	if g.Player == White {
		return Loss, Win
	}
	return Win, Loss
}

// GetActions returns the legal actions for the side to move.
func (g *GameState) GetActions() []Action { return g.LegalActions.Slice() }

// GetActionNames returns the canonical name of every legal action, in
// enumeration order.
func (g *GameState) GetActionNames() []string {
	actions := g.LegalActions.Slice()
	names := make([]string, len(actions))
	for i, a := range actions {
		names[i] = ActionName(a)
	}
	return names
}

// ApplyAction advances the game by a, returning the resulting GameState.
// a must be one produced by GenActions for g's current board and player;
// behavior is undefined otherwise.
func (g *GameState) ApplyAction(a Action) *GameState {
	next := &GameState{
		Board:  a.NextBoard,
		Player: g.Player.Opponent(),
		Turn:   g.Turn + 1,
	}

	if a.CaptureCode != 0 || stackCount(g.Board) != stackCount(next.Board) {
		next.Credit = MaxCredit
	} else {
		next.Credit = g.Credit - 1
		if next.Credit < 0 {
			next.Credit = 0
		}
	}

	next.refresh()
	return next
}

// stackCount returns the total number of cells holding a stack, summed
// over both players — used to detect a stack-count change for credit
// bookkeeping.
func stackCount(board BoardCodes) int {
	n := 0
	for _, code := range board {
		if HasStack(White, int(code)) || HasStack(Black, int(code)) {
			n++
		}
	}
	return n
}

// GetCubeCounts returns, per player, the total number of cubes (loose or
// stacked) owned by that player on the board.
func (g *GameState) GetCubeCounts() (white, black int) {
	for _, code := range g.Board {
		white += CubeCount(White, int(code))
		black += CubeCount(Black, int(code))
	}
	return
}

// GetFighterCounts returns, per player, the total number of non-WISE
// cubes owned by that player on the board.
func (g *GameState) GetFighterCounts() (white, black int) {
	for _, code := range g.Board {
		white += FighterCount(White, int(code))
		black += FighterCount(Black, int(code))
	}
	return
}

// GetDistancesToGoal returns, per player, the minimum over that player's
// own cubes of the hex distance from the cube to the player's goal row.
// Returns -1 for a player with no cubes on the board (never reached from
// a legally constructed position).
func (g *GameState) GetDistancesToGoal() (white, black int) {
	white, black = -1, -1
	for hex, code := range g.Board {
		if HasCube(White, int(code)) {
			if d := DistanceToGoal(White, hex); white == -1 || d < white {
				white = d
			}
		}
		if HasCube(Black, int(code)) {
			if d := DistanceToGoal(Black, hex); black == -1 || d < black {
				black = d
			}
		}
	}
	return
}
