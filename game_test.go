package pijersi

import "testing"

func TestNewGameStartingPosition(t *testing.T) {
	g := NewGame()

	if g.Player != White {
		t.Fatalf("expected White to move, got %v", g.Player)
	}
	if g.Turn != 1 {
		t.Fatalf("expected turn 1, got %d", g.Turn)
	}
	if g.Credit != MaxCredit {
		t.Fatalf("expected credit %d, got %d", MaxCredit, g.Credit)
	}
	if g.IsTerminated() {
		t.Fatal("classic start must not be terminal")
	}

	white, black := g.GetCubeCounts()
	if white != 14 || black != 14 {
		t.Fatalf("expected 14 cubes per side, got white=%d black=%d", white, black)
	}
}

// TestStartingActionCount checks the legal action count from the classic
// starting position against the known value for this ruleset.
func TestStartingActionCount(t *testing.T) {
	g := NewGame()
	if got := g.LegalActions.Len; got != 186 {
		t.Fatalf("expected 186 legal actions from the classic start, got %d", got)
	}
}

func TestHasActionMatchesActionList(t *testing.T) {
	g := NewGame()
	if HasAction(g.Board, g.Player) != (g.LegalActions.Len > 0) {
		t.Fatal("HasAction must agree with a non-empty action list")
	}
}

// TestSingleCubeCaptureReplacesDefender checks a single-cube capture: WHITE
// ROCK on c4, BLACK SCISSORS on c5 adjacent, nothing else relevant nearby.
func TestSingleCubeCaptureReplacesDefender(t *testing.T) {
	var board BoardCodes
	board[HexIndexByName("c4")] = byte(NewSingle(White, Rock).Encode())
	board[HexIndexByName("c5")] = byte(NewSingle(Black, Scissors).Encode())

	var l ActionList
	GenActions(board, White, &l)

	found := false
	for _, a := range l.Slice() {
		if ActionName(a) == "c4-c5!" {
			found = true
			if a.CaptureCode&1 == 0 {
				t.Fatal("c4-c5! must have its first sub-move capture bit set")
			}
			if a.NextBoard[HexIndexByName("c4")] != 0 {
				t.Fatal("c4 must be empty after the capture")
			}
			got := DecodeHexState(int(a.NextBoard[HexIndexByName("c5")]))
			if got.Empty || got.HasStack || got.Player != White || got.Bottom != Rock {
				t.Fatalf("c5 must hold a lone WHITE ROCK, got %+v", got)
			}
		}
	}
	if !found {
		t.Fatal("expected c4-c5! among the legal actions")
	}
}

// TestNewStackPanicsOnIllegalWiseTop checks the WISE stacking constraint:
// building a WISE-topped stack over a non-WISE bottom must panic.
func TestNewStackPanicsOnIllegalWiseTop(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected NewStack(White, Rock, Wise) to panic")
		}
	}()
	NewStack(White, Rock, Wise)
}

func TestStackOntoFriendlySingleIllegalWhenTopIsWise(t *testing.T) {
	var board BoardCodes
	board[HexIndexByName("b3")] = byte(NewStack(White, Wise, Wise).Encode())
	board[HexIndexByName("b4")] = byte(NewSingle(White, Rock).Encode())

	var l ActionList
	GenActions(board, White, &l)

	for _, a := range l.Slice() {
		if a.PathVertices[0] == HexIndexByName("b3") && a.PathVertices[1] == HexIndexByName("b4") && a.MoveCode&1 == 0 {
			t.Fatal("cube-move of a WISE top onto a non-WISE friendly single must be illegal")
		}
	}
}

// TestArrivalOnGoalRowIsTerminalWin checks the race-to-goal-row win
// condition.
func TestArrivalOnGoalRowIsTerminalWin(t *testing.T) {
	var board BoardCodes
	board[HexIndexByName("g1")] = byte(NewSingle(White, Rock).Encode())
	g := &GameState{Board: board, Player: White, Turn: 1, Credit: MaxCredit}
	g.refresh()

	if !g.IsTerminated() {
		t.Fatal("WHITE fighter on the goal row must be terminal")
	}
	white, black := g.GetRewards()
	if white != Win || black != Loss {
		t.Fatalf("expected (WIN,LOSS), got (%v,%v)", white, black)
	}
}

// TestCreditExhaustionIsTerminalDraw checks the credit-exhaustion draw.
func TestCreditExhaustionIsTerminalDraw(t *testing.T) {
	g := NewGame()
	g.Credit = 1

	var next *GameState
	for _, a := range g.GetActions() {
		if a.CaptureCode == 0 && stackCount(g.Board) == stackCount(a.NextBoard) {
			next = g.ApplyAction(a)
			break
		}
	}
	if next == nil {
		t.Fatal("expected at least one non-capturing, stack-count-preserving action from the start")
	}
	if next.Credit != 0 {
		t.Fatalf("expected credit to reach 0, got %d", next.Credit)
	}
	if !next.IsTerminated() {
		t.Fatal("credit exhaustion must be terminal")
	}
	white, black := next.GetRewards()
	if white != Draw || black != Draw {
		t.Fatalf("expected a draw, got (%v,%v)", white, black)
	}
}

func TestApplyActionPreservesCubeCountExceptCaptures(t *testing.T) {
	g := NewGame()
	beforeWhite, beforeBlack := g.GetCubeCounts()

	for _, a := range g.GetActions() {
		next := g.ApplyAction(a)
		afterWhite, afterBlack := next.GetCubeCounts()

		captures := 0
		if a.CaptureCode&1 != 0 {
			captures++
		}
		if a.CaptureCode&2 != 0 {
			captures++
		}

		totalBefore := beforeWhite + beforeBlack
		totalAfter := afterWhite + afterBlack
		if totalBefore-totalAfter != captures {
			t.Fatalf("action %s: expected %d cube(s) removed, got %d", ActionName(a), captures, totalBefore-totalAfter)
		}
	}
}

func BenchmarkGenActions(b *testing.B) {
	g := NewGame()
	var l ActionList
	for b.Loop() {
		GenActions(g.Board, g.Player, &l)
	}
}

func BenchmarkApplyAction(b *testing.B) {
	g := NewGame()
	actions := g.GetActions()
	for b.Loop() {
		g.ApplyAction(actions[0])
	}
}
