package pijersi

import "testing"

func TestHexIndexByNameRoundTrip(t *testing.T) {
	for i := 0; i < NumHexes; i++ {
		name := HexName(i)
		if got := HexIndexByName(name); got != i {
			t.Fatalf("HexIndexByName(%q) = %d, want %d", name, got, i)
		}
	}
}

func TestHexIndexByNameUnknown(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected HexIndexByName to panic on an unknown name")
		}
	}()
	HexIndexByName("z9")
}

func TestGoalRowsAreSixCells(t *testing.T) {
	if len(GoalIndices(White)) != 6 || len(GoalIndices(Black)) != 6 {
		t.Fatal("each goal row must have exactly 6 cells")
	}
	for _, hex := range GoalIndices(White) {
		if DistanceToGoal(White, hex) != 0 {
			t.Fatalf("hex %d is in WHITE's goal row but has nonzero distance to it", hex)
		}
	}
	for _, hex := range GoalIndices(Black) {
		if DistanceToGoal(Black, hex) != 0 {
			t.Fatalf("hex %d is in BLACK's goal row but has nonzero distance to it", hex)
		}
	}
}

func TestDistanceIsSymmetric(t *testing.T) {
	for a := 0; a < NumHexes; a++ {
		for b := 0; b < NumHexes; b++ {
			if Distance(a, b) != Distance(b, a) {
				t.Fatalf("Distance(%d,%d) != Distance(%d,%d)", a, b, b, a)
			}
		}
		if Distance(a, a) != 0 {
			t.Fatalf("Distance(%d,%d) must be 0", a, a)
		}
	}
}

func TestNextFstNextSndConsistency(t *testing.T) {
	for hex := 0; hex < NumHexes; hex++ {
		for d := Direction(0); d < NumDirections; d++ {
			fst := NextFst(hex, d)
			snd := NextSnd(hex, d)
			if fst == int(NullHex) && snd != int(NullHex) {
				t.Fatalf("hex %d dir %d: second neighbor exists without a first", hex, d)
			}
			if snd != int(NullHex) && NextFst(fst, d) != snd {
				t.Fatalf("hex %d dir %d: second neighbor is not one more step from the first", hex, d)
			}
		}
	}
}
