/*
movegen.go implements the compound-action enumerator: given a board and the
side to move, it produces every legal turn as two interleaved halves
(cube-first, stack-first), using source iteration plus the six directions
plus the transition tables of tables.go. Each candidate sub-move is a copy
of the board with the affected cells rewritten, so generated actions never
alias each other or the board they were generated from.
*/

package pijersi

// GenActions fills l with every legal action for player on board,
// discarding whatever l held before.
// Enumeration order is deterministic and never deduplicated: two
// actions with the same resulting board but different path_vertices or
// move/capture bits both appear, exactly as specified.
func GenActions(board BoardCodes, player Player, l *ActionList) {
	l.Len = 0
	genCubeFirstActions(board, player, l)
	genStackFirstActions(board, player, l)
}

// HasAction reports whether player has any legal action on board. A legal
// compound action always has a legal first sub-move, and a cube-move
// exists whenever any legal action exists since stacks are cubes too, so
// a single CUBE_PATH1 probe per source/direction suffices.
func HasAction(board BoardCodes, player Player) bool {
	for src := 0; src < NumHexes; src++ {
		if !HasCube(player, int(board[src])) {
			continue
		}
		for d := Direction(0); d < NumDirections; d++ {
			dst := NextFst(src, d)
			if dst == int(NullHex) {
				continue
			}
			if _, _, _, ok := TryCubePath1(int(board[src]), int(board[dst])); ok {
				return true
			}
		}
	}
	return false
}

// genCubeFirstActions emits actions whose first sub-move is a cube-move
// (a loose cube or the top of a stack stepping once), optionally followed
// by a stack-move of the stack that results at the landing cell.
func genCubeFirstActions(board BoardCodes, player Player, l *ActionList) {
	for src := 0; src < NumHexes; src++ {
		if !HasCube(player, int(board[src])) {
			continue
		}
		for d := Direction(0); d < NumDirections; d++ {
			dst := NextFst(src, d)
			if dst == int(NullHex) {
				continue
			}

			nextSrc, nextDst, captured, ok := TryCubePath1(int(board[src]), int(board[dst]))
			if !ok {
				continue
			}

			board1 := board
			board1[src] = byte(nextSrc)
			board1[dst] = byte(nextDst)

			cap1 := 0
			if captured {
				cap1 = 1
			}
			l.Push(Action{
				NextBoard:    board1,
				PathVertices: []int{src, dst},
				CaptureCode:  cap1,
				MoveCode:     0,
			})

			if !HasStack(player, nextDst) {
				continue
			}

			for d2 := Direction(0); d2 < NumDirections; d2++ {
				mid := NextFst(dst, d2)
				if mid == int(NullHex) {
					continue
				}

				if s2, c2, cap2, ok2 := TryStackPath1(nextDst, int(board1[mid])); ok2 {
					board2 := board1
					board2[dst] = byte(s2)
					board2[mid] = byte(c2)

					cap := cap1
					if cap2 {
						cap |= 2
					}
					l.Push(Action{
						NextBoard:    board2,
						PathVertices: []int{src, dst, mid},
						CaptureCode:  cap,
						MoveCode:     2,
					})
				}

				if board1[mid] != 0 {
					continue // STACK_PATH2 requires an empty intermediate cell.
				}
				far := NextSnd(dst, d2)
				if far == int(NullHex) {
					continue
				}
				if s3, m3, f3, cap3, ok3 := TryStackPath2(nextDst, int(board1[far])); ok3 {
					board3 := board1
					board3[dst] = byte(s3)
					board3[mid] = byte(m3)
					board3[far] = byte(f3)

					cap := cap1
					if cap3 {
						cap |= 2
					}
					l.Push(Action{
						NextBoard:    board3,
						PathVertices: []int{src, dst, far},
						CaptureCode:  cap,
						MoveCode:     2,
					})
				}
			}
		}
	}
}

// genStackFirstActions emits actions whose first sub-move is a whole-stack
// move (one step or a two-cell leap over an empty cell), optionally
// followed by a cube-move peeling the top off the stack that lands.
func genStackFirstActions(board BoardCodes, player Player, l *ActionList) {
	for src := 0; src < NumHexes; src++ {
		if !HasStack(player, int(board[src])) {
			continue
		}
		for d := Direction(0); d < NumDirections; d++ {
			dst := NextFst(src, d)
			if dst == int(NullHex) {
				continue
			}

			if s1, d1, cap1, ok1 := TryStackPath1(int(board[src]), int(board[dst])); ok1 {
				board1 := board
				board1[src] = byte(s1)
				board1[dst] = byte(d1)

				cap := 0
				if cap1 {
					cap = 1
				}
				l.Push(Action{
					NextBoard:    board1,
					PathVertices: []int{src, dst},
					CaptureCode:  cap,
					MoveCode:     1,
				})

				genTrailingCubeMove(board1, player, src, dst, d1, cap, l)
			}

			if board[dst] != 0 {
				continue // STACK_PATH2 requires an empty intermediate cell.
			}
			far := NextSnd(src, d)
			if far == int(NullHex) {
				continue
			}
			if s3, m3, f3, cap3, ok3 := TryStackPath2(int(board[src]), int(board[far])); ok3 {
				board3 := board
				board3[src] = byte(s3)
				board3[dst] = byte(m3)
				board3[far] = byte(f3)

				cap := 0
				if cap3 {
					cap = 1
				}
				l.Push(Action{
					NextBoard:    board3,
					PathVertices: []int{src, far},
					CaptureCode:  cap,
					MoveCode:     1,
				})

				genTrailingCubeMove(board3, player, src, far, f3, cap, l)
			}
		}
	}
}

// genTrailingCubeMove emits the optional second sub-move of a stack-first
// action: the top cube of the stack now sitting at landed (whose code is
// landedCode) peels off and steps once more.
func genTrailingCubeMove(board BoardCodes, player Player, origin, landed, landedCode int, firstCap int, l *ActionList) {
	if !HasStack(player, landedCode) {
		return
	}
	for d := Direction(0); d < NumDirections; d++ {
		dst := NextFst(landed, d)
		if dst == int(NullHex) {
			continue
		}
		s, c, captured, ok := TryCubePath1(landedCode, int(board[dst]))
		if !ok {
			continue
		}
		next := board
		next[landed] = byte(s)
		next[dst] = byte(c)

		cap := firstCap
		if captured {
			cap |= 2
		}
		l.Push(Action{
			NextBoard:    next,
			PathVertices: []int{origin, landed, dst},
			CaptureCode:  cap,
			MoveCode:     1,
		})
	}
}
