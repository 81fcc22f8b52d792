/*
tables.go precomputes the three move/capture transition tables (CUBE_PATH1,
STACK_PATH1, STACK_PATH2) plus the auxiliary per-code lookups (has_cube,
has_stack, has_fighter, cube_count, fighter_count). Every transition table
is a dense array indexed by a 2-hex path code (domain 128*128 = 16384); the
auxiliary tables are indexed by player and single hex code. All are built
once in init() and read-only afterwards — safe for concurrent reads from many
search threads.

All branching on cube sort, ownership, and stack constraints is compiled
into these tables at build time, so the action enumerator never branches
on rules at search time — only array loads.
*/

package pijersi

const path2Domain = hexCodeBase * hexCodeBase // 16384

var (
	// cubePath1NextCode/cubePath1Capture: one adjacent step by a loose
	// cube or the top of a stack.
	cubePath1NextCode  [path2Domain]uint16
	cubePath1Capture   [path2Domain]bool

	// stackPath1NextCode/stackPath1Capture: one adjacent step by a whole
	// stack.
	stackPath1NextCode [path2Domain]uint16
	stackPath1Capture  [path2Domain]bool

	// stackPath2NextCode/stackPath2Capture: a two-cell leap by a whole
	// stack over an empty intermediate cell. Keyed by the (src,far_dst)
	// 2-hex code; the stored result is a 3-hex path code (with the
	// intermediate left empty).
	stackPath2NextCode [path2Domain]uint32
	stackPath2Capture  [path2Domain]bool

	// Auxiliary per-code tables, one row per player.
	hasCubeTable    [2][hexCodeBase]bool
	hasStackTable   [2][hexCodeBase]bool
	hasFighterTable [2][hexCodeBase]bool
	cubeCountTable  [2][hexCodeBase]int
	fighterCountTable [2][hexCodeBase]int
)

func fighterCountOf(h HexState) int {
	if h.Empty {
		return 0
	}
	count := 0
	if h.Bottom != Wise {
		count++
	}
	if h.HasStack && h.Top != Wise {
		count++
	}
	return count
}

func buildAuxTables() {
	IterateHexStates(func(h HexState) {
		if h.Empty {
			return
		}
		code := h.Encode()
		p := h.Player

		hasCubeTable[p][code] = true
		if h.HasStack {
			hasStackTable[p][code] = true
			cubeCountTable[p][code] = 2
		} else {
			cubeCountTable[p][code] = 1
		}

		fc := fighterCountOf(h)
		fighterCountTable[p][code] = fc
		hasFighterTable[p][code] = fc > 0
	})
}

// buildCubePath1Table builds the one-step cube-move transition: a loose
// cube, or the top of a stack, stepping to an adjacent cell (the bottom
// cube of a stack always stays behind).
func buildCubePath1Table() {
	IterateHexStates(func(src HexState) {
		IterateHexStates(func(dst HexState) {
			code := EncodePath2(src.Encode(), dst.Encode())

			var nextSrc, nextDst *HexState
			capture := false

			switch {
			case src.Empty:
				// No mover, nothing to do.

			case dst.Empty:
				if src.HasStack {
					s := NewSingle(src.Player, src.Bottom)
					d := NewSingle(src.Player, src.Top)
					nextSrc, nextDst = &s, &d
				} else {
					s := EmptyHex
					d := NewSingle(src.Player, src.Bottom)
					nextSrc, nextDst = &s, &d
				}

			case dst.Player == src.Player:
				if !dst.HasStack {
					if src.HasStack {
						if src.Top != Wise || dst.Bottom == Wise {
							s := NewSingle(src.Player, src.Bottom)
							d := NewStack(src.Player, dst.Bottom, src.Top)
							nextSrc, nextDst = &s, &d
						}
					} else {
						if src.Bottom != Wise || dst.Bottom == Wise {
							s := EmptyHex
							d := NewStack(src.Player, dst.Bottom, src.Bottom)
							nextSrc, nextDst = &s, &d
						}
					}
				}
				// dst already a friendly stack: no cube-move destination.

			default: // dst owned by the opponent: a capture attempt.
				movingCube := src.Bottom
				if src.HasStack {
					movingCube = src.Top
				}
				targetCube := dst.Bottom
				if dst.HasStack {
					targetCube = dst.Top
				}
				if movingCube.Beats(targetCube) {
					capture = true
					if src.HasStack {
						s := NewSingle(src.Player, src.Bottom)
						d := NewSingle(src.Player, src.Top)
						nextSrc, nextDst = &s, &d
					} else {
						s := EmptyHex
						d := NewSingle(src.Player, src.Bottom)
						nextSrc, nextDst = &s, &d
					}
				}
			}

			next := 0
			if nextSrc != nil && nextDst != nil {
				next = EncodePath2(nextSrc.Encode(), nextDst.Encode())
			}
			cubePath1NextCode[code] = uint16(next)
			cubePath1Capture[code] = capture
		})
	})
}

// buildStackPathTables builds the one-step whole-stack move transition and,
// via withMidEmpty, shares its logic with the two-cell stack leap over an
// empty intermediate cell.
func buildStackPathTables(nextCode []uint32, capture []bool, withMidEmpty bool) {
	IterateHexStates(func(src HexState) {
		IterateHexStates(func(dst HexState) {
			code := EncodePath2(src.Encode(), dst.Encode())

			var nextSrc, nextDst *HexState
			captured := false

			if !src.Empty && src.HasStack {
				switch {
				case dst.Empty:
					s := EmptyHex
					d := NewStack(src.Player, src.Bottom, src.Top)
					nextSrc, nextDst = &s, &d

				case dst.Player != src.Player:
					targetCube := dst.Bottom
					if dst.HasStack {
						targetCube = dst.Top
					}
					if src.Top.Beats(targetCube) {
						captured = true
						s := EmptyHex
						d := NewStack(src.Player, src.Bottom, src.Top)
						nextSrc, nextDst = &s, &d
					}
				}
			}

			next := 0
			if nextSrc != nil && nextDst != nil {
				if withMidEmpty {
					next = EncodePath3(nextSrc.Encode(), EmptyHex.Encode(), nextDst.Encode())
				} else {
					next = EncodePath2(nextSrc.Encode(), nextDst.Encode())
				}
			}
			nextCode[code] = uint32(next)
			capture[code] = captured
		})
	})
}

func buildTables() {
	buildAuxTables()
	buildCubePath1Table()

	stackPath1Next32 := make([]uint32, path2Domain)
	buildStackPathTables(stackPath1Next32, stackPath1Capture[:], false)
	for i, v := range stackPath1Next32 {
		stackPath1NextCode[i] = uint16(v)
	}

	buildStackPathTables(stackPath2NextCode[:], stackPath2Capture[:], true)
}

// TryCubePath1 looks up the cube-move/capture transition for the given
// (src,dst) code pair. ok is false if the move is illegal.
func TryCubePath1(srcCode, dstCode int) (nextSrcCode, nextDstCode int, captured, ok bool) {
	code := EncodePath2(srcCode, dstCode)
	next := int(cubePath1NextCode[code])
	if next == 0 {
		return 0, 0, false, false
	}
	s, d := DecodePath2(next)
	return s, d, cubePath1Capture[code], true
}

// TryStackPath1 looks up the one-step whole-stack transition.
func TryStackPath1(srcCode, dstCode int) (nextSrcCode, nextDstCode int, captured, ok bool) {
	code := EncodePath2(srcCode, dstCode)
	next := int(stackPath1NextCode[code])
	if next == 0 {
		return 0, 0, false, false
	}
	s, d := DecodePath2(next)
	return s, d, stackPath1Capture[code], true
}

// TryStackPath2 looks up the two-cell stack leap transition, keyed by the
// (src,far_dst) code. Callers must first verify the intermediate hex is
// empty — that precondition is what makes this table dense over a 2-hex
// key while still producing a 3-hex result.
func TryStackPath2(srcCode, farDstCode int) (nextSrcCode, nextMidCode, nextFarCode int, captured, ok bool) {
	code := EncodePath2(srcCode, farDstCode)
	next := int(stackPath2NextCode[code])
	if next == 0 {
		return 0, 0, 0, false, false
	}
	s, m, f := DecodePath3(next)
	return s, m, f, stackPath2Capture[code], true
}

// HasCube reports whether code represents a cell owned by player (loose
// cube or stack).
func HasCube(player Player, code int) bool { return hasCubeTable[player][code] }

// HasStack reports whether code represents a stack owned by player.
func HasStack(player Player, code int) bool { return hasStackTable[player][code] }

// HasFighter reports whether code represents a cell owned by player that
// contains at least one non-WISE cube.
func HasFighter(player Player, code int) bool { return hasFighterTable[player][code] }

// CubeCount returns 0, 1, or 2: the number of cubes owned by player at code.
func CubeCount(player Player, code int) int { return cubeCountTable[player][code] }

// FighterCount returns 0, 1, or 2: the number of non-WISE cubes owned by
// player at code.
func FighterCount(player Player, code int) int { return fighterCountTable[player][code] }

func init() {
	buildBoardTables()
	buildTables()
	buildZobristKeys()
}
