/*
names.go renders the canonical textual name of an Action: hex names joined
by move-kind separators, with "!" marking a capturing sub-move. This is the
naming grounding for the oracle cross-check in the testable properties.
*/

package pijersi

import "strings"

// ActionName renders a's canonical name: src<sep1>mid[!]<sep2>dst[!].
// The trailing separator and segment are omitted for a single sub-move
// action.
func ActionName(a Action) string {
	var b strings.Builder
	b.Grow(12)

	sep := func(bit int) byte {
		if a.MoveCode&bit != 0 {
			return '='
		}
		return '-'
	}

	b.WriteString(HexName(a.PathVertices[0]))
	b.WriteByte(sep(1))
	b.WriteString(HexName(a.PathVertices[1]))
	if a.CaptureCode&1 != 0 {
		b.WriteByte('!')
	}

	if len(a.PathVertices) == 3 {
		b.WriteByte(sep(2))
		b.WriteString(HexName(a.PathVertices[2]))
		if a.CaptureCode&2 != 0 {
			b.WriteByte('!')
		}
	}

	return b.String()
}
