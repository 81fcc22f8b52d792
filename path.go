/*
path.go packs 2- and 3-hex paths of HexState codes into dense integer keys
used to index the transition tables in tables.go.
*/

package pijersi

// EncodePath2 packs a 2-hex path code (domain 128*128 = 16384).
func EncodePath2(code0, code1 int) int {
	return code0 + hexCodeBase*code1
}

// DecodePath2 unpacks a 2-hex path code.
func DecodePath2(path int) (code0, code1 int) {
	return path % hexCodeBase, (path / hexCodeBase) % hexCodeBase
}

// EncodePath3 packs a 3-hex path code (domain 128^3, fits in 21 bits).
func EncodePath3(code0, code1, code2 int) int {
	return code0 + hexCodeBase*code1 + hexCodeBase*hexCodeBase*code2
}

// DecodePath3 unpacks a 3-hex path code.
func DecodePath3(path int) (code0, code1, code2 int) {
	return path % hexCodeBase,
		(path / hexCodeBase) % hexCodeBase,
		(path / (hexCodeBase * hexCodeBase)) % hexCodeBase
}
