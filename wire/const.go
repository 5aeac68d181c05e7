package wire

// Byte literals the parser dispatches on. Named instead of inlined so the
// state machine reads like the grammar it implements.
const (
	CR    byte = 13
	LF    byte = 10
	DASH  byte = 45
	HTAB  byte = 9
	SP    byte = 32
	COLON byte = 58
)

var (
	crlf         = []byte{CR, LF}
	crlfcrlf     = []byte{CR, LF, CR, LF}
	dashdash     = []byte{DASH, DASH}
)

func isFoldingSpace(b byte) bool {
	return b == SP || b == HTAB
}

func boundaryMarker(boundary string) []byte {
	marker := make([]byte, 0, 2+len(boundary))
	marker = append(marker, dashdash...)
	marker = append(marker, boundary...)
	return marker
}

func crlfBoundaryMarker(boundary string) []byte {
	marker := make([]byte, 0, 4+len(boundary))
	marker = append(marker, crlf...)
	marker = append(marker, dashdash...)
	marker = append(marker, boundary...)
	return marker
}

func preambleDelimiter(boundary string) []byte {
	return crlfBoundaryMarker(boundary)
}
