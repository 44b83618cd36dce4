package pgn

import (
	"regexp"

	"github.com/vytor/pgn2json/internal/optional"
)

// moveRe matches one SAN half-move: piece letter or pawn file, optional
// disambiguation and capture, destination square, then an optional promotion
// and check/mate suffix. Castling is not matched.
var moveRe = regexp.MustCompile(`[a-hRNBQK][1-8]?[a-h]?x?[a-h]?x?[1-8](?:=[QRBN])?[+#]?`)

// Tokenize splits cleaned movetext into half-moves in play order. Move numbers
// and result markers never match. Empty input, or input without a single
// move, yields absent rather than an empty slice.
func Tokenize(movetext string) optional.Value[[]string] {
	moves := moveRe.FindAllString(movetext, -1)
	if len(moves) == 0 {
		return optional.Absent[[]string]()
	}
	return optional.Present(moves)
}
