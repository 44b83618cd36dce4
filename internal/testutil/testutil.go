package testutil

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vytor/pgn2json/internal/optional"
)

// FischerSpassky is the reference game from the PGN standard, with CRLF line
// endings stripped to LF.
const FischerSpassky = `[Event "F/S Return Match"]
[Site "Belgrade, Serbia JUG"]
[Date "1992.11.04"]
[Round "29"]
[White "Fischer, Robert J."]
[Black "Spassky, Boris V."]
[Result "1/2-1/2"]

1. e4 e5 2. Nf3 Nc6 3. Bb5 a6 {This opening is called the Ruy Lopez.}
4. Ba4 Nf6 5. O-O Be7 6. Re1 b5 7. Bb3 d6 8. c3 O-O 9. h3 Nb8 10. d4 Nbd7
11. c4 c6 12. cxb5 axb5 13. Nc3 Bb7 14. Bg5 b4 15. Nb1 h6 16. Bh4 c5 17. dxe5
Nxe4 18. Bxe7 Qxe7 19. exd6 Qf6 20. Nbd2 Nxd6 21. Nc4 Nxc4 22. Bxc4 Nb6
23. Ne5 Rae8 24. Bxf7+ Rxf7 25. Nxf7 Rxe1+ 26. Qxe1 Kxf7 27. Qe3 Qg5 28. Qxg5
hxg5 29. b3 Ke6 30. a3 Kd6 31. axb4 cxb4 32. Ra5 Nd5 33. f3 Bc8 34. Kf2 Bf5
35. Ra7 g6 36. Ra6+ Kc5 37. Ke1 Nf4 38. g3 Nxh3 39. Kd2 Kb5 40. Rd6 Kc5 41. Ra6
Nf2 42. g4 Bd3 43. Re6 1/2-1/2
`

// FischerSpasskyMoveCount is the number of tokens FischerSpassky yields: 85
// half-moves less the two castles.
const FischerSpasskyMoveCount = 83

// Annotated is a short miniature with comments, annotation symbols, a
// promotion and mate, written with CRLF line endings.
const Annotated = "[Event \"Club Blitz\"]\r\n" +
	"[White \"Alice\"]\r\n" +
	"[Black \"Bob\"]\r\n" +
	"[Result \"1-0\"]\r\n" +
	"\r\n" +
	"1. e4 {king's pawn} e5 2. Bc4 Nc6 3. Qh5 Nf6?? {falls for it}\r\n" +
	"4. Qxf7# 1-0\r\n"

// AnnotatedMoves is the move list Annotated yields.
var AnnotatedMoves = []string{"e4", "e5", "Bc4", "Nc6", "Qh5", "Nf6", "Qxf7#"}

// ScholarsMate is a legal game without castling, usable for replay.
const ScholarsMate = `[Event "Casual"]
[Site "?"]
[Result "1-0"]

1. e4 e5 2. Qh5 Nc6 3. Bc4 Nf6 4. Qxf7# 1-0
`

// HeaderOnly has tags but no movetext.
const HeaderOnly = `[Event "Abandoned"]
[Site "Online"]
[Result "*"]
`

// MustMoves returns the moves in v or fails the test.
func MustMoves(t *testing.T, v optional.Value[[]string]) []string {
	t.Helper()
	moves, ok := v.Get()
	require.True(t, ok, "expected moves to be present")
	return moves
}

// MustString returns the string in v or fails the test.
func MustString(t *testing.T, v optional.Value[string]) string {
	t.Helper()
	s, ok := v.Get()
	require.True(t, ok, "expected value to be present")
	return s
}
