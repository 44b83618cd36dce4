package pgn

import (
	"regexp"

	"github.com/vytor/pgn2json/internal/optional"
)

var (
	// movetextStartRe anchors on a first move that is a pawn move to the
	// third or fourth rank or a knight to f3/c3.
	movetextStartRe = regexp.MustCompile(`1\.\s*([a-h][3-4]|N(f|c)3).*`)
	resultRe        = regexp.MustCompile(`1\s*-\s*0|0\s*-\s*1|1/2\s*-\s*1/2`)
	commentRe       = regexp.MustCompile(`\{[^}]*\}`)
	symbolRe        = regexp.MustCompile(`[!?]`)
)

// IsolateMoves returns the movetext of a single-line PGN: everything from the
// first move to the end of input, with the first game result marker removed.
//
// The first move is recognised only when it is a pawn move to rank 3 or 4 or
// Nf3/Nc3. Games opening with anything else (1.Nh3, 1.Na3) have no movetext
// and the result is absent.
func IsolateMoves(text string) optional.Value[string] {
	movetext := movetextStartRe.FindString(text)
	if movetext == "" {
		return optional.Absent[string]()
	}
	return optional.Present(removeFirst(resultRe, movetext))
}

func removeFirst(re *regexp.Regexp, s string) string {
	loc := re.FindStringIndex(s)
	if loc == nil {
		return s
	}
	return s[:loc[0]] + s[loc[1]:]
}

// StripComments deletes every {...} comment. Whitespace around a comment is kept.
func StripComments(s string) string {
	return commentRe.ReplaceAllString(s, "")
}

// StripSymbols deletes every '!' and '?' so that ?, ??, ?!, !?, ! and !! all
// disappear. Check and mate suffixes are left alone.
func StripSymbols(s string) string {
	return symbolRe.ReplaceAllString(s, "")
}
