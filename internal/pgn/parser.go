// Package pgn turns PGN game text into a models.ParsedGame.
//
// Parsing never fails: a missing tag, a missing movetext or an empty move list
// each come back as an absent optional.Value and the rest of the record is
// still filled in.
package pgn

import (
	"strings"

	"github.com/vytor/pgn2json/internal/models"
	"github.com/vytor/pgn2json/internal/optional"
)

var lineEndings = strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ")

// Normalize folds a multi-line PGN into one line, each line ending becoming a
// single space.
func Normalize(text string) string {
	return lineEndings.Replace(text)
}

// CleanMoves runs isolation, comment removal and symbol removal over
// normalised text.
func CleanMoves(line string) optional.Value[string] {
	return optional.Map(IsolateMoves(line), func(movetext string) string {
		return StripSymbols(StripComments(movetext))
	})
}

// Metadata extracts the seven known tags. The map always has all seven keys.
func Metadata(text string) map[TagName]optional.Value[string] {
	line := Normalize(text)
	out := make(map[TagName]optional.Value[string], len(knownTags))
	for _, name := range knownTags {
		out[name] = tagValue(name, line)
	}
	return out
}

// Parse converts one PGN game into its structured record.
func Parse(text string) models.ParsedGame {
	line := Normalize(text)
	tags := Metadata(line)

	return models.ParsedGame{
		Event:  tags[TagEvent],
		Site:   tags[TagSite],
		Date:   tags[TagDate],
		Round:  tags[TagRound],
		White:  tags[TagWhite],
		Black:  tags[TagBlack],
		Result: tags[TagResult],
		Moves:  optional.FlatMap(CleanMoves(line), Tokenize),
	}
}
