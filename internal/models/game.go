package models

import "github.com/vytor/pgn2json/internal/optional"

// ParsedGame is the structured form of one PGN game record.
// Every field is absent rather than empty when the source text lacks it.
type ParsedGame struct {
	Event  optional.Value[string]   `json:"event"`
	Site   optional.Value[string]   `json:"site"`
	Date   optional.Value[string]   `json:"date"`
	Round  optional.Value[string]   `json:"round"`
	White  optional.Value[string]   `json:"white"`
	Black  optional.Value[string]   `json:"black"`
	Result optional.Value[string]   `json:"result"`
	Moves  optional.Value[[]string] `json:"moves"`
}

// Metadata returns the seven tag fields keyed by their lower-case tag name.
func (g ParsedGame) Metadata() map[string]optional.Value[string] {
	return map[string]optional.Value[string]{
		"event":  g.Event,
		"site":   g.Site,
		"date":   g.Date,
		"round":  g.Round,
		"white":  g.White,
		"black":  g.Black,
		"result": g.Result,
	}
}

// MoveCount returns the number of half-moves, zero when moves are absent.
func (g ParsedGame) MoveCount() int {
	moves, _ := g.Moves.Get()
	return len(moves)
}

// Conversion is the outcome of converting one PGN text.
type Conversion struct {
	Index int        `json:"index"`
	Game  ParsedGame `json:"game"`
	// The fields below are filled only when moves were replayed successfully.
	FENs    []string `json:"fens,omitempty"`
	UCI     []string `json:"uci,omitempty"`
	ECO     string   `json:"eco,omitempty"`
	Opening string   `json:"opening,omitempty"`

	Err error `json:"-"`
}
