package pgn_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vytor/pgn2json/internal/pgn"
)

func TestStripComments(t *testing.T) {
	assert.Equal(t, "Nxf7 ", pgn.StripComments("Nxf7 {Oh hell yeah}"))
}

func TestStripComments_Multiple(t *testing.T) {
	got := pgn.StripComments("1. e4 {best by test} e5 2. Nf3 {main line} Nc6")
	assert.Equal(t, "1. e4  e5 2. Nf3  Nc6", got)
}

func TestStripComments_NoComment(t *testing.T) {
	assert.Equal(t, "1. e4 e5", pgn.StripComments("1. e4 e5"))
}

func TestStripSymbols(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{name: "blunder", in: "Nxf7??"},
		{name: "mistake", in: "Nxf7?"},
		{name: "dubious", in: "Nxf7?!"},
		{name: "interesting", in: "Nxf7!?"},
		{name: "good", in: "Nxf7!"},
		{name: "brilliant", in: "Nxf7!!"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, "Nxf7", pgn.StripSymbols(tt.in))
		})
	}
}

func TestStripSymbols_KeepsCheckAndMate(t *testing.T) {
	assert.Equal(t, "Qxf7+ Kxf7 Bc4#", pgn.StripSymbols("Qxf7+! Kxf7?? Bc4#!!"))
}

func TestIsolateMoves(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected string
	}{
		{
			name:     "white wins",
			text:     "[Blah] 1.e4 c5 2. Nf3 g6   3.d4 cxd4 1-0",
			expected: "1.e4 c5 2. Nf3 g6   3.d4 cxd4 ",
		},
		{
			name:     "black wins",
			text:     "[Blah] 1.e4 c5 2. Nf3 g6   3.d4 cxd4 0-1",
			expected: "1.e4 c5 2. Nf3 g6   3.d4 cxd4 ",
		},
		{
			name:     "draw",
			text:     "[Blah] 1.e4 c5 2. Nf3 g6   3.d4 cxd4 1/2-1/2",
			expected: "1.e4 c5 2. Nf3 g6   3.d4 cxd4 ",
		},
		{
			name:     "ongoing",
			text:     "[Blah] 1.e4 c5 2. Nf3 g6   3.d4 cxd4",
			expected: "1.e4 c5 2. Nf3 g6   3.d4 cxd4",
		},
		{
			name:     "spaced result",
			text:     "1. Nc3 d5 1 - 0",
			expected: "1. Nc3 d5 ",
		},
		{
			name:     "pawn to third rank",
			text:     `[Event "x"] 1. g3 d5`,
			expected: "1. g3 d5",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := pgn.IsolateMoves(tt.text).Get()
			require.True(t, ok)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestIsolateMoves_StripsOnlyFirstResult(t *testing.T) {
	got, ok := pgn.IsolateMoves("1.e4 e5 1-0 1-0").Get()
	require.True(t, ok)
	assert.Equal(t, "1.e4 e5  1-0", got)
}

func TestIsolateMoves_NoAnchor(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{name: "empty", text: ""},
		{name: "tags only", text: `[Event "Casual"] [Result "*"]`},
		{name: "knight to h3", text: "1. Nh3 d5 2. g3 e5"},
		{name: "knight to a3", text: "1.Na3 e5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.False(t, pgn.IsolateMoves(tt.text).IsPresent())
		})
	}
}
