package pgn

import (
	"strconv"
	"strings"

	"github.com/vytor/pgn2json/internal/models"
	"github.com/vytor/pgn2json/internal/optional"
)

const lineWidth = 80

var exportNames = map[TagName]string{
	TagEvent:  "Event",
	TagSite:   "Site",
	TagDate:   "Date",
	TagRound:  "Round",
	TagWhite:  "White",
	TagBlack:  "Black",
	TagResult: "Result",
}

var tagValueEscaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`)

// Render writes g back out as PGN: present tags in roster order, a blank
// line, numbered movetext wrapped at 80 columns and a game termination marker.
func Render(g models.ParsedGame) string {
	var sb strings.Builder

	metadata := g.Metadata()
	for _, name := range knownTags {
		value, ok := metadata[string(name)].Get()
		if !ok {
			continue
		}
		sb.WriteString("[")
		sb.WriteString(exportNames[name])
		sb.WriteString(` "`)
		sb.WriteString(tagValueEscaper.Replace(value))
		sb.WriteString("\"]\n")
	}
	if sb.Len() > 0 {
		sb.WriteString("\n")
	}

	tokens := movetextTokens(g.Moves)
	tokens = append(tokens, termination(g.Result))

	col := 0
	for _, tok := range tokens {
		if col > 0 && col+1+len(tok) > lineWidth {
			sb.WriteString("\n")
			col = 0
		}
		if col > 0 {
			sb.WriteString(" ")
			col++
		}
		sb.WriteString(tok)
		col += len(tok)
	}
	sb.WriteString("\n")

	return sb.String()
}

func movetextTokens(moves optional.Value[[]string]) []string {
	list, _ := moves.Get()
	out := make([]string, 0, len(list)+len(list)/2+1)
	for i, move := range list {
		if i%2 == 0 {
			out = append(out, strconv.Itoa(i/2+1)+".")
		}
		out = append(out, move)
	}
	return out
}

func termination(result optional.Value[string]) string {
	switch r := result.OrElse("*"); r {
	case "1-0", "0-1", "1/2-1/2":
		return r
	default:
		return "*"
	}
}
