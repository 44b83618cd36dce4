// Package replay plays a parsed move sequence on a board to check that every
// move is legal from the standard starting position, and names the opening.
package replay

import (
	"context"
	"sync"

	"github.com/corentings/chess/v2"
	"github.com/corentings/chess/v2/opening"

	apperrors "github.com/vytor/pgn2json/internal/errors"
	"github.com/vytor/pgn2json/internal/logger"
)

// Result is the board trail of a replayed game.
type Result struct {
	// FENs[i] is the position after ply i+1.
	FENs []string
	// UCI[i] is ply i+1 in long algebraic form.
	UCI []string
	// ECO and Opening name the deepest book line the game follows; empty
	// when the game leaves the book immediately.
	ECO     string
	Opening string
}

// Replayer checks a move sequence against the rules of chess.
type Replayer interface {
	Replay(ctx context.Context, moves []string) (Result, error)
}

// Board replays SAN moves with github.com/corentings/chess/v2.
type Board struct {
	bookOnce sync.Once
	book     *opening.BookECO
}

// NewBoard returns a Replayer starting from the standard position.
func NewBoard() *Board {
	return &Board{}
}

func (b *Board) openings() *opening.BookECO {
	b.bookOnce.Do(func() {
		b.book = opening.NewBookECO()
	})
	return b.book
}

// Replay plays moves in order. It stops at the first move that cannot be
// decoded in the current position and returns an ILLEGAL_MOVE AppError along
// with the positions reached so far.
func (b *Board) Replay(ctx context.Context, moves []string) (Result, error) {
	log := logger.FromContext(ctx)

	notation := chess.AlgebraicNotation{}
	pos := chess.StartingPosition()
	played := make([]*chess.Move, 0, len(moves))
	out := Result{
		FENs: make([]string, 0, len(moves)),
		UCI:  make([]string, 0, len(moves)),
	}

	for i, san := range moves {
		if err := ctx.Err(); err != nil {
			return out, err
		}

		move, err := notation.Decode(pos, san)
		if err != nil {
			log.Debug("replay stopped at ply %d (%s): %v", i+1, san, err)
			return out, apperrors.NewIllegalMoveError(i+1, san, err)
		}

		pos = pos.Update(move)
		played = append(played, move)
		out.FENs = append(out.FENs, pos.String())
		out.UCI = append(out.UCI, MoveToUCI(move))
	}

	if len(played) > 0 {
		if o := b.openings().Find(played); o != nil {
			out.ECO = o.Code()
			out.Opening = o.Title()
		}
	}

	log.Debug("replayed %d plies (opening %q)", len(moves), out.Opening)
	return out, nil
}
