package worker

import (
	"context"

	"github.com/vytor/pgn2json/internal/models"
)

// ConverterInterface defines the single-game conversion a ConvertJob runs.
// This avoids import cycles by not importing the services package.
type ConverterInterface interface {
	Convert(ctx context.Context, text string) (models.Conversion, error)
}

// ConvertJob converts one PGN text of a batch into its slot of the results.
type ConvertJob struct {
	Converter ConverterInterface
	Index     int
	Text      string
	Out       *models.Conversion
}

func (j *ConvertJob) Name() string { return "convert_pgn" }

func (j *ConvertJob) Run(ctx context.Context) error {
	conv, err := j.Converter.Convert(ctx, j.Text)
	conv.Index = j.Index
	conv.Err = err
	*j.Out = conv
	return err
}
