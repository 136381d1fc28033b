package driven

import (
	"context"
	"io"

	"github.com/custodia-labs/corpora-cli/internal/core/domain"
)

// Reader parses a bibliographic source into domain documents, preserving
// record order. Identity assignment is the corpus's job, not the reader's.
type Reader interface {
	Read(ctx context.Context, src io.Reader) ([]domain.Document, error)
}
