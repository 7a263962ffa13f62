package parser

import (
	"io"

	"algocat/internal/domain"
)

// Parser reads a report back from its serialized form
type Parser interface {
	Parse(r io.Reader) (*domain.Report, error)
}

// Formatter writes a report in a serialized form
type Formatter interface {
	Format(w io.Writer, report *domain.Report) error
}
