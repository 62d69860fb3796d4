// Package catalog turns a flat word/pos/definition/example CSV dictionary
// into a grouped JSON word list. Reading, folding and writing are separate
// functions so each stage can be driven from tests without touching disk.
package catalog

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/heartmarshall/tokipona-words/internal/domain"
)

// Source column names. They must match the header exactly.
const (
	ColumnWord       = "word"
	ColumnPOS        = "pos"
	ColumnDefinition = "definition"
	ColumnExample    = "example"
)

var requiredColumns = []string{ColumnWord, ColumnPOS, ColumnDefinition, ColumnExample}

// columns maps each required column to its position in a record.
type columns struct {
	word, pos, definition, example int
}

// ReadRows reads the whole CSV source into memory. The first record is the
// header; column order is free and extra columns are ignored. Values are
// returned verbatim, including quotes that appear inside unquoted fields.
// Line breaks inside quoted fields come back as "\n" (encoding/csv folds a
// quoted CRLF into LF).
//
// A leading byte-order mark is consumed (UTF-16 sources are decoded to
// UTF-8). An empty source yields no rows.
func ReadRows(r io.Reader) ([]domain.Row, error) {
	reader := csv.NewReader(transform.NewReader(r, unicode.BOMOverride(transform.Nop)))
	reader.FieldsPerRecord = -1 // short rows are reported per field below
	reader.LazyQuotes = true    // bare quotes in unquoted fields are data

	header, err := reader.Read()
	if err != nil {
		if err == io.EOF {
			return nil, nil
		}
		return nil, fmt.Errorf("read header: %w", readError(err))
	}

	headerLine, _ := reader.FieldPos(0)
	cols, err := mapColumns(header, headerLine)
	if err != nil {
		return nil, err
	}

	var rows []domain.Row
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row: %w", readError(err))
		}

		line, _ := reader.FieldPos(0)
		row, err := cols.row(record, line)
		if err != nil {
			return nil, err
		}
		rows = append(rows, row)
	}

	return rows, nil
}

func mapColumns(header []string, line int) (columns, error) {
	pos := make(map[string]int, len(header))
	for i, name := range header {
		pos[name] = i
	}

	for _, name := range requiredColumns {
		if _, ok := pos[name]; !ok {
			return columns{}, fmt.Errorf("read header: %w", domain.NewMissingFieldError(line, name))
		}
	}

	return columns{
		word:       pos[ColumnWord],
		pos:        pos[ColumnPOS],
		definition: pos[ColumnDefinition],
		example:    pos[ColumnExample],
	}, nil
}

func (c columns) row(record []string, line int) (domain.Row, error) {
	fields := [...]struct {
		name string
		idx  int
	}{
		{ColumnWord, c.word},
		{ColumnPOS, c.pos},
		{ColumnDefinition, c.definition},
		{ColumnExample, c.example},
	}
	for _, f := range fields {
		if f.idx >= len(record) {
			return domain.Row{}, domain.NewMissingFieldError(line, f.name)
		}
	}

	return domain.Row{
		Word:       record[c.word],
		POS:        record[c.pos],
		Definition: record[c.definition],
		Example:    record[c.example],
	}, nil
}

// readError classifies a csv.Reader error: syntax problems are malformed
// rows, anything else means the source itself could not be read.
func readError(err error) error {
	var perr *csv.ParseError
	if errors.As(err, &perr) {
		return &domain.RowError{Line: perr.StartLine, Err: perr.Err}
	}
	return fmt.Errorf("%w: %w", domain.ErrSourceNotFound, err)
}
