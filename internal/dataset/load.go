package dataset

import (
	"bytes"
	_ "embed"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"sync"
)

//go:embed data/data.csv
var sampleCSV []byte

var (
	sampleOnce sync.Once
	sample     *Dataset
)

// Sample returns the dataset embedded in the binary.
func Sample() *Dataset {
	sampleOnce.Do(func() {
		ds, err := Load(bytes.NewReader(sampleCSV))
		if err != nil {
			panic(fmt.Sprintf("dataset: embedded sample is corrupt: %v", err))
		}
		sample = ds
	})
	return sample
}

// LoadFile opens and parses the CSV file at path.
func LoadFile(path string) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	defer f.Close()
	return Load(f)
}

// Load parses a header-first CSV stream.
func Load(r io.Reader) (*Dataset, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: empty file", ErrUnavailable)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnavailable, err)
	}

	cols, err := columnIndex(header)
	if err != nil {
		return nil, err
	}

	var records []Record
	line := 1
	for {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		line++
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrUnavailable, err)
		}
		if blank(row) {
			continue
		}
		rec, err := parseRow(row, cols, line)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%w: no records", ErrUnavailable)
	}

	return &Dataset{records: records}, nil
}

type columns struct {
	state, abbr int
	metrics     [NumFields]int
}

func columnIndex(header []string) (columns, error) {
	pos := make(map[string]int, len(header))
	for i, h := range header {
		h = strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))
		pos[h] = i
	}
	find := func(name string) (int, error) {
		i, ok := pos[name]
		if !ok {
			return 0, fmt.Errorf("%w: %w: %s", ErrUnavailable, ErrMissingColumn, name)
		}
		return i, nil
	}

	var c columns
	var err error
	if c.state, err = find("state"); err != nil {
		return c, err
	}
	if c.abbr, err = find("abbr"); err != nil {
		return c, err
	}
	for _, f := range Fields() {
		if c.metrics[f], err = find(f.String()); err != nil {
			return c, err
		}
	}
	return c, nil
}

func parseRow(row []string, c columns, line int) (Record, error) {
	cell := func(i int) string {
		if i < len(row) {
			return strings.TrimSpace(row[i])
		}
		return ""
	}

	rec := Record{State: cell(c.state), Abbr: cell(c.abbr)}
	for _, f := range Fields() {
		raw := cell(c.metrics[f])
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return Record{}, &ParseError{Line: line, Column: f.String(), Value: raw, Wrapped: err}
		}
		rec.set(f, v)
	}
	return rec, nil
}

func blank(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
