// Package export writes records back out in the layout the loader reads,
// or as JSON.
package export

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/san-kum/healthscatter/internal/dataset"
)

// ErrFormat indicates an output extension other than .csv or .json.
var ErrFormat = errors.New("export: unsupported format")

// Header is the CSV header, in loader column order.
var Header = []string{"state", "abbr", "poverty", "age", "income", "healthcare", "smokes", "obesity"}

// CSV writes ds with a header row. Numbers use the shortest exact form.
func CSV(w io.Writer, ds *dataset.Dataset) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Header); err != nil {
		return err
	}
	row := make([]string, len(Header))
	for i := 0; i < ds.Len(); i++ {
		r := ds.At(i)
		row[0], row[1] = r.State, r.Abbr
		for j, f := range dataset.Fields() {
			row[2+j] = strconv.FormatFloat(r.Value(f), 'f', -1, 64)
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

type document struct {
	Count   int              `json:"count"`
	Records []dataset.Record `json:"records"`
}

func JSON(w io.Writer, ds *dataset.Dataset) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(document{Count: ds.Len(), Records: ds.Records()})
}

// WriteFile picks the format from the extension of path.
func WriteFile(path string, ds *dataset.Dataset) error {
	var write func(io.Writer, *dataset.Dataset) error
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		write = CSV
	case ".json":
		write = JSON
	default:
		return fmt.Errorf("%w: %q", ErrFormat, filepath.Ext(path))
	}

	file, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := write(file, ds); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}
