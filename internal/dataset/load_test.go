package dataset

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const smallCSV = `state,abbr,poverty,age,income,healthcare,smokes,obesity
Alabama,AL,19.3,38.6,42830,13.9,21.1,33.5
Alaska,AK,11.2,33.3,71583,15,19.9,29.7
`

func TestLoad(t *testing.T) {
	ds, err := Load(strings.NewReader(smallCSV))
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if ds.Len() != 2 {
		t.Fatalf("expected 2 records, got %d", ds.Len())
	}

	al := ds.At(0)
	if al.State != "Alabama" || al.Abbr != "AL" {
		t.Errorf("unexpected first record: %+v", al)
	}
	if al.Income != 42830 {
		t.Errorf("expected income 42830, got %f", al.Income)
	}
	if al.Obesity != 33.5 {
		t.Errorf("expected obesity 33.5, got %f", al.Obesity)
	}
}

func TestLoad_SpacedHeaderAndExtraColumns(t *testing.T) {
	src := `id, state, abbr, poverty, povertyMoe, age, income, healthcare, smokes, obesity
1, Texas, TX, 17.2, 0.2, 34.3, 53207, 24.9, 15.9, 31.9
`
	ds, err := Load(strings.NewReader(src))
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	tx := ds.At(0)
	if tx.Abbr != "TX" || tx.Healthcare != 24.9 || tx.Age != 34.3 {
		t.Errorf("columns mapped incorrectly: %+v", tx)
	}
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name   string
		src    string
		column bool
		parse  bool
	}{
		{"empty", "", false, false},
		{"header only", "state,abbr,poverty,age,income,healthcare,smokes,obesity\n", false, false},
		{"blank rows only", "state,abbr,poverty,age,income,healthcare,smokes,obesity\n,,,,,,,\n", false, false},
		{"missing column", "state,abbr,poverty,age,income,healthcare,smokes\nA,B,1,2,3,4,5\n", true, false},
		{"bad number", "state,abbr,poverty,age,income,healthcare,smokes,obesity\nA,B,x,2,3,4,5,6\n", false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(strings.NewReader(tt.src))
			if err == nil {
				t.Fatal("expected error")
			}
			if !errors.Is(err, ErrUnavailable) {
				t.Errorf("expected ErrUnavailable, got %v", err)
			}
			if tt.column && !errors.Is(err, ErrMissingColumn) {
				t.Errorf("expected ErrMissingColumn, got %v", err)
			}
			var pe *ParseError
			if tt.parse {
				if !errors.As(err, &pe) {
					t.Fatalf("expected ParseError, got %T", err)
				}
				if pe.Line != 2 || pe.Column != "poverty" {
					t.Errorf("unexpected parse error position: line %d column %s", pe.Line, pe.Column)
				}
			}
		})
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.csv")
	if err := os.WriteFile(path, []byte(smallCSV), 0644); err != nil {
		t.Fatal(err)
	}
	ds, err := LoadFile(path)
	if err != nil {
		t.Fatalf("load file failed: %v", err)
	}
	if ds.Len() != 2 {
		t.Errorf("expected 2 records, got %d", ds.Len())
	}

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.csv"))
	if !errors.Is(err, ErrUnavailable) {
		t.Errorf("expected ErrUnavailable for missing file, got %v", err)
	}
}

func TestSample(t *testing.T) {
	ds := Sample()
	if ds.Len() != 51 {
		t.Errorf("expected 51 records in sample, got %d", ds.Len())
	}
	if _, ok := ds.Lookup("dc"); !ok {
		t.Error("expected DC in sample")
	}
	if Sample() != ds {
		t.Error("sample should be loaded once")
	}
}
