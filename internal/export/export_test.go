package export

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/san-kum/healthscatter/internal/dataset"
)

func TestCSVRoundTrip(t *testing.T) {
	src := dataset.Sample()
	var buf bytes.Buffer
	if err := CSV(&buf, src); err != nil {
		t.Fatalf("csv: %v", err)
	}
	if !strings.HasPrefix(buf.String(), "state,abbr,poverty,age,income,healthcare,smokes,obesity\n") {
		t.Errorf("unexpected header: %q", strings.SplitN(buf.String(), "\n", 2)[0])
	}
	if !strings.Contains(buf.String(), "Alabama,AL,19.3,38.6,42830,13.9,21.1,33.5") {
		t.Error("missing Alabama row")
	}

	got, err := dataset.Load(&buf)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if got.Len() != src.Len() {
		t.Fatalf("expected %d records, got %d", src.Len(), got.Len())
	}
	for i := 0; i < src.Len(); i++ {
		if got.At(i) != src.At(i) {
			t.Errorf("record %d differs: %+v vs %+v", i, got.At(i), src.At(i))
		}
	}
}

func TestJSON(t *testing.T) {
	ds := dataset.Sample().Filter(func(r dataset.Record) bool { return r.Abbr == "TX" })
	var buf bytes.Buffer
	if err := JSON(&buf, ds); err != nil {
		t.Fatalf("json: %v", err)
	}
	var doc document
	if err := json.Unmarshal(buf.Bytes(), &doc); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if doc.Count != 1 || len(doc.Records) != 1 || doc.Records[0].Healthcare != 24.9 {
		t.Errorf("unexpected document: %+v", doc)
	}
}

func TestWriteFile(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"out.csv", "out.JSON"} {
		path := filepath.Join(dir, name)
		if err := WriteFile(path, dataset.Sample()); err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		if info, err := os.Stat(path); err != nil || info.Size() == 0 {
			t.Errorf("%s: expected non-empty file", name)
		}
	}

	err := WriteFile(filepath.Join(dir, "out.xlsx"), dataset.Sample())
	if !errors.Is(err, ErrFormat) {
		t.Errorf("expected ErrFormat, got %v", err)
	}
}
