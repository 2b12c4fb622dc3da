package dataset

import (
	"sort"
	"strings"
)

// Record is one state's row.
type Record struct {
	State      string  `json:"state"`
	Abbr       string  `json:"abbr"`
	Poverty    float64 `json:"poverty"`
	Age        float64 `json:"age"`
	Income     float64 `json:"income"`
	Healthcare float64 `json:"healthcare"`
	Smokes     float64 `json:"smokes"`
	Obesity    float64 `json:"obesity"`
}

// Value returns the metric addressed by f.
func (r Record) Value(f Field) float64 {
	switch f {
	case Poverty:
		return r.Poverty
	case Age:
		return r.Age
	case Income:
		return r.Income
	case Healthcare:
		return r.Healthcare
	case Smokes:
		return r.Smokes
	case Obesity:
		return r.Obesity
	}
	return 0
}

func (r *Record) set(f Field, v float64) {
	switch f {
	case Poverty:
		r.Poverty = v
	case Age:
		r.Age = v
	case Income:
		r.Income = v
	case Healthcare:
		r.Healthcare = v
	case Smokes:
		r.Smokes = v
	case Obesity:
		r.Obesity = v
	}
}

// Extent is the closed interval covered by a field's values.
type Extent struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// Dataset is an immutable, ordered collection of records.
type Dataset struct {
	records []Record
}

// New copies records into a Dataset.
func New(records []Record) *Dataset {
	rs := make([]Record, len(records))
	copy(rs, records)
	return &Dataset{records: rs}
}

// Len returns the number of records.
func (d *Dataset) Len() int { return len(d.records) }

// At returns the i-th record in file order.
func (d *Dataset) At(i int) Record { return d.records[i] }

// Records returns a copy of all records in file order.
func (d *Dataset) Records() []Record {
	rs := make([]Record, len(d.records))
	copy(rs, d.records)
	return rs
}

// Values returns the field's values in file order.
func (d *Dataset) Values(f Field) []float64 {
	vals := make([]float64, len(d.records))
	for i, r := range d.records {
		vals[i] = r.Value(f)
	}
	return vals
}

// Sorted returns the field's values in ascending order.
func (d *Dataset) Sorted(f Field) []float64 {
	vals := d.Values(f)
	sort.Float64s(vals)
	return vals
}

// Extent returns the min and max of a field. ok is false for an empty
// dataset.
func (d *Dataset) Extent(f Field) (ext Extent, ok bool) {
	if len(d.records) == 0 {
		return Extent{}, false
	}
	ext.Min = d.records[0].Value(f)
	ext.Max = ext.Min
	for _, r := range d.records[1:] {
		v := r.Value(f)
		if v < ext.Min {
			ext.Min = v
		}
		if v > ext.Max {
			ext.Max = v
		}
	}
	return ext, true
}

// Lookup finds a record by abbreviation, ignoring case.
func (d *Dataset) Lookup(abbr string) (Record, bool) {
	for _, r := range d.records {
		if strings.EqualFold(r.Abbr, abbr) {
			return r, true
		}
	}
	return Record{}, false
}

// Filter returns a new Dataset holding the records keep accepts.
func (d *Dataset) Filter(keep func(Record) bool) *Dataset {
	out := make([]Record, 0, len(d.records))
	for _, r := range d.records {
		if keep(r) {
			out = append(out, r)
		}
	}
	return &Dataset{records: out}
}
