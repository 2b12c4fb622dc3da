package dataset

import (
	"fmt"
	"strings"
)

// Field names one of the six numeric metrics of a record.
type Field int

const (
	Poverty Field = iota
	Age
	Income
	Healthcare
	Smokes
	Obesity
)

// NumFields is the number of metrics carried by a record.
const NumFields = 6

var fieldNames = [NumFields]string{"poverty", "age", "income", "healthcare", "smokes", "obesity"}

// String returns the CSV column name of the field.
func (f Field) String() string {
	if f < 0 || int(f) >= NumFields {
		return fmt.Sprintf("Field(%d)", int(f))
	}
	return fieldNames[f]
}

// Valid reports whether f is one of the declared metrics.
func (f Field) Valid() bool { return f >= 0 && int(f) < NumFields }

// MarshalText encodes the field as its column name.
func (f Field) MarshalText() ([]byte, error) {
	if !f.Valid() {
		return nil, fmt.Errorf("dataset: invalid field %d", int(f))
	}
	return []byte(fieldNames[f]), nil
}

// UnmarshalText decodes a column name.
func (f *Field) UnmarshalText(text []byte) error {
	parsed, ok := ParseField(string(text))
	if !ok {
		return fmt.Errorf("dataset: unknown field %q", string(text))
	}
	*f = parsed
	return nil
}

// ParseField maps a column name to its Field. Matching ignores case and
// surrounding spaces.
func ParseField(name string) (Field, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range fieldNames {
		if n == name {
			return Field(i), true
		}
	}
	return 0, false
}

// Fields returns every metric in column order.
func Fields() []Field {
	return []Field{Poverty, Age, Income, Healthcare, Smokes, Obesity}
}
