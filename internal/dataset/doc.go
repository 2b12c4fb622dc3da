// Package dataset loads and queries the state-level health statistics that
// the scatter chart plots.
//
// A [Dataset] is built once from a header-first CSV file and never mutated
// afterwards. Every record carries a state name, its abbreviation and six
// non-negative metrics addressed by [Field]:
//
//	state,abbr,poverty,age,income,healthcare,smokes,obesity
//
// Columns are matched by header name, so files carrying extra columns load
// unchanged. [Sample] returns the dataset embedded in the binary.
package dataset
