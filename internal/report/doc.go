// Package report renders scan records as a sectioned table, CSV, or JSON.
//
// The table groups records by classification into four fixed sections and
// ends with a totals summary. CSV and JSON share the Record field order, so
// the three formats stay column-compatible.
package report
