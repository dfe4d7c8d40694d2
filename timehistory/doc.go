// Package timehistory provides a single-sink logger for plottable
// time-history data.
//
// Columns are declared up front with titles and units; the first data row
// triggers a two-line header (titles, then bracketed units) and marks
// time zero. Every row is stamped with elapsed seconds in the first
// column. The delimiter is configurable (default: comma, i.e. CSV).
//
// Log is NOT safe for concurrent use.
package timehistory
