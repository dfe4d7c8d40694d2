package timehistory

import (
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
)

// column pairs a heading title with its bracketed units.
type column struct {
	title string
	units string
}

// Config holds configuration for a time-history log.
type Config struct {
	// Writer receives the header and data rows.
	Writer io.Writer
	// Delimiter separates columns (default: ',').
	Delimiter byte
	// Now is the time source for the elapsed-time column (default:
	// time.Now).
	Now func() time.Time
}

// Log writes delimiter-separated rows of measured values, each stamped
// with the elapsed time since the header was written. NOT safe for
// concurrent use.
type Log struct {
	output        io.Writer
	delimiter     byte
	columns       []column
	headerWritten bool
	start         time.Time
	now           func() time.Time
}

// New creates a new time-history log.
func New(cfg Config) (*Log, error) {
	if cfg.Writer == nil {
		return nil, errors.New("timehistory: writer is required")
	}
	if cfg.Delimiter == 0 {
		cfg.Delimiter = ','
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}

	return &Log{
		output:    cfg.Writer,
		delimiter: cfg.Delimiter,
		now:       cfg.Now,
	}, nil
}

// AddColumn declares the next data column. Columns can only be added
// before the first row is written.
func (l *Log) AddColumn(title, units string) error {
	if l.headerWritten {
		return errors.New("timehistory: header already written")
	}
	l.columns = append(l.columns, column{title: title, units: "[" + units + "]"})
	return nil
}

// WriteRow writes one data row, stamped with elapsed seconds in the first
// column. The first row triggers the header and marks time zero. The
// number of values must match the declared columns.
func (l *Log) WriteRow(values ...float64) error {
	if len(values) != len(l.columns) {
		return errors.Errorf("timehistory: got %d values, want %d", len(values), len(l.columns))
	}

	if !l.headerWritten {
		if err := l.writeHeader(); err != nil {
			return err
		}
	}

	var row strings.Builder
	row.WriteString(strconv.FormatFloat(l.now().Sub(l.start).Seconds(), 'f', 6, 64))
	for _, v := range values {
		row.WriteByte(l.delimiter)
		row.WriteString(strconv.FormatFloat(v, 'g', -1, 64))
	}
	row.WriteByte('\n')

	_, err := io.WriteString(l.output, row.String())
	return errors.Wrap(err, "timehistory: write row")
}

// writeHeader emits the title and units lines and marks time zero.
func (l *Log) writeHeader() error {
	var header strings.Builder
	header.WriteString("Time")
	for _, c := range l.columns {
		header.WriteByte(l.delimiter)
		header.WriteString(c.title)
	}
	header.WriteByte('\n')

	header.WriteString("[sec]")
	for _, c := range l.columns {
		header.WriteByte(l.delimiter)
		header.WriteString(c.units)
	}
	header.WriteByte('\n')

	if _, err := io.WriteString(l.output, header.String()); err != nil {
		return errors.Wrap(err, "timehistory: write header")
	}

	l.headerWritten = true
	l.start = l.now()
	return nil
}

// Columns returns the number of declared data columns.
func (l *Log) Columns() int {
	return len(l.columns)
}
