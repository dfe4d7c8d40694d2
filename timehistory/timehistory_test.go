package timehistory

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stepClock advances a fixed amount on every reading.
type stepClock struct {
	t    time.Time
	step time.Duration
}

func newStepClock(step time.Duration) *stepClock {
	return &stepClock{
		t:    time.Date(2013, 9, 4, 10, 0, 0, 0, time.UTC),
		step: step,
	}
}

func (c *stepClock) Now() time.Time {
	now := c.t
	c.t = c.t.Add(c.step)
	return now
}

func TestHeaderWrittenOnceWithFirstRow(t *testing.T) {
	var buf bytes.Buffer
	l, err := New(Config{Writer: &buf, Now: newStepClock(time.Second).Now})
	require.NoError(t, err)

	require.NoError(t, l.AddColumn("Speed", "m/s"))
	require.NoError(t, l.AddColumn("Altitude", "m"))

	assert.Empty(t, buf.String(), "header must wait for the first row")

	require.NoError(t, l.WriteRow(12.5, 300))
	require.NoError(t, l.WriteRow(13, 305))

	// The clock steps one second per reading: time zero is read while
	// writing the header, so the rows land at 1s and 2s.
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "Time,Speed,Altitude", lines[0])
	assert.Equal(t, "[sec],[m/s],[m]", lines[1])
	assert.Equal(t, "1.000000,12.5,300", lines[2])
	assert.Equal(t, "2.000000,13,305", lines[3])
}

func TestCustomDelimiter(t *testing.T) {
	var buf bytes.Buffer
	l, err := New(Config{Writer: &buf, Delimiter: '\t', Now: newStepClock(0).Now})
	require.NoError(t, err)

	require.NoError(t, l.AddColumn("Torque", "Nm"))
	require.NoError(t, l.WriteRow(42))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "Time\tTorque", lines[0])
	assert.Equal(t, "[sec]\t[Nm]", lines[1])
	assert.Equal(t, "0.000000\t42", lines[2])
}

func TestAddColumnAfterHeaderFails(t *testing.T) {
	var buf bytes.Buffer
	l, err := New(Config{Writer: &buf})
	require.NoError(t, err)

	require.NoError(t, l.AddColumn("Pressure", "Pa"))
	require.NoError(t, l.WriteRow(101325))

	assert.Error(t, l.AddColumn("Temperature", "K"))
}

func TestColumnCountMismatch(t *testing.T) {
	var buf bytes.Buffer
	l, err := New(Config{Writer: &buf})
	require.NoError(t, err)

	require.NoError(t, l.AddColumn("Current", "A"))
	require.NoError(t, l.AddColumn("Voltage", "V"))

	assert.Error(t, l.WriteRow(1.5))
	assert.Empty(t, buf.String(), "a rejected row must not write the header")
}

func TestNewRequiresWriter(t *testing.T) {
	_, err := New(Config{})
	assert.Error(t, err)
}
