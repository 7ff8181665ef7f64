package display

import (
	"bytes"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harrison/findfiles/internal/models"
)

var (
	created  = time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	modified = time.Date(2024, 2, 3, 4, 5, 6, 0, time.UTC)
)

func record(path string, size uint64) models.FileRecord {
	return models.FileRecord{Path: path, Size: size, Created: created, Modified: modified}
}

// tableLine builds a table row with a 10 column path field, matching a
// FixedWidth(58) layout.
func tableLine(path, size, c, m string) string {
	return fmt.Sprintf("%-10s  %10s  %16s  %16s\n", path, size, c, m)
}

var tableRule = tableLine(
	strings.Repeat("-", 10),
	strings.Repeat("-", 10),
	strings.Repeat("-", 16),
	strings.Repeat("-", 16))

func render(t *testing.T, f Formatter, records []models.FileRecord) string {
	t.Helper()
	if f.Location == nil {
		f.Location = time.UTC
	}
	var buf bytes.Buffer
	require.NoError(t, f.Render(&buf, records))
	return buf.String()
}

func TestRenderTable(t *testing.T) {
	f := Formatter{Width: FixedWidth(58)}
	records := []models.FileRecord{
		record("/a/b.txt", 1),
		record("/long/directory/name.txt", 2048),
	}

	got := render(t, f, records)

	want := tableLine("Path", "Size (KB)", "Created", "Modified") +
		tableRule +
		tableLine("/a/b.txt", "1", "2024-01-02 03:04", "2024-02-03 04:05") +
		tableLine("/long/d...", "2", "2024-01-02 03:04", "2024-02-03 04:05") +
		tableRule +
		"Found 2 files\n"
	assert.Equal(t, want, got)
}

func TestRenderTableConcise(t *testing.T) {
	f := Formatter{Width: FixedWidth(58), Concise: true}

	got := render(t, f, []models.FileRecord{record("/a/b.txt", 0)})

	assert.Equal(t, tableLine("/a/b.txt", "0", "2024-01-02 03:04", "2024-02-03 04:05"), got)
}

func TestRenderTableNarrowWidthKeepsMinimumPathColumn(t *testing.T) {
	f := Formatter{Width: FixedWidth(10), Concise: true}

	got := render(t, f, []models.FileRecord{record("/abcdef", 0)})

	assert.True(t, strings.HasPrefix(got, "/...  "), "got %q", got)
}

func TestRenderTab(t *testing.T) {
	f := Formatter{Mode: ModeTab, Width: FixedWidth(20)}
	longPath := "/" + strings.Repeat("x", 100)

	got := render(t, f, []models.FileRecord{record("/a/b.txt", 1), record(longPath, 5000)})

	want := "Path\tSize\tCreated Date\tModified Date\n" +
		"/a/b.txt\t1\t2024-01-02 03:04:05\t2024-02-03 04:05:06\n" +
		longPath + "\t5000\t2024-01-02 03:04:05\t2024-02-03 04:05:06\n" +
		"----------\t--------\t---------------\t---------------\n" +
		"Found 2 files\n"
	assert.Equal(t, want, got)
}

func TestRenderBareIgnoresHeadersAndGrouping(t *testing.T) {
	for _, f := range []Formatter{
		{Mode: ModeBare},
		{Mode: ModeBare, Group: true},
		{Mode: ModeBare, Concise: false, SharedHeaders: true},
	} {
		got := render(t, f, []models.FileRecord{record("/z/1", 1), record("/a/2", 2)})
		assert.Equal(t, "/z/1\n/a/2\n", got)
	}
}

func TestRenderEmpty(t *testing.T) {
	got := render(t, Formatter{Mode: ModeTab}, nil)
	assert.Equal(t, "Path\tSize\tCreated Date\tModified Date\n"+tabSeparator+"\nFound 0 files\n", got)

	assert.Empty(t, render(t, Formatter{Mode: ModeBare}, nil))
	assert.Empty(t, render(t, Formatter{Concise: true}, nil))
}

func TestRenderUsesLocation(t *testing.T) {
	f := Formatter{Mode: ModeTab, Concise: true, Location: time.FixedZone("plus2", 2*3600)}

	got := render(t, f, []models.FileRecord{record("/a", 0)})

	assert.Equal(t, "/a\t0\t2024-01-02 05:04:05\t2024-02-03 06:05:06\n", got)
}

func groupedRecords() []models.FileRecord {
	sep := string(filepath.Separator)
	return []models.FileRecord{
		record(sep+"x"+sep+"a", 1),
		record(sep+"x"+sep+"b", 2),
		record(sep+"w"+sep+"c", 3),
	}
}

func TestRenderGroupedConcise(t *testing.T) {
	sep := string(filepath.Separator)
	f := Formatter{Mode: ModeTab, Group: true, Concise: true}

	got := render(t, f, groupedRecords())

	want := "Directory: " + sep + "w\n" +
		"c\t3\t2024-01-02 03:04:05\t2024-02-03 04:05:06\n" +
		"\n" +
		"Directory: " + sep + "x\n" +
		"a\t1\t2024-01-02 03:04:05\t2024-02-03 04:05:06\n" +
		"b\t2\t2024-01-02 03:04:05\t2024-02-03 04:05:06\n"
	assert.Equal(t, want, got)
}

func TestRenderGroupedHeaders(t *testing.T) {
	const tabHeader = "Name\tSize\tCreated Date\tModified Date\n"

	perGroup := render(t, Formatter{Mode: ModeTab, Group: true}, groupedRecords())
	assert.Equal(t, 2, strings.Count(perGroup, tabHeader))
	assert.True(t, strings.HasSuffix(perGroup, "Found 3 files in 2 directories\n"))

	shared := render(t, Formatter{Mode: ModeTab, Group: true, SharedHeaders: true}, groupedRecords())
	assert.Equal(t, 1, strings.Count(shared, tabHeader))
	assert.True(t, strings.HasPrefix(shared, tabHeader))
	assert.True(t, strings.HasSuffix(shared, "Found 3 files in 2 directories\n"))
}

func TestRenderDoesNotModifyRecords(t *testing.T) {
	records := groupedRecords()
	before := slices.Clone(records)

	render(t, Formatter{Group: true, Width: FixedWidth(80)}, records)

	assert.Equal(t, before, records)
}

func TestSizeKB(t *testing.T) {
	tests := []struct {
		size uint64
		want uint64
	}{
		{0, 0},
		{1, 1},
		{1023, 1},
		{1024, 1},
		{1025, 2},
		{10 * 1024, 10},
		{math.MaxUint64, 1 << 54},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, SizeKB(tt.size), "size %d", tt.size)
	}
}

func TestParseMode(t *testing.T) {
	for input, want := range map[string]Mode{"": ModeTable, "table": ModeTable, "TAB": ModeTab, " bare ": ModeBare} {
		got, err := ParseMode(input)
		require.NoError(t, err)
		assert.Equal(t, want, got)
		assert.NotEqual(t, "unknown", got.String())
	}

	_, err := ParseMode("csv")
	assert.Error(t, err)
}

func TestWidthProviders(t *testing.T) {
	assert.Equal(t, 120, FixedWidth(120).Width())
	assert.Equal(t, DefaultWidth, TerminalWidth{}.Width())

	f, err := os.CreateTemp(t.TempDir(), "out")
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, DefaultWidth, TerminalWidth{File: f}.Width())
	assert.Equal(t, 132, TerminalWidth{File: f, Fallback: 132}.Width())
}
