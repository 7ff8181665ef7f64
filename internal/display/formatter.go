package display

import (
	"bufio"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/mattn/go-runewidth"
	"github.com/samber/lo"

	"github.com/harrison/findfiles/internal/models"
)

// Mode selects the layout of each result row.
type Mode int

const (
	// ModeTable prints width-fitted columns with sizes in KB.
	ModeTable Mode = iota
	// ModeTab prints tab separated columns with full byte sizes.
	ModeTab
	// ModeBare prints paths only.
	ModeBare
)

// String returns the configuration name of the mode.
func (m Mode) String() string {
	switch m {
	case ModeTable:
		return "table"
	case ModeTab:
		return "tab"
	case ModeBare:
		return "bare"
	default:
		return "unknown"
	}
}

// ParseMode converts a configuration name into a Mode.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "table":
		return ModeTable, nil
	case "tab":
		return ModeTab, nil
	case "bare":
		return ModeBare, nil
	default:
		return ModeTable, fmt.Errorf("invalid display mode %q (must be table, tab, or bare)", s)
	}
}

// Column layout of table mode.
const (
	sizeWidth     = 10
	createdWidth  = 16
	modifiedWidth = 16
	spacing       = 2
	fixedWidth    = sizeWidth + createdWidth + modifiedWidth + spacing*3
	minPathWidth  = 4

	tableTimeLayout = "2006-01-02 15:04"
	tabTimeLayout   = "2006-01-02 15:04:05"
)

// tabSeparator is the bottom rule printed in tab mode.
var tabSeparator = strings.Join([]string{
	strings.Repeat("-", 10),
	strings.Repeat("-", 8),
	strings.Repeat("-", 15),
	strings.Repeat("-", 15),
}, "\t")

// Formatter renders file records for display.
type Formatter struct {
	Mode Mode
	// Concise suppresses headers and the summary footer. Bare mode is
	// always concise.
	Concise bool
	// Group partitions the output by containing directory.
	Group bool
	// SharedHeaders prints a single header for grouped output instead of
	// one per directory.
	SharedHeaders bool
	// Width supplies the line width for table mode. DefaultWidth is used
	// when nil.
	Width WidthProvider
	// Location for timestamps. Local time when nil.
	Location *time.Location
}

// Render writes records to w in the configured layout. It does not modify
// records.
func (f Formatter) Render(w io.Writer, records []models.FileRecord) error {
	bw := bufio.NewWriter(w)
	l := f.layout()

	switch {
	case f.Mode == ModeBare:
		for _, r := range records {
			fmt.Fprintln(bw, r.Path)
		}
	case f.Group:
		f.renderGrouped(bw, l, records)
	default:
		if !f.Concise {
			l.header(bw, "Path")
		}
		for _, r := range records {
			l.row(bw, r.Path, r)
		}
		if !f.Concise {
			l.footer(bw)
			fmt.Fprintf(bw, "Found %d files\n", len(records))
		}
	}

	return bw.Flush()
}

func (f Formatter) renderGrouped(w io.Writer, l layout, records []models.FileRecord) {
	groups := lo.GroupBy(records, func(r models.FileRecord) string {
		return r.Dir()
	})
	dirs := lo.Keys(groups)
	slices.Sort(dirs)

	if !f.Concise && f.SharedHeaders {
		l.header(w, "Name")
	}

	for i, dir := range dirs {
		if i > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintf(w, "Directory: %s\n", dir)
		if !f.Concise && !f.SharedHeaders {
			l.header(w, "Name")
		}
		for _, r := range groups[dir] {
			l.row(w, r.Name(), r)
		}
	}

	if !f.Concise {
		if len(dirs) > 0 {
			fmt.Fprintln(w)
		}
		l.footer(w)
		fmt.Fprintf(w, "Found %d files in %d directories\n", len(records), len(dirs))
	}
}

// layout holds the resolved settings for one Render call.
type layout struct {
	tab       bool
	pathWidth int
	loc       *time.Location
}

func (f Formatter) layout() layout {
	l := layout{tab: f.Mode == ModeTab, loc: f.Location}
	if l.loc == nil {
		l.loc = time.Local
	}

	width := DefaultWidth
	if f.Width != nil {
		width = f.Width.Width()
	}
	l.pathWidth = max(width-fixedWidth, minPathWidth)

	return l
}

func (l layout) header(w io.Writer, first string) {
	if l.tab {
		fmt.Fprintf(w, "%s\tSize\tCreated Date\tModified Date\n", first)
		return
	}
	l.columns(w, first, "Size (KB)", "Created", "Modified")
	l.rule(w)
}

func (l layout) footer(w io.Writer) {
	if l.tab {
		fmt.Fprintln(w, tabSeparator)
		return
	}
	l.rule(w)
}

func (l layout) rule(w io.Writer) {
	l.columns(w,
		strings.Repeat("-", l.pathWidth),
		strings.Repeat("-", sizeWidth),
		strings.Repeat("-", createdWidth),
		strings.Repeat("-", modifiedWidth))
}

func (l layout) row(w io.Writer, label string, r models.FileRecord) {
	if l.tab {
		fmt.Fprintf(w, "%s\t%d\t%s\t%s\n",
			label,
			r.Size,
			r.Created.In(l.loc).Format(tabTimeLayout),
			r.Modified.In(l.loc).Format(tabTimeLayout))
		return
	}

	l.columns(w,
		runewidth.Truncate(label, l.pathWidth, "..."),
		strconv.FormatUint(SizeKB(r.Size), 10),
		r.Created.In(l.loc).Format(tableTimeLayout),
		r.Modified.In(l.loc).Format(tableTimeLayout))
}

func (l layout) columns(w io.Writer, path, size, created, modified string) {
	gap := strings.Repeat(" ", spacing)
	fmt.Fprint(w,
		runewidth.FillRight(path, l.pathWidth), gap,
		runewidth.FillLeft(size, sizeWidth), gap,
		runewidth.FillLeft(created, createdWidth), gap,
		runewidth.FillLeft(modified, modifiedWidth), "\n")
}

// SizeKB converts a byte count to kilobytes, rounding up.
func SizeKB(size uint64) uint64 {
	return size/1024 + min(size%1024, 1)
}
