// Package display renders search results for the terminal or a file.
//
// A Formatter turns a sorted slice of file records into one of three
// layouts:
//
// # Table
//
// The default. Four columns fitted to the line width: path (left aligned,
// truncated with "..." when too long), size in KB rounded up, creation
// time and modification time (minute precision):
//
//	f := display.Formatter{Width: display.TerminalWidth{File: os.Stdout}}
//	f.Render(os.Stdout, records)
//
// # Tab
//
// Tab separated columns with the full byte size and second precision
// timestamps. Paths are never truncated, which makes this the layout for
// spreadsheets and scripts.
//
// # Bare
//
// One path per line and nothing else.
//
// Table and tab output carry a header and a "Found N files" footer unless
// Concise is set. With Group set, records are partitioned by directory and
// each directory is introduced by a "Directory: <dir>" line.
//
// The line width is a capability rather than a global: TerminalWidth reads
// it from a terminal, FixedWidth pins it for tests and the --width flag.
//
// All functions accept io.Writer interfaces for testability and flexibility.
package display
