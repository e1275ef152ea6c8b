package book

import "fmt"

// Logger is the side channel validation failures are reported through,
// per spec.md §7 ("emit a diagnostic on a side channel"). The teacher
// writes straight to stdout with fmt.Println wherever it wants to
// surface something; this interface generalizes that into a seam a
// caller can redirect without this module depending on any particular
// logging library (see DESIGN.md for why none of the pack's
// teacher-eligible repos ground a third-party logging dependency here).
type Logger interface {
	Printf(format string, args ...any)
}

// stdLogger is the default Logger: it writes to stdout, the same
// destination the teacher's own diagnostics use.
type stdLogger struct{}

func (stdLogger) Printf(format string, args ...any) {
	fmt.Printf(format+"\n", args...)
}
