package backprop

import (
	"fmt"
	"time"
)

// Verbosity is the global verbosity level.
var Verbosity = 1

// logf logs output if it exceeds the global verbosity level.
func logf(level int, format string, a ...interface{}) (n int, err error) {
	if level > Verbosity {
		return
	}
	t := time.Now()
	prefix := fmt.Sprintf("(%d) (%s) ", level, t.Format("15:04:05.999"))
	return fmt.Printf(prefix+format, a...)
}
