// Package log provides leveled diagnostic output on stderr. Levels are
// cumulative: Detailed includes Basic, Trace includes both. The zero value
// Off suppresses everything, keeping stdout clean for piped output.
package log

import (
	"fmt"
	"os"
	"sync/atomic"
)

type Level int32

const (
	Off Level = iota
	Basic
	Detailed
	Trace
)

func (l Level) String() string {
	switch l {
	case Off:
		return "off"
	case Basic:
		return "basic"
	case Detailed:
		return "detailed"
	case Trace:
		return "trace"
	}
	return fmt.Sprintf("Level(%d)", int(l))
}

// LevelFromInt maps a verbosity count (e.g. repeated -v flags) to a Level,
// clamping out-of-range values.
func LevelFromInt(n int) Level {
	switch {
	case n <= 0:
		return Off
	case n >= int(Trace):
		return Trace
	default:
		return Level(n)
	}
}

var current atomic.Int32

func SetLevel(l Level) {
	current.Store(int32(l))
}

func CurrentLevel() Level {
	return Level(current.Load())
}

func logf(min Level, format string, args ...any) {
	if CurrentLevel() < min {
		return
	}
	fmt.Fprintf(os.Stderr, format+"\n", args...)
}

func Basicf(format string, args ...any)    { logf(Basic, format, args...) }
func Detailedf(format string, args ...any) { logf(Detailed, format, args...) }
func Tracef(format string, args ...any)    { logf(Trace, format, args...) }

// Errorf always prints, regardless of level.
func Errorf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
}
