package log

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/term"
)

var (
	diagLog  zerolog.Logger
	logMu    sync.Mutex
	logReady bool
	pid      int
)

// Init routes diagnostics to w. Color is only used when w is a terminal.
func Init(w io.Writer) {
	logMu.Lock()
	defer logMu.Unlock()

	pid = os.Getpid()

	consoleWriter := zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: "2006-01-02 15:04:05",
		NoColor:    !isTerminal(w),
	}
	diagLog = zerolog.New(consoleWriter).With().Timestamp().Int("pid", pid).Logger()

	logReady = true
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func Close() {
	logMu.Lock()
	defer logMu.Unlock()
	diagLog = zerolog.Nop()
	logReady = false
}

func Infof(format string, args ...any) {
	if logReady {
		diagLog.Info().Msg(fmt.Sprintf(format, args...))
	}
}

func Errorf(format string, args ...any) {
	if logReady {
		diagLog.Error().Msg(fmt.Sprintf(format, args...))
	}
}

func Warn(msg string) {
	if logReady {
		diagLog.Warn().Msg(msg)
	}
}

func RunStart(dir string) {
	if !logReady {
		return
	}
	diagLog.Info().Str("dir", dir).Msg("run_start")
}

func Rendered(size, bytes int, elapsed time.Duration) {
	if !logReady {
		return
	}
	diagLog.Info().
		Int("size", size).
		Int("bytes", bytes).
		Float64("render_ms", float64(elapsed.Microseconds())/1000).
		Msg("render")
}

func Wrote(path string, bytes int) {
	if !logReady {
		return
	}
	diagLog.Info().
		Str("path", path).
		Int("bytes", bytes).
		Msg("write")
}

func RunEnd(files int, elapsed time.Duration) {
	if !logReady {
		return
	}
	diagLog.Info().
		Int("files", files).
		Float64("total_ms", float64(elapsed.Microseconds())/1000).
		Msg("run_end")
}
