package sinks

import (
	"bufio"
	"fmt"
	"os"
	"sync"

	"github.com/dmitrymomot/loghandler"
)

// File returns a handler Descriptor that appends one line per accepted
// record to the file at path, creating it if necessary. The file is opened
// in Init and closed in ProcessExit, matching the source material's
// handler lifecycle (open once at start, close once at the very end).
func File(path string) loghandler.Descriptor {
	var (
		mu sync.Mutex
		f  *os.File
		bw *bufio.Writer
	)

	return loghandler.Descriptor{
		Name: "file",
		Init: func(*loghandler.Param) error {
			var err error
			f, err = os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
			if err != nil {
				return fmt.Errorf("sinks: opening %q: %w", path, err)
			}
			bw = bufio.NewWriter(f)
			return nil
		},
		ProcessLog: func(r loghandler.Record, _ *loghandler.Param) error {
			mu.Lock()
			defer mu.Unlock()
			_, err := fmt.Fprintf(bw, "%s\t%s\t%s\t%s\n", r.Level, r.LoggerName, r.Funcname, r.LogMessage)
			return err
		},
		ProcessImplicitFlush: func(*loghandler.Param) error {
			mu.Lock()
			defer mu.Unlock()
			return bw.Flush()
		},
		ProcessExplicitFlush: func(*loghandler.Param) error {
			mu.Lock()
			defer mu.Unlock()
			return bw.Flush()
		},
		ProcessExit: func(*loghandler.Param) error {
			mu.Lock()
			defer mu.Unlock()
			if err := bw.Flush(); err != nil {
				_ = f.Close()
				return err
			}
			return f.Close()
		},
	}
}
