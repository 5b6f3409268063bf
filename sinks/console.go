package sinks

import (
	"bufio"
	"fmt"
	"io"
	"sync"

	"golang.org/x/text/width"

	"github.com/dmitrymomot/loghandler"
)

// Console returns a handler Descriptor that writes one human-readable line
// per accepted record to w, column-aligning the logger name with
// golang.org/x/text/width so East Asian wide runes don't throw off
// alignment the way naive rune counting would. Flushing (implicit or
// explicit) flushes the underlying bufio.Writer.
func Console(w io.Writer) loghandler.Descriptor {
	bw := bufio.NewWriter(w)
	var mu sync.Mutex

	flush := func(*loghandler.Param) error {
		mu.Lock()
		defer mu.Unlock()
		return bw.Flush()
	}

	return loghandler.Descriptor{
		Name: "console",
		ProcessLog: func(r loghandler.Record, _ *loghandler.Param) error {
			mu.Lock()
			defer mu.Unlock()
			_, err := fmt.Fprintf(bw, "%-8s %s %s\n", r.Level, padLoggerName(r.LoggerName, 24), r.LogMessage)
			return err
		},
		ProcessImplicitFlush: flush,
		ProcessExplicitFlush: flush,
		ProcessExit:          flush,
	}
}

// padLoggerName right-pads name to at least width columns, counting each
// rune's display width rather than its byte or rune count.
func padLoggerName(name string, cols int) string {
	w := 0
	for _, r := range name {
		switch width.LookupRune(r).Kind() {
		case width.EastAsianWide, width.EastAsianFullwidth:
			w += 2
		default:
			w++
		}
	}
	if w >= cols {
		return name
	}
	pad := make([]byte, cols-w)
	for i := range pad {
		pad[i] = ' '
	}
	return name + string(pad)
}
