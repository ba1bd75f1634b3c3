package pkg

import (
	"io"

	"go.uber.org/multierr"
)

// CombinedWriter fans a write out to all writers (e.g. stdout + rotated log file).
// A failing writer does not stop the others.
type CombinedWriter struct {
	Writers []io.Writer
}

func NewCombinedWriter(writers ...io.Writer) *CombinedWriter {
	return &CombinedWriter{
		Writers: append([]io.Writer(nil), writers...),
	}
}

func (cw *CombinedWriter) Write(p []byte) (n int, err error) {
	for _, w := range cw.Writers {
		written, wErr := w.Write(p)
		if wErr != nil {
			err = multierr.Append(err, wErr)
			continue
		}
		n += written
	}
	return n, err
}
