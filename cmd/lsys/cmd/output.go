package cmd

import (
	"io"
	"os"

	"github.com/pkg/errors"
)

// writeTo runs write against w and closes it. A failed close is reported
// unless write already failed.
func writeTo(w io.WriteCloser, write func(io.Writer) error) (err error) {
	defer func() {
		if cerr := w.Close(); cerr != nil && err == nil {
			err = errors.Wrap(cerr, "closing output")
		}
	}()
	return write(w)
}

// withOutput sends write to path, or to fallback when path is empty.
func withOutput(path string, fallback io.Writer, write func(io.Writer) error) error {
	if path == "" {
		return write(fallback)
	}
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "creating output")
	}
	return writeTo(f, write)
}
