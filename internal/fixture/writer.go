// Package fixture reads and writes team competition fixtures as CSV.
package fixture

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/okian/teamgen/internal/domain/team"
)

// File permission constants.
const (
	directoryPermission = 0750
	filePermission      = 0644
)

// WriteOption configures the CSV encoding.
type WriteOption func(*writeOptions)

type writeOptions struct {
	crlf bool
}

// WithCRLF terminates rows with \r\n (the default) or \n.
func WithCRLF(crlf bool) WriteOption {
	return func(o *writeOptions) {
		o.crlf = crlf
	}
}

func newWriteOptions(opts []WriteOption) writeOptions {
	o := writeOptions{crlf: true}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WriteCSV writes records to path, creating parent directories as needed,
// and returns the number of bytes written. The file is closed on every path.
func WriteCSV(ctx context.Context, path string, records []team.Record, opts ...WriteOption) (written int64, err error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, directoryPermission); err != nil {
			return 0, fmt.Errorf("failed to create directory: %w", err)
		}
	}

	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, filePermission)
	if err != nil {
		return 0, fmt.Errorf("failed to create file: %w", err)
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil {
			err = errors.Join(err, fmt.Errorf("failed to close file: %w", closeErr))
		}
	}()

	cw := &countingWriter{w: file}
	if err := Encode(cw, records, opts...); err != nil {
		return cw.n, err
	}
	return cw.n, nil
}

// Encode writes the header and one row per record to w.
func Encode(w io.Writer, records []team.Record, opts ...WriteOption) error {
	o := newWriteOptions(opts)

	cw := csv.NewWriter(w)
	cw.UseCRLF = o.crlf

	if err := cw.Write(team.Header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	for i, r := range records {
		if err := cw.Write(r.Fields()); err != nil {
			return fmt.Errorf("failed to write record %d: %w", i, err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("failed to flush records: %w", err)
	}
	return nil
}

// countingWriter tracks bytes that reached the underlying writer.
type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}
