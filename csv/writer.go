// Package csv provides a delimited-file implementation of
// headlines.TabularWriter.
package csv

import (
	"context"
	"encoding/csv"
	"os"
	"path/filepath"

	"github.com/fwojciec/headlines"
)

// DefaultDelimiter separates fields unless WithDelimiter is given.
const DefaultDelimiter = ','

// Ensure Writer implements headlines.TabularWriter at compile time.
var _ headlines.TabularWriter = (*Writer)(nil)

// Writer writes headlines as a delimited file with a header row.
// Files are written to a uniquely named temporary file beside path and
// renamed into place once complete, so a failed write never leaves a
// partial file at path and concurrent writes to one path do not collide.
type Writer struct {
	delimiter rune
}

// Option configures a Writer.
type Option func(*Writer)

// WithDelimiter sets the field delimiter.
func WithDelimiter(r rune) Option {
	return func(w *Writer) {
		w.delimiter = r
	}
}

// NewWriter creates a new Writer.
func NewWriter(opts ...Option) *Writer {
	w := &Writer{delimiter: DefaultDelimiter}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// WriteHeadlines implements headlines.TabularWriter.
func (w *Writer) WriteHeadlines(ctx context.Context, path string, headers []string, rows []headlines.Headline) error {
	if len(rows) == 0 {
		return headlines.Errorf(headlines.EINVALID, "no headlines to write to %s", path)
	}
	if len(headers) == 0 {
		return headlines.Errorf(headlines.EINVALID, "no headers for %s", path)
	}
	for _, h := range headers {
		if _, ok := field(rows[0], h); !ok {
			return headlines.Errorf(headlines.EINVALID, "unknown column %q", h)
		}
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}

	tmp, err := w.writeTemp(path, headers, rows)
	if err != nil {
		return err
	}

	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return err
	}
	return nil
}

// writeTemp writes the file next to path under a unique temporary name
// and returns that name. The temporary file is removed on failure.
func (w *Writer) writeTemp(path string, headers []string, rows []headlines.Headline) (name string, err error) {
	f, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".*.tmp")
	if err != nil {
		return "", err
	}
	name = f.Name()
	defer func() {
		if err != nil {
			_ = f.Close()
			_ = os.Remove(name)
		}
	}()

	cw := csv.NewWriter(f)
	cw.Comma = w.delimiter

	if err := cw.Write(headers); err != nil {
		return "", err
	}

	record := make([]string, len(headers))
	for _, row := range rows {
		for i, h := range headers {
			record[i], _ = field(row, h)
		}
		if err := cw.Write(record); err != nil {
			return "", err
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return "", err
	}
	if err := f.Close(); err != nil {
		return "", err
	}
	return name, nil
}

// field returns the value of the named column of h.
func field(h headlines.Headline, name string) (string, bool) {
	switch name {
	case "provider":
		return h.Provider, true
	case "title":
		return h.Title, true
	case "link":
		return h.Link, true
	}
	return "", false
}
