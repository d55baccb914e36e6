// Package export writes rendered pages and data tables to files: the view
// tree as JSON, one SVG per chart, table dumps and a SQLite snapshot.
package export

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/theirongolddev/stoki/internal/dataset"
	"github.com/theirongolddev/stoki/internal/store"
	"github.com/theirongolddev/stoki/internal/view"

	json "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// Format is a table dump encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ErrUnknownFormat is returned for an unsupported table dump format.
var ErrUnknownFormat = errors.New("unknown format")

// ParseFormat accepts "json", "yaml" or "yml".
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	}
	return "", fmt.Errorf("%q: %w", s, ErrUnknownFormat)
}

// WritePageJSON writes the page as indented JSON.
func WritePageJSON(w io.Writer, p view.Page) error {
	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding page: %w", err)
	}
	data = append(data, '\n')
	_, err = w.Write(data)
	return err
}

// WriteTables dumps every table in the given format.
func WriteTables(w io.Writer, t dataset.Tables, f Format) error {
	switch f {
	case FormatJSON:
		data, err := json.MarshalIndent(t, "", "  ")
		if err != nil {
			return fmt.Errorf("encoding tables: %w", err)
		}
		data = append(data, '\n')
		_, err = w.Write(data)
		return err
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(t); err != nil {
			return fmt.Errorf("encoding tables: %w", err)
		}
		return enc.Close()
	}
	return fmt.Errorf("%q: %w", f, ErrUnknownFormat)
}

// Options controls Run.
type Options struct {
	Dir    string
	Focus  []view.Focus
	SQLite bool
	Now    time.Time
}

// Result lists the files Run wrote, in write order. SnapshotRows holds the
// per-table row counts read back from snapshot.db when one was written.
type Result struct {
	Files        []string
	SnapshotRows map[string]int
}

func slugify(s string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(s) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			dash = false
		case !dash && b.Len() > 0:
			b.WriteByte('-')
			dash = true
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}

// ChartFileName names the SVG for the i-th chart of a focus.
func ChartFileName(f view.Focus, i int, c view.Chart) string {
	return fmt.Sprintf("%s-%02d-%s.svg", f.Slug(), i+1, slugify(c.Title))
}

func writeFile(path string, fill func(io.Writer) error) error {
	var buf bytes.Buffer
	if err := fill(&buf); err != nil {
		return err
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil { //nolint:gosec // exports are meant to be shared
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// Run renders each focus and writes its page JSON and chart SVGs into
// opts.Dir, plus tables.json and, optionally, snapshot.db.
func Run(ctx context.Context, t dataset.Tables, opts Options) (Result, error) {
	var res Result
	if err := os.MkdirAll(opts.Dir, 0o755); err != nil {
		return res, fmt.Errorf("creating export dir: %w", err)
	}

	focuses := opts.Focus
	if len(focuses) == 0 {
		focuses = view.All()
	}

	for _, f := range focuses {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		page := view.Render(f, t)

		path := filepath.Join(opts.Dir, f.Slug()+".json")
		if err := writeFile(path, func(w io.Writer) error { return WritePageJSON(w, page) }); err != nil {
			return res, err
		}
		res.Files = append(res.Files, path)

		for i, c := range page.Charts() {
			path := filepath.Join(opts.Dir, ChartFileName(f, i, c))
			if err := writeFile(path, func(w io.Writer) error { return ChartSVG(w, c) }); err != nil {
				return res, fmt.Errorf("chart %q: %w", c.Title, err)
			}
			res.Files = append(res.Files, path)
		}
	}

	path := filepath.Join(opts.Dir, "tables.json")
	if err := writeFile(path, func(w io.Writer) error { return WriteTables(w, t, FormatJSON) }); err != nil {
		return res, err
	}
	res.Files = append(res.Files, path)

	if opts.SQLite {
		path := filepath.Join(opts.Dir, "snapshot.db")
		rows, err := writeSnapshot(ctx, path, t, opts.Now)
		if err != nil {
			return res, err
		}
		res.SnapshotRows = rows
		res.Files = append(res.Files, path)
	}

	return res, nil
}

// writeSnapshot stores t in a SQLite file and returns the row counts read
// back from it.
func writeSnapshot(ctx context.Context, path string, t dataset.Tables, now time.Time) (map[string]int, error) {
	if now.IsZero() {
		now = time.Now()
	}
	snap, err := store.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = snap.Close() }()

	if err := snap.Write(ctx, t, now); err != nil {
		return nil, fmt.Errorf("writing snapshot: %w", err)
	}
	rows, err := snap.RowCounts(ctx)
	if err != nil {
		return nil, err
	}
	return rows, snap.Close()
}
