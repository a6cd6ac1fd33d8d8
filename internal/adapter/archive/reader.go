package archive

import (
	"compress/bzip2"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/couchcryptid/fars-report/internal/domain"
)

// Reader loads accident archives from a single directory.
type Reader struct {
	dir    string
	logger *slog.Logger
}

// New creates a Reader rooted at dir. An empty dir means the working
// directory.
func New(dir string, logger *slog.Logger) *Reader {
	if dir == "" {
		dir = "."
	}
	return &Reader{dir: dir, logger: logger}
}

// ReadYear reads and parses the archive for one year. A missing archive
// fails with an error naming the conventional filename and wrapping
// fs.ErrNotExist; decompression and parse failures carry the filename too.
func (r *Reader) ReadYear(year int) ([]domain.Accident, error) {
	name := Filename(year)
	f, compressed, err := r.open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var src io.Reader = f
	if compressed {
		src = bzip2.NewReader(f)
	}

	accidents, err := parse(src)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}

	r.logger.Debug("archive read", "file", name, "compressed", compressed, "records", len(accidents))
	return accidents, nil
}

// open opens the compressed archive, falling back to the uncompressed stem
// when only that exists.
func (r *Reader) open(name string) (*os.File, bool, error) {
	path := filepath.Join(r.dir, name)
	f, err := os.Open(path)
	if err == nil {
		return f, true, nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return nil, false, err
	}

	if f, plainErr := os.Open(strings.TrimSuffix(path, ".bz2")); plainErr == nil {
		return f, false, nil
	}
	return nil, false, fmt.Errorf("archive %s does not exist: %w", name, fs.ErrNotExist)
}

func parse(src io.Reader) ([]domain.Accident, error) {
	rows, err := csv.NewReader(src).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}
	if len(rows) == 0 {
		return nil, errors.New("empty archive")
	}

	header := rows[0]
	idx := domain.HeaderIndex(header)
	for _, col := range domain.RequiredColumns {
		if _, ok := idx[col]; !ok {
			return nil, fmt.Errorf("missing column %s", col)
		}
	}

	accidents := make([]domain.Accident, 0, len(rows)-1)
	for i, row := range rows[1:] {
		a, err := domain.ParseAccident(idx, row)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		accidents = append(accidents, a)
	}
	return accidents, nil
}
