package recording

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/klauspost/compress/gzip"
)

// Open reads the recording at path, choosing the format by extension:
// ".edf" is EDF, ".gz" a gzip-compressed sample table, anything else a
// plain sample table.
func Open(path string, opts ...Option) (rec *Recording, err error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		err = errors.Join(err, f.Close())
	}()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".edf":
		rec, err = ReadEDF(f, opts...)
	case ".gz":
		zr, zerr := gzip.NewReader(f)
		if zerr != nil {
			return nil, fmt.Errorf("%s: %w", path, zerr)
		}
		rec, err = ReadText(zr, opts...)
		err = errors.Join(err, zr.Close())
	default:
		rec, err = ReadText(f, opts...)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return rec, nil
}

// Save writes rec to path using the same extension rules as Open.
func Save(path string, rec *Recording) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		err = errors.Join(err, f.Close())
	}()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".edf":
		return WriteEDF(f, rec, time.Now())
	case ".gz":
		zw := gzip.NewWriter(f)
		if err := WriteText(zw, rec); err != nil {
			return err
		}
		return zw.Close()
	default:
		return WriteText(f, rec)
	}
}
