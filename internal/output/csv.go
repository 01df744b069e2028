// Package output writes the dataset CSV and renders the summary tables
// printed after a run.
package output

import (
	"encoding/csv"
	"os"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/orbitdata/query-data/internal/dataset"
	"github.com/orbitdata/query-data/internal/errors"
	"github.com/orbitdata/query-data/internal/logger"
)

const (
	filePermissions = 0o644
	dirPermissions  = 0o755
)

// Writer writes datasets to a filesystem
type Writer struct {
	fs     afero.Fs
	logger logger.Logger
}

// NewWriter returns a Writer on fs. A nil fs uses the OS filesystem and a
// nil log the global logger.
func NewWriter(fs afero.Fs, log logger.Logger) *Writer {
	if fs == nil {
		fs = afero.NewOsFs()
	}
	if log == nil {
		log = logger.Global().Module("output")
	}
	return &Writer{fs: fs, logger: log}
}

// WriteCSV writes the header and one row per record to path. The data is
// written to a temporary file in the same directory and renamed over path
// only once complete, so a failed run never leaves a partial file behind
// and an existing file is replaced atomically.
func (w *Writer) WriteCSV(path string, records []dataset.Record) (err error) {
	if path == "" {
		return errors.Newf("output path is required").
			Category(errors.CategoryValidation).
			Component("output").
			Build()
	}

	dir := filepath.Dir(path)
	if err := w.fs.MkdirAll(dir, dirPermissions); err != nil {
		return errors.New(err).
			Category(errors.CategoryFileIO).
			Component("output").
			FileContext(path).
			Context("operation", "create_output_dir").
			Build()
	}

	tmp, err := afero.TempFile(w.fs, dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return errors.New(err).
			Category(errors.CategoryFileIO).
			Component("output").
			FileContext(path).
			Context("operation", "create_temp_file").
			Build()
	}
	tmpName := tmp.Name()

	defer func() {
		if err == nil {
			return
		}
		_ = tmp.Close()
		if rmErr := w.fs.Remove(tmpName); rmErr != nil && !os.IsNotExist(rmErr) {
			w.logger.Warn("Failed to remove temporary file",
				logger.String("path", tmpName),
				logger.Error(rmErr))
		}
	}()

	cw := csv.NewWriter(tmp)
	if err := cw.Write(dataset.Header); err != nil {
		return writeError(err, path)
	}
	for i := range records {
		if err := cw.Write(records[i].Fields()); err != nil {
			return writeError(err, path)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return writeError(err, path)
	}

	if err := tmp.Sync(); err != nil {
		return writeError(err, path)
	}
	if err := tmp.Close(); err != nil {
		return writeError(err, path)
	}
	if err := w.fs.Chmod(tmpName, filePermissions); err != nil {
		return writeError(err, path)
	}
	if err := w.fs.Rename(tmpName, path); err != nil {
		return errors.New(err).
			Category(errors.CategoryFileIO).
			Component("output").
			FileContext(path).
			Context("operation", "rename_temp_file").
			Build()
	}

	w.logger.Info("Dataset written",
		logger.String("path", path),
		logger.Int("rows", len(records)))

	return nil
}

func writeError(err error, path string) error {
	return errors.New(err).
		Category(errors.CategoryFileIO).
		Component("output").
		FileContext(path).
		Context("operation", "write_csv").
		Build()
}
