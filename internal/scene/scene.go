// Package scene reads and writes scene files on disk. Decoding and encoding
// of the records themselves is left to the battle package.
package scene

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"

	"github.com/dcrodman/kyactus/internal/battle"
)

// File is a scene file loaded into memory.
type File struct {
	Path       string
	Format     battle.SceneFormat
	Structures []battle.BattleStructure
}

// Load reads the scene file at path and decodes every battle structure in it.
func Load(path string, format battle.SceneFormat, logger *logrus.Logger) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scene file: %w", err)
	}

	structures, err := battle.DecodeMany(data, format.Records)
	if err != nil {
		return nil, fmt.Errorf("%s (%s): %w", path, format.Name, err)
	}

	logger.WithFields(logrus.Fields{
		"path":    path,
		"format":  format.Name,
		"records": len(structures),
	}).Info("loaded scene file")

	return &File{Path: path, Format: format, Structures: structures}, nil
}

// ReadRaw reads the scene file at path and checks that its size matches
// format, returning the undecoded bytes.
func ReadRaw(path string, format battle.SceneFormat) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scene file: %w", err)
	}
	if len(data) != format.Size() {
		return nil, fmt.Errorf("%s (%s): %w", path, format.Name,
			&battle.SizeError{What: "scene length", Expected: format.Size(), Actual: len(data)})
	}
	return data, nil
}

// Save encodes f's battle structures and writes them to path. The data is
// written to a temporary file in the same directory first and renamed over
// path, so a failed save leaves any existing file intact.
func Save(f *File, path string, logger *logrus.Logger) error {
	data, err := battle.EncodeMany(f.Structures, f.Format.Records)
	if err != nil {
		return fmt.Errorf("encoding scene file: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("creating temporary file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("writing scene file: %w", err)
	}
	if err := tmp.Chmod(0644); err != nil {
		tmp.Close()
		return fmt.Errorf("writing scene file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("writing scene file: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("replacing scene file: %w", err)
	}

	logger.WithFields(logrus.Fields{
		"path":    path,
		"format":  f.Format.Name,
		"records": len(f.Structures),
		"bytes":   len(data),
	}).Info("saved scene file")
	return nil
}
