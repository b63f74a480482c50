// Package filestore guarda cada clave como un archivo JSON <dir>/<key>.json.
package filestore

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	"github.com/spf13/afero"

	"github.com/jhoicas/inventario-tracker/internal/domain/repository"
)

var _ repository.KeyValueStore = (*Store)(nil)

var validKey = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)

// Store backend de archivos. La escritura va a un temporal y se renombra.
type Store struct {
	fs  afero.Fs
	dir string
}

// New construye el store sobre fs (afero.NewOsFs en producción, MemMapFs en tests) y crea dir.
func New(fs afero.Fs, dir string) (*Store, error) {
	if ok, _ := afero.DirExists(fs, dir); ok {
		return &Store{fs: fs, dir: dir}, nil
	}
	if err := fs.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("filestore: crear %s: %w", dir, err)
	}
	return &Store{fs: fs, dir: dir}, nil
}

// Load devuelve (nil, nil) si el archivo no existe.
func (s *Store) Load(ctx context.Context, key string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	path, err := s.path(key)
	if err != nil {
		return nil, err
	}
	data, err := afero.ReadFile(s.fs, path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("filestore: leer %s: %w", path, err)
	}
	return data, nil
}

// Save escribe en un archivo temporal y lo renombra sobre <key>.json.
func (s *Store) Save(ctx context.Context, key string, value []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	path, err := s.path(key)
	if err != nil {
		return err
	}
	tmp := path + ".tmp"
	if err := afero.WriteFile(s.fs, tmp, value, 0o644); err != nil {
		return fmt.Errorf("filestore: escribir %s: %w", tmp, err)
	}
	if err := s.fs.Rename(tmp, path); err != nil {
		_ = s.fs.Remove(tmp)
		return fmt.Errorf("filestore: renombrar %s: %w", path, err)
	}
	return nil
}

func (s *Store) path(key string) (string, error) {
	if !validKey.MatchString(key) {
		return "", fmt.Errorf("filestore: clave inválida %q", key)
	}
	return filepath.Join(s.dir, key+".json"), nil
}
