package pdf

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	domainErrors "github.com/polkiloo/wasul/internal/domain/errors"
	"github.com/polkiloo/wasul/internal/domain/model"
)

// FileArchive keeps rendered invoices as <number>.pdf files in a directory.
type FileArchive struct {
	dir string
}

// NewFileArchive creates archive rooted at dir. The directory is created on first save.
func NewFileArchive(dir string) *FileArchive {
	return &FileArchive{dir: dir}
}

// Save writes document, replacing any previous file for number.
func (a *FileArchive) Save(ctx context.Context, number string, document []byte) error {
	path, err := a.path(number)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(a.dir, 0o755); err != nil {
		return fmt.Errorf("create invoice dir: %w", err)
	}
	if err := os.WriteFile(path, document, 0o644); err != nil {
		return fmt.Errorf("write invoice %s: %w", number, err)
	}
	return nil
}

// Load reads the archived document for number.
func (a *FileArchive) Load(ctx context.Context, number string) ([]byte, error) {
	path, err := a.path(number)
	if err != nil {
		return nil, err
	}
	document, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, fmt.Errorf("read invoice %s: %w", number, err)
	}
	return document, nil
}

// Delete removes the archived document for number; a missing file is not an error.
func (a *FileArchive) Delete(ctx context.Context, number string) error {
	path, err := a.path(number)
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("remove invoice %s: %w", number, err)
	}
	return nil
}

func (a *FileArchive) path(number string) (string, error) {
	if !model.ValidInvoiceNumber(number) {
		return "", domainErrors.ErrInvalidInvoice
	}
	return filepath.Join(a.dir, number+".pdf"), nil
}
