package repository

import (
	"context"

	"github.com/polkiloo/wasul/internal/domain/model"
)

// InvoiceRenderer turns an invoice snapshot into a printable document.
type InvoiceRenderer interface {
	Render(invoice model.Invoice) ([]byte, error)
}

// InvoiceArchive keeps rendered invoice documents addressable by number.
// Load returns domain ErrNotFound when no document exists.
type InvoiceArchive interface {
	Save(ctx context.Context, number string, document []byte) error
	Load(ctx context.Context, number string) ([]byte, error)
	Delete(ctx context.Context, number string) error
}
