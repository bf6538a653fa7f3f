package test

import (
	"context"
	"fmt"
	"sync"

	domainErrors "github.com/polkiloo/wasul/internal/domain/errors"
	"github.com/polkiloo/wasul/internal/domain/model"
	"github.com/polkiloo/wasul/internal/pkg/addresscode"
	pkgAuth "github.com/polkiloo/wasul/internal/pkg/auth"
)

// CodeGeneratorStub returns queued codes, then a counter based fallback.
type CodeGeneratorStub struct {
	mu    sync.Mutex
	Codes []string
	Calls []string
	n     int
}

// Generate pops the next queued code for city.
func (g *CodeGeneratorStub) Generate(city string) string {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.Calls = append(g.Calls, city)
	if len(g.Codes) > 0 {
		code := g.Codes[0]
		g.Codes = g.Codes[1:]
		return code
	}
	g.n++
	return fmt.Sprintf("OM-%s-%04dA", addresscode.CityPrefix(city), g.n)
}

// KeyGeneratorStub produces predictable keys.
type KeyGeneratorStub struct {
	mu  sync.Mutex
	Err error
	n   int
}

// Generate returns omaddr_ keys with a counter suffix.
func (g *KeyGeneratorStub) Generate() (string, error) {
	if g.Err != nil {
		return "", g.Err
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	g.n++
	return fmt.Sprintf("%s%032d", pkgAuth.APIKeyPrefix, g.n), nil
}

// RendererStub renders invoices as a short text document.
type RendererStub struct {
	Err      error
	Rendered []model.Invoice
}

// Render records invoice and returns a fake PDF payload.
func (r *RendererStub) Render(invoice model.Invoice) ([]byte, error) {
	if r.Err != nil {
		return nil, r.Err
	}
	r.Rendered = append(r.Rendered, invoice)
	return []byte("%PDF-" + invoice.Number), nil
}

// ArchiveStub keeps documents in a map.
type ArchiveStub struct {
	mu      sync.Mutex
	SaveErr error
	LoadErr   error
	DeleteErr error
	Docs      map[string][]byte
	Deleted   []string
}

// Save stores document under number.
func (a *ArchiveStub) Save(ctx context.Context, number string, document []byte) error {
	if a.SaveErr != nil {
		return a.SaveErr
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.Docs == nil {
		a.Docs = make(map[string][]byte)
	}
	a.Docs[number] = append([]byte(nil), document...)
	return nil
}

// Load returns stored document or not found.
func (a *ArchiveStub) Load(ctx context.Context, number string) ([]byte, error) {
	if a.LoadErr != nil {
		return nil, a.LoadErr
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	doc, ok := a.Docs[number]
	if !ok {
		return nil, domainErrors.ErrNotFound
	}
	return doc, nil
}

// Delete drops the stored document and records the number.
func (a *ArchiveStub) Delete(ctx context.Context, number string) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.Deleted = append(a.Deleted, number)
	if a.DeleteErr != nil {
		return a.DeleteErr
	}
	delete(a.Docs, number)
	return nil
}
