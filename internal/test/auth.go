package test

import (
	"errors"

	"github.com/polkiloo/wasul/internal/domain/repository"
	"github.com/polkiloo/wasul/internal/pkg/addresscode"
	pkgAuth "github.com/polkiloo/wasul/internal/pkg/auth"
)

// HasherStub provides deterministic hashing for tests.
type HasherStub struct {
	HashFn    func(string) (string, error)
	CompareFn func(string, string) error
}

// Hash returns a predictable hash for the supplied password.
func (h HasherStub) Hash(password string) (string, error) {
	if h.HashFn != nil {
		return h.HashFn(password)
	}
	return "hash:" + password, nil
}

// Compare validates password against stored hash.
func (h HasherStub) Compare(hash string, password string) error {
	if h.CompareFn != nil {
		return h.CompareFn(hash, password)
	}
	if hash != "hash:"+password {
		return errors.New("mismatch")
	}
	return nil
}

var (
	_ pkgAuth.PasswordHasher     = HasherStub{}
	_ pkgAuth.KeyGenerator       = (*KeyGeneratorStub)(nil)
	_ addresscode.Generator      = (*CodeGeneratorStub)(nil)
	_ repository.InvoiceRenderer = (*RendererStub)(nil)
	_ repository.InvoiceArchive  = (*ArchiveStub)(nil)
)
