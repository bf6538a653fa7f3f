package pdf

import (
	"go.uber.org/fx"

	"github.com/polkiloo/wasul/internal/config"
	"github.com/polkiloo/wasul/internal/domain/repository"
)

// Module provides invoice rendering and archiving.
var Module = fx.Provide(
	newRenderer,
	newArchive,
)

func newRenderer(cfg *config.Config) repository.InvoiceRenderer {
	return NewInvoiceRenderer(cfg.InvoiceIssuer)
}

func newArchive(cfg *config.Config) repository.InvoiceArchive {
	return NewFileArchive(cfg.InvoiceDir)
}
