package di

import (
	"go.uber.org/fx"

	"github.com/polkiloo/wasul/internal/app"
	"github.com/polkiloo/wasul/internal/config"
	"github.com/polkiloo/wasul/internal/logger"
	"github.com/polkiloo/wasul/internal/metrics"
	"github.com/polkiloo/wasul/internal/pkg/addresscode"
	"github.com/polkiloo/wasul/internal/pkg/auth"
	"github.com/polkiloo/wasul/internal/render/pdf"
	"github.com/polkiloo/wasul/internal/server/http/handlers"
	"github.com/polkiloo/wasul/internal/server/http/router"
	"github.com/polkiloo/wasul/internal/storage/postgres"
	"github.com/polkiloo/wasul/internal/usecase"
)

func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		metrics.Module,
		auth.Module,
		addresscode.Module,
		postgres.Module,
		pdf.Module,
		usecase.Module,
		fx.Provide(func(f *app.RegistryFacade) handlers.RegistryFacade { return f }),
		router.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}
