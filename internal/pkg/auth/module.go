package auth

import (
	"github.com/polkiloo/wasul/internal/config"
	"go.uber.org/fx"
)

// Module provides key generation and admin credential checks via fx.
var Module = fx.Options(
	fx.Provide(newPasswordHasher),
	fx.Provide(newKeyGenerator),
	fx.Provide(newAdminCredentials),
)

func newPasswordHasher() PasswordHasher {
	return NewBcryptHasher(0)
}

func newKeyGenerator() KeyGenerator {
	return NewSHA256KeyGenerator(nil)
}

type adminParams struct {
	fx.In

	Config *config.Config
	Hasher PasswordHasher
}

func newAdminCredentials(p adminParams) *AdminCredentials {
	return NewAdminCredentials(p.Config.AdminPasswordHash, p.Hasher)
}
