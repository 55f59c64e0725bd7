package auth

import (
	"portal/config"
	"portal/internal/domain/service"

	"github.com/pkg/errors"
)

// NewHasher selects the PasswordHasher implementation from config.
// "md5" is the default and the only scheme compatible with the current
// store contents; "bcrypt" exists for deployments that have completed a
// full re-hash migration.
func NewHasher(cfg *config.Config) (service.PasswordHasher, error) {
	scheme := "md5"
	if cfg != nil && cfg.Auth != nil && cfg.Auth.HashScheme != "" {
		scheme = cfg.Auth.HashScheme
	}

	switch scheme {
	case "md5":
		return NewLegacyMD5Hasher(), nil
	case "bcrypt":
		return NewBcryptHasher(), nil
	default:
		return nil, errors.Errorf("unknown hash scheme: %s", scheme)
	}
}
