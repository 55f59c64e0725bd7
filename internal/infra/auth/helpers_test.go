package auth

import "portal/config"

func newSchemeConfig(scheme string) *config.Config {
	return &config.Config{
		Auth: &config.AuthConfig{
			HashScheme: scheme,
		},
	}
}
