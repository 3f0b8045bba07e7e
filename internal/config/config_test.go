package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadRequiresToken(t *testing.T) {
	t.Setenv("TELEGRAM_TOKEN", "")
	t.Setenv("DB_DSN", "postgres://localhost/college")

	_, err := Load()
	require.Error(t, err)
}

func TestLoadRequiresDSN(t *testing.T) {
	t.Setenv("TELEGRAM_TOKEN", "token")
	t.Setenv("DB_DSN", "")

	_, err := Load()
	require.Error(t, err)
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("TELEGRAM_TOKEN", "token")
	t.Setenv("DB_DSN", "postgres://localhost/college")
	t.Setenv("ENV", "")
	t.Setenv("ADMIN_NAME", "")
	t.Setenv("ADMIN_PASSWORD", "")
	t.Setenv("MIGRATIONS_PATH", "")

	cfg, err := Load()
	require.NoError(t, err)

	require.Equal(t, "development", cfg.Environment)
	require.Equal(t, DefaultAdminName, cfg.AdminName)
	require.Equal(t, DefaultAdminPassword, cfg.AdminPassword)
	require.Equal(t, "migrations", cfg.MigrationsPath)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("TELEGRAM_TOKEN", "token")
	t.Setenv("DB_DSN", "postgres://localhost/college")
	t.Setenv("ENV", "production")
	t.Setenv("ADMIN_NAME", "Петров Пётр Петрович")
	t.Setenv("ADMIN_PASSWORD", "secret")

	cfg, err := Load()
	require.NoError(t, err)

	require.Equal(t, "production", cfg.Environment)
	require.Equal(t, "Петров Пётр Петрович", cfg.AdminName)
	require.Equal(t, "secret", cfg.AdminPassword)
}
