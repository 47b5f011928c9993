package repository

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"surveyhub/internal/config"
	"surveyhub/internal/database"
)

// setupTestDB points the store at a fresh sqlite file and seeds the
// bootstrap admin, mirroring first-run initialization.
func setupTestDB(t *testing.T) {
	t.Helper()

	config.Conf = &config.Config{
		Database: config.DatabaseConfig{
			Driver: "sqlite",
			Path:   filepath.Join(t.TempDir(), "surveyhub_test.db"),
		},
		Bootstrap: config.BootstrapConfig{
			AdminUsername: "admin",
			AdminPassword: "admin",
		},
	}

	require.NoError(t, database.Init(zap.NewNop()))
}
