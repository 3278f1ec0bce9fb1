package infra

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDialector(t *testing.T) {
	tests := []struct {
		url    string
		driver string
	}{
		{"sqlite:///gift_registry.db", "sqlite"},
		{"sqlite:////var/lib/registry/gifts.db", "sqlite"},
		{"postgres://app:pw@localhost:5432/gifts?sslmode=disable", "postgres"},
		{"postgresql://app@db/gifts", "postgres"},
		{"host=localhost user=app dbname=gifts port=5432", "postgres"},
	}
	for _, tt := range tests {
		d, err := Dialector(tt.url)
		require.NoError(t, err, tt.url)
		assert.Equal(t, tt.driver, d.Name(), tt.url)
	}
}

func TestDialector_Rejects(t *testing.T) {
	for _, url := range []string{"", "sqlite:///", "mysql://root@localhost/gifts"} {
		_, err := Dialector(url)
		assert.Error(t, err, url)
	}
}

func TestSetupDB_MigratesSQLite(t *testing.T) {
	db, err := SetupDB("sqlite:///" + filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	require.NoError(t, Migrate(db))

	for _, table := range []string{"users", "gifts", "claims", "notifications", "blacklisted_tokens"} {
		assert.True(t, db.Migrator().HasTable(table), table)
	}

	var fk int
	require.NoError(t, db.Raw("PRAGMA foreign_keys").Scan(&fk).Error)
	assert.Equal(t, 1, fk)
}
