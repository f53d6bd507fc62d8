package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("SABRON_DB_PATH", "")
	t.Setenv("SABRON_UPLOAD_DIR", "")
	t.Setenv("SABRON_ADMIN_USER", "")

	cfg := Load()

	assert.Equal(t, ":4000", cfg.HTTPAddr)
	assert.Equal(t, "./submissions.db", cfg.DBPath)
	assert.Equal(t, "./uploads", cfg.UploadDir)
	assert.Equal(t, "sabron", cfg.AdminUser)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("SABRON_DB_PATH", "/tmp/apps.db")
	t.Setenv("SABRON_ADMIN_USER", "root")

	cfg := Load()

	assert.Equal(t, ":9090", cfg.HTTPAddr)
	assert.Equal(t, "/tmp/apps.db", cfg.DBPath)
	assert.Equal(t, "root", cfg.AdminUser)
}
