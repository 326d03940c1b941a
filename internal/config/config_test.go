package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyDotEnvKeepsExistingValues(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	contents := "ONLYFLANS_TEST_A=from-file\nexport ONLYFLANS_TEST_B=\"quoted value\"\n# comment\n"
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))

	t.Setenv("ONLYFLANS_TEST_A", "from-env")
	t.Setenv("ONLYFLANS_TEST_B", "")
	require.NoError(t, os.Unsetenv("ONLYFLANS_TEST_B"))
	t.Cleanup(func() { _ = os.Unsetenv("ONLYFLANS_TEST_B") })

	loaded, skipped, err := applyDotEnv(path)
	require.NoError(t, err)
	assert.Equal(t, 1, loaded)
	assert.Equal(t, 1, skipped)
	assert.Equal(t, "from-env", os.Getenv("ONLYFLANS_TEST_A"))
	assert.Equal(t, "quoted value", os.Getenv("ONLYFLANS_TEST_B"))
}

func TestEnvHelpersFallBackOnGarbage(t *testing.T) {
	t.Setenv("ONLYFLANS_INT", "abc")
	t.Setenv("ONLYFLANS_DUR", "soon")
	t.Setenv("ONLYFLANS_BOOL", "maybe")
	t.Setenv("ONLYFLANS_LIST", " a, ,b ")

	assert.Equal(t, 7, getEnvInt("ONLYFLANS_INT", 7))
	assert.Equal(t, time.Minute, getEnvDuration("ONLYFLANS_DUR", time.Minute))
	assert.True(t, getEnvBool("ONLYFLANS_BOOL", true))
	assert.Equal(t, []string{"a", "b"}, getEnvList("ONLYFLANS_LIST", nil))
}

func TestDBConfigGetDSN(t *testing.T) {
	cfg := DBConfig{Driver: DriverSQLite, SQLitePath: "dev.db"}
	assert.Equal(t, "dev.db?_pragma=foreign_keys(1)", cfg.GetDSN())

	cfg = DBConfig{Driver: DriverPostgres, Host: "db", User: "u", Password: "p", Name: "n", Port: "5432", SSLMode: "disable", TimeZone: "UTC"}
	assert.Equal(t, "host=db user=u password=p dbname=n port=5432 sslmode=disable TimeZone=UTC", cfg.GetDSN())

	cfg.DSN = "postgres://explicit"
	assert.Equal(t, "postgres://explicit", cfg.GetDSN())
}
