package main

import (
	"bytes"
	"flag"
	"fmt"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

// resetFlags resets the global flag.CommandLine to avoid "flag redefined" panic
func resetFlags() {
	flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.ExitOnError)
}

// resetEnv clears env vars used by parseConfig
func resetEnv() {
	os.Clearenv()
}

func TestParseFlags_Default(t *testing.T) {
	resetFlags()
	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()

	os.Args = []string{"cmd"}
	configPath := parseFlags()
	assert.Equal(t, "config.env", configPath)
}

func TestParseFlags_Custom(t *testing.T) {
	resetFlags()
	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()

	os.Args = []string{"cmd", "-c", "myconfig.env"}
	configPath := parseFlags()
	assert.Equal(t, "myconfig.env", configPath)
}

func TestPrintBuildInfo_Output(t *testing.T) {
	// Capture stdout
	oldStdout := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	buildVersion = "v1.0.0"
	buildCommit = "abcd1234"
	buildDate = "2026-08-30"

	printBuildInfo()

	w.Close()
	os.Stdout = oldStdout

	var buf bytes.Buffer
	_, _ = buf.ReadFrom(r)

	expected := fmt.Sprintf("Starting service version %s, commit %s, build %s\n", buildVersion, buildCommit, buildDate)
	assert.Equal(t, expected, buf.String())
}

func TestParseConfig_Defaults(t *testing.T) {
	resetEnv()

	appHost, appPort, logLevel, dbPath,
		jwtSecret, jwtExpSecond,
		sessionTTLSecond, bcryptCost,
		adminPassword,
		err := parseConfig("nonexistent.env")

	assert.NoError(t, err)
	assert.Equal(t, "localhost", appHost)
	assert.Equal(t, "8080", appPort)
	assert.Equal(t, "info", logLevel)
	assert.Equal(t, "users.db", dbPath)
	assert.Equal(t, "my_super_secret_key", jwtSecret)
	assert.Equal(t, 3600, jwtExpSecond)
	assert.Equal(t, 3600, sessionTTLSecond)
	assert.Equal(t, 10, bcryptCost)
	assert.Equal(t, "password123", adminPassword)
}

func TestParseConfig_FromEnv(t *testing.T) {
	resetEnv()
	t.Setenv("APP_HOST", "0.0.0.0")
	t.Setenv("APP_PORT", "9090")
	t.Setenv("APP_LOG_LEVEL", "debug")
	t.Setenv("DATABASE_PATH", "/tmp/test.db")
	t.Setenv("JWT_SECRET_KEY", "another_secret")
	t.Setenv("JWT_EXP_SECOND", "60")
	t.Setenv("SESSION_TTL_SECOND", "120")
	t.Setenv("BCRYPT_COST", "4")
	t.Setenv("ADMIN_PASSWORD", "changed-me")

	appHost, appPort, logLevel, dbPath,
		jwtSecret, jwtExpSecond,
		sessionTTLSecond, bcryptCost,
		adminPassword,
		err := parseConfig("nonexistent.env")

	assert.NoError(t, err)
	assert.Equal(t, "0.0.0.0", appHost)
	assert.Equal(t, "9090", appPort)
	assert.Equal(t, "debug", logLevel)
	assert.Equal(t, "/tmp/test.db", dbPath)
	assert.Equal(t, "another_secret", jwtSecret)
	assert.Equal(t, 60, jwtExpSecond)
	assert.Equal(t, 120, sessionTTLSecond)
	assert.Equal(t, 4, bcryptCost)
	assert.Equal(t, "changed-me", adminPassword)
}

func TestParseConfig_InvalidNumbers(t *testing.T) {
	tests := []struct {
		name string
		key  string
	}{
		{"invalid jwt expiration", "JWT_EXP_SECOND"},
		{"invalid session ttl", "SESSION_TTL_SECOND"},
		{"invalid bcrypt cost", "BCRYPT_COST"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetEnv()
			t.Setenv(tt.key, "not-a-number")

			_, _, _, _, _, _, _, _, _, err := parseConfig("nonexistent.env")
			assert.Error(t, err)
		})
	}
}
