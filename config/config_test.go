package config

import (
	"flag"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parse(t *testing.T, args ...string) (Config, error) {
	t.Helper()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	return Parse(fs, args)
}

func TestParseDefaults(t *testing.T) {
	cfg, err := parse(t, "-token-secret", "s3cret")
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0:80", cfg.Addr)
	assert.Equal(t, "http://localhost:80", cfg.Url())
	assert.Equal(t, time.Hour, cfg.TokenTTL)
	assert.Equal(t, 10*time.Second, cfg.GraphQLTimeout)
	assert.Equal(t, "en", cfg.DefaultLocale)
	assert.False(t, cfg.Debug)
}

func TestParseRequiresTokenSecret(t *testing.T) {
	_, err := parse(t)
	require.EqualError(t, err, "missing parameter -token-secret")
}

func TestParseEnvironmentDefaults(t *testing.T) {
	t.Setenv("SURVEY_EDITOR_TOKEN_SECRET", "from-env")
	t.Setenv("SURVEY_EDITOR_PORT", "8080")
	t.Setenv("SURVEY_EDITOR_GRAPHQL_URL", "https://kompassi.example/graphql")

	cfg, err := parse(t, "-host", "127.0.0.1")
	require.NoError(t, err)

	assert.Equal(t, "from-env", cfg.TokenSecret)
	assert.Equal(t, "127.0.0.1:8080", cfg.Addr)
	assert.Equal(t, "https://kompassi.example/graphql", cfg.GraphQLUrl)
}

func TestBootstrapCredentials(t *testing.T) {
	cfg, err := parse(t, "-token-secret", "x", "-bootstrap-user", "admin:hunter2")
	require.NoError(t, err)

	user, pass, ok := cfg.BootstrapCredentials()
	assert.True(t, ok)
	assert.Equal(t, "admin", user)
	assert.Equal(t, "hunter2", pass)

	_, err = parse(t, "-token-secret", "x", "-bootstrap-user", "admin")
	assert.Error(t, err)
}
