package server

import (
	"testing"
	"time"

	"github.com/alexedwards/argon2id"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokens_RoundTrip(t *testing.T) {
	tk := &tokens{secret: []byte("secret"), ttl: time.Hour, now: time.Now}

	raw, err := tk.issue("user-1")
	require.NoError(t, err)

	userID, err := tk.parse(raw)
	require.NoError(t, err)
	assert.Equal(t, "user-1", userID)
}

func TestTokens_Expired(t *testing.T) {
	issued := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	tk := &tokens{secret: []byte("secret"), ttl: time.Hour, now: func() time.Time { return issued }}
	raw, err := tk.issue("user-1")
	require.NoError(t, err)

	tk.now = func() time.Time { return issued.Add(2 * time.Hour) }
	_, err = tk.parse(raw)
	assert.ErrorIs(t, err, errInvalidToken)
}

func TestTokens_WrongSecret(t *testing.T) {
	raw, err := (&tokens{secret: []byte("a"), ttl: time.Hour, now: time.Now}).issue("user-1")
	require.NoError(t, err)

	_, err = (&tokens{secret: []byte("b"), ttl: time.Hour, now: time.Now}).parse(raw)
	assert.ErrorIs(t, err, errInvalidToken)
}

func TestPasswords_HashAndMatch(t *testing.T) {
	p := passwords{params: &argon2id.Params{Memory: 8 * 1024, Iterations: 1, Parallelism: 1, SaltLength: 16, KeyLength: 32}}

	hash, err := p.hash("hunter22")
	require.NoError(t, err)
	assert.NotContains(t, hash, "hunter22")

	ok, err := p.matches("hunter22", hash)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = p.matches("hunter23", hash)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestConfig_ApplyDefaults(t *testing.T) {
	t.Setenv("TASKDECK_HOME", t.TempDir())
	cfg := Config{}
	require.NoError(t, cfg.applyDefaults())

	assert.Contains(t, cfg.DBPath, "server.db")
	assert.NotEmpty(t, cfg.JWTSecret)
	assert.Equal(t, 24*time.Hour, cfg.TokenTTL)
}

func TestLoadConfig_FromEnv(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("TASKDECK_ADDR", ":6000")
	t.Setenv("TASKDECK_DB_PATH", "/tmp/x.db")
	t.Setenv("TASKDECK_JWT_SECRET", "s3cret")
	t.Setenv("TASKDECK_TOKEN_TTL", "2h")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, ":6000", cfg.Addr)
	assert.Equal(t, "/tmp/x.db", cfg.DBPath)
	assert.Equal(t, "s3cret", cfg.JWTSecret)
	assert.Equal(t, 2*time.Hour, cfg.TokenTTL)
}
