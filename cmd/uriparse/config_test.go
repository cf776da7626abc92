package main

import (
	"bytes"
	"flag"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ghettovoice/rfc3986/internal/errorutil"
	"github.com/ghettovoice/rfc3986/uri"
)

func TestLoadEnv_Defaults(t *testing.T) {
	t.Parallel()

	cfg, err := loadEnv([]string{envFileVar + "=testdata/missing.env"})
	require.NoError(t, err)
	assert.Equal(t, &config{
		Overflow:     "stop",
		LeadingZeros: "allow",
		LogLevel:     "warn",
		LogFormat:    "console",
	}, cfg)
}

func TestLoadEnv_Environ(t *testing.T) {
	t.Parallel()

	cfg, err := loadEnv([]string{
		envFileVar + "=testdata/missing.env",
		"URIPARSE_OVERFLOW=reject",
		"URIPARSE_LOG_FORMAT=dev",
		"URIPARSE_RFC=true",
		"OVERFLOW=ignored",
	})
	require.NoError(t, err)
	assert.Equal(t, "reject", cfg.Overflow)
	assert.Equal(t, "allow", cfg.LeadingZeros)
	assert.Equal(t, "dev", cfg.LogFormat)
	assert.True(t, cfg.RFC)
	assert.False(t, cfg.DNS)
}

func TestLoadEnv_File(t *testing.T) {
	t.Parallel()

	cfg, err := loadEnv([]string{
		envFileVar + "=testdata/test.env",
		"URIPARSE_LEADING_ZEROS=allow",
	})
	require.NoError(t, err)
	assert.Equal(t, "reject", cfg.Overflow, "value from file")
	assert.Equal(t, "allow", cfg.LeadingZeros, "environment wins over file")
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoadEnv_BadValue(t *testing.T) {
	t.Parallel()

	_, err := loadEnv([]string{
		envFileVar + "=testdata/missing.env",
		"URIPARSE_DNS=maybe",
	})
	require.Error(t, err)
}

func TestLoadConfig_Flags(t *testing.T) {
	t.Parallel()

	var stderr bytes.Buffer
	cfg, args, err := loadConfig(
		[]string{"-overflow", "stop", "-dns", "-log-format", "dev", "http://example.com", "a:b"},
		[]string{envFileVar + "=testdata/test.env"},
		&stderr,
	)
	require.NoError(t, err)
	assert.Equal(t, []string{"http://example.com", "a:b"}, args)
	assert.Equal(t, "stop", cfg.Overflow, "flag wins over file")
	assert.Equal(t, "reject", cfg.LeadingZeros)
	assert.Equal(t, "dev", cfg.LogFormat)
	assert.True(t, cfg.DNS)
	assert.Empty(t, stderr.String())
}

func TestLoadConfig_Help(t *testing.T) {
	t.Parallel()

	var stderr bytes.Buffer
	_, _, err := loadConfig([]string{"-h"}, []string{envFileVar + "=testdata/missing.env"}, &stderr)
	require.ErrorIs(t, err, flag.ErrHelp)
	assert.Contains(t, stderr.String(), "Usage: uriparse")
	assert.Contains(t, stderr.String(), "-leading-zeros")
}

func TestConfig_Parser(t *testing.T) {
	t.Parallel()

	cfg := &config{Overflow: "reject", LeadingZeros: "reject", LogLevel: "debug", LogFormat: "console"}
	var logs bytes.Buffer
	logger, err := cfg.logger(&logs)
	require.NoError(t, err)
	p, err := cfg.parser(logger)
	require.NoError(t, err)
	assert.Equal(t, uri.OverflowReject, p.Options.Overflow)
	assert.Equal(t, uri.LeadingZerosReject, p.Options.LeadingZeros)

	_, err = p.Parse([]byte("http://[fffff::]"))
	require.ErrorIs(t, err, uri.ErrNumberOverflow)
	assert.Contains(t, logs.String(), "failed to parse URI")
}

func TestConfig_Invalid(t *testing.T) {
	t.Parallel()

	valid := config{Overflow: "stop", LeadingZeros: "allow", LogLevel: "info", LogFormat: "console"}
	cases := []struct {
		name   string
		modify func(c *config)
	}{
		{"overflow", func(c *config) { c.Overflow = "wrap" }},
		{"leading zeros", func(c *config) { c.LeadingZeros = "strip" }},
		{"log level", func(c *config) { c.LogLevel = "loud" }},
		{"log format", func(c *config) { c.LogFormat = "json" }},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			cfg := valid
			c.modify(&cfg)
			logger, err := cfg.logger(&bytes.Buffer{})
			if err == nil {
				_, err = cfg.parser(logger)
			}
			require.ErrorIs(t, err, errorutil.ErrInvalidArgument)
		})
	}
}
