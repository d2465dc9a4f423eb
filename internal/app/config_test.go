// SPDX-License-Identifier: MIT

package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() Config {
	return Config{LogFormat: "text", LogLevel: "info"}
}

func TestNewConfig(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{"defaults", func(c *Config) {}, ""},
		{"json debug", func(c *Config) { c.LogFormat, c.LogLevel = "json", "debug" }, ""},
		{"bad format", func(c *Config) { c.LogFormat = "xml" }, "invalid log-format"},
		{"bad level", func(c *Config) { c.LogLevel = "trace" }, "invalid log-level"},
		{"negative limit", func(c *Config) { c.Limit = -1 }, "invalid limit"},
		{"generator", func(c *Config) { c.Gen, c.N = "star", 5 }, ""},
		{"unknown shape", func(c *Config) { c.Gen, c.N = "ring", 5 }, "unknown shape"},
		{"too few cities", func(c *Config) { c.Gen, c.N = "path", 1 }, "invalid city count"},
		{"too many cities", func(c *Config) { c.Gen, c.N = "path", 601 }, "invalid city count"},
		{"city count ignored when reading", func(c *Config) { c.N = 0 }, ""},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			in := validConfig()
			tc.mutate(&in)

			cfg, err := NewConfig(in)
			if tc.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tc.wantErr)
				assert.Nil(t, cfg)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, in, *cfg)
		})
	}
}
