package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	t.Run("tilde prefix", func(t *testing.T) {
		got := ExpandPath("~/.local/share/ledgerlite/ledger.db")
		assert.Equal(t, filepath.Join(home, ".local/share/ledgerlite/ledger.db"), got)
	})

	t.Run("bare tilde", func(t *testing.T) {
		assert.Equal(t, home, ExpandPath("~"))
	})

	t.Run("environment variables", func(t *testing.T) {
		t.Setenv("LEDGER_TEST_DIR", "/srv/data")
		assert.Equal(t, "/srv/data/ledger.db", ExpandPath("$LEDGER_TEST_DIR/ledger.db"))
	})

	t.Run("plain paths pass through", func(t *testing.T) {
		assert.Equal(t, "/var/lib/ledger.db", ExpandPath("/var/lib/ledger.db"))
		assert.Equal(t, "", ExpandPath(""))
	})
}
