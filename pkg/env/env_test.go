package env

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRead(t *testing.T) {
	kvs, err := Read(strings.NewReader("# comment\nexport B=2\nA=\"one two\"\n"))
	require.NoError(t, err)
	assert.Equal(t, KeyValues{{Key: "A", Value: "one two"}, {Key: "B", Value: "2"}}, kvs)
}

func TestReadInvalid(t *testing.T) {
	_, err := Read(strings.NewReader("NOVALUE\n"))
	assert.Error(t, err)
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	first := filepath.Join(dir, "first.env")
	second := filepath.Join(dir, "second.env")
	require.NoError(t, os.WriteFile(first, []byte("SYSCTLD_TEST_A=1\nSYSCTLD_TEST_B=1\n"), 0o644))
	require.NoError(t, os.WriteFile(second, []byte("SYSCTLD_TEST_B=2\n"), 0o644))
	t.Cleanup(func() {
		os.Unsetenv("SYSCTLD_TEST_A")
		os.Unsetenv("SYSCTLD_TEST_B")
	})

	require.NoError(t, Load(first, second))
	assert.Equal(t, "1", os.Getenv("SYSCTLD_TEST_A"))
	assert.Equal(t, "2", os.Getenv("SYSCTLD_TEST_B"))

	assert.Error(t, Load(filepath.Join(dir, "missing.env")))
}
