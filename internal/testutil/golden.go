package testutil

import (
	"flag"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var update = flag.Bool("update", false, "rewrite golden files under testdata/")

// Golden compares got with testdata/<name>.golden. With -update the file
// is rewritten instead. A missing golden file fails the test.
func Golden(t testing.TB, name string, got []byte) {
	t.Helper()

	path := goldenPath(name)
	if *update {
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, got, 0o644))
		t.Logf("wrote golden file %s", path)
		return
	}
	want, err := os.ReadFile(path)
	require.NoError(t, err, "missing golden file %s (run with -update to create it)", path)
	assert.Equal(t, string(want), string(got), "output differs from %s (run with -update to accept)", path)
}

func goldenPath(name string) string {
	return filepath.Join("testdata", name+".golden")
}
