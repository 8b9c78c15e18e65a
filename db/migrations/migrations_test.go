package migrations

import (
	"fmt"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedMigrations(t *testing.T) {
	for v := uint(1); v <= Version; v++ {
		for _, dir := range []string{"up", "down"} {
			matches, err := fs.Glob(FS, fmt.Sprintf("%06d_*.%s.sql", v, dir))
			require.NoError(t, err)
			assert.Len(t, matches, 1, "version %d %s", v, dir)
		}
	}
}
