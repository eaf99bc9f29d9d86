package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeArchive(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "corpus.txtar")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestLoadCorpus(t *testing.T) {
	archive := writeArchive(t, `-- beta.json --
{"kind":"para","contents":["b"]}
-- beta.dump --
Paragraph
  Text value="b"
-- alpha.yaml --
kind: para
-- alpha.dump --
Paragraph
`)

	cases := LoadCorpus(t, archive)
	require.Len(t, cases, 2)

	assert.Equal(t, "alpha", cases[0].Name, "Cases should be sorted by name")
	assert.Equal(t, "yaml", cases[0].Format)
	assert.Equal(t, "kind: para\n", cases[0].Source)

	assert.Equal(t, "beta", cases[1].Name)
	assert.Equal(t, "json", cases[1].Format)
	assert.Contains(t, cases[1].Want, `Text value="b"`)
}
