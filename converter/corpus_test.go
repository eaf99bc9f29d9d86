package converter

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erraggy/podtools/dom"
	"github.com/erraggy/podtools/internal/testutil"
)

// TestCorpus converts every archived parse dump and compares the normalized
// tree against its golden dump.
func TestCorpus(t *testing.T) {
	cases := testutil.LoadCorpus(t, filepath.Join("testdata", "corpus.txtar"))
	require.NotEmpty(t, cases)

	for _, tc := range cases {
		t.Run(tc.Name, func(t *testing.T) {
			result, err := ConvertWithOptions(WithReader(strings.NewReader(tc.Source)))
			require.NoError(t, err)
			require.NoError(t, dom.Check(result.Tree))
			assert.Equal(t, tc.Want, result.Tree.DumpString())
			assert.True(t, result.Success)
		})
	}
}
