package testutil

import (
	"path"
	"sort"
	"strings"
	"testing"

	"golang.org/x/tools/txtar"
)

// CorpusCase is a single source/expectation pair loaded from a txtar archive.
// Source holds the serialized document and Want holds the expected tree dump.
type CorpusCase struct {
	Name   string
	Format string // "json" or "yaml", from the source file extension
	Source string
	Want   string
}

// LoadCorpus reads a txtar archive of corpus cases. Each case is a pair of
// files sharing a base name: "<name>.json" (or "<name>.yaml") holding the
// document source and "<name>.dump" holding the expected tree dump. Cases are
// returned sorted by name.
func LoadCorpus(t *testing.T, archivePath string) []CorpusCase {
	t.Helper()

	archive, err := txtar.ParseFile(archivePath)
	if err != nil {
		t.Fatalf("Failed to parse corpus archive %s: %v", archivePath, err)
	}

	sources := make(map[string]txtar.File)
	wants := make(map[string]string)
	for _, f := range archive.Files {
		ext := path.Ext(f.Name)
		base := strings.TrimSuffix(f.Name, ext)
		switch ext {
		case ".json", ".yaml":
			sources[base] = f
		case ".dump":
			wants[base] = string(f.Data)
		default:
			t.Fatalf("Unexpected corpus file %s: want .json, .yaml, or .dump", f.Name)
		}
	}

	cases := make([]CorpusCase, 0, len(sources))
	for base, src := range sources {
		want, ok := wants[base]
		if !ok {
			t.Fatalf("Corpus case %s has no .dump expectation", base)
		}
		cases = append(cases, CorpusCase{
			Name:   base,
			Format: strings.TrimPrefix(path.Ext(src.Name), "."),
			Source: string(src.Data),
			Want:   want,
		})
	}
	if len(cases) != len(wants) {
		t.Fatalf("Corpus has %d expectations for %d sources", len(wants), len(cases))
	}

	sort.Slice(cases, func(i, j int) bool { return cases[i].Name < cases[j].Name })
	return cases
}
