// Package differ compares two document trees and reports line-level changes
// between their stable dump renderings.
//
// Trees compare by dump, so two trees that render identically are equal even
// when built by different code paths. File inputs run through the conversion
// pipeline first:
//
//	result, err := differ.DiffWithOptions(
//	    differ.WithSourceFilePath("doc-v1.json"),
//	    differ.WithTargetFilePath("doc-v2.json"),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if !result.Equal {
//	    fmt.Print(differ.FormatChanges(result.Changes))
//	}
//
// Already-converted trees diff directly via Diff or WithSourceTree and
// WithTargetTree.
package differ
