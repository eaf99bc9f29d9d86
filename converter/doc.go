// Package converter converts parsed Pod source trees into normalized dom trees.
//
// Import path: github.com/erraggy/podtools/converter
//
// The converter is the build pipeline's entry point: it dispatches on each
// source node's variant to create the matching dom node, converts children in
// source order, and then hands the tree to the fixer for list normalization.
//
// # Dispatch Rules
//
//   - pod.Plain → Text (value copied verbatim, no children)
//   - pod.Para / pod.Code / pod.Comment → Paragraph / Code / Comment
//   - pod.Named "pod" → Document; any other name → Section carrying the name
//   - pod.Heading → Heading (level copied)
//   - pod.Item → Item (level copied)
//   - pod.FormattingCode B → Bold, C → Code, E → Entity (plain text payload),
//     L → Link (Meta as URL, plain contents as fallback), X → Reference;
//     other letters fall back to Section handling with an Info issue
//   - pod.Table → Table with Table.Header/Table.Data for header cells and
//     Table.Body/Table.Body.Row/Table.Data for body rows; a caption is
//     dropped with an Info issue
//
// Any other source variant has no mapping rule and yields a
// [poderrors.UnrecognizedNodeKindError] that propagates unchanged to the
// caller; no partial tree is observable.
//
// # Usage
//
// The simplest surface is [BuildTree]:
//
//	tree, err := converter.BuildTree(src)
//
// The richer surface returns conversion issues, fixes, and stats:
//
//	result, err := converter.ConvertWithOptions(
//	    converter.WithFilePath("perldoc.pod.json"),
//	    converter.WithListMode(fixer.ListModeMerged),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("built %d nodes with %d fixes\n",
//	    result.Stats.NodeCount, result.FixCount)
package converter
