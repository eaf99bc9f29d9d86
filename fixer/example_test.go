package fixer_test

import (
	"fmt"
	"log"

	"github.com/erraggy/podtools/dom"
	"github.com/erraggy/podtools/fixer"
)

// Example demonstrates normalizing a tree with stray items.
func Example() {
	doc := dom.NewDocument()
	first := dom.NewItem(1)
	first.AppendChild(dom.NewText("first"))
	doc.AppendChild(first)
	second := dom.NewItem(1)
	second.AppendChild(dom.NewText("second"))
	doc.AppendChild(second)

	f := fixer.New()
	result, err := f.Fix(doc)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("Applied %d fix(es)\n", result.FixCount)
	for _, fix := range result.Fixes {
		fmt.Printf("  %s: %s\n", fix.Type, fix.Description)
	}

	// Output:
	// Applied 2 fix(es)
	//   wrap-item: wrapped item (level 1) in a list container
	//   wrap-item: wrapped item (level 1) in a list container
}

// ExampleFixWithOptions demonstrates merged list wrapping via functional options.
func ExampleFixWithOptions() {
	doc := dom.NewDocument()
	for _, v := range []string{"first", "second", "third"} {
		item := dom.NewItem(1)
		item.AppendChild(dom.NewText(v))
		doc.AppendChild(item)
	}

	result, err := fixer.FixWithOptions(
		fixer.WithTree(doc),
		fixer.WithListMode(fixer.ListModeMerged),
	)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Print(result.Tree.DumpString())
	// Output:
	// Document
	//   List
	//     Item level=1
	//       Text value="first"
	//     Item level=1
	//       Text value="second"
	//     Item level=1
	//       Text value="third"
}

// ExampleFixer_Fix_rootItem demonstrates wrapping a root-level item; the
// returned tree has a new root.
func ExampleFixer_Fix_rootItem() {
	item := dom.NewItem(1)
	item.AppendChild(dom.NewText("alone"))

	result, err := fixer.New().Fix(item)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Print(result.Tree.DumpString())
	// Output:
	// List
	//   Item level=1
	//     Text value="alone"
}
