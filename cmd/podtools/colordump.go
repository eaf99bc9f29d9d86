package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/erraggy/podtools/dom"
	"github.com/erraggy/podtools/walker"
)

// kindColors maps node kinds to their dump colors. Structural containers are
// dimmed, content-bearing kinds stand out.
var kindColors = map[dom.Kind]func(format string, a ...any) string{
	dom.KindDocument:  color.New(color.FgWhite, color.Bold).SprintfFunc(),
	dom.KindSection:   color.New(color.FgYellow, color.Bold).SprintfFunc(),
	dom.KindHeading:   color.New(color.FgYellow).SprintfFunc(),
	dom.KindList:      color.New(color.FgBlue).SprintfFunc(),
	dom.KindItem:      color.New(color.FgBlue).SprintfFunc(),
	dom.KindText:      color.New(color.FgGreen).SprintfFunc(),
	dom.KindEntity:    color.New(color.FgGreen).SprintfFunc(),
	dom.KindCode:      color.New(color.FgCyan).SprintfFunc(),
	dom.KindBold:      color.New(color.FgCyan).SprintfFunc(),
	dom.KindLink:      color.New(color.FgMagenta).SprintfFunc(),
	dom.KindReference: color.New(color.FgMagenta).SprintfFunc(),
	dom.KindComment:   color.New(color.FgHiBlack).SprintfFunc(),
}

var defaultColor = color.New(color.FgWhite).SprintfFunc()

// writeColorDump walks the tree and writes a colorized version of the dump
// format, one node per line.
func writeColorDump(w io.Writer, tree *dom.Node) error {
	var writeErr error
	err := walker.Walk(tree, walker.WithNodeHandler(func(wc *walker.WalkContext, n *dom.Node) walker.Action {
		paint, ok := kindColors[n.Kind()]
		if !ok {
			paint = defaultColor
		}
		line := paint("%s%s", n.Kind(), dumpAttrs(n))
		if _, err := fmt.Fprintf(w, "%s%s\n", strings.Repeat("  ", wc.Depth), line); err != nil {
			writeErr = err
			return walker.Stop
		}
		return walker.Continue
	}))
	if err != nil {
		return err
	}
	return writeErr
}

// dumpAttrs mirrors the payload attribute rendering of the plain dump.
func dumpAttrs(n *dom.Node) string {
	switch n.Kind() {
	case dom.KindSection:
		return fmt.Sprintf(" title=%q", n.Title())
	case dom.KindHeading, dom.KindItem:
		return fmt.Sprintf(" level=%d", n.Level())
	case dom.KindEntity:
		return fmt.Sprintf(" contents=%q", n.Contents())
	case dom.KindLink:
		return fmt.Sprintf(" url=%q", n.URL())
	case dom.KindText:
		return fmt.Sprintf(" value=%q", n.Value())
	default:
		return ""
	}
}
