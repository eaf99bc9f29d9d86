package converter

import (
	"fmt"

	"github.com/erraggy/podtools/dom"
	"github.com/erraggy/podtools/internal/issues"
	"github.com/erraggy/podtools/pod"
	"github.com/erraggy/podtools/poderrors"
)

// conversion carries the per-call state of one dispatch run: the issues
// recorded along the way. The dispatcher itself is stateless across calls.
type conversion struct {
	issues []ConversionIssue
}

func (c *conversion) addIssue(path string, sev Severity, message, context string) {
	c.issues = append(c.issues, issues.Issue{
		Path:     path,
		Message:  message,
		Severity: sev,
		Context:  context,
	})
}

// convert dispatches on the source node's variant and returns the matching
// dom node with its children converted in source order. path is the
// bracketed child-index position of src, used in issue records.
func (c *conversion) convert(src pod.Node, path string) (*dom.Node, error) {
	switch t := src.(type) {
	case pod.Plain:
		return dom.NewText(string(t)), nil

	case *pod.Para:
		return c.withChildren(dom.NewParagraph(), t.Contents, path)

	case *pod.Code:
		return c.withChildren(dom.NewCode(), t.Contents, path)

	case *pod.Comment:
		return c.withChildren(dom.NewComment(), t.Contents, path)

	case *pod.Named:
		return c.convertNamed(t.Name, t.Contents, path)

	case *pod.Heading:
		return c.withChildren(dom.NewHeading(t.Level), t.Contents, path)

	case *pod.Item:
		return c.withChildren(dom.NewItem(t.Level), t.Contents, path)

	case *pod.FormattingCode:
		return c.convertFormatting(t, path)

	case *pod.Table:
		return c.convertTable(t, path)

	default:
		return nil, poderrors.NewUnrecognizedNodeKind(src)
	}
}

// convertChildren converts src's ordered content list and appends each
// result to target, preserving source order exactly.
func (c *conversion) convertChildren(target *dom.Node, contents []pod.Node, path string) error {
	for i, elem := range contents {
		child, err := c.convert(elem, fmt.Sprintf("%s[%d]", path, i))
		if err != nil {
			return err
		}
		target.AppendChild(child)
	}
	return nil
}

// withChildren is the common shape of the dispatch arms: convert the content
// list under target and return it.
func (c *conversion) withChildren(target *dom.Node, contents []pod.Node, path string) (*dom.Node, error) {
	if err := c.convertChildren(target, contents, path); err != nil {
		return nil, err
	}
	return target, nil
}

// convertNamed maps the block name "pod" to the Document root and every
// other name to a Section titled with the name.
func (c *conversion) convertNamed(name string, contents []pod.Node, path string) (*dom.Node, error) {
	if name == "pod" {
		return c.withChildren(dom.NewDocument(), contents, path)
	}
	return c.withChildren(dom.NewSection(name), contents, path)
}

// convertFormatting dispatches an inline span by its single-letter type.
// Unknown letters fall back to the named-block handling with the letter as
// the block name.
func (c *conversion) convertFormatting(fc *pod.FormattingCode, path string) (*dom.Node, error) {
	switch fc.Type {
	case "B":
		return c.withChildren(dom.NewBold(), fc.Contents, path)
	case "C":
		return c.withChildren(dom.NewCode(), fc.Contents, path)
	case "E":
		// Entity payload is the literal text; children are not converted.
		return dom.NewEntity(pod.ContentsText(fc.Contents)), nil
	case "L":
		url := fc.Meta
		if url == "" {
			url = pod.ContentsText(fc.Contents)
		}
		return c.withChildren(dom.NewLink(url), fc.Contents, path)
	case "X":
		return c.withChildren(dom.NewReference(), fc.Contents, path)
	default:
		c.addIssue(path, SeverityInfo,
			fmt.Sprintf("unknown formatting code %q treated as named section", fc.Type),
			"formatting code "+fc.Type)
		return c.convertNamed(fc.Type, fc.Contents, path)
	}
}

// convertTable builds the Table container: one Table.Header with a
// Table.Data per header cell when the source declares headers, and one
// Table.Body with a Table.Body.Row per source row when it declares rows.
func (c *conversion) convertTable(t *pod.Table, path string) (*dom.Node, error) {
	table := dom.NewTable()

	if t.Caption != "" {
		// The target model has no caption payload.
		c.addIssue(path, SeverityInfo,
			fmt.Sprintf("table caption %q dropped", t.Caption), "")
	}

	if len(t.Headers) > 0 {
		header := dom.NewTableHeader()
		for i, cell := range t.Headers {
			data := dom.NewTableData()
			value, err := c.convert(cell, fmt.Sprintf("%s.headers[%d]", path, i))
			if err != nil {
				return nil, err
			}
			data.AppendChild(value)
			header.AppendChild(data)
		}
		table.AppendChild(header)
	}

	if len(t.Rows) > 0 {
		body := dom.NewTableBody()
		for i, srcRow := range t.Rows {
			row := dom.NewTableRow()
			for j, cell := range srcRow {
				data := dom.NewTableData()
				value, err := c.convert(cell, fmt.Sprintf("%s.rows[%d][%d]", path, i, j))
				if err != nil {
					return nil, err
				}
				data.AppendChild(value)
				row.AppendChild(data)
			}
			body.AppendChild(row)
		}
		table.AppendChild(body)
	}

	return table, nil
}
