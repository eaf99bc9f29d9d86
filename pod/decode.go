package pod

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"go.yaml.in/yaml/v4"

	"github.com/erraggy/podtools/poderrors"
)

// SourceFormat identifies the serialization format of a parse dump.
type SourceFormat int

const (
	// SourceFormatUnknown indicates the format could not be determined.
	SourceFormatUnknown SourceFormat = iota
	// SourceFormatJSON indicates a JSON dump.
	SourceFormatJSON
	// SourceFormatYAML indicates a YAML dump.
	SourceFormatYAML
)

// String returns the string representation of the source format.
func (f SourceFormat) String() string {
	switch f {
	case SourceFormatJSON:
		return "JSON"
	case SourceFormatYAML:
		return "YAML"
	default:
		return "unknown"
	}
}

// Decoder ingests serialized parse dumps produced by the upstream Pod parser.
// The zero value is ready to use; Logger may be set for diagnostic output.
type Decoder struct {
	// Logger receives structured diagnostics during decoding.
	// Defaults to NopLogger when nil.
	Logger Logger
}

// NewDecoder creates a Decoder with default settings.
func NewDecoder() *Decoder {
	return &Decoder{}
}

func (d *Decoder) log() Logger {
	if d.Logger != nil {
		return d.Logger
	}
	return NopLogger{}
}

// Load reads and decodes a parse dump from a file. The format is detected
// from the file extension (.json, .yaml, .yml) and falls back to content
// sniffing for other extensions.
func (d *Decoder) Load(path string) (Node, SourceFormat, error) {
	data, err := os.ReadFile(path) //nolint:gosec // G304: path is caller-provided input
	if err != nil {
		return nil, SourceFormatUnknown, &poderrors.DecodeError{
			Path:    path,
			Message: "failed to read file",
			Cause:   err,
		}
	}

	format := detectFormatFromPath(path)
	if format == SourceFormatUnknown {
		format = detectFormatFromContent(data)
	}
	d.log().Debug("loaded parse dump", "path", path, "format", format.String(), "bytes", len(data))

	node, err := d.DecodeBytes(data, format)
	if err != nil {
		// Stamp the file path onto decode errors for better messages.
		var decErr *poderrors.DecodeError
		if errors.As(err, &decErr) && decErr.Path == "" {
			decErr.Path = path
		}
		return nil, format, err
	}
	return node, format, nil
}

// Decode reads and decodes a parse dump from r. The format is detected by
// content sniffing.
func (d *Decoder) Decode(r io.Reader) (Node, SourceFormat, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, SourceFormatUnknown, &poderrors.DecodeError{
			Message: "failed to read input",
			Cause:   err,
		}
	}
	format := detectFormatFromContent(data)
	node, err := d.DecodeBytes(data, format)
	return node, format, err
}

// DecodeBytes decodes a parse dump from data in the given format.
// SourceFormatUnknown is treated as YAML, which is a superset of JSON for
// the shapes dumps use.
func (d *Decoder) DecodeBytes(data []byte, format SourceFormat) (Node, error) {
	var raw any
	switch format {
	case SourceFormatJSON:
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, &poderrors.DecodeError{Message: "invalid JSON", Cause: err}
		}
	default:
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, &poderrors.DecodeError{Message: "invalid YAML", Cause: err}
		}
	}
	return buildNode(raw, "$")
}

// Load is a convenience that decodes a parse dump file with a default Decoder.
func Load(path string) (Node, SourceFormat, error) {
	return NewDecoder().Load(path)
}

// Decode is a convenience that decodes a parse dump from r with a default Decoder.
func Decode(r io.Reader) (Node, SourceFormat, error) {
	return NewDecoder().Decode(r)
}

// DecodeBytes is a convenience that decodes a parse dump from data with a
// default Decoder.
func DecodeBytes(data []byte, format SourceFormat) (Node, error) {
	return NewDecoder().DecodeBytes(data, format)
}

// detectFormatFromPath detects the source format from a file path
func detectFormatFromPath(path string) SourceFormat {
	switch filepath.Ext(path) {
	case ".json":
		return SourceFormatJSON
	case ".yaml", ".yml":
		return SourceFormatYAML
	default:
		return SourceFormatUnknown
	}
}

// detectFormatFromContent attempts to detect the format from the content bytes.
// JSON dumps start with '{', '[', or '"'; YAML dumps do not.
func detectFormatFromContent(data []byte) SourceFormat {
	trimmed := bytes.TrimLeft(data, " \t\n\r")
	if len(trimmed) == 0 {
		return SourceFormatUnknown
	}
	if trimmed[0] == '{' || trimmed[0] == '[' || trimmed[0] == '"' {
		return SourceFormatJSON
	}
	return SourceFormatYAML
}

// buildNode converts one decoded dump element into a typed source node.
// nodePath tracks the dotted position within the dump for error messages.
func buildNode(v any, nodePath string) (Node, error) {
	switch t := v.(type) {
	case string:
		return Plain(t), nil
	case map[string]any:
		return buildMappedNode(t, nodePath)
	default:
		return nil, &poderrors.DecodeError{
			NodePath: nodePath,
			Message:  fmt.Sprintf("expected string or mapping, got %T", v),
		}
	}
}

func buildMappedNode(m map[string]any, nodePath string) (Node, error) {
	kind, ok := m["kind"].(string)
	if !ok {
		return nil, &poderrors.DecodeError{
			NodePath: nodePath,
			Message:  "node mapping has no 'kind' discriminator",
		}
	}

	switch kind {
	case "para":
		contents, err := buildContents(m, nodePath)
		if err != nil {
			return nil, err
		}
		return &Para{Contents: contents}, nil

	case "code":
		contents, err := buildContents(m, nodePath)
		if err != nil {
			return nil, err
		}
		return &Code{Contents: contents}, nil

	case "comment":
		contents, err := buildContents(m, nodePath)
		if err != nil {
			return nil, err
		}
		return &Comment{Contents: contents}, nil

	case "named":
		name, ok := m["name"].(string)
		if !ok {
			return nil, &poderrors.DecodeError{
				NodePath: nodePath,
				Message:  "named block has no 'name'",
			}
		}
		contents, err := buildContents(m, nodePath)
		if err != nil {
			return nil, err
		}
		return &Named{Name: name, Contents: contents}, nil

	case "heading":
		contents, err := buildContents(m, nodePath)
		if err != nil {
			return nil, err
		}
		return &Heading{Level: intValue(m["level"], 1), Contents: contents}, nil

	case "item":
		contents, err := buildContents(m, nodePath)
		if err != nil {
			return nil, err
		}
		return &Item{Level: intValue(m["level"], 1), Contents: contents}, nil

	case "format":
		typ, ok := m["type"].(string)
		if !ok || typ == "" {
			return nil, &poderrors.DecodeError{
				NodePath: nodePath,
				Message:  "formatting code has no 'type'",
			}
		}
		meta, _ := m["meta"].(string)
		contents, err := buildContents(m, nodePath)
		if err != nil {
			return nil, err
		}
		return &FormattingCode{Type: typ, Meta: meta, Contents: contents}, nil

	case "table":
		return buildTable(m, nodePath)

	case "config":
		typ, _ := m["type"].(string)
		cfg := make(map[string]string)
		if rawCfg, ok := m["config"].(map[string]any); ok {
			for k, v := range rawCfg {
				cfg[k] = fmt.Sprint(v)
			}
		}
		return &Config{Type: typ, Config: cfg}, nil

	default:
		return nil, &poderrors.DecodeError{
			NodePath: nodePath,
			Message:  fmt.Sprintf("unknown node kind %q", kind),
		}
	}
}

// buildContents decodes the heterogeneous 'contents' array of a node mapping.
// A missing contents key yields a nil slice, not an error.
func buildContents(m map[string]any, nodePath string) ([]Node, error) {
	raw, ok := m["contents"]
	if !ok || raw == nil {
		return nil, nil
	}
	list, ok := raw.([]any)
	if !ok {
		return nil, &poderrors.DecodeError{
			NodePath: nodePath,
			Message:  fmt.Sprintf("'contents' is not a list, got %T", raw),
		}
	}
	nodes := make([]Node, 0, len(list))
	for i, elem := range list {
		node, err := buildNode(elem, fmt.Sprintf("%s.contents[%d]", nodePath, i))
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, node)
	}
	return nodes, nil
}

func buildTable(m map[string]any, nodePath string) (Node, error) {
	table := &Table{}
	table.Caption, _ = m["caption"].(string)

	if raw, ok := m["headers"]; ok && raw != nil {
		list, ok := raw.([]any)
		if !ok {
			return nil, &poderrors.DecodeError{
				NodePath: nodePath,
				Message:  fmt.Sprintf("'headers' is not a list, got %T", raw),
			}
		}
		for i, cell := range list {
			node, err := buildNode(cell, fmt.Sprintf("%s.headers[%d]", nodePath, i))
			if err != nil {
				return nil, err
			}
			table.Headers = append(table.Headers, node)
		}
	}

	if raw, ok := m["rows"]; ok && raw != nil {
		list, ok := raw.([]any)
		if !ok {
			return nil, &poderrors.DecodeError{
				NodePath: nodePath,
				Message:  fmt.Sprintf("'rows' is not a list, got %T", raw),
			}
		}
		for i, rawRow := range list {
			cells, ok := rawRow.([]any)
			if !ok {
				return nil, &poderrors.DecodeError{
					NodePath: fmt.Sprintf("%s.rows[%d]", nodePath, i),
					Message:  fmt.Sprintf("row is not a list, got %T", rawRow),
				}
			}
			row := make([]Node, 0, len(cells))
			for j, cell := range cells {
				node, err := buildNode(cell, fmt.Sprintf("%s.rows[%d][%d]", nodePath, i, j))
				if err != nil {
					return nil, err
				}
				row = append(row, node)
			}
			table.Rows = append(table.Rows, row)
		}
	}

	return table, nil
}

// intValue coerces a decoded numeric value to int. JSON numbers arrive as
// float64, YAML integers as int or uint64. Non-numeric or missing values
// fall back to def.
func intValue(v any, def int) int {
	switch n := v.(type) {
	case int:
		return n
	case int64:
		return int(n)
	case uint64:
		return int(n) //nolint:gosec // G115: dump levels are tiny
	case float64:
		return int(n)
	default:
		return def
	}
}
