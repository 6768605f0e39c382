package document

import (
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"

	"github.com/vango-dev/tagtree/internal/errors"
	"github.com/vango-dev/tagtree/pkg/attrs"
	"github.com/vango-dev/tagtree/pkg/markup"
	"github.com/vango-dev/tagtree/pkg/tags"
)

// Node is the decoded form of one element in a document.
type Node struct {
	Tag      string         `mapstructure:"tag"`
	Void     *bool          `mapstructure:"void"`
	Attrs    any            `mapstructure:"attrs"`
	Class    []string       `mapstructure:"class"`
	Style    any            `mapstructure:"style"`
	Data     map[string]any `mapstructure:"data"`
	Hidden   bool           `mapstructure:"hidden"`
	Children []any          `mapstructure:"children"`
}

// Load reads and builds the document at path.
func Load(path string) (*markup.Element, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.New("E501").WithDetail(path).Wrap(err)
	}
	defer f.Close()

	return Parse(f)
}

// Parse reads a document from r and builds it.
func Parse(r io.Reader) (*markup.Element, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.New("E501").Wrap(err)
	}
	return Decode(data)
}

// Decode builds the document held in data.
func Decode(data []byte) (*markup.Element, error) {
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, errors.New("E502").WithDetail(err.Error())
	}
	if raw == nil {
		return nil, errors.New("E503").WithDetail("document is empty")
	}

	n, err := decodeNode(raw, "root")
	if err != nil {
		return nil, err
	}
	return n.build("root")
}

// Build creates the element tree described by n.
func Build(n Node) (*markup.Element, error) {
	return n.build("root")
}

func decodeNode(raw map[string]any, path string) (Node, error) {
	var n Node
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &n,
		WeaklyTypedInput: true,
		ErrorUnused:      true,
	})
	if err != nil {
		return n, err
	}
	if err := dec.Decode(raw); err != nil {
		return n, errors.New("E502").WithDetailf("%s: %v", path, err)
	}
	return n, nil
}

func (n Node) build(path string) (*markup.Element, error) {
	if n.Tag == "" {
		return nil, errors.New("E503").WithDetailf("%s: missing tag", path)
	}

	kind := tags.KindFor(n.Tag)
	if n.Void != nil {
		kind.Void = *n.Void
	}
	if len(n.Children) > 0 && (kind.Void || tags.IsVoidElement(n.Tag)) {
		return nil, errors.New("E503").
			WithDetailf("%s: void element <%s> cannot have children", path, n.Tag)
	}

	bindings, err := n.bindings(path)
	if err != nil {
		return nil, err
	}

	el, err := markup.New(kind, bindings...)
	if err != nil {
		return nil, errors.New("E503").WithDetail(path).Wrap(err)
	}

	for _, k := range sortedKeys(n.Data) {
		el.SetData(k, n.Data[k])
	}
	if n.Hidden {
		el.Hide()
	}

	for i, c := range n.Children {
		child, err := buildChild(c, fmt.Sprintf("%s.children[%d]", path, i))
		if err != nil {
			return nil, err
		}
		el.Append(child)
	}
	return el, nil
}

func (n Node) bindings(path string) ([]attrs.Attr, error) {
	var out []attrs.Attr

	switch v := n.Attrs.(type) {
	case nil:
	case map[string]any:
		out = appendSorted(out, v)
	case []any:
		for i, item := range v {
			m, ok := item.(map[string]any)
			if !ok {
				return nil, errors.New("E503").
					WithDetailf("%s.attrs[%d]: expected a mapping, got %T", path, i, item)
			}
			out = appendSorted(out, m)
		}
	default:
		return nil, errors.New("E503").
			WithDetailf("%s.attrs: expected a mapping or sequence, got %T", path, v)
	}

	if len(n.Class) > 0 {
		out = append(out, attrs.A("class", n.Class))
	}

	switch v := n.Style.(type) {
	case nil:
	case string:
		out = append(out, attrs.A(attrs.StyleKey, v))
	case map[string]any:
		out = append(out, attrs.A(attrs.StyleKey, attrs.Dict(v)))
	default:
		return nil, errors.New("E503").
			WithDetailf("%s.style: expected a string or mapping, got %T", path, v)
	}

	return out, nil
}

func buildChild(c any, path string) (any, error) {
	switch v := c.(type) {
	case nil:
		return nil, nil
	case map[string]any:
		if raw, ok := v["raw"]; ok && len(v) == 1 {
			return markup.Raw(fmt.Sprint(raw)), nil
		}
		n, err := decodeNode(v, path)
		if err != nil {
			return nil, err
		}
		return n.build(path)
	case []any:
		return nil, errors.New("E503").WithDetailf("%s: nested sequences are not allowed", path)
	default:
		return fmt.Sprint(v), nil
	}
}

func appendSorted(out []attrs.Attr, m map[string]any) []attrs.Attr {
	for _, k := range sortedKeys(m) {
		out = append(out, attrs.A(k, m[k]))
	}
	return out
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
