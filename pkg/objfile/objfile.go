package objfile

import (
	"io"
	"maps"
	"os"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/dotwalk/pkg/attr"
	"github.com/matzehuels/dotwalk/pkg/discover"
	"github.com/matzehuels/dotwalk/pkg/errors"
	"github.com/matzehuels/dotwalk/pkg/graph"
)

// Document is a loaded object graph.
type Document struct {
	Root    *Object
	Attrs   graph.Attrs
	Objects map[string]*Object
}

// Object is one named object of a document.
type Object struct {
	Name    string
	ID      *int
	Attrs   graph.Attrs
	Exclude bool

	targets []any
	sources []any
	related []any
}

// NodeFor implements discover.NodeProvider.
func (o *Object) NodeFor(s *discover.Scope) (*graph.Node, error) {
	if o.Exclude {
		return nil, nil
	}
	if o.ID != nil {
		return &graph.Node{ID: *o.ID, Attrs: o.Attrs.Clone()}, nil
	}
	return s.Node(o.Attrs.Clone()), nil
}

// PointsTo implements discover.TargetLister.
func (o *Object) PointsTo() ([]any, error) { return o.targets, nil }

// PointedToBy implements discover.SourceLister.
func (o *Object) PointedToBy() ([]any, error) { return o.sources, nil }

// Related implements discover.RelatedLister.
func (o *Object) Related() ([]any, error) { return o.related, nil }

type document struct {
	Root    string                `toml:"root"`
	Graph   map[string]any        `toml:"graph"`
	Objects map[string]objectSpec `toml:"objects"`
}

type objectSpec struct {
	ID          *int64         `toml:"id"`
	Attrs       map[string]any `toml:"attrs"`
	Exclude     bool           `toml:"exclude"`
	PointsTo    []any          `toml:"points_to"`
	PointedToBy []any          `toml:"pointed_to_by"`
	Related     []string       `toml:"related"`
}

// LoadFile reads a document from a TOML file.
func LoadFile(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "object document %s", path)
	}
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

// Load reads a document from r.
func Load(r io.Reader) (*Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

// Parse decodes a TOML document and links its objects.
func Parse(data []byte) (*Document, error) {
	var raw document
	md, err := toml.Decode(string(data), &raw)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode object document")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, errors.New(errors.ErrCodeInvalidInput, "unknown keys: %s", strings.Join(keys, ", "))
	}

	doc := &Document{Objects: make(map[string]*Object, len(raw.Objects))}
	if doc.Attrs, err = convertAttrs(raw.Graph); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "[graph]")
	}

	for name, spec := range raw.Objects {
		o := &Object{Name: name, Exclude: spec.Exclude}
		if spec.ID != nil {
			id := int(*spec.ID)
			o.ID = &id
		}
		if o.Attrs, err = convertAttrs(spec.Attrs); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "object %q", name)
		}
		doc.Objects[name] = o
	}

	// Link in name order so error reports are stable.
	for _, name := range slices.Sorted(maps.Keys(raw.Objects)) {
		if err := doc.link(doc.Objects[name], raw.Objects[name]); err != nil {
			return nil, err
		}
	}

	if raw.Root == "" {
		return nil, errors.New(errors.ErrCodeInvalidInput, "document has no root")
	}
	root, ok := doc.Objects[raw.Root]
	if !ok {
		return nil, errors.New(errors.ErrCodeInvalidInput, "root %q is not a defined object", raw.Root)
	}
	doc.Root = root
	return doc, nil
}

func (d *Document) link(o *Object, spec objectSpec) error {
	var err error
	if o.targets, err = d.links(o.Name, "points_to", spec.PointsTo); err != nil {
		return err
	}
	if o.sources, err = d.links(o.Name, "pointed_to_by", spec.PointedToBy); err != nil {
		return err
	}
	for _, name := range spec.Related {
		ref, err := d.lookup(o.Name, "related", name)
		if err != nil {
			return err
		}
		o.related = append(o.related, ref)
	}
	return nil
}

// links resolves a relation list. Entries are object names or
// { to = "name", attrs = {...} } tables.
func (d *Document) links(owner, field string, entries []any) ([]any, error) {
	out := make([]any, 0, len(entries))
	for _, e := range entries {
		switch v := e.(type) {
		case string:
			ref, err := d.lookup(owner, field, v)
			if err != nil {
				return nil, err
			}
			out = append(out, ref)

		case map[string]any:
			name, _ := v["to"].(string)
			ref, err := d.lookup(owner, field, name)
			if err != nil {
				return nil, err
			}
			raw, _ := v["attrs"].(map[string]any)
			attrs, err := convertAttrs(raw)
			if err != nil {
				return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "object %q: %s", owner, field)
			}
			out = append(out, discover.With(ref, attrs))

		default:
			return nil, errors.New(errors.ErrCodeInvalidInput, "object %q: %s entry %v is neither a name nor a table", owner, field, e)
		}
	}
	return out, nil
}

func (d *Document) lookup(owner, field, name string) (*Object, error) {
	o, ok := d.Objects[name]
	if !ok {
		return nil, errors.New(errors.ErrCodeInvalidInput, "object %q: %s refers to undefined object %q", owner, field, name)
	}
	return o, nil
}

func convertAttrs(raw map[string]any) (graph.Attrs, error) {
	if raw == nil {
		return nil, nil
	}
	out := make(graph.Attrs, len(raw))
	for k, v := range raw {
		cv, err := convertValue(v)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "attribute %q", k)
		}
		out[k] = cv
	}
	return out, nil
}

// convertValue maps TOML values onto the Go values attribute grammars
// expect: int64 becomes int, { symbol = "x" } becomes attr.Symbol.
func convertValue(v any) (any, error) {
	switch t := v.(type) {
	case int64:
		return int(t), nil
	case map[string]any:
		sym, ok := t["symbol"].(string)
		if !ok || len(t) != 1 {
			return nil, errors.New(errors.ErrCodeInvalidInput, "table value must be { symbol = \"...\" }")
		}
		return attr.Symbol(sym), nil
	case []any:
		out := make([]any, len(t))
		for i, e := range t {
			cv, err := convertValue(e)
			if err != nil {
				return nil, err
			}
			out[i] = cv
		}
		return out, nil
	}
	return v, nil
}
