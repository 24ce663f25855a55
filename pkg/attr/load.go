package attr

import (
	_ "embed"
	"io"
	"maps"
	"os"
	"sync"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/dotwalk/pkg/errors"
)

//go:embed graphviz.toml
var graphvizTOML []byte

var defaultGrammars = sync.OnceValue(func() Grammars {
	g, err := Parse(graphvizTOML)
	if err != nil {
		panic("attr: embedded grammar: " + err.Error())
	}
	return g
})

// Default returns the embedded Graphviz grammar. Each call returns maps
// the caller may modify freely.
func Default() Grammars {
	g := defaultGrammars()
	return Grammars{
		Graph: maps.Clone(g.Graph),
		Node:  maps.Clone(g.Node),
		Edge:  maps.Clone(g.Edge),
	}
}

// LoadFile reads grammars from a TOML file.
func LoadFile(path string) (Grammars, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Grammars{}, errors.Wrap(errors.ErrCodeFileNotFound, err, "grammar %s", path)
	}
	if err != nil {
		return Grammars{}, err
	}
	return Parse(data)
}

// Load reads grammars from TOML.
func Load(r io.Reader) (Grammars, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Grammars{}, err
	}
	return Parse(data)
}

// Parse decodes grammars from TOML data. The document holds up to three
// tables, graph, node and edge, each mapping attribute names to a type.
func Parse(data []byte) (Grammars, error) {
	var doc map[string]map[string]any
	if err := toml.Unmarshal(data, &doc); err != nil {
		return Grammars{}, errors.Wrap(errors.ErrCodeInvalidGrammar, err, "decode grammar")
	}

	var out Grammars
	for table, entries := range doc {
		g, err := parseTable(table, entries)
		if err != nil {
			return Grammars{}, err
		}
		switch table {
		case "graph":
			out.Graph = g
		case "node":
			out.Node = g
		case "edge":
			out.Edge = g
		default:
			return Grammars{}, errors.New(errors.ErrCodeInvalidGrammar, "unknown table [%s]", table)
		}
	}
	for _, g := range []*Grammar{&out.Graph, &out.Node, &out.Edge} {
		if *g == nil {
			*g = Grammar{}
		}
	}
	return out, nil
}

func parseTable(table string, entries map[string]any) (Grammar, error) {
	g := make(Grammar, len(entries))
	for name, spec := range entries {
		t, err := parseType(spec)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidGrammar, err, "[%s] %s", table, name)
		}
		g[name] = t
	}
	return g, nil
}

func parseType(spec any) (Type, error) {
	switch s := spec.(type) {
	case string:
		switch s {
		case "integer":
			return IntegerType, nil
		case "boolean":
			return BooleanType, nil
		case "text":
			return TextType, nil
		case "float":
			return FloatType, nil
		}
		return Type{}, errors.New(errors.ErrCodeInvalidGrammar, "unknown type %q", s)

	case map[string]any:
		if len(s) != 1 {
			return Type{}, errors.New(errors.ErrCodeInvalidGrammar, "enumeration needs exactly one of symbols or values")
		}
		if syms, ok := s["symbols"].([]any); ok {
			names := make([]string, len(syms))
			for i, v := range syms {
				name, ok := v.(string)
				if !ok {
					return Type{}, errors.New(errors.ErrCodeInvalidGrammar, "symbol %v is not a string", v)
				}
				names[i] = name
			}
			return Symbols(names...), nil
		}
		if vals, ok := s["values"].([]any); ok {
			return Enum(normalize(vals)...), nil
		}
	}
	return Type{}, errors.New(errors.ErrCodeInvalidGrammar, "invalid type %v", spec)
}

// normalize narrows TOML's int64 integers to int, the type Go callers
// write as literals.
func normalize(vals []any) []any {
	out := make([]any, len(vals))
	for i, v := range vals {
		if n, ok := v.(int64); ok {
			out[i] = int(n)
			continue
		}
		out[i] = v
	}
	return out
}
