package attr

import (
	"fmt"
	"reflect"
	"strings"
)

// Kind is the entity an attribute belongs to.
type Kind int

const (
	KindGraph Kind = iota
	KindNode
	KindEdge
)

func (k Kind) String() string {
	switch k {
	case KindGraph:
		return "graph"
	case KindNode:
		return "node"
	case KindEdge:
		return "edge"
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Symbol is a symbolic token. As an enumeration member it is written in
// lower case and unquoted.
type Symbol string

// Base is the tag of a value type.
type Base int

const (
	Integer Base = iota + 1
	Boolean
	Text
	Float
	Enumeration
)

func (b Base) String() string {
	switch b {
	case Integer:
		return "integer"
	case Boolean:
		return "boolean"
	case Text:
		return "text"
	case Float:
		return "float"
	case Enumeration:
		return "enumeration"
	}
	return "invalid"
}

// Type describes the values an attribute accepts.
type Type struct {
	Base Base
	// Values lists the members of an enumeration.
	Values []any
}

// Predefined scalar types.
var (
	IntegerType = Type{Base: Integer}
	BooleanType = Type{Base: Boolean}
	TextType    = Type{Base: Text}
	FloatType   = Type{Base: Float}
)

// Enum returns an enumeration of values.
func Enum(values ...any) Type {
	return Type{Base: Enumeration, Values: values}
}

// Symbols returns an enumeration of symbolic tokens.
func Symbols(names ...string) Type {
	values := make([]any, len(names))
	for i, n := range names {
		values[i] = Symbol(n)
	}
	return Enum(values...)
}

// Has reports whether v is a member of an enumeration.
func (t Type) Has(v any) bool {
	for _, m := range t.Values {
		if reflect.DeepEqual(m, v) {
			return true
		}
	}
	return false
}

func (t Type) String() string {
	if t.Base != Enumeration {
		return t.Base.String()
	}
	parts := make([]string, len(t.Values))
	for i, v := range t.Values {
		parts[i] = fmt.Sprint(v)
	}
	return "one of " + strings.Join(parts, ", ")
}

// Grammar maps attribute names to their types.
type Grammar map[string]Type

// Grammars holds the grammar of each entity kind.
type Grammars struct {
	Graph Grammar
	Node  Grammar
	Edge  Grammar
}

// For returns the grammar of kind k.
func (g Grammars) For(k Kind) Grammar {
	switch k {
	case KindGraph:
		return g.Graph
	case KindNode:
		return g.Node
	case KindEdge:
		return g.Edge
	}
	return nil
}
