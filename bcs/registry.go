package bcs

import (
	"fmt"
	"sync"
)

// Registry is an optional legacy name-registry façade: an earlier API
// indirected through schemas looked up by string name, with a small
// parser for "vector<T>"-style expressions and aliases that resolve
// transitively. It is a thin layer above the combinator core — Resolve
// ultimately builds the same Schema/dynCodec values the typed
// constructors in this package build directly — kept for API parity,
// not because new code should prefer it.
//
// A Registry is a per-instance object with no package-level state;
// multiple registries never interfere with each other.
type Registry struct {
	mu      sync.RWMutex
	schemas map[string]dynCodec
	aliases map[string]string
}

// NewRegistry creates an empty registry. The built-in primitive and
// combinator names (u8, vector, option, ...) are not stored in it;
// Resolve always recognizes them regardless of what has been registered.
func NewRegistry() *Registry {
	return &Registry{
		schemas: make(map[string]dynCodec),
		aliases: make(map[string]string),
	}
}

// RegisterSchema names schema for later lookup by Resolve. Re-registering
// an existing name overwrites it.
func RegisterSchema[T any](r *Registry, name string, schema Schema[T]) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.schemas[name] = box(schema)
}

// Alias makes name resolve to the given type expression (e.g.
// r.Alias("Address", "bytes<32>")). Aliases resolve transitively: an
// alias may point to another alias. Cycles are rejected at Resolve time
// by tracking the chain of names visited and failing on repeat.
func (r *Registry) Alias(name, targetExpr string) error {
	if _, err := parseTypeExpr(targetExpr); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.aliases[name] = targetExpr
	return nil
}

// Resolve parses expr as a "Name<A, B, ...>" type expression and
// dispatches to the corresponding combinator, returning a type-erased
// codec. Built-in names are: the primitives (bool, u8, u16, u32, u64,
// u128, u256, uleb128, string), bytes<N>, vector<T>, fixed_array<T, N>,
// option<T>, and map<K, V>. Any other name must have been registered
// with RegisterSchema or Alias first.
func (r *Registry) Resolve(expr string) (dynCodec, error) {
	node, err := parseTypeExpr(expr)
	if err != nil {
		return nil, err
	}
	return r.resolveNode(node, nil)
}

// Decode resolves expr and reads a single value of that type from raw,
// returning it as an untyped any (the same dynamic representation
// readAny/writeAny use throughout this façade: native Go scalars,
// []any for vector/fixed_array, *StructValue/*EnumValue for struct/enum,
// []anyPair for map). It exists so callers outside this package — the
// CLI in cmd/bcs, principally — can drive Resolve without reaching
// dynCodec's unexported methods directly.
func (r *Registry) Decode(expr string, raw []byte) (any, error) {
	codec, err := r.Resolve(expr)
	if err != nil {
		return nil, err
	}
	return codec.readAny(NewReader(raw))
}

// Encode resolves expr and writes v, a value shaped as Decode would
// produce one, returning the encoded bytes.
func (r *Registry) Encode(expr string, v any) ([]byte, error) {
	codec, err := r.Resolve(expr)
	if err != nil {
		return nil, err
	}
	if err := codec.validateAny(v); err != nil {
		return nil, err
	}
	w := NewWriter(WriterOptions{})
	if err := codec.writeAny(v, w); err != nil {
		return nil, err
	}
	return w.Bytes(), nil
}

func (r *Registry) resolveNode(node *typeExprNode, chain []string) (dynCodec, error) {
	if len(node.Args) == 0 {
		if c, ok := builtinCodec(node); ok {
			return c, nil
		}
	}
	if c, handled, err := r.resolveCompound(node, chain); handled {
		return c, err
	}

	r.mu.RLock()
	direct, hasDirect := r.schemas[node.Name]
	alias, hasAlias := r.aliases[node.Name]
	r.mu.RUnlock()

	if hasDirect {
		if len(node.Args) != 0 {
			return nil, &SchemaError{Schema: node.Name, Message: "registered schemas do not accept type arguments in this façade"}
		}
		return direct, nil
	}

	if hasAlias {
		for _, seen := range chain {
			if seen == node.Name {
				return nil, &SchemaError{Schema: node.Name, Message: fmt.Sprintf("alias cycle: %v -> %s", chain, node.Name)}
			}
		}
		target, err := parseTypeExpr(alias)
		if err != nil {
			return nil, err
		}
		return r.resolveNode(target, append(chain, node.Name))
	}

	return nil, &SchemaError{Schema: node.Name, Message: "unknown type name"}
}

func builtinCodec(node *typeExprNode) (dynCodec, bool) {
	switch node.Name {
	case "bool":
		return box(Bool()), true
	case "u8":
		return box(U8()), true
	case "u16":
		return box(U16()), true
	case "u32":
		return box(U32()), true
	case "u64":
		return box(U64()), true
	case "u128":
		return box(U128()), true
	case "u256":
		return box(U256()), true
	case "uleb128":
		return box(ULEB128()), true
	case "string":
		return box(String()), true
	}
	return nil, false
}

// resolveCompound handles the arity-bearing built-ins that need their
// argument nodes resolved recursively, which builtinCodec (argument-
// free) can't express on its own.
func (r *Registry) resolveCompound(node *typeExprNode, chain []string) (dynCodec, bool, error) {
	switch node.Name {
	case "bytes":
		if len(node.Args) != 1 || !node.Args[0].isInt {
			return nil, true, &SchemaError{Schema: "bytes", Message: "expected a single integer argument"}
		}
		return box(Bytes(node.Args[0].intVal)), true, nil
	case "vector":
		if len(node.Args) != 1 {
			return nil, true, &SchemaError{Schema: "vector", Message: "expected a single type argument"}
		}
		elem, err := r.resolveNode(node.Args[0].node, chain)
		if err != nil {
			return nil, true, err
		}
		return dynVector(elem), true, nil
	case "fixed_array":
		if len(node.Args) != 2 || !node.Args[1].isInt {
			return nil, true, &SchemaError{Schema: "fixed_array", Message: "expected (type, integer) arguments"}
		}
		elem, err := r.resolveNode(node.Args[0].node, chain)
		if err != nil {
			return nil, true, err
		}
		return dynFixedArray(elem, node.Args[1].intVal), true, nil
	case "option":
		if len(node.Args) != 1 {
			return nil, true, &SchemaError{Schema: "option", Message: "expected a single type argument"}
		}
		elem, err := r.resolveNode(node.Args[0].node, chain)
		if err != nil {
			return nil, true, err
		}
		return dynOption(elem), true, nil
	case "map":
		if len(node.Args) != 2 {
			return nil, true, &SchemaError{Schema: "map", Message: "expected (key, value) arguments"}
		}
		key, err := r.resolveNode(node.Args[0].node, chain)
		if err != nil {
			return nil, true, err
		}
		val, err := r.resolveNode(node.Args[1].node, chain)
		if err != nil {
			return nil, true, err
		}
		return dynMap(key, val), true, nil
	}
	return nil, false, nil
}
