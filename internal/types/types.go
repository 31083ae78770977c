// Package types implements the tagged-variant type model: every concrete
// type is one of a fixed set of kinds, and two types compare equal when
// their tags and payloads compare equal, recursively.
package types

import "fmt"

// Kind tags the variant a Type value holds.
type Kind uint8

const (
	KindInvalid Kind = iota
	KindVoid
	KindAtom
	KindPointer
	KindSlice
	KindArray
	KindTuple
	KindStruct
	KindEnum
	KindUnion
	KindFunction
	KindUnknown
)

func (k Kind) String() string {
	switch k {
	case KindVoid:
		return "void"
	case KindAtom:
		return "atom"
	case KindPointer:
		return "pointer"
	case KindSlice:
		return "slice"
	case KindArray:
		return "array"
	case KindTuple:
		return "tuple"
	case KindStruct:
		return "struct"
	case KindEnum:
		return "enum"
	case KindUnion:
		return "union"
	case KindFunction:
		return "function"
	case KindUnknown:
		return "unknown"
	default:
		return fmt.Sprintf("Kind(%d)", k)
	}
}

// Atom enumerates the primitive scalar kinds.
type Atom uint8

const (
	AtomInvalid Atom = iota
	AtomByte
	AtomI8
	AtomI16
	AtomI32
	AtomI64
	AtomU8
	AtomU16
	AtomU32
	AtomU64
	AtomF16
	AtomF32
	AtomF64
	AtomCodePoint
)

var atomNames = map[Atom]string{
	AtomByte:      "byte",
	AtomI8:        "i8",
	AtomI16:       "i16",
	AtomI32:       "i32",
	AtomI64:       "i64",
	AtomU8:        "u8",
	AtomU16:       "u16",
	AtomU32:       "u32",
	AtomU64:       "u64",
	AtomF16:       "f16",
	AtomF32:       "f32",
	AtomF64:       "f64",
	AtomCodePoint: "codepoint",
}

func (a Atom) String() string {
	if name, ok := atomNames[a]; ok {
		return name
	}
	return fmt.Sprintf("Atom(%d)", a)
}

// LookupAtom resolves an atom's surface spelling to its Atom value.
func LookupAtom(name string) (Atom, bool) {
	for a, n := range atomNames {
		if n == name {
			return a, true
		}
	}
	return AtomInvalid, false
}

// Type is a tagged variant. Only the fields relevant to Kind are
// meaningful; the rest are zero.
type Type struct {
	Kind Kind

	AtomKind Atom // KindAtom

	Pointee *Type // KindPointer
	Element *Type // KindSlice, KindArray
	Len     uint64 // KindArray

	Elements []*Type // KindTuple

	Name        string   // KindStruct, KindEnum, KindUnion, KindUnknown
	FieldNames  []string // KindStruct
	FieldTypes  []*Type  // KindStruct

	ParameterTypes []*Type // KindFunction
	ReturnType     *Type   // KindFunction
}

// Void is the singleton void type.
var Void = &Type{Kind: KindVoid}

// NewAtom constructs an atomic scalar type.
func NewAtom(a Atom) *Type {
	return &Type{Kind: KindAtom, AtomKind: a}
}

// NewPointer constructs a pointer-to-pointee type.
func NewPointer(pointee *Type) *Type {
	return &Type{Kind: KindPointer, Pointee: pointee}
}

// NewSlice constructs a dynamically-sized slice type.
func NewSlice(elem *Type) *Type {
	return &Type{Kind: KindSlice, Element: elem}
}

// NewArray constructs a fixed-length array type.
func NewArray(elem *Type, length uint64) *Type {
	return &Type{Kind: KindArray, Element: elem, Len: length}
}

// NewTuple constructs a tuple type over the given element types.
func NewTuple(elements []*Type) *Type {
	return &Type{Kind: KindTuple, Elements: elements}
}

// NewStruct constructs a named struct type with parallel field name/type
// slices.
func NewStruct(name string, fieldNames []string, fieldTypes []*Type) *Type {
	return &Type{Kind: KindStruct, Name: name, FieldNames: fieldNames, FieldTypes: fieldTypes}
}

// NewEnum constructs a named enum type. The original language leaves enum
// payload fields unspecified; only the name is tracked.
func NewEnum(name string) *Type {
	return &Type{Kind: KindEnum, Name: name}
}

// NewUnion constructs a named union type, likewise name-only.
func NewUnion(name string) *Type {
	return &Type{Kind: KindUnion, Name: name}
}

// NewFunction constructs a function type.
func NewFunction(parameterTypes []*Type, returnType *Type) *Type {
	return &Type{Kind: KindFunction, ParameterTypes: parameterTypes, ReturnType: returnType}
}

// NewUnknown constructs the sentinel used during parsing for a forward
// reference to a nominal type that has not yet been resolved.
func NewUnknown(name string) *Type {
	return &Type{Kind: KindUnknown, Name: name}
}

// IsUnknown reports whether t is the Unknown sentinel (nil counts as
// unknown: it means "no type annotation yet").
func IsUnknown(t *Type) bool {
	return t == nil || t.Kind == KindUnknown
}

// Equal reports whether a and b describe the same type, recursively.
func Equal(a, b *Type) bool {
	if a == b {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	if a.Kind != b.Kind {
		return false
	}
	switch a.Kind {
	case KindVoid:
		return true
	case KindAtom:
		return a.AtomKind == b.AtomKind
	case KindPointer:
		return Equal(a.Pointee, b.Pointee)
	case KindSlice:
		return Equal(a.Element, b.Element)
	case KindArray:
		return a.Len == b.Len && Equal(a.Element, b.Element)
	case KindTuple:
		return equalTypeSlices(a.Elements, b.Elements)
	case KindStruct:
		if a.Name != b.Name || len(a.FieldNames) != len(b.FieldNames) {
			return false
		}
		for i := range a.FieldNames {
			if a.FieldNames[i] != b.FieldNames[i] {
				return false
			}
		}
		return equalTypeSlices(a.FieldTypes, b.FieldTypes)
	case KindEnum, KindUnion:
		return a.Name == b.Name
	case KindFunction:
		return Equal(a.ReturnType, b.ReturnType) && equalTypeSlices(a.ParameterTypes, b.ParameterTypes)
	case KindUnknown:
		return a.Name == b.Name
	default:
		return false
	}
}

func equalTypeSlices(a, b []*Type) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !Equal(a[i], b[i]) {
			return false
		}
	}
	return true
}

// String renders a human-readable description of t, following the
// surface syntax of type expressions.
func (t *Type) String() string {
	if t == nil {
		return "<nil>"
	}
	switch t.Kind {
	case KindVoid:
		return "void"
	case KindAtom:
		return t.AtomKind.String()
	case KindPointer:
		return "@" + t.Pointee.String()
	case KindSlice:
		return t.Element.String() + "[]"
	case KindArray:
		return fmt.Sprintf("%s[%d]", t.Element.String(), t.Len)
	case KindTuple:
		s := "("
		for i, e := range t.Elements {
			if i > 0 {
				s += ", "
			}
			s += e.String()
		}
		return s + ")"
	case KindStruct:
		return t.Name
	case KindEnum:
		return t.Name
	case KindUnion:
		return t.Name
	case KindFunction:
		s := "fn("
		for i, p := range t.ParameterTypes {
			if i > 0 {
				s += ", "
			}
			s += p.String()
		}
		return s + ") -> " + t.ReturnType.String()
	case KindUnknown:
		return "?" + t.Name
	default:
		return "<invalid>"
	}
}
