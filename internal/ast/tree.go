package ast

// Arenas owns every node allocator for one parsed file, so the whole
// tree (and the text it points back into) can be dropped together.
type Arenas struct {
	Namespaces       *Arena[Namespace]
	Scopes           *Arena[Scope]
	ConstantDecls    *Arena[ConstantDecl]
	VariableDecls    *Arena[VariableDecl]
	NominalTypeDecls *Arena[NominalTypeDecl]
	TypeExprs        *Arena[TypeExpr]
	IntegerLiterals  *Arena[IntegerLiteral]
	FloatLiterals    *Arena[FloatLiteral]
	StringLiterals   *Arena[StringLiteral]
	FuncLiterals     *Arena[FuncLiteral]
	EmptyExprs       *Arena[EmptyExpr]
	AddressOfs       *Arena[AddressOf]
	Derefs           *Arena[Deref]
	UnknownIdents    *Arena[UnknownIdentifier]
	Variables        *Arena[Variable]
	Constants        *Arena[Constant]
	FuncCalls        *Arena[FuncCall]
	Assignments      *Arena[Assignment]
	Returns          *Arena[Return]
}

// NewArenas allocates a fresh set of per-kind arenas using each
// arena's own default chunk size.
func NewArenas() *Arenas {
	return NewArenasWithChunkSize(0)
}

// NewArenasWithChunkSize allocates a fresh set of per-kind arenas,
// each sized to grow in increments of at least minChunkSize elements.
// A project manifest's arena_min_chunk_size setting is plumbed through
// to here so one configured value governs every node kind's arena.
func NewArenasWithChunkSize(minChunkSize int) *Arenas {
	return &Arenas{
		Namespaces:       NewArena[Namespace](minChunkSize),
		Scopes:           NewArena[Scope](minChunkSize),
		ConstantDecls:    NewArena[ConstantDecl](minChunkSize),
		VariableDecls:    NewArena[VariableDecl](minChunkSize),
		NominalTypeDecls: NewArena[NominalTypeDecl](minChunkSize),
		TypeExprs:        NewArena[TypeExpr](minChunkSize),
		IntegerLiterals:  NewArena[IntegerLiteral](minChunkSize),
		FloatLiterals:    NewArena[FloatLiteral](minChunkSize),
		StringLiterals:   NewArena[StringLiteral](minChunkSize),
		FuncLiterals:     NewArena[FuncLiteral](minChunkSize),
		EmptyExprs:       NewArena[EmptyExpr](minChunkSize),
		AddressOfs:       NewArena[AddressOf](minChunkSize),
		Derefs:           NewArena[Deref](minChunkSize),
		UnknownIdents:    NewArena[UnknownIdentifier](minChunkSize),
		Variables:        NewArena[Variable](minChunkSize),
		Constants:        NewArena[Constant](minChunkSize),
		FuncCalls:        NewArena[FuncCall](minChunkSize),
		Assignments:      NewArena[Assignment](minChunkSize),
		Returns:          NewArena[Return](minChunkSize),
	}
}

// Tree is a complete parsed file: its root namespace plus the arenas
// every node in it was allocated from.
type Tree struct {
	Root   *Namespace
	Arenas *Arenas
}
