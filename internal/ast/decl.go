package ast

// Program is the top-level declaration list of one source file.
type Program struct {
	Base
	Decls []Decl
}

// VarDecl declares one name of a given type: a global, formal, field, or
// local variable, depending on where it appears.
type VarDecl struct {
	Base
	Name string
	Type *TypeSyntax
}

func (*VarDecl) declNode() {}

// FnDecl declares a function or method. A nil Body marks an abstract
// interface method or a class method left unimplemented (a parse error in
// well-formed Decaf, but the AST shape allows it).
type FnDecl struct {
	Base
	Name       string
	ReturnType *TypeSyntax
	Formals    []*VarDecl
	Body       *StmtBlock
}

func (*FnDecl) declNode() {}

// ClassDecl declares a class, its optional base class, the interfaces it
// implements, and its member declarations.
type ClassDecl struct {
	Base
	Name       string
	Extends    *TypeSyntax // nil, or TypeSyntaxNamed
	Implements []*TypeSyntax
	Members    []Decl // *VarDecl or *FnDecl
}

func (*ClassDecl) declNode() {}

// InterfaceDecl declares an interface and its (always-abstract) methods.
type InterfaceDecl struct {
	Base
	Name    string
	Members []*FnDecl
}

func (*InterfaceDecl) declNode() {}
