package rubylite

import "github.com/matty-l/violet/ast"

// Node kinds of Rubylite.
const (
	AbstractNode ast.Kind = iota
	Token
	Program
	ClassDef
	Inherit
	AttrDecl
	MethodDef
	Send
	Ref
)

var kindNames = map[ast.Kind]string{
	AbstractNode: "AbstractNode",
	Token:        "Token",
	Program:      "Program",
	ClassDef:     "ClassDef",
	Inherit:      "Inherit",
	AttrDecl:     "AttrDecl",
	MethodDef:    "MethodDef",
	Send:         "Send",
	Ref:          "Ref",
}

// Kinds returns the kind table of Rubylite.
func Kinds() *ast.KindTable {
	kt := ast.NewKindTable(Name, kindNames, AbstractNode, Token)
	kt.Map("Program", Program).Map("ClassDef", ClassDef).Map("Inherit", Inherit)
	kt.Map("AttrDecl", AttrDecl).Map("MethodDef", MethodDef).Map("Send", Send).Map("Ref", Ref)
	kt.Synthesize("Defs", "Body", "Item", "Params", "Stmts", "Expr", "Args")
	return kt
}
