package javalite

import (
	"github.com/matty-l/violet/ast"
)

// Node kinds of Javalite.
const (
	AbstractNode ast.Kind = iota
	Token
	Program
	ClassDecl
	Extends
	ClassBody
	FieldDecl
	MethodDecl
	Param
	Type
	Block
	ReturnStmt
	ExprStmt
	LocalVarDecl
	Call
	NameRef
)

var kindNames = map[ast.Kind]string{
	AbstractNode: "AbstractNode",
	Token:        "Token",
	Program:      "Program",
	ClassDecl:    "ClassDecl",
	Extends:      "Extends",
	ClassBody:    "ClassBody",
	FieldDecl:    "FieldDecl",
	MethodDecl:   "MethodDecl",
	Param:        "Param",
	Type:         "Type",
	Block:        "Block",
	ReturnStmt:   "ReturnStmt",
	ExprStmt:     "ExprStmt",
	LocalVarDecl: "LocalVarDecl",
	Call:         "Call",
	NameRef:      "Name",
}

// Kinds returns the kind table of Javalite. Grammar symbols named like a kind
// map to that kind; helper productions are synthetic.
func Kinds() *ast.KindTable {
	kt := ast.NewKindTable(Name, kindNames, AbstractNode, Token)
	for k, name := range kindNames {
		if k != AbstractNode && k != Token {
			kt.Map(name, k)
		}
	}
	kt.Synthesize("Classes", "Members", "Member", "Params", "Stmts", "Stmt", "Args", "Primary", "Expr")
	return kt
}
