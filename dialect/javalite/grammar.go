/*
Package javalite implements Javalite, a small Java-like Violet dialect.

    class A {
        int x;
        int getX() { return x; }
    }
    class B extends A {
        int useGetX() { return getX(); }
    }

Javalite is statically dispatched: its pipeline runs the class-tree builder, the
field identifier, the method identifier, the field resolver and finally the
dispatch resolver, which checks every method call against the class tree. Names
in method bodies are fields unless bound as a parameter or local variable.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package javalite

import (
	"sync"

	"github.com/matty-l/violet/lr"
	"github.com/matty-l/violet/lr/scanner"
	"github.com/npillmayer/schuko/tracing"
	"github.com/timtadh/lexmachine"
)

// tracer traces with key 'violet.semantic'.
func tracer() tracing.Trace {
	return tracing.Select("violet.semantic")
}

// Name is the name of the dialect.
const Name = "javalite"

var literals = []string{"{", "}", ";", "=", "(", ")", ",", "+", "."}

var keywords = []string{"class", "extends", "int", "boolean", "void", "return", "this", "super"}

// TokenIDs maps terminal names to token types.
var TokenIDs map[string]int

func init() {
	TokenIDs = make(map[string]int)
	id := 1
	for _, names := range [][]string{literals, keywords, {"ID", "NUM"}} {
		for _, name := range names {
			TokenIDs[name] = id
			id++
		}
	}
}

var (
	grammarOnce sync.Once
	grammar     *lr.Grammar
	grammarErr  error
	lexerOnce   sync.Once
	lexer       *scanner.LMAdapter
	lexerErr    error
)

// Grammar returns the grammar of Javalite.
func Grammar() (*lr.Grammar, error) {
	grammarOnce.Do(func() {
		grammar, grammarErr = makeGrammar()
	})
	return grammar, grammarErr
}

func makeGrammar() (*lr.Grammar, error) {
	b := lr.NewGrammarBuilder(Name)
	t := func(rb *lr.RuleBuilder, terminals ...string) *lr.RuleBuilder {
		for _, name := range terminals {
			rb = rb.T(name, TokenIDs[name])
		}
		return rb
	}
	b.LHS("Program").N("Classes").End()
	b.LHS("Classes").N("Classes").N("ClassDecl").End()
	b.LHS("Classes").N("ClassDecl").End()
	t(b.LHS("ClassDecl"), "class", "ID").N("ClassBody").End()
	t(b.LHS("ClassDecl"), "class", "ID").N("Extends").N("ClassBody").End()
	t(b.LHS("Extends"), "extends", "ID").End()
	t(t(b.LHS("ClassBody"), "{").N("Members"), "}").End()
	t(b.LHS("ClassBody"), "{", "}").End()
	b.LHS("Members").N("Members").N("Member").End()
	b.LHS("Members").N("Member").End()
	b.LHS("Member").N("FieldDecl").End()
	b.LHS("Member").N("MethodDecl").End()
	t(b.LHS("FieldDecl").N("Type"), "ID", ";").End()
	t(t(b.LHS("FieldDecl").N("Type"), "ID", "=").N("Expr"), ";").End()
	t(t(b.LHS("MethodDecl").N("Type"), "ID", "(").N("Params"), ")").N("Block").End()
	t(b.LHS("MethodDecl").N("Type"), "ID", "(", ")").N("Block").End()
	t(b.LHS("Params").N("Params"), ",").N("Param").End()
	b.LHS("Params").N("Param").End()
	t(b.LHS("Param").N("Type"), "ID").End()
	for _, typ := range []string{"int", "boolean", "void", "ID"} {
		t(b.LHS("Type"), typ).End()
	}
	t(t(b.LHS("Block"), "{").N("Stmts"), "}").End()
	t(b.LHS("Block"), "{", "}").End()
	b.LHS("Stmts").N("Stmts").N("Stmt").End()
	b.LHS("Stmts").N("Stmt").End()
	b.LHS("Stmt").N("ReturnStmt").End()
	b.LHS("Stmt").N("ExprStmt").End()
	b.LHS("Stmt").N("LocalVarDecl").End()
	t(t(b.LHS("ReturnStmt"), "return").N("Expr"), ";").End()
	t(b.LHS("ReturnStmt"), "return", ";").End()
	t(b.LHS("ExprStmt").N("Expr"), ";").End()
	t(t(b.LHS("LocalVarDecl").N("Type"), "ID", "=").N("Expr"), ";").End()
	t(b.LHS("Expr").N("Expr"), "+").N("Primary").End()
	b.LHS("Expr").N("Primary").End()
	b.LHS("Primary").N("Call").End()
	b.LHS("Primary").N("Name").End()
	t(b.LHS("Primary"), "NUM").End()
	t(b.LHS("Primary"), "this").End()
	t(t(b.LHS("Primary"), "(").N("Expr"), ")").End()
	for _, receiver := range [][]string{nil, {"this", "."}, {"super", "."}} {
		prefix := append(append([]string(nil), receiver...), "ID", "(")
		t(t(b.LHS("Call"), prefix...).N("Args"), ")").End()
		t(b.LHS("Call"), append(prefix, ")")...).End()
	}
	t(b.LHS("Args").N("Args"), ",").N("Expr").End()
	b.LHS("Args").N("Expr").End()
	t(b.LHS("Name"), "ID").End()
	return b.Grammar()
}

// Lexer returns the lexmachine adapter for Javalite.
func Lexer() (*scanner.LMAdapter, error) {
	lexerOnce.Do(func() {
		lexer, lexerErr = scanner.NewLMAdapter(initTokens, literals, keywords, TokenIDs)
	})
	return lexer, lexerErr
}

func initTokens(lex *lexmachine.Lexer) {
	lex.Add([]byte(`[a-zA-Z_][a-zA-Z0-9_]*`), scanner.MakeToken("ID", TokenIDs["ID"]))
	lex.Add([]byte(`[0-9]+`), scanner.MakeToken("NUM", TokenIDs["NUM"]))
	lex.Add([]byte(`//[^\n]*`), scanner.Skip)
	lex.Add([]byte(`( |\t|\n|\r)+`), scanner.Skip)
}

// Tokenizer creates a tokenizer for Javalite source text.
func Tokenizer(source string) (scanner.Tokenizer, error) {
	lex, err := Lexer()
	if err != nil {
		return nil, err
	}
	tracer().Debugf("%s tokenizer for %d bytes of input", Name, len(source))
	return lex.Scanner(source)
}
