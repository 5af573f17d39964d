/*
Package rubylite implements Rubylite, a small Ruby-like Violet dialect.

    class Point < Shape
      attr x
      def getX() @x end
    end

Rubylite dispatches dynamically: whether a receiver understands a message is
known at runtime only. Its pipeline therefore consists of the class-tree builder,
the field identifier, the method identifier and the field resolver for @name
references, without dispatch resolution.
Fields are declared with attr. Methods are identified by name; parameters carry
no types.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package rubylite

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
const Name = "rubylite"

var literals = []string{"<", "@", "(", ")", ",", "."}

var keywords = []string{"class", "end", "def", "attr", "self"}

// TokenIDs maps terminal names to token types.
var TokenIDs map[string]int

func init() {
	TokenIDs = make(map[string]int)
	id := 1
	for _, names := range [][]string{literals, keywords, {"CONST", "ID", "NUM"}} {
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

// Grammar returns the grammar of Rubylite.
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
	b.LHS("Program").N("Defs").End()
	b.LHS("Defs").N("Defs").N("ClassDef").End()
	b.LHS("Defs").N("ClassDef").End()
	t(t(b.LHS("ClassDef"), "class", "CONST").N("Body"), "end").End()
	t(t(b.LHS("ClassDef"), "class", "CONST").N("Inherit").N("Body"), "end").End()
	t(b.LHS("ClassDef"), "class", "CONST", "end").End()
	t(t(b.LHS("ClassDef"), "class", "CONST").N("Inherit"), "end").End()
	t(b.LHS("Inherit"), "<", "CONST").End()
	b.LHS("Body").N("Body").N("Item").End()
	b.LHS("Body").N("Item").End()
	b.LHS("Item").N("AttrDecl").End()
	b.LHS("Item").N("MethodDef").End()
	t(b.LHS("AttrDecl"), "attr", "ID").End()
	t(t(t(b.LHS("MethodDef"), "def", "ID", "(").N("Params"), ")").N("Stmts"), "end").End()
	t(t(b.LHS("MethodDef"), "def", "ID").N("Stmts"), "end").End()
	t(b.LHS("MethodDef"), "def", "ID", "end").End()
	t(t(b.LHS("MethodDef"), "def", "ID", "(").N("Params"), ")", "end").End()
	t(b.LHS("MethodDef"), "def", "ID", "(", ")").N("Stmts").T("end", TokenIDs["end"]).End()
	t(b.LHS("MethodDef"), "def", "ID", "(", ")", "end").End()
	t(b.LHS("Params").N("Params"), ",", "ID").End()
	t(b.LHS("Params"), "ID").End()
	b.LHS("Stmts").N("Stmts").N("Expr").End()
	b.LHS("Stmts").N("Expr").End()
	b.LHS("Expr").N("Send").End()
	b.LHS("Expr").N("Ref").End()
	t(b.LHS("Expr"), "NUM").End()
	t(b.LHS("Expr"), "self").End()
	t(b.LHS("Send"), "ID", "(", ")").End()
	t(t(b.LHS("Send"), "ID", "(").N("Args"), ")").End()
	t(b.LHS("Send"), "self", ".", "ID").End()
	t(b.LHS("Args").N("Args"), ",").N("Expr").End()
	b.LHS("Args").N("Expr").End()
	t(b.LHS("Ref"), "@", "ID").End()
	return b.Grammar()
}

// Lexer returns the lexmachine adapter for Rubylite.
func Lexer() (*scanner.LMAdapter, error) {
	lexerOnce.Do(func() {
		lexer, lexerErr = scanner.NewLMAdapter(initTokens, literals, keywords, TokenIDs)
	})
	return lexer, lexerErr
}

func initTokens(lex *lexmachine.Lexer) {
	lex.Add([]byte(`[A-Z][a-zA-Z0-9_]*`), scanner.MakeToken("CONST", TokenIDs["CONST"]))
	lex.Add([]byte(`[a-z_][a-zA-Z0-9_]*`), scanner.MakeToken("ID", TokenIDs["ID"]))
	lex.Add([]byte(`[0-9]+`), scanner.MakeToken("NUM", TokenIDs["NUM"]))
	lex.Add([]byte(`#[^\n]*`), scanner.Skip)
	lex.Add([]byte(`( |\t|\n|\r)+`), scanner.Skip)
}

// Tokenizer creates a tokenizer for Rubylite source text.
func Tokenizer(source string) (scanner.Tokenizer, error) {
	lex, err := Lexer()
	if err != nil {
		return nil, err
	}
	tracer().Debugf("%s tokenizer for %d bytes of input", Name, len(source))
	return lex.Scanner(source)
}
