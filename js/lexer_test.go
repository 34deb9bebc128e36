package js

import "testing"

func collectTokens(input string) []Token {
	l := NewLexer(input)
	var toks []Token
	for {
		tok := l.NextToken()
		toks = append(toks, tok)
		if tok.Type == EOF {
			return toks
		}
	}
}

func TestLexerKeywordsAndIdents(t *testing.T) {
	toks := collectTokens(`var x = 1;`)
	want := []TokenType{VAR, IDENT, ASSIGN, NUMBER, SEMICOLON, EOF}
	if len(toks) != len(want) {
		t.Fatalf("got %d tokens, want %d: %+v", len(toks), len(want), toks)
	}
	for i, w := range want {
		if toks[i].Type != w {
			t.Errorf("token %d = %q, want %q", i, toks[i].Type, w)
		}
	}
}

func TestLexerFunctionAndCall(t *testing.T) {
	toks := collectTokens(`function add(a, b) { return a + b; } add(1, 2);`)
	var types []TokenType
	for _, tok := range toks {
		types = append(types, tok.Type)
	}
	want := []TokenType{
		FUNCTION, IDENT, LPAREN, IDENT, COMMA, IDENT, RPAREN, LBRACE,
		RETURN, IDENT, PLUS, IDENT, SEMICOLON, RBRACE,
		IDENT, LPAREN, NUMBER, COMMA, NUMBER, RPAREN, SEMICOLON, EOF,
	}
	if len(types) != len(want) {
		t.Fatalf("got %d tokens, want %d: %+v", len(types), len(want), types)
	}
	for i, w := range want {
		if types[i] != w {
			t.Errorf("token %d = %q, want %q", i, types[i], w)
		}
	}
}

func TestLexerStringLiteral(t *testing.T) {
	toks := collectTokens(`"hello"`)
	if toks[0].Type != STRING || toks[0].Literal != "hello" {
		t.Errorf("token = %+v, want STRING hello", toks[0])
	}
}

func TestLexerMemberAccess(t *testing.T) {
	toks := collectTokens(`document.getElementById("a")`)
	want := []TokenType{IDENT, DOT, IDENT, LPAREN, STRING, RPAREN, EOF}
	for i, w := range want {
		if toks[i].Type != w {
			t.Errorf("token %d = %q, want %q", i, toks[i].Type, w)
		}
	}
}

func TestLexerUnsupportedPunctuatorPanics(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Fatal("expected panic for unsupported punctuator")
		}
	}()
	collectTokens(`a * b`)
}
