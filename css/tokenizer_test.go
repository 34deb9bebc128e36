package css

import "testing"

func TestTokenizerIdentAndNumber(t *testing.T) {
	tk := NewTokenizer("h1 40")
	tok := tk.Next()
	if tok.Type != IdentToken || tok.Value != "h1" {
		t.Fatalf("got %+v, want Ident h1", tok)
	}
	ws := tk.Next()
	if ws.Type != WhitespaceToken {
		t.Fatalf("got %+v, want Whitespace", ws)
	}
	num := tk.Next()
	if num.Type != NumberToken || num.Num != 40 {
		t.Fatalf("got %+v, want Number 40", num)
	}
}

func TestTokenizerHashAndString(t *testing.T) {
	tk := NewTokenizer(`#00ff00 "Hey"`)
	hash := tk.Next()
	if hash.Type != HashToken || hash.Value != "00ff00" {
		t.Fatalf("got %+v, want Hash 00ff00", hash)
	}
	tk.Next() // whitespace
	str := tk.Next()
	if str.Type != StringToken || str.Value != "Hey" {
		t.Fatalf("got %+v, want String Hey", str)
	}
}

func TestTokenizerStructuralTokens(t *testing.T) {
	tk := NewTokenizer(`.x{color:red;}`)
	want := []TokenType{DelimToken, IdentToken, OpenCurlyToken, IdentToken, ColonToken, IdentToken, SemiColonToken, CloseCurlyToken}
	for i, w := range want {
		tok := tk.Next()
		if tok.Type != w {
			t.Fatalf("token %d = %v, want %v (%+v)", i, tok.Type, w, tok)
		}
	}
}

func TestTokenizerDeterminism(t *testing.T) {
	const input = `h1 { font-size: 40; color: blue; } p { content: "Hey"; }`
	var a, b []TokenType
	ta, tb := NewTokenizer(input), NewTokenizer(input)
	for {
		x := ta.Next()
		a = append(a, x.Type)
		if x.Type == EOFToken {
			break
		}
	}
	for {
		x := tb.Next()
		b = append(b, x.Type)
		if x.Type == EOFToken {
			break
		}
	}
	if len(a) != len(b) {
		t.Fatalf("token count differs: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Errorf("token %d differs: %v vs %v", i, a[i], b[i])
		}
	}
}
