package css

import "testing"

// TestParseTwoRules covers S7.
func TestParseTwoRules(t *testing.T) {
	sheet := Parse(`h1 { font-size: 40; color: blue; } p { content: "Hey"; }`)
	if len(sheet.Rules) != 2 {
		t.Fatalf("expected 2 rules, got %d", len(sheet.Rules))
	}

	r0 := sheet.Rules[0]
	if r0.Selector.Kind != TypeSelector || r0.Selector.Value != "h1" {
		t.Fatalf("rule 0 selector = %+v, want TypeSelector h1", r0.Selector)
	}
	if len(r0.Declarations) != 2 {
		t.Fatalf("rule 0 has %d declarations, want 2", len(r0.Declarations))
	}
	if r0.Declarations[0].Property != "font-size" || r0.Declarations[0].Value.Type != NumberToken || r0.Declarations[0].Value.Num != 40 {
		t.Errorf("declaration 0 = %+v, want font-size: Number(40)", r0.Declarations[0])
	}
	if r0.Declarations[1].Property != "color" || r0.Declarations[1].Value.Type != IdentToken || r0.Declarations[1].Value.Value != "blue" {
		t.Errorf("declaration 1 = %+v, want color: Ident(blue)", r0.Declarations[1])
	}

	r1 := sheet.Rules[1]
	if r1.Selector.Kind != TypeSelector || r1.Selector.Value != "p" {
		t.Fatalf("rule 1 selector = %+v, want TypeSelector p", r1.Selector)
	}
	if len(r1.Declarations) != 1 || r1.Declarations[0].Property != "content" || r1.Declarations[0].Value.Value != "Hey" {
		t.Errorf("rule 1 declarations = %+v, want content: String(Hey)", r1.Declarations)
	}
}

func TestParseClassAndIDSelectors(t *testing.T) {
	sheet := Parse(`.x { display: none; } #t { color: red; }`)
	if sheet.Rules[0].Selector.Kind != ClassSelector || sheet.Rules[0].Selector.Value != "x" {
		t.Errorf("rule 0 selector = %+v, want ClassSelector x", sheet.Rules[0].Selector)
	}
	if sheet.Rules[1].Selector.Kind != IDSelector || sheet.Rules[1].Selector.Value != "t" {
		t.Errorf("rule 1 selector = %+v, want IDSelector t", sheet.Rules[1].Selector)
	}
}

func TestParseSkipsAtRules(t *testing.T) {
	sheet := Parse(`@media screen { p { color: red; } } p { color: blue; }`)
	if len(sheet.Rules) != 1 {
		t.Fatalf("expected the @media block to be discarded entirely, got %d rules", len(sheet.Rules))
	}
	if sheet.Rules[0].Declarations[0].Value.Value != "blue" {
		t.Errorf("expected the rule after the at-rule to survive, got %+v", sheet.Rules[0])
	}
}

func TestParseSingleComponentValueOnly(t *testing.T) {
	sheet := Parse(`p { margin: 1 2 3; color: red; }`)
	if len(sheet.Rules[0].Declarations) != 2 {
		t.Fatalf("expected trailing tokens after the first value to be discarded, got %+v", sheet.Rules[0].Declarations)
	}
	if sheet.Rules[0].Declarations[0].Property != "margin" || sheet.Rules[0].Declarations[0].Value.Num != 1 {
		t.Errorf("declaration 0 = %+v, want margin: Number(1)", sheet.Rules[0].Declarations[0])
	}
}

func TestParseColorValues(t *testing.T) {
	red := ParseColor(Token{Type: IdentToken, Value: "red"}, RGB{})
	if red != (RGB{255, 0, 0}) {
		t.Errorf("red = %+v", red)
	}
	green := ParseColor(Token{Type: HashToken, Value: "00ff00"}, RGB{})
	if green != (RGB{0, 255, 0}) {
		t.Errorf("#00ff00 = %+v", green)
	}
	fallback := ParseColor(Token{Type: IdentToken, Value: "chartreuse"}, RGB{1, 2, 3})
	if fallback != (RGB{1, 2, 3}) {
		t.Errorf("unknown ident should fall back, got %+v", fallback)
	}
}
