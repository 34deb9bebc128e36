package js

import (
	"testing"

	"tinybrowser/dom"
)

// TestRunVariableAndFunctionCall covers S5: a var declaration, a
// function declaration, and a call that adds two numbers.
func TestRunVariableAndFunctionCall(t *testing.T) {
	prog := Parse(`
		var x = 1;
		function add(a, b) {
			return a + b;
		}
		var y = add(x, 2);
	`)
	it := NewInterpreter(nil)
	it.Run(prog)

	y, ok := it.global.Get("y")
	if !ok {
		t.Fatal("y was never declared")
	}
	n, ok := y.(Number)
	if !ok || n != 3 {
		t.Errorf("y = %+v, want Number(3)", y)
	}
}

func TestRunAdditiveIsRightAssociative(t *testing.T) {
	prog := Parse(`var x = 10 - 3 - 2;`)
	it := NewInterpreter(nil)
	it.Run(prog)

	x, _ := it.global.Get("x")
	// Right-recursive: 10 - (3 - 2) = 10 - 1 = 9.
	if n, ok := x.(Number); !ok || n != 9 {
		t.Errorf("x = %+v, want Number(9)", x)
	}
}

func TestRunSubtractionUnderflowYieldsZero(t *testing.T) {
	prog := Parse(`var x = 1 - 5;`)
	it := NewInterpreter(nil)
	it.Run(prog)

	x, _ := it.global.Get("x")
	if n, ok := x.(Number); !ok || n != 0 {
		t.Errorf("x = %+v, want Number(0)", x)
	}
}

func TestRunFunctionsAreNonClosing(t *testing.T) {
	// inner has no lexical closure: its call scope's outer is the
	// caller's scope at the call site, not inner's defining scope. Called
	// from outer, it therefore sees outer's local "secret".
	prog := Parse(`
		function inner() {
			return secret;
		}
		function outer() {
			var secret = 42;
			return inner();
		}
		var result = outer();
	`)
	it := NewInterpreter(nil)
	it.Run(prog)

	result, ok := it.global.Get("result")
	if !ok {
		t.Fatal("result was never declared")
	}
	if n, ok := result.(Number); !ok || n != 42 {
		t.Errorf("result = %+v, want Number(42) read through the caller's scope", result)
	}
}

func TestRunDuplicateVarDeclarationLastWins(t *testing.T) {
	prog := Parse(`
		var x = 1;
		var x = 2;
	`)
	it := NewInterpreter(nil)
	it.Run(prog)

	x, _ := it.global.Get("x")
	if n, ok := x.(Number); !ok || n != 2 {
		t.Errorf("x = %+v, want Number(2)", x)
	}
}

// TestGetElementByIdFindsMatchingNode covers S6.
func TestGetElementByIdFindsMatchingNode(t *testing.T) {
	target := dom.NewElement("p")
	target.Attributes = append(target.Attributes, dom.Attribute{Name: "id", Value: "target"})
	body := dom.NewElement("body")
	body.AppendChild(target)
	document := dom.NewDocument()
	document.AppendChild(body)

	prog := Parse(`var el = document.getElementById("target");`)
	it := NewInterpreter(document)
	it.Run(prog)

	el, ok := it.global.Get("el")
	if !ok {
		t.Fatal("el was never declared")
	}
	elem, ok := el.(HtmlElement)
	if !ok {
		t.Fatalf("el = %T, want HtmlElement", el)
	}
	if elem.Node != target {
		t.Errorf("resolved node = %v, want the <p id=target> node", elem.Node)
	}
}

func TestGetElementByIdMissingReturnsUndefined(t *testing.T) {
	document := dom.NewDocument()
	prog := Parse(`var el = document.getElementById("nope");`)
	it := NewInterpreter(document)
	it.Run(prog)

	el, _ := it.global.Get("el")
	if _, ok := el.(Undefined); !ok {
		t.Errorf("el = %+v, want Undefined", el)
	}
}
