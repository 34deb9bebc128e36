package js

import (
	"tinybrowser/dom"
	"tinybrowser/runtime"
)

// RuntimeValue is any value the interpreter can produce or bind.
type RuntimeValue interface {
	runtimeValue()
}

// Number is an unsigned integer value. A subtraction that would
// underflow yields Number(0), and a non-numeric operand counts as 0,
// rather than propagating a sentinel NaN — see evalAdditive.
type Number uint64

func (Number) runtimeValue() {}

// StringValue is a JS string value.
type StringValue string

func (StringValue) runtimeValue() {}

// HtmlElement wraps a DOM node returned by document.getElementById, or
// a property looked up on one (e.g. the result of a MemberExpression
// whose object is itself an HtmlElement).
type HtmlElement struct {
	Node     *dom.Node
	Property string
}

func (HtmlElement) runtimeValue() {}

// Function is a callable value produced by a FunctionDeclaration.
type Function struct {
	Decl *FunctionDeclaration
}

func (*Function) runtimeValue() {}

// Undefined is the value of a declaration statement, of a var with no
// initializer, of a call whose function returns nothing, and of
// document.getElementById when no element matches. A reference to an
// unbound identifier never yields it: that is a fatal Raise.
type Undefined struct{}

func (Undefined) runtimeValue() {}

// returnSignal carries a ReturnStatement's value up through
// evalStatements to the enclosing CallExpression.
type returnSignal struct {
	value RuntimeValue
}

func (returnSignal) runtimeValue() {}

// Interpreter walks an AST, evaluating it against a chain of
// Environments. document is consulted by the single built-in,
// document.getElementById.
type Interpreter struct {
	global   *Environment
	document *dom.Node
}

// NewInterpreter creates an Interpreter whose global scope is empty
// and whose document.getElementById built-in searches document.
func NewInterpreter(document *dom.Node) *Interpreter {
	return &Interpreter{global: NewEnvironment(), document: document}
}

// Run evaluates prog's top-level source elements in the global scope.
func (it *Interpreter) Run(prog *Program) RuntimeValue {
	return it.evalStatements(toStatements(prog.Body), it.global)
}

func toStatements(body []Statement) []Statement { return body }

func (it *Interpreter) evalStatements(body []Statement, env *Environment) RuntimeValue {
	var result RuntimeValue = Undefined{}
	for _, stmt := range body {
		result = it.evalStatement(stmt, env)
		if rs, ok := result.(returnSignal); ok {
			return rs
		}
	}
	return result
}

func (it *Interpreter) evalStatement(stmt Statement, env *Environment) RuntimeValue {
	switch s := stmt.(type) {
	case *FunctionDeclaration:
		env.Declare(s.ID.Name, &Function{Decl: s})
		return Undefined{}
	case *VariableDeclaration:
		for _, decl := range s.Declarations {
			var val RuntimeValue = Undefined{}
			if decl.Init != nil {
				val = it.eval(decl.Init, env)
			}
			env.Declare(decl.ID.Name, val)
		}
		return Undefined{}
	case *ReturnStatement:
		return returnSignal{value: it.eval(s.Argument, env)}
	case *ExpressionStatement:
		return it.eval(s.Expression, env)
	case *BlockStatement:
		return it.evalStatements(s.Body, env)
	default:
		runtime.Raise("Interpreter.evalStatement", "unhandled statement node")
		return nil
	}
}

func (it *Interpreter) eval(expr Expression, env *Environment) RuntimeValue {
	switch e := expr.(type) {
	case *NumericLiteral:
		return Number(e.Value)
	case *StringLiteral:
		return StringValue(e.Value)
	case *Identifier:
		v, ok := env.Get(e.Name)
		if !ok {
			runtime.Raise("Interpreter.eval", "reference to undeclared identifier "+e.Name)
		}
		return v
	case *AdditiveExpression:
		return it.evalAdditive(e, env)
	case *AssignmentExpression:
		return it.evalAssignment(e, env)
	case *MemberExpression:
		return it.evalMember(e, env)
	case *CallExpression:
		return it.evalCall(e, env)
	default:
		runtime.Raise("Interpreter.eval", "unhandled expression node")
		return nil
	}
}

// evalAdditive evaluates "left op right". A non-Number operand
// contributes 0 to the sum rather than faulting — this mirrors the
// source's NaN-as-zero sentinel for arithmetic on non-numeric values.
func (it *Interpreter) evalAdditive(e *AdditiveExpression, env *Environment) RuntimeValue {
	left := numberOrZero(it.eval(e.Left, env))
	right := numberOrZero(it.eval(e.Right, env))
	switch e.Operator {
	case "+":
		return Number(left + right)
	case "-":
		if right > left {
			return Number(0)
		}
		return Number(left - right)
	default:
		runtime.Raise("Interpreter.evalAdditive", "unsupported operator "+e.Operator)
		return nil
	}
}

func numberOrZero(v RuntimeValue) uint64 {
	if n, ok := v.(Number); ok {
		return uint64(n)
	}
	return 0
}

func (it *Interpreter) evalAssignment(e *AssignmentExpression, env *Environment) RuntimeValue {
	ident, ok := e.Left.(*Identifier)
	if !ok {
		runtime.Raise("Interpreter.evalAssignment", "left-hand side of assignment must be an identifier")
	}
	val := it.eval(e.Right, env)
	env.Assign(ident.Name, val)
	return val
}

// evalMember evaluates "object.property". On the identifier "document"
// it yields the property name as a StringValue; on an HtmlElement it
// yields the element with Property set. Any other object is a fatal
// Raise. Calls to document.getElementById do not go through here:
// evalCall recognizes that callee from the AST.
func (it *Interpreter) evalMember(e *MemberExpression, env *Environment) RuntimeValue {
	if ident, ok := e.Object.(*Identifier); ok && ident.Name == "document" {
		return StringValue(e.Property.Name)
	}
	obj := it.eval(e.Object, env)
	if elem, ok := obj.(HtmlElement); ok {
		return HtmlElement{Node: elem.Node, Property: e.Property.Name}
	}
	runtime.Raise("Interpreter.evalMember", "unsupported member access on non-element value")
	return nil
}

// evalCall evaluates "callee(args...)". Two callee shapes are
// recognized: a document.getElementById member access (matched on the
// callee's AST shape, without evaluating it), and a plain identifier
// naming a user-defined Function.
func (it *Interpreter) evalCall(e *CallExpression, env *Environment) RuntimeValue {
	if member, ok := e.Callee.(*MemberExpression); ok {
		if ident, ok := member.Object.(*Identifier); ok && ident.Name == "document" && member.Property.Name == "getElementById" {
			return it.callGetElementById(e.Arguments, env)
		}
	}

	ident, ok := e.Callee.(*Identifier)
	if !ok {
		runtime.Raise("Interpreter.evalCall", "unsupported call target")
	}
	v, ok := env.Get(ident.Name)
	if !ok {
		runtime.Raise("Interpreter.evalCall", "call to undeclared function "+ident.Name)
	}
	fn, ok := v.(*Function)
	if !ok {
		runtime.Raise("Interpreter.evalCall", ident.Name+" is not callable")
	}
	return it.callFunction(fn, e.Arguments, env)
}

func (it *Interpreter) callGetElementById(args []Expression, env *Environment) RuntimeValue {
	if len(args) != 1 {
		runtime.Raise("Interpreter.callGetElementById", "expected exactly one argument")
	}
	idVal := it.eval(args[0], env)
	id, ok := idVal.(StringValue)
	if !ok {
		runtime.Raise("Interpreter.callGetElementById", "argument must be a string")
	}
	node := findByID(it.document, string(id))
	if node == nil {
		return Undefined{}
	}
	return HtmlElement{Node: node}
}

func findByID(n *dom.Node, id string) *dom.Node {
	if n == nil {
		return nil
	}
	if n.Type == dom.ElementNode {
		for _, a := range n.Attributes {
			if a.Name == "id" && a.Value == id {
				return n
			}
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findByID(c, id); found != nil {
			return found
		}
	}
	return nil
}

// callFunction invokes fn with args evaluated in the caller's scope.
// The call's scope is enclosed by env — the caller's current scope at
// the call site — not by the scope in which fn was declared. Functions
// are therefore non-closing: a nested function cannot see an outer
// function's locals unless it is itself called from within that
// function's dynamic extent.
func (it *Interpreter) callFunction(fn *Function, args []Expression, env *Environment) RuntimeValue {
	if len(args) != len(fn.Decl.Params) {
		runtime.Raise("Interpreter.callFunction", "argument count mismatch calling "+fn.Decl.ID.Name)
	}
	callEnv := NewEnclosedEnvironment(env)
	for i, param := range fn.Decl.Params {
		callEnv.Declare(param.Name, it.eval(args[i], env))
	}
	result := it.evalStatements(fn.Decl.Body.Body, callEnv)
	if rs, ok := result.(returnSignal); ok {
		return rs.value
	}
	return Undefined{}
}
