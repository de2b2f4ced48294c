// Package target is the concrete target-AST builder library. spec.md
// §1 treats a builder library as an assumed external collaborator; this
// package is this repository's own implementation of that contract, so
// the translator has something real to call. Node shapes follow the
// estree-style tree named in spec.md §3: Program, ImportDeclaration,
// ExportDeclaration, VariableDeclaration, FunctionDeclaration,
// CallExpression, MemberExpression, ObjectExpression, ArrayExpression,
// Literal, Identifier, BlockStatement, ReturnStatement.
package target

// Node is implemented by every target-tree element.
type Node interface {
	targetNode()
}

type base struct{}

func (base) targetNode() {}

// Program is a module's translated top-level form.
type Program struct {
	base
	Body []Node
}

// ImportDeclaration binds Local to the default export of From.
type ImportDeclaration struct {
	base
	Local string
	From  string
}

// ExportDeclaration names the locals exported from this module.
type ExportDeclaration struct {
	base
	Names []string
}

// VariableDeclaration is `const Name = Init` (Kind is always "const";
// the emitter never produces reassignable bindings per spec.md §4.4:
// "explicit return is never emitted").
type VariableDeclaration struct {
	base
	Kind string
	Name string
	Init Node
}

// FunctionDeclaration is a named function with a single parameter
// list; clause dispatch (when a source function has more than one
// clause) is expressed as a CallExpression to the pattern runtime
// inside Body, not as multiple FunctionDeclarations (spec.md invariant:
// at most one clause table per (name, arity)).
type FunctionDeclaration struct {
	base
	Name   string
	Params []string
	Body   *BlockStatement
}

// ArrowFunction is an anonymous function expression.
type ArrowFunction struct {
	base
	Params []string
	Body   Node // *BlockStatement or a bare expression
}

type CallExpression struct {
	base
	Callee Node
	Args   []Node
}

// MemberExpression is `Object.Property` or, when Computed is true,
// `Object[Property]`.
type MemberExpression struct {
	base
	Object   Node
	Property Node
	Computed bool
}

type ObjectProperty struct {
	Key      Node
	Value    Node
	Computed bool
}

type ObjectExpression struct {
	base
	Properties []ObjectProperty
}

type ArrayExpression struct {
	base
	Elements []Node
}

// Literal wraps a Go bool/int64/float64/string/nil value.
type Literal struct {
	base
	Value interface{}
}

type Identifier struct {
	base
	Name string
}

type BlockStatement struct {
	base
	Statements []Node
}

type ReturnStatement struct {
	base
	Argument Node
}

// ExpressionStatement wraps an expression used in statement position.
type ExpressionStatement struct {
	base
	Expression Node
}

// AssignmentExpression is `Left = Right` used for functional-update
// and pattern-assignment lowering targets once slots are known.
type AssignmentExpression struct {
	base
	Left  Node
	Right Node
}

// SpreadElement is `...Argument`, used in array/object positions.
type SpreadElement struct {
	base
	Argument Node
}

// ConditionalExpression is the ternary ` Test ? Consequent : Alternate`.
type ConditionalExpression struct {
	base
	Test       Node
	Consequent Node
	Alternate  Node
}

// ---- factory functions -------------------------------------------------
// Exact names are not prescribed by spec.md; these mirror the estree
// constructor names closely enough that a caller reading the
// translator can tell at a glance which target shape is produced.

func NewProgram(body ...Node) *Program { return &Program{Body: body} }

func NewImportDeclaration(local, from string) *ImportDeclaration {
	return &ImportDeclaration{Local: local, From: from}
}

func NewExportDeclaration(names ...string) *ExportDeclaration {
	return &ExportDeclaration{Names: names}
}

func NewConstDeclaration(name string, init Node) *VariableDeclaration {
	return &VariableDeclaration{Kind: "const", Name: name, Init: init}
}

func NewFunctionDeclaration(name string, params []string, body *BlockStatement) *FunctionDeclaration {
	return &FunctionDeclaration{Name: name, Params: params, Body: body}
}

func NewArrowFunction(params []string, body Node) *ArrowFunction {
	return &ArrowFunction{Params: params, Body: body}
}

func NewCallExpression(callee Node, args ...Node) *CallExpression {
	return &CallExpression{Callee: callee, Args: args}
}

func NewMemberExpression(object Node, property Node, computed bool) *MemberExpression {
	return &MemberExpression{Object: object, Property: property, Computed: computed}
}

func NewObjectExpression(props ...ObjectProperty) *ObjectExpression {
	return &ObjectExpression{Properties: props}
}

func NewArrayExpression(elements ...Node) *ArrayExpression {
	return &ArrayExpression{Elements: elements}
}

func NewLiteral(v interface{}) *Literal { return &Literal{Value: v} }

func NewIdentifier(name string) *Identifier { return &Identifier{Name: name} }

func NewBlockStatement(statements ...Node) *BlockStatement {
	return &BlockStatement{Statements: statements}
}

func NewReturnStatement(arg Node) *ReturnStatement { return &ReturnStatement{Argument: arg} }

func NewExpressionStatement(expr Node) *ExpressionStatement {
	return &ExpressionStatement{Expression: expr}
}

func NewAssignmentExpression(left, right Node) *AssignmentExpression {
	return &AssignmentExpression{Left: left, Right: right}
}

func NewSpreadElement(arg Node) *SpreadElement { return &SpreadElement{Argument: arg} }

func NewConditionalExpression(test, cons, alt Node) *ConditionalExpression {
	return &ConditionalExpression{Test: test, Consequent: cons, Alternate: alt}
}
