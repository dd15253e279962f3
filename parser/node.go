/*
File    : go-giulio/parser/node.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import (
	"math/big"
	"strconv"
	"strings"
)

// This file defines the Abstract Syntax Tree (AST) node types produced by
// the parser. The hierarchy is a closed tagged union rendered as two Go
// interfaces: StatementNode and ExpressionNode. The evaluator dispatches
// exhaustively over the concrete types.

// Program is an ordered sequence of statements. A source file, a block body,
// and a function body are all Programs.
type Program []StatementNode

// StatementNode is the interface implemented by all statement AST nodes.
type StatementNode interface {
	statementNode()
	// ToString returns source-like text for the node, used in tests and
	// debugging output
	ToString() string
}

// ExpressionNode is the interface implemented by all expression AST nodes.
type ExpressionNode interface {
	expressionNode()
	ToString() string
}

// FieldDef is one `name: expr` pair inside a struct definition, a struct
// literal, or a hash-like position where names matter.
type FieldDef struct {
	Name  string
	Value ExpressionNode
}

// ImportKind selects how an import statement binds names.
type ImportKind int

const (
	// ImportAll binds the module itself under its last path segment
	ImportAll ImportKind = iota
	// ImportSpecific binds each named export into the current scope
	ImportSpecific
	// ImportSingle binds one export by name
	ImportSingle
)

// --- Statements ---

// LetStatementNode is `let name = expr;`.
type LetStatementNode struct {
	Name  string
	Value ExpressionNode
}

func (n *LetStatementNode) statementNode() {}

// ToString renders the statement as source-like text
func (n *LetStatementNode) ToString() string {
	return "let " + n.Name + " = " + n.Value.ToString() + ";"
}

// AssignStatementNode is `name = expr;` for an existing binding.
type AssignStatementNode struct {
	Name  string
	Value ExpressionNode
}

func (n *AssignStatementNode) statementNode() {}

// ToString renders the statement as source-like text
func (n *AssignStatementNode) ToString() string {
	return n.Name + " = " + n.Value.ToString() + ";"
}

// FieldAssignStatementNode is `obj.field = expr;`. The evaluator only
// accepts `this` as the object.
type FieldAssignStatementNode struct {
	Object ExpressionNode
	Field  string
	Value  ExpressionNode
}

func (n *FieldAssignStatementNode) statementNode() {}

// ToString renders the statement as source-like text
func (n *FieldAssignStatementNode) ToString() string {
	return n.Object.ToString() + "." + n.Field + " = " + n.Value.ToString() + ";"
}

// IndexAssignStatementNode is `target[index] = expr;`. The evaluator only
// accepts a bare identifier or `this` as the target.
type IndexAssignStatementNode struct {
	Target ExpressionNode
	Index  ExpressionNode
	Value  ExpressionNode
}

func (n *IndexAssignStatementNode) statementNode() {}

// ToString renders the statement as source-like text
func (n *IndexAssignStatementNode) ToString() string {
	return n.Target.ToString() + "[" + n.Index.ToString() + "] = " + n.Value.ToString() + ";"
}

// ReturnStatementNode is `return expr;`.
type ReturnStatementNode struct {
	Value ExpressionNode
}

func (n *ReturnStatementNode) statementNode() {}

// ToString renders the statement as source-like text
func (n *ReturnStatementNode) ToString() string {
	return "return " + n.Value.ToString() + ";"
}

// ExpressionStatementNode is a semicolon-terminated expression whose value
// is discarded.
type ExpressionStatementNode struct {
	Expression ExpressionNode
}

func (n *ExpressionStatementNode) statementNode() {}

// ToString renders the statement as source-like text. Block-terminated
// expressions carry no trailing semicolon in statement form.
func (n *ExpressionStatementNode) ToString() string {
	switch n.Expression.(type) {
	case *WhileExpressionNode, *ForInExpressionNode, *CStyleForExpressionNode,
		*IfExpressionNode, *TryCatchExpressionNode:
		return n.Expression.ToString()
	default:
		return n.Expression.ToString() + ";"
	}
}

// ExpressionValueStatementNode is an expression with no trailing semicolon;
// its value becomes the enclosing block's result.
type ExpressionValueStatementNode struct {
	Expression ExpressionNode
}

func (n *ExpressionValueStatementNode) statementNode() {}

// ToString renders the statement as source-like text
func (n *ExpressionValueStatementNode) ToString() string {
	return n.Expression.ToString()
}

// FunctionStatementNode is `fn name(params) { body }`.
type FunctionStatementNode struct {
	Name   string
	Params []string
	Body   Program
}

func (n *FunctionStatementNode) statementNode() {}

// ToString renders the statement as source-like text
func (n *FunctionStatementNode) ToString() string {
	return "fn " + n.Name + "(" + strings.Join(n.Params, ", ") + ") " + blockToString(n.Body)
}

// StructStatementNode is `struct Name { field: default, method: fn(..){..} }`.
// Pairs whose value is a function expression are methods; the rest are
// field defaults.
type StructStatementNode struct {
	Name    string
	Fields  []FieldDef
	Methods []FieldDef
}

func (n *StructStatementNode) statementNode() {}

// ToString renders the statement as source-like text
func (n *StructStatementNode) ToString() string {
	parts := make([]string, 0, len(n.Fields)+len(n.Methods))
	for _, f := range n.Fields {
		parts = append(parts, f.Name+": "+f.Value.ToString())
	}
	for _, m := range n.Methods {
		parts = append(parts, m.Name+": "+m.Value.ToString())
	}
	return "struct " + n.Name + " { " + strings.Join(parts, ", ") + " }"
}

// ImportStatementNode is `import a.b;` or `import a.b.{x, y};`.
type ImportStatementNode struct {
	Path  []string
	Kind  ImportKind
	Names []string // bound names for ImportSpecific/ImportSingle
}

func (n *ImportStatementNode) statementNode() {}

// ToString renders the statement as source-like text
func (n *ImportStatementNode) ToString() string {
	path := strings.Join(n.Path, ".")
	switch n.Kind {
	case ImportSpecific:
		return "import " + path + ".{" + strings.Join(n.Names, ", ") + "};"
	case ImportSingle:
		return "import " + path + ".{" + n.Names[0] + "};"
	default:
		return "import " + path + ";"
	}
}

// BreakStatementNode is `break;`.
type BreakStatementNode struct{}

func (n *BreakStatementNode) statementNode() {}

// ToString renders the statement as source-like text
func (n *BreakStatementNode) ToString() string { return "break;" }

// ContinueStatementNode is `continue;`.
type ContinueStatementNode struct{}

func (n *ContinueStatementNode) statementNode() {}

// ToString renders the statement as source-like text
func (n *ContinueStatementNode) ToString() string { return "continue;" }

// ThrowStatementNode is `throw expr;`.
type ThrowStatementNode struct {
	Value ExpressionNode
}

func (n *ThrowStatementNode) statementNode() {}

// ToString renders the statement as source-like text
func (n *ThrowStatementNode) ToString() string {
	return "throw " + n.Value.ToString() + ";"
}

// --- Expressions ---

// IdentifierNode is a reference to a named binding.
type IdentifierNode struct {
	Name string
}

func (n *IdentifierNode) expressionNode() {}

// ToString renders the expression as source-like text
func (n *IdentifierNode) ToString() string { return n.Name }

// IntegerLiteralNode is an integer literal that fits an i64.
type IntegerLiteralNode struct {
	Value int64
}

func (n *IntegerLiteralNode) expressionNode() {}

// ToString renders the expression as source-like text
func (n *IntegerLiteralNode) ToString() string { return strconv.FormatInt(n.Value, 10) }

// BigIntegerLiteralNode is an integer literal beyond the i64 range.
type BigIntegerLiteralNode struct {
	Value *big.Int
}

func (n *BigIntegerLiteralNode) expressionNode() {}

// ToString renders the expression as source-like text
func (n *BigIntegerLiteralNode) ToString() string { return n.Value.String() }

// FloatLiteralNode is a floating-point literal.
type FloatLiteralNode struct {
	Value float64
}

func (n *FloatLiteralNode) expressionNode() {}

// ToString renders the expression as source-like text
func (n *FloatLiteralNode) ToString() string {
	return strconv.FormatFloat(n.Value, 'g', -1, 64)
}

// StringLiteralNode is a string literal.
type StringLiteralNode struct {
	Value string
}

func (n *StringLiteralNode) expressionNode() {}

// ToString renders the expression as source-like text
func (n *StringLiteralNode) ToString() string { return strconv.Quote(n.Value) }

// BooleanLiteralNode is `true` or `false`.
type BooleanLiteralNode struct {
	Value bool
}

func (n *BooleanLiteralNode) expressionNode() {}

// ToString renders the expression as source-like text
func (n *BooleanLiteralNode) ToString() string { return strconv.FormatBool(n.Value) }

// NullLiteralNode is `null`.
type NullLiteralNode struct{}

func (n *NullLiteralNode) expressionNode() {}

// ToString renders the expression as source-like text
func (n *NullLiteralNode) ToString() string { return "null" }

// PrefixExpressionNode is `!e`, `-e`, or `+e`.
type PrefixExpressionNode struct {
	Operator string
	Right    ExpressionNode
}

func (n *PrefixExpressionNode) expressionNode() {}

// ToString renders the expression as source-like text
func (n *PrefixExpressionNode) ToString() string {
	return "(" + n.Operator + n.Right.ToString() + ")"
}

// InfixExpressionNode is `l op r` for the binary operators.
type InfixExpressionNode struct {
	Operator string
	Left     ExpressionNode
	Right    ExpressionNode
}

func (n *InfixExpressionNode) expressionNode() {}

// ToString renders the expression as source-like text
func (n *InfixExpressionNode) ToString() string {
	return "(" + n.Left.ToString() + " " + n.Operator + " " + n.Right.ToString() + ")"
}

// IfExpressionNode is `if (cond) { ... } else { ... }`. The else block is
// optional (nil when absent).
type IfExpressionNode struct {
	Cond        ExpressionNode
	Consequence Program
	Alternative Program
}

func (n *IfExpressionNode) expressionNode() {}

// ToString renders the expression as source-like text
func (n *IfExpressionNode) ToString() string {
	out := "if (" + n.Cond.ToString() + ") " + blockToString(n.Consequence)
	if n.Alternative != nil {
		out += " else " + blockToString(n.Alternative)
	}
	return out
}

// FunctionLiteralNode is `fn(params) { body }`.
type FunctionLiteralNode struct {
	Params []string
	Body   Program
}

func (n *FunctionLiteralNode) expressionNode() {}

// ToString renders the expression as source-like text
func (n *FunctionLiteralNode) ToString() string {
	return "fn(" + strings.Join(n.Params, ", ") + ") " + blockToString(n.Body)
}

// AsyncFunctionLiteralNode is `async fn(params) { body }`.
type AsyncFunctionLiteralNode struct {
	Params []string
	Body   Program
}

func (n *AsyncFunctionLiteralNode) expressionNode() {}

// ToString renders the expression as source-like text
func (n *AsyncFunctionLiteralNode) ToString() string {
	return "async fn(" + strings.Join(n.Params, ", ") + ") " + blockToString(n.Body)
}

// AwaitExpressionNode is `await e`. Only legal lexically inside an async fn
// body; the parser rejects other placements after parsing.
type AwaitExpressionNode struct {
	Value ExpressionNode
}

func (n *AwaitExpressionNode) expressionNode() {}

// ToString renders the expression as source-like text
func (n *AwaitExpressionNode) ToString() string {
	return "await " + n.Value.ToString()
}

// CallExpressionNode is `callee(args)`.
type CallExpressionNode struct {
	Function  ExpressionNode
	Arguments []ExpressionNode
}

func (n *CallExpressionNode) expressionNode() {}

// ToString renders the expression as source-like text
func (n *CallExpressionNode) ToString() string {
	return n.Function.ToString() + "(" + exprListToString(n.Arguments) + ")"
}

// ArrayLiteralNode is `[e1, e2, ...]`.
type ArrayLiteralNode struct {
	Elements []ExpressionNode
}

func (n *ArrayLiteralNode) expressionNode() {}

// ToString renders the expression as source-like text
func (n *ArrayLiteralNode) ToString() string {
	return "[" + exprListToString(n.Elements) + "]"
}

// HashPairNode is one `key: value` entry of a hash literal.
type HashPairNode struct {
	Key   ExpressionNode
	Value ExpressionNode
}

// HashLiteralNode is `{k1: v1, k2: v2, ...}`.
type HashLiteralNode struct {
	Pairs []HashPairNode
}

func (n *HashLiteralNode) expressionNode() {}

// ToString renders the expression as source-like text
func (n *HashLiteralNode) ToString() string {
	parts := make([]string, 0, len(n.Pairs))
	for _, p := range n.Pairs {
		parts = append(parts, p.Key.ToString()+": "+p.Value.ToString())
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

// IndexExpressionNode is `target[index]`.
type IndexExpressionNode struct {
	Target ExpressionNode
	Index  ExpressionNode
}

func (n *IndexExpressionNode) expressionNode() {}

// ToString renders the expression as source-like text
func (n *IndexExpressionNode) ToString() string {
	return "(" + n.Target.ToString() + "[" + n.Index.ToString() + "])"
}

// MethodCallExpressionNode is `obj.name(args)`.
type MethodCallExpressionNode struct {
	Object    ExpressionNode
	Method    string
	Arguments []ExpressionNode
}

func (n *MethodCallExpressionNode) expressionNode() {}

// ToString renders the expression as source-like text
func (n *MethodCallExpressionNode) ToString() string {
	return n.Object.ToString() + "." + n.Method + "(" + exprListToString(n.Arguments) + ")"
}

// StructLiteralNode is `TypeName{ field: value, ... }`.
type StructLiteralNode struct {
	Name   string
	Fields []FieldDef
}

func (n *StructLiteralNode) expressionNode() {}

// ToString renders the expression as source-like text
func (n *StructLiteralNode) ToString() string {
	parts := make([]string, 0, len(n.Fields))
	for _, f := range n.Fields {
		parts = append(parts, f.Name+": "+f.Value.ToString())
	}
	return n.Name + "{" + strings.Join(parts, ", ") + "}"
}

// ThisExpressionNode is `this`, the receiver inside a method body.
type ThisExpressionNode struct{}

func (n *ThisExpressionNode) expressionNode() {}

// ToString renders the expression as source-like text
func (n *ThisExpressionNode) ToString() string { return "this" }

// FieldAccessExpressionNode is `obj.field`.
type FieldAccessExpressionNode struct {
	Object ExpressionNode
	Field  string
}

func (n *FieldAccessExpressionNode) expressionNode() {}

// ToString renders the expression as source-like text
func (n *FieldAccessExpressionNode) ToString() string {
	return n.Object.ToString() + "." + n.Field
}

// WhileExpressionNode is `while (cond) { body }`.
type WhileExpressionNode struct {
	Cond ExpressionNode
	Body Program
}

func (n *WhileExpressionNode) expressionNode() {}

// ToString renders the expression as source-like text
func (n *WhileExpressionNode) ToString() string {
	return "while (" + n.Cond.ToString() + ") " + blockToString(n.Body)
}

// ForInExpressionNode is `for (x in iterable) { body }`.
type ForInExpressionNode struct {
	Ident    string
	Iterable ExpressionNode
	Body     Program
}

func (n *ForInExpressionNode) expressionNode() {}

// ToString renders the expression as source-like text
func (n *ForInExpressionNode) ToString() string {
	return "for (" + n.Ident + " in " + n.Iterable.ToString() + ") " + blockToString(n.Body)
}

// CStyleForExpressionNode is `for (init; cond; update) { body }`.
// Init, Cond, and Update are each optional (nil when absent); an absent
// condition loops forever.
type CStyleForExpressionNode struct {
	Init   StatementNode
	Cond   ExpressionNode
	Update StatementNode
	Body   Program
}

func (n *CStyleForExpressionNode) expressionNode() {}

// ToString renders the expression as source-like text
func (n *CStyleForExpressionNode) ToString() string {
	init, cond, update := "", "", ""
	if n.Init != nil {
		init = strings.TrimSuffix(n.Init.ToString(), ";")
	}
	if n.Cond != nil {
		cond = n.Cond.ToString()
	}
	if n.Update != nil {
		update = strings.TrimSuffix(n.Update.ToString(), ";")
	}
	return "for (" + init + "; " + cond + "; " + update + ") " + blockToString(n.Body)
}

// TryCatchExpressionNode is `try { ... } catch(x) { ... } finally { ... }`.
// At least one of catch and finally is present; the catch binder name is
// optional even when a catch block exists.
type TryCatchExpressionNode struct {
	TryBody     Program
	CatchName   string // "" when the catch clause names no binder
	HasCatch    bool
	CatchBody   Program
	FinallyBody Program // nil when absent
}

func (n *TryCatchExpressionNode) expressionNode() {}

// ToString renders the expression as source-like text
func (n *TryCatchExpressionNode) ToString() string {
	out := "try " + blockToString(n.TryBody)
	if n.HasCatch {
		if n.CatchName != "" {
			out += " catch(" + n.CatchName + ") " + blockToString(n.CatchBody)
		} else {
			out += " catch " + blockToString(n.CatchBody)
		}
	}
	if n.FinallyBody != nil {
		out += " finally " + blockToString(n.FinallyBody)
	}
	return out
}

// blockToString renders a Program as a braced block.
func blockToString(prog Program) string {
	parts := make([]string, 0, len(prog))
	for _, stmt := range prog {
		parts = append(parts, stmt.ToString())
	}
	return "{ " + strings.Join(parts, " ") + " }"
}

// exprListToString renders a comma-separated expression list.
func exprListToString(exprs []ExpressionNode) string {
	parts := make([]string, 0, len(exprs))
	for _, e := range exprs {
		parts = append(parts, e.ToString())
	}
	return strings.Join(parts, ", ")
}
