/*
File    : go-giulio/eval/eval_expressions.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package eval

import (
	giuerrors "github.com/akashmaji946/go-giulio/errors"
	"github.com/akashmaji946/go-giulio/objects"
	"github.com/akashmaji946/go-giulio/parser"
)

// evalExpr evaluates one expression node and returns its value.
func (ev *Evaluator) evalExpr(expr parser.ExpressionNode) objects.GiulioObject {
	switch e := expr.(type) {
	case *parser.IdentifierNode:
		return ev.evalIdent(e.Name)

	case *parser.IntegerLiteralNode:
		return &objects.Integer{Value: e.Value}
	case *parser.BigIntegerLiteralNode:
		return objects.NormalizeInt(e.Value)
	case *parser.FloatLiteralNode:
		return &objects.Float{Value: e.Value}
	case *parser.StringLiteralNode:
		return &objects.String{Value: e.Value}
	case *parser.BooleanLiteralNode:
		return objects.NativeBoolean(e.Value)
	case *parser.NullLiteralNode:
		return objects.NULL

	case *parser.PrefixExpressionNode:
		return ev.evalPrefix(e.Operator, e.Right)

	case *parser.InfixExpressionNode:
		return ev.evalInfix(e.Operator, e.Left, e.Right)

	case *parser.IfExpressionNode:
		return ev.evalIf(e)

	case *parser.FunctionLiteralNode:
		return &objects.Function{Params: e.Params, Body: e.Body, Env: ev.Env}

	case *parser.AsyncFunctionLiteralNode:
		return &objects.AsyncFunction{Params: e.Params, Body: e.Body, Env: ev.Env}

	case *parser.AwaitExpressionNode:
		return ev.evalAwait(e)

	case *parser.CallExpressionNode:
		return ev.evalCall(e.Function, e.Arguments)

	case *parser.ArrayLiteralNode:
		return ev.evalArray(e.Elements)

	case *parser.HashLiteralNode:
		return ev.evalHash(e.Pairs)

	case *parser.IndexExpressionNode:
		return ev.evalIndex(e.Target, e.Index)

	case *parser.MethodCallExpressionNode:
		return ev.evalMethodCall(e.Object, e.Method, e.Arguments)

	case *parser.StructLiteralNode:
		return ev.evalStructLiteral(e)

	case *parser.ThisExpressionNode:
		return ev.evalThis()

	case *parser.FieldAccessExpressionNode:
		return ev.evalFieldAccess(e.Object, e.Field)

	case *parser.WhileExpressionNode:
		return ev.evalWhile(e)

	case *parser.ForInExpressionNode:
		return ev.evalForIn(e)

	case *parser.CStyleForExpressionNode:
		return ev.evalCStyleFor(e)

	case *parser.TryCatchExpressionNode:
		return ev.evalTryCatch(e)

	default:
		return objects.NewError(giuerrors.NewInvalidOperation("unknown expression"))
	}
}

// evalIdent resolves a name against the environment chain.
func (ev *Evaluator) evalIdent(name string) objects.GiulioObject {
	if obj, ok := ev.Env.Get(name); ok {
		return obj
	}
	return objects.NewError(giuerrors.NewUndefinedVariable(name))
}

// evalThis resolves the method receiver. Outside a method call scope there
// is no binding and the reference is an invalid operation.
func (ev *Evaluator) evalThis() objects.GiulioObject {
	if obj, ok := ev.Env.Get("this"); ok {
		return obj
	}
	return objects.NewError(giuerrors.NewInvalidOperation("'this' can only be used inside a method"))
}

// evalPrefix evaluates !e, -e, and +e. Logical not requires a boolean (no
// implicit truthiness); minus negates numerics with MinInt64 promoting to
// BigInteger; plus passes numerics through unchanged.
func (ev *Evaluator) evalPrefix(operator string, right parser.ExpressionNode) objects.GiulioObject {
	value := ev.evalExpr(right)
	if objects.IsControlFlow(value) {
		return value
	}

	switch operator {
	case "!":
		b, err := objects.ToBool(value)
		if err != nil {
			return objects.NewError(err)
		}
		return objects.NativeBoolean(!b)
	case "-":
		return objects.Negate(value)
	case "+":
		switch value.(type) {
		case *objects.Integer, *objects.BigInteger, *objects.Float:
			return value
		default:
			return objects.NewError(giuerrors.NewTypeMismatch("integer", objects.TypeName(value)))
		}
	default:
		return objects.NewError(giuerrors.NewInvalidOperation("unknown prefix operator %s", operator))
	}
}

// evalInfix evaluates a binary operator. Operands evaluate left to right;
// a control-flow value in either operand propagates before the operator
// applies.
func (ev *Evaluator) evalInfix(operator string, left, right parser.ExpressionNode) objects.GiulioObject {
	lhs := ev.evalExpr(left)
	if objects.IsControlFlow(lhs) {
		return lhs
	}
	rhs := ev.evalExpr(right)
	if objects.IsControlFlow(rhs) {
		return rhs
	}

	switch operator {
	case "+":
		return objects.Add(lhs, rhs)
	case "-":
		return objects.Subtract(lhs, rhs)
	case "*":
		return objects.Multiply(lhs, rhs)
	case "/":
		return objects.Divide(lhs, rhs)
	case "%":
		return objects.Modulo(lhs, rhs)
	case "==":
		return objects.NativeBoolean(objects.Equals(lhs, rhs))
	case "!=":
		return objects.NativeBoolean(!objects.Equals(lhs, rhs))
	case "<", "<=", ">", ">=":
		return objects.Compare(operator, lhs, rhs)
	case "&&":
		b1, err := objects.ToBool(lhs)
		if err != nil {
			return objects.NewError(err)
		}
		b2, err := objects.ToBool(rhs)
		if err != nil {
			return objects.NewError(err)
		}
		return objects.NativeBoolean(b1 && b2)
	case "||":
		b1, err := objects.ToBool(lhs)
		if err != nil {
			return objects.NewError(err)
		}
		b2, err := objects.ToBool(rhs)
		if err != nil {
			return objects.NewError(err)
		}
		return objects.NativeBoolean(b1 || b2)
	default:
		return objects.NewError(giuerrors.NewInvalidOperation("unknown operator %s", operator))
	}
}

// evalIf evaluates a conditional. The condition must be a boolean; a
// missing else branch yields Null.
func (ev *Evaluator) evalIf(node *parser.IfExpressionNode) objects.GiulioObject {
	cond := ev.evalExpr(node.Cond)
	if objects.IsControlFlow(cond) {
		return cond
	}
	b, err := objects.ToBool(cond)
	if err != nil {
		return objects.NewError(err)
	}

	if b {
		return ev.evalBlock(node.Consequence)
	}
	if node.Alternative != nil {
		return ev.evalBlock(node.Alternative)
	}
	return objects.NULL
}

// evalArray evaluates the elements of an array literal left to right.
func (ev *Evaluator) evalArray(elements []parser.ExpressionNode) objects.GiulioObject {
	elems := make([]objects.GiulioObject, 0, len(elements))
	for _, e := range elements {
		value := ev.evalExpr(e)
		if objects.IsControlFlow(value) {
			return value
		}
		elems = append(elems, value)
	}
	return &objects.Array{Elements: elems}
}

// evalHash evaluates the pairs of a hash literal, verifying that each key
// is hashable. Key errors propagate; a non-hashable key is NotHashable.
func (ev *Evaluator) evalHash(pairs []parser.HashPairNode) objects.GiulioObject {
	hash := objects.NewHash()
	for _, pair := range pairs {
		key := ev.evalExpr(pair.Key)
		if objects.IsControlFlow(key) {
			return key
		}
		value := ev.evalExpr(pair.Value)
		if objects.IsControlFlow(value) {
			return value
		}
		if err := hash.Set(key, value); err != nil {
			return objects.NewError(err)
		}
	}
	return hash
}

// evalIndex evaluates target[index]. An array index must be a non-negative
// in-range integer; a hash index must be hashable, with an absent key
// yielding Null. Anything else is not indexable.
func (ev *Evaluator) evalIndex(targetExpr, indexExpr parser.ExpressionNode) objects.GiulioObject {
	target := ev.evalExpr(targetExpr)
	if objects.IsControlFlow(target) {
		return target
	}
	index := ev.evalExpr(indexExpr)
	if objects.IsControlFlow(index) {
		return index
	}

	switch t := target.(type) {
	case *objects.Array:
		idx, err := objects.ToInt64(index)
		if err != nil {
			return objects.NewError(err)
		}
		if idx < 0 || idx >= int64(len(t.Elements)) {
			return objects.NewError(giuerrors.NewIndexOutOfBounds(idx, len(t.Elements)))
		}
		return t.Elements[idx]
	case *objects.Hash:
		value, err := t.Get(index)
		if err != nil {
			return objects.NewError(err)
		}
		return value
	default:
		return objects.NewError(giuerrors.NewNotIndexable(objects.TypeName(target)))
	}
}
