/*
File    : go-giulio/eval/eval_loops.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package eval

import (
	giuerrors "github.com/akashmaji946/go-giulio/errors"
	"github.com/akashmaji946/go-giulio/objects"
	"github.com/akashmaji946/go-giulio/parser"
)

// Loop evaluation. All three loop forms share the same control-flow
// contract: Break ends the loop yielding Null, Continue skips to the next
// iteration, and ReturnValue, ThrownValue, and Error propagate out.

// evalWhile reevaluates its condition before each iteration; the condition
// must yield a boolean.
func (ev *Evaluator) evalWhile(node *parser.WhileExpressionNode) objects.GiulioObject {
	for {
		cond := ev.evalExpr(node.Cond)
		if objects.IsControlFlow(cond) {
			return cond
		}
		b, err := objects.ToBool(cond)
		if err != nil {
			return objects.NewError(err)
		}
		if !b {
			return objects.NULL
		}

		result := ev.evalBlock(node.Body)
		switch result.(type) {
		case *objects.Break:
			return objects.NULL
		case *objects.Continue:
			continue
		case *objects.ReturnValue, *objects.ThrownValue, *objects.Error:
			return result
		}
	}
}

// evalForIn iterates arrays element-wise and strings character-wise. Other
// iterables are rejected. The loop variable is assigned in the enclosing
// scope, matching the write-back discipline of assignments.
func (ev *Evaluator) evalForIn(node *parser.ForInExpressionNode) objects.GiulioObject {
	iterable := ev.evalExpr(node.Iterable)
	if objects.IsControlFlow(iterable) {
		return iterable
	}

	var items []objects.GiulioObject
	switch it := iterable.(type) {
	case *objects.Array:
		items = it.Elements
	case *objects.String:
		for _, r := range it.Value {
			items = append(items, &objects.String{Value: string(r)})
		}
	default:
		return objects.NewError(giuerrors.NewInvalidOperation("cannot iterate over %s", objects.TypeName(iterable)))
	}

	for _, item := range items {
		ev.Env.Set(node.Ident, item)

		result := ev.evalBlock(node.Body)
		switch result.(type) {
		case *objects.Break:
			return objects.NULL
		case *objects.Continue:
			continue
		case *objects.ReturnValue, *objects.ThrownValue, *objects.Error:
			return result
		}
	}
	return objects.NULL
}

// evalCStyleFor runs init once (which must not fail), then repeatedly
// evaluates the condition (absent means true), the body, and the update
// statement.
func (ev *Evaluator) evalCStyleFor(node *parser.CStyleForExpressionNode) objects.GiulioObject {
	if node.Init != nil {
		result := ev.evalStatement(node.Init)
		if _, isErr := result.(*objects.Error); isErr {
			return result
		}
	}

	for {
		if node.Cond != nil {
			cond := ev.evalExpr(node.Cond)
			if objects.IsControlFlow(cond) {
				return cond
			}
			b, err := objects.ToBool(cond)
			if err != nil {
				return objects.NewError(err)
			}
			if !b {
				return objects.NULL
			}
		}

		result := ev.evalBlock(node.Body)
		switch result.(type) {
		case *objects.Break:
			return objects.NULL
		case *objects.Continue:
			// fall through to the update statement
		case *objects.ReturnValue, *objects.ThrownValue, *objects.Error:
			return result
		}

		if node.Update != nil {
			result := ev.evalStatement(node.Update)
			if _, isErr := result.(*objects.Error); isErr {
				return result
			}
		}
	}
}
