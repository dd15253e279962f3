/*
File    : go-giulio/eval/eval_access.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package eval

import (
	giuerrors "github.com/akashmaji946/go-giulio/errors"
	"github.com/akashmaji946/go-giulio/objects"
	"github.com/akashmaji946/go-giulio/parser"
)

// evalStructDef evaluates a struct definition. Field default expressions
// are evaluated once, at definition time; method expressions produce
// Function values capturing the defining environment. The prototype is
// stored in the current scope under the type name.
func (ev *Evaluator) evalStructDef(node *parser.StructStatementNode) objects.GiulioObject {
	fields := make(map[string]objects.GiulioObject, len(node.Fields))
	for _, field := range node.Fields {
		value := ev.evalExpr(field.Value)
		if objects.IsControlFlow(value) {
			return value
		}
		fields[field.Name] = value
	}

	methods := make(map[string]objects.GiulioObject, len(node.Methods))
	for _, method := range node.Methods {
		value := ev.evalExpr(method.Value)
		if objects.IsControlFlow(value) {
			return value
		}
		methods[method.Name] = value
	}

	prototype := &objects.Struct{
		Name:    node.Name,
		Fields:  fields,
		Methods: methods,
	}
	ev.Env.Bind(node.Name, prototype)

	return objects.NULL
}

// evalStructLiteral instantiates a struct: the named prototype's default
// fields are cloned, overridden with the provided assignments, and the
// method table attached to a fresh instance.
func (ev *Evaluator) evalStructLiteral(node *parser.StructLiteralNode) objects.GiulioObject {
	def, found := ev.Env.Get(node.Name)
	if !found {
		return objects.NewError(giuerrors.NewUndefinedVariable(node.Name))
	}
	prototype, isStruct := def.(*objects.Struct)
	if !isStruct {
		return objects.NewError(giuerrors.NewInvalidOperation("%s is not a struct", node.Name))
	}

	instance := prototype.Clone()
	for _, field := range node.Fields {
		value := ev.evalExpr(field.Value)
		if objects.IsControlFlow(value) {
			return value
		}
		instance.Fields[field.Name] = value
	}

	return instance
}

// evalFieldAccess evaluates obj.field. Structs expose their fields and
// modules their exports; everything else has no fields.
func (ev *Evaluator) evalFieldAccess(objectExpr parser.ExpressionNode, field string) objects.GiulioObject {
	object := ev.evalExpr(objectExpr)
	if objects.IsControlFlow(object) {
		return object
	}

	switch o := object.(type) {
	case *objects.Struct:
		if value, ok := o.Fields[field]; ok {
			return value
		}
		return objects.NewError(giuerrors.NewInvalidOperation("struct has no field '%s'", field))
	case *objects.Module:
		if value, ok := o.Exports[field]; ok {
			return value
		}
		return objects.NewError(giuerrors.NewInvalidOperation("Module %s has no export '%s'", o.Name, field))
	default:
		return objects.NewError(giuerrors.NewInvalidOperation("%s does not have fields", objects.TypeName(object)))
	}
}

// evalFieldAssign evaluates obj.field = value. Only `this.field = value`
// is accepted: the receiver struct is looked up, a copy with the updated
// field is built, and the copy is reassigned to `this` so the enclosing
// method call observes the mutation. The statement's own value is null.
func (ev *Evaluator) evalFieldAssign(objectExpr parser.ExpressionNode, field string, valueExpr parser.ExpressionNode) objects.GiulioObject {
	value := ev.evalExpr(valueExpr)
	if objects.IsControlFlow(value) {
		return value
	}

	if _, isThis := objectExpr.(*parser.ThisExpressionNode); !isThis {
		return objects.NewError(giuerrors.NewInvalidOperation("Can only assign to 'this.field', not other object fields"))
	}

	current, ok := ev.Env.Get("this")
	if !ok {
		return objects.NewError(giuerrors.NewInvalidOperation("'this' is not defined in current scope"))
	}
	st, isStruct := current.(*objects.Struct)
	if !isStruct {
		return objects.NewError(giuerrors.NewInvalidOperation("%s does not have fields", objects.TypeName(current)))
	}

	updated := st.Clone()
	updated.Fields[field] = value
	ev.Env.Set("this", updated)

	return objects.NULL
}

// evalIndexAssign evaluates target[index] = value. The target must be a
// bare identifier or `this`. The whole container is read, a mutated copy
// is built, and the copy is written back to the slot.
func (ev *Evaluator) evalIndexAssign(targetExpr, indexExpr, valueExpr parser.ExpressionNode) objects.GiulioObject {
	index := ev.evalExpr(indexExpr)
	if objects.IsControlFlow(index) {
		return index
	}
	value := ev.evalExpr(valueExpr)
	if objects.IsControlFlow(value) {
		return value
	}

	var name string
	switch t := targetExpr.(type) {
	case *parser.IdentifierNode:
		name = t.Name
	case *parser.ThisExpressionNode:
		name = "this"
	default:
		return objects.NewError(giuerrors.NewInvalidOperation(
			"Can only assign to variable[index] or this[index], not complex expressions"))
	}

	current, ok := ev.Env.Get(name)
	if !ok {
		if name == "this" {
			return objects.NewError(giuerrors.NewInvalidOperation("'this' is not defined in current scope"))
		}
		return objects.NewError(giuerrors.NewUndefinedVariable(name))
	}

	switch container := current.(type) {
	case *objects.Array:
		idx, err := objects.ToInt64(index)
		if err != nil {
			return objects.NewError(err)
		}
		if idx < 0 || idx >= int64(len(container.Elements)) {
			return objects.NewError(giuerrors.NewIndexOutOfBounds(idx, len(container.Elements)))
		}
		updated := container.Clone()
		updated.Elements[idx] = value
		ev.Env.Set(name, updated)
		return value

	case *objects.Hash:
		updated := container.Clone()
		if err := updated.Set(index, value); err != nil {
			return objects.NewError(err)
		}
		ev.Env.Set(name, updated)
		return value

	default:
		return objects.NewError(giuerrors.NewInvalidOperation("Cannot index into %s", objects.TypeName(current)))
	}
}
