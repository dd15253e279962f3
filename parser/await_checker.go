/*
File    : go-giulio/parser/await_checker.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import (
	giuerrors "github.com/akashmaji946/go-giulio/errors"
)

// Post-parse validation of await placement. Every await expression must sit
// lexically inside an async fn body, with no ordinary fn boundary between
// them. Violations are parse-time failures, not runtime ones, so scripts
// cannot observe a half-executed program before the rejection.

// validateAwaitUsage walks the whole program with the async flag off.
func validateAwaitUsage(program Program) *giuerrors.ParserError {
	return verifyAwaitInBlock(program, false)
}

// verifyAwaitInBlock checks every statement of a block under the given
// async context.
func verifyAwaitInBlock(block Program, inAsync bool) *giuerrors.ParserError {
	for _, stmt := range block {
		if err := verifyAwaitInStmt(stmt, inAsync); err != nil {
			return err
		}
	}
	return nil
}

// verifyAwaitInStmt checks one statement. Function statement bodies reset
// the async context: an ordinary fn boundary shields nothing.
func verifyAwaitInStmt(stmt StatementNode, inAsync bool) *giuerrors.ParserError {
	switch s := stmt.(type) {
	case *LetStatementNode:
		return verifyAwaitInExpr(s.Value, inAsync)
	case *AssignStatementNode:
		return verifyAwaitInExpr(s.Value, inAsync)
	case *FieldAssignStatementNode:
		if err := verifyAwaitInExpr(s.Object, inAsync); err != nil {
			return err
		}
		return verifyAwaitInExpr(s.Value, inAsync)
	case *IndexAssignStatementNode:
		if err := verifyAwaitInExpr(s.Target, inAsync); err != nil {
			return err
		}
		if err := verifyAwaitInExpr(s.Index, inAsync); err != nil {
			return err
		}
		return verifyAwaitInExpr(s.Value, inAsync)
	case *ReturnStatementNode:
		return verifyAwaitInExpr(s.Value, inAsync)
	case *ThrowStatementNode:
		return verifyAwaitInExpr(s.Value, inAsync)
	case *ExpressionStatementNode:
		return verifyAwaitInExpr(s.Expression, inAsync)
	case *ExpressionValueStatementNode:
		return verifyAwaitInExpr(s.Expression, inAsync)
	case *FunctionStatementNode:
		return verifyAwaitInBlock(s.Body, false)
	case *StructStatementNode:
		for _, field := range s.Fields {
			if err := verifyAwaitInExpr(field.Value, inAsync); err != nil {
				return err
			}
		}
		for _, method := range s.Methods {
			if err := verifyAwaitInExpr(method.Value, false); err != nil {
				return err
			}
		}
		return nil
	default:
		// import, break, continue carry no expressions
		return nil
	}
}

// verifyAwaitInExpr checks one expression tree. Function literal bodies
// reset the async context; async function literal bodies enable it.
func verifyAwaitInExpr(expr ExpressionNode, inAsync bool) *giuerrors.ParserError {
	switch e := expr.(type) {
	case *AwaitExpressionNode:
		if !inAsync {
			return &giuerrors.ParserError{Kind: giuerrors.AwaitOutsideAsync}
		}
		return verifyAwaitInExpr(e.Value, inAsync)
	case *PrefixExpressionNode:
		return verifyAwaitInExpr(e.Right, inAsync)
	case *InfixExpressionNode:
		if err := verifyAwaitInExpr(e.Left, inAsync); err != nil {
			return err
		}
		return verifyAwaitInExpr(e.Right, inAsync)
	case *IfExpressionNode:
		if err := verifyAwaitInExpr(e.Cond, inAsync); err != nil {
			return err
		}
		if err := verifyAwaitInBlock(e.Consequence, inAsync); err != nil {
			return err
		}
		if e.Alternative != nil {
			return verifyAwaitInBlock(e.Alternative, inAsync)
		}
		return nil
	case *FunctionLiteralNode:
		return verifyAwaitInBlock(e.Body, false)
	case *AsyncFunctionLiteralNode:
		return verifyAwaitInBlock(e.Body, true)
	case *CallExpressionNode:
		if err := verifyAwaitInExpr(e.Function, inAsync); err != nil {
			return err
		}
		for _, arg := range e.Arguments {
			if err := verifyAwaitInExpr(arg, inAsync); err != nil {
				return err
			}
		}
		return nil
	case *ArrayLiteralNode:
		for _, elem := range e.Elements {
			if err := verifyAwaitInExpr(elem, inAsync); err != nil {
				return err
			}
		}
		return nil
	case *HashLiteralNode:
		for _, pair := range e.Pairs {
			if err := verifyAwaitInExpr(pair.Key, inAsync); err != nil {
				return err
			}
			if err := verifyAwaitInExpr(pair.Value, inAsync); err != nil {
				return err
			}
		}
		return nil
	case *IndexExpressionNode:
		if err := verifyAwaitInExpr(e.Target, inAsync); err != nil {
			return err
		}
		return verifyAwaitInExpr(e.Index, inAsync)
	case *MethodCallExpressionNode:
		if err := verifyAwaitInExpr(e.Object, inAsync); err != nil {
			return err
		}
		for _, arg := range e.Arguments {
			if err := verifyAwaitInExpr(arg, inAsync); err != nil {
				return err
			}
		}
		return nil
	case *StructLiteralNode:
		for _, field := range e.Fields {
			if err := verifyAwaitInExpr(field.Value, inAsync); err != nil {
				return err
			}
		}
		return nil
	case *FieldAccessExpressionNode:
		return verifyAwaitInExpr(e.Object, inAsync)
	case *WhileExpressionNode:
		if err := verifyAwaitInExpr(e.Cond, inAsync); err != nil {
			return err
		}
		return verifyAwaitInBlock(e.Body, inAsync)
	case *ForInExpressionNode:
		if err := verifyAwaitInExpr(e.Iterable, inAsync); err != nil {
			return err
		}
		return verifyAwaitInBlock(e.Body, inAsync)
	case *CStyleForExpressionNode:
		if e.Init != nil {
			if err := verifyAwaitInStmt(e.Init, inAsync); err != nil {
				return err
			}
		}
		if e.Cond != nil {
			if err := verifyAwaitInExpr(e.Cond, inAsync); err != nil {
				return err
			}
		}
		if e.Update != nil {
			if err := verifyAwaitInStmt(e.Update, inAsync); err != nil {
				return err
			}
		}
		return verifyAwaitInBlock(e.Body, inAsync)
	case *TryCatchExpressionNode:
		if err := verifyAwaitInBlock(e.TryBody, inAsync); err != nil {
			return err
		}
		if e.HasCatch {
			if err := verifyAwaitInBlock(e.CatchBody, inAsync); err != nil {
				return err
			}
		}
		if e.FinallyBody != nil {
			return verifyAwaitInBlock(e.FinallyBody, inAsync)
		}
		return nil
	default:
		// identifiers, literals, this
		return nil
	}
}
