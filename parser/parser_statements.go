/*
File    : go-giulio/parser/parser_statements.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import (
	"github.com/akashmaji946/go-giulio/lexer"
)

// parseStatement recognizes and parses one statement. Recognition is
// first-match in this order: import, let, fn (named form only), return,
// struct, while, for, break, continue, throw, and finally the
// assignment-or-expression fallback.
//
// On entry CurrToken is the statement's first token; on exit it is the
// statement's last token (the terminating ';' where the grammar has one,
// or the closing '}' of a block form).
func (par *Parser) parseStatement() StatementNode {
	switch par.CurrToken.Type {
	case lexer.IMPORT_KEY:
		return par.parseImportStatement()
	case lexer.LET_KEY:
		return par.parseLetStatement()
	case lexer.FN_KEY:
		// `fn name(...)` is a statement, a bare `fn(...)` is an expression
		if par.NextToken.Type == lexer.IDENTIFIER_ID {
			return par.parseFunctionStatement()
		}
		return par.parseAssignOrExpressionStatement()
	case lexer.ASYNC_KEY:
		// `async fn name(...)` binds like a let of an async fn expression
		if par.NextToken.Type == lexer.FN_KEY && par.peekAfterNext().Type == lexer.IDENTIFIER_ID {
			return par.parseAsyncFunctionStatement()
		}
		return par.parseAssignOrExpressionStatement()
	case lexer.RETURN_KEY:
		return par.parseReturnStatement()
	case lexer.STRUCT_KEY:
		return par.parseStructStatement()
	case lexer.WHILE_KEY:
		return par.parseWhileStatement()
	case lexer.FOR_KEY:
		return par.parseForStatement()
	case lexer.BREAK_KEY:
		if !par.expectAdvance(lexer.SEMICOLON_DELIM, "';' after 'break'") {
			return nil
		}
		return &BreakStatementNode{}
	case lexer.CONTINUE_KEY:
		if !par.expectAdvance(lexer.SEMICOLON_DELIM, "';' after 'continue'") {
			return nil
		}
		return &ContinueStatementNode{}
	case lexer.THROW_KEY:
		return par.parseThrowStatement()
	default:
		return par.parseAssignOrExpressionStatement()
	}
}

// parseLetStatement parses `let name = expr;`.
func (par *Parser) parseLetStatement() StatementNode {
	if !par.expectAdvance(lexer.IDENTIFIER_ID, "variable name after 'let'") {
		return nil
	}
	name := par.CurrToken.Literal

	if !par.expectAdvance(lexer.ASSIGN_OP, "'=' after variable name") {
		return nil
	}
	par.advance()
	value := par.parseExpression()
	if value == nil {
		return nil
	}
	if !par.expectAdvance(lexer.SEMICOLON_DELIM, "';' after statement") {
		return nil
	}
	return &LetStatementNode{Name: name, Value: value}
}

// parseReturnStatement parses `return expr;`. The semicolon may be elided
// immediately before a closing brace.
func (par *Parser) parseReturnStatement() StatementNode {
	par.advance()
	value := par.parseExpression()
	if value == nil {
		return nil
	}
	if !par.finishStatement() {
		return nil
	}
	return &ReturnStatementNode{Value: value}
}

// parseThrowStatement parses `throw expr;`. Like return, the semicolon may
// be elided immediately before a closing brace.
func (par *Parser) parseThrowStatement() StatementNode {
	par.advance()
	value := par.parseExpression()
	if value == nil {
		return nil
	}
	if !par.finishStatement() {
		return nil
	}
	return &ThrowStatementNode{Value: value}
}

// finishStatement consumes a statement terminator: a ';', or nothing when
// the statement sits directly before its block's closing brace.
func (par *Parser) finishStatement() bool {
	if par.NextToken.Type == lexer.SEMICOLON_DELIM {
		par.advance()
		return true
	}
	if par.NextToken.Type == lexer.RIGHT_BRACE {
		return true
	}
	par.failExpected("';' after statement")
	return false
}

// parseAsyncFunctionStatement parses `async fn name(params) { body }` as a
// binding of an async function expression.
func (par *Parser) parseAsyncFunctionStatement() StatementNode {
	par.advance() // the 'fn'
	par.advance() // the name
	name := par.CurrToken.Literal

	if !par.expectAdvance(lexer.LEFT_PAREN, "'(' after function name") {
		return nil
	}
	params := par.parseFunctionParams()
	if par.err != nil {
		return nil
	}
	if !par.expectAdvance(lexer.LEFT_BRACE, "'{' for function body") {
		return nil
	}
	body := par.parseBlockStatement()
	if par.err != nil {
		return nil
	}
	return &LetStatementNode{Name: name, Value: &AsyncFunctionLiteralNode{Params: params, Body: body}}
}

// parseFunctionStatement parses `fn name(params) { body }`.
// The statement form does not require a trailing semicolon.
func (par *Parser) parseFunctionStatement() StatementNode {
	if !par.expectAdvance(lexer.IDENTIFIER_ID, "function name after 'fn'") {
		return nil
	}
	name := par.CurrToken.Literal

	if !par.expectAdvance(lexer.LEFT_PAREN, "'(' after function name") {
		return nil
	}
	params := par.parseFunctionParams()
	if par.err != nil {
		return nil
	}
	if !par.expectAdvance(lexer.LEFT_BRACE, "'{' for function body") {
		return nil
	}
	body := par.parseBlockStatement()
	if par.err != nil {
		return nil
	}
	return &FunctionStatementNode{Name: name, Params: params, Body: body}
}

// parseStructStatement parses `struct Name { pairs }`. Pairs whose value
// is a function literal become methods; all other pairs become field
// defaults. The defaults are evaluated once at definition time.
func (par *Parser) parseStructStatement() StatementNode {
	if !par.expectAdvance(lexer.IDENTIFIER_ID, "struct name after 'struct'") {
		return nil
	}
	name := par.CurrToken.Literal

	if !par.expectAdvance(lexer.LEFT_BRACE, "'{' after struct name") {
		return nil
	}
	pairs := par.parseFieldDefs("'}' to close struct definition")
	if par.err != nil {
		return nil
	}

	node := &StructStatementNode{Name: name}
	for _, pair := range pairs {
		if _, isFn := pair.Value.(*FunctionLiteralNode); isFn {
			node.Methods = append(node.Methods, pair)
		} else {
			node.Fields = append(node.Fields, pair)
		}
	}
	return node
}

// parseImportStatement parses `import a.b;` and `import a.b.{x, y};`.
// A single braced name binds that one export; multiple braced names bind
// each of them; no braces binds the module itself under its last path
// segment.
func (par *Parser) parseImportStatement() StatementNode {
	if !par.expectAdvance(lexer.IDENTIFIER_ID, "module path after 'import'") {
		return nil
	}
	path := []string{par.CurrToken.Literal}

	for par.NextToken.Type == lexer.DOT_OP && par.peekAfterNext().Type == lexer.IDENTIFIER_ID {
		par.advance()
		par.advance()
		path = append(path, par.CurrToken.Literal)
	}

	node := &ImportStatementNode{Path: path, Kind: ImportAll}

	if par.NextToken.Type == lexer.DOT_OP {
		// The only remaining legal continuation is a braced item list
		par.advance()
		if !par.expectAdvance(lexer.LEFT_BRACE, "'{' after '.' in import") {
			return nil
		}

		names := make([]string, 0)
		if !par.expectAdvance(lexer.IDENTIFIER_ID, "export name in import list") {
			return nil
		}
		names = append(names, par.CurrToken.Literal)
		for par.NextToken.Type == lexer.COMMA_DELIM {
			par.advance()
			if !par.expectAdvance(lexer.IDENTIFIER_ID, "export name in import list") {
				return nil
			}
			names = append(names, par.CurrToken.Literal)
		}
		if !par.expectAdvance(lexer.RIGHT_BRACE, "'}' to close import list") {
			return nil
		}

		node.Names = names
		if len(names) == 1 {
			node.Kind = ImportSingle
		} else {
			node.Kind = ImportSpecific
		}
	}

	if !par.expectAdvance(lexer.SEMICOLON_DELIM, "';' after import") {
		return nil
	}
	return node
}

// parseWhileStatement parses `while (cond) { body }` and wraps it as an
// expression statement; a while loop's value is always discarded.
func (par *Parser) parseWhileStatement() StatementNode {
	if !par.expectAdvance(lexer.LEFT_PAREN, "'(' after 'while'") {
		return nil
	}
	par.advance()
	cond := par.parseExpression()
	if cond == nil {
		return nil
	}
	if !par.expectAdvance(lexer.RIGHT_PAREN, "')' after while condition") {
		return nil
	}
	if !par.expectAdvance(lexer.LEFT_BRACE, "'{' for loop body") {
		return nil
	}
	body := par.parseBlockStatement()
	if par.err != nil {
		return nil
	}
	return &ExpressionStatementNode{Expression: &WhileExpressionNode{Cond: cond, Body: body}}
}

// parseForStatement parses both for-loop forms. After `for (` the next
// tokens discriminate: `let` means C-style, an identifier followed by `in`
// means for-in, an identifier followed by `=` means C-style, and anything
// else attempts C-style.
func (par *Parser) parseForStatement() StatementNode {
	if !par.expectAdvance(lexer.LEFT_PAREN, "'(' after 'for'") {
		return nil
	}

	if par.NextToken.Type == lexer.IDENTIFIER_ID && par.peekAfterNext().Type == lexer.IN_KEY {
		return par.parseForInLoop()
	}
	return par.parseCStyleFor()
}

// parseForInLoop parses `x in iterable) { body }` after `for (`.
func (par *Parser) parseForInLoop() StatementNode {
	par.advance()
	ident := par.CurrToken.Literal
	par.advance() // the 'in' keyword

	par.advance()
	iterable := par.parseExpression()
	if iterable == nil {
		return nil
	}
	if !par.expectAdvance(lexer.RIGHT_PAREN, "')' to close for loop condition") {
		return nil
	}
	if !par.expectAdvance(lexer.LEFT_BRACE, "'{' for loop body") {
		return nil
	}
	body := par.parseBlockStatement()
	if par.err != nil {
		return nil
	}
	return &ExpressionStatementNode{Expression: &ForInExpressionNode{
		Ident:    ident,
		Iterable: iterable,
		Body:     body,
	}}
}

// parseCStyleFor parses `init; cond; update) { body }` after `for (`.
// All three header slots are optional; an absent condition loops forever.
func (par *Parser) parseCStyleFor() StatementNode {
	node := &CStyleForExpressionNode{}

	// Init: `let name = expr` or `name = expr`, no semicolon of its own
	if par.NextToken.Type != lexer.SEMICOLON_DELIM {
		switch par.NextToken.Type {
		case lexer.LET_KEY:
			par.advance()
			if !par.expectAdvance(lexer.IDENTIFIER_ID, "variable name after 'let'") {
				return nil
			}
			name := par.CurrToken.Literal
			if !par.expectAdvance(lexer.ASSIGN_OP, "'=' after variable name") {
				return nil
			}
			par.advance()
			value := par.parseExpression()
			if value == nil {
				return nil
			}
			node.Init = &LetStatementNode{Name: name, Value: value}
		case lexer.IDENTIFIER_ID:
			par.advance()
			node.Init = par.parseAssignNoSemicolon()
			if node.Init == nil {
				return nil
			}
		default:
			par.failExpected("'let', assignment, or ';' in for loop")
			return nil
		}
	}
	if !par.expectAdvance(lexer.SEMICOLON_DELIM, "';' after for loop init") {
		return nil
	}

	// Condition
	if par.NextToken.Type != lexer.SEMICOLON_DELIM {
		par.advance()
		node.Cond = par.parseExpression()
		if node.Cond == nil {
			return nil
		}
	}
	if !par.expectAdvance(lexer.SEMICOLON_DELIM, "';' after for loop condition") {
		return nil
	}

	// Update
	if par.NextToken.Type != lexer.RIGHT_PAREN {
		if !par.expectAdvance(lexer.IDENTIFIER_ID, "assignment in for loop update") {
			return nil
		}
		node.Update = par.parseAssignNoSemicolon()
		if node.Update == nil {
			return nil
		}
	}
	if !par.expectAdvance(lexer.RIGHT_PAREN, "')' to close for loop condition") {
		return nil
	}
	if !par.expectAdvance(lexer.LEFT_BRACE, "'{' for loop body") {
		return nil
	}
	node.Body = par.parseBlockStatement()
	if par.err != nil {
		return nil
	}
	return &ExpressionStatementNode{Expression: node}
}

// parseAssignNoSemicolon parses `name = expr` or a compound form like
// `name += expr` with CurrToken on the identifier. Compound assignments
// desugar into plain assignments of an infix expression.
func (par *Parser) parseAssignNoSemicolon() StatementNode {
	name := par.CurrToken.Literal

	if op, ok := isCompoundAssign(par.NextToken.Type); ok {
		par.advance()
		par.advance()
		value := par.parseExpression()
		if value == nil {
			return nil
		}
		return &AssignStatementNode{Name: name, Value: &InfixExpressionNode{
			Operator: op,
			Left:     &IdentifierNode{Name: name},
			Right:    value,
		}}
	}

	if !par.expectAdvance(lexer.ASSIGN_OP, "'=' for assignment") {
		return nil
	}
	par.advance()
	value := par.parseExpression()
	if value == nil {
		return nil
	}
	return &AssignStatementNode{Name: name, Value: value}
}

// parseAssignOrExpressionStatement resolves the statement-level ambiguity
// between assignments and expressions:
//  1. A bare identifier followed by '=' (or a compound operator) is a
//     plain assignment.
//  2. Otherwise an atomic expression is parsed speculatively; if it is
//     followed by `.name =` it becomes a field assignment, and by
//     `[expr] =` an index assignment.
//  3. Otherwise the speculation is rolled back and the whole expression is
//     parsed: with a trailing ';' it is an expression statement whose
//     value is discarded, without one its value becomes the block result.
func (par *Parser) parseAssignOrExpressionStatement() StatementNode {
	// Fast path: simple identifier assignment
	if par.CurrToken.Type == lexer.IDENTIFIER_ID {
		_, compound := isCompoundAssign(par.NextToken.Type)
		if par.NextToken.Type == lexer.ASSIGN_OP || compound {
			stmt := par.parseAssignNoSemicolon()
			if stmt == nil {
				return nil
			}
			if !par.expectAdvance(lexer.SEMICOLON_DELIM, "';' after statement") {
				return nil
			}
			return stmt
		}
	}

	// Speculative path: atomic expression followed by a field or index
	// assignment target
	snap := par.save()
	if atomFn, ok := par.UnaryFuncs[par.CurrToken.Type]; ok {
		if atom := atomFn(); atom != nil && par.err == nil {
			switch par.NextToken.Type {
			case lexer.DOT_OP:
				if stmt := par.tryParseFieldAssignment(atom); stmt != nil {
					return stmt
				}
			case lexer.LEFT_BRACKET:
				if stmt := par.tryParseIndexAssignment(atom); stmt != nil {
					return stmt
				}
			}
		}
		par.restore(snap)
	}

	// Fallback: full expression statement
	expr := par.parseExpression()
	if expr == nil {
		return nil
	}
	if par.NextToken.Type == lexer.SEMICOLON_DELIM {
		par.advance()
		return &ExpressionStatementNode{Expression: expr}
	}
	return &ExpressionValueStatementNode{Expression: expr}
}

// tryParseFieldAssignment attempts `.name = expr;` after a speculatively
// parsed object expression. CurrToken is the object's last token and
// NextToken is '.'. Returns nil without recording an error when the tokens
// do not form a field assignment.
func (par *Parser) tryParseFieldAssignment(object ExpressionNode) StatementNode {
	snap := par.save()

	par.advance() // the '.'
	if par.NextToken.Type != lexer.IDENTIFIER_ID {
		par.restore(snap)
		return nil
	}
	par.advance()
	field := par.CurrToken.Literal

	op, compound := isCompoundAssign(par.NextToken.Type)
	if par.NextToken.Type != lexer.ASSIGN_OP && !compound {
		par.restore(snap)
		return nil
	}
	par.advance()
	par.advance()
	value := par.parseExpression()
	if value == nil {
		par.restore(snap)
		return nil
	}
	if par.NextToken.Type != lexer.SEMICOLON_DELIM {
		par.restore(snap)
		return nil
	}
	par.advance()

	if compound {
		value = &InfixExpressionNode{
			Operator: op,
			Left:     &FieldAccessExpressionNode{Object: object, Field: field},
			Right:    value,
		}
	}
	return &FieldAssignStatementNode{Object: object, Field: field, Value: value}
}

// tryParseIndexAssignment attempts `[expr] = expr;` after a speculatively
// parsed target expression. CurrToken is the target's last token and
// NextToken is '['. Returns nil without recording an error when the tokens
// do not form an index assignment.
func (par *Parser) tryParseIndexAssignment(target ExpressionNode) StatementNode {
	snap := par.save()

	par.advance() // the '['
	par.advance()
	index := par.parseExpression()
	if index == nil {
		par.restore(snap)
		return nil
	}
	if par.NextToken.Type != lexer.RIGHT_BRACKET {
		par.restore(snap)
		return nil
	}
	par.advance()

	op, compound := isCompoundAssign(par.NextToken.Type)
	if par.NextToken.Type != lexer.ASSIGN_OP && !compound {
		par.restore(snap)
		return nil
	}
	par.advance()
	par.advance()
	value := par.parseExpression()
	if value == nil {
		par.restore(snap)
		return nil
	}
	if par.NextToken.Type != lexer.SEMICOLON_DELIM {
		par.restore(snap)
		return nil
	}
	par.advance()

	if compound {
		value = &InfixExpressionNode{
			Operator: op,
			Left:     &IndexExpressionNode{Target: target, Index: index},
			Right:    value,
		}
	}
	return &IndexAssignStatementNode{Target: target, Index: index, Value: value}
}
