/*
File    : go-giulio/parser/parser_expressions.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import (
	"math/big"
	"strconv"

	giuerrors "github.com/akashmaji946/go-giulio/errors"
	"github.com/akashmaji946/go-giulio/lexer"
)

// parsePrattExpression is the precedence climber at the heart of the
// parser. It parses an atom with the registered atom function for the
// current token, then keeps consuming operators as long as the next
// token binds tighter than the caller's precedence:
//   - '(' builds a call expression with comma-separated arguments
//   - '[' builds an index expression
//   - '.' followed by an identifier builds a method call when '(' follows,
//     a field access otherwise
//   - any other operator descends with that operator's precedence,
//     which gives the binary operators left associativity
//
// On entry CurrToken is the first token of the expression; on exit it is
// the last token consumed.
func (par *Parser) parsePrattExpression(precedence int) ExpressionNode {
	prefix, ok := par.UnaryFuncs[par.CurrToken.Type]
	if !ok {
		par.fail(&giuerrors.ParserError{
			Kind:   giuerrors.InvalidExpression,
			Detail: "unexpected token: " + par.CurrToken.Describe(),
		})
		return nil
	}

	left := prefix()
	if left == nil {
		return nil
	}

	for par.err == nil && precedence < getPrecedence(par.NextToken.Type) {
		switch par.NextToken.Type {
		case lexer.LEFT_PAREN:
			par.advance()
			left = par.parseCallExpression(left)
		case lexer.LEFT_BRACKET:
			par.advance()
			left = par.parseIndexExpression(left)
		case lexer.DOT_OP:
			par.advance()
			left = par.parseMemberAccess(left)
		default:
			opToken := par.NextToken
			par.advance()
			left = par.parseInfixExpression(left, opToken)
		}
		if left == nil {
			return nil
		}
	}

	return left
}

// parseExpression parses a full expression from the lowest precedence.
func (par *Parser) parseExpression() ExpressionNode {
	return par.parsePrattExpression(LOWEST_PRIORITY)
}

// parseInfixExpression parses the right side of a binary operator. The
// right side is parsed at the operator's own precedence, so operators on
// the same level associate to the left.
func (par *Parser) parseInfixExpression(left ExpressionNode, opToken lexer.Token) ExpressionNode {
	par.advance()
	right := par.parsePrattExpression(getPrecedence(opToken.Type))
	if right == nil {
		return nil
	}
	return &InfixExpressionNode{
		Operator: opToken.Literal,
		Left:     left,
		Right:    right,
	}
}

// parseCallExpression parses a call's argument list. CurrToken is '('.
func (par *Parser) parseCallExpression(callee ExpressionNode) ExpressionNode {
	args := par.parseExpressionList(lexer.RIGHT_PAREN, "')' to close function call")
	if par.err != nil {
		return nil
	}
	return &CallExpressionNode{Function: callee, Arguments: args}
}

// parseIndexExpression parses an index access. CurrToken is '['.
func (par *Parser) parseIndexExpression(target ExpressionNode) ExpressionNode {
	par.advance()
	index := par.parseExpression()
	if index == nil {
		return nil
	}
	if !par.expectAdvance(lexer.RIGHT_BRACKET, "']' to close index") {
		return nil
	}
	return &IndexExpressionNode{Target: target, Index: index}
}

// parseMemberAccess parses what follows a '.': an identifier, then
// optionally an argument list. Presence of '(' produces a method call,
// absence a field access. CurrToken is '.'.
func (par *Parser) parseMemberAccess(object ExpressionNode) ExpressionNode {
	if !par.expectAdvance(lexer.IDENTIFIER_ID, "identifier after '.'") {
		return nil
	}
	name := par.CurrToken.Literal

	if par.NextToken.Type == lexer.LEFT_PAREN {
		par.advance()
		args := par.parseExpressionList(lexer.RIGHT_PAREN, "')' to close method call")
		if par.err != nil {
			return nil
		}
		return &MethodCallExpressionNode{Object: object, Method: name, Arguments: args}
	}

	return &FieldAccessExpressionNode{Object: object, Field: name}
}

// parseExpressionList parses a comma-separated expression list terminated
// by end. CurrToken is the opening delimiter on entry and end on exit.
func (par *Parser) parseExpressionList(end lexer.TokenType, closeWhat string) []ExpressionNode {
	list := make([]ExpressionNode, 0)

	if par.NextToken.Type == end {
		par.advance()
		return list
	}

	par.advance()
	first := par.parseExpression()
	if first == nil {
		return nil
	}
	list = append(list, first)

	for par.NextToken.Type == lexer.COMMA_DELIM {
		par.advance()
		par.advance()
		next := par.parseExpression()
		if next == nil {
			return nil
		}
		list = append(list, next)
	}

	if !par.expectAdvance(end, closeWhat) {
		return nil
	}
	return list
}

// --- Atoms ---

// parseIntegerLiteral parses an i64 integer literal.
func (par *Parser) parseIntegerLiteral() ExpressionNode {
	value, err := strconv.ParseInt(par.CurrToken.Literal, 10, 64)
	if err != nil {
		par.fail(&giuerrors.ParserError{
			Kind:   giuerrors.InvalidExpression,
			Detail: "could not parse " + par.CurrToken.Literal + " as integer",
		})
		return nil
	}
	return &IntegerLiteralNode{Value: value}
}

// parseBigIntegerLiteral parses an integer literal beyond the i64 range.
func (par *Parser) parseBigIntegerLiteral() ExpressionNode {
	value, ok := new(big.Int).SetString(par.CurrToken.Literal, 10)
	if !ok {
		par.fail(&giuerrors.ParserError{
			Kind:   giuerrors.InvalidExpression,
			Detail: "could not parse " + par.CurrToken.Literal + " as integer",
		})
		return nil
	}
	return &BigIntegerLiteralNode{Value: value}
}

// parseFloatLiteral parses a floating-point literal.
func (par *Parser) parseFloatLiteral() ExpressionNode {
	value, err := strconv.ParseFloat(par.CurrToken.Literal, 64)
	if err != nil {
		par.fail(&giuerrors.ParserError{
			Kind:   giuerrors.InvalidExpression,
			Detail: "could not parse " + par.CurrToken.Literal + " as float",
		})
		return nil
	}
	return &FloatLiteralNode{Value: value}
}

// parseStringLiteral parses a string literal.
func (par *Parser) parseStringLiteral() ExpressionNode {
	return &StringLiteralNode{Value: par.CurrToken.Literal}
}

// parseBooleanLiteral parses true or false.
func (par *Parser) parseBooleanLiteral() ExpressionNode {
	return &BooleanLiteralNode{Value: par.CurrToken.Type == lexer.TRUE_LIT}
}

// parseNullLiteral parses null.
func (par *Parser) parseNullLiteral() ExpressionNode {
	return &NullLiteralNode{}
}

// parseIdentifierOrStructLiteral parses an identifier, or a struct literal
// when the identifier is immediately followed by '{'.
func (par *Parser) parseIdentifierOrStructLiteral() ExpressionNode {
	name := par.CurrToken.Literal

	if par.NextToken.Type == lexer.LEFT_BRACE {
		par.advance()
		fields := par.parseFieldDefs("'}' to close struct literal")
		if par.err != nil {
			return nil
		}
		return &StructLiteralNode{Name: name, Fields: fields}
	}

	return &IdentifierNode{Name: name}
}

// parseFieldDefs parses a braced, comma-separated list of `ident: expr`
// pairs. CurrToken is '{' on entry and '}' on exit.
func (par *Parser) parseFieldDefs(closeWhat string) []FieldDef {
	fields := make([]FieldDef, 0)

	for par.NextToken.Type != lexer.RIGHT_BRACE {
		if !par.expectAdvance(lexer.IDENTIFIER_ID, "field name") {
			return nil
		}
		name := par.CurrToken.Literal
		if !par.expectAdvance(lexer.COLON_DELIM, "':' after field name") {
			return nil
		}
		par.advance()
		value := par.parseExpression()
		if value == nil {
			return nil
		}
		fields = append(fields, FieldDef{Name: name, Value: value})

		if par.NextToken.Type == lexer.COMMA_DELIM {
			par.advance()
		} else {
			break
		}
	}

	if !par.expectAdvance(lexer.RIGHT_BRACE, closeWhat) {
		return nil
	}
	return fields
}

// parsePrefixExpression parses !e, -e, or +e.
func (par *Parser) parsePrefixExpression() ExpressionNode {
	operator := par.CurrToken.Literal
	par.advance()
	right := par.parsePrattExpression(PREFIX_PRIORITY)
	if right == nil {
		return nil
	}
	return &PrefixExpressionNode{Operator: operator, Right: right}
}

// parseGroupedExpression parses a parenthesized expression.
func (par *Parser) parseGroupedExpression() ExpressionNode {
	par.advance()
	expr := par.parseExpression()
	if expr == nil {
		return nil
	}
	if !par.expectAdvance(lexer.RIGHT_PAREN, "')' to close parenthesis") {
		return nil
	}
	return expr
}

// parseArrayLiteral parses [e1, e2, ...].
func (par *Parser) parseArrayLiteral() ExpressionNode {
	elements := par.parseExpressionList(lexer.RIGHT_BRACKET, "']' to close array")
	if par.err != nil {
		return nil
	}
	return &ArrayLiteralNode{Elements: elements}
}

// parseHashLiteral parses {k1: v1, k2: v2, ...}.
func (par *Parser) parseHashLiteral() ExpressionNode {
	pairs := make([]HashPairNode, 0)

	for par.NextToken.Type != lexer.RIGHT_BRACE {
		par.advance()
		key := par.parseExpression()
		if key == nil {
			return nil
		}
		if !par.expectAdvance(lexer.COLON_DELIM, "':' after hash key") {
			return nil
		}
		par.advance()
		value := par.parseExpression()
		if value == nil {
			return nil
		}
		pairs = append(pairs, HashPairNode{Key: key, Value: value})

		if par.NextToken.Type == lexer.COMMA_DELIM {
			par.advance()
		} else {
			break
		}
	}

	if !par.expectAdvance(lexer.RIGHT_BRACE, "'}' to close hash") {
		return nil
	}
	return &HashLiteralNode{Pairs: pairs}
}

// parseIfExpression parses if (cond) { ... } else { ... }.
func (par *Parser) parseIfExpression() ExpressionNode {
	if !par.expectAdvance(lexer.LEFT_PAREN, "'(' after 'if'") {
		return nil
	}
	par.advance()
	cond := par.parseExpression()
	if cond == nil {
		return nil
	}
	if !par.expectAdvance(lexer.RIGHT_PAREN, "')' after condition") {
		return nil
	}
	if !par.expectAdvance(lexer.LEFT_BRACE, "'{' for if body") {
		return nil
	}
	consequence := par.parseBlockStatement()
	if par.err != nil {
		return nil
	}

	var alternative Program
	if par.NextToken.Type == lexer.ELSE_KEY {
		par.advance()
		if !par.expectAdvance(lexer.LEFT_BRACE, "'{' after 'else'") {
			return nil
		}
		alternative = par.parseBlockStatement()
		if par.err != nil {
			return nil
		}
	}

	return &IfExpressionNode{Cond: cond, Consequence: consequence, Alternative: alternative}
}

// parseFunctionLiteral parses fn(params) { body }.
func (par *Parser) parseFunctionLiteral() ExpressionNode {
	if !par.expectAdvance(lexer.LEFT_PAREN, "'(' after 'fn'") {
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
	return &FunctionLiteralNode{Params: params, Body: body}
}

// parseAsyncFunctionLiteral parses async fn(params) { body }.
func (par *Parser) parseAsyncFunctionLiteral() ExpressionNode {
	if !par.expectAdvance(lexer.FN_KEY, "'fn' after 'async'") {
		return nil
	}
	fn := par.parseFunctionLiteral()
	if fn == nil {
		return nil
	}
	lit := fn.(*FunctionLiteralNode)
	return &AsyncFunctionLiteralNode{Params: lit.Params, Body: lit.Body}
}

// parseFunctionParams parses a comma-separated identifier list. CurrToken
// is '(' on entry and ')' on exit.
func (par *Parser) parseFunctionParams() []string {
	params := make([]string, 0)

	if par.NextToken.Type == lexer.RIGHT_PAREN {
		par.advance()
		return params
	}

	if !par.expectAdvance(lexer.IDENTIFIER_ID, "parameter name") {
		return nil
	}
	params = append(params, par.CurrToken.Literal)

	for par.NextToken.Type == lexer.COMMA_DELIM {
		par.advance()
		if !par.expectAdvance(lexer.IDENTIFIER_ID, "parameter name") {
			return nil
		}
		params = append(params, par.CurrToken.Literal)
	}

	if !par.expectAdvance(lexer.RIGHT_PAREN, "')' to close function parameters") {
		return nil
	}
	return params
}

// parseTryCatchExpression parses try { ... } catch(x) { ... } finally { ... }.
// At least one of catch and finally must be present; a bare try block is
// rejected.
func (par *Parser) parseTryCatchExpression() ExpressionNode {
	if !par.expectAdvance(lexer.LEFT_BRACE, "'{' after 'try'") {
		return nil
	}
	tryBody := par.parseBlockStatement()
	if par.err != nil {
		return nil
	}

	node := &TryCatchExpressionNode{TryBody: tryBody}

	if par.NextToken.Type == lexer.CATCH_KEY {
		par.advance()
		node.HasCatch = true

		// The binder is optional: catch { ... } or catch(x) { ... }
		if par.NextToken.Type == lexer.LEFT_PAREN {
			par.advance()
			if !par.expectAdvance(lexer.IDENTIFIER_ID, "identifier in catch binder") {
				return nil
			}
			node.CatchName = par.CurrToken.Literal
			if !par.expectAdvance(lexer.RIGHT_PAREN, "')' after catch binder") {
				return nil
			}
		}

		if !par.expectAdvance(lexer.LEFT_BRACE, "'{' for catch body") {
			return nil
		}
		node.CatchBody = par.parseBlockStatement()
		if par.err != nil {
			return nil
		}
	}

	if par.NextToken.Type == lexer.FINALLY_KEY {
		par.advance()
		if !par.expectAdvance(lexer.LEFT_BRACE, "'{' for finally body") {
			return nil
		}
		node.FinallyBody = par.parseBlockStatement()
		if par.err != nil {
			return nil
		}
	}

	if !node.HasCatch && node.FinallyBody == nil {
		par.failExpected("'catch' or 'finally' after 'try' block")
		return nil
	}

	return node
}

// parseThisExpression parses the this keyword.
func (par *Parser) parseThisExpression() ExpressionNode {
	return &ThisExpressionNode{}
}

// parseAwaitExpression parses await e. The operand binds at prefix
// precedence so a following call or index still belongs to it.
func (par *Parser) parseAwaitExpression() ExpressionNode {
	par.advance()
	value := par.parsePrattExpression(PREFIX_PRIORITY)
	if value == nil {
		return nil
	}
	return &AwaitExpressionNode{Value: value}
}

// parseBlockStatement parses the statements of a braced block. CurrToken
// is '{' on entry and '}' on exit.
func (par *Parser) parseBlockStatement() Program {
	block := make(Program, 0)
	par.advance()

	for par.CurrToken.Type != lexer.RIGHT_BRACE {
		if par.CurrToken.Type == lexer.EOF_TYPE {
			par.fail(&giuerrors.ParserError{Kind: giuerrors.UnexpectedEOF})
			return nil
		}
		stmt := par.parseStatement()
		if par.err != nil {
			return nil
		}
		if stmt != nil {
			block = append(block, stmt)
		}
		par.advance()
	}

	return block
}
