/*
File    : go-giulio/parser/parser_precedence.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import "github.com/akashmaji946/go-giulio/lexer"

// Operator precedence constants.
// Higher number = higher precedence (binds tighter).
//
// Precedence Hierarchy (lowest to highest):
//  1. Logical OR
//  2. Logical AND
//  3. Equality operators (== !=)
//  4. Relational operators (< > <= >=)
//  5. Additive operators (+ -)
//  6. Multiplicative operators (* / %)
//  7. Unary/Prefix operators (! + -)
//  8. Call and member access ('(' and '.')
//  9. Index ('[')
//
// Example: In "a + b * c", multiplication has higher precedence than
// addition, so it's parsed as "a + (b * c)" rather than "(a + b) * c".
const (
	LOWEST_PRIORITY = 0 // Base priority for starting expression parsing

	// Logical OR: ||
	OR_PRIORITY = 10

	// Logical AND: &&
	AND_PRIORITY = 20

	// Equality operators: == !=
	EQUALITY_PRIORITY = 30

	// Relational operators: < > <= >=
	RELATIONAL_PRIORITY = 40

	// Additive operators: + -
	PLUS_PRIORITY = 50

	// Multiplicative operators: * / %
	MUL_PRIORITY = 60

	// Unary/Prefix operators: ! + - (and the await keyword)
	PREFIX_PRIORITY = 70

	// Call and member access: f(args), obj.field, obj.method(args)
	// Dot and LParen deliberately share this level
	CALL_PRIORITY = 80

	// Index operator: arr[i]
	INDEX_PRIORITY = 90
)

// getPrecedence returns the precedence level for a given token type.
// This function is central to the Pratt parsing algorithm, determining
// how tightly operators bind to their operands. Tokens that are not
// operators return LOWEST_PRIORITY, which stops the climb.
func getPrecedence(tokenType lexer.TokenType) int {
	switch tokenType {

	case lexer.OR_OP:
		return OR_PRIORITY

	case lexer.AND_OP:
		return AND_PRIORITY

	case lexer.EQ_OP, lexer.NE_OP:
		return EQUALITY_PRIORITY

	case lexer.LT_OP, lexer.GT_OP, lexer.LE_OP, lexer.GE_OP:
		return RELATIONAL_PRIORITY

	case lexer.PLUS_OP, lexer.MINUS_OP:
		return PLUS_PRIORITY

	case lexer.MUL_OP, lexer.DIV_OP, lexer.MOD_OP:
		return MUL_PRIORITY

	case lexer.LEFT_PAREN, lexer.DOT_OP:
		return CALL_PRIORITY

	case lexer.LEFT_BRACKET:
		return INDEX_PRIORITY

	default:
		return LOWEST_PRIORITY
	}
}

// unaryParseFunction is a function type for parsing atoms: minimal
// expressions parsed without consulting operator precedence. The current
// token is the atom's first token on entry and its last token on exit.
type unaryParseFunction func() ExpressionNode

// registerUnaryFuncs is a helper to register an atom parsing function
// for multiple token types. This allows one parsing function to handle
// multiple related token types; parsePrefixExpression, for example,
// handles !, +, and -.
func (par *Parser) registerUnaryFuncs(f unaryParseFunction, tokenTypes ...lexer.TokenType) {
	for _, tokenType := range tokenTypes {
		par.UnaryFuncs[tokenType] = f
	}
}

// isCompoundAssign reports whether tokenType is one of the compound
// assignment operators, and returns the underlying arithmetic operator.
func isCompoundAssign(tokenType lexer.TokenType) (string, bool) {
	switch tokenType {
	case lexer.PLUS_ASSIGN:
		return "+", true
	case lexer.MINUS_ASSIGN:
		return "-", true
	case lexer.MUL_ASSIGN:
		return "*", true
	case lexer.DIV_ASSIGN:
		return "/", true
	case lexer.MOD_ASSIGN:
		return "%", true
	default:
		return "", false
	}
}
