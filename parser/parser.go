/*
File    : go-giulio/parser/parser.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

/*
Package parser implements a Pratt parser (also known as top-down operator
precedence parser) for the Giulio programming language.

The parser converts a stream of tokens from the lexer into an Abstract
Syntax Tree (AST). It handles:
- Expressions (binary, unary, literals, identifiers, calls, indexing)
- Statements (declarations, assignments, control flow, imports)
- Functions (named, anonymous, async) and await expressions
- Structs (definitions, literals, methods)
- Loops (while, for-in, C-style for)
- Exception handling (try/catch/finally, throw)
- Operator precedence and associativity

Key Features:
- Pratt parsing algorithm for efficient expression parsing
- First-match statement recognition with speculative backtracking for the
  assignment-or-expression ambiguity
- Compound assignment desugaring (x += e becomes x = x + e)
- A typed error taxonomy with a near-context token window
- A post-parse pass rejecting await outside async function bodies
*/
package parser

import (
	"strings"

	giuerrors "github.com/akashmaji946/go-giulio/errors"
	"github.com/akashmaji946/go-giulio/lexer"
)

// Parser represents the parser state and configuration.
// It operates over the full token slice so that speculative parses can be
// rolled back, which the assignment-or-expression discrimination requires.
type Parser struct {
	tokens []lexer.Token // All tokens including the EOF sentinel
	pos    int           // Index in tokens of the token after NextToken

	CurrToken lexer.Token // Current token being processed
	NextToken lexer.Token // Next token (for lookahead)

	// Function maps for Pratt parsing
	// These maps associate token types with their parsing functions
	UnaryFuncs map[lexer.TokenType]unaryParseFunction

	// First parse failure. The parser stops at the first error; errPos
	// remembers where in the token stream it happened so ErrorContext can
	// render a window around it.
	err    *giuerrors.ParserError
	errPos int
}

// NewParser creates and initializes a new Parser instance over a token
// slice produced by lexer.Tokenize. The slice must be terminated by the
// EOF sentinel.
func NewParser(tokens []lexer.Token) *Parser {
	par := &Parser{
		tokens: tokens,
	}
	par.init()
	return par
}

// NewParserFromSource tokenizes src and creates a parser for it. The lexer
// failure, if any, is returned untouched so the caller can render it under
// the lexer banner.
func NewParserFromSource(src string) (*Parser, *giuerrors.LexerError) {
	tokens, lexErr := lexer.Tokenize(src)
	if lexErr != nil {
		return nil, lexErr
	}
	return NewParser(tokens), nil
}

// init initializes the parser's internal state: the atom parse functions
// and the initial token lookahead.
func (par *Parser) init() {
	par.UnaryFuncs = make(map[lexer.TokenType]unaryParseFunction)

	// Literals
	par.registerUnaryFuncs(par.parseIntegerLiteral, lexer.INT_LIT)
	par.registerUnaryFuncs(par.parseBigIntegerLiteral, lexer.BIGINT_LIT)
	par.registerUnaryFuncs(par.parseFloatLiteral, lexer.FLOAT_LIT)
	par.registerUnaryFuncs(par.parseStringLiteral, lexer.STRING_LIT)
	par.registerUnaryFuncs(par.parseBooleanLiteral, lexer.TRUE_LIT, lexer.FALSE_LIT)
	par.registerUnaryFuncs(par.parseNullLiteral, lexer.NULL_LIT)

	// Identifiers and struct literals share a first token
	par.registerUnaryFuncs(par.parseIdentifierOrStructLiteral, lexer.IDENTIFIER_ID)

	// Prefix operators: ! + -
	par.registerUnaryFuncs(par.parsePrefixExpression, lexer.NOT_OP, lexer.PLUS_OP, lexer.MINUS_OP)

	// Grouped expression: (expr)
	par.registerUnaryFuncs(par.parseGroupedExpression, lexer.LEFT_PAREN)

	// Composite literals
	par.registerUnaryFuncs(par.parseArrayLiteral, lexer.LEFT_BRACKET)
	par.registerUnaryFuncs(par.parseHashLiteral, lexer.LEFT_BRACE)

	// Block-terminated expressions
	par.registerUnaryFuncs(par.parseIfExpression, lexer.IF_KEY)
	par.registerUnaryFuncs(par.parseFunctionLiteral, lexer.FN_KEY)
	par.registerUnaryFuncs(par.parseAsyncFunctionLiteral, lexer.ASYNC_KEY)
	par.registerUnaryFuncs(par.parseTryCatchExpression, lexer.TRY_KEY)

	// this and await
	par.registerUnaryFuncs(par.parseThisExpression, lexer.THIS_KEY)
	par.registerUnaryFuncs(par.parseAwaitExpression, lexer.AWAIT_KEY)

	// Prime the token lookahead by advancing twice
	// After this, CurrToken and NextToken are both valid
	par.advance()
	par.advance()
}

// advance moves the parser forward by one token.
// CurrToken becomes NextToken and NextToken is pulled from the token slice.
// Past the end of input both tokens stay at the EOF sentinel.
func (par *Parser) advance() {
	par.CurrToken = par.NextToken
	if par.pos < len(par.tokens) {
		par.NextToken = par.tokens[par.pos]
	}
	par.pos++
}

// peekAfterNext returns the token following NextToken without consuming
// anything. Used for two-token lookahead in statement discrimination.
func (par *Parser) peekAfterNext() lexer.Token {
	if par.pos < len(par.tokens) {
		return par.tokens[par.pos]
	}
	return par.NextToken
}

// snapshot captures the parser position and error state for speculative
// parsing.
type snapshot struct {
	pos       int
	currToken lexer.Token
	nextToken lexer.Token
	err       *giuerrors.ParserError
	errPos    int
}

// save captures the current parser state.
func (par *Parser) save() snapshot {
	return snapshot{
		pos:       par.pos,
		currToken: par.CurrToken,
		nextToken: par.NextToken,
		err:       par.err,
		errPos:    par.errPos,
	}
}

// restore rolls the parser back to a previously saved state, discarding
// any error recorded since.
func (par *Parser) restore(s snapshot) {
	par.pos = s.pos
	par.CurrToken = s.currToken
	par.NextToken = s.nextToken
	par.err = s.err
	par.errPos = s.errPos
}

// fail records a parse error. The first error wins; later failures while
// unwinding are ignored.
func (par *Parser) fail(err *giuerrors.ParserError) {
	if par.err != nil {
		return
	}
	if par.CurrToken.Type == lexer.EOF_TYPE &&
		(err.Kind == giuerrors.UnexpectedToken || err.Kind == giuerrors.InvalidExpression) {
		err = &giuerrors.ParserError{Kind: giuerrors.UnexpectedEOF}
	}
	par.err = err
	par.errPos = par.pos - 2
	if par.errPos < 0 {
		par.errPos = 0
	}
}

// failExpected records an expected-X-found-Y error against the next token.
func (par *Parser) failExpected(expected string) {
	if par.err != nil {
		return
	}
	found := par.NextToken.Describe()
	if par.NextToken.Type == lexer.EOF_TYPE {
		found = "end of file"
	}
	par.fail(&giuerrors.ParserError{
		Kind:     giuerrors.ExpectedToken,
		Expected: expected,
		Found:    found,
	})
	// Point the context window at the offending lookahead token
	par.errPos = par.pos - 1
	if par.errPos >= len(par.tokens) {
		par.errPos = len(par.tokens) - 1
	}
}

// expectAdvance checks if the next token matches the expected type,
// and if so, advances the parser. On mismatch it records an
// expected-token error described by what.
func (par *Parser) expectAdvance(expected lexer.TokenType, what string) bool {
	if par.NextToken.Type != expected {
		par.failExpected(what)
		return false
	}
	par.advance()
	return true
}

// HasError reports whether parsing failed.
func (par *Parser) HasError() bool {
	return par.err != nil
}

// GetError returns the recorded parse error, nil when parsing succeeded.
// The error's Context field is filled with the near-context window.
func (par *Parser) GetError() *giuerrors.ParserError {
	if par.err == nil {
		return nil
	}
	if par.err.Context == "" {
		par.err.Context = par.ErrorContext(3)
	}
	return par.err
}

// ErrorContext renders a textual near-context window of the tokens around
// the error position, e.g.:
//
//	Near: 'let' identifier 'x' >>> ':' <<< integer 10 ';'
func (par *Parser) ErrorContext(numContextTokens int) string {
	if len(par.tokens) == 0 {
		return "Near: end of file"
	}
	errPos := par.errPos
	if errPos >= len(par.tokens) {
		errPos = len(par.tokens) - 1
	}

	var sb strings.Builder
	sb.WriteString("Near: ")

	start := errPos - numContextTokens
	if start < 0 {
		start = 0
	}
	for i := start; i < errPos; i++ {
		sb.WriteString(par.tokens[i].Describe())
		sb.WriteString(" ")
	}

	sb.WriteString(">>> ")
	sb.WriteString(par.tokens[errPos].Describe())
	sb.WriteString(" <<<")

	end := errPos + numContextTokens + 1
	if end > len(par.tokens) {
		end = len(par.tokens)
	}
	for i := errPos + 1; i < end; i++ {
		sb.WriteString(" ")
		sb.WriteString(par.tokens[i].Describe())
	}

	return sb.String()
}

// Parse is the main parsing function that converts the token stream into a
// Program. It repeatedly parses statements until the EOF sentinel, then
// runs the await-placement check. On any failure it returns a nil program
// and the typed parse error.
func (par *Parser) Parse() (Program, *giuerrors.ParserError) {
	program := make(Program, 0)

	for par.CurrToken.Type != lexer.EOF_TYPE && par.err == nil {
		stmt := par.parseStatement()
		if par.err != nil {
			break
		}
		if stmt != nil {
			program = append(program, stmt)
		}
		par.advance()
	}

	if par.err != nil {
		return nil, par.GetError()
	}

	// Every await must sit lexically inside an async fn body
	if err := validateAwaitUsage(program); err != nil {
		par.err = err
		par.errPos = 0
		return nil, par.GetError()
	}

	return program, nil
}
