/*
File    : go-giulio/lexer/token.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package lexer

import "fmt"

// TokenType represents the type of a lexical token in the Giulio language.
// It is defined as a string to allow for easy comparison and debugging.
// Each token type corresponds to a specific syntactic element in the language,
// such as operators, keywords, literals, or structural symbols.
type TokenType string

// TokenType Constants:
// These constants define all possible token types in the Giulio language.
// They are organized into logical groups for clarity and maintainability.
const (
	// Special Types
	// EOF_TYPE marks the end of the input stream
	EOF_TYPE TokenType = "EOF"
	// INVALID_TYPE represents an unrecognized or malformed token
	INVALID_TYPE TokenType = "INVALID"

	// Arithmetic Operators
	PLUS_OP  TokenType = "+" // Addition operator
	MINUS_OP TokenType = "-" // Subtraction operator
	MUL_OP   TokenType = "*" // Multiplication operator
	DIV_OP   TokenType = "/" // Division operator
	MOD_OP   TokenType = "%" // Modulo operator

	// Compound assignment operators
	PLUS_ASSIGN  TokenType = "+=" // Add and assign (x += y)
	MINUS_ASSIGN TokenType = "-=" // Subtract and assign (x -= y)
	MUL_ASSIGN   TokenType = "*=" // Multiply and assign (x *= y)
	DIV_ASSIGN   TokenType = "/=" // Divide and assign (x /= y)
	MOD_ASSIGN   TokenType = "%=" // Modulo and assign (x %= y)

	// Logical/Comparison Operators
	GT_OP     TokenType = ">"  // Greater than
	LT_OP     TokenType = "<"  // Less than
	GE_OP     TokenType = ">=" // Greater than or equal to
	LE_OP     TokenType = "<=" // Less than or equal to
	EQ_OP     TokenType = "==" // Equality comparison
	NE_OP     TokenType = "!=" // Not equal comparison
	ASSIGN_OP TokenType = "="  // Assignment operator
	NOT_OP    TokenType = "!"  // Logical NOT operator

	// Boolean Operators
	AND_OP TokenType = "&&" // Logical AND
	OR_OP  TokenType = "||" // Logical OR

	// Keywords
	// Language keywords for control flow and declarations
	LET_KEY      TokenType = "let"      // Variable declaration
	FN_KEY       TokenType = "fn"       // Function keyword
	ASYNC_KEY    TokenType = "async"    // Async function modifier
	AWAIT_KEY    TokenType = "await"    // Await expression keyword
	IF_KEY       TokenType = "if"       // Conditional if keyword
	ELSE_KEY     TokenType = "else"     // Conditional else keyword
	RETURN_KEY   TokenType = "return"   // Return statement keyword
	STRUCT_KEY   TokenType = "struct"   // Struct declaration keyword
	THIS_KEY     TokenType = "this"     // 'this' keyword inside methods
	IMPORT_KEY   TokenType = "import"   // Module import keyword
	WHILE_KEY    TokenType = "while"    // While loop keyword
	FOR_KEY      TokenType = "for"      // For loop keyword
	IN_KEY       TokenType = "in"       // In keyword for for-in loops
	BREAK_KEY    TokenType = "break"    // Loop break keyword
	CONTINUE_KEY TokenType = "continue" // Loop continue keyword
	TRY_KEY      TokenType = "try"      // Try block keyword
	CATCH_KEY    TokenType = "catch"    // Catch block keyword
	FINALLY_KEY  TokenType = "finally"  // Finally block keyword
	THROW_KEY    TokenType = "throw"    // Throw statement keyword

	// Identifiers
	IDENTIFIER_ID TokenType = "Identifier" // User-defined identifier

	// Literals
	INT_LIT    TokenType = "IntLiteral"    // Integer literal that fits an i64
	BIGINT_LIT TokenType = "BigIntLiteral" // Integer literal beyond i64 range
	FLOAT_LIT  TokenType = "FloatLiteral"  // Floating-point literal (e.g., 3.14)
	STRING_LIT TokenType = "StringLiteral" // String literal (e.g., "hello")
	TRUE_LIT   TokenType = "true"          // Boolean true literal
	FALSE_LIT  TokenType = "false"         // Boolean false literal
	NULL_LIT   TokenType = "null"          // Null literal

	// Structural Tokens
	LEFT_PAREN    TokenType = "(" // Left parenthesis - calls, grouping
	RIGHT_PAREN   TokenType = ")" // Right parenthesis
	LEFT_BRACE    TokenType = "{" // Left brace - blocks, hash literals
	RIGHT_BRACE   TokenType = "}" // Right brace
	LEFT_BRACKET  TokenType = "[" // Left bracket - arrays, indexing
	RIGHT_BRACKET TokenType = "]" // Right bracket

	// Delimiters
	COMMA_DELIM     TokenType = "," // Comma - parameters, elements
	SEMICOLON_DELIM TokenType = ";" // Semicolon - statement terminator
	COLON_DELIM     TokenType = ":" // Colon - hash pairs, struct fields

	// Object member access operator
	DOT_OP TokenType = "." // Dot - field access, method calls, module paths
)

// KEYWORDS_MAP is a lookup table that maps keyword strings to their token types.
// This map is used during lexical analysis to distinguish between keywords
// (reserved words with special meaning) and regular identifiers.
var KEYWORDS_MAP = map[string]TokenType{
	"let":      LET_KEY,
	"fn":       FN_KEY,
	"async":    ASYNC_KEY,
	"await":    AWAIT_KEY,
	"if":       IF_KEY,
	"else":     ELSE_KEY,
	"return":   RETURN_KEY,
	"struct":   STRUCT_KEY,
	"this":     THIS_KEY,
	"import":   IMPORT_KEY,
	"while":    WHILE_KEY,
	"for":      FOR_KEY,
	"in":       IN_KEY,
	"break":    BREAK_KEY,
	"continue": CONTINUE_KEY,
	"try":      TRY_KEY,
	"catch":    CATCH_KEY,
	"finally":  FINALLY_KEY,
	"throw":    THROW_KEY,
	"true":     TRUE_LIT,
	"false":    FALSE_LIT,
	"null":     NULL_LIT,
}

// Token represents a single lexical token in the Giulio source code.
// It contains the token's type, its literal string representation from the
// source, and metadata about its position (line and column numbers).
type Token struct {
	Type    TokenType // The type/category of this token
	Literal string    // The actual text from source code
	Line    int       // Line number in source file (1-indexed)
	Column  int       // Column number in source file (1-indexed)
}

// NewToken creates a new Token with the specified type and literal value.
// This is a basic constructor that does not set line/column metadata.
// Use NewTokenWithMetadata if position information is needed.
func NewToken(tokenType TokenType, literal string) Token {
	return Token{
		Type:    tokenType,
		Literal: literal,
	}
}

// NewTokenWithMetadata creates a new Token with full metadata including
// position. This constructor is used during lexical analysis so errors can
// point back at the source.
func NewTokenWithMetadata(tokenType TokenType, literal string, line int, column int) Token {
	return Token{
		Type:    tokenType,
		Literal: literal,
		Line:    line,
		Column:  column,
	}
}

// Describe returns a human-readable description of the token for use in
// parser error messages, e.g. "identifier 'foo'" or "'{'".
func (tok *Token) Describe() string {
	switch tok.Type {
	case EOF_TYPE:
		return "end of file"
	case INVALID_TYPE:
		return "illegal token"
	case IDENTIFIER_ID:
		return fmt.Sprintf("identifier '%s'", tok.Literal)
	case INT_LIT:
		return fmt.Sprintf("integer %s", tok.Literal)
	case BIGINT_LIT:
		return fmt.Sprintf("big integer %s", tok.Literal)
	case FLOAT_LIT:
		return fmt.Sprintf("float %s", tok.Literal)
	case STRING_LIT:
		if len(tok.Literal) > 20 {
			return fmt.Sprintf("string \"%s...\"", tok.Literal[:20])
		}
		return fmt.Sprintf("string \"%s\"", tok.Literal)
	case TRUE_LIT, FALSE_LIT:
		return fmt.Sprintf("boolean %s", tok.Literal)
	case NULL_LIT:
		return "null"
	default:
		return fmt.Sprintf("'%s'", tok.Literal)
	}
}

// Print outputs a human-readable representation of the token to standard
// output in "literal:type" form. Used for debugging.
func (tok *Token) Print() {
	fmt.Printf("%s:%v\n", tok.Literal, tok.Type)
}

// lookupIdent determines the token type for an identifier string.
// It checks if the identifier is a reserved keyword by looking it up in
// KEYWORDS_MAP; otherwise it returns IDENTIFIER_ID.
func lookupIdent(ident string) TokenType {
	if tok, ok := KEYWORDS_MAP[ident]; ok {
		return tok
	}
	return IDENTIFIER_ID
}
