/*
File    : go-giulio/lexer/lexer_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	giuerrors "github.com/akashmaji946/go-giulio/errors"
)

// represents a test case for ConsumeTokens
// Input: source code
// ExpectedTokens: list of expected tokens
type TestConsumeToken struct {
	Input          string
	ExpectedTokens []Token
}

// TestNewLexer_ConsumeTokens tests the ConsumeTokens method of the Lexer
func TestNewLexer_ConsumeTokens(t *testing.T) {

	tests := []TestConsumeToken{
		{
			Input: ` 123 + 2   31 - 12 `,
			ExpectedTokens: []Token{
				NewToken(INT_LIT, "123"),
				NewToken(PLUS_OP, "+"),
				NewToken(INT_LIT, "2"),
				NewToken(INT_LIT, "31"),
				NewToken(MINUS_OP, "-"),
				NewToken(INT_LIT, "12"),
			},
		},
		{
			Input: ` { } + []  abc - a12 `,
			ExpectedTokens: []Token{
				NewToken(LEFT_BRACE, "{"),
				NewToken(RIGHT_BRACE, "}"),
				NewToken(PLUS_OP, "+"),
				NewToken(LEFT_BRACKET, "["),
				NewToken(RIGHT_BRACKET, "]"),
				NewToken(IDENTIFIER_ID, "abc"),
				NewToken(MINUS_OP, "-"),
				NewToken(IDENTIFIER_ID, "a12"),
			},
		},
		{
			Input: `== != <= >= < > = ! && ||`,
			ExpectedTokens: []Token{
				NewToken(EQ_OP, "=="),
				NewToken(NE_OP, "!="),
				NewToken(LE_OP, "<="),
				NewToken(GE_OP, ">="),
				NewToken(LT_OP, "<"),
				NewToken(GT_OP, ">"),
				NewToken(ASSIGN_OP, "="),
				NewToken(NOT_OP, "!"),
				NewToken(AND_OP, "&&"),
				NewToken(OR_OP, "||"),
			},
		},
		{
			Input: `+= -= *= /= %=`,
			ExpectedTokens: []Token{
				NewToken(PLUS_ASSIGN, "+="),
				NewToken(MINUS_ASSIGN, "-="),
				NewToken(MUL_ASSIGN, "*="),
				NewToken(DIV_ASSIGN, "/="),
				NewToken(MOD_ASSIGN, "%="),
			},
		},
		{
			Input: `let fn async await if else return struct this import while for in break continue try catch finally throw true false null`,
			ExpectedTokens: []Token{
				NewToken(LET_KEY, "let"),
				NewToken(FN_KEY, "fn"),
				NewToken(ASYNC_KEY, "async"),
				NewToken(AWAIT_KEY, "await"),
				NewToken(IF_KEY, "if"),
				NewToken(ELSE_KEY, "else"),
				NewToken(RETURN_KEY, "return"),
				NewToken(STRUCT_KEY, "struct"),
				NewToken(THIS_KEY, "this"),
				NewToken(IMPORT_KEY, "import"),
				NewToken(WHILE_KEY, "while"),
				NewToken(FOR_KEY, "for"),
				NewToken(IN_KEY, "in"),
				NewToken(BREAK_KEY, "break"),
				NewToken(CONTINUE_KEY, "continue"),
				NewToken(TRY_KEY, "try"),
				NewToken(CATCH_KEY, "catch"),
				NewToken(FINALLY_KEY, "finally"),
				NewToken(THROW_KEY, "throw"),
				NewToken(TRUE_LIT, "true"),
				NewToken(FALSE_LIT, "false"),
				NewToken(NULL_LIT, "null"),
			},
		},
		{
			Input: `"This is a long string  " nowAnIdentifier_234 "12"`,
			ExpectedTokens: []Token{
				NewToken(STRING_LIT, "This is a long string  "),
				NewToken(IDENTIFIER_ID, "nowAnIdentifier_234"),
				NewToken(STRING_LIT, "12"),
			},
		},
		{
			Input: `3.14 12 9223372036854775808 0.5`,
			ExpectedTokens: []Token{
				NewToken(FLOAT_LIT, "3.14"),
				NewToken(INT_LIT, "12"),
				NewToken(BIGINT_LIT, "9223372036854775808"),
				NewToken(FLOAT_LIT, "0.5"),
			},
		},
		{
			// A dot not followed by a digit belongs to the method call,
			// not the number
			Input: `12.to_string()`,
			ExpectedTokens: []Token{
				NewToken(INT_LIT, "12"),
				NewToken(DOT_OP, "."),
				NewToken(IDENTIFIER_ID, "to_string"),
				NewToken(LEFT_PAREN, "("),
				NewToken(RIGHT_PAREN, ")"),
			},
		},
		{
			Input: "let x = 5; // a comment until end of line\nx",
			ExpectedTokens: []Token{
				NewToken(LET_KEY, "let"),
				NewToken(IDENTIFIER_ID, "x"),
				NewToken(ASSIGN_OP, "="),
				NewToken(INT_LIT, "5"),
				NewToken(SEMICOLON_DELIM, ";"),
				NewToken(IDENTIFIER_ID, "x"),
			},
		},
		{
			Input: `import std.math; math.pi`,
			ExpectedTokens: []Token{
				NewToken(IMPORT_KEY, "import"),
				NewToken(IDENTIFIER_ID, "std"),
				NewToken(DOT_OP, "."),
				NewToken(IDENTIFIER_ID, "math"),
				NewToken(SEMICOLON_DELIM, ";"),
				NewToken(IDENTIFIER_ID, "math"),
				NewToken(DOT_OP, "."),
				NewToken(IDENTIFIER_ID, "pi"),
			},
		},
	}

	for _, test := range tests {
		lexer := NewLexer(test.Input)
		tokens := lexer.ConsumeTokens()

		require.Equal(t, len(test.ExpectedTokens), len(tokens), "token count for %q", test.Input)
		for i, expected := range test.ExpectedTokens {
			assert.Equal(t, expected.Type, tokens[i].Type, "token %d type for %q", i, test.Input)
			assert.Equal(t, expected.Literal, tokens[i].Literal, "token %d literal for %q", i, test.Input)
		}
	}
}

// TestLexer_StringEscapes checks the supported escape sequences.
func TestLexer_StringEscapes(t *testing.T) {
	lexer := NewLexer(`"a\"b\\c\nd\re\tf"`)
	token := lexer.NextToken()

	assert.Equal(t, STRING_LIT, token.Type)
	assert.Equal(t, "a\"b\\c\nd\re\tf", token.Literal)
}

// TestLexer_LineTracking checks that line numbers advance on newlines.
func TestLexer_LineTracking(t *testing.T) {
	lexer := NewLexer("let x = 1;\nlet y = 2;")
	tokens := lexer.ConsumeTokens()

	require.Equal(t, 10, len(tokens))
	assert.Equal(t, 1, tokens[0].Line)
	assert.Equal(t, 2, tokens[5].Line)
}

// TestTokenize_Errors checks the lexer's failure modes.
func TestTokenize_Errors(t *testing.T) {
	// Unterminated string
	_, err := Tokenize(`let s = "never closed`)
	require.NotNil(t, err)
	assert.Equal(t, giuerrors.UnterminatedString, err.Kind)

	// A byte outside the language's alphabet
	_, err = Tokenize(`let x = 5 @ 3;`)
	require.NotNil(t, err)
	assert.Equal(t, giuerrors.UnexpectedCharacter, err.Kind)
	assert.Equal(t, "@", err.Detail)

	// A lone '&' is not an operator
	_, err = Tokenize(`a & b`)
	require.NotNil(t, err)
	assert.Equal(t, giuerrors.UnexpectedCharacter, err.Kind)
}

// TestTokenize_EOFSentinel checks that Tokenize terminates the stream with
// the EOF sentinel.
func TestTokenize_EOFSentinel(t *testing.T) {
	tokens, err := Tokenize("1 + 2")
	require.Nil(t, err)
	require.Equal(t, 4, len(tokens))
	assert.Equal(t, EOF_TYPE, tokens[3].Type)
}

// TestTokenize_CoversAllBytes checks the round-trip property: the emitted
// token literals cover all non-whitespace, non-comment bytes.
func TestTokenize_CoversAllBytes(t *testing.T) {
	src := `let total = 12 + 3.5; // trailing comment`
	tokens, err := Tokenize(src)
	require.Nil(t, err)

	covered := 0
	for _, token := range tokens {
		if token.Type == EOF_TYPE {
			continue
		}
		covered += len(token.Literal)
	}
	// "let" + "total" + "=" + "12" + "+" + "3.5" + ";"
	assert.Equal(t, 3+5+1+2+1+3+1, covered)
}
