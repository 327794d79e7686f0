package jsonc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func collectTokens(t *testing.T, src string) []Token {
	t.Helper()

	var tokens []Token
	pos := 0
	tok := NewTokenizer(src)
	for {
		tk, ok := tok.Next()
		if !ok {
			break
		}
		// spans must be adjacent and non-empty
		assert.Equal(t, pos, tk.Start, "token %v starts at %d, want %d", tk, tk.Start, pos)
		assert.Greater(t, tk.End, tk.Start, "token %v is empty", tk)
		pos = tk.End
		tokens = append(tokens, tk)
	}
	assert.Equal(t, len(src), pos, "tokens do not cover the full input")
	return tokens
}

func TestTokenizerEmpty(t *testing.T) {
	assert := assert.New(t)

	tok := NewTokenizer("")
	_, ok := tok.Next()
	assert.False(ok)
}

func TestTokenizerKindsAndSpans(t *testing.T) {
	assert := assert.New(t)

	src := `{"a":1}// c`
	tokens := collectTokens(t, src)

	assert.Equal([]Token{
		{Kind: TokenOther, Start: 0, End: 1},
		{Kind: TokenString, Start: 1, End: 4},
		{Kind: TokenOther, Start: 4, End: 7},
		{Kind: TokenLineComment, Start: 7, End: 11},
	}, tokens)
}

func TestTokenizerCoalescesOther(t *testing.T) {
	assert := assert.New(t)

	tokens := collectTokens(t, `[1, 2, 3]`)
	assert.Len(tokens, 1)
	assert.Equal(TokenOther, tokens[0].Kind)
}

func TestTokenizerEscapedQuote(t *testing.T) {
	assert := assert.New(t)

	src := `"a\"b"`
	tokens := collectTokens(t, src)
	assert.Equal([]Token{{Kind: TokenString, Start: 0, End: len(src)}}, tokens)
}

func TestTokenizerStringTakesPrecedence(t *testing.T) {
	assert := assert.New(t)

	src := `"// not /* a comment */"`
	tokens := collectTokens(t, src)
	assert.Equal([]Token{{Kind: TokenString, Start: 0, End: len(src)}}, tokens)
}

func TestTokenizerBlockComment(t *testing.T) {
	assert := assert.New(t)

	src := `a/* b */c`
	tokens := collectTokens(t, src)
	assert.Equal([]Token{
		{Kind: TokenOther, Start: 0, End: 1},
		{Kind: TokenBlockComment, Start: 1, End: 8},
		{Kind: TokenOther, Start: 8, End: 9},
	}, tokens)
}

func TestTokenizerLineCommentStopsAtNewline(t *testing.T) {
	assert := assert.New(t)

	tokens := collectTokens(t, "//a\nb")
	assert.Equal([]Token{
		{Kind: TokenLineComment, Start: 0, End: 3},
		{Kind: TokenOther, Start: 3, End: 5},
	}, tokens)
}

// Unterminated constructs consume the rest of the input under the same
// kind instead of failing.
func TestTokenizerUnterminated(t *testing.T) {
	assert := assert.New(t)

	cases := []struct {
		src  string
		kind TokenKind
	}{
		{`"abc`, TokenString},
		{`"esc\`, TokenString},
		{`/*x`, TokenBlockComment},
		{`//x`, TokenLineComment},
	}

	for _, tc := range cases {
		tokens := collectTokens(t, tc.src)
		assert.Equal([]Token{{Kind: tc.kind, Start: 0, End: len(tc.src)}}, tokens, "input %q", tc.src)
	}
}

func TestTokenKindString(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("Other", TokenOther.String())
	assert.Equal("String", TokenString.String())
	assert.Equal("LineComment", TokenLineComment.String())
	assert.Equal("BlockComment", TokenBlockComment.String())
}
