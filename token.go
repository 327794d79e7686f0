package jsonc

// TokenKind classifies a span of input produced by the Tokenizer.
type TokenKind uint8

const (
	// TokenOther is any run of bytes that is not a string literal or a
	// comment: whitespace, numbers, punctuation, keywords.
	TokenOther TokenKind = iota
	// TokenString is a double-quoted string literal, quotes included.
	TokenString
	// TokenLineComment is a // comment, up to but not including the line
	// terminator.
	TokenLineComment
	// TokenBlockComment is a /* */ comment, delimiters included.
	TokenBlockComment
)

func (k TokenKind) String() string {
	switch k {
	case TokenOther:
		return "Other"
	case TokenString:
		return "String"
	case TokenLineComment:
		return "LineComment"
	case TokenBlockComment:
		return "BlockComment"
	}
	return "Unknown"
}

// Token is a classified half-open byte range [Start, End) of the input.
type Token struct {
	Kind  TokenKind
	Start int
	End   int
}

// Tokenizer splits input into string literal, comment, and "other" spans in
// a single forward pass. The spans are adjacent and cover the input exactly
// once. Tokenization never fails: unterminated strings and block comments
// extend to the end of the input.
type Tokenizer struct {
	src string
	pos int
}

// NewTokenizer returns a tokenizer over src.
func NewTokenizer(src string) *Tokenizer {
	return &Tokenizer{src: src}
}

// Next returns the next token. The second result is false once the input is
// exhausted.
func (t *Tokenizer) Next() (Token, bool) {
	if t.pos >= len(t.src) {
		return Token{}, false
	}
	start := t.pos
	kind := TokenOther
	switch {
	case t.src[t.pos] == '"':
		kind = TokenString
		t.pos = scanString(t.src, t.pos)
	case startsLineComment(t.src, t.pos):
		kind = TokenLineComment
		t.pos = scanLineComment(t.src, t.pos)
	case startsBlockComment(t.src, t.pos):
		kind = TokenBlockComment
		t.pos = scanBlockComment(t.src, t.pos)
	default:
		t.pos = scanOther(t.src, t.pos)
	}
	return Token{Kind: kind, Start: start, End: t.pos}, true
}

func startsLineComment(src string, i int) bool {
	return i+1 < len(src) && src[i] == '/' && src[i+1] == '/'
}

func startsBlockComment(src string, i int) bool {
	return i+1 < len(src) && src[i] == '/' && src[i+1] == '*'
}

// scanString returns the offset just past the closing quote, or len(src)
// for an unterminated string. A backslash consumes the byte after it, so an
// escaped quote does not close the string.
func scanString(src string, i int) int {
	i++ // opening quote
	for i < len(src) {
		switch src[i] {
		case '\\':
			i += 2
		case '"':
			return i + 1
		default:
			i++
		}
	}
	return len(src)
}

func scanLineComment(src string, i int) int {
	i += 2
	for i < len(src) && src[i] != '\n' && src[i] != '\r' {
		i++
	}
	return i
}

func scanBlockComment(src string, i int) int {
	i += 2
	for i < len(src) {
		if src[i] == '*' && i+1 < len(src) && src[i+1] == '/' {
			return i + 2
		}
		i++
	}
	return len(src)
}

// scanOther consumes bytes up to the next string or comment start.
// Coalescing unclassified bytes keeps the token count proportional to the
// number of strings and comments rather than to the input length.
func scanOther(src string, i int) int {
	i++
	for i < len(src) && src[i] != '"' && !startsLineComment(src, i) && !startsBlockComment(src, i) {
		i++
	}
	return i
}
