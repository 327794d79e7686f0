// Package jsonc converts JSON with Comments into valid JSON by removing
// line comments, block comments, and trailing commas. It tokenizes the
// input instead of parsing it, so conversion is a single forward pass and
// never fails; malformed input is passed through best-effort, with only the
// comment and trailing-comma parts removed.
package jsonc

import "strings"

// Convert returns src with all comments and trailing commas removed.
// Everything else, including comment-like sequences inside string literals,
// is preserved byte-for-byte. If nothing is removed, the result is a
// substring of src and no buffer is allocated.
func Convert(src string) string {
	it := NewIter(src)

	first, ok := it.Next()
	if !ok {
		return ""
	}
	second, ok := it.Next()
	if !ok {
		return first
	}

	var b strings.Builder
	b.Grow(len(src))
	b.WriteString(first)
	b.WriteString(second)
	for {
		piece, ok := it.Next()
		if !ok {
			return b.String()
		}
		b.WriteString(piece)
	}
}

// AppendConvert appends the converted JSON to dst and returns the extended
// buffer, like the append-style functions in strconv. It never clears dst,
// so multiple conversions can be batched into one buffer.
func AppendConvert(dst []byte, src string) []byte {
	it := NewIter(src)
	for {
		piece, ok := it.Next()
		if !ok {
			return dst
		}
		dst = append(dst, piece...)
	}
}

// Iter yields successive substrings of the input whose in-order
// concatenation equals Convert of the same input. The pieces are views into
// the input, so iterating allocates nothing. Each piece is a maximal run of
// surviving bytes: adjacent retained spans with no removed content between
// them are merged.
type Iter struct {
	src string
	tok Tokenizer

	// unscanned remainder of the current Other token
	otherPos int
	otherEnd int
	hasOther bool

	// retained span read ahead of the piece being merged
	pending    span
	hasPending bool
}

type span struct {
	start, end int
}

// NewIter returns an iterator over the converted form of src. Iteration is
// forward-only and not restartable.
func NewIter(src string) *Iter {
	return &Iter{src: src, tok: Tokenizer{src: src}}
}

// Next returns the next piece of converted JSON. After the input is
// exhausted it keeps returning ("", false).
func (it *Iter) Next() (string, bool) {
	var cur span
	if it.hasPending {
		cur = it.pending
		it.hasPending = false
	} else {
		var ok bool
		cur, ok = it.nextSpan()
		if !ok {
			return "", false
		}
	}

	for {
		next, ok := it.nextSpan()
		if !ok {
			break
		}
		if next.start == cur.end {
			cur.end = next.end
			continue
		}
		it.pending = next
		it.hasPending = true
		break
	}

	return it.src[cur.start:cur.end], true
}

// nextSpan returns the next retained byte range: a whole string literal, or
// a run of Other bytes between suppressed commas. Comments yield nothing.
func (it *Iter) nextSpan() (span, bool) {
	for {
		if it.hasOther {
			s := it.otherPos
			for s < it.otherEnd && isTrailingComma(it.src, s) {
				s++
			}
			e := s
			for e < it.otherEnd && !isTrailingComma(it.src, e) {
				e++
			}
			it.otherPos = e
			if e == it.otherEnd {
				it.hasOther = false
			}
			if e > s {
				return span{start: s, end: e}, true
			}
			continue
		}

		t, ok := it.tok.Next()
		if !ok {
			return span{}, false
		}
		switch t.Kind {
		case TokenString:
			return span{start: t.Start, end: t.End}, true
		case TokenLineComment, TokenBlockComment:
			// removed
		default:
			it.hasOther = true
			it.otherPos = t.Start
			it.otherEnd = t.End
		}
	}
}

// isTrailingComma reports whether the byte at i is a comma followed, after
// any whitespace and any comments, by another comma, a closing bracket or
// brace, or the end of the input. Comments are skipped by span, so a closer
// appearing inside a comment's text is never mistaken for a real closer.
// Commas followed only by other trailing commas count as trailing
// themselves, which makes runs like ",,," collapse entirely.
//
// The lookahead is a pure function of (src, i); it shares no cursor with
// the main token walk.
func isTrailingComma(src string, i int) bool {
	if src[i] != ',' {
		return false
	}
	j := i + 1
	for j < len(src) {
		switch {
		case src[j] == ' ' || src[j] == '\t' || src[j] == '\r' || src[j] == '\n':
			j++
		case startsLineComment(src, j):
			j = scanLineComment(src, j)
		case startsBlockComment(src, j):
			j = scanBlockComment(src, j)
		default:
			return src[j] == ',' || src[j] == ']' || src[j] == '}'
		}
	}
	return true
}
