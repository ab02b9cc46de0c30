package lexer

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/lynx-lang/lynx/pkg/compiler/source"
	"github.com/lynx-lang/lynx/pkg/diagnostics"
)

// ErrScanFailed is the aggregate failure returned by Scan after a pass that
// reported at least one lexical error. The per-error diagnostics have
// already been delivered to the reporter by the time Scan returns.
var ErrScanFailed = errors.New("scanning failed")

// Scan tokenizes src, reporting lexical errors to r. The returned slice is
// always terminated by exactly one EOF token. Scanning does not stop at the
// first error: every well-formed token found before or after an error is
// preserved, and the pass fails only in aggregate.
func Scan(src string, r *diagnostics.Reporter) ([]Token, error) {
	s := &scanner{src: src, cursor: NewCursor(src), reporter: r}
	return s.scan()
}

type scanner struct {
	src      string
	cursor   *Cursor
	reporter *diagnostics.Reporter
	start    int // offset where the current token began
	errs     int // lexical errors reported during this pass
}

func (s *scanner) scan() ([]Token, error) {
	var tokens []Token

	for !s.cursor.Exhausted() {
		tok, ok, err := s.next()
		if err != nil {
			return tokens, err
		}
		if ok {
			tokens = append(tokens, tok)
		}
	}

	tokens = append(tokens, Token{Kind: KindEOF, Span: source.Span{Offset: s.cursor.Pos()}})

	if s.errs > 0 {
		return tokens, fmt.Errorf("%w: %d lexical error(s)", ErrScanFailed, s.errs)
	}
	return tokens, nil
}

// next consumes one token's worth of input. The boolean is false when the
// consumed characters produce no token (whitespace, comments, errors). A
// non-nil error means the cursor yielded no character while input remained,
// which is a scanner bug rather than bad input.
func (s *scanner) next() (Token, bool, error) {
	s.start = s.cursor.Pos()

	ch, ok := s.cursor.Next()
	if !ok {
		return Token{}, false, fmt.Errorf("scanner could not read next character at position %d", s.start)
	}

	switch ch {
	case '(':
		return s.emit(KindLeftParen)
	case ')':
		return s.emit(KindRightParen)
	case '{':
		return s.emit(KindLeftBrace)
	case '}':
		return s.emit(KindRightBrace)
	case ':':
		return s.emit(KindColon)
	case ',':
		return s.emit(KindComma)
	case '.':
		return s.emit(KindDot)
	case '-':
		return s.emit(KindMinus)
	case '+':
		return s.emit(KindPlus)
	case ';':
		return s.emit(KindSemicolon)
	case '*':
		return s.emit(KindStar)

	case '/':
		cur, ok := s.cursor.Current()
		switch {
		case ok && cur == '/':
			s.lineComment()
			return Token{}, false, nil
		case ok && cur == '*':
			s.cursor.Next()
			s.blockComment()
			return Token{}, false, nil
		default:
			return s.emit(KindSlash)
		}

	case '!':
		if s.cursor.Match('=') {
			return s.emit(KindBangEqual)
		}
		return s.emit(KindBang)
	case '=':
		if s.cursor.Match('=') {
			return s.emit(KindEqualEqual)
		}
		return s.emit(KindEqual)
	case '>':
		if s.cursor.Match('=') {
			return s.emit(KindGreaterEqual)
		}
		return s.emit(KindGreater)
	case '<':
		if s.cursor.Match('=') {
			return s.emit(KindLessEqual)
		}
		return s.emit(KindLess)

	case ' ', '\r', '\t', '\n':
		return Token{}, false, nil

	case '"':
		return s.scanString()

	default:
		if isDigit(ch) {
			return s.scanNumber()
		}
		if isIdentStart(ch) {
			return s.scanIdentifier()
		}
		s.report(fmt.Sprintf("Unexpected character '%c'.", ch))
		return Token{}, false, nil
	}
}

// lineComment discards characters through the end of the line.
func (s *scanner) lineComment() {
	for {
		ch, ok := s.cursor.Next()
		if !ok {
			s.cursor.Revert()
			return
		}
		if ch == '\n' {
			return
		}
	}
}

// blockComment discards characters through the closing "*/". The first "*/"
// closes the comment; nesting is not tracked.
func (s *scanner) blockComment() {
	for {
		ch, ok := s.cursor.Next()
		if !ok {
			s.cursor.Revert()
			s.report("Unterminated multiline comment.")
			return
		}
		if ch != '*' {
			continue
		}
		if cur, ok := s.cursor.Current(); ok && cur == '/' {
			s.cursor.Next()
			return
		}
	}
}

// scanString consumes characters verbatim until the closing quote. Escape
// sequences are not processed and embedded newlines are literal content.
func (s *scanner) scanString() (Token, bool, error) {
	var sb strings.Builder
	for {
		ch, ok := s.cursor.Next()
		if !ok {
			s.cursor.Revert()
			s.report("Unterminated string.")
			return Token{}, false, nil
		}
		if ch == '"' {
			return Token{Kind: KindString, Span: s.span(), Text: sb.String()}, true, nil
		}
		sb.WriteByte(ch)
	}
}

func (s *scanner) scanNumber() (Token, bool, error) {
	s.digits()

	isFloat := s.fractionAhead()
	if isFloat {
		s.cursor.Next() // the '.'
		s.digits()
	}

	text := s.lexeme()
	if isFloat {
		v, err := strconv.ParseFloat(text, 64)
		if err != nil {
			s.report("Cannot parse float " + text)
			return Token{}, false, nil
		}
		return Token{Kind: KindFloat, Span: s.span(), Float: v}, true, nil
	}

	v, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		s.report("Cannot parse integer " + text)
		return Token{}, false, nil
	}
	return Token{Kind: KindInteger, Span: s.span(), Int: v}, true, nil
}

// digits consumes a maximal run of ASCII digits.
func (s *scanner) digits() {
	for {
		ch, ok := s.cursor.Current()
		if !ok || !isDigit(ch) {
			return
		}
		s.cursor.Next()
	}
}

// fractionAhead reports whether the cursor sits on a decimal point followed
// by at least one digit. A trailing '.' with no fractional part belongs to
// the next token, not to the number.
func (s *scanner) fractionAhead() bool {
	dot, ok := s.cursor.Current()
	digit, ok2 := s.cursor.Peek(1)
	return ok && ok2 && dot == '.' && isDigit(digit)
}

func (s *scanner) scanIdentifier() (Token, bool, error) {
	for {
		ch, ok := s.cursor.Current()
		if !ok || !isIdentPart(ch) {
			break
		}
		s.cursor.Next()
	}

	text := s.lexeme()
	if kind, ok := keywords[text]; ok {
		return Token{Kind: kind, Span: s.span()}, true, nil
	}
	return Token{Kind: KindIdentifier, Span: s.span(), Text: text}, true, nil
}

func (s *scanner) emit(kind Kind) (Token, bool, error) {
	return Token{Kind: kind, Span: s.span()}, true, nil
}

func (s *scanner) span() source.Span {
	return source.Span{Offset: s.start, Length: s.cursor.Pos() - s.start}
}

func (s *scanner) lexeme() string {
	return s.src[s.start:s.cursor.Pos()]
}

func (s *scanner) report(msg string) {
	s.reporter.Report(msg, s.span())
	s.errs++
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

func isIdentStart(ch byte) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z') || ch == '_'
}

func isIdentPart(ch byte) bool {
	return isIdentStart(ch) || isDigit(ch)
}
