package lexer

import (
	"fmt"

	"github.com/lynx-lang/lynx/pkg/compiler/source"
)

// Kind identifies the lexical class of a token.
type Kind uint8

const (
	KindEOF Kind = iota

	// Single-character punctuation.
	KindLeftParen
	KindRightParen
	KindLeftBrace
	KindRightBrace
	KindColon
	KindComma
	KindDot
	KindMinus
	KindPlus
	KindSemicolon
	KindSlash
	KindStar

	// One- or two-character operators. The two-character forms are greedy:
	// a trailing '=' is consumed rather than emitted as its own token.
	KindBang
	KindBangEqual
	KindEqual
	KindEqualEqual
	KindGreater
	KindGreaterEqual
	KindLess
	KindLessEqual

	// Literals.
	KindIdentifier
	KindString
	KindInteger
	KindFloat

	// Keywords.
	KindAnd
	KindBoolType
	KindClass
	KindElse
	KindFalse
	KindFloatType
	KindFor
	KindFun
	KindIf
	KindIntType
	KindNil
	KindOr
	KindPrint
	KindReturn
	KindStringType
	KindSuper
	KindThis
	KindTrue
	KindVal
	KindVar
	KindWhile
)

// keywords maps reserved words to their token kinds. Matching is by exact
// lowercase text and takes priority over identifier classification. The map
// is never mutated after package initialization.
var keywords = map[string]Kind{
	"and":    KindAnd,
	"bool":   KindBoolType,
	"class":  KindClass,
	"else":   KindElse,
	"false":  KindFalse,
	"float":  KindFloatType,
	"for":    KindFor,
	"fun":    KindFun,
	"if":     KindIf,
	"int":    KindIntType,
	"nil":    KindNil,
	"or":     KindOr,
	"print":  KindPrint,
	"return": KindReturn,
	"string": KindStringType,
	"super":  KindSuper,
	"this":   KindThis,
	"true":   KindTrue,
	"val":    KindVal,
	"var":    KindVar,
	"while":  KindWhile,
}

var kindNames = [...]string{
	KindEOF:          "EOF",
	KindLeftParen:    "(",
	KindRightParen:   ")",
	KindLeftBrace:    "{",
	KindRightBrace:   "}",
	KindColon:        ":",
	KindComma:        ",",
	KindDot:          ".",
	KindMinus:        "-",
	KindPlus:         "+",
	KindSemicolon:    ";",
	KindSlash:        "/",
	KindStar:         "*",
	KindBang:         "!",
	KindBangEqual:    "!=",
	KindEqual:        "=",
	KindEqualEqual:   "==",
	KindGreater:      ">",
	KindGreaterEqual: ">=",
	KindLess:         "<",
	KindLessEqual:    "<=",
	KindIdentifier:   "identifier",
	KindString:       "string",
	KindInteger:      "integer",
	KindFloat:        "float",
	KindAnd:          "and",
	KindBoolType:     "bool",
	KindClass:        "class",
	KindElse:         "else",
	KindFalse:        "false",
	KindFloatType:    "float_type",
	KindFor:          "for",
	KindFun:          "fun",
	KindIf:           "if",
	KindIntType:      "int_type",
	KindNil:          "nil",
	KindOr:           "or",
	KindPrint:        "print",
	KindReturn:       "return",
	KindStringType:   "string_type",
	KindSuper:        "super",
	KindThis:         "this",
	KindTrue:         "true",
	KindVal:          "val",
	KindVar:          "var",
	KindWhile:        "while",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) && kindNames[k] != "" {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// IsKeyword reports whether k is one of the reserved words.
func (k Kind) IsKeyword() bool {
	return k >= KindAnd && k <= KindWhile
}

// IsLiteral reports whether k carries a literal payload.
func (k Kind) IsLiteral() bool {
	return k >= KindIdentifier && k <= KindFloat
}

// Token is a classified lexeme pointing back to the source via its span.
// Tokens are immutable once created.
type Token struct {
	Kind Kind
	Span source.Span

	// Text carries the identifier name or the raw string contents (escape
	// sequences are not processed). Int and Float carry the parsed value for
	// numeric literals. Only the field matching Kind is meaningful.
	Text  string
	Int   int64
	Float float64
}

func (t Token) String() string {
	switch t.Kind {
	case KindIdentifier:
		return fmt.Sprintf("identifier(%s)", t.Text)
	case KindString:
		return fmt.Sprintf("string(%q)", t.Text)
	case KindInteger:
		return fmt.Sprintf("integer(%d)", t.Int)
	case KindFloat:
		return fmt.Sprintf("float(%v)", t.Float)
	}
	return t.Kind.String()
}
