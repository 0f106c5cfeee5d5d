package instr

import (
	"fmt"
	"iter"
	"strconv"
	"strings"
)

// Kind identifies the lexical class of a token.
type Kind int

const (
	KindAssign Kind = iota
	KindAnd
	KindOr
	KindLShift
	KindRShift
	KindNot
	KindConstant
	KindIdentifier
)

func (k Kind) String() string {
	switch k {
	case KindAssign:
		return "Assign"
	case KindAnd:
		return "And"
	case KindOr:
		return "Or"
	case KindLShift:
		return "LShift"
	case KindRShift:
		return "RShift"
	case KindNot:
		return "Not"
	case KindConstant:
		return "Constant"
	case KindIdentifier:
		return "Identifier"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

var keywords = map[string]Kind{
	"->":     KindAssign,
	"AND":    KindAnd,
	"OR":     KindOr,
	"LSHIFT": KindLShift,
	"RSHIFT": KindRShift,
	"NOT":    KindNot,
}

// Token is one classified fragment of a program line.
type Token struct {
	Kind Kind
	// Text is the fragment as it appeared in the line.
	Text string
	// Value is the 16-bit value of a Constant token.
	Value uint16
}

// Fits16 reports whether a Constant token's digits fit in 16 bits. Longer
// digit runs still tokenize, Value then only holds the low 16 bits.
func (t Token) Fits16() bool {
	if t.Kind != KindConstant {
		return false
	}
	_, err := strconv.ParseUint(t.Text, 10, 16)
	return err == nil
}

func (t Token) String() string {
	switch t.Kind {
	case KindConstant:
		return fmt.Sprintf("Constant(%s)", t.Text)
	case KindIdentifier:
		return fmt.Sprintf("Identifier(%s)", t.Text)
	default:
		return t.Kind.String()
	}
}

// Classify maps a single whitespace-free fragment to a token. Every fragment
// maps to exactly one token.
func Classify(fragment string) Token {
	if k, ok := keywords[fragment]; ok {
		return Token{Kind: k, Text: fragment}
	}

	if isDigits(fragment) {
		v, err := strconv.ParseUint(fragment, 10, 64)
		if err != nil {
			// More digits than a uint64 holds; keep the low 16 bits.
			v = lowBits(fragment)
		}
		return Token{Kind: KindConstant, Text: fragment, Value: uint16(v)}
	}

	return Token{Kind: KindIdentifier, Text: fragment}
}

// Tokens lazily splits a line on runs of whitespace and yields one token per
// fragment. The sequence can be ranged over again to restart it.
func Tokens(line string) iter.Seq[Token] {
	return func(yield func(Token) bool) {
		for f := range strings.FieldsSeq(line) {
			if !yield(Classify(f)) {
				return
			}
		}
	}
}

// Tokenize returns all tokens of a line.
func Tokenize(line string) []Token {
	var tokens []Token
	for t := range Tokens(line) {
		tokens = append(tokens, t)
	}
	return tokens
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

func lowBits(digits string) uint64 {
	var v uint64
	for i := 0; i < len(digits); i++ {
		v = (v*10 + uint64(digits[i]-'0')) & 0xFFFF
	}
	return v
}
