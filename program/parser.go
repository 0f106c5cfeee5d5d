package program

import (
	"errors"
	"fmt"

	"github.com/sarchlab/wiresim/instr"
)

// ErrSyntax is wrapped by every error returned for a line that matches no
// production.
var ErrSyntax = errors.New("syntax error")

type parser struct {
	tokens []instr.Token
	pos    int
	line   int
}

// ParseTokens turns the tokens of one line into an instruction. The whole
// token slice must match a single production.
func ParseTokens(tokens []instr.Token) (instr.Instruction, error) {
	p := parser{tokens: tokens}
	return p.parseInstruction()
}

// ParseLine tokenizes and parses one line.
func ParseLine(line string) (instr.Instruction, error) {
	return ParseTokens(instr.Tokenize(line))
}

func (p *parser) parseInstruction() (instr.Instruction, error) {
	first, ok := p.next()
	if !ok {
		return nil, fmt.Errorf("%w: empty statement", ErrSyntax)
	}

	var (
		inst instr.Instruction
		err  error
	)

	switch first.Kind {
	case instr.KindConstant:
		inst, err = p.parseAfterConstant(first)
	case instr.KindIdentifier:
		inst, err = p.parseAfterIdentifier(first)
	case instr.KindNot:
		inst, err = p.parseNot()
	default:
		err = p.unexpected(first, "constant, wire or NOT")
	}

	if err != nil {
		return nil, err
	}

	if extra, ok := p.next(); ok {
		return nil, fmt.Errorf("%w: trailing token %s", ErrSyntax, extra)
	}

	return inst, nil
}

// Constant -> d
// Constant (AND|OR) w -> d
func (p *parser) parseAfterConstant(c instr.Token) (instr.Instruction, error) {
	if err := checkConstant(c); err != nil {
		return nil, err
	}

	tok, ok := p.next()
	if !ok {
		return nil, p.eof("-> or gate")
	}

	switch tok.Kind {
	case instr.KindAssign:
		dest, err := p.expectIdentifier()
		if err != nil {
			return nil, err
		}
		return instr.LoadConstant{Dest: dest, Value: c.Value, Line: p.line}, nil
	case instr.KindAnd, instr.KindOr:
		rhs, err := p.expectIdentifier()
		if err != nil {
			return nil, err
		}
		dest, err := p.expectAssignment()
		if err != nil {
			return nil, err
		}
		return instr.BinaryOp{
			Op:   gateOf(tok.Kind),
			Dest: dest,
			LHS:  instr.ConstOperand(c.Value),
			RHS:  instr.WireOperand(rhs),
			Line: p.line,
		}, nil
	default:
		return nil, p.unexpected(tok, "-> or gate")
	}
}

// w -> d
// w (AND|OR) (w|Constant) -> d
// w (LSHIFT|RSHIFT) Constant -> d
func (p *parser) parseAfterIdentifier(w instr.Token) (instr.Instruction, error) {
	tok, ok := p.next()
	if !ok {
		return nil, p.eof("-> or gate")
	}

	switch tok.Kind {
	case instr.KindAssign:
		dest, err := p.expectIdentifier()
		if err != nil {
			return nil, err
		}
		return instr.LoadWire{Dest: dest, Source: w.Text, Line: p.line}, nil
	case instr.KindAnd, instr.KindOr:
		rhs, err := p.parseOperand()
		if err != nil {
			return nil, err
		}
		dest, err := p.expectAssignment()
		if err != nil {
			return nil, err
		}
		return instr.BinaryOp{
			Op:   gateOf(tok.Kind),
			Dest: dest,
			LHS:  instr.WireOperand(w.Text),
			RHS:  rhs,
			Line: p.line,
		}, nil
	case instr.KindLShift, instr.KindRShift:
		amount, err := p.expectConstant()
		if err != nil {
			return nil, err
		}
		dest, err := p.expectAssignment()
		if err != nil {
			return nil, err
		}
		return instr.Shift{
			Op:     gateOf(tok.Kind),
			Dest:   dest,
			Source: w.Text,
			Amount: amount,
			Line:   p.line,
		}, nil
	default:
		return nil, p.unexpected(tok, "-> or gate")
	}
}

// NOT w -> d
func (p *parser) parseNot() (instr.Instruction, error) {
	src, err := p.expectIdentifier()
	if err != nil {
		return nil, err
	}
	dest, err := p.expectAssignment()
	if err != nil {
		return nil, err
	}
	return instr.Not{Dest: dest, Source: src, Line: p.line}, nil
}

func (p *parser) parseOperand() (instr.Operand, error) {
	tok, ok := p.next()
	if !ok {
		return instr.Operand{}, p.eof("wire or constant")
	}

	switch tok.Kind {
	case instr.KindIdentifier:
		return instr.WireOperand(tok.Text), nil
	case instr.KindConstant:
		if err := checkConstant(tok); err != nil {
			return instr.Operand{}, err
		}
		return instr.ConstOperand(tok.Value), nil
	default:
		return instr.Operand{}, p.unexpected(tok, "wire or constant")
	}
}

func (p *parser) expectAssignment() (string, error) {
	tok, ok := p.next()
	if !ok {
		return "", p.eof("->")
	}
	if tok.Kind != instr.KindAssign {
		return "", p.unexpected(tok, "->")
	}
	return p.expectIdentifier()
}

func (p *parser) expectIdentifier() (string, error) {
	tok, ok := p.next()
	if !ok {
		return "", p.eof("wire")
	}
	if tok.Kind != instr.KindIdentifier {
		return "", p.unexpected(tok, "wire")
	}
	return tok.Text, nil
}

func (p *parser) expectConstant() (uint16, error) {
	tok, ok := p.next()
	if !ok {
		return 0, p.eof("constant")
	}
	if tok.Kind != instr.KindConstant {
		return 0, p.unexpected(tok, "constant")
	}
	if err := checkConstant(tok); err != nil {
		return 0, err
	}
	return tok.Value, nil
}

func (p *parser) next() (instr.Token, bool) {
	if p.pos >= len(p.tokens) {
		return instr.Token{}, false
	}
	tok := p.tokens[p.pos]
	p.pos++
	return tok, true
}

func (p *parser) unexpected(tok instr.Token, want string) error {
	return fmt.Errorf("%w: unexpected %s at token %d, want %s",
		ErrSyntax, tok, p.pos, want)
}

func (p *parser) eof(want string) error {
	return fmt.Errorf("%w: unexpected end of line, want %s", ErrSyntax, want)
}

func checkConstant(tok instr.Token) error {
	if !tok.Fits16() {
		return fmt.Errorf("%w: constant %s does not fit in 16 bits",
			ErrSyntax, tok.Text)
	}
	return nil
}

func gateOf(k instr.Kind) instr.Gate {
	switch k {
	case instr.KindAnd:
		return instr.GateAnd
	case instr.KindOr:
		return instr.GateOr
	case instr.KindLShift:
		return instr.GateLShift
	case instr.KindRShift:
		return instr.GateRShift
	case instr.KindNot:
		return instr.GateNot
	default:
		panic(fmt.Sprintf("token %s is not a gate", k))
	}
}
