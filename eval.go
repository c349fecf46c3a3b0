package bignum

import (
	"fmt"
	"strings"
)

// Eval evaluates an infix expression over integers and returns its value.
// The expression may contain non-negative integer literals, the binary
// operators '+', '-', '*', '/' and '%', unary '+' and '-', parentheses
// and whitespace between tokens:
//
//	-(12 + 3) * 4 % 7
//
// '*', '/' and '%' bind tighter than '+' and '-', and binary operators
// of equal precedence are evaluated from left to right.
// Division and remainder follow [Int.Quo] and [Int.Rem].
//
// Eval returns:
//   - [ErrInvalidFormat] if the expression is malformed;
//   - [ErrDivisionByZero] if a divisor evaluates to 0.
func Eval(expr string) (Int, error) {
	e := evaluator[Int]{
		parse: Parse,
		rem:   Int.Rem,
	}
	return e.evaluate(expr)
}

// EvalRat is like [Eval] but evaluates the expression over rational numbers,
// so "1 / 3 + 1 / 6" is 1/2.
// The remainder operator '%' is not available.
func EvalRat(expr string) (Rat, error) {
	e := evaluator[Rat]{
		parse: ParseRatString,
	}
	return e.evaluate(expr)
}

// operand is the arithmetic an evaluator needs from its values.
type operand[T any] interface {
	Add(T) T
	Sub(T) T
	Mul(T) T
	Quo(T) (T, error)
	Neg() T
}

type evaluator[T operand[T]] struct {
	parse func(string) (T, error)
	rem   func(T, T) (T, error) // nil if '%' is not supported
}

type tokenKind int

const (
	tokenNumber tokenKind = iota
	tokenBinary
	tokenUnary
	tokenLParen
	tokenRParen
)

type token struct {
	kind tokenKind
	text string
	pos  int
}

func (t token) precedence() int {
	switch {
	case t.kind == tokenUnary:
		return 3
	case t.text == "*", t.text == "/", t.text == "%":
		return 2
	default:
		return 1
	}
}

func (e evaluator[T]) evaluate(expr string) (T, error) {
	var zero T
	tokens, err := parseTokens(expr)
	if err != nil {
		return zero, fmt.Errorf("parsing tokens: %w", err)
	}
	postfix, err := toPostfix(tokens)
	if err != nil {
		return zero, fmt.Errorf("ordering tokens: %w", err)
	}
	stack, err := e.processTokens(postfix)
	if err != nil {
		return zero, fmt.Errorf("processing tokens: %w", err)
	}
	if len(stack) != 1 {
		return zero, fmt.Errorf("post-processed stack contains %v item(s), expected exactly one: %w", len(stack), ErrInvalidFormat)
	}
	return stack[0], nil
}

// parseTokens splits expr into numbers, operators and parentheses.
// A '+' or '-' is unary when it starts the expression or follows
// an operator or an opening parenthesis.
func parseTokens(expr string) ([]token, error) {
	var tokens []token
	unary := true
	for pos := 0; pos < len(expr); {
		c := expr[pos]
		switch {
		case c == ' ' || c == '\t' || c == '\r' || c == '\n':
			pos++
			continue
		case c >= '0' && c <= '9':
			end := pos
			for end < len(expr) && expr[end] >= '0' && expr[end] <= '9' {
				end++
			}
			tokens = append(tokens, token{kind: tokenNumber, text: expr[pos:end], pos: pos})
			pos = end
			unary = false
			continue
		case c == '(':
			tokens = append(tokens, token{kind: tokenLParen, text: "(", pos: pos})
			unary = true
		case c == ')':
			tokens = append(tokens, token{kind: tokenRParen, text: ")", pos: pos})
			unary = false
		case unary && (c == '+' || c == '-'):
			tokens = append(tokens, token{kind: tokenUnary, text: string(c), pos: pos})
		case strings.IndexByte("+-*/%", c) >= 0:
			tokens = append(tokens, token{kind: tokenBinary, text: string(c), pos: pos})
			unary = true
		default:
			return nil, fmt.Errorf("invalid character %q at position %v: %w", c, pos, ErrInvalidFormat)
		}
		pos++
	}
	if len(tokens) == 0 {
		return nil, fmt.Errorf("no tokens: %w", ErrInvalidFormat)
	}
	return tokens, nil
}

// toPostfix reorders tokens into postfix notation
// using the shunting-yard algorithm.
func toPostfix(tokens []token) ([]token, error) {
	output := make([]token, 0, len(tokens))
	ops := make([]token, 0, len(tokens))
	for _, t := range tokens {
		switch t.kind {
		case tokenNumber:
			output = append(output, t)
		case tokenUnary, tokenLParen:
			ops = append(ops, t)
		case tokenBinary:
			for len(ops) > 0 {
				top := ops[len(ops)-1]
				if top.kind == tokenLParen || top.precedence() < t.precedence() {
					break
				}
				output = append(output, top)
				ops = ops[:len(ops)-1]
			}
			ops = append(ops, t)
		case tokenRParen:
			for {
				if len(ops) == 0 {
					return nil, fmt.Errorf("unmatched ')' at position %v: %w", t.pos, ErrInvalidFormat)
				}
				top := ops[len(ops)-1]
				ops = ops[:len(ops)-1]
				if top.kind == tokenLParen {
					break
				}
				output = append(output, top)
			}
		}
	}
	for i := len(ops) - 1; i >= 0; i-- {
		if ops[i].kind == tokenLParen {
			return nil, fmt.Errorf("unmatched '(' at position %v: %w", ops[i].pos, ErrInvalidFormat)
		}
		output = append(output, ops[i])
	}
	return output, nil
}

func (e evaluator[T]) processTokens(tokens []token) ([]T, error) {
	stack := make([]T, 0, len(tokens))
	var err error
	for _, t := range tokens {
		switch t.kind {
		case tokenNumber:
			stack, err = e.processOperand(stack, t)
		case tokenUnary:
			stack, err = e.processUnary(stack, t)
		default:
			stack, err = e.processOperator(stack, t)
		}
		if err != nil {
			return nil, fmt.Errorf("processing token %q at position %v: %w", t.text, t.pos, err)
		}
	}
	return stack, nil
}

func (e evaluator[T]) processOperand(stack []T, t token) ([]T, error) {
	x, err := e.parse(t.text)
	if err != nil {
		return nil, err
	}
	return append(stack, x), nil
}

func (e evaluator[T]) processUnary(stack []T, t token) ([]T, error) {
	if len(stack) < 1 {
		return nil, fmt.Errorf("missing operand: %w", ErrInvalidFormat)
	}
	if t.text == "-" {
		stack[len(stack)-1] = stack[len(stack)-1].Neg()
	}
	return stack, nil
}

func (e evaluator[T]) processOperator(stack []T, t token) ([]T, error) {
	if len(stack) < 2 {
		return nil, fmt.Errorf("not enough operands: %w", ErrInvalidFormat)
	}
	left := stack[len(stack)-2]
	right := stack[len(stack)-1]
	stack = stack[:len(stack)-2]
	var result T
	var err error
	switch t.text {
	case "+":
		result = left.Add(right)
	case "-":
		result = left.Sub(right)
	case "*":
		result = left.Mul(right)
	case "/":
		result, err = left.Quo(right)
	case "%":
		if e.rem == nil {
			return nil, fmt.Errorf("operator %q is not supported: %w", t.text, ErrInvalidFormat)
		}
		result, err = e.rem(left, right)
	}
	if err != nil {
		return nil, fmt.Errorf("evaluating \"%v %s %v\": %w", left, t.text, right, err)
	}
	return append(stack, result), nil
}
