package engine

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/expr-lang/expr"

	"quickcalc/internal/logger"
)

// Evaluation failure reasons. The UI collapses all of them into a
// single transient error message; the distinct sentinels exist for
// logging and tests.
var (
	ErrUnbalanced      = errors.New("unbalanced parentheses")
	ErrDoubledOperator = errors.New("doubled operator")
	ErrNotFinite       = errors.New("result is not a finite number")
	ErrOutOfRange      = errors.New("result out of representable range")
	ErrMalformed       = errors.New("malformed expression")
)

// Service evaluates accumulated expression strings. Parsing and
// arithmetic are fully delegated to the expr library; the service only
// performs structural pre-checks and result validation around the call.
type Service struct {
	log logger.Logger
}

// NewService creates an evaluation service.
func NewService(log logger.Logger) *Service {
	return &Service{log: log}
}

// Evaluate runs the expression and returns its numeric value. The
// expression is expected as space-separated tokens, the form the
// accumulator builds.
func (s *Service) Evaluate(expression string) (float64, error) {
	if err := CheckBalance(expression); err != nil {
		return 0, err
	}
	if err := CheckOperators(expression); err != nil {
		return 0, err
	}

	out, err := expr.Eval(decimalize(expression), nil)
	if err != nil {
		s.log.Debug("engine", "evaluator rejected expression", map[string]interface{}{
			"expression": expression,
			"reason":     err.Error(),
		})
		return 0, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	value, err := toFloat(out)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return 0, ErrNotFinite
	}
	if math.Abs(value) >= 1e308 {
		return 0, ErrOutOfRange
	}
	return value, nil
}

// CheckBalance verifies parentheses open and close in order.
func CheckBalance(expression string) error {
	depth := 0
	for _, r := range expression {
		switch r {
		case '(':
			depth++
		case ')':
			depth--
			if depth < 0 {
				return ErrUnbalanced
			}
		}
	}
	if depth != 0 {
		return ErrUnbalanced
	}
	return nil
}

// CheckOperators rejects two adjacent binary operator tokens. The scan
// is token-based so a negated numeral like "-3" is not mistaken for a
// stray minus.
func CheckOperators(expression string) error {
	prevOp := false
	for _, token := range strings.Fields(expression) {
		op := isOperatorToken(token)
		if op && prevOp {
			return ErrDoubledOperator
		}
		prevOp = op
	}
	return nil
}

func isOperatorToken(token string) bool {
	switch token {
	case "+", "-", "*", "/":
		return true
	}
	return false
}

// decimalize rewrites integer numeral tokens as decimals so the
// evaluator applies decimal division throughout. expr truncates
// int/int division, which is never what a calculator key sequence
// means.
func decimalize(expression string) string {
	tokens := strings.Fields(expression)
	for i, token := range tokens {
		if !isNumeral(token) {
			continue
		}
		switch {
		case strings.HasSuffix(token, "."):
			tokens[i] = token + "0"
		case !strings.Contains(token, "."):
			tokens[i] = token + ".0"
		}
	}
	return strings.Join(tokens, " ")
}

func isNumeral(token string) bool {
	body := strings.TrimPrefix(token, "-")
	if body == "" {
		return false
	}
	dots := 0
	for _, r := range body {
		switch {
		case r >= '0' && r <= '9':
		case r == '.':
			dots++
			if dots > 1 {
				return false
			}
		default:
			return false
		}
	}
	return body != "."
}

func toFloat(out interface{}) (float64, error) {
	switch v := out.(type) {
	case float64:
		return v, nil
	case float32:
		return float64(v), nil
	case int:
		return float64(v), nil
	case int64:
		return float64(v), nil
	case uint64:
		return float64(v), nil
	default:
		return 0, fmt.Errorf("%w: non-numeric result %T", ErrMalformed, out)
	}
}
