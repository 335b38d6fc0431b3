package toolserver

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"unicode/utf8"

	"github.com/dop251/goja"
	"golang.org/x/text/unicode/norm"
)

// calculatorAllowed lists the only characters an expression may contain.
const calculatorAllowed = "0123456789+-*/()%. "

// CalculatorArgs are the arguments of the calculator tool.
type CalculatorArgs struct {
	Expression string `json:"expression" jsonschema:"The math expression to evaluate, e.g. '2 * (3 + 4)'"`
}

// Calculator evaluates an arithmetic expression with Python's grammar and
// operator semantics (// floors, % takes the divisor's sign, ** binds tighter
// than unary minus) and returns a float64.
// Invalid input is reported as an "Error..." string result rather than an
// error, so callers always get an answer they can show.
func Calculator(ctx context.Context, args CalculatorArgs) (any, error) {
	expr := args.Expression
	for _, c := range expr {
		if !strings.ContainsRune(calculatorAllowed, c) {
			return "Error: expression contains characters that are not allowed", nil
		}
	}
	if strings.TrimSpace(expr) == "" {
		return "Error: empty expression", nil
	}

	v, err := evaluate(ctx, expr)
	if err != nil {
		return fmt.Sprintf("Error evaluating: %v", err), nil
	}
	return v, nil
}

var errNotFinite = errors.New("result is not a finite number")

func evaluate(ctx context.Context, expr string) (float64, error) {
	program, err := translate(expr)
	if err != nil {
		return 0, err
	}

	vm := goja.New()
	for name, fn := range map[string]func(a, b float64) (float64, error){
		"__div":      pyDiv,
		"__floordiv": pyFloorDiv,
		"__mod":      pyMod,
	} {
		if err := vm.Set(name, fn); err != nil {
			return 0, err
		}
	}

	stop := context.AfterFunc(ctx, func() {
		vm.Interrupt(ctx.Err())
	})
	defer stop()

	v, err := vm.RunString(program)
	if err != nil {
		return 0, err
	}
	if v == nil || goja.IsUndefined(v) || goja.IsNull(v) {
		return 0, errNotFinite
	}

	f := v.ToFloat()
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return 0, errNotFinite
	}
	return f, nil
}

// TextAnalyzerArgs are the arguments of the text_analyzer tool.
type TextAnalyzerArgs struct {
	Text string `json:"text" jsonschema:"The text to analyze"`
}

// TextAnalyzer returns word and character statistics for a text.
// Characters are counted as runes after NFC normalization, so a precomposed
// and a decomposed "á" count the same.
func TextAnalyzer(_ context.Context, args TextAnalyzerArgs) (any, error) {
	text := norm.NFC.String(args.Text)
	words := strings.Fields(text)

	letters := 0
	for _, w := range words {
		letters += utf8.RuneCountInString(strings.TrimFunc(w, isPunct))
	}

	avg := 0.0
	if len(words) > 0 {
		avg = math.Round(float64(letters)/float64(len(words))*100) / 100
	}

	return map[string]any{
		"word_count":      len(words),
		"char_count":      utf8.RuneCountInString(text),
		"sentence_count":  countSentences(text),
		"avg_word_length": avg,
	}, nil
}

func isPunct(r rune) bool {
	return strings.ContainsRune(".,;:!?\"'()[]{}", r)
}

// countSentences counts runs of terminal punctuation, so "Wait..." is one
// sentence.
func countSentences(text string) int {
	n := 0
	inRun := false
	for _, r := range text {
		if r == '.' || r == '!' || r == '?' {
			if !inRun {
				n++
			}
			inRun = true
			continue
		}
		inRun = false
	}
	return n
}

// ArithmeticArgs are the arguments of the arithmetic tool.
type ArithmeticArgs struct {
	Operation string  `json:"operation" jsonschema:"One of add, subtract, multiply, divide"`
	A         float64 `json:"a" jsonschema:"First operand"`
	B         float64 `json:"b" jsonschema:"Second operand"`
}

// Arithmetic applies a binary operation to two numbers. Unlike Calculator it
// fails with an error, which POST /execute turns into a 500.
func Arithmetic(_ context.Context, args ArithmeticArgs) (any, error) {
	switch strings.ToLower(args.Operation) {
	case "add":
		return args.A + args.B, nil
	case "subtract":
		return args.A - args.B, nil
	case "multiply":
		return args.A * args.B, nil
	case "divide":
		if args.B == 0 {
			return nil, ErrDivisionByZero
		}
		return args.A / args.B, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownOperation, args.Operation)
	}
}

// Builtin returns the calculator, text_analyzer and arithmetic tools.
func Builtin() []Tool {
	return []Tool{
		MustTool("calculator",
			"Evaluates a math expression. Supports +, -, *, /, //, %, ** and parentheses.",
			Calculator),
		MustTool("text_analyzer",
			"Analyzes a text and returns basic statistics such as word and character counts.",
			TextAnalyzer),
		MustTool("arithmetic",
			"Applies add, subtract, multiply or divide to two numbers.",
			Arithmetic),
	}
}

// DefaultRegistry returns a registry holding the builtin tools.
func DefaultRegistry() *Registry {
	return NewRegistry(Builtin()...)
}
