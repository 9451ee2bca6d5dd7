package configload

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/warp/valuecalc/calc"
	"github.com/warp/valuecalc/value"
)

// CalculationSetJSON is the JSON representation of a namespaced group of
// declarative calculations.
type CalculationSetJSON struct {
	Namespace    string            `json:"namespace"`
	Calculations []CalculationJSON `json:"calculations"`
}

// CalculationJSON is a single declarative calculation: an operator applied,
// positionally, to its dependencies.
type CalculationJSON struct {
	Name         string   `json:"name"`
	Op           string   `json:"op"`
	Dependencies []string `json:"dependencies"`
}

var binaryOps = map[string]func(context.Context, value.Value, value.Value) (value.Value, error){
	"add":      value.Add,
	"subtract": value.Subtract,
	"multiply": value.Multiply,
	"divide":   value.Divide,
	"power":    value.Power,
}

var unaryOps = map[string]func(context.Context, value.Value) (value.Value, error){
	"negate":   value.Negate,
	"absolute": value.Absolute,
}

// ParseCalculationSet parses jsonStr and registers every calculation it
// describes against reg, returning the fully-qualified names registered.
func ParseCalculationSet(reg *calc.Registry, jsonStr string) ([]string, error) {
	var set CalculationSetJSON
	if err := json.Unmarshal([]byte(jsonStr), &set); err != nil {
		return nil, fmt.Errorf("configload: failed to parse calculation set JSON: %w", err)
	}
	return LoadCalculationSet(reg, set)
}

// LoadCalculationSet registers every calculation in set against reg under
// set.Namespace, wiring each declarative op to the matching value package
// arithmetic function. It is a calc.Registry loader suitable for
// calc.Load.
func LoadCalculationSet(reg *calc.Registry, set CalculationSetJSON) ([]string, error) {
	collection := reg.Namespace(set.Namespace)
	names := make([]string, 0, len(set.Calculations))
	for _, c := range set.Calculations {
		fn, err := buildFunc(c)
		if err != nil {
			return nil, err
		}
		if err := collection.Register(c.Name, c.Dependencies, fn); err != nil {
			return nil, err
		}
		names = append(names, qualifiedName(set.Namespace, c.Name))
	}
	return names, nil
}

func buildFunc(c CalculationJSON) (calc.Func, error) {
	if fn, ok := binaryOps[c.Op]; ok {
		if len(c.Dependencies) != 2 {
			return nil, &ArityMismatchError{Name: c.Name, Op: c.Op, Want: 2, Got: len(c.Dependencies)}
		}
		return func(ctx context.Context, args ...value.Value) (value.Value, error) {
			return fn(ctx, args[0], args[1])
		}, nil
	}
	if fn, ok := unaryOps[c.Op]; ok {
		if len(c.Dependencies) != 1 {
			return nil, &ArityMismatchError{Name: c.Name, Op: c.Op, Want: 1, Got: len(c.Dependencies)}
		}
		return func(ctx context.Context, args ...value.Value) (value.Value, error) {
			return fn(ctx, args[0])
		}, nil
	}
	return nil, &UnknownOpError{Value: c.Op}
}

func qualifiedName(namespace, localName string) string {
	if namespace == "" {
		return localName
	}
	return namespace + "." + localName
}
