/*
File    : go-giulio/std/math.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package std

import (
	"fmt"
	"math"
	"math/big"
	"math/rand"

	giuerrors "github.com/akashmaji946/go-giulio/errors"
	"github.com/akashmaji946/go-giulio/objects"
)

// Numeric natives: the pow/abs/min/max builtins and the std::math module
// functions (clamp, random, sqrt, floor, ceil, round).

// bpowFn implements pow(base, exp). Integer exponentiation is exact and
// done in arbitrary precision; a negative exponent is an error; float
// participation falls back to math.Pow.
func bpowFn(args []objects.GiulioObject) (objects.GiulioObject, error) {
	if _, ok := args[0].(*objects.Float); ok {
		return floatPow(args)
	}
	if _, ok := args[1].(*objects.Float); ok {
		return floatPow(args)
	}

	base, ok1 := objects.ToBigInt(args[0])
	exp, ok2 := objects.ToBigInt(args[1])
	if !ok1 || !ok2 {
		return nil, fmt.Errorf("pow() expects numbers, got %s and %s",
			objects.TypeName(args[0]), objects.TypeName(args[1]))
	}
	if exp.Sign() < 0 {
		return nil, fmt.Errorf("pow() exponent must be non-negative, got %s", exp.String())
	}
	if !exp.IsInt64() {
		return nil, fmt.Errorf("pow() exponent %s is too large", exp.String())
	}
	return objects.NormalizeInt(new(big.Int).Exp(base, exp, nil)), nil
}

// floatPow is the float fallback of pow.
func floatPow(args []objects.GiulioObject) (objects.GiulioObject, error) {
	b, rerr := objects.ToFloat(args[0])
	if rerr != nil {
		return nil, fmt.Errorf("%s", rerr.Error())
	}
	e, rerr := objects.ToFloat(args[1])
	if rerr != nil {
		return nil, fmt.Errorf("%s", rerr.Error())
	}
	return &objects.Float{Value: math.Pow(b, e)}, nil
}

// babsFn implements abs(x).
func babsFn(args []objects.GiulioObject) (objects.GiulioObject, error) {
	switch o := args[0].(type) {
	case *objects.Integer:
		if o.Value == math.MinInt64 {
			return &objects.BigInteger{Value: new(big.Int).Abs(big.NewInt(o.Value))}, nil
		}
		if o.Value < 0 {
			return &objects.Integer{Value: -o.Value}, nil
		}
		return o, nil
	case *objects.BigInteger:
		return objects.NormalizeInt(new(big.Int).Abs(o.Value)), nil
	case *objects.Float:
		return &objects.Float{Value: math.Abs(o.Value)}, nil
	default:
		return nil, fmt.Errorf("abs() expects a number, got %s", objects.TypeName(args[0]))
	}
}

// bminFn implements min(a, b) over the numeric promotion lattice.
func bminFn(args []objects.GiulioObject) (objects.GiulioObject, error) {
	return pickByComparison(args, "min", true)
}

// bmaxFn implements max(a, b) over the numeric promotion lattice.
func bmaxFn(args []objects.GiulioObject) (objects.GiulioObject, error) {
	return pickByComparison(args, "max", false)
}

// pickByComparison returns the lesser (wantLess) or greater of two numbers.
func pickByComparison(args []objects.GiulioObject, name string, wantLess bool) (objects.GiulioObject, error) {
	op := "<"
	if !wantLess {
		op = ">"
	}
	result := objects.Compare(op, args[0], args[1])
	if errObj, isErr := result.(*objects.Error); isErr {
		return nil, fmt.Errorf("%s() expects numbers: %s", name, errObj.Err.Error())
	}
	if result == objects.TRUE {
		return args[0], nil
	}
	return args[1], nil
}

// Module natives below report typed runtime errors: they are registered
// as std builtins in the std::math module.

// mathClampFn implements clamp(x, lo, hi).
func mathClampFn(args []objects.GiulioObject) (objects.GiulioObject, *giuerrors.RuntimeError) {
	x, err := objects.ToFloat(args[0])
	if err != nil {
		return nil, err
	}
	lo, err := objects.ToFloat(args[1])
	if err != nil {
		return nil, err
	}
	hi, err := objects.ToFloat(args[2])
	if err != nil {
		return nil, err
	}
	if lo > hi {
		return nil, giuerrors.NewInvalidArguments(fmt.Sprintf("clamp() lower bound %g exceeds upper bound %g", lo, hi))
	}
	return &objects.Float{Value: math.Min(math.Max(x, lo), hi)}, nil
}

// mathRandomFn implements random(), random(hi), and random(lo, hi).
// With no arguments it yields a float in [0, 1); with bounds it yields an
// integer in [lo, hi).
func mathRandomFn(args []objects.GiulioObject) (objects.GiulioObject, *giuerrors.RuntimeError) {
	switch len(args) {
	case 0:
		return &objects.Float{Value: rand.Float64()}, nil
	case 1:
		hi, err := objects.ToInt64(args[0])
		if err != nil {
			return nil, err
		}
		if hi <= 0 {
			return nil, giuerrors.NewInvalidArguments("random() upper bound must be positive")
		}
		return &objects.Integer{Value: rand.Int63n(hi)}, nil
	default:
		lo, err := objects.ToInt64(args[0])
		if err != nil {
			return nil, err
		}
		hi, err := objects.ToInt64(args[1])
		if err != nil {
			return nil, err
		}
		if hi <= lo {
			return nil, giuerrors.NewInvalidArguments("random() upper bound must exceed lower bound")
		}
		return &objects.Integer{Value: lo + rand.Int63n(hi-lo)}, nil
	}
}

// mathSqrtFn implements sqrt(x) for non-negative x.
func mathSqrtFn(args []objects.GiulioObject) (objects.GiulioObject, *giuerrors.RuntimeError) {
	x, err := objects.ToFloat(args[0])
	if err != nil {
		return nil, err
	}
	if x < 0 {
		return nil, giuerrors.NewInvalidArguments("sqrt() expects a non-negative number")
	}
	return &objects.Float{Value: math.Sqrt(x)}, nil
}

// mathFloorFn implements floor(x), returning an integer.
func mathFloorFn(args []objects.GiulioObject) (objects.GiulioObject, *giuerrors.RuntimeError) {
	return roundToInt(args[0], math.Floor)
}

// mathCeilFn implements ceil(x), returning an integer.
func mathCeilFn(args []objects.GiulioObject) (objects.GiulioObject, *giuerrors.RuntimeError) {
	return roundToInt(args[0], math.Ceil)
}

// mathRoundFn implements round(x), returning the nearest integer.
func mathRoundFn(args []objects.GiulioObject) (objects.GiulioObject, *giuerrors.RuntimeError) {
	return roundToInt(args[0], math.Round)
}

// roundToInt applies a float rounding function and renders the result in
// canonical integer form. Integers pass through unchanged.
func roundToInt(arg objects.GiulioObject, round func(float64) float64) (objects.GiulioObject, *giuerrors.RuntimeError) {
	switch arg.(type) {
	case *objects.Integer, *objects.BigInteger:
		return arg, nil
	}
	x, err := objects.ToFloat(arg)
	if err != nil {
		return nil, err
	}
	rounded := round(x)
	b, _ := big.NewFloat(rounded).Int(nil)
	if b == nil {
		return nil, giuerrors.NewInvalidOperation("cannot represent %g as integer", rounded)
	}
	return objects.NormalizeInt(b), nil
}
