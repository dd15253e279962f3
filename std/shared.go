/*
File    : go-giulio/std/shared.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package std implements the native function surface of the Giulio
// language: the builtin functions auto-loaded into every scope, the
// builtin-method dispatch table keyed on (receiver type, method name),
// and the preloaded stdlib modules (std::string, std::math, std::time,
// std::io, std::json, std::http, std::env).
//
// Natives come in two flavors matching the two error channels of the
// runtime: ordinary builtins report free-form string errors that the call
// site wraps into InvalidArguments, while stdlib builtins report typed
// runtime errors directly.
package std

import (
	"fmt"
	"math/big"
	"strconv"
	"strings"

	"github.com/akashmaji946/go-giulio/objects"
)

// btypeFn implements type(x): the type name of a value.
func btypeFn(args []objects.GiulioObject) (objects.GiulioObject, error) {
	return &objects.String{Value: objects.TypeName(args[0])}, nil
}

// blenFn implements len(x) for strings, arrays, and hashes.
func blenFn(args []objects.GiulioObject) (objects.GiulioObject, error) {
	switch o := args[0].(type) {
	case *objects.String:
		return &objects.Integer{Value: int64(len(o.Value))}, nil
	case *objects.Array:
		return &objects.Integer{Value: int64(len(o.Elements))}, nil
	case *objects.Hash:
		return &objects.Integer{Value: int64(o.Len())}, nil
	default:
		return nil, fmt.Errorf("len() expects string, array, or hash, got %s", objects.TypeName(args[0]))
	}
}

// bisEmptyFn implements is_empty(x) for strings, arrays, and hashes.
func bisEmptyFn(args []objects.GiulioObject) (objects.GiulioObject, error) {
	switch o := args[0].(type) {
	case *objects.String:
		return objects.NativeBoolean(len(o.Value) == 0), nil
	case *objects.Array:
		return objects.NativeBoolean(len(o.Elements) == 0), nil
	case *objects.Hash:
		return objects.NativeBoolean(o.Len() == 0), nil
	default:
		return nil, fmt.Errorf("is_empty() expects string, array, or hash, got %s", objects.TypeName(args[0]))
	}
}

// btoStringFn implements to_string(x): the display form of any value.
func btoStringFn(args []objects.GiulioObject) (objects.GiulioObject, error) {
	return &objects.String{Value: args[0].ToString()}, nil
}

// btoIntFn implements to_int(x) for strings, floats, and integers.
func btoIntFn(args []objects.GiulioObject) (objects.GiulioObject, error) {
	switch o := args[0].(type) {
	case *objects.Integer:
		return o, nil
	case *objects.BigInteger:
		return o, nil
	case *objects.String:
		trimmed := strings.TrimSpace(o.Value)
		if n, err := strconv.ParseInt(trimmed, 10, 64); err == nil {
			return &objects.Integer{Value: n}, nil
		}
		if b, ok := new(big.Int).SetString(trimmed, 10); ok {
			return objects.NormalizeInt(b), nil
		}
		return nil, fmt.Errorf("to_int() cannot convert '%s' to integer", o.Value)
	case *objects.Float:
		b, _ := big.NewFloat(o.Value).Int(nil)
		if b == nil {
			return nil, fmt.Errorf("to_int() cannot convert %s to integer (overflow)", o.ToString())
		}
		return objects.NormalizeInt(b), nil
	default:
		return nil, fmt.Errorf("to_int() expects string or float, got %s", objects.TypeName(args[0]))
	}
}

// btoFloatFn implements to_float(x) for strings and numerics.
func btoFloatFn(args []objects.GiulioObject) (objects.GiulioObject, error) {
	switch o := args[0].(type) {
	case *objects.Float:
		return o, nil
	case *objects.Integer, *objects.BigInteger:
		f, rerr := objects.ToFloat(args[0])
		if rerr != nil {
			return nil, fmt.Errorf("%s", rerr.Error())
		}
		return &objects.Float{Value: f}, nil
	case *objects.String:
		f, err := strconv.ParseFloat(strings.TrimSpace(o.Value), 64)
		if err != nil {
			return nil, fmt.Errorf("to_float() cannot convert '%s' to float", o.Value)
		}
		return &objects.Float{Value: f}, nil
	default:
		return nil, fmt.Errorf("to_float() expects string or number, got %s", objects.TypeName(args[0]))
	}
}

// bcontainsFn implements contains(s|arr, x): substring test for strings,
// element membership for arrays.
func bcontainsFn(args []objects.GiulioObject) (objects.GiulioObject, error) {
	switch o := args[0].(type) {
	case *objects.String:
		needle, ok := args[1].(*objects.String)
		if !ok {
			return nil, fmt.Errorf("contains() on a string expects a string, got %s", objects.TypeName(args[1]))
		}
		return objects.NativeBoolean(strings.Contains(o.Value, needle.Value)), nil
	case *objects.Array:
		for _, elem := range o.Elements {
			if objects.Equals(elem, args[1]) {
				return objects.TRUE, nil
			}
		}
		return objects.FALSE, nil
	default:
		return nil, fmt.Errorf("contains() expects string or array, got %s", objects.TypeName(args[0]))
	}
}

// bsliceFn implements slice(s|arr, start[, end]) with end defaulting to
// the length. Bounds are not clamped: out-of-range indices are errors.
func bsliceFn(args []objects.GiulioObject) (objects.GiulioObject, error) {
	start, err := sliceIndex(args[1], "start")
	if err != nil {
		return nil, err
	}

	switch o := args[0].(type) {
	case *objects.String:
		end := int64(len(o.Value))
		if len(args) == 3 {
			if end, err = sliceIndex(args[2], "end"); err != nil {
				return nil, err
			}
		}
		if start < 0 || end > int64(len(o.Value)) || start > end {
			return nil, fmt.Errorf("slice() range %d..%d out of bounds (length %d)", start, end, len(o.Value))
		}
		return &objects.String{Value: o.Value[start:end]}, nil
	case *objects.Array:
		end := int64(len(o.Elements))
		if len(args) == 3 {
			if end, err = sliceIndex(args[2], "end"); err != nil {
				return nil, err
			}
		}
		if start < 0 || end > int64(len(o.Elements)) || start > end {
			return nil, fmt.Errorf("slice() range %d..%d out of bounds (length %d)", start, end, len(o.Elements))
		}
		elems := make([]objects.GiulioObject, end-start)
		copy(elems, o.Elements[start:end])
		return &objects.Array{Elements: elems}, nil
	default:
		return nil, fmt.Errorf("slice() expects string or array, got %s", objects.TypeName(args[0]))
	}
}

// sliceIndex extracts an i64 slice bound from an argument.
func sliceIndex(arg objects.GiulioObject, what string) (int64, error) {
	n, rerr := objects.ToInt64(arg)
	if rerr != nil {
		return 0, fmt.Errorf("slice() %s must be an integer, got %s", what, objects.TypeName(arg))
	}
	return n, nil
}
