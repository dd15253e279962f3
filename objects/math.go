/*
File    : go-giulio/objects/math.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Arithmetic and comparison over Giulio numeric objects.
//
// All binary numeric operators follow the same promotion lattice: if either
// operand is a Float, both are coerced to Float and the operation is done in
// f64; otherwise both operands must be integers (Integer or BigInteger),
// the operation is done in arbitrary precision, and the result is
// renormalized (Integer when it fits an i64, BigInteger otherwise). Integer
// overflow therefore promotes instead of wrapping.
package objects

import (
	"math"
	"math/big"

	giuerrors "github.com/akashmaji946/go-giulio/errors"
)

// ToBool extracts the native bool from a Boolean object. There is no
// implicit truthiness: any other type is a type mismatch.
func ToBool(obj GiulioObject) (bool, *giuerrors.RuntimeError) {
	if b, ok := obj.(*Boolean); ok {
		return b.Value, nil
	}
	return false, giuerrors.NewTypeMismatch("boolean", TypeName(obj))
}

// ToInt64 extracts a native i64 from an integer object. BigIntegers that do
// not fit report InvalidOperation.
func ToInt64(obj GiulioObject) (int64, *giuerrors.RuntimeError) {
	switch o := obj.(type) {
	case *Integer:
		return o.Value, nil
	case *BigInteger:
		if o.Value.IsInt64() {
			return o.Value.Int64(), nil
		}
		return 0, giuerrors.NewInvalidOperation("Integer too large to convert to i64")
	default:
		return 0, giuerrors.NewTypeMismatch("integer", TypeName(obj))
	}
}

// ToFloat coerces a numeric object to f64.
func ToFloat(obj GiulioObject) (float64, *giuerrors.RuntimeError) {
	switch o := obj.(type) {
	case *Float:
		return o.Value, nil
	case *Integer:
		return float64(o.Value), nil
	case *BigInteger:
		f, _ := new(big.Float).SetInt(o.Value).Float64()
		if math.IsInf(f, 0) {
			return 0, giuerrors.NewInvalidOperation("BigInt too large for float")
		}
		return f, nil
	default:
		return 0, giuerrors.NewTypeMismatch("numeric", TypeName(obj))
	}
}

// ToBigInt converts an integer object to a big.Int. The second return is
// false for non-integer objects.
func ToBigInt(obj GiulioObject) (*big.Int, bool) {
	switch o := obj.(type) {
	case *Integer:
		return big.NewInt(o.Value), true
	case *BigInteger:
		return o.Value, true
	default:
		return nil, false
	}
}

// isFloat reports whether obj is a Float.
func isFloat(obj GiulioObject) bool {
	_, ok := obj.(*Float)
	return ok
}

// propagateError returns the first operand that is already an Error, if any.
func propagateError(a, b GiulioObject) GiulioObject {
	if err, ok := a.(*Error); ok {
		return err
	}
	if err, ok := b.(*Error); ok {
		return err
	}
	return nil
}

// typeMismatch builds a two-operand TypeMismatch error object.
func typeMismatch(expected string, a, b GiulioObject) GiulioObject {
	return NewError(giuerrors.NewTypeMismatch(expected, TypeName(a)+" and "+TypeName(b)))
}

// Add implements the + operator: numeric addition under the promotion
// lattice, or string concatenation when both operands are strings.
func Add(a, b GiulioObject) GiulioObject {
	if err := propagateError(a, b); err != nil {
		return err
	}

	if isFloat(a) || isFloat(b) {
		f1, err := ToFloat(a)
		if err != nil {
			return NewError(err)
		}
		f2, err := ToFloat(b)
		if err != nil {
			return NewError(err)
		}
		return &Float{Value: f1 + f2}
	}

	if s1, ok := a.(*String); ok {
		if s2, ok := b.(*String); ok {
			return &String{Value: s1.Value + s2.Value}
		}
	}

	if b1, ok := ToBigInt(a); ok {
		if b2, ok := ToBigInt(b); ok {
			return NormalizeInt(new(big.Int).Add(b1, b2))
		}
	}

	return NewError(giuerrors.NewInvalidOperation("cannot add %s and %s", TypeName(a), TypeName(b)))
}

// Subtract implements the - operator.
func Subtract(a, b GiulioObject) GiulioObject {
	return numericOp(a, b, func(x, y float64) float64 { return x - y },
		func(x, y *big.Int) *big.Int { return new(big.Int).Sub(x, y) }, nil)
}

// Multiply implements the * operator.
func Multiply(a, b GiulioObject) GiulioObject {
	return numericOp(a, b, func(x, y float64) float64 { return x * y },
		func(x, y *big.Int) *big.Int { return new(big.Int).Mul(x, y) }, nil)
}

// Divide implements the / operator. A zero right operand is DivisionByZero.
func Divide(a, b GiulioObject) GiulioObject {
	return numericOp(a, b, func(x, y float64) float64 { return x / y },
		func(x, y *big.Int) *big.Int { return new(big.Int).Quo(x, y) },
		giuerrors.NewDivisionByZero())
}

// Modulo implements the % operator. A zero right operand is ModuloByZero.
// Integer modulo truncates toward zero, taking the sign of the dividend.
func Modulo(a, b GiulioObject) GiulioObject {
	return numericOp(a, b, math.Mod,
		func(x, y *big.Int) *big.Int { return new(big.Int).Rem(x, y) },
		giuerrors.NewModuloByZero())
}

// numericOp applies a binary numeric operation under the promotion lattice.
// zeroErr, when non-nil, marks the operation as division-like: a zero right
// operand fails with that error before the operation runs.
func numericOp(a, b GiulioObject, ff func(float64, float64) float64, bf func(*big.Int, *big.Int) *big.Int, zeroErr *giuerrors.RuntimeError) GiulioObject {
	if err := propagateError(a, b); err != nil {
		return err
	}

	if isFloat(a) || isFloat(b) {
		f1, err := ToFloat(a)
		if err != nil {
			return NewError(err)
		}
		f2, err := ToFloat(b)
		if err != nil {
			return NewError(err)
		}
		if zeroErr != nil && f2 == 0.0 {
			return NewError(zeroErr)
		}
		return &Float{Value: ff(f1, f2)}
	}

	if b1, ok := ToBigInt(a); ok {
		if b2, ok := ToBigInt(b); ok {
			if zeroErr != nil && b2.Sign() == 0 {
				return NewError(zeroErr)
			}
			return NormalizeInt(bf(b1, b2))
		}
	}

	return typeMismatch("number", a, b)
}

// Compare implements the ordered comparison operators. op is one of
// "<", "<=", ">", ">=". Both operands must be numeric: float participation
// coerces both to float, otherwise both are compared as big integers.
func Compare(op string, a, b GiulioObject) GiulioObject {
	if err := propagateError(a, b); err != nil {
		return err
	}

	var cmp int
	if isFloat(a) || isFloat(b) {
		f1, err := ToFloat(a)
		if err != nil {
			return NewError(err)
		}
		f2, err := ToFloat(b)
		if err != nil {
			return NewError(err)
		}
		switch {
		case f1 < f2:
			cmp = -1
		case f1 > f2:
			cmp = 1
		default:
			cmp = 0
		}
	} else {
		b1, ok1 := ToBigInt(a)
		b2, ok2 := ToBigInt(b)
		if !ok1 || !ok2 {
			return typeMismatch("number", a, b)
		}
		cmp = b1.Cmp(b2)
	}

	switch op {
	case "<":
		return NativeBoolean(cmp < 0)
	case "<=":
		return NativeBoolean(cmp <= 0)
	case ">":
		return NativeBoolean(cmp > 0)
	case ">=":
		return NativeBoolean(cmp >= 0)
	default:
		return NewError(giuerrors.NewInvalidOperation("unknown comparison operator %s", op))
	}
}

// Negate implements unary minus. Negating math.MinInt64 overflows the i64
// range and promotes to BigInteger.
func Negate(obj GiulioObject) GiulioObject {
	switch o := obj.(type) {
	case *Integer:
		if o.Value == math.MinInt64 {
			return &BigInteger{Value: new(big.Int).Neg(big.NewInt(o.Value))}
		}
		return &Integer{Value: -o.Value}
	case *BigInteger:
		return NormalizeInt(new(big.Int).Neg(o.Value))
	case *Float:
		return &Float{Value: -o.Value}
	case *Error:
		return o
	default:
		return NewError(giuerrors.NewTypeMismatch("integer", TypeName(obj)))
	}
}
