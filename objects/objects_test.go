/*
File    : go-giulio/objects/objects_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package objects

import (
	"math"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNormalizeInt checks the canonical integer representation: Integer
// iff the value fits an i64, BigInteger otherwise.
func TestNormalizeInt(t *testing.T) {
	small := NormalizeInt(big.NewInt(42))
	assert.IsType(t, &Integer{}, small)
	assert.Equal(t, int64(42), small.(*Integer).Value)

	edge := NormalizeInt(big.NewInt(math.MaxInt64))
	assert.IsType(t, &Integer{}, edge)

	beyond := new(big.Int).Add(big.NewInt(math.MaxInt64), big.NewInt(1))
	huge := NormalizeInt(beyond)
	require.IsType(t, &BigInteger{}, huge)
	assert.Equal(t, "9223372036854775808", huge.(*BigInteger).Value.String())
}

// TestNegate checks unary minus, including the MinInt64 promotion.
func TestNegate(t *testing.T) {
	neg := Negate(&Integer{Value: 5})
	assert.Equal(t, int64(-5), neg.(*Integer).Value)

	promoted := Negate(&Integer{Value: math.MinInt64})
	require.IsType(t, &BigInteger{}, promoted)
	assert.Equal(t, "9223372036854775808", promoted.(*BigInteger).Value.String())

	f := Negate(&Float{Value: 2.5})
	assert.Equal(t, -2.5, f.(*Float).Value)

	err := Negate(&String{Value: "no"})
	assert.IsType(t, &Error{}, err)
}

// TestArithmeticPromotion checks the promotion lattice: float contaminates,
// integers compute in arbitrary precision and renormalize.
func TestArithmeticPromotion(t *testing.T) {
	// Integer + Integer stays Integer
	sum := Add(&Integer{Value: 2}, &Integer{Value: 3})
	assert.Equal(t, &Integer{Value: 5}, sum)

	// Overflow promotes
	overflow := Add(&Integer{Value: math.MaxInt64}, &Integer{Value: 1})
	assert.IsType(t, &BigInteger{}, overflow)

	// BigInteger that shrinks back demotes
	big1 := overflow
	back := Subtract(big1, &Integer{Value: 1})
	assert.Equal(t, &Integer{Value: math.MaxInt64}, back)

	// Float contaminates
	f := Add(&Integer{Value: 1}, &Float{Value: 0.5})
	assert.Equal(t, &Float{Value: 1.5}, f)

	// String concatenation through +
	s := Add(&String{Value: "foo"}, &String{Value: "bar"})
	assert.Equal(t, &String{Value: "foobar"}, s)

	// Mismatched operands fail
	bad := Add(&Integer{Value: 1}, TRUE)
	assert.IsType(t, &Error{}, bad)
}

// TestDivisionAndModulo checks the zero-divisor failures and the
// truncating modulo.
func TestDivisionAndModulo(t *testing.T) {
	div := Divide(&Integer{Value: 7}, &Integer{Value: 2})
	assert.Equal(t, &Integer{Value: 3}, div)

	divZero := Divide(&Integer{Value: 7}, &Integer{Value: 0})
	require.IsType(t, &Error{}, divZero)
	assert.Equal(t, "Division by zero", divZero.(*Error).Err.Error())

	modZero := Modulo(&Integer{Value: 7}, &Integer{Value: 0})
	require.IsType(t, &Error{}, modZero)
	assert.Equal(t, "Modulo by zero", modZero.(*Error).Err.Error())

	// Truncated modulo keeps the dividend's sign
	negMod := Modulo(&Integer{Value: -7}, &Integer{Value: 2})
	assert.Equal(t, &Integer{Value: -1}, negMod)
}

// TestCompare checks the ordered comparisons across the numeric types.
func TestCompare(t *testing.T) {
	assert.Equal(t, TRUE, Compare("<", &Integer{Value: 1}, &Integer{Value: 2}))
	assert.Equal(t, FALSE, Compare(">", &Integer{Value: 1}, &Integer{Value: 2}))
	assert.Equal(t, TRUE, Compare("<=", &Integer{Value: 2}, &Float{Value: 2.0}))
	assert.Equal(t, TRUE, Compare(">=", &BigInteger{Value: big.NewInt(3)}, &Integer{Value: 3}))

	bad := Compare("<", &String{Value: "a"}, &Integer{Value: 1})
	assert.IsType(t, &Error{}, bad)
}

// TestHashKeys checks which values may key a hash and which may not.
func TestHashKeys(t *testing.T) {
	for _, obj := range []GiulioObject{
		&Integer{Value: 7},
		&BigInteger{Value: new(big.Int).Lsh(big.NewInt(1), 70)},
		TRUE,
		&String{Value: "k"},
	} {
		_, err := ToHashKey(obj)
		assert.Nil(t, err, "%s should be hashable", TypeName(obj))
	}

	for _, obj := range []GiulioObject{
		&Array{},
		NewHash(),
		&Float{Value: 1.0},
		NULL,
		&Function{},
	} {
		_, err := ToHashKey(obj)
		assert.NotNil(t, err, "%s should not be hashable", TypeName(obj))
	}
}

// TestHashOperations checks insertion-ordered iteration, get-or-null, and
// removal.
func TestHashOperations(t *testing.T) {
	h := NewHash()
	require.Nil(t, h.Set(&String{Value: "b"}, &Integer{Value: 2}))
	require.Nil(t, h.Set(&String{Value: "a"}, &Integer{Value: 1}))
	require.Nil(t, h.Set(&String{Value: "b"}, &Integer{Value: 20}))

	assert.Equal(t, 2, h.Len())

	// Updating an existing key keeps its position
	keys := make([]string, 0)
	for _, k := range h.Keys {
		keys = append(keys, h.Pairs[k].Key.ToString())
	}
	assert.Equal(t, []string{"b", "a"}, keys)

	// Absent keys yield null, indistinguishable from a stored null
	missing, err := h.Get(&String{Value: "zzz"})
	require.Nil(t, err)
	assert.Equal(t, NULL, missing)

	present, err := h.Has(&String{Value: "a"})
	require.Nil(t, err)
	assert.True(t, present)

	require.Nil(t, h.Remove(&String{Value: "b"}))
	assert.Equal(t, 1, h.Len())
}

// TestEquality checks structural equality, including the function rule
// that ignores the captured environment.
func TestEquality(t *testing.T) {
	assert.True(t, Equals(&Integer{Value: 1}, &Integer{Value: 1}))
	assert.False(t, Equals(&Integer{Value: 1}, &Float{Value: 1.0}))
	assert.True(t, Equals(NULL, &Null{}))
	assert.True(t, Equals(
		&Array{Elements: []GiulioObject{&Integer{Value: 1}, &String{Value: "x"}}},
		&Array{Elements: []GiulioObject{&Integer{Value: 1}, &String{Value: "x"}}},
	))

	envA := NewEnvironment()
	envB := NewEnvironment()
	fnA := &Function{Params: []string{"x"}, Env: envA}
	fnB := &Function{Params: []string{"x"}, Env: envB}
	assert.True(t, Equals(fnA, fnB), "function equality ignores the captured environment")

	fnC := &Function{Params: []string{"y"}, Env: envA}
	assert.False(t, Equals(fnA, fnC))

	// Futures never compare equal
	fut := SpawnFuture(func() FutureResult { return FutureResult{Value: NULL} })
	assert.False(t, Equals(fut, fut))
}

// TestEnvironment checks the get/set chain-walking semantics.
func TestEnvironment(t *testing.T) {
	root := NewEnvironment()
	root.Bind("x", &Integer{Value: 1})

	child := NewEnclosedEnvironment(root)

	// Get walks outward
	x, ok := child.Get("x")
	require.True(t, ok)
	assert.Equal(t, int64(1), x.(*Integer).Value)

	// Set updates the nearest existing binding
	child.Set("x", &Integer{Value: 2})
	rootX, _ := root.Get("x")
	assert.Equal(t, int64(2), rootX.(*Integer).Value)

	// Set on an unknown name creates it in the current frame
	child.Set("y", &Integer{Value: 3})
	_, inRoot := root.Get("y")
	assert.False(t, inRoot)

	// Bind shadows without touching the outer binding
	child.Bind("x", &Integer{Value: 99})
	rootX, _ = root.Get("x")
	assert.Equal(t, int64(2), rootX.(*Integer).Value)
	childX, _ := child.Get("x")
	assert.Equal(t, int64(99), childX.(*Integer).Value)
}

// TestFuture_SingleShot checks that a future's computation can be taken
// exactly once.
func TestFuture_SingleShot(t *testing.T) {
	fut := SpawnFuture(func() FutureResult {
		return FutureResult{Value: &Integer{Value: 7}}
	})

	ch, ok := fut.Take()
	require.True(t, ok)
	result := <-ch
	require.Nil(t, result.Err)
	assert.Equal(t, int64(7), result.Value.(*Integer).Value)

	_, ok = fut.Take()
	assert.False(t, ok, "second take must fail")

	assert.NotEmpty(t, fut.ID)
}

// TestDisplay checks the user-facing string renderings.
func TestDisplay(t *testing.T) {
	arr := &Array{Elements: []GiulioObject{&Integer{Value: 1}, &String{Value: "s"}}}
	assert.Equal(t, "[1, s]", arr.ToString())

	assert.Equal(t, "null", NULL.ToString())
	assert.Equal(t, "3.5", (&Float{Value: 3.5}).ToString())
	assert.Equal(t, "[function]", (&Function{}).ToString())
	assert.Equal(t, "[future]", (&Future{}).ToString())

	st := &Struct{Name: "Point", Fields: map[string]GiulioObject{
		"y": &Integer{Value: 2},
		"x": &Integer{Value: 1},
	}}
	assert.Equal(t, "Point{ x: 1, y: 2 }", st.ToString())
}
