/*
File    : go-giulio/eval/evaluator_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package eval

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	giuerrors "github.com/akashmaji946/go-giulio/errors"
	"github.com/akashmaji946/go-giulio/lexer"
	"github.com/akashmaji946/go-giulio/objects"
	"github.com/akashmaji946/go-giulio/parser"
)

// testEval runs source through the whole pipeline with a registry rooted
// at a scratch directory.
func testEval(t *testing.T, src string) objects.GiulioObject {
	t.Helper()
	tokens, lexErr := lexer.Tokenize(src)
	require.Nil(t, lexErr, "lex error for %q", src)
	program, parseErr := parser.NewParser(tokens).Parse()
	require.Nil(t, parseErr, "parse error for %q: %v", src, parseErr)

	evaluator := NewEvaluatorWithRegistry(NewModuleRegistry(t.TempDir()))
	return evaluator.EvalProgram(program)
}

// requireInteger asserts an Integer result with the given value.
func requireInteger(t *testing.T, obj objects.GiulioObject, expected int64) {
	t.Helper()
	result, ok := obj.(*objects.Integer)
	require.True(t, ok, "expected integer, got %s (%s)", objects.TypeName(obj), obj.ToString())
	assert.Equal(t, expected, result.Value)
}

// requireString asserts a String result with the given value.
func requireString(t *testing.T, obj objects.GiulioObject, expected string) {
	t.Helper()
	result, ok := obj.(*objects.String)
	require.True(t, ok, "expected string, got %s (%s)", objects.TypeName(obj), obj.ToString())
	assert.Equal(t, expected, result.Value)
}

// requireRuntimeError asserts an Error result of the given kind.
func requireRuntimeError(t *testing.T, obj objects.GiulioObject, kind giuerrors.RuntimeErrorKind) {
	t.Helper()
	result, ok := obj.(*objects.Error)
	require.True(t, ok, "expected runtime error, got %s (%s)", objects.TypeName(obj), obj.ToString())
	assert.Equal(t, kind, result.Err.Kind)
}

// TestEval_EndToEndScenarios runs the canonical source-to-value scenarios.
func TestEval_EndToEndScenarios(t *testing.T) {
	requireInteger(t, testEval(t, `let x = 5; let y = 10; x + y`), 15)

	requireInteger(t, testEval(t, `let add = fn(x,y){x+y}; add(1,2) + add(3,4)`), 10)

	requireInteger(t, testEval(t, `let s = "foo" + "bar"; s.len()`), 6)

	arr := testEval(t, `let a = [1,2,3]; a[0] = 9; a`)
	require.IsType(t, &objects.Array{}, arr)
	assert.Equal(t, "[9, 2, 3]", arr.ToString())

	requireString(t, testEval(t, `try { throw "e"; } catch(x) { x + "!" } finally { }`), "e!")

	requireInteger(t, testEval(t, `
		async fn f() { return 7; }
		async fn m() { return await f(); }
		m()
	`), 7)

	requireInteger(t, testEval(t, `fn t() { try { return 1; } finally { return 2; } } t()`), 2)

	big := testEval(t, `let n = 9223372036854775807; n + 1`)
	require.IsType(t, &objects.BigInteger{}, big)
	assert.Equal(t, "9223372036854775808", big.ToString())
}

// TestEval_BlockSemantics checks the expression-statement versus
// expression-value distinction and the empty block.
func TestEval_BlockSemantics(t *testing.T) {
	// Semicolon discards the value: the block yields null
	result := testEval(t, `1 + 2;`)
	assert.Equal(t, objects.NULL, result)

	// No semicolon: the value is the block's result
	requireInteger(t, testEval(t, `1 + 2`), 3)

	// Let and assign statements yield the bound value
	requireInteger(t, testEval(t, `let x = 41; x = x + 1;`), 42)
	requireInteger(t, testEval(t, `let y = 7;`), 7)

	// If is an expression
	requireInteger(t, testEval(t, `if (true) { 1 } else { 2 }`), 1)
	requireInteger(t, testEval(t, `if (false) { 1 } else { 2 }`), 2)
	assert.Equal(t, objects.NULL, testEval(t, `if (false) { 1 }`))
}

// TestEval_Arithmetic checks the operator surface.
func TestEval_Arithmetic(t *testing.T) {
	requireInteger(t, testEval(t, `2 + 3 * 4`), 14)
	requireInteger(t, testEval(t, `10 % 3`), 1)
	requireInteger(t, testEval(t, `-5 + 2`), -3)

	f := testEval(t, `1 + 0.5`)
	require.IsType(t, &objects.Float{}, f)
	assert.Equal(t, 1.5, f.(*objects.Float).Value)

	requireRuntimeError(t, testEval(t, `1 / 0`), giuerrors.DivisionByZero)
	requireRuntimeError(t, testEval(t, `1 % 0`), giuerrors.ModuloByZero)
	requireRuntimeError(t, testEval(t, `1 + "s"`), giuerrors.InvalidOperation)
	requireRuntimeError(t, testEval(t, `"a" - "b"`), giuerrors.TypeMismatch)

	// No implicit truthiness
	requireRuntimeError(t, testEval(t, `!1`), giuerrors.TypeMismatch)
	assert.Equal(t, objects.TRUE, testEval(t, `!false`))
	assert.Equal(t, objects.TRUE, testEval(t, `1 < 2 && 2 < 3`))
	assert.Equal(t, objects.TRUE, testEval(t, `false || true`))
}

// TestEval_Comparison checks equality and ordering.
func TestEval_Comparison(t *testing.T) {
	assert.Equal(t, objects.TRUE, testEval(t, `[1, 2] == [1, 2]`))
	assert.Equal(t, objects.FALSE, testEval(t, `[1, 2] == [2, 1]`))
	assert.Equal(t, objects.TRUE, testEval(t, `null == null`))
	assert.Equal(t, objects.TRUE, testEval(t, `1 != "1"`))
	assert.Equal(t, objects.TRUE, testEval(t, `fn(x){x} == fn(x){x}`))
	assert.Equal(t, objects.TRUE, testEval(t, `1.5 > 1`))
	requireRuntimeError(t, testEval(t, `"a" < 1`), giuerrors.TypeMismatch)
}

// TestEval_Variables checks binding, assignment, and shadowing.
func TestEval_Variables(t *testing.T) {
	requireRuntimeError(t, testEval(t, `y = 3;`), giuerrors.UndefinedVariable)
	requireRuntimeError(t, testEval(t, `missing`), giuerrors.UndefinedVariable)

	// Assignment through a closure updates the captured binding
	requireInteger(t, testEval(t, `
		let count = 0;
		let bump = fn() { count = count + 1; return count; };
		bump(); bump(); bump()
	`), 3)

	// A let in an inner scope shadows instead of overwriting
	requireInteger(t, testEval(t, `
		let x = 1;
		let f = fn() { let x = 99; return x; };
		f();
		x
	`), 1)

	// Builtins may be shadowed
	requireInteger(t, testEval(t, `let len = 5; len`), 5)

	// Compound assignment
	requireInteger(t, testEval(t, `let x = 10; x += 5; x -= 3; x *= 2; x`), 24)
}

// TestEval_Functions checks calls, closures, and the arity rule.
func TestEval_Functions(t *testing.T) {
	// Closures capture their defining environment
	requireInteger(t, testEval(t, `
		let makeAdder = fn(n) { return fn(x) { return x + n; }; };
		let add5 = makeAdder(5);
		add5(37)
	`), 42)

	// Too few arguments fail
	requireRuntimeError(t, testEval(t, `let f = fn(a, b) { a + b }; f(1)`), giuerrors.WrongNumberOfArguments)

	// Extra arguments are silently dropped
	requireInteger(t, testEval(t, `let f = fn(a) { a }; f(1, 2, 3)`), 1)

	// Calling a non-function fails
	requireRuntimeError(t, testEval(t, `let x = 3; x(1)`), giuerrors.NotCallable)

	// Implicit last-expression value and explicit return agree
	requireInteger(t, testEval(t, `let f = fn() { 7 }; f()`), 7)
	requireInteger(t, testEval(t, `fn g() { return 8; } g()`), 8)

	// Recursion through the named form
	requireInteger(t, testEval(t, `
		fn fact(n) { if (n < 2) { return 1; } return n * fact(n - 1); }
		fact(10)
	`), 3628800)
}

// TestEval_Loops checks the three loop forms and their control flow.
func TestEval_Loops(t *testing.T) {
	requireInteger(t, testEval(t, `
		let sum = 0;
		let i = 0;
		while (i < 5) { sum = sum + i; i = i + 1; }
		sum
	`), 10)

	requireInteger(t, testEval(t, `
		let sum = 0;
		for (x in [1, 2, 3, 4]) { sum = sum + x; }
		sum
	`), 10)

	requireString(t, testEval(t, `
		let out = "";
		for (c in "abc") { out = out + c; }
		out
	`), "abc")

	requireInteger(t, testEval(t, `
		let sum = 0;
		for (let i = 0; i < 10; i += 1) {
			if (i == 3) { continue; }
			if (i == 6) { break; }
			sum = sum + i;
		}
		sum
	`), 0+1+2+4+5)

	// A return inside a loop leaves the whole function
	requireInteger(t, testEval(t, `
		fn firstOver(limit, xs) {
			for (x in xs) { if (x > limit) { return x; } }
			return -1;
		}
		firstOver(2, [1, 2, 3, 4])
	`), 3)

	// The while condition must be boolean
	requireRuntimeError(t, testEval(t, `while (1) { break; }`), giuerrors.TypeMismatch)

	// Iterating a non-iterable fails
	requireRuntimeError(t, testEval(t, `for (x in 5) { 1; }`), giuerrors.InvalidOperation)
}

// TestEval_ArraysAndHashes checks construction, indexing, and the
// boundary behaviors.
func TestEval_ArraysAndHashes(t *testing.T) {
	requireInteger(t, testEval(t, `[1, 2, 3][1]`), 2)
	requireRuntimeError(t, testEval(t, `[1, 2, 3][-1]`), giuerrors.IndexOutOfBounds)
	requireRuntimeError(t, testEval(t, `[1, 2, 3][3]`), giuerrors.IndexOutOfBounds)
	requireRuntimeError(t, testEval(t, `5[0]`), giuerrors.NotIndexable)

	requireInteger(t, testEval(t, `{"a": 1, 2: 20}["a"]`), 1)
	requireInteger(t, testEval(t, `{"a": 1, 2: 20}[2]`), 20)

	// Absent keys yield null (non-destructively)
	assert.Equal(t, objects.NULL, testEval(t, `{"a": 1}["zzz"]`))
	requireInteger(t, testEval(t, `let h = {"a": 1}; h["zzz"]; h["a"]`), 1)

	// Non-hashable keys are rejected at construction and at lookup
	requireRuntimeError(t, testEval(t, `{[1]: 2}`), giuerrors.NotHashable)
	requireRuntimeError(t, testEval(t, `{"a": 1}[[1]]`), giuerrors.NotHashable)

	// Index assignment writes the container back by name
	requireInteger(t, testEval(t, `let h = {"n": 1}; h["n"] = 5; h["n"]`), 5)
	requireInteger(t, testEval(t, `let h = {}; h["new"] = 7; h["new"]`), 7)
	requireRuntimeError(t, testEval(t, `let a = [1]; a[5] = 0;`), giuerrors.IndexOutOfBounds)
	requireRuntimeError(t, testEval(t, `let s = "x"; s[0] = "y";`), giuerrors.InvalidOperation)
}

// TestEval_Builtins checks the globally seeded builtin functions.
func TestEval_Builtins(t *testing.T) {
	requireInteger(t, testEval(t, `len("hello")`), 5)
	requireInteger(t, testEval(t, `len([1, 2])`), 2)
	requireString(t, testEval(t, `type(1)`), "integer")
	requireString(t, testEval(t, `type("s")`), "string")
	requireString(t, testEval(t, `trim("  pad  ")`), "pad")
	requireString(t, testEval(t, `replace("aXbX", "X", "-")`), "a-b-")
	assert.Equal(t, objects.TRUE, testEval(t, `contains("hello", "ell")`))
	assert.Equal(t, objects.TRUE, testEval(t, `contains([1, 2], 2)`))
	assert.Equal(t, "[a, b]", testEval(t, `split("a,b", ",")`).ToString())
	requireString(t, testEval(t, `slice("hello", 1, 3)`), "el")

	requireInteger(t, testEval(t, `head([4, 5])`), 4)
	assert.Equal(t, "[5]", testEval(t, `tail([4, 5])`).ToString())
	assert.Equal(t, "[0, 1]", testEval(t, `cons(0, [1])`).ToString())
	assert.Equal(t, "[1, 2]", testEval(t, `push([1], 2)`).ToString())

	requireInteger(t, testEval(t, `pow(2, 10)`), 1024)
	requireInteger(t, testEval(t, `abs(-3)`), 3)
	requireInteger(t, testEval(t, `min(4, 2)`), 2)
	requireInteger(t, testEval(t, `max(4, 2)`), 4)

	// Boundary failures
	requireRuntimeError(t, testEval(t, `head([])`), giuerrors.EmptyArray)
	requireRuntimeError(t, testEval(t, `tail([])`), giuerrors.EmptyArray)
	requireRuntimeError(t, testEval(t, `pow(2, -1)`), giuerrors.InvalidArguments)
	requireRuntimeError(t, testEval(t, `len()`), giuerrors.WrongNumberOfArguments)
	requireRuntimeError(t, testEval(t, `len("a", "b")`), giuerrors.WrongNumberOfArguments)
}

// TestEval_BuiltinMethods checks the (type, name) method dispatch table.
func TestEval_BuiltinMethods(t *testing.T) {
	requireInteger(t, testEval(t, `"abc".len()`), 3)
	assert.Equal(t, objects.TRUE, testEval(t, `"".is_empty()`))
	requireString(t, testEval(t, `"aSd".to_upper()`), "ASD")
	requireString(t, testEval(t, `"aSd".to_lower()`), "asd")
	assert.Equal(t, objects.TRUE, testEval(t, `"prefix_rest".starts_with("prefix")`))
	assert.Equal(t, objects.TRUE, testEval(t, `"rest_suffix".ends_with("suffix")`))
	requireInteger(t, testEval(t, `"42".to_int()`), 42)
	requireInteger(t, testEval(t, `3.9.to_int()`), 3)
	requireString(t, testEval(t, `42.to_string()`), "42")

	requireInteger(t, testEval(t, `[7, 8].head()`), 7)
	requireInteger(t, testEval(t, `2.pow(8)`), 256)
	requireInteger(t, testEval(t, `{"k": 9}.get("k")`), 9)
	assert.Equal(t, objects.TRUE, testEval(t, `{"k": 9}.has("k")`))
	requireInteger(t, testEval(t, `{"k": 1}.set("j", 2).get("j")`), 2)
	requireInteger(t, testEval(t, `{"a": 1, "b": 2}.keys().len()`), 2)

	// Unknown methods name the receiver type
	err := testEval(t, `5.frobnicate()`)
	requireRuntimeError(t, err, giuerrors.InvalidOperation)
	assert.Contains(t, err.(*objects.Error).Err.Error(), "integer has no method 'frobnicate'")

	// Method arity is enforced
	requireRuntimeError(t, testEval(t, `"a".split()`), giuerrors.WrongNumberOfArguments)
}

// TestEval_Structs checks definitions, literals, methods, this-mutation,
// and reflection.
func TestEval_Structs(t *testing.T) {
	requireInteger(t, testEval(t, `
		struct Point { x: 0, y: 0 }
		let p = Point{x: 3};
		p.x + p.y
	`), 3)

	// Methods mutate through this and write back to the receiver's slot
	requireInteger(t, testEval(t, `
		struct Counter {
			n: 0,
			bump: fn(by) { this.n = this.n + by; }
		}
		let c = Counter{};
		c.bump(2);
		c.bump(3);
		c.n
	`), 5)

	// An explicit return wins over the mutated receiver
	requireInteger(t, testEval(t, `
		struct Box { v: 1, peek: fn() { return this.v; } }
		let b = Box{v: 9};
		b.peek()
	`), 9)

	// A method falling off the end yields the mutated receiver
	result := testEval(t, `
		struct P { x: 0, setX: fn(v) { this.x = v; } }
		let p = P{};
		p.setX(4)
	`)
	require.IsType(t, &objects.Struct{}, result)
	requireInteger(t, result.(*objects.Struct).Fields["x"], 4)

	// this outside a method is an invalid operation
	requireRuntimeError(t, testEval(t, `this`), giuerrors.InvalidOperation)

	// Unknown struct type and non-struct literal
	requireRuntimeError(t, testEval(t, `Nope{}`), giuerrors.UndefinedVariable)
	requireRuntimeError(t, testEval(t, `let x = 1; x{}`), giuerrors.InvalidOperation)

	// Unknown field access
	requireRuntimeError(t, testEval(t, `
		struct S { a: 1 }
		let s = S{};
		s.missing
	`), giuerrors.InvalidOperation)

	// Reflection round-trip
	requireInteger(t, testEval(t, `
		struct S { a: 1 }
		let s = S{};
		s.set_field("b", 41).get_field("b") + 1
	`), 42)
	requireString(t, testEval(t, `struct S { a: 1 } S{}.name()`), "S")
	assert.Equal(t, "[a]", testEval(t, `struct S { a: 1 } S{}.fields()`).ToString())

	// Field defaults are evaluated at definition time, once
	requireInteger(t, testEval(t, `
		let n = 10;
		struct S { v: n + 1 }
		n = 99;
		S{}.v
	`), 11)
}

// TestEval_TryCatchFinally checks the exception contract in detail.
func TestEval_TryCatchFinally(t *testing.T) {
	// Catch receives the thrown value
	requireInteger(t, testEval(t, `try { throw 41; } catch(e) { e + 1 }`), 42)

	// Uncaught throws propagate as throws
	thrown := testEval(t, `fn f() { throw "deep"; } f()`)
	require.IsType(t, &objects.ThrownValue{}, thrown)
	requireString(t, thrown.(*objects.ThrownValue).Value, "deep")

	// A throw crosses function boundaries to the nearest catch
	requireString(t, testEval(t, `
		fn inner() { throw "boom"; }
		fn outer() { return inner(); }
		try { outer(); } catch(e) { e }
	`), "boom")

	// Runtime errors are intercepted by a catch binder too
	requireString(t, testEval(t, `try { 1 / 0; } catch(e) { "caught" }`), "caught")

	// finally always runs, and its control flow overrides
	requireInteger(t, testEval(t, `fn f() { try { return 1; } finally { return 2; } } f()`), 2)

	out := testEval(t, `fn f() { try { return 1; } finally { throw "override"; } } f()`)
	require.IsType(t, &objects.ThrownValue{}, out)

	// A quiet finally leaves the pending result alone
	requireInteger(t, testEval(t, `fn f() { try { return 1; } finally { 99; } } f()`), 1)

	// finally runs for the side effects even when nothing is pending
	requireInteger(t, testEval(t, `
		let log = 0;
		let r = try { 5 } finally { log = 1; };
		r + log
	`), 6)

	// A rethrow from catch propagates
	rethrown := testEval(t, `try { throw "a"; } catch(e) { throw e + "b"; }`)
	require.IsType(t, &objects.ThrownValue{}, rethrown)
	requireString(t, rethrown.(*objects.ThrownValue).Value, "ab")
}

// TestEval_Async checks the cooperative async runtime.
func TestEval_Async(t *testing.T) {
	// Auto-await outside async context
	requireInteger(t, testEval(t, `async fn f() { return 5; } f()`), 5)

	// Futures flow between async functions
	requireInteger(t, testEval(t, `
		async fn f(x) { return x * 2; }
		async fn g() {
			let a = await f(10);
			let b = await f(11);
			return a + b;
		}
		g()
	`), 42)

	// A throw inside a task is delivered on await and stays catchable
	requireString(t, testEval(t, `
		async fn bad() { throw "async-boom"; }
		async fn run() {
			try { await bad(); } catch(e) { return e; }
			return "not reached";
		}
		run()
	`), "async-boom")

	// A runtime error inside a task surfaces as an error on await
	requireRuntimeError(t, testEval(t, `async fn bad() { return 1 / 0; } bad()`), giuerrors.DivisionByZero)

	// Awaiting a non-future fails
	requireRuntimeError(t, testEval(t, `
		async fn f() { return await 5; }
		f()
	`), giuerrors.TypeMismatch)

	// A future handed around still resolves exactly once
	requireInteger(t, testEval(t, `
		async fn f() { return 3; }
		async fn g() {
			let fut = f();
			return await fut;
		}
		g()
	`), 3)

	// Awaiting the same future twice exhausts it
	requireRuntimeError(t, testEval(t, `
		async fn f() { return 3; }
		async fn g() {
			let fut = f();
			let first = await fut;
			return await fut;
		}
		g()
	`), giuerrors.InvalidOperation)

	// Async functions respect the >= arity rule too
	requireRuntimeError(t, testEval(t, `async fn f(a, b) { return a; } f(1)`), giuerrors.WrongNumberOfArguments)
}

// TestEval_ControlFlowNeverLeaks checks that no user-visible slot holds a
// control-flow value after a completed top-level program.
func TestEval_ControlFlowNeverLeaks(t *testing.T) {
	result := testEval(t, `
		let xs = [];
		fn probe() { return 1; }
		let a = probe();
		xs = push(xs, probe());
		let h = {"k": probe()};
		struct S { f: 0 }
		let s = S{};
		[a, xs[0], h["k"]]
	`)
	arr, ok := result.(*objects.Array)
	require.True(t, ok)
	for _, elem := range arr.Elements {
		assert.False(t, objects.IsControlFlow(elem))
		requireInteger(t, elem, 1)
	}
}

// TestEval_Output checks print/println through a redirected writer.
func TestEval_Output(t *testing.T) {
	var buf bytes.Buffer

	tokens, lexErr := lexer.Tokenize(`print("a", 1); println("b"); println(1 + 2);`)
	require.Nil(t, lexErr)
	program, parseErr := parser.NewParser(tokens).Parse()
	require.Nil(t, parseErr)

	evaluator := NewEvaluatorWithRegistry(NewModuleRegistry(t.TempDir()))
	evaluator.SetWriter(&buf)
	defer evaluator.SetWriter(os.Stdout)

	result := evaluator.EvalProgram(program)
	assert.Equal(t, objects.NULL, result)
	assert.Equal(t, "a 1b\n3\n", buf.String())
}

// TestEval_StdlibImports checks the preloaded stdlib modules end to end.
func TestEval_StdlibImports(t *testing.T) {
	// All-form binding under the last segment, called as module methods
	f := testEval(t, `import std.math; math.clamp(5, 0, 3)`)
	require.IsType(t, &objects.Float{}, f)
	assert.Equal(t, 3.0, f.(*objects.Float).Value)

	// Single-form binding of one export
	requireString(t, testEval(t, `import std.string.{join}; join([1, 2, 3], "-")`), "1-2-3")

	// Specific-form binding of several exports
	requireString(t, testEval(t, `
		import std.json.{serialize, deserialize};
		deserialize(serialize({"a": [1, 2]}))["a"].to_string()
	`), "[1, 2]")

	// Unknown exports fail at the import site
	requireRuntimeError(t, testEval(t, `import std.math.{santa};`), giuerrors.InvalidOperation)

	// Unknown modules fail with a wrapped load error
	requireRuntimeError(t, testEval(t, `import no.such.module;`), giuerrors.InvalidOperation)

	// Module field access reads exports directly
	f = testEval(t, `import std.math; math.pi`)
	require.IsType(t, &objects.Float{}, f)
}
