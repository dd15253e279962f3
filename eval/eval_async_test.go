/*
File    : go-giulio/eval/eval_async_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package eval

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akashmaji946/go-giulio/objects"
)

// Concurrency-facing behavior of the async runtime: shared environment
// frames, fan-out over many tasks, and the sequential guarantee for
// programs that never enter an async context.

// TestAsync_FanOut spawns a batch of tasks and joins them all; the result
// must be deterministic regardless of completion order.
func TestAsync_FanOut(t *testing.T) {
	result := testEval(t, `
		async fn square(x) { return x * x; }
		async fn sumSquares() {
			let futs = [square(1), square(2), square(3), square(4), square(5)];
			let total = 0;
			for (f in futs) {
				total = total + await f;
			}
			return total;
		}
		sumSquares()
	`)
	require.IsType(t, &objects.Integer{}, result, result.ToString())
	assert.Equal(t, int64(1+4+9+16+25), result.(*objects.Integer).Value)
}

// TestAsync_SharedEnvironment checks that tasks observe the shared frame
// chain: a task reads bindings that existed when it was spawned.
func TestAsync_SharedEnvironment(t *testing.T) {
	result := testEval(t, `
		let base = 40;
		async fn addBase(x) { return base + x; }
		addBase(2)
	`)
	require.IsType(t, &objects.Integer{}, result, result.ToString())
	assert.Equal(t, int64(42), result.(*objects.Integer).Value)
}

// TestAsync_SequentialWithoutAsync checks the strict sequential guarantee
// for programs with no async-context calls: effects land in source order.
func TestAsync_SequentialWithoutAsync(t *testing.T) {
	result := testEval(t, `
		let trace = "";
		fn step(tag) { trace = trace + tag; return 0; }
		step("a"); step("b"); step("c");
		trace
	`)
	require.IsType(t, &objects.String{}, result)
	assert.Equal(t, "abc", result.(*objects.String).Value)
}

// TestAsync_AutoAwaitIsTransparent checks that a fully synchronous caller
// cannot observe a Future from an async callee.
func TestAsync_AutoAwaitIsTransparent(t *testing.T) {
	result := testEval(t, `
		async fn supply() { return [1, 2]; }
		let xs = supply();
		type(xs)
	`)
	require.IsType(t, &objects.String{}, result)
	assert.Equal(t, "array", result.(*objects.String).Value)
}

// TestAsync_NestedTasks checks tasks spawning tasks.
func TestAsync_NestedTasks(t *testing.T) {
	result := testEval(t, `
		async fn leaf(x) { return x + 1; }
		async fn mid(x) { return await leaf(x) * 2; }
		async fn top(x) { return await mid(x) + 3; }
		top(10)
	`)
	require.IsType(t, &objects.Integer{}, result, result.ToString())
	assert.Equal(t, int64((10+1)*2+3), result.(*objects.Integer).Value)
}

// TestAsync_StdSleepFuture checks an async stdlib builtin end to end: in
// async context it yields a future that the task then awaits.
func TestAsync_StdSleepFuture(t *testing.T) {
	result := testEval(t, `
		import std.time.{sleep};
		async fn nap() {
			let f = sleep(0);
			await f;
			return "rested";
		}
		nap()
	`)
	require.IsType(t, &objects.String{}, result, result.ToString())
	assert.Equal(t, "rested", result.(*objects.String).Value)
}
