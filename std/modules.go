/*
File    : go-giulio/std/modules.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package std

import (
	"math"

	"github.com/akashmaji946/go-giulio/objects"
)

// The preloaded stdlib modules, keyed by canonical path. The module
// registry copies this map at construction; the map itself is effectively
// immutable afterward.

// stdFn builds a synchronous stdlib builtin.
func stdFn(name string, min, max int, fn objects.StdFunction) *objects.StdBuiltin {
	return &objects.StdBuiltin{Name: name, MinArgs: min, MaxArgs: max, Fn: fn}
}

// asyncStdFn builds an async stdlib builtin; calls to it produce Futures.
func asyncStdFn(name string, min, max int, fn objects.StdFunction) *objects.StdBuiltin {
	return &objects.StdBuiltin{Name: name, MinArgs: min, MaxArgs: max, Async: true, Fn: fn}
}

// Modules returns a fresh map of the stdlib modules keyed by canonical
// path (a::b form).
func Modules() map[string]*objects.Module {
	return map[string]*objects.Module{
		"std::string": {
			Name: "std::string",
			Exports: map[string]objects.GiulioObject{
				"join": stdFn("join", 2, 2, stringJoinFn),
			},
		},
		"std::math": {
			Name: "std::math",
			Exports: map[string]objects.GiulioObject{
				"clamp":  stdFn("clamp", 3, 3, mathClampFn),
				"random": stdFn("random", 0, 2, mathRandomFn),
				"sqrt":   stdFn("sqrt", 1, 1, mathSqrtFn),
				"floor":  stdFn("floor", 1, 1, mathFloorFn),
				"ceil":   stdFn("ceil", 1, 1, mathCeilFn),
				"round":  stdFn("round", 1, 1, mathRoundFn),
				"pi":     &objects.Float{Value: math.Pi},
			},
		},
		"std::time": {
			Name: "std::time",
			Exports: map[string]objects.GiulioObject{
				"now":        stdFn("now", 0, 0, timeNowFn),
				"now_millis": stdFn("now_millis", 0, 0, timeNowMillisFn),
				"format":     stdFn("format", 1, 1, timeFormatFn),
				"sleep":      asyncStdFn("sleep", 1, 1, timeSleepFn),
			},
		},
		"std::io": {
			Name: "std::io",
			Exports: map[string]objects.GiulioObject{
				"read_file":   stdFn("read_file", 1, 1, ioReadFileFn),
				"write_file":  stdFn("write_file", 2, 2, ioWriteFileFn),
				"append_file": stdFn("append_file", 2, 2, ioAppendFileFn),
				"delete_file": stdFn("delete_file", 1, 1, ioDeleteFileFn),
				"create_dir":  stdFn("create_dir", 1, 1, ioCreateDirFn),
				"exists":      stdFn("exists", 1, 1, ioExistsFn),

				"read_file_async":   asyncStdFn("read_file_async", 1, 1, ioReadFileFn),
				"write_file_async":  asyncStdFn("write_file_async", 2, 2, ioWriteFileFn),
				"append_file_async": asyncStdFn("append_file_async", 2, 2, ioAppendFileFn),
				"delete_file_async": asyncStdFn("delete_file_async", 1, 1, ioDeleteFileFn),
				"create_dir_async":  asyncStdFn("create_dir_async", 1, 1, ioCreateDirFn),
			},
		},
		"std::json": {
			Name: "std::json",
			Exports: map[string]objects.GiulioObject{
				"serialize":   stdFn("serialize", 1, 1, jsonSerializeFn),
				"deserialize": stdFn("deserialize", 1, 1, jsonDeserializeFn),
			},
		},
		"std::http": {
			Name: "std::http",
			Exports: map[string]objects.GiulioObject{
				"get":    asyncStdFn("get", 1, 1, httpGetFn),
				"post":   asyncStdFn("post", 2, 2, httpPostFn),
				"put":    asyncStdFn("put", 2, 2, httpPutFn),
				"delete": asyncStdFn("delete", 1, 1, httpDeleteFn),
			},
		},
		"std::env": {
			Name: "std::env",
			Exports: map[string]objects.GiulioObject{
				"args": stdFn("args", 0, 0, envArgsFn),
			},
		},
	}
}
