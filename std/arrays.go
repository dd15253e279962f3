/*
File    : go-giulio/std/arrays.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package std

import (
	"fmt"

	"github.com/akashmaji946/go-giulio/objects"
)

// Array natives. Arrays are value-like: every operation returns a fresh
// array and leaves the receiver untouched, matching the copy-on-mutate
// discipline of the evaluator.

// bheadFn implements head(arr): the first element. Empty arrays fail.
func bheadFn(args []objects.GiulioObject) (objects.GiulioObject, error) {
	arr, ok := args[0].(*objects.Array)
	if !ok {
		return nil, fmt.Errorf("head() expects an array, got %s", objects.TypeName(args[0]))
	}
	if len(arr.Elements) == 0 {
		return nil, ErrEmptyArray
	}
	return arr.Elements[0], nil
}

// btailFn implements tail(arr): everything but the first element. Empty
// arrays fail.
func btailFn(args []objects.GiulioObject) (objects.GiulioObject, error) {
	arr, ok := args[0].(*objects.Array)
	if !ok {
		return nil, fmt.Errorf("tail() expects an array, got %s", objects.TypeName(args[0]))
	}
	if len(arr.Elements) == 0 {
		return nil, ErrEmptyArray
	}
	elems := make([]objects.GiulioObject, len(arr.Elements)-1)
	copy(elems, arr.Elements[1:])
	return &objects.Array{Elements: elems}, nil
}

// bconsFn implements cons(v, arr): a new array with v prepended.
func bconsFn(args []objects.GiulioObject) (objects.GiulioObject, error) {
	arr, ok := args[1].(*objects.Array)
	if !ok {
		return nil, fmt.Errorf("cons() expects an array as second argument, got %s", objects.TypeName(args[1]))
	}
	elems := make([]objects.GiulioObject, 0, len(arr.Elements)+1)
	elems = append(elems, args[0])
	elems = append(elems, arr.Elements...)
	return &objects.Array{Elements: elems}, nil
}

// bpushFn implements push(arr, v): a new array with v appended.
func bpushFn(args []objects.GiulioObject) (objects.GiulioObject, error) {
	arr, ok := args[0].(*objects.Array)
	if !ok {
		return nil, fmt.Errorf("push() expects an array, got %s", objects.TypeName(args[0]))
	}
	elems := make([]objects.GiulioObject, 0, len(arr.Elements)+1)
	elems = append(elems, arr.Elements...)
	elems = append(elems, args[1])
	return &objects.Array{Elements: elems}, nil
}

// bconsMethodFn is the method form of cons: receiver first, value second.
// arr.cons(v) prepends v the same way cons(v, arr) does.
func bconsMethodFn(args []objects.GiulioObject) (objects.GiulioObject, error) {
	return bconsFn([]objects.GiulioObject{args[1], args[0]})
}
