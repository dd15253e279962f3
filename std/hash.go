/*
File    : go-giulio/std/hash.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package std

import (
	"fmt"

	"github.com/akashmaji946/go-giulio/objects"
)

// Hash natives. Like arrays, hashes are value-like: mutating operations
// return a fresh hash and leave the receiver untouched.

// bgetFn implements get(h, key): the value for key, or null when absent.
// Also accepts arrays and strings with integer indices, where out-of-range
// access fails instead of yielding null.
func bgetFn(args []objects.GiulioObject) (objects.GiulioObject, error) {
	switch o := args[0].(type) {
	case *objects.Hash:
		value, rerr := o.Get(args[1])
		if rerr != nil {
			return nil, fmt.Errorf("get() key must be integer, boolean, or string, got %s", objects.TypeName(args[1]))
		}
		return value, nil
	case *objects.Array:
		idx, rerr := objects.ToInt64(args[1])
		if rerr != nil {
			return nil, fmt.Errorf("get() index must be an integer, got %s", objects.TypeName(args[1]))
		}
		if idx < 0 {
			return nil, fmt.Errorf("get() index %d is negative", idx)
		}
		if idx >= int64(len(o.Elements)) {
			return nil, fmt.Errorf("get() index %d out of bounds (array length: %d)", idx, len(o.Elements))
		}
		return o.Elements[idx], nil
	case *objects.String:
		idx, rerr := objects.ToInt64(args[1])
		if rerr != nil {
			return nil, fmt.Errorf("get() index must be an integer, got %s", objects.TypeName(args[1]))
		}
		if idx < 0 {
			return nil, fmt.Errorf("get() index %d is negative", idx)
		}
		runes := []rune(o.Value)
		if idx >= int64(len(runes)) {
			return nil, fmt.Errorf("get() index %d out of bounds (string length: %d)", idx, len(runes))
		}
		return &objects.String{Value: string(runes[idx])}, nil
	default:
		return nil, fmt.Errorf("get() expects hash, array, or string, got %s", objects.TypeName(args[0]))
	}
}

// bsetFn implements set(h, key, value): a new hash with the entry added
// or replaced.
func bsetFn(args []objects.GiulioObject) (objects.GiulioObject, error) {
	h, ok := args[0].(*objects.Hash)
	if !ok {
		return nil, fmt.Errorf("set() expects a hash, got %s", objects.TypeName(args[0]))
	}
	out := h.Clone()
	if rerr := out.Set(args[1], args[2]); rerr != nil {
		return nil, fmt.Errorf("set() key must be integer, boolean, or string, got %s", objects.TypeName(args[1]))
	}
	return out, nil
}

// bhasFn implements has(h, key): membership test. This is the only way to
// distinguish an absent key from a stored null.
func bhasFn(args []objects.GiulioObject) (objects.GiulioObject, error) {
	h, ok := args[0].(*objects.Hash)
	if !ok {
		return nil, fmt.Errorf("has() expects a hash, got %s", objects.TypeName(args[0]))
	}
	present, rerr := h.Has(args[1])
	if rerr != nil {
		return nil, fmt.Errorf("has() key must be integer, boolean, or string, got %s", objects.TypeName(args[1]))
	}
	return objects.NativeBoolean(present), nil
}

// bremoveFn implements remove(h, key) for hashes and remove(arr, idx) for
// arrays, returning the container without the entry.
func bremoveFn(args []objects.GiulioObject) (objects.GiulioObject, error) {
	switch o := args[0].(type) {
	case *objects.Hash:
		out := o.Clone()
		if rerr := out.Remove(args[1]); rerr != nil {
			return nil, fmt.Errorf("remove() key must be integer, boolean, or string, got %s", objects.TypeName(args[1]))
		}
		return out, nil
	case *objects.Array:
		idx, rerr := objects.ToInt64(args[1])
		if rerr != nil {
			return nil, fmt.Errorf("remove() index must be an integer, got %s", objects.TypeName(args[1]))
		}
		if idx < 0 || idx >= int64(len(o.Elements)) {
			return nil, fmt.Errorf("remove() index %d out of bounds (array length: %d)", idx, len(o.Elements))
		}
		elems := make([]objects.GiulioObject, 0, len(o.Elements)-1)
		elems = append(elems, o.Elements[:idx]...)
		elems = append(elems, o.Elements[idx+1:]...)
		return &objects.Array{Elements: elems}, nil
	default:
		return nil, fmt.Errorf("remove() expects hash or array, got %s", objects.TypeName(args[0]))
	}
}

// bkeysFn implements keys(h): the keys in insertion order.
func bkeysFn(args []objects.GiulioObject) (objects.GiulioObject, error) {
	h, ok := args[0].(*objects.Hash)
	if !ok {
		return nil, fmt.Errorf("keys() expects a hash, got %s", objects.TypeName(args[0]))
	}
	elems := make([]objects.GiulioObject, 0, h.Len())
	for _, key := range h.Keys {
		elems = append(elems, h.Pairs[key].Key)
	}
	return &objects.Array{Elements: elems}, nil
}

// bvaluesFn implements values(h): the values in insertion order.
func bvaluesFn(args []objects.GiulioObject) (objects.GiulioObject, error) {
	h, ok := args[0].(*objects.Hash)
	if !ok {
		return nil, fmt.Errorf("values() expects a hash, got %s", objects.TypeName(args[0]))
	}
	elems := make([]objects.GiulioObject, 0, h.Len())
	for _, key := range h.Keys {
		elems = append(elems, h.Pairs[key].Value)
	}
	return &objects.Array{Elements: elems}, nil
}

// bclearFn implements clear(h): an empty hash. Arrays clear to an empty
// array.
func bclearFn(args []objects.GiulioObject) (objects.GiulioObject, error) {
	switch args[0].(type) {
	case *objects.Hash:
		return objects.NewHash(), nil
	case *objects.Array:
		return &objects.Array{Elements: []objects.GiulioObject{}}, nil
	default:
		return nil, fmt.Errorf("clear() expects hash or array, got %s", objects.TypeName(args[0]))
	}
}
