/*
File    : go-giulio/std/strings.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package std

import (
	"fmt"
	"strings"

	"github.com/akashmaji946/go-giulio/objects"
)

// String natives. Each receives its string as args[0] (prepended receiver
// when dispatched as a method).

// bsplitFn implements split(s, sep): an array of the pieces of s around sep.
func bsplitFn(args []objects.GiulioObject) (objects.GiulioObject, error) {
	s, ok := args[0].(*objects.String)
	if !ok {
		return nil, fmt.Errorf("split() expects a string, got %s", objects.TypeName(args[0]))
	}
	sep, ok := args[1].(*objects.String)
	if !ok {
		return nil, fmt.Errorf("split() separator must be a string, got %s", objects.TypeName(args[1]))
	}

	pieces := strings.Split(s.Value, sep.Value)
	elems := make([]objects.GiulioObject, 0, len(pieces))
	for _, piece := range pieces {
		elems = append(elems, &objects.String{Value: piece})
	}
	return &objects.Array{Elements: elems}, nil
}

// breplaceFn implements replace(s, a, b): s with every a replaced by b.
func breplaceFn(args []objects.GiulioObject) (objects.GiulioObject, error) {
	s, ok := args[0].(*objects.String)
	if !ok {
		return nil, fmt.Errorf("replace() expects a string, got %s", objects.TypeName(args[0]))
	}
	from, ok := args[1].(*objects.String)
	if !ok {
		return nil, fmt.Errorf("replace() pattern must be a string, got %s", objects.TypeName(args[1]))
	}
	to, ok := args[2].(*objects.String)
	if !ok {
		return nil, fmt.Errorf("replace() replacement must be a string, got %s", objects.TypeName(args[2]))
	}
	return &objects.String{Value: strings.ReplaceAll(s.Value, from.Value, to.Value)}, nil
}

// btrimFn implements trim(s): s without leading and trailing whitespace.
func btrimFn(args []objects.GiulioObject) (objects.GiulioObject, error) {
	s, ok := args[0].(*objects.String)
	if !ok {
		return nil, fmt.Errorf("trim() expects a string, got %s", objects.TypeName(args[0]))
	}
	return &objects.String{Value: strings.TrimSpace(s.Value)}, nil
}

// bstartsWithFn implements starts_with(s, prefix).
func bstartsWithFn(args []objects.GiulioObject) (objects.GiulioObject, error) {
	s, ok := args[0].(*objects.String)
	if !ok {
		return nil, fmt.Errorf("starts_with() expects a string, got %s", objects.TypeName(args[0]))
	}
	prefix, ok := args[1].(*objects.String)
	if !ok {
		return nil, fmt.Errorf("starts_with() prefix must be a string, got %s", objects.TypeName(args[1]))
	}
	return objects.NativeBoolean(strings.HasPrefix(s.Value, prefix.Value)), nil
}

// bendsWithFn implements ends_with(s, suffix).
func bendsWithFn(args []objects.GiulioObject) (objects.GiulioObject, error) {
	s, ok := args[0].(*objects.String)
	if !ok {
		return nil, fmt.Errorf("ends_with() expects a string, got %s", objects.TypeName(args[0]))
	}
	suffix, ok := args[1].(*objects.String)
	if !ok {
		return nil, fmt.Errorf("ends_with() suffix must be a string, got %s", objects.TypeName(args[1]))
	}
	return objects.NativeBoolean(strings.HasSuffix(s.Value, suffix.Value)), nil
}

// btoUpperFn implements to_upper(s).
func btoUpperFn(args []objects.GiulioObject) (objects.GiulioObject, error) {
	s, ok := args[0].(*objects.String)
	if !ok {
		return nil, fmt.Errorf("to_upper() expects a string, got %s", objects.TypeName(args[0]))
	}
	return &objects.String{Value: strings.ToUpper(s.Value)}, nil
}

// btoLowerFn implements to_lower(s).
func btoLowerFn(args []objects.GiulioObject) (objects.GiulioObject, error) {
	s, ok := args[0].(*objects.String)
	if !ok {
		return nil, fmt.Errorf("to_lower() expects a string, got %s", objects.TypeName(args[0]))
	}
	return &objects.String{Value: strings.ToLower(s.Value)}, nil
}
