/*
File    : go-giulio/std/string_module.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package std

import (
	"strings"

	giuerrors "github.com/akashmaji946/go-giulio/errors"
	"github.com/akashmaji946/go-giulio/objects"
)

// std::string module natives.

// stringJoinFn implements join(arr, sep): the display forms of the array's
// elements joined with sep.
func stringJoinFn(args []objects.GiulioObject) (objects.GiulioObject, *giuerrors.RuntimeError) {
	arr, ok := args[0].(*objects.Array)
	if !ok {
		return nil, giuerrors.NewTypeMismatch("array", objects.TypeName(args[0]))
	}
	sep, ok := args[1].(*objects.String)
	if !ok {
		return nil, giuerrors.NewTypeMismatch("string", objects.TypeName(args[1]))
	}

	parts := make([]string, 0, len(arr.Elements))
	for _, elem := range arr.Elements {
		parts = append(parts, elem.ToString())
	}
	return &objects.String{Value: strings.Join(parts, sep.Value)}, nil
}
