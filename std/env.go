/*
File    : go-giulio/std/env.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package std

import (
	"os"

	giuerrors "github.com/akashmaji946/go-giulio/errors"
	"github.com/akashmaji946/go-giulio/objects"
)

// std::env module natives.

// envArgsFn implements args(): every process argument after the executable
// name, as an array of strings. The sub-command and the script path are
// not removed.
func envArgsFn(args []objects.GiulioObject) (objects.GiulioObject, *giuerrors.RuntimeError) {
	elems := make([]objects.GiulioObject, 0)
	for _, arg := range os.Args[1:] {
		elems = append(elems, &objects.String{Value: arg})
	}
	return &objects.Array{Elements: elems}, nil
}
