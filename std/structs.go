/*
File    : go-giulio/std/structs.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package std

import (
	"fmt"

	"github.com/akashmaji946/go-giulio/objects"
)

// Struct reflection natives: set_field, get_field, fields, name.

// bsetFieldFn implements set_field(s, name, value): a copy of s with the
// field added or replaced.
func bsetFieldFn(args []objects.GiulioObject) (objects.GiulioObject, error) {
	s, ok := args[0].(*objects.Struct)
	if !ok {
		return nil, fmt.Errorf("set_field expects (struct, field_name, value)")
	}
	fieldName, ok := args[1].(*objects.String)
	if !ok {
		return nil, fmt.Errorf("set_field expects (struct, field_name, value)")
	}
	out := s.Clone()
	out.Fields[fieldName.Value] = args[2]
	return out, nil
}

// bgetFieldFn implements get_field(s, name): the value of the named field.
func bgetFieldFn(args []objects.GiulioObject) (objects.GiulioObject, error) {
	s, ok := args[0].(*objects.Struct)
	if !ok {
		return nil, fmt.Errorf("get_field expects (struct, field_name)")
	}
	fieldName, ok := args[1].(*objects.String)
	if !ok {
		return nil, fmt.Errorf("get_field expects (struct, field_name)")
	}
	value, exists := s.Fields[fieldName.Value]
	if !exists {
		return nil, fmt.Errorf("field '%s' does not exist", fieldName.Value)
	}
	return value, nil
}

// bstructFieldsFn implements fields(s): the field names as a sorted array
// of strings.
func bstructFieldsFn(args []objects.GiulioObject) (objects.GiulioObject, error) {
	s, ok := args[0].(*objects.Struct)
	if !ok {
		return nil, fmt.Errorf("fields() requires a struct")
	}
	names := s.FieldNames()
	elems := make([]objects.GiulioObject, 0, len(names))
	for _, name := range names {
		elems = append(elems, &objects.String{Value: name})
	}
	return &objects.Array{Elements: elems}, nil
}

// bstructNameFn implements name(s): the struct's type name.
func bstructNameFn(args []objects.GiulioObject) (objects.GiulioObject, error) {
	s, ok := args[0].(*objects.Struct)
	if !ok {
		return nil, fmt.Errorf("name() requires a struct")
	}
	return &objects.String{Value: s.Name}, nil
}
