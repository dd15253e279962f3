/*
File    : go-giulio/objects/structs.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package objects

import (
	"fmt"
	"sort"
	"strings"
)

// Struct represents a struct value: both the prototype stored under the
// type name at definition time and every instance built from a struct
// literal. Fields maps field names to values; Methods maps method names to
// Function values. Instances are mutated copy-on-write: method calls and
// field assignments clone the receiver and write the updated struct back
// to its slot.
type Struct struct {
	Name    string
	Fields  map[string]GiulioObject
	Methods map[string]GiulioObject
}

// GetType returns the type of the Struct object
func (s *Struct) GetType() GiulioType {
	return StructType
}

// ToString returns "Name{ field: value, ... }" with fields in sorted order
// so the rendering is deterministic.
func (s *Struct) ToString() string {
	names := s.FieldNames()
	parts := make([]string, 0, len(names))
	for _, name := range names {
		parts = append(parts, fmt.Sprintf("%s: %s", name, s.Fields[name].ToString()))
	}
	return s.Name + "{ " + strings.Join(parts, ", ") + " }"
}

// ToObject returns a detailed representation including type info
func (s *Struct) ToObject() string {
	return fmt.Sprintf("<struct %s(%s)>", s.Name, s.ToString())
}

// FieldNames returns the struct's field names in sorted order.
func (s *Struct) FieldNames() []string {
	names := make([]string, 0, len(s.Fields))
	for name := range s.Fields {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Clone returns a copy of the struct with its own field map. The method
// table is shared: methods are immutable after definition.
func (s *Struct) Clone() *Struct {
	fields := make(map[string]GiulioObject, len(s.Fields))
	for k, v := range s.Fields {
		fields[k] = v
	}
	return &Struct{
		Name:    s.Name,
		Fields:  fields,
		Methods: s.Methods,
	}
}

// Module represents a loaded module value: a name plus a mapping from
// exported identifiers to values. Modules are cached by canonical path in
// the module registry and shared between importers.
type Module struct {
	Name    string
	Exports map[string]GiulioObject
}

// GetType returns the type of the Module object
func (m *Module) GetType() GiulioType {
	return ModuleType
}

// ToString returns "[module: name]"
func (m *Module) ToString() string {
	return fmt.Sprintf("[module: %s]", m.Name)
}

// ToObject returns a detailed representation listing the export names
func (m *Module) ToObject() string {
	names := make([]string, 0, len(m.Exports))
	for name := range m.Exports {
		names = append(names, name)
	}
	sort.Strings(names)
	return fmt.Sprintf("<module %s(exports:%v)>", m.Name, names)
}
