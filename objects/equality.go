/*
File    : go-giulio/objects/equality.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package objects

import (
	"reflect"
	"sort"
)

// Equals implements structural equality between two Giulio objects, the
// semantics behind the == and != operators.
//
// Rules:
//   - Primitives compare by value. Integer and BigInteger only compare
//     equal within their own type; normalization guarantees the same
//     mathematical value is always represented the same way.
//   - Arrays compare elementwise; hashes compare entry sets.
//   - Functions compare by parameter list and body; the captured
//     environment is ignored.
//   - Builtins compare by name and arity window.
//   - Modules compare by name and export-name set.
//   - Futures never compare equal, not even to themselves.
//   - Anything else, including struct instances, compares unequal.
func Equals(a, b GiulioObject) bool {
	switch x := a.(type) {
	case *Integer:
		y, ok := b.(*Integer)
		return ok && x.Value == y.Value
	case *BigInteger:
		y, ok := b.(*BigInteger)
		return ok && x.Value.Cmp(y.Value) == 0
	case *Float:
		y, ok := b.(*Float)
		return ok && x.Value == y.Value
	case *Boolean:
		y, ok := b.(*Boolean)
		return ok && x.Value == y.Value
	case *String:
		y, ok := b.(*String)
		return ok && x.Value == y.Value
	case *Null:
		_, ok := b.(*Null)
		return ok
	case *Array:
		y, ok := b.(*Array)
		if !ok || len(x.Elements) != len(y.Elements) {
			return false
		}
		for i := range x.Elements {
			if !Equals(x.Elements[i], y.Elements[i]) {
				return false
			}
		}
		return true
	case *Hash:
		y, ok := b.(*Hash)
		if !ok || x.Len() != y.Len() {
			return false
		}
		for key, pair := range x.Pairs {
			other, found := y.Pairs[key]
			if !found || !Equals(pair.Value, other.Value) {
				return false
			}
		}
		return true
	case *Function:
		y, ok := b.(*Function)
		return ok && reflect.DeepEqual(x.Params, y.Params) && reflect.DeepEqual(x.Body, y.Body)
	case *AsyncFunction:
		y, ok := b.(*AsyncFunction)
		return ok && reflect.DeepEqual(x.Params, y.Params) && reflect.DeepEqual(x.Body, y.Body)
	case *Builtin:
		y, ok := b.(*Builtin)
		return ok && x.Name == y.Name && x.MinArgs == y.MinArgs && x.MaxArgs == y.MaxArgs
	case *StdBuiltin:
		y, ok := b.(*StdBuiltin)
		return ok && x.Name == y.Name && x.MinArgs == y.MinArgs && x.MaxArgs == y.MaxArgs
	case *Module:
		y, ok := b.(*Module)
		return ok && x.Name == y.Name && sameExportNames(x.Exports, y.Exports)
	case *ReturnValue:
		y, ok := b.(*ReturnValue)
		return ok && Equals(x.Value, y.Value)
	case *ThrownValue:
		y, ok := b.(*ThrownValue)
		return ok && Equals(x.Value, y.Value)
	case *Error:
		y, ok := b.(*Error)
		return ok && *x.Err == *y.Err
	case *Break:
		_, ok := b.(*Break)
		return ok
	case *Continue:
		_, ok := b.(*Continue)
		return ok
	default:
		return false
	}
}

// sameExportNames reports whether two export maps bind the same set of names.
func sameExportNames(a, b map[string]GiulioObject) bool {
	if len(a) != len(b) {
		return false
	}
	an := make([]string, 0, len(a))
	for name := range a {
		an = append(an, name)
	}
	bn := make([]string, 0, len(b))
	for name := range b {
		bn = append(bn, name)
	}
	sort.Strings(an)
	sort.Strings(bn)
	return reflect.DeepEqual(an, bn)
}
