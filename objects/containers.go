/*
File    : go-giulio/objects/containers.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package objects

import (
	"fmt"
	"strings"

	giuerrors "github.com/akashmaji946/go-giulio/errors"
)

// Array represents an ordered sequence of Giulio objects.
// It holds a slice of GiulioObject elements and provides methods for type
// identification, string representation (as a comma-separated list), and
// object inspection. Index assignment follows the copy-on-mutate discipline:
// the evaluator reads the whole array, mutates a copy, and writes it back.
type Array struct {
	Elements []GiulioObject // The slice of Giulio objects in the array
}

// GetType returns the type of the Array object
func (a *Array) GetType() GiulioType {
	return ArrayType
}

// ToString returns a string representation of the array as "[elem1, elem2, ...]"
func (a *Array) ToString() string {
	return "[" + joinObjects(a.Elements, ", ") + "]"
}

// ToObject returns a detailed representation of the array as "<array([...])>"
func (a *Array) ToObject() string {
	parts := make([]string, 0, len(a.Elements))
	for _, e := range a.Elements {
		parts = append(parts, e.ToObject())
	}
	return "<array([" + strings.Join(parts, ", ") + "])>"
}

// Clone returns a shallow copy of the array with its own element slice.
func (a *Array) Clone() *Array {
	elems := make([]GiulioObject, len(a.Elements))
	copy(elems, a.Elements)
	return &Array{Elements: elems}
}

// HashKey is the comparable identity of a hashable object. Only Integer,
// BigInteger, Boolean, and String values produce hash keys; container and
// function identity never key a hash. BigInteger keys use their decimal
// text, which cannot collide with Integer keys because live big integers
// are always outside the i64 range.
type HashKey struct {
	Type     GiulioType
	IntValue int64
	StrValue string
}

// HashPair stores one hash entry: the original key object plus its value.
// Keeping the key object around lets keys()/iteration hand back real values
// instead of reconstructing them from the HashKey.
type HashPair struct {
	Key   GiulioObject
	Value GiulioObject
}

// ToHashKey computes the HashKey for obj, or a NotHashable runtime error
// when obj is not one of the hashable types.
func ToHashKey(obj GiulioObject) (HashKey, *giuerrors.RuntimeError) {
	switch o := obj.(type) {
	case *Integer:
		return HashKey{Type: IntegerType, IntValue: o.Value}, nil
	case *BigInteger:
		return HashKey{Type: BigIntegerType, StrValue: o.Value.String()}, nil
	case *Boolean:
		k := HashKey{Type: BooleanType}
		if o.Value {
			k.IntValue = 1
		}
		return k, nil
	case *String:
		return HashKey{Type: StringType, StrValue: o.Value}, nil
	default:
		return HashKey{}, giuerrors.NewNotHashable(TypeName(obj))
	}
}

// IsHashable reports whether obj may be used as a hash key.
func IsHashable(obj GiulioObject) bool {
	_, err := ToHashKey(obj)
	return err == nil
}

// Hash represents a mapping from hashable values to values.
// Pairs stores the entries keyed by their HashKey; Keys preserves insertion
// order so iteration is stable for the lifetime of the instance.
type Hash struct {
	Pairs map[HashKey]HashPair // Entries keyed by hashable identity
	Keys  []HashKey            // Insertion-ordered keys for iteration
}

// NewHash creates an empty hash.
func NewHash() *Hash {
	return &Hash{
		Pairs: make(map[HashKey]HashPair),
		Keys:  make([]HashKey, 0),
	}
}

// GetType returns the type of the Hash object
func (h *Hash) GetType() GiulioType {
	return HashType
}

// ToString returns a string representation of the hash as "{k : v, ...}"
func (h *Hash) ToString() string {
	parts := make([]string, 0, len(h.Keys))
	for _, key := range h.Keys {
		pair := h.Pairs[key]
		parts = append(parts, fmt.Sprintf("%s : %s", pair.Key.ToString(), pair.Value.ToString()))
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

// ToObject returns a detailed representation of the hash
func (h *Hash) ToObject() string {
	parts := make([]string, 0, len(h.Keys))
	for _, key := range h.Keys {
		pair := h.Pairs[key]
		parts = append(parts, fmt.Sprintf("%s: %s", pair.Key.ToObject(), pair.Value.ToObject()))
	}
	return "<hash{" + strings.Join(parts, ", ") + "}>"
}

// Set inserts or updates the entry for key. New keys are appended to the
// iteration order; existing keys keep their position.
func (h *Hash) Set(key GiulioObject, value GiulioObject) *giuerrors.RuntimeError {
	hk, err := ToHashKey(key)
	if err != nil {
		return err
	}
	if _, exists := h.Pairs[hk]; !exists {
		h.Keys = append(h.Keys, hk)
	}
	h.Pairs[hk] = HashPair{Key: key, Value: value}
	return nil
}

// Get returns the value for key, or NULL when the key is absent. Absence is
// indistinguishable from a stored null; use Has for membership tests.
func (h *Hash) Get(key GiulioObject) (GiulioObject, *giuerrors.RuntimeError) {
	hk, err := ToHashKey(key)
	if err != nil {
		return nil, err
	}
	if pair, ok := h.Pairs[hk]; ok {
		return pair.Value, nil
	}
	return NULL, nil
}

// Has reports whether key is present in the hash.
func (h *Hash) Has(key GiulioObject) (bool, *giuerrors.RuntimeError) {
	hk, err := ToHashKey(key)
	if err != nil {
		return false, err
	}
	_, ok := h.Pairs[hk]
	return ok, nil
}

// Remove deletes the entry for key if present.
func (h *Hash) Remove(key GiulioObject) *giuerrors.RuntimeError {
	hk, err := ToHashKey(key)
	if err != nil {
		return err
	}
	if _, ok := h.Pairs[hk]; !ok {
		return nil
	}
	delete(h.Pairs, hk)
	for i, k := range h.Keys {
		if k == hk {
			h.Keys = append(h.Keys[:i], h.Keys[i+1:]...)
			break
		}
	}
	return nil
}

// Len returns the number of entries in the hash.
func (h *Hash) Len() int {
	return len(h.Pairs)
}

// Clone returns a shallow copy of the hash with its own pair map and key
// slice. Entry values are shared.
func (h *Hash) Clone() *Hash {
	pairs := make(map[HashKey]HashPair, len(h.Pairs))
	for k, v := range h.Pairs {
		pairs[k] = v
	}
	keys := make([]HashKey, len(h.Keys))
	copy(keys, h.Keys)
	return &Hash{Pairs: pairs, Keys: keys}
}
