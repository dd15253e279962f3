/*
File    : go-giulio/std/json.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package std

import (
	"encoding/json"
	"math"
	"math/big"
	"sort"
	"strings"

	giuerrors "github.com/akashmaji946/go-giulio/errors"
	"github.com/akashmaji946/go-giulio/objects"
)

// std::json module natives: serialize and deserialize.
//
// Serialization maps Giulio values onto the JSON data model. Hash keys are
// rendered as strings; functions, futures, and modules have no JSON form
// and fail. Deserialization produces hashes for objects, arrays for
// arrays, and normalizes whole numbers back to integers.

// jsonSerializeFn implements serialize(v): the JSON text for v.
func jsonSerializeFn(args []objects.GiulioObject) (objects.GiulioObject, *giuerrors.RuntimeError) {
	value, err := objectToJSON(args[0])
	if err != nil {
		return nil, err
	}
	text, jerr := json.Marshal(value)
	if jerr != nil {
		return nil, giuerrors.NewInvalidOperation("cannot serialize to JSON: %v", jerr)
	}
	return &objects.String{Value: string(text)}, nil
}

// jsonDeserializeFn implements deserialize(s): the value encoded by the
// JSON text s.
func jsonDeserializeFn(args []objects.GiulioObject) (objects.GiulioObject, *giuerrors.RuntimeError) {
	text, ok := args[0].(*objects.String)
	if !ok {
		return nil, giuerrors.NewTypeMismatch("string", objects.TypeName(args[0]))
	}

	decoder := json.NewDecoder(strings.NewReader(text.Value))
	decoder.UseNumber()
	var value interface{}
	if err := decoder.Decode(&value); err != nil {
		return nil, giuerrors.NewInvalidOperation("cannot deserialize JSON: %v", err)
	}
	return jsonToObject(value)
}

// objectToJSON converts a Giulio value to the encoding/json value model.
func objectToJSON(obj objects.GiulioObject) (interface{}, *giuerrors.RuntimeError) {
	switch o := obj.(type) {
	case *objects.Integer:
		return o.Value, nil
	case *objects.BigInteger:
		// Big integers survive as JSON numbers only while exact
		if o.Value.IsInt64() {
			return o.Value.Int64(), nil
		}
		f, accuracy := new(big.Float).SetInt(o.Value).Float64()
		if math.IsInf(f, 0) {
			return nil, giuerrors.NewInvalidOperation("BigInteger %s is too large for JSON representation", o.Value.String())
		}
		if accuracy != big.Exact {
			return nil, giuerrors.NewInvalidOperation("BigInteger %s cannot be accurately represented in JSON (precision loss)", o.Value.String())
		}
		return f, nil
	case *objects.Float:
		if math.IsNaN(o.Value) || math.IsInf(o.Value, 0) {
			return nil, giuerrors.NewInvalidOperation("Cannot serialize %s to JSON (JSON doesn't support infinity or NaN)", o.ToString())
		}
		return o.Value, nil
	case *objects.Boolean:
		return o.Value, nil
	case *objects.String:
		return o.Value, nil
	case *objects.Null:
		return nil, nil
	case *objects.Array:
		out := make([]interface{}, 0, len(o.Elements))
		for _, elem := range o.Elements {
			v, err := objectToJSON(elem)
			if err != nil {
				return nil, err
			}
			out = append(out, v)
		}
		return out, nil
	case *objects.Hash:
		out := make(map[string]interface{}, o.Len())
		for _, key := range o.Keys {
			pair := o.Pairs[key]
			v, err := objectToJSON(pair.Value)
			if err != nil {
				return nil, err
			}
			out[pair.Key.ToString()] = v
		}
		return out, nil
	case *objects.Struct:
		out := make(map[string]interface{}, len(o.Fields))
		for name, value := range o.Fields {
			v, err := objectToJSON(value)
			if err != nil {
				return nil, err
			}
			out[name] = v
		}
		return out, nil
	default:
		return nil, giuerrors.NewInvalidOperation("value of type '%s' cannot be serialized to JSON", objects.TypeName(obj))
	}
}

// jsonToObject converts a decoded JSON value to a Giulio value. Whole
// numbers become integers (big when needed); object keys come back in
// sorted order so the resulting hash iterates deterministically.
func jsonToObject(value interface{}) (objects.GiulioObject, *giuerrors.RuntimeError) {
	switch v := value.(type) {
	case nil:
		return objects.NULL, nil
	case bool:
		return objects.NativeBoolean(v), nil
	case string:
		return &objects.String{Value: v}, nil
	case json.Number:
		if n, err := v.Int64(); err == nil {
			return &objects.Integer{Value: n}, nil
		}
		if b, ok := new(big.Int).SetString(v.String(), 10); ok {
			return objects.NormalizeInt(b), nil
		}
		f, err := v.Float64()
		if err != nil {
			return nil, giuerrors.NewInvalidOperation("cannot deserialize number %s", v.String())
		}
		return &objects.Float{Value: f}, nil
	case []interface{}:
		elems := make([]objects.GiulioObject, 0, len(v))
		for _, item := range v {
			obj, err := jsonToObject(item)
			if err != nil {
				return nil, err
			}
			elems = append(elems, obj)
		}
		return &objects.Array{Elements: elems}, nil
	case map[string]interface{}:
		keys := make([]string, 0, len(v))
		for key := range v {
			keys = append(keys, key)
		}
		sort.Strings(keys)

		hash := objects.NewHash()
		for _, key := range keys {
			obj, err := jsonToObject(v[key])
			if err != nil {
				return nil, err
			}
			if err := hash.Set(&objects.String{Value: key}, obj); err != nil {
				return nil, err
			}
		}
		return hash, nil
	default:
		return nil, giuerrors.NewInvalidOperation("unsupported JSON value")
	}
}
