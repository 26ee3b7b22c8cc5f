package jsonvalue

import (
	"errors"
	"fmt"
	"os"
)

var (
	ErrAmbiguousSource = errors.New("both file path and object were provided, use only one")
	ErrNoSource        = errors.New("neither file path nor object was provided")
	ErrNotObject       = errors.New("root value is not an object")
	ErrFieldNotArray   = errors.New("field not found or is not an array")
)

// ArrayFieldAsStrings reads the array field of a JSON object and converts each
// element into a string. The object is taken from exactly one of filePath or obj.
//
// Objects and arrays are re-encoded as compact JSON, strings are returned as is,
// numbers use SanitizeFloat and null becomes "null".
func ArrayFieldAsStrings(filePath string, obj *Obj, field string) ([]string, error) {
	if filePath != "" && obj != nil {
		return nil, ErrAmbiguousSource
	}

	root := obj
	if filePath != "" {
		data, err := os.ReadFile(filePath)
		if err != nil {
			return nil, fmt.Errorf("load %s: %w", filePath, err)
		}
		v, err := ParseBytes(data)
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", filePath, err)
		}
		var ok bool
		if root, ok = v.TryGetObject(); !ok {
			return nil, fmt.Errorf("parse %s: %w", filePath, ErrNotObject)
		}
	} else if root == nil {
		return nil, ErrNoSource
	}

	elements, ok := root.TryGetArrayField(field)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrFieldNotArray, field)
	}

	result := make([]string, 0, len(elements))
	for _, e := range elements {
		s, err := elementString(e)
		if err != nil {
			return nil, err
		}
		result = append(result, s)
	}
	return result, nil
}

func elementString(v *Value) (string, error) {
	switch v.Kind() {
	case Object, Array:
		b, err := v.MarshalJSON()
		if err != nil {
			return "", err
		}
		return string(b), nil
	case String:
		return v.str, nil
	case Number:
		return SanitizeFloat(v.num), nil
	case Bool:
		if v.b {
			return "true", nil
		}
		return "false", nil
	}
	return "null", nil
}
