package domain

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
)

// DecodeObject unmarshals raw into dst, rejecting anything that is not a JSON
// object (null, arrays, scalars). Unknown keys are ignored. A value of the
// wrong type is keyed at its field path; other failures at the root path "".
func DecodeObject(raw json.RawMessage, dst any) error {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return &ValidationError{Fields: map[string]string{"": "must be an object"}}
	}
	if err := json.Unmarshal(trimmed, dst); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			return &ValidationError{Fields: map[string]string{
				typeErr.Field: fmt.Sprintf("must be %s, got %s", kindName(typeErr.Type), typeErr.Value),
			}}
		}
		return &ValidationError{Fields: map[string]string{"": "invalid: " + err.Error()}}
	}
	return nil
}

// DecodeFields splits a JSON object into its raw members so each one can be
// decoded and validated on its own.
func DecodeFields(raw json.RawMessage) (map[string]json.RawMessage, error) {
	var fields map[string]json.RawMessage
	if err := DecodeObject(raw, &fields); err != nil {
		return nil, err
	}
	return fields, nil
}

// DecodeArray unmarshals raw into a slice of raw elements. A missing or null
// value yields a nil slice and false; a non-array value yields an error.
func DecodeArray(raw json.RawMessage) ([]json.RawMessage, bool, error) {
	if Absent(raw) {
		return nil, false, nil
	}
	trimmed := bytes.TrimSpace(raw)
	if trimmed[0] != '[' {
		return nil, false, &ValidationError{Fields: map[string]string{"": MsgNotArray}}
	}
	var elems []json.RawMessage
	if err := json.Unmarshal(trimmed, &elems); err != nil {
		return nil, false, &ValidationError{Fields: map[string]string{"": "invalid: " + err.Error()}}
	}
	if elems == nil {
		elems = []json.RawMessage{}
	}
	return elems, true, nil
}

// Absent reports whether a member was missing or explicitly null.
func Absent(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null"))
}

// DecodeBool decodes a boolean member. Absent members return nil without a
// failure so the caller can report them as required.
func DecodeBool(fe *FieldErrors, path string, raw json.RawMessage) *bool {
	if Absent(raw) {
		return nil
	}
	var v bool
	if err := json.Unmarshal(raw, &v); err != nil {
		fe.Add(path, mistyped("a boolean", raw))
		return nil
	}
	return &v
}

// DecodeInt decodes an integer member. Fractional and out-of-range numbers
// are type failures.
func DecodeInt(fe *FieldErrors, path string, raw json.RawMessage) *int {
	if Absent(raw) {
		return nil
	}
	var v int
	if err := json.Unmarshal(raw, &v); err != nil {
		fe.Add(path, mistyped("an integer", raw))
		return nil
	}
	return &v
}

// DecodeInts decodes an array of integers, recording a failure at path[i]
// for every element that is not an integer. It returns nil when the member
// is absent or unusable; the caller reports absence.
func DecodeInts(fe *FieldErrors, path string, raw json.RawMessage) []int {
	elems, present, err := DecodeArray(raw)
	if err != nil {
		fe.Merge(path, err)
		return nil
	}
	if !present {
		return nil
	}

	vals := make([]int, len(elems))
	ok := true
	for i, elem := range elems {
		v := DecodeInt(fe, Index(path, i), elem)
		if v == nil {
			if Absent(elem) {
				fe.Add(Index(path, i), mistyped("an integer", elem))
			}
			ok = false
			continue
		}
		vals[i] = *v
	}
	if !ok {
		return nil
	}
	return vals
}

// DecodeIntTuples decodes an array of integer arrays such as a block's
// segment list, with failures keyed at path[i][j]. Unusable elements are
// left nil.
func DecodeIntTuples(fe *FieldErrors, path string, raw json.RawMessage) [][]int {
	elems, present, err := DecodeArray(raw)
	if err != nil {
		fe.Merge(path, err)
		return nil
	}
	if !present {
		return nil
	}

	tuples := make([][]int, len(elems))
	for i, elem := range elems {
		tuples[i] = DecodeInts(fe, Index(path, i), elem)
	}
	return tuples
}

func mistyped(want string, raw json.RawMessage) string {
	return fmt.Sprintf("must be %s, got %s", want, describe(raw))
}

// describe names the JSON kind of raw without echoing long values back.
func describe(raw json.RawMessage) string {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return "nothing"
	}
	switch trimmed[0] {
	case '"':
		return "string"
	case '{':
		return "object"
	case '[':
		return "array"
	case 't', 'f':
		return "boolean"
	case 'n':
		return "null"
	default:
		return "number " + string(trimmed)
	}
}

func kindName(t reflect.Type) string {
	if t == nil {
		return "a different type"
	}
	switch t.Kind() {
	case reflect.Bool:
		return "a boolean"
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return "an integer"
	case reflect.Float32, reflect.Float64:
		return "a number"
	case reflect.String:
		return "a string"
	case reflect.Slice, reflect.Array:
		return "an array"
	case reflect.Pointer:
		return kindName(t.Elem())
	default:
		return "an object"
	}
}
