// Package jsonvalue represents parsed JSON as a tree of tagged values.
//
// Object members keep their document order so that iteration is reproducible.
// Accessors never panic; a lookup of the wrong kind reports ok == false.
package jsonvalue

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

type Kind int

const (
	Null Kind = iota
	Bool
	Number
	String
	Array
	Object
)

func (k Kind) String() string {
	switch k {
	case Null:
		return "null"
	case Bool:
		return "bool"
	case Number:
		return "number"
	case String:
		return "string"
	case Array:
		return "array"
	case Object:
		return "object"
	}
	return "unknown"
}

type Value struct {
	kind   Kind
	b      bool
	num    float64
	str    string
	array  []*Value
	object *Obj
}

// Member is a single key/value pair of an object.
type Member struct {
	Key   string
	Value *Value
}

// Obj is a JSON object with ordered members.
type Obj struct {
	members []Member
	index   map[string]int
}

// MaxDepth is the deepest array/object nesting Decode accepts.
const MaxDepth = 10000

var (
	ErrTrailingData = errors.New("unexpected data after top-level value")
	ErrTooDeep      = errors.New("exceeded max nesting depth")
)

func NewNull() *Value              { return &Value{kind: Null} }
func NewBool(b bool) *Value        { return &Value{kind: Bool, b: b} }
func NewNumber(n float64) *Value   { return &Value{kind: Number, num: n} }
func NewString(s string) *Value    { return &Value{kind: String, str: s} }
func NewArray(a ...*Value) *Value  { return &Value{kind: Array, array: a} }
func NewObjectValue(o *Obj) *Value { return &Value{kind: Object, object: o} }

func NewObject() *Obj {
	return &Obj{index: map[string]int{}}
}

// Parse decodes exactly one JSON value from text.
func Parse(text string) (*Value, error) {
	return Decode(strings.NewReader(text))
}

// ParseBytes decodes exactly one JSON value from data.
func ParseBytes(data []byte) (*Value, error) {
	return Decode(bytes.NewReader(data))
}

// Decode reads one JSON value from r. Anything but whitespace after the value is an error.
func Decode(r io.Reader) (*Value, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()
	v, err := decodeValue(dec, 0)
	if err != nil {
		return nil, err
	}
	if _, err := dec.Token(); err != io.EOF {
		if err != nil {
			return nil, err
		}
		return nil, ErrTrailingData
	}
	return v, nil
}

func decodeValue(dec *json.Decoder, depth int) (*Value, error) {
	tok, err := dec.Token()
	if err != nil {
		if err == io.EOF {
			return nil, io.ErrUnexpectedEOF
		}
		return nil, err
	}
	switch t := tok.(type) {
	case json.Delim:
		if depth++; depth > MaxDepth {
			return nil, ErrTooDeep
		}
		switch t {
		case '{':
			obj := NewObject()
			for dec.More() {
				keyTok, err := dec.Token()
				if err != nil {
					return nil, err
				}
				key, ok := keyTok.(string)
				if !ok {
					return nil, fmt.Errorf("object key is %T", keyTok)
				}
				v, err := decodeValue(dec, depth)
				if err != nil {
					return nil, err
				}
				obj.Set(key, v)
			}
			if _, err := dec.Token(); err != nil {
				return nil, err
			}
			return NewObjectValue(obj), nil
		case '[':
			arr := []*Value{}
			for dec.More() {
				v, err := decodeValue(dec, depth)
				if err != nil {
					return nil, err
				}
				arr = append(arr, v)
			}
			if _, err := dec.Token(); err != nil {
				return nil, err
			}
			return NewArray(arr...), nil
		}
		return nil, fmt.Errorf("unexpected delimiter %v", t)
	case json.Number:
		// Out of range magnitudes are kept as +-Inf.
		f, err := strconv.ParseFloat(string(t), 64)
		if err != nil && !errors.Is(err, strconv.ErrRange) {
			return nil, err
		}
		return NewNumber(f), nil
	case string:
		return NewString(t), nil
	case bool:
		return NewBool(t), nil
	case nil:
		return NewNull(), nil
	}
	return nil, fmt.Errorf("unexpected token %v", tok)
}

func (v *Value) Kind() Kind {
	if v == nil {
		return Null
	}
	return v.kind
}

func (v *Value) IsNull() bool {
	return v.Kind() == Null
}

func (v *Value) TryGetNumber() (float64, bool) {
	if v.Kind() != Number {
		return 0, false
	}
	return v.num, true
}

func (v *Value) TryGetString() (string, bool) {
	if v.Kind() != String {
		return "", false
	}
	return v.str, true
}

func (v *Value) TryGetBool() (bool, bool) {
	if v.Kind() != Bool {
		return false, false
	}
	return v.b, true
}

func (v *Value) TryGetArray() ([]*Value, bool) {
	if v.Kind() != Array {
		return nil, false
	}
	return v.array, true
}

func (v *Value) TryGetObject() (*Obj, bool) {
	if v.Kind() != Object {
		return nil, false
	}
	return v.object, true
}

// Set adds or replaces a member. A replaced member keeps its original position.
func (o *Obj) Set(key string, v *Value) {
	if o.index == nil {
		o.index = map[string]int{}
	}
	if i, ok := o.index[key]; ok {
		o.members[i].Value = v
		return
	}
	o.index[key] = len(o.members)
	o.members = append(o.members, Member{Key: key, Value: v})
}

func (o *Obj) Get(key string) (*Value, bool) {
	if o == nil {
		return nil, false
	}
	i, ok := o.index[key]
	if !ok {
		return nil, false
	}
	return o.members[i].Value, true
}

func (o *Obj) Len() int {
	if o == nil {
		return 0
	}
	return len(o.members)
}

// Members returns the members in document order.
func (o *Obj) Members() []Member {
	if o == nil {
		return nil
	}
	return o.members
}

func (o *Obj) TryGetNumberField(key string) (float64, bool) {
	v, ok := o.Get(key)
	if !ok {
		return 0, false
	}
	return v.TryGetNumber()
}

func (o *Obj) TryGetStringField(key string) (string, bool) {
	v, ok := o.Get(key)
	if !ok {
		return "", false
	}
	return v.TryGetString()
}

func (o *Obj) TryGetArrayField(key string) ([]*Value, bool) {
	v, ok := o.Get(key)
	if !ok {
		return nil, false
	}
	return v.TryGetArray()
}

func (o *Obj) TryGetObjectField(key string) (*Obj, bool) {
	v, ok := o.Get(key)
	if !ok {
		return nil, false
	}
	return v.TryGetObject()
}
