package jsonmodel

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"bytes"
	"encoding/json"
	"time"
)

// Object is a JSON object whose members are held in wire form until a model
// asks for them.  Accessors never fail: a member that is absent or of the
// wrong JSON type is reported as not present.
type Object map[string]json.RawMessage

// ParseObject returns the object held in node.  ok is false if node is not a
// JSON object (null, array, scalar or malformed input).
func ParseObject(node []byte) (o Object, ok bool) {
	node = bytes.TrimSpace(node)
	if len(node) == 0 || node[0] != '{' {
		return nil, false
	}

	if err := json.Unmarshal(node, &o); err != nil {
		return nil, false
	}

	return o, true
}

func (o Object) member(name string, v interface{}) bool {
	raw, found := o[name]
	if !found || len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return false
	}

	return json.Unmarshal(raw, v) == nil
}

// String returns the string member name.
func (o Object) String(name string) (string, bool) {
	var s string
	if !o.member(name, &s) {
		return "", false
	}
	return s, true
}

// Int64 returns the integer member name.
func (o Object) Int64(name string) (int64, bool) {
	var i int64
	if !o.member(name, &i) {
		return 0, false
	}
	return i, true
}

// Int32 returns the integer member name.
func (o Object) Int32(name string) (int32, bool) {
	var i int32
	if !o.member(name, &i) {
		return 0, false
	}
	return i, true
}

// Float64 returns the numeric member name.
func (o Object) Float64(name string) (float64, bool) {
	var f float64
	if !o.member(name, &f) {
		return 0, false
	}
	return f, true
}

// Bool returns the boolean member name.
func (o Object) Bool(name string) (bool, bool) {
	var b bool
	if !o.member(name, &b) {
		return false, false
	}
	return b, true
}

// Duration returns the member name parsed from its ISO-8601 text form.
func (o Object) Duration(name string) (time.Duration, bool) {
	s, ok := o.String(name)
	if !ok {
		return 0, false
	}

	d, err := ParseDuration(s)
	if err != nil {
		return 0, false
	}
	return d, true
}

// Time returns the member name parsed as an RFC3339 timestamp.
func (o Object) Time(name string) (time.Time, bool) {
	s, ok := o.String(name)
	if !ok {
		return time.Time{}, false
	}

	t, err := ParseTime(s)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// Object returns the nested object member name.
func (o Object) Object(name string) (Object, bool) {
	raw, found := o[name]
	if !found {
		return nil, false
	}
	return ParseObject(raw)
}

// Array returns the elements of the array member name, still in wire form.
func (o Object) Array(name string) ([]json.RawMessage, bool) {
	var a []json.RawMessage
	if !o.member(name, &a) {
		return nil, false
	}
	return a, true
}

// StringSlice returns the array-of-strings member name.
func (o Object) StringSlice(name string) ([]string, bool) {
	var s []string
	if !o.member(name, &s) {
		return nil, false
	}
	return s, true
}

// StringMap returns the string-valued object member name.
func (o Object) StringMap(name string) (map[string]string, bool) {
	var m map[string]string
	if !o.member(name, &m) {
		return nil, false
	}
	return m, true
}

func (o Object) set(name string, v interface{}) {
	b, err := json.Marshal(v)
	if err != nil {
		return
	}
	o[name] = b
}

// SetString writes s under name if s is not nil.
func (o Object) SetString(name string, s *string) {
	if s != nil {
		o.set(name, *s)
	}
}

// SetInt64 writes i under name if i is not nil.
func (o Object) SetInt64(name string, i *int64) {
	if i != nil {
		o.set(name, *i)
	}
}

// SetInt32 writes i under name if i is not nil.
func (o Object) SetInt32(name string, i *int32) {
	if i != nil {
		o.set(name, *i)
	}
}

// SetFloat64 writes f under name if f is not nil.
func (o Object) SetFloat64(name string, f *float64) {
	if f != nil {
		o.set(name, *f)
	}
}

// SetBool writes b under name if b is not nil.
func (o Object) SetBool(name string, b *bool) {
	if b != nil {
		o.set(name, *b)
	}
}

// SetDuration writes d in ISO-8601 text form under name if d is not nil.
func (o Object) SetDuration(name string, d *time.Duration) {
	if d != nil {
		o.set(name, FormatDuration(*d))
	}
}

// SetTime writes t in RFC3339 form under name if t is not nil.
func (o Object) SetTime(name string, t *time.Time) {
	if t != nil {
		o.set(name, t.Format(time.RFC3339Nano))
	}
}

// SetObject writes the nested object v under name if v is not nil.
func (o Object) SetObject(name string, v Object) {
	if v != nil {
		o.set(name, v)
	}
}

// SetArray writes the array v under name if it is not empty.
func (o Object) SetArray(name string, v []Object) {
	if len(v) > 0 {
		o.set(name, v)
	}
}

// SetStringSlice writes s under name if it is not empty.
func (o Object) SetStringSlice(name string, s []string) {
	if len(s) > 0 {
		o.set(name, s)
	}
}

// SetStringMap writes m under name if it is not empty.
func (o Object) SetStringMap(name string, m map[string]string) {
	if len(m) > 0 {
		o.set(name, m)
	}
}
