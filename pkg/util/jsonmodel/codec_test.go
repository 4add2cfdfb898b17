package jsonmodel

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/to"
	"github.com/go-test/deep"
)

type colour string

const (
	colourRed  colour = "Red"
	colourBlue colour = "Blue"
)

type widget struct {
	Name     *string
	Count    *int64
	Timeout  *time.Duration
	Colour   *colour
	Tags     map[string]string
	Revision *string // read-only
}

var widgetCodec = NewCodec(
	func(o Object, w *widget) {
		if v, ok := o.String("name"); ok {
			w.Name = &v
		}
		if v, ok := o.Int64("count"); ok {
			w.Count = &v
		}
		if v, ok := o.Duration("timeout"); ok {
			w.Timeout = &v
		}
		if v := EnumPtr(o, "colour", []colour{colourRed, colourBlue}); v != nil {
			w.Colour = v
		}
		if v, ok := o.StringMap("tags"); ok {
			w.Tags = v
		}
		if v, ok := o.String("revision"); ok {
			w.Revision = &v
		}
	},
	func(w *widget, o Object, mode Mode) {
		o.SetString("name", w.Name)
		o.SetInt64("count", w.Count)
		o.SetDuration("timeout", w.Timeout)
		SetEnum(o, "colour", w.Colour)
		o.SetStringMap("tags", w.Tags)
		if mode.Has(IncludeRead) {
			o.SetString("revision", w.Revision)
		}
	},
)

func (w *widget) ToJSON(container Object, mode Mode) Object {
	return widgetCodec.ToJSON(w, container, mode)
}

func TestCodecRoundTrip(t *testing.T) {
	for _, tt := range []struct {
		name  string
		input *widget
		mode  Mode
		want  *widget
	}{
		{
			name:  "empty",
			input: &widget{},
			mode:  IncludeAll,
			want:  &widget{},
		},
		{
			name: "all fields",
			input: &widget{
				Name:     to.Ptr("w1"),
				Count:    to.Ptr(int64(3)),
				Timeout:  to.Ptr(90 * time.Minute),
				Colour:   to.Ptr(colourBlue),
				Tags:     map[string]string{"k": "v"},
				Revision: to.Ptr("7"),
			},
			mode: IncludeAll,
			want: &widget{
				Name:     to.Ptr("w1"),
				Count:    to.Ptr(int64(3)),
				Timeout:  to.Ptr(90 * time.Minute),
				Colour:   to.Ptr(colourBlue),
				Tags:     map[string]string{"k": "v"},
				Revision: to.Ptr("7"),
			},
		},
		{
			name: "explicit zero is kept",
			input: &widget{
				Count: to.Ptr(int64(0)),
			},
			mode: IncludeAll,
			want: &widget{
				Count: to.Ptr(int64(0)),
			},
		},
		{
			name: "read-only field dropped on update",
			input: &widget{
				Name:     to.Ptr("w1"),
				Revision: to.Ptr("7"),
			},
			mode: IncludeUpdate,
			want: &widget{
				Name: to.Ptr("w1"),
			},
		},
	} {
		t.Run(tt.name, func(t *testing.T) {
			b, err := Marshal(tt.input, tt.mode)
			if err != nil {
				t.Fatal(err)
			}

			got := widgetCodec.FromJSON(b)

			for _, diff := range deep.Equal(got, tt.want) {
				t.Error(diff)
			}
		})
	}
}

func TestCodecOmitsUnsetFields(t *testing.T) {
	b, err := Marshal(&widget{Timeout: to.Ptr(2 * time.Hour)}, IncludeAll)
	if err != nil {
		t.Fatal(err)
	}

	if string(b) != `{"timeout":"PT2H"}` {
		t.Error(string(b))
	}
}

func TestCodecFromJSON(t *testing.T) {
	for _, tt := range []struct {
		name  string
		input string
		want  *widget
	}{
		{
			name:  "null",
			input: `null`,
		},
		{
			name:  "array",
			input: `[{"name":"w1"}]`,
		},
		{
			name:  "string",
			input: `"w1"`,
		},
		{
			name:  "malformed",
			input: `{"name":`,
		},
		{
			name:  "unknown keys are ignored",
			input: `{"name":"w1","unknown":{"deep":[1,2,3]}}`,
			want: &widget{
				Name: to.Ptr("w1"),
			},
		},
		{
			name:  "mistyped members are left unset",
			input: `{"name":42,"count":"three","timeout":"two hours","colour":"Green"}`,
			want:  &widget{},
		},
		{
			name:  "enum symbols match case-insensitively",
			input: `{"colour":"red"}`,
			want: &widget{
				Colour: to.Ptr(colourRed),
			},
		},
	} {
		t.Run(tt.name, func(t *testing.T) {
			got := widgetCodec.FromJSON([]byte(tt.input))

			for _, diff := range deep.Equal(got, tt.want) {
				t.Error(diff)
			}
		})
	}
}

func TestCodecDecodeKeepsPriorValues(t *testing.T) {
	w := &widget{
		Name:  to.Ptr("before"),
		Count: to.Ptr(int64(1)),
	}

	err := widgetCodec.Unmarshal([]byte(`{"count":2}`), w)
	if err != nil {
		t.Fatal(err)
	}

	want := &widget{
		Name:  to.Ptr("before"),
		Count: to.Ptr(int64(2)),
	}
	for _, diff := range deep.Equal(w, want) {
		t.Error(diff)
	}
}

func TestCodecHooks(t *testing.T) {
	for _, tt := range []struct {
		name       string
		hooks      Hooks[widget]
		input      string
		wantDecode *widget
		wantEncode string
	}{
		{
			name:       "no hooks",
			input:      `{"name":"w1"}`,
			wantDecode: &widget{Name: to.Ptr("w1")},
			wantEncode: `{"name":"w1"}`,
		},
		{
			name: "before hooks short-circuit",
			hooks: Hooks[widget]{
				BeforeFromJSON: func(o Object, w *widget) bool {
					w.Name = to.Ptr("custom")
					return true
				},
				AfterFromJSON: func(o Object, w *widget) {
					t.Error("AfterFromJSON must not run")
				},
				BeforeToJSON: func(w *widget, o Object) bool {
					o["custom"] = json.RawMessage(`true`)
					return true
				},
				AfterToJSON: func(w *widget, o Object) Object {
					t.Error("AfterToJSON must not run")
					return nil
				},
			},
			input:      `{"name":"w1","count":1}`,
			wantDecode: &widget{Name: to.Ptr("custom")},
			wantEncode: `{"custom":true}`,
		},
		{
			name: "after hooks post-process",
			hooks: Hooks[widget]{
				AfterFromJSON: func(o Object, w *widget) {
					if w.Count == nil {
						w.Count = to.Ptr(int64(1))
					}
				},
				AfterToJSON: func(w *widget, o Object) Object {
					delete(o, "count")
					return Object{"wrapped": mustMarshal(t, o)}
				},
			},
			input: `{"name":"w1"}`,
			wantDecode: &widget{
				Name:  to.Ptr("w1"),
				Count: to.Ptr(int64(1)),
			},
			wantEncode: `{"wrapped":{"name":"w1"}}`,
		},
	} {
		t.Run(tt.name, func(t *testing.T) {
			codec := widgetCodec.WithHooks(tt.hooks)

			got := codec.FromJSON([]byte(tt.input))
			for _, diff := range deep.Equal(got, tt.wantDecode) {
				t.Error(diff)
			}

			b, err := json.Marshal(codec.ToJSON(got, nil, IncludeAll))
			if err != nil {
				t.Fatal(err)
			}
			if string(b) != tt.wantEncode {
				t.Errorf("got %s, wanted %s", string(b), tt.wantEncode)
			}
		})
	}
}

func TestCodecToJSONReusesContainer(t *testing.T) {
	container := Object{"existing": json.RawMessage(`1`)}

	got := widgetCodec.ToJSON(&widget{Name: to.Ptr("w1")}, container, IncludeAll)

	b, err := json.Marshal(got)
	if err != nil {
		t.Fatal(err)
	}
	if string(b) != `{"existing":1,"name":"w1"}` {
		t.Error(string(b))
	}
}

func mustMarshal(t *testing.T, v interface{}) json.RawMessage {
	b, err := json.Marshal(v)
	if err != nil {
		t.Fatal(err)
	}
	return b
}
