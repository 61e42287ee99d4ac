package rl

import (
	"errors"
	"testing"
)

func TestMarshalText(t *testing.T) {
	c, err := marshalText("op", "cafe\u0301")
	if err != nil {
		t.Fatalf("marshalText() = %v", err)
	}
	if got := c.String(); got != "caf\u00e9" {
		t.Errorf("marshalText = %q, want NFC %q", got, "caf\u00e9")
	}
}

func TestMarshalPathKeepsBytes(t *testing.T) {
	c, err := marshalPath("op", "cafe\u0301.png")
	if err != nil {
		t.Fatalf("marshalPath() = %v", err)
	}
	if got := c.String(); got != "cafe\u0301.png" {
		t.Errorf("marshalPath = %q, want input unchanged", got)
	}
}

func TestMarshalRejectsNUL(t *testing.T) {
	for name, fn := range map[string]func(string, string) error{
		"text": func(op, s string) error { _, err := marshalText(op, s); return err },
		"path": func(op, s string) error { _, err := marshalPath(op, s); return err },
	} {
		err := fn("Load", "a\x00b")
		if !errors.Is(err, ErrInvalidString) {
			t.Errorf("%s: err = %v, want ErrInvalidString", name, err)
		}
		var e *Error
		if !errors.As(err, &e) || e.Kind != KindMarshal || e.Op != "Load" {
			t.Errorf("%s: err = %#v, want marshal *Error for Load", name, err)
		}
	}
}

func TestMarshalOptionalPath(t *testing.T) {
	c, err := marshalOptionalPath("op", "")
	if err != nil || !c.IsNull() {
		t.Errorf("marshalOptionalPath(\"\") = %v, %v; want NULL", c, err)
	}
	c, err = marshalOptionalPath("op", "a.fs")
	if err != nil || c.IsNull() || c.String() != "a.fs" {
		t.Errorf("marshalOptionalPath(a.fs) = %q, %v", c.String(), err)
	}
}
