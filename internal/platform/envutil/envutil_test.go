package envutil

import (
	"reflect"
	"testing"
)

func TestString(t *testing.T) {
	t.Setenv("ENVUTIL_TEST_STRING", "  value ")
	if got := String("ENVUTIL_TEST_STRING", "def", nil); got != "value" {
		t.Fatalf("String = %q, want %q", got, "value")
	}
	t.Setenv("ENVUTIL_TEST_STRING", "   ")
	if got := String("ENVUTIL_TEST_STRING", "def", nil); got != "def" {
		t.Fatalf("String blank = %q, want def", got)
	}
}

func TestInt(t *testing.T) {
	t.Setenv("ENVUTIL_TEST_INT", "42")
	if got := Int("ENVUTIL_TEST_INT", 7, nil); got != 42 {
		t.Fatalf("Int = %d, want 42", got)
	}
	t.Setenv("ENVUTIL_TEST_INT", "forty-two")
	if got := Int("ENVUTIL_TEST_INT", 7, nil); got != 7 {
		t.Fatalf("Int invalid = %d, want 7", got)
	}
}

func TestFloat(t *testing.T) {
	t.Setenv("ENVUTIL_TEST_FLOAT", "0.25")
	if got := Float("ENVUTIL_TEST_FLOAT", 1, nil); got != 0.25 {
		t.Fatalf("Float = %v, want 0.25", got)
	}
	t.Setenv("ENVUTIL_TEST_FLOAT", "quarter")
	if got := Float("ENVUTIL_TEST_FLOAT", 1, nil); got != 1 {
		t.Fatalf("Float invalid = %v, want 1", got)
	}
}

func TestBool(t *testing.T) {
	cases := map[string]bool{"1": true, "TRUE": true, "off": false, "": true, "maybe": true}
	for raw, want := range cases {
		t.Setenv("ENVUTIL_TEST_BOOL", raw)
		if got := Bool("ENVUTIL_TEST_BOOL", true); got != want {
			t.Fatalf("Bool(%q) = %v, want %v", raw, got, want)
		}
	}
}

func TestList(t *testing.T) {
	t.Setenv("ENVUTIL_TEST_LIST", "http://a.test, ,http://b.test,")
	got := List("ENVUTIL_TEST_LIST", nil)
	want := []string{"http://a.test", "http://b.test"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("List = %v, want %v", got, want)
	}
	t.Setenv("ENVUTIL_TEST_LIST", "")
	if got := List("ENVUTIL_TEST_LIST", []string{"x"}); !reflect.DeepEqual(got, []string{"x"}) {
		t.Fatalf("List default = %v", got)
	}
}
