package textnorm_test

import (
	"reflect"
	"testing"

	"intent-engine/pkg/textnorm"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "trim and lower", in: "  Show ORDERS  ", want: "show orders"},
		{name: "collapse spaces", in: "order\t\tnumber   5", want: "order number 5"},
		{name: "hebrew untouched", in: "הצג הזמנה", want: "הצג הזמנה"},
		{name: "empty", in: "   ", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := textnorm.Normalize(tt.in); got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestTokenize(t *testing.T) {
	got := textnorm.Tokenize("I want to add a NEW item, a new item!")
	want := []string{"i", "want", "to", "add", "a", "new", "item"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Tokenize() = %v, want %v", got, want)
	}

	got = textnorm.Tokenize("הוסף מוצר חדש")
	want = []string{"הוסף", "מוצר", "חדש"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Tokenize(hebrew) = %v, want %v", got, want)
	}
}

func TestRuneLen(t *testing.T) {
	if got := textnorm.RuneLen("מוצר"); got != 4 {
		t.Errorf("RuneLen(hebrew) = %d, want 4", got)
	}
	if got := textnorm.RuneLen("item"); got != 4 {
		t.Errorf("RuneLen(item) = %d, want 4", got)
	}
}

func TestWords(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Hello, World!", "hello world"},
		{"on-hold", "on hold"},
		{"  שלום,   מה  נשמע? ", "שלום מה נשמע"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := textnorm.Words(tt.in); got != tt.want {
			t.Errorf("Words(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}

	if !textnorm.ContainsWords("Hi, list my orders", "hi") {
		t.Error("expected hi to be found")
	}
	if textnorm.ContainsWords("this is it", "hi") {
		t.Error("hi must not match inside this")
	}
}
