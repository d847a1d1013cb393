package normalize

import "testing"

func TestKey(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "empty", in: "", want: ""},
		{name: "spaces only", in: "   \t", want: ""},
		{name: "trims", in: "  Widget  ", want: "widget"},
		{name: "case folds", in: "WiDgEt PRO", want: "widget pro"},
		{name: "inner whitespace kept", in: "Widget  Pro", want: "widget  pro"},
		{name: "cyrillic", in: "  Товар ", want: "товар"},
		// e + combining acute совпадает с precomposed é после NFC
		{name: "nfc composition", in: "café", want: "café"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Key(tt.in); got != tt.want {
				t.Errorf("Key(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestEqual(t *testing.T) {
	if !Equal("  Widget ", "WIDGET") {
		t.Error("expected cosmetic differences to compare equal")
	}
	if Equal("Widget", "Widget Pro") {
		t.Error("expected different names to compare unequal")
	}
	if !Equal("", "   ") {
		t.Error("expected empty and blank to compare equal")
	}
}
