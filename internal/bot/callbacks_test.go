package bot

import (
	"testing"
)

func TestEncodeCallback(t *testing.T) {
	if got := encodeCallback(CallbackReport, "today", ""); got != "report:today" {
		t.Fatalf("expected report:today, got %q", got)
	}
	if got := encodeCallback(CallbackReport, "pending", "Alpha"); got != "report:pending:Alpha" {
		t.Fatalf("expected report:pending:Alpha, got %q", got)
	}
}

func TestParseCallback(t *testing.T) {
	cases := []struct {
		data                 string
		action, scope, param string
	}{
		{"menu:main", "menu", "main", ""},
		{"report:today", "report", "today", ""},
		{"report:week:Alpha", "report", "week", "Alpha"},
		{"ai:daily:abc12345", "ai", "daily", "abc12345"},
		{"project:Foo", "project", "Foo", ""},
		// Двоеточие внутри названия проекта уходит в параметр целиком
		{"project:Foo:Bar:Baz", "project", "Foo", "Bar:Baz"},
	}

	for _, tc := range cases {
		action, scope, param := parseCallback(tc.data)
		if action != tc.action || scope != tc.scope || param != tc.param {
			t.Fatalf("parseCallback(%q) = %q %q %q, want %q %q %q",
				tc.data, action, scope, param, tc.action, tc.scope, tc.param)
		}
	}
}

func TestCallbackRoundTrip(t *testing.T) {
	data := encodeCallback(CallbackReport, "month", "Проект")
	action, scope, param := parseCallback(data)
	if action != CallbackReport || scope != "month" || param != "Проект" {
		t.Fatalf("round trip failed: %q %q %q", action, scope, param)
	}
}

func TestTruncateRunes(t *testing.T) {
	if got := truncateRunes("короткая строка", 100); got != "короткая строка" {
		t.Fatalf("short string must be kept, got %q", got)
	}
	if got := truncateRunes("абвгд", 3); got != "абв" {
		t.Fatalf("expected rune-aware cut, got %q", got)
	}
}
