package formatter

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	pkgerrors "github.com/pkg/errors"

	"github.com/philipp01105/fanlog/color"
	"github.com/philipp01105/fanlog/core"
)

func TestMain(m *testing.M) {
	color.SetEnabled(false)
	m.Run()
}

func TestTextFormatter_Basic(t *testing.T) {
	f := NewTextFormatter(Config{})

	rec := &core.Record{
		Time:    time.Date(2026, 2, 18, 13, 0, 0, 123_000_000, time.UTC),
		Label:   "INFO",
		Style:   color.Cyan,
		Message: "Hello",
	}

	result, err := f.Format(rec)
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	if got, want := string(result), "[13:00:00.123] [INFO] Hello\n"; got != want {
		t.Errorf("Format() = %q, want %q", got, want)
	}
}

func TestTextFormatter_Namespace(t *testing.T) {
	f := NewTextFormatter(Config{})

	rec := &core.Record{
		Time:      time.Date(2026, 2, 18, 13, 0, 0, 0, time.UTC),
		Namespace: "Core:Utils",
		Label:     "ERR",
		Message:   "X",
	}

	result, _ := f.Format(rec)
	if !strings.HasSuffix(string(result), "] [Core:Utils] [ERR] X\n") {
		t.Errorf("Expected namespace before label, got: %q", result)
	}
}

func TestTextFormatter_UsesUTCByDefault(t *testing.T) {
	zone := time.FixedZone("UTC+5", 5*60*60)
	rec := &core.Record{
		Time:    time.Date(2026, 2, 18, 18, 30, 0, 0, zone),
		Label:   "INFO",
		Message: "m",
	}

	utc, _ := NewTextFormatter(Config{}).Format(rec)
	if !strings.HasPrefix(string(utc), "[13:30:00.000]") {
		t.Errorf("Expected UTC timestamp, got: %q", utc)
	}

	local, _ := NewTextFormatter(Config{LocalTime: true, TimestampFormat: time.Kitchen}).Format(rec)
	if !strings.HasPrefix(string(local), "[6:30PM]") {
		t.Errorf("Expected local kitchen timestamp, got: %q", local)
	}
}

func TestTextFormatter_WithFields(t *testing.T) {
	f := NewTextFormatter(Config{})

	rec := &core.Record{
		Time:    time.Now(),
		Label:   "INFO",
		Message: "test",
		Fields: []core.Field{
			{Key: "key1", Value: "value1"},
			{Key: "key2", Value: 42},
		},
	}

	result, err := f.Format(rec)
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	output := string(result)
	if !strings.Contains(output, "test key1=value1 key2=42\n") {
		t.Errorf("Expected fields after message, got: %s", output)
	}
}

func TestTextFormatter_StyledLabel(t *testing.T) {
	prev := color.SetEnabled(true)
	defer color.SetEnabled(prev)

	rec := &core.Record{Time: time.Now(), Label: "OK", Style: color.Green, Message: "done"}

	var buf bytes.Buffer
	if err := NewTextFormatter(Config{}).FormatTo(rec, &buf); err != nil {
		t.Fatalf("FormatTo() error = %v", err)
	}

	if !strings.Contains(buf.String(), color.Green("[OK]")) {
		t.Errorf("Expected green label, got: %q", buf.String())
	}
	if !strings.HasPrefix(buf.String(), "\x1b[2m[") {
		t.Errorf("Expected dimmed timestamp, got: %q", buf.String())
	}
	if strings.Contains(color.Strip(buf.String()), "\x1b") {
		t.Error("Strip left escape codes behind")
	}
}

func TestTextFormatter_Plain(t *testing.T) {
	prev := color.SetEnabled(true)
	defer color.SetEnabled(prev)

	ts := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	rec := &core.Record{Time: ts, Label: "OK", Style: color.Green, Message: "done"}

	var buf bytes.Buffer
	if err := NewTextFormatter(Config{Plain: true}).FormatTo(rec, &buf); err != nil {
		t.Fatalf("FormatTo() error = %v", err)
	}

	if got, want := buf.String(), "[03:04:05.000] [OK] done\n"; got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}

type user struct {
	Name string
	Age  int
}

func TestArgs(t *testing.T) {
	tests := []struct {
		name string
		args []interface{}
		want string
	}{
		{"empty", nil, ""},
		{"single string", []interface{}{"Hello"}, "Hello"},
		{"joined", []interface{}{"a", 1, true}, "a 1 true"},
		{"struct", []interface{}{user{"ann", 3}}, "{Name:ann Age:3}"},
		{"map", []interface{}{map[string]interface{}{"foo": "bar", "baz": 42}}, "map[baz:42 foo:bar]"},
		{"error", []interface{}{"failed:", errors.New("boom")}, "failed: boom"},
		{"wrapped error", []interface{}{"failed:", pkgerrors.Wrap(pkgerrors.New("boom"), "write record")}, "failed: write record: boom"},
		{"wrapped error verb", []interface{}{"failed: %s", pkgerrors.Wrap(pkgerrors.New("boom"), "write record")}, "failed: write record: boom"},
		{"wrapped error object verb", []interface{}{"%O", pkgerrors.New("boom")}, "boom"},
		{"verbs", []interface{}{"%s=%d", "a", 1}, "a=1"},
		{"extra args", []interface{}{"%s=%d", "a", 1, "extra"}, "a=1 extra"},
		{"missing args", []interface{}{"%s and %s", "one"}, "one and %s"},
		{"percent literal", []interface{}{"100%% done"}, "100% done"},
		{"unknown verb", []interface{}{"%q", "x"}, "%q x"},
		{"integer verb", []interface{}{"%i", 4.9}, "4"},
		{"number verb", []interface{}{"%d", 4.5}, "4.5"},
		{"float verb", []interface{}{"%f", "2.50"}, "2.5"},
		{"nan", []interface{}{"%d", "abc"}, "NaN"},
		{"json verb", []interface{}{"%j", map[string]int{"a": 1}}, `{"a":1}`},
		{"object verb", []interface{}{"%o", user{"bo", 7}}, "{Name:bo Age:7}"},
		{"css verb", []interface{}{"%cstyled", "color: red"}, "styled"},
		{"trailing percent", []interface{}{"50%"}, "50%"},
		{"non string first", []interface{}{42, "%s"}, "42 %s"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Args(tt.args...); got != tt.want {
				t.Errorf("Args() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSectionLine_Named(t *testing.T) {
	tests := []struct {
		name      string
		width     int
		want      string
		wantWidth int
	}{
		{"build phase", 50, strings.Repeat("=", 16) + " [ BUILD PHASE ] " + strings.Repeat("=", 17), 50},
		{"build", 80, "", 80},
		{"red line", 30, "", 30},
		{"green line", 0, "== [ GREEN LINE ] ==", 20},
		{"x", -10, "== [ X ] ==", 11},
		{"ab", 12, "== [ AB ] ==", 12},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SectionLine(tt.name, tt.width)
			if tt.want != "" && got != tt.want {
				t.Errorf("SectionLine() = %q, want %q", got, tt.want)
			}
			if n := utf8.RuneCountInString(got); n != tt.wantWidth {
				t.Errorf("SectionLine() width = %d, want %d", n, tt.wantWidth)
			}
			title := SectionTitle(tt.name)
			if !strings.Contains(got, title) {
				t.Errorf("SectionLine() = %q, missing title %q", got, title)
			}
			if n := utf8.RuneCountInString(got); n < utf8.RuneCountInString(title)+4 || n < tt.width {
				t.Errorf("SectionLine() width %d too small", n)
			}
		})
	}
}

func TestSectionLine_OddRemainderGoesRight(t *testing.T) {
	// title " [ AB ] " is 8 runes; 13-8 = 5 leaves 2 left, 3 right
	got := SectionLine("ab", 13)
	if got != "== [ AB ] ===" {
		t.Errorf("SectionLine() = %q", got)
	}
}

func TestSectionLine_Unicode(t *testing.T) {
	got := SectionLine("straße", 30)
	if !strings.Contains(got, "[ STRASSE ]") {
		t.Errorf("Expected full upper-casing, got %q", got)
	}
	if n := utf8.RuneCountInString(got); n != 30 {
		t.Errorf("width = %d, want 30", n)
	}
}

func TestSectionLine_Blank(t *testing.T) {
	tests := []struct {
		width int
		want  string
	}{
		{40, strings.Repeat("=", 40)},
		{1, "="},
		{0, ""},
		{-5, ""},
	}

	for _, tt := range tests {
		got := SectionLine("", tt.width)
		if got != tt.want {
			t.Errorf("SectionLine(\"\", %d) = %q, want %q", tt.width, got, tt.want)
		}
		if strings.Contains(got, "[") {
			t.Errorf("blank rule contains a bracket: %q", got)
		}
	}
}

func BenchmarkTextFormatter(b *testing.B) {
	f := NewTextFormatter(Config{})
	rec := &core.Record{
		Time:      time.Now(),
		Namespace: "API",
		Label:     "INFO",
		Style:     color.Cyan,
		Message:   "test message",
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = f.Format(rec)
	}
}

func BenchmarkArgs(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = Args("request %s took %dms", "/users", 12, user{"ann", 3})
	}
}
