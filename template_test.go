package numeral

import (
	"strings"
	"testing"
	"text/template"
)

func render(t *testing.T, funcs map[string]any, text string, data any) string {
	t.Helper()
	tmpl, err := template.New("test").Funcs(funcs).Parse(text)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	var out strings.Builder
	if err := tmpl.Execute(&out, data); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	return out.String()
}

func TestTemplateHelpers(t *testing.T) {
	helpers := TemplateHelpers(nil, HelperConfig{})

	data := map[string]any{"Total": "3.1", "Days": 21, "Items": 2}
	got := render(t, helpers,
		`{{rubles .Total}}; {{.Days}} {{choose_plural .Days "day"}}; {{in_words .Items "f"}} {{choose_plural .Items "штука" "штуки" "штук"}}`,
		data)

	want := "три рубля десять копеек; 21 день; две штуки"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestTemplateHelpersSignature(t *testing.T) {
	helpers := TemplateHelpers(nil, HelperConfig{})

	if _, ok := helpers["in_words"].(func(any, ...string) string); !ok {
		t.Fatalf("in_words helper signature mismatch: %T", helpers["in_words"])
	}
	if _, ok := helpers["sum_string"].(func(any, string) string); !ok {
		t.Fatalf("sum_string helper signature mismatch: %T", helpers["sum_string"])
	}
}

func TestTemplateHelpersOnError(t *testing.T) {
	var calls []string
	helpers := TemplateHelpers(nil, HelperConfig{
		OnError: func(helper string, err error) string {
			calls = append(calls, helper)
			return "[" + helper + "]"
		},
	})

	got := render(t, helpers, `{{in_words_int 2.5}} {{sum_string 3 "parsec"}}`, nil)
	if got != "[in_words_int] [sum_string]" {
		t.Fatalf("got %q", got)
	}
	if len(calls) != 2 {
		t.Fatalf("expected 2 OnError calls, got %v", calls)
	}
}

func TestTemplateHelpersDefaultErrorIsEmpty(t *testing.T) {
	helpers := TemplateHelpers(nil, HelperConfig{})

	if got := render(t, helpers, `<{{money_in_words "ZZZZ" 1}}>`, nil); got != "<>" {
		t.Fatalf("got %q", got)
	}
}

func TestTemplateHelpersUseSpeller(t *testing.T) {
	speller, err := NewSpeller(WithZeroMinorUnit())
	if err != nil {
		t.Fatalf("NewSpeller: %v", err)
	}

	helpers := TemplateHelpers(speller, HelperConfig{})
	if got := render(t, helpers, `{{rubles 5}}`, nil); got != "пять рублей ноль копеек" {
		t.Fatalf("got %q", got)
	}
}
