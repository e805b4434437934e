package http

import (
	"strings"
	"testing"
)

func TestSummarizeBodyMasksContactFields(t *testing.T) {
	summary := summarizeBody([]byte(`{"email":"ann@example.com","name":"Ann","phone":"+33 1 23"}`))
	fields, ok := summary.(map[string]any)
	if !ok {
		t.Fatalf("expected JSON object summary, got %T", summary)
	}
	if fields["email"] != "a***" {
		t.Fatalf("expected masked email, got %v", fields["email"])
	}
	if fields["phone"] != "+***" {
		t.Fatalf("expected masked phone, got %v", fields["phone"])
	}
	if fields["name"] != "Ann" {
		t.Fatalf("expected name to be kept, got %v", fields["name"])
	}
}

func TestSummarizeBodyTruncatesLargeArrays(t *testing.T) {
	var b strings.Builder
	b.WriteString("[")
	for i := 0; i < 200; i++ {
		if i > 0 {
			b.WriteString(",")
		}
		b.WriteString(`{"name":"Hotel Le Marais","amenities":"WiFi, Breakfast, Gym"}`)
	}
	b.WriteString("]")

	summary, ok := summarizeBody([]byte(b.String())).(map[string]any)
	if !ok {
		t.Fatal("expected truncated summary map")
	}
	if summary["_truncated"] != true {
		t.Fatalf("expected _truncated flag, got %v", summary)
	}
	preview, ok := summary["_preview"].(map[string]any)
	if !ok || preview["_total_items"] != 200 {
		t.Fatalf("unexpected preview %v", summary["_preview"])
	}
}

func TestSummarizeBodyNonJSON(t *testing.T) {
	if got := summarizeBody(nil); got != nil {
		t.Fatalf("expected nil for empty body, got %v", got)
	}
	if got := summarizeBody([]byte{0xff, 0xfe, 0x00}); got != "binary" {
		t.Fatalf("expected binary marker, got %v", got)
	}
	if got := summarizeBody([]byte("plain text")); got != "plain text" {
		t.Fatalf("expected plain text passthrough, got %v", got)
	}
}
