package json

import (
	"testing"

	"github.com/bytedance/sonic"
)

func TestSetConfigUpdatesAPI(t *testing.T) {
	t.Cleanup(func() {
		SetConfig(&sonic.Config{
			EscapeHTML:       true,
			SortMapKeys:      true,
			CompactMarshaler: true,
			CopyString:       true,
			ValidateString:   true,
		})
	})

	payload := map[string]string{"text": "<b>"}

	baseline, err := Marshal(payload)
	if err != nil {
		t.Fatalf("marshal with default config returned error: %v", err)
	}
	const escaped = "{\"text\":\"\\u003cb\\u003e\"}"
	if string(baseline) != escaped {
		t.Fatalf("marshal with default config = %q, want %q", string(baseline), escaped)
	}

	SetConfig(&sonic.Config{
		EscapeHTML:       false,
		SortMapKeys:      true,
		CompactMarshaler: true,
		CopyString:       true,
		ValidateString:   true,
	})

	updated, err := Marshal(payload)
	if err != nil {
		t.Fatalf("marshal after SetConfig returned error: %v", err)
	}
	const unescaped = "{\"text\":\"<b>\"}"
	if string(updated) != unescaped {
		t.Fatalf("marshal after SetConfig = %q, want %q", string(updated), unescaped)
	}
}

func TestRoundTripPatternPayload(t *testing.T) {
	src := []byte(`{"words":[{"word":"Literal","text":"a\\b"}]}`)
	if !Valid(src) {
		t.Fatalf("Valid(%s) = false", src)
	}

	var doc map[string]any
	if err := Unmarshal(src, &doc); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	words, ok := doc["words"].([]any)
	if !ok || len(words) != 1 {
		t.Fatalf("words = %#v", doc["words"])
	}
	word := words[0].(map[string]any)
	if word["text"] != `a\b` {
		t.Fatalf("text = %q", word["text"])
	}

	if Valid([]byte(`{"words":`)) {
		t.Fatal("truncated payload reported valid")
	}
}
