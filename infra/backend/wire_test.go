package backend

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestSanitizeForTerminal_RemovesEscapesAndControls(t *testing.T) {
	in := "ok\x1b[31mred\x1b[0m\x01\x02 line\nnext"
	got := sanitizeForTerminal(in)
	if strings.Contains(got, "\x1b") {
		t.Fatalf("expected ansi removed: %q", got)
	}
	if strings.ContainsRune(got, '\x01') || strings.ContainsRune(got, '\x02') {
		t.Fatalf("expected controls removed: %q", got)
	}
	if got != "okred line\nnext" {
		t.Fatalf("unexpected sanitized content: %q", got)
	}
}

func TestFlexString_AcceptsStringNumberAndNull(t *testing.T) {
	var v struct {
		A flexString `json:"a"`
		B flexString `json:"b"`
		C flexString `json:"c"`
	}
	if err := json.Unmarshal([]byte(`{"a":"x","b":1700000000,"c":null}`), &v); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if v.A.Value != "x" || v.B.Value != "1700000000" || v.C.Set {
		t.Fatalf("unexpected decode: %#v", v)
	}
	if err := json.Unmarshal([]byte(`{"a":true}`), &v); err == nil {
		t.Fatalf("expected error for bool")
	}
}

func TestMapPost_MissingOptionalFieldsStillMaps(t *testing.T) {
	p := mapPost(wirePost{PostID: flexString{Value: "x1", Set: true}})
	if p.ID != "x1" || p.Author != nil || p.Title != nil || p.Text != nil {
		t.Fatalf("unexpected mapping: %#v", p)
	}
	if p.Displayable() {
		t.Fatalf("post without title and text must not be displayable")
	}
}
