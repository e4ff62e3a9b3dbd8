// Copyright 2011 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package filter

import "testing"

func TestUnescapeRender(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"Babs Jensen", "Babs Jensen"},
		{`\28foo\29`, `(foo)`},
		{`\2a`, `*`},
		{`\5c`, `\`},
		{"", ""},
	}
	for _, tt := range tests {
		octets, err := unescape(tt.raw)
		if err != nil {
			t.Errorf("unescape(%q) = error %v", tt.raw, err)
			continue
		}
		if string(octets) != tt.want {
			t.Errorf("unescape(%q) = %q, want %q", tt.raw, octets, tt.want)
		}
	}
}

func TestUnescapeErrors(t *testing.T) {
	tests := []struct {
		raw    string
		reason Reason
	}{
		{`\`, ReasonShortEscape},
		{`\h`, ReasonInvalidEscape},
		{`\2`, ReasonShortEscape},
		{`\2z`, ReasonInvalidEscape},
		{"a(b", ReasonInvalidChar},
		{"a)b", ReasonInvalidChar},
		{"a*b", ReasonInvalidChar},
	}
	for _, tt := range tests {
		_, err := unescape(tt.raw)
		se, ok := err.(*SyntaxError)
		if !ok {
			t.Errorf("unescape(%q) = %v, want *SyntaxError", tt.raw, err)
			continue
		}
		if se.Reason != tt.reason {
			t.Errorf("unescape(%q) reason = %v, want %v", tt.raw, se.Reason, tt.reason)
		}
	}
}

func TestRenderEscapesNonASCII(t *testing.T) {
	got := render([]byte{0xe5, 0x87, 0xbd})
	want := `\e5\87\bd`
	if got != want {
		t.Errorf("render() = %q, want %q", got, want)
	}
}

func TestRenderLeavesCleanASCII(t *testing.T) {
	got := render([]byte("Babs Jensen"))
	if got != "Babs Jensen" {
		t.Errorf("render() = %q, want verbatim", got)
	}
}

func TestUnescapeRejectsBareStar(t *testing.T) {
	octets, err := unescape(`Mi*le*r`)
	if err == nil {
		t.Fatalf("unescape(%q) = %q, want error (unescaped '*' is not permitted)", `Mi*le*r`, octets)
	}
}
