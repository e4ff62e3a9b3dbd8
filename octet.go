// Copyright 2011 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package filter

import (
	"strings"
	"unicode/utf8"
)

const hexDigits = "0123456789abcdef"

func isHexDigit(c byte) bool {
	return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

func hexValue(c byte) byte {
	switch {
	case c >= '0' && c <= '9':
		return c - '0'
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10
	default:
		return c - 'A' + 10
	}
}

// unescape walks a raw RFC 2254 value (after the V2->V3 escape upgrade has
// already run) and converts \HH escapes to raw octets. Outside an escape,
// only the RFC 2254 char production is permitted: 0x01-0x27, 0x2B-0x5B,
// 0x5D and above, i.e. excluding NUL, '(', ')', '*' and '\'. Code points
// above 0x7F are re-encoded as UTF-8 octets.
func unescape(text string) ([]byte, error) {
	out := make([]byte, 0, len(text)*3)

	const (
		stateNone = iota
		stateFirstHex
		stateSecondHex
	)
	state := stateNone
	var hi byte

	pos := 0
	for pos < len(text) {
		r, size := utf8.DecodeRuneInString(text[pos:])
		switch state {
		case stateFirstHex:
			if r == utf8.RuneError || !isHexDigit(text[pos]) {
				return nil, newSyntaxError(ReasonInvalidEscape, pos, "expected hex digit")
			}
			hi = hexValue(text[pos])
			state = stateSecondHex
			pos++
			continue
		case stateSecondHex:
			if r == utf8.RuneError || !isHexDigit(text[pos]) {
				return nil, newSyntaxError(ReasonInvalidEscape, pos, "expected hex digit")
			}
			out = append(out, hi<<4|hexValue(text[pos]))
			state = stateNone
			pos++
			continue
		}

		if r == '\\' {
			state = stateFirstHex
			pos++
			continue
		}

		if !isPermittedChar(r) {
			return nil, newSyntaxError(ReasonInvalidChar, pos, escapeRuneForMessage(r))
		}

		if r < utf8.RuneSelf {
			out = append(out, byte(r))
		} else {
			var buf [utf8.UTFMax]byte
			n := utf8.EncodeRune(buf[:], r)
			out = append(out, buf[:n]...)
		}
		pos += size
	}

	if state != stateNone {
		return nil, newSyntaxError(ReasonShortEscape, pos, "filter ended mid-escape")
	}

	return out, nil
}

// isPermittedChar reports whether r may appear unescaped in a filter value.
func isPermittedChar(r rune) bool {
	switch {
	case r == 0:
		return false
	case r >= 0x01 && r <= 0x27:
		return true
	case r >= 0x2B && r <= 0x5B:
		return true
	case r == 0x5D:
		return true
	case r > 0x5D:
		return true
	default:
		// 0x28 '(', 0x29 ')', 0x2A '*', 0x5C '\' fall through to false.
		return false
	}
}

func escapeRuneForMessage(r rune) string {
	if r < utf8.RuneSelf {
		return "\\" + string([]byte{hexDigits[r>>4], hexDigits[r&0xF]})
	}
	var buf [utf8.UTFMax]byte
	n := utf8.EncodeRune(buf[:], r)
	var sb strings.Builder
	for _, b := range buf[:n] {
		sb.WriteByte('\\')
		sb.WriteByte(hexDigits[b>>4])
		sb.WriteByte(hexDigits[b&0xF])
	}
	return sb.String()
}

// render converts raw octets to RFC 2254 value text. If octets consists
// only of ASCII characters that need no escaping, it is emitted verbatim;
// otherwise every octet is emitted as a lowercase \HH escape. Valid UTF-8
// containing any non-ASCII character is escaped too, not emitted verbatim.
func render(octets []byte) string {
	if isCleanUTF8(octets) {
		return string(octets)
	}
	var sb strings.Builder
	sb.Grow(len(octets) * 3)
	for _, b := range octets {
		sb.WriteByte('\\')
		sb.WriteByte(hexDigits[b>>4])
		sb.WriteByte(hexDigits[b&0xF])
	}
	return sb.String()
}

// isCleanUTF8 reports whether octets can be emitted verbatim. Parsing
// accepts any permitted UTF-8 code point unescaped, but rendering always
// hex-escapes non-ASCII octets, matching the corpus's decompiled output.
func isCleanUTF8(octets []byte) bool {
	for _, b := range octets {
		if b >= utf8.RuneSelf || !isPermittedChar(rune(b)) {
			return false
		}
	}
	return true
}
