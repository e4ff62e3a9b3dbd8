// Copyright 2011 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package filter

import "strings"

// Parse compiles RFC 2254 filter text into a Node tree. Parsing is
// all-or-nothing: on error no partial tree is returned.
func Parse(text string) (*Node, error) {
	text = preprocess(text)
	if err := ValidateParens(text); err != nil {
		return nil, err
	}
	tok := newTokenizer(text)
	n, err := parseFilter(tok)
	if err != nil {
		return nil, err
	}
	if !tok.eof() {
		return nil, newSyntaxError(ReasonExpectingRightParen, tok.pos, "trailing input after filter")
	}
	return n, nil
}

// preprocess applies spec.md 4.4 steps 1-3: the empty-input default, the
// V2-to-V3 escape upgrade, and the implicit paren wrap.
func preprocess(text string) string {
	if text == "" {
		return "(objectclass=*)"
	}
	text = upgradeV2Escapes(text)
	if text[0] != '(' && text[len(text)-1] != ')' {
		text = "(" + text + ")"
	}
	return text
}

// upgradeV2Escapes rewrites legacy \*, \(, \), \\ escapes to the \HH form,
// leaving every other backslash (already V3) untouched. It is idempotent:
// a \HH sequence never contains a V2 trigger character as its second byte.
func upgradeV2Escapes(s string) string {
	if !strings.ContainsRune(s, '\\') {
		return s
	}
	var sb strings.Builder
	sb.Grow(len(s))
	i := 0
	for i < len(s) {
		if s[i] == '\\' && i+1 < len(s) {
			switch s[i+1] {
			case '*', '(', ')', '\\':
				c := s[i+1]
				sb.WriteByte('\\')
				sb.WriteByte(hexDigits[c>>4])
				sb.WriteByte(hexDigits[c&0xF])
				i += 2
				continue
			}
		}
		sb.WriteByte(s[i])
		i++
	}
	return sb.String()
}

// parseFilter consumes one fully-parenthesized filter: '(' filterComp ')'.
func parseFilter(tok *tokenizer) (*Node, error) {
	if err := tok.getLeftParen(); err != nil {
		return nil, err
	}
	n, err := parseFilterComp(tok)
	if err != nil {
		return nil, err
	}
	if err := tok.getRightParen(); err != nil {
		return nil, err
	}
	return n, nil
}

func parseFilterComp(tok *tokenizer) (*Node, error) {
	op, err := tok.opOrAttr()
	if err != nil {
		return nil, err
	}

	switch op {
	case opAnd:
		children, err := parseFilterList(tok)
		if err != nil {
			return nil, err
		}
		return &Node{Tag: TagAnd, Children: children}, nil
	case opOr:
		children, err := parseFilterList(tok)
		if err != nil {
			return nil, err
		}
		return &Node{Tag: TagOr, Children: children}, nil
	case opNot:
		child, err := parseFilter(tok)
		if err != nil {
			return nil, err
		}
		return &Node{Tag: TagNot, Children: []*Node{child}}, nil
	default:
		return parseAttributeComp(tok)
	}
}

func parseFilterList(tok *tokenizer) ([]*Node, error) {
	var children []*Node
	for {
		child, err := parseFilter(tok)
		if err != nil {
			return nil, err
		}
		children = append(children, child)
		c, err := tok.peekChar()
		if err != nil {
			return nil, err
		}
		if c != '(' {
			break
		}
	}
	if len(children) == 0 {
		return nil, newSyntaxError(ReasonEmptyFilterList, tok.pos, "and/or requires at least one filter")
	}
	return children, nil
}

func parseAttributeComp(tok *tokenizer) (*Node, error) {
	attr := tok.lastAttr()

	tag, err := tok.filterType()
	if err != nil {
		return nil, err
	}

	if attr == "" && tag != TagExtensibleMatch {
		return nil, newSyntaxError(ReasonNoAttributeName, tok.pos, "filter component has no attribute")
	}

	raw := tok.value()

	switch tag {
	case TagGreaterOrEqual, TagLessOrEqual, TagApproxMatch:
		val, err := unescape(raw)
		if err != nil {
			return nil, err
		}
		return &Node{Tag: tag, Attribute: attr, Value: val}, nil
	case TagExtensibleMatch:
		return parseExtensibleMatch(attr, raw)
	case TagEqualityMatch:
		return parseEqualityForm(attr, raw)
	default:
		return nil, newSyntaxError(ReasonInvalidComparison, tok.pos, "unrecognised comparison operator")
	}
}

func parseEqualityForm(attr, raw string) (*Node, error) {
	if raw == "*" {
		return &Node{Tag: TagPresent, Attribute: attr}, nil
	}
	if strings.ContainsRune(raw, '*') {
		pieces, err := parseSubstringPieces(raw)
		if err != nil {
			return nil, err
		}
		return &Node{Tag: TagSubstrings, Attribute: attr, Pieces: pieces}, nil
	}
	val, err := unescape(raw)
	if err != nil {
		return nil, err
	}
	return &Node{Tag: TagEqualityMatch, Attribute: attr, Value: val}, nil
}

// parseSubstringPieces tokenizes a substring value at raw '*' boundaries
// (before unescaping) per spec.md 4.4: the leading and trailing segments
// become Initial/Final only when non-empty; every segment strictly
// between two stars becomes an Any piece regardless of emptiness, so
// "**" contributes exactly one empty Any.
func parseSubstringPieces(raw string) ([]Piece, error) {
	segments := strings.Split(raw, "*")
	var pieces []Piece

	last := len(segments) - 1
	if segments[0] != "" {
		val, err := unescape(segments[0])
		if err != nil {
			return nil, err
		}
		pieces = append(pieces, Piece{Tag: PieceInitial, Value: val})
	}
	for _, seg := range segments[1:last] {
		val, err := unescape(seg)
		if err != nil {
			return nil, err
		}
		pieces = append(pieces, Piece{Tag: PieceAny, Value: val})
	}
	if segments[last] != "" {
		val, err := unescape(segments[last])
		if err != nil {
			return nil, err
		}
		pieces = append(pieces, Piece{Tag: PieceFinal, Value: val})
	}
	return pieces, nil
}

// parseExtensibleMatch implements spec.md 4.4's ":=" handling: the
// attribute slot may carry a colon-decorated type/dn/rule prefix.
func parseExtensibleMatch(attr, raw string) (*Node, error) {
	val, err := unescape(raw)
	if err != nil {
		return nil, err
	}

	n := &Node{Tag: TagExtensibleMatch, Value: val}

	parts := strings.Split(attr, ":")
	for i, part := range parts {
		switch {
		case part == "":
			continue
		case i == 0:
			n.HasAttribute = true
			n.Attribute = part
		case part == "dn":
			n.DNAttributes = true
		default:
			if n.HasMatchingRule {
				return nil, newSyntaxError(ReasonMultipleMatchingRules, 0, "extensible match names more than one matching rule")
			}
			n.HasMatchingRule = true
			n.MatchingRule = part
		}
	}

	if !n.HasAttribute && !n.HasMatchingRule {
		if attr == "" {
			return nil, newSyntaxError(ReasonNoMatchingRule, 0, "extensible match has no attribute and no matching rule")
		}
		return nil, newSyntaxError(ReasonNoDNOrMatchingRule, 0, "extensible match decoration names neither a DN flag nor a matching rule")
	}

	return n, nil
}
