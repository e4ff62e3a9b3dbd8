// Copyright 2011 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package filter

import "strings"

// Render recurses over n and produces RFC 2254 filter text. Fields are
// emitted in text order, which for ExtensibleMatch (attribute, dn, rule,
// value) differs from the order Walk visits them.
func Render(n *Node) string {
	var sb strings.Builder
	renderInto(&sb, n)
	return sb.String()
}

func renderInto(sb *strings.Builder, n *Node) {
	sb.WriteByte('(')
	switch n.Tag {
	case TagAnd:
		sb.WriteByte('&')
		for _, c := range n.Children {
			renderInto(sb, c)
		}
	case TagOr:
		sb.WriteByte('|')
		for _, c := range n.Children {
			renderInto(sb, c)
		}
	case TagNot:
		sb.WriteByte('!')
		renderInto(sb, n.Children[0])
	case TagEqualityMatch:
		sb.WriteString(n.Attribute)
		sb.WriteByte('=')
		sb.WriteString(render(n.Value))
	case TagGreaterOrEqual:
		sb.WriteString(n.Attribute)
		sb.WriteString(">=")
		sb.WriteString(render(n.Value))
	case TagLessOrEqual:
		sb.WriteString(n.Attribute)
		sb.WriteString("<=")
		sb.WriteString(render(n.Value))
	case TagApproxMatch:
		sb.WriteString(n.Attribute)
		sb.WriteString("~=")
		sb.WriteString(render(n.Value))
	case TagPresent:
		sb.WriteString(n.Attribute)
		sb.WriteString("=*")
	case TagSubstrings:
		sb.WriteString(n.Attribute)
		sb.WriteByte('=')
		renderSubstrings(sb, n.Pieces)
	case TagExtensibleMatch:
		renderExtensibleMatch(sb, n)
	}
	sb.WriteByte(')')
}

func renderSubstrings(sb *strings.Builder, pieces []Piece) {
	hasInitial := len(pieces) > 0 && pieces[0].Tag == PieceInitial
	hasFinal := len(pieces) > 0 && pieces[len(pieces)-1].Tag == PieceFinal

	if !hasInitial {
		sb.WriteByte('*')
	}
	for i, p := range pieces {
		if i > 0 {
			sb.WriteByte('*')
		}
		sb.WriteString(render(p.Value))
	}
	if !hasFinal {
		sb.WriteByte('*')
	}
}

func renderExtensibleMatch(sb *strings.Builder, n *Node) {
	if n.HasAttribute {
		sb.WriteString(n.Attribute)
	}
	if n.DNAttributes {
		sb.WriteString(":dn")
	}
	if n.HasMatchingRule {
		sb.WriteByte(':')
		sb.WriteString(n.MatchingRule)
	}
	sb.WriteString(":=")
	sb.WriteString(render(n.Value))
}
