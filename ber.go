// Copyright 2011 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package filter

import (
	"fmt"

	asn1ber "github.com/go-asn1-ber/asn1-ber"
)

// Tag numbers inside a MatchingRuleAssertion, per RFC 2251's
// MatchingRuleAssertion SEQUENCE. Grounded on the teacher's own
// TagMatchingRule/TagMatchingType/TagMatchDnAttributes constants.
const (
	tagMatchingRule      = 1
	tagMatchingType      = 2
	tagMatchValue        = 3
	tagMatchDNAttributes = 4
)

// Encode walks n and produces the *asn1ber.Packet tree an external BER
// encoder would want to write to the wire: CONSTRUCTED context tags for
// And, Or, Not, EqualityMatch, Substrings, GreaterOrEqual, LessOrEqual,
// ApproxMatch and ExtensibleMatch, PRIMITIVE for Present and for
// substring pieces, per spec.md 6.
func Encode(n *Node) (*asn1ber.Packet, error) {
	switch n.Tag {
	case TagAnd, TagOr:
		p := asn1ber.Encode(asn1ber.ClassContext, asn1ber.TypeConstructed, asn1ber.Tag(n.Tag), nil, n.Tag.String())
		for _, c := range n.Children {
			cp, err := Encode(c)
			if err != nil {
				return nil, err
			}
			p.AppendChild(cp)
		}
		return p, nil
	case TagNot:
		p := asn1ber.Encode(asn1ber.ClassContext, asn1ber.TypeConstructed, asn1ber.Tag(n.Tag), nil, n.Tag.String())
		cp, err := Encode(n.Children[0])
		if err != nil {
			return nil, err
		}
		p.AppendChild(cp)
		return p, nil
	case TagEqualityMatch, TagGreaterOrEqual, TagLessOrEqual, TagApproxMatch:
		p := asn1ber.Encode(asn1ber.ClassContext, asn1ber.TypeConstructed, asn1ber.Tag(n.Tag), nil, n.Tag.String())
		p.AppendChild(asn1ber.NewString(asn1ber.ClassUniversal, asn1ber.TypePrimitive, asn1ber.TagOctetString, n.Attribute, "attributeDesc"))
		p.AppendChild(asn1ber.NewString(asn1ber.ClassUniversal, asn1ber.TypePrimitive, asn1ber.TagOctetString, string(n.Value), "assertionValue"))
		return p, nil
	case TagPresent:
		return asn1ber.NewString(asn1ber.ClassContext, asn1ber.TypePrimitive, asn1ber.Tag(TagPresent), n.Attribute, "present"), nil
	case TagSubstrings:
		p := asn1ber.Encode(asn1ber.ClassContext, asn1ber.TypeConstructed, asn1ber.Tag(TagSubstrings), nil, "substrings")
		p.AppendChild(asn1ber.NewString(asn1ber.ClassUniversal, asn1ber.TypePrimitive, asn1ber.TagOctetString, n.Attribute, "type"))
		seq := asn1ber.Encode(asn1ber.ClassUniversal, asn1ber.TypeConstructed, asn1ber.TagSequence, nil, "substrings")
		for _, piece := range n.Pieces {
			seq.AppendChild(asn1ber.NewString(asn1ber.ClassContext, asn1ber.TypePrimitive, asn1ber.Tag(piece.Tag), string(piece.Value), piece.Tag.String()))
		}
		p.AppendChild(seq)
		return p, nil
	case TagExtensibleMatch:
		p := asn1ber.Encode(asn1ber.ClassContext, asn1ber.TypeConstructed, asn1ber.Tag(TagExtensibleMatch), nil, "extensibleMatch")
		if n.HasMatchingRule {
			p.AppendChild(asn1ber.NewString(asn1ber.ClassContext, asn1ber.TypePrimitive, asn1ber.Tag(tagMatchingRule), n.MatchingRule, "matchingRule"))
		}
		if n.HasAttribute {
			p.AppendChild(asn1ber.NewString(asn1ber.ClassContext, asn1ber.TypePrimitive, asn1ber.Tag(tagMatchingType), n.Attribute, "type"))
		}
		p.AppendChild(asn1ber.NewString(asn1ber.ClassContext, asn1ber.TypePrimitive, asn1ber.Tag(tagMatchValue), string(n.Value), "matchValue"))
		if n.DNAttributes {
			p.AppendChild(asn1ber.NewBoolean(asn1ber.ClassContext, asn1ber.TypePrimitive, asn1ber.Tag(tagMatchDNAttributes), true, "dnAttributes"))
		}
		return p, nil
	default:
		return nil, fmt.Errorf("ldap filter: unknown node tag %d", n.Tag)
	}
}

// Decode is the inverse of Encode, grounded on the teacher's
// DecompileFilter. Unlike the teacher it returns a Node rather than
// re-rendering text directly; text rendering is Render's job.
func Decode(p *asn1ber.Packet) (*Node, error) {
	tag := NodeTag(p.Tag)
	switch tag {
	case TagAnd, TagOr:
		children := make([]*Node, 0, len(p.Children))
		for _, c := range p.Children {
			cn, err := Decode(c)
			if err != nil {
				return nil, err
			}
			children = append(children, cn)
		}
		if len(children) == 0 {
			return nil, fmt.Errorf("ldap filter: %s has no children", tag)
		}
		return &Node{Tag: tag, Children: children}, nil
	case TagNot:
		if len(p.Children) != 1 {
			return nil, fmt.Errorf("ldap filter: not must have exactly one child")
		}
		child, err := Decode(p.Children[0])
		if err != nil {
			return nil, err
		}
		return &Node{Tag: tag, Children: []*Node{child}}, nil
	case TagEqualityMatch, TagGreaterOrEqual, TagLessOrEqual, TagApproxMatch:
		if len(p.Children) != 2 {
			return nil, fmt.Errorf("ldap filter: %s must have an attribute and a value", tag)
		}
		return &Node{Tag: tag, Attribute: asn1ber.DecodeString(p.Children[0].Data.Bytes()), Value: p.Children[1].Data.Bytes()}, nil
	case TagPresent:
		return &Node{Tag: tag, Attribute: asn1ber.DecodeString(p.Data.Bytes())}, nil
	case TagSubstrings:
		if len(p.Children) != 2 {
			return nil, fmt.Errorf("ldap filter: substrings must have a type and a sequence")
		}
		attr := asn1ber.DecodeString(p.Children[0].Data.Bytes())
		pieces := make([]Piece, 0, len(p.Children[1].Children))
		for _, c := range p.Children[1].Children {
			pieces = append(pieces, Piece{Tag: PieceTag(c.Tag), Value: c.Data.Bytes()})
		}
		return &Node{Tag: tag, Attribute: attr, Pieces: pieces}, nil
	case TagExtensibleMatch:
		n := &Node{Tag: tag}
		for _, c := range p.Children {
			switch c.Tag {
			case tagMatchingRule:
				n.HasMatchingRule = true
				n.MatchingRule = asn1ber.DecodeString(c.Data.Bytes())
			case tagMatchingType:
				n.HasAttribute = true
				n.Attribute = asn1ber.DecodeString(c.Data.Bytes())
			case tagMatchValue:
				n.Value = c.Data.Bytes()
			case tagMatchDNAttributes:
				n.DNAttributes = true
			}
		}
		return n, nil
	default:
		return nil, fmt.Errorf("ldap filter: unknown ber tag %d", p.Tag)
	}
}
