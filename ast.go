// Copyright 2011 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package filter implements the RFC 2254 search-filter grammar: parsing
// filter text into a FilterNode tree shaped after the RFC 2251 Filter
// CHOICE, building the same tree programmatically, rendering a tree back
// to text, and a Visitor-driven traversal over it (Walk, plus Iterate,
// which flattens the traversal into a slice of events).
package filter

import "fmt"

// NodeTag is the stable small-integer tag of a FilterNode variant. The
// values match the context tag numbers of the RFC 2251 Filter CHOICE and
// are also used by the BER tag adapter.
type NodeTag int

const (
	TagAnd             NodeTag = 0
	TagOr              NodeTag = 1
	TagNot             NodeTag = 2
	TagEqualityMatch   NodeTag = 3
	TagSubstrings      NodeTag = 4
	TagGreaterOrEqual  NodeTag = 5
	TagLessOrEqual     NodeTag = 6
	TagPresent         NodeTag = 7
	TagApproxMatch     NodeTag = 8
	TagExtensibleMatch NodeTag = 9
)

var tagNames = map[NodeTag]string{
	TagAnd:             "And",
	TagOr:              "Or",
	TagNot:             "Not",
	TagEqualityMatch:   "EqualityMatch",
	TagSubstrings:      "Substrings",
	TagGreaterOrEqual:  "GreaterOrEqual",
	TagLessOrEqual:     "LessOrEqual",
	TagPresent:         "Present",
	TagApproxMatch:     "ApproxMatch",
	TagExtensibleMatch: "ExtensibleMatch",
}

func (t NodeTag) String() string {
	if n, ok := tagNames[t]; ok {
		return n
	}
	return fmt.Sprintf("NodeTag(%d)", int(t))
}

// PieceTag is the stable small-integer tag of a SubstringPiece variant.
type PieceTag int

const (
	PieceInitial PieceTag = 0
	PieceAny     PieceTag = 1
	PieceFinal   PieceTag = 2
)

func (t PieceTag) String() string {
	switch t {
	case PieceInitial:
		return "Initial"
	case PieceAny:
		return "Any"
	case PieceFinal:
		return "Final"
	default:
		return fmt.Sprintf("PieceTag(%d)", int(t))
	}
}

// Piece is one element of a Substrings sequence.
type Piece struct {
	Tag   PieceTag
	Value []byte
}

// Node is the tagged union mirroring the RFC 2251 Filter CHOICE. Only the
// fields relevant to Tag are populated; it is immutable once returned by
// Parse or the Builder, and equality is structural.
type Node struct {
	Tag NodeTag

	// And, Or: Children holds the set of nested filters (len >= 1).
	// Not: Children holds exactly one nested filter.
	Children []*Node

	// EqualityMatch, Substrings, GreaterOrEqual, LessOrEqual, Present,
	// ApproxMatch: the attribute description being compared.
	Attribute string

	// EqualityMatch, GreaterOrEqual, LessOrEqual, ApproxMatch,
	// ExtensibleMatch: the raw assertion value octets.
	Value []byte

	// Substrings: the ordered, non-empty piece sequence.
	Pieces []Piece

	// ExtensibleMatch: optional matching rule OID/name.
	MatchingRule string
	// ExtensibleMatch: whether MatchingRule is present (it may be the
	// empty string "0" OID in principle, so presence is tracked
	// separately from emptiness).
	HasMatchingRule bool
	// ExtensibleMatch: whether Attribute is present.
	HasAttribute bool
	// ExtensibleMatch: the dnAttributes flag.
	DNAttributes bool
}

// Clone returns a deep copy of the tree rooted at n.
func (n *Node) Clone() *Node {
	if n == nil {
		return nil
	}
	c := *n
	if n.Children != nil {
		c.Children = make([]*Node, len(n.Children))
		for i, ch := range n.Children {
			c.Children[i] = ch.Clone()
		}
	}
	if n.Value != nil {
		c.Value = append([]byte(nil), n.Value...)
	}
	if n.Pieces != nil {
		c.Pieces = make([]Piece, len(n.Pieces))
		for i, p := range n.Pieces {
			c.Pieces[i] = Piece{Tag: p.Tag, Value: append([]byte(nil), p.Value...)}
		}
	}
	return &c
}

// Equal reports whether n and o describe structurally identical filters.
func (n *Node) Equal(o *Node) bool {
	if n == nil || o == nil {
		return n == o
	}
	if n.Tag != o.Tag {
		return false
	}
	switch n.Tag {
	case TagAnd, TagOr, TagNot:
		if len(n.Children) != len(o.Children) {
			return false
		}
		for i := range n.Children {
			if !n.Children[i].Equal(o.Children[i]) {
				return false
			}
		}
		return true
	case TagPresent:
		return n.Attribute == o.Attribute
	case TagEqualityMatch, TagGreaterOrEqual, TagLessOrEqual, TagApproxMatch:
		return n.Attribute == o.Attribute && bytesEqual(n.Value, o.Value)
	case TagSubstrings:
		if n.Attribute != o.Attribute || len(n.Pieces) != len(o.Pieces) {
			return false
		}
		for i := range n.Pieces {
			if n.Pieces[i].Tag != o.Pieces[i].Tag || !bytesEqual(n.Pieces[i].Value, o.Pieces[i].Value) {
				return false
			}
		}
		return true
	case TagExtensibleMatch:
		return n.HasMatchingRule == o.HasMatchingRule &&
			n.MatchingRule == o.MatchingRule &&
			n.HasAttribute == o.HasAttribute &&
			n.Attribute == o.Attribute &&
			n.DNAttributes == o.DNAttributes &&
			bytesEqual(n.Value, o.Value)
	default:
		return false
	}
}

func bytesEqual(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
