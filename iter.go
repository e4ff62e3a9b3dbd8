// Copyright 2011 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package filter

// Visitor receives the traversal events Walk produces for a Node tree.
// This replaces the source's literal pull iterator (an interleaved stream
// of integer tags and field values) with a fold over the AST, per the
// re-architecture spec.md's design notes call for: the event-collecting
// Iterate below is a fold built on top of Walk. The textual renderer in
// render.go does not use Walk; it recurses over the Node directly.
type Visitor interface {
	VisitTag(tag NodeTag)
	EnterChild(index int)
	ExitChild(index int)
	VisitAttribute(attr string)
	VisitValue(value []byte)
	VisitPiece(tag PieceTag, value []byte)
	VisitMatchingRule(rule string)
	VisitDNAttributes(dn bool)
}

// Walk drives v over n in the field order spec.md 4.6 defines: the node's
// own tag first, then its type-specific fields, recursing into children
// for And, Or and Not.
func Walk(n *Node, v Visitor) {
	v.VisitTag(n.Tag)
	switch n.Tag {
	case TagAnd, TagOr:
		for i, c := range n.Children {
			v.EnterChild(i)
			Walk(c, v)
			v.ExitChild(i)
		}
	case TagNot:
		v.EnterChild(0)
		Walk(n.Children[0], v)
		v.ExitChild(0)
	case TagEqualityMatch, TagGreaterOrEqual, TagLessOrEqual, TagApproxMatch:
		v.VisitAttribute(n.Attribute)
		v.VisitValue(n.Value)
	case TagPresent:
		v.VisitAttribute(n.Attribute)
	case TagSubstrings:
		v.VisitAttribute(n.Attribute)
		for _, p := range n.Pieces {
			v.VisitPiece(p.Tag, p.Value)
		}
	case TagExtensibleMatch:
		rule := ""
		if n.HasMatchingRule {
			rule = n.MatchingRule
		}
		attr := ""
		if n.HasAttribute {
			attr = n.Attribute
		}
		v.VisitMatchingRule(rule)
		v.VisitAttribute(attr)
		v.VisitValue(n.Value)
		v.VisitDNAttributes(n.DNAttributes)
	}
}

// EventKind identifies one entry of the flattened event stream Iterate
// produces.
type EventKind int

const (
	EventTag EventKind = iota
	EventEnterChild
	EventExitChild
	EventAttribute
	EventValue
	EventPiece
	EventMatchingRule
	EventDNAttributes
)

// Event is one element of the interleaved stream spec.md 4.6 describes:
// a node's tag, then its fields, in order.
type Event struct {
	Kind     EventKind
	Tag      NodeTag
	PieceTag PieceTag
	Index    int
	Text     string
	Bytes    []byte
	Bool     bool
}

type eventCollector struct {
	events []Event
}

func (c *eventCollector) VisitTag(tag NodeTag)   { c.events = append(c.events, Event{Kind: EventTag, Tag: tag}) }
func (c *eventCollector) EnterChild(index int)   { c.events = append(c.events, Event{Kind: EventEnterChild, Index: index}) }
func (c *eventCollector) ExitChild(index int)    { c.events = append(c.events, Event{Kind: EventExitChild, Index: index}) }
func (c *eventCollector) VisitAttribute(a string) {
	c.events = append(c.events, Event{Kind: EventAttribute, Text: a})
}
func (c *eventCollector) VisitValue(v []byte) {
	c.events = append(c.events, Event{Kind: EventValue, Bytes: v})
}
func (c *eventCollector) VisitPiece(t PieceTag, v []byte) {
	c.events = append(c.events, Event{Kind: EventPiece, PieceTag: t, Bytes: v})
}
func (c *eventCollector) VisitMatchingRule(r string) {
	c.events = append(c.events, Event{Kind: EventMatchingRule, Text: r})
}
func (c *eventCollector) VisitDNAttributes(dn bool) {
	c.events = append(c.events, Event{Kind: EventDNAttributes, Bool: dn})
}

// Iterate flattens n into the event stream described by spec.md 4.6,
// for callers that want the literal tag-then-fields shape rather than a
// Visitor.
func Iterate(n *Node) []Event {
	c := &eventCollector{}
	Walk(n, c)
	return c.events
}
