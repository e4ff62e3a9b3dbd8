// Copyright 2011 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package filter

// Builder assembles a Node tree step by step, for callers composing a
// filter from pieces rather than parsing text. It owns a root slot and a
// composition stack whose top is the currently open container; it is not
// safe for concurrent use and must not be shared across goroutines while
// a filter is being built.
type Builder struct {
	root  *Node
	stack []*Node
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{}
}

func isNestingContainer(n *Node) bool {
	switch n.Tag {
	case TagAnd, TagOr, TagNot:
		return true
	default:
		return false
	}
}

func (b *Builder) push(n *Node) {
	b.stack = append(b.stack, n)
}

func (b *Builder) pop() (*Node, error) {
	if len(b.stack) == 0 {
		return nil, newSequencingError(ReasonNoOpenContainer, "builder stack is empty")
	}
	n := b.stack[len(b.stack)-1]
	b.stack = b.stack[:len(b.stack)-1]
	return n, nil
}

func (b *Builder) top() *Node {
	if len(b.stack) == 0 {
		return nil
	}
	return b.stack[len(b.stack)-1]
}

// addObject places node per spec.md 4.5. A Not-slot that just received its
// one child is pushed a second time, so that endNestedFilter(Not) can
// unwind it with exactly two pops regardless of whether the child itself
// was a container.
func (b *Builder) addObject(node *Node) error {
	if b.root == nil {
		b.root = node
		if isNestingContainer(node) {
			b.push(node)
		}
		return nil
	}

	top := b.top()
	if top == nil {
		return newSequencingError(ReasonNoOpenContainer, "no open container to add to")
	}

	switch top.Tag {
	case TagNot:
		if len(top.Children) == 1 {
			return newSequencingError(ReasonSecondChildForNot, "not already has a child")
		}
		top.Children = append(top.Children, node)
		b.push(top)
	case TagAnd, TagOr:
		top.Children = append(top.Children, node)
	case TagSubstrings:
		return newSequencingError(ReasonOutOfSequence, "a substring sequence is open")
	default:
		return newSequencingError(ReasonNoOpenContainer, "top of stack is not a container")
	}

	if isNestingContainer(node) {
		b.push(node)
	}
	return nil
}

// StartNestedFilter opens a new And, Or or Not container and nests it into
// whatever is currently open (or makes it the root).
func (b *Builder) StartNestedFilter(kind NodeTag) error {
	if kind != TagAnd && kind != TagOr && kind != TagNot {
		return newSequencingError(ReasonInvalidNested, "kind must be And, Or or Not")
	}
	return b.addObject(&Node{Tag: kind})
}

// EndNestedFilter closes the most recently opened And, Or or Not
// container. kind must match the container being closed.
func (b *Builder) EndNestedFilter(kind NodeTag) error {
	if kind == TagNot {
		a, err := b.pop()
		if err != nil {
			return err
		}
		c, err := b.pop()
		if err != nil {
			return err
		}
		if a.Tag != TagNot || c.Tag != TagNot {
			return newSequencingError(ReasonMismatchedEnd, "not does not match open container")
		}
		return nil
	}

	popped, err := b.pop()
	if err != nil {
		return err
	}
	if popped.Tag != kind {
		return newSequencingError(ReasonMismatchedEnd, "closing kind does not match open container")
	}
	return nil
}

// StartSubstrings opens a Substrings node for attr and pushes its piece
// sequence as the current container.
func (b *Builder) StartSubstrings(attr string) error {
	node := &Node{Tag: TagSubstrings, Attribute: attr}
	if err := b.addObject(node); err != nil {
		return err
	}
	b.push(node)
	return nil
}

// AddSubstring appends one piece to the currently open substring sequence.
// Initial is only allowed as the first piece; once a Final has been added
// no further pieces are permitted.
func (b *Builder) AddSubstring(kind PieceTag, value []byte) error {
	top := b.top()
	if top == nil || top.Tag != TagSubstrings {
		return newSequencingError(ReasonOutOfSequence, "no open substring sequence")
	}
	for _, p := range top.Pieces {
		if p.Tag == PieceFinal {
			return newSequencingError(ReasonOutOfSequence, "substring sequence already has a final piece")
		}
	}
	if kind == PieceInitial && len(top.Pieces) != 0 {
		return newSequencingError(ReasonOutOfSequence, "initial must be the first piece")
	}
	top.Pieces = append(top.Pieces, Piece{Tag: kind, Value: value})
	return nil
}

// EndSubstrings closes the currently open substring sequence. The
// sequence must be non-empty.
func (b *Builder) EndSubstrings() error {
	top := b.top()
	if top == nil || top.Tag != TagSubstrings {
		return newSequencingError(ReasonOutOfSequence, "no open substring sequence")
	}
	if len(top.Pieces) == 0 {
		return newSequencingError(ReasonEmptySubstring, "substring sequence has no pieces")
	}
	_, err := b.pop()
	return err
}

// AddAttributeValueAssertion adds an EqualityMatch, GreaterOrEqual,
// LessOrEqual or ApproxMatch leaf. kind must be one of those four tags.
func (b *Builder) AddAttributeValueAssertion(kind NodeTag, attr string, value []byte) error {
	if top := b.top(); top != nil && top.Tag == TagSubstrings {
		return newSequencingError(ReasonAssertionInsideSubstr, "cannot add an assertion while a substring sequence is open")
	}
	return b.addObject(&Node{Tag: kind, Attribute: attr, Value: value})
}

// AddPresent adds a Present leaf for attr.
func (b *Builder) AddPresent(attr string) error {
	return b.addObject(&Node{Tag: TagPresent, Attribute: attr})
}

// AddExtensibleMatch adds an ExtensibleMatch leaf. At least one of
// hasMatchingRule or hasAttribute must be true.
func (b *Builder) AddExtensibleMatch(matchingRule string, hasMatchingRule bool, attr string, hasAttribute bool, value []byte, dnAttributes bool) error {
	if !hasMatchingRule && !hasAttribute {
		return newSequencingError(ReasonNeedsAttributeOrRule, "extensible match needs a matching rule or an attribute")
	}
	return b.addObject(&Node{
		Tag:             TagExtensibleMatch,
		MatchingRule:    matchingRule,
		HasMatchingRule: hasMatchingRule,
		Attribute:       attr,
		HasAttribute:    hasAttribute,
		Value:           value,
		DNAttributes:    dnAttributes,
	})
}

// Filter returns the tree built so far. It fails if any container opened
// with StartNestedFilter/StartSubstrings was never closed.
func (b *Builder) Filter() (*Node, error) {
	if len(b.stack) != 0 {
		return nil, newSequencingError(ReasonMismatchedEnd, "builder has unclosed containers")
	}
	if b.root == nil {
		return nil, newSequencingError(ReasonNoOpenContainer, "builder produced no filter")
	}
	return b.root, nil
}
