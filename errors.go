// Copyright 2011 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package filter

import "fmt"

// Reason identifies why a filter string failed to parse.
type Reason string

const (
	ReasonMissingLeftParen       Reason = "missing left paren"
	ReasonMissingRightParen      Reason = "missing right paren"
	ReasonInvalidEscape          Reason = "invalid escape"
	ReasonShortEscape            Reason = "short escape"
	ReasonInvalidChar            Reason = "invalid character"
	ReasonUnexpectedEnd          Reason = "unexpected end"
	ReasonNoAttributeName        Reason = "no attribute name"
	ReasonNoMatchingRule         Reason = "no matching rule"
	ReasonNoDNOrMatchingRule     Reason = "no DN nor matching rule"
	ReasonInvalidComparison      Reason = "invalid comparison"
	ReasonInvalidEscapeInDescr   Reason = "invalid escape in descriptor"
	ReasonInvalidCharInDescr     Reason = "invalid char in descriptor"
	ReasonNoOption               Reason = "no option"
	ReasonExpectingLeftParen     Reason = "expecting ("
	ReasonExpectingRightParen    Reason = "expecting )"
	ReasonEmptyFilterList        Reason = "empty filter list"
	ReasonEmptySubstrings        Reason = "empty substring sequence"
	ReasonMultipleMatchingRules  Reason = "multiple matching rule ids"
)

// SyntaxError reports a failure to parse RFC 2254 filter text. It always
// carries a Reason drawn from the enumerated list above; parsing is
// all-or-nothing, so a SyntaxError never implies partial results.
type SyntaxError struct {
	Reason  Reason
	Pos     int
	Message string
}

func (e *SyntaxError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("ldap filter: %s at position %d", e.Reason, e.Pos)
	}
	return fmt.Sprintf("ldap filter: %s at position %d: %s", e.Reason, e.Pos, e.Message)
}

func newSyntaxError(reason Reason, pos int, message string) *SyntaxError {
	return &SyntaxError{Reason: reason, Pos: pos, Message: message}
}

// SequencingReason identifies why a Builder call was rejected.
type SequencingReason string

const (
	ReasonSecondChildForNot       SequencingReason = "second child for not"
	ReasonInvalidNested           SequencingReason = "invalid nested"
	ReasonMismatchedEnd           SequencingReason = "mismatched end"
	ReasonOutOfSequence           SequencingReason = "out of sequence"
	ReasonAssertionInsideSubstr   SequencingReason = "assertion inside substrings"
	ReasonEmptySubstring          SequencingReason = "empty substring"
	ReasonNoOpenContainer         SequencingReason = "no open container"
	ReasonNeedsAttributeOrRule    SequencingReason = "needs attribute or matching rule"
)

// SequencingError reports a Builder call made out of order. It is distinct
// from SyntaxError: it can only arise from the Builder's stateful API, never
// from parsing text.
type SequencingError struct {
	Reason  SequencingReason
	Message string
}

func (e *SequencingError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("ldap filter builder: %s", e.Reason)
	}
	return fmt.Sprintf("ldap filter builder: %s: %s", e.Reason, e.Message)
}

func newSequencingError(reason SequencingReason, message string) *SequencingError {
	return &SequencingError{Reason: reason, Message: message}
}
