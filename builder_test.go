// Copyright 2011 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package filter

import "testing"

func TestBuilderEqualityMatch(t *testing.T) {
	b := NewBuilder()
	if err := b.AddAttributeValueAssertion(TagEqualityMatch, "sn", []byte("Miller")); err != nil {
		t.Fatalf("AddAttributeValueAssertion() = error %v", err)
	}
	n, err := b.Filter()
	if err != nil {
		t.Fatalf("Filter() = error %v", err)
	}
	if got := Render(n); got != "(sn=Miller)" {
		t.Fatalf("Render() = %q, want (sn=Miller)", got)
	}
}

func TestBuilderAndOfTwoLeaves(t *testing.T) {
	b := NewBuilder()
	must(t, b.StartNestedFilter(TagAnd))
	must(t, b.AddAttributeValueAssertion(TagEqualityMatch, "sn", []byte("Miller")))
	must(t, b.AddAttributeValueAssertion(TagEqualityMatch, "givenName", []byte("Bob")))
	must(t, b.EndNestedFilter(TagAnd))

	n, err := b.Filter()
	if err != nil {
		t.Fatalf("Filter() = error %v", err)
	}
	if got := Render(n); got != "(&(sn=Miller)(givenName=Bob))" {
		t.Fatalf("Render() = %q, want (&(sn=Miller)(givenName=Bob))", got)
	}
}

func TestBuilderNotWithLeafChild(t *testing.T) {
	b := NewBuilder()
	must(t, b.StartNestedFilter(TagNot))
	must(t, b.AddPresent("cn"))
	must(t, b.EndNestedFilter(TagNot))

	n, err := b.Filter()
	if err != nil {
		t.Fatalf("Filter() = error %v", err)
	}
	if got := Render(n); got != "(!(cn=*))" {
		t.Fatalf("Render() = %q, want (!(cn=*))", got)
	}
}

func TestBuilderNotWithContainerChild(t *testing.T) {
	b := NewBuilder()
	must(t, b.StartNestedFilter(TagNot))
	must(t, b.StartNestedFilter(TagAnd))
	must(t, b.AddAttributeValueAssertion(TagEqualityMatch, "sn", []byte("a")))
	must(t, b.AddAttributeValueAssertion(TagEqualityMatch, "cn", []byte("b")))
	must(t, b.EndNestedFilter(TagAnd))
	must(t, b.EndNestedFilter(TagNot))

	n, err := b.Filter()
	if err != nil {
		t.Fatalf("Filter() = error %v", err)
	}
	if got := Render(n); got != "(!(&(sn=a)(cn=b)))" {
		t.Fatalf("Render() = %q, want (!(&(sn=a)(cn=b)))", got)
	}
}

func TestBuilderNotRejectsSecondChild(t *testing.T) {
	b := NewBuilder()
	must(t, b.StartNestedFilter(TagNot))
	must(t, b.AddPresent("cn"))
	if err := b.AddPresent("sn"); err == nil {
		t.Fatal("AddPresent() succeeded, want error for second child of Not")
	}
}

func TestBuilderMismatchedEndNotVsAnd(t *testing.T) {
	b := NewBuilder()
	must(t, b.StartNestedFilter(TagNot))
	must(t, b.AddPresent("cn"))
	if err := b.EndNestedFilter(TagAnd); err == nil {
		t.Fatal("EndNestedFilter(TagAnd) succeeded, want mismatch error")
	}
}

func TestBuilderSubstrings(t *testing.T) {
	b := NewBuilder()
	must(t, b.StartSubstrings("cn"))
	must(t, b.AddSubstring(PieceInitial, []byte("univ")))
	must(t, b.AddSubstring(PieceAny, []byte("of")))
	must(t, b.AddSubstring(PieceAny, []byte("mich")))
	must(t, b.EndSubstrings())

	n, err := b.Filter()
	if err != nil {
		t.Fatalf("Filter() = error %v", err)
	}
	if got := Render(n); got != "(cn=univ*of*mich*)" {
		t.Fatalf("Render() = %q, want (cn=univ*of*mich*)", got)
	}
}

func TestBuilderSubstringsRejectsInitialAfterFirst(t *testing.T) {
	b := NewBuilder()
	must(t, b.StartSubstrings("cn"))
	must(t, b.AddSubstring(PieceAny, []byte("a")))
	if err := b.AddSubstring(PieceInitial, []byte("b")); err == nil {
		t.Fatal("AddSubstring(Initial) succeeded after a non-initial piece, want error")
	}
}

func TestBuilderSubstringsRejectsPieceAfterFinal(t *testing.T) {
	b := NewBuilder()
	must(t, b.StartSubstrings("cn"))
	must(t, b.AddSubstring(PieceFinal, []byte("a")))
	if err := b.AddSubstring(PieceAny, []byte("b")); err == nil {
		t.Fatal("AddSubstring(Any) succeeded after a final piece, want error")
	}
}

func TestBuilderEmptySubstringsRejected(t *testing.T) {
	b := NewBuilder()
	must(t, b.StartSubstrings("cn"))
	if err := b.EndSubstrings(); err == nil {
		t.Fatal("EndSubstrings() succeeded on an empty sequence, want error")
	}
}

func TestBuilderAssertionInsideSubstringsRejected(t *testing.T) {
	b := NewBuilder()
	must(t, b.StartSubstrings("cn"))
	if err := b.AddAttributeValueAssertion(TagEqualityMatch, "sn", []byte("x")); err == nil {
		t.Fatal("AddAttributeValueAssertion() succeeded while substrings open, want error")
	}
}

func TestBuilderExtensibleMatchNeedsAttributeOrRule(t *testing.T) {
	b := NewBuilder()
	if err := b.AddExtensibleMatch("", false, "", false, []byte("x"), false); err == nil {
		t.Fatal("AddExtensibleMatch() succeeded with neither attribute nor rule, want error")
	}
}

func TestBuilderUnclosedContainerRejected(t *testing.T) {
	b := NewBuilder()
	must(t, b.StartNestedFilter(TagAnd))
	must(t, b.AddPresent("cn"))
	if _, err := b.Filter(); err == nil {
		t.Fatal("Filter() succeeded with an unclosed And, want error")
	}
}

func must(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
