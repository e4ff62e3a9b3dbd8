// Copyright 2011 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package filter

import "testing"

func TestIterateEqualityMatch(t *testing.T) {
	n, err := Parse("(sn=Miller)")
	if err != nil {
		t.Fatalf("Parse() = error %v", err)
	}
	events := Iterate(n)

	want := []EventKind{EventTag, EventAttribute, EventValue}
	if len(events) != len(want) {
		t.Fatalf("Iterate() = %d events, want %d: %+v", len(events), len(want), events)
	}
	for i, k := range want {
		if events[i].Kind != k {
			t.Errorf("events[%d].Kind = %v, want %v", i, events[i].Kind, k)
		}
	}
	if events[1].Text != "sn" || string(events[2].Bytes) != "Miller" {
		t.Errorf("events = %+v, want attribute sn, value Miller", events)
	}
}

func TestIterateAndNestsChildEvents(t *testing.T) {
	n, err := Parse("(&(sn=Miller)(givenName=Bob))")
	if err != nil {
		t.Fatalf("Parse() = error %v", err)
	}
	events := Iterate(n)

	want := []EventKind{
		EventTag,
		EventEnterChild, EventTag, EventAttribute, EventValue, EventExitChild,
		EventEnterChild, EventTag, EventAttribute, EventValue, EventExitChild,
	}
	if len(events) != len(want) {
		t.Fatalf("Iterate() = %d events, want %d: %+v", len(events), len(want), events)
	}
	for i, k := range want {
		if events[i].Kind != k {
			t.Errorf("events[%d].Kind = %v, want %v", i, events[i].Kind, k)
		}
	}
}

func TestIterateExtensibleMatchEndsWithDNAttributes(t *testing.T) {
	n, err := Parse(`(cn:dn:2.4.6.8.10:=Dino)`)
	if err != nil {
		t.Fatalf("Parse() = error %v", err)
	}
	events := Iterate(n)
	last := events[len(events)-1]
	if last.Kind != EventDNAttributes || !last.Bool {
		t.Errorf("last event = %+v, want DNAttributes(true)", last)
	}
}
