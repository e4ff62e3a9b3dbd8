// Copyright 2011 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package filter

import asn1ber "github.com/go-asn1-ber/asn1-ber"

// applicationSearchRequest is the SearchRequest's APPLICATION tag in the
// LDAPMessage CHOICE (RFC 4511 4.5.1), grounded on the teacher's own
// ApplicationSearchRequest convention.
const applicationSearchRequest = 3

// Scope is the search scope of a SearchRequest.
type Scope int

// Scope values for SearchRequest.Scope, grounded on the teacher's
// ScopeBaseObject/ScopeSingleLevel/ScopeWholeSubtree constants.
const (
	ScopeBaseObject   Scope = 0
	ScopeSingleLevel  Scope = 1
	ScopeWholeSubtree Scope = 2
)

// DerefAliases is the alias-dereferencing policy of a SearchRequest.
type DerefAliases int

// DerefAliases values for SearchRequest.DerefAliases, grounded on the
// teacher's NeverDerefAliases/DerefInSearching/DerefFindingBaseObj/
// DerefAlways constants.
const (
	NeverDerefAliases   DerefAliases = 0
	DerefInSearching    DerefAliases = 1
	DerefFindingBaseObj DerefAliases = 2
	DerefAlways         DerefAliases = 3
)

// SearchRequest is the consumer-facing shape a transport layer outside
// this package would serialize: a parsed Filter plus the surrounding
// SearchRequest fields RFC 4511 4.5.1 defines. It carries no connection,
// no timeouts and no result handling; those belong to an external
// collaborator.
type SearchRequest struct {
	BaseDN       string
	Scope        Scope
	DerefAliases DerefAliases
	SizeLimit    int
	TimeLimit    int
	TypesOnly    bool
	Filter       *Node
	Attributes   []string
}

// Encode BER-encodes the request's Filter and produces the SearchRequest
// packet a transport layer would wrap in an LDAPMessage envelope and
// send, grounded on the teacher's encodeSearchRequest.
func (req *SearchRequest) Encode() (*asn1ber.Packet, error) {
	p := asn1ber.Encode(asn1ber.ClassApplication, asn1ber.TypeConstructed, applicationSearchRequest, nil, "SearchRequest")
	p.AppendChild(asn1ber.NewString(asn1ber.ClassUniversal, asn1ber.TypePrimitive, asn1ber.TagOctetString, req.BaseDN, "baseObject"))
	p.AppendChild(asn1ber.NewInteger(asn1ber.ClassUniversal, asn1ber.TypePrimitive, asn1ber.TagEnumerated, uint64(req.Scope), "scope"))
	p.AppendChild(asn1ber.NewInteger(asn1ber.ClassUniversal, asn1ber.TypePrimitive, asn1ber.TagEnumerated, uint64(req.DerefAliases), "derefAliases"))
	p.AppendChild(asn1ber.NewInteger(asn1ber.ClassUniversal, asn1ber.TypePrimitive, asn1ber.TagInteger, uint64(req.SizeLimit), "sizeLimit"))
	p.AppendChild(asn1ber.NewInteger(asn1ber.ClassUniversal, asn1ber.TypePrimitive, asn1ber.TagInteger, uint64(req.TimeLimit), "timeLimit"))
	p.AppendChild(asn1ber.NewBoolean(asn1ber.ClassUniversal, asn1ber.TypePrimitive, asn1ber.TagBoolean, req.TypesOnly, "typesOnly"))

	filterPacket, err := Encode(req.Filter)
	if err != nil {
		return nil, err
	}
	p.AppendChild(filterPacket)

	attrs := asn1ber.Encode(asn1ber.ClassUniversal, asn1ber.TypeConstructed, asn1ber.TagSequence, nil, "attributes")
	for _, a := range req.Attributes {
		attrs.AppendChild(asn1ber.NewString(asn1ber.ClassUniversal, asn1ber.TypePrimitive, asn1ber.TagOctetString, a, "attribute"))
	}
	p.AppendChild(attrs)

	return p, nil
}
