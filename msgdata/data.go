// Package msgdata defines the generic keyed-dictionary payload a contract
// invocation may carry: string-keyed variant values covering strings, 64-bit
// integers, digests, public keys, lists and nested dictionaries. The
// settlement core only ever reads these values through its structured parser;
// msgdata itself performs no validation.
package msgdata

import (
	"github.com/decred/dcrd/chaincfg/chainhash"

	"github.com/arielzenprotocol/contracts"
)

// Data is one variant payload value.
type Data interface {
	isData()
}

type String string

type U64 uint64

// Digest is a 32-byte hash value.
type Digest chainhash.Hash

// PubKey is a raw 64-byte public key value.
type PubKey contracts.PubKey

type List []Data

// Dict is the string-keyed dictionary shape the parser consumes.
type Dict map[string]Data

func (String) isData() {}
func (U64) isData()    {}
func (Digest) isData() {}
func (PubKey) isData() {}
func (List) isData()   {}
func (Dict) isData()   {}
