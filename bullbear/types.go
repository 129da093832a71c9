// Package bullbear implements the settlement core of a binary-outcome
// prediction-market contract. An oracle-defined price/time event is hashed
// canonically into two complementary outcome-token identities ("Bull" and
// "Bear"); the Buy command mints both against the collateral available in the
// transaction skeleton and locks them to the buyer. Every operation charges a
// declared, input-shape-independent number of cost units so independent
// evaluators compute identical results at identical cost.
package bullbear

import (
	"github.com/decred/dcrd/chaincfg/chainhash"

	"github.com/arielzenprotocol/contracts"
	"github.com/arielzenprotocol/contracts/msgdata"
	"github.com/arielzenprotocol/contracts/txskel"
)

// TickerMaxLen is the longest instrument identifier an event may carry.
const TickerMaxLen = 4

// AuditPathMaxLen bounds membership proofs to trees of depth 31.
const AuditPathMaxLen = 31

// Ticker names a priced instrument. The only way to obtain one is MakeTicker.
type Ticker struct {
	s string
}

// MakeTicker validates s and wraps it. Fails on anything longer than
// TickerMaxLen bytes.
func MakeTicker(s string) (Ticker, error) {
	if len(s) > TickerMaxLen {
		return Ticker{}, ErrTickerTooLong
	}
	return Ticker{s: s}, nil
}

func (t Ticker) String() string {
	return t.s
}

// AuditPath is a bounded sequence of digests forming a Merkle-style
// membership proof. The only way to obtain one is MakeAuditPath.
type AuditPath struct {
	hashes []chainhash.Hash
}

// MakeAuditPath validates and copies hs. Fails on more than AuditPathMaxLen
// entries.
func MakeAuditPath(hs []chainhash.Hash) (AuditPath, error) {
	if len(hs) > AuditPathMaxLen {
		return AuditPath{}, ErrAuditPathTooLong
	}
	return AuditPath{hashes: append([]chainhash.Hash(nil), hs...)}, nil
}

// Hashes returns a copy of the path entries.
func (p AuditPath) Hashes() []chainhash.Hash {
	return append([]chainhash.Hash(nil), p.hashes...)
}

func (p AuditPath) Len() int {
	return len(p.hashes)
}

// Position is one of the two exclusive outcomes of a bet. Its canonical
// hashed encoding is the literal name string.
type Position string

const (
	Bull Position = "Bull"
	Bear Position = "Bear"
)

// Event defines the price/time window condition of a market. PriceHigh and
// TimeHigh are optional: nil means a one-sided bound.
type Event struct {
	OraclePubKey contracts.PubKey
	Ticker       Ticker
	PriceLow     uint64
	PriceHigh    *uint64
	TimeLow      uint64
	TimeHigh     *uint64
}

// Bet is one side of a wager on an event.
type Bet struct {
	Event    Event
	Position Position
}

// Attestation is an oracle's signed claim about a value at a time.
type Attestation struct {
	Timestamp    uint64
	Commit       chainhash.Hash
	OraclePubKey contracts.PubKey
}

// Proof is a Merkle-style membership claim. Verification is handled by an
// external extension, not by this contract.
type Proof struct {
	Key       Ticker
	Value     uint64
	Root      chainhash.Hash
	AuditPath AuditPath
}

// Redemption is the payout claim structure. The redeem command is handled by
// an external extension, not by this contract.
type Redemption struct {
	Bet         Bet
	Attestation Attestation
	Proof       Proof
}

// Sender describes who invoked the contract and therefore where minted value
// is locked.
type Sender interface {
	isSender()
}

// PKSender locks minted value to the hash of the sender's public key.
type PKSender struct {
	PubKey contracts.PubKey
}

// ContractSender locks minted value to the calling contract.
type ContractSender struct {
	ID txskel.ContractID
}

// AnonymousSender locks nothing; minted value stays available in the
// skeleton.
type AnonymousSender struct{}

func (PKSender) isSender()        {}
func (ContractSender) isSender()  {}
func (AnonymousSender) isSender() {}

// ContractContext carries the chain position an evaluation runs at.
type ContractContext struct {
	BlockNumber uint32
	Timestamp   uint64
}

// Wallet is the caller's set of spendable outputs. Buy never reads it.
type Wallet []txskel.PointedOutput

// StateDirective tells the host what to do with the contract's persisted
// state after evaluation.
type StateDirective uint8

const (
	NoChange StateDirective = iota
	UpdateState
	DeleteState
)

// Message is an optional outgoing contract-to-contract message.
type Message struct {
	To      txskel.ContractID
	Command string
	Body    msgdata.Data
}

// Result is a successful evaluation: the mutated skeleton, an optional
// outgoing message and a state directive.
type Result struct {
	Tx      txskel.Skeleton
	Message *Message
	State   StateDirective
}

// CollateralAsset is the designated asset deposited to back minted outcome
// tokens 1:1.
var CollateralAsset = txskel.DefaultAsset
