package bullbear

import (
	"encoding/binary"
	"hash"

	"github.com/decred/dcrd/chaincfg/chainhash"
	"github.com/decred/dcrd/crypto/blake256"

	"github.com/arielzenprotocol/contracts"
	"github.com/arielzenprotocol/contracts/cost"
	"github.com/arielzenprotocol/contracts/txskel"
)

// Canonical hashing engine. Every digest is produced by feeding byte-level
// field encodings, in a fixed order, into a running blake256 accumulator and
// finalizing. Integers are 8-byte big-endian. Reimplementations must match
// these encodings exactly or derived asset identities diverge between
// evaluators.

func finalize(m *cost.Meter, h hash.Hash) chainhash.Hash {
	m.Charge(costFinalize)
	var d chainhash.Hash
	copy(d[:], h.Sum(nil))
	return d
}

func updateHash(m *cost.Meter, h hash.Hash, d chainhash.Hash) {
	m.Charge(costUpdateHash)
	h.Write(d[:])
}

func updateU64(m *cost.Meter, h hash.Hash, v uint64) {
	m.Charge(costUpdateU64)
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], v)
	h.Write(b[:])
}

// updateOptU64 feeds v when present and nothing when absent; the charged
// cost is identical either way.
func updateOptU64(m *cost.Meter, h hash.Hash, v *uint64) {
	m.Charge(costOption)
	if v != nil {
		updateU64(m, h, *v)
		return
	}
	m.Charge(costUpdateU64)
}

// updateTicker feeds the raw ticker bytes. Shorter tickers are charged
// padding up to the TickerMaxLen budget so the cost is length-independent.
func updateTicker(m *cost.Meter, h hash.Hash, t Ticker) {
	s := t.String()
	m.Charge(uint64(len(s)) * costUpdateByte)
	m.Charge(uint64(TickerMaxLen-len(s)) * costTickerPad)
	h.Write([]byte(s))
}

// HashPubKey compresses pk and hashes parity byte then coordinate. Charges
// CompressedKeyHashCost.
func HashPubKey(m *cost.Meter, pk contracts.PubKey) chainhash.Hash {
	m.Charge(costCompress)
	c := contracts.Compress(pk)
	h := blake256.New()
	m.Charge(costUpdateByte)
	h.Write([]byte{c.Parity})
	updateHash(m, h, chainhash.Hash(c.Coord))
	return finalize(m, h)
}

// HashEvent digests an event: compressed oracle key hash, ticker, price
// bounds, time bounds. Charges EventHashCost regardless of ticker length or
// optional-bound presence.
func HashEvent(m *cost.Meter, ev Event) chainhash.Hash {
	oracle := HashPubKey(m, ev.OraclePubKey)
	h := blake256.New()
	updateHash(m, h, oracle)
	updateTicker(m, h, ev.Ticker)
	updateU64(m, h, ev.PriceLow)
	updateOptU64(m, h, ev.PriceHigh)
	updateU64(m, h, ev.TimeLow)
	updateOptU64(m, h, ev.TimeHigh)
	return finalize(m, h)
}

// HashPosition digests the canonical name string of p. Charges
// PositionHashCost.
func HashPosition(m *cost.Meter, p Position) chainhash.Hash {
	h := blake256.New()
	m.Charge(uint64(len(p)) * costUpdateByte)
	h.Write([]byte(p))
	return finalize(m, h)
}

// HashBet digests the event digest followed by the position digest. Charges
// BetHashCost.
func HashBet(m *cost.Meter, b Bet) chainhash.Hash {
	ev := HashEvent(m, b.Event)
	pos := HashPosition(m, b.Position)
	h := blake256.New()
	updateHash(m, h, ev)
	updateHash(m, h, pos)
	return finalize(m, h)
}

// HashAttestation digests commit, timestamp, then the compressed oracle key
// hash. Charges AttestationHashCost.
func HashAttestation(m *cost.Meter, at Attestation) chainhash.Hash {
	h := blake256.New()
	updateHash(m, h, at.Commit)
	updateU64(m, h, at.Timestamp)
	oracle := HashPubKey(m, at.OraclePubKey)
	updateHash(m, h, oracle)
	return finalize(m, h)
}

// DeriveOutcomeToken returns the asset identity of bet under cid: the
// contract version and hash plus the bet digest. Identical bets yield the
// identical asset on every evaluator. Charges OutcomeTokenCost.
func DeriveOutcomeToken(m *cost.Meter, cid txskel.ContractID, bet Bet) txskel.Asset {
	d := HashBet(m, bet)
	m.Charge(costAssetBuild)
	return txskel.Asset{Version: cid.Version, ContractHash: cid.Hash, SubID: d}
}
