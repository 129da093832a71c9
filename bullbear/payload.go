package bullbear

import (
	"github.com/decred/dcrd/chaincfg/chainhash"

	"github.com/arielzenprotocol/contracts"
	"github.com/arielzenprotocol/contracts/cost"
	"github.com/arielzenprotocol/contracts/msgdata"
)

// Structured payload parser. Field lookups charge a fixed overhead plus the
// decoder's cost whether or not the key resolves, so a failed parse costs the
// same as a successful one up to the point of failure; the dispatcher pads
// the rest.

// ParseDict checks the invocation payload is a present dictionary. Charges
// ParseDictCost.
func ParseDict(m *cost.Meter, payload msgdata.Data) (msgdata.Dict, error) {
	m.Charge(costDictCheck)
	if payload == nil {
		return nil, ErrEmptyBody
	}
	d, ok := payload.(msgdata.Dict)
	if !ok {
		return nil, ErrNotDict
	}
	return d, nil
}

func parseU64(m *cost.Meter, d msgdata.Dict, name string) (uint64, error) {
	m.Charge(costLookup + costDecodeU64)
	v, ok := d[name].(msgdata.U64)
	if !ok {
		return 0, fieldErr(name)
	}
	return uint64(v), nil
}

// parseOptU64 treats a missing key as an absent value, not an error. A key
// that is present with the wrong variant still fails.
func parseOptU64(m *cost.Meter, d msgdata.Dict, name string) (*uint64, error) {
	m.Charge(costLookup + costDecodeU64)
	raw, ok := d[name]
	if !ok {
		return nil, nil
	}
	v, ok := raw.(msgdata.U64)
	if !ok {
		return nil, fieldErr(name)
	}
	u := uint64(v)
	return &u, nil
}

func parseString(m *cost.Meter, d msgdata.Dict, name string) (string, error) {
	m.Charge(costLookup + costDecodeString)
	v, ok := d[name].(msgdata.String)
	if !ok {
		return "", fieldErr(name)
	}
	return string(v), nil
}

func parsePubKey(m *cost.Meter, d msgdata.Dict, name string) (contracts.PubKey, error) {
	m.Charge(costLookup + costDecodePubKey)
	v, ok := d[name].(msgdata.PubKey)
	if !ok {
		return contracts.PubKey{}, fieldErr(name)
	}
	return contracts.PubKey(v), nil
}

func parseHash(m *cost.Meter, d msgdata.Dict, name string) (chainhash.Hash, error) {
	m.Charge(costLookup + costDecodeHash)
	v, ok := d[name].(msgdata.Digest)
	if !ok {
		return chainhash.Hash{}, fieldErr(name)
	}
	return chainhash.Hash(v), nil
}

// parseTicker decodes a string field and validates it through MakeTicker.
func parseTicker(m *cost.Meter, d msgdata.Dict, name string) (Ticker, error) {
	s, err := parseString(m, d, name)
	if err != nil {
		return Ticker{}, err
	}
	m.Charge(costTickerCheck)
	return MakeTicker(s)
}

// ParseEvent resolves the six event fields in order, short-circuiting on the
// first failure with that field's error. Charges ParseEventCost on success.
func ParseEvent(m *cost.Meter, d msgdata.Dict) (Event, error) {
	oracle, err := parsePubKey(m, d, "OraclePubKey")
	if err != nil {
		return Event{}, err
	}
	ticker, err := parseTicker(m, d, "Ticker")
	if err != nil {
		return Event{}, err
	}
	priceLow, err := parseU64(m, d, "PriceLow")
	if err != nil {
		return Event{}, err
	}
	priceHigh, err := parseOptU64(m, d, "PriceHigh")
	if err != nil {
		return Event{}, err
	}
	timeLow, err := parseU64(m, d, "TimeLow")
	if err != nil {
		return Event{}, err
	}
	timeHigh, err := parseOptU64(m, d, "TimeHigh")
	if err != nil {
		return Event{}, err
	}
	return Event{
		OraclePubKey: oracle,
		Ticker:       ticker,
		PriceLow:     priceLow,
		PriceHigh:    priceHigh,
		TimeLow:      timeLow,
		TimeHigh:     timeHigh,
	}, nil
}

// ParseAttestation resolves an oracle attestation. Charges
// ParseAttestationCost on success. Not exercised by Buy.
func ParseAttestation(m *cost.Meter, d msgdata.Dict) (Attestation, error) {
	ts, err := parseU64(m, d, "Timestamp")
	if err != nil {
		return Attestation{}, err
	}
	commit, err := parseHash(m, d, "Commit")
	if err != nil {
		return Attestation{}, err
	}
	oracle, err := parsePubKey(m, d, "OraclePubKey")
	if err != nil {
		return Attestation{}, err
	}
	return Attestation{Timestamp: ts, Commit: commit, OraclePubKey: oracle}, nil
}
