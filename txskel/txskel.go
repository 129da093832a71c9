// Package txskel implements the transaction skeleton threaded through a
// contract evaluation: the ledger of pointed inputs, minted spends and locked
// outputs a settlement operation mutates. Every mutation returns a new
// skeleton value; the input skeleton is never aliased, so a failed evaluation
// leaves the caller's skeleton untouched.
package txskel

import (
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"

	"github.com/decred/dcrd/chaincfg/chainhash"
)

// Asset identifies a token: the issuing contract's version and hash plus a
// 32-byte sub-identifier distinguishing tokens issued by the same contract.
type Asset struct {
	Version      uint32
	ContractHash chainhash.Hash
	SubID        chainhash.Hash
}

// DefaultAsset is the zero asset: the chain's base token, used as settlement
// collateral.
var DefaultAsset = Asset{}

func (a Asset) String() string {
	return fmt.Sprintf("%d:%s:%s", a.Version,
		hex.EncodeToString(a.ContractHash[:]),
		hex.EncodeToString(a.SubID[:]))
}

// ContractID identifies a deployed contract by version and code hash.
type ContractID struct {
	Version uint32
	Hash    chainhash.Hash
}

func (c ContractID) String() string {
	return fmt.Sprintf("%d:%s", c.Version, hex.EncodeToString(c.Hash[:]))
}

// DecodeContractID parses the "version:hash" form produced by String.
func DecodeContractID(s string) (ContractID, error) {
	parts := strings.SplitN(strings.TrimSpace(s), ":", 2)
	if len(parts) != 2 {
		return ContractID{}, fmt.Errorf("bad contract id %q: want version:hash", s)
	}
	v, err := strconv.ParseUint(parts[0], 10, 32)
	if err != nil {
		return ContractID{}, fmt.Errorf("bad contract version %q: %w", parts[0], err)
	}
	hb, err := hex.DecodeString(parts[1])
	if err != nil || len(hb) != chainhash.HashSize {
		return ContractID{}, fmt.Errorf("bad contract hash %q", parts[1])
	}
	var h chainhash.Hash
	copy(h[:], hb)
	return ContractID{Version: uint32(v), Hash: h}, nil
}

// Spend is an amount of one asset.
type Spend struct {
	Asset  Asset
	Amount uint64
}

// Lock is the destination a spend is locked to.
type Lock interface {
	isLock()
}

// PKLock locks a spend to the hash of a public key.
type PKLock struct {
	PKHash chainhash.Hash
}

// ContractLock locks a spend to a contract.
type ContractLock struct {
	ID ContractID
}

func (PKLock) isLock()       {}
func (ContractLock) isLock() {}

// Output is a spend locked to a destination.
type Output struct {
	Lock  Lock
	Spend Spend
}

// OutPoint points at an output of a prior transaction.
type OutPoint struct {
	TxHash chainhash.Hash
	Index  uint32
}

func (o OutPoint) String() string {
	return fmt.Sprintf("%s:%d", hex.EncodeToString(o.TxHash[:]), o.Index)
}

// PointedOutput is an existing output consumed as a skeleton input.
type PointedOutput struct {
	OutPoint OutPoint
	Output   Output
}

// Skeleton is the in-progress transaction ledger. The zero value is an empty
// skeleton. All mutators are value methods returning a fresh skeleton with
// copied slices.
type Skeleton struct {
	inputs  []PointedOutput
	mints   []Spend
	outputs []Output
}

func (s Skeleton) clone() Skeleton {
	return Skeleton{
		inputs:  append([]PointedOutput(nil), s.inputs...),
		mints:   append([]Spend(nil), s.mints...),
		outputs: append([]Output(nil), s.outputs...),
	}
}

// Inputs returns a copy of the pointed inputs.
func (s Skeleton) Inputs() []PointedOutput {
	return append([]PointedOutput(nil), s.inputs...)
}

// Mints returns a copy of the minted spends.
func (s Skeleton) Mints() []Spend {
	return append([]Spend(nil), s.mints...)
}

// Outputs returns a copy of the locked outputs.
func (s Skeleton) Outputs() []Output {
	return append([]Output(nil), s.outputs...)
}

// AddInput returns a skeleton with po appended to the inputs.
func (s Skeleton) AddInput(po PointedOutput) Skeleton {
	out := s.clone()
	out.inputs = append(out.inputs, po)
	return out
}

// Mint returns a skeleton with sp minted. Minted amounts become available for
// locking exactly like input amounts.
func (s Skeleton) Mint(sp Spend) Skeleton {
	out := s.clone()
	out.mints = append(out.mints, sp)
	return out
}

// AvailableAmount returns the amount of asset carried by inputs and mints and
// not yet locked to any output.
func (s Skeleton) AvailableAmount(asset Asset) uint64 {
	var in, locked uint64
	for _, po := range s.inputs {
		if po.Output.Spend.Asset == asset {
			in += po.Output.Spend.Amount
		}
	}
	for _, m := range s.mints {
		if m.Asset == asset {
			in += m.Amount
		}
	}
	for _, o := range s.outputs {
		if o.Spend.Asset == asset {
			locked += o.Spend.Amount
		}
	}
	return in - locked
}

func (s Skeleton) lock(l Lock, sp Spend) (Skeleton, error) {
	if avail := s.AvailableAmount(sp.Asset); sp.Amount > avail {
		return s, fmt.Errorf("insufficient funds: lock %d of %s, available %d",
			sp.Amount, sp.Asset, avail)
	}
	out := s.clone()
	out.outputs = append(out.outputs, Output{Lock: l, Spend: sp})
	return out, nil
}

// LockToPubKeyHash locks sp to the given public key hash.
func (s Skeleton) LockToPubKeyHash(pkHash chainhash.Hash, sp Spend) (Skeleton, error) {
	return s.lock(PKLock{PKHash: pkHash}, sp)
}

// LockToContract locks sp to the given contract.
func (s Skeleton) LockToContract(id ContractID, sp Spend) (Skeleton, error) {
	return s.lock(ContractLock{ID: id}, sp)
}
