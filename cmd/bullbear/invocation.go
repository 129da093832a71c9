package main

import (
	"encoding/hex"
	"fmt"
	"os"

	"github.com/decred/dcrd/chaincfg/chainhash"
	"gopkg.in/yaml.v3"

	"github.com/arielzenprotocol/contracts"
	"github.com/arielzenprotocol/contracts/bullbear"
	"github.com/arielzenprotocol/contracts/msgdata"
	"github.com/arielzenprotocol/contracts/txskel"
)

// Invocation is the YAML description of one contract call: the command, the
// contract being called, the sender, the collateral inputs funding the
// skeleton and the message payload.
type Invocation struct {
	Command  string `yaml:"command"`
	Contract string `yaml:"contract"`

	Sender struct {
		Kind     string `yaml:"kind"` // pubkey | contract | anonymous
		PubKey   string `yaml:"pubkey"`
		Contract string `yaml:"contract"`
	} `yaml:"sender"`

	Inputs []struct {
		TxID   string `yaml:"txid"`
		Vout   uint32 `yaml:"vout"`
		Amount uint64 `yaml:"amount"`
	} `yaml:"inputs"`

	Payload map[string]yaml.Node `yaml:"payload"`
}

func loadInvocation(path string) (*Invocation, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read invocation: %w", err)
	}
	var inv Invocation
	if err := yaml.Unmarshal(raw, &inv); err != nil {
		return nil, fmt.Errorf("parse invocation: %w", err)
	}
	if inv.Command == "" {
		return nil, fmt.Errorf("invocation is missing a command")
	}
	return &inv, nil
}

func (inv *Invocation) contractID() (txskel.ContractID, error) {
	return txskel.DecodeContractID(inv.Contract)
}

func (inv *Invocation) sender() (bullbear.Sender, error) {
	switch inv.Sender.Kind {
	case "pubkey":
		pk, err := contracts.PubKeyFromHex(inv.Sender.PubKey)
		if err != nil {
			return nil, fmt.Errorf("sender pubkey: %w", err)
		}
		return bullbear.PKSender{PubKey: pk}, nil
	case "contract":
		id, err := txskel.DecodeContractID(inv.Sender.Contract)
		if err != nil {
			return nil, fmt.Errorf("sender contract: %w", err)
		}
		return bullbear.ContractSender{ID: id}, nil
	case "anonymous", "":
		return bullbear.AnonymousSender{}, nil
	default:
		return nil, fmt.Errorf("unknown sender kind %q", inv.Sender.Kind)
	}
}

// skeleton builds the funding skeleton: every listed input is collateral
// already locked to the called contract.
func (inv *Invocation) skeleton(cid txskel.ContractID) (txskel.Skeleton, error) {
	var s txskel.Skeleton
	for _, in := range inv.Inputs {
		var h chainhash.Hash
		if err := chainhash.Decode(&h, in.TxID); err != nil {
			return s, fmt.Errorf("bad input txid %q: %w", in.TxID, err)
		}
		s = s.AddInput(txskel.PointedOutput{
			OutPoint: txskel.OutPoint{TxHash: h, Index: in.Vout},
			Output: txskel.Output{
				Lock:  txskel.ContractLock{ID: cid},
				Spend: txskel.Spend{Asset: bullbear.CollateralAsset, Amount: in.Amount},
			},
		})
	}
	return s, nil
}

// payload converts the YAML payload map into the variant dictionary the
// parser consumes. Strings become String except for the pubkey and digest
// fields, which are hex-decoded; integers become U64. A missing payload
// section yields a nil body.
func (inv *Invocation) payload() (msgdata.Data, error) {
	if inv.Payload == nil {
		return nil, nil
	}
	d := make(msgdata.Dict, len(inv.Payload))
	for name, node := range inv.Payload {
		v, err := decodeField(name, node)
		if err != nil {
			return nil, err
		}
		d[name] = v
	}
	return d, nil
}

func decodeField(name string, node yaml.Node) (msgdata.Data, error) {
	switch name {
	case "OraclePubKey":
		var s string
		if err := node.Decode(&s); err != nil {
			return nil, fmt.Errorf("field %s: %w", name, err)
		}
		pk, err := contracts.PubKeyFromHex(s)
		if err != nil {
			return nil, fmt.Errorf("field %s: %w", name, err)
		}
		return msgdata.PubKey(pk), nil
	case "Commit":
		var s string
		if err := node.Decode(&s); err != nil {
			return nil, fmt.Errorf("field %s: %w", name, err)
		}
		b, err := hex.DecodeString(s)
		if err != nil || len(b) != chainhash.HashSize {
			return nil, fmt.Errorf("field %s: want %d hex bytes", name, chainhash.HashSize)
		}
		var h chainhash.Hash
		copy(h[:], b)
		return msgdata.Digest(h), nil
	default:
		var u uint64
		if err := node.Decode(&u); err == nil {
			return msgdata.U64(u), nil
		}
		var s string
		if err := node.Decode(&s); err != nil {
			return nil, fmt.Errorf("field %s: unsupported value", name)
		}
		return msgdata.String(s), nil
	}
}
