package bullbear

import (
	"fmt"

	"github.com/arielzenprotocol/contracts/cost"
	"github.com/arielzenprotocol/contracts/msgdata"
	"github.com/arielzenprotocol/contracts/txskel"
)

// buy parses the payload into an event, derives the two outcome tokens,
// mints both in proportion to the available collateral and locks everything
// by sender kind. Charges BuyCost on success; on failure the dispatcher pads
// to the same total and the input skeleton is returned untouched by value
// semantics.
func buy(m *cost.Meter, skel txskel.Skeleton, cid txskel.ContractID, sender Sender, payload msgdata.Data) (*Result, error) {
	d, err := ParseDict(m, payload)
	if err != nil {
		return nil, err
	}
	ev, err := ParseEvent(m, d)
	if err != nil {
		return nil, err
	}

	bull := DeriveOutcomeToken(m, cid, Bet{Event: ev, Position: Bull})
	bear := DeriveOutcomeToken(m, cid, Bet{Event: ev, Position: Bear})

	m.Charge(costSkeletonOp)
	amount := skel.AvailableAmount(CollateralAsset)

	m.Charge(costSkeletonOp)
	tx, err := skel.LockToContract(cid, txskel.Spend{Asset: CollateralAsset, Amount: amount})
	if err != nil {
		return nil, err
	}

	m.Charge(costSkeletonOp)
	tx = tx.Mint(txskel.Spend{Asset: bull, Amount: amount})
	m.Charge(costSkeletonOp)
	tx = tx.Mint(txskel.Spend{Asset: bear, Amount: amount})

	tx, err = lockToSender(m, tx, sender, bull, bear, amount)
	if err != nil {
		return nil, err
	}

	return &Result{Tx: tx, Message: nil, State: NoChange}, nil
}

// lockToSender resolves the lock target by sender kind. Every arm charges
// exactly SenderResolveCost: the direct-key arm spends it on the key hash and
// two locks, the contract arm on two locks plus padding, and the anonymous
// arm locks nothing and pays the whole budget.
func lockToSender(m *cost.Meter, tx txskel.Skeleton, sender Sender, bull, bear txskel.Asset, amount uint64) (txskel.Skeleton, error) {
	switch s := sender.(type) {
	case PKSender:
		pkHash := HashPubKey(m, s.PubKey)
		m.Charge(costSkeletonOp)
		tx, err := tx.LockToPubKeyHash(pkHash, txskel.Spend{Asset: bull, Amount: amount})
		if err != nil {
			return tx, err
		}
		m.Charge(costSkeletonOp)
		return tx.LockToPubKeyHash(pkHash, txskel.Spend{Asset: bear, Amount: amount})

	case ContractSender:
		m.Charge(costSkeletonOp)
		tx, err := tx.LockToContract(s.ID, txskel.Spend{Asset: bull, Amount: amount})
		if err != nil {
			return tx, err
		}
		m.Charge(costSkeletonOp)
		tx, err = tx.LockToContract(s.ID, txskel.Spend{Asset: bear, Amount: amount})
		if err != nil {
			return tx, err
		}
		m.Charge(SenderResolveCost - 2*costSkeletonOp)
		return tx, nil

	case AnonymousSender:
		m.Charge(SenderResolveCost)
		return tx, nil

	default:
		m.Charge(SenderResolveCost)
		return tx, fmt.Errorf("unknown sender kind %T", sender)
	}
}
