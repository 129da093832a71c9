package bullbear

import (
	"github.com/arielzenprotocol/contracts/cost"
	"github.com/arielzenprotocol/contracts/msgdata"
	"github.com/arielzenprotocol/contracts/txskel"
)

// Evaluate is the single entry point of the contract. It routes command to
// the settlement engine and charges exactly EvaluateCost into m on every
// path: success, parse failure, and unknown command all cost the same.
//
// cctx, wallet and state are part of the invocation surface but Buy reads
// none of them; persisted state is never modified (NoChange directive).
func Evaluate(m *cost.Meter, skel txskel.Skeleton, cctx ContractContext,
	cid txskel.ContractID, command string, sender Sender,
	payload msgdata.Data, wallet Wallet, state msgdata.Data) (res *Result, err error) {

	total := m.Used() + EvaluateCost
	defer func() {
		if perr := m.PadTo(total); perr != nil && err == nil {
			res, err = nil, perr
		}
	}()

	m.Charge(costDispatch)
	switch command {
	case "Buy":
		return buy(m, skel, cid, sender, payload)
	default:
		return nil, ErrUnsupportedCommand
	}
}
