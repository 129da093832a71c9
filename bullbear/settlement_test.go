package bullbear

import (
	"testing"

	"github.com/decred/dcrd/chaincfg/chainhash"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arielzenprotocol/contracts/cost"
	"github.com/arielzenprotocol/contracts/msgdata"
	"github.com/arielzenprotocol/contracts/txskel"
)

func testContractID() txskel.ContractID {
	var h chainhash.Hash
	h[0], h[1] = 0xbe, 0xef
	return txskel.ContractID{Version: 1, Hash: h}
}

// collateralSkeleton builds a skeleton funding the contract with the given
// collateral input amounts.
func collateralSkeleton(amounts ...uint64) txskel.Skeleton {
	var s txskel.Skeleton
	for i, amt := range amounts {
		var txh chainhash.Hash
		txh[31] = byte(i + 1)
		s = s.AddInput(txskel.PointedOutput{
			OutPoint: txskel.OutPoint{TxHash: txh, Index: uint32(i)},
			Output: txskel.Output{
				Lock:  txskel.ContractLock{ID: testContractID()},
				Spend: txskel.Spend{Asset: CollateralAsset, Amount: amt},
			},
		})
	}
	return s
}

func evaluateBuy(t *testing.T, skel txskel.Skeleton, sender Sender, payload msgdata.Data) (*Result, *cost.Meter, error) {
	t.Helper()
	var m cost.Meter
	res, err := Evaluate(&m, skel, ContractContext{BlockNumber: 100}, testContractID(),
		"Buy", sender, payload, nil, nil)
	return res, &m, err
}

func TestBuySingleCollateralInput(t *testing.T) {
	// Scenario: one 50-unit collateral input, sender is a fixed key.
	buyer := testPubKey(t)
	payload := testPayload(t)
	skel := collateralSkeleton(50)

	res, m, err := evaluateBuy(t, skel, PKSender{PubKey: buyer}, payload)
	require.NoError(t, err)
	assert.Equal(t, uint64(EvaluateCost), m.Used())
	assert.Nil(t, res.Message)
	assert.Equal(t, NoChange, res.State)

	var hm cost.Meter
	ev, err := ParseEvent(&hm, payload)
	require.NoError(t, err)

	cid := testContractID()
	bull := DeriveOutcomeToken(&hm, cid, Bet{Event: ev, Position: Bull})
	bear := DeriveOutcomeToken(&hm, cid, Bet{Event: ev, Position: Bear})

	mints := res.Tx.Mints()
	require.Len(t, mints, 2)
	assert.Equal(t, txskel.Spend{Asset: bull, Amount: 50}, mints[0])
	assert.Equal(t, txskel.Spend{Asset: bear, Amount: 50}, mints[1])

	outs := res.Tx.Outputs()
	require.Len(t, outs, 3)
	assert.Equal(t, txskel.Output{
		Lock:  txskel.ContractLock{ID: cid},
		Spend: txskel.Spend{Asset: CollateralAsset, Amount: 50},
	}, outs[0])

	pkHash := HashPubKey(&hm, buyer)
	assert.Equal(t, txskel.PKLock{PKHash: pkHash}, outs[1].Lock)
	assert.Equal(t, txskel.Spend{Asset: bull, Amount: 50}, outs[1].Spend)
	assert.Equal(t, txskel.PKLock{PKHash: pkHash}, outs[2].Lock)
	assert.Equal(t, txskel.Spend{Asset: bear, Amount: 50}, outs[2].Spend)

	// Everything minted and funded is locked.
	assert.Equal(t, uint64(0), res.Tx.AvailableAmount(CollateralAsset))
	assert.Equal(t, uint64(0), res.Tx.AvailableAmount(bull))
	assert.Equal(t, uint64(0), res.Tx.AvailableAmount(bear))
}

func TestBuyScalesWithCollateral(t *testing.T) {
	// Scenario: five collateral inputs summing to 150.
	buyer := testPubKey(t)
	skel := collateralSkeleton(40, 20, 50, 30, 10)

	res, m, err := evaluateBuy(t, skel, PKSender{PubKey: buyer}, testPayload(t))
	require.NoError(t, err)
	assert.Equal(t, uint64(EvaluateCost), m.Used())

	mints := res.Tx.Mints()
	require.Len(t, mints, 2)
	assert.Equal(t, uint64(150), mints[0].Amount)
	assert.Equal(t, uint64(150), mints[1].Amount)

	outs := res.Tx.Outputs()
	require.Len(t, outs, 3)
	assert.Equal(t, uint64(150), outs[0].Spend.Amount)
	assert.Equal(t, uint64(150), outs[1].Spend.Amount)
	assert.Equal(t, uint64(150), outs[2].Spend.Amount)
}

func TestBuyContractSender(t *testing.T) {
	caller := txskel.ContractID{Version: 2}
	caller.Hash[3] = 0x33

	res, m, err := evaluateBuy(t, collateralSkeleton(25), ContractSender{ID: caller}, testPayload(t))
	require.NoError(t, err)
	assert.Equal(t, uint64(EvaluateCost), m.Used())

	outs := res.Tx.Outputs()
	require.Len(t, outs, 3)
	assert.Equal(t, txskel.ContractLock{ID: caller}, outs[1].Lock)
	assert.Equal(t, txskel.ContractLock{ID: caller}, outs[2].Lock)
	assert.Equal(t, uint64(25), outs[1].Spend.Amount)
}

func TestBuyAnonymousSender(t *testing.T) {
	res, m, err := evaluateBuy(t, collateralSkeleton(25), AnonymousSender{}, testPayload(t))
	require.NoError(t, err)
	// No lock happens, but the charged cost is identical to the other arms.
	assert.Equal(t, uint64(EvaluateCost), m.Used())

	require.Len(t, res.Tx.Outputs(), 1) // collateral lock only
	require.Len(t, res.Tx.Mints(), 2)
	// Minted tokens stay available in the skeleton.
	assert.Equal(t, uint64(25), res.Tx.AvailableAmount(res.Tx.Mints()[0].Asset))
}

func TestBuyZeroCollateral(t *testing.T) {
	res, m, err := evaluateBuy(t, txskel.Skeleton{}, PKSender{PubKey: testPubKey(t)}, testPayload(t))
	require.NoError(t, err)
	assert.Equal(t, uint64(EvaluateCost), m.Used())

	for _, mint := range res.Tx.Mints() {
		assert.Equal(t, uint64(0), mint.Amount)
	}
}

func TestBuyEmptyPayload(t *testing.T) {
	skel := collateralSkeleton(50)

	res, m, err := evaluateBuy(t, skel, PKSender{PubKey: testPubKey(t)}, nil)
	assert.ErrorIs(t, err, ErrEmptyBody)
	assert.Nil(t, res)
	// Failure still charges the full declared total.
	assert.Equal(t, uint64(EvaluateCost), m.Used())
	// The caller's skeleton is untouched.
	assert.Len(t, skel.Outputs(), 0)
	assert.Len(t, skel.Mints(), 0)
	assert.Equal(t, uint64(50), skel.AvailableAmount(CollateralAsset))
}

func TestBuyMissingFieldLeavesSkeletonUnchanged(t *testing.T) {
	skel := collateralSkeleton(50)
	payload := testPayload(t)
	delete(payload, "TimeLow")

	res, m, err := evaluateBuy(t, skel, PKSender{PubKey: testPubKey(t)}, payload)
	require.Error(t, err)
	assert.Equal(t, "could not parse TimeLow", err.Error())
	assert.Nil(t, res)
	assert.Equal(t, uint64(EvaluateCost), m.Used())
	assert.Len(t, skel.Outputs(), 0)
	assert.Len(t, skel.Mints(), 0)
}

func TestEvaluateUnsupportedCommand(t *testing.T) {
	for _, cmd := range []string{"Sell", "", "buy", "Redeem"} {
		var m cost.Meter
		res, err := Evaluate(&m, collateralSkeleton(50), ContractContext{}, testContractID(),
			cmd, PKSender{PubKey: testPubKey(t)}, testPayload(t), nil, nil)
		assert.ErrorIs(t, err, ErrUnsupportedCommand, "command %q", cmd)
		assert.Nil(t, res)
		// Identical declared total as a successful Buy.
		assert.Equal(t, uint64(EvaluateCost), m.Used(), "command %q", cmd)
	}
}

func TestEvaluateCostInvariantAcrossShapes(t *testing.T) {
	buyer := testPubKey(t)

	full := testPayload(t)
	oneSided := testPayload(t)
	delete(oneSided, "PriceHigh")
	delete(oneSided, "TimeHigh")

	senders := []Sender{PKSender{PubKey: buyer}, ContractSender{ID: testContractID()}, AnonymousSender{}}
	payloads := []msgdata.Dict{full, oneSided}

	for _, sender := range senders {
		for _, payload := range payloads {
			_, m, err := evaluateBuy(t, collateralSkeleton(10, 90), sender, payload)
			require.NoError(t, err)
			assert.Equal(t, uint64(EvaluateCost), m.Used())
		}
	}
}

func TestEvaluateCostLiteral(t *testing.T) {
	// The declared totals are exact sums of the step constants. Guard the
	// literals so a costing change cannot slip through silently.
	assert.Equal(t, 523, CompressedKeyHashCost)
	assert.Equal(t, 965, EventHashCost)
	assert.Equal(t, 44, PositionHashCost)
	assert.Equal(t, 1413, BetHashCost)
	assert.Equal(t, 975, AttestationHashCost)
	assert.Equal(t, 1429, OutcomeTokenCost)
	assert.Equal(t, 450, ParseEventCost)
	assert.Equal(t, 226, ParseAttestationCost)
	assert.Equal(t, 651, SenderResolveCost)
	assert.Equal(t, 4219, BuyCost)
	assert.Equal(t, 4227, EvaluateCost)
}

func TestEvaluateOnUsedMeter(t *testing.T) {
	// Evaluation composes with prior charges on the same meter.
	var m cost.Meter
	m.Charge(1000)
	_, err := Evaluate(&m, collateralSkeleton(5), ContractContext{}, testContractID(),
		"Buy", AnonymousSender{}, testPayload(t), nil, nil)
	require.NoError(t, err)
	assert.Equal(t, uint64(1000+EvaluateCost), m.Used())
}
