package txskel

import (
	"testing"

	"github.com/decred/dcrd/chaincfg/chainhash"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testInput(index uint32, asset Asset, amount uint64) PointedOutput {
	var txh chainhash.Hash
	txh[0] = byte(index + 1)
	return PointedOutput{
		OutPoint: OutPoint{TxHash: txh, Index: index},
		Output: Output{
			Lock:  ContractLock{},
			Spend: Spend{Asset: asset, Amount: amount},
		},
	}
}

func TestAvailableAmount(t *testing.T) {
	var s Skeleton
	assert.Equal(t, uint64(0), s.AvailableAmount(DefaultAsset))

	s = s.AddInput(testInput(0, DefaultAsset, 40))
	s = s.AddInput(testInput(1, DefaultAsset, 20))
	assert.Equal(t, uint64(60), s.AvailableAmount(DefaultAsset))

	other := Asset{Version: 1}
	s = s.Mint(Spend{Asset: other, Amount: 15})
	assert.Equal(t, uint64(60), s.AvailableAmount(DefaultAsset))
	assert.Equal(t, uint64(15), s.AvailableAmount(other))

	var err error
	s, err = s.LockToContract(ContractID{Version: 1}, Spend{Asset: DefaultAsset, Amount: 50})
	require.NoError(t, err)
	assert.Equal(t, uint64(10), s.AvailableAmount(DefaultAsset))
	assert.Equal(t, uint64(15), s.AvailableAmount(other))
}

func TestLockInsufficientFunds(t *testing.T) {
	var s Skeleton
	s = s.AddInput(testInput(0, DefaultAsset, 10))

	var pkh chainhash.Hash
	out, err := s.LockToPubKeyHash(pkh, Spend{Asset: DefaultAsset, Amount: 11})
	assert.Error(t, err)
	// The failed lock returns the skeleton unchanged.
	assert.Equal(t, s.Outputs(), out.Outputs())
	assert.Equal(t, uint64(10), out.AvailableAmount(DefaultAsset))
}

func TestMutatorsDoNotAliasReceiver(t *testing.T) {
	var base Skeleton
	base = base.AddInput(testInput(0, DefaultAsset, 50))

	minted := base.Mint(Spend{Asset: Asset{Version: 2}, Amount: 5})
	locked, err := base.LockToContract(ContractID{}, Spend{Asset: DefaultAsset, Amount: 50})
	require.NoError(t, err)

	// base is untouched by either derived skeleton.
	assert.Len(t, base.Mints(), 0)
	assert.Len(t, base.Outputs(), 0)
	assert.Len(t, minted.Mints(), 1)
	assert.Len(t, locked.Outputs(), 1)
	assert.Equal(t, uint64(50), base.AvailableAmount(DefaultAsset))
}

func TestContractIDRoundTrip(t *testing.T) {
	var h chainhash.Hash
	h[0], h[31] = 0xab, 0xcd
	id := ContractID{Version: 3, Hash: h}

	got, err := DecodeContractID(id.String())
	require.NoError(t, err)
	assert.Equal(t, id, got)

	_, err = DecodeContractID("nonsense")
	assert.Error(t, err)
	_, err = DecodeContractID("1:abcd")
	assert.Error(t, err)
}
