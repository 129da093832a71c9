package bullbear

// Cost units charged per elementary step. Feeding the hash accumulator costs
// 6 units per byte; every other step has a fixed overhead. Nothing here may
// depend on input shape: optional fields reserve their full budget whether or
// not a value is fed, and short tickers are charged padding up to the 4-byte
// budget.
const (
	costUpdateHash = 6 * 32 // feed one 32-byte digest
	costUpdateByte = 6
	costUpdateU64  = 6 * 8
	costTickerPad  = 6 // per byte of ticker shortfall below TickerMaxLen
	costOption     = 7 // run-or-skip wrap around an optional field
	costFinalize   = 20
	costCompress   = 305
	costAssetBuild = 16

	costDictCheck    = 4
	costLookup       = 64
	costDecodeString = 12
	costDecodeU64    = 8
	costDecodeHash   = 10
	costDecodePubKey = 16
	costTickerCheck  = 6

	costSkeletonOp = 64
	costDispatch   = 8
)

// Declared totals. Each is the exact sum of the step constants its operation
// charges, on every path through that operation; evaluator hosts rely on
// these literals for admission control, so the test suite asserts them
// against metered runs.
const (
	// CompressedKeyHashCost covers Compress plus hashing parity and
	// coordinate.
	CompressedKeyHashCost = costCompress + costUpdateByte + costUpdateHash + costFinalize

	// EventHashCost is independent of ticker length and optional-bound
	// presence.
	EventHashCost = CompressedKeyHashCost + costUpdateHash +
		TickerMaxLen*costUpdateByte +
		costUpdateU64 + (costOption + costUpdateU64) +
		costUpdateU64 + (costOption + costUpdateU64) +
		costFinalize

	// PositionHashCost covers the 4-byte canonical name of either outcome.
	PositionHashCost = 4*costUpdateByte + costFinalize

	BetHashCost = EventHashCost + PositionHashCost + 2*costUpdateHash + costFinalize

	AttestationHashCost = costUpdateHash + costUpdateU64 +
		CompressedKeyHashCost + costUpdateHash + costFinalize

	OutcomeTokenCost = BetHashCost + costAssetBuild

	ParseDictCost = costDictCheck

	ParseEventCost = (costLookup + costDecodePubKey) +
		(costLookup + costDecodeString + costTickerCheck) +
		4*(costLookup+costDecodeU64)

	ParseAttestationCost = (costLookup + costDecodeU64) +
		(costLookup + costDecodeHash) +
		(costLookup + costDecodePubKey)

	// SenderResolveCost is charged identically by every sender arm: the
	// direct-key arm performs a key hash and two locks for exactly this
	// amount, and the other arms pad up to it.
	SenderResolveCost = CompressedKeyHashCost + 2*costSkeletonOp

	BuyCost = ParseDictCost + ParseEventCost + 2*OutcomeTokenCost +
		costSkeletonOp + // read available collateral
		costSkeletonOp + // lock collateral to the contract
		2*costSkeletonOp + // mint bull and bear
		SenderResolveCost

	// EvaluateCost is the fixed total of any invocation, for every command
	// string and on every success and failure path.
	EvaluateCost = costDispatch + BuyCost
)
