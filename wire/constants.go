package wire

const (
	// MaxSupply is the maximum coin amount a single output, and the sum of
	// all outputs of a transaction, may carry.
	MaxSupply int64 = 21_000_000

	// MaxBlockSize is the maximum serialized size of a block in bytes.
	MaxBlockSize = 4_000_000

	// MaxOutputIndex is the maximum value of an output index. The coinbase
	// input uses it as its marker index.
	MaxOutputIndex int64 = 1<<32 - 1

	// BlockReward is the value of the coinbase output, in base denomination.
	BlockReward int64 = 50

	// MinTransactionSize is the minimum serialized size in bytes a
	// transaction must have to be admitted into a block.
	MinTransactionSize = 100

	// BlockVersion is the version stamped into assembled block headers.
	BlockVersion int32 = 2
)

const (
	// CoinbaseSentinelTxID is the previous-transaction identifier reserved
	// for coinbase inputs. Pending transactions must never reference it
	// together with CoinbaseSentinelIndex.
	CoinbaseSentinelTxID = "0"

	// CoinbaseSentinelIndex is the reserved output index that marks a
	// coinbase claim in a relayed transaction.
	CoinbaseSentinelIndex int64 = -1
)
