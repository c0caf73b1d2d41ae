package emulator

const (
	// Default rent parameters on mainnet.
	//
	// Reference: https://github.com/solana-labs/solana/blob/master/sdk/program/src/rent.rs
	lamportsPerByteYear    = 3480
	exemptionThreshold     = 2
	accountStorageOverhead = 128
)

// MinimumBalance returns the minimum lamport balance for an account of the
// provided data size to be exempt from rent collection.
func MinimumBalance(dataSize int) uint64 {
	return uint64(dataSize+accountStorageOverhead) * lamportsPerByteYear * exemptionThreshold
}
