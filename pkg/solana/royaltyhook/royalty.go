package royaltyhook

// RoyaltyPercentage is the share of every transfer routed to the royalty
// recipient, compiled into the program.
const RoyaltyPercentage = 5

// Split divides a transfer amount into the royalty leg and the remainder
// leg. The royalty is floor(amount * RoyaltyPercentage / 100), so amounts
// under 20 carry no royalty. The legs always sum to the original amount.
//
// todo: the multiply is unguarded, so amounts above math.MaxUint64/RoyaltyPercentage
// wrap and undercount the royalty. Guard it before any mint with supply in
// that range uses this hook.
func Split(amount uint64) (royalty, remainder uint64) {
	royalty = amount * RoyaltyPercentage / 100
	return royalty, amount - royalty
}
