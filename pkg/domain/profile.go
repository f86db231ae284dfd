package domain

// Profile is a decoded user identity plus the transaction history of one card.
// The transaction order is the order the server sent, and the sequence cannot
// be changed after NewProfile returns.
type Profile struct {
	// Name is the user's display name.
	Name string
	// CardLastFour is the masked card identifier. Four digits are expected but
	// not enforced; see HasValidCardLastFour.
	CardLastFour string

	transactions []Transaction
}

// NewProfile builds a Profile, copying transactions so later changes to the
// caller's slice are not observed.
func NewProfile(name, cardLastFour string, transactions []Transaction) Profile {
	txs := make([]Transaction, len(transactions))
	copy(txs, transactions)

	return Profile{
		Name:         name,
		CardLastFour: cardLastFour,
		transactions: txs,
	}
}

// Transactions returns a copy of the profile's transactions in server order.
func (p Profile) Transactions() []Transaction {
	out := make([]Transaction, len(p.transactions))
	copy(out, p.transactions)

	return out
}

// Len returns the number of transactions.
func (p Profile) Len() int { return len(p.transactions) }

// HasValidCardLastFour reports whether CardLastFour is exactly four ASCII digits.
func (p Profile) HasValidCardLastFour() bool {
	if len(p.CardLastFour) != 4 {
		return false
	}
	for i := 0; i < len(p.CardLastFour); i++ {
		if p.CardLastFour[i] < '0' || p.CardLastFour[i] > '9' {
			return false
		}
	}

	return true
}
