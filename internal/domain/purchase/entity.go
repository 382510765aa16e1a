package purchase

// Purchase is a single priced transaction. A negative amount is representable here;
// whether it is acceptable is decided by the discount rules.
type Purchase struct {
	amount   Money
	currency Currency
}

func NewPurchase(amount Money, currency Currency) Purchase {
	return Purchase{
		amount:   amount,
		currency: currency,
	}
}

func (p Purchase) Amount() Money      { return p.amount }
func (p Purchase) Currency() Currency { return p.currency }
