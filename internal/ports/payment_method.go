package ports

import "github.com/shopspring/decimal"

// Payable performs a payment and reports it.
type Payable interface {
	Pay(amount decimal.Decimal)
}

// OnlinePayable is implemented by methods that can check a card before
// charging it. It is kept apart from Payable so cash-like methods are not
// forced to provide it.
type OnlinePayable interface {
	ValidateCard(cardNumber string)
}
