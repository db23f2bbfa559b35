// Package domain contains the value types shared by every layer of solid.
//
// It has no dependencies on output, logging or configuration and holds only
// pure business rules.
//
// # Values
//
//   - [Receipt]: the outcome of one executed payment
//   - [DiscountKind], [MethodKind], [ChannelKind]: configurable variant names
//   - amounts: shopspring decimals, see [FormatAmount] and [ParseAmount]
package domain
