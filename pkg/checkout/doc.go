// Package checkout is the embeddable entry point to the solid payment
// example.
//
// It is the composition root: it turns a [Config] into concrete
// collaborators (discount policy, payment method, notifier, payment logger)
// and hands them to the payment service, which only knows their interfaces.
//
// # Basic Usage
//
//	cfg := checkout.DefaultConfig()
//	cfg.Discount = checkout.DiscountPercentage
//
//	co, err := checkout.New(cfg)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	receipt, err := co.Pay(decimal.NewFromInt(100))
//	// Paid $90.00 using Credit Card
//	// Sending Email: Payment of $90.00 successful
//	// Log: Payment executed: $90.00
//
// # Custom Collaborators
//
// Any collaborator can be replaced with an implementation of the matching
// interface:
//
//	co, err := checkout.New(cfg,
//	    checkout.WithNotifier(mySlackNotifier),
//	    checkout.WithPaymentLogger(myAuditTrail),
//	)
//
// Discount policies can also be passed per call with [Checkout.PayWith].
//
// # Capabilities
//
// Card validation is only available on methods implementing
// [OnlinePayable]. [Checkout.ValidateCard] returns
// [ErrUnsupportedOperation] for the others, e.g. cash.
package checkout
