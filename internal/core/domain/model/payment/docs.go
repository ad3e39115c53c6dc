// Package payment provides the rider payment aggregate for the grocery marketplace.
//
// A RiderPayment is created exactly once per verified delivery, as a pending
// commission of 10% of the order total, and is later approved for payout.
package payment
