// Package services provides domain services for the grocery marketplace.
//
// Domain services hold business logic that spans aggregates:
//   - QuoteCalculator prices a delivery during checkout
//   - RiderSelector picks the rider to credit for a verified delivery
package services
