// Package basket provides the shopping basket aggregate for the grocery marketplace.
//
// The package includes:
//   - Basket: the aggregate root holding line items from a single supermarket
//   - Line: an immutable basket line item value object
//   - VendorRef: a snapshot of the supermarket the basket is sourced from
//
// Key business rules:
//   - A basket is either empty with no vendor, or non-empty with every line
//     sourced from the basket's vendor (the single-vendor invariant)
//   - Adding a line from a different supermarket is a conflict that requires an
//     explicit destructive replace; it never silently mixes vendors
//   - Setting a quantity to zero or below removes the line
//   - Removing the last line clears the vendor
//   - Any mutation detaches a previously attached delivery quote, since the
//     quote priced a basket that no longer exists
package basket
