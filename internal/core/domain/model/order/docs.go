// Package order provides the order aggregate for the grocery marketplace.
//
// The package includes:
//   - Order: the aggregate root, identified by its order number
//   - Status: the lifecycle state machine from Processing to Delivered
//   - Line: an immutable snapshot of a purchased item
//   - VendorRef: the supermarket snapshot frozen onto the order
//
// Key business rules:
//   - An order freezes basket contents, delivery quote and totals at placement;
//     nothing about the purchase changes afterwards
//   - The lifecycle advances exactly one stage at a time along a single path:
//     processing, preparing, ready_for_pickup, picked_up, in_transit, delivered
//   - Delivered is terminal; further advances are no-ops
//   - Delivery verification is idempotent: the first rider confirmation wins
//     and repeat confirmations change nothing
package order
