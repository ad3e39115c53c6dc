// Package kernel contains the shared value objects of the grocery marketplace domain.
//
// The kernel holds primitives that several aggregates depend on:
//   - UUID: validated identifier wrapping github.com/google/uuid
//   - Money: integer-cent monetary amounts with exact arithmetic
//   - OrderNumber: the customer-facing six-digit order identifier
//   - DeliveryQuote: an immutable delivery cost/time estimate
//   - ConstructorGuard: zero-value detection for kernel value objects
//
// All kernel types are immutable value objects. Their zero values are invalid and
// fail Validate; instances must be created through the provided constructors.
package kernel
