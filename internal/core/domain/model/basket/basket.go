package basket

import (
	"errors"

	"grocery/internal/core/domain/model/kernel"
	"grocery/internal/pkg/errs"
	"grocery/internal/pkg/guard"
)

var (
	// ErrBasketIsNotConstructed is returned when a Basket was not created through
	// NewBasket or RestoreBasket.
	ErrBasketIsNotConstructed = errors.New("Basket must be created via NewBasket constructor")

	// ErrVendorConflict is returned by AddLine when the basket already holds items
	// from a different supermarket. The caller must obtain explicit confirmation
	// from the customer and retry via ReplaceWithLine, which discards the basket.
	ErrVendorConflict = errors.New("basket already contains items from another supermarket")

	// ErrBasketIsEmpty is returned by operations that require at least one line,
	// such as attaching a delivery quote.
	ErrBasketIsEmpty = errors.New("basket is empty")

	// ErrVendorMismatch indicates a restored basket violated the single-vendor
	// invariant: a line's vendor did not match the basket vendor.
	ErrVendorMismatch = errors.New("basket line vendor does not match basket vendor")
)

// Basket is the aggregate root for a customer's shopping session. It holds line
// items from exactly one supermarket and, during checkout, the delivery quote
// priced against its current contents.
//
// Invariant, maintained by every operation: the basket is either empty with no
// vendor, or non-empty with every line's vendor equal to the basket's vendor.
type Basket struct {
	// id identifies the shopping session
	id kernel.UUID

	// lines are the items in the basket, in insertion order
	lines []Line

	// vendor is the supermarket all lines are sourced from, nil when empty
	vendor *VendorRef

	// quote is the delivery estimate attached during checkout, nil until then.
	// Detached on any mutation so a stale price can never reach payment.
	quote *kernel.DeliveryQuote

	// guard ensures the basket was properly constructed
	guard guard.ConstructorGuard
}

// NewBasket creates an empty basket for the given session identifier.
func NewBasket(id kernel.UUID) (*Basket, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	return &Basket{
		id:    id,
		lines: make([]Line, 0),
		guard: guard.NewConstructorGuard(),
	}, nil
}

// RestoreBasket reconstructs a basket from persistence, re-checking the
// single-vendor invariant so corrupt rows cannot produce an inconsistent aggregate.
func RestoreBasket(id kernel.UUID, lines []Line, vendor *VendorRef, quote *kernel.DeliveryQuote) (*Basket, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	if len(lines) == 0 && vendor != nil {
		return nil, ErrVendorMismatch
	}

	if len(lines) > 0 {
		if vendor == nil {
			return nil, ErrVendorMismatch
		}
		for _, line := range lines {
			if err := line.Validate(); err != nil {
				return nil, err
			}
			if !line.VendorID().IsEqual(vendor.ID()) {
				return nil, ErrVendorMismatch
			}
		}
	}

	if quote != nil {
		if err := quote.Validate(); err != nil {
			return nil, err
		}
	}

	return &Basket{
		id:     id,
		lines:  append(make([]Line, 0, len(lines)), lines...),
		vendor: vendor,
		quote:  quote,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the basket was created through a constructor.
func (b *Basket) Validate() error {
	if b == nil {
		return ErrBasketIsNotConstructed
	}
	return b.guard.Validate(ErrBasketIsNotConstructed)
}

// ID returns the basket's session identifier.
func (b *Basket) ID() kernel.UUID {
	return b.id
}

// Lines returns a copy of the basket lines in insertion order.
func (b *Basket) Lines() []Line {
	return append(make([]Line, 0, len(b.lines)), b.lines...)
}

// Vendor returns the supermarket the basket is sourced from, nil when empty.
func (b *Basket) Vendor() *VendorRef {
	return b.vendor
}

// Quote returns the attached delivery quote, nil when none has been calculated
// for the current contents.
func (b *Basket) Quote() *kernel.DeliveryQuote {
	return b.quote
}

// IsEmpty reports whether the basket has no lines.
func (b *Basket) IsEmpty() bool {
	return len(b.lines) == 0
}

// Subtotal returns the sum of all line totals.
func (b *Basket) Subtotal() kernel.Money {
	var subtotal kernel.Money
	for _, line := range b.lines {
		subtotal = subtotal.Add(line.Total())
	}
	return subtotal
}

// AddLine adds a line to the basket.
//
// Business rules:
//   - A line from a different supermarket than the current contents is rejected
//     with ErrVendorConflict; the add is a no-op until the customer confirms the
//     destructive replace (see ReplaceWithLine)
//   - A line for a product already in the basket merges by adding quantities
//   - The first line sets the basket's vendor
func (b *Basket) AddLine(line Line, vendor VendorRef) error {
	if err := errors.Join(b.Validate(), line.Validate(), vendor.Validate()); err != nil {
		return err
	}

	if !line.VendorID().IsEqual(vendor.ID()) {
		return ErrVendorMismatch
	}

	if b.vendor != nil && !b.vendor.ID().IsEqual(line.VendorID()) {
		return ErrVendorConflict
	}

	for i, existing := range b.lines {
		if existing.ProductID().IsEqual(line.ProductID()) {
			merged, err := existing.WithQuantity(existing.Quantity() + line.Quantity())
			if err != nil {
				return err
			}
			b.lines[i] = merged
			b.detachQuote()
			return nil
		}
	}

	b.lines = append(b.lines, line)
	if b.vendor == nil {
		b.vendor = &vendor
	}
	b.detachQuote()
	return nil
}

// ReplaceWithLine discards the current contents and starts a fresh basket with
// the given line. This is the confirmed resolution of ErrVendorConflict.
func (b *Basket) ReplaceWithLine(line Line, vendor VendorRef) error {
	if err := errors.Join(b.Validate(), line.Validate(), vendor.Validate()); err != nil {
		return err
	}

	if !line.VendorID().IsEqual(vendor.ID()) {
		return ErrVendorMismatch
	}

	b.lines = []Line{line}
	b.vendor = &vendor
	b.detachQuote()
	return nil
}

// UpdateQuantity sets the quantity of the line for the given product.
// A quantity of zero or below removes the line, exactly as RemoveLine would.
func (b *Basket) UpdateQuantity(productID kernel.UUID, quantity int) error {
	if err := errors.Join(b.Validate(), productID.Validate()); err != nil {
		return err
	}

	if quantity <= 0 {
		return b.RemoveLine(productID)
	}

	for i, existing := range b.lines {
		if existing.ProductID().IsEqual(productID) {
			updated, err := existing.WithQuantity(quantity)
			if err != nil {
				return err
			}
			b.lines[i] = updated
			b.detachQuote()
			return nil
		}
	}

	return errs.NewObjectNotFoundError("productId", productID.String())
}

// RemoveLine removes the line for the given product.
// Removing the last line clears the basket's vendor.
func (b *Basket) RemoveLine(productID kernel.UUID) error {
	if err := errors.Join(b.Validate(), productID.Validate()); err != nil {
		return err
	}

	for i, existing := range b.lines {
		if existing.ProductID().IsEqual(productID) {
			b.lines = append(b.lines[:i], b.lines[i+1:]...)
			if len(b.lines) == 0 {
				b.vendor = nil
			}
			b.detachQuote()
			return nil
		}
	}

	return errs.NewObjectNotFoundError("productId", productID.String())
}

// Clear empties the basket and clears the vendor and any attached quote.
func (b *Basket) Clear() error {
	if err := b.Validate(); err != nil {
		return err
	}

	b.lines = b.lines[:0]
	b.vendor = nil
	b.detachQuote()
	return nil
}

// AttachQuote binds a delivery quote to the basket's current contents.
// Re-estimating during the same checkout replaces the previous quote.
func (b *Basket) AttachQuote(quote kernel.DeliveryQuote) error {
	if err := errors.Join(b.Validate(), quote.Validate()); err != nil {
		return err
	}

	if b.IsEmpty() {
		return ErrBasketIsEmpty
	}

	b.quote = &quote
	return nil
}

func (b *Basket) detachQuote() {
	b.quote = nil
}
