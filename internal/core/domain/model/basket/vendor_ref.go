package basket

import (
	"errors"

	"grocery/internal/core/domain/model/kernel"
	"grocery/internal/pkg/errs"
)

// ErrVendorRefIsNotConstructed is returned when a VendorRef was not created via NewVendorRef.
var ErrVendorRefIsNotConstructed = errors.New("VendorRef must be created via NewVendorRef constructor")

// VendorRef is a snapshot of the supermarket a basket is sourced from.
// It carries just enough to render the basket header and the checkout summary;
// the authoritative vendor record lives in the vendor directory.
type VendorRef struct { //nolint:recvcheck //using for validation
	id      kernel.UUID
	name    string
	address string
	image   string

	guard kernel.ConstructorGuard
}

// NewVendorRef creates a vendor snapshot. The image URL may be empty.
func NewVendorRef(id kernel.UUID, name string, address string, image string) (VendorRef, error) {
	ref := VendorRef{
		guard: kernel.NewConstructorGuard(),
	}

	if err := errors.Join(
		ref.setID(id),
		ref.setName(name),
		ref.setAddress(address),
	); err != nil {
		return VendorRef{}, err
	}

	ref.image = image
	return ref, nil
}

// Validate ensures the reference was created through NewVendorRef.
func (v VendorRef) Validate() error {
	return v.guard.Validate(ErrVendorRefIsNotConstructed)
}

// ID returns the vendor identifier.
func (v VendorRef) ID() kernel.UUID {
	return v.id
}

// Name returns the supermarket name.
func (v VendorRef) Name() string {
	return v.name
}

// Address returns the supermarket pickup address.
func (v VendorRef) Address() string {
	return v.address
}

// Image returns the supermarket image URL.
func (v VendorRef) Image() string {
	return v.image
}

// IsEqual compares vendor references by identifier.
func (v VendorRef) IsEqual(other VendorRef) bool {
	return v.id.IsEqual(other.id)
}

func (v *VendorRef) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	v.id = id
	return nil
}

func (v *VendorRef) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	v.name = name
	return nil
}

func (v *VendorRef) setAddress(address string) error {
	if address == "" {
		return errs.NewValueIsRequiredError("address")
	}
	v.address = address
	return nil
}
