package order

import (
	"errors"

	"grocery/internal/core/domain/model/kernel"
	"grocery/internal/pkg/errs"
)

// ErrVendorRefIsNotConstructed is returned when a VendorRef was not created via NewVendorRef.
var ErrVendorRefIsNotConstructed = errors.New("VendorRef must be created via NewVendorRef constructor")

// VendorRef is the supermarket snapshot frozen onto the order at placement.
// The rider needs the name and pickup address even if the vendor record
// changes later.
type VendorRef struct { //nolint:recvcheck //using for validation
	id      kernel.UUID
	name    string
	address string

	guard kernel.ConstructorGuard
}

// NewVendorRef creates a vendor snapshot for an order.
func NewVendorRef(id kernel.UUID, name string, address string) (VendorRef, error) {
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
