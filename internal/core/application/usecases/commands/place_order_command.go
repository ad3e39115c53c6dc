package commands

import (
	"errors"
	"regexp"
	"strings"

	"grocery/internal/core/domain/model/kernel"
	"grocery/internal/pkg/guard"
)

var (
	ErrPlaceOrderCommandIsNotConstructed = errors.New(
		"PlaceOrderCommand must be created via NewPlaceOrderCommand constructor",
	)
	ErrCardHolderIsRequired = errors.New("card holder name is required")
	ErrCardNumberIsInvalid  = errors.New("card number must be 16 digits")
	ErrCardExpiryIsInvalid  = errors.New("card expiry must be in MM/YY format")
	ErrCardCVVIsInvalid     = errors.New("card CVV must be 3 or 4 digits")
)

var (
	cardNumberPattern = regexp.MustCompile(`^\d{16}$`)
	cardExpiryPattern = regexp.MustCompile(`^(0[1-9]|1[0-2])/\d{2}$`)
	cardCVVPattern    = regexp.MustCompile(`^\d{3,4}$`)
)

// PlaceOrderCommand represents the payment step of checkout. Card details are
// validated field by field but never persisted; the prototype has no real
// payment provider behind it.
type PlaceOrderCommand struct { //nolint:recvcheck //using for validation
	basketID   kernel.UUID
	cardHolder string
	cardNumber string
	cardExpiry string
	cardCVV    string

	guard guard.ConstructorGuard
}

// NewPlaceOrderCommand creates a command to convert a basket into an order.
//
// Card validation rules:
//   - holder name must be non-blank
//   - number must be exactly 16 digits, spaces allowed for readability
//   - expiry must be MM/YY with a month from 01 to 12
//   - CVV must be 3 or 4 digits
func NewPlaceOrderCommand(
	basketID kernel.UUID,
	cardHolder string,
	cardNumber string,
	cardExpiry string,
	cardCVV string,
) (PlaceOrderCommand, error) {
	command := PlaceOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setBasketID(basketID),
		command.setCardHolder(cardHolder),
		command.setCardNumber(cardNumber),
		command.setCardExpiry(cardExpiry),
		command.setCardCVV(cardCVV),
	); err != nil {
		return PlaceOrderCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c PlaceOrderCommand) Validate() error {
	return c.guard.Validate(ErrPlaceOrderCommandIsNotConstructed)
}

// BasketID returns the shopping session identifier.
func (c PlaceOrderCommand) BasketID() kernel.UUID {
	return c.basketID
}

// CardHolder returns the validated card holder name.
func (c PlaceOrderCommand) CardHolder() string {
	return c.cardHolder
}

func (c *PlaceOrderCommand) setBasketID(basketID kernel.UUID) error {
	if err := basketID.Validate(); err != nil {
		return err
	}

	c.basketID = basketID
	return nil
}

func (c *PlaceOrderCommand) setCardHolder(cardHolder string) error {
	if strings.TrimSpace(cardHolder) == "" {
		return ErrCardHolderIsRequired
	}

	c.cardHolder = cardHolder
	return nil
}

func (c *PlaceOrderCommand) setCardNumber(cardNumber string) error {
	digits := strings.ReplaceAll(cardNumber, " ", "")
	if !cardNumberPattern.MatchString(digits) {
		return ErrCardNumberIsInvalid
	}

	c.cardNumber = digits
	return nil
}

func (c *PlaceOrderCommand) setCardExpiry(cardExpiry string) error {
	if !cardExpiryPattern.MatchString(cardExpiry) {
		return ErrCardExpiryIsInvalid
	}

	c.cardExpiry = cardExpiry
	return nil
}

func (c *PlaceOrderCommand) setCardCVV(cardCVV string) error {
	if !cardCVVPattern.MatchString(cardCVV) {
		return ErrCardCVVIsInvalid
	}

	c.cardCVV = cardCVV
	return nil
}
