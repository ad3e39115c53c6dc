package rider

import (
	"errors"

	"grocery/internal/core/domain/model/kernel"
	"grocery/internal/pkg/errs"
)

// ErrBankDetailsAreNotConstructed is returned when BankDetails were not created
// via NewBankDetails.
var ErrBankDetailsAreNotConstructed = errors.New(
	"BankDetails must be created via NewBankDetails constructor")

// BankDetails is the payout destination for a rider's commissions.
type BankDetails struct { //nolint:recvcheck //using for validation
	accountName   string
	accountNumber string
	bankName      string

	guard kernel.ConstructorGuard
}

// NewBankDetails creates payout bank details. All fields are required.
func NewBankDetails(accountName, accountNumber, bankName string) (BankDetails, error) {
	details := BankDetails{
		guard: kernel.NewConstructorGuard(),
	}

	if err := errors.Join(
		details.setAccountName(accountName),
		details.setAccountNumber(accountNumber),
		details.setBankName(bankName),
	); err != nil {
		return BankDetails{}, err
	}

	return details, nil
}

// Validate ensures the details were created through NewBankDetails.
func (d BankDetails) Validate() error {
	return d.guard.Validate(ErrBankDetailsAreNotConstructed)
}

// AccountName returns the payout account holder name.
func (d BankDetails) AccountName() string {
	return d.accountName
}

// AccountNumber returns the payout account number.
func (d BankDetails) AccountNumber() string {
	return d.accountNumber
}

// BankName returns the payout bank name.
func (d BankDetails) BankName() string {
	return d.bankName
}

func (d *BankDetails) setAccountName(accountName string) error {
	if accountName == "" {
		return errs.NewValueIsRequiredError("accountName")
	}
	d.accountName = accountName
	return nil
}

func (d *BankDetails) setAccountNumber(accountNumber string) error {
	if accountNumber == "" {
		return errs.NewValueIsRequiredError("accountNumber")
	}
	d.accountNumber = accountNumber
	return nil
}

func (d *BankDetails) setBankName(bankName string) error {
	if bankName == "" {
		return errs.NewValueIsRequiredError("bankName")
	}
	d.bankName = bankName
	return nil
}
