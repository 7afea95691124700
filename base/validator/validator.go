package validator

import (
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/x-xyz/resolution/base/address"
	"github.com/x-xyz/resolution/domain"
)

// IsValidAddress returns is an address valid or not. Both hex and zilliqa
// bech32 addresses are accepted.
func IsValidAddress(addr string) bool {
	if address.IsBech32(addr) {
		_, err := address.FromBech32(addr)
		return err == nil
	}
	if !common.IsHexAddress(addr) {
		return false
	}
	checksum := common.HexToAddress(addr).Hex()
	return strings.ToLower(checksum) == strings.ToLower(addr)
}

func IsServiceName(s string) bool {
	switch domain.ServiceName(strings.ToUpper(s)) {
	case domain.ServiceZNS, domain.ServiceCNS, domain.ServiceENS, domain.ServiceRNS:
		return true
	}
	return false
}

// New returns a validator with the "address" and "service" tags registered.
func New() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("address", func(fl validator.FieldLevel) bool {
		return IsValidAddress(fl.Field().String())
	})
	_ = v.RegisterValidation("service", func(fl validator.FieldLevel) bool {
		return IsServiceName(fl.Field().String())
	})
	return v
}

func NewCustomValidator(v *validator.Validate) echo.Validator {
	return &CustomValidator{v}
}

type CustomValidator struct {
	validator *validator.Validate
}

func (v *CustomValidator) Validate(i interface{}) error {
	if err := v.validator.Struct(i); err != nil {
		return err
	}
	return nil
}
