package domain

import (
	"errors"
	"fmt"
)

type ResolutionErrorCode string

const (
	UnsupportedDomain          ResolutionErrorCode = "UnsupportedDomain"
	UnregisteredDomain         ResolutionErrorCode = "UnregisteredDomain"
	UnspecifiedResolver        ResolutionErrorCode = "UnspecifiedResolver"
	RecordNotFound             ResolutionErrorCode = "RecordNotFound"
	UnsupportedMethod          ResolutionErrorCode = "UnsupportedMethod"
	UnsupportedService         ResolutionErrorCode = "UnsupportedService"
	UnsupportedCurrency        ResolutionErrorCode = "UnsupportedCurrency"
	InvalidTwitterVerification ResolutionErrorCode = "InvalidTwitterVerification"
)

// ResolutionError is returned for every lookup failure that is not a
// transport failure. Two ResolutionErrors match with errors.Is when their
// codes are equal, so the sentinels below can be used for dispatch.
type ResolutionError struct {
	Code     ResolutionErrorCode
	Domain   string
	Method   string
	Record   string
	Service  string
	Currency string
}

func (e *ResolutionError) Error() string {
	switch e.Code {
	case UnsupportedDomain:
		return fmt.Sprintf("domain %s is not supported", e.Domain)
	case UnregisteredDomain:
		return fmt.Sprintf("domain %s is not registered", e.Domain)
	case UnspecifiedResolver:
		return fmt.Sprintf("domain %s is not configured", e.Domain)
	case RecordNotFound:
		return fmt.Sprintf("no %s record found for %s", e.Record, e.Domain)
	case UnsupportedMethod:
		if e.Domain == "" {
			return fmt.Sprintf("method %s is not supported", e.Method)
		}
		return fmt.Sprintf("method %s is not supported for %s", e.Method, e.Domain)
	case UnsupportedService:
		return fmt.Sprintf("naming service %s is not supported", e.Service)
	case UnsupportedCurrency:
		return fmt.Sprintf("%s is not supported", e.Currency)
	case InvalidTwitterVerification:
		return fmt.Sprintf("domain %s has invalid twitter signature verification", e.Domain)
	}
	return string(e.Code)
}

func (e *ResolutionError) Is(target error) bool {
	t, ok := target.(*ResolutionError)
	return ok && t.Code == e.Code
}

var (
	ErrUnsupportedDomain          = &ResolutionError{Code: UnsupportedDomain}
	ErrUnregisteredDomain         = &ResolutionError{Code: UnregisteredDomain}
	ErrUnspecifiedResolver        = &ResolutionError{Code: UnspecifiedResolver}
	ErrRecordNotFound             = &ResolutionError{Code: RecordNotFound}
	ErrUnsupportedMethod          = &ResolutionError{Code: UnsupportedMethod}
	ErrUnsupportedService         = &ResolutionError{Code: UnsupportedService}
	ErrUnsupportedCurrency        = &ResolutionError{Code: UnsupportedCurrency}
	ErrInvalidTwitterVerification = &ResolutionError{Code: InvalidTwitterVerification}
)

type ConfigurationErrorCode string

const (
	UnsupportedNetwork     ConfigurationErrorCode = "UnsupportedNetwork"
	UnspecifiedUrl         ConfigurationErrorCode = "UnspecifiedUrl"
	UnspecifiedNetwork     ConfigurationErrorCode = "UnspecifiedNetwork"
	InvalidRegistryAddress ConfigurationErrorCode = "InvalidRegistryAddress"
)

// ConfigurationError is returned by backend constructors.
type ConfigurationError struct {
	Code    ConfigurationErrorCode
	Service ServiceName
	Field   string
}

func (e *ConfigurationError) Error() string {
	switch e.Code {
	case UnsupportedNetwork:
		return fmt.Sprintf("unsupported network %q in %s configuration", e.Field, e.Service)
	case UnspecifiedUrl:
		return fmt.Sprintf("unspecified url in %s configuration", e.Service)
	case UnspecifiedNetwork:
		return fmt.Sprintf("unspecified network in %s configuration", e.Service)
	case InvalidRegistryAddress:
		return fmt.Sprintf("invalid registry address %q in %s configuration", e.Field, e.Service)
	}
	return string(e.Code)
}

func (e *ConfigurationError) Is(target error) bool {
	t, ok := target.(*ConfigurationError)
	return ok && t.Code == e.Code
}

var (
	ErrUnsupportedNetwork     = &ConfigurationError{Code: UnsupportedNetwork}
	ErrUnspecifiedUrl         = &ConfigurationError{Code: UnspecifiedUrl}
	ErrUnspecifiedNetwork     = &ConfigurationError{Code: UnspecifiedNetwork}
	ErrInvalidRegistryAddress = &ConfigurationError{Code: InvalidRegistryAddress}
)

var (
	// ErrBadParamInput will throw if the given request-body or params is not valid
	ErrBadParamInput = errors.New("Given Param is not valid")
	// ErrInvalidDnsRecord is returned when a dns record value can not be parsed
	ErrInvalidDnsRecord = errors.New("invalid dns record")
)
