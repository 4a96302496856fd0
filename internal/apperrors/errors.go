package apperrors

import "errors"

// ErrNotFound indicates that an operation referenced an unknown id.
var ErrNotFound = errors.New("record not found")

// ErrHasDependentTransactions indicates that an account can not be removed
// while transactions still reference it.
var ErrHasDependentTransactions = errors.New("account has dependent transactions")

// ErrValidation indicates that caller-supplied input failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrUnknownCurrency indicates that a currency code is absent from the rate table.
var ErrUnknownCurrency = errors.New("unknown currency")
