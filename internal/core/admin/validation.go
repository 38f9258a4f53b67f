package admin

import (
	"errors"
	"reflect"
	"strings"

	"github.com/SscSPs/currency_admin/internal/core/domain"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// Draft field names, as reported in Violations and accepted by UpdateField.
const (
	FieldCode              = "code"
	FieldName              = "name"
	FieldSymbol            = "symbol"
	FieldExchangeRateToUSD = "exchangeRateToUsd"
	FieldIsBaseCurrency    = "isBaseCurrency"
	FieldIsActive          = "isActive"
)

// MinExchangeRate is the smallest accepted rate to USD, inclusive.
var MinExchangeRate = decimal.New(1, -6)

// Violations maps a draft field to the message shown next to it.
// An empty map means the draft is valid.
type Violations map[string]string

// Valid reports whether there are no violations.
func (v Violations) Valid() bool {
	return len(v) == 0
}

var violationMessages = map[string]map[string]string{
	FieldCode: {
		"required": "Currency code is required",
		"len":      "Must be 3 characters",
	},
	FieldName: {
		"required": "Currency name is required",
	},
	FieldSymbol: {
		"required": "Currency symbol is required",
	},
	FieldExchangeRateToUSD: {
		"required": "Exchange rate is required",
		"gte":      "Rate must be positive",
	},
}

var draftValidator = newDraftValidator()

func newDraftValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	// A NullDecimal validates through a pointer to its float value so that
	// "required" checks presence only; an empty one is nil.
	v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		d, ok := field.Interface().(decimal.NullDecimal)
		if !ok || !d.Valid {
			return nil
		}
		f, _ := d.Decimal.Float64()
		return &f
	}, decimal.NullDecimal{})
	return v
}

// Validate checks a draft against the local rules. Code uniqueness and the
// single base currency rule are left to the store.
func Validate(draft domain.CurrencyDraft) Violations {
	violations := Violations{}

	err := draftValidator.Struct(draft)
	if err == nil {
		return violations
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		// Only reachable on a programming error (non-struct input).
		violations[FieldCode] = err.Error()
		return violations
	}

	for _, fe := range fieldErrs {
		if _, seen := violations[fe.Field()]; seen {
			continue
		}
		msg, ok := violationMessages[fe.Field()][fe.Tag()]
		if !ok {
			msg = fe.Error()
		}
		violations[fe.Field()] = msg
	}
	return violations
}
