package validation

import (
	"fmt"
	"strings"

	"github.com/hance08/numscribe/internal/constants"
	"github.com/hance08/numscribe/internal/model"
	"github.com/hance08/numscribe/internal/utils"
	"github.com/shopspring/decimal"
)

// The helpers below take a single string so they can be passed directly
// to huh inputs as validators.

// ValidateAccount validates an account path such as "users:1234:main".
// A leading "@" is accepted.
func ValidateAccount(val string) error {
	name := strings.TrimPrefix(strings.TrimSpace(val), "@")
	if name == "" {
		return fmt.Errorf("account can't be empty")
	}
	if len(name) > constants.MaxAccountLen {
		return fmt.Errorf("account too long (max %d characters)", constants.MaxAccountLen)
	}

	for _, segment := range strings.Split(name, ":") {
		if segment == "" {
			return fmt.Errorf("account %q has an empty segment", val)
		}
		for _, c := range segment {
			if !isAccountChar(c) {
				return fmt.Errorf("account %q contains invalid character %q", val, c)
			}
		}
	}
	return nil
}

func isAccountChar(c rune) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9') || c == '_' || c == '-'
}

// ValidateAsset validates an asset notation such as "EUR/2".
func ValidateAsset(val string) error {
	_, err := utils.ParseAsset(strings.TrimSpace(val))
	return err
}

// ValidateAmount accepts the wildcard or a non-negative integer in smallest units.
func ValidateAmount(val string) error {
	if val == model.WildcardAmount {
		return nil
	}
	if err := ValidateCap(val); err != nil {
		return fmt.Errorf("amount must be %q or a non-negative integer", model.WildcardAmount)
	}
	return nil
}

// ValidateCap validates a non-negative integer amount in smallest units.
// The value is copied into the script verbatim, so only plain digits are
// accepted: no sign, exponent, fraction part or surrounding spaces.
func ValidateCap(val string) error {
	d, err := decimal.NewFromString(val)
	if err != nil {
		return fmt.Errorf("invalid number %q", val)
	}
	if !d.IsInteger() {
		return fmt.Errorf("%q must be an integer in the asset's smallest unit", val)
	}
	if d.IsNegative() {
		return fmt.Errorf("%q can't be negative", val)
	}
	if val != d.String() {
		return fmt.Errorf("%q must be written as plain digits, e.g. %s", val, d.String())
	}
	return nil
}

// ValidatePortion validates a fraction value: a percentage ("80", "12.5%")
// or a ratio ("1/3").
func ValidatePortion(val string) error {
	_, err := portionPercent(val)
	return err
}

// portionPercent converts a fraction value to a percentage in (0, 100].
func portionPercent(val string) (decimal.Decimal, error) {
	v := strings.TrimSpace(val)
	if v == "" {
		return decimal.Zero, fmt.Errorf("fraction value is required")
	}

	var pct decimal.Decimal
	if num, den, ok := strings.Cut(v, "/"); ok {
		n, err := decimal.NewFromString(num)
		if err != nil {
			return decimal.Zero, fmt.Errorf("invalid ratio %q", val)
		}
		d, err := decimal.NewFromString(den)
		if err != nil || d.IsZero() {
			return decimal.Zero, fmt.Errorf("invalid ratio %q", val)
		}
		pct = n.Div(d).Mul(hundred)
	} else {
		p, err := decimal.NewFromString(strings.TrimSuffix(v, "%"))
		if err != nil {
			return decimal.Zero, fmt.Errorf("invalid percentage %q", val)
		}
		pct = p
	}

	if !pct.IsPositive() || pct.GreaterThan(hundred) {
		return decimal.Zero, fmt.Errorf("fraction %q must be greater than 0%% and at most 100%%", val)
	}
	return pct, nil
}

// ValidateMetaKey validates a metadata key.
func ValidateMetaKey(val string) error {
	if strings.TrimSpace(val) == "" {
		return fmt.Errorf("metadata key can't be empty")
	}
	if len(val) > constants.MaxMetaKeyLen {
		return fmt.Errorf("metadata key too long (max %d characters)", constants.MaxMetaKeyLen)
	}
	return noQuotes(val)
}

// ValidateMetaValue rejects values the compiler would emit as broken string literals.
func ValidateMetaValue(val string) error {
	return noQuotes(val)
}

func noQuotes(val string) error {
	if strings.ContainsAny(val, "\"\n") {
		return fmt.Errorf("%q must not contain double quotes or newlines", val)
	}
	return nil
}
