package utils

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Asset is a parsed asset notation such as "EUR/2".
type Asset struct {
	Symbol string
	Scale  int32
}

// ParseAsset splits an asset notation into its symbol and decimal scale.
// A missing scale means the amounts are whole units.
func ParseAsset(notation string) (Asset, error) {
	symbol, scaleStr, hasScale := strings.Cut(notation, "/")
	if symbol == "" {
		return Asset{}, fmt.Errorf("invalid asset %q: missing symbol", notation)
	}
	for _, c := range symbol {
		if (c < 'A' || c > 'Z') && (c < '0' || c > '9') && c != '_' {
			return Asset{}, fmt.Errorf("invalid asset %q: symbol must be upper-case letters or digits", notation)
		}
	}

	if !hasScale {
		return Asset{Symbol: symbol}, nil
	}

	scale, err := strconv.ParseInt(scaleStr, 10, 32)
	if err != nil || scale < 0 {
		return Asset{}, fmt.Errorf("invalid asset %q: scale must be a non-negative integer", notation)
	}

	return Asset{Symbol: symbol, Scale: int32(scale)}, nil
}

// FormatAssetAmount renders an amount in smallest units for display,
// e.g. ("EUR/2", "5000") -> "50.00 EUR".
func FormatAssetAmount(notation, amount string) string {
	if amount == "*" {
		return "all available " + notation
	}

	asset, err := ParseAsset(notation)
	if err != nil {
		return notation + " " + amount
	}

	units, err := decimal.NewFromString(amount)
	if err != nil {
		return notation + " " + amount
	}

	return units.Shift(-asset.Scale).StringFixed(asset.Scale) + " " + asset.Symbol
}
