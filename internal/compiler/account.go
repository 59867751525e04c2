package compiler

import (
	"fmt"
	"strings"

	"github.com/hance08/numscribe/internal/model"
)

const (
	addressSigil = "@"
	worldAddress = addressSigil + model.WorldAccount
)

// FormatAccount converts an account path to its script address. It is idempotent.
func FormatAccount(account string) string {
	if account == model.WorldAccount {
		return worldAddress
	}
	if strings.HasPrefix(account, addressSigil) {
		return account
	}
	return addressSigil + account
}

func isWorld(account string) bool {
	return account == model.WorldAccount || account == worldAddress
}

// RenderSource renders the content of a posting's source clause, including
// its overdraft allowance. The world account is never annotated.
func RenderSource(p model.Posting) string {
	addr := FormatAccount(p.Source)
	if isWorld(p.Source) {
		return addr
	}

	switch p.SourceOverdraft {
	case model.OverdraftNone:
	case model.OverdraftUnbounded:
		return addr + " allowing unbounded overdraft"
	case model.OverdraftLimited:
		if p.OverdraftLimit != "" {
			return fmt.Sprintf("%s allowing overdraft up to %s", addr, monetary(p.Asset, p.OverdraftLimit))
		}
	}
	return addr
}

func monetary(asset, amount string) string {
	return "[" + asset + " " + amount + "]"
}
