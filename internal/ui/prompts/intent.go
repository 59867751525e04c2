package prompts

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/hance08/numscribe/internal/model"
	"github.com/hance08/numscribe/internal/validation"
)

// PromptIntent walks the user through building an intent: a summary, one or
// more postings and optional metadata.
func PromptIntent(defaultAsset string) (*model.Intent, error) {
	summary, err := PromptDescription("Summary (written as a comment at the top of the script):", true)
	if err != nil {
		return nil, err
	}

	intent := &model.Intent{Summary: summary}

	for {
		posting, err := PromptPosting(len(intent.Postings)+1, defaultAsset)
		if err != nil {
			return nil, err
		}
		intent.Postings = append(intent.Postings, *posting)
		defaultAsset = posting.Asset

		more, err := PromptConfirm("Add another posting?", false)
		if err != nil {
			return nil, err
		}
		if !more {
			break
		}
	}

	metadata, err := PromptMetadata()
	if err != nil {
		return nil, err
	}
	intent.Metadata = metadata

	return intent, nil
}

// PromptPosting prompts for one posting. n is its 1-based position, used in titles.
func PromptPosting(n int, defaultAsset string) (*model.Posting, error) {
	p := &model.Posting{SourceOverdraft: model.OverdraftNone}

	source, err := PromptInput(
		fmt.Sprintf("Posting #%d - source account (\"world\" is unlimited):", n),
		model.WorldAccount,
		validation.ValidateAccount,
	)
	if err != nil {
		return nil, err
	}
	p.Source = strings.TrimSpace(source)

	// the world account is never annotated with an overdraft
	if p.Source != model.WorldAccount {
		overdraft, limit, err := PromptOverdraft()
		if err != nil {
			return nil, err
		}
		p.SourceOverdraft = overdraft
		p.OverdraftLimit = limit
	}

	asset, err := PromptInput("Asset (symbol/scale, e.g. USD/2):", defaultAsset, validation.ValidateAsset)
	if err != nil {
		return nil, err
	}
	p.Asset = strings.TrimSpace(asset)

	amount, err := PromptAmount(
		"Amount:",
		"Integer in the asset's smallest unit, or * to move everything available",
		validation.ValidateAmount,
	)
	if err != nil {
		return nil, err
	}
	p.Amount = strings.TrimSpace(amount)

	destType, err := PromptDestinationType()
	if err != nil {
		return nil, err
	}
	p.DestinationType = destType

	switch destType {
	case model.DestinationSimple:
		dest, err := PromptInput("Destination account:", "", validation.ValidateAccount)
		if err != nil {
			return nil, err
		}
		p.SimpleDestination = strings.TrimSpace(dest)
	case model.DestinationSplit:
		rules, err := PromptSplitRules()
		if err != nil {
			return nil, err
		}
		p.SplitRules = rules
	}

	return p, nil
}

// PromptOverdraft asks how far the source may go negative.
func PromptOverdraft() (model.OverdraftPolicy, string, error) {
	policy := model.OverdraftNone

	err := huh.NewSelect[model.OverdraftPolicy]().
		Title("May the source go negative?").
		Options(
			huh.NewOption("No overdraft", model.OverdraftNone),
			huh.NewOption("Unbounded overdraft", model.OverdraftUnbounded),
			huh.NewOption("Overdraft up to a limit", model.OverdraftLimited),
		).
		Value(&policy).
		Run()
	if err != nil {
		return "", "", err
	}

	if policy != model.OverdraftLimited {
		return policy, "", nil
	}

	limit, err := PromptAmount("Overdraft limit:", "Integer in the asset's smallest unit", validation.ValidateCap)
	if err != nil {
		return "", "", err
	}
	return policy, strings.TrimSpace(limit), nil
}

func PromptDestinationType() (model.DestinationType, error) {
	destType := model.DestinationSimple

	err := huh.NewSelect[model.DestinationType]().
		Title("Destination:").
		Options(
			huh.NewOption("Single account", model.DestinationSimple),
			huh.NewOption("Split between accounts", model.DestinationSplit),
		).
		Value(&destType).
		Run()

	return destType, err
}

// PromptSplitRules prompts for a split destination. Fraction and max rules
// are alternatives, so the strategy is chosen once for the whole block.
func PromptSplitRules() ([]model.SplitRule, error) {
	mode := model.AmountFraction

	err := huh.NewSelect[model.AmountMode]().
		Title("How should the amount be split?").
		Options(
			huh.NewOption("By percentage", model.AmountFraction),
			huh.NewOption("By capped amounts, in priority order", model.AmountMax),
		).
		Value(&mode).
		Run()
	if err != nil {
		return nil, err
	}

	valueTitle, valueHelp, validator := "Percentage:", "e.g. 80, 12.5% or 1/3", validation.ValidatePortion
	if mode == model.AmountMax {
		valueTitle, valueHelp, validator = "Maximum amount:", "Integer in the asset's smallest unit", validation.ValidateCap
	}

	var rules []model.SplitRule
	for {
		target, err := PromptInput(fmt.Sprintf("Split rule #%d - target account:", len(rules)+1), "", validation.ValidateAccount)
		if err != nil {
			return nil, err
		}

		value, err := PromptAmount(valueTitle, valueHelp, validator)
		if err != nil {
			return nil, err
		}

		rules = append(rules, model.SplitRule{
			Target:     strings.TrimSpace(target),
			AmountMode: mode,
			Value:      strings.TrimSpace(value),
		})

		more, err := PromptConfirm("Add another split rule?", false)
		if err != nil {
			return nil, err
		}
		if !more {
			break
		}
	}

	withRest, err := PromptConfirm("Send whatever is left to a remaining account?", true)
	if err != nil {
		return nil, err
	}
	if withRest {
		target, err := PromptInput("Remaining account:", "", validation.ValidateAccount)
		if err != nil {
			return nil, err
		}
		rules = append(rules, model.SplitRule{Target: strings.TrimSpace(target), AmountMode: model.AmountRemaining})
	}

	return rules, nil
}

// PromptMetadata collects key/value annotations until the user stops.
func PromptMetadata() ([]model.MetadataEntry, error) {
	var entries []model.MetadataEntry

	for {
		title := "Add transaction metadata?"
		if len(entries) > 0 {
			title = "Add more metadata?"
		}
		more, err := PromptConfirm(title, false)
		if err != nil {
			return nil, err
		}
		if !more {
			return entries, nil
		}

		key, err := PromptInput("Metadata key:", "", validation.ValidateMetaKey)
		if err != nil {
			return nil, err
		}
		value, err := PromptInput("Metadata value:", "", validation.ValidateMetaValue)
		if err != nil {
			return nil, err
		}

		entries = append(entries, model.MetadataEntry{Key: strings.TrimSpace(key), Value: value})
	}
}
