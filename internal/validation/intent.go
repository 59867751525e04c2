package validation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/hance08/numscribe/internal/constants"
	"github.com/hance08/numscribe/internal/model"
	"github.com/shopspring/decimal"
)

var (
	hundred = decimal.NewFromInt(100)
	// ratios like 1/3 are not exact in decimal
	tolerance = decimal.New(1, -9)
)

// FieldError is one schema violation found in an intent.
type FieldError struct {
	Path    string
	Message string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Path, e.Message)
}

type collector struct {
	errs []error
}

func (c *collector) add(path string, err error) {
	if err != nil {
		c.errs = append(c.errs, &FieldError{Path: path, Message: err.Error()})
	}
}

func (c *collector) addf(path, format string, a ...any) {
	c.errs = append(c.errs, &FieldError{Path: path, Message: fmt.Sprintf(format, a...)})
}

// ValidateIntent checks an intent against the shape the compiler expects.
// All violations are returned together, joined with errors.Join.
func ValidateIntent(in *model.Intent) error {
	if in == nil {
		return errors.New("intent is empty")
	}

	c := &collector{}

	summary := strings.TrimSpace(in.Summary)
	if summary == "" {
		c.addf("summary", "is required")
	} else if len(summary) > constants.MaxSummaryLen {
		c.addf("summary", "too long (max %d characters)", constants.MaxSummaryLen)
	} else if strings.ContainsAny(in.Summary, "\r\n") {
		c.addf("summary", "must be a single line")
	}

	if len(in.Postings) == 0 {
		c.addf("postings", "at least one posting is required")
	}
	for i, p := range in.Postings {
		validatePosting(c, fmt.Sprintf("postings[%d]", i), p)
	}

	for i, m := range in.Metadata {
		path := fmt.Sprintf("metadata[%d]", i)
		c.add(path+".key", ValidateMetaKey(m.Key))
		c.add(path+".value", ValidateMetaValue(m.Value))
	}

	return errors.Join(c.errs...)
}

func validatePosting(c *collector, path string, p model.Posting) {
	c.add(path+".source", ValidateAccount(p.Source))
	c.add(path+".asset", ValidateAsset(p.Asset))
	c.add(path+".amount", ValidateAmount(p.Amount))

	switch p.SourceOverdraft {
	case "", model.OverdraftNone, model.OverdraftUnbounded:
	case model.OverdraftLimited:
		if p.OverdraftLimit == "" {
			c.addf(path+".overdraft_limit", "is required when source_overdraft is limited")
		} else {
			c.add(path+".overdraft_limit", ValidateCap(p.OverdraftLimit))
		}
	default:
		c.addf(path+".source_overdraft", "unknown policy %q", p.SourceOverdraft)
	}

	switch p.DestinationType {
	case model.DestinationSimple:
		if p.SimpleDestination == "" {
			c.addf(path+".simple_destination", "is required when destination_type is simple")
		} else {
			c.add(path+".simple_destination", ValidateAccount(p.SimpleDestination))
		}
		if len(p.SplitRules) > 0 {
			c.addf(path+".split_rules", "must be empty when destination_type is simple")
		}
	case model.DestinationSplit:
		if p.SimpleDestination != "" {
			c.addf(path+".simple_destination", "must be empty when destination_type is split")
		}
		if len(p.SplitRules) == 0 {
			c.addf(path+".split_rules", "at least one rule is required when destination_type is split")
		}
		validateSplitRules(c, path+".split_rules", p.SplitRules)
	default:
		c.addf(path+".destination_type", "unknown destination type %q", p.DestinationType)
	}
}

func validateSplitRules(c *collector, path string, rules []model.SplitRule) {
	var fractions, caps, remaining int
	var badFraction bool
	total := decimal.Zero

	for i, r := range rules {
		rulePath := fmt.Sprintf("%s[%d]", path, i)
		c.add(rulePath+".target", ValidateAccount(r.Target))

		switch r.AmountMode {
		case model.AmountFraction:
			fractions++
			pct, err := portionPercent(r.Value)
			if err != nil {
				c.add(rulePath+".value", err)
				badFraction = true
				continue
			}
			total = total.Add(pct)
		case model.AmountMax:
			caps++
			c.add(rulePath+".value", ValidateCap(r.Value))
		case model.AmountRemaining:
			remaining++
			if strings.TrimSpace(r.Value) != "" {
				c.addf(rulePath+".value", "must be empty for remaining")
			}
		default:
			c.addf(rulePath+".amount_mode", "unknown amount mode %q", r.AmountMode)
		}
	}

	if fractions > 0 && caps > 0 {
		c.addf(path, "fraction and max rules cannot be combined in one split")
	}
	if remaining > 1 {
		c.addf(path, "at most one remaining rule is allowed")
	}
	if badFraction {
		return
	}
	if total.Sub(hundred).GreaterThan(tolerance) {
		c.addf(path, "fractions add up to %s%%, more than 100%%", total.Round(2).String())
	}
	if fractions > 0 && caps == 0 && remaining == 0 && total.Sub(hundred).Abs().GreaterThan(tolerance) {
		c.addf(path, "fractions add up to %s%% without a remaining rule", total.Round(2).String())
	}
}
