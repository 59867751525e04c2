package model

const (
	// WorldAccount is the unlimited source. It never needs an overdraft annotation.
	WorldAccount = "world"

	// WildcardAmount moves whatever the source currently holds.
	WildcardAmount = "*"
)

// Intent is the structured description of a transaction, as produced and
// validated upstream. It is read-only input for the compiler.
type Intent struct {
	Summary  string          `json:"summary" yaml:"summary"`
	Postings []Posting       `json:"postings" yaml:"postings"`
	Metadata []MetadataEntry `json:"metadata,omitempty" yaml:"metadata,omitempty"`
}

// Posting is one source -> destination movement, compiled to one send statement.
type Posting struct {
	Source            string          `json:"source" yaml:"source"`
	SourceOverdraft   OverdraftPolicy `json:"source_overdraft" yaml:"source_overdraft"`
	OverdraftLimit    string          `json:"overdraft_limit,omitempty" yaml:"overdraft_limit,omitempty"`
	DestinationType   DestinationType `json:"destination_type" yaml:"destination_type"`
	SimpleDestination string          `json:"simple_destination,omitempty" yaml:"simple_destination,omitempty"`
	SplitRules        []SplitRule     `json:"split_rules,omitempty" yaml:"split_rules,omitempty"`
	Asset             string          `json:"asset" yaml:"asset"`
	Amount            string          `json:"amount" yaml:"amount"`
}

// SplitRule is one line of a split destination.
// Value is a percentage for fraction, an integer amount for max and empty for remaining.
type SplitRule struct {
	Target     string     `json:"target" yaml:"target"`
	AmountMode AmountMode `json:"amount_mode" yaml:"amount_mode"`
	Value      string     `json:"value" yaml:"value"`
}

type MetadataEntry struct {
	Key   string `json:"key" yaml:"key"`
	Value string `json:"value" yaml:"value"`
}

// IsWildcard reports whether the posting moves the whole available balance.
func (p Posting) IsWildcard() bool {
	return p.Amount == WildcardAmount
}
