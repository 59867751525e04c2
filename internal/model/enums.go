package model

import (
	"fmt"
	"strings"
)

type OverdraftPolicy string

const (
	OverdraftNone      OverdraftPolicy = "none"
	OverdraftUnbounded OverdraftPolicy = "unbounded"
	OverdraftLimited   OverdraftPolicy = "limited"
)

func (o OverdraftPolicy) Valid() bool {
	switch o {
	case OverdraftNone, OverdraftUnbounded, OverdraftLimited:
		return true
	}
	return false
}

func (o *OverdraftPolicy) UnmarshalText(text []byte) error {
	v := OverdraftPolicy(strings.TrimSpace(string(text)))
	// an omitted policy means the source may not go negative
	if v == "" {
		v = OverdraftNone
	}
	if !v.Valid() {
		return fmt.Errorf("unknown source_overdraft %q (want none, unbounded or limited)", v)
	}
	*o = v
	return nil
}

type DestinationType string

const (
	DestinationSimple DestinationType = "simple"
	DestinationSplit  DestinationType = "split"
)

func (d DestinationType) Valid() bool {
	switch d {
	case DestinationSimple, DestinationSplit:
		return true
	}
	return false
}

func (d *DestinationType) UnmarshalText(text []byte) error {
	v := DestinationType(strings.TrimSpace(string(text)))
	if !v.Valid() {
		return fmt.Errorf("unknown destination_type %q (want simple or split)", v)
	}
	*d = v
	return nil
}

type AmountMode string

const (
	AmountFraction  AmountMode = "fraction"
	AmountMax       AmountMode = "max"
	AmountRemaining AmountMode = "remaining"
)

func (m AmountMode) Valid() bool {
	switch m {
	case AmountFraction, AmountMax, AmountRemaining:
		return true
	}
	return false
}

func (m *AmountMode) UnmarshalText(text []byte) error {
	v := AmountMode(strings.TrimSpace(string(text)))
	if !v.Valid() {
		return fmt.Errorf("unknown amount_mode %q (want fraction, max or remaining)", v)
	}
	*m = v
	return nil
}
