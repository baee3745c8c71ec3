package models

import (
	dErrors "shieldbox/pkg/domainerrors"
)

// DietaryPreference tags a food box with a dietary restriction.
//
// DietNoPreference is the individual's "anything goes" filter and maps to the
// empty wire string; DietNone is a real catalog tag meaning the box has no
// restriction. The two must stay distinct: only DietNoPreference matches
// every box.
type DietaryPreference int

const (
	DietNone DietaryPreference = iota
	DietNoPreference
	DietPollotarian
	DietVegan
)

var dietWire = map[DietaryPreference]string{
	DietNone:         "none",
	DietNoPreference: "",
	DietPollotarian:  "pollotarian",
	DietVegan:        "vegan",
}

var dietParse = map[string]DietaryPreference{
	"none":        DietNone,
	"":            DietNoPreference,
	"pollotarian": DietPollotarian,
	"vegan":       DietVegan,
}

// String returns the canonical wire string for the preference.
func (d DietaryPreference) String() string {
	return dietWire[d]
}

// Matches reports whether a box tagged boxDiet satisfies this preference.
func (d DietaryPreference) Matches(boxDiet DietaryPreference) bool {
	return d == DietNoPreference || d == boxDiet
}

// ParseDietaryPreference maps a wire string to a preference. Unknown strings
// are a validation error, never a default preference.
func ParseDietaryPreference(s string) (DietaryPreference, error) {
	d, ok := dietParse[s]
	if !ok {
		return DietNone, dErrors.Newf(dErrors.CodeValidation, "unknown dietary preference %q", s)
	}
	return d, nil
}
