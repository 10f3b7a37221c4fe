// Package restrictions interprets free-text race conditions and extracts the
// age, sex and state-bred eligibility rules they impose, together with the
// short restriction code printed in parentheses (e.g. "NW2 L").
//
// The text comes from printed result charts written by many hands over many
// years, so extraction is rule based and conservative: when a clause cannot be
// interpreted confidently it is skipped, and a text with no usable clause
// yields an "open" record rather than an error.
//
// All functions are safe for concurrent use; the compiled grammars are
// package-level and never mutated.
package restrictions

import (
	"encoding/json"
	"fmt"
	"strings"

	"go.uber.org/zap"
)

// Sex is a bitmask of the sexes eligible to run.
type Sex int

const (
	Colts    Sex = 1
	Geldings Sex = 2
	Horses   Sex = 4
	Fillies  Sex = 8
	Mares    Sex = 16

	// AllSexes means no sex restriction was found.
	AllSexes = Colts | Geldings | Horses | Fillies | Mares
)

// AndUp is the MaxAge sentinel for "and upward".
const AndUp = -1

// FemaleOnly reports whether the mask is made up of fillies and/or mares only.
func (s Sex) FemaleOnly() bool {
	return s%8 == 0
}

// Restrictions is the eligibility rule set parsed from one race conditions
// text. Nil ages mean unknown.
type Restrictions struct {
	Code      *string
	MinAge    *int
	MaxAge    *int
	Sex       Sex
	StateBred bool
}

// New builds a record for the given code. When no maximum age was stated the
// race is taken to be for a single age, so maxAge defaults to minAge.
func New(code Code, minAge, maxAge *int, sex Sex) Restrictions {
	if maxAge == nil && minAge != nil {
		v := *minAge
		maxAge = &v
	}
	if sex > AllSexes {
		sex = AllSexes
	}
	return Restrictions{
		Code:      code.recordCode(),
		MinAge:    minAge,
		MaxAge:    maxAge,
		Sex:       sex,
		StateBred: code.StateBred,
	}
}

// Open is the fallback record: unknown ages, open to all sexes.
func Open(code Code) Restrictions {
	return New(code, nil, nil, AllSexes)
}

// FemaleOnly reports whether only fillies and/or mares may run.
func (r Restrictions) FemaleOnly() bool {
	return r.Sex.FemaleOnly()
}

// Parse extracts the restrictions from a raw race conditions text. It always
// returns a record; Open is returned when nothing could be interpreted.
func Parse(raceConditions string) Restrictions {
	text := Normalize(raceConditions)

	code, parenthesized := ExtractCode(text)
	for _, p := range parenthesized {
		text = strings.TrimSpace(strings.ReplaceAll(text, p, " "))
	}

	var (
		merged Restrictions
		found  bool
	)
	for _, clause := range SplitClauses(text) {
		r, ok := MatchClause(clause, code)
		if !ok {
			continue
		}
		if found {
			r = Merge(merged, r, code)
		}
		merged, found = r, true
	}

	if !found {
		zap.L().Debug("no age or sex restriction identified", zap.String("text", text))
		return Open(code)
	}
	return merged
}

type record struct {
	Code       *string `json:"code" yaml:"code"`
	MinAge     *int    `json:"minAge" yaml:"minAge"`
	MaxAge     *int    `json:"maxAge" yaml:"maxAge"`
	Sex        int     `json:"sex" yaml:"sex"`
	FemaleOnly bool    `json:"femaleOnly" yaml:"femaleOnly"`
	StateBred  bool    `json:"stateBred" yaml:"stateBred"`
}

func (r Restrictions) record() record {
	return record{
		Code:       r.Code,
		MinAge:     r.MinAge,
		MaxAge:     r.MaxAge,
		Sex:        int(r.Sex),
		FemaleOnly: r.FemaleOnly(),
		StateBred:  r.StateBred,
	}
}

// MarshalJSON includes the derived femaleOnly flag.
func (r Restrictions) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.record())
}

// MarshalYAML includes the derived femaleOnly flag.
func (r Restrictions) MarshalYAML() (interface{}, error) {
	return r.record(), nil
}

func (r Restrictions) String() string {
	return fmt.Sprintf("Restrictions{code=%s, minAge=%s, maxAge=%s, sex=%d, femaleOnly=%t, stateBred=%t}",
		strOrNil(r.Code), intOrNil(r.MinAge), intOrNil(r.MaxAge), r.Sex, r.FemaleOnly(), r.StateBred)
}

func strOrNil(s *string) string {
	if s == nil {
		return "<nil>"
	}
	return fmt.Sprintf("%q", *s)
}

func intOrNil(n *int) string {
	if n == nil {
		return "<nil>"
	}
	return fmt.Sprintf("%d", *n)
}
