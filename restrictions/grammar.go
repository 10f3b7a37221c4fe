package restrictions

import (
	"math"
	"regexp"
	"strconv"

	"go.uber.org/zap"
)

// Age expressions seen in chart text:
//
//	2 year olds
//	3 years old & older
//	3 & upwards
//	4yo, 2yrs, 3yos
//	3 & 4 year olds
//	3 4 & 5 year olds
//	4 & 5 & 6 year olds
//	4yrs & older
//	4 5 6 & 7 year olds
const agesExpr = `(?P<age1>\d?\d)` +
	`(?:\s&?\s?(?P<age2>\d?\d))?` +
	`(?:\s&?\s?(?P<age3>\d?\d))?` +
	`(?:\s&?\s?(?P<age4>\d?\d))?` +
	`(?P<unit>yrs?|yos?| years? olds?)?` +
	`(?P<andup> & (?:upwards?|up|olders?))?`

// Sex expressions seen in chart text:
//
//	colts geldings & horses
//	colts geldings & fillies
//	colts & geldings
//	fillies & mares
//	colts & fillies
//	fillies
const sexesExpr = `(?P<sex1>colts|fillies|mares)` +
	`(?: (?P<sex2>geldings))?` +
	`(?: & (?P<sex3>geldings|mares|horses|fillies))?`

const preamble = `^(?:.*?for.+?)?`

var (
	agesPattern  = regexp.MustCompile(agesExpr)
	sexesPattern = regexp.MustCompile(sexesExpr)

	agesThenSexes = newGrammar(preamble + agesExpr + `.*?(?:` + sexesExpr + `.*)?$`)
	sexesThenAges = newGrammar(preamble + `.*?` + sexesExpr + `[^\d]*(?:` + agesExpr + `)?.*$`)
)

var sexValues = map[string]Sex{
	"colts":    Colts,
	"geldings": Geldings,
	"horses":   Horses,
	"fillies":  Fillies,
	"mares":    Mares,
}

// order says which of the age and sex expressions comes first in a clause.
type order int

const (
	ageFirst order = iota
	sexFirst
)

func (o order) grammar() *grammar {
	if o == ageFirst {
		return agesThenSexes
	}
	return sexesThenAges
}

// grammar is a full-clause pattern plus the submatch indexes of its groups.
type grammar struct {
	pattern                *regexp.Regexp
	ages                   [4]int
	unit, andUp            int
	firstSex, gelding, sex int
}

func newGrammar(expr string) *grammar {
	re := regexp.MustCompile(expr)
	return &grammar{
		pattern:  re,
		ages:     [4]int{re.SubexpIndex("age1"), re.SubexpIndex("age2"), re.SubexpIndex("age3"), re.SubexpIndex("age4")},
		unit:     re.SubexpIndex("unit"),
		andUp:    re.SubexpIndex("andup"),
		firstSex: re.SubexpIndex("sex1"),
		gelding:  re.SubexpIndex("sex2"),
		sex:      re.SubexpIndex("sex3"),
	}
}

// detectOrder finds where the first age and the first sex expression start.
// A clause with neither, or with both at the same offset, is rejected.
func detectOrder(clause string) (order, bool) {
	agePos, sexPos := math.MaxInt, math.MaxInt
	if loc := agesPattern.FindStringIndex(clause); loc != nil {
		agePos = loc[0]
	}
	if loc := sexesPattern.FindStringIndex(clause); loc != nil {
		sexPos = loc[0]
	}
	if agePos == sexPos {
		return 0, false
	}
	if agePos < sexPos {
		return ageFirst, true
	}
	return sexFirst, true
}

// MatchClause extracts the age and sex restrictions from a single clause.
// Numbers only count as ages when followed by a unit ("year olds", "yo") or
// an "and upward" suffix, so purse amounts and dates are not mistaken for
// ages. The boolean is false when the clause yields no restriction.
func MatchClause(clause string, code Code) (Restrictions, bool) {
	o, ok := detectOrder(clause)
	if !ok {
		zap.L().Debug("clause rejected: no distinct age or sex expression", zap.String("clause", clause))
		return Restrictions{}, false
	}

	g := o.grammar()
	m := g.pattern.FindStringSubmatch(clause)
	if m == nil {
		zap.L().Debug("clause rejected: grammar did not match", zap.String("clause", clause))
		return Restrictions{}, false
	}

	if m[g.unit] == "" && m[g.andUp] == "" {
		zap.L().Debug("clause rejected: numbers are not ages", zap.String("clause", clause))
		return Restrictions{}, false
	}
	first := m[g.ages[0]]
	if first == "" {
		return Restrictions{}, false
	}

	minAge, _ := strconv.Atoi(first)
	var maxAge *int
	if m[g.andUp] != "" {
		v := AndUp
		maxAge = &v
	} else {
		for i := len(g.ages) - 1; i > 0; i-- {
			if s := m[g.ages[i]]; s != "" {
				v, _ := strconv.Atoi(s)
				maxAge = &v
				break
			}
		}
	}

	return New(code, &minAge, maxAge, g.sexes(m)), true
}

// sexes sums the bits of the matched sex terms; no terms means open.
func (g *grammar) sexes(m []string) Sex {
	first := m[g.firstSex]
	if first == "" {
		return AllSexes
	}
	sex := sexValues[first]
	if m[g.gelding] != "" {
		sex += Geldings
	}
	if other := m[g.sex]; other != "" {
		sex += sexValues[other]
	}
	return sex
}
