package restrictions

import (
	"regexp"
	"strings"
)

var (
	parenthesesText = regexp.MustCompile(`\s*\([^)]+\)\s*`)
	restrictionCode = regexp.MustCompile(`\(\s*(c)\s*\)|\(\s*(s)\s*\)|\((s?nw[^)]+)\)`)
)

// CodeKind classifies a parenthesized restriction annotation.
type CodeKind int

const (
	KindNone CodeKind = iota
	// KindCompound is "(C)", a complex or combined set of conditions.
	KindCompound
	// KindStateBred is a bare "(S)".
	KindStateBred
	// KindNamed is a non-winners class such as "(NW2 L)" or "(SNW1 X)".
	KindNamed
)

// Code is the restriction code annotation found in a conditions text.
type Code struct {
	Kind      CodeKind
	Value     string
	StateBred bool
}

// recordCode is the code carried by a Restrictions record. A bare "(S)" only
// marks the race as state-bred; it does not name a class.
func (c Code) recordCode() *string {
	switch c.Kind {
	case KindCompound, KindNamed:
		v := c.Value
		return &v
	}
	return nil
}

// ExtractCode finds every parenthesized span in normalized text and returns
// the first that carries a restriction code, along with all spans so callers
// can strip them before splitting clauses.
func ExtractCode(normalized string) (Code, []string) {
	spans := parenthesesText.FindAllString(normalized, -1)
	for _, span := range spans {
		if code, ok := classifyCode(span); ok {
			return code, spans
		}
	}
	return Code{}, spans
}

func classifyCode(span string) (Code, bool) {
	m := restrictionCode.FindStringSubmatch(span)
	switch {
	case m == nil:
		return Code{}, false
	case m[1] != "":
		return Code{Kind: KindCompound, Value: "C"}, true
	case m[2] != "":
		return Code{Kind: KindStateBred, Value: "S", StateBred: true}, true
	}

	named := strings.TrimSpace(m[3])
	stateBred := strings.HasPrefix(named, "s")
	if stateBred {
		named = named[1:]
	}
	return Code{Kind: KindNamed, Value: strings.ToUpper(named), StateBred: stateBred}, true
}
