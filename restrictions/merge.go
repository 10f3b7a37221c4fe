package restrictions

// Merge combines the restrictions of two alternative clauses ("X or Y") into
// the widest single restriction under which either alternative qualifies.
//
// The minimum age is the lesser of the two. The maximum is AndUp if either
// side is uncapped, otherwise the greater of two known maxima; a known,
// capped maximum merged with an unknown one stays unknown. Differing sex masks
// are added together and capped at AllSexes.
func Merge(a, b Restrictions, code Code) Restrictions {
	return New(code, mergeMin(a.MinAge, b.MinAge), mergeMax(a.MaxAge, b.MaxAge), mergeSex(a.Sex, b.Sex))
}

func mergeMin(a, b *int) *int {
	switch {
	case a == nil:
		return clone(b)
	case b == nil:
		return clone(a)
	case *b < *a:
		return clone(b)
	}
	return clone(a)
}

func mergeMax(a, b *int) *int {
	if (a != nil && *a < 0) || (b != nil && *b < 0) {
		v := AndUp
		return &v
	}
	if a == nil || b == nil {
		return nil
	}
	if *b > *a {
		return clone(b)
	}
	return clone(a)
}

// clone copies n so merged records never share age storage with their inputs.
func clone(n *int) *int {
	if n == nil {
		return nil
	}
	v := *n
	return &v
}

func mergeSex(a, b Sex) Sex {
	if a == b {
		return a
	}
	if sum := a + b; sum < AllSexes {
		return sum
	}
	return AllSexes
}
