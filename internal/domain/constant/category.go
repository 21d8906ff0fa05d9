package constant

// Category is the closed set of task categories the classifier produces.
type Category int

const (
	CategoryGeneral Category = iota
	CategoryHealth
	CategoryWork
	CategoryPersonal
	CategoryEducation
	CategoryFinance
	CategoryHousehold
	CategoryCreative
)

// String returns the lower-case wire name of the category.
func (c Category) String() string {
	switch c {
	case CategoryHealth:
		return "health"
	case CategoryWork:
		return "work"
	case CategoryPersonal:
		return "personal"
	case CategoryEducation:
		return "education"
	case CategoryFinance:
		return "finance"
	case CategoryHousehold:
		return "household"
	case CategoryCreative:
		return "creative"
	default:
		return "general"
	}
}

// MarshalText encodes the category by name.
func (c Category) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText decodes a category name. Unknown names decode to general.
func (c *Category) UnmarshalText(b []byte) error {
	*c = CategoryGeneral
	for cat := CategoryGeneral; cat <= CategoryCreative; cat++ {
		if cat.String() == string(b) {
			*c = cat
			break
		}
	}
	return nil
}

// Urgency is derived from how soon a reminder is due.
type Urgency int

const (
	UrgencyLow Urgency = iota
	UrgencyMedium
	UrgencyHigh
)

func (u Urgency) String() string {
	switch u {
	case UrgencyHigh:
		return "high"
	case UrgencyMedium:
		return "medium"
	default:
		return "low"
	}
}

// MarshalText encodes the urgency by name.
func (u Urgency) MarshalText() ([]byte, error) {
	return []byte(u.String()), nil
}
