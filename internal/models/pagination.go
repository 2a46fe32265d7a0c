package models

const (
	DefaultPageLimit = 100
	MaxPageLimit     = 1000
)

type Page struct {
	Offset int `query:"offset" validate:"min=0"`
	Skip   int `query:"skip" validate:"min=0"`
	Limit  int `query:"limit" validate:"min=0,max=1000"`
}

// Normalize folds the legacy "skip" alias into Offset and applies the
// default limit.
func (p Page) Normalize() Page {
	if p.Offset == 0 && p.Skip > 0 {
		p.Offset = p.Skip
	}
	p.Skip = 0
	if p.Limit <= 0 {
		p.Limit = DefaultPageLimit
	}
	if p.Limit > MaxPageLimit {
		p.Limit = MaxPageLimit
	}
	return p
}
