package models

// PageSignals carries the SEO-relevant facts extracted from a fetched page.
// A nil pointer (or nil Robots slice) means the tag was absent, which is not
// the same thing as present-but-empty.
type PageSignals struct {
	Canonical   *string
	Robots      []string
	Title       *string
	Description *string
}

// HasDirective reports whether the robots meta carried the given lower-cased
// token.
func (s PageSignals) HasDirective(name string) bool {
	for _, d := range s.Robots {
		if d == name {
			return true
		}
	}
	return false
}
