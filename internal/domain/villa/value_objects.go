package villa

import (
	"regexp"
	"strings"
)

var slugRegex = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

const MaxSlugLength = 120

type Slug struct {
	value string
}

func NewSlug(s string) (Slug, error) {
	s = strings.TrimSpace(s)
	if len(s) == 0 || len(s) > MaxSlugLength || !slugRegex.MatchString(s) {
		return Slug{}, ErrInvalidSlug
	}
	return Slug{value: s}, nil
}

func (s Slug) String() string {
	return s.value
}

type Amenity struct {
	Icon string
	Text string
}

type Image struct {
	URL       string
	AltText   string
	IsPrimary bool
	SortOrder int
}
