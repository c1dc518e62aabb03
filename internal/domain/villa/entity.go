package villa

import (
	"errors"
	"sort"
	"strings"
	"time"

	"villa-booking/internal/domain/pricing"

	"github.com/google/uuid"
)

var (
	ErrInvalidSlug      = errors.New("slug must be lowercase letters, digits and hyphens")
	ErrInvalidTitle     = errors.New("title is required")
	ErrInvalidLocation  = errors.New("location is required")
	ErrInvalidMaxGuests = errors.New("max guests must be at least 1")
	ErrInvalidStatus    = errors.New("invalid villa status")
	ErrInvalidAmenity   = errors.New("amenity text is required")
	ErrInvalidImage     = errors.New("image url is required")
)

type Attributes struct {
	Slug            string
	Title           string
	Description     string
	LongDescription string
	Location        string
	MaxGuests       int
	Status          string
	Pricing         pricing.Profile
	Amenities       []Amenity
	Features        []string
	Images          []Image
}

type Villa struct {
	id              uuid.UUID
	slug            Slug
	title           string
	description     string
	longDescription string
	location        string
	maxGuests       int
	status          Status
	pricing         pricing.Profile
	amenities       []Amenity
	features        []string
	images          []Image
	createdAt       time.Time
	updatedAt       time.Time
}

func NewVilla(attrs Attributes, now time.Time) (*Villa, error) {
	v := &Villa{id: uuid.New(), createdAt: now}
	if err := v.assign(attrs, now); err != nil {
		return nil, err
	}
	return v, nil
}

func ReconstructVilla(id uuid.UUID, attrs Attributes, createdAt, updatedAt time.Time) *Villa {
	v := &Villa{
		id:              id,
		slug:            Slug{value: attrs.Slug},
		title:           attrs.Title,
		description:     attrs.Description,
		longDescription: attrs.LongDescription,
		location:        attrs.Location,
		maxGuests:       attrs.MaxGuests,
		status:          Status(attrs.Status),
		pricing:         attrs.Pricing,
		amenities:       attrs.Amenities,
		features:        attrs.Features,
		images:          attrs.Images,
		createdAt:       createdAt,
		updatedAt:       updatedAt,
	}
	return v
}

// Update replaces every editable attribute; collections are replaced wholesale.
func (v *Villa) Update(attrs Attributes, now time.Time) error {
	return v.assign(attrs, now)
}

func (v *Villa) assign(attrs Attributes, now time.Time) error {
	slug, err := NewSlug(attrs.Slug)
	if err != nil {
		return err
	}
	title := strings.TrimSpace(attrs.Title)
	if title == "" {
		return ErrInvalidTitle
	}
	location := strings.TrimSpace(attrs.Location)
	if location == "" {
		return ErrInvalidLocation
	}
	if attrs.MaxGuests < 1 {
		return ErrInvalidMaxGuests
	}
	status, err := NewStatus(attrs.Status)
	if err != nil {
		return err
	}
	if _, err := attrs.Pricing.Rates(); err != nil {
		return err
	}
	for _, a := range attrs.Amenities {
		if strings.TrimSpace(a.Text) == "" {
			return ErrInvalidAmenity
		}
	}
	images, err := normalizeImages(attrs.Images)
	if err != nil {
		return err
	}

	v.slug = slug
	v.title = title
	v.description = strings.TrimSpace(attrs.Description)
	v.longDescription = strings.TrimSpace(attrs.LongDescription)
	v.location = location
	v.maxGuests = attrs.MaxGuests
	v.status = status
	v.pricing = attrs.Pricing
	v.amenities = attrs.Amenities
	v.features = compactFeatures(attrs.Features)
	v.images = images
	v.updatedAt = now
	return nil
}

func (v *Villa) ToggleStatus(now time.Time) Status {
	v.status = v.status.Toggled()
	v.updatedAt = now
	return v.status
}

// AddImage appends an uploaded image. The first image of a villa becomes primary.
func (v *Villa) AddImage(img Image, now time.Time) error {
	img.SortOrder = len(v.images)
	images, err := normalizeImages(append(append([]Image(nil), v.images...), img))
	if err != nil {
		return err
	}
	v.images = images
	v.updatedAt = now
	return nil
}

func normalizeImages(in []Image) ([]Image, error) {
	out := make([]Image, 0, len(in))
	primary := -1
	for _, img := range in {
		if strings.TrimSpace(img.URL) == "" {
			return nil, ErrInvalidImage
		}
		out = append(out, img)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].SortOrder < out[j].SortOrder })
	for i := range out {
		if out[i].IsPrimary && primary < 0 {
			primary = i
		}
		out[i].IsPrimary = false
	}
	if len(out) > 0 {
		if primary < 0 {
			primary = 0
		}
		out[primary].IsPrimary = true
	}
	return out, nil
}

func compactFeatures(in []string) []string {
	out := make([]string, 0, len(in))
	for _, f := range in {
		if f = strings.TrimSpace(f); f != "" {
			out = append(out, f)
		}
	}
	return out
}

func (v *Villa) ID() uuid.UUID            { return v.id }
func (v *Villa) Slug() Slug               { return v.slug }
func (v *Villa) Title() string            { return v.title }
func (v *Villa) Description() string      { return v.description }
func (v *Villa) LongDescription() string  { return v.longDescription }
func (v *Villa) Location() string         { return v.location }
func (v *Villa) MaxGuests() int           { return v.maxGuests }
func (v *Villa) Status() Status           { return v.status }
func (v *Villa) IsActive() bool           { return v.status == StatusActive }
func (v *Villa) Pricing() pricing.Profile { return v.pricing }
func (v *Villa) Amenities() []Amenity     { return v.amenities }
func (v *Villa) Features() []string       { return v.features }
func (v *Villa) Images() []Image          { return v.images }
func (v *Villa) CreatedAt() time.Time     { return v.createdAt }
func (v *Villa) UpdatedAt() time.Time     { return v.updatedAt }
