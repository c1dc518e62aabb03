package gallery

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidTitle    = errors.New("gallery title is required")
	ErrInvalidImageURL = errors.New("gallery image url is required")
	ErrInvalidOrder    = errors.New("display order cannot be negative")
)

const DefaultListLimit = 20

type Attributes struct {
	Title        string
	Description  string
	ImageURL     string
	AltText      string
	DisplayOrder int
	IsActive     bool
}

type Item struct {
	id           uuid.UUID
	title        string
	description  string
	imageURL     string
	altText      string
	displayOrder int
	isActive     bool
	createdAt    time.Time
	updatedAt    time.Time
}

func NewItem(attrs Attributes, now time.Time) (*Item, error) {
	it := &Item{id: uuid.New(), createdAt: now}
	if err := it.Update(attrs, now); err != nil {
		return nil, err
	}
	return it, nil
}

func ReconstructItem(id uuid.UUID, attrs Attributes, createdAt, updatedAt time.Time) *Item {
	return &Item{
		id:           id,
		title:        attrs.Title,
		description:  attrs.Description,
		imageURL:     attrs.ImageURL,
		altText:      attrs.AltText,
		displayOrder: attrs.DisplayOrder,
		isActive:     attrs.IsActive,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}
}

func (it *Item) Update(attrs Attributes, now time.Time) error {
	title := strings.TrimSpace(attrs.Title)
	if title == "" {
		return ErrInvalidTitle
	}
	url := strings.TrimSpace(attrs.ImageURL)
	if url == "" {
		return ErrInvalidImageURL
	}
	if attrs.DisplayOrder < 0 {
		return ErrInvalidOrder
	}
	alt := strings.TrimSpace(attrs.AltText)
	if alt == "" {
		alt = title
	}

	it.title = title
	it.description = strings.TrimSpace(attrs.Description)
	it.imageURL = url
	it.altText = alt
	it.displayOrder = attrs.DisplayOrder
	it.isActive = attrs.IsActive
	it.updatedAt = now
	return nil
}

func (it *Item) Toggle(now time.Time) bool {
	it.isActive = !it.isActive
	it.updatedAt = now
	return it.isActive
}

func (it *Item) ID() uuid.UUID        { return it.id }
func (it *Item) Title() string        { return it.title }
func (it *Item) Description() string  { return it.description }
func (it *Item) ImageURL() string     { return it.imageURL }
func (it *Item) AltText() string      { return it.altText }
func (it *Item) DisplayOrder() int    { return it.displayOrder }
func (it *Item) IsActive() bool       { return it.isActive }
func (it *Item) CreatedAt() time.Time { return it.createdAt }
func (it *Item) UpdatedAt() time.Time { return it.updatedAt }
