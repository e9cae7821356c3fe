package model

import "github.com/deppfellow/lazy-virtuoso/internal/validation"

// Artwork is stored in the "artwork" collection.
//
// ImageURL and SoundURL hold either a full URL or a plain string (a
// relative asset path, for instance); both are accepted as-is.
type Artwork struct {
	Base        `bson:",inline"`
	Title       string   `bson:"title" json:"title"`
	ImageURL    string   `bson:"image_url" json:"image_url"`
	Description *string  `bson:"description" json:"description"`
	PoemSnippet *string  `bson:"poem_snippet" json:"poem_snippet"`
	SoundURL    *string  `bson:"sound_url" json:"sound_url"`
	Tags        []string `bson:"tags" json:"tags"`
}

type CreateArtworkRequest struct {
	Title       *string  `json:"title" validate:"required"`
	ImageURL    *string  `json:"image_url" validate:"required"`
	Description *string  `json:"description"`
	PoemSnippet *string  `json:"poem_snippet"`
	SoundURL    *string  `json:"sound_url"`
	Tags        []string `json:"tags"`
}

func (r *CreateArtworkRequest) Validate() error {
	return validation.Struct(r)
}

// ToArtwork converts the validated request into the stored document.
func (r *CreateArtworkRequest) ToArtwork() *Artwork {
	return &Artwork{
		Title:       value(r.Title),
		ImageURL:    value(r.ImageURL),
		Description: r.Description,
		PoemSnippet: r.PoemSnippet,
		SoundURL:    r.SoundURL,
		Tags:        tagsOrEmpty(r.Tags),
	}
}

// ListArtworksRequest filters artworks by tag.
type ListArtworksRequest struct {
	Limit int64  `query:"limit" validate:"min=0"`
	Tag   string `query:"tag"`
}

func (r *ListArtworksRequest) SetDefaults() {
	r.Limit = DefaultLimit
}

func (r *ListArtworksRequest) Validate() error {
	return validation.Struct(r)
}
