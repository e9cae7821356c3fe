package model

import "github.com/deppfellow/lazy-virtuoso/internal/validation"

// Poem is stored in the "poem" collection. A missing author is stored as null.
type Poem struct {
	Base    `bson:",inline"`
	Title   string   `bson:"title" json:"title"`
	Content string   `bson:"content" json:"content"`
	Author  *string  `bson:"author" json:"author"`
	Tags    []string `bson:"tags" json:"tags"`
}

type CreatePoemRequest struct {
	Title   *string  `json:"title" validate:"required"`
	Content *string  `json:"content" validate:"required"`
	Author  *string  `json:"author"`
	Tags    []string `json:"tags"`
}

func (r *CreatePoemRequest) Validate() error {
	return validation.Struct(r)
}

func (r *CreatePoemRequest) ToPoem() *Poem {
	return &Poem{
		Title:   value(r.Title),
		Content: value(r.Content),
		Author:  r.Author,
		Tags:    tagsOrEmpty(r.Tags),
	}
}

// ListPoemsRequest filters poems by tag.
type ListPoemsRequest struct {
	Limit int64  `query:"limit" validate:"min=0"`
	Tag   string `query:"tag"`
}

func (r *ListPoemsRequest) SetDefaults() {
	r.Limit = DefaultLimit
}

func (r *ListPoemsRequest) Validate() error {
	return validation.Struct(r)
}
