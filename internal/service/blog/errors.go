package blog

import "errors"

var (
	ErrPostNotFound  = errors.New("blog post not found")
	ErrSlugRequired  = errors.New("slug is required")
	ErrTitleRequired = errors.New("title is required")
	ErrSlugTaken     = errors.New("slug is already in use")
	ErrInvalidSlug   = errors.New("slug must be lowercase words separated by hyphens")
)
