package model

import "time"

// Blog is a published article. The slug is derived from the title and is
// collision-checked on create; it is regenerated only when the title changes.
type Blog struct {
	ID         string    `json:"id"`
	Title      string    `json:"title"`
	Slug       string    `json:"slug"`
	Content    string    `json:"content"`
	Excerpt    string    `json:"excerpt"`
	CoverImage string    `json:"cover_image,omitempty"`
	Published  bool      `json:"published"`
	CreatedOn  time.Time `json:"created_on"`
	UpdatedOn  time.Time `json:"updated_on"`
}

// MaxExcerptLength bounds the blog excerpt.
const MaxExcerptLength = 300

// BlogFilter is the typed query specification for blog listings.
type BlogFilter struct {
	PublishedOnly bool
	Page          int
	Limit         int
}

// BlogPage is a paginated blog listing.
type BlogPage struct {
	Blogs      []*Blog    `json:"blogs"`
	Pagination Pagination `json:"pagination"`
}

// CreateBlogRequest represents a request to create a blog post.
type CreateBlogRequest struct {
	Title      string `json:"title"`
	Content    string `json:"content"`
	Excerpt    string `json:"excerpt"`
	CoverImage string `json:"cover_image,omitempty"`
	Published  *bool  `json:"published,omitempty"`
}

// UpdateBlogRequest represents a partial blog update.
type UpdateBlogRequest struct {
	Title      *string `json:"title,omitempty"`
	Content    *string `json:"content,omitempty"`
	Excerpt    *string `json:"excerpt,omitempty"`
	CoverImage *string `json:"cover_image,omitempty"`
	Published  *bool   `json:"published,omitempty"`
}
