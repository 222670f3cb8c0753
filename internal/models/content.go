package models

const (
	ContentPost    = "post"
	ContentComment = "comment"
)

// ContentRef identifies a reported piece of content: either a post or a
// comment. The ID is kept as the raw text the reporter sent.
type ContentRef struct {
	Kind string
	ID   string
}

// ParseContentRef returns false when contentType is neither post nor comment.
func ParseContentRef(contentType, id string) (ContentRef, bool) {
	switch contentType {
	case ContentPost, ContentComment:
		return ContentRef{Kind: contentType, ID: id}, true
	default:
		return ContentRef{}, false
	}
}
