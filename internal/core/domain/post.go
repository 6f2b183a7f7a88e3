package domain

import "time"

// PostState tracks the lifecycle of a post. A post starts as CREATED and
// becomes EDITED on its first update; there are no further states.
type PostState string

const (
	PostStateCreated PostState = "CREATED"
	PostStateEdited  PostState = "EDITED"
)

// Post represents a board post owned by a user.
type Post struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Content     string    `json:"content"`
	WriterID    string    `json:"writerID"` // FK -> users.user_id, immutable after creation
	PostState   PostState `json:"postState"`
	CreatedDate time.Time `json:"createdDate"`
}

// PostSummary is the listing projection of a post; content and state are
// omitted from feed pages.
type PostSummary struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	WriterID    string    `json:"writerID"`
	CreatedDate time.Time `json:"createdDate"`
}
