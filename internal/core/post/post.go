package post

import (
	"time"
)

// Comment lives inside its parent Post document and is never addressed
// outside of it.
type Comment struct {
	ID        string    `bson:"id" json:"id"`
	AuthorID  string    `bson:"author_id" json:"authorId"`
	Text      string    `bson:"text" json:"text"`
	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
}

// Post is the aggregate root stored as a single MongoDB document. LikedBy is
// a set of user ids; membership, not a counter, decides the like count.
type Post struct {
	ID        string    `bson:"_id" json:"id"`
	AuthorID  string    `bson:"author_id" json:"authorId"`
	Content   string    `bson:"content,omitempty" json:"content,omitempty"`
	ImageURL  string    `bson:"image_url,omitempty" json:"imageUrl,omitempty"`
	LikedBy   []string  `bson:"liked_by" json:"likedBy"`
	Comments  []Comment `bson:"comments" json:"comments"`
	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
}

// LikedByUser reports whether userID is in the like set.
func (p *Post) LikedByUser(userID string) bool {
	for _, id := range p.LikedBy {
		if id == userID {
			return true
		}
	}
	return false
}
