package domain

import "context"

// Post is the clean data structure shared by collectors, fixtures, and
// (eventually) storage.
type Post struct {
	ID           string   `json:"id"`
	Title        string   `json:"title"`
	SelfText     string   `json:"selftext"`
	Subreddit    string   `json:"subreddit"`
	Author       string   `json:"author"`
	URL          string   `json:"url"`
	Score        int      `json:"score"`
	CommentCount int      `json:"num_comments"`
	CreatedUTC   float64  `json:"created_utc"`
	KeywordsHit  []string `json:"keywords_hit,omitempty"`
}

// Comment is a reply linked to its post through ParentID.
type Comment struct {
	ID         string  `json:"id"`
	Body       string  `json:"body"`
	Author     string  `json:"author"`
	Score      int     `json:"score"`
	ParentID   string  `json:"parent_id"`
	CreatedUTC float64 `json:"created_utc"`
}

// Collector defines the interface for data fetching. Only the mock client
// implements it today; a live Reddit client will slot in behind it later.
type Collector interface {
	FetchNewPosts(ctx context.Context, subreddit string, limit int) ([]Post, error)
}
