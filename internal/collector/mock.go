package collector

import (
	"context"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"redditsearch/internal/domain"
)

// MockClient implements domain.Collector from curated fixture data, so tests
// and the scaffold binary can run without API credentials. It keeps the same
// limiter-gated shape the live clients will have.
type MockClient struct {
	limiter  *rate.Limiter
	posts    []domain.Post
	comments []domain.Comment
}

var _ domain.Collector = (*MockClient)(nil)

func NewMockClient() *MockClient {
	return &MockClient{
		// Generous pacing, just enough to exercise the limiter path.
		limiter:  rate.NewLimiter(rate.Every(10*time.Millisecond), 1),
		posts:    fixturePosts(),
		comments: fixtureComments(),
	}
}

// FetchNewPosts returns fixture posts for the subreddit in fixture order.
// An empty subreddit matches all; limit <= 0 means no cap.
func (mc *MockClient) FetchNewPosts(ctx context.Context, sub string, limit int) ([]domain.Post, error) {
	if err := mc.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	var result []domain.Post
	for _, p := range mc.posts {
		if sub != "" && !strings.EqualFold(p.Subreddit, sub) {
			continue
		}
		result = append(result, p)
		if limit > 0 && len(result) == limit {
			break
		}
	}
	return result, nil
}

// FetchComments returns the fixture comments attached to the given post.
func (mc *MockClient) FetchComments(ctx context.Context, postID string) ([]domain.Comment, error) {
	if err := mc.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	var result []domain.Comment
	for _, c := range mc.comments {
		if c.ParentID == postID {
			result = append(result, c)
		}
	}
	return result, nil
}
