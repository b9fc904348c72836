package collector

import (
	"time"

	"redditsearch/internal/domain"
)

// Fixture data mirrors what the miner is built to surface: explicit
// willingness to pay, pain-point phrasing, and one low-signal launch post
// for contrast. Timestamps are fixed so tests stay deterministic.
func fixturePosts() []domain.Post {
	return []domain.Post{
		{
			ID:    "abc123",
			Title: "I would pay $50/month for a tool that automates invoicing",
			SelfText: "Seriously, manually creating invoices takes me 2 hours per week. " +
				"I need a tool that integrates with my CRM and generates professional invoices automatically. " +
				"Would easily pay for this if it existed.",
			Subreddit:    "SaaS",
			Author:       "entrepreneur_mike",
			URL:          "https://reddit.com/r/SaaS/comments/abc123",
			Score:        145,
			CommentCount: 23,
			CreatedUTC:   float64(time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC).Unix()),
		},
		{
			ID:    "def456",
			Title: "Looking for a better project management tool",
			SelfText: "Current tools like Jira are too complex. Need something simple for small teams. " +
				"Wish there was a tool that just focused on tasks without all the enterprise bloat.",
			Subreddit:    "Entrepreneur",
			Author:       "startup_founder",
			URL:          "https://reddit.com/r/Entrepreneur/comments/def456",
			Score:        89,
			CommentCount: 15,
			CreatedUTC:   float64(time.Date(2025, 1, 2, 10, 0, 0, 0, time.UTC).Unix()),
		},
		{
			ID:    "ghi789",
			Title: "Struggling with customer support emails",
			SelfText: "We get 100+ support emails per day and manually categorizing them is killing us. " +
				"Need a tool to automatically tag and route emails to the right team members.",
			Subreddit:    "startups",
			Author:       "saas_ceo",
			URL:          "https://reddit.com/r/startups/comments/ghi789",
			Score:        234,
			CommentCount: 42,
			CreatedUTC:   float64(time.Date(2025, 1, 3, 14, 30, 0, 0, time.UTC).Unix()),
		},
		{
			ID:           "jkl012",
			Title:        "Just launched our product!",
			SelfText:     "After 6 months of development, we finally launched. Check it out at myproduct.com",
			Subreddit:    "SaaS",
			Author:       "product_launcher",
			URL:          "https://reddit.com/r/SaaS/comments/jkl012",
			Score:        12,
			CommentCount: 3,
			CreatedUTC:   float64(time.Date(2025, 1, 4, 9, 0, 0, 0, time.UTC).Unix()),
		},
	}
}

func fixtureComments() []domain.Comment {
	return []domain.Comment{
		{
			ID:         "comment1",
			Body:       "I agree! I would pay for this too. Currently using spreadsheets and it is a nightmare.",
			Author:     "user123",
			Score:      34,
			ParentID:   "abc123",
			CreatedUTC: float64(time.Date(2025, 1, 1, 13, 0, 0, 0, time.UTC).Unix()),
		},
		{
			ID:         "comment2",
			Body:       "Have you tried QuickBooks? It does this but is expensive at $80/month.",
			Author:     "user456",
			Score:      12,
			ParentID:   "abc123",
			CreatedUTC: float64(time.Date(2025, 1, 1, 14, 0, 0, 0, time.UTC).Unix()),
		},
		{
			ID:         "comment3",
			Body:       "We need a tool like this desperately. Willing to pay up to $100/month for our team.",
			Author:     "team_lead",
			Score:      45,
			ParentID:   "abc123",
			CreatedUTC: float64(time.Date(2025, 1, 1, 15, 30, 0, 0, time.UTC).Unix()),
		},
		{
			ID:         "comment4",
			Body:       "Asana is pretty good for small teams. Worth checking out.",
			Author:     "helpful_user",
			Score:      8,
			ParentID:   "def456",
			CreatedUTC: float64(time.Date(2025, 1, 2, 11, 0, 0, 0, time.UTC).Unix()),
		},
	}
}

// SampleKeywords returns phrases commonly used in customer-development
// searches against the fixture set.
func SampleKeywords() []string {
	return []string{
		"pay for",
		"would pay",
		"need a tool",
		"wish there was",
		"struggling with",
		"desperately need",
	}
}
