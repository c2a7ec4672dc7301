package models

// Student is a summary record parsed from one home-page card. Freelancers
// share the same card markup, so they reuse this shape.
type Student struct {
	ID          *int    `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	URL         *string `json:"url"`
	ImageURL    *string `json:"image_url"`
}

// NewsItem is one entry of the home-page news column. The source markup
// carries no description for news, so there is none here either.
type NewsItem struct {
	ID       *int    `json:"id"`
	Title    string  `json:"title"`
	URL      string  `json:"url"`
	ImageURL *string `json:"image_url"`
}

// StudentDetail is the full record scraped from a student's own page.
// Details holds the free-form label/value rows of the article, keyed by
// normalized label text.
type StudentDetail struct {
	ID                int               `json:"id"`
	Name              string            `json:"name"`
	Details           map[string]string `json:"details"`
	FreelancePlatform *string           `json:"freelance_platform"`
	Images            []string          `json:"images"`
	SourceURL         string            `json:"source_url"`
}

// NewsDetail is the full record scraped from a news article page.
type NewsDetail struct {
	ID        int      `json:"id"`
	Title     string   `json:"title"`
	Content   string   `json:"content"`
	Images    []string `json:"images"`
	SourceURL string   `json:"source_url"`
}
