package rest

type News struct {
	Author      *string `json:"author"`
	Title       *string `json:"title"`
	Description *string `json:"description"`
	URL         *string `json:"url"`
	Source      *string `json:"source"`
	Image       *string `json:"image"`
	Category    *string `json:"category"`
	Language    *string `json:"language"`
	Country     *string `json:"country"`
	PublishedAt *string `json:"publishedAt"`
}
