package model

type CardType string

const (
	CardRepo CardType = "repo"
	CardBlog CardType = "blog"
)

// Card is the uniform shape pinned on the overview page.
// Stack is null for blogs, ReadTime is null for projects.
type Card struct {
	Type        CardType `json:"type"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Stack       []string `json:"stack"`
	ReadTime    *string  `json:"readTime"`
	Link        string   `json:"link"`
}

type Overview struct {
	ReadmeContent string `json:"readmeContent"`
	PinnedContent []Card `json:"pinnedContent"`
}

// SearchEntry is one link of the site search index. ID is a document
// id for projects and blogs and a small integer for static pages.
type SearchEntry struct {
	ID      any    `json:"id"`
	Name    string `json:"name"`
	NavLink string `json:"navLink"`
}

type SearchGroup struct {
	Key   string        `json:"key"`
	Value []SearchEntry `json:"value"`
}

type LanguageOption struct {
	Value string `json:"value"`
}

type ReadPayload struct{}

func (p *ReadPayload) Validate() error { return nil }
