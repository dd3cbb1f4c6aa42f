package service

import (
	"context"
	"testing"

	"github.com/deppfellow/portfolio-backend/internal/model"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func contentFixture() (*fakeOwnerStore, *fakeProjectStore, *fakeBlogStore) {
	owners := &fakeOwnerStore{owner: &model.Owner{OwnerFields: model.OwnerFields{AboutReadme: "# Hi"}}}

	projects := &fakeProjectStore{languages: []string{"Go", "TypeScript"}}
	for _, slug := range []string{"one", "two", "three", "four"} {
		projects.projects = append(projects.projects, model.Project{
			Base: model.Base{ID: uuid.New()},
			ProjectFields: model.ProjectFields{
				Name:          slug,
				NavLink:       slug,
				Tags:          []model.ProjectTag{{Topic: "go"}},
				LanguagesUsed: []model.LanguageUsage{{Name: "Go", Percent: 100}},
			},
		})
	}

	blogs := &fakeBlogStore{blogs: []model.Blog{{
		Base:       model.Base{ID: uuid.New()},
		BlogFields: model.BlogFields{Title: "Post", Excerpt: "Short", ReadTime: "4 min", MediumLink: "https://medium.com/p/1"},
	}}}

	return owners, projects, blogs
}

func TestGetOverviewPinsNewestProjectsThenBlogs(t *testing.T) {
	owners, projects, blogs := contentFixture()
	svc := NewContentService(owners, projects, blogs)

	overview, err := svc.GetOverview(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "# Hi", overview.ReadmeContent)
	require.Len(t, overview.PinnedContent, 4)

	first := overview.PinnedContent[0]
	assert.Equal(t, model.CardRepo, first.Type)
	assert.Equal(t, "four", first.Title)
	assert.Equal(t, "/projects/four", first.Link)
	assert.Equal(t, []string{"go"}, first.Stack)
	assert.Nil(t, first.ReadTime)

	last := overview.PinnedContent[3]
	assert.Equal(t, model.CardBlog, last.Type)
	assert.Equal(t, "Short", last.Description)
	assert.Nil(t, last.Stack)
	require.NotNil(t, last.ReadTime)
	assert.Equal(t, "4 min", *last.ReadTime)
	assert.Equal(t, "https://medium.com/p/1", last.Link)
}

func TestGetOverviewRequiresOwner(t *testing.T) {
	_, projects, blogs := contentFixture()
	svc := NewContentService(&fakeOwnerStore{}, projects, blogs)

	_, err := svc.GetOverview(context.Background())
	assert.EqualError(t, err, "Owner data not found")
}

func TestGetSearchIndex(t *testing.T) {
	owners, projects, blogs := contentFixture()
	svc := NewContentService(owners, projects, blogs)

	groups, err := svc.GetSearchIndex(context.Background())
	require.NoError(t, err)
	require.Len(t, groups, 3)

	assert.Equal(t, "Projects", groups[0].Key)
	assert.Len(t, groups[0].Value, 4)
	assert.Equal(t, "/projects/one", groups[0].Value[0].NavLink)

	assert.Equal(t, "Blogs", groups[1].Key)
	assert.Equal(t, "Post", groups[1].Value[0].Name)

	assert.Equal(t, "Pages", groups[2].Key)
	assert.Len(t, groups[2].Value, 7)
	assert.Equal(t, model.SearchEntry{ID: 7, Name: "Get in touch", NavLink: "/contact"}, groups[2].Value[6])
}

func TestGetLanguagesStartsWithAll(t *testing.T) {
	owners, projects, blogs := contentFixture()
	svc := NewContentService(owners, projects, blogs)

	options, err := svc.GetLanguages(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []model.LanguageOption{{Value: "All"}, {Value: "Go"}, {Value: "TypeScript"}}, options)
}

func TestGetProjectsList(t *testing.T) {
	owners, projects, blogs := contentFixture()
	projects.projects[0].Images = []string{"https://cdn.example.com/cover.png", "https://cdn.example.com/2.png"}
	svc := NewContentService(owners, projects, blogs)

	items, err := svc.GetProjectsList(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 4)

	assert.Equal(t, "https://cdn.example.com/cover.png", items[0].Image)
	assert.Equal(t, []string{"Go"}, items[0].Languages)
	assert.Equal(t, "", items[1].Image)
}
