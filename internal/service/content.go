package service

import (
	"context"
	"fmt"

	"github.com/deppfellow/portfolio-backend/internal/model"
	"github.com/deppfellow/portfolio-backend/internal/sqlerr"
	"golang.org/x/sync/errgroup"
)

// pinnedPerKind is how many of the newest projects and blogs the overview pins.
const pinnedPerKind = 3

// AllLanguages is the synthetic first entry of the language filter.
const AllLanguages = "All"

// sitePages are the static entries of the search index.
var sitePages = []model.SearchEntry{
	{ID: 1, Name: "Overview", NavLink: "/"},
	{ID: 2, Name: "Projects", NavLink: "/projects"},
	{ID: 3, Name: "Achievements", NavLink: "/achievements"},
	{ID: 4, Name: "Experience", NavLink: "/experience"},
	{ID: 5, Name: "Blogs", NavLink: "/blogs"},
	{ID: 6, Name: "Consistency", NavLink: "/consistency"},
	{ID: 7, Name: "Get in touch", NavLink: "/contact"},
}

type OwnerReader interface {
	GetSingleton(ctx context.Context) (*model.Owner, error)
}

type ProjectReader interface {
	GetAll(ctx context.Context) ([]model.Project, error)
	Latest(ctx context.Context, n int) ([]model.Project, error)
	DistinctLanguages(ctx context.Context) ([]string, error)
}

type BlogReader interface {
	GetAll(ctx context.Context) ([]model.Blog, error)
	Latest(ctx context.Context, n int) ([]model.Blog, error)
}

// ContentService builds the read-only projections of the site.
type ContentService struct {
	owners   OwnerReader
	projects ProjectReader
	blogs    BlogReader
}

func NewContentService(owners OwnerReader, projects ProjectReader, blogs BlogReader) *ContentService {
	return &ContentService{owners: owners, projects: projects, blogs: blogs}
}

// GetOverview returns the owner's readme with the newest projects and blogs
// as cards, projects first.
func (s *ContentService) GetOverview(ctx context.Context) (*model.Overview, error) {
	owner, err := s.owners.GetSingleton(ctx)
	if err != nil {
		if sqlerr.IsNoRows(err) {
			return nil, ownerNotFound()
		}
		return nil, err
	}

	var (
		projects []model.Project
		blogs    []model.Blog
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		projects, err = s.projects.Latest(gctx, pinnedPerKind)
		return err
	})
	g.Go(func() error {
		var err error
		blogs, err = s.blogs.Latest(gctx, pinnedPerKind)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	cards := make([]model.Card, 0, len(projects)+len(blogs))
	for i := range projects {
		cards = append(cards, projectCard(&projects[i]))
	}
	for i := range blogs {
		cards = append(cards, blogCard(&blogs[i]))
	}

	return &model.Overview{
		ReadmeContent: owner.AboutReadme,
		PinnedContent: cards,
	}, nil
}

func projectCard(p *model.Project) model.Card {
	return model.Card{
		Type:        model.CardRepo,
		Title:       p.Name,
		Description: p.Description,
		Stack:       p.Stack(),
		Link:        projectLink(p.NavLink),
	}
}

func blogCard(b *model.Blog) model.Card {
	readTime := b.ReadTime
	return model.Card{
		Type:        model.CardBlog,
		Title:       b.Title,
		Description: b.Excerpt,
		ReadTime:    &readTime,
		Link:        b.MediumLink,
	}
}

func projectLink(navLink string) string {
	return fmt.Sprintf("/projects/%s", navLink)
}

// GetSearchIndex lists every project, blog and static page as a link.
func (s *ContentService) GetSearchIndex(ctx context.Context) ([]model.SearchGroup, error) {
	var (
		projects []model.Project
		blogs    []model.Blog
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		projects, err = s.projects.GetAll(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		blogs, err = s.blogs.GetAll(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	projectEntries := make([]model.SearchEntry, 0, len(projects))
	for _, p := range projects {
		projectEntries = append(projectEntries, model.SearchEntry{
			ID:      p.ID,
			Name:    p.Name,
			NavLink: projectLink(p.NavLink),
		})
	}

	blogEntries := make([]model.SearchEntry, 0, len(blogs))
	for _, b := range blogs {
		blogEntries = append(blogEntries, model.SearchEntry{
			ID:      b.ID,
			Name:    b.Title,
			NavLink: b.MediumLink,
		})
	}

	return []model.SearchGroup{
		{Key: "Projects", Value: projectEntries},
		{Key: "Blogs", Value: blogEntries},
		{Key: "Pages", Value: append([]model.SearchEntry(nil), sitePages...)},
	}, nil
}

// GetLanguages lists the distinct project languages behind an "All" entry.
func (s *ContentService) GetLanguages(ctx context.Context) ([]model.LanguageOption, error) {
	names, err := s.projects.DistinctLanguages(ctx)
	if err != nil {
		return nil, err
	}

	options := make([]model.LanguageOption, 0, len(names)+1)
	options = append(options, model.LanguageOption{Value: AllLanguages})
	for _, name := range names {
		options = append(options, model.LanguageOption{Value: name})
	}
	return options, nil
}

// GetProjectsList is the compact project listing of the projects page.
func (s *ContentService) GetProjectsList(ctx context.Context) ([]model.ProjectListItem, error) {
	projects, err := s.projects.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	items := make([]model.ProjectListItem, 0, len(projects))
	for i := range projects {
		p := &projects[i]

		var image string
		if len(p.Images) > 0 {
			image = p.Images[0]
		}

		languages := make([]string, 0, len(p.LanguagesUsed))
		for _, lang := range p.LanguagesUsed {
			languages = append(languages, lang.Name)
		}

		items = append(items, model.ProjectListItem{
			Title:       p.Name,
			NavLink:     p.NavLink,
			Description: p.Description,
			Stack:       p.Stack(),
			LiveLink:    p.LiveLink,
			GitHubLink:  p.GitHubLink,
			Image:       image,
			Languages:   languages,
		})
	}
	return items, nil
}
