package service

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/deppfellow/portfolio-backend/internal/model"
	"github.com/deppfellow/portfolio-backend/internal/sqlerr"
	"github.com/google/uuid"
)

// applyPatch merges a JSON patch into doc the way the repository's
// "doc || patch" does: top-level keys replace.
func applyPatch[T any](doc *T, patch any) {
	raw, err := json.Marshal(patch)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(raw, doc); err != nil {
		panic(err)
	}
}

type fakeOwnerStore struct {
	owner     *model.Owner
	createErr error
	patches   int
}

func (f *fakeOwnerStore) GetSingleton(context.Context) (*model.Owner, error) {
	if f.owner == nil {
		return nil, sqlerr.NoRows("owners")
	}
	copied := *f.owner
	return &copied, nil
}

func (f *fakeOwnerStore) CreateSingleton(_ context.Context, fields model.OwnerFields) (*model.Owner, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.owner = &model.Owner{Base: model.Base{ID: uuid.New()}, OwnerFields: fields}
	return f.owner, nil
}

func (f *fakeOwnerStore) UpdateSingleton(_ context.Context, patch any) (*model.Owner, error) {
	if f.owner == nil {
		return nil, sqlerr.NoRows("owners")
	}
	f.patches++
	applyPatch(f.owner, patch)
	return f.owner, nil
}

type fakeProjectStore struct {
	projects  []model.Project
	languages []string
	patches   int
}

func (f *fakeProjectStore) Create(_ context.Context, fields any) (*model.Project, error) {
	p := model.Project{Base: model.Base{ID: uuid.New()}}
	applyPatch(&p.ProjectFields, fields)
	f.projects = append(f.projects, p)
	return &p, nil
}

func (f *fakeProjectStore) GetAll(context.Context) ([]model.Project, error) {
	return f.projects, nil
}

func (f *fakeProjectStore) Latest(_ context.Context, n int) ([]model.Project, error) {
	var latest []model.Project
	for i := len(f.projects) - 1; i >= 0 && len(latest) < n; i-- {
		latest = append(latest, f.projects[i])
	}
	return latest, nil
}

func (f *fakeProjectStore) GetByID(_ context.Context, id uuid.UUID) (*model.Project, error) {
	for i := range f.projects {
		if f.projects[i].ID == id {
			copied := f.projects[i]
			return &copied, nil
		}
	}
	return nil, sqlerr.NoRows("projects")
}

func (f *fakeProjectStore) GetBySlug(_ context.Context, navLink string) (*model.Project, error) {
	for i := range f.projects {
		if f.projects[i].NavLink == navLink {
			copied := f.projects[i]
			return &copied, nil
		}
	}
	return nil, sqlerr.NoRows("projects")
}

func (f *fakeProjectStore) UpdateByID(_ context.Context, id uuid.UUID, patch any) (*model.Project, error) {
	for i := range f.projects {
		if f.projects[i].ID == id {
			f.patches++
			applyPatch(&f.projects[i], patch)
			copied := f.projects[i]
			return &copied, nil
		}
	}
	return nil, sqlerr.NoRows("projects")
}

func (f *fakeProjectStore) DistinctLanguages(context.Context) ([]string, error) {
	return f.languages, nil
}

type fakeBlogStore struct {
	blogs []model.Blog
}

func (f *fakeBlogStore) GetAll(context.Context) ([]model.Blog, error) {
	return f.blogs, nil
}

func (f *fakeBlogStore) Latest(_ context.Context, n int) ([]model.Blog, error) {
	var latest []model.Blog
	for i := len(f.blogs) - 1; i >= 0 && len(latest) < n; i-- {
		latest = append(latest, f.blogs[i])
	}
	return latest, nil
}

type fakeAchievementStore struct {
	achievement *model.Achievement
}

func (f *fakeAchievementStore) Create(_ context.Context, fields any) (*model.Achievement, error) {
	a := &model.Achievement{Base: model.Base{ID: uuid.New()}}
	applyPatch(&a.AchievementFields, fields)
	f.achievement = a
	return a, nil
}

func (f *fakeAchievementStore) GetAll(context.Context) ([]model.Achievement, error) {
	if f.achievement == nil {
		return nil, nil
	}
	return []model.Achievement{*f.achievement}, nil
}

func (f *fakeAchievementStore) GetByID(_ context.Context, id uuid.UUID) (*model.Achievement, error) {
	if f.achievement == nil || f.achievement.ID != id {
		return nil, sqlerr.NoRows("achievements")
	}
	copied := *f.achievement
	return &copied, nil
}

func (f *fakeAchievementStore) UpdateByID(_ context.Context, id uuid.UUID, patch any) (*model.Achievement, error) {
	if f.achievement == nil || f.achievement.ID != id {
		return nil, sqlerr.NoRows("achievements")
	}
	applyPatch(f.achievement, patch)
	copied := *f.achievement
	return &copied, nil
}

type fakeExperienceStore struct {
	experience *model.Experience
	updates    int
}

func (f *fakeExperienceStore) Create(_ context.Context, fields any) (*model.Experience, error) {
	e := &model.Experience{Base: model.Base{ID: uuid.New()}}
	applyPatch(&e.ExperienceFields, fields)
	f.experience = e
	return e, nil
}

func (f *fakeExperienceStore) GetAll(context.Context) ([]model.Experience, error) {
	if f.experience == nil {
		return nil, nil
	}
	return []model.Experience{*f.experience}, nil
}

func (f *fakeExperienceStore) GetByID(_ context.Context, id uuid.UUID) (*model.Experience, error) {
	if f.experience == nil || f.experience.ID != id {
		return nil, sqlerr.NoRows("experiences")
	}
	copied := *f.experience
	return &copied, nil
}

func (f *fakeExperienceStore) UpdateByID(_ context.Context, id uuid.UUID, patch any) (*model.Experience, error) {
	if f.experience == nil || f.experience.ID != id {
		return nil, sqlerr.NoRows("experiences")
	}
	f.updates++
	applyPatch(f.experience, patch)
	copied := *f.experience
	return &copied, nil
}

type fakeSessions struct{}

func (fakeSessions) Issue(role string) (*http.Cookie, error) {
	return &http.Cookie{Name: "admin_token", Value: "signed-" + role}, nil
}

func (fakeSessions) Clear() *http.Cookie {
	return &http.Cookie{Name: "admin_token", MaxAge: -1}
}

func ptr[T any](v T) *T {
	return &v
}
