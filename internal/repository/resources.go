package repository

import "github.com/deppfellow/portfolio-backend/internal/model"

type BlogRepository struct {
	*DocumentStore[model.Blog, *model.Blog]
}

func NewBlogRepository(db DBTX) *BlogRepository {
	return &BlogRepository{NewDocumentStore[model.Blog](db, TableBlogs)}
}

type ExperienceRepository struct {
	*DocumentStore[model.Experience, *model.Experience]
}

func NewExperienceRepository(db DBTX) *ExperienceRepository {
	return &ExperienceRepository{NewDocumentStore[model.Experience](db, TableExperiences)}
}

type AchievementRepository struct {
	*DocumentStore[model.Achievement, *model.Achievement]
}

func NewAchievementRepository(db DBTX) *AchievementRepository {
	return &AchievementRepository{NewDocumentStore[model.Achievement](db, TableAchievements)}
}
