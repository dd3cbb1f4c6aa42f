package service

import (
	"context"

	"github.com/deppfellow/portfolio-backend/internal/model"
	"github.com/google/uuid"
)

// BlogStore persists blog documents.
type BlogStore interface {
	Create(ctx context.Context, fields any) (*model.Blog, error)
	GetAll(ctx context.Context) ([]model.Blog, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.Blog, error)
	UpdateByID(ctx context.Context, id uuid.UUID, patch any) (*model.Blog, error)
}

// BlogService has no media: blogs link to articles hosted elsewhere.
type BlogService struct {
	blogs BlogStore
}

func NewBlogService(blogs BlogStore) *BlogService {
	return &BlogService{blogs: blogs}
}

func (s *BlogService) CreateBlog(ctx context.Context, payload *model.CreateBlogPayload) (*model.Blog, error) {
	return s.blogs.Create(ctx, payload.BlogFields)
}

func (s *BlogService) GetBlogs(ctx context.Context) ([]model.Blog, error) {
	blogs, err := s.blogs.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	return nonNil(blogs), nil
}

func (s *BlogService) GetBlog(ctx context.Context, payload *model.GetBlogPayload) (*model.Blog, error) {
	return s.blogs.GetByID(ctx, payload.UUID())
}

func (s *BlogService) UpdateBlog(ctx context.Context, payload *model.UpdateBlogPayload) (*model.Blog, error) {
	return s.blogs.UpdateByID(ctx, payload.UUID(), payload)
}
