package handler

import (
	"net/http"

	"github.com/deppfellow/portfolio-backend/internal/model"
	"github.com/deppfellow/portfolio-backend/internal/server"
	"github.com/deppfellow/portfolio-backend/internal/service"
	"github.com/labstack/echo/v4"
)

type BlogHandler struct {
	Handler
	blogService *service.BlogService
}

func NewBlogHandler(s *server.Server, blogService *service.BlogService) *BlogHandler {
	return &BlogHandler{
		Handler:     NewHandler(s),
		blogService: blogService,
	}
}

func (h *BlogHandler) CreateBlog(c echo.Context) error {
	return Handle(h.Handler, func(c echo.Context, payload *model.CreateBlogPayload) (*model.Blog, error) {
		return h.blogService.CreateBlog(c.Request().Context(), payload)
	}, http.StatusOK, "New blog added successfully")(c)
}

func (h *BlogHandler) GetBlogs(c echo.Context) error {
	return HandleList(h.Handler, func(c echo.Context, _ *model.ReadPayload) ([]model.Blog, error) {
		return h.blogService.GetBlogs(c.Request().Context())
	}, "Blogs fetched successfully", "No blogs found")(c)
}

func (h *BlogHandler) GetBlog(c echo.Context) error {
	return Handle(h.Handler, func(c echo.Context, payload *model.GetBlogPayload) (*model.Blog, error) {
		return h.blogService.GetBlog(c.Request().Context(), payload)
	}, http.StatusOK, "Blog data fetched successfully")(c)
}

func (h *BlogHandler) UpdateBlog(c echo.Context) error {
	return Handle(h.Handler, func(c echo.Context, payload *model.UpdateBlogPayload) (*model.Blog, error) {
		return h.blogService.UpdateBlog(c.Request().Context(), payload)
	}, http.StatusOK, "Blog data updated successfully")(c)
}
