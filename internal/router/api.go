package router

import (
	"github.com/deppfellow/portfolio-backend/internal/handler"
	"github.com/deppfellow/portfolio-backend/internal/middleware"
	"github.com/deppfellow/portfolio-backend/internal/server"
	"github.com/labstack/echo/v4"
)

func registerAuthRoutes(r *echo.Echo, s *server.Server, h *handler.Handlers, m *middleware.Middlewares) {
	limits := s.Config.RateLimit
	admin := m.Auth.RequireAdmin

	auth := r.Group("/api/auth")
	auth.POST("/login", h.Auth.Login, m.RateLimit.Limit("login", limits.LoginMax, limits.Window))
	auth.POST("/logout", h.Auth.Logout, admin)
}

// registerContentRoutes mounts the portfolio API on one version group.
// Reads are public, every mutation requires the admin session.
func registerContentRoutes(api *echo.Group, s *server.Server, h *handler.Handlers, m *middleware.Middlewares) {
	limits := s.Config.RateLimit
	admin := m.Auth.RequireAdmin

	api.GET("/about", h.Owner.GetAbout)
	api.POST("/about", h.Owner.CreateAbout, admin)
	api.PATCH("/about", h.Owner.UpdateAbout, admin)

	api.GET("/tweetIds", h.Owner.GetTweetIDs)
	api.PATCH("/tweetIds", h.Owner.UpdateTweetIDs, admin)

	api.GET("/blog", h.Blog.GetBlogs)
	api.POST("/blog", h.Blog.CreateBlog, admin)
	api.GET("/blog/:id", h.Blog.GetBlog)
	api.PATCH("/blog/:id", h.Blog.UpdateBlog, admin)

	api.GET("/experience", h.Experience.GetExperiences)
	api.POST("/experience", h.Experience.CreateExperience, admin)
	api.GET("/experience/:id", h.Experience.GetExperience)
	api.PATCH("/experience/:id", h.Experience.UpdateExperience, admin)

	api.GET("/achievement", h.Achievement.GetAchievements)
	api.POST("/achievement", h.Achievement.CreateAchievement, admin)
	api.GET("/achievement/:id", h.Achievement.GetAchievement)
	api.PATCH("/achievement/:id", h.Achievement.UpdateAchievement, admin)

	// Echo keeps path parameter names per method, so the slug lookup and
	// the id update share the segment.
	api.GET("/project", h.Project.GetProjects)
	api.POST("/project", h.Project.CreateProject, admin)
	api.GET("/project/:navLink", h.Project.GetProjectBySlug)
	api.PATCH("/project/:id", h.Project.UpdateProject, admin)

	api.POST("/getS3UploadURL", h.Upload.CreateUploadURL, admin)

	api.GET("/overview", h.Content.GetOverview)
	api.GET("/search", h.Content.GetSearchIndex)
	api.GET("/languages", h.Content.GetLanguages)
	api.GET("/projectsList", h.Content.GetProjectsList)

	api.POST("/contact-form", h.Contact.SendMessage, m.RateLimit.Limit("contact", limits.ContactMax, limits.Window))
}
