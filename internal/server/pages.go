package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Admin pages. The templates are thin shells; all data comes from the JSON API.
func (s *Server) registerPageRoutes() {
	s.engine.GET("/login", func(c *gin.Context) {
		c.HTML(http.StatusOK, "login.html", gin.H{"title": "Login"})
	})

	pages := s.engine.Group("/", s.AuthRequired())
	pages.GET("", s.page("dashboard.html", "Dashboard"))
	pages.GET("/admin/products", s.page("products.html", "Products"))
	pages.GET("/admin/orders", s.page("orders.html", "Orders"))
	pages.GET("/admin/china-orders", s.page("china_orders.html", "China orders"))
	pages.GET("/admin/import", s.page("import.html", "Import"))
	pages.GET("/admin/settings", s.page("settings.html", "Settings"))
}

func (s *Server) page(template, title string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.HTML(http.StatusOK, template, gin.H{
			"title":   title,
			"app":     s.cfg.AppName,
			"version": s.cfg.AppVersion,
		})
	}
}
