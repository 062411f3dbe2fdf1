package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (s *Server) Brands(c *gin.Context) {
	items, err := s.catalogSvc.Brands(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "items": items})
}

func (s *Server) ProductsByBrand(c *gin.Context) {
	items, err := s.catalogSvc.ByBrand(c.Request.Context(), c.Query("brand"), c.Query("q"))
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "items": items})
}
