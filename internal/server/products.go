package server

import (
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

func (s *Server) ListProducts(c *gin.Context) {
	items, err := s.catalogSvc.List(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

// UpsertProduct creates or merges by SKU: 201 on create, 200 on merge.
func (s *Server) UpsertProduct(c *gin.Context) {
	payload, err := Payload(c)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	view, created, err := s.catalogSvc.Upsert(c.Request.Context(), payload)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	c.JSON(status, view)
}

func (s *Server) UpdateProduct(c *gin.Context) {
	payload, err := Payload(c)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	view, err := s.catalogSvc.UpdateByID(c.Request.Context(), c.Param("id"), payload)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

func (s *Server) DeleteProduct(c *gin.Context) {
	if err := s.catalogSvc.DeleteByID(c.Request.Context(), c.Param("id")); err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

func (s *Server) ExportProducts(c *gin.Context) {
	items, err := s.catalogSvc.ExportJSON(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.IndentedJSON(http.StatusOK, items)
}

func (s *Server) ExportProductsCSV(c *gin.Context) {
	data, err := s.catalogSvc.ExportCSV(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="products.csv"`)
	c.Data(http.StatusOK, "text/csv; charset=utf-8", data)
}

func (s *Server) ImportProducts(c *gin.Context) {
	rows, err := PayloadRows(c)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	res, err := s.catalogSvc.Import(c.Request.Context(), rows)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"ok":      true,
		"created": res.Created,
		"merged":  res.Merged,
		"skipped": res.Skipped,
		"total":   res.Total,
	})
}

// ImportProductsCSV accepts either a multipart upload under "file" or a raw
// CSV body.
func (s *Server) ImportProductsCSV(c *gin.Context) {
	var src io.Reader = c.Request.Body
	if strings.HasPrefix(c.ContentType(), "multipart/form-data") {
		file, err := c.FormFile("file")
		if err != nil {
			AbortWithError(c, badRequest("missing file"))
			return
		}
		f, err := file.Open()
		if err != nil {
			AbortWithError(c, badRequest("unreadable file"))
			return
		}
		defer f.Close()
		src = f
	}

	res, err := s.catalogSvc.ImportCSV(c.Request.Context(), src)
	if err != nil {
		AbortWithError(c, badRequest("invalid csv"))
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"ok":      true,
		"created": res.Created,
		"merged":  res.Merged,
		"skipped": res.Skipped,
		"total":   res.Total,
	})
}
