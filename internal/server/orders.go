package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/telshop/backoffice/internal/normalize"
)

func (s *Server) ListOrders(c *gin.Context) {
	items, err := s.ordersSvc.List(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "items": items})
}

func (s *Server) GetOrder(c *gin.Context) {
	order, err := s.ordersSvc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "order": order})
}

func (s *Server) CreateOrder(c *gin.Context) {
	payload, err := Payload(c)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	order, err := s.ordersSvc.Create(c.Request.Context(), payload)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"ok": true, "order": order})
}

func (s *Server) UpdateOrder(c *gin.Context) {
	payload, err := Payload(c)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	order, err := s.ordersSvc.Update(c.Request.Context(), c.Param("id"), payload)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "order": order})
}

func (s *Server) DeleteOrder(c *gin.Context) {
	if err := s.ordersSvc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

func (s *Server) SetOrderStatus(c *gin.Context) {
	payload, err := Payload(c)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	order, err := s.ordersSvc.SetStatus(c.Request.Context(), c.Param("id"), normalize.OneLine(payload["status"]))
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "order": order})
}

func (s *Server) ExportOrdersCSV(c *gin.Context) {
	data, err := s.ordersSvc.ExportCSV(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="china_orders.csv"`)
	c.Data(http.StatusOK, "text/csv; charset=utf-8", data)
}

func (s *Server) OrderTotals(c *gin.Context) {
	totals, err := s.ordersSvc.Totals(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"ok":         true,
		"orders":     totals.Orders,
		"byCurrency": totals.ByCurrency,
		"byStatus":   totals.ByStatus,
	})
}
