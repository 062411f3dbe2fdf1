package server

import (
	"strings"

	"github.com/gin-gonic/gin"
)

// Payload extracts the request body as loose key-value pairs ahead of the
// normalizer, accepting either a JSON object or form data. The transport
// shape never leaks past this point.
func Payload(c *gin.Context) (map[string]any, error) {
	ct := c.ContentType()
	if strings.Contains(ct, "application/json") {
		var data map[string]any
		if err := c.ShouldBindJSON(&data); err != nil {
			return nil, badRequest("invalid json")
		}
		return data, nil
	}

	if err := c.Request.ParseForm(); err != nil {
		return nil, badRequest("invalid form")
	}
	data := make(map[string]any, len(c.Request.PostForm))
	for k, vals := range c.Request.PostForm {
		if len(vals) > 0 {
			data[k] = vals[0]
		}
	}
	return data, nil
}

// PayloadRows extracts a JSON array of loose rows for bulk import.
func PayloadRows(c *gin.Context) ([]map[string]any, error) {
	var rows []map[string]any
	if err := c.ShouldBindJSON(&rows); err != nil {
		return nil, badRequest("expect array")
	}
	return rows, nil
}
