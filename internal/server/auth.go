package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/telshop/backoffice/internal/normalize"
)

func (s *Server) Login(c *gin.Context) {
	if !s.loginLimiter.Allow(c.ClientIP()) {
		AbortWithError(c, ErrTooManyAttempts)
		return
	}

	payload, err := Payload(c)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	user := normalize.OneLine(payload["username"])
	password := normalize.OneLine(payload["password"])

	token, expires, err := s.authsvc.Login(user, password)
	if err != nil {
		if wantsJSON(c) {
			AbortWithError(c, err)
			return
		}
		c.Redirect(http.StatusFound, "/login?error=1")
		return
	}

	s.loginLimiter.Reset(c.ClientIP())
	s.sessions.Set(c, token, expires)
	if wantsJSON(c) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
		return
	}
	c.Redirect(http.StatusFound, "/")
}

func (s *Server) Logout(c *gin.Context) {
	if token, ok := s.sessions.ReadToken(c); ok {
		s.authsvc.Logout(token)
	}
	s.sessions.Clear(c)
	if wantsJSON(c) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
		return
	}
	c.Redirect(http.StatusFound, "/login")
}
