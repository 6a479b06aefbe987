package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// CookieOptions applies to every cookie the API sets. All of them are httpOnly.
type CookieOptions struct {
	Secure bool
}

func (o CookieOptions) set(c *gin.Context, name, value string, maxAge int) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(name, value, maxAge, "/", "", o.Secure, true)
}

func (o CookieOptions) clear(c *gin.Context, name string) {
	o.set(c, name, "", -1)
}
