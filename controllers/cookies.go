package controllers

import (
	"net/http"
	"time"

	"gin-giftregistry/constants"
	"gin-giftregistry/services"

	"github.com/gin-gonic/gin"
)

var timeNow = time.Now

// Cookies writes the session and flash cookies. Secure should be set when the
// site is served over HTTPS.
type Cookies struct {
	Secure bool
}

func (c Cookies) set(ctx *gin.Context, name, value string, maxAge int, httpOnly bool) {
	ctx.SetSameSite(http.SameSiteLaxMode)
	ctx.SetCookie(name, value, maxAge, "/", "", c.Secure, httpOnly)
}

func (c Cookies) SetSession(ctx *gin.Context, session *services.Session) {
	maxAge := int(session.ExpiresAt.Sub(timeNow()).Seconds())
	if maxAge <= 0 {
		maxAge = -1
	}
	c.set(ctx, constants.SessionCookie, session.Token, maxAge, true)
}

func (c Cookies) ClearSession(ctx *gin.Context) {
	c.set(ctx, constants.SessionCookie, "", -1, true)
}

// SetFlash stores a message shown once on the next rendered page.
func (c Cookies) SetFlash(ctx *gin.Context, message string) {
	c.set(ctx, constants.FlashCookie, message, 0, true)
}

func (c Cookies) PopFlash(ctx *gin.Context) string {
	message, err := ctx.Cookie(constants.FlashCookie)
	if err != nil || message == "" {
		return ""
	}
	c.set(ctx, constants.FlashCookie, "", -1, true)
	return message
}
