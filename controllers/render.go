package controllers

import (
	"net/http"

	"gin-giftregistry/middlewares"

	"github.com/gin-gonic/gin"
)

// render fills in the signed-in user and any pending flash message before
// executing the page template. A "Flash" already in data takes precedence.
func render(ctx *gin.Context, cookies Cookies, status int, page string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}
	if pending := cookies.PopFlash(ctx); data["Flash"] == nil && pending != "" {
		data["Flash"] = pending
	}
	if user, ok := middlewares.CurrentUser(ctx); ok {
		data["User"] = user
	}
	ctx.HTML(status, page, data)
}

// redirectAfterPost sends the browser to location with a GET.
func redirectAfterPost(ctx *gin.Context, location string) {
	ctx.Redirect(http.StatusSeeOther, location)
}
