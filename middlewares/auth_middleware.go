package middlewares

import (
	"net/http"

	"gin-giftregistry/constants"
	"gin-giftregistry/models"
	"gin-giftregistry/services"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware resolves the session cookie to a user once per request and
// stores it under constants.ContextUser. Anonymous requests go to /login.
func AuthMiddleware(authService services.IAuthService) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		user := resolveUser(ctx, authService)
		if user == nil {
			ctx.Redirect(redirectStatus(ctx), "/login")
			ctx.Abort()
			return
		}

		ctx.Set(constants.ContextUser, user)
		ctx.Next()
	}
}

// GuestOnly sends already authenticated users to the gift list.
func GuestOnly(authService services.IAuthService) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		if user := resolveUser(ctx, authService); user != nil {
			ctx.Redirect(redirectStatus(ctx), "/")
			ctx.Abort()
			return
		}
		ctx.Next()
	}
}

// CurrentUser returns the principal set by AuthMiddleware.
func CurrentUser(ctx *gin.Context) (*models.User, bool) {
	value, exists := ctx.Get(constants.ContextUser)
	if !exists {
		return nil, false
	}
	user, ok := value.(*models.User)
	return user, ok && user != nil
}

func resolveUser(ctx *gin.Context, authService services.IAuthService) *models.User {
	tokenString, err := ctx.Cookie(constants.SessionCookie)
	if err != nil || tokenString == "" {
		return nil
	}

	user, err := authService.GetUserFromToken(tokenString)
	if err != nil {
		// 無効なクッキーは削除しておく
		ctx.SetCookie(constants.SessionCookie, "", -1, "/", "", false, true)
		return nil
	}
	return user
}

func redirectStatus(ctx *gin.Context) int {
	if ctx.Request.Method == http.MethodGet || ctx.Request.Method == http.MethodHead {
		return http.StatusFound
	}
	return http.StatusSeeOther
}
