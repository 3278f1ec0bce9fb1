package controllers

import (
	"errors"
	"net/http"

	"gin-giftregistry/constants"
	"gin-giftregistry/dto"
	"gin-giftregistry/services"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type IAuthController interface {
	ShowRegister(ctx *gin.Context)
	Register(ctx *gin.Context)
	ShowLogin(ctx *gin.Context)
	Login(ctx *gin.Context)
	Logout(ctx *gin.Context)
}

type AuthController struct {
	service services.IAuthService
	cookies Cookies
	log     logrus.FieldLogger
}

func NewAuthController(service services.IAuthService, cookies Cookies, log logrus.FieldLogger) IAuthController {
	return &AuthController{service: service, cookies: cookies, log: log}
}

func (c *AuthController) ShowRegister(ctx *gin.Context) {
	render(ctx, c.cookies, http.StatusOK, "register.html", gin.H{"Title": "Register"})
}

func (c *AuthController) Register(ctx *gin.Context) {
	var input dto.RegisterInput
	if err := ctx.ShouldBind(&input); err != nil {
		render(ctx, c.cookies, http.StatusBadRequest, "register.html", gin.H{
			"Title": "Register",
			"Flash": constants.MsgFieldsRequired,
		})
		return
	}

	_, err := c.service.Register(input.Name, input.Email, input.Password)
	if err != nil {
		if errors.Is(err, services.ErrEmailTaken) {
			c.cookies.SetFlash(ctx, constants.MsgEmailRegistered)
			redirectAfterPost(ctx, "/register")
			return
		}
		c.log.WithError(err).Error("Register failed")
		ctx.String(http.StatusInternalServerError, constants.ErrUnexpected)
		return
	}

	c.cookies.SetFlash(ctx, constants.MsgRegistrationSuccess)
	redirectAfterPost(ctx, "/login")
}

func (c *AuthController) ShowLogin(ctx *gin.Context) {
	render(ctx, c.cookies, http.StatusOK, "login.html", gin.H{"Title": "Log in"})
}

func (c *AuthController) Login(ctx *gin.Context) {
	var input dto.LoginInput
	if err := ctx.ShouldBind(&input); err != nil {
		render(ctx, c.cookies, http.StatusBadRequest, "login.html", gin.H{
			"Title": "Log in",
			"Flash": constants.MsgFieldsRequired,
		})
		return
	}

	session, err := c.service.Login(input.Email, input.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			render(ctx, c.cookies, http.StatusOK, "login.html", gin.H{
				"Title": "Log in",
				"Flash": constants.MsgInvalidCredentials,
			})
			return
		}
		c.log.WithError(err).Error("Login failed")
		ctx.String(http.StatusInternalServerError, constants.ErrUnexpected)
		return
	}

	c.cookies.SetSession(ctx, session)
	redirectAfterPost(ctx, "/")
}

func (c *AuthController) Logout(ctx *gin.Context) {
	if tokenString, err := ctx.Cookie(constants.SessionCookie); err == nil && tokenString != "" {
		if err := c.service.Logout(tokenString); err != nil && !errors.Is(err, services.ErrInvalidSession) {
			c.log.WithError(err).Warn("Logout could not revoke session")
		}
	}

	c.cookies.ClearSession(ctx)
	ctx.Redirect(http.StatusFound, "/login")
}
