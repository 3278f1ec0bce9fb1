package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"gin-giftregistry/constants"
	"gin-giftregistry/dto"
	"gin-giftregistry/middlewares"
	"gin-giftregistry/services"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type IGiftController interface {
	Index(ctx *gin.Context)
	ShowAdd(ctx *gin.Context)
	Add(ctx *gin.Context)
	Claim(ctx *gin.Context)
}

type GiftController struct {
	service services.IGiftService
	cookies Cookies
	log     logrus.FieldLogger
}

func NewGiftController(service services.IGiftService, cookies Cookies, log logrus.FieldLogger) IGiftController {
	return &GiftController{service: service, cookies: cookies, log: log}
}

func (c *GiftController) Index(ctx *gin.Context) {
	user, ok := middlewares.CurrentUser(ctx)
	if !ok {
		ctx.AbortWithStatus(http.StatusUnauthorized)
		return
	}

	gifts, err := c.service.List(user)
	if err != nil {
		c.log.WithError(err).Error("List gifts failed")
		ctx.String(http.StatusInternalServerError, constants.ErrUnexpected)
		return
	}

	render(ctx, c.cookies, http.StatusOK, "index.html", gin.H{"Gifts": gifts})
}

func (c *GiftController) ShowAdd(ctx *gin.Context) {
	render(ctx, c.cookies, http.StatusOK, "add_gift.html", gin.H{"Title": "Add a gift"})
}

func (c *GiftController) Add(ctx *gin.Context) {
	user, ok := middlewares.CurrentUser(ctx)
	if !ok {
		ctx.AbortWithStatus(http.StatusUnauthorized)
		return
	}

	var input dto.CreateGiftInput
	if err := ctx.ShouldBind(&input); err != nil {
		render(ctx, c.cookies, http.StatusBadRequest, "add_gift.html", gin.H{
			"Title": "Add a gift",
			"Flash": constants.MsgGiftNameRequired,
		})
		return
	}
	// チェックボックスは送信されたかどうかだけで判定する
	_, input.ParentsOnly = ctx.GetPostForm("parents_only")

	if _, err := c.service.Create(ctx.Request.Context(), input, user); err != nil {
		c.log.WithError(err).Error("Create gift failed")
		ctx.String(http.StatusInternalServerError, constants.ErrUnexpected)
		return
	}

	c.cookies.SetFlash(ctx, constants.MsgGiftAdded)
	redirectAfterPost(ctx, "/")
}

func (c *GiftController) Claim(ctx *gin.Context) {
	user, ok := middlewares.CurrentUser(ctx)
	if !ok {
		ctx.AbortWithStatus(http.StatusUnauthorized)
		return
	}

	giftID, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.String(http.StatusNotFound, constants.ErrGiftNotFound)
		return
	}

	_, err = c.service.Claim(uint(giftID), user)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrGiftNotFound):
			ctx.String(http.StatusNotFound, constants.ErrGiftNotFound)
		case errors.Is(err, services.ErrClaimNotAllowed):
			c.cookies.SetFlash(ctx, constants.MsgNotAllowed)
			redirectAfterPost(ctx, "/")
		default:
			c.log.WithError(err).Error("Claim gift failed")
			ctx.String(http.StatusInternalServerError, constants.ErrUnexpected)
		}
		return
	}

	c.cookies.SetFlash(ctx, constants.MsgGiftClaimed)
	redirectAfterPost(ctx, "/")
}
