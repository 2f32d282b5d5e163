package controllers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"locker-booking/services"
)

type UserController struct {
	UserSvc *services.UserService
	log     *slog.Logger
}

func NewUserController(svc *services.UserService, log *slog.Logger) *UserController {
	return &UserController{UserSvc: svc, log: log.With(slog.String("controller", "users"))}
}

// GET /api/users?filter=lastname&value=jan
func (uc *UserController) GetUsers(c *gin.Context) {
	users, err := uc.UserSvc.Search(c.Request.Context(), c.Query("filter"), c.Query("value"))
	if err != nil {
		respondError(c, uc.log, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

func (uc *UserController) GetUser(c *gin.Context) {
	getOne(c, uc.log, uc.UserSvc.Get)
}

func (uc *UserController) CreateUser(c *gin.Context) {
	createOne(c, uc.log, uc.UserSvc.Create)
}

func (uc *UserController) ReplaceUser(c *gin.Context) {
	updateOne(c, uc.log, uc.UserSvc.Replace, "User updated successfully")
}

func (uc *UserController) PatchUser(c *gin.Context) {
	updateOne(c, uc.log, uc.UserSvc.Patch, "user is updated")
}

func (uc *UserController) DeleteUser(c *gin.Context) {
	deleteOne(c, uc.log, uc.UserSvc.Delete)
}
