package controllers

import (
	"log/slog"

	"github.com/gin-gonic/gin"

	"locker-booking/services"
)

type LockerController struct {
	LockerSvc *services.LockerService
	log       *slog.Logger
}

func NewLockerController(svc *services.LockerService, log *slog.Logger) *LockerController {
	return &LockerController{LockerSvc: svc, log: log.With(slog.String("controller", "lockers"))}
}

// GET /api/lockers
func (lc *LockerController) GetLockers(c *gin.Context) {
	listAll(c, lc.log, lc.LockerSvc.List)
}

// GET /api/lockers/:id
func (lc *LockerController) GetLocker(c *gin.Context) {
	getOne(c, lc.log, lc.LockerSvc.Get)
}

// POST /api/lockers
func (lc *LockerController) CreateLocker(c *gin.Context) {
	createOne(c, lc.log, lc.LockerSvc.Create)
}

// PUT /api/lockers/:id
func (lc *LockerController) ReplaceLocker(c *gin.Context) {
	updateOne(c, lc.log, lc.LockerSvc.Replace, "Locker updated successfully")
}

// PATCH /api/lockers/:id
func (lc *LockerController) PatchLocker(c *gin.Context) {
	updateOne(c, lc.log, lc.LockerSvc.Patch, "Locker is updated")
}

// DELETE /api/lockers/:id
func (lc *LockerController) DeleteLocker(c *gin.Context) {
	deleteOne(c, lc.log, lc.LockerSvc.Delete)
}
