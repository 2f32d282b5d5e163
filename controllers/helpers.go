package controllers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"locker-booking/logger"
	"locker-booking/middleware"
	"locker-booking/services"
	"locker-booking/store"
	"locker-booking/utils"
)

// normalizer is implemented by request bodies that clean their fields
// (trim, lower-case, strip) once validation has passed.
type normalizer interface {
	Normalize()
}

// bindJSON decodes and validates the body into req, answering 400 itself
// when that fails.
func bindJSON(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		if fields, ok := utils.FieldErrors(err); ok {
			utils.JSONErrors(c, http.StatusBadRequest, fields)
			return false
		}
		utils.JSONMessage(c, http.StatusBadRequest, "Invalid request payload")
		return false
	}

	if n, ok := req.(normalizer); ok {
		n.Normalize()
	}
	return true
}

func parseID(c *gin.Context) (uint, bool) {
	return parseUintParam(c, c.Param("id"), "id")
}

func parseUintParam(c *gin.Context, raw, field string) (uint, bool) {
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		utils.JSONErrors(c, http.StatusBadRequest, []utils.FieldError{
			{Field: field, Message: "ID must be a number"},
		})
		return 0, false
	}
	return uint(id), true
}

// respondError maps a service failure onto its status code and body. Store
// failures are logged and answered without detail.
func respondError(c *gin.Context, log *slog.Logger, err error) {
	var svcErr *services.Error

	switch {
	case errors.Is(err, store.ErrNoFields):
		utils.JSONMessage(c, http.StatusBadRequest, store.ErrNoFields.Error())
	case errors.Is(err, store.ErrMissingField):
		utils.JSONMessage(c, http.StatusBadRequest, err.Error())
	case errors.As(err, &svcErr) && svcErr.Kind != services.KindStore:
		switch svcErr.Kind {
		case services.KindValidation:
			if len(svcErr.Fields) > 0 {
				utils.JSONErrors(c, http.StatusBadRequest, svcErr.Fields)
				return
			}
			utils.JSONMessage(c, http.StatusBadRequest, svcErr.Msg)
		case services.KindNotFound:
			utils.JSONMessage(c, http.StatusNotFound, svcErr.Msg)
		case services.KindConflict:
			if len(svcErr.Details) > 0 {
				utils.JSONConflict(c, http.StatusBadRequest, svcErr.Msg, svcErr.Details)
				return
			}
			utils.JSONMessage(c, http.StatusBadRequest, svcErr.Msg)
		default:
			utils.JSONMessage(c, http.StatusBadRequest, svcErr.Msg)
		}
	default:
		log.Error("request failed",
			logger.Err(err),
			slog.String("method", c.Request.Method),
			slog.String("path", c.FullPath()),
			slog.String("request_id", c.GetString(middleware.RequestIDKey)),
		)
		utils.JSONMessage(c, http.StatusInternalServerError, "Internal server error")
	}
}

// The helpers below are the handler bodies shared by every resource.

func listAll[T any](c *gin.Context, log *slog.Logger, fn func(context.Context) ([]T, error)) {
	rows, err := fn(c.Request.Context())
	if err != nil {
		respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

func getOne[T any](c *gin.Context, log *slog.Logger, fn func(context.Context, uint) (T, error)) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	row, err := fn(c.Request.Context(), id)
	if err != nil {
		respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, row)
}

func createOne[R, T any](c *gin.Context, log *slog.Logger, fn func(context.Context, R) (T, error)) {
	var req R
	if !bindJSON(c, &req) {
		return
	}

	row, err := fn(c.Request.Context(), req)
	if err != nil {
		respondError(c, log, err)
		return
	}
	c.JSON(http.StatusCreated, row)
}

func updateOne[R any](c *gin.Context, log *slog.Logger, fn func(context.Context, uint, R) error, okMsg string) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req R
	if !bindJSON(c, &req) {
		return
	}

	if err := fn(c.Request.Context(), id, req); err != nil {
		respondError(c, log, err)
		return
	}
	utils.JSONMessage(c, http.StatusOK, okMsg)
}

func deleteOne(c *gin.Context, log *slog.Logger, fn func(context.Context, uint) error) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := fn(c.Request.Context(), id); err != nil {
		respondError(c, log, err)
		return
	}
	c.Status(http.StatusNoContent)
}
