package controllers

import (
	"log/slog"

	"github.com/gin-gonic/gin"

	"locker-booking/services"
)

type CategoryController struct {
	CategorySvc *services.CategoryService
	log         *slog.Logger
}

func NewCategoryController(svc *services.CategoryService, log *slog.Logger) *CategoryController {
	return &CategoryController{CategorySvc: svc, log: log.With(slog.String("controller", "categories"))}
}

func (cc *CategoryController) GetCategories(c *gin.Context) {
	listAll(c, cc.log, cc.CategorySvc.List)
}

func (cc *CategoryController) GetCategory(c *gin.Context) {
	getOne(c, cc.log, cc.CategorySvc.Get)
}

// GET /api/categories/:id/products
func (cc *CategoryController) GetCategoryProducts(c *gin.Context) {
	getOne(c, cc.log, cc.CategorySvc.Products)
}

func (cc *CategoryController) CreateCategory(c *gin.Context) {
	createOne(c, cc.log, cc.CategorySvc.Create)
}

func (cc *CategoryController) ReplaceCategory(c *gin.Context) {
	updateOne(c, cc.log, cc.CategorySvc.Replace, "Category updated successfully")
}

func (cc *CategoryController) PatchCategory(c *gin.Context) {
	updateOne(c, cc.log, cc.CategorySvc.Patch, "category is updated")
}

func (cc *CategoryController) DeleteCategory(c *gin.Context) {
	deleteOne(c, cc.log, cc.CategorySvc.Delete)
}
