package controllers

import (
	"log/slog"

	"github.com/gin-gonic/gin"

	"locker-booking/services"
)

type ProductController struct {
	ProductSvc *services.ProductService
	log        *slog.Logger
}

func NewProductController(svc *services.ProductService, log *slog.Logger) *ProductController {
	return &ProductController{ProductSvc: svc, log: log.With(slog.String("controller", "products"))}
}

func (pc *ProductController) GetProducts(c *gin.Context) {
	listAll(c, pc.log, pc.ProductSvc.List)
}

func (pc *ProductController) GetProduct(c *gin.Context) {
	getOne(c, pc.log, pc.ProductSvc.Get)
}

func (pc *ProductController) CreateProduct(c *gin.Context) {
	createOne(c, pc.log, pc.ProductSvc.Create)
}

func (pc *ProductController) ReplaceProduct(c *gin.Context) {
	updateOne(c, pc.log, pc.ProductSvc.Replace, "Product updated successfully")
}

func (pc *ProductController) PatchProduct(c *gin.Context) {
	updateOne(c, pc.log, pc.ProductSvc.Patch, "product is updated")
}

func (pc *ProductController) DeleteProduct(c *gin.Context) {
	deleteOne(c, pc.log, pc.ProductSvc.Delete)
}
