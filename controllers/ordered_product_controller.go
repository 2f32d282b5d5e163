package controllers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"locker-booking/services"
)

type OrderedProductController struct {
	OrderedProductSvc *services.OrderedProductService
	log               *slog.Logger
}

func NewOrderedProductController(svc *services.OrderedProductService, log *slog.Logger) *OrderedProductController {
	return &OrderedProductController{OrderedProductSvc: svc, log: log.With(slog.String("controller", "ordered_products"))}
}

// GET /api/ordered_products[?OrderID=]
func (opc *OrderedProductController) GetOrderedProducts(c *gin.Context) {
	raw := c.Query("OrderID")
	if raw == "" {
		listAll(c, opc.log, opc.OrderedProductSvc.List)
		return
	}

	orderID, ok := parseUintParam(c, raw, "OrderID")
	if !ok {
		return
	}

	rows, err := opc.OrderedProductSvc.ByOrder(c.Request.Context(), orderID)
	if err != nil {
		respondError(c, opc.log, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

func (opc *OrderedProductController) GetOrderedProduct(c *gin.Context) {
	getOne(c, opc.log, opc.OrderedProductSvc.Get)
}

func (opc *OrderedProductController) CreateOrderedProduct(c *gin.Context) {
	createOne(c, opc.log, opc.OrderedProductSvc.Create)
}

func (opc *OrderedProductController) ReplaceOrderedProduct(c *gin.Context) {
	updateOne(c, opc.log, opc.OrderedProductSvc.Replace, "Ordered product updated successfully")
}

func (opc *OrderedProductController) PatchOrderedProduct(c *gin.Context) {
	updateOne(c, opc.log, opc.OrderedProductSvc.Patch, "ordered product is updated")
}

func (opc *OrderedProductController) DeleteOrderedProduct(c *gin.Context) {
	deleteOne(c, opc.log, opc.OrderedProductSvc.Delete)
}
