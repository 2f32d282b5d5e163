package controllers

import (
	"log/slog"

	"github.com/gin-gonic/gin"

	"locker-booking/services"
)

type OrderController struct {
	OrderSvc *services.OrderService
	log      *slog.Logger
}

func NewOrderController(svc *services.OrderService, log *slog.Logger) *OrderController {
	return &OrderController{OrderSvc: svc, log: log.With(slog.String("controller", "orders"))}
}

func (oc *OrderController) GetOrders(c *gin.Context) {
	listAll(c, oc.log, oc.OrderSvc.List)
}

func (oc *OrderController) GetOrder(c *gin.Context) {
	getOne(c, oc.log, oc.OrderSvc.Get)
}

func (oc *OrderController) CreateOrder(c *gin.Context) {
	createOne(c, oc.log, oc.OrderSvc.Create)
}

func (oc *OrderController) ReplaceOrder(c *gin.Context) {
	updateOne(c, oc.log, oc.OrderSvc.Replace, "Order updated successfully")
}

func (oc *OrderController) PatchOrder(c *gin.Context) {
	updateOne(c, oc.log, oc.OrderSvc.Patch, "order is updated")
}

func (oc *OrderController) DeleteOrder(c *gin.Context) {
	deleteOne(c, oc.log, oc.OrderSvc.Delete)
}
