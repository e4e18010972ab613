package api

import (
	"errors"
	"io"
	"net/http"

	"spg-be/internal/order"

	"github.com/gin-gonic/gin"
)

// @Summary Place an order
// @Description Each item is placed on its own; an item without enough confirmed stock is rejected.
// @Tags orders
// @Accept json
// @Produce json
// @Param order body order.PlaceOrderInput true "Order"
// @Success 200 {object} order.PlaceResult
// @Failure 400 {object} map[string]string
// @Router /api/neworder [post]
func (s *Server) placeOrder(c *gin.Context) {
	var in order.PlaceOrderInput
	if !bindJSON(c, &in) {
		return
	}
	res, err := s.Orders.PlaceOrder(c.Request.Context(), in)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func (s *Server) listOrders(c *gin.Context) {
	orders, err := s.Orders.ListOrders(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, orders)
}

type itemQuantityRequest struct {
	Quantity int `json:"quantity"`
}

func (s *Server) updateItemQuantity(c *gin.Context) {
	itemID, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req itemQuantityRequest
	if !bindJSON(c, &req) {
		return
	}
	if err := s.Orders.UpdateItemQuantity(c.Request.Context(), itemID, req.Quantity); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": itemID, "quantity": req.Quantity})
}

func (s *Server) deleteItem(c *gin.Context) {
	itemID, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := s.Orders.DeleteItem(c.Request.Context(), itemID); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

type stateRequest struct {
	State string `json:"state"`
}

// @Summary Move every item of a product in an order to the next state
// @Tags orders
// @Accept json
// @Param id path int true "Order id"
// @Param product_name path string true "Product name"
// @Param state body stateRequest false "Target state, delivered when omitted"
// @Success 200 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /api/orders/{id}/{product_name} [put]
func (s *Server) advanceProduct(c *gin.Context) {
	orderID, ok := pathID(c, "id")
	if !ok {
		return
	}

	req := stateRequest{State: string(order.StateDelivered)}
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		writeError(c, errBadRequest)
		return
	}
	to, err := order.ParseState(req.State)
	if err != nil {
		writeError(c, err)
		return
	}

	if err := s.Orders.AdvanceByProduct(c.Request.Context(), orderID, c.Param("product_name"), to); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"state": to})
}

// @Summary Mark the farmer's booked items as shipped to the shop
// @Tags orders
// @Accept json
// @Param products body []int64 true "Product ids"
// @Success 200 {object} map[string]int
// @Router /api/orders/farmershipped [post]
func (s *Server) markFarmerShipped(c *gin.Context) {
	providerID, ok := sessionProvider(c)
	if !ok {
		return
	}
	var productIDs []int64
	if !bindJSON(c, &productIDs) {
		return
	}
	n, err := s.Orders.MarkFarmerShipped(c.Request.Context(), providerID, productIDs)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"updated": n})
}

type itemStateRequest struct {
	ID    int64  `json:"id"`
	State string `json:"state"`
}

func (s *Server) modifyState(c *gin.Context) {
	var req itemStateRequest
	if !bindJSON(c, &req) {
		return
	}
	to, err := order.ParseState(req.State)
	if err != nil {
		writeError(c, err)
		return
	}
	if err := s.Orders.AdvanceItem(c.Request.Context(), req.ID, to); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": req.ID, "state": to})
}

// productStateRequest serves both the warehouse (product_name) and delivery (product) bodies.
type productStateRequest struct {
	ID          int64  `json:"id"`
	ProductName string `json:"product_name"`
	Product     string `json:"product"`
	State       string `json:"state"`
}

func (s *Server) modifyStateByProduct(c *gin.Context) {
	var req productStateRequest
	if !bindJSON(c, &req) {
		return
	}
	name := req.ProductName
	if name == "" {
		name = req.Product
	}
	if req.ID <= 0 || name == "" {
		writeError(c, errBadRequest)
		return
	}
	to, err := order.ParseState(req.State)
	if err != nil {
		writeError(c, err)
		return
	}
	if err := s.Orders.AdvanceByProduct(c.Request.Context(), req.ID, name, to); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": req.ID, "product_name": name, "state": to})
}

func (s *Server) pickupOrders(c *gin.Context) {
	orders, err := s.Orders.PickupOrders(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, orders)
}
