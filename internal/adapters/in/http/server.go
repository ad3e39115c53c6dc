// Package http exposes the marketplace over a REST API.
// It coordinates between HTTP handlers and application use cases.
package http

import (
	"net/http"
	"strconv"

	"grocery/internal/core/application/usecases/commands"
	"grocery/internal/core/application/usecases/queries"
	"grocery/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

// Server routes HTTP requests to command and query handlers.
type Server struct {
	// Command handlers
	addBasketItemHandler  commands.AddBasketItemCommandHandler
	updateQuantityHandler commands.UpdateBasketItemQuantityCommandHandler
	removeItemHandler     commands.RemoveBasketItemCommandHandler
	clearBasketHandler    commands.ClearBasketCommandHandler
	estimateHandler       commands.EstimateDeliveryCommandHandler
	placeOrderHandler     commands.PlaceOrderCommandHandler
	confirmHandler        commands.ConfirmDeliveryCommandHandler
	approvePaymentHandler commands.ApproveRiderPaymentCommandHandler

	// Query handlers
	getBasketHandler       queries.GetBasketQueryHandler
	trackOrderHandler      queries.TrackOrderQueryHandler
	getActiveOrdersHandler queries.GetActiveOrdersQueryHandler
	getVendorsHandler      queries.GetVendorsQueryHandler
	getProductsHandler     queries.GetVendorProductsQueryHandler
	getPaymentsHandler     queries.GetRiderPaymentsQueryHandler
}

// NewServer creates an HTTP server with the required command and query handlers.
func NewServer(
	addBasketItemHandler commands.AddBasketItemCommandHandler,
	updateQuantityHandler commands.UpdateBasketItemQuantityCommandHandler,
	removeItemHandler commands.RemoveBasketItemCommandHandler,
	clearBasketHandler commands.ClearBasketCommandHandler,
	estimateHandler commands.EstimateDeliveryCommandHandler,
	placeOrderHandler commands.PlaceOrderCommandHandler,
	confirmHandler commands.ConfirmDeliveryCommandHandler,
	approvePaymentHandler commands.ApproveRiderPaymentCommandHandler,
	getBasketHandler queries.GetBasketQueryHandler,
	trackOrderHandler queries.TrackOrderQueryHandler,
	getActiveOrdersHandler queries.GetActiveOrdersQueryHandler,
	getVendorsHandler queries.GetVendorsQueryHandler,
	getProductsHandler queries.GetVendorProductsQueryHandler,
	getPaymentsHandler queries.GetRiderPaymentsQueryHandler,
) *Server {
	return &Server{
		addBasketItemHandler:   addBasketItemHandler,
		updateQuantityHandler:  updateQuantityHandler,
		removeItemHandler:      removeItemHandler,
		clearBasketHandler:     clearBasketHandler,
		estimateHandler:        estimateHandler,
		placeOrderHandler:      placeOrderHandler,
		confirmHandler:         confirmHandler,
		approvePaymentHandler:  approvePaymentHandler,
		getBasketHandler:       getBasketHandler,
		trackOrderHandler:      trackOrderHandler,
		getActiveOrdersHandler: getActiveOrdersHandler,
		getVendorsHandler:      getVendorsHandler,
		getProductsHandler:     getProductsHandler,
		getPaymentsHandler:     getPaymentsHandler,
	}
}

// RegisterRoutes binds every endpoint onto the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)

	api := e.Group("/api/v1")

	api.GET("/vendors", s.GetVendors)
	api.GET("/vendors/:vendorId/products", s.GetVendorProducts)

	api.GET("/baskets/:basketId", s.GetBasket)
	api.POST("/baskets/:basketId/items", s.AddBasketItem)
	api.PATCH("/baskets/:basketId/items/:productId", s.UpdateBasketItemQuantity)
	api.DELETE("/baskets/:basketId/items/:productId", s.RemoveBasketItem)
	api.DELETE("/baskets/:basketId", s.ClearBasket)
	api.POST("/baskets/:basketId/estimate", s.EstimateDelivery)
	api.POST("/baskets/:basketId/checkout", s.PlaceOrder)

	api.GET("/orders/active", s.GetActiveOrders)
	api.GET("/orders/:orderNumber", s.TrackOrder)
	api.POST("/orders/:orderNumber/confirm-delivery", s.ConfirmDelivery)

	api.GET("/rider-payments", s.GetRiderPayments)
	api.POST("/rider-payments/:paymentId/approve", s.ApproveRiderPayment)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// GetVendors handles GET /api/v1/vendors.
func (s *Server) GetVendors(ctx echo.Context) error {
	vendors, err := s.getVendorsHandler.Handle(ctx.Request().Context(), queries.NewGetVendorsQuery())
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, vendors)
}

// GetVendorProducts handles GET /api/v1/vendors/:vendorId/products.
func (s *Server) GetVendorProducts(ctx echo.Context) error {
	vendorID, err := kernel.UUIDFromString(ctx.Param("vendorId"))
	if err != nil {
		return badRequest(ctx, "invalid vendor id")
	}

	query, err := queries.NewGetVendorProductsQuery(vendorID)
	if err != nil {
		return respondError(ctx, err)
	}

	products, err := s.getProductsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, products)
}

// GetBasket handles GET /api/v1/baskets/:basketId.
func (s *Server) GetBasket(ctx echo.Context) error {
	basketID, err := kernel.UUIDFromString(ctx.Param("basketId"))
	if err != nil {
		return badRequest(ctx, "invalid basket id")
	}

	query, err := queries.NewGetBasketQuery(basketID)
	if err != nil {
		return respondError(ctx, err)
	}

	response, err := s.getBasketHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, response)
}

// AddBasketItemRequest is the body of POST /api/v1/baskets/:basketId/items.
// ReplaceOnConflict is the customer's confirmation that a basket holding items
// from another supermarket may be discarded.
type AddBasketItemRequest struct {
	ProductID         string `json:"productId"`
	Quantity          int    `json:"quantity"`
	ReplaceOnConflict bool   `json:"replaceOnConflict"`
}

// AddBasketItem handles POST /api/v1/baskets/:basketId/items.
func (s *Server) AddBasketItem(ctx echo.Context) error {
	basketID, err := kernel.UUIDFromString(ctx.Param("basketId"))
	if err != nil {
		return badRequest(ctx, "invalid basket id")
	}

	var req AddBasketItemRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	productID, err := kernel.UUIDFromString(req.ProductID)
	if err != nil {
		return badRequest(ctx, "invalid product id")
	}

	cmd, err := commands.NewAddBasketItemCommand(basketID, productID, req.Quantity, req.ReplaceOnConflict)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.addBasketItemHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// UpdateBasketItemQuantityRequest is the body of PATCH /api/v1/baskets/:basketId/items/:productId.
type UpdateBasketItemQuantityRequest struct {
	Quantity int `json:"quantity"`
}

// UpdateBasketItemQuantity handles PATCH /api/v1/baskets/:basketId/items/:productId.
// A quantity of zero or below removes the line.
func (s *Server) UpdateBasketItemQuantity(ctx echo.Context) error {
	basketID, err := kernel.UUIDFromString(ctx.Param("basketId"))
	if err != nil {
		return badRequest(ctx, "invalid basket id")
	}

	productID, err := kernel.UUIDFromString(ctx.Param("productId"))
	if err != nil {
		return badRequest(ctx, "invalid product id")
	}

	var req UpdateBasketItemQuantityRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewUpdateBasketItemQuantityCommand(basketID, productID, req.Quantity)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.updateQuantityHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RemoveBasketItem handles DELETE /api/v1/baskets/:basketId/items/:productId.
func (s *Server) RemoveBasketItem(ctx echo.Context) error {
	basketID, err := kernel.UUIDFromString(ctx.Param("basketId"))
	if err != nil {
		return badRequest(ctx, "invalid basket id")
	}

	productID, err := kernel.UUIDFromString(ctx.Param("productId"))
	if err != nil {
		return badRequest(ctx, "invalid product id")
	}

	cmd, err := commands.NewRemoveBasketItemCommand(basketID, productID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.removeItemHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ClearBasket handles DELETE /api/v1/baskets/:basketId.
func (s *Server) ClearBasket(ctx echo.Context) error {
	basketID, err := kernel.UUIDFromString(ctx.Param("basketId"))
	if err != nil {
		return badRequest(ctx, "invalid basket id")
	}

	cmd, err := commands.NewClearBasketCommand(basketID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.clearBasketHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// EstimateDeliveryRequest is the body of POST /api/v1/baskets/:basketId/estimate.
type EstimateDeliveryRequest struct {
	Address string `json:"address"`
}

// EstimateDelivery handles POST /api/v1/baskets/:basketId/estimate.
// The quote is priced server-side and attached to the basket.
func (s *Server) EstimateDelivery(ctx echo.Context) error {
	basketID, err := kernel.UUIDFromString(ctx.Param("basketId"))
	if err != nil {
		return badRequest(ctx, "invalid basket id")
	}

	var req EstimateDeliveryRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewEstimateDeliveryCommand(basketID, req.Address)
	if err != nil {
		return respondError(ctx, err)
	}

	quote, err := s.estimateHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, queries.DeliveryQuoteResponse{
		Address:          quote.Address(),
		DistanceKm:       quote.DistanceKm(),
		CostCents:        quote.Cost().Cents(),
		EstimatedMinutes: quote.EstimatedMinutes(),
	})
}

// PlaceOrderRequest is the body of POST /api/v1/baskets/:basketId/checkout.
// Card details are validated for shape only; this prototype never charges them.
type PlaceOrderRequest struct {
	CardHolder string `json:"cardHolder"`
	CardNumber string `json:"cardNumber"`
	CardExpiry string `json:"cardExpiry"`
	CardCVV    string `json:"cardCvv"`
}

// PlaceOrderResponse carries the number the customer tracks the order by.
type PlaceOrderResponse struct {
	OrderNumber string `json:"orderNumber"`
}

// PlaceOrder handles POST /api/v1/baskets/:basketId/checkout.
func (s *Server) PlaceOrder(ctx echo.Context) error {
	basketID, err := kernel.UUIDFromString(ctx.Param("basketId"))
	if err != nil {
		return badRequest(ctx, "invalid basket id")
	}

	var req PlaceOrderRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewPlaceOrderCommand(basketID, req.CardHolder, req.CardNumber, req.CardExpiry, req.CardCVV)
	if err != nil {
		return respondError(ctx, err)
	}

	number, err := s.placeOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, PlaceOrderResponse{OrderNumber: number.String()})
}

// GetActiveOrders handles GET /api/v1/orders/active.
func (s *Server) GetActiveOrders(ctx echo.Context) error {
	orders, err := s.getActiveOrdersHandler.Handle(ctx.Request().Context(), queries.NewGetActiveOrdersQuery())
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orders)
}

// TrackOrder handles GET /api/v1/orders/:orderNumber.
func (s *Server) TrackOrder(ctx echo.Context) error {
	number, err := parseOrderNumber(ctx.Param("orderNumber"))
	if err != nil {
		return badRequest(ctx, "invalid order number")
	}

	query, err := queries.NewTrackOrderQuery(number)
	if err != nil {
		return respondError(ctx, err)
	}

	response, err := s.trackOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, response)
}

// ConfirmDelivery handles POST /api/v1/orders/:orderNumber/confirm-delivery.
// The operation is idempotent: repeating a confirmation succeeds without
// creating another payment.
func (s *Server) ConfirmDelivery(ctx echo.Context) error {
	number, err := parseOrderNumber(ctx.Param("orderNumber"))
	if err != nil {
		return badRequest(ctx, "invalid order number")
	}

	cmd, err := commands.NewConfirmDeliveryCommand(number)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.confirmHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetRiderPayments handles GET /api/v1/rider-payments.
func (s *Server) GetRiderPayments(ctx echo.Context) error {
	payments, err := s.getPaymentsHandler.Handle(ctx.Request().Context(), queries.NewGetRiderPaymentsQuery())
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, payments)
}

// ApproveRiderPayment handles POST /api/v1/rider-payments/:paymentId/approve.
func (s *Server) ApproveRiderPayment(ctx echo.Context) error {
	paymentID, err := kernel.UUIDFromString(ctx.Param("paymentId"))
	if err != nil {
		return badRequest(ctx, "invalid payment id")
	}

	cmd, err := commands.NewApproveRiderPaymentCommand(paymentID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.approvePaymentHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

func parseOrderNumber(raw string) (kernel.OrderNumber, error) {
	value, err := strconv.Atoi(raw)
	if err != nil {
		return kernel.OrderNumber{}, err
	}

	return kernel.NewOrderNumber(value)
}
