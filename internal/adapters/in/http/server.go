// Package http exposes the marketplace over a REST API. It translates echo
// requests into commands and queries and maps domain errors onto HTTP status
// codes.
package http

import (
	"errors"
	"net/http"

	"taza/internal/core/application/usecases/commands"
	"taza/internal/core/application/usecases/queries"
	"taza/internal/core/domain/model/delivery"
	"taza/internal/core/domain/model/kernel"
	"taza/internal/core/domain/model/order"
	"taza/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server implements the REST API for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler      commands.CreateOrderCommandHandler
	updatePriceHandler      commands.UpdateOrderPriceCommandHandler
	placeOfferHandler       commands.PlaceOfferCommandHandler
	acceptOfferHandler      commands.AcceptOfferCommandHandler
	startWorkHandler        commands.StartPartnerWorkCommandHandler
	finishWorkHandler       commands.FinishPartnerWorkCommandHandler
	completeOrderHandler    commands.CompleteOrderCommandHandler
	cancelOrderHandler      commands.CancelOrderCommandHandler
	acceptDeliveryHandler   commands.AcceptDeliveryCommandHandler
	pickUpDeliveryHandler   commands.PickUpDeliveryCommandHandler
	startTransitHandler     commands.StartDeliveryTransitCommandHandler
	completeDeliveryHandler commands.CompleteDeliveryCommandHandler

	// Query handlers
	getOpenOrdersHandler       queries.GetOpenOrdersQueryHandler
	getOrderOffersHandler      queries.GetOrderOffersQueryHandler
	getActiveDeliveriesHandler queries.GetActiveDeliveriesQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	updatePriceHandler commands.UpdateOrderPriceCommandHandler,
	placeOfferHandler commands.PlaceOfferCommandHandler,
	acceptOfferHandler commands.AcceptOfferCommandHandler,
	startWorkHandler commands.StartPartnerWorkCommandHandler,
	finishWorkHandler commands.FinishPartnerWorkCommandHandler,
	completeOrderHandler commands.CompleteOrderCommandHandler,
	cancelOrderHandler commands.CancelOrderCommandHandler,
	acceptDeliveryHandler commands.AcceptDeliveryCommandHandler,
	pickUpDeliveryHandler commands.PickUpDeliveryCommandHandler,
	startTransitHandler commands.StartDeliveryTransitCommandHandler,
	completeDeliveryHandler commands.CompleteDeliveryCommandHandler,
	getOpenOrdersHandler queries.GetOpenOrdersQueryHandler,
	getOrderOffersHandler queries.GetOrderOffersQueryHandler,
	getActiveDeliveriesHandler queries.GetActiveDeliveriesQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:         createOrderHandler,
		updatePriceHandler:         updatePriceHandler,
		placeOfferHandler:          placeOfferHandler,
		acceptOfferHandler:         acceptOfferHandler,
		startWorkHandler:           startWorkHandler,
		finishWorkHandler:          finishWorkHandler,
		completeOrderHandler:       completeOrderHandler,
		cancelOrderHandler:         cancelOrderHandler,
		acceptDeliveryHandler:      acceptDeliveryHandler,
		pickUpDeliveryHandler:      pickUpDeliveryHandler,
		startTransitHandler:        startTransitHandler,
		completeDeliveryHandler:    completeDeliveryHandler,
		getOpenOrdersHandler:       getOpenOrdersHandler,
		getOrderOffersHandler:      getOrderOffersHandler,
		getActiveDeliveriesHandler: getActiveDeliveriesHandler,
	}
}

// RegisterRoutes mounts every marketplace endpoint on the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/orders", s.CreateOrder)
	api.GET("/orders/open", s.GetOpenOrders)
	api.PUT("/orders/:id/price", s.UpdateOrderPrice)
	api.POST("/orders/:id/offers", s.PlaceOffer)
	api.GET("/orders/:id/offers", s.GetOrderOffers)
	api.POST("/orders/:id/accept-offer", s.AcceptOffer)
	api.POST("/orders/:id/work/start", s.StartPartnerWork)
	api.POST("/orders/:id/work/finish", s.FinishPartnerWork)
	api.POST("/orders/:id/complete", s.CompleteOrder)
	api.POST("/orders/:id/cancel", s.CancelOrder)

	api.GET("/deliveries/active", s.GetActiveDeliveries)
	api.POST("/deliveries/:id/accept", s.AcceptDelivery)
	api.POST("/deliveries/:id/pick-up", s.PickUpDelivery)
	api.POST("/deliveries/:id/start-transit", s.StartDeliveryTransit)
	api.POST("/deliveries/:id/complete", s.CompleteDelivery)
}

// CreateOrder handles POST /api/v1/orders - publishes a new order.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var body createOrderRequest
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	clientID, err := kernel.UUIDFromString(body.ClientID)
	if err != nil {
		return badRequest(ctx, "Invalid client id: "+err.Error())
	}

	category, err := order.CategoryFromString(body.Category)
	if err != nil {
		return badRequest(ctx, "Invalid category: "+err.Error())
	}

	priceOffer, err := kernel.NewPrice(body.PriceOffer)
	if err != nil {
		return badRequest(ctx, "Invalid price offer: "+err.Error())
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(orderID, clientID, category, priceOffer)
	if err != nil {
		return badRequest(ctx, "Invalid order data: "+err.Error())
	}

	if handleErr := s.createOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return domainError(ctx, handleErr)
	}

	return ctx.JSON(http.StatusCreated, createdResponse{ID: orderID.String()})
}

// GetOpenOrders handles GET /api/v1/orders/open - lists orders still
// collecting offers.
func (s *Server) GetOpenOrders(ctx echo.Context) error {
	query := queries.NewGetOpenOrdersQuery()

	orders, err := s.getOpenOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return domainError(ctx, err)
	}

	response := make([]openOrderResponse, len(orders))
	for i, o := range orders {
		response[i] = openOrderResponse{
			ID:           o.ID.String(),
			ClientID:     o.ClientID.String(),
			Category:     o.Category,
			PriceOffer:   o.PriceOffer,
			Status:       o.Status,
			TazaIndex:    o.TazaIndex,
			Band:         o.Band,
			ProtectionOn: o.ProtectionOn,
			CreatedAt:    o.CreatedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// UpdateOrderPrice handles PUT /api/v1/orders/:id/price - changes the price
// offer before a cleaner is chosen.
func (s *Server) UpdateOrderPrice(ctx echo.Context) error {
	orderID, err := pathUUID(ctx, "id")
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}

	var body updatePriceRequest
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	priceOffer, err := kernel.NewPrice(body.PriceOffer)
	if err != nil {
		return badRequest(ctx, "Invalid price offer: "+err.Error())
	}

	cmd, err := commands.NewUpdateOrderPriceCommand(orderID, priceOffer)
	if err != nil {
		return badRequest(ctx, "Invalid price data: "+err.Error())
	}

	if handleErr := s.updatePriceHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return domainError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// PlaceOffer handles POST /api/v1/orders/:id/offers - a cleaner or partner
// bids on an order.
func (s *Server) PlaceOffer(ctx echo.Context) error {
	orderID, err := pathUUID(ctx, "id")
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}

	var body placeOfferRequest
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cleanerID, err := kernel.UUIDFromString(body.CleanerID)
	if err != nil {
		return badRequest(ctx, "Invalid cleaner id: "+err.Error())
	}

	var partnerID *kernel.UUID
	if body.PartnerID != "" {
		pID, partnerErr := kernel.UUIDFromString(body.PartnerID)
		if partnerErr != nil {
			return badRequest(ctx, "Invalid partner id: "+partnerErr.Error())
		}
		partnerID = &pID
	}

	proposedPrice, err := kernel.NewPrice(body.ProposedPrice)
	if err != nil {
		return badRequest(ctx, "Invalid proposed price: "+err.Error())
	}

	offerID := kernel.NewUUID()
	cmd, err := commands.NewPlaceOfferCommand(
		offerID, orderID, cleanerID, partnerID, proposedPrice, body.Comment, body.Eta)
	if err != nil {
		return badRequest(ctx, "Invalid offer data: "+err.Error())
	}

	if handleErr := s.placeOfferHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return domainError(ctx, handleErr)
	}

	return ctx.JSON(http.StatusCreated, createdResponse{ID: offerID.String()})
}

// GetOrderOffers handles GET /api/v1/orders/:id/offers - lists the bids on
// an order with their fairness bands, flagging the recommended one.
func (s *Server) GetOrderOffers(ctx echo.Context) error {
	orderID, err := pathUUID(ctx, "id")
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}

	query, err := queries.NewGetOrderOffersQuery(orderID)
	if err != nil {
		return badRequest(ctx, "Invalid query: "+err.Error())
	}

	offers, err := s.getOrderOffersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return domainError(ctx, err)
	}

	response := make([]orderOfferResponse, len(offers))
	for i, o := range offers {
		var partnerID string
		if o.PartnerID != nil {
			partnerID = o.PartnerID.String()
		}

		response[i] = orderOfferResponse{
			ID:            o.ID.String(),
			CleanerID:     o.CleanerID.String(),
			PartnerID:     partnerID,
			ProposedPrice: o.ProposedPrice,
			Comment:       o.Comment,
			Eta:           o.Eta,
			Status:        o.Status,
			Band:          o.Band,
			BandLabel:     o.BandLabel,
			Recommended:   o.Recommended,
			CreatedAt:     o.CreatedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// AcceptOffer handles POST /api/v1/orders/:id/accept-offer - the client
// chooses one bid.
func (s *Server) AcceptOffer(ctx echo.Context) error {
	orderID, err := pathUUID(ctx, "id")
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}

	var body acceptOfferRequest
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	offerID, err := kernel.UUIDFromString(body.OfferID)
	if err != nil {
		return badRequest(ctx, "Invalid offer id: "+err.Error())
	}

	cmd, err := commands.NewAcceptOfferCommand(orderID, offerID)
	if err != nil {
		return badRequest(ctx, "Invalid accept data: "+err.Error())
	}

	if handleErr := s.acceptOfferHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return domainError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// StartPartnerWork handles POST /api/v1/orders/:id/work/start.
func (s *Server) StartPartnerWork(ctx echo.Context) error {
	orderID, err := pathUUID(ctx, "id")
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}

	cmd, err := commands.NewStartPartnerWorkCommand(orderID)
	if err != nil {
		return badRequest(ctx, "Invalid command: "+err.Error())
	}

	if handleErr := s.startWorkHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return domainError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// FinishPartnerWork handles POST /api/v1/orders/:id/work/finish.
func (s *Server) FinishPartnerWork(ctx echo.Context) error {
	orderID, err := pathUUID(ctx, "id")
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}

	cmd, err := commands.NewFinishPartnerWorkCommand(orderID)
	if err != nil {
		return badRequest(ctx, "Invalid command: "+err.Error())
	}

	if handleErr := s.finishWorkHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return domainError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CompleteOrder handles POST /api/v1/orders/:id/complete - the client
// confirms a direct-flow order is done.
func (s *Server) CompleteOrder(ctx echo.Context) error {
	orderID, err := pathUUID(ctx, "id")
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}

	cmd, err := commands.NewCompleteOrderCommand(orderID)
	if err != nil {
		return badRequest(ctx, "Invalid command: "+err.Error())
	}

	if handleErr := s.completeOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return domainError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CancelOrder handles POST /api/v1/orders/:id/cancel.
func (s *Server) CancelOrder(ctx echo.Context) error {
	orderID, err := pathUUID(ctx, "id")
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}

	var body cancelOrderRequest
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	actor, err := order.ActorFromString(body.Actor)
	if err != nil {
		return badRequest(ctx, "Invalid actor: "+err.Error())
	}

	cmd, err := commands.NewCancelOrderCommand(orderID, actor)
	if err != nil {
		return badRequest(ctx, "Invalid cancel data: "+err.Error())
	}

	if handleErr := s.cancelOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return domainError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetActiveDeliveries handles GET /api/v1/deliveries/active - the courier
// dispatch board.
func (s *Server) GetActiveDeliveries(ctx echo.Context) error {
	query := queries.NewGetActiveDeliveriesQuery()

	legs, err := s.getActiveDeliveriesHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return domainError(ctx, err)
	}

	response := make([]activeDeliveryResponse, len(legs))
	for i, leg := range legs {
		var courierID string
		if leg.CourierID != nil {
			courierID = leg.CourierID.String()
		}

		response[i] = activeDeliveryResponse{
			ID:        leg.ID.String(),
			OrderID:   leg.OrderID.String(),
			Kind:      leg.Kind,
			CourierID: courierID,
			Status:    leg.Status,
			CreatedAt: leg.CreatedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// AcceptDelivery handles POST /api/v1/deliveries/:id/accept - a courier takes
// an unassigned leg.
func (s *Server) AcceptDelivery(ctx echo.Context) error {
	deliveryID, err := pathUUID(ctx, "id")
	if err != nil {
		return badRequest(ctx, "Invalid delivery id: "+err.Error())
	}

	var body acceptDeliveryRequest
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	courierID, err := kernel.UUIDFromString(body.CourierID)
	if err != nil {
		return badRequest(ctx, "Invalid courier id: "+err.Error())
	}

	cmd, err := commands.NewAcceptDeliveryCommand(deliveryID, courierID)
	if err != nil {
		return badRequest(ctx, "Invalid accept data: "+err.Error())
	}

	if handleErr := s.acceptDeliveryHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return domainError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// PickUpDelivery handles POST /api/v1/deliveries/:id/pick-up.
func (s *Server) PickUpDelivery(ctx echo.Context) error {
	deliveryID, err := pathUUID(ctx, "id")
	if err != nil {
		return badRequest(ctx, "Invalid delivery id: "+err.Error())
	}

	cmd, err := commands.NewPickUpDeliveryCommand(deliveryID)
	if err != nil {
		return badRequest(ctx, "Invalid command: "+err.Error())
	}

	if handleErr := s.pickUpDeliveryHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return domainError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// StartDeliveryTransit handles POST /api/v1/deliveries/:id/start-transit.
func (s *Server) StartDeliveryTransit(ctx echo.Context) error {
	deliveryID, err := pathUUID(ctx, "id")
	if err != nil {
		return badRequest(ctx, "Invalid delivery id: "+err.Error())
	}

	cmd, err := commands.NewStartDeliveryTransitCommand(deliveryID)
	if err != nil {
		return badRequest(ctx, "Invalid command: "+err.Error())
	}

	if handleErr := s.startTransitHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return domainError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CompleteDelivery handles POST /api/v1/deliveries/:id/complete - the courier
// marks the leg delivered; the order advances accordingly.
func (s *Server) CompleteDelivery(ctx echo.Context) error {
	deliveryID, err := pathUUID(ctx, "id")
	if err != nil {
		return badRequest(ctx, "Invalid delivery id: "+err.Error())
	}

	cmd, err := commands.NewCompleteDeliveryCommand(deliveryID)
	if err != nil {
		return badRequest(ctx, "Invalid command: "+err.Error())
	}

	if handleErr := s.completeDeliveryHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return domainError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

func pathUUID(ctx echo.Context, name string) (kernel.UUID, error) {
	return kernel.UUIDFromString(ctx.Param(name))
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, errorResponse{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

// domainError maps domain failures onto HTTP status codes: missing aggregates
// become 404, rejected input 400, illegal lifecycle moves 409.
func domainError(ctx echo.Context, err error) error {
	var status int
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		status = http.StatusNotFound
	case errors.Is(err, errs.ErrInvalidTransition),
		errors.Is(err, order.ErrCleanerAlreadyChosen),
		errors.Is(err, delivery.ErrCourierAlreadyAssigned):
		status = http.StatusConflict
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		status = http.StatusBadRequest
	default:
		status = http.StatusInternalServerError
	}

	return ctx.JSON(status, errorResponse{
		Code:    status,
		Message: err.Error(),
	})
}
