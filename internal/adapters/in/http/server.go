// Package http exposes the application use cases over a REST API.
// Handlers translate between the wire format and commands/queries; all
// business rules live in the application and domain layers.
package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"pickuphub/internal/core/application/usecases/commands"
	"pickuphub/internal/core/application/usecases/queries"
	"pickuphub/internal/core/domain/model/kernel"
	"pickuphub/internal/core/domain/model/order"
	"pickuphub/internal/pkg/errs"
)

// actorHeader carries the identity recorded in audit events. Requests
// without it are attributed to the API itself.
const (
	actorHeader  = "X-Actor"
	defaultActor = "api"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	registerOrderHandler     commands.RegisterOrderCommandHandler
	markOrderReadyHandler    commands.MarkOrderReadyCommandHandler
	confirmPickupHandler     commands.ConfirmPickupCommandHandler
	assignPositionHandler    commands.AssignPositionCommandHandler
	addPositionHandler       commands.AddPositionCommandHandler
	authenticateStaffHandler commands.AuthenticateStaffCommandHandler

	// Query handlers
	searchOrdersHandler         queries.SearchOrdersQueryHandler
	getOrderByIDHandler         queries.GetOrderByIDQueryHandler
	getOrderByCodeHandler       queries.GetOrderByCodeQueryHandler
	findOrdersByPhoneHandler    queries.FindOrdersByPhoneQueryHandler
	countOrdersByStatusHandler  queries.CountOrdersByStatusQueryHandler
	listFreePositionsHandler    queries.ListFreePositionsQueryHandler
	suggestPositionQueryHandler queries.SuggestPositionQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	registerOrderHandler commands.RegisterOrderCommandHandler,
	markOrderReadyHandler commands.MarkOrderReadyCommandHandler,
	confirmPickupHandler commands.ConfirmPickupCommandHandler,
	assignPositionHandler commands.AssignPositionCommandHandler,
	addPositionHandler commands.AddPositionCommandHandler,
	authenticateStaffHandler commands.AuthenticateStaffCommandHandler,
	searchOrdersHandler queries.SearchOrdersQueryHandler,
	getOrderByIDHandler queries.GetOrderByIDQueryHandler,
	getOrderByCodeHandler queries.GetOrderByCodeQueryHandler,
	findOrdersByPhoneHandler queries.FindOrdersByPhoneQueryHandler,
	countOrdersByStatusHandler queries.CountOrdersByStatusQueryHandler,
	listFreePositionsHandler queries.ListFreePositionsQueryHandler,
	suggestPositionQueryHandler queries.SuggestPositionQueryHandler,
) *Server {
	return &Server{
		registerOrderHandler:        registerOrderHandler,
		markOrderReadyHandler:       markOrderReadyHandler,
		confirmPickupHandler:        confirmPickupHandler,
		assignPositionHandler:       assignPositionHandler,
		addPositionHandler:          addPositionHandler,
		authenticateStaffHandler:    authenticateStaffHandler,
		searchOrdersHandler:         searchOrdersHandler,
		getOrderByIDHandler:         getOrderByIDHandler,
		getOrderByCodeHandler:       getOrderByCodeHandler,
		findOrdersByPhoneHandler:    findOrdersByPhoneHandler,
		countOrdersByStatusHandler:  countOrdersByStatusHandler,
		listFreePositionsHandler:    listFreePositionsHandler,
		suggestPositionQueryHandler: suggestPositionQueryHandler,
	}
}

// RegisterRoutes attaches all API routes to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)

	v1 := e.Group("/api/v1")
	v1.POST("/orders", s.RegisterOrder)
	v1.GET("/orders", s.SearchOrders)
	v1.GET("/orders/:id", s.GetOrderByID)
	v1.GET("/orders/code/:code", s.GetOrderByCode)
	v1.GET("/orders/phone/:phone", s.FindOrdersByPhone)
	v1.POST("/orders/:id/ready", s.MarkOrderReady)
	v1.POST("/orders/:id/pickup", s.ConfirmPickup)
	v1.POST("/volumes/:id/position", s.AssignPosition)
	v1.POST("/positions", s.AddPosition)
	v1.GET("/positions/free", s.ListFreePositions)
	v1.GET("/positions/suggestion", s.SuggestPosition)
	v1.GET("/stats/orders", s.CountOrdersByStatus)
	v1.POST("/auth/login", s.Login)
}

// ErrorResponse is the wire representation of a request failure.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// respondError maps application errors to HTTP status codes: validation
// failures become 400, unknown objects 404, rejected logins 401, anything
// else 500.
func respondError(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return ctx.JSON(http.StatusNotFound, ErrorResponse{
			Code:    http.StatusNotFound,
			Message: err.Error(),
		})
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		})
	case errors.Is(err, commands.ErrInvalidCredentials):
		return ctx.JSON(http.StatusUnauthorized, ErrorResponse{
			Code:    http.StatusUnauthorized,
			Message: err.Error(),
		})
	default:
		return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
			Code:    http.StatusInternalServerError,
			Message: "internal error",
		})
	}
}

func actor(ctx echo.Context) string {
	if value := ctx.Request().Header.Get(actorHeader); value != "" {
		return value
	}
	return defaultActor
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// VolumeRequest is one volume in an order registration request.
type VolumeRequest struct {
	Label      string   `json:"label"`
	Weight     *float64 `json:"weight,omitempty"`
	Dimensions string   `json:"dimensions,omitempty"`
}

// RegisterOrderRequest is the body of POST /api/v1/orders.
type RegisterOrderRequest struct {
	Code              string          `json:"code,omitempty"`
	Channel           string          `json:"channel,omitempty"`
	RecipientName     string          `json:"recipientName"`
	RecipientDocument string          `json:"recipientDocument"`
	RecipientPhone    string          `json:"recipientPhone"`
	ExternalID        string          `json:"externalId,omitempty"`
	TenantID          *int64          `json:"tenantId,omitempty"`
	Volumes           []VolumeRequest `json:"volumes"`
}

// VolumeResponse is the wire representation of a volume.
type VolumeResponse struct {
	ID         string   `json:"id"`
	Label      string   `json:"label"`
	Weight     *float64 `json:"weight,omitempty"`
	Dimensions string   `json:"dimensions,omitempty"`
	Status     string   `json:"status"`
	PositionID *string  `json:"positionId,omitempty"`
}

// EventResponse is the wire representation of an audit event.
type EventResponse struct {
	ID        string    `json:"id"`
	EventType string    `json:"eventType"`
	Payload   string    `json:"payload"`
	Actor     string    `json:"actor"`
	CreatedAt time.Time `json:"createdAt"`
}

// OrderResponse is the full wire representation of an order.
type OrderResponse struct {
	ID            string           `json:"id"`
	Code          string           `json:"code"`
	Channel       string           `json:"channel"`
	Status        string           `json:"status"`
	RecipientName string           `json:"recipientName"`
	RecipientDoc  string           `json:"recipientDocument"`
	RecipientTel  string           `json:"recipientPhone"`
	ExternalID    string           `json:"externalId,omitempty"`
	TenantID      *int64           `json:"tenantId,omitempty"`
	CreatedAt     time.Time        `json:"createdAt"`
	ReadyAt       *time.Time       `json:"readyAt,omitempty"`
	PickedUpAt    *time.Time       `json:"pickedUpAt,omitempty"`
	Volumes       []VolumeResponse `json:"volumes"`
	Events        []EventResponse  `json:"events"`
}

// RegisterOrder handles POST /api/v1/orders - registers a new pickup order.
func (s *Server) RegisterOrder(ctx echo.Context) error {
	var req RegisterOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	channel := order.ChannelUnknown
	if req.Channel != "" {
		parsed, err := order.ChannelFromString(req.Channel)
		if err != nil {
			return respondError(ctx, err)
		}
		channel = parsed
	}

	volumes := make([]commands.VolumeSpec, 0, len(req.Volumes))
	for _, v := range req.Volumes {
		volumes = append(volumes, commands.VolumeSpec{
			Label:      v.Label,
			Weight:     v.Weight,
			Dimensions: v.Dimensions,
		})
	}

	cmd, err := commands.NewRegisterOrderCommand(
		req.Code,
		channel,
		req.RecipientName,
		req.RecipientDocument,
		req.RecipientPhone,
		req.ExternalID,
		req.TenantID,
		volumes,
		actor(ctx),
	)
	if err != nil {
		return respondError(ctx, err)
	}

	aggregate, err := s.registerOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, orderToResponse(aggregate))
}

// MarkOrderReady handles POST /api/v1/orders/:id/ready.
func (s *Server) MarkOrderReady(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewMarkOrderReadyCommand(orderID, actor(ctx))
	if err != nil {
		return respondError(ctx, err)
	}

	aggregate, err := s.markOrderReadyHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderToResponse(aggregate))
}

// ConfirmPickup handles POST /api/v1/orders/:id/pickup.
func (s *Server) ConfirmPickup(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewConfirmPickupCommand(orderID, actor(ctx))
	if err != nil {
		return respondError(ctx, err)
	}

	aggregate, err := s.confirmPickupHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderToResponse(aggregate))
}

// AssignPositionRequest is the body of POST /api/v1/volumes/:id/position.
// A null positionId clears the volume's current slot.
type AssignPositionRequest struct {
	PositionID *string `json:"positionId"`
}

// AssignPosition handles POST /api/v1/volumes/:id/position.
func (s *Server) AssignPosition(ctx echo.Context) error {
	volumeID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondError(ctx, err)
	}

	var req AssignPositionRequest
	if err = ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	var positionID *kernel.UUID
	if req.PositionID != nil {
		parsed, parseErr := kernel.UUIDFromString(*req.PositionID)
		if parseErr != nil {
			return respondError(ctx, parseErr)
		}
		positionID = &parsed
	}

	cmd, err := commands.NewAssignPositionCommand(volumeID, positionID, actor(ctx))
	if err != nil {
		return respondError(ctx, err)
	}

	aggregate, err := s.assignPositionHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderToResponse(aggregate))
}

// SearchOrders handles GET /api/v1/orders with optional filters: status,
// channel, dateFrom, dateTo (YYYY-MM-DD), recipient.
func (s *Server) SearchOrders(ctx echo.Context) error {
	var status *order.Status
	if raw := ctx.QueryParam("status"); raw != "" {
		parsed, err := order.StatusFromString(raw)
		if err != nil {
			return respondError(ctx, err)
		}
		status = &parsed
	}

	var channel *order.Channel
	if raw := ctx.QueryParam("channel"); raw != "" {
		parsed, err := order.ChannelFromString(raw)
		if err != nil {
			return respondError(ctx, err)
		}
		channel = &parsed
	}

	dateFrom, err := parseDateParam(ctx.QueryParam("dateFrom"))
	if err != nil {
		return respondError(ctx, err)
	}
	dateTo, err := parseDateParam(ctx.QueryParam("dateTo"))
	if err != nil {
		return respondError(ctx, err)
	}

	var recipient *string
	if raw := ctx.QueryParam("recipient"); raw != "" {
		recipient = &raw
	}

	query, err := queries.NewSearchOrdersQuery(status, channel, dateFrom, dateTo, recipient)
	if err != nil {
		return respondError(ctx, err)
	}

	orders, err := s.searchOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]OrderHeaderResponse, 0, len(orders))
	for _, o := range orders {
		response = append(response, OrderHeaderResponse{
			ID:            o.ID.String(),
			Code:          o.Code,
			Channel:       o.Channel,
			Status:        o.Status,
			RecipientName: o.RecipientName,
			CreatedAt:     o.CreatedAt,
		})
	}

	return ctx.JSON(http.StatusOK, response)
}

// OrderHeaderResponse is the wire representation of an order search hit.
type OrderHeaderResponse struct {
	ID            string    `json:"id"`
	Code          string    `json:"code"`
	Channel       string    `json:"channel"`
	Status        string    `json:"status"`
	RecipientName string    `json:"recipientName"`
	CreatedAt     time.Time `json:"createdAt"`
}

// GetOrderByID handles GET /api/v1/orders/:id.
func (s *Server) GetOrderByID(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewGetOrderByIDQuery(orderID)
	if err != nil {
		return respondError(ctx, err)
	}

	view, err := s.getOrderByIDHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderViewToResponse(view))
}

// GetOrderByCode handles GET /api/v1/orders/code/:code.
func (s *Server) GetOrderByCode(ctx echo.Context) error {
	query, err := queries.NewGetOrderByCodeQuery(ctx.Param("code"))
	if err != nil {
		return respondError(ctx, err)
	}

	view, err := s.getOrderByCodeHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderViewToResponse(view))
}

// FindOrdersByPhone handles GET /api/v1/orders/phone/:phone.
func (s *Server) FindOrdersByPhone(ctx echo.Context) error {
	query, err := queries.NewFindOrdersByPhoneQuery(ctx.Param("phone"))
	if err != nil {
		return respondError(ctx, err)
	}

	views, err := s.findOrdersByPhoneHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]OrderResponse, 0, len(views))
	for _, view := range views {
		response = append(response, orderViewToResponse(view))
	}

	return ctx.JSON(http.StatusOK, response)
}

// CountOrdersByStatusResponse is the wire representation of a dashboard
// counter.
type CountOrdersByStatusResponse struct {
	Status  string `json:"status"`
	Channel string `json:"channel,omitempty"`
	Count   int64  `json:"count"`
}

// CountOrdersByStatus handles GET /api/v1/stats/orders?status=&channel=.
func (s *Server) CountOrdersByStatus(ctx echo.Context) error {
	status, err := order.StatusFromString(ctx.QueryParam("status"))
	if err != nil {
		return respondError(ctx, err)
	}

	var channel *order.Channel
	if raw := ctx.QueryParam("channel"); raw != "" {
		parsed, chanErr := order.ChannelFromString(raw)
		if chanErr != nil {
			return respondError(ctx, chanErr)
		}
		channel = &parsed
	}

	query, err := queries.NewCountOrdersByStatusQuery(status, channel)
	if err != nil {
		return respondError(ctx, err)
	}

	count, err := s.countOrdersByStatusHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := CountOrdersByStatusResponse{
		Status: status.String(),
		Count:  count,
	}
	if channel != nil {
		response.Channel = channel.String()
	}

	return ctx.JSON(http.StatusOK, response)
}

// AddPositionRequest is the body of POST /api/v1/positions.
type AddPositionRequest struct {
	Street string `json:"street"`
	Module string `json:"module"`
	Level  string `json:"level"`
	Box    string `json:"box"`
}

// PositionResponse is the wire representation of a storage slot.
type PositionResponse struct {
	ID     string `json:"id"`
	Street string `json:"street"`
	Module string `json:"module"`
	Level  string `json:"level"`
	Box    string `json:"box"`
	Code   string `json:"code"`
}

// AddPosition handles POST /api/v1/positions.
func (s *Server) AddPosition(ctx echo.Context) error {
	var req AddPositionRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	cmd, err := commands.NewAddPositionCommand(req.Street, req.Module, req.Level, req.Box)
	if err != nil {
		return respondError(ctx, err)
	}

	aggregate, err := s.addPositionHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, PositionResponse{
		ID:     aggregate.ID().String(),
		Street: aggregate.Street(),
		Module: aggregate.Module(),
		Level:  aggregate.Level(),
		Box:    aggregate.Box(),
		Code:   aggregate.Code(),
	})
}

// ListFreePositions handles GET /api/v1/positions/free.
func (s *Server) ListFreePositions(ctx echo.Context) error {
	views, err := s.listFreePositionsHandler.Handle(ctx.Request().Context(), queries.NewListFreePositionsQuery())
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]PositionResponse, 0, len(views))
	for _, view := range views {
		response = append(response, positionViewToResponse(view))
	}

	return ctx.JSON(http.StatusOK, response)
}

// SuggestPosition handles GET /api/v1/positions/suggestion.
func (s *Server) SuggestPosition(ctx echo.Context) error {
	view, err := s.suggestPositionQueryHandler.Handle(ctx.Request().Context(), queries.NewSuggestPositionQuery())
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, positionViewToResponse(view))
}

// LoginRequest is the body of POST /api/v1/auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse is returned on a successful login.
type LoginResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// Login handles POST /api/v1/auth/login.
func (s *Server) Login(ctx echo.Context) error {
	var req LoginRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	cmd, err := commands.NewAuthenticateStaffCommand(req.Email, req.Password)
	if err != nil {
		return respondError(ctx, err)
	}

	account, err := s.authenticateStaffHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, LoginResponse{
		ID:    account.ID().String(),
		Name:  account.Name(),
		Email: account.Email(),
		Role:  account.Role().String(),
	})
}

func parseDateParam(raw string) (*time.Time, error) {
	if raw == "" {
		return nil, nil
	}
	parsed, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause("date", err)
	}
	return &parsed, nil
}

func orderToResponse(aggregate *order.Order) OrderResponse {
	volumes := make([]VolumeResponse, 0, len(aggregate.Volumes()))
	for _, v := range aggregate.Volumes() {
		var positionID *string
		if id := v.PositionID(); id != nil {
			value := id.String()
			positionID = &value
		}
		volumes = append(volumes, VolumeResponse{
			ID:         v.ID().String(),
			Label:      v.Label(),
			Weight:     v.Weight(),
			Dimensions: v.Dimensions(),
			Status:     v.Status().String(),
			PositionID: positionID,
		})
	}

	events := make([]EventResponse, 0, len(aggregate.Events()))
	for _, e := range aggregate.Events() {
		events = append(events, EventResponse{
			ID:        e.ID().String(),
			EventType: e.Type().String(),
			Payload:   e.Payload(),
			Actor:     e.Actor(),
			CreatedAt: e.CreatedAt(),
		})
	}

	return OrderResponse{
		ID:            aggregate.ID().String(),
		Code:          aggregate.Code(),
		Channel:       aggregate.Channel().String(),
		Status:        aggregate.Status().String(),
		RecipientName: aggregate.Recipient().Name(),
		RecipientDoc:  aggregate.Recipient().Document(),
		RecipientTel:  aggregate.Recipient().Phone(),
		ExternalID:    aggregate.ExternalID(),
		TenantID:      aggregate.TenantID(),
		CreatedAt:     aggregate.CreatedAt(),
		ReadyAt:       aggregate.ReadyAt(),
		PickedUpAt:    aggregate.PickedUpAt(),
		Volumes:       volumes,
		Events:        events,
	}
}

func orderViewToResponse(view queries.OrderView) OrderResponse {
	volumes := make([]VolumeResponse, 0, len(view.Volumes))
	for _, v := range view.Volumes {
		var positionID *string
		if v.PositionID != nil {
			value := v.PositionID.String()
			positionID = &value
		}
		volumes = append(volumes, VolumeResponse{
			ID:         v.ID.String(),
			Label:      v.Label,
			Weight:     v.Weight,
			Dimensions: v.Dimensions,
			Status:     v.Status,
			PositionID: positionID,
		})
	}

	events := make([]EventResponse, 0, len(view.Events))
	for _, e := range view.Events {
		events = append(events, EventResponse{
			ID:        e.ID.String(),
			EventType: e.EventType,
			Payload:   e.Payload,
			Actor:     e.Actor,
			CreatedAt: e.CreatedAt,
		})
	}

	var externalID string
	if view.ExternalID != nil {
		externalID = *view.ExternalID
	}

	return OrderResponse{
		ID:            view.ID.String(),
		Code:          view.Code,
		Channel:       view.Channel,
		Status:        view.Status,
		RecipientName: view.RecipientName,
		RecipientDoc:  view.RecipientDocument,
		RecipientTel:  view.RecipientPhone,
		ExternalID:    externalID,
		TenantID:      view.TenantID,
		CreatedAt:     view.CreatedAt,
		ReadyAt:       view.ReadyAt,
		PickedUpAt:    view.PickedUpAt,
		Volumes:       volumes,
		Events:        events,
	}
}

func positionViewToResponse(view queries.PositionView) PositionResponse {
	return PositionResponse{
		ID:     view.ID.String(),
		Street: view.Street,
		Module: view.Module,
		Level:  view.Level,
		Box:    view.Box,
		Code:   view.Code(),
	}
}
