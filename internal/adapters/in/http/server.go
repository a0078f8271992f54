package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"serviceordering/internal/core/application/usecases/commands"
	"serviceordering/internal/core/application/usecases/queries"
	"serviceordering/internal/core/domain/model/order"
	"serviceordering/internal/core/domain/services"
	"serviceordering/internal/pkg/errs"
)

const mergePatchMediaType = "application/merge-patch+json"

// Server implements the HTTP endpoints of the service ordering API.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler        commands.CreateOrderCommandHandler
	patchOrderHandler         commands.PatchOrderCommandHandler
	deleteOrderHandler        commands.DeleteOrderCommandHandler
	registerListenerHandler   commands.RegisterListenerCommandHandler
	unregisterListenerHandler commands.UnregisterListenerCommandHandler

	// Query handlers
	getOrderHandler   queries.GetOrderQueryHandler
	listOrdersHandler queries.ListOrdersQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	patchOrderHandler commands.PatchOrderCommandHandler,
	deleteOrderHandler commands.DeleteOrderCommandHandler,
	registerListenerHandler commands.RegisterListenerCommandHandler,
	unregisterListenerHandler commands.UnregisterListenerCommandHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	listOrdersHandler queries.ListOrdersQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:        createOrderHandler,
		patchOrderHandler:         patchOrderHandler,
		deleteOrderHandler:        deleteOrderHandler,
		registerListenerHandler:   registerListenerHandler,
		unregisterListenerHandler: unregisterListenerHandler,
		getOrderHandler:           getOrderHandler,
		listOrdersHandler:         listOrdersHandler,
	}
}

// RegisterRoutes attaches all API routes to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/serviceOrder", s.ListServiceOrders)
	e.GET("/serviceOrder/:id", s.GetServiceOrder)
	e.POST("/serviceOrder", s.CreateServiceOrder)
	e.PATCH("/serviceOrder/:id", s.PatchServiceOrder)
	e.DELETE("/serviceOrder/:id", s.DeleteServiceOrder)
	e.POST("/hub", s.RegisterListener)
	e.DELETE("/hub/:id", s.UnregisterListener)
}

// apiError is the JSON error body rendered for every failed request.
type apiError struct {
	Code    string `json:"code"`
	Reason  string `json:"reason"`
	Message string `json:"message"`
	Status  string `json:"status"`
}

func errorResponse(ctx echo.Context, status int, code, reason, message string) error {
	return ctx.JSON(status, apiError{
		Code:    code,
		Reason:  reason,
		Message: message,
		Status:  strconv.Itoa(status),
	})
}

// renderError maps a core error onto its HTTP-equivalent status code.
func renderError(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return errorResponse(ctx, http.StatusNotFound, "NOT_FOUND", err.Error(),
			"The requested resource does not exist.")
	case errors.Is(err, errs.ErrConflict):
		return errorResponse(ctx, http.StatusConflict, "CONFLICT", err.Error(),
			"The resource identifier already exists.")
	case errors.Is(err, errs.ErrInvalidFilter):
		return errorResponse(ctx, http.StatusBadRequest, "INVALID_FILTER", err.Error(),
			"One or more query filters are unsupported.")
	case errors.Is(err, errs.ErrInvalidFieldSelection):
		return errorResponse(ctx, http.StatusBadRequest, "INVALID_FIELD_SELECTION", err.Error(),
			"The 'fields' selection is unsupported.")
	case errors.Is(err, errs.ErrInvalidRequest):
		return errorResponse(ctx, http.StatusBadRequest, "INVALID_REQUEST", err.Error(),
			"One or more request fields are invalid.")
	default:
		return errorResponse(ctx, http.StatusInternalServerError, "INTERNAL_ERROR",
			"Internal server error", "An unexpected error occurred.")
	}
}

// parseFieldsParam reads the optional 'fields' selection. nil means the
// parameter was absent; a supplied but empty selection is invalid.
func parseFieldsParam(ctx echo.Context) ([]string, error) {
	params := ctx.QueryParams()
	if !params.Has("fields") {
		return nil, nil
	}
	return services.ParseFields(params.Get("fields"))
}

// filterParams collects every query parameter except the reserved 'fields'.
func filterParams(ctx echo.Context) map[string]string {
	filters := make(map[string]string)
	for key, values := range ctx.QueryParams() {
		if key == "fields" || len(values) == 0 {
			continue
		}
		filters[key] = values[0]
	}
	return filters
}

func decodeBody(ctx echo.Context) (order.Document, error) {
	var body map[string]any
	decoder := json.NewDecoder(ctx.Request().Body)
	if err := decoder.Decode(&body); err != nil {
		return nil, errs.NewInvalidRequestErrorWithCause("request body must be a JSON object", err)
	}
	if body == nil {
		return nil, errs.NewInvalidRequestError("request body must be a JSON object")
	}
	return order.Document(body), nil
}

// ListServiceOrders handles GET /serviceOrder.
func (s *Server) ListServiceOrders(ctx echo.Context) error {
	fields, err := parseFieldsParam(ctx)
	if err != nil {
		return renderError(ctx, err)
	}

	query, err := queries.NewListOrdersQuery(filterParams(ctx), fields)
	if err != nil {
		return renderError(ctx, err)
	}

	listed, err := s.listOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return renderError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, listed)
}

// GetServiceOrder handles GET /serviceOrder/:id.
func (s *Server) GetServiceOrder(ctx echo.Context) error {
	fields, err := parseFieldsParam(ctx)
	if err != nil {
		return renderError(ctx, err)
	}

	query, err := queries.NewGetOrderQuery(ctx.Param("id"), fields)
	if err != nil {
		return renderError(ctx, err)
	}

	doc, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return renderError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, doc)
}

// CreateServiceOrder handles POST /serviceOrder.
func (s *Server) CreateServiceOrder(ctx echo.Context) error {
	fields, err := parseFieldsParam(ctx)
	if err != nil {
		return renderError(ctx, err)
	}

	payload, err := decodeBody(ctx)
	if err != nil {
		return renderError(ctx, err)
	}

	cmd, err := commands.NewCreateOrderCommand(payload, fields)
	if err != nil {
		return renderError(ctx, err)
	}

	created, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return renderError(ctx, err)
	}
	return ctx.JSON(http.StatusCreated, created)
}

// PatchServiceOrder handles PATCH /serviceOrder/:id. Only the merge-patch
// media type is accepted; the check runs before the core is invoked.
func (s *Server) PatchServiceOrder(ctx echo.Context) error {
	if err := validatePatchContentType(ctx); err != nil {
		return err
	}

	patch, err := decodeBody(ctx)
	if err != nil {
		return renderError(ctx, err)
	}

	cmd, err := commands.NewPatchOrderCommand(ctx.Param("id"), patch)
	if err != nil {
		return renderError(ctx, err)
	}

	result, err := s.patchOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return renderError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, result)
}

// DeleteServiceOrder handles DELETE /serviceOrder/:id.
func (s *Server) DeleteServiceOrder(ctx echo.Context) error {
	cmd, err := commands.NewDeleteOrderCommand(ctx.Param("id"))
	if err != nil {
		return renderError(ctx, err)
	}

	if err = s.deleteOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return renderError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// hubCreate is the request body for POST /hub.
type hubCreate struct {
	Callback string `json:"callback"`
	Query    string `json:"query"`
}

// hub is the response body for a stored registration.
type hub struct {
	ID       string `json:"id"`
	Callback string `json:"callback"`
	Query    string `json:"query,omitempty"`
}

// RegisterListener handles POST /hub.
func (s *Server) RegisterListener(ctx echo.Context) error {
	var payload hubCreate
	if err := ctx.Bind(&payload); err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "INVALID_REQUEST",
			"Request body is not valid JSON", "One or more request fields are invalid.")
	}

	cmd, err := commands.NewRegisterListenerCommand(payload.Callback, payload.Query)
	if err != nil {
		return renderError(ctx, err)
	}

	result, err := s.registerListenerHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return renderError(ctx, err)
	}

	ctx.Response().Header().Set("Location", result.Location)
	return ctx.JSON(http.StatusCreated, hub{
		ID:       result.Registration.ID,
		Callback: result.Registration.Callback,
		Query:    result.Registration.Query,
	})
}

// UnregisterListener handles DELETE /hub/:id.
func (s *Server) UnregisterListener(ctx echo.Context) error {
	cmd, err := commands.NewUnregisterListenerCommand(ctx.Param("id"))
	if err != nil {
		return renderError(ctx, err)
	}

	if err = s.unregisterListenerHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return renderError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

func validatePatchContentType(ctx echo.Context) error {
	contentType := ctx.Request().Header.Get(echo.HeaderContentType)
	mediaType := strings.ToLower(strings.TrimSpace(strings.SplitN(contentType, ";", 2)[0]))

	switch mediaType {
	case mergePatchMediaType:
		return nil
	case "application/json-patch+json":
		return errorResponse(ctx, http.StatusUnsupportedMediaType, "UNSUPPORTED_MEDIA_TYPE",
			"application/json-patch+json is not enabled; use "+mergePatchMediaType,
			"The request could not be completed.")
	default:
		return errorResponse(ctx, http.StatusUnsupportedMediaType, "UNSUPPORTED_MEDIA_TYPE",
			"PATCH requires 'Content-Type: "+mergePatchMediaType+"'",
			"The request could not be completed.")
	}
}
