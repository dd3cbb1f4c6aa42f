package handler

import (
	"net/http"
	"time"

	"github.com/deppfellow/portfolio-backend/internal/middleware"
	"github.com/deppfellow/portfolio-backend/internal/server"
	"github.com/deppfellow/portfolio-backend/internal/validation"
	"github.com/labstack/echo/v4"
	"github.com/newrelic/go-agent/v3/integrations/nrpkgerrors"
	"github.com/newrelic/go-agent/v3/newrelic"
)

// Handler is embedded by every resource handler.
type Handler struct {
	server *server.Server
}

func NewHandler(s *server.Server) Handler {
	return Handler{server: s}
}

// Response is the body of every successful request.
type Response struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}

// Payload constrains P to a pointer to a request struct that can validate
// itself. Handle allocates a new Req for every request.
type Payload[Req any] interface {
	*Req
	validation.Validatable
}

// HandlerFunc handles a bound and validated request and returns the data.
type HandlerFunc[P any, Res any] func(c echo.Context, payload P) (Res, error)

// HandlerFuncNoData handles requests whose response carries only a message.
type HandlerFuncNoData[P any] func(c echo.Context, payload P) error

// ResponseHandler writes the result of a successful handler.
type ResponseHandler interface {
	Handle(c echo.Context, result any) error
	GetOperation() string
}

// JSONResponseHandler wraps the result into Response. message picks the
// message from the result, so list endpoints can say when they are empty.
type JSONResponseHandler struct {
	status  int
	message func(result any) string
}

func (h JSONResponseHandler) Handle(c echo.Context, result any) error {
	return c.JSON(h.status, Response{
		Success: true,
		Message: h.message(result),
		Data:    result,
	})
}

func (h JSONResponseHandler) GetOperation() string {
	return "handler"
}

// MessageResponseHandler answers with a message and no data.
type MessageResponseHandler struct {
	status  int
	message string
}

func (h MessageResponseHandler) Handle(c echo.Context, _ any) error {
	return c.JSON(h.status, Response{Success: true, Message: h.message})
}

func (h MessageResponseHandler) GetOperation() string {
	return "handler_message"
}

// handleRequest runs binding, validation and the handler, logging and
// recording timings on the New Relic transaction.
func handleRequest[Req any, P Payload[Req]](
	c echo.Context,
	handler func(c echo.Context, payload P) (any, error),
	responseHandler ResponseHandler,
) error {
	start := time.Now()
	payload := P(new(Req))

	txn := newrelic.FromContext(c.Request().Context())
	if txn != nil {
		txn.AddAttribute("handler.name", c.Path())
	}

	logger := middleware.GetLogger(c).With().
		Str("operation", responseHandler.GetOperation()).
		Str("method", c.Request().Method).
		Str("route", c.Path()).
		Logger()

	logger.Debug().Msg("handling request")

	validationStart := time.Now()
	if err := validation.BindAndValidate(c, payload); err != nil {
		validationDuration := time.Since(validationStart)

		logger.Warn().
			Err(err).
			Dur("validation_duration", validationDuration).
			Msg("request validation failed")

		if txn != nil {
			txn.AddAttribute("validation.status", "failed")
			txn.AddAttribute("validation.duration_ms", validationDuration.Milliseconds())
		}

		return err
	}

	validationDuration := time.Since(validationStart)
	if txn != nil {
		txn.AddAttribute("validation.status", "success")
		txn.AddAttribute("validation.duration_ms", validationDuration.Milliseconds())
	}

	handlerStart := time.Now()
	result, err := handler(c, payload)
	handlerDuration := time.Since(handlerStart)

	if err != nil {
		logger.Error().
			Err(err).
			Dur("handler_duration", handlerDuration).
			Dur("total_duration", time.Since(start)).
			Msg("handler execution failed")

		if txn != nil {
			txn.NoticeError(nrpkgerrors.Wrap(err))
			txn.AddAttribute("handler.status", "error")
			txn.AddAttribute("handler.duration_ms", handlerDuration.Milliseconds())
		}
		return err
	}

	if txn != nil {
		txn.AddAttribute("handler.status", "success")
		txn.AddAttribute("handler.duration_ms", handlerDuration.Milliseconds())
		txn.AddAttribute("total.duration_ms", time.Since(start).Milliseconds())
	}

	logger.Info().
		Dur("handler_duration", handlerDuration).
		Dur("validation_duration", validationDuration).
		Dur("total_duration", time.Since(start)).
		Msg("request completed successfully")

	return responseHandler.Handle(c, result)
}

// Handle wraps a handler that returns data under a fixed message.
// An empty message is omitted from the response.
func Handle[Req any, P Payload[Req], Res any](
	h Handler,
	handler HandlerFunc[P, Res],
	status int,
	message string,
) echo.HandlerFunc {
	return func(c echo.Context) error {
		return handleRequest[Req, P](c, func(c echo.Context, payload P) (any, error) {
			return handler(c, payload)
		}, JSONResponseHandler{status: status, message: func(any) string { return message }})
	}
}

// HandleList is Handle for list endpoints: the message depends on whether
// anything was found.
func HandleList[Req any, P Payload[Req], Item any](
	h Handler,
	handler HandlerFunc[P, []Item],
	found string,
	empty string,
) echo.HandlerFunc {
	return func(c echo.Context) error {
		return handleRequest[Req, P](c, func(c echo.Context, payload P) (any, error) {
			return handler(c, payload)
		}, JSONResponseHandler{status: http.StatusOK, message: func(result any) string {
			if items, ok := result.([]Item); ok && len(items) > 0 {
				return found
			}
			return empty
		}})
	}
}

// HandleNoData wraps a handler whose response is only a message.
func HandleNoData[Req any, P Payload[Req]](
	h Handler,
	handler HandlerFuncNoData[P],
	status int,
	message string,
) echo.HandlerFunc {
	return func(c echo.Context) error {
		return handleRequest[Req, P](c, func(c echo.Context, payload P) (any, error) {
			return nil, handler(c, payload)
		}, MessageResponseHandler{status: status, message: message})
	}
}
