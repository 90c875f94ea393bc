package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/sebasr/hello-service/internal/middleware"
	"github.com/sebasr/hello-service/internal/models"
	"github.com/sebasr/hello-service/internal/repository"
	"github.com/sebasr/hello-service/internal/service"
)

// GreetingService is the subset of service.GreetingService the handlers use
type GreetingService interface {
	CreateGreeting(ctx context.Context, name string) (string, error)
	CreateFormalGreeting(ctx context.Context, name string) (string, error)
	GetAllGreetings(ctx context.Context) ([]*models.Greeting, error)
	GetGreetingsPage(ctx context.Context, offset, limit int) ([]*models.Greeting, error)
	GetGreetingsByName(ctx context.Context, name string) ([]*models.Greeting, error)
	SearchGreetingsByName(ctx context.Context, substr string) ([]*models.Greeting, error)
	GetGreetingsByNamePrefix(ctx context.Context, prefix string) ([]*models.Greeting, error)
	GreetingExistsForName(ctx context.Context, name string) (bool, error)
	GetGreetingStats(ctx context.Context) (service.GreetingStats, error)
	GetGreetingCountByName(ctx context.Context, name string) (int64, error)
	GetGreetingByID(ctx context.Context, id int64) (*models.Greeting, error)
	DeleteGreeting(ctx context.Context, id int64) (bool, error)
	DeleteGreetingsByName(ctx context.Context, name string) (int64, error)
}

const (
	msgNameRequired   = "Name parameter is required"
	msgQueryRequired  = "Query parameter q is required"
	msgPrefixRequired = "Prefix parameter is required"
	msgInvalidID      = "Invalid greeting ID"
	msgInternal       = "Internal server error"
)

// HelloHandler handles the greeting endpoints
type HelloHandler struct {
	service         GreetingService
	logger          *zap.Logger
	applicationName string
}

// NewHelloHandler creates a new hello handler. applicationName is reported by Health.
func NewHelloHandler(svc GreetingService, logger *zap.Logger, applicationName string) *HelloHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &HelloHandler{
		service:         svc,
		logger:          logger,
		applicationName: applicationName,
	}
}

// Hello creates and returns a casual greeting
// GET /hello?name=
func (h *HelloHandler) Hello(c *gin.Context) {
	name := c.Query("name")
	h.logger.Info("hello endpoint called", zap.String("name", name))

	message, err := h.service.CreateGreeting(c.Request.Context(), name)
	if err != nil {
		h.internalError(c, "failed to create greeting", err)
		return
	}

	c.JSON(http.StatusOK, newMessageResponse(message))
}

// FormalHello creates and returns a formal greeting
// GET /hello/formal?name=
func (h *HelloHandler) FormalHello(c *gin.Context) {
	name := c.Query("name")
	h.logger.Info("formal hello endpoint called", zap.String("name", name))

	message, err := h.service.CreateFormalGreeting(c.Request.Context(), name)
	if err != nil {
		h.internalError(c, "failed to create formal greeting", err)
		return
	}

	c.JSON(http.StatusOK, newMessageResponse(message))
}

// ListGreetings returns every greeting newest first, or one page when offset or limit is given
// GET /hello/greetings?offset=&limit=
func (h *HelloHandler) ListGreetings(c *gin.Context) {
	offsetParam, hasOffset := c.GetQuery("offset")
	limitParam, hasLimit := c.GetQuery("limit")

	if !hasOffset && !hasLimit {
		h.logger.Info("get all greetings endpoint called")
		greetings, err := h.service.GetAllGreetings(c.Request.Context())
		if err != nil {
			h.internalError(c, "failed to list greetings", err)
			return
		}
		c.JSON(http.StatusOK, greetings)
		return
	}

	offset, err := parseNonNegative("offset", offsetParam, 0)
	if err != nil {
		c.JSON(http.StatusBadRequest, newErrorResponse(err.Error()))
		return
	}
	limit, err := parseNonNegative("limit", limitParam, repository.DefaultPageSize)
	if err != nil {
		c.JSON(http.StatusBadRequest, newErrorResponse(err.Error()))
		return
	}

	h.logger.Info("get greetings page endpoint called", zap.Int("offset", offset), zap.Int("limit", limit))
	greetings, err := h.service.GetGreetingsPage(c.Request.Context(), offset, limit)
	if err != nil {
		h.internalError(c, "failed to list greetings page", err)
		return
	}
	c.JSON(http.StatusOK, greetings)
}

// GreetingsByName returns greetings whose name matches exactly
// GET /hello/greetings/by-name?name=
func (h *HelloHandler) GreetingsByName(c *gin.Context) {
	name, ok := h.requireQuery(c, "name", msgNameRequired)
	if !ok {
		return
	}
	h.logger.Info("get greetings by name endpoint called", zap.String("name", name))

	greetings, err := h.service.GetGreetingsByName(c.Request.Context(), name)
	if err != nil {
		h.internalError(c, "failed to list greetings by name", err)
		return
	}
	c.JSON(http.StatusOK, greetings)
}

// SearchGreetings returns greetings whose name contains q, ignoring case
// GET /hello/greetings/search?q=
func (h *HelloHandler) SearchGreetings(c *gin.Context) {
	query, ok := h.requireQuery(c, "q", msgQueryRequired)
	if !ok {
		return
	}
	h.logger.Info("search greetings endpoint called", zap.String("query", query))

	greetings, err := h.service.SearchGreetingsByName(c.Request.Context(), query)
	if err != nil {
		h.internalError(c, "failed to search greetings", err)
		return
	}
	c.JSON(http.StatusOK, greetings)
}

// GreetingsByPrefix returns greetings whose name starts with prefix
// GET /hello/greetings/by-prefix?prefix=
func (h *HelloHandler) GreetingsByPrefix(c *gin.Context) {
	prefix, ok := h.requireQuery(c, "prefix", msgPrefixRequired)
	if !ok {
		return
	}
	h.logger.Info("get greetings by prefix endpoint called", zap.String("prefix", prefix))

	greetings, err := h.service.GetGreetingsByNamePrefix(c.Request.Context(), prefix)
	if err != nil {
		h.internalError(c, "failed to list greetings by prefix", err)
		return
	}
	c.JSON(http.StatusOK, greetings)
}

// GreetingExists reports whether a name has been greeted
// GET /hello/greetings/exists?name=
func (h *HelloHandler) GreetingExists(c *gin.Context) {
	name, ok := h.requireQuery(c, "name", msgNameRequired)
	if !ok {
		return
	}
	h.logger.Info("greeting exists endpoint called", zap.String("name", name))

	exists, err := h.service.GreetingExistsForName(c.Request.Context(), name)
	if err != nil {
		h.internalError(c, "failed to check greeting existence", err)
		return
	}
	c.JSON(http.StatusOK, ExistsResponse{Name: name, Exists: exists})
}

// DeleteGreetingsByName removes every greeting for a name
// DELETE /hello/greetings/by-name?name=
func (h *HelloHandler) DeleteGreetingsByName(c *gin.Context) {
	name, ok := h.requireQuery(c, "name", msgNameRequired)
	if !ok {
		return
	}
	h.logger.Info("delete greetings by name endpoint called", zap.String("name", name))

	deleted, err := h.service.DeleteGreetingsByName(c.Request.Context(), name)
	if err != nil {
		h.internalError(c, "failed to delete greetings by name", err)
		return
	}
	c.JSON(http.StatusOK, DeleteByNameResponse{
		Message:   fmt.Sprintf("Deleted %d greeting(s) for name: %s", deleted, name),
		Deleted:   deleted,
		Timestamp: nowMillis(),
	})
}

// Stats returns the total number of greetings
// GET /hello/stats
func (h *HelloHandler) Stats(c *gin.Context) {
	h.logger.Info("get greeting stats endpoint called")

	stats, err := h.service.GetGreetingStats(c.Request.Context())
	if err != nil {
		h.internalError(c, "failed to compute greeting stats", err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

// Count returns how many greetings exactly match a name
// GET /hello/count?name=
func (h *HelloHandler) Count(c *gin.Context) {
	name, ok := h.requireQuery(c, "name", msgNameRequired)
	if !ok {
		return
	}
	h.logger.Info("get greeting count by name endpoint called", zap.String("name", name))

	count, err := h.service.GetGreetingCountByName(c.Request.Context(), name)
	if err != nil {
		h.internalError(c, "failed to count greetings by name", err)
		return
	}
	c.JSON(http.StatusOK, CountResponse{Name: name, Count: count})
}

// Health reports liveness
// GET /hello/health
func (h *HelloHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{
		Status:      "UP",
		Application: h.applicationName,
	})
}

// GetGreeting returns a single greeting
// GET /hello/greetings/:id
func (h *HelloHandler) GetGreeting(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	h.logger.Info("get greeting by id endpoint called", zap.Int64("id", id))

	greeting, err := h.service.GetGreetingByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrGreetingNotFound) {
			c.JSON(http.StatusNotFound, newErrorResponse(notFoundMessage(id)))
			return
		}
		h.internalError(c, "failed to get greeting", err)
		return
	}
	c.JSON(http.StatusOK, greeting)
}

// DeleteGreeting removes a single greeting
// DELETE /hello/greetings/:id
func (h *HelloHandler) DeleteGreeting(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	h.logger.Info("delete greeting endpoint called", zap.Int64("id", id))

	deleted, err := h.service.DeleteGreeting(c.Request.Context(), id)
	if err != nil {
		h.internalError(c, "failed to delete greeting", err)
		return
	}
	if !deleted {
		c.JSON(http.StatusNotFound, newErrorResponse(notFoundMessage(id)))
		return
	}
	c.JSON(http.StatusOK, newMessageResponse("Greeting deleted successfully"))
}

// requireQuery returns the trimmed query parameter, answering 400 when it is blank
func (h *HelloHandler) requireQuery(c *gin.Context, key, message string) (string, bool) {
	value := strings.TrimSpace(c.Query(key))
	if value == "" {
		c.JSON(http.StatusBadRequest, newErrorResponse(message))
		return "", false
	}
	return value, true
}

// internalError logs err and answers 500 without leaking storage details
func (h *HelloHandler) internalError(c *gin.Context, msg string, err error) {
	h.logger.Error(msg,
		zap.Error(err),
		zap.String("request_id", middleware.GetRequestID(c)),
	)
	_ = c.Error(err)
	c.JSON(http.StatusInternalServerError, newErrorResponse(msgInternal))
}

func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, newErrorResponse(msgInvalidID))
		return 0, false
	}
	return id, true
}

func parseNonNegative(name, value string, defaultValue int) (int, error) {
	if value == "" {
		return defaultValue, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("%s must be a non-negative integer", name)
	}
	return n, nil
}

func notFoundMessage(id int64) string {
	return "Greeting not found with ID: " + strconv.FormatInt(id, 10)
}
