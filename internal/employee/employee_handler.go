package employee

import (
	"fmt"
	"net/http"
	"strconv"

	employeeerrors "go-ems/internal/employee/errors"
	"go-ems/internal/shared/apperror"
	"go-ems/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("employee.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.handler")
	}
	return &Handler{service: service, logger: l}
}

// writeError is the single point that turns domain errors into status codes
// and the {error, detail, success} body.
func (h *Handler) writeError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("employee request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
		zap.String("message", httpErr.Message),
	)
	response.Error(c, httpErr.Status, httpErr.Message, httpErr.Details)
}

func (h *Handler) pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		h.writeError(c, employeeerrors.ErrInvalidEmployeeID)
		return 0, false
	}
	return id, true
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeError(c, apperror.MapValidationError(err))
		return
	}

	resp, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.JSON(c, http.StatusCreated, resp)
}

func (h *Handler) List(c *gin.Context) {
	var q ListEmployeesQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		h.writeError(c, apperror.MapValidationError(err))
		return
	}

	resp, err := h.service.List(c.Request.Context(), q)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.JSON(c, http.StatusOK, resp)
}

func (h *Handler) Search(c *gin.Context) {
	var q SearchEmployeesQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		h.writeError(c, employeeerrors.ErrEmptySearchTerm)
		return
	}

	resp, err := h.service.Search(c.Request.Context(), q.Q)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.JSON(c, http.StatusOK, resp)
}

func (h *Handler) GetByID(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}

	resp, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.JSON(c, http.StatusOK, resp)
}

func (h *Handler) Update(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}

	var req UpdateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeError(c, apperror.MapValidationError(err))
		return
	}

	resp, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.JSON(c, http.StatusOK, resp)
}

func (h *Handler) Delete(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		h.writeError(c, err)
		return
	}

	response.JSON(c, http.StatusOK, response.Message{
		Message: fmt.Sprintf("Employee with ID %d deleted successfully", id),
		Success: true,
	})
}

func (h *Handler) Deactivate(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}

	resp, err := h.service.Deactivate(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.JSON(c, http.StatusOK, resp)
}

func (h *Handler) Activate(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}

	resp, err := h.service.Activate(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.JSON(c, http.StatusOK, resp)
}
