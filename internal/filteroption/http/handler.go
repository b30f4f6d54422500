package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/zealand/roombooking/internal/auth"
	"github.com/zealand/roombooking/internal/filteroption"
	"github.com/zealand/roombooking/internal/pkg/response"
)

type Handler struct {
	service filteroption.Service
}

func NewHandler(service filteroption.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) Get(c *gin.Context) {
	opts, err := h.service.GetFilterOptions(c.Request.Context(), auth.GetUserID(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, opts)
}
