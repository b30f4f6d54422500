package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/zealand/roombooking/internal/auth"
	"github.com/zealand/roombooking/internal/booking"
	"github.com/zealand/roombooking/internal/pkg/request"
	"github.com/zealand/roombooking/internal/pkg/response"
)

type Handler struct {
	service booking.Service
}

func NewHandler(service booking.Service) *Handler {
	return &Handler{service: service}
}

// ListSlots returns the slots of one day, or only the free ones when available_only is set.
func (h *Handler) ListSlots(c *gin.Context) {
	var req ListSlotsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, "invalid query parameters", err)
		return
	}

	filter, err := req.ToFilter(auth.GetUserID(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	var slots []*booking.Booking
	if req.AvailableOnly {
		slots, err = h.service.GetAvailableSlotsOnly(c.Request.Context(), filter)
	} else {
		slots, err = h.service.GetFilteredSlots(c.Request.Context(), filter)
	}
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, response.NewListResponse(newBookingResponses(slots)))
}

// ListMine returns the bookings of the authenticated user.
func (h *Handler) ListMine(c *gin.Context) {
	items, err := h.service.GetBookingsForUser(c.Request.Context(), auth.GetUserID(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, response.NewListResponse(newBookingResponses(items)))
}

func (h *Handler) Create(c *gin.Context) {
	var body CreateBookingRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		response.BadRequest(c, "invalid request body", err)
		return
	}

	req, err := body.ToCreateRequest(auth.GetUserID(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	id, err := h.service.CreateBooking(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, CreateBookingResponse{ID: id})
}

func (h *Handler) Delete(c *gin.Context) {
	var req request.ByIDRequest
	if err := c.ShouldBindUri(&req); err != nil {
		response.BadRequest(c, "invalid booking id", err)
		return
	}

	if err := h.service.DeleteBooking(c.Request.Context(), req.ID, auth.GetUserID(c)); err != nil {
		response.Error(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
