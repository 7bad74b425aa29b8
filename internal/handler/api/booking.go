package api

import (
	"errors"
	"net/http"

	reqdto "github.com/arjitrawat15/Stavia/internal/handler/dto/request"
	resdto "github.com/arjitrawat15/Stavia/internal/handler/dto/response"
	"github.com/arjitrawat15/Stavia/internal/handler/httperr"
	"github.com/arjitrawat15/Stavia/internal/handler/middleware"
	"github.com/arjitrawat15/Stavia/internal/usecase/commands"
	"github.com/arjitrawat15/Stavia/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

var bookingErrorMap = []errorMapping{
	{commands.ErrUnauthenticated, http.StatusUnauthorized, httperr.KindUnauthenticated, "Authentication required"},
	{queries.ErrUnauthenticated, http.StatusUnauthorized, httperr.KindUnauthenticated, "Authentication required"},
	{queries.ErrForbidden, http.StatusForbidden, httperr.KindForbidden, "You can only view your own bookings"},
	{commands.ErrInvalidRange, http.StatusBadRequest, httperr.KindInvalidRange, "Check-out date must be after check-in date"},
	{commands.ErrInvalidBooking, http.StatusBadRequest, httperr.KindValidation, "Invalid booking request"},
	{commands.ErrRoomNotFound, http.StatusNotFound, httperr.KindRoomNotFound, "Room not found"},
	{commands.ErrRoomHotelMismatch, http.StatusBadRequest, httperr.KindRoomHotelMismatch, "Room does not belong to the specified hotel"},
	{commands.ErrRoomUnavailable, http.StatusBadRequest, httperr.KindRoomUnavailable, "Room is not available"},
	{commands.ErrStoreConflict, http.StatusConflict, httperr.KindStoreConflict, "Booking could not be completed, please retry"},
	{commands.ErrInternalFailure, http.StatusInternalServerError, httperr.KindInternal, "Booking failed"},
}

var errRestaurantBooking = errors.New("restaurant booking not implemented")

type BookingHandler struct {
	cmds commands.BookingCommands
	q    queries.BookingQueries
}

func NewBookingHandler(cmds commands.BookingCommands, q queries.BookingQueries) *BookingHandler {
	return &BookingHandler{cmds: cmds, q: q}
}

// @Summary Book a hotel room
// @Description Reserve one room for a stay. Exactly one of several concurrent requests for a room succeeds.
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateHotelBookingRequest true "Hotel booking request"
// @Success 201 {object} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /bookings/hotel [post]
func (h *BookingHandler) CreateHotelBooking(c *gin.Context) {
	callerID, ok := middleware.GetUserID(c)
	if !ok {
		abortUnauthenticated(c)
		return
	}

	var req reqdto.CreateHotelBookingRequest
	if detail, err := reqdto.BindJSON(c, &req); err != nil {
		abortInvalidRequest(c, err, detail)
		return
	}

	in, err := req.ToInput(callerID)
	if err != nil {
		abortInvalidRequest(c, err, nil)
		return
	}

	confirmation, err := h.cmds.CreateBooking(c.Request.Context(), in)
	if err != nil {
		abortWithMapped(c, err, bookingErrorMap)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromBookingConfirmation(confirmation))
}

// @Summary Book a restaurant table
// @Description Not available yet
// @Tags bookings
// @Security BearerAuth
// @Failure 401 {object} httperr.Response
// @Failure 501 {object} httperr.Response
// @Router /bookings/restaurant [post]
func (h *BookingHandler) CreateRestaurantBooking(c *gin.Context) {
	if _, ok := middleware.GetUserID(c); !ok {
		abortUnauthenticated(c)
		return
	}
	httperr.AbortWithError(c, http.StatusNotImplemented, errRestaurantBooking,
		httperr.KindNotImplemented, "Restaurant booking not yet implemented", nil)
}

// @Summary List a user's bookings
// @Description Bookings whose contact email matches the caller's account email, newest first
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param userId path string true "User ID"
// @Success 200 {array} resdto.BookingListItemResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /bookings/user/{userId} [get]
func (h *BookingHandler) ListUserBookings(c *gin.Context) {
	callerID, ok := middleware.GetUserID(c)
	if !ok {
		abortUnauthenticated(c)
		return
	}

	requestedID, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, httperr.KindValidation, "Invalid user id", nil)
		return
	}

	views, err := h.q.ListForUser(c.Request.Context(), callerID, requestedID)
	if err != nil {
		abortWithMapped(c, err, bookingErrorMap)
		return
	}

	c.JSON(http.StatusOK, resdto.FromBookingViews(views))
}
