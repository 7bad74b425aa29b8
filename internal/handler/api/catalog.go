package api

import (
	"net/http"

	reqdto "github.com/arjitrawat15/Stavia/internal/handler/dto/request"
	resdto "github.com/arjitrawat15/Stavia/internal/handler/dto/response"
	"github.com/arjitrawat15/Stavia/internal/handler/httperr"
	"github.com/arjitrawat15/Stavia/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

var catalogErrorMap = []errorMapping{
	{queries.ErrHotelNotFound, http.StatusNotFound, httperr.KindNotFound, "Hotel not found"},
}

type CatalogHandler struct {
	q queries.CatalogQueries
}

func NewCatalogHandler(q queries.CatalogQueries) *CatalogHandler {
	return &CatalogHandler{q: q}
}

// @Summary List hotels
// @Description List hotels ordered by name, optionally filtered
// @Tags hotels
// @Produce json
// @Param city query string false "Case-insensitive city substring"
// @Param minRating query number false "Minimum rating (0-5)"
// @Param maxPrice query number false "Maximum base price per night"
// @Success 200 {array} resdto.HotelResponse
// @Failure 400 {object} httperr.Response
// @Router /hotels [get]
func (h *CatalogHandler) ListHotels(c *gin.Context) {
	var query reqdto.HotelListQuery
	if detail, err := reqdto.BindQuery(c, &query); err != nil {
		abortInvalidRequest(c, err, detail)
		return
	}

	views, err := h.q.ListHotels(c.Request.Context(), query.ToFilter())
	if err != nil {
		abortWithMapped(c, err, catalogErrorMap)
		return
	}

	c.JSON(http.StatusOK, resdto.FromHotelViews(views))
}

// @Summary Get hotel
// @Tags hotels
// @Produce json
// @Param id path string true "Hotel ID"
// @Success 200 {object} resdto.HotelResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /hotels/{id} [get]
func (h *CatalogHandler) GetHotel(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, httperr.KindValidation, "Invalid hotel id", nil)
		return
	}

	view, err := h.q.GetHotel(c.Request.Context(), id)
	if err != nil {
		abortWithMapped(c, err, catalogErrorMap)
		return
	}

	c.JSON(http.StatusOK, resdto.FromHotelView(view))
}

// @Summary List hotel rooms
// @Description Rooms of a hotel ordered by room number, with live availability
// @Tags hotels
// @Produce json
// @Param id path string true "Hotel ID"
// @Success 200 {array} resdto.RoomResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /hotels/{id}/rooms [get]
func (h *CatalogHandler) ListRooms(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, httperr.KindValidation, "Invalid hotel id", nil)
		return
	}

	views, err := h.q.ListRoomsByHotel(c.Request.Context(), id)
	if err != nil {
		abortWithMapped(c, err, catalogErrorMap)
		return
	}

	c.JSON(http.StatusOK, resdto.FromRoomViews(views))
}
