package handler

import (
	"database/sql"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/marina-berth-reservation/internal/repository"
)

// CatwayHandler exposes CRUD endpoints over berth records.
type CatwayHandler struct {
	Catways *repository.CatwayRepo
}

func NewCatwayHandler(r *repository.CatwayRepo) *CatwayHandler {
	if r == nil {
		panic("nil repository passed to NewCatwayHandler")
	}
	return &CatwayHandler{Catways: r}
}

// catwayNumberParam parses the :catwayNumber path segment.
func catwayNumberParam(c echo.Context) (int64, error) {
	return strconv.ParseInt(c.Param("catwayNumber"), 10, 64)
}

// List handles GET /catways.
func (h *CatwayHandler) List(c echo.Context) error {
	catways, err := h.Catways.List(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "could not list catways"})
	}
	return c.JSON(http.StatusOK, catways)
}

// Get handles GET /catways/:catwayNumber.
func (h *CatwayHandler) Get(c echo.Context) error {
	number, err := catwayNumberParam(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid catway number"})
	}
	cw, err := h.Catways.GetByNumber(c.Request().Context(), number)
	if err != nil {
		if err == sql.ErrNoRows {
			return c.JSON(http.StatusNotFound, echo.Map{"message": "catway not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "could not load catway"})
	}
	return c.JSON(http.StatusOK, cw)
}

// Create handles POST /catways.  The catway number comes from the client;
// nothing is auto-generated.
func (h *CatwayHandler) Create(c echo.Context) error {
	var body struct {
		CatwayNumber *int64 `json:"catwayNumber"`
		Type         string `json:"type"`
		CatwayState  string `json:"catwayState"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid body"})
	}
	body.Type = strings.TrimSpace(body.Type)
	body.CatwayState = strings.TrimSpace(body.CatwayState)
	if body.CatwayNumber == nil || body.Type == "" || body.CatwayState == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "catwayNumber, type and catwayState required"})
	}

	cw := repository.Catway{
		CatwayNumber: *body.CatwayNumber,
		Type:         body.Type,
		CatwayState:  body.CatwayState,
	}
	if err := h.Catways.Create(c.Request().Context(), &cw); err != nil {
		if err == repository.ErrCatwayExists {
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "catway number already exists"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "could not create catway"})
	}
	return c.JSON(http.StatusCreated, cw)
}

// Update handles PUT /catways/:catwayNumber.  Absent fields keep their
// stored values; the catway number itself is immutable.
func (h *CatwayHandler) Update(c echo.Context) error {
	number, err := catwayNumberParam(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid catway number"})
	}
	var body struct {
		Type        *string `json:"type"`
		CatwayState *string `json:"catwayState"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid body"})
	}
	upd := repository.CatwayUpdate{Type: body.Type, CatwayState: body.CatwayState}
	if upd.Type != nil {
		t := strings.TrimSpace(*upd.Type)
		if t == "" {
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "type must not be empty"})
		}
		upd.Type = &t
	}
	if upd.CatwayState != nil {
		s := strings.TrimSpace(*upd.CatwayState)
		if s == "" {
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "catwayState must not be empty"})
		}
		upd.CatwayState = &s
	}

	cw, err := h.Catways.UpdateByNumber(c.Request().Context(), number, upd)
	if err != nil {
		if err == sql.ErrNoRows {
			return c.JSON(http.StatusNotFound, echo.Map{"message": "catway not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "could not update catway"})
	}
	return c.JSON(http.StatusOK, cw)
}

// Delete handles DELETE /catways/:catwayNumber.
func (h *CatwayHandler) Delete(c echo.Context) error {
	number, err := catwayNumberParam(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid catway number"})
	}
	if err := h.Catways.DeleteByNumber(c.Request().Context(), number); err != nil {
		if err == sql.ErrNoRows {
			return c.JSON(http.StatusNotFound, echo.Map{"message": "catway not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "could not delete catway"})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "catway deleted"})
}
