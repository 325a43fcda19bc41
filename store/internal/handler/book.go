package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/Astemirdum/store-service/pkg/auth"
	"github.com/Astemirdum/store-service/store/internal/errs"
	"github.com/Astemirdum/store-service/store/internal/model"
)

// ListBooks godoc
// @Summary  List books with like counts and ratings
// @Tags     books
// @Param    price    query string false "exact price filter"
// @Param    search   query string false "substring over name and author_name"
// @Param    ordering query string false "field or -field"
// @Success  200 {array} model.BookResponse
// @Router   /books [get]
func (h *Handler) ListBooks(c echo.Context) error {
	ctx := c.Request().Context()

	var f model.BookFilter
	if price := c.QueryParam("price"); price != "" {
		if _, err := strconv.ParseFloat(price, 64); err != nil {
			return c.JSON(http.StatusBadRequest,
				errs.NewValidationError("price", "A valid number is required.").Payload())
		}
		f.Price = &price
	}
	f.Search = c.QueryParam("search")

	field, desc, err := model.ParseOrdering(c.QueryParam("ordering"))
	if err != nil {
		return respondError(c, err)
	}
	f.OrderBy, f.Desc = field, desc

	books, err := h.storeSvc.ListBooks(ctx, f)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, books)
}

// GetBook godoc
// @Summary  Retrieve one book
// @Tags     books
// @Param    id path int true "book id"
// @Success  200 {object} model.BookResponse
// @Router   /books/{id} [get]
func (h *Handler) GetBook(c echo.Context) error {
	id, err := bookID(c, "id")
	if err != nil {
		return err
	}
	book, err := h.storeSvc.GetBook(c.Request().Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, book)
}

// CreateBook godoc
// @Summary  Create a book owned by the requester
// @Tags     books
// @Accept   json
// @Param    book body model.BookPayload true "book"
// @Success  201 {object} model.BookResponse
// @Router   /books [post]
func (h *Handler) CreateBook(c echo.Context) error {
	identity, err := auth.GetIdentity(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	}
	book, err := h.bindBook(c)
	if err != nil {
		return respondError(c, err)
	}
	resp, err := h.storeSvc.CreateBook(c.Request().Context(), identity, book)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, resp)
}

// UpdateBook godoc
// @Summary  Update a book (owner or staff)
// @Tags     books
// @Accept   json
// @Param    id   path int true "book id"
// @Param    book body model.BookPayload true "book"
// @Success  200 {object} model.BookResponse
// @Failure  403 {object} errs.PermissionDeniedResponse
// @Router   /books/{id} [put]
func (h *Handler) UpdateBook(c echo.Context) error {
	identity, err := auth.GetIdentity(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	}
	id, err := bookID(c, "id")
	if err != nil {
		return err
	}
	book, err := h.bindBook(c)
	if err != nil {
		return respondError(c, err)
	}
	resp, err := h.storeSvc.UpdateBook(c.Request().Context(), identity, id, book)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, resp)
}

// DeleteBook godoc
// @Summary  Delete a book (owner or staff)
// @Tags     books
// @Param    id path int true "book id"
// @Success  204
// @Failure  403 {object} errs.PermissionDeniedResponse
// @Router   /books/{id} [delete]
func (h *Handler) DeleteBook(c echo.Context) error {
	identity, err := auth.GetIdentity(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	}
	id, err := bookID(c, "id")
	if err != nil {
		return err
	}
	if err := h.storeSvc.DeleteBook(c.Request().Context(), identity, id); err != nil {
		return respondError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) bindBook(c echo.Context) (model.Book, error) {
	var payload model.BookPayload
	if err := c.Bind(&payload); err != nil {
		return model.Book{}, echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(&payload); err != nil {
		return model.Book{}, err
	}
	return payload.Book()
}

func bookID(c echo.Context, param string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(param), 10, 64)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusNotFound, errs.ErrNotFound.Error())
	}
	return id, nil
}
