package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Astemirdum/store-service/pkg/auth"
	"github.com/Astemirdum/store-service/store/internal/model"
)

// UpsertRelation godoc
// @Summary  Like, bookmark or rate a book
// @Description Partial update of the requester's relation with the book;
// @Description the record is created on first write.
// @Tags     relations
// @Accept   json
// @Param    bookId path int true "book id"
// @Param    patch  body model.RelationPatch true "fields to change"
// @Success  200 {object} model.UserBookRelation
// @Router   /relations/{bookId} [patch]
func (h *Handler) UpsertRelation(c echo.Context) error {
	identity, err := auth.GetIdentity(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	}
	id, err := bookID(c, "bookId")
	if err != nil {
		return err
	}

	var patch model.RelationPatch
	if err := c.Bind(&patch); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := patch.Validate(); err != nil {
		return respondError(c, err)
	}

	rel, err := h.storeSvc.UpsertRelation(c.Request().Context(), identity, id, patch)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, rel)
}
