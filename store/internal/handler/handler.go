package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.uber.org/zap"

	md "github.com/Astemirdum/store-service/pkg/middleware"
	"github.com/Astemirdum/store-service/pkg/validate"
	"github.com/Astemirdum/store-service/store/internal/errs"
	_ "github.com/Astemirdum/store-service/swagger"
)

type Handler struct {
	storeSvc StoreService
	log      *zap.Logger
}

func New(storeSvc StoreService, log *zap.Logger) *Handler {
	h := &Handler{
		storeSvc: storeSvc,
		log:      log,
	}
	return h
}

func (h *Handler) NewRouter() *echo.Echo {
	e := echo.New()
	const (
		baseRPS = 10
		apiRPS  = 100
	)
	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		StackSize: 4 << 10, // 4 KB
	}))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{http.MethodGet, http.MethodOptions, http.MethodHead, http.MethodPut, http.MethodPatch, http.MethodPost, http.MethodDelete},
		AllowCredentials: true,
	}))

	base := e.Group("", md.NewRateLimiter(baseRPS))
	base.GET("/manage/health", h.Health)
	base.GET("/swagger/*", echoSwagger.WrapHandler)

	e.Validator = validate.NewCustomValidator()
	api := e.Group("/api/v1",
		middleware.RequestLoggerWithConfig(md.RequestLoggerConfig()),
		middleware.RequestID(),
		md.NewRateLimiter(apiRPS),
		md.AuthContext,
	)

	api.GET("/books", h.ListBooks)
	api.GET("/books/:id", h.GetBook)
	api.POST("/books", h.CreateBook, md.AuthRequired)
	api.PUT("/books/:id", h.UpdateBook, md.AuthRequired)
	api.DELETE("/books/:id", h.DeleteBook, md.AuthRequired)

	api.PATCH("/relations/:bookId", h.UpsertRelation, md.AuthRequired)

	return e
}

func (h *Handler) Health(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}

// respondError maps service errors onto the API error contract.
func respondError(c echo.Context, err error) error {
	var (
		ve *errs.ValidationError
		he *echo.HTTPError
	)
	switch {
	case errors.As(err, &he):
		return he
	case errors.As(err, &ve):
		return c.JSON(http.StatusBadRequest, ve.Payload())
	case errors.Is(err, errs.ErrPermissionDenied):
		return c.JSON(http.StatusForbidden, errs.NewPermissionDeniedResponse())
	case errors.Is(err, errs.ErrNotFound):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	default:
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
}
