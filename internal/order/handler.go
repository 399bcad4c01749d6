package order

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"cinos/internal/drink"

	"github.com/gin-gonic/gin"
)

// Archiver pushes a rendered receipt to external storage.
// Handler depends ONLY on this interface.
type Archiver interface {
	ArchiveReceipt(ctx context.Context, orderID string, receipt Receipt) (string, error)
}

type Handler struct {
	service  *Service
	archiver Archiver // nil when receipt archival is not configured
}

func NewHandler(service *Service, archiver Archiver) *Handler {
	return &Handler{service: service, archiver: archiver}
}

type addDrinkRequest struct {
	Base    string   `json:"base"`
	Flavors []string `json:"flavors"`
	Size    string   `json:"size"`
}

type changeSizeRequest struct {
	Size string `json:"size"`
}

//
// --------------------------------------------------
// POST /orders
// --------------------------------------------------
//

func (h *Handler) CreateOrder() gin.HandlerFunc {
	return func(c *gin.Context) {
		orderID, err := h.service.CreateOrder(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create order"})
			return
		}

		c.JSON(http.StatusCreated, gin.H{"order_id": orderID})
	}
}

//
// --------------------------------------------------
// GET /orders/:id
// --------------------------------------------------
//

func (h *Handler) GetOrder() gin.HandlerFunc {
	return func(c *gin.Context) {
		summary, err := h.service.GetOrder(c.Request.Context(), c.Param("id"))
		if err != nil {
			respondError(c, err)
			return
		}

		c.JSON(http.StatusOK, summary)
	}
}

//
// --------------------------------------------------
// POST /orders/:id/drinks
// --------------------------------------------------
//

func (h *Handler) AddDrink() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req addDrinkRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}

		if req.Base == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "base is required"})
			return
		}

		line, err := h.service.AddDrink(
			c.Request.Context(),
			c.Param("id"),
			req.Base,
			req.Flavors,
			req.Size,
		)
		if err != nil {
			respondError(c, err)
			return
		}

		c.JSON(http.StatusCreated, line)
	}
}

//
// --------------------------------------------------
// PATCH /orders/:id/drinks/:index/size
// --------------------------------------------------
//

func (h *Handler) ChangeDrinkSize() gin.HandlerFunc {
	return func(c *gin.Context) {
		index, err := strconv.Atoi(c.Param("index"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid drink index"})
			return
		}

		var req changeSizeRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}

		line, err := h.service.ChangeDrinkSize(c.Request.Context(), c.Param("id"), index, req.Size)
		if err != nil {
			respondError(c, err)
			return
		}

		c.JSON(http.StatusOK, line)
	}
}

//
// --------------------------------------------------
// GET /orders/:id/total
// --------------------------------------------------
//

func (h *Handler) GetTotal() gin.HandlerFunc {
	return func(c *gin.Context) {
		totals, err := h.service.GetTotals(c.Request.Context(), c.Param("id"))
		if err != nil {
			respondError(c, err)
			return
		}

		c.JSON(http.StatusOK, totals)
	}
}

//
// --------------------------------------------------
// GET /orders/:id/receipt
// --------------------------------------------------
//

func (h *Handler) GetReceipt() gin.HandlerFunc {
	return func(c *gin.Context) {
		receipt, err := h.service.GetReceipt(c.Request.Context(), c.Param("id"))
		if err != nil {
			respondError(c, err)
			return
		}

		c.JSON(http.StatusOK, receipt)
	}
}

//
// --------------------------------------------------
// POST /orders/:id/archive
// --------------------------------------------------
//

func (h *Handler) ArchiveReceipt() gin.HandlerFunc {
	return func(c *gin.Context) {
		if h.archiver == nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "receipt archival not configured"})
			return
		}

		orderID := c.Param("id")
		receipt, err := h.service.GetReceipt(c.Request.Context(), orderID)
		if err != nil {
			respondError(c, err)
			return
		}

		url, err := h.archiver.ArchiveReceipt(c.Request.Context(), orderID, receipt)
		if err != nil {
			c.JSON(http.StatusBadGateway, gin.H{"error": "failed to archive receipt"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"order_id": orderID, "url": url})
	}
}

//
// --------------------------------------------------
// GET /sizes
// --------------------------------------------------
//

func (h *Handler) ListSizes() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"sizes": drink.Sizes()})
	}
}

// respondError maps domain errors to HTTP status codes.
func respondError(c *gin.Context, err error) {
	var sizeErr *drink.InvalidSizeError

	switch {
	case errors.Is(err, ErrOrderNotFound), errors.Is(err, ErrDrinkNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.As(err, &sizeErr), errors.Is(err, ErrInvalidItem):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
