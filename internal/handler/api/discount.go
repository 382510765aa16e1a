package api

import (
	"net/http"

	reqdto "vip-discount/internal/handler/dto/request"
	resdto "vip-discount/internal/handler/dto/response"
	"vip-discount/internal/handler/httperr"
	"vip-discount/internal/pkg/config"
	"vip-discount/internal/pkg/errs"
	"vip-discount/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type DiscountHandler struct {
	q               queries.DiscountQueries
	defaultCurrency string
}

func NewDiscountHandler(q queries.DiscountQueries, cfg config.Config) *DiscountHandler {
	return &DiscountHandler{
		q:               q,
		defaultCurrency: cfg.Discount.DefaultCurrency,
	}
}

// @Summary Quote discount
// @Description Price a single purchase for a user according to their membership tier
// @Tags discounts
// @Accept json
// @Produce json
// @Param request body reqdto.QuoteDiscountRequest true "Quote request"
// @Success 200 {object} resdto.DiscountQuoteResponse
// @Failure 400 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /api/discounts/quote [post]
func (h *DiscountHandler) Quote(c *gin.Context) {
	var req reqdto.QuoteDiscountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	view, err := h.q.Quote(c.Request.Context(), req.ToParams(h.defaultCurrency))
	if err != nil {
		switch {
		case errs.Is(err, errs.ErrInvalidQuoteInput):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid quote input", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	response := resdto.FromDiscountQuoteView(view)
	if !view.Success {
		rejected := errs.Mark(errs.New(response.ErrorMessageOr("purchase rejected")), errs.ErrPurchaseRejected)
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, rejected, response.ErrorMessageOr("Purchase rejected"), response)
		return
	}

	c.JSON(http.StatusOK, response)
}
