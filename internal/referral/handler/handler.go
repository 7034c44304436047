package handler

import (
	"affiliate-server/internal/apierrors"
	"affiliate-server/internal/observability"
	"affiliate-server/internal/referral/processor"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	// AttributionCookieName carries the affiliate link id between the click and the purchase
	AttributionCookieName   = "bc_aff_id"
	attributionCookieMaxAge = 30 * 24 * 60 * 60
)

type Handler struct {
	processor processor.ReferralProcessor
	logger    *observability.Logger
}

func New(processor processor.ReferralProcessor, logger *observability.Logger) Handler {
	return Handler{
		processor: processor,
		logger:    logger,
	}
}

// HandleRedirect handles GET /ref/:code
func (h *Handler) HandleRedirect(c *gin.Context) {
	ctx := c.Request.Context()

	meta := processor.ClickMetadata{
		IPAddress: observability.GetRealClientIP(c),
		UserAgent: observability.GetRealUserAgent(c),
		Referer:   c.Request.Referer(),
	}

	redirect, err := h.processor.FollowLink(ctx, c.Param("code"), meta)
	if err != nil {
		if errors.Is(err, processor.ErrLinkNotFound) {
			c.String(http.StatusNotFound, "Link not found")
			return
		}
		h.logger.Error(ctx, "failed to follow referral link", err)
		c.String(http.StatusInternalServerError, "Internal Server Error")
		return
	}

	http.SetCookie(c.Writer, &http.Cookie{
		Name:     AttributionCookieName,
		Value:    redirect.LinkID.String(),
		Path:     "/",
		MaxAge:   attributionCookieMaxAge,
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteLaxMode,
	})
	c.Redirect(http.StatusFound, redirect.Location)
}

// CreateLinkRequest represents the request body for issuing an affiliate link
type CreateLinkRequest struct {
	AffiliateID string `json:"affiliate_id" binding:"required,uuid"`
	ProductID   string `json:"product_id" binding:"required,uuid"`
}

// HandleCreateLink handles POST /api/links
func (h *Handler) HandleCreateLink(c *gin.Context) {
	ctx := c.Request.Context()

	var req CreateLinkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}

	affiliateID, err := uuid.Parse(req.AffiliateID)
	if err != nil {
		apierrors.RespondWithError(c, apierrors.BadRequest(apierrors.CodeInvalidInput, "invalid affiliate id"))
		return
	}
	productID, err := uuid.Parse(req.ProductID)
	if err != nil {
		apierrors.RespondWithError(c, apierrors.BadRequest(apierrors.CodeInvalidInput, "invalid product id"))
		return
	}

	link, err := h.processor.GetOrCreateLink(ctx, affiliateID, productID)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, link)
}
