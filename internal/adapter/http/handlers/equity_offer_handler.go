package handlers

import (
	"log"
	"net/http"

	request "startlabx/internal/adapter/http/dto/request"
	response "startlabx/internal/adapter/http/dto/response"
	"startlabx/internal/adapter/http/middleware"
	"startlabx/internal/usecase"

	"github.com/gin-gonic/gin"
)

// EquityOfferHandler serves /equity/offers.
type EquityOfferHandler struct {
	usecase usecase.IEquityOfferUseCase
}

func NewEquityOfferHandler(uc usecase.IEquityOfferUseCase) *EquityOfferHandler {
	return &EquityOfferHandler{usecase: uc}
}

// ListByStartup godoc
// @Summary      List equity offers of a startup
// @Tags         offers
// @Produce      json
// @Param        startupId path string true "Startup ID"
// @Success      200 {object} map[string][]response.OfferResponse
// @Failure      400 {object} pkg.HTTPError
// @Security     Bearer
// @Router       /equity/offers/startup/{startupId} [get]
func (h *EquityOfferHandler) ListByStartup(c *gin.Context) {
	offers, err := h.usecase.ListByStartupID(c.Request.Context(), c.Param("startupId"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"offers": response.FromOffers(offers)})
}

// ListByProfessional godoc
// @Summary      List equity offers addressed to a professional
// @Tags         offers
// @Produce      json
// @Param        userId path string true "Professional user ID"
// @Success      200 {object} map[string][]response.OfferResponse
// @Failure      400 {object} pkg.HTTPError
// @Security     Bearer
// @Router       /equity/offers/professional/{userId} [get]
func (h *EquityOfferHandler) ListByProfessional(c *gin.Context) {
	offers, err := h.usecase.ListByProfessionalID(c.Request.Context(), c.Param("userId"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"offers": response.FromOffers(offers)})
}

// CreateOffer godoc
// @Summary      Create a PENDING equity offer
// @Tags         offers
// @Accept       json
// @Produce      json
// @Param        body body request.CreateOfferRequest true "Offer"
// @Success      201 {object} map[string]response.OfferResponse
// @Failure      400 {object} pkg.HTTPError
// @Failure      403 {object} pkg.HTTPError
// @Failure      404 {object} pkg.HTTPError
// @Security     Bearer
// @Router       /equity/offers [post]
func (h *EquityOfferHandler) CreateOffer(c *gin.Context) {
	var payload request.CreateOfferRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeInvalidPayload(c)
		return
	}

	caller := middleware.IdentityFrom(c)
	offer, err := h.usecase.CreateOffer(c.Request.Context(), caller, payload.ToInput())
	if err != nil {
		log.Printf("[offer][handler] create failed startup_id=%s caller_id=%s err=%v", payload.StartupID, caller.UserID, err)
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"offer": response.FromOffer(offer)})
}

// UpdateStatus godoc
// @Summary      Accept or reject an equity offer
// @Description  Accepting adds the offer's equity to the startup cap table in the same transaction.
// @Tags         offers
// @Accept       json
// @Produce      json
// @Param        id   path string true "Offer ID"
// @Param        body body request.UpdateOfferStatusRequest true "Target status"
// @Success      200 {object} response.OfferStatusResponse
// @Failure      400 {object} pkg.HTTPError
// @Failure      403 {object} pkg.HTTPError
// @Failure      404 {object} pkg.HTTPError
// @Failure      409 {object} pkg.HTTPError
// @Security     Bearer
// @Router       /equity/offers/{id}/status [put]
func (h *EquityOfferHandler) UpdateStatus(c *gin.Context) {
	var payload request.UpdateOfferStatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeInvalidPayload(c)
		return
	}

	offerID := c.Param("id")
	caller := middleware.IdentityFrom(c)
	result, err := h.usecase.ChangeStatus(c.Request.Context(), caller, offerID, payload.OfferStatus())
	if err != nil {
		log.Printf("[offer][handler] status change failed offer_id=%s status=%s err=%v", offerID, payload.Status, err)
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromStatusChange(result))
}
