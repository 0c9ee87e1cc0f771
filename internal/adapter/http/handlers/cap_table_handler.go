package handlers

import (
	"log"
	"net/http"
	"time"

	request "startlabx/internal/adapter/http/dto/request"
	response "startlabx/internal/adapter/http/dto/response"
	"startlabx/internal/adapter/http/middleware"
	"startlabx/internal/usecase"

	"github.com/gin-gonic/gin"
)

// CapTableHandler serves /equity/cap-table.
type CapTableHandler struct {
	usecase usecase.ICapTableUseCase
	now     func() time.Time
}

func NewCapTableHandler(uc usecase.ICapTableUseCase) *CapTableHandler {
	return &CapTableHandler{usecase: uc, now: func() time.Time { return time.Now().UTC() }}
}

// GetCapTable godoc
// @Summary      Cap table of a startup
// @Tags         cap-table
// @Produce      json
// @Param        startupId path string true "Startup ID"
// @Success      200 {object} response.CapTableResponse
// @Failure      404 {object} pkg.HTTPError
// @Security     Bearer
// @Router       /equity/cap-table/{startupId} [get]
func (h *CapTableHandler) GetCapTable(c *gin.Context) {
	ct, err := h.usecase.GetCapTable(c.Request.Context(), c.Param("startupId"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromCapTable(ct))
}

// AddEntry godoc
// @Summary      Add a cap table entry
// @Tags         cap-table
// @Accept       json
// @Produce      json
// @Param        body body request.AddEntryRequest true "Entry"
// @Success      201 {object} map[string]response.EntryResponse
// @Failure      400 {object} pkg.HTTPError
// @Failure      403 {object} pkg.HTTPError
// @Failure      409 {object} pkg.HTTPError
// @Security     Bearer
// @Router       /equity/cap-table [post]
func (h *CapTableHandler) AddEntry(c *gin.Context) {
	var payload request.AddEntryRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeInvalidPayload(c)
		return
	}
	in, err := payload.ToInput()
	if err != nil {
		writeError(c, err)
		return
	}

	entry, err := h.usecase.AddEntry(c.Request.Context(), middleware.IdentityFrom(c), in)
	if err != nil {
		log.Printf("[captable][handler] add failed startup_id=%s err=%v", in.StartupID, err)
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"entry": response.FromEntry(entry)})
}

// UpdateEntry godoc
// @Summary      Update a cap table entry
// @Tags         cap-table
// @Accept       json
// @Produce      json
// @Param        id   path string true "Entry ID"
// @Param        body body request.UpdateEntryRequest true "Fields to change"
// @Success      200 {object} map[string]response.EntryResponse
// @Failure      400 {object} pkg.HTTPError
// @Failure      409 {object} pkg.HTTPError
// @Security     Bearer
// @Router       /equity/cap-table/{id} [put]
func (h *CapTableHandler) UpdateEntry(c *gin.Context) {
	var payload request.UpdateEntryRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeInvalidPayload(c)
		return
	}
	in, err := payload.ToInput()
	if err != nil {
		writeError(c, err)
		return
	}

	entryID := c.Param("id")
	entry, err := h.usecase.UpdateEntry(c.Request.Context(), middleware.IdentityFrom(c), entryID, in)
	if err != nil {
		log.Printf("[captable][handler] update failed entry_id=%s err=%v", entryID, err)
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"entry": response.FromEntry(entry)})
}

// RemoveEntry godoc
// @Summary      Remove a cap table entry
// @Tags         cap-table
// @Produce      json
// @Param        id path string true "Entry ID"
// @Success      200 {object} map[string]response.EntryResponse
// @Failure      403 {object} pkg.HTTPError
// @Failure      404 {object} pkg.HTTPError
// @Security     Bearer
// @Router       /equity/cap-table/{id} [delete]
func (h *CapTableHandler) RemoveEntry(c *gin.Context) {
	entry, err := h.usecase.RemoveEntry(c.Request.Context(), middleware.IdentityFrom(c), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"entry": response.FromEntry(entry)})
}

// VestingStatus godoc
// @Summary      Vested split of an entry
// @Tags         cap-table
// @Produce      json
// @Param        id    path  string true  "Entry ID"
// @Param        as_of query string false "Date (RFC 3339 or YYYY-MM-DD), defaults to now"
// @Success      200 {object} response.VestingStatusResponse
// @Failure      404 {object} pkg.HTTPError
// @Security     Bearer
// @Router       /equity/cap-table/entries/{id}/vesting [get]
func (h *CapTableHandler) VestingStatus(c *gin.Context) {
	asOf, err := request.ParseDate(c.Query("as_of"))
	if err != nil {
		writeError(c, err)
		return
	}
	if asOf.IsZero() {
		asOf = h.now()
	}

	status, err := h.usecase.VestingStatus(c.Request.Context(), c.Param("id"), asOf)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromVestingStatus(status))
}
