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

type StartupHandler struct {
	usecase usecase.IStartupUseCase
}

func NewStartupHandler(uc usecase.IStartupUseCase) *StartupHandler {
	return &StartupHandler{usecase: uc}
}

// Register creates a startup owned by the caller.
func (h *StartupHandler) Register(c *gin.Context) {
	var payload request.RegisterStartupRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeInvalidPayload(c)
		return
	}

	s, err := h.usecase.Register(c.Request.Context(), middleware.IdentityFrom(c), payload.Name, payload.Description)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"startup": response.FromStartup(s)})
}

func (h *StartupHandler) Get(c *gin.Context) {
	s, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"startup": response.FromStartup(s)})
}

// Delete removes the startup and its cap table.
func (h *StartupHandler) Delete(c *gin.Context) {
	startupID := c.Param("id")
	s, removed, err := h.usecase.Delete(c.Request.Context(), middleware.IdentityFrom(c), startupID)
	if err != nil {
		writeError(c, err)
		return
	}
	log.Printf("[startup][handler] deleted startup_id=%s removed_entries=%d", startupID, removed)
	c.JSON(http.StatusOK, gin.H{"startup": response.FromStartup(s), "removedEntries": removed})
}
