package handlers

import (
	"net/http"

	request "startlabx/internal/adapter/http/dto/request"
	response "startlabx/internal/adapter/http/dto/response"
	"startlabx/internal/usecase"

	"github.com/gin-gonic/gin"
)

// CalculatorHandler serves the stateless /equity/calculator endpoints.
type CalculatorHandler struct {
	usecase usecase.ICalculatorUseCase
}

func NewCalculatorHandler(uc usecase.ICalculatorUseCase) *CalculatorHandler {
	return &CalculatorHandler{usecase: uc}
}

// Vesting godoc
// @Summary      Monthly vesting schedule
// @Tags         calculator
// @Accept       json
// @Produce      json
// @Param        body body request.VestingScheduleRequest true "Schedule parameters"
// @Success      200 {object} map[string][]response.VestingPointResponse
// @Failure      400 {object} pkg.HTTPError
// @Security     Bearer
// @Router       /equity/calculator/vesting [post]
func (h *CalculatorHandler) Vesting(c *gin.Context) {
	var payload request.VestingScheduleRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeInvalidPayload(c)
		return
	}
	in, err := payload.ToInput()
	if err != nil {
		writeError(c, err)
		return
	}

	points, err := h.usecase.VestingSchedule(c.Request.Context(), in)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"schedule": response.FromSchedule(points)})
}

// Dilution godoc
// @Summary      Dilution of a holding after a priced round
// @Tags         calculator
// @Accept       json
// @Produce      json
// @Param        body body request.DilutionRequest true "Round"
// @Success      200 {object} response.DilutionResponse
// @Failure      400 {object} pkg.HTTPError
// @Security     Bearer
// @Router       /equity/calculator/dilution [post]
func (h *CalculatorHandler) Dilution(c *gin.Context) {
	var payload request.DilutionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeInvalidPayload(c)
		return
	}

	result, err := h.usecase.Dilution(c.Request.Context(), *payload.CurrentEquity, *payload.NewInvestmentAmount, *payload.PreMoneyValuation)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromDilution(result))
}

// Exit godoc
// @Summary      Payout of a holding at exit
// @Tags         calculator
// @Accept       json
// @Produce      json
// @Param        body body request.ExitRequest true "Exit"
// @Success      200 {object} response.ExitResponse
// @Failure      400 {object} pkg.HTTPError
// @Security     Bearer
// @Router       /equity/calculator/exit [post]
func (h *CalculatorHandler) Exit(c *gin.Context) {
	var payload request.ExitRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeInvalidPayload(c)
		return
	}

	result, err := h.usecase.Exit(c.Request.Context(), *payload.EquityPercentage, *payload.ExitValuation, payload.Preference())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromExit(result))
}
