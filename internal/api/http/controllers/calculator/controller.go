package calculator

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"unitcalc/internal/ports"
)

// Controller — маршруты калькулятора: apply, session (WebSocket), history.
type Controller struct {
	uc  ports.ICalculatorUseCase
	log *slog.Logger
}

// New создаёт контроллер калькулятора.
func New(uc ports.ICalculatorUseCase, log *slog.Logger) *Controller {
	return &Controller{uc: uc, log: log}
}

// RegisterRoutes реализует http.Controller: регистрирует маршруты на роутере.
func (c *Controller) RegisterRoutes(r *gin.Engine) {
	api := r.Group("/api/v1")

	api.POST("/calculator/apply", c.apply)
	api.GET("/calculator/session", c.session)
	api.GET("/history", c.history)
	api.DELETE("/history/:id", c.removeCalculation)
	api.DELETE("/history", c.clearHistory)
}

// @Summary Применить действие калькулятора
// @Description Принимает состояние и действие, возвращает новое состояние. Завершённое вычисление сохраняется в историю.
// @Tags calculator
// @Accept json
// @Produce json
// @Param request body ApplyRequest true "Состояние и действие"
// @Success 200 {object} ApplyResponse "Новое состояние"
// @Failure 400 {object} ErrorResponse "Невалидное действие"
// @Router /api/v1/calculator/apply [post]
func (c *Controller) apply(ctx *gin.Context) {
	var req ApplyRequest

	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.log.Warn("apply bind failed", "error", err)
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request: " + err.Error()})
		return
	}

	if err := req.Action.Validate(); err != nil {
		c.log.Warn("apply validation failed", "error", err)
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	state, calculation := c.uc.Apply(ctx.Request.Context(), req.State.toState(), req.Action.toAction())
	ctx.JSON(http.StatusOK, ApplyResponse{
		State:       fromState(state),
		Calculation: fromCalculation(calculation),
	})
}

// @Summary Получить историю вычислений
// @Description Возвращает список завершённых вычислений, последние сначала
// @Tags calculator
// @Produce json
// @Success 200 {object} HistoryResponse "Список вычислений"
// @Failure 500 {object} ErrorResponse "Внутренняя ошибка сервера"
// @Router /api/v1/history [get]
func (c *Controller) history(ctx *gin.Context) {
	list, err := c.uc.History(ctx.Request.Context())
	if err != nil {
		c.log.Error("history failed", "error", err)
		ctx.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}
	items := make([]CalculationDTO, len(list))
	for i, calculation := range list {
		items[i] = *fromCalculation(&calculation)
	}
	ctx.JSON(http.StatusOK, HistoryResponse{Items: items})
}

// @Summary Удалить запись истории
// @Tags calculator
// @Produce json
// @Param id path int true "ID записи"
// @Success 204 "Удалено"
// @Failure 400 {object} ErrorResponse "Невалидный id"
// @Router /api/v1/history/{id} [delete]
func (c *Controller) removeCalculation(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id: " + ctx.Param("id")})
		return
	}
	if err := c.uc.RemoveCalculation(ctx.Request.Context(), id); err != nil {
		c.log.Error("remove calculation failed", "id", id, "error", err)
		ctx.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}
	ctx.Status(http.StatusNoContent)
}

// @Summary Очистить историю
// @Tags calculator
// @Success 204 "Очищено"
// @Router /api/v1/history [delete]
func (c *Controller) clearHistory(ctx *gin.Context) {
	if err := c.uc.ClearHistory(ctx.Request.Context()); err != nil {
		c.log.Error("clear history failed", "error", err)
		ctx.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}
	ctx.Status(http.StatusNoContent)
}
