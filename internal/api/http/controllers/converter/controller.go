package converter

import (
	"errors"
	"log/slog"
	"math"
	"net/http"

	"github.com/gin-gonic/gin"
	"unitcalc/internal/domain"
	"unitcalc/internal/ports"
)

// Controller — маршруты конвертера: convert, categories.
type Controller struct {
	uc  ports.IConverterUseCase
	log *slog.Logger
}

// New создаёт контроллер конвертера.
func New(uc ports.IConverterUseCase, log *slog.Logger) *Controller {
	return &Controller{uc: uc, log: log}
}

// RegisterRoutes реализует http.Controller: регистрирует маршруты на роутере.
func (c *Controller) RegisterRoutes(r *gin.Engine) {
	api := r.Group("/api/v1")

	api.POST("/convert", c.convert)
	api.GET("/categories", c.categories)
}

// @Summary Перевести значение между единицами
// @Description Переводит значение между двумя единицами одной категории. Неизвестная единица — formatted "Error" без числового результата.
// @Tags converter
// @Accept json
// @Produce json
// @Param request body ConvertRequest true "Параметры конвертации"
// @Success 200 {object} ConvertResponse "Результат конвертации"
// @Failure 400 {object} ErrorResponse "Невалидный запрос или неизвестная категория"
// @Router /api/v1/convert [post]
func (c *Controller) convert(ctx *gin.Context) {
	var req ConvertRequest

	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.log.Warn("convert bind failed", "error", err)
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request: " + err.Error()})
		return
	}

	conv, err := c.uc.Convert(ctx.Request.Context(), *req.Value, req.From, req.To, req.Category)
	if err != nil {
		if errors.Is(err, domain.ErrUnknownCategory) {
			c.log.Warn("convert bad category", "error", err)
			ctx.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}
		c.log.Error("convert failed", "error", err)
		ctx.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}

	resp := ConvertResponse{
		Category:  string(conv.Category),
		From:      conv.FromUnit,
		To:        conv.ToUnit,
		Value:     conv.Value,
		Formatted: conv.Formatted,
	}
	if !math.IsNaN(conv.Result) {
		resp.Result = &conv.Result
	}
	ctx.JSON(http.StatusOK, resp)
}

// @Summary Справочник единиц
// @Description Возвращает все категории с единицами и факторами пересчёта
// @Tags converter
// @Produce json
// @Success 200 {object} CategoriesResponse "Справочник"
// @Router /api/v1/categories [get]
func (c *Controller) categories(ctx *gin.Context) {
	list := c.uc.Categories()
	out := make([]CategoryDTO, len(list))
	for i, cat := range list {
		out[i] = fromCategory(cat)
	}
	ctx.JSON(http.StatusOK, CategoriesResponse{Categories: out})
}
