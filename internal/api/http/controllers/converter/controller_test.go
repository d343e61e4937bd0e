package converter

import (
	"encoding/json"
	"log/slog"
	"math"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"unitcalc/internal/domain"
	"unitcalc/internal/mocks"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
}

// newTestRouter собирает gin-роутер с контроллером поверх мока юзкейса.
func newTestRouter(t *testing.T) (*gin.Engine, *mocks.MockIConverterUseCase) {
	t.Helper()

	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	uc := mocks.NewMockIConverterUseCase(ctrl)
	r := gin.New()
	New(uc, newTestLogger()).RegisterRoutes(r)
	return r, uc
}

func TestConvert_OK(t *testing.T) {
	r, uc := newTestRouter(t)

	uc.EXPECT().
		Convert(gomock.Any(), 100.0, "ft", "m", "length").
		Return(&domain.Conversion{
			Category:  domain.CategoryLength,
			FromUnit:  "ft",
			ToUnit:    "m",
			Value:     100,
			Result:    30.48,
			Formatted: "30.48",
		}, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/convert",
		strings.NewReader(`{"value":100,"from":"ft","to":"m","category":"length"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp ConvertResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotNil(t, resp.Result)
	assert.Equal(t, 30.48, *resp.Result)
	assert.Equal(t, "30.48", resp.Formatted)
}

// Ноль — валидное значение: binding не должен резать value == 0.
func TestConvert_ZeroValue(t *testing.T) {
	r, uc := newTestRouter(t)

	uc.EXPECT().
		Convert(gomock.Any(), 0.0, "m", "ft", "length").
		Return(&domain.Conversion{
			Category: domain.CategoryLength, FromUnit: "m", ToUnit: "ft",
			Value: 0, Result: 0, Formatted: "0",
		}, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/convert",
		strings.NewReader(`{"value":0,"from":"m","to":"ft","category":"length"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

// Неизвестная единица: числового result в ответе нет, formatted == "Error".
func TestConvert_UnknownUnit(t *testing.T) {
	r, uc := newTestRouter(t)

	uc.EXPECT().
		Convert(gomock.Any(), 1.0, "cubit", "m", "length").
		Return(&domain.Conversion{
			Category: domain.CategoryLength, FromUnit: "cubit", ToUnit: "m",
			Value: 1, Result: math.NaN(), Formatted: "Error",
		}, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/convert",
		strings.NewReader(`{"value":1,"from":"cubit","to":"m","category":"length"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp ConvertResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Nil(t, resp.Result)
	assert.Equal(t, "Error", resp.Formatted)
}

func TestConvert_UnknownCategory(t *testing.T) {
	r, uc := newTestRouter(t)

	uc.EXPECT().
		Convert(gomock.Any(), 1.0, "usd", "eur", "currency").
		Return(nil, domain.ErrUnknownCategory)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/convert",
		strings.NewReader(`{"value":1,"from":"usd","to":"eur","category":"currency"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestConvert_MissingFields(t *testing.T) {
	r, _ := newTestRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/convert",
		strings.NewReader(`{"from":"ft","to":"m"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCategories(t *testing.T) {
	r, uc := newTestRouter(t)

	uc.EXPECT().Categories().Return([]domain.CategoryDefinition{
		{
			Key: domain.CategoryLength, Name: "Length", BaseName: "meter",
			DefaultFromUnit: "m", DefaultToUnit: "ft",
			Units: []domain.UnitDefinition{
				{Key: "m", Name: "Meter", Abbreviation: "m", System: domain.SystemSI, ToBase: 1},
			},
		},
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/categories", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp CategoriesResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Categories, 1)
	assert.Equal(t, "length", resp.Categories[0].Key)
	require.Len(t, resp.Categories[0].Units, 1)
	assert.Equal(t, "SI", resp.Categories[0].Units[0].System)
}
