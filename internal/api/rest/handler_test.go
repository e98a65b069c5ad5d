package rest_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/space-ranger/ship-registry/internal/api/middleware"
	"github.com/space-ranger/ship-registry/internal/api/rest"
	"github.com/space-ranger/ship-registry/internal/api/shared/dto"
	"github.com/space-ranger/ship-registry/internal/domain"
	"github.com/space-ranger/ship-registry/internal/logger"
	"github.com/space-ranger/ship-registry/internal/mocks"
)

func TestMain(m *testing.M) {
	err := logger.Initialize(logger.Config{
		Debug: false,
	})
	if err != nil {
		panic(err)
	}

	gin.SetMode(gin.TestMode)

	code := m.Run()
	os.Exit(code)
}

// setupRouter wires the handler into a router, replacing the auth middleware
// with a stub that injects the given subject
func setupRouter(handler rest.Handler, subject string) *gin.Engine {
	router := gin.New()

	auth := func(c *gin.Context) {
		if subject != "" {
			c.Set(middleware.AUTH_SUBJECT_KEY, subject)
		}
		c.Next()
	}

	router.GET("/health", handler.HealthCheck)
	v1 := router.Group("/api/v1")
	{
		v1.GET("/series", handler.ListSeries)
		v1.GET("/series/:id", handler.GetSeries)
		v1.POST("/series", auth, handler.CreateSeries)
		v1.POST("/ships/mint", auth, handler.MintShip)
		v1.GET("/ships/:id", handler.GetShip)
		v1.GET("/ships/:id/owner", handler.GetShipOwner)
		v1.GET("/accounts/:account/ships", handler.GetAccountShips)
		v1.GET("/accounts/:account/score", handler.GetScore)
		v1.POST("/accounts/:account/score", handler.AddScore)
		v1.GET("/stats", handler.GetStats)
	}

	return router
}

func performJSON(router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		raw, _ := json.Marshal(body)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestCreateSeries(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockExecutor := mocks.NewMockAPIExecutor(ctrl)
	handler := rest.NewHandler(mockExecutor)

	t.Run("success returns 201", func(t *testing.T) {
		router := setupRouter(handler, "registry.near")

		req := dto.CreateSeriesRequest{Title: "falcon", MediaPath: "ships/falcon.png", MaxSupply: 10}
		mockExecutor.EXPECT().
			CreateSeries(gomock.Any(), "registry.near", req).
			Return(&dto.SeriesResponse{ID: 1, Title: "falcon", MaxSupply: 10}, nil).
			Times(1)

		w := performJSON(router, http.MethodPost, "/api/v1/series", req)

		assert.Equal(t, http.StatusCreated, w.Code)

		var response dto.SeriesResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, uint32(1), response.ID)
	})

	t.Run("non-owner caller gets 403", func(t *testing.T) {
		router := setupRouter(handler, "mallory.near")

		req := dto.CreateSeriesRequest{Title: "falcon", MediaPath: "ships/falcon.png", MaxSupply: 10}
		mockExecutor.EXPECT().
			CreateSeries(gomock.Any(), "mallory.near", req).
			Return(nil, domain.ErrUnauthorized).
			Times(1)

		w := performJSON(router, http.MethodPost, "/api/v1/series", req)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("invalid input gets 400", func(t *testing.T) {
		router := setupRouter(handler, "registry.near")

		req := dto.CreateSeriesRequest{Title: "", MediaPath: "ships/falcon.png", MaxSupply: 10}
		mockExecutor.EXPECT().
			CreateSeries(gomock.Any(), "registry.near", req).
			Return(nil, fmt.Errorf("%w: title is required", domain.ErrInvalidInput)).
			Times(1)

		w := performJSON(router, http.MethodPost, "/api/v1/series", req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("missing auth subject gets 403 without reaching the executor", func(t *testing.T) {
		router := setupRouter(handler, "")

		req := dto.CreateSeriesRequest{Title: "falcon", MediaPath: "ships/falcon.png", MaxSupply: 10}
		w := performJSON(router, http.MethodPost, "/api/v1/series", req)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}

func TestGetSeries(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockExecutor := mocks.NewMockAPIExecutor(ctrl)
	handler := rest.NewHandler(mockExecutor)
	router := setupRouter(handler, "")

	t.Run("found returns 200", func(t *testing.T) {
		mockExecutor.EXPECT().
			GetSeries(gomock.Any(), uint32(1)).
			Return(&dto.SeriesResponse{ID: 1, Title: "falcon"}, nil).
			Times(1)

		w := performJSON(router, http.MethodGet, "/api/v1/series/1", nil)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("missing returns 404", func(t *testing.T) {
		mockExecutor.EXPECT().
			GetSeries(gomock.Any(), uint32(9)).
			Return(nil, nil).
			Times(1)

		w := performJSON(router, http.MethodGet, "/api/v1/series/9", nil)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("non-numeric id returns 400", func(t *testing.T) {
		w := performJSON(router, http.MethodGet, "/api/v1/series/abc", nil)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestMintShip(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockExecutor := mocks.NewMockAPIExecutor(ctrl)
	handler := rest.NewHandler(mockExecutor)
	router := setupRouter(handler, "alice.near")

	mintReq := dto.MintShipRequest{SeriesID: 1, AttachedDeposit: "100000000000000000000000"}

	t.Run("success returns 201", func(t *testing.T) {
		mockExecutor.EXPECT().
			MintShip(gomock.Any(), "alice.near", mintReq).
			Return(&dto.ShipResponse{ID: 1, TokenID: "1", SeriesID: 1}, nil).
			Times(1)

		w := performJSON(router, http.MethodPost, "/api/v1/ships/mint", mintReq)

		assert.Equal(t, http.StatusCreated, w.Code)

		var response dto.ShipResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, uint64(1), response.ID)
	})

	t.Run("domain errors map onto status codes", func(t *testing.T) {
		cases := []struct {
			err  error
			code int
		}{
			{domain.ErrSeriesNotFound, http.StatusNotFound},
			{domain.ErrSupplyExhausted, http.StatusConflict},
			{domain.ErrAlreadyOwnsShip, http.StatusConflict},
			{domain.ErrInsufficientDeposit, http.StatusPaymentRequired},
			{domain.ErrInvalidAmount, http.StatusUnprocessableEntity},
		}

		for _, tc := range cases {
			mockExecutor.EXPECT().
				MintShip(gomock.Any(), "alice.near", mintReq).
				Return(nil, tc.err).
				Times(1)

			w := performJSON(router, http.MethodPost, "/api/v1/ships/mint", mintReq)

			assert.Equal(t, tc.code, w.Code, "error %v", tc.err)
		}
	})

	t.Run("missing fields return 422", func(t *testing.T) {
		w := performJSON(router, http.MethodPost, "/api/v1/ships/mint", dto.MintShipRequest{})

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})
}

func TestGetShip(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockExecutor := mocks.NewMockAPIExecutor(ctrl)
	handler := rest.NewHandler(mockExecutor)
	router := setupRouter(handler, "")

	t.Run("found returns 200", func(t *testing.T) {
		mockExecutor.EXPECT().
			GetShip(gomock.Any(), uint64(7)).
			Return(&dto.ShipResponse{ID: 7, TokenID: "7"}, nil).
			Times(1)

		w := performJSON(router, http.MethodGet, "/api/v1/ships/7", nil)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("missing returns 404", func(t *testing.T) {
		mockExecutor.EXPECT().
			GetShip(gomock.Any(), uint64(9)).
			Return(nil, nil).
			Times(1)

		w := performJSON(router, http.MethodGet, "/api/v1/ships/9", nil)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestGetShipOwner(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockExecutor := mocks.NewMockAPIExecutor(ctrl)
	handler := rest.NewHandler(mockExecutor)
	router := setupRouter(handler, "")

	t.Run("resolved owner returns 200", func(t *testing.T) {
		owner := "alice.near"
		mockExecutor.EXPECT().
			GetShipOwner(gomock.Any(), uint64(7)).
			Return(&dto.OwnerResponse{ShipID: 7, TokenID: "7", Owner: &owner}, nil).
			Times(1)

		w := performJSON(router, http.MethodGet, "/api/v1/ships/7/owner", nil)

		assert.Equal(t, http.StatusOK, w.Code)

		var response dto.OwnerResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		require.NotNil(t, response.Owner)
		assert.Equal(t, "alice.near", *response.Owner)
	})

	t.Run("unknown owner returns 200 with null owner", func(t *testing.T) {
		mockExecutor.EXPECT().
			GetShipOwner(gomock.Any(), uint64(7)).
			Return(&dto.OwnerResponse{ShipID: 7, TokenID: "7"}, nil).
			Times(1)

		w := performJSON(router, http.MethodGet, "/api/v1/ships/7/owner", nil)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"owner":null`)
	})

	t.Run("missing ship returns 404", func(t *testing.T) {
		mockExecutor.EXPECT().
			GetShipOwner(gomock.Any(), uint64(9)).
			Return(nil, nil).
			Times(1)

		w := performJSON(router, http.MethodGet, "/api/v1/ships/9/owner", nil)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestAccountViews(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockExecutor := mocks.NewMockAPIExecutor(ctrl)
	handler := rest.NewHandler(mockExecutor)
	router := setupRouter(handler, "")

	t.Run("hangar returns 200", func(t *testing.T) {
		mockExecutor.EXPECT().
			GetAccountShips(gomock.Any(), "alice.near").
			Return(&dto.ShipListResponse{Ships: []dto.ShipResponse{{ID: 1}}, Total: 1}, nil).
			Times(1)

		w := performJSON(router, http.MethodGet, "/api/v1/accounts/alice.near/ships", nil)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("score returns 200", func(t *testing.T) {
		mockExecutor.EXPECT().
			GetScore(gomock.Any(), "alice.near").
			Return(&dto.ScoreResponse{Account: "alice.near", Score: "15"}, nil).
			Times(1)

		w := performJSON(router, http.MethodGet, "/api/v1/accounts/alice.near/score", nil)

		assert.Equal(t, http.StatusOK, w.Code)

		var response dto.ScoreResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, "15", response.Score)
	})

	t.Run("invalid account name returns 400", func(t *testing.T) {
		w := performJSON(router, http.MethodGet, "/api/v1/accounts/UPPER/ships", nil)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestAddScore(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockExecutor := mocks.NewMockAPIExecutor(ctrl)
	handler := rest.NewHandler(mockExecutor)
	router := setupRouter(handler, "")

	t.Run("success returns 204", func(t *testing.T) {
		mockExecutor.EXPECT().
			AddScore(gomock.Any(), "alice.near", "10").
			Return(nil).
			Times(1)

		w := performJSON(router, http.MethodPost, "/api/v1/accounts/alice.near/score", dto.AddScoreRequest{Amount: "10"})

		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Empty(t, w.Body.Bytes())
	})

	t.Run("bad amount returns 422", func(t *testing.T) {
		mockExecutor.EXPECT().
			AddScore(gomock.Any(), "alice.near", "abc").
			Return(domain.ErrInvalidAmount).
			Times(1)

		w := performJSON(router, http.MethodPost, "/api/v1/accounts/alice.near/score", dto.AddScoreRequest{Amount: "abc"})

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})

	t.Run("empty amount returns 422 without reaching the executor", func(t *testing.T) {
		w := performJSON(router, http.MethodPost, "/api/v1/accounts/alice.near/score", dto.AddScoreRequest{})

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})
}

func TestGetStats(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockExecutor := mocks.NewMockAPIExecutor(ctrl)
	handler := rest.NewHandler(mockExecutor)
	router := setupRouter(handler, "")

	mockExecutor.EXPECT().
		GetStats(gomock.Any()).
		Return(&dto.StatsResponse{TotalSeries: 2, TotalShips: 5}, nil).
		Times(1)

	w := performJSON(router, http.MethodGet, "/api/v1/stats", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var response dto.StatsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, uint64(2), response.TotalSeries)
	assert.Equal(t, uint64(5), response.TotalShips)
}

func TestHealthCheck(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	handler := rest.NewHandler(mocks.NewMockAPIExecutor(ctrl))
	router := setupRouter(handler, "")

	w := performJSON(router, http.MethodGet, "/health", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "ok")
}
