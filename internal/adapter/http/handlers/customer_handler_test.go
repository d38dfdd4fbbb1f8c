package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"oficina_xpto/internal/adapter/http/handlers/mocks"
	"oficina_xpto/internal/domain/entities"
	"oficina_xpto/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestCustomerHandler_Create(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICustomerUseCase(ctrl)
		h := NewCustomerHandler(uc)

		r := gin.New()
		r.POST("/v1/customers", h.Create)

		req := httptest.NewRequest(http.MethodPost, "/v1/customers", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICustomerUseCase(ctrl)
		uc.EXPECT().Create(gomock.Any(), gomock.Any()).
			Return(entities.Customer{ID: "c1", Name: "Ana", Email: "ana@example.com"}, nil)
		h := NewCustomerHandler(uc)

		r := gin.New()
		r.POST("/v1/customers", h.Create)

		body := `{"name":"Ana","email":"ana@example.com"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/customers", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
	})
}

func TestCustomerHandler_GetByID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICustomerUseCase(ctrl)
		uc.EXPECT().GetByID(gomock.Any(), "missing").Return(entities.Customer{}, usecase.ErrCustomerNotFound)
		h := NewCustomerHandler(uc)

		r := gin.New()
		r.GET("/v1/customers/:id", h.GetByID)

		req := httptest.NewRequest(http.MethodGet, "/v1/customers/missing", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestCustomerHandler_ListOptions(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockICustomerUseCase(ctrl)
	uc.EXPECT().List(gomock.Any()).Return([]entities.Customer{
		{ID: "c1", Name: "Ana", Email: "ana@example.com"},
		{ID: "c2", Name: "Bruno", Email: "bruno@example.com"},
	}, nil)
	h := NewCustomerHandler(uc)

	r := gin.New()
	r.GET("/v1/customers/select", h.ListOptions)

	req := httptest.NewRequest(http.MethodGet, "/v1/customers/select", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var res []map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &res); err != nil {
		t.Fatalf("invalid response json: %v", err)
	}
	if len(res) != 2 || res[0]["id"] != "c1" || res[0]["label"] != "Ana" {
		t.Fatalf("unexpected options: %v", res)
	}
	if _, ok := res[0]["email"]; ok {
		t.Fatalf("options must not expose full records: %v", res)
	}
}
