package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"fleet_bill_verifier/internal/adapter/http/handlers/mocks"
	"fleet_bill_verifier/internal/domain/entities"
	"fleet_bill_verifier/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newInvoiceRouter(h *InvoiceHandler) *gin.Engine {
	r := gin.New()
	r.POST("/v1/invoices/evaluate", h.EvaluateInvoice)
	r.GET("/v1/invoices/demo", h.GetDemoInvoice)
	return r
}

func postEvaluate(r *gin.Engine, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/v1/invoices/evaluate", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestInvoiceHandler_EvaluateInvoice(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInvoiceEvaluationUseCase(ctrl)
		r := newInvoiceRouter(NewInvoiceHandler(uc, 0.1))

		w := postEvaluate(r, "{")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("empty items", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInvoiceEvaluationUseCase(ctrl)
		r := newInvoiceRouter(NewInvoiceHandler(uc, 0.1))

		w := postEvaluate(r, `{"items":[]}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("margin out of range", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInvoiceEvaluationUseCase(ctrl)
		r := newInvoiceRouter(NewInvoiceHandler(uc, 0.1))

		w := postEvaluate(r, `{"margin_pct":0.9,"items":[{"quantity":1,"cost":10,"description":"BRAKE PAD"}]}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("unit cost above maximum", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInvoiceEvaluationUseCase(ctrl)
		r := newInvoiceRouter(NewInvoiceHandler(uc, 0.1))

		w := postEvaluate(r, `{"items":[{"quantity":2,"cost":1e308,"description":"BRAKE PAD"}]}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("default margin and success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInvoiceEvaluationUseCase(ctrl)
		r := newInvoiceRouter(NewInvoiceHandler(uc, 0.15))

		avg := 95.0
		uc.EXPECT().
			Evaluate(gomock.Any(), gomock.Any(), 0.15).
			DoAndReturn(func(_ any, items []entities.LineItem, margin float64) (entities.InvoiceEvaluation, error) {
				if len(items) != 1 || items[0].Description != "A/C RECEIVER - DRYER" || items[0].ATACode != "01001065" {
					t.Fatalf("unexpected items: %+v", items)
				}
				return entities.InvoiceEvaluation{
					ID:          "ev-1",
					MarginPct:   margin,
					EvaluatedAt: time.Now().UTC(),
					Rows: []entities.EvaluatedRow{{
						LineItem:   items[0],
						ItemsTotal: 186.24,
						MarketAvg:  &avg,
						Status:     entities.LineStatusApproved,
						ReasonCode: entities.ReasonAtOrBelowMarket,
					}},
					Summary: entities.InvoiceSummary{TotalBill: 186.24, ApprovedCount: 1, GrandTotalFlag: entities.GrandTotalFlagNone},
				}, nil
			})

		w := postEvaluate(r, `{"items":[{"quantity":2,"cost":93.12,"description":"A/C RECEIVER - DRYER","type":"PART","ata_code":"01001065"}]}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}

		var body struct {
			EvaluationID string  `json:"evaluation_id"`
			MarginPct    float64 `json:"margin_pct"`
			Rows         []struct {
				Status    string   `json:"status"`
				MarketAvg *float64 `json:"market_avg"`
			} `json:"rows"`
			Summary struct {
				ApprovedCount  int    `json:"approved_count"`
				GrandTotalFlag string `json:"grand_total_flag"`
			} `json:"summary"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("decode body: %v", err)
		}
		if body.EvaluationID != "ev-1" || body.MarginPct != 0.15 || len(body.Rows) != 1 || body.Rows[0].Status != "approved" {
			t.Fatalf("unexpected body: %+v", body)
		}
		if body.Rows[0].MarketAvg == nil || *body.Rows[0].MarketAvg != 95 || body.Summary.ApprovedCount != 1 || body.Summary.GrandTotalFlag != "none" {
			t.Fatalf("unexpected body: %+v", body)
		}
	})

	t.Run("explicit margin is forwarded", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInvoiceEvaluationUseCase(ctrl)
		r := newInvoiceRouter(NewInvoiceHandler(uc, 0.1))

		uc.EXPECT().Evaluate(gomock.Any(), gomock.Any(), 0.0).Return(entities.InvoiceEvaluation{ID: "ev-2"}, nil)

		w := postEvaluate(r, `{"margin_pct":0,"items":[{"quantity":1,"cost":10,"description":"BRAKE PAD"}]}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("provider not configured", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInvoiceEvaluationUseCase(ctrl)
		r := newInvoiceRouter(NewInvoiceHandler(uc, 0.1))

		uc.EXPECT().Evaluate(gomock.Any(), gomock.Any(), gomock.Any()).Return(entities.InvoiceEvaluation{}, usecase.ErrMarketProviderNotConfigured)

		w := postEvaluate(r, `{"items":[{"quantity":1,"cost":10,"description":"BRAKE PAD"}]}`)
		if w.Code != http.StatusServiceUnavailable {
			t.Fatalf("expected 503, got %d", w.Code)
		}
		var body map[string]string
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["code"] != "MARKET_PROVIDER_UNAVAILABLE" {
			t.Fatalf("unexpected body: %v", body)
		}
	})

	t.Run("unexpected error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInvoiceEvaluationUseCase(ctrl)
		r := newInvoiceRouter(NewInvoiceHandler(uc, 0.1))

		uc.EXPECT().Evaluate(gomock.Any(), gomock.Any(), gomock.Any()).Return(entities.InvoiceEvaluation{}, errors.New("boom"))

		w := postEvaluate(r, `{"items":[{"quantity":1,"cost":10,"description":"BRAKE PAD"}]}`)
		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})
}

func TestInvoiceHandler_GetDemoInvoice(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIInvoiceEvaluationUseCase(ctrl)
	r := newInvoiceRouter(NewInvoiceHandler(uc, 0.1))

	uc.EXPECT().DemoLineItems().Return([]entities.LineItem{{Quantity: 1, Cost: 100, Description: "REEFER COMPRESSOR", Type: "PART"}})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/invoices/demo", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body struct {
		Items []map[string]any `json:"items"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if len(body.Items) != 1 || body.Items[0]["description"] != "REEFER COMPRESSOR" {
		t.Fatalf("unexpected body: %+v", body)
	}
}

func TestMapInvoiceError(t *testing.T) {
	cases := []struct {
		err    error
		status int
		code   string
	}{
		{usecase.ErrNoLineItems, http.StatusBadRequest, "NO_LINE_ITEMS"},
		{usecase.ErrInvalidMarginPct, http.StatusBadRequest, "INVALID_MARGIN_PCT"},
		{usecase.ErrMarketProviderNotConfigured, http.StatusServiceUnavailable, "MARKET_PROVIDER_UNAVAILABLE"},
		{errors.New("x"), http.StatusInternalServerError, "INTERNAL_ERROR"},
	}
	for _, tc := range cases {
		appErr := mapInvoiceError(tc.err)
		if appErr.HTTPStatus != tc.status || appErr.Code != tc.code {
			t.Fatalf("%v: got %d %s", tc.err, appErr.HTTPStatus, appErr.Code)
		}
		if !errors.Is(appErr, tc.err) {
			t.Fatalf("expected wrapped %v", tc.err)
		}
	}
}

func TestPing(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/v1/ping", Ping)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/ping", nil))
	if w.Code != http.StatusOK || !bytes.Contains(w.Body.Bytes(), []byte("pong")) {
		t.Fatalf("unexpected ping response %d %s", w.Code, w.Body.String())
	}
}
