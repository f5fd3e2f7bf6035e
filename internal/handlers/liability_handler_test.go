package handlers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"

	apperrors "finhealth/internal/errors"
	"finhealth/internal/models"
	"finhealth/internal/services"
)

func setupLiabilityRouter(handler *LiabilityHandler) *gin.Engine {
	r := gin.New()
	g := r.Group("/liabilities", injectUserID(testUserID))
	g.POST("", handler.CreateLiability)
	g.GET("", handler.GetLiabilities)
	g.DELETE("/:id", handler.DeleteLiability)
	return r
}

func TestLiabilityHandler_CreateLiability(t *testing.T) {
	t.Run("returns 201 on success", func(t *testing.T) {
		var got services.LiabilityInput
		svc := &mockLiabilityService{
			createLiabilityFn: func(_ string, in services.LiabilityInput) (*models.Liability, error) {
				got = in
				return &models.Liability{Base: models.Base{ID: "l1"}, Type: in.Type}, nil
			},
		}
		r := setupLiabilityRouter(NewLiabilityHandler(svc, &mockAuditService{}))

		rec := doRequest(r, "POST", "/liabilities",
			`{"name":"Card","type":"Credit Card","outstanding_amount":50000,"interest_rate":36,"monthly_payment":2500}`)

		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
		}
		want := services.LiabilityInput{
			Name: "Card", Type: models.LiabilityTypeCreditCard, OutstandingAmount: 50000, InterestRate: 36, MonthlyPayment: 2500,
		}
		if got != want {
			t.Errorf("input = %+v, want %+v", got, want)
		}
	})

	tests := []struct {
		name string
		body string
	}{
		{"unknown type", `{"name":"x","type":"Mortgage"}`},
		{"negative balance", `{"name":"x","type":"EMI","outstanding_amount":-1}`},
		{"rate above 100", `{"name":"x","type":"EMI","interest_rate":120}`},
	}
	for _, tt := range tests {
		t.Run("returns 400 on "+tt.name, func(t *testing.T) {
			r := setupLiabilityRouter(NewLiabilityHandler(&mockLiabilityService{}, &mockAuditService{}))

			rec := doRequest(r, "POST", "/liabilities", tt.body)

			if rec.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d", rec.Code)
			}
		})
	}
}

func TestLiabilityHandler_DeleteLiability(t *testing.T) {
	audit := &mockAuditService{}
	svc := &mockLiabilityService{
		deleteLiabilityFn: func(_, id string) error {
			if id != "l1" {
				return apperrors.ErrLiabilityNotFound
			}
			return nil
		},
	}
	r := setupLiabilityRouter(NewLiabilityHandler(svc, audit))

	if rec := doRequest(r, "DELETE", "/liabilities/l1", ""); rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	rec := doRequest(r, "DELETE", "/liabilities/l2", "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
	assertErrorCode(t, parseJSON(t, rec), "LIABILITY_NOT_FOUND")
	if len(audit.entries) != 1 || audit.entries[0].action != services.AuditDeleteLiability {
		t.Errorf("unexpected audit entries %+v", audit.entries)
	}
}
