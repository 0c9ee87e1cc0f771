package handlers

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"startlabx/internal/adapter/http/handlers/mocks"
	"startlabx/internal/domain/entities"
	"startlabx/internal/usecase"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func TestEquityOfferHandler_CreateOffer(t *testing.T) {
	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIEquityOfferUseCase(ctrl)
		h := NewEquityOfferHandler(uc)

		r := newTestRouter()
		r.POST("/equity/offers", h.CreateOffer)

		w := doJSON(r, http.MethodPost, "/equity/offers", "{")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("missing equity", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIEquityOfferUseCase(ctrl)
		h := NewEquityOfferHandler(uc)

		r := newTestRouter()
		r.POST("/equity/offers", h.CreateOffer)

		w := doJSON(r, http.MethodPost, "/equity/offers", `{"startup_id":"s-1","professional_id":"p-1"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("forbidden", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIEquityOfferUseCase(ctrl)
		h := NewEquityOfferHandler(uc)

		r := newTestRouter()
		r.POST("/equity/offers", h.CreateOffer)

		uc.EXPECT().CreateOffer(gomock.Any(), testCaller, gomock.Any()).Return(entities.EquityOffer{}, usecase.ErrForbidden)

		w := doJSON(r, http.MethodPost, "/equity/offers", `{"startup_id":"s-1","professional_id":"p-1","equity_percentage":5}`)
		if w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIEquityOfferUseCase(ctrl)
		h := NewEquityOfferHandler(uc)

		r := newTestRouter()
		r.POST("/equity/offers", h.CreateOffer)

		now := time.Now().UTC()
		uc.EXPECT().CreateOffer(gomock.Any(), testCaller, gomock.Any()).DoAndReturn(
			func(_ any, _ entities.Identity, in usecase.CreateOfferInput) (entities.EquityOffer, error) {
				if !in.EquityPercentage.Equal(decimal.RequireFromString("2.5")) || in.VestingPeriodMonths == nil || *in.VestingPeriodMonths != 48 {
					t.Fatalf("unexpected input: %+v", in)
				}
				if !in.Salary.Equal(decimal.NewFromInt(90000)) {
					t.Fatalf("unexpected salary: %s", in.Salary)
				}
				return entities.EquityOffer{
					ID: "o-1", StartupID: in.StartupID, ProfessionalID: in.ProfessionalID,
					EquityPercentage: in.EquityPercentage, VestingPeriodMonths: 48, CliffPeriodMonths: 12,
					Salary: in.Salary, Status: entities.OfferStatusPending, CreatedAt: now, UpdatedAt: now,
				}, nil
			})

		w := doJSON(r, http.MethodPost, "/equity/offers",
			`{"startup_id":"s-1","professional_id":"p-1","equity_percentage":"2.5","vesting_period":48,"cliff_period":12,"role":"CTO","salary":90000}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}

		var body struct {
			Offer struct {
				ID               string  `json:"id"`
				EquityPercentage float64 `json:"equity_percentage"`
				Status           string  `json:"status"`
			} `json:"offer"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if body.Offer.ID != "o-1" || body.Offer.EquityPercentage != 2.5 || body.Offer.Status != "PENDING" {
			t.Fatalf("unexpected body: %+v", body)
		}
	})
}

func TestEquityOfferHandler_UpdateStatus(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
		code string
	}{
		{name: "invalid status", err: usecase.ErrInvalidStatus, want: http.StatusBadRequest, code: "INVALID_STATUS"},
		{name: "offer missing", err: usecase.ErrOfferNotFound, want: http.StatusNotFound, code: "OFFER_NOT_FOUND"},
		{name: "already decided", err: entities.ErrInvalidStateTransition, want: http.StatusConflict, code: "INVALID_STATE_TRANSITION"},
		{name: "allocation exceeded", err: entities.ErrAllocationExceeded, want: http.StatusConflict, code: "ALLOCATION_EXCEEDED"},
		{name: "startup deleted meanwhile", err: entities.ErrStartupGone, want: http.StatusNotFound, code: "STARTUP_NOT_FOUND"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			uc := mocks.NewMockIEquityOfferUseCase(ctrl)
			h := NewEquityOfferHandler(uc)

			r := newTestRouter()
			r.PUT("/equity/offers/:id/status", h.UpdateStatus)

			uc.EXPECT().ChangeStatus(gomock.Any(), testCaller, "o-1", entities.OfferStatusAccepted).Return(usecase.StatusChangeResult{}, tc.err)

			w := doJSON(r, http.MethodPut, "/equity/offers/o-1/status", `{"status":"ACCEPTED"}`)
			if w.Code != tc.want {
				t.Fatalf("expected %d, got %d", tc.want, w.Code)
			}
			var body struct {
				Error struct {
					Code string `json:"code"`
				} `json:"error"`
			}
			if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
				t.Fatalf("decode: %v", err)
			}
			if body.Error.Code != tc.code {
				t.Fatalf("expected code %s, got %s", tc.code, body.Error.Code)
			}
		})
	}

	t.Run("accepted returns entry", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIEquityOfferUseCase(ctrl)
		h := NewEquityOfferHandler(uc)

		r := newTestRouter()
		r.PUT("/equity/offers/:id/status", h.UpdateStatus)

		entry := entities.CapTableEntry{ID: "e-1", StakeholderID: "p-1", StakeholderType: entities.StakeholderEmployee, EquityPercentage: decimal.NewFromInt(5)}
		uc.EXPECT().ChangeStatus(gomock.Any(), testCaller, "o-1", entities.OfferStatusAccepted).Return(usecase.StatusChangeResult{
			Offer: entities.EquityOffer{ID: "o-1", Status: entities.OfferStatusAccepted},
			Entry: &entry,
		}, nil)

		w := doJSON(r, http.MethodPut, "/equity/offers/o-1/status", `{"status":"ACCEPTED"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body struct {
			Offer struct {
				Status string `json:"status"`
			} `json:"offer"`
			Entry *struct {
				ID string `json:"id"`
			} `json:"entry"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if body.Offer.Status != "ACCEPTED" || body.Entry == nil || body.Entry.ID != "e-1" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("missing status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIEquityOfferUseCase(ctrl)
		h := NewEquityOfferHandler(uc)

		r := newTestRouter()
		r.PUT("/equity/offers/:id/status", h.UpdateStatus)

		w := doJSON(r, http.MethodPut, "/equity/offers/o-1/status", `{}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestEquityOfferHandler_Lists(t *testing.T) {
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIEquityOfferUseCase(ctrl)
	h := NewEquityOfferHandler(uc)

	r := newTestRouter()
	r.GET("/equity/offers/startup/:startupId", h.ListByStartup)
	r.GET("/equity/offers/professional/:userId", h.ListByProfessional)

	uc.EXPECT().ListByStartupID(gomock.Any(), "s-1").Return([]entities.EquityOffer{{ID: "o-2"}, {ID: "o-1"}}, nil)
	uc.EXPECT().ListByProfessionalID(gomock.Any(), "p-1").Return([]entities.EquityOffer{}, nil)

	w := doJSON(r, http.MethodGet, "/equity/offers/startup/s-1", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body struct {
		Offers []struct {
			ID string `json:"id"`
		} `json:"offers"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(body.Offers) != 2 || body.Offers[0].ID != "o-2" {
		t.Fatalf("unexpected offers: %+v", body.Offers)
	}

	w = doJSON(r, http.MethodGet, "/equity/offers/professional/p-1", "")
	if w.Code != http.StatusOK || w.Body.String() != `{"offers":[]}` {
		t.Fatalf("expected empty list, got %d %s", w.Code, w.Body.String())
	}
}
