package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"startlabx/internal/adapter/http/handlers/mocks"
	"startlabx/internal/domain/calculator"
	"startlabx/internal/domain/entities"
	"startlabx/internal/usecase"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func TestCapTableHandler_GetCapTable(t *testing.T) {
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockICapTableUseCase(ctrl)
	h := NewCapTableHandler(uc)

	r := newTestRouter()
	r.GET("/equity/cap-table/:startupId", h.GetCapTable)

	uc.EXPECT().GetCapTable(gomock.Any(), "s-1").Return(entities.NewCapTable("s-1", []entities.CapTableEntry{
		{ID: "e-1", EquityPercentage: decimal.NewFromInt(60)},
		{ID: "e-2", EquityPercentage: decimal.NewFromInt(5)},
	}), nil)
	uc.EXPECT().GetCapTable(gomock.Any(), "missing").Return(entities.CapTable{}, usecase.ErrStartupNotFound)

	w := doJSON(r, http.MethodGet, "/equity/cap-table/s-1", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body struct {
		Entries        []json.RawMessage `json:"entries"`
		TotalAllocated float64           `json:"totalAllocated"`
		Available      float64           `json:"available"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(body.Entries) != 2 || body.TotalAllocated != 65 || body.Available != 35 {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}

	w = doJSON(r, http.MethodGet, "/equity/cap-table/missing", "")
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}

func TestCapTableHandler_AddEntry(t *testing.T) {
	t.Run("invalid date", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockICapTableUseCase(ctrl)
		h := NewCapTableHandler(uc)

		r := newTestRouter()
		r.POST("/equity/cap-table", h.AddEntry)

		w := doJSON(r, http.MethodPost, "/equity/cap-table",
			`{"startup_id":"s-1","stakeholder_id":"u-2","stakeholder_type":"investor","equity_percentage":10,"vesting_start":"next week"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("exceeds allocation", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockICapTableUseCase(ctrl)
		h := NewCapTableHandler(uc)

		r := newTestRouter()
		r.POST("/equity/cap-table", h.AddEntry)

		uc.EXPECT().AddEntry(gomock.Any(), testCaller, gomock.Any()).Return(entities.CapTableEntry{}, entities.ErrAllocationExceeded)

		w := doJSON(r, http.MethodPost, "/equity/cap-table",
			`{"startup_id":"s-1","stakeholder_id":"u-2","stakeholder_type":"INVESTOR","equity_percentage":50}`)
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockICapTableUseCase(ctrl)
		h := NewCapTableHandler(uc)

		r := newTestRouter()
		r.POST("/equity/cap-table", h.AddEntry)

		uc.EXPECT().AddEntry(gomock.Any(), testCaller, gomock.Any()).DoAndReturn(
			func(_ any, _ entities.Identity, in usecase.AddEntryInput) (entities.CapTableEntry, error) {
				if in.StakeholderType != entities.StakeholderInvestor || in.VestingStart == nil || in.VestingEnd != nil {
					t.Fatalf("unexpected input: %+v", in)
				}
				return entities.CapTableEntry{ID: "e-9", StartupID: in.StartupID, StakeholderType: in.StakeholderType, EquityPercentage: in.EquityPercentage}, nil
			})

		w := doJSON(r, http.MethodPost, "/equity/cap-table",
			`{"startup_id":"s-1","stakeholder_id":"u-2","stakeholder_type":" investor ","equity_percentage":10,"vesting_start":"2025-01-01"}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
	})
}

func TestCapTableHandler_UpdateAndRemove(t *testing.T) {
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockICapTableUseCase(ctrl)
	h := NewCapTableHandler(uc)

	r := newTestRouter()
	r.PUT("/equity/cap-table/:id", h.UpdateEntry)
	r.DELETE("/equity/cap-table/:id", h.RemoveEntry)

	uc.EXPECT().UpdateEntry(gomock.Any(), testCaller, "e-1", gomock.Any()).DoAndReturn(
		func(_ any, _ entities.Identity, _ string, in usecase.UpdateEntryInput) (entities.CapTableEntry, error) {
			if in.EquityPercentage == nil || !in.EquityPercentage.Equal(decimal.NewFromInt(7)) || in.CliffMonths != nil {
				t.Fatalf("unexpected input: %+v", in)
			}
			return entities.CapTableEntry{ID: "e-1", EquityPercentage: decimal.NewFromInt(7)}, nil
		})
	uc.EXPECT().RemoveEntry(gomock.Any(), testCaller, "e-2").Return(entities.CapTableEntry{}, usecase.ErrEntryNotFound)
	uc.EXPECT().RemoveEntry(gomock.Any(), testCaller, "e-3").Return(entities.CapTableEntry{}, errors.New("disk full"))

	if w := doJSON(r, http.MethodPut, "/equity/cap-table/e-1", `{"equity_percentage":7}`); w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if w := doJSON(r, http.MethodDelete, "/equity/cap-table/e-2", ""); w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
	w := doJSON(r, http.MethodDelete, "/equity/cap-table/e-3", "")
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}
	var body struct {
		Error struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	if body.Error.Message != "An internal error occurred" {
		t.Fatalf("internal details leaked: %s", w.Body.String())
	}
}

func TestCapTableHandler_VestingStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockICapTableUseCase(ctrl)
	h := NewCapTableHandler(uc)
	fixed := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	h.now = func() time.Time { return fixed }

	r := newTestRouter()
	r.GET("/equity/cap-table/entries/:id/vesting", h.VestingStatus)

	asOf := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	uc.EXPECT().VestingStatus(gomock.Any(), "e-1", asOf).Return(usecase.VestingStatus{
		Entry:    entities.CapTableEntry{ID: "e-1"},
		Snapshot: calculator.Snapshot{AsOf: asOf, VestedPercentage: decimal.NewFromInt(1), UnvestedPercentage: decimal.NewFromInt(3)},
	}, nil)
	uc.EXPECT().VestingStatus(gomock.Any(), "e-1", fixed).Return(usecase.VestingStatus{Entry: entities.CapTableEntry{ID: "e-1"}}, nil)

	if w := doJSON(r, http.MethodGet, "/equity/cap-table/entries/e-1/vesting?as_of=2025-06-01", ""); w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if w := doJSON(r, http.MethodGet, "/equity/cap-table/entries/e-1/vesting", ""); w.Code != http.StatusOK {
		t.Fatalf("expected 200 for default as_of, got %d", w.Code)
	}
	if w := doJSON(r, http.MethodGet, "/equity/cap-table/entries/e-1/vesting?as_of=yesterday", ""); w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}
