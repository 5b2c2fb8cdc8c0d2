package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/chromix/api/models"
)

func TestGetDailyColorCreatesOnFirstRequest(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(httptest.NewRequest(http.MethodGet, "/v1/colors/daily?format=hsl", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	resp := decode[models.DailyColorResponse](t, rec)
	if resp.Hex != "#6366F1" || resp.RGB != "rgb(99,102,241)" {
		t.Errorf("unexpected daily color %+v", resp)
	}
	if resp.Palette == nil || resp.Palette.Base != "#6366F1" {
		t.Fatalf("expected palette for the daily color, got %+v", resp.Palette)
	}
	if got := resp.Palette.Schemes[0].Formatted[4]; got != "hsl(239, 84%, 67%)" {
		t.Errorf("expected hsl formatting, got %q", got)
	}

	env.do(httptest.NewRequest(http.MethodGet, "/v1/colors/daily", nil))
	if all, _ := env.dailyColor.GetAll(); len(all) != 1 {
		t.Errorf("expected one stored color after two requests, got %d", len(all))
	}
}

func TestGetDailyColorWithoutGenerator(t *testing.T) {
	env := newTestEnv(t)
	env.app.DailyColorMaker = nil
	env.handler = env.app.BuildRoutes(http.NewServeMux())

	rec := env.do(httptest.NewRequest(http.MethodGet, "/v1/colors/daily", nil))
	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", rec.Code)
	}
}

func TestAdminDailyColor(t *testing.T) {
	env := newTestEnv(t)
	_, admin := loginAs(t, env, "admin", models.Admin)
	_, designer := loginAs(t, env, "designer", models.Designer)

	rec := env.do(httptest.NewRequest(http.MethodPost, "/v1/admin/colors/generate", nil), designer...)
	if rec.Code != http.StatusForbidden {
		t.Errorf("expected 403 for designer, got %d", rec.Code)
	}

	rec = env.do(httptest.NewRequest(http.MethodPost, "/v1/admin/colors/generate", nil), admin...)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201 on first generation, got %d: %s", rec.Code, rec.Body.String())
	}
	rec = env.do(httptest.NewRequest(http.MethodPost, "/v1/admin/colors/generate", nil), admin...)
	if rec.Code != http.StatusOK {
		t.Errorf("expected 200 when today's color exists, got %d", rec.Code)
	}

	rec = env.do(httptest.NewRequest(http.MethodGet, "/v1/colors/daily/all", nil))
	if all := decode[[]models.DailyColorResponse](t, rec); len(all) != 1 || all[0].Hex != "#6366F1" {
		t.Errorf("unexpected history %+v", all)
	}

	tests := []struct {
		name     string
		target   string
		wantCode int
	}{
		{name: "existing", target: "/v1/admin/colors/daily?id=1", wantCode: http.StatusNoContent},
		{name: "already deleted", target: "/v1/admin/colors/daily?id=1", wantCode: http.StatusNotFound},
		{name: "bad id", target: "/v1/admin/colors/daily?id=first", wantCode: http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := env.do(httptest.NewRequest(http.MethodDelete, tt.target, nil), admin...)
			if rec.Code != tt.wantCode {
				t.Errorf("expected %d, got %d", tt.wantCode, rec.Code)
			}
		})
	}
}
