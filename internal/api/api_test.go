package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/xuri/excelize/v2"

	"github.com/pthm/backlog/internal/backlog"
	"github.com/pthm/backlog/internal/hltb"
	"github.com/pthm/backlog/internal/sheet"
)

type fakeGames struct {
	games []hltb.Game
	err   error
	query string
}

func (f *fakeGames) Search(ctx context.Context, query string) ([]hltb.Game, error) {
	f.query = query
	return f.games, f.err
}

type fakeLibrary struct {
	owned map[string]struct{}
	err   error
	id    string
}

func (f *fakeLibrary) OwnedGames(ctx context.Context, steamID string) (map[string]struct{}, error) {
	f.id = steamID
	return f.owned, f.err
}

func newTestServer(games GameSearcher, library Library, limit int) *echo.Echo {
	e := echo.New()
	New(games, library, limit, slog.New(slog.NewTextHandler(io.Discard, nil))).Register(e)
	return e
}

func get(e *echo.Echo, target string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestSearchTooShort(t *testing.T) {
	games := &fakeGames{}
	e := newTestServer(games, nil, 0)

	for _, q := range []string{"", " ", "H", " H ", "é", " 日 "} {
		rec := get(e, "/api/search?q="+url.QueryEscape(q))
		if rec.Code != http.StatusBadRequest {
			t.Errorf("q=%q status = %d, want 400", q, rec.Code)
		}
		want := `{"success":false,"error":"Please enter a search term with at least 2 characters."}`
		if strings.TrimSpace(rec.Body.String()) != want {
			t.Errorf("q=%q body = %s", q, rec.Body.String())
		}
	}
	if games.query != "" {
		t.Error("short queries should not reach the game search")
	}
}

func TestSearch(t *testing.T) {
	games := &fakeGames{games: []hltb.Game{
		{Name: "Hades", MainStory: 22.5, MainExtra: 31, ReviewScore: 93, ImageURL: "http://img/hades.jpg"},
		{Name: "Hades Demo", MainStory: 0},
		{Name: "Hades II", MainStory: 30},
	}}
	library := &fakeLibrary{owned: map[string]struct{}{"hades ii": {}}}
	e := newTestServer(games, library, 8)

	rec := get(e, "/api/search?q=+Hades+&steamid=+7656+")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	if games.query != "Hades" || library.id != "7656" {
		t.Errorf("query=%q steamid=%q", games.query, library.id)
	}

	var body struct {
		Results []backlog.Game `json:"results"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatal(err)
	}

	want := []backlog.Game{
		{Name: "Hades", MainStory: backlog.TextFigure("22.5"), MainExtra: backlog.TextFigure("31.0"), Score: backlog.TextFigure("93"), ImageURL: "http://img/hades.jpg"},
		{Name: "Hades II", MainStory: backlog.TextFigure("30.0"), MainExtra: backlog.TextFigure("N/A"), Score: backlog.TextFigure("N/A"), Owned: true},
	}
	if len(body.Results) != len(want) {
		t.Fatalf("results = %+v", body.Results)
	}
	for i := range want {
		if body.Results[i] != want[i] {
			t.Errorf("results[%d] = %+v, want %+v", i, body.Results[i], want[i])
		}
	}
}

func TestSearchLimit(t *testing.T) {
	var found []hltb.Game
	for i := 0; i < 12; i++ {
		found = append(found, hltb.Game{Name: "Game", MainStory: 1})
	}
	e := newTestServer(&fakeGames{games: found}, nil, 8)

	var body struct {
		Results []backlog.Game `json:"results"`
	}
	rec := get(e, "/api/search?q=Game")
	json.Unmarshal(rec.Body.Bytes(), &body)
	if len(body.Results) != 8 {
		t.Errorf("len(results) = %d, want 8", len(body.Results))
	}
}

func TestSearchUpstreamFailures(t *testing.T) {
	t.Run("game search failure yields no results", func(t *testing.T) {
		e := newTestServer(&fakeGames{err: errors.New("blocked")}, nil, 8)

		rec := get(e, "/api/search?q=Hades")
		if rec.Code != http.StatusOK || strings.TrimSpace(rec.Body.String()) != `{"results":[]}` {
			t.Errorf("status = %d, body %s", rec.Code, rec.Body.String())
		}
	})

	t.Run("owned games failure", func(t *testing.T) {
		e := newTestServer(&fakeGames{}, &fakeLibrary{err: errors.New("403")}, 8)

		rec := get(e, "/api/search?q=Hades&steamid=1")
		if rec.Code != http.StatusBadGateway {
			t.Errorf("status = %d, want 502", rec.Code)
		}
		if !strings.Contains(rec.Body.String(), `"error"`) {
			t.Errorf("body = %s", rec.Body.String())
		}
	})
}

func TestExport(t *testing.T) {
	e := newTestServer(&fakeGames{}, nil, 8)

	body := `{"games":[{"game_name":"Hades","intrigue":7,"owned":false,"main_extra":"31.5"}]}`
	req := httptest.NewRequest(http.MethodPost, "/export", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	if ct := rec.Header().Get(echo.HeaderContentType); ct != sheet.ContentType {
		t.Errorf("Content-Type = %q", ct)
	}
	if cd := rec.Header().Get(echo.HeaderContentDisposition); !strings.Contains(cd, ExportFilename) {
		t.Errorf("Content-Disposition = %q", cd)
	}

	f, err := excelize.OpenReader(bytes.NewReader(rec.Body.Bytes()))
	if err != nil {
		t.Fatalf("response is not a workbook: %v", err)
	}
	defer f.Close()
	if v, _ := f.GetCellValue(sheet.SheetName, "A4"); v != "Hades" {
		t.Errorf("A4 = %q", v)
	}
}

func TestExportMalformed(t *testing.T) {
	e := newTestServer(&fakeGames{}, nil, 8)

	tests := []struct {
		name        string
		body        string
		contentType string
	}{
		{"truncated", `{"games":`, echo.MIMEApplicationJSON},
		{"wrong type", `{"games":"Hades"}`, echo.MIMEApplicationJSON},
		{"bad intrigue", `{"games":[{"game_name":"Hades","intrigue":"high"}]}`, echo.MIMEApplicationJSON},
		{"not json", `games=Hades`, "text/plain"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/export", strings.NewReader(tt.body))
			req.Header.Set(echo.HeaderContentType, tt.contentType)
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			if rec.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want 400", rec.Code)
			}
			if strings.HasPrefix(rec.Header().Get(echo.HeaderContentType), "application/json") {
				t.Errorf("error body should be plain text, got %q", rec.Header().Get(echo.HeaderContentType))
			}
			if got := rec.Body.String(); got != "Invalid export payload." {
				t.Errorf("body = %q", got)
			}
		})
	}
}

func TestExportNumericFigure(t *testing.T) {
	e := newTestServer(&fakeGames{}, nil, 8)

	body := `{"games":[{"game_name":"Hades","intrigue":"","owned":true,"main_extra":31.5}]}`
	req := httptest.NewRequest(http.MethodPost, "/export", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	f, err := excelize.OpenReader(bytes.NewReader(rec.Body.Bytes()))
	if err != nil {
		t.Fatalf("response is not a workbook: %v", err)
	}
	defer f.Close()
	if v, _ := f.GetCellValue(sheet.SheetName, "A4"); v != "Hades" {
		t.Errorf("A4 = %q", v)
	}
}

func TestFigure(t *testing.T) {
	tests := []struct {
		in   float64
		want backlog.Figure
	}{
		{0, backlog.TextFigure("N/A")},
		{12, backlog.TextFigure("12.0")},
		{12.25, backlog.TextFigure("12.25")},
	}
	for _, tt := range tests {
		if got := figure(tt.in); got != tt.want {
			t.Errorf("figure(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
