package client

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/pthm/backlog/internal/backlog"
)

func TestSearch(t *testing.T) {
	var gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/search" {
			http.NotFound(w, r)
			return
		}
		gotQuery = r.URL.RawQuery
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"results":[
			{"game_name":"Hades","main_story":"22","main_extra":"31.5","score":"93","image_url":null,"owned":false},
			{"game_name":"","main_story":"1"}
		]}`))
	}))
	defer srv.Close()

	c := New(srv.URL+"/", 0)
	games, err := c.Search(context.Background(), "Hades", "")
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}

	if gotQuery != "q=Hades" {
		t.Errorf("query = %q, want q=Hades", gotQuery)
	}
	if len(games) != 1 || games[0].Name != "Hades" || games[0].Owned {
		t.Errorf("games = %+v", games)
	}
}

func TestSearchExternalID(t *testing.T) {
	var gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		w.Write([]byte(`{"results":[]}`))
	}))
	defer srv.Close()

	if _, err := New(srv.URL, 0).Search(context.Background(), "Ratchet & Clank", "7656"); err != nil {
		t.Fatal(err)
	}
	if gotQuery != "q=Ratchet+%26+Clank&steamid=7656" {
		t.Errorf("query = %q", gotQuery)
	}
}

func TestSearchErrors(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantMsg string
		server  bool
	}{
		{"error field", http.StatusBadRequest, `{"success":false,"error":"too short"}`, "too short", true},
		{"no error field", http.StatusBadGateway, `{}`, "", true},
		{"not json", http.StatusOK, `<html>`, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			_, err := New(srv.URL, 0).Search(context.Background(), "Hades", "")
			if err == nil {
				t.Fatal("expected an error")
			}

			var se *backlog.ServerError
			if errors.As(err, &se) != tt.server {
				t.Fatalf("error = %v, server error expected: %v", err, tt.server)
			}
			if tt.server && (se.Status != tt.status || se.Message != tt.wantMsg) {
				t.Errorf("ServerError = %+v", se)
			}
		})
	}
}

func TestSearchUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	_, err := New(url, 0).Search(context.Background(), "Hades", "")
	var se *backlog.ServerError
	if err == nil || errors.As(err, &se) {
		t.Errorf("error = %v, want a transport error", err)
	}
}

func TestExport(t *testing.T) {
	var got backlog.ExportPayload
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/export" {
			http.NotFound(w, r)
			return
		}
		if r.Header.Get("Content-Type") != "application/json" {
			http.Error(w, "want json", http.StatusUnsupportedMediaType)
			return
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		w.Write([]byte("PK-document"))
	}))
	defer srv.Close()

	payload := backlog.NewExportPayload([]backlog.Entry{
		{Game: backlog.Game{Name: "Hades", MainExtra: backlog.TextFigure("31.5")}, Intrigue: 7},
	})
	data, err := New(srv.URL, 0).Export(context.Background(), payload)
	if err != nil {
		t.Fatalf("Export() error = %v", err)
	}

	if string(data) != "PK-document" {
		t.Errorf("data = %q", data)
	}
	if len(got.Games) != 1 || got.Games[0].Intrigue != 7 || got.Games[0].MainExtra != backlog.TextFigure("31.5") {
		t.Errorf("server got %+v", got)
	}
}

func TestExportServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "workbook exploded", http.StatusInternalServerError)
	}))
	defer srv.Close()

	_, err := New(srv.URL, 0).Export(context.Background(), backlog.ExportPayload{})
	var se *backlog.ServerError
	if !errors.As(err, &se) || se.Message != "workbook exploded" || se.Status != http.StatusInternalServerError {
		t.Errorf("Export() error = %v", err)
	}
}

func TestExportKeepsNumericFigures(t *testing.T) {
	var body []byte
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/search":
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"results":[{"game_name":"Hades","main_story":22,"main_extra":31.5,"score":"93"}]}`))
		default:
			body, _ = io.ReadAll(r.Body)
			w.Write([]byte("PK"))
		}
	}))
	defer srv.Close()

	c := New(srv.URL, 0)
	games, err := c.Search(context.Background(), "Hades", "")
	if err != nil || len(games) != 1 {
		t.Fatalf("Search() = %+v, %v", games, err)
	}
	if !games[0].MainExtra.IsNumber() {
		t.Errorf("main_extra lost its number kind: %+v", games[0].MainExtra)
	}

	payload := backlog.NewExportPayload([]backlog.Entry{{Game: games[0], Intrigue: 7}})
	if _, err := c.Export(context.Background(), payload); err != nil {
		t.Fatalf("Export() error = %v", err)
	}
	if !strings.Contains(string(body), `"main_extra":31.5}`) {
		t.Errorf("export body = %s", body)
	}
}
