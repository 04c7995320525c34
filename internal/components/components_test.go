package components

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/pthm/backlog/internal/backlog"
	"github.com/pthm/backlog/internal/hx"
)

type fakeCatalog struct {
	results   []backlog.Game
	searchErr error
	searches  int
	query, id string
	exports   int
	payload   backlog.ExportPayload
	document  []byte
	exportErr error
}

func (f *fakeCatalog) Search(ctx context.Context, query, externalID string) ([]backlog.Game, error) {
	f.searches++
	f.query, f.id = query, externalID
	return f.results, f.searchErr
}

func (f *fakeCatalog) Export(ctx context.Context, payload backlog.ExportPayload) ([]byte, error) {
	f.exports++
	f.payload = payload
	return f.document, f.exportErr
}

type fixture struct {
	app      *App
	sessions *backlog.Sessions
	catalog  *fakeCatalog
	session  *backlog.Session
	props    Props
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	sessions := backlog.NewSessions(time.Hour, log)
	catalog := &fakeCatalog{
		results: []backlog.Game{
			{Name: "Hades", MainStory: backlog.TextFigure("22.5"), MainExtra: backlog.TextFigure("31.5"), Score: backlog.TextFigure("93"), ImageURL: "https://img/hades.jpg"},
			{Name: "Celeste", MainStory: backlog.TextFigure("8.0"), MainExtra: backlog.TextFigure("13.0"), Score: backlog.TextFigure("91"), Owned: true},
		},
		document: []byte("xlsx"),
	}
	reg := hx.NewRegistry([]byte("components-test"))
	app := Init(reg, sessions, catalog, log)
	s := sessions.New()
	return &fixture{
		app:      app,
		sessions: sessions,
		catalog:  catalog,
		session:  s,
		props:    Props{SessionID: s.ID()},
	}
}

func (f *fixture) post(t *testing.T, comp hx.HXComponent, url string, form map[string]string) *hx.TestResult {
	t.Helper()
	res, err := hx.TestPost(comp, url, form)
	if err != nil {
		t.Fatal(err)
	}
	return res
}

func (f *fixture) search(t *testing.T, q string) *hx.TestResult {
	t.Helper()
	return f.post(t, f.app.Results, f.app.Results.Call("search", f.props).URL(), map[string]string{"q": q})
}

func (f *fixture) toggle(t *testing.T, name string) *hx.TestResult {
	t.Helper()
	return f.post(t, f.app.Modal, f.app.Modal.Call("toggle", f.props).URL(), map[string]string{"name": name})
}

func (f *fixture) commit(t *testing.T, v string) *hx.TestResult {
	t.Helper()
	return f.post(t, f.app.Modal, f.app.Modal.Call("commit", f.props).URL(), map[string]string{"value": v})
}

func (f *fixture) list(t *testing.T, filter string) *hx.TestResult {
	t.Helper()
	res, err := hx.TestGet(f.app.Selection, f.app.Selection.Call("filter", f.listProps()).URL(), map[string]string{"filter": filter})
	if err != nil {
		t.Fatal(err)
	}
	return res
}

func (f *fixture) listProps() ListProps {
	return ListProps{SessionID: f.session.ID()}
}

func TestSearch(t *testing.T) {
	f := newFixture(t)

	res := f.search(t, "  Hades ")
	if !res.IsOK() {
		t.Fatalf("status = %d, body %s", res.StatusCode, res.HTML)
	}
	if f.catalog.query != "Hades" || f.catalog.id != "" {
		t.Errorf("query=%q id=%q", f.catalog.query, f.catalog.id)
	}
	if n := strings.Count(res.HTML, `class="game-card`); n != 2 {
		t.Errorf("rendered %d cards, want 2", n)
	}
	if n := strings.Count(res.HTML, "owned-badge"); n != 1 {
		t.Errorf("rendered %d owned badges, want 1", n)
	}
	if !res.HTMLContainsAll(`<div class="game-name">Hades</div>`, `src="https://img/hades.jpg"`, "<strong>Main:</strong> <span>22.5</span>", "<strong>Score:</strong> <span>93</span>") {
		t.Errorf("HTML = %s", res.HTML)
	}
	if res.HTMLContains("in-list-badge") {
		t.Error("nothing is selected yet")
	}
}

func TestSearchSingleResultNotOwned(t *testing.T) {
	f := newFixture(t)
	f.catalog.results = f.catalog.results[:1]

	res := f.search(t, "Hades")
	if n := strings.Count(res.HTML, `class="game-card`); n != 1 {
		t.Errorf("rendered %d cards, want 1", n)
	}
	if res.HTMLContains("Owned</div>") {
		t.Error("owned badge rendered for an unowned game")
	}
}

func TestSearchStatuses(t *testing.T) {
	tests := []struct {
		name    string
		query   string
		setup   func(*fakeCatalog)
		status  string
		noCalls bool
	}{
		{"empty query", "   ", nil, backlog.StatusEmptyQuery, true},
		{"no results", "zzz", func(c *fakeCatalog) { c.results = nil }, backlog.StatusNoResults, false},
		{"server message", "H", func(c *fakeCatalog) {
			c.searchErr = &backlog.ServerError{Status: 400, Message: "Please enter a search term with at least 2 characters."}
		}, "Please enter a search term with at least 2 characters.", false},
		{"server without message", "Hades", func(c *fakeCatalog) { c.searchErr = &backlog.ServerError{Status: 502} }, backlog.StatusSearchFailed, false},
		{"network", "Hades", func(c *fakeCatalog) { c.searchErr = errors.New("dial tcp: refused") }, backlog.StatusNetworkError, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			if tt.setup != nil {
				tt.setup(f.catalog)
			}

			res := f.search(t, tt.query)
			if !res.HTMLContains(`<div id="status" class="status">` + backlog.Escape(tt.status) + `</div>`) {
				t.Errorf("HTML = %s", res.HTML)
			}
			if strings.Contains(res.HTML, `class="game-card`) {
				t.Error("no cards expected")
			}
			if tt.noCalls && f.catalog.searches != 0 {
				t.Errorf("catalog called %d times", f.catalog.searches)
			}
		})
	}
}

func TestResultsEscapeAndIdempotence(t *testing.T) {
	f := newFixture(t)
	f.catalog.results = []backlog.Game{{Name: `<script>alert("x")</script>`, MainStory: backlog.TextFigure("1")}}
	f.search(t, "script")

	a, err := hx.TestGet(f.app.Results, f.app.Results.Refresh(f.props).URL(), nil)
	if err != nil {
		t.Fatal(err)
	}
	b, _ := hx.TestGet(f.app.Results, f.app.Results.Refresh(f.props).URL(), nil)

	if a.HTMLContains("<script>") {
		t.Errorf("name not escaped: %s", a.HTML)
	}
	if !a.HTMLContains("&lt;script&gt;alert(&quot;x&quot;)&lt;/script&gt;") {
		t.Errorf("HTML = %s", a.HTML)
	}
	if a.HTML != b.HTML {
		t.Error("rendering the same state twice produced different markup")
	}
}

func TestRatingModalFlow(t *testing.T) {
	f := newFixture(t)
	f.search(t, "Hades")

	res := f.toggle(t, "Hades")
	if !res.HTMLContainsAll("Intrigue rating: Hades", "Pick a rating") {
		t.Fatalf("modal not open: %s", res.HTML)
	}
	if n := strings.Count(res.HTML, `role="radio"`); n != 10 {
		t.Errorf("%d stars, want 10", n)
	}
	if res.HTMLContains(`aria-checked="true"`) {
		t.Error("a freshly opened modal should show no stars")
	}

	res = f.post(t, f.app.Modal, f.app.Modal.Call("hover", f.props).URL(), map[string]string{"value": "6"})
	if !res.HTMLContains("6/10") || strings.Count(res.HTML, `aria-checked="true"`) != 6 {
		t.Errorf("hover preview wrong: %s", res.HTML)
	}

	res = f.post(t, f.app.Modal, f.app.Modal.Call("leave", f.props).URL(), nil)
	if !res.HTMLContains("Pick a rating") || res.HTMLContains(`aria-checked="true"`) {
		t.Errorf("leave should revert the preview: %s", res.HTML)
	}

	res = f.commit(t, "7")
	if !res.HasEvent(EventSelectionChanged) {
		t.Errorf("events = %v", res.TriggeredEvents)
	}
	if !res.HTMLContains(`class="modal hidden"`) {
		t.Errorf("modal should close: %s", res.HTML)
	}

	v := f.session.View()
	if len(v.Entries) != 1 || v.Entries[0].Name != "Hades" || v.Entries[0].Intrigue != 7 {
		t.Errorf("entries = %+v", v.Entries)
	}

	// Results now show the In List badge.
	res, _ = hx.TestGet(f.app.Results, f.app.Results.Refresh(f.props).URL(), nil)
	if !res.HTMLContains("in-list-badge") {
		t.Error("selected game should be badged")
	}
}

func TestStarPreviewKeepsHoverTargets(t *testing.T) {
	f := newFixture(t)
	f.search(t, "Hades")

	open := f.toggle(t, "Hades")
	if n := strings.Count(open.HTML, `class="star-slot"`); n != 10 {
		t.Fatalf("%d star slots, want 10", n)
	}
	// Hover and leave swap nothing themselves and queue on the dialog.
	if n := strings.Count(open.HTML, `hx-swap="none" hx-sync="#intrigueModal:queue last" hx-trigger="mouseenter"`); n != 10 {
		t.Errorf("%d slots wired for a swap-free hover, want 10: %s", n, open.HTML)
	}
	if !open.HTMLContains(`hx-swap="none" hx-sync="#intrigueModal:queue last" hx-trigger="mouseleave"`) {
		t.Errorf("star row leave not wired: %s", open.HTML)
	}
	if n := strings.Count(open.HTML, `hx-sync="#intrigueModal:replace"`); n != 10 {
		t.Errorf("%d commit buttons synced on the dialog, want 10", n)
	}

	for _, action := range []string{"hover", "leave"} {
		t.Run(action, func(t *testing.T) {
			res := f.post(t, f.app.Modal, f.app.Modal.Call(action, f.props).URL(), map[string]string{"value": "4"})
			if !res.IsOK() {
				t.Fatalf("status = %d", res.StatusCode)
			}
			for _, replaced := range []string{"star-slot", `id="intrigueModal"`, `id="starRating"`, "mouseenter", "mouseleave"} {
				if res.HTMLContains(replaced) {
					t.Errorf("%s response re-renders %s: %s", action, replaced, res.HTML)
				}
			}
			if n := strings.Count(res.HTML, `hx-swap-oob="true"`); n != backlog.MaxIntrigue+1 {
				t.Errorf("%d out-of-band swaps, want %d", n, backlog.MaxIntrigue+1)
			}
			if !res.HTMLContainsAll(`id="star-1"`, `id="star-10"`, `id="ratingValue"`) {
				t.Errorf("HTML = %s", res.HTML)
			}
		})
	}
}

func TestStarPreviewClosedModal(t *testing.T) {
	f := newFixture(t)
	f.search(t, "Hades")

	for _, action := range []string{"hover", "leave"} {
		res := f.post(t, f.app.Modal, f.app.Modal.Call(action, f.props).URL(), map[string]string{"value": "4"})
		if !res.IsOK() || res.HTML != "" {
			t.Errorf("%s on a closed dialog: status=%d body=%q", action, res.StatusCode, res.HTML)
		}
	}

	f.toggle(t, "Hades")
	res := f.post(t, f.app.Modal, f.app.Modal.Call("hover", f.props).URL(), map[string]string{"value": "x"})
	if res.HTML != "" {
		t.Errorf("non-numeric hover should render nothing: %q", res.HTML)
	}
}

func TestToggleTwiceRemoves(t *testing.T) {
	f := newFixture(t)
	f.search(t, "Hades")
	f.toggle(t, "Hades")
	f.commit(t, "7")

	res := f.toggle(t, "Hades")
	if !res.HasEvent(EventSelectionChanged) {
		t.Errorf("events = %v", res.TriggeredEvents)
	}
	if len(f.session.View().Entries) != 0 {
		t.Error("second toggle should remove the game")
	}
}

func TestModalCancelAndReopen(t *testing.T) {
	f := newFixture(t)
	f.search(t, "Hades")
	f.toggle(t, "Hades")
	f.post(t, f.app.Modal, f.app.Modal.Call("hover", f.props).URL(), map[string]string{"value": "9"})

	res := f.post(t, f.app.Modal, f.app.Modal.Call("cancel", f.props).URL(), nil)
	if !res.HTMLContains(`class="modal hidden"`) || res.HasEvent(EventSelectionChanged) {
		t.Errorf("cancel: %s %v", res.HTML, res.TriggeredEvents)
	}

	res = f.toggle(t, "Hades")
	if !res.HTMLContains("Pick a rating") {
		t.Errorf("reopened modal kept an old preview: %s", res.HTML)
	}
	if len(f.session.View().Entries) != 0 {
		t.Error("cancel must not store anything")
	}
}

func TestToggleUnknownGame(t *testing.T) {
	f := newFixture(t)
	res := f.toggle(t, "Hades")
	if !res.IsOK() || len(res.Flashes) != 1 || res.Flashes[0].Level != hx.FlashError {
		t.Errorf("status=%d flashes=%v", res.StatusCode, res.Flashes)
	}
}

func TestSelectionList(t *testing.T) {
	f := newFixture(t)

	if res := f.list(t, ""); !res.HTMLContains("No games selected.") {
		t.Errorf("empty list: %s", res.HTML)
	}

	f.search(t, "game")
	f.toggle(t, "Hades")
	f.commit(t, "7")
	f.toggle(t, "Celeste")
	f.commit(t, "9")

	res := f.list(t, "")
	hades, celeste := strings.Index(res.HTML, "<span>Hades</span>"), strings.Index(res.HTML, "<span>Celeste</span>")
	if hades < 0 || celeste < 0 || hades > celeste {
		t.Errorf("rows missing or out of order: %s", res.HTML)
	}
	if !res.HTMLContains(`value="7"`) || !res.HTMLContains(`value="9"`) {
		t.Errorf("ratings not rendered: %s", res.HTML)
	}

	if res := f.list(t, "ELES"); res.HTMLContains("<span>Hades</span>") || !res.HTMLContains("<span>Celeste</span>") {
		t.Errorf("filter ELES: %s", res.HTML)
	}
	if res := f.list(t, "zelda"); !res.HTMLContains("No games selected.") {
		t.Errorf("filter zelda: %s", res.HTML)
	}
	res = f.list(t, "e")
	if strings.Index(res.HTML, "<span>Hades</span>") > strings.Index(res.HTML, "<span>Celeste</span>") {
		t.Error("filter must not reorder rows")
	}
}

func TestSelectionRate(t *testing.T) {
	f := newFixture(t)
	f.search(t, "Hades")
	f.toggle(t, "Hades")
	f.commit(t, "7")

	tests := []struct {
		raw  string
		want string
	}{
		{"15", `value="10"`},
		{"-3", `value="1"`},
		{"abc", `value="1"`},
		{"4.7", `value="5"`},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			res := f.post(t, f.app.Selection, f.app.Selection.Call("rate", f.listProps()).URL(),
				map[string]string{"name": "Hades", "intrigue": tt.raw, "filter": ""})
			if !res.HTMLContains(tt.want) {
				t.Errorf("HTML = %s", res.HTML)
			}
		})
	}

	if e := f.session.View().Entries[0]; e.Intrigue != 5 {
		t.Errorf("stored intrigue = %d, want 5", e.Intrigue)
	}
}

func TestSelectionRemove(t *testing.T) {
	f := newFixture(t)
	f.search(t, "Hades")
	f.toggle(t, "Hades")
	f.commit(t, "7")

	res := f.post(t, f.app.Selection, f.app.Selection.Call("remove", f.listProps()).URL(), map[string]string{"name": "Hades"})
	if !res.HasEvent(EventSelectionChanged) {
		t.Errorf("events = %v", res.TriggeredEvents)
	}
	if res.HTML != "" {
		t.Errorf("remove should not render, got %s", res.HTML)
	}
	if len(f.session.View().Entries) != 0 {
		t.Error("game not removed")
	}
}

func TestSessionPropsEncrypted(t *testing.T) {
	f := newFixture(t)

	propsOf := func(t *testing.T, raw string) string {
		t.Helper()
		u, err := url.Parse(raw)
		if err != nil {
			t.Fatal(err)
		}
		p := u.Query().Get("p")
		if p == "" {
			t.Fatalf("no props in %s", raw)
		}
		return p
	}

	tests := []struct {
		name      string
		url       string
		encrypted bool
	}{
		{"results signed", f.app.Results.Call("search", f.props).URL(), false},
		{"selection encrypted", f.app.Selection.Call("filter", f.listProps()).URL(), true},
		{"export encrypted", f.app.Export.Call("export", f.props).URL(), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := propsOf(t, tt.url)
			if encrypted := !strings.Contains(p, "."); encrypted != tt.encrypted {
				t.Errorf("props %q encrypted = %v, want %v", p, encrypted, tt.encrypted)
			}
			if tt.encrypted && strings.Contains(p, f.session.ID()) {
				t.Errorf("session id visible in %q", p)
			}
		})
	}

	// Signed props from another component do not decrypt.
	signed := propsOf(t, f.app.Results.Call("search", f.props).URL())
	res, err := hx.TestGet(f.app.Selection, f.app.Selection.HXPrefix()+"/filter?p="+signed, nil)
	if err != nil {
		t.Fatal(err)
	}
	if res.StatusCode != http.StatusBadRequest {
		t.Errorf("signed props on selection: status = %d", res.StatusCode)
	}

	tampered := f.app.Selection.Call("filter", f.listProps()).URL() + "A"
	if res, err = hx.TestGet(f.app.Selection, tampered, nil); err != nil {
		t.Fatal(err)
	}
	if res.StatusCode != http.StatusBadRequest {
		t.Errorf("tampered props: status = %d", res.StatusCode)
	}
}

func TestExport(t *testing.T) {
	t.Run("empty selection", func(t *testing.T) {
		f := newFixture(t)
		res := f.post(t, f.app.Export, f.app.Export.Call("export", f.props).URL(), nil)
		if !res.HasFlash(hx.FlashError, "No games selected to export.") {
			t.Errorf("flashes = %v", res.Flashes)
		}
		if f.catalog.exports != 0 {
			t.Error("no export request expected")
		}
	})

	t.Run("success", func(t *testing.T) {
		f := newFixture(t)
		f.search(t, "Hades")
		f.toggle(t, "Hades")
		f.commit(t, "7")

		res := f.post(t, f.app.Export, f.app.Export.Call("export", f.props).URL(), nil)
		prefix := "/download/" + f.session.ID() + "/"
		if !strings.HasPrefix(res.RedirectURL, prefix) {
			t.Fatalf("RedirectURL = %q", res.RedirectURL)
		}

		want := backlog.ExportEntry{Name: "Hades", Intrigue: 7, Owned: false, MainExtra: backlog.TextFigure("31.5")}
		if len(f.catalog.payload.Games) != 1 || f.catalog.payload.Games[0] != want {
			t.Errorf("payload = %+v", f.catalog.payload)
		}

		data, ok := f.session.TakeDownload(strings.TrimPrefix(res.RedirectURL, prefix))
		if !ok || string(data) != "xlsx" {
			t.Errorf("download slot = %q, %v", data, ok)
		}
	})

	t.Run("server error", func(t *testing.T) {
		f := newFixture(t)
		f.catalog.exportErr = &backlog.ServerError{Status: 500, Message: "boom"}
		f.search(t, "Hades")
		f.toggle(t, "Hades")
		f.commit(t, "7")

		res := f.post(t, f.app.Export, f.app.Export.Call("export", f.props).URL(), nil)
		if !res.HasFlash(hx.FlashError, "Export failed: boom") {
			t.Errorf("flashes = %v", res.Flashes)
		}
		if res.RedirectURL != "" {
			t.Error("no redirect on failure")
		}
	})
}

func TestExpiredSession(t *testing.T) {
	f := newFixture(t)
	gone := Props{SessionID: "gone"}

	res, _ := hx.TestGet(f.app.Results, f.app.Results.Refresh(gone).URL(), nil)
	if res.StatusCode != http.StatusNotFound {
		t.Errorf("status = %d, want 404", res.StatusCode)
	}
}

func TestPage(t *testing.T) {
	f := newFixture(t)

	var sb strings.Builder
	if err := f.app.Page(f.session).Render(context.Background(), &sb); err != nil {
		t.Fatal(err)
	}
	html := sb.String()

	for _, id := range []string{"searchInput", "steamIdInput", "searchBtn", "resultsPanel", "status",
		"listSearchInput", "selectedList", "exportBtn", "intrigueModal", "toasts"} {
		if !strings.Contains(html, `id="`+id+`"`) {
			t.Errorf("page is missing #%s", id)
		}
	}
	if !strings.Contains(html, "No games selected.") {
		t.Error("empty list placeholder missing")
	}
}
