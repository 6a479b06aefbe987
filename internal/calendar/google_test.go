package calendar

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	dom "github.com/Thonkla/PlaceMate/internal/domain"
	"github.com/Thonkla/PlaceMate/internal/logger"

	"golang.org/x/oauth2"
	gcal "google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"
)

type recorded struct {
	method string
	path   string
	event  gcal.Event
}

type fakeCalendar struct {
	mu       sync.Mutex
	requests []recorded
	// status per "METHOD path"; missing means 200
	status map[string]int
}

func (f *fakeCalendar) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var ev gcal.Event
	_ = json.NewDecoder(r.Body).Decode(&ev)
	f.mu.Lock()
	f.requests = append(f.requests, recorded{method: r.Method, path: r.URL.Path, event: ev})
	code := f.status[r.Method+" "+r.URL.Path]
	f.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	if code != 0 && code != http.StatusOK {
		w.WriteHeader(code)
		_, _ = w.Write([]byte(`{"error":{"code":` + strconv.Itoa(code) + `,"message":"` + http.StatusText(code) + `"}}`))
		return
	}
	id := "ev-new"
	if r.Method == http.MethodPut {
		id = r.URL.Path[len("/calendars/primary/events/"):]
	}
	_ = json.NewEncoder(w).Encode(map[string]string{"id": id, "htmlLink": "https://calendar.test/" + id})
}

func newTestGoogle(t *testing.T, f *fakeCalendar) *Google {
	t.Helper()
	srv := httptest.NewServer(f)
	t.Cleanup(srv.Close)
	return NewGoogle(Config{ClientID: "id", ClientSecret: "secret", TimeZone: "Asia/Bangkok"}, logger.NewNop(),
		option.WithHTTPClient(srv.Client()),
		option.WithEndpoint(srv.URL+"/"),
	)
}

func testCredential(t *testing.T) string {
	t.Helper()
	cred, err := EncodeToken(&oauth2.Token{AccessToken: "access", RefreshToken: "refresh", Expiry: time.Now().Add(time.Hour)})
	if err != nil {
		t.Fatalf("EncodeToken: %v", err)
	}
	return cred
}

var (
	tripStart = time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	tripEnd   = time.Date(2025, 6, 3, 18, 0, 0, 0, time.UTC)
)

func TestUpsertEventInsertsWhenNew(t *testing.T) {
	f := &fakeCalendar{}
	g := newTestGoogle(t, f)

	ev, err := g.UpsertEvent(context.Background(), "", "Bangkok Trip", tripStart, tripEnd, testCredential(t))
	if err != nil {
		t.Fatalf("UpsertEvent: %v", err)
	}
	if ev.ExternalID != "ev-new" || ev.Link != "https://calendar.test/ev-new" {
		t.Fatalf("unexpected event %+v", ev)
	}
	if len(f.requests) != 1 {
		t.Fatalf("expected 1 request, got %d", len(f.requests))
	}
	req := f.requests[0]
	if req.method != http.MethodPost || req.path != "/calendars/primary/events" {
		t.Fatalf("expected insert, got %s %s", req.method, req.path)
	}
	if req.event.Summary != "Bangkok Trip" {
		t.Fatalf("unexpected summary %q", req.event.Summary)
	}
	if req.event.Start.DateTime != "2025-06-01T09:00:00Z" || req.event.Start.TimeZone != "Asia/Bangkok" {
		t.Fatalf("unexpected start %+v", req.event.Start)
	}
	if req.event.End.DateTime != "2025-06-03T18:00:00Z" {
		t.Fatalf("unexpected end %+v", req.event.End)
	}
	rem := req.event.Reminders
	if rem == nil || rem.UseDefault || len(rem.Overrides) != 1 || rem.Overrides[0].Method != "popup" || rem.Overrides[0].Minutes != 15 {
		t.Fatalf("unexpected reminders %+v", rem)
	}
}

func TestUpsertEventUpdatesExisting(t *testing.T) {
	f := &fakeCalendar{}
	g := newTestGoogle(t, f)

	ev, err := g.UpsertEvent(context.Background(), "ev-1", "Bangkok Trip (2 days)", tripStart, tripEnd, testCredential(t))
	if err != nil {
		t.Fatalf("UpsertEvent: %v", err)
	}
	if ev.ExternalID != "ev-1" {
		t.Fatalf("expected the same event id, got %q", ev.ExternalID)
	}
	if len(f.requests) != 1 || f.requests[0].method != http.MethodPut || f.requests[0].path != "/calendars/primary/events/ev-1" {
		t.Fatalf("expected a single update, got %+v", f.requests)
	}
}

func TestUpsertEventRecreatesMissingEvent(t *testing.T) {
	f := &fakeCalendar{status: map[string]int{"PUT /calendars/primary/events/gone": http.StatusNotFound}}
	g := newTestGoogle(t, f)

	ev, err := g.UpsertEvent(context.Background(), "gone", "Bangkok Trip", tripStart, tripEnd, testCredential(t))
	if err != nil {
		t.Fatalf("UpsertEvent: %v", err)
	}
	if ev.ExternalID != "ev-new" {
		t.Fatalf("expected a new event, got %+v", ev)
	}
	if len(f.requests) != 2 || f.requests[1].method != http.MethodPost {
		t.Fatalf("expected update then insert, got %+v", f.requests)
	}
}

func TestUpsertEventReportsRemoteFailure(t *testing.T) {
	f := &fakeCalendar{status: map[string]int{"POST /calendars/primary/events": http.StatusForbidden}}
	g := newTestGoogle(t, f)

	_, err := g.UpsertEvent(context.Background(), "", "Bangkok Trip", tripStart, tripEnd, testCredential(t))
	if err == nil {
		t.Fatalf("expected error")
	}
	if errors.Is(err, dom.ErrUnauthenticated) {
		t.Fatalf("a 403 is not a credential problem: %v", err)
	}
}

func TestUpsertEventRevokedGrantIsUnauthenticated(t *testing.T) {
	f := &fakeCalendar{status: map[string]int{
		"POST /calendars/primary/events":     http.StatusUnauthorized,
		"PUT /calendars/primary/events/ev-1": http.StatusUnauthorized,
	}}
	g := newTestGoogle(t, f)

	for _, existing := range []string{"", "ev-1"} {
		_, err := g.UpsertEvent(context.Background(), existing, "Bangkok Trip", tripStart, tripEnd, testCredential(t))
		if !errors.Is(err, ErrInvalidCredential) || !errors.Is(err, dom.ErrUnauthenticated) {
			t.Fatalf("existing %q: expected invalid credential, got %v", existing, err)
		}
	}
}

func TestRefusedRefreshIsRejectedCredential(t *testing.T) {
	refused := &url.Error{Op: "Post", URL: "https://oauth2.googleapis.com/token", Err: &oauth2.RetrieveError{ErrorCode: "invalid_grant"}}
	if !isRejectedCredential(fmt.Errorf("calendar: %w", refused)) {
		t.Fatalf("refused refresh must count as a rejected credential")
	}
	if isRejectedCredential(errors.New("dial tcp: connection refused")) {
		t.Fatalf("network errors are not credential problems")
	}
}

func TestUpsertEventRejectsBadCredential(t *testing.T) {
	f := &fakeCalendar{}
	g := newTestGoogle(t, f)

	for _, cred := range []string{"", "%%%", "bm90IGpzb24", "e30"} {
		_, err := g.UpsertEvent(context.Background(), "", "Bangkok Trip", tripStart, tripEnd, cred)
		if !errors.Is(err, ErrInvalidCredential) || !errors.Is(err, dom.ErrUnauthenticated) {
			t.Fatalf("credential %q: expected invalid credential, got %v", cred, err)
		}
	}
	if len(f.requests) != 0 {
		t.Fatalf("no request expected for bad credentials, got %d", len(f.requests))
	}
}

func TestTokenRoundTrip(t *testing.T) {
	cred := testCredential(t)
	token, err := DecodeToken(cred)
	if err != nil {
		t.Fatalf("DecodeToken: %v", err)
	}
	if token.AccessToken != "access" || token.RefreshToken != "refresh" {
		t.Fatalf("unexpected token %+v", token)
	}
}

func TestAuthURLRequestsOfflineAccess(t *testing.T) {
	g := NewGoogle(Config{ClientID: "id", RedirectURL: "http://localhost:5000/api/google/auth/callback"}, logger.NewNop())
	u := g.AuthURL("state-1")
	for _, want := range []string{"access_type=offline", "state=state-1", "prompt=consent", "client_id=id"} {
		if !strings.Contains(u, want) {
			t.Fatalf("auth url %q missing %q", u, want)
		}
	}
}
