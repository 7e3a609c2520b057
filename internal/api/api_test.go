package api_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/trainquest/trainquest/internal/api"
	"github.com/trainquest/trainquest/internal/app/tracker"
	"github.com/trainquest/trainquest/internal/domain"
)

func newTestServer(t *testing.T) (*httptest.Server, *tracker.Service) {
	t.Helper()
	svc := tracker.New(nil, nil)
	srv := api.NewServer(svc)
	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)
	return ts, svc
}

func postJSON(t *testing.T, url string, body interface{}) *http.Response {
	t.Helper()
	b, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	resp, err := http.Post(url, "application/json", bytes.NewReader(b))
	if err != nil {
		t.Fatalf("POST %s: %v", url, err)
	}
	return resp
}

func decodeBody(t *testing.T, resp *http.Response, v interface{}) {
	t.Helper()
	defer resp.Body.Close()
	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		t.Fatalf("decode response: %v", err)
	}
}

func TestHealthEndpoint(t *testing.T) {
	ts, _ := newTestServer(t)

	resp, err := http.Get(ts.URL + "/health")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
}

func TestChildLifecycle(t *testing.T) {
	ts, _ := newTestServer(t)

	resp := postJSON(t, ts.URL+"/api/children", map[string]string{"name": "Mika"})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("create status = %d", resp.StatusCode)
	}
	var child domain.Child
	decodeBody(t, resp, &child)
	if child.ID == "" || child.Name != "Mika" {
		t.Fatalf("child = %+v", child)
	}

	// Listing includes the new child.
	listResp, err := http.Get(ts.URL + "/api/children")
	if err != nil {
		t.Fatal(err)
	}
	var list struct {
		Children []domain.Child `json:"children"`
	}
	decodeBody(t, listResp, &list)
	if len(list.Children) != 1 || list.Children[0].ID != child.ID {
		t.Fatalf("children = %+v", list.Children)
	}

	// Empty name is a 400.
	resp = postJSON(t, ts.URL+"/api/children", map[string]string{"name": ""})
	resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("empty name status = %d", resp.StatusCode)
	}
}

func TestLogSessionEndpoint(t *testing.T) {
	ts, svc := newTestServer(t)
	child, _ := svc.AddChild("Mika")

	resp := postJSON(t, ts.URL+"/api/children/"+child.ID+"/sessions", map[string]interface{}{
		"activity_id":      "math_drills",
		"duration_minutes": 20,
		"effort_level":     2,
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	var res domain.SessionResult
	decodeBody(t, resp, &res)
	if res.Session.XPGained != 200 {
		t.Fatalf("XP = %d, want 200", res.Session.XPGained)
	}
	if len(res.CompletedNodes) != 1 {
		t.Fatalf("completed nodes = %+v", res.CompletedNodes)
	}

	// Summary reflects the session.
	sumResp, err := http.Get(ts.URL + "/api/children/" + child.ID + "/summary")
	if err != nil {
		t.Fatal(err)
	}
	var sum domain.ChildSummary
	decodeBody(t, sumResp, &sum)
	if sum.Child.XP != 240 {
		t.Fatalf("summary XP = %d, want 240 with node bonus", sum.Child.XP)
	}
}

func TestLogSessionUnknownChild(t *testing.T) {
	ts, _ := newTestServer(t)

	resp := postJSON(t, ts.URL+"/api/children/nope/sessions", map[string]interface{}{
		"activity_id":      "reading",
		"duration_minutes": 10,
		"effort_level":     1,
	})
	resp.Body.Close()
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", resp.StatusCode)
	}
}

func TestLogSessionUnknownActivity(t *testing.T) {
	ts, svc := newTestServer(t)
	child, _ := svc.AddChild("Mika")

	resp := postJSON(t, ts.URL+"/api/children/"+child.ID+"/sessions", map[string]interface{}{
		"activity_id":      "juggling",
		"duration_minutes": 10,
		"effort_level":     1,
	})
	resp.Body.Close()
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", resp.StatusCode)
	}
}

func TestGachaEndpointOutcome(t *testing.T) {
	ts, svc := newTestServer(t)
	child, _ := svc.AddChild("Mika")

	// Fresh child: no tickets. The roll is a 200 with a typed outcome.
	resp := postJSON(t, ts.URL+"/api/children/"+child.ID+"/gacha", map[string]string{
		"category": "study",
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	var res domain.GachaResult
	decodeBody(t, resp, &res)
	if res.Outcome == domain.GachaOK {
		t.Fatalf("fresh child rolled successfully: %+v", res)
	}

	// Unknown category is a 400.
	resp = postJSON(t, ts.URL+"/api/children/"+child.ID+"/gacha", map[string]string{
		"category": "chores",
	})
	resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("bad category status = %d", resp.StatusCode)
	}
}

func TestTreasureEndpoints(t *testing.T) {
	ts, svc := newTestServer(t)
	child, _ := svc.AddChild("Mika")

	resp, err := http.Get(ts.URL + "/api/treasure")
	if err != nil {
		t.Fatal(err)
	}
	var status tracker.TreasureStatus
	decodeBody(t, resp, &status)
	if status.Kind != domain.ChestSmall || status.Target != 3 {
		t.Fatalf("treasure = %+v", status)
	}

	// Not ready yet.
	open := postJSON(t, ts.URL+"/api/children/"+child.ID+"/treasure/open", struct{}{})
	var res domain.ChestResult
	decodeBody(t, open, &res)
	if res.Outcome != domain.ChestNotReady {
		t.Fatalf("outcome = %q, want not_ready", res.Outcome)
	}
}

func TestPlannedSessionEndpoints(t *testing.T) {
	ts, svc := newTestServer(t)
	child, _ := svc.AddChild("Mika")

	resp := postJSON(t, ts.URL+"/api/children/"+child.ID+"/sessions", map[string]interface{}{
		"activity_id": "piano",
		"planned":     true,
	})
	var planned domain.SessionResult
	decodeBody(t, resp, &planned)
	if planned.Session.Status != domain.SessionPlanned {
		t.Fatalf("status = %q", planned.Session.Status)
	}

	done := postJSON(t, ts.URL+"/api/sessions/"+planned.Session.ID+"/complete", map[string]interface{}{
		"duration_minutes": 15,
		"effort_level":     2,
	})
	if done.StatusCode != http.StatusOK {
		t.Fatalf("complete status = %d", done.StatusCode)
	}
	var res domain.SessionResult
	decodeBody(t, done, &res)
	if res.Session.XPGained != 150 {
		t.Fatalf("XP = %d, want 150", res.Session.XPGained)
	}

	// Completing twice is a 400.
	again := postJSON(t, ts.URL+"/api/sessions/"+planned.Session.ID+"/complete", map[string]interface{}{
		"duration_minutes": 15,
		"effort_level":     2,
	})
	again.Body.Close()
	if again.StatusCode != http.StatusBadRequest {
		t.Fatalf("double complete status = %d", again.StatusCode)
	}
}

func TestCatalogEndpoints(t *testing.T) {
	ts, _ := newTestServer(t)

	var acts struct {
		Activities []domain.Activity `json:"activities"`
	}
	resp, err := http.Get(ts.URL + "/api/activities")
	if err != nil {
		t.Fatal(err)
	}
	decodeBody(t, resp, &acts)
	if len(acts.Activities) == 0 {
		t.Fatal("empty activity catalog")
	}

	var skins struct {
		Skins []domain.Skin `json:"skins"`
	}
	resp, err = http.Get(ts.URL + "/api/skins")
	if err != nil {
		t.Fatal(err)
	}
	decodeBody(t, resp, &skins)
	if len(skins.Skins) == 0 {
		t.Fatal("empty skin catalog")
	}
}

func TestBuddyEndpoints(t *testing.T) {
	ts, svc := newTestServer(t)
	child, _ := svc.AddChild("Mika")

	resp := postJSON(t, ts.URL+"/api/children/"+child.ID+"/buddy/pet", struct{}{})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("pet status = %d", resp.StatusCode)
	}
	var res domain.CareResult
	decodeBody(t, resp, &res)
	if res.Outcome != domain.CareOK {
		t.Fatalf("pet outcome = %q", res.Outcome)
	}

	// Feeding a broke child is still a 200 with a typed outcome.
	resp = postJSON(t, ts.URL+"/api/children/"+child.ID+"/buddy/feed", struct{}{})
	decodeBody(t, resp, &res)
	if res.Outcome != domain.CareNotEnoughCoins {
		t.Fatalf("feed outcome = %q, want not_enough_coins", res.Outcome)
	}
}
