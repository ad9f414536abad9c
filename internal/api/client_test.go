package api

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/lifelens/lifelens-cli/internal/config"
	"github.com/lifelens/lifelens-cli/internal/models"
)

// fakeSession satisfies session.Provider without touching the keyring.
type fakeSession struct {
	userID string
	token  string
	email  string
}

func (f fakeSession) UserID() string      { return f.userID }
func (f fakeSession) AccessToken() string { return f.token }
func (f fakeSession) Email() string       { return f.email }

func testClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	cfg := config.Config{
		APIURL:         srv.URL,
		RequestTimeout: 5 * time.Second,
		RequestsPerSec: 1000,
	}
	return New(cfg, fakeSession{userID: "user-1", token: "tok", email: "a@b.c"})
}

func TestUnauthenticatedNeverHitsNetwork(t *testing.T) {
	hit := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hit = true
	}))
	defer srv.Close()

	cfg := config.Config{APIURL: srv.URL, RequestTimeout: time.Second, RequestsPerSec: 1000}
	c := New(cfg, fakeSession{})

	ctx := context.Background()
	if _, err := c.GetProfile(ctx); !errors.Is(err, ErrNotAuthenticated) {
		t.Errorf("GetProfile err = %v, want ErrNotAuthenticated", err)
	}
	if _, err := c.GetLifeGoals(ctx); !errors.Is(err, ErrNotAuthenticated) {
		t.Errorf("GetLifeGoals err = %v, want ErrNotAuthenticated", err)
	}
	if err := c.SaveMood(ctx, "Good", ""); !errors.Is(err, ErrNotAuthenticated) {
		t.Errorf("SaveMood err = %v, want ErrNotAuthenticated", err)
	}
	if hit {
		t.Error("server was reached without a session")
	}
}

func TestBearerTokenAttached(t *testing.T) {
	var got string
	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Get("Authorization")
		w.Write([]byte(`{"message":"success","data":null}`))
	}))

	if _, err := c.GetProfile(context.Background()); err != nil {
		t.Fatalf("GetProfile: %v", err)
	}
	if got != "Bearer tok" {
		t.Errorf("Authorization = %q, want %q", got, "Bearer tok")
	}
}

func TestErrorMessageExtraction(t *testing.T) {
	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"message":"age must be positive"}`))
	}))

	err := c.SaveMood(context.Background(), "Good", "")
	var apiErr *Error
	if !errors.As(err, &apiErr) {
		t.Fatalf("err = %v, want *Error", err)
	}
	if apiErr.Status != http.StatusBadRequest || apiErr.Message != "age must be positive" {
		t.Errorf("apiErr = %+v", apiErr)
	}
}

func TestErrorFallsBackToStatusText(t *testing.T) {
	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte("not json at all"))
	}))

	err := c.SaveMood(context.Background(), "Good", "")
	var apiErr *Error
	if !errors.As(err, &apiErr) {
		t.Fatalf("err = %v, want *Error", err)
	}
	if apiErr.Message != http.StatusText(http.StatusInternalServerError) {
		t.Errorf("Message = %q, want status text fallback", apiErr.Message)
	}
}

func TestGetLifeGoalsMissingDataConvention(t *testing.T) {
	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		w.Write([]byte(`{"message":"Cannot get life goal data for this user"}`))
	}))

	goals, err := c.GetLifeGoals(context.Background())
	if err != nil {
		t.Fatalf("403 with the known message should not be an error, got %v", err)
	}
	if !goals.Empty() {
		t.Error("synthesized record should be empty")
	}
	if goals.UserID != "user-1" {
		t.Errorf("UserID = %q, want session user", goals.UserID)
	}
}

func TestGetLifeGoals403OtherMessageIsError(t *testing.T) {
	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		w.Write([]byte(`{"message":"token expired"}`))
	}))

	if _, err := c.GetLifeGoals(context.Background()); err == nil {
		t.Error("403 with an unrelated message should stay an error")
	}
}

func TestGetProfileMissingDataConvention(t *testing.T) {
	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		w.Write([]byte(`{"message":"cannot get user data"}`))
	}))

	profile, err := c.GetProfile(context.Background())
	if err != nil {
		t.Fatalf("GetProfile: %v", err)
	}
	if !profile.Empty() {
		t.Error("missing profile should come back empty")
	}
}

func TestGetPlan(t *testing.T) {
	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"message":"success","data":[{"id":"plan-9","user_id":"user-1","generated_plan":"# Your Plan"}]}`))
	}))

	plan, err := c.GetPlan(context.Background())
	if err != nil {
		t.Fatalf("GetPlan: %v", err)
	}
	if plan.Missing() {
		t.Fatal("plan should be present")
	}
	if *plan.ID != "plan-9" || *plan.GeneratedPlan != "# Your Plan" {
		t.Errorf("plan = %+v", plan)
	}
}

func TestGetPlan403MeansNoPlan(t *testing.T) {
	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		w.Write([]byte(`{"message":"forbidden"}`))
	}))

	plan, err := c.GetPlan(context.Background())
	if err != nil {
		t.Fatalf("any 403 on the plan endpoint should mean no plan, got %v", err)
	}
	if !plan.Missing() {
		t.Error("plan should be missing")
	}
}

func TestGetPlanEmptyArrayIsError(t *testing.T) {
	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"message":"success","data":[]}`))
	}))

	if _, err := c.GetPlan(context.Background()); !errors.Is(err, ErrNoPlanData) {
		t.Errorf("err = %v, want ErrNoPlanData", err)
	}
}

func TestListHabitsAdapter(t *testing.T) {
	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"message":"success","data":[
			{"id":7,"user_id":"user-1","name":"meditate","description":"10 min","target_count":1,"current_streak":3,"completed_dates":null,"category":"health","created_at":"2026-08-01T00:00:00Z"}
		]}`))
	}))

	habits, err := c.ListHabits(context.Background())
	if err != nil {
		t.Fatalf("ListHabits: %v", err)
	}
	if len(habits) != 1 {
		t.Fatalf("len = %d, want 1", len(habits))
	}
	h := habits[0]
	if h.ID != "7" {
		t.Errorf("ID = %q, want integer row id as string", h.ID)
	}
	if h.CompletedDates == nil {
		t.Error("null completed_dates should adapt to an empty slice")
	}
	if h.Name != "meditate" || h.CurrentStreak != 3 {
		t.Errorf("habit = %+v", h)
	}
}

func TestSaveHabitPayloadShape(t *testing.T) {
	var body string
	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		buf, _ := io.ReadAll(r.Body)
		body = string(buf)
		w.Write([]byte(`{"message":"success","data":null}`))
	}))

	h := models.Habit{Name: "meditate", Frequency: "daily", Category: "health", TargetCount: 1}
	if err := c.SaveHabit(context.Background(), h); err != nil {
		t.Fatalf("SaveHabit: %v", err)
	}

	// The endpoint wants "userid", not "user_id", and a non-null dates array.
	for _, want := range []string{`"userid":"user-1"`, `"completed_dates":[]`, `"frequency":"daily"`} {
		if !strings.Contains(body, want) {
			t.Errorf("payload missing %s: %s", want, body)
		}
	}
}

func TestListMoodsSingleObject(t *testing.T) {
	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"message":"success","data":{"id":2,"user_id":"user-1","mood":"Excellent","note":"","created_at":"2026-08-01T00:00:00Z"}}`))
	}))

	moods, err := c.ListMoods(context.Background())
	if err != nil {
		t.Fatalf("ListMoods: %v", err)
	}
	if len(moods) != 1 || moods[0].Mood != "Excellent" {
		t.Errorf("moods = %+v", moods)
	}
}

func TestChatHistory(t *testing.T) {
	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			w.Write([]byte(`{"message":"success","data":[
				{"id":"m1","user_id":"user-1","message":"hello","sender":"user","created_at":"2026-08-01T00:00:00Z"},
				{"id":"m2","user_id":"user-1","message":"Hi there","sender":"ai","created_at":"2026-08-01T00:00:01Z"}
			]}`))
		case http.MethodDelete:
			w.Write([]byte(`{"message":"success"}`))
		}
	}))

	msgs, err := c.ChatHistory(context.Background())
	if err != nil {
		t.Fatalf("ChatHistory: %v", err)
	}
	if len(msgs) != 2 || msgs[1].Sender != "ai" {
		t.Errorf("msgs = %+v", msgs)
	}

	if err := c.ClearChat(context.Background()); err != nil {
		t.Errorf("ClearChat: %v", err)
	}
}

func TestContextCancellation(t *testing.T) {
	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := c.GetProfile(ctx); err == nil {
		t.Error("canceled context should abort the request")
	}
}
