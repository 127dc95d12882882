package todoist

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func newTestClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	return &Client{
		token:      "test-token",
		httpClient: &http.Client{Timeout: 5 * time.Second},
		restURL:    server.URL,
		syncURL:    server.URL,
	}
}

func TestGetProjects(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer test-token" {
			t.Errorf("expected bearer token, got %q", got)
		}
		w.Write([]byte(`[{"id":"1","name":"Work"},{"id":"2","name":"Home"}]`))
	}))

	projects, err := client.GetProjects()
	if err != nil {
		t.Fatalf("get projects: %v", err)
	}
	if len(projects) != 2 || projects["1"] != "Work" || projects["2"] != "Home" {
		t.Fatalf("unexpected projects: %+v", projects)
	}
}

func TestGetActiveTasksNormalizes(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/tasks":
			w.Write([]byte(`[
				{"content":"Fix bug","project_id":"1","due":{"string":"завтра"}},
				{"content":"Orphan","project_id":"999"}
			]`))
		case "/projects":
			w.Write([]byte(`[{"id":"1","name":"Work"}]`))
		default:
			t.Errorf("unexpected path %q", r.URL.Path)
		}
	}))

	tasks, err := client.GetActiveTasks()
	if err != nil {
		t.Fatalf("get active tasks: %v", err)
	}
	if len(tasks) != 2 {
		t.Fatalf("expected 2 tasks, got %d", len(tasks))
	}
	if tasks[0].ProjectName != "Work" || tasks[0].DueDate != "завтра" {
		t.Fatalf("unexpected first task: %+v", tasks[0])
	}
	if tasks[1].ProjectName != DefaultProjectName {
		t.Fatalf("unknown project must map to %s, got %q", DefaultProjectName, tasks[1].ProjectName)
	}
	if tasks[1].DueDate != "" {
		t.Fatalf("task without due must have empty DueDate, got %q", tasks[1].DueDate)
	}
}

func TestGetCompletedSince(t *testing.T) {
	var sinceParam string
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/completed/get_all":
			sinceParam = r.URL.Query().Get("since")
			w.Write([]byte(`{"items":[{"content":"Done","project_id":"1","completed_at":"2026-03-07T10:00:00Z"}]}`))
		case "/projects":
			w.Write([]byte(`[{"id":"1","name":"Work"}]`))
		}
	}))

	since := time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)
	tasks, err := client.GetCompletedSince(since)
	if err != nil {
		t.Fatalf("get completed: %v", err)
	}
	if sinceParam != "2026-03-01T00:00:00" {
		t.Fatalf("unexpected since parameter: %q", sinceParam)
	}
	if len(tasks) != 1 || tasks[0].Content != "Done" {
		t.Fatalf("unexpected tasks: %+v", tasks)
	}
	if tasks[0].CompletedAt == nil || !tasks[0].IsCompleted() {
		t.Fatalf("expected parsed completion time, got %+v", tasks[0])
	}
}

func TestGetCompletedSinceUpstreamError(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "forbidden", http.StatusForbidden)
	}))

	tasks, err := client.GetCompletedSince(time.Now())
	if err != nil {
		t.Fatalf("upstream error must not propagate, got %v", err)
	}
	if len(tasks) != 0 {
		t.Fatalf("expected empty result on upstream error, got %+v", tasks)
	}
}

func TestVerifyToken(t *testing.T) {
	ok := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[]`))
	}))
	if !ok.VerifyToken() {
		t.Fatalf("expected token to verify")
	}

	bad := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
	}))
	if bad.VerifyToken() {
		t.Fatalf("expected verification to fail")
	}
}

func TestAddTask(t *testing.T) {
	var gotBody string
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("expected POST, got %s", r.Method)
		}
		body, _ := io.ReadAll(r.Body)
		gotBody = string(body)
	}))

	if err := client.AddTask("Buy milk", ""); err != nil {
		t.Fatalf("add task: %v", err)
	}
	if gotBody != `{"content":"Buy milk"}` {
		t.Fatalf("unexpected request body: %q", gotBody)
	}
}
