package gateway

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"examgen_client/listquery"
	"examgen_client/models"
)

func newTestClient(handler http.HandlerFunc) (*Client, *httptest.Server) {
	srv := httptest.NewServer(handler)
	return NewClient(srv.URL, 2*time.Second), srv
}

func TestBearerTokenAttached(t *testing.T) {
	var gotAuth string
	client, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"totalTasks":0,"years":[],"levels":[],"subjects":[]}`))
	})
	defer srv.Close()

	if _, err := client.GetStatistics(context.Background(), "tok-123"); err != nil {
		t.Fatalf("GetStatistics failed: %v", err)
	}
	if gotAuth != "Bearer tok-123" {
		t.Errorf("Expected bearer header, got %q", gotAuth)
	}
}

func TestNoBearerWithoutToken(t *testing.T) {
	var gotAuth string
	client, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{"success":true,"token":"t","user":{"id":1,"email":"a@b.pl","username":"a","role":"User","createdAt":"2025-01-01T00:00:00Z"}}`))
	})
	defer srv.Close()

	if _, err := client.Login(context.Background(), models.LoginRequest{Email: "a@b.pl", Password: "secret123"}); err != nil {
		t.Fatalf("Login failed: %v", err)
	}
	if gotAuth != "" {
		t.Errorf("Expected no Authorization header on login, got %q", gotAuth)
	}
}

func TestListGeneratedTasksLegacyShape(t *testing.T) {
	client, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"tasks":[{"id":7,"prompt":"spadek swobodny","generatedText":"{}","createdAt":"2025-03-01T10:00:00Z"}],"totalCount":11,"page":2,"pageSize":10,"totalPages":2}`))
	})
	defer srv.Close()

	page, err := client.ListGeneratedTasks(context.Background(), "tok", listquery.DefaultQuery())
	if err != nil {
		t.Fatalf("ListGeneratedTasks failed: %v", err)
	}
	if len(page.Tasks) != 1 || page.Tasks[0].ID != 7 {
		t.Errorf("Unexpected tasks: %+v", page.Tasks)
	}
	if page.CurrentPage != 2 {
		t.Errorf("Expected page field normalized into CurrentPage, got %d", page.CurrentPage)
	}
	if page.TotalCount != 11 {
		t.Errorf("Expected totalCount 11, got %d", page.TotalCount)
	}
}

func TestListGeneratedTasksItemsShape(t *testing.T) {
	client, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"items":[],"totalCount":0,"currentPage":1,"pageSize":10,"totalPages":0}`))
	})
	defer srv.Close()

	page, err := client.ListGeneratedTasks(context.Background(), "tok", listquery.DefaultQuery())
	if err != nil {
		t.Fatalf("ListGeneratedTasks failed: %v", err)
	}
	if page.Tasks == nil || len(page.Tasks) != 0 {
		t.Errorf("Expected an empty page, got %+v", page.Tasks)
	}
	if page.CurrentPage != 1 {
		t.Errorf("Expected currentPage 1, got %d", page.CurrentPage)
	}
}

func TestListGeneratedTasksUnknownShape(t *testing.T) {
	client, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"results":[],"count":0}`))
	})
	defer srv.Close()

	_, err := client.ListGeneratedTasks(context.Background(), "tok", listquery.DefaultQuery())
	var gerr *Error
	if !errors.As(err, &gerr) || gerr.Kind != ErrorKindDecode {
		t.Fatalf("Expected a decode error for an unknown shape, got %v", err)
	}
}

func TestListQueryParameters(t *testing.T) {
	var gotQuery map[string][]string
	client, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		w.Write([]byte(`{"items":[],"totalCount":0,"currentPage":1,"pageSize":5,"totalPages":0}`))
	})
	defer srv.Close()

	q := listquery.DefaultQuery()
	q.Page = 3
	q.PageSize = 5
	q.Search = "energia"
	q.Filters[listquery.FilterLevel] = "rozszerzony"

	if _, err := client.ListGeneratedTasks(context.Background(), "tok", q); err != nil {
		t.Fatalf("ListGeneratedTasks failed: %v", err)
	}
	want := map[string]string{
		"page": "3", "pageSize": "5", "search": "energia",
		"sortBy": "createdAt", "sortOrder": "desc", "level": "rozszerzony",
	}
	for key, value := range want {
		if len(gotQuery[key]) != 1 || gotQuery[key][0] != value {
			t.Errorf("Expected %s=%s, got %v", key, value, gotQuery[key])
		}
	}
	if _, ok := gotQuery["subject"]; ok {
		t.Error("Expected unset filters to be omitted")
	}
}

func TestGetMyReviewNotFound(t *testing.T) {
	client, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"message":"no review"}`, http.StatusNotFound)
	})
	defer srv.Close()

	review, err := client.GetMyReview(context.Background(), "tok")
	if err != nil {
		t.Fatalf("Expected 404 to be absorbed, got %v", err)
	}
	if review != nil {
		t.Errorf("Expected a nil review, got %+v", review)
	}
}

func TestListReviewsBareArray(t *testing.T) {
	client, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"id":1,"userId":2,"userName":"ala","rating":5,"comment":"świetna aplikacja","createdAt":"2025-02-01T00:00:00Z","updatedAt":"2025-02-01T00:00:00Z"}]`))
	})
	defer srv.Close()

	page, err := client.ListReviews(context.Background(), "tok", listquery.DefaultQuery())
	if err != nil {
		t.Fatalf("ListReviews failed: %v", err)
	}
	if len(page.Reviews) != 1 || page.TotalCount != 1 || page.TotalPages != 1 {
		t.Errorf("Unexpected page: %+v", page)
	}
}

func TestBackendErrorMessage(t *testing.T) {
	client, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"message":"Limit zadań wyczerpany"}`, http.StatusForbidden)
	})
	defer srv.Close()

	_, err := client.GetStatistics(context.Background(), "tok")
	if err == nil {
		t.Fatal("Expected an error")
	}
	if got := Message(err, "fallback"); got != "Limit zadań wyczerpany" {
		t.Errorf("Expected the backend message, got %q", got)
	}
	if IsNotFound(err) {
		t.Error("Expected a 403 not to read as not-found")
	}

	var gerr *Error
	if !errors.As(err, &gerr) || gerr.Kind != ErrorKindBackend || gerr.StatusCode != http.StatusForbidden {
		t.Errorf("Unexpected error classification: %+v", gerr)
	}
}

func TestTransportError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()
	client := NewClient(url, time.Second)

	_, err := client.GetStatistics(context.Background(), "tok")
	var gerr *Error
	if !errors.As(err, &gerr) || gerr.Kind != ErrorKindTransport {
		t.Fatalf("Expected a transport error, got %v", err)
	}
	if got := Message(err, "Błąd połączenia z serwerem"); got != "Błąd połączenia z serwerem" {
		t.Errorf("Expected the fallback message, got %q", got)
	}
}

func TestGenerateTasksIncludeSolutionsParam(t *testing.T) {
	var got string
	client, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		got = r.URL.Query().Get("includeSolutions")
		w.Write([]byte(`{"success":true,"tasks":[{"content":"C","answers":[],"correctAnswer":"","solution":"","source":""}]}`))
	})
	defer srv.Close()

	req := models.TaskGenerationRequest{TaskTopic: "Free fall", DifficultyLevel: "podstawowy", PhysicsSubject: "mechanika", TaskCount: 1, TaskType: "closed"}
	if _, err := client.GenerateTasks(context.Background(), "tok", req, false); err != nil {
		t.Fatalf("GenerateTasks failed: %v", err)
	}
	if got != "false" {
		t.Errorf("Expected includeSolutions=false on the wire, got %q", got)
	}
}
