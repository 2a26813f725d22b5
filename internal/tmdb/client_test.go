package tmdb

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func testClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return NewClient(Config{
		BaseURL:      srv.URL,
		ImageBaseURL: "https://img.example/t/p/original",
		APIKey:       "test-key",
	})
}

func TestClient_Search(t *testing.T) {
	var gotQuery, gotKey string
	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/search/movie" {
			t.Errorf("path = %q, want /search/movie", r.URL.Path)
		}
		gotQuery = r.URL.Query().Get("query")
		gotKey = r.URL.Query().Get("api_key")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"results":[
			{"id":603,"title":"The Matrix","release_date":"1999-03-31","overview":"A hacker learns the truth.","poster_path":"/matrix.jpg"},
			{"id":604,"title":"The Matrix Reloaded","release_date":"2003-05-15","overview":"More of the truth.","poster_path":"/reloaded.jpg"}
		]}`))
	}))

	results, err := c.Search(context.Background(), "the matrix")
	if err != nil {
		t.Fatalf("Search: %v", err)
	}

	if gotQuery != "the matrix" {
		t.Errorf("query param = %q, want %q", gotQuery, "the matrix")
	}
	if gotKey != "test-key" {
		t.Errorf("api_key param = %q, want %q", gotKey, "test-key")
	}
	if len(results) != 2 {
		t.Fatalf("len(results) = %d, want 2", len(results))
	}
	if results[0].ID != 603 || results[0].Title != "The Matrix" {
		t.Errorf("results[0] = %+v", results[0])
	}
}

func TestClient_Search_UpstreamStatus(t *testing.T) {
	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"status_message":"Invalid API key"}`, http.StatusUnauthorized)
	}))

	if _, err := c.Search(context.Background(), "anything"); err == nil {
		t.Fatal("expected error on non-200 response, got nil")
	}
}

func TestClient_Details(t *testing.T) {
	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/movie/603" {
			t.Errorf("path = %q, want /movie/603", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"title":"The Matrix","release_date":"1999-03-31","overview":"A hacker learns the truth.","poster_path":"/matrix.jpg"}`))
	}))

	d, err := c.Details(context.Background(), 603)
	if err != nil {
		t.Fatalf("Details: %v", err)
	}

	if d.Title != "The Matrix" {
		t.Errorf("Title = %q", d.Title)
	}
	if d.Year != 1999 {
		t.Errorf("Year = %d, want 1999 (year portion of release_date only)", d.Year)
	}
	if d.Description != "A hacker learns the truth." {
		t.Errorf("Description = %q", d.Description)
	}
	if want := "https://img.example/t/p/original/matrix.jpg"; d.ImgURL != want {
		t.Errorf("ImgURL = %q, want %q", d.ImgURL, want)
	}
}

func TestClient_Details_NetworkFailure(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close()

	c := NewClient(Config{BaseURL: srv.URL, APIKey: "test-key"})
	if _, err := c.Details(context.Background(), 603); err == nil {
		t.Fatal("expected error when upstream is unreachable, got nil")
	}
}

func TestYearOf(t *testing.T) {
	cases := []struct {
		in   string
		want int
	}{
		{"1999-03-31", 1999},
		{"2003-05-15", 2003},
		{"1999", 1999},
		{"", 0},
		{"unknown", 0},
	}
	for _, tc := range cases {
		if got := yearOf(tc.in); got != tc.want {
			t.Errorf("yearOf(%q) = %d, want %d", tc.in, got, tc.want)
		}
	}
}
