package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sec-engineering/site-api/internal/content"
)

// unconfiguredContent is a façade with no content source behind it; every
// query resolves locally to a configured=false envelope.
func unconfiguredContent() *ContentHandler {
	return NewContentHandler(content.NewQueries(content.NewClient(content.Config{})))
}

// contentHandlerFor wires the façade at a stub WordPress server.
func contentHandlerFor(t *testing.T, handler http.HandlerFunc) *ContentHandler {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewContentHandler(content.NewQueries(content.NewClient(content.Config{BaseURL: server.URL})))
}

func TestEnvelopeStatus(t *testing.T) {
	cases := []struct {
		name       string
		configured bool
		errMsg     string
		want       int
	}{
		{"ok", true, "", http.StatusOK},
		{"unconfigured is still 200", false, "WordPress is not configured yet.", http.StatusOK},
		{"missing entity", true, "Project not found for slug: x", http.StatusNotFound},
		{"upstream failure", true, "wordpress request failed (502 Bad Gateway)", http.StatusInternalServerError},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := envelopeStatus(tc.configured, tc.errMsg); got != tc.want {
				t.Errorf("envelopeStatus(%v, %q) = %d, want %d", tc.configured, tc.errMsg, got, tc.want)
			}
		})
	}
}

func TestContentHandler_Projects_Unconfigured(t *testing.T) {
	h := unconfiguredContent()

	req := httptest.NewRequest(http.MethodGet, "/api/content/projects", nil)
	rec := httptest.NewRecorder()
	h.Projects(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 for unconfigured source, got %d", rec.Code)
	}

	var resp struct {
		Configured bool     `json:"configured"`
		Categories []string `json:"categories"`
		Error      string   `json:"error"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Configured {
		t.Error("expected configured=false")
	}
	if resp.Error == "" {
		t.Error("expected explanatory error message")
	}
	if len(resp.Categories) == 0 {
		t.Error("expected default categories even when unconfigured")
	}
}

func TestContentHandler_Projects_UpstreamError(t *testing.T) {
	h := contentHandlerFor(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	req := httptest.NewRequest(http.MethodGet, "/api/content/projects", nil)
	rec := httptest.NewRecorder()
	h.Projects(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("expected 500 for upstream failure, got %d", rec.Code)
	}
}

func TestContentHandler_ProjectBySlug_NotFound(t *testing.T) {
	h := contentHandlerFor(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[]`))
	})

	req := httptest.NewRequest(http.MethodGet, "/api/content/projects/missing", nil)
	req.SetPathValue("slug", "missing")
	rec := httptest.NewRecorder()
	h.ProjectBySlug(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404 for missing project, got %d", rec.Code)
	}
}

func TestContentHandler_ProjectBySlug_Found(t *testing.T) {
	h := contentHandlerFor(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"id":1,"slug":"capitol-hvac","title":{"rendered":"Capitol HVAC"},"category":"state-government"}]`))
	})

	req := httptest.NewRequest(http.MethodGet, "/api/content/projects/capitol-hvac", nil)
	req.SetPathValue("slug", "capitol-hvac")
	rec := httptest.NewRecorder()
	h.ProjectBySlug(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d — body: %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		Project *struct {
			Slug string `json:"slug"`
			Name string `json:"name"`
		} `json:"project"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Project == nil || resp.Project.Slug != "capitol-hvac" {
		t.Errorf("expected project capitol-hvac in envelope, got %+v", resp.Project)
	}
}

func TestContentHandler_FeaturedProjects_LimitParsing(t *testing.T) {
	h := contentHandlerFor(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[
			{"id":1,"slug":"a","title":{"rendered":"A"},"category":"healthcare"},
			{"id":2,"slug":"b","title":{"rendered":"B"},"category":"healthcare"},
			{"id":3,"slug":"c","title":{"rendered":"C"},"category":"healthcare"}
		]`))
	})

	req := httptest.NewRequest(http.MethodGet, "/api/content/featured-projects?limit=2", nil)
	rec := httptest.NewRecorder()
	h.FeaturedProjects(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp struct {
		Projects []struct {
			ID int64 `json:"id"`
		} `json:"projects"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(resp.Projects) != 2 {
		t.Errorf("expected 2 projects for limit=2, got %d", len(resp.Projects))
	}
}

func TestContentHandler_Team_Unconfigured(t *testing.T) {
	h := unconfiguredContent()

	req := httptest.NewRequest(http.MethodGet, "/api/content/team", nil)
	rec := httptest.NewRecorder()
	h.Team(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("expected Content-Type=application/json, got %q", ct)
	}
}

func TestContentHandler_About_NotFound(t *testing.T) {
	h := contentHandlerFor(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[]`))
	})

	req := httptest.NewRequest(http.MethodGet, "/api/content/about", nil)
	rec := httptest.NewRecorder()
	h.About(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404 when about page is missing, got %d", rec.Code)
	}
}
