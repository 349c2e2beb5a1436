package handler

import (
	"encoding/xml"
	"net/http"
	"strings"
	"time"

	"github.com/sec-engineering/site-api/internal/content"
)

// staticRoutes are the fixed site paths always present in the sitemap.
var staticRoutes = []string{
	"",
	"/about",
	"/about/team",
	"/services",
	"/projects",
	"/careers",
	"/contact",
	"/privacy-policy",
	"/terms-of-service",
	"/llm-context",
}

// SitemapHandler renders sitemap.xml from the static route list plus one
// entry per project from the content façade.
type SitemapHandler struct {
	queries *content.Queries
	siteURL string
	now     func() time.Time
}

// NewSitemapHandler creates a SitemapHandler. siteURL is the canonical site
// origin; a trailing slash is stripped.
func NewSitemapHandler(queries *content.Queries, siteURL string) *SitemapHandler {
	return &SitemapHandler{
		queries: queries,
		siteURL: strings.TrimRight(siteURL, "/"),
		now:     time.Now,
	}
}

type sitemapURL struct {
	Loc        string `xml:"loc"`
	LastMod    string `xml:"lastmod"`
	ChangeFreq string `xml:"changefreq"`
	Priority   string `xml:"priority"`
}

type sitemapURLSet struct {
	XMLName xml.Name     `xml:"urlset"`
	Xmlns   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

// Serve handles GET /sitemap.xml. A content-source failure degrades to the
// static routes alone; the sitemap never errors out.
func (h *SitemapHandler) Serve(w http.ResponseWriter, r *http.Request) {
	lastMod := h.now().UTC().Format("2006-01-02")

	urls := make([]sitemapURL, 0, len(staticRoutes))
	for _, path := range staticRoutes {
		priority := "0.8"
		if path == "" {
			priority = "1.0"
		}
		urls = append(urls, sitemapURL{
			Loc:        h.siteURL + path,
			LastMod:    lastMod,
			ChangeFreq: "weekly",
			Priority:   priority,
		})
	}

	result := h.queries.Projects(r.Context(), "")
	for _, project := range result.Projects {
		urls = append(urls, sitemapURL{
			Loc:        h.siteURL + "/projects/" + project.Slug,
			LastMod:    lastMod,
			ChangeFreq: "weekly",
			Priority:   "0.7",
		})
	}

	w.Header().Set("Content-Type", "application/xml; charset=utf-8")
	_, _ = w.Write([]byte(xml.Header))
	_ = xml.NewEncoder(w).Encode(sitemapURLSet{
		Xmlns: "http://www.sitemaps.org/schemas/sitemap/0.9",
		URLs:  urls,
	})
}
