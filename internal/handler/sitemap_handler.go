package handler

import (
	"encoding/xml"
	"log/slog"
	"net/http"

	"github.com/terroir-ai/backend/internal/model"
	"github.com/terroir-ai/backend/internal/service"
)

// sitemapPostLimit bounds how many posts the sitemap lists.
const sitemapPostLimit = 100

// SitemapHandler generates /sitemap.xml from the static routes plus the
// published blog posts.
type SitemapHandler struct {
	blogService service.BlogService
	baseURL     string
}

// NewSitemapHandler creates a SitemapHandler rooted at the given public base URL.
func NewSitemapHandler(blogService service.BlogService, baseURL string) *SitemapHandler {
	return &SitemapHandler{blogService: blogService, baseURL: baseURL}
}

type urlSet struct {
	XMLName xml.Name     `xml:"urlset"`
	Xmlns   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

type sitemapURL struct {
	Loc        string `xml:"loc"`
	LastMod    string `xml:"lastmod,omitempty"`
	ChangeFreq string `xml:"changefreq,omitempty"`
	Priority   string `xml:"priority,omitempty"`
}

// Sitemap handles GET /sitemap.xml. A blog query failure degrades to the
// static routes rather than failing the whole document.
func (h *SitemapHandler) Sitemap(w http.ResponseWriter, r *http.Request) {
	set := urlSet{
		Xmlns: "http://www.sitemaps.org/schemas/sitemap/0.9",
		URLs: []sitemapURL{
			{Loc: h.baseURL + "/", ChangeFreq: "weekly", Priority: "1.0"},
			{Loc: h.baseURL + "/blog", ChangeFreq: "weekly", Priority: "0.8"},
			{Loc: h.baseURL + "/contact", ChangeFreq: "monthly", Priority: "0.7"},
		},
	}

	posts, err := h.blogService.ListPublished(r.Context(), model.ListOptions{Limit: sitemapPostLimit})
	if err != nil {
		slog.Error("sitemap blog lookup failed", "error", err)
	}
	for _, post := range posts {
		u := sitemapURL{
			Loc:        h.baseURL + "/blog/" + post.Slug,
			ChangeFreq: "monthly",
			Priority:   "0.6",
		}
		if post.PublishedAt != nil {
			u.LastMod = post.PublishedAt.UTC().Format("2006-01-02")
		}
		set.URLs = append(set.URLs, u)
	}

	w.Header().Set("Content-Type", "application/xml; charset=utf-8")
	_, _ = w.Write([]byte(xml.Header))
	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	if err := enc.Encode(set); err != nil {
		slog.Error("sitemap encode failed", "error", err)
	}
}
