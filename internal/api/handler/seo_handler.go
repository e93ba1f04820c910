package handler

import (
	"WithTheLake/internal/api/config"
	"WithTheLake/internal/service"
	"encoding/xml"
	"fmt"
	log "log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

const sitemapPageSize = 100

type SeoHandler struct {
	newsSvc service.NewsService
}

func NewSeoHandler(newsSvc service.NewsService) *SeoHandler {
	return &SeoHandler{
		newsSvc: newsSvc,
	}
}

type sitemapURL struct {
	Loc     string `xml:"loc"`
	LastMod string `xml:"lastmod,omitempty"`
}

type sitemapURLSet struct {
	XMLName xml.Name     `xml:"urlset"`
	Xmlns   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

// Robots 后台与接口路径不对爬虫开放
func (s *SeoHandler) Robots(c *gin.Context) {
	base := strings.TrimSuffix(config.Cfg.Site.BaseURL, "/")

	var b strings.Builder
	b.WriteString("User-agent: *\n")
	b.WriteString("Allow: /\n")
	b.WriteString("Disallow: /admin\n")
	b.WriteString("Disallow: /api\n")
	b.WriteString("Disallow: /mypage\n")
	b.WriteString("\n")
	fmt.Fprintf(&b, "Sitemap: %s/sitemap.xml\n", base)

	c.Data(http.StatusOK, "text/plain; charset=utf-8", []byte(b.String()))
}

// Sitemap 静态页面加已发布资讯
func (s *SeoHandler) Sitemap(c *gin.Context) {
	base := strings.TrimSuffix(config.Cfg.Site.BaseURL, "/")

	urls := []sitemapURL{
		{Loc: base + "/"},
		{Loc: base + "/emotion"},
		{Loc: base + "/community"},
		{Loc: base + "/news"},
		{Loc: base + "/products"},
		{Loc: base + "/audio"},
	}

	newsList, err := s.newsSvc.GetNewsList(c.Request.Context(), true, 1, sitemapPageSize)
	if err != nil {
		log.WarnContext(c.Request.Context(), "sitemap news lookup failed", "err", err)
	} else {
		for _, news := range newsList {
			urls = append(urls, sitemapURL{
				Loc:     fmt.Sprintf("%s/news/%d", base, news.ID),
				LastMod: news.PublishedAt,
			})
		}
	}

	urlSet := sitemapURLSet{
		Xmlns: "http://www.sitemaps.org/schemas/sitemap/0.9",
		URLs:  urls,
	}

	payload, err := xml.Marshal(urlSet)
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}

	c.Data(http.StatusOK, "application/xml; charset=utf-8", append([]byte(xml.Header), payload...))
}
