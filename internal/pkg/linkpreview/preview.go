package linkpreview

import (
	"context"
	"fmt"
	log "log/slog"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	readability "github.com/go-shiori/go-readability"
	"github.com/go-resty/resty/v2"
)

const maxExcerptRunes = 300

// Preview 外部链接的元信息，后台新闻导入使用
type Preview struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	ImageURL    string `json:"imageUrl"`
	Excerpt     string `json:"excerpt"`
}

type Fetcher struct {
	client *resty.Client
}

func NewFetcher() *Fetcher {
	return &Fetcher{
		client: resty.New().
			SetTimeout(10 * time.Second).
			SetHeader("User-Agent", "WithTheLakeBot/1.0"),
	}
}

// Fetch 拉取页面并解析 og 标签与正文摘要
func (s *Fetcher) Fetch(ctx context.Context, pageURL string) (*Preview, error) {
	parsedURL, err := url.ParseRequestURI(pageURL)
	if err != nil {
		return nil, fmt.Errorf("invalid url: %w", err)
	}

	resp, err := s.client.R().SetContext(ctx).Get(pageURL)
	if err != nil {
		return nil, fmt.Errorf("fetch page failed: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("fetch page failed: status %d", resp.StatusCode())
	}

	body := resp.String()

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("parse html failed: %w", err)
	}

	preview := &Preview{
		Title:       metaContent(doc, "og:title"),
		Description: metaContent(doc, "og:description"),
		ImageURL:    metaContent(doc, "og:image"),
	}

	if preview.Title == "" {
		preview.Title = strings.TrimSpace(doc.Find("title").First().Text())
	}

	// 正文摘要失败不影响 og 信息
	article, err := readability.FromReader(strings.NewReader(body), parsedURL)
	if err != nil {
		log.WarnContext(ctx, "readability extract failed", "url", pageURL, "err", err)
		return preview, nil
	}

	excerpt := strings.TrimSpace(article.TextContent)
	runes := []rune(excerpt)
	if len(runes) > maxExcerptRunes {
		excerpt = string(runes[:maxExcerptRunes]) + "…"
	}
	preview.Excerpt = excerpt
	if preview.Description == "" {
		preview.Description = article.Excerpt
	}

	return preview, nil
}

func metaContent(doc *goquery.Document, property string) string {
	content, _ := doc.Find(fmt.Sprintf(`meta[property="%s"]`, property)).First().Attr("content")
	return strings.TrimSpace(content)
}
