package sharecard

import (
	"WithTheLake/internal/api/config"
	"WithTheLake/internal/pkg/minio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"html/template"
	log "log/slog"
	"net/url"
	"time"

	"github.com/chromedp/chromedp"
	"github.com/disintegration/imaging"
	"github.com/google/uuid"
)

var ErrDisabled = errors.New("share card rendering disabled")

// CardData 渲染周报分享卡片需要的数据
type CardData struct {
	WeekKey       string
	Nickname      string
	TotalRecords  int
	MostFrequent  string
	PositiveRatio int
	Insight       string
}

var cardTemplate = template.Must(template.New("card").Parse(`<!DOCTYPE html>
<html><head><meta charset="utf-8"><style>
body{margin:0;font-family:'Apple SD Gothic Neo',sans-serif;background:linear-gradient(160deg,#1d3b53,#2e6f6c);color:#fff}
.card{padding:48px;box-sizing:border-box;width:100%;height:100vh;display:flex;flex-direction:column;justify-content:space-between}
.week{font-size:20px;opacity:.8}.title{font-size:34px;font-weight:700;margin-top:8px}
.stats{font-size:22px;line-height:1.7}.insight{font-size:24px;line-height:1.6;font-weight:500}
.brand{font-size:18px;opacity:.7}
</style></head><body><div class="card">
<div><div class="week">{{.WeekKey}}</div><div class="title">{{.Nickname}}님의 감정 주간 리포트</div></div>
<div class="stats">기록 {{.TotalRecords}}회 · 가장 자주 느낀 감정 {{.MostFrequent}} · 긍정 비율 {{.PositiveRatio}}%</div>
<div class="insight">{{.Insight}}</div>
<div class="brand">호수와 함께</div>
</div></body></html>`))

type Renderer struct {
	width  int
	height int
	enable bool
}

func NewRenderer(cfg config.ShareCardConfig) *Renderer {
	width, height := cfg.Width, cfg.Height
	if width == 0 {
		width = 800
	}
	if height == 0 {
		height = 1000
	}
	return &Renderer{width: width, height: height, enable: cfg.Enable}
}

func (s *Renderer) Enabled() bool {
	return s.enable
}

// Render 渲染卡片并上传，返回原图与缩略图的对象键
func (s *Renderer) Render(ctx context.Context, data *CardData) (string, string, error) {
	if !s.enable {
		return "", "", ErrDisabled
	}

	var htmlBuf bytes.Buffer
	if err := cardTemplate.Execute(&htmlBuf, data); err != nil {
		return "", "", fmt.Errorf("render card template failed: %w", err)
	}

	shot, err := s.screenshot(ctx, htmlBuf.String())
	if err != nil {
		return "", "", err
	}

	img, err := imaging.Decode(bytes.NewReader(shot))
	if err != nil {
		return "", "", fmt.Errorf("decode screenshot failed: %w", err)
	}
	thumb := imaging.Resize(img, s.width/2, 0, imaging.Lanczos)

	var thumbBuf bytes.Buffer
	if err = imaging.Encode(&thumbBuf, thumb, imaging.PNG); err != nil {
		return "", "", fmt.Errorf("encode thumbnail failed: %w", err)
	}

	prefix := time.Now().Format("share/2006/01/") + uuid.NewString()
	cardKey, err := minio.UploadFile(ctx, prefix+".png", bytes.NewReader(shot), int64(len(shot)), "image/png")
	if err != nil {
		return "", "", err
	}
	thumbKey, err := minio.UploadFile(ctx, prefix+"_thumb.png", bytes.NewReader(thumbBuf.Bytes()), int64(thumbBuf.Len()), "image/png")
	if err != nil {
		// 缩略图失败不回滚原图
		log.WarnContext(ctx, "share card thumbnail upload failed", "err", err)
		return cardKey, "", nil
	}

	return cardKey, thumbKey, nil
}

func (s *Renderer) screenshot(ctx context.Context, html string) ([]byte, error) {
	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, chromedp.DefaultExecAllocatorOptions[:]...)
	defer cancelAlloc()

	browserCtx, cancelBrowser := chromedp.NewContext(allocCtx)
	defer cancelBrowser()

	timeoutCtx, cancelTimeout := context.WithTimeout(browserCtx, 20*time.Second)
	defer cancelTimeout()

	var buf []byte
	err := chromedp.Run(timeoutCtx,
		chromedp.EmulateViewport(int64(s.width), int64(s.height)),
		chromedp.Navigate("data:text/html,"+url.PathEscape(html)),
		chromedp.Sleep(300*time.Millisecond),
		chromedp.CaptureScreenshot(&buf),
	)
	if err != nil {
		return nil, fmt.Errorf("chromedp screenshot failed: %w", err)
	}
	return buf, nil
}
