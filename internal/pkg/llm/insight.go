package llm

import (
	"WithTheLake/internal/api/config"
	"context"
	"errors"
	log "log/slog"
	"strings"

	"github.com/tmc/langchaingo/llms"
)

var ErrNotConfigured = errors.New("llm client not configured")

// WeeklyInsightClient 周报洞察生成器，供 service 层注入
type WeeklyInsightClient struct{}

func NewWeeklyInsightClient() *WeeklyInsightClient {
	return &WeeklyInsightClient{}
}

// Enabled 凭据是否就绪
func (s *WeeklyInsightClient) Enabled() bool {
	return llmClient != nil
}

// GenerateWeeklyInsight 单次请求，返回去除首尾空白的文本。
// 调用方负责失败降级，这里不做重试。
func (s *WeeklyInsightClient) GenerateWeeklyInsight(ctx context.Context, userPrompt string) (string, error) {
	if llmClient == nil {
		return "", ErrNotConfigured
	}

	resp, err := fetchModel(ctx, weeklyInsightPrompt, userPrompt, 0.7)
	if err != nil {
		log.ErrorContext(ctx, "周报洞察-AI大模型请求失败", "err", err)
		return "", err
	}

	if len(resp.Choices) == 0 {
		return "", errors.New("周报洞察-AI大模型返回数据为空")
	}

	content := strings.TrimSpace(resp.Choices[0].Content)
	if content == "" {
		return "", errors.New("周报洞察-AI大模型返回数据为空")
	}
	return content, nil
}

func fetchModel(ctx context.Context, systemPrompt string, userPrompt string, temp float64) (*llms.ContentResponse, error) {
	if err := TextSem.Acquire(ctx, 1); err != nil {
		return nil, err
	}
	defer TextSem.Release(1)
	messages := []llms.MessageContent{
		{
			Role: llms.ChatMessageTypeSystem,
			Parts: []llms.ContentPart{
				llms.TextPart(systemPrompt),
			},
		},
		{
			Role: llms.ChatMessageTypeHuman,
			Parts: []llms.ContentPart{
				llms.TextPart(userPrompt),
			},
		},
	}
	log.Info("正在请求AI大模型")
	return llmClient.GenerateContent(ctx, messages,
		llms.WithModel(config.Cfg.LLM.TextModel),
		llms.WithTemperature(temp),
	)
}
