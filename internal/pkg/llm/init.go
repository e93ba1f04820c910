package llm

import (
	"WithTheLake/internal/api/config"
	log "log/slog"
	"os"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
)

var llmClient llms.Model

var weeklyInsightPrompt string

// InitLLM 初始化大模型客户端。未配置 ApiKey 时跳过，周报走兜底文案。
func InitLLM() error {
	cfg := config.Cfg.LLM

	if cfg.ApiKey == "" {
		log.Warn("LLM ApiKey 未配置，周报洞察将使用兜底文案")
		return nil
	}

	llm, err := openai.New(
		openai.WithModel(cfg.TextModel),
		openai.WithToken(cfg.ApiKey),
		openai.WithBaseURL(cfg.URL),
	)

	if err != nil {
		log.Error("AI大模型初始化失败", "err", err)
		return err
	}

	llmClient = llm

	// 从prompt txt文件中读取prompt
	weeklyInsightPrompt = readPrompt(cfg.PromptsPath.WeeklyInsight)

	return nil
}

func readPrompt(file string) string {
	data, err := os.ReadFile(file)
	if err != nil {
		log.Error("读取prompt文件失败", "err", err)
		return ""
	}
	return string(data)
}
