package service

import (
	"WithTheLake/internal/api/dto"
	"WithTheLake/internal/model"
	"WithTheLake/internal/pkg/consts"
	"WithTheLake/internal/pkg/emotion"
	"WithTheLake/internal/pkg/minio"
	"WithTheLake/internal/pkg/redis"
	"WithTheLake/internal/pkg/sharecard"
	"WithTheLake/internal/pkg/util"
	"WithTheLake/internal/repository"
	"context"
	"errors"
	"fmt"
	log "log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
)

const (
	reportTopN        = 3
	promptMaxReasons  = 5
	promptMaxMessages = 3
	reportGenLockTTL  = 2 * time.Minute
)

// InsightGenerator 周报洞察生成器，失败或未配置时由本服务降级
type InsightGenerator interface {
	Enabled() bool
	GenerateWeeklyInsight(ctx context.Context, userPrompt string) (string, error)
}

// CardRenderer 分享卡片渲染器
type CardRenderer interface {
	Enabled() bool
	Render(ctx context.Context, data *sharecard.CardData) (string, string, error)
}

type ReportService interface {
	// GenerateReport 生成指定周的周报，已存在时返回已有周报（幂等）。
	// weekKey 为空时取上一个完整周。
	GenerateReport(ctx context.Context, userID uint64, weekKey string) (*dto.WeeklyReportDTO, error)
	// GetReport 查询单周周报
	GetReport(ctx context.Context, userID uint64, weekKey string) (*dto.WeeklyReportDTO, error)
	// GetReports 按周倒序查询历史周报
	GetReports(ctx context.Context, userID uint64, limit int) ([]*dto.WeeklyReportDTO, error)
}

type reportServiceImpl struct {
	recordRepo repository.EmotionRecordRepo
	reportRepo repository.EmotionReportRepo
	userRepo   repository.UserRepo
	generator  InsightGenerator
	renderer   CardRenderer
}

func NewReportService(
	recordRepo repository.EmotionRecordRepo,
	reportRepo repository.EmotionReportRepo,
	userRepo repository.UserRepo,
	generator InsightGenerator,
	renderer CardRenderer,
) ReportService {
	return &reportServiceImpl{
		recordRepo: recordRepo,
		reportRepo: reportRepo,
		userRepo:   userRepo,
		generator:  generator,
		renderer:   renderer,
	}
}

func (s *reportServiceImpl) GenerateReport(ctx context.Context, userID uint64, weekKey string) (*dto.WeeklyReportDTO, error) {
	if userID == 0 {
		return nil, ErrLoginRequired
	}
	if weekKey == "" {
		weekKey = util.ISOWeekKey(util.PrevWeek(time.Now()))
	}
	monday, err := util.ParseWeekKey(weekKey)
	if err != nil {
		return nil, ErrParamInvalid
	}

	// 先查已有，命中直接返回
	if existing, err := s.reportRepo.GetReport(ctx, userID, weekKey); err == nil {
		result := toWeeklyReportDTO(existing)
		result.AlreadyExists = true
		return result, nil
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	// 进程间锁避免并发重复消耗 LLM 配额，唯一键兜底幂等
	lockKey := consts.ReportGenLockKey + strconv.FormatUint(userID, 10) + ":" + weekKey
	locked, err := redis.SetNX(ctx, lockKey, 1, reportGenLockTTL)
	if err != nil {
		log.WarnContext(ctx, "周报生成-获取锁失败，继续执行", "err", err)
	} else if !locked {
		if existing, err := s.reportRepo.GetReport(ctx, userID, weekKey); err == nil {
			result := toWeeklyReportDTO(existing)
			result.AlreadyExists = true
			return result, nil
		}
		return nil, UnExpectedError
	}
	defer func() {
		_ = redis.DeleteKey(ctx, lockKey)
	}()

	start, end := util.WeekRange(monday)
	records, err := s.recordRepo.GetRecordsByUserBetween(ctx, userID, start, end)
	if err != nil {
		return nil, err
	}

	// 空周不落库，返回固定文案
	if len(records) == 0 {
		return &dto.WeeklyReportDTO{
			WeekKey:       weekKey,
			EmotionCounts: []dto.EmotionCountDTO{},
			TopActions:    []string{},
			TopChanges:    []string{},
			Insight:       emotion.NoDataInsight(),
			InsightSource: "fallback",
		}, nil
	}

	report := s.buildReport(ctx, userID, weekKey, records)

	if err = s.reportRepo.CreateReport(ctx, report); err != nil {
		if isDuplicateError(err) {
			existing, err := s.reportRepo.GetReport(ctx, userID, weekKey)
			if err != nil {
				return nil, err
			}
			result := toWeeklyReportDTO(existing)
			result.AlreadyExists = true
			return result, nil
		}
		return nil, err
	}

	s.attachShareCard(ctx, report)

	return toWeeklyReportDTO(report), nil
}

// buildReport 聚合 + 洞察生成，任何生成失败都降级为兜底文案
func (s *reportServiceImpl) buildReport(ctx context.Context, userID uint64, weekKey string, records []*model.EmotionRecord) *model.EmotionReport {
	types := make([]string, 0, len(records))
	actions := make([]string, 0)
	changes := make([]string, 0)
	for _, r := range records {
		types = append(types, r.EmotionType)
		actions = append(actions, r.HelpfulActions...)
		changes = append(changes, r.PositiveChanges...)
	}

	summary := emotion.Aggregate(types)

	counts := make([]model.EmotionCountItem, 0, len(summary.Counts))
	for _, c := range summary.Counts {
		counts = append(counts, model.EmotionCountItem{Type: c.Type, Count: c.Count})
	}

	insight := ""
	source := "fallback"
	if s.generator != nil && s.generator.Enabled() {
		generated, err := s.generator.GenerateWeeklyInsight(ctx, buildInsightPrompt(summary, records))
		if err != nil {
			log.WarnContext(ctx, "周报洞察-生成失败，使用兜底文案", "userID", userID, "weekKey", weekKey, "err", err)
		} else {
			insight = generated
			source = "llm"
		}
	}
	if insight == "" {
		insight = emotion.FallbackInsight(summary)
		source = "fallback"
	}

	return &model.EmotionReport{
		UserID:        userID,
		WeekKey:       weekKey,
		TotalRecords:  summary.TotalRecords,
		PositiveRatio: summary.PositiveRatio,
		EmotionCounts: counts,
		TopActions:    emotion.TopN(actions, reportTopN),
		TopChanges:    emotion.TopN(changes, reportTopN),
		Insight:       insight,
		InsightSource: source,
	}
}

// attachShareCard 渲染分享卡片，失败只记日志不影响周报本身
func (s *reportServiceImpl) attachShareCard(ctx context.Context, report *model.EmotionReport) {
	if s.renderer == nil || !s.renderer.Enabled() {
		return
	}

	nickname := ""
	if user, err := s.userRepo.GetUserByID(ctx, report.UserID); err == nil && user != nil {
		nickname = user.Nickname
	}

	cardKey, _, err := s.renderer.Render(ctx, &sharecard.CardData{
		WeekKey:       report.WeekKey,
		Nickname:      nickname,
		TotalRecords:  report.TotalRecords,
		MostFrequent:  mostFrequentLabel(report.EmotionCounts),
		PositiveRatio: report.PositiveRatio,
		Insight:       report.Insight,
	})
	if err != nil {
		log.WarnContext(ctx, "周报分享卡片渲染失败", "reportID", report.ID, "err", err)
		return
	}

	cardURL := minio.GetPublicURL(cardKey)
	if err = s.reportRepo.UpdateShareCardURL(ctx, report.ID, cardURL); err != nil {
		log.WarnContext(ctx, "周报分享卡片地址保存失败", "reportID", report.ID, "err", err)
		return
	}
	report.ShareCardURL = &cardURL
}

func (s *reportServiceImpl) GetReport(ctx context.Context, userID uint64, weekKey string) (*dto.WeeklyReportDTO, error) {
	if _, err := util.ParseWeekKey(weekKey); err != nil {
		return nil, ErrParamInvalid
	}
	report, err := s.reportRepo.GetReport(ctx, userID, weekKey)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReportNotFound
		}
		return nil, err
	}
	result := toWeeklyReportDTO(report)
	result.AlreadyExists = true
	return result, nil
}

func (s *reportServiceImpl) GetReports(ctx context.Context, userID uint64, limit int) ([]*dto.WeeklyReportDTO, error) {
	if limit < 1 || limit > 52 {
		limit = 12
	}
	reports, err := s.reportRepo.GetReportsByUser(ctx, userID, limit)
	if err != nil {
		return nil, err
	}
	result := make([]*dto.WeeklyReportDTO, 0, len(reports))
	for _, report := range reports {
		item := toWeeklyReportDTO(report)
		item.AlreadyExists = true
		result = append(result, item)
	}
	return result, nil
}

// buildInsightPrompt 拼装用户侧提示词，理由与留言做数量截断控制 token
func buildInsightPrompt(summary emotion.Summary, records []*model.EmotionRecord) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("이번 주 감정 기록 %d회, 긍정 감정 비율 %d%%.\n", summary.TotalRecords, summary.PositiveRatio))
	b.WriteString("감정 분포: ")
	for i, c := range summary.Counts {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(fmt.Sprintf("%s %d회", emotion.Label(c.Type), c.Count))
	}
	b.WriteString("\n")

	reasons := 0
	messages := 0
	for _, r := range records {
		if reasons < promptMaxReasons && strings.TrimSpace(r.EmotionReason) != "" {
			b.WriteString("감정의 이유: " + r.EmotionReason + "\n")
			reasons++
		}
		if messages < promptMaxMessages && strings.TrimSpace(r.SelfMessage) != "" {
			b.WriteString("나에게 보낸 메시지: " + r.SelfMessage + "\n")
			messages++
		}
	}

	return b.String()
}

func mostFrequentLabel(counts []model.EmotionCountItem) string {
	if len(counts) == 0 {
		return ""
	}
	return emotion.Label(counts[0].Type)
}

func toWeeklyReportDTO(report *model.EmotionReport) *dto.WeeklyReportDTO {
	counts := make([]dto.EmotionCountDTO, 0, len(report.EmotionCounts))
	for _, c := range report.EmotionCounts {
		counts = append(counts, dto.EmotionCountDTO{
			Type:  c.Type,
			Label: emotion.Label(c.Type),
			Count: c.Count,
		})
	}

	topActions := report.TopActions
	if topActions == nil {
		topActions = []string{}
	}
	topChanges := report.TopChanges
	if topChanges == nil {
		topChanges = []string{}
	}

	return &dto.WeeklyReportDTO{
		ID:            report.ID,
		WeekKey:       report.WeekKey,
		TotalRecords:  report.TotalRecords,
		PositiveRatio: report.PositiveRatio,
		EmotionCounts: counts,
		TopActions:    topActions,
		TopChanges:    topChanges,
		Insight:       report.Insight,
		InsightSource: report.InsightSource,
		ShareCardURL:  report.ShareCardURL,
		CreatedAt:     report.CreatedAt.Format(time.RFC3339),
	}
}

func isDuplicateError(err error) bool {
	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) && mysqlErr.Number == 1062 {
		return true
	}
	return false
}
