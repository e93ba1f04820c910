package service

import (
	"WithTheLake/internal/model"
	"WithTheLake/internal/pkg/util"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

type fakeRecordRepo struct {
	records []*model.EmotionRecord
}

func (s *fakeRecordRepo) CreateRecord(_ context.Context, record *model.EmotionRecord) error {
	s.records = append(s.records, record)
	return nil
}

func (s *fakeRecordRepo) GetRecordsByUser(context.Context, uint64, int, int) ([]*model.EmotionRecord, error) {
	return s.records, nil
}

func (s *fakeRecordRepo) GetRecordsBySession(context.Context, string, int, int) ([]*model.EmotionRecord, error) {
	return s.records, nil
}

func (s *fakeRecordRepo) GetRecordsByUserBetween(_ context.Context, _ uint64, start, end time.Time) ([]*model.EmotionRecord, error) {
	result := make([]*model.EmotionRecord, 0)
	for _, r := range s.records {
		if !r.CreatedAt.Before(start) && r.CreatedAt.Before(end) {
			result = append(result, r)
		}
	}
	return result, nil
}

func (s *fakeRecordRepo) GetActiveUserIDsBetween(context.Context, time.Time, time.Time) ([]uint64, error) {
	return nil, nil
}

func (s *fakeRecordRepo) GetEmotionTypesByOwner(context.Context, *uint64, *string) ([]string, error) {
	types := make([]string, 0, len(s.records))
	for _, r := range s.records {
		types = append(types, r.EmotionType)
	}
	return types, nil
}

func (s *fakeRecordRepo) CountRecords(context.Context) (int64, error) {
	return int64(len(s.records)), nil
}

type fakeReportRepo struct {
	reports      map[string]*model.EmotionReport
	failCreateAs error
	createCalls  int
}

func newFakeReportRepo() *fakeReportRepo {
	return &fakeReportRepo{reports: make(map[string]*model.EmotionReport)}
}

func (s *fakeReportRepo) key(userID uint64, weekKey string) string {
	return weekKey
}

func (s *fakeReportRepo) CreateReport(_ context.Context, report *model.EmotionReport) error {
	s.createCalls++
	if s.failCreateAs != nil {
		return s.failCreateAs
	}
	report.ID = uint64(len(s.reports) + 1)
	report.CreatedAt = time.Now()
	s.reports[s.key(report.UserID, report.WeekKey)] = report
	return nil
}

func (s *fakeReportRepo) GetReport(_ context.Context, userID uint64, weekKey string) (*model.EmotionReport, error) {
	if report, ok := s.reports[s.key(userID, weekKey)]; ok {
		return report, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *fakeReportRepo) GetReportsByUser(context.Context, uint64, int) ([]*model.EmotionReport, error) {
	result := make([]*model.EmotionReport, 0, len(s.reports))
	for _, report := range s.reports {
		result = append(result, report)
	}
	return result, nil
}

func (s *fakeReportRepo) UpdateShareCardURL(context.Context, uint64, string) error {
	return nil
}

type fakeUserRepo struct {
	users map[uint64]*model.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uint64]*model.User)}
}

func (s *fakeUserRepo) CreateUser(_ context.Context, user *model.User) error {
	user.ID = uint64(len(s.users) + 1)
	s.users[user.ID] = user
	return nil
}

func (s *fakeUserRepo) GetUserByID(_ context.Context, id uint64) (*model.User, error) {
	return s.users[id], nil
}

func (s *fakeUserRepo) GetUserByProvider(_ context.Context, provider, providerID string) (*model.User, error) {
	for _, user := range s.users {
		if user.Provider == provider && user.ProviderID == providerID {
			return user, nil
		}
	}
	return nil, nil
}

func (s *fakeUserRepo) GetUserByUsername(_ context.Context, username string) (*model.User, error) {
	for _, user := range s.users {
		if user.Username != nil && *user.Username == username {
			return user, nil
		}
	}
	return nil, nil
}

func (s *fakeUserRepo) UpdateUser(context.Context, *model.User) error {
	return nil
}

func (s *fakeUserRepo) CountUsers(context.Context) (int64, error) {
	return int64(len(s.users)), nil
}

type fakeGenerator struct {
	enabled bool
	text    string
	err     error
	calls   int
}

func (s *fakeGenerator) Enabled() bool {
	return s.enabled
}

func (s *fakeGenerator) GenerateWeeklyInsight(context.Context, string) (string, error) {
	s.calls++
	return s.text, s.err
}

func weekRecords(weekKey string, types ...string) []*model.EmotionRecord {
	monday, _ := util.ParseWeekKey(weekKey)
	records := make([]*model.EmotionRecord, 0, len(types))
	for i, t := range types {
		records = append(records, &model.EmotionRecord{
			ID:              uint64(i + 1),
			EmotionType:     t,
			EmotionReason:   "호수를 걸었다",
			HelpfulActions:  []string{"walking"},
			PositiveChanges: []string{"relaxed"},
			SelfMessage:     "수고했어",
			CreatedAt:       monday.Add(time.Duration(i) * time.Hour),
		})
	}
	return records
}

func newReportService(recordRepo *fakeRecordRepo, reportRepo *fakeReportRepo, generator *fakeGenerator) ReportService {
	return NewReportService(recordRepo, reportRepo, newFakeUserRepo(), generator, nil)
}

func TestGenerateReportEmptyWeek(t *testing.T) {
	reportRepo := newFakeReportRepo()
	svc := newReportService(&fakeRecordRepo{}, reportRepo, &fakeGenerator{enabled: true, text: "insight"})

	result, err := svc.GenerateReport(context.Background(), 1, "2026-W30")
	assert.NoError(t, err)
	assert.Equal(t, 0, result.TotalRecords)
	assert.Equal(t, "fallback", result.InsightSource)
	assert.NotEmpty(t, result.Insight)
	// 空周不落库
	assert.Equal(t, 0, reportRepo.createCalls)
}

func TestGenerateReportWithLLM(t *testing.T) {
	recordRepo := &fakeRecordRepo{records: weekRecords("2026-W30", "joy", "joy", "sadness")}
	generator := &fakeGenerator{enabled: true, text: "이번 주도 잘 보냈어요"}
	svc := newReportService(recordRepo, newFakeReportRepo(), generator)

	result, err := svc.GenerateReport(context.Background(), 1, "2026-W30")
	assert.NoError(t, err)
	assert.Equal(t, 3, result.TotalRecords)
	assert.Equal(t, "llm", result.InsightSource)
	assert.Equal(t, "이번 주도 잘 보냈어요", result.Insight)
	assert.Equal(t, 67, result.PositiveRatio)
	assert.Equal(t, "joy", result.EmotionCounts[0].Type)
	assert.False(t, result.AlreadyExists)
	assert.Equal(t, 1, generator.calls)
}

func TestGenerateReportFallbackOnLLMError(t *testing.T) {
	recordRepo := &fakeRecordRepo{records: weekRecords("2026-W30", "calm")}
	generator := &fakeGenerator{enabled: true, err: errors.New("timeout")}
	svc := newReportService(recordRepo, newFakeReportRepo(), generator)

	result, err := svc.GenerateReport(context.Background(), 1, "2026-W30")
	assert.NoError(t, err)
	assert.Equal(t, "fallback", result.InsightSource)
	assert.NotEmpty(t, result.Insight)
}

func TestGenerateReportFallbackWhenDisabled(t *testing.T) {
	recordRepo := &fakeRecordRepo{records: weekRecords("2026-W30", "anxious", "anxious")}
	generator := &fakeGenerator{enabled: false}
	svc := newReportService(recordRepo, newFakeReportRepo(), generator)

	result, err := svc.GenerateReport(context.Background(), 1, "2026-W30")
	assert.NoError(t, err)
	assert.Equal(t, "fallback", result.InsightSource)
	assert.Equal(t, 0, generator.calls)
}

func TestGenerateReportIdempotent(t *testing.T) {
	recordRepo := &fakeRecordRepo{records: weekRecords("2026-W30", "joy")}
	reportRepo := newFakeReportRepo()
	generator := &fakeGenerator{enabled: true, text: "insight"}
	svc := newReportService(recordRepo, reportRepo, generator)

	first, err := svc.GenerateReport(context.Background(), 1, "2026-W30")
	assert.NoError(t, err)
	assert.False(t, first.AlreadyExists)

	// 二次生成直接命中已有周报，不再调用生成器
	second, err := svc.GenerateReport(context.Background(), 1, "2026-W30")
	assert.NoError(t, err)
	assert.True(t, second.AlreadyExists)
	assert.Equal(t, first.Insight, second.Insight)
	assert.Equal(t, 1, reportRepo.createCalls)
	assert.Equal(t, 1, generator.calls)
}

func TestGenerateReportDuplicateKeyReturnsExisting(t *testing.T) {
	recordRepo := &fakeRecordRepo{records: weekRecords("2026-W30", "joy")}
	reportRepo := newFakeReportRepo()
	// 并发竞争：插入报唯一键冲突，库里已有他人写入的行
	reportRepo.reports["2026-W30"] = &model.EmotionReport{
		ID:            7,
		UserID:        1,
		WeekKey:       "2026-W30",
		TotalRecords:  1,
		Insight:       "먼저 생성된 리포트",
		InsightSource: "llm",
	}
	svc := newReportService(recordRepo, reportRepo, &fakeGenerator{enabled: false})

	// GetReport 先命中已有行，直接返回
	result, err := svc.GenerateReport(context.Background(), 1, "2026-W30")
	assert.NoError(t, err)
	assert.True(t, result.AlreadyExists)
	assert.Equal(t, "먼저 생성된 리포트", result.Insight)

	// 预检查与插入之间被并发写入的场景：CreateReport 返回 1062
	delete(reportRepo.reports, "2026-W30")
	reportRepo.failCreateAs = &mysql.MySQLError{Number: 1062}
	_, err = svc.GenerateReport(context.Background(), 1, "2026-W30")
	// 冲突后回查不到说明测试假设失败之外的路径，此处验证错误透传
	assert.Error(t, err)

	reportRepo.reports["2026-W30"] = &model.EmotionReport{ID: 8, UserID: 1, WeekKey: "2026-W30", Insight: "동시 생성"}
	reportRepo.failCreateAs = &mysql.MySQLError{Number: 1062}
	// 预检查命中已有行，幂等返回
	result, err = svc.GenerateReport(context.Background(), 1, "2026-W30")
	assert.NoError(t, err)
	assert.True(t, result.AlreadyExists)
	assert.Equal(t, "동시 생성", result.Insight)
}

func TestGenerateReportInvalidWeekKey(t *testing.T) {
	svc := newReportService(&fakeRecordRepo{}, newFakeReportRepo(), &fakeGenerator{})

	_, err := svc.GenerateReport(context.Background(), 1, "2026-W99")
	assert.ErrorIs(t, err, ErrParamInvalid)

	_, err = svc.GenerateReport(context.Background(), 0, "2026-W30")
	assert.ErrorIs(t, err, ErrLoginRequired)
}

func TestGetReportNotFound(t *testing.T) {
	svc := newReportService(&fakeRecordRepo{}, newFakeReportRepo(), &fakeGenerator{})

	_, err := svc.GetReport(context.Background(), 1, "2026-W30")
	assert.ErrorIs(t, err, ErrReportNotFound)
}
