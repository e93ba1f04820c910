package service

import (
	"WithTheLake/internal/api/dto"
	"WithTheLake/internal/model"
	"WithTheLake/internal/pkg/emotion"
	"WithTheLake/internal/repository"
	"context"
	"time"

	"github.com/jinzhu/copier"
)

type EmotionService interface {
	// SubmitRecord 提交一条情绪记录，校验失败返回 *emotion.ValidationError
	SubmitRecord(ctx context.Context, owner model.Owner, req *dto.SubmitEmotionDTO) (*dto.EmotionRecordDTO, error)
	// GetRecords 按归属分页查询记录，新的在前
	GetRecords(ctx context.Context, owner model.Owner, page, pageSize int) ([]*dto.EmotionRecordDTO, error)
	// GetSummary 归属维度的全量聚合与兜底洞察
	GetSummary(ctx context.Context, owner model.Owner) (*dto.EmotionSummaryDTO, error)
}

type emotionServiceImpl struct {
	recordRepo repository.EmotionRecordRepo
}

func NewEmotionService(recordRepo repository.EmotionRecordRepo) EmotionService {
	return &emotionServiceImpl{
		recordRepo: recordRepo,
	}
}

func (s *emotionServiceImpl) SubmitRecord(ctx context.Context, owner model.Owner, req *dto.SubmitEmotionDTO) (*dto.EmotionRecordDTO, error) {
	if req == nil {
		return nil, ErrParamInvalid
	}

	sub := &emotion.Submission{
		EmotionType:        req.EmotionType,
		EmotionReason:      req.EmotionReason,
		HelpfulActions:     req.HelpfulActions,
		PositiveChanges:    req.PositiveChanges,
		SelfMessage:        req.SelfMessage,
		ExperienceLocation: req.ExperienceLocation,
	}
	if verr := emotion.Validate(sub); verr != nil {
		return nil, verr
	}

	userID, sessionID, err := owner.Columns()
	if err != nil {
		return nil, &emotion.ValidationError{Code: emotion.CodeLoginRequired, Message: ErrLoginRequired.Error()}
	}

	record := &model.EmotionRecord{
		UserID:             userID,
		SessionID:          sessionID,
		EmotionType:        *sub.EmotionType,
		EmotionReason:      *sub.EmotionReason,
		HelpfulActions:     sub.HelpfulActions,
		PositiveChanges:    sub.PositiveChanges,
		SelfMessage:        *sub.SelfMessage,
		ExperienceLocation: sub.ExperienceLocation,
	}
	if err = s.recordRepo.CreateRecord(ctx, record); err != nil {
		return nil, err
	}

	return toEmotionRecordDTO(record), nil
}

func (s *emotionServiceImpl) GetRecords(ctx context.Context, owner model.Owner, page, pageSize int) ([]*dto.EmotionRecordDTO, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	var (
		records []*model.EmotionRecord
		err     error
	)
	if userID, ok := owner.UserID(); ok {
		records, err = s.recordRepo.GetRecordsByUser(ctx, userID, page, pageSize)
	} else if sessionID, ok := owner.SessionID(); ok {
		records, err = s.recordRepo.GetRecordsBySession(ctx, sessionID, page, pageSize)
	} else {
		return nil, ErrLoginRequired
	}
	if err != nil {
		return nil, err
	}

	result := make([]*dto.EmotionRecordDTO, 0, len(records))
	for _, record := range records {
		result = append(result, toEmotionRecordDTO(record))
	}
	return result, nil
}

func (s *emotionServiceImpl) GetSummary(ctx context.Context, owner model.Owner) (*dto.EmotionSummaryDTO, error) {
	userID, sessionID, err := owner.Columns()
	if err != nil {
		return nil, ErrLoginRequired
	}

	types, err := s.recordRepo.GetEmotionTypesByOwner(ctx, userID, sessionID)
	if err != nil {
		return nil, err
	}

	summary := emotion.Aggregate(types)

	result := &dto.EmotionSummaryDTO{
		TotalRecords:  summary.TotalRecords,
		Counts:        make([]dto.EmotionCountDTO, 0, len(summary.Counts)),
		MostFrequent:  summary.MostFrequent,
		PositiveRatio: summary.PositiveRatio,
		Insight:       emotion.FallbackInsight(summary),
	}
	for _, c := range summary.Counts {
		result.Counts = append(result.Counts, dto.EmotionCountDTO{
			Type:  c.Type,
			Label: emotion.Label(c.Type),
			Count: c.Count,
		})
	}
	return result, nil
}

func toEmotionRecordDTO(record *model.EmotionRecord) *dto.EmotionRecordDTO {
	result := &dto.EmotionRecordDTO{}
	_ = copier.Copy(result, record)
	result.EmotionLabel = emotion.Label(record.EmotionType)
	result.CreatedAt = record.CreatedAt.Format(time.RFC3339)
	return result
}
