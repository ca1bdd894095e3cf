package diary

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/harulog/haru-diary/go-api-server/internal/model"
	"github.com/harulog/haru-diary/go-api-server/internal/shared/database"
	"github.com/harulog/haru-diary/go-api-server/internal/shared/logger"
	"gorm.io/gorm"
)

type DiaryService struct {
	db              *gorm.DB
	diaryRepository *DiaryRepository
}

func NewDiaryService(db *gorm.DB, diaryRepository *DiaryRepository) *DiaryService {
	return &DiaryService{
		db:              db,
		diaryRepository: diaryRepository,
	}
}

func (s *DiaryService) Get(ctx context.Context, signID string, diaryID uint) (*model.Diary, error) {
	log := logger.FromContext(ctx)

	diary, err := s.diaryRepository.FindOwned(ctx, s.db, diaryID, signID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("일기를 찾을 수 없습니다 diaryID=%d %w", diaryID, ErrDiaryNotFound)
		}
		return nil, fmt.Errorf("일기 조회 실패: %w", err)
	}

	log.Debug("일기 조회", "diary_id", diary.DiaryID, "sign_id", diary.SignID, "title", diary.DiaryTitle)
	return diary, nil
}

func (s *DiaryService) Create(ctx context.Context, signID string, form *DiaryForm, postPhoto *string) (*model.Diary, error) {
	log := logger.FromContext(ctx)

	diary := &model.Diary{
		SignID:       signID,
		DiaryTitle:   form.DiaryTitle,
		DiaryContent: form.DiaryContent,
		DiaryCate:    form.DiaryCate,
		DiaryEmotion: form.DiaryEmotion,
		AccessLevel:  form.AccessLevel,
		CateNum:      form.CateNum,
		BoardID:      form.BoardID,
		PostPhoto:    postPhoto,
	}

	err := database.WithTransaction(ctx, s.db, func(tx *gorm.DB) error {
		return s.diaryRepository.Create(ctx, tx, diary)
	})
	if err != nil {
		log.Error("일기 작성 실패", "error", err, "sign_id", signID)
		return nil, fmt.Errorf("create diary: %w", err)
	}

	log.Info("일기 작성 완료", "diary_id", diary.DiaryID, "sign_id", signID)
	return diary, nil
}

// Update merges the supplied fields into the stored diary. A zero
// value keeps the stored value, so an explicitly sent empty string or
// zero cannot clear a field. post_photo changes only when the request
// carried a new file.
func (s *DiaryService) Update(ctx context.Context, signID string, diaryID uint, form *DiaryForm, postPhoto *string) (*model.Diary, error) {
	log := logger.FromContext(ctx)

	var updated *model.Diary
	err := database.WithTransaction(ctx, s.db, func(tx *gorm.DB) error {
		diary, err := s.diaryRepository.FindOwned(ctx, tx, diaryID, signID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("일기를 찾을 수 없습니다 diaryID=%d %w", diaryID, ErrDiaryNotFound)
			}
			return fmt.Errorf("일기 조회 실패: %w", err)
		}

		if form.DiaryTitle != "" {
			diary.DiaryTitle = form.DiaryTitle
		}
		if form.DiaryContent != "" {
			diary.DiaryContent = form.DiaryContent
		}
		if form.DiaryCate != "" {
			diary.DiaryCate = form.DiaryCate
		}
		if form.DiaryEmotion != "" {
			diary.DiaryEmotion = form.DiaryEmotion
		}
		if form.AccessLevel != "" {
			diary.AccessLevel = form.AccessLevel
		}
		if form.CateNum != 0 {
			diary.CateNum = form.CateNum
		}
		if postPhoto != nil {
			diary.PostPhoto = postPhoto
		}

		if err := s.diaryRepository.Save(ctx, tx, diary); err != nil {
			return fmt.Errorf("일기 수정 실패: %w", err)
		}

		updated = diary
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.Info("일기 수정 완료", "diary_id", diaryID, "sign_id", signID)
	return updated, nil
}

func (s *DiaryService) Delete(ctx context.Context, signID string, diaryID uint) error {
	log := logger.FromContext(ctx)

	err := database.WithTransaction(ctx, s.db, func(tx *gorm.DB) error {
		diary, err := s.diaryRepository.FindOwned(ctx, tx, diaryID, signID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("일기를 찾을 수 없습니다 diaryID=%d %w", diaryID, ErrDiaryNotFound)
			}
			return fmt.Errorf("일기 조회 실패: %w", err)
		}

		if err := s.diaryRepository.Delete(ctx, tx, diary); err != nil {
			return fmt.Errorf("일기 삭제 실패: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	log.Info("일기 삭제 완료", "diary_id", diaryID, "sign_id", signID)
	return nil
}

func (s *DiaryService) ListRecent(ctx context.Context, q ListQuery) ([]model.Diary, error) {
	list, err := s.diaryRepository.ListRecent(ctx, s.db, q)
	if err != nil {
		return nil, fmt.Errorf("일기 목록 조회 실패: %w", err)
	}
	return list, nil
}

func (s *DiaryService) ListWeeklyViews(ctx context.Context, q ListQuery) ([]WeeklyDiaryItem, error) {
	weekStart, weekEnd := currentWeekRange(time.Now())

	list, err := s.diaryRepository.ListWeeklyByViews(ctx, s.db, q, weekStart, weekEnd)
	if err != nil {
		return nil, fmt.Errorf("주간 일기 목록 조회 실패: %w", err)
	}

	items := make([]WeeklyDiaryItem, 0, len(list))
	for _, d := range list {
		items = append(items, WeeklyDiaryItem{Diary: d, BoardName: d.Board.BoardName})
	}
	return items, nil
}

// CountView is the one writer of view_count; everything else only
// reads it.
func (s *DiaryService) CountView(ctx context.Context, diaryID uint) error {
	rows, err := s.diaryRepository.IncrementViewCount(ctx, s.db, diaryID)
	if err != nil {
		return fmt.Errorf("조회수 증가 실패: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("일기를 찾을 수 없습니다 diaryID=%d %w", diaryID, ErrDiaryNotFound)
	}
	return nil
}

// currentWeekRange returns the local calendar week containing now:
// [Sunday 00:00:00.000, Saturday 23:59:59.999].
func currentWeekRange(now time.Time) (time.Time, time.Time) {
	year, month, day := now.Date()
	weekStart := time.Date(year, month, day-int(now.Weekday()), 0, 0, 0, 0, now.Location())
	weekEnd := weekStart.AddDate(0, 0, 6).Add(24*time.Hour - time.Millisecond)
	return weekStart, weekEnd
}
