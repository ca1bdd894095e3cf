package diary

import (
	"context"
	"time"

	"github.com/harulog/haru-diary/go-api-server/internal/model"
	"gorm.io/gorm"
)

type DiaryRepository struct{}

func NewDiaryRepository() *DiaryRepository {
	return &DiaryRepository{}
}

// FindOwned fetches a diary scoped by diary_id AND sign_id together.
// Returns gorm.ErrRecordNotFound both for missing ids and for ids
// owned by someone else.
func (r *DiaryRepository) FindOwned(ctx context.Context, db *gorm.DB, diaryID uint, signID string) (*model.Diary, error) {
	var diary model.Diary
	err := db.WithContext(ctx).
		Where("diary_id = ? AND sign_id = ?", diaryID, signID).
		First(&diary).Error
	if err != nil {
		return nil, err
	}
	return &diary, nil
}

func (r *DiaryRepository) Create(ctx context.Context, db *gorm.DB, diary *model.Diary) error {
	return db.WithContext(ctx).Create(diary).Error
}

func (r *DiaryRepository) Save(ctx context.Context, db *gorm.DB, diary *model.Diary) error {
	return db.WithContext(ctx).Save(diary).Error
}

func (r *DiaryRepository) Delete(ctx context.Context, db *gorm.DB, diary *model.Diary) error {
	return db.WithContext(ctx).Delete(diary).Error
}

// ListRecent returns diaries board-wide (not owner-scoped), newest
// first, with the owning user joined for display.
func (r *DiaryRepository) ListRecent(ctx context.Context, db *gorm.DB, q ListQuery) ([]model.Diary, error) {
	query := db.WithContext(ctx).Model(&model.Diary{}).Joins("User")
	if q.BoardID != 0 {
		query = query.Where("diaries.board_id = ?", q.BoardID)
	}

	list := make([]model.Diary, 0, q.Limit)
	err := query.
		Order("diaries.created_at DESC").
		Limit(q.Limit).
		Offset(q.Offset()).
		Find(&list).Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

// ListWeeklyByViews returns diaries created within [weekStart, weekEnd]
// ordered by view count, with User and Board joined for display.
func (r *DiaryRepository) ListWeeklyByViews(ctx context.Context, db *gorm.DB, q ListQuery, weekStart, weekEnd time.Time) ([]model.Diary, error) {
	query := db.WithContext(ctx).Model(&model.Diary{}).
		Joins("User").
		Joins("Board").
		Where("diaries.created_at BETWEEN ? AND ?", weekStart, weekEnd)
	if q.BoardID != 0 {
		query = query.Where("diaries.board_id = ?", q.BoardID)
	}

	list := make([]model.Diary, 0, q.Limit)
	err := query.
		Order("diaries.view_count DESC").
		Limit(q.Limit).
		Offset(q.Offset()).
		Find(&list).Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

// IncrementViewCount bumps view_count atomically without touching
// updated_at. Returns the number of affected rows (0 = no such diary).
func (r *DiaryRepository) IncrementViewCount(ctx context.Context, db *gorm.DB, diaryID uint) (int64, error) {
	result := db.WithContext(ctx).
		Model(&model.Diary{}).
		Where("diary_id = ?", diaryID).
		UpdateColumn("view_count", gorm.Expr("view_count + 1"))
	return result.RowsAffected, result.Error
}
