package repositories

import (
	"errors"

	"gorm.io/gorm"

	"github.com/college/skillbridge/internal/models"
)

var ErrFeedbackNotFound = errors.New("feedback not found")

// TrainerRating is one row of the top-rated trainers report.
type TrainerRating struct {
	TrainerID     string  `json:"trainer_id"`
	TrainerName   string  `json:"trainer_name"`
	AverageRating float64 `json:"average_rating"`
	FeedbackCount int64   `json:"feedback_count"`
}

// BatchFeedbackSummary aggregates both feedback directions for one batch.
type BatchFeedbackSummary struct {
	BatchID              string  `json:"batch_id"`
	StudentFeedbackCount int64   `json:"student_feedback_count"`
	AverageStudentRating float64 `json:"average_student_rating"`
	TrainerFeedbackCount int64   `json:"trainer_feedback_count"`
	AverageTrainerRating float64 `json:"average_trainer_rating"`
}

type FeedbackRepository interface {
	CreateTrainerFeedback(fb *models.TrainerFeedback) error
	CreateStudentFeedback(fb *models.StudentFeedback) error
	FindTrainerFeedbackForStudent(studentID string) ([]models.TrainerFeedback, error)
	FindStudentFeedbackForTrainer(trainerID string) ([]models.StudentFeedback, error)
	AverageTrainerRating(trainerID string) (float64, error)
	TopRatedTrainers(limit int) ([]TrainerRating, error)
	SummarizeBatch(batchID string) (*BatchFeedbackSummary, error)
}

type feedbackRepository struct {
	db *gorm.DB
}

func NewFeedbackRepository(db *gorm.DB) FeedbackRepository {
	return &feedbackRepository{db: db}
}

func (r *feedbackRepository) CreateTrainerFeedback(fb *models.TrainerFeedback) error {
	return r.db.Create(fb).Error
}

func (r *feedbackRepository) CreateStudentFeedback(fb *models.StudentFeedback) error {
	return r.db.Create(fb).Error
}

func (r *feedbackRepository) FindTrainerFeedbackForStudent(studentID string) ([]models.TrainerFeedback, error) {
	var feedback []models.TrainerFeedback
	err := r.db.Where("student_id = ?", studentID).Order("created_at DESC").Find(&feedback).Error
	if err != nil {
		return nil, err
	}
	return feedback, nil
}

func (r *feedbackRepository) FindStudentFeedbackForTrainer(trainerID string) ([]models.StudentFeedback, error) {
	var feedback []models.StudentFeedback
	err := r.db.Where("trainer_id = ?", trainerID).Order("created_at DESC").Find(&feedback).Error
	if err != nil {
		return nil, err
	}
	return feedback, nil
}

// TopRatedTrainers ranks trainers by their average student rating.
func (r *feedbackRepository) TopRatedTrainers(limit int) ([]TrainerRating, error) {
	if limit <= 0 {
		limit = 10
	}
	var ratings []TrainerRating
	err := r.db.Model(&models.StudentFeedback{}).
		Select("student_feedbacks.trainer_id AS trainer_id, trainers.name AS trainer_name, AVG(student_feedbacks.rating) AS average_rating, COUNT(*) AS feedback_count").
		Joins("JOIN trainers ON trainers.id = student_feedbacks.trainer_id").
		Group("student_feedbacks.trainer_id, trainers.name").
		Order("average_rating DESC, feedback_count DESC").
		Limit(limit).
		Scan(&ratings).Error
	if err != nil {
		return nil, err
	}
	return ratings, nil
}

// SummarizeBatch aggregates the ratings left in both directions for a batch.
func (r *feedbackRepository) SummarizeBatch(batchID string) (*BatchFeedbackSummary, error) {
	summary := &BatchFeedbackSummary{BatchID: batchID}

	type agg struct {
		Count int64
		Avg   *float64
	}

	var student agg
	err := r.db.Model(&models.StudentFeedback{}).
		Select("COUNT(*) AS count, AVG(rating) AS avg").
		Where("batch_id = ?", batchID).
		Scan(&student).Error
	if err != nil {
		return nil, err
	}
	summary.StudentFeedbackCount = student.Count
	if student.Avg != nil {
		summary.AverageStudentRating = *student.Avg
	}

	var trainer agg
	err = r.db.Model(&models.TrainerFeedback{}).
		Select("COUNT(*) AS count, AVG(rating) AS avg").
		Where("batch_id = ?", batchID).
		Scan(&trainer).Error
	if err != nil {
		return nil, err
	}
	summary.TrainerFeedbackCount = trainer.Count
	if trainer.Avg != nil {
		summary.AverageTrainerRating = *trainer.Avg
	}

	return summary, nil
}

// AverageTrainerRating returns 0 when the trainer has no feedback yet.
func (r *feedbackRepository) AverageTrainerRating(trainerID string) (float64, error) {
	var avg *float64
	err := r.db.Model(&models.StudentFeedback{}).
		Where("trainer_id = ?", trainerID).
		Select("AVG(rating)").
		Scan(&avg).Error
	if err != nil {
		return 0, err
	}
	if avg == nil {
		return 0, nil
	}
	return *avg, nil
}
