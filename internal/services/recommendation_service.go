package services

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/college/skillbridge/internal/logger"
	"github.com/college/skillbridge/internal/models"
	"github.com/college/skillbridge/internal/repositories"
	"github.com/college/skillbridge/internal/services/dto"
	"github.com/college/skillbridge/pkg/apperrors"
)

const (
	skillMatchPoints        = 2
	intermediateBonusPoints = 1
	advancedBonusPoints     = 2
	newTopicPoints          = 3
	domainMatchPoints       = 5
	hiringBonusPoints       = 2
)

type RecommendationService interface {
	// RecommendBatches scores every eligible batch for the student and
	// returns the top matches, best first.
	RecommendBatches(studentID string) ([]dto.BatchRecommendation, error)
	// InvalidateStudent drops the cached list after the student's skills or
	// batch history change.
	InvalidateStudent(studentID string)
}

type RecommendationServiceImpl struct {
	studentRepo      repositories.StudentRepository
	batchRepo        repositories.BatchRepository
	eligibleStatuses []models.BatchStatus
	limit            int
	cache            *gocache.Cache
}

func NewRecommendationService(
	studentRepo repositories.StudentRepository,
	batchRepo repositories.BatchRepository,
	eligibleStatuses []models.BatchStatus,
	limit int,
	cacheTTL time.Duration,
) RecommendationService {
	if len(eligibleStatuses) == 0 {
		eligibleStatuses = []models.BatchStatus{models.BatchStatusActive}
	}
	if limit <= 0 {
		limit = 5
	}
	if cacheTTL <= 0 {
		cacheTTL = 5 * time.Minute
	}
	return &RecommendationServiceImpl{
		studentRepo:      studentRepo,
		batchRepo:        batchRepo,
		eligibleStatuses: eligibleStatuses,
		limit:            limit,
		cache:            gocache.New(cacheTTL, 10*time.Minute),
	}
}

func (s *RecommendationServiceImpl) RecommendBatches(studentID string) ([]dto.BatchRecommendation, error) {
	if cached, found := s.cache.Get(studentID); found {
		return cached.([]dto.BatchRecommendation), nil
	}

	student, err := s.studentRepo.FindByIDWithDetails(studentID)
	if err != nil {
		if errors.Is(err, repositories.ErrStudentNotFound) {
			return nil, apperrors.ErrNotFound(err, "student not found")
		}
		return nil, apperrors.InternalError(err)
	}

	batches, err := s.batchRepo.FindByStatusIn(s.eligibleStatuses)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	skillNames := studentSkillNames(student)
	knownTopics := studentKnownTopics(student, skillNames)

	recommendations := make([]dto.BatchRecommendation, 0, len(batches))
	for i := range batches {
		rec := s.scoreBatch(&batches[i], student, skillNames, knownTopics)
		if rec.TotalScore == 0 {
			continue
		}
		recommendations = append(recommendations, rec)
	}

	// Stable sort keeps query order for equal scores, so repeated calls
	// return the same list.
	sort.SliceStable(recommendations, func(i, j int) bool {
		return recommendations[i].TotalScore > recommendations[j].TotalScore
	})

	if len(recommendations) > s.limit {
		recommendations = recommendations[:s.limit]
	}

	s.cache.SetDefault(studentID, recommendations)

	logger.With("student_id", studentID, "count", len(recommendations)).
		Debug("computed batch recommendations")

	return recommendations, nil
}

func (s *RecommendationServiceImpl) InvalidateStudent(studentID string) {
	s.cache.Delete(studentID)
}

func (s *RecommendationServiceImpl) scoreBatch(
	batch *models.Batch,
	student *models.Student,
	skillNames map[string]models.ProficiencyLevel,
	knownTopics map[string]struct{},
) dto.BatchRecommendation {
	rec := dto.BatchRecommendation{
		BatchID:       batch.ID,
		BatchName:     batch.Name,
		Description:   batch.Description,
		DurationWeeks: batch.DurationWeeks,
		MatchReasons:  []string{},
		TrainerName:   batchTrainerName(batch),
		StartDate:     "To be announced",
	}

	techTokens := batchTechTokens(batch)

	// Skill match: points for every skill the syllabus already covers, with a
	// bonus for higher proficiency.
	matchedSkills := 0
	for name, level := range skillNames {
		if _, ok := techTokens[name]; !ok {
			continue
		}
		matchedSkills++
		rec.SkillMatchScore += skillMatchPoints
		switch level {
		case models.ProficiencyIntermediate:
			rec.SkillMatchScore += intermediateBonusPoints
		case models.ProficiencyAdvanced:
			rec.SkillMatchScore += advancedBonusPoints
		}
	}
	if matchedSkills > 0 {
		rec.MatchReasons = append(rec.MatchReasons,
			fmt.Sprintf("%d of your skills match this batch's technologies", matchedSkills))
	}

	// Syllabus novelty: points for topics the student has not seen in any
	// prior batch and does not already hold as a skill.
	var newTopics []string
	if batch.Syllabus != nil {
		for _, topic := range batch.Syllabus.Topics {
			if _, ok := knownTopics[strings.ToLower(topic.Name)]; ok {
				continue
			}
			newTopics = append(newTopics, topic.Name)
			rec.SyllabusOverlapScore += newTopicPoints
		}
	}
	if len(newTopics) > 0 {
		examples := newTopics
		if len(examples) > 2 {
			examples = examples[:2]
		}
		rec.MatchReasons = append(rec.MatchReasons,
			fmt.Sprintf("You'll learn %d new topics including %s", len(newTopics), strings.Join(examples, ", ")))
	}

	// Company relevance: mapped companies whose domain overlaps the
	// student's skills, with a bonus when the matching company is hiring.
	relevantCompanies := 0
	hiringCompanies := 0
	for _, mapping := range batch.CompanyMappings {
		company := mapping.Company
		if company.HiringType != nil {
			hiringCompanies++
		}
		if !companyMatchesSkills(&company, skillNames) {
			continue
		}
		relevantCompanies++
		rec.CompanyRelevanceScore += domainMatchPoints
		if company.HiringType != nil {
			rec.CompanyRelevanceScore += hiringBonusPoints
		}
	}
	if relevantCompanies > 0 {
		rec.MatchReasons = append(rec.MatchReasons,
			fmt.Sprintf("%d companies aligned with your skills are associated with this batch", relevantCompanies))
		if hiringCompanies > 0 {
			rec.MatchReasons = append(rec.MatchReasons,
				fmt.Sprintf("%d companies are currently hiring for similar roles", hiringCompanies))
		}
	}

	rec.TotalScore = rec.SkillMatchScore + rec.SyllabusOverlapScore + rec.CompanyRelevanceScore
	return rec
}

// studentSkillNames maps each skill's lower-cased name to its proficiency.
func studentSkillNames(student *models.Student) map[string]models.ProficiencyLevel {
	names := make(map[string]models.ProficiencyLevel, len(student.Skills))
	for _, link := range student.Skills {
		name := strings.ToLower(strings.TrimSpace(link.Skill.Name))
		if name == "" {
			continue
		}
		names[name] = link.Level
	}
	return names
}

// studentKnownTopics collects everything the student already knows: their
// skill names plus every topic from batches they were enrolled in before.
func studentKnownTopics(student *models.Student, skillNames map[string]models.ProficiencyLevel) map[string]struct{} {
	known := make(map[string]struct{}, len(skillNames))
	for name := range skillNames {
		known[name] = struct{}{}
	}
	for _, history := range student.BatchHistory {
		if history.Batch.Syllabus == nil {
			continue
		}
		for _, topic := range history.Batch.Syllabus.Topics {
			known[strings.ToLower(topic.Name)] = struct{}{}
		}
	}
	return known
}

// batchTechTokens flattens a batch's syllabus into a lower-cased token set:
// topic names plus every entry of each topic's comma-separated technologies.
func batchTechTokens(batch *models.Batch) map[string]struct{} {
	tokens := make(map[string]struct{})
	if batch.Syllabus == nil {
		return tokens
	}
	for _, topic := range batch.Syllabus.Topics {
		if name := strings.ToLower(strings.TrimSpace(topic.Name)); name != "" {
			tokens[name] = struct{}{}
		}
		for _, tech := range strings.Split(topic.Technologies, ",") {
			if tech = strings.ToLower(strings.TrimSpace(tech)); tech != "" {
				tokens[tech] = struct{}{}
			}
		}
	}
	return tokens
}

func companyMatchesSkills(company *models.Company, skillNames map[string]models.ProficiencyLevel) bool {
	domain := strings.ToLower(company.Domain)
	if domain == "" {
		return false
	}
	for name := range skillNames {
		if strings.Contains(domain, name) {
			return true
		}
	}
	return false
}

func batchTrainerName(batch *models.Batch) string {
	if len(batch.Trainers) > 0 && batch.Trainers[0].Trainer.Name != "" {
		return batch.Trainers[0].Trainer.Name
	}
	return "Not assigned yet"
}
