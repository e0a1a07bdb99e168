package dto

// BatchRecommendation is one scored batch in a student's recommendation list.
type BatchRecommendation struct {
	BatchID               string   `json:"batch_id"`
	BatchName             string   `json:"batch_name"`
	Description           string   `json:"description,omitempty"`
	DurationWeeks         int      `json:"duration_weeks"`
	SkillMatchScore       int      `json:"skill_match_score"`
	SyllabusOverlapScore  int      `json:"syllabus_overlap_score"`
	CompanyRelevanceScore int      `json:"company_relevance_score"`
	TotalScore            int      `json:"total_score"`
	MatchReasons          []string `json:"match_reasons"`
	TrainerName           string   `json:"trainer_name"`
	StartDate             string   `json:"start_date"`
}
