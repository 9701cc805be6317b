package scoring

import (
	"math"
	"sort"

	"github.com/dpetrucci/hackfest/internal/model"
)

// Blend weights for the composite score
const (
	VoteWeight     = 0.70
	ProgressWeight = 0.30
)

// Service derives team scores from document grades and final votes.
// All denominators are fixed: progress uses the total slot count and
// the vote average uses the full panel size, so a missing document or
// vote contributes an implicit zero instead of being excluded from
// the average.
type Service struct{}

// New creates a new scoring service
func New() *Service {
	return &Service{}
}

// TeamScore is the derived standing of a single team
type TeamScore struct {
	TeamID      model.TeamID
	Name        string
	VoteAverage float64
	Progress    float64
	Composite   float64
	Submitted   int
	Slots       int
}

// TotalSlots is the number of document slots available to a team over
// the whole event: duration days times the daily cap.
func (s *Service) TotalSlots() int {
	return model.EventDurationDays * model.MaxDailyDocuments
}

// DocumentGrade converts the panel's scores for one submission into a
// document grade: the mean rounded to the nearest integer.
func (s *Service) DocumentGrade(judgeScores []int) int {
	if len(judgeScores) == 0 {
		return 0
	}
	sum := 0
	for _, v := range judgeScores {
		sum += v
	}
	return int(math.Round(float64(sum) / float64(len(judgeScores))))
}

// ProgressScore averages document grades over the fixed slot count.
// Grades of documents never submitted count as zero.
func (s *Service) ProgressScore(grades []int, slots int) float64 {
	if slots <= 0 {
		return 0
	}
	sum := 0
	for _, g := range grades {
		sum += g
	}
	return float64(sum) / float64(slots)
}

// VoteAverage averages final-vote scores over the full panel size, so
// a judge who never voted contributes zero.
func (s *Service) VoteAverage(votes []int, panelSize int) float64 {
	if panelSize <= 0 {
		return 0
	}
	sum := 0
	for _, v := range votes {
		sum += v
	}
	return float64(sum) / float64(panelSize)
}

// Composite blends the final-vote average and the progress score.
func (s *Service) Composite(voteAverage, progress float64) float64 {
	return VoteWeight*voteAverage + ProgressWeight*progress
}

// Rank orders team scores by composite score descending. The sort is
// stable: ties keep their encounter order.
func (s *Service) Rank(scores []TeamScore) []TeamScore {
	ranked := make([]TeamScore, len(scores))
	copy(ranked, scores)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Composite > ranked[j].Composite
	})
	return ranked
}

// Interface for dependency injection
type ServiceInterface interface {
	TotalSlots() int
	DocumentGrade(judgeScores []int) int
	ProgressScore(grades []int, slots int) float64
	VoteAverage(votes []int, panelSize int) float64
	Composite(voteAverage, progress float64) float64
	Rank(scores []TeamScore) []TeamScore
}

var _ ServiceInterface = (*Service)(nil)
