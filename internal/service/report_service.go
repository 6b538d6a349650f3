package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"quiz_master_backend/internal/model"
	"quiz_master_backend/internal/repository"
	"quiz_master_backend/pkg/logger"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const statsCacheTTL = time.Minute

// ReportService assembles the admin score reports. Redis is optional;
// with a nil client every request computes fresh statistics.
type ReportService struct {
	ScoreRepo   *repository.ScoreRepository
	SubjectRepo *repository.SubjectRepository
	UserRepo    *repository.UserRepository
	Redis       *redis.Client
}

func NewReportService(scoreRepo *repository.ScoreRepository, subjectRepo *repository.SubjectRepository, userRepo *repository.UserRepository, rdb *redis.Client) *ReportService {
	return &ReportService{
		ScoreRepo:   scoreRepo,
		SubjectRepo: subjectRepo,
		UserRepo:    userRepo,
		Redis:       rdb,
	}
}

type ReportStats struct {
	TotalAttempts int     `json:"totalAttempts"`
	AvgScore      float64 `json:"avgScore"`
	HighestScore  float64 `json:"highestScore"`
	LowestScore   float64 `json:"lowestScore"`
}

type ReportView struct {
	Scores   []model.Score   `json:"scores"`
	Stats    ReportStats     `json:"stats"`
	Subjects []model.Subject `json:"subjects"`
	Users    []model.User    `json:"users"`
}

// GetReports lists scores newest first, filtered by subject and/or user,
// with aggregate statistics and the filter option lists.
func (s *ReportService) GetReports(ctx context.Context, subjectID, userID uint) (*ReportView, error) {
	scores, err := s.ScoreRepo.ListFiltered(subjectID, userID)
	if err != nil {
		return nil, err
	}

	stats, ok := s.cachedStats(ctx, subjectID, userID)
	if !ok {
		stats = computeStats(scores)
		s.cacheStats(ctx, subjectID, userID, stats)
	}

	subjects, err := s.SubjectRepo.List()
	if err != nil {
		return nil, err
	}

	users, err := s.UserRepo.ListByRole(model.RoleUser)
	if err != nil {
		return nil, err
	}

	return &ReportView{
		Scores:   scores,
		Stats:    stats,
		Subjects: subjects,
		Users:    users,
	}, nil
}

func computeStats(scores []model.Score) ReportStats {
	stats := ReportStats{TotalAttempts: len(scores)}
	if len(scores) == 0 {
		return stats
	}

	sum := 0.0
	stats.HighestScore = scores[0].TotalScore
	stats.LowestScore = scores[0].TotalScore
	for _, score := range scores {
		sum += score.TotalScore
		if score.TotalScore > stats.HighestScore {
			stats.HighestScore = score.TotalScore
		}
		if score.TotalScore < stats.LowestScore {
			stats.LowestScore = score.TotalScore
		}
	}
	stats.AvgScore = sum / float64(len(scores))
	return stats
}

func statsCacheKey(subjectID, userID uint) string {
	return fmt.Sprintf("reports:stats:%d:%d", subjectID, userID)
}

func (s *ReportService) cachedStats(ctx context.Context, subjectID, userID uint) (ReportStats, bool) {
	var stats ReportStats
	if s.Redis == nil {
		return stats, false
	}

	raw, err := s.Redis.Get(ctx, statsCacheKey(subjectID, userID)).Result()
	if err != nil {
		return stats, false
	}
	if err := json.Unmarshal([]byte(raw), &stats); err != nil {
		return stats, false
	}
	return stats, true
}

func (s *ReportService) cacheStats(ctx context.Context, subjectID, userID uint, stats ReportStats) {
	if s.Redis == nil {
		return
	}

	raw, err := json.Marshal(stats)
	if err != nil {
		return
	}
	if err := s.Redis.Set(ctx, statsCacheKey(subjectID, userID), raw, statsCacheTTL).Err(); err != nil {
		logger.Log.Warn("report stats cache write failed", zap.Error(err))
	}
}
