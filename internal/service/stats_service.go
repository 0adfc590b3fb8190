package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	apperrors "linguatrack/internal/errors"
	"linguatrack/internal/model"
	"linguatrack/internal/repository"
)

// DefaultLeaderboardLimit is used when a limit parameter is absent or invalid.
const DefaultLeaderboardLimit = 5

// StatsService computes the global leaderboards and per-user ranks.
//
// Ranks follow competition ("RANK()") semantics: tied counts share a rank and
// the sequence skips after a tie, so two users tied for 1st are both rank 1
// and the next distinct count is rank 3.
type StatsService interface {
	DashboardSummary(ctx context.Context) (*model.DashboardSummary, error)
	TopPolyglots(ctx context.Context, limit int) ([]model.PolyglotEntry, error)
	TopUsersByAccess(ctx context.Context, limit int) ([]model.AccessEntry, error)
	TopLanguageFamilies(ctx context.Context, limit int) ([]model.FamilyShare, error)
	TopLanguages(ctx context.Context, limit int) ([]model.LanguageShare, error)
	PolyglotRank(ctx context.Context, userID uint) (*model.PolyglotRank, error)
	AccessRank(ctx context.Context, userID uint) (*model.AccessRank, error)
}

type statsService struct {
	statsRepo repository.StatsRepository
}

// NewStatsService creates a new stats service.
func NewStatsService(statsRepo repository.StatsRepository) StatsService {
	return &statsService{statsRepo: statsRepo}
}

func (s *statsService) DashboardSummary(ctx context.Context) (*model.DashboardSummary, error) {
	summary, err := s.statsRepo.Summary(ctx)
	if err != nil {
		return nil, fmt.Errorf("dashboard summary: %w", err)
	}
	return summary, nil
}

func (s *statsService) TopPolyglots(ctx context.Context, limit int) ([]model.PolyglotEntry, error) {
	entries, err := s.statsRepo.TopPolyglots(ctx, sanitizeLimit(limit))
	if err != nil {
		return nil, fmt.Errorf("top polyglots: %w", err)
	}
	return entries, nil
}

func (s *statsService) TopUsersByAccess(ctx context.Context, limit int) ([]model.AccessEntry, error) {
	entries, err := s.statsRepo.TopUsersByAccess(ctx, sanitizeLimit(limit))
	if err != nil {
		return nil, fmt.Errorf("top users by access: %w", err)
	}
	return entries, nil
}

func (s *statsService) TopLanguageFamilies(ctx context.Context, limit int) ([]model.FamilyShare, error) {
	entries, err := s.statsRepo.TopLanguageFamilies(ctx, sanitizeLimit(limit))
	if err != nil {
		return nil, fmt.Errorf("top language families: %w", err)
	}
	return entries, nil
}

func (s *statsService) TopLanguages(ctx context.Context, limit int) ([]model.LanguageShare, error) {
	entries, err := s.statsRepo.TopLanguages(ctx, sanitizeLimit(limit))
	if err != nil {
		return nil, fmt.Errorf("top languages: %w", err)
	}
	return entries, nil
}

// PolyglotRank ranks the caller among all users by distinct-language count.
// Zero-language users still receive a rank (the counts query is a left join).
func (s *statsService) PolyglotRank(ctx context.Context, userID uint) (*model.PolyglotRank, error) {
	counts, err := s.statsRepo.PolyglotCounts(ctx)
	if err != nil {
		return nil, fmt.Errorf("polyglot counts: %w", err)
	}

	rank, count, ok := rankOf(counts, userID)
	if !ok {
		return nil, apperrors.ErrRankingNotFound
	}
	return &model.PolyglotRank{
		Rank:          rank,
		LanguageCount: count,
		TotalUsers:    int64(len(counts)),
	}, nil
}

// AccessRank ranks the caller among all users by recorded access count, with
// the same left-join semantics as PolyglotRank.
func (s *statsService) AccessRank(ctx context.Context, userID uint) (*model.AccessRank, error) {
	counts, err := s.statsRepo.AccessCounts(ctx)
	if err != nil {
		return nil, fmt.Errorf("access counts: %w", err)
	}

	rank, count, ok := rankOf(counts, userID)
	if !ok {
		return nil, apperrors.ErrRankingNotFound
	}
	return &model.AccessRank{
		Rank:        rank,
		AccessCount: count,
		TotalUsers:  int64(len(counts)),
	}, nil
}

// rankOf assigns competition ranks over rows already ordered by count
// descending and returns the target user's rank and count. A row's rank is
// the 1-based position of the first row sharing its count.
func rankOf(counts []model.UserCount, userID uint) (rank, count int64, ok bool) {
	current := int64(0)
	prev := int64(-1)
	for i, row := range counts {
		if i == 0 || row.Count != prev {
			current = int64(i) + 1
			prev = row.Count
		}
		if row.ID == userID {
			return current, row.Count, true
		}
	}
	return 0, 0, false
}

// ParseLimit coerces a raw limit query parameter to a positive integer. The
// longest leading integer prefix counts ("10abc" is 10); no digits or a
// non-positive value falls back to the default, so it can never reach SQL
// malformed.
func ParseLimit(raw string) int {
	raw = strings.TrimSpace(raw)
	end := 0
	if end < len(raw) && (raw[end] == '+' || raw[end] == '-') {
		end++
	}
	for end < len(raw) && raw[end] >= '0' && raw[end] <= '9' {
		end++
	}

	limit, err := strconv.Atoi(raw[:end])
	if err != nil || limit <= 0 {
		return DefaultLeaderboardLimit
	}
	return limit
}

func sanitizeLimit(limit int) int {
	if limit <= 0 {
		return DefaultLeaderboardLimit
	}
	return limit
}
