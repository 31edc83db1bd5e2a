package safety

import (
	"context"

	"DriftChat/internal/utils"
)

// Service enforces the ban/report policy: logins from banned origins are
// rejected, and an origin crossing the report threshold is banned.
type Service struct {
	repo      Repo
	threshold int64
}

func NewService(repo Repo, threshold int64) *Service {
	if threshold <= 0 {
		threshold = 3
	}
	return &Service{repo: repo, threshold: threshold}
}

// Allowed reports whether a connection from origin may proceed. A failing
// backing store degrades to allow; the ban list is advisory, not load-bearing.
func (s *Service) Allowed(ctx context.Context, origin string) bool {
	banned, err := s.repo.IsBanned(ctx, origin)
	if err != nil {
		utils.Error.Printf("ban lookup failed for %s: %v", origin, err)
		return true
	}
	return !banned
}

// Report records one report against origin and bans it when the count
// reaches the threshold. Returns true if the report triggered a ban.
func (s *Service) Report(ctx context.Context, origin string) bool {
	count, err := s.repo.Report(ctx, origin)
	if err != nil {
		utils.Error.Printf("report failed for %s: %v", origin, err)
		return false
	}
	if count < s.threshold {
		return false
	}
	if err := s.repo.Ban(ctx, origin); err != nil {
		utils.Error.Printf("ban failed for %s: %v", origin, err)
		return false
	}
	return true
}
