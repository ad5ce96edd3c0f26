package service

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/katikarohith/quick-teams/internal/domain"
	"github.com/katikarohith/quick-teams/internal/my_errors"
)

// complementaryLimit caps the ranked match view.
const complementaryLimit = 10

type MatchService struct {
	memberRepo MemberRepository
}

func NewMatchService(memberRepo MemberRepository) *MatchService {
	return &MatchService{memberRepo: memberRepo}
}

// Score ranks how well candidate complements viewer. Tags the candidate can
// cover for the viewer weigh 3, tags the viewer can cover for the candidate
// weigh 2, an exact availability match adds 1. The directions are weighted
// differently on purpose, so Score(a, b) and Score(b, a) can disagree.
func (s *MatchService) Score(viewer, candidate *domain.Member) int {
	score := 0

	candidateSkills := make(map[string]struct{}, len(candidate.Skills))
	for _, skill := range candidate.Skills {
		candidateSkills[skill] = struct{}{}
	}
	for _, need := range viewer.Needs {
		if _, ok := candidateSkills[need]; ok {
			score += 3
		}
	}

	viewerSkills := make(map[string]struct{}, len(viewer.Skills))
	for _, skill := range viewer.Skills {
		viewerSkills[skill] = struct{}{}
	}
	for _, need := range candidate.Needs {
		if _, ok := viewerSkills[need]; ok {
			score += 2
		}
	}

	if viewer.Availability != "" && viewer.Availability == candidate.Availability {
		score++
	}

	return score
}

// ListComplementary scores every other member against the viewer and returns
// the top candidates by descending score. The sort is stable, so equal
// scores keep directory order.
func (s *MatchService) ListComplementary(ctx context.Context, viewerID string) ([]domain.ScoredCandidate, error) {
	viewer, err := s.memberRepo.GetMemberByID(ctx, viewerID)
	if err != nil {
		return nil, fmt.Errorf("failed to load viewer: %w", err)
	}

	others, err := s.memberRepo.ListMembersExcept(ctx, viewerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list members: %w", err)
	}

	scored := make([]domain.ScoredCandidate, 0, len(others))
	for i := range others {
		if others[i].MemberID == viewer.MemberID {
			continue
		}
		scored = append(scored, domain.ScoredCandidate{
			Member: others[i],
			Score:  s.Score(viewer, &others[i]),
		})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	if len(scored) > complementaryLimit {
		scored = scored[:complementaryLimit]
	}
	return scored, nil
}

// SearchBySkills matches comma-separated query tags against candidate skills,
// case-insensitively. Candidates without a single matching tag are dropped.
// An empty query is rejected rather than scored over all members.
func (s *MatchService) SearchBySkills(ctx context.Context, viewerID, tags string) ([]domain.ScoredCandidate, error) {
	queryTags := splitTags(tags)
	if len(queryTags) == 0 {
		return nil, my_errors.ErrEmptySearch
	}
	for i, tag := range queryTags {
		queryTags[i] = strings.ToLower(tag)
	}

	others, err := s.memberRepo.ListMembersExcept(ctx, viewerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list members: %w", err)
	}

	var scored []domain.ScoredCandidate
	for i := range others {
		if others[i].MemberID == viewerID {
			continue
		}

		skills := make(map[string]struct{}, len(others[i].Skills))
		for _, skill := range others[i].Skills {
			skills[strings.ToLower(skill)] = struct{}{}
		}

		count := 0
		for _, tag := range queryTags {
			if _, ok := skills[tag]; ok {
				count++
			}
		}
		if count == 0 {
			continue
		}

		scored = append(scored, domain.ScoredCandidate{
			Member: others[i],
			Score:  count,
		})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})
	return scored, nil
}

// splitTags parses a comma-separated tag list dropping empty entries.
func splitTags(raw string) []string {
	parts := strings.Split(raw, ",")
	tags := make([]string, 0, len(parts))
	for _, part := range parts {
		if tag := strings.TrimSpace(part); tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}
