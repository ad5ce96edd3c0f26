package mapper

import (
	"github.com/katikarohith/quick-teams/internal/domain"
	"github.com/katikarohith/quick-teams/internal/dto"
	"github.com/katikarohith/quick-teams/internal/response"
)

// Member mappers
func MapDomainMemberToDTO(member *domain.Member) dto.MemberDTO {
	return dto.MemberDTO{
		MemberID:     member.MemberID,
		Name:         member.Name,
		Email:        member.Email,
		Availability: member.Availability,
		Skills:       emptyIfNil(member.Skills),
		Needs:        emptyIfNil(member.Needs),
		JoinedEvents: emptyIfNil(member.JoinedEvents),
	}
}

func MapDomainMemberToSummaryDTO(member *domain.Member) dto.MemberSummaryDTO {
	return dto.MemberSummaryDTO{
		MemberID:     member.MemberID,
		Name:         member.Name,
		Availability: member.Availability,
		Skills:       emptyIfNil(member.Skills),
		Needs:        emptyIfNil(member.Needs),
	}
}

func MapDomainMembersToSummaryDTO(members []domain.Member) []dto.MemberSummaryDTO {
	result := make([]dto.MemberSummaryDTO, len(members))
	for i := range members {
		result[i] = MapDomainMemberToSummaryDTO(&members[i])
	}
	return result
}

// Matchmaking mappers
func MapScoredCandidatesToDTO(candidates []domain.ScoredCandidate) []dto.ScoredCandidateDTO {
	result := make([]dto.ScoredCandidateDTO, len(candidates))
	for i := range candidates {
		result[i] = dto.ScoredCandidateDTO{
			Member: MapDomainMemberToSummaryDTO(&candidates[i].Member),
			Score:  candidates[i].Score,
		}
	}
	return result
}

// Notification mappers
func MapDomainNotificationsToDTO(notifications []domain.Notification) []dto.NotificationDTO {
	result := make([]dto.NotificationDTO, len(notifications))
	for i, n := range notifications {
		result[i] = dto.NotificationDTO{
			ID:        n.ID,
			OriginID:  n.OriginID,
			Kind:      n.Kind,
			Status:    n.Status,
			CreatedAt: n.CreatedAt,
		}
	}
	return result
}

// Event mappers
func MapDomainEventsToDTO(events []domain.Event, joinedEvents []string) []dto.EventDTO {
	joined := make(map[string]struct{}, len(joinedEvents))
	for _, eventID := range joinedEvents {
		joined[eventID] = struct{}{}
	}

	result := make([]dto.EventDTO, len(events))
	for i, event := range events {
		_, isJoined := joined[event.ID]
		result[i] = dto.EventDTO{
			ID:     event.ID,
			Title:  event.Title,
			Date:   event.Date,
			Desc:   event.Desc,
			Joined: isJoined,
		}
	}
	return result
}

// Statistics mappers
func MapDomainStatisticsToDTO(stats *domain.Statistics) response.StatisticsResponse {
	return response.StatisticsResponse{
		TotalMembers:     stats.TotalMembers,
		PendingRequests:  stats.PendingRequests,
		AcceptedRequests: stats.AcceptedRequests,
		TeamedPairs:      stats.TeamedPairs,
		EventJoins:       stats.EventJoins,
	}
}

func emptyIfNil(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
