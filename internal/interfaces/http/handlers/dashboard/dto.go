package dashboard

import (
	"time"

	"bugtrail/internal/domain/dashboard"
)

type StatusReportResponse struct {
	Open   int64 `json:"open"`
	Closed int64 `json:"closed"`
}

type PriorityReportResponse struct {
	High   int64 `json:"high"`
	Medium int64 `json:"medium"`
	Low    int64 `json:"low"`
	Open   int64 `json:"open"`
	Closed int64 `json:"closed"`
}

type TicketSummaryResponse struct {
	ID        uint      `json:"id"`
	Index     uint      `json:"index"`
	Title     string    `json:"title"`
	Priority  string    `json:"priority"`
	Closed    bool      `json:"closed"`
	CreatorID uint      `json:"creatorId"`
	CreatedAt time.Time `json:"createdAt"`
}

type CommentorResponse struct {
	UserID       uint   `json:"userId"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	ProfileImage string `json:"profileImage,omitempty"`
	Count        int64  `json:"count"`
}

type DayCountResponse struct {
	Day   string `json:"day"`
	Count int64  `json:"count"`
}

type SupervisorRankResponse struct {
	UserID       uint   `json:"userId"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	ProfileImage string `json:"profileImage,omitempty"`
	Count        int64  `json:"count"`
}

func newTicketSummaries(summaries []dashboard.TicketSummary) []TicketSummaryResponse {
	responses := make([]TicketSummaryResponse, len(summaries))
	for i, s := range summaries {
		responses[i] = TicketSummaryResponse{
			ID:        s.ID,
			Index:     s.Index,
			Title:     s.Title,
			Priority:  s.Priority,
			Closed:    s.Closed,
			CreatorID: s.CreatorID,
			CreatedAt: s.CreatedAt,
		}
	}
	return responses
}

func newCommentorResponses(counts []dashboard.CommentorCount) []CommentorResponse {
	responses := make([]CommentorResponse, len(counts))
	for i, cc := range counts {
		responses[i] = CommentorResponse{
			UserID:       cc.UserID,
			Name:         cc.Name,
			Email:        cc.Email,
			ProfileImage: cc.ProfileImage,
			Count:        cc.Count,
		}
	}
	return responses
}

func newDayCountResponses(days []dashboard.DayCount) []DayCountResponse {
	responses := make([]DayCountResponse, len(days))
	for i, d := range days {
		responses[i] = DayCountResponse{Day: d.Day, Count: d.Count}
	}
	return responses
}

func newSupervisorRankResponses(counts []dashboard.SupervisorCount) []SupervisorRankResponse {
	responses := make([]SupervisorRankResponse, len(counts))
	for i, sc := range counts {
		responses[i] = SupervisorRankResponse{
			UserID:       sc.UserID,
			Name:         sc.Name,
			Email:        sc.Email,
			ProfileImage: sc.ProfileImage,
			Count:        sc.Count,
		}
	}
	return responses
}
