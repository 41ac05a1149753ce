package rest

import (
	"time"

	"github.com/heartmarshall/storefront-backend/internal/domain"
	"github.com/heartmarshall/storefront-backend/internal/theme"
)

type versionResponse struct {
	ID              string         `json:"id"`
	ProductID       *string        `json:"productId,omitempty"`
	Name            string         `json:"name"`
	Description     *string        `json:"description,omitempty"`
	Status          string         `json:"status"`
	SortOrder       int            `json:"sortOrder"`
	StatusChangedAt *time.Time     `json:"statusChangedAt,omitempty"`
	CreatedAt       time.Time      `json:"createdAt"`
	Completed       int            `json:"completed"`
	Total           int            `json:"total"`
	Items           []itemResponse `json:"items"`
}

type itemResponse struct {
	ID            string  `json:"id"`
	VersionID     string  `json:"versionId"`
	Title         string  `json:"title"`
	Description   *string `json:"description,omitempty"`
	Status        string  `json:"status"`
	SortOrder     int     `json:"sortOrder"`
	VotingEnabled bool    `json:"votingEnabled"`
	VoteCount     int     `json:"voteCount"`
	UserHasVoted  bool    `json:"userHasVoted"`
}

type profileResponse struct {
	UserID    string  `json:"userId"`
	Name      string  `json:"name"`
	AvatarURL *string `json:"avatarUrl,omitempty"`
}

type suggestionResponse struct {
	ID              string          `json:"id"`
	Title           string          `json:"title"`
	Description     *string         `json:"description,omitempty"`
	Status          string          `json:"status"`
	StatusChangedAt *time.Time      `json:"statusChangedAt,omitempty"`
	CreatedAt       time.Time       `json:"createdAt"`
	Upvotes         int             `json:"upvotes"`
	UserUpvoted     bool            `json:"userUpvoted"`
	ReplyCount      int             `json:"replyCount"`
	Author          profileResponse `json:"author"`
}

type replyResponse struct {
	ID        string          `json:"id"`
	Content   string          `json:"content"`
	CreatedAt time.Time       `json:"createdAt"`
	Author    profileResponse `json:"author"`
	IsCreator bool            `json:"isCreator"`
}

type themeResponse struct {
	ID           string            `json:"id"`
	Name         string            `json:"name"`
	Accent       string            `json:"accent"`
	Background   string            `json:"background"`
	Surface      string            `json:"surface"`
	TextPrimary  string            `json:"textPrimary"`
	Font         string            `json:"font"`
	Layout       string            `json:"layout"`
	StatusColors map[string]string `json:"statusColors"`
}

func toVersionResponse(v domain.Version) versionResponse {
	done, total := v.Progress()
	resp := versionResponse{
		ID:              v.ID.String(),
		Name:            v.Name,
		Description:     v.Description,
		Status:          v.Status.String(),
		SortOrder:       v.SortOrder,
		StatusChangedAt: v.StatusChangedAt,
		CreatedAt:       v.CreatedAt,
		Completed:       done,
		Total:           total,
		Items:           make([]itemResponse, len(v.Items)),
	}
	if v.ProductID != nil {
		s := v.ProductID.String()
		resp.ProductID = &s
	}
	for i, it := range v.Items {
		resp.Items[i] = toItemResponse(it)
	}
	return resp
}

func toItemResponse(it domain.Item) itemResponse {
	return itemResponse{
		ID:            it.ID.String(),
		VersionID:     it.VersionID.String(),
		Title:         it.Title,
		Description:   it.Description,
		Status:        it.Status.String(),
		SortOrder:     it.SortOrder,
		VotingEnabled: it.VotingAllowed(),
		VoteCount:     it.VoteCount,
		UserHasVoted:  it.UserHasVoted,
	}
}

func toProfileResponse(p domain.Profile) profileResponse {
	return profileResponse{UserID: p.UserID.String(), Name: p.Name(), AvatarURL: p.AvatarURL}
}

func toSuggestionResponse(s domain.Suggestion) suggestionResponse {
	return suggestionResponse{
		ID:              s.ID.String(),
		Title:           s.Title,
		Description:     s.Description,
		Status:          s.Status.String(),
		StatusChangedAt: s.StatusChangedAt,
		CreatedAt:       s.CreatedAt,
		Upvotes:         s.Upvotes,
		UserUpvoted:     s.UserUpvoted,
		ReplyCount:      s.ReplyCount,
		Author:          toProfileResponse(s.Author),
	}
}

func toReplyResponse(r domain.Reply) replyResponse {
	return replyResponse{
		ID:        r.ID.String(),
		Content:   r.Content,
		CreatedAt: r.CreatedAt,
		Author:    toProfileResponse(r.Author),
		IsCreator: r.IsCreator,
	}
}

func toThemeResponse(t theme.Theme) themeResponse {
	colors := make(map[string]string, len(t.StatusColors))
	for st, c := range t.StatusColors {
		colors[st.String()] = c
	}
	return themeResponse{
		ID:           t.ID,
		Name:         t.Name,
		Accent:       t.Accent,
		Background:   theme.Resolve(domain.RoadmapSettings{Theme: t.ID}).Background.CSS(),
		Surface:      t.Surface,
		TextPrimary:  t.TextPrimary,
		Font:         t.Font,
		Layout:       string(t.Layout),
		StatusColors: colors,
	}
}
