package layout

import (
	"strconv"

	"github.com/heartmarshall/storefront-backend/internal/domain"
)

var sortLabels = map[domain.SuggestionSort]string{
	domain.SuggestionSortUpvotes:   "Top",
	domain.SuggestionSortNewest:    "Newest",
	domain.SuggestionSortDiscussed: "Most discussed",
}

// suggestionBoard renders the visitor suggestion list and, when a thread
// is open, its drawer.
func suggestionBoard(p Props) *Node {
	b := p.Board
	st := p.Style

	sorts := El("div", "suggestion-sort").Role("sort")
	for _, s := range []domain.SuggestionSort{
		domain.SuggestionSortUpvotes, domain.SuggestionSortNewest, domain.SuggestionSortDiscussed,
	} {
		btn := El("button").SetText(sortLabels[s]).
			On(Action{Op: OpSortSuggestions, Value: s.String()})
		if s == b.Sort {
			btn.Class("active").CSS("color", st.Accent)
		}
		sorts.Add(btn)
	}

	list := El("ul", "suggestions").Role("suggestions")
	for _, s := range b.Suggestions {
		list.Add(suggestionRow(p, s))
	}
	if len(b.Suggestions) == 0 {
		list.Add(El("li", "suggestions-empty").SetText("No suggestions yet.").CSS("color", st.TextSecondary))
	}

	board := El("aside", "suggestion-board").Role("board-suggestions").
		CSS("margin-top", px(st.Spacing.Gap*2)).
		Add(
			El("h3").SetText("Suggestions"),
			sorts,
			suggestionForm(p),
			list,
		)
	if b.Open != nil {
		board.Add(threadDrawer(p))
	}
	return board
}

func suggestionRow(p Props, s domain.Suggestion) *Node {
	id := s.ID.String()
	current := "0"
	if s.UserUpvoted {
		current = "1"
	}
	up := El("button", "upvote").Role("upvote").
		Attr("aria-pressed", strconv.FormatBool(s.UserUpvoted)).
		On(Action{Op: OpUpvote, Target: id, Value: current}).
		Add(Text("▲"), Text(strconv.Itoa(s.Upvotes), "upvote-count"))
	if s.UserUpvoted {
		up.Class("voted").CSS("color", p.Style.Accent)
	}
	up.Disabled = !p.SignedIn

	row := card(p.Style, "suggestion").Role("suggestion").Attr("data-id", id)
	if p.Board.Open != nil && p.Board.Open.ID == s.ID {
		row.Class("open")
	}
	return El("li").Add(row.Add(
		up,
		El("button", "suggestion-open").Role("open-thread").
			On(Action{Op: OpOpenThread, Target: id}).
			Add(
				Text(s.Title, "suggestion-title"),
				Text(s.Author.Name(), "suggestion-author").CSS("color", p.Style.TextSecondary),
				Text(strconv.Itoa(s.ReplyCount)+" replies", "suggestion-replies"),
			),
		forumStatusBadge(s.Status),
		forumStatusSelect(p, s),
		deleteSuggestionButton(p, s),
	))
}

func forumStatusBadge(s domain.ForumStatus) *Node {
	return Text(s.String(), "forum-status", "forum-status-"+s.String()).Attr("data-status", s.String())
}

func forumStatusSelect(p Props, s domain.Suggestion) *Node {
	if !p.Owner {
		return nil
	}
	sel := El("select", "forum-status-select").Role("forum-status-select").
		On(Action{Op: OpSuggestionStatus, Target: s.ID.String()})
	for _, fs := range domain.AllForumStatuses() {
		opt := El("option").Attr("value", fs.String()).SetText(fs.String())
		if fs == s.Status {
			opt.Attr("selected", "")
		}
		sel.Add(opt)
	}
	return sel
}

func deleteSuggestionButton(p Props, s domain.Suggestion) *Node {
	if !p.Owner {
		return nil
	}
	return El("button", "delete").Role("delete-suggestion").SetText("Delete").
		On(Action{Op: OpDeleteSuggestion, Target: s.ID.String(), Confirm: "Delete this suggestion and its replies?"})
}

func suggestionForm(p Props) *Node {
	if !p.SignedIn {
		return El("p", "suggestion-signin").SetText("Sign in to suggest a feature.")
	}
	submit := El("button").SetText("Suggest").On(Action{Op: OpSubmitSuggestion})
	submit.Disabled = p.Board.Submitting
	return El("form", "suggestion-form").Role("suggestion-form").Add(
		El("input").Attr("type", "text").Attr("name", "title").Attr("placeholder", "Your idea"),
		El("textarea").Attr("name", "description").Attr("placeholder", "Details (optional)"),
		submit,
	)
}

func threadDrawer(p Props) *Node {
	b := p.Board
	s := b.Open

	replies := El("ol", "replies").Role("replies")
	for _, r := range b.Replies {
		li := El("li", "reply").Role("reply").Attr("data-id", r.ID.String()).Add(
			Text(r.Author.Name(), "reply-author"),
			El("p", "reply-content").SetText(r.Content),
		)
		if r.IsCreator {
			li.Class("creator").Add(Text("Creator", "creator-badge").CSS("color", p.Style.Accent))
		}
		replies.Add(li)
	}

	drawer := card(p.Style, "thread-drawer").Role("thread").Attr("data-id", s.ID.String()).Add(
		El("header").Add(
			El("h4").SetText(s.Title),
			forumStatusBadge(s.Status),
			El("button", "close").Role("close-thread").SetText("×").On(Action{Op: OpCloseThread}),
		),
		Markdown(s.Description, "suggestion-description"),
		replies,
	)

	if p.SignedIn {
		send := El("button").Role("submit-reply").SetText("Reply").
			On(Action{Op: OpSubmitReply, Target: s.ID.String()})
		send.Disabled = b.Submitting || b.Draft == ""
		drawer.Add(El("form", "reply-form").Add(
			El("textarea").Role("reply-draft").Attr("name", "content").SetText(b.Draft).
				On(Action{Op: OpReplyDraft, Target: s.ID.String()}),
			send,
		))
	}
	return drawer
}
