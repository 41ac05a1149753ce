package layout

import (
	"fmt"
	"strconv"

	"github.com/google/uuid"

	"github.com/heartmarshall/storefront-backend/internal/domain"
	"github.com/heartmarshall/storefront-backend/internal/theme"
)

// Builders shared by every strategy. They hold the interaction contract:
// owner-only affordances, the inline edit form, the vote control and the
// status selector look different per layout only through the chrome around
// them.

func card(st theme.ResolvedStyle, classes ...string) *Node {
	return El("div", append([]string{"card"}, classes...)...).
		CSS("background", st.Card).
		CSS("border", "1px solid "+st.Border).
		CSS("border-radius", px(st.Radius)).
		CSS("padding", px(st.Spacing.Padding))
}

func statusBadge(st theme.ResolvedStyle, s domain.Status) *Node {
	ss := st.StatusStyleFor(s)
	return Text(s.Label(), "status-badge", "status-"+s.String()).
		Attr("data-status", s.String()).
		CSS("background", ss.Background).
		CSS("border", "1px solid "+ss.Border).
		CSS("color", ss.Text)
}

// statusSelect is the four-option selector. Nil for non-owners.
func statusSelect(p Props, op Op, id uuid.UUID, current domain.Status) *Node {
	if !p.Owner {
		return nil
	}
	sel := El("select", "status-select").Role("status-select").
		On(Action{Op: op, Target: id.String()})
	for _, s := range domain.AllStatuses() {
		opt := El("option").Attr("value", s.String()).SetText(s.Label())
		if s == current {
			opt.Attr("selected", "")
		}
		sel.Add(opt)
	}
	return sel
}

// voteButton is shown when both the section and the item allow voting.
func voteButton(p Props, it domain.Item) *Node {
	if !p.VotingEnabled || !it.VotingAllowed() {
		return nil
	}
	current := "0"
	if it.UserHasVoted {
		current = "1"
	}
	b := El("button", "vote").Role("vote").
		Attr("aria-pressed", strconv.FormatBool(it.UserHasVoted)).
		On(Action{Op: OpVote, Target: it.ID.String(), Value: current}).
		Add(Text("▲", "vote-icon"), Text(strconv.Itoa(it.VoteCount), "vote-count"))
	if it.UserHasVoted {
		b.Class("voted").CSS("color", p.Style.Accent).CSS("border-color", p.Style.Accent)
	}
	if !p.SignedIn {
		b.Disabled = true
		b.Attr("title", "Sign in to vote")
	}
	return b
}

func deleteVersionButton(p Props, v domain.Version) *Node {
	if !p.Owner {
		return nil
	}
	return El("button", "delete").Role("delete-version").SetText("Delete").
		On(Action{
			Op:      OpDeleteVersion,
			Target:  v.ID.String(),
			Confirm: fmt.Sprintf("Delete %q and all of its tasks?", v.Name),
		})
}

func deleteItemButton(p Props, it domain.Item) *Node {
	if !p.Owner {
		return nil
	}
	return El("button", "delete").Role("delete-item").SetText("Delete").
		On(Action{Op: OpDeleteItem, Target: it.ID.String()})
}

func editButton(p Props, it domain.Item) *Node {
	if !p.Owner {
		return nil
	}
	return El("button", "edit").Role("edit-item").SetText("Edit").
		On(Action{Op: OpBeginEdit, Target: it.ID.String()})
}

func toggleButton(p Props, v domain.Version) *Node {
	open := p.View.IsExpanded(v.ID)
	label, glyph := "Expand", "+"
	if open {
		label, glyph = "Collapse", "−"
	}
	return El("button", "toggle").Role("toggle").
		Attr("aria-expanded", strconv.FormatBool(open)).
		Attr("aria-label", label).
		SetText(glyph).
		On(Action{Op: OpToggle, Target: v.ID.String()})
}

// editForm replaces an item's display while it is being edited.
func editForm(p Props, it domain.Item) *Node {
	title, desc := p.View.Draft()
	id := it.ID.String()

	save := El("button", "save").Role("save-edit").SetText("Save").
		On(Action{Op: OpSaveEdit, Target: id})
	save.Disabled = !p.View.CanSave()

	return El("form", "edit-form").Role("edit-form").Attr("data-item", id).Add(
		El("input", "edit-title").Role("edit-title").
			Attr("type", "text").
			Attr("name", "title").
			Attr("value", title).
			Attr("placeholder", "Task title").
			On(Action{Op: OpDraftTitle, Target: id}),
		El("textarea", "edit-description").Role("edit-description").
			Attr("name", "description").
			Attr("placeholder", "Description (optional)").
			SetText(desc).
			On(Action{Op: OpDraftDescription, Target: id}),
		El("div", "edit-actions").Add(
			save,
			El("button", "cancel").Role("cancel-edit").SetText("Cancel").
				On(Action{Op: OpCancelEdit, Target: id}),
		),
	)
}

// itemView is the normal display of an item, or its edit form.
func itemView(p Props, it domain.Item, classes ...string) *Node {
	if p.Owner && p.View.IsEditing(it.ID) {
		return El("li", append([]string{"item", "editing"}, classes...)...).
			Role("item").Attr("data-id", it.ID.String()).
			Add(editForm(p, it))
	}

	n := El("li", append([]string{"item"}, classes...)...).
		Role("item").
		Attr("data-id", it.ID.String()).
		Attr("data-status", it.Status.String())
	n.Add(
		El("div", "item-main").Add(
			Text(it.Title, "item-title").Role("item-title"),
			Markdown(it.Description, "item-description"),
		),
		El("div", "item-meta").Add(
			statusBadge(p.Style, it.Status),
			voteButton(p, it),
			statusSelect(p, OpSetItemStatus, it.ID, it.Status),
			editButton(p, it),
			deleteItemButton(p, it),
		),
	)
	return n
}

func itemList(p Props, v domain.Version) *Node {
	ul := El("ul", "items").CSS("gap", px(p.Style.Spacing.Gap))
	for _, it := range v.Items {
		ul.Add(itemView(p, it))
	}
	if len(v.Items) == 0 {
		ul.Add(El("li", "items-empty").SetText("No tasks yet.").CSS("color", p.Style.TextSecondary))
	}
	return ul
}

func progressBar(st theme.ResolvedStyle, v domain.Version) *Node {
	done, total := v.Progress()
	pct := v.ProgressPercent()
	return El("div", "progress").Role("progress").
		Attr("data-done", strconv.Itoa(done)).
		Attr("data-total", strconv.Itoa(total)).
		Attr("role", "progressbar").
		Attr("aria-valuenow", strconv.Itoa(pct)).
		Add(El("div", "progress-fill").
			CSS("width", fmt.Sprintf("%d%%", pct)).
			CSS("background", st.Accent))
}

func progressRatio(v domain.Version) *Node {
	done, total := v.Progress()
	return Text(fmt.Sprintf("%d/%d", done, total), "progress-ratio").Role("ratio")
}

// versionHeader carries the name, status and the version-level controls.
func versionHeader(p Props, v domain.Version) *Node {
	return El("header", "version-header").Add(
		toggleButton(p, v),
		El("h3", "version-name").Role("version-name").SetText(v.Name),
		statusBadge(p.Style, v.Status),
		progressRatio(v),
		statusSelect(p, OpSetVersionStatus, v.ID, v.Status),
		deleteVersionButton(p, v),
	)
}

// versionDescription renders the description, with an inline editor for owners.
func versionDescription(p Props, v domain.Version) *Node {
	desc := Markdown(v.Description, "version-description")
	if !p.Owner {
		return desc
	}
	current := ""
	if v.Description != nil {
		current = *v.Description
	}
	return El("div", "version-description-wrap").Add(
		desc,
		El("textarea", "version-description-edit").Role("edit-version-description").
			Attr("name", "description").
			Attr("placeholder", "Describe this version").
			SetText(current).
			On(Action{Op: OpEditVersionDescription, Target: v.ID.String()}),
	)
}

func addItemForm(p Props, v domain.Version) *Node {
	if !p.Owner {
		return nil
	}
	return El("form", "add-item").Role("add-item").Attr("data-version", v.ID.String()).Add(
		El("input").Attr("type", "text").Attr("name", "title").Attr("placeholder", "New task"),
		El("button").SetText("Add task").
			On(Action{Op: OpAddItem, Target: v.ID.String()}),
	)
}

func addVersionForm(p Props) *Node {
	if !p.Owner {
		return nil
	}
	return El("form", "add-version").Role("add-version").Add(
		El("input").Attr("type", "text").Attr("name", "name").Attr("placeholder", "New version"),
		El("button").SetText("Add version").On(Action{Op: OpAddVersion}),
	)
}

// versionBody is what an expanded version shows under its header.
func versionBody(p Props, v domain.Version) *Node {
	return El("div", "version-body").Role("version-body").Add(
		versionDescription(p, v),
		progressBar(p.Style, v),
		itemList(p, v),
		addItemForm(p, v),
	)
}

// versionBlock is one version as a self-contained block.
func versionBlock(p Props, v domain.Version, classes ...string) *Node {
	n := card(p.Style, append([]string{"version"}, classes...)...).
		Role("version").
		Attr("data-id", v.ID.String()).
		Attr("data-status", v.Status.String()).
		Add(versionHeader(p, v))
	if p.View.IsExpanded(v.ID) {
		n.Add(versionBody(p, v))
	}
	return n
}
