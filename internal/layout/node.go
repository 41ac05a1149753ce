// Package layout renders a roadmap section into an element tree.
//
// Every layout variant is a Strategy that turns the same data (versions with
// nested items, the resolved style, the viewer's ViewState) into a *Node tree.
// Interactive elements carry a declarative Action instead of a callback; the
// transport layer dispatches actions to the roadmap and forum services.
package layout

import "strings"

// Op names an interaction a rendered affordance triggers.
type Op string

const (
	OpToggle                 Op = "toggle"
	OpSetVersionStatus       Op = "set_version_status"
	OpSetItemStatus          Op = "set_item_status"
	OpDeleteVersion          Op = "delete_version"
	OpDeleteItem             Op = "delete_item"
	OpBeginEdit              Op = "begin_edit"
	OpDraftTitle             Op = "draft_title"
	OpDraftDescription       Op = "draft_description"
	OpSaveEdit               Op = "save_edit"
	OpCancelEdit             Op = "cancel_edit"
	OpVote                   Op = "vote"
	OpAddVersion             Op = "add_version"
	OpAddItem                Op = "add_item"
	OpEditVersionDescription Op = "edit_version_description"
	OpSpotlightPrev          Op = "spotlight_prev"
	OpSpotlightNext          Op = "spotlight_next"
	OpSpotlightGoto          Op = "spotlight_goto"
	OpOrbitSelect            Op = "orbit_select"

	OpOpenThread       Op = "open_thread"
	OpCloseThread      Op = "close_thread"
	OpSortSuggestions  Op = "sort_suggestions"
	OpUpvote           Op = "upvote"
	OpReplyDraft       Op = "reply_draft"
	OpSubmitReply      Op = "submit_reply"
	OpSubmitSuggestion Op = "submit_suggestion"
	OpSuggestionStatus Op = "set_suggestion_status"
	OpDeleteSuggestion Op = "delete_suggestion"
)

// Action is attached to an affordance node. Target is usually an entity id.
// For inputs and selects the client sends the element's current value in
// place of Value. Confirm, when set, is a prompt the client must accept
// before sending the action.
type Action struct {
	Op      Op     `json:"op"`
	Target  string `json:"target,omitempty"`
	Value   string `json:"value,omitempty"`
	Confirm string `json:"confirm,omitempty"`
}

// Event is an Action sent back by a client. Fields carries the values of
// the form inputs next to the affordance; Confirmed is set once the user
// accepted the action's confirmation prompt.
type Event struct {
	Action
	Fields    map[string]string `json:"fields,omitempty"`
	Confirmed bool              `json:"confirmed,omitempty"`
}

// Input returns the named form field, falling back to the action value.
func (e Event) Input(name string) string {
	if v, ok := e.Fields[name]; ok {
		return v
	}
	return e.Value
}

// Node is one element of the rendered tree.
type Node struct {
	Tag      string
	Classes  []string
	Attrs    map[string]string
	Style    map[string]string
	Text     string
	Raw      string // pre-rendered trusted HTML, emitted after Text
	Action   *Action
	Disabled bool
	Children []*Node
}

// El creates an element with the given classes.
func El(tag string, classes ...string) *Node {
	return &Node{Tag: tag, Classes: classes}
}

// Text creates a span holding text.
func Text(s string, classes ...string) *Node {
	n := El("span", classes...)
	n.Text = s
	return n
}

// Add appends children, skipping nil ones, and returns n.
func (n *Node) Add(children ...*Node) *Node {
	for _, c := range children {
		if c != nil {
			n.Children = append(n.Children, c)
		}
	}
	return n
}

// Attr sets an attribute and returns n.
func (n *Node) Attr(key, value string) *Node {
	if n.Attrs == nil {
		n.Attrs = make(map[string]string)
	}
	n.Attrs[key] = value
	return n
}

// Role sets the data-role attribute used by clients and tests to locate
// affordances independent of styling classes.
func (n *Node) Role(role string) *Node {
	return n.Attr("data-role", role)
}

// CSS sets an inline style property and returns n.
func (n *Node) CSS(prop, value string) *Node {
	if value == "" {
		return n
	}
	if n.Style == nil {
		n.Style = make(map[string]string)
	}
	n.Style[prop] = value
	return n
}

// Class appends classes and returns n.
func (n *Node) Class(classes ...string) *Node {
	n.Classes = append(n.Classes, classes...)
	return n
}

// On attaches an action and returns n.
func (n *Node) On(a Action) *Node {
	n.Action = &a
	return n
}

// SetText sets the text content and returns n.
func (n *Node) SetText(s string) *Node {
	n.Text = s
	return n
}

// HasClass reports whether n carries the class.
func (n *Node) HasClass(class string) bool {
	for _, c := range n.Classes {
		if c == class {
			return true
		}
	}
	return false
}

// Data returns the value of the data-<key> attribute.
func (n *Node) Data(key string) string {
	return n.Attrs["data-"+key]
}

// Find returns the first node in depth-first order that matches.
func (n *Node) Find(match func(*Node) bool) *Node {
	if n == nil {
		return nil
	}
	if match(n) {
		return n
	}
	for _, c := range n.Children {
		if f := c.Find(match); f != nil {
			return f
		}
	}
	return nil
}

// FindAll returns every node in depth-first order that matches.
func (n *Node) FindAll(match func(*Node) bool) []*Node {
	var out []*Node
	n.walk(func(x *Node) {
		if match(x) {
			out = append(out, x)
		}
	})
	return out
}

func (n *Node) walk(fn func(*Node)) {
	if n == nil {
		return
	}
	fn(n)
	for _, c := range n.Children {
		c.walk(fn)
	}
}

// TextContent concatenates the text of n and all descendants.
func (n *Node) TextContent() string {
	var b strings.Builder
	n.walk(func(x *Node) {
		b.WriteString(x.Text)
	})
	return b.String()
}

// ByRole matches nodes with the given data-role.
func ByRole(role string) func(*Node) bool {
	return func(n *Node) bool { return n.Data("role") == role }
}

// ByOp matches nodes whose action has the given op.
func ByOp(op Op) func(*Node) bool {
	return func(n *Node) bool { return n.Action != nil && n.Action.Op == op }
}

// ByClass matches nodes carrying the class.
func ByClass(class string) func(*Node) bool {
	return func(n *Node) bool { return n.HasClass(class) }
}
