package whatsapp

// Builder-side message shapes, mapped onto the Cloud API wire format by the
// client. Kept transport-agnostic so services can construct menus without
// knowing Graph API details.

// Button is one quick-reply button (max 3 per message on WhatsApp)
type Button struct {
	ID    string
	Title string
}

// ButtonMessage is an interactive reply-button message
type ButtonMessage struct {
	Body           string
	HeaderImageURL string // optional image header
	Buttons        []Button
}

// ListRow is one selectable row of a list message
type ListRow struct {
	ID          string
	Title       string
	Description string
}

// ListSection groups rows under a section title
type ListSection struct {
	Title string
	Rows  []ListRow
}

// ListMessage is an interactive list message (max 10 rows total)
type ListMessage struct {
	Body        string
	ButtonLabel string
	Sections    []ListSection
}

// RowTitleMaxLen is the Cloud API limit for list row titles
const RowTitleMaxLen = 24

// TruncateTitle shortens a row title to the Cloud API limit, counting runes
// so Devanagari text is not cut mid-character.
func TruncateTitle(title string) string {
	runes := []rune(title)
	if len(runes) <= RowTitleMaxLen {
		return title
	}
	return string(runes[:RowTitleMaxLen])
}

// --- Cloud API wire format ---

type outboundMessage struct {
	MessagingProduct string              `json:"messaging_product"`
	To               string              `json:"to"`
	Type             string              `json:"type,omitempty"`
	Text             *textPayload        `json:"text,omitempty"`
	Interactive      *interactivePayload `json:"interactive,omitempty"`
}

type textPayload struct {
	Body string `json:"body"`
}

type interactivePayload struct {
	Type   string         `json:"type"` // "button" | "list"
	Header *headerPayload `json:"header,omitempty"`
	Body   bodyPayload    `json:"body"`
	Action actionPayload  `json:"action"`
}

type headerPayload struct {
	Type  string        `json:"type"`
	Image *imagePayload `json:"image,omitempty"`
}

type imagePayload struct {
	Link string `json:"link"`
}

type bodyPayload struct {
	Text string `json:"text"`
}

type actionPayload struct {
	Buttons  []buttonPayload  `json:"buttons,omitempty"`
	Button   string           `json:"button,omitempty"`
	Sections []sectionPayload `json:"sections,omitempty"`
}

type buttonPayload struct {
	Type  string       `json:"type"`
	Reply replyPayload `json:"reply"`
}

type replyPayload struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

type sectionPayload struct {
	Title string       `json:"title"`
	Rows  []rowPayload `json:"rows"`
}

type rowPayload struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

func (m ButtonMessage) toInteractive() *interactivePayload {
	payload := &interactivePayload{
		Type: "button",
		Body: bodyPayload{Text: m.Body},
	}
	if m.HeaderImageURL != "" {
		payload.Header = &headerPayload{
			Type:  "image",
			Image: &imagePayload{Link: m.HeaderImageURL},
		}
	}
	for _, b := range m.Buttons {
		payload.Action.Buttons = append(payload.Action.Buttons, buttonPayload{
			Type:  "reply",
			Reply: replyPayload{ID: b.ID, Title: b.Title},
		})
	}
	return payload
}

func (m ListMessage) toInteractive() *interactivePayload {
	payload := &interactivePayload{
		Type: "list",
		Body: bodyPayload{Text: m.Body},
	}
	payload.Action.Button = m.ButtonLabel
	for _, s := range m.Sections {
		section := sectionPayload{Title: s.Title}
		for _, r := range s.Rows {
			section.Rows = append(section.Rows, rowPayload{
				ID:          r.ID,
				Title:       TruncateTitle(r.Title),
				Description: r.Description,
			})
		}
		payload.Action.Sections = append(payload.Action.Sections, section)
	}
	return payload
}
