package news

import "strings"

// Field is one editable news attribute with its label in the editors.
type Field struct {
	Key   string
	Label string
}

// Fields lists the whitelisted keys in display order.
var Fields = []Field{
	{Key: "date", Label: "Datum (z.B. 16. Feb. 2026)"},
	{Key: "title", Label: "Titel"},
	{Key: "text", Label: "Text"},
	{Key: "flyer_url", Label: "Flyer URL (optional)"},
	{Key: "flyer_label", Label: "Flyer Label (optional)"},
	{Key: "flyer_text", Label: "Flyer Text (ohne URL)"},
}

// Item is a single news entry. Empty fields are omitted when written.
type Item struct {
	Date       string `json:"date,omitempty"`
	Title      string `json:"title,omitempty"`
	Text       string `json:"text,omitempty"`
	FlyerURL   string `json:"flyer_url,omitempty"`
	FlyerLabel string `json:"flyer_label,omitempty"`
	FlyerText  string `json:"flyer_text,omitempty"`
}

func (it *Item) field(key string) *string {
	switch key {
	case "date":
		return &it.Date
	case "title":
		return &it.Title
	case "text":
		return &it.Text
	case "flyer_url":
		return &it.FlyerURL
	case "flyer_label":
		return &it.FlyerLabel
	case "flyer_text":
		return &it.FlyerText
	}
	return nil
}

// Get returns the value stored under key, or "" for unknown keys.
func (it Item) Get(key string) string {
	if p := it.field(key); p != nil {
		return *p
	}
	return ""
}

// Set stores the trimmed value under key. Unknown keys are ignored.
func (it *Item) Set(key, value string) {
	if p := it.field(key); p != nil {
		*p = strings.TrimSpace(value)
	}
}

// Trimmed returns a copy with surrounding whitespace removed from every field.
func (it Item) Trimmed() Item {
	out := it
	for _, f := range Fields {
		out.Set(f.Key, it.Get(f.Key))
	}
	return out
}

// Summary is the one-line representation used in list views.
func (it Item) Summary() string {
	return it.Date + " | " + it.Title
}
