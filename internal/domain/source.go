package domain

import (
	"strconv"
	"strings"
	"time"
)

// SourceRecord is the boundary form of one scraped information source:
// a mod page, forum post, or repository being evaluated for trustworthiness.
// Every field is optional. Pointer fields distinguish "absent" from zero so
// the scorer can degrade to its neutral default instead of misreading
// missing engagement data as zero engagement.
type SourceRecord struct {
	URL         string `json:"url,omitempty"`
	Type        string `json:"type,omitempty"`
	Title       string `json:"title,omitempty"`
	Content     string `json:"content,omitempty"`
	Author      string `json:"author,omitempty"`
	GameVersion string `json:"game_version,omitempty"`
	ContentType string `json:"content_type,omitempty"`

	PublishedDate *time.Time `json:"published_date,omitempty"`
	UpdatedDate   *time.Time `json:"updated_date,omitempty"`

	Endorsements *int     `json:"endorsements,omitempty"`
	Upvotes      *int     `json:"upvotes,omitempty"`
	Likes        *int     `json:"likes,omitempty"`
	Views        *int     `json:"views,omitempty"`
	Comments     *int     `json:"comments,omitempty"`
	Rating       *float64 `json:"rating,omitempty"`

	AuthorEndorsements *int `json:"author_endorsements,omitempty"`
	AuthorPosts        *int `json:"author_posts,omitempty"`
	AuthorKarma        *int `json:"author_karma,omitempty"`

	Verified bool `json:"verified,omitempty"`
}

// LastActivity returns the most recent of the published and updated dates,
// or nil when neither is known.
func (s SourceRecord) LastActivity() *time.Time {
	switch {
	case s.UpdatedDate != nil && s.PublishedDate != nil:
		if s.UpdatedDate.After(*s.PublishedDate) {
			return s.UpdatedDate
		}
		return s.PublishedDate
	case s.UpdatedDate != nil:
		return s.UpdatedDate
	default:
		return s.PublishedDate
	}
}

// Text returns the searchable text of the record: title plus content.
func (s SourceRecord) Text() string {
	return strings.TrimSpace(s.Title + "\n" + s.Content)
}

// ParseSourceRecord converts a loosely-typed scraped record into a
// SourceRecord. Numeric coercion failures and unparseable dates leave the
// field absent; nothing here returns an error.
func ParseSourceRecord(raw map[string]any) SourceRecord {
	return SourceRecord{
		URL:         stringField(raw, "url"),
		Type:        stringField(raw, "type"),
		Title:       stringField(raw, "title"),
		Content:     stringField(raw, "content"),
		Author:      stringField(raw, "author"),
		GameVersion: stringField(raw, "game_version"),
		ContentType: stringField(raw, "content_type"),

		PublishedDate: timeField(raw, "published_date"),
		UpdatedDate:   timeField(raw, "updated_date"),

		Endorsements: intField(raw, "endorsements"),
		Upvotes:      intField(raw, "upvotes"),
		Likes:        intField(raw, "likes"),
		Views:        intField(raw, "views"),
		Comments:     intField(raw, "comments"),
		Rating:       floatField(raw, "rating"),

		AuthorEndorsements: intField(raw, "author_endorsements"),
		AuthorPosts:        intField(raw, "author_posts"),
		AuthorKarma:        intField(raw, "author_karma"),

		Verified: boolField(raw, "verified"),
	}
}

// timeLayouts are tried in order when parsing scraped date strings.
var timeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ParseSourceTime parses a scraped date string, trying the known layouts.
// Returns nil when no layout matches.
func ParseSourceTime(value string) *time.Time {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil
	}
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return &t
		}
	}
	return nil
}

func timeField(raw map[string]any, key string) *time.Time {
	switch v := raw[key].(type) {
	case string:
		return ParseSourceTime(v)
	case time.Time:
		return &v
	default:
		return nil
	}
}

func intField(raw map[string]any, key string) *int {
	switch v := raw[key].(type) {
	case int:
		return &v
	case int64:
		n := int(v)
		return &n
	case float64:
		n := int(v)
		return &n
	case string:
		if n, err := strconv.Atoi(strings.TrimSpace(v)); err == nil {
			return &n
		}
	}
	return nil
}

func floatField(raw map[string]any, key string) *float64 {
	switch v := raw[key].(type) {
	case float64:
		return &v
	case int:
		f := float64(v)
		return &f
	case string:
		if f, err := strconv.ParseFloat(strings.TrimSpace(v), 64); err == nil {
			return &f
		}
	}
	return nil
}

func boolField(raw map[string]any, key string) bool {
	switch v := raw[key].(type) {
	case bool:
		return v
	case string:
		return strings.EqualFold(strings.TrimSpace(v), "true")
	default:
		return false
	}
}
