package domain

import "time"

// PostStatus represents the current lifecycle state of a post
type PostStatus string

const (
	PostStatusDraft     PostStatus = "draft"
	PostStatusScheduled PostStatus = "scheduled"
	// PostStatusPublishing marks a post claimed by a running publisher
	// invocation. It is transient: the post either moves to published or
	// is released back to scheduled with a publish error.
	PostStatusPublishing PostStatus = "publishing"
	PostStatusPublished  PostStatus = "published"
)

// Post is one schedulable unit of content
type Post struct {
	ID          string     `json:"id" gorm:"primaryKey"`
	UserID      string     `json:"user_id" gorm:"index;not null"`
	Title       string     `json:"title" gorm:"not null"`
	Description string     `json:"description,omitempty"`
	Link        string     `json:"link,omitempty"`
	Hashtags    []string   `json:"hashtags" gorm:"serializer:json"`
	ImageData   string     `json:"image_data,omitempty"` // base64 payload, optionally with a data-URI prefix
	ScheduledAt *time.Time `json:"scheduled_date,omitempty" gorm:"index"`
	Status      PostStatus `json:"status" gorm:"index;default:draft"`

	PublishError    string     `json:"publish_error,omitempty"`
	PinterestPostID string     `json:"pinterest_post_id,omitempty"`
	PublishedAt     *time.Time `json:"published_at,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// StatusForSchedule derives draft/scheduled from the presence of a
// scheduled date. Published posts keep their status; edits never regress
// them.
func StatusForSchedule(scheduledAt *time.Time) PostStatus {
	if scheduledAt != nil {
		return PostStatusScheduled
	}
	return PostStatusDraft
}

// AddHashtag appends a tag, suppressing exact duplicates
func (p *Post) AddHashtag(tag string) {
	for _, existing := range p.Hashtags {
		if existing == tag {
			return
		}
	}
	p.Hashtags = append(p.Hashtags, tag)
}

// DedupeHashtags removes exact duplicates while preserving order
func DedupeHashtags(tags []string) []string {
	seen := make(map[string]bool, len(tags))
	out := make([]string, 0, len(tags))
	for _, tag := range tags {
		if seen[tag] {
			continue
		}
		seen[tag] = true
		out = append(out, tag)
	}
	return out
}
