package model

import "time"

// Announcement audiences.
const (
	AudienceAll      = "all"
	AudienceTeachers = "guru"
	AudienceStudents = "siswa"
	AudienceClass    = "kelas"
)

// Announcement maps table announcements (pengumuman). Publishing
// enqueues a push-notification job; ClassID is set when audience=kelas.
type Announcement struct {
	AnnouncementID string     `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"announcement_id"`
	Title          string     `gorm:"type:varchar(200);not null"                     json:"title"`
	Body           string     `gorm:"type:text;not null"                             json:"body"`
	Audience       string     `gorm:"type:varchar(20);not null;default:'all'"        json:"audience"`
	ClassID        *string    `gorm:"type:uuid"                                      json:"class_id,omitempty"`
	PublishedAt    *time.Time `json:"published_at,omitempty"`
	CreatedBy      *string    `gorm:"type:uuid"                                      json:"created_by,omitempty"`
	SoftDeleteModel
}

func (Announcement) TableName() string { return "announcements" }
