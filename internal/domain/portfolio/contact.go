package portfolio

import (
	"encoding/json"
	"time"
)

const (
	ContactPending = "pending"
	ContactRead    = "read"
	ContactReplied = "replied"
)

func ContactStatuses() []string {
	return []string{ContactPending, ContactRead, ContactReplied}
}

func IsContactStatus(v string) bool {
	for _, s := range ContactStatuses() {
		if v == s {
			return true
		}
	}
	return false
}

const (
	NameMinLen    = 2
	NameMaxLen    = 100
	MessageMinLen = 10
	MessageMaxLen = 1000

	shortMessageLimit = 100
	shortMessageKeep  = 98
)

type ContactSubmission struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string    `gorm:"column:name;size:100;not null" json:"name"`
	Email     string    `gorm:"column:email;size:255;not null;index" json:"email"`
	Message   string    `gorm:"column:message;type:text;not null" json:"message"`
	Status    string    `gorm:"column:status;size:16;not null;default:pending;index" json:"status"`
	CreatedAt time.Time `gorm:"not null;index" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}

func (ContactSubmission) TableName() string { return "contact_submissions" }

func (c ContactSubmission) IsPending() bool { return c.Status == ContactPending }
func (c ContactSubmission) IsRead() bool    { return c.Status == ContactRead }
func (c ContactSubmission) IsReplied() bool { return c.Status == ContactReplied }

// ShortMessage is the list preview of the message.
func (c ContactSubmission) ShortMessage() string {
	r := []rune(c.Message)
	if len(r) <= shortMessageLimit {
		return c.Message
	}
	return string(r[:shortMessageKeep]) + "..."
}

type contactView struct {
	ID           uint      `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Message      string    `json:"message"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
	ShortMessage string    `json:"short_message"`
}

func (c ContactSubmission) MarshalJSON() ([]byte, error) {
	return json.Marshal(contactView{
		ID:           c.ID,
		Name:         c.Name,
		Email:        c.Email,
		Message:      c.Message,
		Status:       c.Status,
		CreatedAt:    c.CreatedAt,
		UpdatedAt:    c.UpdatedAt,
		ShortMessage: c.ShortMessage(),
	})
}
