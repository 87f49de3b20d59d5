package models

import (
	"time"
)

// Priority values accepted for a task.
const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
)

// DefaultCategory is the category assigned when a task is created without one.
const DefaultCategory = "pessoal"

type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	PasswordHash string    `json:"-"`
	Photo        *string   `json:"photo"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

type Task struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Completed   bool       `json:"completed"`
	Priority    string     `json:"priority"`
	Category    string     `json:"category"`
	DueDate     *time.Time `json:"dueDate"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
	UserID      string     `json:"userId"`
}

type LifeArea struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Score       int       `json:"score"`
	Color       string    `json:"color"`
	Icon        string    `json:"icon"`
	LastUpdated time.Time `json:"lastUpdated"`
	UserID      string    `json:"userId"`
}

// DefaultLifeAreas returns the 8 canonical wheel-of-life areas for a new
// user. Ids are fixed slugs; every area starts at score 5.
func DefaultLifeAreas(userID string, now time.Time) []LifeArea {
	defaults := []struct {
		id, name, color, icon string
	}{
		{"health", "Saúde", "#10B981", "Heart"},
		{"career", "Carreira", "#3B82F6", "Briefcase"},
		{"relationships", "Relacionamentos", "#EC4899", "Users"},
		{"finances", "Finanças", "#F59E0B", "DollarSign"},
		{"personal", "Desenvolvimento Pessoal", "#8B5CF6", "BookOpen"},
		{"leisure", "Lazer", "#06B6D4", "Gamepad2"},
		{"family", "Família", "#EF4444", "Home"},
		{"spirituality", "Espiritualidade", "#84CC16", "Sun"},
	}

	areas := make([]LifeArea, 0, len(defaults))
	for _, d := range defaults {
		areas = append(areas, LifeArea{
			ID:          d.id,
			Name:        d.name,
			Score:       5,
			Color:       d.color,
			Icon:        d.icon,
			LastUpdated: now,
			UserID:      userID,
		})
	}
	return areas
}

// ValidPriority reports whether p is one of low, medium, high.
func ValidPriority(p string) bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	default:
		return false
	}
}
