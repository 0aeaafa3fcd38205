package domain

import "time"

// Income is a single income entry as returned by the API.
type Income struct {
	ID        int64     `json:"id"`
	Amount    float64   `json:"amount"`
	Source    string    `json:"source"`
	Date      time.Time `json:"date"`
	UserID    int64     `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Expense is a single expense entry as returned by the API.
type Expense struct {
	ID          int64     `json:"id"`
	Amount      float64   `json:"amount"`
	Category    string    `json:"category"`
	Description string    `json:"description"`
	UserID      int64     `json:"user_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Saving is a savings goal as returned by the API.
type Saving struct {
	ID             int64     `json:"id"`
	Amount         float64   `json:"amount"`
	CurrentAmount  float64   `json:"current_amount"`
	TargetDate     time.Time `json:"target_date"`
	DurationMonths int       `json:"duration_months"`
	Description    string    `json:"description"`
	IsCompleted    bool      `json:"is_completed"`
	UserID         int64     `json:"user_id"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func (s Saving) Progress() float64 {
	if s.Amount <= 0 {
		return 0
	}

	progress := s.CurrentAmount / s.Amount * 100
	if progress > 100 {
		return 100
	}

	return progress
}
