package api

import (
	"time"

	"github.com/edenis00/fintrack-cli/internal/domain"
)

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	AccessToken string             `json:"access_token"`
	TokenType   string             `json:"token_type"`
	ExpiresIn   int64              `json:"expires_in"`
	ExpiresAt   time.Time          `json:"expires_at"`
	User        domain.UserProfile `json:"user"`
}

type SignupRequest struct {
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password" validate:"required,min=8"`
	FirstName   string `json:"first_name" validate:"required"`
	LastName    string `json:"last_name" validate:"required"`
	PhoneNumber string `json:"phone_number,omitempty"`
}

type ProfileUpdate struct {
	Email         *string `json:"email,omitempty" validate:"omitempty,email"`
	FirstName     *string `json:"first_name,omitempty"`
	LastName      *string `json:"last_name,omitempty"`
	PhoneNumber   *string `json:"phone_number,omitempty"`
	ProfileImgURL *string `json:"profile_img_url,omitempty"`
}

type IncomeCreate struct {
	Amount float64    `json:"amount" validate:"required,gt=0"`
	Source string     `json:"source" validate:"required"`
	Date   *time.Time `json:"date,omitempty"`
}

type IncomeUpdate struct {
	Amount *float64   `json:"amount,omitempty" validate:"omitempty,gt=0"`
	Source *string    `json:"source,omitempty"`
	Date   *time.Time `json:"date,omitempty"`
}

type ExpenseCreate struct {
	Amount      float64 `json:"amount" validate:"required,gt=0"`
	Category    string  `json:"category" validate:"required"`
	Description string  `json:"description" validate:"required"`
}

type ExpenseUpdate struct {
	Amount      *float64 `json:"amount,omitempty" validate:"omitempty,gt=0"`
	Category    *string  `json:"category,omitempty"`
	Description *string  `json:"description,omitempty"`
}

type SavingCreate struct {
	Amount         float64   `json:"amount" validate:"required,gt=0"`
	CurrentAmount  float64   `json:"current_amount" validate:"gte=0"`
	TargetDate     time.Time `json:"target_date" validate:"required"`
	DurationMonths int       `json:"duration_months" validate:"required,gt=0"`
	Description    string    `json:"description" validate:"required"`
	IsCompleted    bool      `json:"is_completed"`
}

type SavingUpdate struct {
	Amount         *float64   `json:"amount,omitempty" validate:"omitempty,gt=0"`
	CurrentAmount  *float64   `json:"current_amount,omitempty" validate:"omitempty,gte=0"`
	TargetDate     *time.Time `json:"target_date,omitempty"`
	DurationMonths *int       `json:"duration_months,omitempty" validate:"omitempty,gt=0"`
	Description    *string    `json:"description,omitempty"`
	IsCompleted    *bool      `json:"is_completed,omitempty"`
}

// TotalExpenses is the bare payload of GET /expenses/total.
type TotalExpenses struct {
	UserID        int64   `json:"user_id"`
	TotalExpenses float64 `json:"total_expenses"`
}

// envelope is the server's SuccessResponse wrapper. Nearly every
// endpoint answers with it; login, current-user and the expenses total
// are the bare exceptions.
type envelope[T any] struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    T      `json:"data"`
}

type DashboardStats struct {
	TotalUsers    int64 `json:"total_users"`
	TotalExpenses int64 `json:"total_expenses"`
	TotalIncome   int64 `json:"total_income"`
	TotalSavings  int64 `json:"total_savings"`
}

type AdminUserUpdate struct {
	Role       *domain.Role `json:"role,omitempty"`
	IsActive   *bool        `json:"is_active,omitempty"`
	IsVerified *bool        `json:"is_verified,omitempty"`
	Balance    *float64     `json:"balance,omitempty"`
}

type SavingsSummary struct {
	TotalSavings int64   `json:"total_savings"`
	TotalAmount  float64 `json:"total_amount"`
}

type IncomeSummary struct {
	TotalIncome int64   `json:"total_income"`
	TotalAmount float64 `json:"total_amount"`
}

type ExpensesSummary struct {
	TotalExpenses int64   `json:"total_expenses"`
	TotalAmount   float64 `json:"total_amount"`
}
