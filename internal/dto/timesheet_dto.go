package dto

import (
	"github.com/shopspring/decimal"
)

type TimesheetRequest struct {
	EmployeeID uint            `json:"employee_id" validate:"required"`
	ActivityID uint            `json:"activity_id"`
	Hours      decimal.Decimal `json:"hours"`
	Date       string          `json:"date" validate:"required"`
}

type TimesheetResponse struct {
	ID         uint            `json:"id"`
	EmployeeID uint            `json:"employee_id"`
	ActivityID uint            `json:"activity_id"`
	Hours      decimal.Decimal `json:"hours"`
	Date       string          `json:"date"`
}

type BalancesResponse struct {
	VacationAccrued  decimal.Decimal `json:"vacation_accrued"`
	SickTimeAccrued  decimal.Decimal `json:"sick_time_accrued"`
	UnpaidTime       decimal.Decimal `json:"unpaid_time"`
	TotalHoursWorked decimal.Decimal `json:"total_hours_worked"`
}

type EmployeeResponse struct {
	ID        uint    `json:"id"`
	FirstName string  `json:"first_name"`
	LastName  string  `json:"last_name"`
	Position  string  `json:"position"`
	Email     *string `json:"email"`
	StartDate *string `json:"start_date"`
}

type UpdateEmployeeRequest struct {
	FirstName string `json:"first_name" validate:"required"`
	LastName  string `json:"last_name"  validate:"required"`
	Role      string `json:"role"`
	HireDate  string `json:"hire_date"  validate:"omitempty,datetime=2006-01-02"`
}
