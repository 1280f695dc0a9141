package dto

type VacationRequestCreate struct {
	EmployeeID    uint   `json:"employee_id"    validate:"required"`
	VacationStart string `json:"vacation_start" validate:"required,datetime=2006-01-02"`
	VacationEnd   string `json:"vacation_end"   validate:"required,datetime=2006-01-02"`
}

type VacationDecisionRequest struct {
	Status string `json:"status" validate:"required,oneof=approved denied"`
}

type VacationRequestResponse struct {
	ID            uint   `json:"id"`
	EmployeeID    uint   `json:"employee_id"`
	VacationStart string `json:"vacation_start"`
	VacationEnd   string `json:"vacation_end"`
	Status        string `json:"status"`
}
