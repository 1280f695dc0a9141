package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/mflath/TImesheets/internal/dto"
	"github.com/mflath/TImesheets/internal/model"
	"github.com/mflath/TImesheets/internal/repository"
	"github.com/mflath/TImesheets/internal/worker"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const dateLayout = "2006-01-02"

var maxDailyHours = decimal.NewFromInt(24)

// TimesheetService covers timesheet entries, employee balances, and vacation
// requests.
type TimesheetService interface {
	List(ctx context.Context) ([]dto.TimesheetResponse, error)
	Create(ctx context.Context, req dto.TimesheetRequest) (dto.TimesheetResponse, error)
	Update(ctx context.Context, id uint, req dto.TimesheetRequest) error
	Delete(ctx context.Context, id uint) error
	Balances(ctx context.Context, employeeID uint) (*dto.BalancesResponse, error)
	ListEmployees(ctx context.Context) ([]dto.EmployeeResponse, error)
	UpdateEmployee(ctx context.Context, id uint, req dto.UpdateEmployeeRequest) error
	SubmitVacationRequest(ctx context.Context, req dto.VacationRequestCreate) (dto.VacationRequestResponse, error)
	DecideVacationRequest(ctx context.Context, id uint, status string) error
}

type timesheetService struct {
	timesheets repository.TimesheetRepository
	employees  repository.EmployeeRepository
	vacations  repository.VacationRepository
	dispatcher *worker.Dispatcher
}

func NewTimesheetService(
	timesheets repository.TimesheetRepository,
	employees repository.EmployeeRepository,
	vacations repository.VacationRepository,
	dispatcher *worker.Dispatcher,
) TimesheetService {
	return &timesheetService{
		timesheets: timesheets,
		employees:  employees,
		vacations:  vacations,
		dispatcher: dispatcher,
	}
}

func mapTimesheet(t model.Timesheet) dto.TimesheetResponse {
	return dto.TimesheetResponse{
		ID:         t.ID,
		EmployeeID: t.EmployeeID,
		ActivityID: t.ActivityID,
		Hours:      t.Hours,
		Date:       t.Date.Format(dateLayout),
	}
}

func (s *timesheetService) List(ctx context.Context) ([]dto.TimesheetResponse, error) {
	list, err := s.timesheets.List(ctx)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.TimesheetResponse, 0, len(list))
	for _, t := range list {
		resp = append(resp, mapTimesheet(t))
	}
	return resp, nil
}

// validateEntry enforces the timesheet input rules: the employee must exist,
// hours must be in [0, 24], and the date must be today or later.
func (s *timesheetService) validateEntry(ctx context.Context, req dto.TimesheetRequest) (time.Time, error) {
	if _, err := s.employees.FindByID(ctx, req.EmployeeID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return time.Time{}, ErrUnknownEmployee
		}
		return time.Time{}, err
	}

	if req.Hours.IsNegative() || req.Hours.GreaterThan(maxDailyHours) {
		return time.Time{}, ErrInvalidHours
	}

	date, err := time.Parse(dateLayout, req.Date)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	today, _ := time.Parse(dateLayout, time.Now().Format(dateLayout))
	if date.Before(today) {
		return time.Time{}, ErrInvalidDate
	}
	return date, nil
}

func (s *timesheetService) Create(ctx context.Context, req dto.TimesheetRequest) (dto.TimesheetResponse, error) {
	date, err := s.validateEntry(ctx, req)
	if err != nil {
		return dto.TimesheetResponse{}, err
	}

	entry := &model.Timesheet{
		EmployeeID: req.EmployeeID,
		ActivityID: req.ActivityID,
		Hours:      req.Hours,
		Date:       date,
	}
	if err := s.timesheets.Create(ctx, entry); err != nil {
		return dto.TimesheetResponse{}, err
	}
	log.Info().Uint("employee_id", req.EmployeeID).Str("date", req.Date).Msg("timesheet created")
	return mapTimesheet(*entry), nil
}

func (s *timesheetService) Update(ctx context.Context, id uint, req dto.TimesheetRequest) error {
	date, err := s.validateEntry(ctx, req)
	if err != nil {
		return err
	}
	entry := &model.Timesheet{
		ID:         id,
		EmployeeID: req.EmployeeID,
		ActivityID: req.ActivityID,
		Hours:      req.Hours,
		Date:       date,
	}
	return notFoundOr(s.timesheets.Update(ctx, entry))
}

func (s *timesheetService) Delete(ctx context.Context, id uint) error {
	return notFoundOr(s.timesheets.Delete(ctx, id))
}

func (s *timesheetService) Balances(ctx context.Context, employeeID uint) (*dto.BalancesResponse, error) {
	e, err := s.employees.FindByID(ctx, employeeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &dto.BalancesResponse{
		VacationAccrued:  e.VacationAccrued,
		SickTimeAccrued:  e.SickTimeAccrued,
		UnpaidTime:       e.UnpaidTime,
		TotalHoursWorked: e.TotalHoursWorked,
	}, nil
}

func (s *timesheetService) ListEmployees(ctx context.Context) ([]dto.EmployeeResponse, error) {
	list, err := s.employees.List(ctx)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.EmployeeResponse, 0, len(list))
	for _, e := range list {
		var start *string
		if e.StartDate != nil {
			v := e.StartDate.Format(dateLayout)
			start = &v
		}
		resp = append(resp, dto.EmployeeResponse{
			ID:        e.ID,
			FirstName: e.FirstName,
			LastName:  e.LastName,
			Position:  e.Position,
			Email:     e.Email,
			StartDate: start,
		})
	}
	return resp, nil
}

func (s *timesheetService) UpdateEmployee(ctx context.Context, id uint, req dto.UpdateEmployeeRequest) error {
	e, err := s.employees.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	e.FirstName = req.FirstName
	e.LastName = req.LastName
	if req.Role != "" {
		e.Position = req.Role
	}
	if req.HireDate != "" {
		start, err := time.Parse(dateLayout, req.HireDate)
		if err != nil {
			return ErrInvalidDate
		}
		e.StartDate = &start
	}
	return s.employees.Update(ctx, e)
}

func (s *timesheetService) SubmitVacationRequest(ctx context.Context, req dto.VacationRequestCreate) (dto.VacationRequestResponse, error) {
	if _, err := s.employees.FindByID(ctx, req.EmployeeID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.VacationRequestResponse{}, ErrUnknownEmployee
		}
		return dto.VacationRequestResponse{}, err
	}

	start, _ := time.Parse(dateLayout, req.VacationStart)
	end, _ := time.Parse(dateLayout, req.VacationEnd)

	v := &model.VacationRequest{
		EmployeeID:    req.EmployeeID,
		RequestDate:   time.Now(),
		VacationStart: start,
		VacationEnd:   end,
		Status:        model.VacationPending,
	}
	if err := s.vacations.Create(ctx, v); err != nil {
		return dto.VacationRequestResponse{}, err
	}
	log.Info().Uint("employee_id", req.EmployeeID).Msg("vacation request submitted")
	return dto.VacationRequestResponse{
		ID:            v.ID,
		EmployeeID:    v.EmployeeID,
		VacationStart: req.VacationStart,
		VacationEnd:   req.VacationEnd,
		Status:        v.Status,
	}, nil
}

func (s *timesheetService) DecideVacationRequest(ctx context.Context, id uint, status string) error {
	if err := notFoundOr(s.vacations.UpdateStatus(ctx, id, status)); err != nil {
		return err
	}

	// Notify the employee asynchronously — a queue failure must not undo the
	// decision, so it is logged and dropped.
	v, err := s.vacations.FindByID(ctx, id)
	if err != nil || v.Employee == nil || v.Employee.Email == nil {
		return nil
	}
	payload := worker.NotificationJobPayload{
		ToEmail: *v.Employee.Email,
		Subject: fmt.Sprintf("Vacation request %s", status),
		Body: fmt.Sprintf("Your vacation request for %s to %s has been %s.",
			v.VacationStart.Format(dateLayout), v.VacationEnd.Format(dateLayout), status),
	}
	if err := s.dispatcher.EnqueueNotification(ctx, payload); err != nil {
		log.Error().Err(err).Uint("request_id", id).Msg("failed to enqueue vacation notification")
	}
	return nil
}
