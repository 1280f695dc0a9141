package service

import (
	"context"
	"testing"
	"time"

	"github.com/mflath/TImesheets/internal/dto"
	"github.com/mflath/TImesheets/internal/model"
	"github.com/mflath/TImesheets/internal/worker"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type memEmployeeRepo struct {
	employees map[uint]*model.Employee
}

func (m *memEmployeeRepo) FindByID(_ context.Context, id uint) (*model.Employee, error) {
	e, ok := m.employees[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return e, nil
}

func (m *memEmployeeRepo) List(_ context.Context) ([]model.Employee, error) {
	out := make([]model.Employee, 0, len(m.employees))
	for _, e := range m.employees {
		out = append(out, *e)
	}
	return out, nil
}

func (m *memEmployeeRepo) Update(_ context.Context, e *model.Employee) error {
	m.employees[e.ID] = e
	return nil
}

type memTimesheetRepo struct {
	nextID  uint
	entries map[uint]*model.Timesheet
}

func (m *memTimesheetRepo) Create(_ context.Context, t *model.Timesheet) error {
	m.nextID++
	t.ID = m.nextID
	m.entries[t.ID] = t
	return nil
}

func (m *memTimesheetRepo) List(_ context.Context) ([]model.Timesheet, error) {
	out := make([]model.Timesheet, 0, len(m.entries))
	for _, t := range m.entries {
		out = append(out, *t)
	}
	return out, nil
}

func (m *memTimesheetRepo) ListByEmployee(_ context.Context, employeeID uint) ([]model.Timesheet, error) {
	var out []model.Timesheet
	for _, t := range m.entries {
		if t.EmployeeID == employeeID {
			out = append(out, *t)
		}
	}
	return out, nil
}

func (m *memTimesheetRepo) Update(_ context.Context, t *model.Timesheet) error {
	if _, ok := m.entries[t.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	m.entries[t.ID] = t
	return nil
}

func (m *memTimesheetRepo) Delete(_ context.Context, id uint) error {
	if _, ok := m.entries[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(m.entries, id)
	return nil
}

type memVacationRepo struct {
	nextID   uint
	requests map[uint]*model.VacationRequest
}

func (m *memVacationRepo) Create(_ context.Context, v *model.VacationRequest) error {
	m.nextID++
	v.ID = m.nextID
	m.requests[v.ID] = v
	return nil
}

func (m *memVacationRepo) FindByID(_ context.Context, id uint) (*model.VacationRequest, error) {
	v, ok := m.requests[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return v, nil
}

func (m *memVacationRepo) UpdateStatus(_ context.Context, id uint, status string) error {
	v, ok := m.requests[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	v.Status = status
	return nil
}

type timesheetFixture struct {
	svc        TimesheetService
	employees  *memEmployeeRepo
	timesheets *memTimesheetRepo
	vacations  *memVacationRepo
}

func newTimesheetFixture() *timesheetFixture {
	employees := &memEmployeeRepo{employees: map[uint]*model.Employee{
		1: {ID: 1, FirstName: "Ada", LastName: "Lovelace", Position: "engineer",
			VacationAccrued:  decimal.NewFromFloat(40.5),
			SickTimeAccrued:  decimal.NewFromInt(16),
			TotalHoursWorked: decimal.NewFromInt(320),
		},
	}}
	timesheets := &memTimesheetRepo{entries: make(map[uint]*model.Timesheet)}
	vacations := &memVacationRepo{requests: make(map[uint]*model.VacationRequest)}
	svc := NewTimesheetService(timesheets, employees, vacations, worker.NewDispatcher(nil))
	return &timesheetFixture{svc: svc, employees: employees, timesheets: timesheets, vacations: vacations}
}

func today() string {
	return time.Now().Format("2006-01-02")
}

func TestCreateTimesheet(t *testing.T) {
	f := newTimesheetFixture()

	resp, err := f.svc.Create(context.Background(), dto.TimesheetRequest{
		EmployeeID: 1,
		ActivityID: 2,
		Hours:      decimal.NewFromFloat(7.5),
		Date:       today(),
	})
	require.NoError(t, err)
	assert.NotZero(t, resp.ID)
	assert.Equal(t, today(), resp.Date)
	assert.True(t, resp.Hours.Equal(decimal.NewFromFloat(7.5)))
}

func TestCreateTimesheetValidation(t *testing.T) {
	f := newTimesheetFixture()
	ctx := context.Background()

	cases := []struct {
		name string
		req  dto.TimesheetRequest
		want error
	}{
		{
			name: "unknown employee",
			req:  dto.TimesheetRequest{EmployeeID: 99, ActivityID: 1, Hours: decimal.NewFromInt(8), Date: today()},
			want: ErrUnknownEmployee,
		},
		{
			name: "hours above daily maximum",
			req:  dto.TimesheetRequest{EmployeeID: 1, ActivityID: 1, Hours: decimal.NewFromInt(25), Date: today()},
			want: ErrInvalidHours,
		},
		{
			name: "negative hours",
			req:  dto.TimesheetRequest{EmployeeID: 1, ActivityID: 1, Hours: decimal.NewFromInt(-1), Date: today()},
			want: ErrInvalidHours,
		},
		{
			name: "date in the past",
			req:  dto.TimesheetRequest{EmployeeID: 1, ActivityID: 1, Hours: decimal.NewFromInt(8), Date: "2020-01-01"},
			want: ErrInvalidDate,
		},
		{
			name: "unparseable date",
			req:  dto.TimesheetRequest{EmployeeID: 1, ActivityID: 1, Hours: decimal.NewFromInt(8), Date: "01/02/2026"},
			want: ErrInvalidDate,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := f.svc.Create(ctx, tc.req)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestUpdateAndDeleteTimesheet(t *testing.T) {
	f := newTimesheetFixture()
	ctx := context.Background()

	resp, err := f.svc.Create(ctx, dto.TimesheetRequest{
		EmployeeID: 1, ActivityID: 1, Hours: decimal.NewFromInt(8), Date: today(),
	})
	require.NoError(t, err)

	err = f.svc.Update(ctx, resp.ID, dto.TimesheetRequest{
		EmployeeID: 1, ActivityID: 3, Hours: decimal.NewFromInt(6), Date: today(),
	})
	require.NoError(t, err)
	assert.Equal(t, uint(3), f.timesheets.entries[resp.ID].ActivityID)

	assert.ErrorIs(t, f.svc.Delete(ctx, 999), ErrNotFound)
	require.NoError(t, f.svc.Delete(ctx, resp.ID))
}

func TestBalances(t *testing.T) {
	f := newTimesheetFixture()

	resp, err := f.svc.Balances(context.Background(), 1)
	require.NoError(t, err)
	assert.True(t, resp.VacationAccrued.Equal(decimal.NewFromFloat(40.5)))
	assert.True(t, resp.TotalHoursWorked.Equal(decimal.NewFromInt(320)))

	_, err = f.svc.Balances(context.Background(), 42)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestVacationRequestLifecycle(t *testing.T) {
	f := newTimesheetFixture()
	ctx := context.Background()

	resp, err := f.svc.SubmitVacationRequest(ctx, dto.VacationRequestCreate{
		EmployeeID:    1,
		VacationStart: "2026-09-07",
		VacationEnd:   "2026-09-11",
	})
	require.NoError(t, err)
	assert.Equal(t, model.VacationPending, resp.Status)

	// Deciding the request flips the status. The fixture employee has no email
	// address, so no notification job is enqueued.
	require.NoError(t, f.svc.DecideVacationRequest(ctx, resp.ID, model.VacationApproved))
	assert.Equal(t, model.VacationApproved, f.vacations.requests[resp.ID].Status)

	assert.ErrorIs(t, f.svc.DecideVacationRequest(ctx, 999, model.VacationDenied), ErrNotFound)
}

func TestSubmitVacationRequestUnknownEmployee(t *testing.T) {
	f := newTimesheetFixture()

	_, err := f.svc.SubmitVacationRequest(context.Background(), dto.VacationRequestCreate{
		EmployeeID:    42,
		VacationStart: "2026-09-07",
		VacationEnd:   "2026-09-11",
	})
	assert.ErrorIs(t, err, ErrUnknownEmployee)
}

func TestUpdateEmployee(t *testing.T) {
	f := newTimesheetFixture()
	ctx := context.Background()

	err := f.svc.UpdateEmployee(ctx, 1, dto.UpdateEmployeeRequest{
		FirstName: "Ada",
		LastName:  "King",
		Role:      "lead engineer",
		HireDate:  "2024-03-01",
	})
	require.NoError(t, err)

	e := f.employees.employees[1]
	assert.Equal(t, "King", e.LastName)
	assert.Equal(t, "lead engineer", e.Position)
	require.NotNil(t, e.StartDate)
	assert.Equal(t, "2024-03-01", e.StartDate.Format("2006-01-02"))

	assert.ErrorIs(t, f.svc.UpdateEmployee(ctx, 7, dto.UpdateEmployeeRequest{}), ErrNotFound)
}
