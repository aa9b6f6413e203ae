package services

import (
	"context"
	"time"

	"github.com/rahulm/campusdesk/internal/app/models"
	"github.com/rahulm/campusdesk/internal/app/repositories"
	"github.com/rahulm/campusdesk/internal/pkg/apperrors"
)

// In-memory store implementations backing the service tests.

type fakeAccountStore struct {
	accounts map[int64]*models.Account
	nextID   int64
}

func newFakeAccountStore() *fakeAccountStore {
	return &fakeAccountStore{accounts: make(map[int64]*models.Account), nextID: 1}
}

func (f *fakeAccountStore) Create(_ context.Context, _ repositories.Querier, account *models.Account) (int64, error) {
	for _, existing := range f.accounts {
		if existing.Username == account.Username {
			return 0, apperrors.ErrUsernameAlreadyExists
		}
	}
	id := f.nextID
	f.nextID++
	stored := *account
	stored.ID = id
	stored.CreatedAt = time.Now()
	stored.UpdatedAt = stored.CreatedAt
	f.accounts[id] = &stored
	return id, nil
}

func (f *fakeAccountStore) GetByID(_ context.Context, id int64) (*models.Account, error) {
	account, ok := f.accounts[id]
	if !ok {
		return nil, apperrors.ErrAccountNotFound
	}
	copied := *account
	return &copied, nil
}

func (f *fakeAccountStore) GetActiveByUsernameAndRole(_ context.Context, username string, role models.Role) (*models.Account, error) {
	for _, account := range f.accounts {
		if account.Username == username && account.Role == role && account.IsActive {
			copied := *account
			return &copied, nil
		}
	}
	return nil, apperrors.ErrAccountNotFound
}

func (f *fakeAccountStore) List(_ context.Context, role string, isActive *bool) ([]*models.Account, error) {
	var out []*models.Account
	for _, account := range f.accounts {
		if role != "" && string(account.Role) != role {
			continue
		}
		if isActive != nil && account.IsActive != *isActive {
			continue
		}
		copied := *account
		out = append(out, &copied)
	}
	return out, nil
}

func (f *fakeAccountStore) SetActive(_ context.Context, id int64, active bool) error {
	account, ok := f.accounts[id]
	if !ok {
		return apperrors.ErrAccountNotFound
	}
	account.IsActive = active
	return nil
}

func (f *fakeAccountStore) SetActiveByStudentID(_ context.Context, _ repositories.Querier, studentID int64, active bool) error {
	for _, account := range f.accounts {
		if account.StudentID != nil && *account.StudentID == studentID {
			account.IsActive = active
		}
	}
	return nil
}

func (f *fakeAccountStore) UpdatePassword(_ context.Context, id int64, passwordHash string) error {
	account, ok := f.accounts[id]
	if !ok {
		return apperrors.ErrAccountNotFound
	}
	account.PasswordHash = passwordHash
	return nil
}

func (f *fakeAccountStore) UpdateUsernameByStudentID(_ context.Context, _ repositories.Querier, studentID int64, username string) error {
	for _, account := range f.accounts {
		if account.StudentID != nil && *account.StudentID == studentID {
			account.Username = username
		}
	}
	return nil
}

func (f *fakeAccountStore) UpdateUsernameByStaffID(_ context.Context, _ repositories.Querier, staffID int64, username string) error {
	for _, account := range f.accounts {
		if account.StaffID != nil && *account.StaffID == staffID {
			account.Username = username
		}
	}
	return nil
}

func (f *fakeAccountStore) SuperAdminExists(_ context.Context) (bool, error) {
	for _, account := range f.accounts {
		if account.Role == models.RoleSuperAdmin {
			return true, nil
		}
	}
	return false, nil
}

type fakeStudentStore struct {
	students map[int64]*models.Student
	nextID   int64
}

func newFakeStudentStore() *fakeStudentStore {
	return &fakeStudentStore{students: make(map[int64]*models.Student), nextID: 1}
}

func (f *fakeStudentStore) Create(_ context.Context, _ repositories.Querier, student *models.Student) error {
	for _, existing := range f.students {
		if existing.EnrollmentNumber == student.EnrollmentNumber {
			return apperrors.ErrStudentAlreadyExists
		}
	}
	student.ID = f.nextID
	f.nextID++
	stored := *student
	f.students[student.ID] = &stored
	return nil
}

func (f *fakeStudentStore) GetByID(_ context.Context, id int64) (*models.Student, error) {
	student, ok := f.students[id]
	if !ok {
		return nil, apperrors.ErrStudentNotFound
	}
	copied := *student
	return &copied, nil
}

func (f *fakeStudentStore) EnrollmentNumberExists(_ context.Context, enrollmentNumber string) (bool, error) {
	for _, student := range f.students {
		if student.EnrollmentNumber == enrollmentNumber {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeStudentStore) List(_ context.Context, _, _, _ string) ([]*models.Student, error) {
	var out []*models.Student
	for _, student := range f.students {
		copied := *student
		out = append(out, &copied)
	}
	return out, nil
}

func (f *fakeStudentStore) Update(_ context.Context, _ repositories.Querier, id int64, fields map[string]any) (*models.Student, error) {
	student, ok := f.students[id]
	if !ok {
		return nil, apperrors.ErrStudentNotFound
	}
	for column, value := range fields {
		switch column {
		case "enrollment_number":
			student.EnrollmentNumber = value.(string)
		case "name":
			student.Name = value.(string)
		case "email":
			student.Email = value.(string)
		case "date_of_birth":
			student.DateOfBirth = value.(time.Time)
		case "course":
			student.Course = value.(string)
		case "year":
			student.Year = value.(int)
		case "status":
			student.Status = models.StudentStatus(value.(string))
		}
	}
	copied := *student
	return &copied, nil
}

func (f *fakeStudentStore) SetStatus(_ context.Context, _ repositories.Querier, id int64, status models.StudentStatus) (*models.Student, error) {
	student, ok := f.students[id]
	if !ok {
		return nil, apperrors.ErrStudentNotFound
	}
	student.Status = status
	copied := *student
	return &copied, nil
}

func (f *fakeStudentStore) Delete(_ context.Context, id int64) error {
	if _, ok := f.students[id]; !ok {
		return apperrors.ErrStudentNotFound
	}
	delete(f.students, id)
	return nil
}

func (f *fakeStudentStore) DateOfBirth(_ context.Context, id int64) (time.Time, error) {
	student, ok := f.students[id]
	if !ok {
		return time.Time{}, apperrors.ErrStudentNotFound
	}
	return student.DateOfBirth, nil
}

type fakeStaffStore struct {
	staff  map[int64]*models.Staff
	nextID int64
}

func newFakeStaffStore() *fakeStaffStore {
	return &fakeStaffStore{staff: make(map[int64]*models.Staff), nextID: 1}
}

func (f *fakeStaffStore) Create(_ context.Context, _ repositories.Querier, staff *models.Staff) error {
	for _, existing := range f.staff {
		if existing.StaffCode == staff.StaffCode {
			return apperrors.ErrStaffAlreadyExists
		}
	}
	staff.ID = f.nextID
	f.nextID++
	stored := *staff
	f.staff[staff.ID] = &stored
	return nil
}

func (f *fakeStaffStore) GetByID(_ context.Context, id int64) (*models.Staff, error) {
	staff, ok := f.staff[id]
	if !ok {
		return nil, apperrors.ErrStaffNotFound
	}
	copied := *staff
	return &copied, nil
}

func (f *fakeStaffStore) StaffCodeExists(_ context.Context, staffCode string) (bool, error) {
	for _, staff := range f.staff {
		if staff.StaffCode == staffCode {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeStaffStore) Update(_ context.Context, _ repositories.Querier, id int64, fields map[string]any) (*models.Staff, error) {
	staff, ok := f.staff[id]
	if !ok {
		return nil, apperrors.ErrStaffNotFound
	}
	for column, value := range fields {
		switch column {
		case "staff_code":
			staff.StaffCode = value.(string)
		case "name":
			staff.Name = value.(string)
		case "email":
			staff.Email = value.(string)
		case "department":
			staff.Department = value.(string)
		case "designation":
			staff.Designation = value.(string)
		case "is_active":
			staff.IsActive = value.(bool)
		}
	}
	copied := *staff
	return &copied, nil
}

func (f *fakeStaffStore) DateOfBirth(_ context.Context, id int64) (time.Time, error) {
	staff, ok := f.staff[id]
	if !ok {
		return time.Time{}, apperrors.ErrStaffNotFound
	}
	return staff.DateOfBirth, nil
}

type fakeAttendanceStore struct {
	records []*models.Attendance
	nextID  int64
}

func newFakeAttendanceStore() *fakeAttendanceStore {
	return &fakeAttendanceStore{nextID: 1}
}

func (f *fakeAttendanceStore) Create(_ context.Context, a *models.Attendance) error {
	a.ID = f.nextID
	f.nextID++
	a.CreatedAt = time.Now()
	stored := *a
	f.records = append(f.records, &stored)
	return nil
}

func (f *fakeAttendanceStore) ListForStaff(_ context.Context, staffID int64, filter repositories.StaffFilter) ([]*models.Attendance, error) {
	var out []*models.Attendance
	for _, record := range f.records {
		if record.StaffID != staffID {
			continue
		}
		if filter.StudentID != 0 && record.StudentID != filter.StudentID {
			continue
		}
		if filter.Subject != "" && record.Subject != filter.Subject {
			continue
		}
		if filter.Date != nil && !record.Date.Equal(*filter.Date) {
			continue
		}
		copied := *record
		out = append(out, &copied)
	}
	return out, nil
}

func (f *fakeAttendanceStore) ListForStudent(_ context.Context, studentID int64, filter repositories.StudentFilter) ([]*models.Attendance, error) {
	var out []*models.Attendance
	for _, record := range f.records {
		if record.StudentID != studentID {
			continue
		}
		if filter.Subject != "" && record.Subject != filter.Subject {
			continue
		}
		if filter.StartDate != nil && filter.EndDate != nil {
			if record.Date.Before(*filter.StartDate) || record.Date.After(*filter.EndDate) {
				continue
			}
		}
		copied := *record
		out = append(out, &copied)
	}
	return out, nil
}

type fakeMarksStore struct {
	records []*models.Marks
	nextID  int64
}

func newFakeMarksStore() *fakeMarksStore {
	return &fakeMarksStore{nextID: 1}
}

func (f *fakeMarksStore) Create(_ context.Context, m *models.Marks) error {
	m.ID = f.nextID
	f.nextID++
	stored := *m
	f.records = append(f.records, &stored)
	return nil
}

func (f *fakeMarksStore) ListForStaff(_ context.Context, staffID int64, filter repositories.MarksFilter) ([]*models.Marks, error) {
	var out []*models.Marks
	for _, record := range f.records {
		if record.StaffID != staffID {
			continue
		}
		if matchesMarksFilter(record, filter) {
			copied := *record
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (f *fakeMarksStore) ListForStudent(_ context.Context, studentID int64, filter repositories.MarksFilter) ([]*models.Marks, error) {
	var out []*models.Marks
	for _, record := range f.records {
		if record.StudentID != studentID {
			continue
		}
		if matchesMarksFilter(record, filter) {
			copied := *record
			out = append(out, &copied)
		}
	}
	return out, nil
}

func matchesMarksFilter(record *models.Marks, filter repositories.MarksFilter) bool {
	if filter.StudentID != 0 && record.StudentID != filter.StudentID {
		return false
	}
	if filter.Subject != "" && record.Subject != filter.Subject {
		return false
	}
	if filter.AcademicYear != "" && record.AcademicYear != filter.AcademicYear {
		return false
	}
	if filter.Semester != "" && record.Semester != filter.Semester {
		return false
	}
	return true
}

func (f *fakeMarksStore) UpdateOwned(_ context.Context, id, staffID int64, fields map[string]any) (*models.Marks, error) {
	for _, record := range f.records {
		if record.ID != id || record.StaffID != staffID {
			continue
		}
		for column, value := range fields {
			switch column {
			case "subject":
				record.Subject = value.(string)
			case "exam_type":
				record.ExamType = value.(string)
			case "marks_obtained":
				record.MarksObtained = value.(float64)
			case "total_marks":
				record.TotalMarks = value.(float64)
			case "grade":
				record.Grade = value.(string)
			case "remarks":
				record.Remarks = value.(string)
			}
		}
		copied := *record
		return &copied, nil
	}
	return nil, apperrors.ErrMarksNotFound
}

type fakeGrievanceStore struct {
	records []*models.Grievance
	nextID  int64
}

func newFakeGrievanceStore() *fakeGrievanceStore {
	return &fakeGrievanceStore{nextID: 1}
}

func (f *fakeGrievanceStore) Create(_ context.Context, g *models.Grievance) error {
	g.ID = f.nextID
	f.nextID++
	g.CreatedAt = time.Now()
	g.UpdatedAt = g.CreatedAt
	stored := *g
	f.records = append(f.records, &stored)
	return nil
}

func (f *fakeGrievanceStore) ListAll(_ context.Context, filter repositories.GrievanceFilter) ([]*models.Grievance, error) {
	var out []*models.Grievance
	for _, record := range f.records {
		if matchesGrievanceFilter(record, filter) {
			copied := *record
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (f *fakeGrievanceStore) ListForStudent(_ context.Context, studentID int64, filter repositories.GrievanceFilter) ([]*models.Grievance, error) {
	var out []*models.Grievance
	for _, record := range f.records {
		if record.StudentID == studentID && matchesGrievanceFilter(record, filter) {
			copied := *record
			out = append(out, &copied)
		}
	}
	return out, nil
}

func matchesGrievanceFilter(record *models.Grievance, filter repositories.GrievanceFilter) bool {
	if filter.Status != "" && string(record.Status) != filter.Status {
		return false
	}
	if filter.Priority != "" && string(record.Priority) != filter.Priority {
		return false
	}
	return true
}

func (f *fakeGrievanceStore) GetForStudent(_ context.Context, id, studentID int64) (*models.Grievance, error) {
	for _, record := range f.records {
		if record.ID == id && record.StudentID == studentID {
			copied := *record
			return &copied, nil
		}
	}
	return nil, apperrors.ErrGrievanceNotFound
}

func (f *fakeGrievanceStore) Respond(_ context.Context, id int64, response string, status models.GrievanceStatus, staffID int64, respondedAt time.Time) (*models.Grievance, error) {
	for _, record := range f.records {
		if record.ID != id {
			continue
		}
		record.Response = response
		record.Status = status
		record.RespondedBy = &staffID
		record.RespondedAt = &respondedAt
		record.UpdatedAt = time.Now()
		copied := *record
		return &copied, nil
	}
	return nil, apperrors.ErrGrievanceNotFound
}
