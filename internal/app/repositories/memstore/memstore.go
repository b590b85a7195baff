// Package memstore is a process-local implementation of the repository
// interfaces with the same uniqueness rules as the PostgreSQL schema.
package memstore

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/siwes/interntrack/internal/app/models"
	"github.com/siwes/interntrack/internal/app/repositories"
	"github.com/siwes/interntrack/internal/pkg/apperrors"
)

type refreshToken struct {
	userID    int64
	expiresAt time.Time
	revoked   bool
	createdAt time.Time
}

type logbookKey struct {
	studentID int64
	week      int
}

type notificationKey struct {
	eventID     string
	recipientID int64
}

// Store keeps every table in maps guarded by one mutex. Returned values are copies.
type Store struct {
	mu sync.RWMutex

	nextID int64

	users         map[int64]*models.User
	emails        map[string]int64
	students      map[int64]*models.Student
	tokens        map[string]*refreshToken
	codes         map[int64]*models.VerificationCode
	codeStrings   map[string]int64
	assignments   map[int64]*models.Assignment // by student
	logbooks      map[int64]*models.LogbookEntry
	logbookWeeks  map[logbookKey]int64
	gradings      map[int64]*models.GradingRecord // by student
	notifications map[int64]*models.Notification
	notifEvents   map[notificationKey]int64
}

var (
	_ repositories.UserStore             = (*Store)(nil)
	_ repositories.TokenStore            = (*Store)(nil)
	_ repositories.VerificationCodeStore = (*Store)(nil)
	_ repositories.AssignmentStore       = (*Store)(nil)
	_ repositories.LogbookStore          = (*Store)(nil)
	_ repositories.GradingStore          = (*Store)(nil)
	_ repositories.NotificationStore     = (*Store)(nil)
)

// New creates an empty store
func New() *Store {
	return &Store{
		users:         make(map[int64]*models.User),
		emails:        make(map[string]int64),
		students:      make(map[int64]*models.Student),
		tokens:        make(map[string]*refreshToken),
		codes:         make(map[int64]*models.VerificationCode),
		codeStrings:   make(map[string]int64),
		assignments:   make(map[int64]*models.Assignment),
		logbooks:      make(map[int64]*models.LogbookEntry),
		logbookWeeks:  make(map[logbookKey]int64),
		gradings:      make(map[int64]*models.GradingRecord),
		notifications: make(map[int64]*models.Notification),
		notifEvents:   make(map[notificationKey]int64),
	}
}

// NewRepositories returns a repository set backed by a fresh Store
func NewRepositories() *repositories.Repositories {
	return New().Repositories()
}

// Repositories exposes the store through the repository container
func (s *Store) Repositories() *repositories.Repositories {
	return &repositories.Repositories{
		Users:         s,
		Tokens:        s,
		Codes:         s,
		Assignments:   s,
		Logbooks:      s,
		Gradings:      s,
		Notifications: s,
	}
}

func (s *Store) id() int64 {
	s.nextID++
	return s.nextID
}

func copyUser(u *models.User) *models.User {
	c := *u
	if u.Department != nil {
		d := *u.Department
		c.Department = &d
	}
	return &c
}

func copyStudent(st *models.Student) *models.Student {
	c := *st
	c.User = *copyUser(&st.User)
	if st.AssignedSupervisorID != nil {
		id := *st.AssignedSupervisorID
		c.AssignedSupervisorID = &id
	}
	return &c
}

func copyLogbook(e *models.LogbookEntry) *models.LogbookEntry {
	c := *e
	c.Images = append([]string{}, e.Images...)
	if e.SupervisorComment != nil {
		comment := *e.SupervisorComment
		c.SupervisorComment = &comment
	}
	if e.SignedAt != nil {
		signed := *e.SignedAt
		c.SignedAt = &signed
	}
	return &c
}

func (s *Store) studentSummary(id int64) *models.StudentSummary {
	u, ok := s.users[id]
	if !ok {
		return &models.StudentSummary{ID: id}
	}
	return &models.StudentSummary{ID: u.ID, FullName: u.FullName, Email: u.Email, Department: u.DepartmentName()}
}

// ---- users ----

// CreateUser creates a new user
func (s *Store) CreateUser(_ context.Context, user *models.User) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.createUserLocked(user)
}

func (s *Store) createUserLocked(user *models.User) (int64, error) {
	if _, ok := s.emails[user.Email]; ok {
		return 0, apperrors.ErrEmailAlreadyExists
	}
	stored := copyUser(user)
	stored.ID = s.id()
	s.users[stored.ID] = stored
	s.emails[stored.Email] = stored.ID
	return stored.ID, nil
}

// GetUserByID retrieves a user by ID
func (s *Store) GetUserByID(_ context.Context, id int64) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.users[id]
	if !ok {
		return nil, apperrors.ErrUserNotFound
	}
	return copyUser(u), nil
}

// GetUserByEmail retrieves a user by email
func (s *Store) GetUserByEmail(_ context.Context, email string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	id, ok := s.emails[email]
	if !ok {
		return nil, apperrors.ErrUserNotFound
	}
	return copyUser(s.users[id]), nil
}

// EmailExists checks if an email already exists
func (s *Store) EmailExists(_ context.Context, email string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.emails[email]
	return ok, nil
}

// UpdateLastLogin updates the last login time
func (s *Store) UpdateLastLogin(_ context.Context, userID int64, at time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[userID]
	if !ok {
		return apperrors.ErrUserNotFound
	}
	t := at
	u.LastLoginAt = &t
	return nil
}

// ListUsersByRole lists active users of a role, optionally within one department
func (s *Store) ListUsersByRole(_ context.Context, role models.Role, department *string) ([]*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var users []*models.User
	for _, u := range s.users {
		if u.Role != role || !u.IsActive {
			continue
		}
		if department != nil && u.DepartmentName() != *department {
			continue
		}
		users = append(users, copyUser(u))
	}
	sort.Slice(users, func(i, j int) bool {
		if users[i].FullName != users[j].FullName {
			return users[i].FullName < users[j].FullName
		}
		return users[i].ID < users[j].ID
	})
	return users, nil
}

// RegisterStudent consumes the code and creates the student account atomically
func (s *Store) RegisterStudent(_ context.Context, codeID int64, student *models.Student) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	code, ok := s.codes[codeID]
	if !ok || code.IsUsed {
		return apperrors.ErrCodeAlreadyUsed
	}
	if _, exists := s.emails[student.Email]; exists {
		return apperrors.ErrDuplicateRegistration
	}

	id, err := s.createUserLocked(&student.User)
	if err != nil {
		return err
	}
	code.IsUsed = true

	student.ID = id
	student.VerificationCodeUsed = true
	stored := copyStudent(student)
	stored.User = *s.users[id]
	s.students[id] = stored
	return nil
}

// GetStudentByID retrieves a student by user ID
func (s *Store) GetStudentByID(_ context.Context, id int64) (*models.Student, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	st, ok := s.students[id]
	if !ok {
		return nil, apperrors.ErrStudentNotFound
	}
	c := copyStudent(st)
	c.User = *copyUser(s.users[id])
	return c, nil
}

func (s *Store) departmentStudentsLocked(department string) []*models.Student {
	var students []*models.Student
	for id, st := range s.students {
		u := s.users[id]
		if u.DepartmentName() != department {
			continue
		}
		c := copyStudent(st)
		c.User = *copyUser(u)
		students = append(students, c)
	}
	sort.Slice(students, func(i, j int) bool {
		if students[i].FullName != students[j].FullName {
			return students[i].FullName < students[j].FullName
		}
		return students[i].ID < students[j].ID
	})
	return students
}

// ---- refresh tokens ----

// CreateToken stores a refresh token
func (s *Store) CreateToken(_ context.Context, token string, userID int64, expiryDate time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.tokens[token]; ok {
		return apperrors.ErrTokenInvalid
	}
	s.tokens[token] = &refreshToken{userID: userID, expiresAt: expiryDate, createdAt: time.Now()}
	return nil
}

// GetTokenByValue returns the owner of a live refresh token
func (s *Store) GetTokenByValue(_ context.Context, token string, now time.Time) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	t, ok := s.tokens[token]
	switch {
	case !ok:
		return 0, apperrors.ErrTokenNotFound
	case t.revoked:
		return 0, apperrors.ErrTokenRevoked
	case t.expiresAt.Before(now):
		return 0, apperrors.ErrTokenExpired
	}
	return t.userID, nil
}

// RevokeToken revokes a refresh token
func (s *Store) RevokeToken(_ context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.tokens[token]
	if !ok || t.revoked {
		return apperrors.ErrTokenRevoked
	}
	t.revoked = true
	return nil
}

// CleanupExpiredTokens removes expired and revoked tokens
func (s *Store) CleanupExpiredTokens(_ context.Context, now time.Time) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var n int64
	for value, t := range s.tokens {
		if t.expiresAt.Before(now) || t.revoked {
			delete(s.tokens, value)
			n++
		}
	}
	return n, nil
}

// ---- verification codes ----

// CreateCode stores a verification code
func (s *Store) CreateCode(_ context.Context, code *models.VerificationCode) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.codeStrings[code.Code]; ok {
		return apperrors.NewConflictError("verification code already exists")
	}
	code.ID = s.id()
	c := *code
	s.codes[c.ID] = &c
	s.codeStrings[c.Code] = c.ID
	return nil
}

// FindCode looks up a code issued to an email
func (s *Store) FindCode(_ context.Context, email, code string) (*models.VerificationCode, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	id, ok := s.codeStrings[code]
	if !ok || s.codes[id].Email != email {
		return nil, apperrors.ErrCodeNotFound
	}
	c := *s.codes[id]
	return &c, nil
}

// ListCodes returns all codes, newest first
func (s *Store) ListCodes(_ context.Context) ([]*models.VerificationCode, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	codes := make([]*models.VerificationCode, 0, len(s.codes))
	for _, c := range s.codes {
		cp := *c
		codes = append(codes, &cp)
	}
	sort.Slice(codes, func(i, j int) bool {
		if !codes[i].CreatedAt.Equal(codes[j].CreatedAt) {
			return codes[i].CreatedAt.After(codes[j].CreatedAt)
		}
		return codes[i].ID > codes[j].ID
	})
	return codes, nil
}

// DeleteUnusedExpiredBefore removes unused codes that expired before the cutoff
func (s *Store) DeleteUnusedExpiredBefore(_ context.Context, before time.Time) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var n int64
	for id, c := range s.codes {
		if !c.IsUsed && c.ExpiresAt.Before(before) {
			delete(s.codes, id)
			delete(s.codeStrings, c.Code)
			n++
		}
	}
	return n, nil
}

// ---- assignments ----

// UpsertAssignment creates or overwrites the student's assignment and mirrors the supervisor
func (s *Store) UpsertAssignment(_ context.Context, assignment *models.Assignment) (*models.Assignment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	st, ok := s.students[assignment.StudentID]
	if !ok {
		return nil, apperrors.ErrStudentNotFound
	}

	existing, ok := s.assignments[assignment.StudentID]
	if ok {
		existing.InstitutionSupervisorID = assignment.InstitutionSupervisorID
		existing.HODID = assignment.HODID
	} else {
		existing = &models.Assignment{
			ID:                      s.id(),
			StudentID:               assignment.StudentID,
			InstitutionSupervisorID: assignment.InstitutionSupervisorID,
			HODID:                   assignment.HODID,
			AssignedAt:              assignment.AssignedAt,
			Status:                  assignment.Status,
		}
		s.assignments[assignment.StudentID] = existing
	}

	supervisorID := existing.InstitutionSupervisorID
	st.AssignedSupervisorID = &supervisorID

	c := *existing
	return &c, nil
}

// GetAssignmentByStudent returns the student's assignment
func (s *Store) GetAssignmentByStudent(_ context.Context, studentID int64) (*models.Assignment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	a, ok := s.assignments[studentID]
	if !ok {
		return nil, apperrors.NewResourceNotFoundError("assignment not found")
	}
	c := *a
	return &c, nil
}

// ListAssignmentsBySupervisor lists a supervisor's assignments with student fields
func (s *Store) ListAssignmentsBySupervisor(_ context.Context, supervisorID int64) ([]*models.SupervisedAssignment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var result []*models.SupervisedAssignment
	for _, a := range s.assignments {
		if a.InstitutionSupervisorID != supervisorID {
			continue
		}
		result = append(result, &models.SupervisedAssignment{Assignment: *a, Student: s.studentSummary(a.StudentID)})
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].Student.FullName != result[j].Student.FullName {
			return result[i].Student.FullName < result[j].Student.FullName
		}
		return result[i].StudentID < result[j].StudentID
	})
	return result, nil
}

// ListDepartmentStudents lists every student of a department with assignment and supervisor
func (s *Store) ListDepartmentStudents(_ context.Context, department string) ([]*models.DepartmentStudent, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var result []*models.DepartmentStudent
	for _, st := range s.departmentStudentsLocked(department) {
		item := &models.DepartmentStudent{Student: st.Summary()}
		if a, ok := s.assignments[st.ID]; ok {
			c := *a
			item.Assignment = &c
			if sup, ok := s.users[a.InstitutionSupervisorID]; ok {
				item.Supervisor = sup.Summary()
			}
		}
		result = append(result, item)
	}
	return result, nil
}

// ---- logbooks ----

// CreateEntry inserts a logbook entry unless the (student, week) pair exists
func (s *Store) CreateEntry(_ context.Context, entry *models.LogbookEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := logbookKey{studentID: entry.StudentID, week: entry.WeekNumber}
	if _, ok := s.logbookWeeks[key]; ok {
		return apperrors.ErrDuplicateWeek
	}
	entry.ID = s.id()
	s.logbooks[entry.ID] = copyLogbook(entry)
	s.logbookWeeks[key] = entry.ID
	return nil
}

// GetEntryByID retrieves a logbook entry
func (s *Store) GetEntryByID(_ context.Context, id int64) (*models.LogbookEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.logbooks[id]
	if !ok {
		return nil, apperrors.ErrLogbookNotFound
	}
	return copyLogbook(e), nil
}

// UpdateEntry persists the mutable fields of an entry whose status is still from
func (s *Store) UpdateEntry(_ context.Context, entry *models.LogbookEntry, from models.LogbookStatus) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	existing, ok := s.logbooks[entry.ID]
	if !ok {
		return apperrors.ErrLogbookNotFound
	}
	if existing.Status != from {
		return apperrors.ErrLogbookChanged
	}
	updated := copyLogbook(entry)
	updated.StudentID = existing.StudentID
	updated.WeekNumber = existing.WeekNumber
	s.logbooks[entry.ID] = updated
	return nil
}

// ListEntries lists entries matching the filter ordered by week then student
func (s *Store) ListEntries(_ context.Context, filter repositories.LogbookFilter) ([]*models.LogbookEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entries := []*models.LogbookEntry{}
	for _, e := range s.logbooks {
		if filter.StudentID != nil && e.StudentID != *filter.StudentID {
			continue
		}
		if filter.Department != nil {
			u, ok := s.users[e.StudentID]
			if !ok || u.DepartmentName() != *filter.Department {
				continue
			}
		}
		if filter.SupervisorID != nil {
			st, ok := s.students[e.StudentID]
			if !ok || !st.IsSupervisedBy(*filter.SupervisorID) {
				continue
			}
		}
		entries = append(entries, copyLogbook(e))
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].WeekNumber != entries[j].WeekNumber {
			return entries[i].WeekNumber < entries[j].WeekNumber
		}
		return entries[i].StudentID < entries[j].StudentID
	})
	return entries, nil
}

// ApprovedWeeks returns the week numbers of a student's approved entries
func (s *Store) ApprovedWeeks(_ context.Context, studentID int64) ([]int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var weeks []int
	for _, e := range s.logbooks {
		if e.StudentID == studentID && e.Status == models.LogbookApproved {
			weeks = append(weeks, e.WeekNumber)
		}
	}
	sort.Ints(weeks)
	return weeks, nil
}

// ---- grading ----

// UpsertSchedule creates a record or moves the defense; score and verdict are untouched on update
func (s *Store) UpsertSchedule(_ context.Context, record *models.GradingRecord) (*models.GradingRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.gradings[record.StudentID]
	if ok {
		existing.DefenseDate = record.DefenseDate
		existing.Assessor = record.Assessor
		existing.UpdatedAt = record.UpdatedAt
	} else {
		existing = &models.GradingRecord{}
		*existing = *record
		existing.ID = s.id()
		s.gradings[record.StudentID] = existing
	}
	c := *existing
	return &c, nil
}

// GetByStudent returns the student's grading record
func (s *Store) GetByStudent(_ context.Context, studentID int64) (*models.GradingRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	g, ok := s.gradings[studentID]
	if !ok {
		return nil, apperrors.ErrGradingRecordNotFound
	}
	c := *g
	return &c, nil
}

// UpdateGrade overwrites score, remarks and verdict
func (s *Store) UpdateGrade(_ context.Context, record *models.GradingRecord) (*models.GradingRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	g, ok := s.gradings[record.StudentID]
	if !ok {
		return nil, apperrors.ErrGradingRecordNotFound
	}
	g.Score = record.Score
	g.Remarks = record.Remarks
	g.Verdict = record.Verdict
	g.UpdatedAt = record.UpdatedAt
	c := *g
	return &c, nil
}

// ListDefenses returns every grading record with student fields, soonest defense first
func (s *Store) ListDefenses(_ context.Context) ([]*models.DefenseInfo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	defenses := []*models.DefenseInfo{}
	for _, g := range s.gradings {
		defenses = append(defenses, &models.DefenseInfo{GradingRecord: *g, Student: s.studentSummary(g.StudentID)})
	}
	sort.Slice(defenses, func(i, j int) bool {
		if !defenses[i].DefenseDate.Equal(defenses[j].DefenseDate) {
			return defenses[i].DefenseDate.Before(defenses[j].DefenseDate)
		}
		return defenses[i].StudentID < defenses[j].StudentID
	})
	return defenses, nil
}

// ---- notifications ----

// CreateNotification stores a notification; a repeated event for the same recipient is ignored
func (s *Store) CreateNotification(_ context.Context, n *models.Notification) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := notificationKey{eventID: n.EventID, recipientID: n.RecipientID}
	if n.EventID != "" {
		if _, ok := s.notifEvents[key]; ok {
			return nil
		}
	}
	n.ID = s.id()
	c := *n
	s.notifications[c.ID] = &c
	if n.EventID != "" {
		s.notifEvents[key] = c.ID
	}
	return nil
}

// ListNotifications returns a user's most recent notifications
func (s *Store) ListNotifications(_ context.Context, recipientID int64, limit int) ([]*models.Notification, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	list := []*models.Notification{}
	for _, n := range s.notifications {
		if n.RecipientID == recipientID {
			c := *n
			list = append(list, &c)
		}
	}
	sort.Slice(list, func(i, j int) bool {
		if !list[i].CreatedAt.Equal(list[j].CreatedAt) {
			return list[i].CreatedAt.After(list[j].CreatedAt)
		}
		return list[i].ID > list[j].ID
	})
	if limit > 0 && len(list) > limit {
		list = list[:limit]
	}
	return list, nil
}

// MarkRead marks one of the recipient's notifications as read
func (s *Store) MarkRead(_ context.Context, id, recipientID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	n, ok := s.notifications[id]
	if !ok || n.RecipientID != recipientID {
		return apperrors.ErrNotificationNotFound
	}
	n.IsRead = true
	return nil
}

