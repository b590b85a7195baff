package services

import (
	"context"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/siwes/interntrack/internal/app/auth"
	"github.com/siwes/interntrack/internal/app/models"
	"github.com/siwes/interntrack/internal/app/models/dto"
	"github.com/siwes/interntrack/internal/app/repositories"
	"github.com/siwes/interntrack/internal/app/repositories/memstore"
	pkgAuth "github.com/siwes/interntrack/internal/pkg/auth"
	"github.com/siwes/interntrack/internal/pkg/filestorage"
	"github.com/stretchr/testify/require"
)

const (
	computerScience = "Computer Science"
	mathematics     = "Mathematics"
	testPassword    = "Passw0rd!"
)

func TestMain(m *testing.M) {
	pkgAuth.BcryptCost = 4
	os.Exit(m.Run())
}

type clock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *clock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

type recordingNotifier struct {
	mu     sync.Mutex
	events []Event
}

func (n *recordingNotifier) Publish(event Event) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.events = append(n.events, event)
}

func (n *recordingNotifier) Events() []Event {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]Event(nil), n.events...)
}

func (n *recordingNotifier) OfKind(kind models.NotificationKind) []Event {
	var out []Event
	for _, e := range n.Events() {
		if e.Kind == kind {
			out = append(out, e)
		}
	}
	return out
}

func (n *recordingNotifier) Reset() {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.events = nil
}

type fixture struct {
	t        *testing.T
	ctx      context.Context
	store    *memstore.Store
	repos    *repositories.Repositories
	clock    *clock
	notifier *recordingNotifier
	storage  *filestorage.LocalStorage

	authz       *auth.AuthorizationService
	codes       *VerificationCodeService
	auth        *AuthService
	assignments *AssignmentService
	logbooks    *LogbookService
	gradings    *GradingService

	coordinator auth.Identity
	hod         auth.Identity
	mathHOD     auth.Identity
	bob         auth.Identity
	carol       auth.Identity
	industry    auth.Identity
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	store := memstore.New()
	f := &fixture{
		t:        t,
		ctx:      context.Background(),
		store:    store,
		repos:    store.Repositories(),
		clock:    &clock{now: time.Date(2025, 3, 3, 9, 0, 0, 0, time.UTC)},
		notifier: &recordingNotifier{},
	}

	storage, err := filestorage.NewLocalStorage(t.TempDir(), "http://localhost:8080/uploads")
	require.NoError(t, err)
	f.storage = storage

	lgr := zerolog.Nop()
	jwtService := pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:       "test-secret",
		AccessTokenExp:  time.Hour,
		RefreshTokenExp: 24 * time.Hour,
		TokenIssuer:     "interntrack-test",
	})

	f.authz = auth.NewAuthorizationService(f.repos.Users)
	f.codes = NewVerificationCodeService(f.repos.Codes, f.repos.Users, f.notifier, VerificationCodeConfig{}, lgr)
	f.auth = NewAuthService(f.repos.Users, f.repos.Tokens, f.repos.Assignments, f.codes, f.authz, jwtService, lgr)
	f.assignments = NewAssignmentService(f.repos.Assignments, f.repos.Users, f.authz, f.notifier, lgr)
	f.logbooks = NewLogbookService(f.repos.Logbooks, f.repos.Users, f.authz, storage, f.notifier, lgr)
	f.gradings = NewGradingService(f.repos.Gradings, f.repos.Logbooks, f.repos.Users, f.notifier, lgr)

	f.codes.now = f.clock.Now
	f.auth.now = f.clock.Now
	f.assignments.now = f.clock.Now
	f.logbooks.now = f.clock.Now
	f.gradings.now = f.clock.Now

	f.coordinator = f.createUser("coordinator@uni.edu", "Grace Coordinator", models.RoleCoordinator, "")
	f.hod = f.createUser("hod.cs@uni.edu", "Hannah HOD", models.RoleHOD, computerScience)
	f.mathHOD = f.createUser("hod.math@uni.edu", "Musa HOD", models.RoleHOD, mathematics)
	f.bob = f.createUser("bob@uni.edu", "Bob Adeyemi", models.RoleInstitutionSupervisor, computerScience)
	f.carol = f.createUser("carol@uni.edu", "Carol Eze", models.RoleInstitutionSupervisor, computerScience)
	f.industry = f.createUser("ivan@acme.com", "Ivan Industry", models.RoleIndustrySupervisor, "")

	return f
}

func (f *fixture) createUser(email, name string, role models.Role, department string) auth.Identity {
	f.t.Helper()
	hash, err := pkgAuth.HashPassword(testPassword)
	require.NoError(f.t, err)

	user := &models.User{
		Email:     email,
		Password:  hash,
		FullName:  name,
		Role:      role,
		IsActive:  true,
		CreatedAt: f.clock.Now(),
		UpdatedAt: f.clock.Now(),
	}
	if department != "" {
		user.Department = &department
	}
	id, err := f.repos.Users.CreateUser(f.ctx, user)
	require.NoError(f.t, err)
	return auth.Identity{UserID: id, Email: email, Role: role}
}

// registerStudent issues a code and registers with it
func (f *fixture) registerStudent(email, name, department string) auth.Identity {
	f.t.Helper()
	code, err := f.codes.Issue(f.ctx, f.coordinator, &dto.IssueCodeRequest{Email: email, Department: department})
	require.NoError(f.t, err)

	resp, err := f.auth.RegisterStudent(f.ctx, &dto.RegisterStudentRequest{
		FullName: name,
		Email:    email,
		Code:     code.Code,
		Password: testPassword,
	})
	require.NoError(f.t, err)
	return auth.Identity{UserID: resp.User.ID, Email: resp.User.Email, Role: models.RoleStudent}
}

func (f *fixture) assign(student, supervisor auth.Identity) {
	f.t.Helper()
	_, err := f.assignments.Assign(f.ctx, f.hod, &dto.AssignStudentRequest{StudentID: student.UserID, SupervisorID: supervisor.UserID})
	require.NoError(f.t, err)
}

func (f *fixture) submit(student auth.Identity, week int) *models.LogbookEntry {
	f.t.Helper()
	entry, err := f.logbooks.Submit(f.ctx, student, &dto.SubmitLogbookRequest{
		WeekNumber:          week,
		ActivityDescription: "Worked on the billing service",
	})
	require.NoError(f.t, err)
	return entry
}

func (f *fixture) review(supervisor auth.Identity, entryID int64, status models.LogbookStatus) *models.LogbookEntry {
	f.t.Helper()
	entry, err := f.logbooks.Review(f.ctx, supervisor, entryID, &dto.ReviewLogbookRequest{Status: string(status), Comment: "ok"})
	require.NoError(f.t, err)
	return entry
}

// completeLogbook submits and approves weeks 1 to 13
func (f *fixture) completeLogbook(student, supervisor auth.Identity) []*models.LogbookEntry {
	f.t.Helper()
	entries := make([]*models.LogbookEntry, 0, models.LogbookWeeks)
	for week := 1; week <= models.LogbookWeeks; week++ {
		entry := f.submit(student, week)
		entries = append(entries, f.review(supervisor, entry.ID, models.LogbookApproved))
	}
	return entries
}

func intPtr(v int) *int       { return &v }
func int64Ptr(v int64) *int64 { return &v }
