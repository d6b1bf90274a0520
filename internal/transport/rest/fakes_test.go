package rest

import (
	"context"
	"io"
	"sync"
	"time"

	"barbershop/internal/domain"
)

type fakeAppointmentService struct {
	mu      sync.Mutex
	created []domain.CreateAppointmentDTO
	err     error
	listed  []domain.AppointmentFilter
}

func (f *fakeAppointmentService) Create(_ context.Context, dto domain.CreateAppointmentDTO) (*domain.Appointment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	f.created = append(f.created, dto)
	return &domain.Appointment{
		ID:              "6f1c2d3e-0000-4000-8000-000000000001",
		CustomerName:    dto.CustomerName,
		CustomerPhone:   dto.CustomerPhone,
		ServiceID:       &dto.ServiceID,
		AppointmentDate: dto.AppointmentDate,
		AppointmentTime: dto.AppointmentTime,
		Status:          domain.AppointmentStatusPending,
	}, nil
}

func (f *fakeAppointmentService) GetByID(context.Context, string) (*domain.Appointment, error) {
	return nil, domain.ErrNotFound
}

func (f *fakeAppointmentService) Update(context.Context, string, domain.UpdateAppointmentDTO) (*domain.Appointment, error) {
	return nil, domain.ErrNotFound
}

func (f *fakeAppointmentService) UpdateStatus(_ context.Context, id string, status domain.AppointmentStatus) (*domain.Appointment, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &domain.Appointment{ID: id, Status: status}, nil
}

func (f *fakeAppointmentService) Delete(context.Context, string) error {
	return f.err
}

func (f *fakeAppointmentService) List(_ context.Context, filter domain.AppointmentFilter) ([]domain.Appointment, int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.listed = append(f.listed, filter)
	return []domain.Appointment{{ID: "a"}}, 45, nil
}

func (f *fakeAppointmentService) ListByDate(context.Context, string) ([]domain.Appointment, error) {
	return []domain.Appointment{}, nil
}

func (f *fakeAppointmentService) Export(_ context.Context, w io.Writer, _ domain.AppointmentFilter, _ string) error {
	_, err := w.Write([]byte("xlsx"))
	return err
}

type fakeAvailabilityService struct{}

func (fakeAvailabilityService) ForDate(_ context.Context, date string) *domain.DayAvailability {
	if date != "2025-06-02" {
		return &domain.DayAvailability{Date: date, DayOfWeek: -1, Slots: []domain.Slot{}}
	}
	return &domain.DayAvailability{
		Date:      date,
		DayOfWeek: 1,
		Slots: []domain.Slot{
			{Time: "09:00", Available: false},
			{Time: "09:30", Available: true},
		},
	}
}

const validToken = "valid-token"

type fakeAuthService struct {
	mu       sync.Mutex
	sessions int
	logouts  []string
}

var testAdmin = &domain.AdminUser{
	ID:       "6f1c2d3e-0000-4000-8000-0000000000aa",
	Username: "admin",
	Email:    "admin@barbershop.local",
	Role:     domain.UserRoleAdmin,
	Active:   true,
}

func (f *fakeAuthService) Login(_ context.Context, dto domain.LoginRequest, _, _ string) (*domain.LoginResponse, error) {
	if dto.Username != "admin" || dto.Password != "correct-horse" {
		return nil, domain.ErrInvalidCredentials
	}
	f.mu.Lock()
	f.sessions++
	f.mu.Unlock()
	return &domain.LoginResponse{
		Token:     validToken,
		ExpiresAt: time.Now().Add(time.Hour),
		User:      testAdmin.Summary(),
	}, nil
}

func (f *fakeAuthService) Authenticate(_ context.Context, token string) (*domain.AdminSession, error) {
	switch token {
	case validToken:
		return &domain.AdminSession{User: testAdmin, Token: token, Session: &domain.Session{UserID: testAdmin.ID}}, nil
	case "expired-token":
		return nil, domain.ErrSessionExpired
	default:
		return nil, domain.ErrUnauthorized
	}
}

func (f *fakeAuthService) Logout(_ context.Context, token string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.logouts = append(f.logouts, token)
	return nil
}

func (f *fakeAuthService) CleanupExpired(context.Context) (int64, error) {
	return 0, nil
}

type fakeUploadService struct {
	received []byte
	name     string
}

func (f *fakeUploadService) Upload(_ context.Context, data []byte, originalName string) (*domain.UploadResult, error) {
	f.received = data
	f.name = originalName
	return &domain.UploadResult{
		URL:          "/uploads/abc.png",
		Filename:     "abc.png",
		OriginalName: originalName,
		Size:         int64(len(data)),
		ContentType:  "image/png",
	}, nil
}

func (f *fakeUploadService) Delete(_ context.Context, fileURL string) error {
	if fileURL == "/uploads/missing.png" {
		return domain.ErrNotFound
	}
	return nil
}

func (f *fakeUploadService) MaxSize() int64 {
	return 1 << 10
}

type fakeBlogService struct{}

func (fakeBlogService) Create(context.Context, domain.CreateBlogPostDTO) (*domain.BlogPost, error) {
	return nil, domain.ErrAlreadyExists
}

func (fakeBlogService) GetByID(context.Context, string) (*domain.BlogPost, error) {
	return nil, domain.ErrNotFound
}

func (fakeBlogService) GetBySlug(_ context.Context, slug string, onlyPublished bool) (*domain.BlogPost, error) {
	if slug == "cuidado-de-la-barba" && onlyPublished {
		return &domain.BlogPost{Slug: slug, Category: domain.BlogCategoryBeardCare, Published: true}, nil
	}
	return nil, domain.ErrNotFound
}

func (fakeBlogService) Update(context.Context, string, domain.UpdateBlogPostDTO) (*domain.BlogPost, error) {
	return nil, domain.ErrNotFound
}

func (fakeBlogService) Delete(context.Context, string) error {
	return domain.ErrNotFound
}

func (fakeBlogService) List(_ context.Context, filter domain.BlogFilter) ([]domain.BlogPost, error) {
	if filter.Category != nil {
		return []domain.BlogPost{{Slug: "x", Category: *filter.Category}}, nil
	}
	return []domain.BlogPost{}, nil
}
