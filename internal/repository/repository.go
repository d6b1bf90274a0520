package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"barbershop/internal/domain"
)

type Repositories struct {
	Appointment  AppointmentRepository
	ServiceHours ServiceHoursRepository
	WorkingHours WorkingHoursRepository
	Service      ServiceRepository
	Gallery      GalleryRepository
	Staff        StaffRepository
	Blog         BlogRepository
	Review       ReviewRepository
	Company      CompanyRepository
	SiteConfig   SiteConfigRepository
	Locale       LocaleRepository
	AdminUser    AdminUserRepository
	Session      SessionStore
}

// NewRepositories wires the PostgreSQL implementations. Session defaults to
// the admin_sessions table and may be replaced by a RedisSessionStore.
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		Appointment:  NewAppointmentRepository(db),
		ServiceHours: NewServiceHoursRepository(db),
		WorkingHours: NewWorkingHoursRepository(db),
		Service:      NewServiceRepository(db),
		Gallery:      NewGalleryRepository(db),
		Staff:        NewStaffRepository(db),
		Blog:         NewBlogRepository(db),
		Review:       NewReviewRepository(db),
		Company:      NewCompanyRepository(db),
		SiteConfig:   NewSiteConfigRepository(db),
		Locale:       NewLocaleRepository(db),
		AdminUser:    NewAdminUserRepository(db),
		Session:      NewSessionRepository(db),
	}
}

type AppointmentRepository interface {
	Create(ctx context.Context, dto domain.CreateAppointmentDTO) (*domain.Appointment, error)
	GetByID(ctx context.Context, id string) (*domain.Appointment, error)
	Update(ctx context.Context, id string, dto domain.UpdateAppointmentDTO) (*domain.Appointment, error)
	UpdateStatus(ctx context.Context, id string, status domain.AppointmentStatus) (*domain.Appointment, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, filter domain.AppointmentFilter) ([]domain.Appointment, error)
	CountByFilter(ctx context.Context, filter domain.AppointmentFilter) (int, error)
	ListByDate(ctx context.Context, date time.Time) ([]domain.Appointment, error)
}

type ServiceHoursRepository interface {
	List(ctx context.Context) ([]domain.ServiceHours, error)
	GetByID(ctx context.Context, id string) (*domain.ServiceHours, error)
	GetByDayOfWeek(ctx context.Context, day int) (*domain.ServiceHours, error)
	Update(ctx context.Context, id string, dto domain.UpdateServiceHoursDTO) (*domain.ServiceHours, error)
	Upsert(ctx context.Context, hours domain.ServiceHours) error
}

type WorkingHoursRepository interface {
	List(ctx context.Context) ([]domain.WorkingHours, error)
	GetByID(ctx context.Context, id string) (*domain.WorkingHours, error)
	Update(ctx context.Context, id string, dto domain.UpdateWorkingHoursDTO) (*domain.WorkingHours, error)
	Upsert(ctx context.Context, hours domain.WorkingHours) error
}

type ServiceRepository interface {
	Create(ctx context.Context, dto domain.CreateServiceDTO) (*domain.Service, error)
	GetByID(ctx context.Context, id string) (*domain.Service, error)
	Update(ctx context.Context, id string, dto domain.UpdateServiceDTO) (*domain.Service, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, filter domain.ServiceFilter) ([]domain.Service, error)
}

type GalleryRepository interface {
	Create(ctx context.Context, dto domain.CreateGalleryImageDTO) (*domain.GalleryImage, error)
	GetByID(ctx context.Context, id string) (*domain.GalleryImage, error)
	Update(ctx context.Context, id string, dto domain.UpdateGalleryImageDTO) (*domain.GalleryImage, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, onlyActive bool) ([]domain.GalleryImage, error)
}

type StaffRepository interface {
	Create(ctx context.Context, dto domain.CreateStaffMemberDTO) (*domain.StaffMember, error)
	GetByID(ctx context.Context, id string) (*domain.StaffMember, error)
	Update(ctx context.Context, id string, dto domain.UpdateStaffMemberDTO) (*domain.StaffMember, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, onlyActive bool) ([]domain.StaffMember, error)
}

type BlogRepository interface {
	Create(ctx context.Context, dto domain.CreateBlogPostDTO) (*domain.BlogPost, error)
	GetByID(ctx context.Context, id string) (*domain.BlogPost, error)
	GetBySlug(ctx context.Context, slug string, onlyPublished bool) (*domain.BlogPost, error)
	Update(ctx context.Context, id string, dto domain.UpdateBlogPostDTO) (*domain.BlogPost, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, filter domain.BlogFilter) ([]domain.BlogPost, error)
}

type ReviewRepository interface {
	Create(ctx context.Context, dto domain.CreateReviewDTO, approved bool) (*domain.Review, error)
	GetByID(ctx context.Context, id string) (*domain.Review, error)
	Update(ctx context.Context, id string, dto domain.UpdateReviewDTO) (*domain.Review, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, filter domain.ReviewFilter) ([]domain.Review, error)
}

type CompanyRepository interface {
	List(ctx context.Context) ([]domain.CompanyInfo, error)
	GetBySection(ctx context.Context, section string) (*domain.CompanyInfo, error)
	Upsert(ctx context.Context, dto domain.UpsertCompanyInfoDTO) (*domain.CompanyInfo, error)
	DeleteBySection(ctx context.Context, section string) error
}

type SiteConfigRepository interface {
	List(ctx context.Context) ([]domain.SiteConfig, error)
	Get(ctx context.Context, key string) (*domain.SiteConfig, error)
	Upsert(ctx context.Context, dto domain.UpsertSiteConfigDTO) (*domain.SiteConfig, error)
	Delete(ctx context.Context, key string) error
}

type LocaleRepository interface {
	ListCurrencies(ctx context.Context, onlyActive bool) ([]domain.Currency, error)
	ListLanguages(ctx context.Context, onlyActive bool) ([]domain.Language, error)
	DefaultLanguage(ctx context.Context) (*domain.Language, error)
	UpsertCurrency(ctx context.Context, c domain.Currency) error
	UpsertLanguage(ctx context.Context, l domain.Language) error
}

type AdminUserRepository interface {
	Create(ctx context.Context, user domain.AdminUser) (string, error)
	GetByID(ctx context.Context, id string) (*domain.AdminUser, error)
	GetByUsername(ctx context.Context, username string) (*domain.AdminUser, error)
	UpdatePassword(ctx context.Context, id, passwordHash string) error
}

// SessionStore persists admin sessions keyed by the hash of their token.
type SessionStore interface {
	Create(ctx context.Context, session domain.Session) error
	GetByTokenHash(ctx context.Context, tokenHash string) (*domain.Session, error)
	Delete(ctx context.Context, tokenHash string) error
	DeleteByUserID(ctx context.Context, userID string) error
	DeleteExpired(ctx context.Context) (int64, error)
}
