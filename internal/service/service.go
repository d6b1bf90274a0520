package service

import (
	"context"
	"io"

	"go.uber.org/zap"

	"barbershop/config"
	"barbershop/internal/domain"
	"barbershop/internal/metrics"
	"barbershop/internal/notify"
	"barbershop/internal/repository"
	"barbershop/internal/storage"
)

// Notifier queues an out-of-band notification. It must not block.
type Notifier interface {
	Dispatch(msg notify.Message)
}

// EventPublisher forwards appointment events to connected admin panels.
type EventPublisher interface {
	Publish(event domain.AppointmentEvent)
}

type Deps struct {
	Repos       *repository.Repositories
	Logger      *zap.Logger
	Config      *config.Config
	FileStorage storage.FileStorage
	Notifier    Notifier
	Publisher   EventPublisher
	Metrics     *metrics.Metrics
}

type Services struct {
	Appointment  AppointmentService
	Availability AvailabilityService
	Auth         AuthService
	User         UserService
	Catalog      CatalogService
	Gallery      GalleryService
	Staff        StaffService
	Blog         BlogService
	Review       ReviewService
	Company      CompanyService
	SiteConfig   SiteConfigService
	Schedule     ScheduleService
	Locale       LocaleService
	Contact      ContactService
	Upload       UploadService
}

func NewServices(deps Deps) *Services {
	if deps.Notifier == nil {
		deps.Notifier = noopNotifier{}
	}
	if deps.Publisher == nil {
		deps.Publisher = noopPublisher{}
	}

	recipients := newRecipientResolver(deps.Repos.SiteConfig, deps.Config.Notify.EmailTo, deps.Logger)

	return &Services{
		Appointment:  NewAppointmentService(deps.Repos.Appointment, recipients, deps.Notifier, deps.Publisher, deps.Metrics, deps.Config.Locale.DefaultLanguage, deps.Logger),
		Availability: NewAvailabilityService(deps.Repos.ServiceHours, deps.Repos.Appointment, deps.Logger),
		Auth:         NewAuthService(deps.Repos.Session, deps.Repos.AdminUser, deps.Config.Session, deps.Logger),
		User:         NewUserService(deps.Repos.AdminUser, deps.Logger),
		Catalog:      NewCatalogService(deps.Repos.Service, deps.Logger),
		Gallery:      NewGalleryService(deps.Repos.Gallery, deps.Logger),
		Staff:        NewStaffService(deps.Repos.Staff, deps.Logger),
		Blog:         NewBlogService(deps.Repos.Blog, deps.Config.Locale.DefaultLanguage, deps.Logger),
		Review:       NewReviewService(deps.Repos.Review, deps.Logger),
		Company:      NewCompanyService(deps.Repos.Company, deps.Logger),
		SiteConfig:   NewSiteConfigService(deps.Repos.SiteConfig, deps.Logger),
		Schedule:     NewScheduleService(deps.Repos.ServiceHours, deps.Repos.WorkingHours, deps.Logger),
		Locale:       NewLocaleService(deps.Repos.Locale, deps.Config.Locale, deps.Logger),
		Contact:      NewContactService(deps.Repos.Service, recipients, deps.Notifier, deps.Config.Locale.DefaultLanguage, deps.Logger),
		Upload:       NewUploadService(deps.FileStorage, int64(deps.Config.Uploads.MaxSizeMB)<<20, deps.Metrics, deps.Logger),
	}
}

type AppointmentService interface {
	Create(ctx context.Context, dto domain.CreateAppointmentDTO) (*domain.Appointment, error)
	GetByID(ctx context.Context, id string) (*domain.Appointment, error)
	Update(ctx context.Context, id string, dto domain.UpdateAppointmentDTO) (*domain.Appointment, error)
	UpdateStatus(ctx context.Context, id string, status domain.AppointmentStatus) (*domain.Appointment, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, filter domain.AppointmentFilter) ([]domain.Appointment, int, error)
	ListByDate(ctx context.Context, date string) ([]domain.Appointment, error)
	Export(ctx context.Context, w io.Writer, filter domain.AppointmentFilter, lang string) error
}

type AvailabilityService interface {
	ForDate(ctx context.Context, date string) *domain.DayAvailability
}

type AuthService interface {
	Login(ctx context.Context, dto domain.LoginRequest, userAgent, ip string) (*domain.LoginResponse, error)
	Authenticate(ctx context.Context, token string) (*domain.AdminSession, error)
	Logout(ctx context.Context, token string) error
	CleanupExpired(ctx context.Context) (int64, error)
}

type UserService interface {
	Create(ctx context.Context, dto domain.CreateAdminUserDTO) (string, error)
	GetByID(ctx context.Context, id string) (*domain.AdminUser, error)
	ChangePassword(ctx context.Context, id, password string) error
}

type CatalogService interface {
	Create(ctx context.Context, dto domain.CreateServiceDTO) (*domain.Service, error)
	GetByID(ctx context.Context, id string) (*domain.Service, error)
	Update(ctx context.Context, id string, dto domain.UpdateServiceDTO) (*domain.Service, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, filter domain.ServiceFilter) ([]domain.Service, error)
}

type GalleryService interface {
	Create(ctx context.Context, dto domain.CreateGalleryImageDTO) (*domain.GalleryImage, error)
	GetByID(ctx context.Context, id string) (*domain.GalleryImage, error)
	Update(ctx context.Context, id string, dto domain.UpdateGalleryImageDTO) (*domain.GalleryImage, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, onlyActive bool) ([]domain.GalleryImage, error)
}

type StaffService interface {
	Create(ctx context.Context, dto domain.CreateStaffMemberDTO) (*domain.StaffMember, error)
	GetByID(ctx context.Context, id string) (*domain.StaffMember, error)
	Update(ctx context.Context, id string, dto domain.UpdateStaffMemberDTO) (*domain.StaffMember, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, onlyActive bool) ([]domain.StaffMember, error)
}

type BlogService interface {
	Create(ctx context.Context, dto domain.CreateBlogPostDTO) (*domain.BlogPost, error)
	GetByID(ctx context.Context, id string) (*domain.BlogPost, error)
	GetBySlug(ctx context.Context, slug string, onlyPublished bool) (*domain.BlogPost, error)
	Update(ctx context.Context, id string, dto domain.UpdateBlogPostDTO) (*domain.BlogPost, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, filter domain.BlogFilter) ([]domain.BlogPost, error)
}

type ReviewService interface {
	Submit(ctx context.Context, dto domain.CreateReviewDTO) (*domain.Review, error)
	Create(ctx context.Context, dto domain.CreateReviewDTO, approved bool) (*domain.Review, error)
	GetByID(ctx context.Context, id string) (*domain.Review, error)
	Update(ctx context.Context, id string, dto domain.UpdateReviewDTO) (*domain.Review, error)
	Approve(ctx context.Context, id string) (*domain.Review, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, filter domain.ReviewFilter) ([]domain.Review, error)
}

type CompanyService interface {
	List(ctx context.Context) ([]domain.CompanyInfo, error)
	GetBySection(ctx context.Context, section string) (*domain.CompanyInfo, error)
	Upsert(ctx context.Context, dto domain.UpsertCompanyInfoDTO) (*domain.CompanyInfo, error)
	UpsertMany(ctx context.Context, dtos []domain.UpsertCompanyInfoDTO) ([]domain.CompanyInfo, error)
	Delete(ctx context.Context, section string) error
}

type SiteConfigService interface {
	List(ctx context.Context) ([]domain.SiteConfig, error)
	Values(ctx context.Context) (map[string]string, error)
	Set(ctx context.Context, values map[string]string) ([]domain.SiteConfig, error)
	Upsert(ctx context.Context, dto domain.UpsertSiteConfigDTO) (*domain.SiteConfig, error)
	Delete(ctx context.Context, key string) error
}

type ScheduleService interface {
	ListServiceHours(ctx context.Context) ([]domain.ServiceHours, error)
	UpdateServiceHours(ctx context.Context, id string, dto domain.UpdateServiceHoursDTO) (*domain.ServiceHours, error)
	ListWorkingHours(ctx context.Context) ([]domain.WorkingHours, error)
	UpdateWorkingHours(ctx context.Context, id string, dto domain.UpdateWorkingHoursDTO) (*domain.WorkingHours, error)
}

type LocaleService interface {
	Currencies(ctx context.Context) ([]domain.Currency, error)
	Languages(ctx context.Context) ([]domain.Language, error)
	DefaultLanguage(ctx context.Context) (*domain.Language, error)
}

type ContactService interface {
	Send(ctx context.Context, dto domain.ContactMessageDTO) error
}

type UploadService interface {
	Upload(ctx context.Context, data []byte, originalName string) (*domain.UploadResult, error)
	Delete(ctx context.Context, fileURL string) error
	MaxSize() int64
}

func PointerTo[T any](v T) *T {
	return &v
}

type noopNotifier struct{}

func (noopNotifier) Dispatch(notify.Message) {}

type noopPublisher struct{}

func (noopPublisher) Publish(domain.AppointmentEvent) {}
