package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"barbershop/internal/domain"
	"barbershop/internal/notify"
)

type fakeAppointmentRepo struct {
	mu      sync.Mutex
	seq     int
	byID    map[string]*domain.Appointment
	listErr error
}

func newFakeAppointmentRepo() *fakeAppointmentRepo {
	return &fakeAppointmentRepo{byID: make(map[string]*domain.Appointment)}
}

func (r *fakeAppointmentRepo) slotTaken(date, clock, exceptID string) bool {
	for id, a := range r.byID {
		if id != exceptID && a.AppointmentDate == date && a.AppointmentTime == clock {
			return true
		}
	}
	return false
}

func (r *fakeAppointmentRepo) Create(_ context.Context, dto domain.CreateAppointmentDTO) (*domain.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.slotTaken(dto.AppointmentDate, dto.AppointmentTime, "") {
		return nil, fmt.Errorf("fake: %w", domain.ErrSlotTaken)
	}

	r.seq++
	a := &domain.Appointment{
		ID:              fmt.Sprintf("appt-%d", r.seq),
		CustomerName:    dto.CustomerName,
		CustomerPhone:   dto.CustomerPhone,
		CustomerEmail:   dto.CustomerEmail,
		ServiceID:       &dto.ServiceID,
		AppointmentDate: dto.AppointmentDate,
		AppointmentTime: dto.AppointmentTime,
		Notes:           dto.Notes,
		Status:          domain.AppointmentStatusPending,
		CreatedAt:       time.Now(),
		UpdatedAt:       time.Now(),
	}
	r.byID[a.ID] = a

	cp := *a
	return &cp, nil
}

func (r *fakeAppointmentRepo) GetByID(_ context.Context, id string) (*domain.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	a, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *a
	return &cp, nil
}

func (r *fakeAppointmentRepo) Update(_ context.Context, id string, dto domain.UpdateAppointmentDTO) (*domain.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	a, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrNotFound
	}

	date, clock := a.AppointmentDate, a.AppointmentTime
	if dto.AppointmentDate != nil {
		date = *dto.AppointmentDate
	}
	if dto.AppointmentTime != nil {
		clock = *dto.AppointmentTime
	}
	if r.slotTaken(date, clock, id) {
		return nil, domain.ErrSlotTaken
	}

	a.AppointmentDate, a.AppointmentTime = date, clock
	if dto.CustomerName != nil {
		a.CustomerName = *dto.CustomerName
	}
	if dto.Status != nil {
		a.Status = *dto.Status
	}

	cp := *a
	return &cp, nil
}

func (r *fakeAppointmentRepo) UpdateStatus(ctx context.Context, id string, status domain.AppointmentStatus) (*domain.Appointment, error) {
	return r.Update(ctx, id, domain.UpdateAppointmentDTO{Status: &status})
}

func (r *fakeAppointmentRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.byID, id)
	return nil
}

func (r *fakeAppointmentRepo) List(_ context.Context, filter domain.AppointmentFilter) ([]domain.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.listErr != nil {
		return nil, r.listErr
	}

	out := make([]domain.Appointment, 0, len(r.byID))
	for _, a := range r.byID {
		if filter.Status != nil && a.Status != *filter.Status {
			continue
		}
		out = append(out, *a)
	}
	return out, nil
}

func (r *fakeAppointmentRepo) CountByFilter(ctx context.Context, filter domain.AppointmentFilter) (int, error) {
	list, err := r.List(ctx, filter)
	return len(list), err
}

func (r *fakeAppointmentRepo) ListByDate(_ context.Context, date time.Time) ([]domain.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.listErr != nil {
		return nil, r.listErr
	}

	day := date.Format(domain.DateLayout)
	out := make([]domain.Appointment, 0)
	for _, a := range r.byID {
		if a.AppointmentDate == day {
			out = append(out, *a)
		}
	}
	return out, nil
}

type fakeServiceHoursRepo struct {
	byDay map[int]*domain.ServiceHours
	err   error
}

func (r *fakeServiceHoursRepo) List(context.Context) ([]domain.ServiceHours, error) {
	out := make([]domain.ServiceHours, 0, len(r.byDay))
	for _, h := range r.byDay {
		out = append(out, *h)
	}
	return out, r.err
}

func (r *fakeServiceHoursRepo) GetByID(_ context.Context, id string) (*domain.ServiceHours, error) {
	for _, h := range r.byDay {
		if h.ID == id {
			return h, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *fakeServiceHoursRepo) GetByDayOfWeek(_ context.Context, day int) (*domain.ServiceHours, error) {
	if r.err != nil {
		return nil, r.err
	}
	h, ok := r.byDay[day]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return h, nil
}

func (r *fakeServiceHoursRepo) Update(_ context.Context, id string, dto domain.UpdateServiceHoursDTO) (*domain.ServiceHours, error) {
	for _, h := range r.byDay {
		if h.ID == id {
			if dto.AvailableSlots != nil {
				h.AvailableSlots = *dto.AvailableSlots
			}
			if dto.IsAvailable != nil {
				h.IsAvailable = *dto.IsAvailable
			}
			h.StartTime = merged(dto.StartTime, h.StartTime)
			h.EndTime = merged(dto.EndTime, h.EndTime)
			h.BreakStartTime = merged(dto.BreakStartTime, h.BreakStartTime)
			h.BreakEndTime = merged(dto.BreakEndTime, h.BreakEndTime)
			if dto.ClearBreak {
				h.BreakStartTime, h.BreakEndTime = nil, nil
			}
			return h, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *fakeServiceHoursRepo) Upsert(_ context.Context, hours domain.ServiceHours) error {
	r.byDay[hours.DayOfWeek] = &hours
	return nil
}

type fakeWorkingHoursRepo struct {
	rows map[string]*domain.WorkingHours
}

func (r *fakeWorkingHoursRepo) List(context.Context) ([]domain.WorkingHours, error) {
	out := make([]domain.WorkingHours, 0, len(r.rows))
	for _, h := range r.rows {
		out = append(out, *h)
	}
	return out, nil
}

func (r *fakeWorkingHoursRepo) GetByID(_ context.Context, id string) (*domain.WorkingHours, error) {
	h, ok := r.rows[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return h, nil
}

func (r *fakeWorkingHoursRepo) Update(_ context.Context, id string, dto domain.UpdateWorkingHoursDTO) (*domain.WorkingHours, error) {
	h, ok := r.rows[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	h.OpenTime = merged(dto.OpenTime, h.OpenTime)
	h.CloseTime = merged(dto.CloseTime, h.CloseTime)
	h.BreakStartTime = merged(dto.BreakStartTime, h.BreakStartTime)
	h.BreakEndTime = merged(dto.BreakEndTime, h.BreakEndTime)
	if dto.ClearBreak {
		h.BreakStartTime, h.BreakEndTime = nil, nil
	}
	return h, nil
}

func (r *fakeWorkingHoursRepo) Upsert(_ context.Context, hours domain.WorkingHours) error {
	r.rows[hours.ID] = &hours
	return nil
}

type fakeUserRepo struct {
	mu    sync.Mutex
	users map[string]*domain.AdminUser
}

func newFakeUserRepo(users ...domain.AdminUser) *fakeUserRepo {
	r := &fakeUserRepo{users: make(map[string]*domain.AdminUser)}
	for i := range users {
		u := users[i]
		r.users[u.ID] = &u
	}
	return r
}

func (r *fakeUserRepo) Create(_ context.Context, user domain.AdminUser) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	user.ID = fmt.Sprintf("user-%d", len(r.users)+1)
	r.users[user.ID] = &user
	return user.ID, nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id string) (*domain.AdminUser, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (r *fakeUserRepo) GetByUsername(_ context.Context, username string) (*domain.AdminUser, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.users {
		if u.Username == username {
			cp := *u
			return &cp, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *fakeUserRepo) UpdatePassword(_ context.Context, id, passwordHash string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.users[id]
	if !ok {
		return domain.ErrNotFound
	}
	u.PasswordHash = passwordHash
	return nil
}

type fakeSessionStore struct {
	mu       sync.Mutex
	sessions map[string]domain.Session
}

func newFakeSessionStore() *fakeSessionStore {
	return &fakeSessionStore{sessions: make(map[string]domain.Session)}
}

func (s *fakeSessionStore) Create(_ context.Context, session domain.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[session.TokenHash] = session
	return nil
}

func (s *fakeSessionStore) GetByTokenHash(_ context.Context, tokenHash string) (*domain.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	session, ok := s.sessions[tokenHash]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &session, nil
}

func (s *fakeSessionStore) Delete(_ context.Context, tokenHash string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, tokenHash)
	return nil
}

func (s *fakeSessionStore) DeleteByUserID(_ context.Context, userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for k, v := range s.sessions {
		if v.UserID == userID {
			delete(s.sessions, k)
		}
	}
	return nil
}

func (s *fakeSessionStore) DeleteExpired(context.Context) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var n int64
	for k, v := range s.sessions {
		if v.Expired(time.Now()) {
			delete(s.sessions, k)
			n++
		}
	}
	return n, nil
}

func (s *fakeSessionStore) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

type fakeSiteConfigRepo struct {
	entries map[string]domain.SiteConfig
}

func newFakeSiteConfigRepo(values map[string]string) *fakeSiteConfigRepo {
	r := &fakeSiteConfigRepo{entries: make(map[string]domain.SiteConfig)}
	for k, v := range values {
		r.entries[k] = domain.SiteConfig{ID: k, Key: k, Value: v}
	}
	return r
}

func (r *fakeSiteConfigRepo) List(context.Context) ([]domain.SiteConfig, error) {
	out := make([]domain.SiteConfig, 0, len(r.entries))
	for _, e := range r.entries {
		out = append(out, e)
	}
	return out, nil
}

func (r *fakeSiteConfigRepo) Get(_ context.Context, key string) (*domain.SiteConfig, error) {
	e, ok := r.entries[key]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &e, nil
}

func (r *fakeSiteConfigRepo) Upsert(_ context.Context, dto domain.UpsertSiteConfigDTO) (*domain.SiteConfig, error) {
	e := domain.SiteConfig{ID: dto.Key, Key: dto.Key, Value: dto.Value, Description: dto.Description}
	r.entries[dto.Key] = e
	return &e, nil
}

func (r *fakeSiteConfigRepo) Delete(_ context.Context, key string) error {
	if _, ok := r.entries[key]; !ok {
		return domain.ErrNotFound
	}
	delete(r.entries, key)
	return nil
}

type recordingNotifier struct {
	mu       sync.Mutex
	messages []notify.Message
}

func (n *recordingNotifier) Dispatch(msg notify.Message) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.messages = append(n.messages, msg)
}

func (n *recordingNotifier) sent() []notify.Message {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]notify.Message(nil), n.messages...)
}

type recordingPublisher struct {
	mu     sync.Mutex
	events []domain.AppointmentEvent
}

func (p *recordingPublisher) Publish(event domain.AppointmentEvent) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)
}

func (p *recordingPublisher) types() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]string, len(p.events))
	for i, e := range p.events {
		out[i] = e.Type
	}
	return out
}

type fakeStorage struct {
	files     map[string][]byte
	uploadErr error
}

func newFakeStorage() *fakeStorage {
	return &fakeStorage{files: make(map[string][]byte)}
}

func (s *fakeStorage) UploadFile(_ context.Context, data []byte, filename, _ string) (string, error) {
	if s.uploadErr != nil {
		return "", s.uploadErr
	}
	url := "/uploads/" + filename
	s.files[url] = data
	return url, nil
}

func (s *fakeStorage) DeleteFile(_ context.Context, fileURL string) error {
	if _, ok := s.files[fileURL]; !ok {
		return domain.ErrNotFound
	}
	delete(s.files, fileURL)
	return nil
}
