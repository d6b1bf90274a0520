package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"barbershop/internal/domain"
)

type fakeBlogRepo struct {
	created []domain.CreateBlogPostDTO
}

func (r *fakeBlogRepo) Create(_ context.Context, dto domain.CreateBlogPostDTO) (*domain.BlogPost, error) {
	r.created = append(r.created, dto)
	return &domain.BlogPost{ID: "p1", Title: dto.Title, Slug: dto.Slug, Category: dto.Category}, nil
}

func (r *fakeBlogRepo) GetByID(context.Context, string) (*domain.BlogPost, error) {
	return nil, domain.ErrNotFound
}

func (r *fakeBlogRepo) GetBySlug(context.Context, string, bool) (*domain.BlogPost, error) {
	return nil, domain.ErrNotFound
}

func (r *fakeBlogRepo) Update(context.Context, string, domain.UpdateBlogPostDTO) (*domain.BlogPost, error) {
	return nil, domain.ErrNotFound
}

func (r *fakeBlogRepo) Delete(context.Context, string) error {
	return domain.ErrNotFound
}

func (r *fakeBlogRepo) List(context.Context, domain.BlogFilter) ([]domain.BlogPost, error) {
	return []domain.BlogPost{}, nil
}

func TestBlogCreateDerivesSlug(t *testing.T) {
	repo := &fakeBlogRepo{}
	svc := NewBlogService(repo, "es", zap.NewNop())

	post, err := svc.Create(context.Background(), domain.CreateBlogPostDTO{
		Title:    domain.LocalizedText{"es": "Cuidado de la Barba en Invierno", "pt": "Cuidado da barba"},
		Content:  domain.LocalizedText{"es": "..."},
		Category: domain.BlogCategoryBeardCare,
	})
	require.NoError(t, err)
	assert.Equal(t, "cuidado-de-la-barba-en-invierno", post.Slug)
}

func TestBlogCreateValidation(t *testing.T) {
	svc := NewBlogService(&fakeBlogRepo{}, "es", zap.NewNop())

	_, err := svc.Create(context.Background(), domain.CreateBlogPostDTO{
		Title:    domain.LocalizedText{"es": "Hola"},
		Category: domain.BlogCategory("recetas"),
	})
	assert.True(t, domain.IsValidationError(err))

	_, err = svc.Create(context.Background(), domain.CreateBlogPostDTO{
		Title:    domain.LocalizedText{"es": "¡¿?!"},
		Category: domain.BlogCategoryHairCare,
	})
	assert.True(t, domain.IsValidationError(err))

	bad := domain.BlogCategory("otra")
	_, err = svc.List(context.Background(), domain.BlogFilter{Category: &bad})
	assert.True(t, domain.IsValidationError(err))
}

type fakeReviewRepo struct {
	approved []bool
	updates  []domain.UpdateReviewDTO
}

func (r *fakeReviewRepo) Create(_ context.Context, dto domain.CreateReviewDTO, approved bool) (*domain.Review, error) {
	r.approved = append(r.approved, approved)
	return &domain.Review{ID: "r1", CustomerName: dto.CustomerName, Comment: dto.Comment, Rating: dto.Rating, Approved: approved}, nil
}

func (r *fakeReviewRepo) GetByID(context.Context, string) (*domain.Review, error) {
	return nil, domain.ErrNotFound
}

func (r *fakeReviewRepo) Update(_ context.Context, id string, dto domain.UpdateReviewDTO) (*domain.Review, error) {
	r.updates = append(r.updates, dto)
	return &domain.Review{ID: id, Approved: dto.Approved != nil && *dto.Approved}, nil
}

func (r *fakeReviewRepo) Delete(context.Context, string) error { return nil }

func (r *fakeReviewRepo) List(context.Context, domain.ReviewFilter) ([]domain.Review, error) {
	return []domain.Review{}, nil
}

func TestReviewSubmitIsUnapproved(t *testing.T) {
	repo := &fakeReviewRepo{}
	svc := NewReviewService(repo, zap.NewNop())

	review, err := svc.Submit(context.Background(), domain.CreateReviewDTO{CustomerName: "Ana", Rating: 5, Comment: "<script>Genial</script>"})
	require.NoError(t, err)
	assert.False(t, review.Approved)
	assert.Equal(t, "scriptGenial/script", review.Comment)

	approved, err := svc.Approve(context.Background(), "r1")
	require.NoError(t, err)
	assert.True(t, approved.Approved)

	_, err = svc.Submit(context.Background(), domain.CreateReviewDTO{CustomerName: "Ana", Rating: 9, Comment: "x"})
	assert.True(t, domain.IsValidationError(err))
}

func TestSiteConfigSetAndValues(t *testing.T) {
	repo := newFakeSiteConfigRepo(map[string]string{domain.ConfigSitePhone: "+595"})
	svc := NewSiteConfigService(repo, zap.NewNop())
	ctx := context.Background()

	saved, err := svc.Set(ctx, map[string]string{"b_key": "2", "a_key": "1"})
	require.NoError(t, err)
	require.Len(t, saved, 2)
	assert.Equal(t, "a_key", saved[0].Key)

	values, err := svc.Values(ctx)
	require.NoError(t, err)
	assert.Equal(t, map[string]string{domain.ConfigSitePhone: "+595", "a_key": "1", "b_key": "2"}, values)

	_, err = svc.Set(ctx, map[string]string{" ": "x"})
	assert.True(t, domain.IsValidationError(err))

	assert.ErrorIs(t, svc.Delete(ctx, "nope"), domain.ErrNotFound)
}

type fakeCompanyRepo struct {
	failOn string
}

func (r *fakeCompanyRepo) List(context.Context) ([]domain.CompanyInfo, error) {
	return []domain.CompanyInfo{}, nil
}

func (r *fakeCompanyRepo) GetBySection(context.Context, string) (*domain.CompanyInfo, error) {
	return nil, domain.ErrNotFound
}

func (r *fakeCompanyRepo) Upsert(_ context.Context, dto domain.UpsertCompanyInfoDTO) (*domain.CompanyInfo, error) {
	if dto.Section == r.failOn {
		return nil, errors.New("db down")
	}
	return &domain.CompanyInfo{Section: dto.Section}, nil
}

func (r *fakeCompanyRepo) DeleteBySection(context.Context, string) error {
	return domain.ErrNotFound
}

func TestCompanyUpsertManyStopsAtFirstFailure(t *testing.T) {
	svc := NewCompanyService(&fakeCompanyRepo{failOn: "team"}, zap.NewNop())

	saved, err := svc.UpsertMany(context.Background(), []domain.UpsertCompanyInfoDTO{
		{Section: "about"}, {Section: "team"}, {Section: "history"},
	})
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "team"))
	require.Len(t, saved, 1)
	assert.Equal(t, "about", saved[0].Section)
}
