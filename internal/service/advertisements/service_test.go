package advertisements

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goatcricket/GCB-BookingService/internal/domain"
	adRepo "github.com/goatcricket/GCB-BookingService/internal/infra/storage/advertisement"
	userRepo "github.com/goatcricket/GCB-BookingService/internal/infra/storage/user"
	"github.com/goatcricket/GCB-BookingService/internal/service/advertisements/models"
)

type fakeAdRepo struct {
	ads           map[int64]*domain.Advertisement
	created       *domain.Advertisement
	updatedStatus domain.AdvertisementStatus
	listStatus    *domain.AdvertisementStatus
}

func (f *fakeAdRepo) Create(_ context.Context, ad *domain.Advertisement) (*domain.Advertisement, error) {
	stored := *ad
	stored.ID = 5
	stored.Status = domain.AdStatusPending
	f.created = &stored
	return &stored, nil
}

func (f *fakeAdRepo) GetByID(_ context.Context, id int64) (*domain.Advertisement, error) {
	ad, ok := f.ads[id]
	if !ok {
		return nil, adRepo.ErrAdvertisementNotFound
	}
	return ad, nil
}

func (f *fakeAdRepo) List(_ context.Context, status *domain.AdvertisementStatus) ([]*domain.Advertisement, error) {
	f.listStatus = status

	result := make([]*domain.Advertisement, 0)
	for _, ad := range f.ads {
		if status != nil && ad.Status != *status {
			continue
		}
		result = append(result, ad)
	}
	return result, nil
}

func (f *fakeAdRepo) UpdateStatus(_ context.Context, id int64, status domain.AdvertisementStatus) error {
	if _, ok := f.ads[id]; !ok {
		return adRepo.ErrAdvertisementNotFound
	}
	f.updatedStatus = status
	return nil
}

type fakeUserRepo struct {
	users map[int64]*domain.User
}

func (f *fakeUserRepo) GetByID(_ context.Context, id int64) (*domain.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, userRepo.ErrUserNotFound
	}
	return u, nil
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

const (
	adminID   int64 = 1
	regularID int64 = 10
)

func newTestService(ads *fakeAdRepo) *Service {
	users := &fakeUserRepo{users: map[int64]*domain.User{
		adminID:   {ID: adminID, Role: domain.RoleAdmin},
		regularID: {ID: regularID, Role: domain.RoleUser},
	}}
	return NewService(ads, users, noopLogger{})
}

func validIntake() *models.CreateAdvertisementRequest {
	return &models.CreateAdvertisementRequest{
		BrandName:         "SG Cricket",
		ContactPersonName: "Rahul Sharma",
		Email:             "rahul@sgcricket.example",
		MobileNo:          "9876543210",
		PromotionType:     "ground",
		CompanyDetails:    "Sports equipment manufacturer",
		AdvertiseDuration: "3 months",
	}
}

func TestService_Create(t *testing.T) {
	repo := &fakeAdRepo{}
	svc := newTestService(repo)

	resp, err := svc.Create(context.Background(), validIntake())
	require.NoError(t, err)

	assert.Equal(t, int64(5), resp.ID)
	assert.Equal(t, "pending", resp.Status)
	require.NotNil(t, repo.created)
	assert.Equal(t, domain.PromotionType("ground"), repo.created.PromotionType)
}

func TestService_Create_MobileValidation(t *testing.T) {
	svc := newTestService(&fakeAdRepo{})

	// Буквы в номере: обе ошибки разом - не только цифры и не 10 символов
	req := validIntake()
	req.MobileNo = "98ab3210"

	_, err := svc.Create(context.Background(), req)

	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Contains(t, vErr.Messages, msgMobileDigitsOnly)
	assert.Contains(t, vErr.Messages, msgMobileExactLength)

	// Цифры, но не 10: только ошибка длины
	req = validIntake()
	req.MobileNo = "12345"

	_, err = svc.Create(context.Background(), req)
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, []string{msgMobileExactLength}, vErr.Messages)
}

func TestService_Create_AccumulatesAllErrors(t *testing.T) {
	svc := newTestService(&fakeAdRepo{})

	// Пустая заявка собирает полный список ошибок
	_, err := svc.Create(context.Background(), &models.CreateAdvertisementRequest{})

	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Contains(t, vErr.Messages, msgBrandNameRequired)
	assert.Contains(t, vErr.Messages, msgContactPersonRequired)
	assert.Contains(t, vErr.Messages, msgEmailInvalid)
	assert.Contains(t, vErr.Messages, msgMobileExactLength)
	assert.Contains(t, vErr.Messages, msgPromotionTypeInvalid)
	assert.Contains(t, vErr.Messages, msgDurationRequired)
}

func TestService_Create_InvalidPromotionType(t *testing.T) {
	svc := newTestService(&fakeAdRepo{})

	req := validIntake()
	req.PromotionType = "billboard"

	_, err := svc.Create(context.Background(), req)

	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, []string{msgPromotionTypeInvalid}, vErr.Messages)
}

func TestService_List_RequiresAdmin(t *testing.T) {
	repo := &fakeAdRepo{ads: map[int64]*domain.Advertisement{
		1: {ID: 1, BrandName: "SG Cricket", Status: domain.AdStatusPending},
		2: {ID: 2, BrandName: "MRF", Status: domain.AdStatusApproved},
	}}
	svc := newTestService(repo)

	_, err := svc.List(context.Background(), &models.ListAdvertisementsRequest{UserID: regularID})
	assert.ErrorIs(t, err, ErrAccessDenied)

	resp, err := svc.List(context.Background(), &models.ListAdvertisementsRequest{UserID: adminID})
	require.NoError(t, err)
	assert.Len(t, resp.Advertisements, 2)

	// Фильтр по статусу
	status := "approved"
	resp, err = svc.List(context.Background(), &models.ListAdvertisementsRequest{UserID: adminID, Status: &status})
	require.NoError(t, err)
	require.Len(t, resp.Advertisements, 1)
	assert.Equal(t, "MRF", resp.Advertisements[0].BrandName)

	// Неизвестный статус отклоняется
	status = "archived"
	_, err = svc.List(context.Background(), &models.ListAdvertisementsRequest{UserID: adminID, Status: &status})
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestService_UpdateStatus(t *testing.T) {
	repo := &fakeAdRepo{ads: map[int64]*domain.Advertisement{
		1: {ID: 1, Status: domain.AdStatusPending},
	}}
	svc := newTestService(repo)

	// Модерация доступна только администраторам
	err := svc.UpdateStatus(context.Background(), 1, &models.UpdateStatusRequest{UserID: regularID, Status: "approved"})
	assert.ErrorIs(t, err, ErrAccessDenied)

	err = svc.UpdateStatus(context.Background(), 1, &models.UpdateStatusRequest{UserID: adminID, Status: "approved"})
	require.NoError(t, err)
	assert.Equal(t, domain.AdStatusApproved, repo.updatedStatus)

	// Недопустимый переход pending -> active
	err = svc.UpdateStatus(context.Background(), 1, &models.UpdateStatusRequest{UserID: adminID, Status: "active"})
	assert.ErrorIs(t, err, ErrInvalidTransition)

	// Несуществующая заявка
	err = svc.UpdateStatus(context.Background(), 99, &models.UpdateStatusRequest{UserID: adminID, Status: "approved"})
	assert.ErrorIs(t, err, ErrAdvertisementNotFound)
}
