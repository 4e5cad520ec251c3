package advertisements

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"

	"github.com/goatcricket/GCB-BookingService/internal/domain"
	adRepo "github.com/goatcricket/GCB-BookingService/internal/infra/storage/advertisement"
	userRepo "github.com/goatcricket/GCB-BookingService/internal/infra/storage/user"
	"github.com/goatcricket/GCB-BookingService/internal/service/advertisements/models"
)

// Сообщения валидации заявки, показываются пользователю
const (
	msgBrandNameRequired     = "Brand name is required."
	msgContactPersonRequired = "Contact person name is required."
	msgEmailInvalid          = "Enter a valid email address."
	msgMobileDigitsOnly      = "Mobile number must contain only digits."
	msgMobileExactLength     = "Mobile number must be exactly 10 digits."
	msgPromotionTypeInvalid  = "Select a valid promotion type."
	msgDurationRequired      = "Advertise duration is required."
)

// Service сервис для работы с рекламными заявками
type Service struct {
	adRepo   AdvertisementRepository
	userRepo UserRepository
	logger   Logger
}

// NewService создает новый экземпляр сервиса рекламных заявок
func NewService(
	adRepo AdvertisementRepository,
	userRepo UserRepository,
	logger Logger,
) *Service {
	return &Service{
		adRepo:   adRepo,
		userRepo: userRepo,
		logger:   logger,
	}
}

// Create принимает заявку бренда на размещение рекламы
// Заявка создается в статусе pending и ждет модерации.
// Валидатор накапливает все ошибки и отчитывается разом
func (s *Service) Create(ctx context.Context, req *models.CreateAdvertisementRequest) (*models.AdvertisementResponse, error) {
	s.logger.Info("Create: intake advertisement from brand=%q, promotion=%s", req.BrandName, req.PromotionType)

	if msgs := validateIntake(req); len(msgs) > 0 {
		s.logger.Warn("Create: validation failed for brand=%q: %v", req.BrandName, msgs)
		return nil, &ValidationError{Messages: msgs}
	}

	ad := &domain.Advertisement{
		BrandName:         strings.TrimSpace(req.BrandName),
		ContactPersonName: strings.TrimSpace(req.ContactPersonName),
		Email:             strings.TrimSpace(req.Email),
		MobileNo:          req.MobileNo,
		PromotionType:     domain.PromotionType(req.PromotionType),
		CompanyDetails:    req.CompanyDetails,
		AdvertiseDuration: strings.TrimSpace(req.AdvertiseDuration),
	}

	created, err := s.adRepo.Create(ctx, ad)
	if err != nil {
		s.logger.Error("Create: repository error for brand=%q: %v", req.BrandName, err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: successfully created advertisement id=%d, brand=%q", created.ID, created.BrandName)
	return models.FromDomainAdvertisement(created), nil
}

// List получает заявки с опциональным фильтром по статусу
// Доступно только администраторам
func (s *Service) List(ctx context.Context, req *models.ListAdvertisementsRequest) (*models.AdvertisementListResponse, error) {
	s.logger.Info("List: fetching advertisements for user=%d, status=%v", req.UserID, req.Status)

	if err := s.checkAdminAccess(ctx, req.UserID); err != nil {
		return nil, err
	}

	var status *domain.AdvertisementStatus
	if req.Status != nil {
		converted, err := models.ToDomainAdvertisementStatus(*req.Status)
		if err != nil {
			s.logger.Warn("List: invalid status=%s", *req.Status)
			return nil, fmt.Errorf("%w: invalid status", ErrInvalidStatus)
		}
		status = &converted
	}

	ads, err := s.adRepo.List(ctx, status)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: fetched %d advertisements", len(ads))
	return models.FromDomainAdvertisementList(ads), nil
}

// UpdateStatus выполняет модерацию заявки
// Допустимые переходы: pending -> approved/rejected, approved -> active.
// Доступно только администраторам
func (s *Service) UpdateStatus(ctx context.Context, adID int64, req *models.UpdateStatusRequest) error {
	s.logger.Info("UpdateStatus: updating advertisement id=%d to status=%s by user=%d",
		adID, req.Status, req.UserID)

	if err := s.checkAdminAccess(ctx, req.UserID); err != nil {
		return err
	}

	ad, err := s.adRepo.GetByID(ctx, adID)
	if err != nil {
		if errors.Is(err, adRepo.ErrAdvertisementNotFound) {
			s.logger.Warn("UpdateStatus: advertisement id=%d not found", adID)
			return ErrAdvertisementNotFound
		}
		s.logger.Error("UpdateStatus: repository error for advertisement id=%d: %v", adID, err)
		return fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	newStatus, err := models.ToDomainAdvertisementStatus(req.Status)
	if err != nil {
		s.logger.Warn("UpdateStatus: invalid status=%s for advertisement id=%d", req.Status, adID)
		return fmt.Errorf("%w: invalid status", ErrInvalidStatus)
	}

	if !ad.CanTransitionTo(newStatus) {
		s.logger.Warn("UpdateStatus: transition %s -> %s not allowed for advertisement id=%d",
			ad.Status, newStatus, adID)
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, ad.Status, newStatus)
	}

	if err := s.adRepo.UpdateStatus(ctx, adID, newStatus); err != nil {
		if errors.Is(err, adRepo.ErrAdvertisementNotFound) {
			s.logger.Warn("UpdateStatus: advertisement id=%d not found during update", adID)
			return ErrAdvertisementNotFound
		}
		s.logger.Error("UpdateStatus: repository error for advertisement id=%d: %v", adID, err)
		return fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateStatus: successfully updated advertisement id=%d to status=%s", adID, newStatus)
	return nil
}

// Вспомогательные методы

// validateIntake валидирует заявку и накапливает ВСЕ ошибки, не прерываясь на первой
func validateIntake(req *models.CreateAdvertisementRequest) []string {
	errs := make([]string, 0)

	if strings.TrimSpace(req.BrandName) == "" {
		errs = append(errs, msgBrandNameRequired)
	}

	if strings.TrimSpace(req.ContactPersonName) == "" {
		errs = append(errs, msgContactPersonRequired)
	}

	if _, err := mail.ParseAddress(strings.TrimSpace(req.Email)); err != nil {
		errs = append(errs, msgEmailInvalid)
	}

	errs = append(errs, validateMobile(req.MobileNo)...)

	if !domain.ValidPromotionType(domain.PromotionType(req.PromotionType)) {
		errs = append(errs, msgPromotionTypeInvalid)
	}

	if strings.TrimSpace(req.AdvertiseDuration) == "" {
		errs = append(errs, msgDurationRequired)
	}

	return errs
}

// validateMobile проверяет номер телефона: только цифры, ровно 10 символов
func validateMobile(mobile string) []string {
	errs := make([]string, 0)

	for _, r := range mobile {
		if r < '0' || r > '9' {
			errs = append(errs, msgMobileDigitsOnly)
			break
		}
	}

	if len(mobile) != domain.MobileNumberLength {
		errs = append(errs, msgMobileExactLength)
	}

	return errs
}

// checkAdminAccess проверяет, что пользователь является администратором
func (s *Service) checkAdminAccess(ctx context.Context, userID int64) error {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			s.logger.Warn("checkAdminAccess: user id=%d not found", userID)
			return ErrAccessDenied
		}
		s.logger.Error("checkAdminAccess: failed to get user id=%d: %v", userID, err)
		return fmt.Errorf("%w: checkAdminAccess - failed to get user: %v", ErrInternal, err)
	}

	if !user.IsAdmin() {
		s.logger.Warn("checkAdminAccess: user id=%d is not an admin", userID)
		return ErrAccessDenied
	}

	return nil
}
