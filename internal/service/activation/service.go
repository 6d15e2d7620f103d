package activation

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-LabReservationService/internal/domain"
	accountRepo "github.com/m04kA/SMC-LabReservationService/internal/infra/storage/account"
	"github.com/m04kA/SMC-LabReservationService/internal/integrations/identity"
	"github.com/m04kA/SMC-LabReservationService/internal/service/activation/models"
)

// Service сервис первичной активации аккаунта:
// подтверждение email, затем обязательная смена выданного пароля
type Service struct {
	accountRepo    AccountRepository
	identityClient IdentityClient
	logger         Logger
}

// NewService создает новый экземпляр сервиса активации
func NewService(accountRepo AccountRepository, identityClient IdentityClient, logger Logger) *Service {
	return &Service{
		accountRepo:    accountRepo,
		identityClient: identityClient,
		logger:         logger,
	}
}

// Status возвращает флаги активации пользователя.
// Флаг подтверждения email синхронизируется с провайдером, пока он не выставлен в хранилище.
func (s *Service) Status(ctx context.Context, userID string) (*models.StatusResponse, error) {
	s.logger.Info("Status: user=%s", userID)

	if strings.TrimSpace(userID) == "" {
		return nil, fmt.Errorf("%w: user id is required", ErrInvalidInput)
	}

	rec, err := s.loadRecord(ctx, userID)
	if err != nil {
		return nil, err
	}

	return models.FromDomainRecord(rec), nil
}

// SendVerification отправляет письмо со ссылкой подтверждения; для подтвержденных ничего не делает
func (s *Service) SendVerification(ctx context.Context, userID string) error {
	s.logger.Info("SendVerification: user=%s", userID)

	if strings.TrimSpace(userID) == "" {
		return fmt.Errorf("%w: user id is required", ErrInvalidInput)
	}

	rec, err := s.loadRecord(ctx, userID)
	if err != nil {
		return err
	}

	if rec.EmailVerified || rec.IsInitialized {
		s.logger.Info("SendVerification: user=%s already verified, skipping", userID)
		return nil
	}

	if err := s.identityClient.SendEmailVerification(ctx, userID); err != nil {
		return s.mapIdentityError("SendVerification", userID, err)
	}

	s.logger.Info("SendVerification: verification email sent to user=%s", userID)
	return nil
}

// ConfirmEmail подтверждает email по коду из ссылки
func (s *Service) ConfirmEmail(ctx context.Context, code string) (*models.ConfirmEmailResponse, error) {
	if strings.TrimSpace(code) == "" {
		return nil, fmt.Errorf("%w: verification code is required", ErrInvalidInput)
	}

	userID, err := s.identityClient.ConfirmEmailVerification(ctx, code)
	if err != nil {
		if errors.Is(err, identity.ErrInvalidCode) {
			s.logger.Warn("ConfirmEmail: invalid verification code")
			return nil, ErrInvalidVerificationCode
		}
		return nil, s.mapIdentityError("ConfirmEmail", "", err)
	}

	s.logger.Info("ConfirmEmail: provider confirmed email for user=%s", userID)

	// Запись могла еще не существовать, если пользователь ни разу не открывал статус
	if _, err := s.loadRecord(ctx, userID); err != nil {
		return nil, err
	}

	if err := s.accountRepo.MarkEmailVerified(ctx, userID); err != nil {
		s.logger.Error("ConfirmEmail: failed to mark email verified for user=%s: %v", userID, err)
		return nil, fmt.Errorf("%w: ConfirmEmail - repository error: %v", ErrTransientFailure, err)
	}

	return &models.ConfirmEmailResponse{UserID: userID, EmailVerified: true}, nil
}

// CompleteInitialization меняет выданный пароль и переводит аккаунт в состояние initialized.
// Повторный вызов для инициализированного аккаунта возвращает запись без обращений к провайдеру.
func (s *Service) CompleteInitialization(ctx context.Context, req *models.CompleteInitializationRequest) (*models.StatusResponse, error) {
	s.logger.Info("CompleteInitialization: user=%s", req.UserID)

	if strings.TrimSpace(req.UserID) == "" {
		return nil, fmt.Errorf("%w: user id is required", ErrInvalidInput)
	}

	// 1. Текущее состояние
	rec, err := s.loadRecord(ctx, req.UserID)
	if err != nil {
		return nil, err
	}

	if rec.IsInitialized {
		s.logger.Info("CompleteInitialization: user=%s already initialized", req.UserID)
		return models.FromDomainRecord(rec), nil
	}

	if !rec.EmailVerified {
		s.logger.Warn("CompleteInitialization: user=%s email not verified", req.UserID)
		return nil, ErrEmailNotVerified
	}

	// 2. Валидация паролей
	if err := validatePasswords(req); err != nil {
		s.logger.Warn("CompleteInitialization: user=%s invalid input: %v", req.UserID, err)
		return nil, err
	}

	// 3. Подтверждение текущего пароля
	session, err := s.identityClient.Reauthenticate(ctx, rec.Email, req.CurrentPassword)
	if err != nil {
		if errors.Is(err, identity.ErrInvalidCredentials) {
			s.logger.Warn("CompleteInitialization: user=%s wrong current password", req.UserID)
			return nil, ErrInvalidCredentials
		}
		return nil, s.mapIdentityError("CompleteInitialization", req.UserID, err)
	}

	// 4. Смена пароля у провайдера
	if err := s.identityClient.UpdatePassword(ctx, req.UserID, session.SessionToken, req.NewPassword); err != nil {
		switch {
		case errors.Is(err, identity.ErrRequiresRecentLogin), errors.Is(err, identity.ErrInvalidCredentials):
			// Сессия из Reauthenticate устарела или отклонена
			s.logger.Warn("CompleteInitialization: user=%s requires recent login", req.UserID)
			return nil, ErrReauthenticationRequired
		case errors.Is(err, identity.ErrWeakPassword):
			return nil, fmt.Errorf("%w: new password rejected by policy", ErrInvalidInput)
		}
		return nil, s.mapIdentityError("CompleteInitialization", req.UserID, err)
	}

	// 5. Фиксация перехода одной записью
	updated, err := s.accountRepo.MarkInitialized(ctx, req.UserID)
	if err != nil {
		if errors.Is(err, accountRepo.ErrAlreadyInitialized) {
			s.logger.Info("CompleteInitialization: user=%s initialized concurrently", req.UserID)
			return s.Status(ctx, req.UserID)
		}
		s.logger.Error("CompleteInitialization: failed to mark user=%s initialized: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: CompleteInitialization - repository error: %v", ErrTransientFailure, err)
	}

	s.logger.Info("CompleteInitialization: user=%s initialized", req.UserID)
	return models.FromDomainRecord(updated), nil
}

// loadRecord читает запись активации, при отсутствии заводит ее по данным провайдера
// и подтягивает флаг подтверждения email, если провайдер уже считает его подтвержденным
func (s *Service) loadRecord(ctx context.Context, userID string) (*domain.ActivationRecord, error) {
	rec, err := s.accountRepo.GetByUserID(ctx, userID)
	if err != nil && !errors.Is(err, accountRepo.ErrAccountNotFound) {
		s.logger.Error("loadRecord: repository error for user=%s: %v", userID, err)
		return nil, fmt.Errorf("%w: loadRecord - repository error: %v", ErrTransientFailure, err)
	}

	if rec != nil && (rec.EmailVerified || rec.IsInitialized) {
		return rec, nil
	}

	state, idErr := s.identityClient.GetVerificationState(ctx, userID)
	if idErr != nil {
		if rec != nil {
			// Провайдер недоступен: отдаем то, что знает хранилище
			s.logger.Warn("loadRecord: failed to sync verification for user=%s: %v", userID, idErr)
			return rec, nil
		}
		return nil, s.mapIdentityError("loadRecord", userID, idErr)
	}

	if rec == nil {
		s.logger.Info("loadRecord: provisioning activation record for user=%s", userID)
		rec = &domain.ActivationRecord{
			UserID:        userID,
			Email:         state.Email,
			DisplayName:   state.DisplayName,
			EmailVerified: state.EmailVerified,
		}
		if err := s.accountRepo.Create(ctx, rec); err != nil {
			s.logger.Error("loadRecord: failed to create record for user=%s: %v", userID, err)
			return nil, fmt.Errorf("%w: loadRecord - repository error: %v", ErrTransientFailure, err)
		}
		return rec, nil
	}

	if state.EmailVerified {
		if err := s.accountRepo.MarkEmailVerified(ctx, userID); err != nil {
			s.logger.Error("loadRecord: failed to sync verified flag for user=%s: %v", userID, err)
			return nil, fmt.Errorf("%w: loadRecord - repository error: %v", ErrTransientFailure, err)
		}
		rec.EmailVerified = true
	}

	return rec, nil
}

func (s *Service) mapIdentityError(op, userID string, err error) error {
	if errors.Is(err, identity.ErrUserNotFound) {
		s.logger.Warn("%s: user=%s not found at identity provider", op, userID)
		return ErrUserNotFound
	}
	s.logger.Error("%s: identity provider error for user=%s: %v", op, userID, err)
	return fmt.Errorf("%w: %s - identity provider error: %v", ErrTransientFailure, op, err)
}

func validatePasswords(req *models.CompleteInitializationRequest) error {
	if req.CurrentPassword == "" {
		return fmt.Errorf("%w: current password is required", ErrInvalidInput)
	}
	if len([]rune(req.NewPassword)) < domain.MinPasswordLength {
		return fmt.Errorf("%w: new password must be at least %d characters", ErrInvalidInput, domain.MinPasswordLength)
	}
	if req.NewPassword != req.ConfirmPassword {
		return fmt.Errorf("%w: password confirmation does not match", ErrInvalidInput)
	}
	return nil
}
