package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-FieldBookingService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-FieldBookingService/internal/infra/storage/booking"
	fieldRepo "github.com/m04kA/SMC-FieldBookingService/internal/infra/storage/field"
	"github.com/m04kA/SMC-FieldBookingService/internal/service/bookings/models"
)

// Service сервис для работы с существующими бронированиями.
// Создание бронирований живет в usecase/reserve; здесь — переходы статусов
// и чтение.
type Service struct {
	bookingRepo BookingRepository
	fieldRepo   FieldRepository
	publisher   EventPublisher
	logger      Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	bookingRepo BookingRepository,
	fieldRepo FieldRepository,
	publisher EventPublisher,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		fieldRepo:   fieldRepo,
		publisher:   publisher,
		logger:      logger,
	}
}

// GetByID получает бронирование по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%d", id)

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%d not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainBooking(booking), nil
}

// Confirm переводит бронирование pending -> confirmed.
// Идемпотентна: подтверждение уже подтвержденного бронирования — успешный no-op.
// Подтверждение отмененного бронирования — ErrInvalidState: отмена терминальна
// и всегда выигрывает у опоздавшего confirm.
func (s *Service) Confirm(ctx context.Context, bookingID int64) (*models.BookingResponse, error) {
	s.logger.Info("Confirm: confirming booking id=%d", bookingID)

	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Confirm: booking id=%d not found", bookingID)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("Confirm: repository error for booking id=%d: %v", bookingID, err)
		return nil, fmt.Errorf("%w: Confirm - repository error: %v", ErrInternal, err)
	}

	if booking.Status == domain.StatusConfirmed {
		s.logger.Info("Confirm: booking id=%d already confirmed", bookingID)
		return models.FromDomainBooking(booking), nil
	}

	if !booking.CanBeConfirmed() {
		s.logger.Warn("Confirm: booking id=%d cannot be confirmed, status=%s", bookingID, booking.Status)
		return nil, ErrInvalidState
	}

	// Переход pending -> confirmed выполняется условным UPDATE: если между
	// чтением и записью бронирование успели отменить, запись не происходит.
	// Отмена терминальна и всегда выигрывает у опоздавшего confirm.
	if err := s.bookingRepo.UpdateStatus(ctx, bookingID, domain.StatusPending, domain.StatusConfirmed); err != nil {
		if errors.Is(err, bookingRepo.ErrStatusChanged) {
			return s.confirmAfterRace(ctx, bookingID)
		}
		s.logger.Error("Confirm: repository error for booking id=%d: %v", bookingID, err)
		return nil, fmt.Errorf("%w: Confirm - repository error: %v", ErrInternal, err)
	}

	booking.Status = domain.StatusConfirmed

	if err := s.publisher.PublishBookingConfirmed(ctx, booking); err != nil {
		s.logger.Warn("Confirm: failed to publish booking.confirmed for id=%d: %v", bookingID, err)
	}

	s.logger.Info("Confirm: successfully confirmed booking id=%d", bookingID)
	return models.FromDomainBooking(booking), nil
}

// confirmAfterRace разбирает проигранную гонку условного confirm:
// перечитывает бронирование и решает по фактическому статусу.
func (s *Service) confirmAfterRace(ctx context.Context, bookingID int64) (*models.BookingResponse, error) {
	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			return nil, ErrBookingNotFound
		}
		s.logger.Error("Confirm: repository error for booking id=%d: %v", bookingID, err)
		return nil, fmt.Errorf("%w: Confirm - repository error: %v", ErrInternal, err)
	}

	if booking.Status == domain.StatusConfirmed {
		s.logger.Info("Confirm: booking id=%d confirmed concurrently", bookingID)
		return models.FromDomainBooking(booking), nil
	}

	s.logger.Warn("Confirm: booking id=%d was cancelled concurrently", bookingID)
	return nil, ErrInvalidState
}

// Cancel переводит бронирование pending|confirmed -> cancelled.
// Идемпотентна: повторная отмена — успешный no-op. Интервал освобождается
// немедленно и доступен для нового reserve.
func (s *Service) Cancel(ctx context.Context, bookingID int64) (*models.BookingResponse, error) {
	s.logger.Info("Cancel: cancelling booking id=%d", bookingID)

	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Cancel: booking id=%d not found", bookingID)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("Cancel: repository error for booking id=%d: %v", bookingID, err)
		return nil, fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	if booking.IsCancelled() {
		s.logger.Info("Cancel: booking id=%d already cancelled", bookingID)
		return models.FromDomainBooking(booking), nil
	}

	if err := s.bookingRepo.Cancel(ctx, bookingID); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			return nil, ErrBookingNotFound
		}
		s.logger.Error("Cancel: repository error for booking id=%d: %v", bookingID, err)
		return nil, fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	booking.Status = domain.StatusCancelled

	if err := s.publisher.PublishBookingCancelled(ctx, booking); err != nil {
		s.logger.Warn("Cancel: failed to publish booking.cancelled for id=%d: %v", bookingID, err)
	}

	s.logger.Info("Cancel: successfully cancelled booking id=%d", bookingID)
	return models.FromDomainBooking(booking), nil
}

// GetFieldBookings получает бронирования поля с фильтрацией по периоду и статусу
func (s *Service) GetFieldBookings(ctx context.Context, req *models.GetFieldBookingsRequest) (*models.BookingListResponse, error) {
	s.logger.Info("GetFieldBookings: fetching bookings for field=%d", req.FieldID)

	if _, err := s.fieldRepo.GetByID(ctx, req.FieldID); err != nil {
		if errors.Is(err, fieldRepo.ErrFieldNotFound) {
			s.logger.Warn("GetFieldBookings: field id=%d not found", req.FieldID)
			return nil, ErrFieldNotFound
		}
		s.logger.Error("GetFieldBookings: failed to get field id=%d: %v", req.FieldID, err)
		return nil, fmt.Errorf("%w: GetFieldBookings - failed to get field: %v", ErrInternal, err)
	}

	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("GetFieldBookings: invalid filter for field=%d: %v", req.FieldID, err)
		return nil, fmt.Errorf("%w: invalid filter", ErrInvalidInput)
	}

	bookings, err := s.bookingRepo.GetByFieldWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("GetFieldBookings: repository error for field=%d: %v", req.FieldID, err)
		return nil, fmt.Errorf("%w: GetFieldBookings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetFieldBookings: successfully fetched %d bookings for field=%d", len(bookings), req.FieldID)
	return models.FromDomainBookingList(bookings), nil
}
