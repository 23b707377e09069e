package holiday

import (
	"context"
	"fmt"

	"github.com/rosterly/attendance-backend-go/internal/domain/holiday"
	"github.com/rosterly/attendance-backend-go/internal/pkg/dateutil"
)

type HolidayServiceImpl struct {
	holidayRepo holiday.HolidayRepository
}

func NewHolidayService(holidayRepo holiday.HolidayRepository) holiday.HolidayService {
	return &HolidayServiceImpl{holidayRepo: holidayRepo}
}

// Add implements holiday.HolidayService.
func (s *HolidayServiceImpl) Add(ctx context.Context, req holiday.MarkHolidayRequest) (holiday.HolidayResponse, error) {
	if err := req.Validate(); err != nil {
		return holiday.HolidayResponse{}, err
	}

	h := holiday.Holiday{
		Date:        req.Date,
		Description: req.Description,
	}
	if err := s.holidayRepo.Create(ctx, h); err != nil {
		return holiday.HolidayResponse{}, err
	}

	return holiday.ToResponse(h), nil
}

// Remove implements holiday.HolidayService.
func (s *HolidayServiceImpl) Remove(ctx context.Context, date dateutil.Date) error {
	return s.holidayRepo.Delete(ctx, date)
}

// IsHoliday implements holiday.HolidayService.
func (s *HolidayServiceImpl) IsHoliday(ctx context.Context, date dateutil.Date) (bool, error) {
	exists, err := s.holidayRepo.Exists(ctx, date)
	if err != nil {
		return false, fmt.Errorf("failed to check holiday: %w", err)
	}
	return exists, nil
}

// List implements holiday.HolidayService.
func (s *HolidayServiceImpl) List(ctx context.Context) ([]holiday.HolidayResponse, error) {
	holidays, err := s.holidayRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list holidays: %w", err)
	}

	responses := make([]holiday.HolidayResponse, 0, len(holidays))
	for _, h := range holidays {
		responses = append(responses, holiday.ToResponse(h))
	}
	return responses, nil
}
