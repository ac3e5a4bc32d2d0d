package booking

import (
	"context"
	"errors"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/TallerTAW/court-reservation/internal/coupon"
	"github.com/TallerTAW/court-reservation/internal/court"
	"github.com/TallerTAW/court-reservation/internal/pricing"
	"github.com/TallerTAW/court-reservation/internal/slot"
)

type QuoteRequest struct {
	UserID     string
	CourtID    string
	Date       string // YYYY-MM-DD
	Range      slot.Range
	CouponCode string
}

type CreateRequest struct {
	UserID     string
	CourtID    string
	Date       string // YYYY-MM-DD
	Range      slot.Range
	Attendees  int
	CouponCode string
}

type Service interface {
	Availability(ctx context.Context, courtID, date string) (*DayAvailability, error)
	EndCandidates(ctx context.Context, courtID, date, start string) ([]string, error)
	Check(ctx context.Context, courtID, date string, r slot.Range) (*CheckResult, error)
	Quote(ctx context.Context, req QuoteRequest) (*Quote, error)
	Create(ctx context.Context, req CreateRequest) (*Booking, error)
	GetByID(ctx context.Context, id, userID string) (*Booking, error)
	List(ctx context.Context, filter Filter) ([]*Booking, int, error)
	Cancel(ctx context.Context, id, userID string) (*Booking, error)
}

type service struct {
	repo          Repository
	courtService  court.Service
	couponService coupon.Service
	loc           *time.Location
	now           func() time.Time
}

func NewService(repo Repository, courtService court.Service, couponService coupon.Service, loc *time.Location) Service {
	if loc == nil {
		loc = time.UTC
	}
	return &service{
		repo:          repo,
		courtService:  courtService,
		couponService: couponService,
		loc:           loc,
		now:           time.Now,
	}
}

// parseDate reads a calendar date as midnight in the venue's time zone.
func (s *service) parseDate(date string) (time.Time, error) {
	day, err := time.ParseInLocation(DateLayout, strings.TrimSpace(date), s.loc)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return day, nil
}

// atHour returns hour h of day; h may be 24 for the following midnight.
func atHour(day time.Time, h int) time.Time {
	y, m, d := day.Date()
	return time.Date(y, m, d, h, 0, 0, 0, day.Location())
}

// loadDay fetches the court and its bookings for the day and recomputes the
// slot list from scratch. Nothing derived from a previous call is reused.
func (s *service) loadDay(ctx context.Context, courtID, date string) (*DayAvailability, error) {
	day, err := s.parseDate(date)
	if err != nil {
		return nil, err
	}

	var (
		ct       *court.Court
		bookings []*Booking
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		ct, err = s.courtService.GetByID(gctx, courtID)
		if errors.Is(err, court.ErrNotFound) {
			return ErrCourtNotFound
		}
		return err
	})
	g.Go(func() error {
		var err error
		bookings, err = s.repo.ListForCourt(gctx, courtID, day, atHour(day, slot.HoursPerDay))
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	raw, err := BuildDaySlots(day, ct.OpeningHoursStart, ct.OpeningHoursEnd, ct.HourlyPrice, bookings, s.now())
	if err != nil {
		return nil, err
	}

	slots := slot.Normalize(raw)
	blocks := slot.OccupiedBlocks(slots)

	return &DayAvailability{
		Court:           ct,
		Date:            day.Format(DateLayout),
		Slots:           slots,
		Blocks:          blocks,
		StartCandidates: slot.StartCandidates(slots, blocks),
	}, nil
}

func (s *service) Availability(ctx context.Context, courtID, date string) (*DayAvailability, error) {
	return s.loadDay(ctx, courtID, date)
}

func (s *service) EndCandidates(ctx context.Context, courtID, date, start string) ([]string, error) {
	if _, err := slot.ParseHour(start); err != nil {
		return nil, ErrInvalidTimeRange
	}

	day, err := s.loadDay(ctx, courtID, date)
	if err != nil {
		return nil, err
	}
	return slot.EndCandidates(day.Slots, day.Blocks, start), nil
}

func (s *service) Check(ctx context.Context, courtID, date string, r slot.Range) (*CheckResult, error) {
	day, err := s.loadDay(ctx, courtID, date)
	if err != nil {
		return nil, err
	}
	return &CheckResult{
		Valid:     slot.IsRangeValid(day.Slots, r.Start, r.End),
		Conflicts: slot.Conflicts(day.Slots, r.Start, r.End),
	}, nil
}

// validateRange confirms r can be submitted against the freshly loaded day.
func validateRange(day *DayAvailability, r slot.Range) error {
	if !r.IsComplete() {
		return ErrIncompleteRange
	}
	if r.Hours() == 0 {
		return ErrInvalidTimeRange
	}
	if !slot.ReadyToSubmit(day.Slots, r) {
		return ErrTimeConflict.WithDetails(map[string]any{
			"conflicts": slot.Conflicts(day.Slots, r.Start, r.End),
		})
	}
	return nil
}

func (s *service) resolveCoupon(ctx context.Context, code, userID string, now time.Time) (*coupon.Coupon, error) {
	if strings.TrimSpace(code) == "" {
		return nil, nil
	}
	return s.couponService.Resolve(ctx, code, userID, now)
}

func (s *service) Quote(ctx context.Context, req QuoteRequest) (*Quote, error) {
	day, err := s.loadDay(ctx, req.CourtID, req.Date)
	if err != nil {
		return nil, err
	}
	if err := validateRange(day, req.Range); err != nil {
		return nil, err
	}

	now := s.now()
	cp, err := s.resolveCoupon(ctx, req.CouponCode, req.UserID, now)
	if err != nil {
		return nil, err
	}

	var view *pricing.Coupon
	if cp != nil {
		view = cp.Pricing()
	}
	return &Quote{
		Court: day.Court,
		Date:  day.Date,
		Quote: pricing.NewQuote(req.Range, day.Court.HourlyPrice, view, now),
	}, nil
}

func (s *service) Create(ctx context.Context, req CreateRequest) (*Booking, error) {
	// 1. Validate input that does not need the database
	if !req.Range.IsComplete() {
		return nil, ErrIncompleteRange
	}
	if req.Range.Hours() == 0 {
		return nil, ErrInvalidTimeRange
	}
	if req.Attendees < 1 {
		return nil, ErrInvalidAttendees
	}

	// 2. Re-fetch availability and validate the range against it
	day, err := s.loadDay(ctx, req.CourtID, req.Date)
	if err != nil {
		return nil, err
	}
	if err := validateRange(day, req.Range); err != nil {
		return nil, err
	}

	// 3. Price it
	now := s.now()
	cp, err := s.resolveCoupon(ctx, req.CouponCode, req.UserID, now)
	if err != nil {
		return nil, err
	}

	var (
		view     *pricing.Coupon
		couponID string
		code     *string
	)
	if cp != nil {
		view = cp.Pricing()
		couponID = cp.ID
		code = &cp.Code
	}

	// Both bounds parsed in validateRange
	startHour, _ := slot.ParseHour(req.Range.Start)
	endHour, _ := slot.ParseHour(req.Range.End)
	date, _ := s.parseDate(req.Date)

	// 4. Create Booking. Nothing is left to pay on a fully discounted booking.
	total := pricing.Total(req.Range, day.Court.HourlyPrice, view, now)
	status := StatusPending
	if total == 0 {
		status = StatusConfirmed
	}

	b := &Booking{
		CourtID:    req.CourtID,
		CourtName:  day.Court.Name,
		UserID:     req.UserID,
		StartTime:  atHour(date, startHour),
		EndTime:    atHour(date, endHour),
		Attendees:  req.Attendees,
		CouponCode: code,
		TotalPrice: total,
		Status:     status,
	}

	if err := s.repo.Create(ctx, b, couponID); err != nil {
		return nil, err
	}

	return b, nil
}

func (s *service) GetByID(ctx context.Context, id, userID string) (*Booking, error) {
	b, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if b.UserID != userID {
		return nil, ErrPermissionDenied
	}
	return b, nil
}

func (s *service) List(ctx context.Context, filter Filter) ([]*Booking, int, error) {
	return s.repo.List(ctx, filter)
}

// Cancel releases the booking's hours. Only the booker may cancel, and only
// before the booking starts.
func (s *service) Cancel(ctx context.Context, id, userID string) (*Booking, error) {
	b, err := s.GetByID(ctx, id, userID)
	if err != nil {
		return nil, err
	}
	if b.Status == StatusCancelled {
		return nil, ErrInvalidStatus
	}
	if !b.StartTime.After(s.now()) {
		return nil, ErrAlreadyStarted
	}

	if err := s.repo.UpdateStatus(ctx, b.ID, StatusCancelled); err != nil {
		return nil, err
	}
	b.Status = StatusCancelled
	return b, nil
}
