package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"

	"tavola/config"
	"tavola/infras/otel"
	"tavola/internal/domains/ledger/model"
	"tavola/internal/domains/ledger/model/dto"
	"tavola/internal/domains/ledger/repository"
	"tavola/shared/constant"
	"tavola/shared/failure"
	"tavola/shared/timezone"

	"github.com/rs/zerolog/log"
)

// CoverCounter reports the authoritative sum of covers for active
// reservations in a slot. The reservation repository implements it; the
// ledger consumes it when seeding a lazily created row and during Sync.
type CoverCounter interface {
	SumActiveCovers(ctx context.Context, date, slotID string) (int, error)
}

// Booker is the capacity side of the reservation core. Reserve and Release
// are compare-and-swap retry loops over the slot ledger; there is no lock,
// so contention degrades to bounded retries instead of blocking.
type Booker interface {
	Status(ctx context.Context, date, slotID string) (dto.SlotStatusResponse, error)
	Reserve(ctx context.Context, date, slotID string, people int) (dto.ReserveResult, error)
	Release(ctx context.Context, date, slotID string, people int) (dto.ReserveResult, error)
	Sync(ctx context.Context, date, slotID string) (dto.SlotStatusResponse, error)
}

type serviceImpl struct {
	repo    repository.SlotVersion
	counter CoverCounter
	cfg     *config.Config
	otel    otel.Otel
}

func New(repo repository.SlotVersion, counter CoverCounter, cfg *config.Config, otel otel.Otel) Booker {
	return &serviceImpl{
		repo:    repo,
		counter: counter,
		cfg:     cfg,
		otel:    otel,
	}
}

func (s *serviceImpl) Status(ctx context.Context, date, slotID string) (res dto.SlotStatusResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Status")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = s.validateSlot(date, slotID); err != nil {
		return res, err
	}

	row, err := s.getOrCreate(ctx, date, slotID)
	if err != nil {
		return res, err
	}

	res.FromModel(row)

	return res, nil
}

func (s *serviceImpl) Reserve(ctx context.Context, date, slotID string, people int) (res dto.ReserveResult, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Reserve")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = s.validateSlot(date, slotID); err != nil {
		return res, err
	}

	if people <= 0 {
		return res, fmt.Errorf("%w: people must be positive, got %d", failure.ErrInvalidParameters, people)
	}

	for attempt := 0; attempt < s.cfg.Reservation.MaxRetries; attempt++ {
		row, err := s.getOrCreate(ctx, date, slotID)
		if err != nil {
			return res, err
		}

		remaining := row.Remaining()
		if remaining < people {
			// Legitimate rejection, not a race: no retry.
			return dto.ReserveResult{Version: row.Version, Remaining: remaining},
				fmt.Errorf("%w: %d seats remaining", failure.ErrInsufficientCapacity, remaining)
		}

		swapped, err := s.repo.CompareAndSwap(ctx, date, slotID, row.Version, row.BookedCapacity+people)
		if err != nil {
			return res, fmt.Errorf("%w: %v", failure.ErrSlotVersion, err)
		}

		if swapped {
			return dto.ReserveResult{Version: row.Version + 1, Remaining: remaining - people}, nil
		}

		// Expected under load; logged low so operators can count it
		// without it drowning the error stream.
		log.Debug().
			Str("date", date).
			Str("slot_id", slotID).
			Int("attempt", attempt+1).
			Uint64("lost_version", row.Version).
			Msg("slot version conflict, retrying")

		if err = s.backoff(ctx, attempt); err != nil {
			return res, fmt.Errorf("%w: %v", failure.ErrVersionConflict, err)
		}
	}

	return res, fmt.Errorf("%w: retries exhausted for %s/%s", failure.ErrVersionConflict, date, slotID)
}

func (s *serviceImpl) Release(ctx context.Context, date, slotID string, people int) (res dto.ReserveResult, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Release")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = s.validateSlot(date, slotID); err != nil {
		return res, err
	}

	if people <= 0 {
		return res, fmt.Errorf("%w: people must be positive, got %d", failure.ErrInvalidParameters, people)
	}

	for attempt := 0; attempt < s.cfg.Reservation.MaxRetries; attempt++ {
		row, err := s.getOrCreate(ctx, date, slotID)
		if err != nil {
			return res, err
		}

		// Clamped so a double release can never drive the ledger negative.
		booked := max(0, row.BookedCapacity-people)

		swapped, err := s.repo.CompareAndSwap(ctx, date, slotID, row.Version, booked)
		if err != nil {
			return res, fmt.Errorf("%w: %v", failure.ErrSlotVersion, err)
		}

		if swapped {
			return dto.ReserveResult{Version: row.Version + 1, Remaining: row.TotalCapacity - booked}, nil
		}

		log.Debug().
			Str("date", date).
			Str("slot_id", slotID).
			Int("attempt", attempt+1).
			Msg("slot version conflict on release, retrying")

		if err = s.backoff(ctx, attempt); err != nil {
			return res, fmt.Errorf("%w: %v", failure.ErrVersionConflict, err)
		}
	}

	return res, fmt.Errorf("%w: retries exhausted for %s/%s", failure.ErrVersionConflict, date, slotID)
}

// Sync recomputes both capacity figures from their sources of truth and
// writes them unconditionally with a version bump. It always wins against
// concurrent writers, so the router exposes it only to administrators.
func (s *serviceImpl) Sync(ctx context.Context, date, slotID string) (res dto.SlotStatusResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Sync")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = s.validateSlot(date, slotID); err != nil {
		return res, err
	}

	row, err := s.getOrCreate(ctx, date, slotID)
	if err != nil {
		return res, err
	}

	booked, err := s.counter.SumActiveCovers(ctx, date, slotID)
	if err != nil {
		log.Error().Err(err).Str("date", date).Str("slot_id", slotID).Msg("failed to recount covers")

		return res, fmt.Errorf("%w: %v", failure.ErrSlotVersion, err)
	}

	total := s.cfg.Reservation.SlotCapacity[slotID]

	if err = s.repo.Overwrite(ctx, date, slotID, booked, total); err != nil {
		log.Error().Err(err).Str("date", date).Str("slot_id", slotID).Msg("failed to overwrite slot version")

		return res, fmt.Errorf("%w: %v", failure.ErrSlotVersion, err)
	}

	log.Info().
		Str("date", date).
		Str("slot_id", slotID).
		Int("booked", booked).
		Int("total", total).
		Msg("slot ledger synchronized")

	res.FromModel(model.SlotVersion{
		SlotDate:       date,
		SlotID:         slotID,
		Version:        row.Version + 1,
		TotalCapacity:  total,
		BookedCapacity: booked,
	})

	return res, nil
}

// getOrCreate returns the ledger row, creating it on first access. A new
// row is seeded from a recount of existing reservations, so a ledger
// rebuilt from scratch converges on the truth instead of starting at zero.
func (s *serviceImpl) getOrCreate(ctx context.Context, date, slotID string) (model.SlotVersion, error) {
	row, found, err := s.repo.Get(ctx, date, slotID)
	if err != nil {
		return row, fmt.Errorf("%w: %v", failure.ErrSlotVersion, err)
	}

	if found {
		return row, nil
	}

	booked, err := s.counter.SumActiveCovers(ctx, date, slotID)
	if err != nil {
		return row, fmt.Errorf("%w: %v", failure.ErrSlotVersion, err)
	}

	row = model.SlotVersion{
		SlotDate:       date,
		SlotID:         slotID,
		Version:        1,
		TotalCapacity:  s.cfg.Reservation.SlotCapacity[slotID],
		BookedCapacity: booked,
	}

	created, err := s.repo.Create(ctx, row)
	if err != nil {
		return row, fmt.Errorf("%w: %v", failure.ErrSlotVersion, err)
	}

	if created {
		return row, nil
	}

	// Lost the creation race; the winner's row is authoritative.
	row, found, err = s.repo.Get(ctx, date, slotID)
	if err != nil || !found {
		return row, fmt.Errorf("%w: row vanished after create race for %s/%s", failure.ErrSlotVersion, date, slotID)
	}

	return row, nil
}

func (s *serviceImpl) validateSlot(date, slotID string) error {
	if date == "" || slotID == "" {
		return fmt.Errorf("%w: date and slot id are required", failure.ErrInvalidParameters)
	}

	if _, err := timezone.Parse(constant.SlotDateFormat, date); err != nil {
		return fmt.Errorf("%w: malformed date %q", failure.ErrInvalidParameters, date)
	}

	if _, ok := s.cfg.Reservation.SlotCapacity[slotID]; !ok {
		return fmt.Errorf("%w: unknown slot %q", failure.ErrInvalidParameters, slotID)
	}

	return nil
}

// backoff waits a jittered, capped interval before the next CAS round. The
// jitter desynchronizes competing retriers; the context bounds the wait so
// a caller deadline aborts the loop instead of sleeping through it.
func (s *serviceImpl) backoff(ctx context.Context, attempt int) error {
	base := time.Duration(s.cfg.Reservation.BackoffBaseMs) * time.Millisecond
	ceiling := time.Duration(s.cfg.Reservation.BackoffCapMs) * time.Millisecond

	wait := min(base<<attempt, ceiling)
	wait = wait/2 + rand.N(wait/2+1)

	timer := time.NewTimer(wait)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
