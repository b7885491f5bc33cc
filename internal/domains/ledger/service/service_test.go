package service_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"tavola/config"
	otelMocks "tavola/infras/otel/mocks"
	"tavola/internal/domains/ledger/mocks"
	"tavola/internal/domains/ledger/model"
	"tavola/internal/domains/ledger/repository"
	"tavola/internal/domains/ledger/service"
	"tavola/shared/failure"
)

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Reservation.SlotCapacity = map[string]int{"pranzo": 40, "cena": 60}
	cfg.Reservation.MaxRetries = 3
	cfg.Reservation.BackoffBaseMs = 1
	cfg.Reservation.BackoffCapMs = 2

	return cfg
}

func TestLedgerService_Reserve(t *testing.T) {
	const (
		date = "2026-09-10"
		slot = "pranzo"
	)

	tests := []struct {
		name      string
		people    int
		setupMock func(repo *mocks.MockSlotVersion, counter *mocks.MockCoverCounter)
		wantErr   error
		wantRes   func(t *testing.T, version uint64, remaining int)
	}{
		{
			name:   "reserves on first attempt",
			people: 4,
			setupMock: func(repo *mocks.MockSlotVersion, _ *mocks.MockCoverCounter) {
				repo.EXPECT().
					Get(gomock.Any(), date, slot).
					Return(model.SlotVersion{SlotDate: date, SlotID: slot, Version: 1, TotalCapacity: 40, BookedCapacity: 10}, true, nil)

				repo.EXPECT().
					CompareAndSwap(gomock.Any(), date, slot, uint64(1), 14).
					Return(true, nil)
			},
			wantRes: func(t *testing.T, version uint64, remaining int) {
				assert.Equal(t, uint64(2), version)
				assert.Equal(t, 26, remaining)
			},
		},
		{
			name:   "retries after losing the swap",
			people: 2,
			setupMock: func(repo *mocks.MockSlotVersion, _ *mocks.MockCoverCounter) {
				repo.EXPECT().
					Get(gomock.Any(), date, slot).
					Return(model.SlotVersion{SlotDate: date, SlotID: slot, Version: 1, TotalCapacity: 40, BookedCapacity: 10}, true, nil)

				repo.EXPECT().
					CompareAndSwap(gomock.Any(), date, slot, uint64(1), 12).
					Return(false, nil)

				repo.EXPECT().
					Get(gomock.Any(), date, slot).
					Return(model.SlotVersion{SlotDate: date, SlotID: slot, Version: 2, TotalCapacity: 40, BookedCapacity: 12}, true, nil)

				repo.EXPECT().
					CompareAndSwap(gomock.Any(), date, slot, uint64(2), 14).
					Return(true, nil)
			},
			wantRes: func(t *testing.T, version uint64, remaining int) {
				assert.Equal(t, uint64(3), version)
				assert.Equal(t, 26, remaining)
			},
		},
		{
			name:   "rejects when capacity is insufficient without retrying",
			people: 8,
			setupMock: func(repo *mocks.MockSlotVersion, _ *mocks.MockCoverCounter) {
				repo.EXPECT().
					Get(gomock.Any(), date, slot).
					Return(model.SlotVersion{SlotDate: date, SlotID: slot, Version: 5, TotalCapacity: 40, BookedCapacity: 37}, true, nil)
			},
			wantErr: failure.ErrInsufficientCapacity,
			wantRes: func(t *testing.T, version uint64, remaining int) {
				assert.Equal(t, uint64(5), version)
				assert.Equal(t, 3, remaining)
			},
		},
		{
			name:   "exhausts retries under sustained contention",
			people: 2,
			setupMock: func(repo *mocks.MockSlotVersion, _ *mocks.MockCoverCounter) {
				repo.EXPECT().
					Get(gomock.Any(), date, slot).
					Return(model.SlotVersion{SlotDate: date, SlotID: slot, Version: 1, TotalCapacity: 40, BookedCapacity: 0}, true, nil).
					Times(3)

				repo.EXPECT().
					CompareAndSwap(gomock.Any(), date, slot, uint64(1), 2).
					Return(false, nil).
					Times(3)
			},
			wantErr: failure.ErrVersionConflict,
		},
		{
			name:   "creates the row lazily seeded from a recount",
			people: 4,
			setupMock: func(repo *mocks.MockSlotVersion, counter *mocks.MockCoverCounter) {
				repo.EXPECT().
					Get(gomock.Any(), date, slot).
					Return(model.SlotVersion{}, false, nil)

				counter.EXPECT().
					SumActiveCovers(gomock.Any(), date, slot).
					Return(6, nil)

				repo.EXPECT().
					Create(gomock.Any(), model.SlotVersion{SlotDate: date, SlotID: slot, Version: 1, TotalCapacity: 40, BookedCapacity: 6}).
					Return(true, nil)

				repo.EXPECT().
					CompareAndSwap(gomock.Any(), date, slot, uint64(1), 10).
					Return(true, nil)
			},
			wantRes: func(t *testing.T, version uint64, remaining int) {
				assert.Equal(t, uint64(2), version)
				assert.Equal(t, 30, remaining)
			},
		},
		{
			name:   "re-reads after losing the creation race",
			people: 2,
			setupMock: func(repo *mocks.MockSlotVersion, counter *mocks.MockCoverCounter) {
				repo.EXPECT().
					Get(gomock.Any(), date, slot).
					Return(model.SlotVersion{}, false, nil)

				counter.EXPECT().
					SumActiveCovers(gomock.Any(), date, slot).
					Return(0, nil)

				repo.EXPECT().
					Create(gomock.Any(), gomock.Any()).
					Return(false, nil)

				repo.EXPECT().
					Get(gomock.Any(), date, slot).
					Return(model.SlotVersion{SlotDate: date, SlotID: slot, Version: 3, TotalCapacity: 40, BookedCapacity: 8}, true, nil)

				repo.EXPECT().
					CompareAndSwap(gomock.Any(), date, slot, uint64(3), 10).
					Return(true, nil)
			},
			wantRes: func(t *testing.T, version uint64, remaining int) {
				assert.Equal(t, uint64(4), version)
				assert.Equal(t, 30, remaining)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockRepo := mocks.NewMockSlotVersion(ctrl)
			mockCounter := mocks.NewMockCoverCounter(ctrl)
			tt.setupMock(mockRepo, mockCounter)

			svc := service.New(mockRepo, mockCounter, testConfig(), otelMocks.NewOtel())

			res, err := svc.Reserve(context.Background(), date, slot, tt.people)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}

			if tt.wantRes != nil {
				tt.wantRes(t, res.Version, res.Remaining)
			}
		})
	}
}

func TestLedgerService_Reserve_InvalidParameters(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := service.New(mocks.NewMockSlotVersion(ctrl), mocks.NewMockCoverCounter(ctrl), testConfig(), otelMocks.NewOtel())

	tests := []struct {
		name   string
		date   string
		slot   string
		people int
	}{
		{name: "zero people", date: "2026-09-10", slot: "pranzo", people: 0},
		{name: "negative people", date: "2026-09-10", slot: "pranzo", people: -2},
		{name: "empty date", date: "", slot: "pranzo", people: 2},
		{name: "malformed date", date: "10-09-2026", slot: "pranzo", people: 2},
		{name: "unknown slot", date: "2026-09-10", slot: "merenda", people: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Reserve(context.Background(), tt.date, tt.slot, tt.people)
			assert.ErrorIs(t, err, failure.ErrInvalidParameters)
		})
	}
}

func TestLedgerService_Release_ClampsAtZero(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockSlotVersion(ctrl)
	mockCounter := mocks.NewMockCoverCounter(ctrl)

	mockRepo.EXPECT().
		Get(gomock.Any(), "2026-09-10", "cena").
		Return(model.SlotVersion{SlotDate: "2026-09-10", SlotID: "cena", Version: 7, TotalCapacity: 60, BookedCapacity: 3}, true, nil)

	// Releasing more than is booked writes zero, never a negative figure.
	mockRepo.EXPECT().
		CompareAndSwap(gomock.Any(), "2026-09-10", "cena", uint64(7), 0).
		Return(true, nil)

	svc := service.New(mockRepo, mockCounter, testConfig(), otelMocks.NewOtel())

	res, err := svc.Release(context.Background(), "2026-09-10", "cena", 5)
	assert.NoError(t, err)
	assert.Equal(t, uint64(8), res.Version)
	assert.Equal(t, 60, res.Remaining)
}

func TestLedgerService_Sync(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockSlotVersion(ctrl)
	mockCounter := mocks.NewMockCoverCounter(ctrl)

	mockRepo.EXPECT().
		Get(gomock.Any(), "2026-09-10", "pranzo").
		Return(model.SlotVersion{SlotDate: "2026-09-10", SlotID: "pranzo", Version: 4, TotalCapacity: 30, BookedCapacity: 99}, true, nil)

	mockCounter.EXPECT().
		SumActiveCovers(gomock.Any(), "2026-09-10", "pranzo").
		Return(18, nil)

	mockRepo.EXPECT().
		Overwrite(gomock.Any(), "2026-09-10", "pranzo", 18, 40).
		Return(nil)

	svc := service.New(mockRepo, mockCounter, testConfig(), otelMocks.NewOtel())

	res, err := svc.Sync(context.Background(), "2026-09-10", "pranzo")
	assert.NoError(t, err)
	assert.Equal(t, uint64(5), res.Version)
	assert.Equal(t, 40, res.TotalCapacity)
	assert.Equal(t, 18, res.BookedCapacity)
	assert.Equal(t, 22, res.Remaining)
}

func TestLedgerService_Sync_RecountError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockSlotVersion(ctrl)
	mockCounter := mocks.NewMockCoverCounter(ctrl)

	mockRepo.EXPECT().
		Get(gomock.Any(), "2026-09-10", "pranzo").
		Return(model.SlotVersion{SlotDate: "2026-09-10", SlotID: "pranzo", Version: 1, TotalCapacity: 40}, true, nil)

	mockCounter.EXPECT().
		SumActiveCovers(gomock.Any(), "2026-09-10", "pranzo").
		Return(0, errors.New("connection reset"))

	svc := service.New(mockRepo, mockCounter, testConfig(), otelMocks.NewOtel())

	_, err := svc.Sync(context.Background(), "2026-09-10", "pranzo")
	assert.ErrorIs(t, err, failure.ErrSlotVersion)
}

// fakeLedgerRepo is an in-memory ledger with real compare-and-swap
// semantics, used to drive the service from many goroutines at once.
type fakeLedgerRepo struct {
	mu  sync.Mutex
	row model.SlotVersion
}

func (f *fakeLedgerRepo) Get(_ context.Context, _, _ string) (model.SlotVersion, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.row, true, nil
}

func (f *fakeLedgerRepo) Create(_ context.Context, _ model.SlotVersion) (bool, error) {
	return false, nil
}

func (f *fakeLedgerRepo) CompareAndSwap(_ context.Context, _, _ string, expectedVersion uint64, booked int) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.row.Version != expectedVersion {
		return false, nil
	}

	f.row.Version++
	f.row.BookedCapacity = booked

	return true, nil
}

func (f *fakeLedgerRepo) Overwrite(_ context.Context, _, _ string, booked, total int) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.row.Version++
	f.row.BookedCapacity = booked
	f.row.TotalCapacity = total

	return nil
}

var _ repository.SlotVersion = (*fakeLedgerRepo)(nil)

func TestLedgerService_Reserve_NeverOversells(t *testing.T) {
	const (
		workers  = 30
		party    = 2
		capacity = 40
	)

	repo := &fakeLedgerRepo{
		row: model.SlotVersion{SlotDate: "2026-09-10", SlotID: "pranzo", Version: 1, TotalCapacity: capacity},
	}

	cfg := testConfig()
	cfg.Reservation.MaxRetries = 100

	svc := service.New(repo, nil, cfg, otelMocks.NewOtel())

	var (
		wg        sync.WaitGroup
		successMu sync.Mutex
		successes int
	)

	for i := 0; i < workers; i++ {
		wg.Add(1)

		go func() {
			defer wg.Done()

			if _, err := svc.Reserve(context.Background(), "2026-09-10", "pranzo", party); err == nil {
				successMu.Lock()
				successes++
				successMu.Unlock()
			}
		}()
	}

	wg.Wait()

	assert.Equal(t, capacity/party, successes)
	assert.Equal(t, capacity, repo.row.BookedCapacity)
	assert.LessOrEqual(t, repo.row.BookedCapacity, repo.row.TotalCapacity)
}
