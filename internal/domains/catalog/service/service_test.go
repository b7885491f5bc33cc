package service_test

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"tavola/config"
	otelMocks "tavola/infras/otel/mocks"
	"tavola/internal/domains/catalog/mocks"
	"tavola/internal/domains/catalog/model"
	"tavola/internal/domains/catalog/model/dto"
	"tavola/internal/domains/catalog/service"
	"tavola/shared/cache"
	gDto "tavola/shared/dto"
)

// fakeCache is an in-memory stand-in; the service writes to it from
// goroutines, so it has to be safe for concurrent use.
type fakeCache struct {
	mu      sync.Mutex
	entries map[string][]byte
}

func newFakeCache() *fakeCache {
	return &fakeCache{entries: make(map[string][]byte)}
}

func (f *fakeCache) Save(_ context.Context, key string, value any, _ int) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	f.entries[key] = raw

	return nil
}

func (f *fakeCache) Get(_ context.Context, key string, value any) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	raw, ok := f.entries[key]
	if !ok {
		return errors.New("cache miss")
	}

	return json.Unmarshal(raw, value)
}

func (f *fakeCache) Delete(_ context.Context, key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	delete(f.entries, key)

	return nil
}

func (f *fakeCache) Clear(_ context.Context, _ string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.entries = make(map[string][]byte)

	return nil
}

var _ cache.RedisCache = (*fakeCache)(nil)

type catalogDeps struct {
	area   *mocks.MockArea
	table  *mocks.MockTable
	group  *mocks.MockGroup
	member *mocks.MockMember
	cache  *fakeCache
	svc    service.Catalog
}

func newCatalogDeps(t *testing.T) catalogDeps {
	ctrl := gomock.NewController(t)

	d := catalogDeps{
		area:   mocks.NewMockArea(ctrl),
		table:  mocks.NewMockTable(ctrl),
		group:  mocks.NewMockGroup(ctrl),
		member: mocks.NewMockMember(ctrl),
		cache:  newFakeCache(),
	}

	cfg := &config.Config{}
	cfg.Cache.TTL = 60

	d.svc = service.New(d.area, d.table, d.group, d.member, cfg, d.cache, otelMocks.NewOtel())

	return d
}

func activeTable(id string, capacity int) model.Table {
	return model.Table{
		ID:          id,
		AreaID:      "area-1",
		Name:        id,
		Capacity:    capacity,
		MinCapacity: 1,
		MaxCapacity: capacity,
		Active:      true,
	}
}

func TestCatalogService_AllActiveTables(t *testing.T) {
	d := newCatalogDeps(t)

	tables := []model.Table{activeTable("t1", 2), activeTable("t2", 4)}

	d.table.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(tables, nil)

	res, err := d.svc.AllActiveTables(context.Background())
	assert.NoError(t, err)
	assert.Len(t, res, 2)
}

func TestCatalogService_AllActiveTables_CacheHit(t *testing.T) {
	d := newCatalogDeps(t)

	cached := []model.Table{activeTable("t1", 2)}
	assert.NoError(t, d.cache.Save(context.Background(), "catalog:tables:active", cached, 60))

	// No repository expectation: the cached copy must satisfy the read.
	res, err := d.svc.AllActiveTables(context.Background())
	assert.NoError(t, err)
	assert.Len(t, res, 1)
	assert.Equal(t, "t1", res[0].ID)
}

func TestCatalogService_TablesInArea(t *testing.T) {
	d := newCatalogDeps(t)

	d.table.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ gDto.QueryParams, filter gDto.FilterGroup, _ ...string) ([]model.Table, error) {
			assert.Contains(t, filter.Filters, gDto.Filter{
				Field:    model.TableFieldAreaID,
				Operator: gDto.FilterOperatorEq,
				Value:    "area-1",
				Table:    model.TableTableName,
			})

			return []model.Table{activeTable("t1", 2)}, nil
		})

	res, err := d.svc.TablesInArea(context.Background(), "area-1")
	assert.NoError(t, err)
	assert.Len(t, res, 1)
}

func TestCatalogService_GroupsInArea(t *testing.T) {
	d := newCatalogDeps(t)

	d.group.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ gDto.QueryParams, filter gDto.FilterGroup, _ ...string) ([]model.TableGroup, error) {
			assert.Contains(t, filter.Filters, gDto.Filter{
				Field:    model.GroupFieldAreaID,
				Operator: gDto.FilterOperatorEq,
				Value:    "area-1",
				Table:    model.GroupTableName,
			})

			return []model.TableGroup{{ID: "g1", AreaID: "area-1", Name: "window", MaxCombinedCapacity: 8, Active: true}}, nil
		})

	res, err := d.svc.GroupsInArea(context.Background(), "area-1")
	assert.NoError(t, err)
	assert.Len(t, res, 1)
	assert.Equal(t, "g1", res[0].ID)
}

func TestCatalogService_TablesInGroup_CacheHit(t *testing.T) {
	d := newCatalogDeps(t)

	cached := []model.Table{activeTable("t1", 2), activeTable("t2", 2)}
	assert.NoError(t, d.cache.Save(context.Background(), "catalog:group:tables:g1", cached, 60))

	res, err := d.svc.TablesInGroup(context.Background(), "g1")
	assert.NoError(t, err)
	assert.Len(t, res, 2)
}

func TestCatalogService_TablesInGroup_Miss(t *testing.T) {
	d := newCatalogDeps(t)

	d.member.EXPECT().
		TablesInGroup(gomock.Any(), "g1").
		Return([]model.Table{activeTable("t1", 2)}, nil)

	res, err := d.svc.TablesInGroup(context.Background(), "g1")
	assert.NoError(t, err)
	assert.Len(t, res, 1)
}

func TestCatalogService_CreateTable(t *testing.T) {
	d := newCatalogDeps(t)

	d.area.EXPECT().
		Exist(gomock.Any(), gomock.Any()).
		Return(true, nil)

	d.table.EXPECT().
		Insert(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, table model.Table) error {
			assert.Equal(t, "area-1", table.AreaID)
			assert.Equal(t, 4, table.Capacity)
			assert.NotEmpty(t, table.ID)

			return nil
		})

	err := d.svc.CreateTable(context.Background(), dto.CreateTableRequest{
		AreaID:      "area-1",
		Name:        "T12",
		Capacity:    4,
		MinCapacity: 3,
		MaxCapacity: 4,
	})
	assert.NoError(t, err)
}

func TestCatalogService_CreateTable_UnknownArea(t *testing.T) {
	d := newCatalogDeps(t)

	d.area.EXPECT().
		Exist(gomock.Any(), gomock.Any()).
		Return(false, nil)

	err := d.svc.CreateTable(context.Background(), dto.CreateTableRequest{
		AreaID:      "ghost",
		Name:        "T12",
		Capacity:    4,
		MinCapacity: 3,
		MaxCapacity: 4,
	})
	assert.Error(t, err)
}

func TestCatalogService_CreateGroup(t *testing.T) {
	d := newCatalogDeps(t)

	d.table.EXPECT().
		Get(gomock.Any(), gomock.Any()).
		Return(activeTable("t1", 4), nil)
	d.table.EXPECT().
		Get(gomock.Any(), gomock.Any()).
		Return(activeTable("t2", 4), nil)

	d.group.EXPECT().
		Insert(gomock.Any(), gomock.Any()).
		Return(nil)

	d.member.EXPECT().
		InsertBulk(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, members []model.GroupMember) error {
			assert.Len(t, members, 2)
			assert.Equal(t, "t1", members[0].TableID)
			assert.Equal(t, 1, members[0].JoinOrder)
			assert.Equal(t, "t2", members[1].TableID)
			assert.Equal(t, 2, members[1].JoinOrder)

			return nil
		})

	err := d.svc.CreateGroup(context.Background(), dto.CreateGroupRequest{
		AreaID:              "area-1",
		Name:                "window row",
		MaxCombinedCapacity: 8,
		TableIDs:            []string{"t1", "t2"},
	})
	assert.NoError(t, err)
}

func TestCatalogService_CreateGroup_CrossAreaMember(t *testing.T) {
	d := newCatalogDeps(t)

	other := activeTable("t9", 4)
	other.AreaID = "area-2"

	d.table.EXPECT().
		Get(gomock.Any(), gomock.Any()).
		Return(other, nil)

	err := d.svc.CreateGroup(context.Background(), dto.CreateGroupRequest{
		AreaID:              "area-1",
		Name:                "window row",
		MaxCombinedCapacity: 8,
		TableIDs:            []string{"t9", "t1"},
	})
	assert.Error(t, err)
}

func TestCatalogService_CreateGroup_MissingMember(t *testing.T) {
	d := newCatalogDeps(t)

	d.table.EXPECT().
		Get(gomock.Any(), gomock.Any()).
		Return(model.Table{}, nil)

	err := d.svc.CreateGroup(context.Background(), dto.CreateGroupRequest{
		AreaID:              "area-1",
		Name:                "window row",
		MaxCombinedCapacity: 8,
		TableIDs:            []string{"ghost", "t1"},
	})
	assert.Error(t, err)
}

func TestCatalogService_DeleteGroup(t *testing.T) {
	d := newCatalogDeps(t)

	d.group.EXPECT().
		Exist(gomock.Any(), gomock.Any()).
		Return(true, nil)

	gomock.InOrder(
		d.member.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil),
		d.group.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil),
	)

	assert.NoError(t, d.svc.DeleteGroup(context.Background(), "g1"))
}

func TestCatalogService_DeleteGroup_NotFound(t *testing.T) {
	d := newCatalogDeps(t)

	d.group.EXPECT().
		Exist(gomock.Any(), gomock.Any()).
		Return(false, nil)

	assert.Error(t, d.svc.DeleteGroup(context.Background(), "ghost"))
}
