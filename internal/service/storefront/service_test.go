package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/you-humble/partsyard/internal/cache"
	"github.com/you-humble/partsyard/internal/model"
	"github.com/you-humble/partsyard/internal/service/mocks"
)

func availablePart() *model.Part {
	return &model.Part{
		ID:          gofakeit.UUID(),
		Name:        gofakeit.ProductName(),
		Category:    model.CategoryGlass,
		StockStatus: model.StatusAvailable,
		Photos:      []string{},
		CreatedAt:   time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC),
		UpdatedAt:   time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC),
	}
}

func TestListAvailablePinsPublicQuery(t *testing.T) {
	t.Parallel()

	catalog := mocks.NewMockCatalog(t)
	svc := NewStorefrontService(catalog, cache.NewMemory(16, time.Minute), time.Minute)

	want := &model.PartsPage{Parts: []*model.Part{availablePart()}, Total: 1}
	catalog.On("List", mock.Anything, mock.MatchedBy(func(q model.PartsQuery) bool {
		return q.Status == model.StatusAvailable &&
			q.Paging == model.PagingOffset &&
			q.PageSize == model.PublicPageSize &&
			q.ModelContains == "f-150" &&
			q.Cursor == ""
	})).Return(want, nil).Once()

	got, err := svc.ListAvailable(context.Background(), model.PartsQuery{
		Status:        model.StatusSold,
		ModelContains: " F-150 ",
		Cursor:        "ignored",
	})
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestListAvailableServesRepeatsFromCache(t *testing.T) {
	t.Parallel()

	catalog := mocks.NewMockCatalog(t)
	svc := NewStorefrontService(catalog, cache.NewMemory(16, time.Minute), time.Minute)

	want := &model.PartsPage{Parts: []*model.Part{availablePart()}, Total: 1}
	catalog.On("List", mock.Anything, mock.Anything).Return(want, nil).Once()

	ctx := context.Background()
	first, err := svc.ListAvailable(ctx, model.PartsQuery{Category: model.CategoryGlass})
	require.NoError(t, err)

	// Same descriptor written differently resolves to the same entry.
	second, err := svc.ListAvailable(ctx, model.PartsQuery{
		Category: " glass ",
		Sort:     model.Sort{Field: model.SortCreatedAt, Direction: model.SortDesc},
	})
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestInvalidateForcesReload(t *testing.T) {
	t.Parallel()

	catalog := mocks.NewMockCatalog(t)
	svc := NewStorefrontService(catalog, cache.NewMemory(16, time.Minute), time.Minute)

	p := availablePart()
	catalog.On("PartByID", mock.Anything, p.ID).Return(p, nil).Twice()

	ctx := context.Background()
	_, err := svc.PartByID(ctx, p.ID)
	require.NoError(t, err)
	_, err = svc.PartByID(ctx, p.ID)
	require.NoError(t, err)

	require.NoError(t, svc.Invalidate(ctx))

	_, err = svc.PartByID(ctx, p.ID)
	require.NoError(t, err)
}

func TestPartByIDHidesUnavailable(t *testing.T) {
	t.Parallel()

	catalog := mocks.NewMockCatalog(t)
	svc := NewStorefrontService(catalog, cache.NewMemory(16, time.Minute), time.Minute)

	p := availablePart()
	p.StockStatus = model.StatusSold
	catalog.On("PartByID", mock.Anything, p.ID).Return(p, nil).Once()

	got, err := svc.PartByID(context.Background(), p.ID)
	require.Error(t, err)
	assert.ErrorIs(t, err, model.ErrPartNotFound)
	assert.Nil(t, got)
}

func TestCacheFailuresDoNotFailReads(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		setup func(c *mocks.MockCache)
	}{
		{
			name: "get and set fail",
			setup: func(c *mocks.MockCache) {
				c.On("Get", mock.Anything, Tag, mock.Anything).Return(nil, false, errors.New("redis down")).Once()
				c.On("Set", mock.Anything, Tag, mock.Anything, mock.Anything, time.Minute).Return(errors.New("redis down")).Once()
			},
		},
		{
			name: "corrupt entry",
			setup: func(c *mocks.MockCache) {
				c.On("Get", mock.Anything, Tag, mock.Anything).Return([]byte("{not json"), true, nil).Once()
				c.On("Set", mock.Anything, Tag, mock.Anything, mock.Anything, time.Minute).Return(nil).Once()
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			catalog := mocks.NewMockCatalog(t)
			c := mocks.NewMockCache(t)
			tt.setup(c)

			catalog.On("Recent", mock.Anything, model.DefaultRecent).Return([]*model.Part{availablePart()}, nil).Once()

			svc := NewStorefrontService(catalog, c, time.Minute)
			got, err := svc.Recent(context.Background(), 0)
			require.NoError(t, err)
			assert.Len(t, got, 1)
		})
	}
}

func TestCatalogErrorsAreNotCached(t *testing.T) {
	t.Parallel()

	catalog := mocks.NewMockCatalog(t)
	svc := NewStorefrontService(catalog, cache.NewMemory(16, time.Minute), time.Minute)

	catalog.On("AvailableIDs", mock.Anything).Return(nil, model.ErrDataUnavailable).Once()
	catalog.On("AvailableIDs", mock.Anything).Return([]string{"a"}, nil).Once()

	ctx := context.Background()
	_, err := svc.AvailableIDs(ctx)
	assert.ErrorIs(t, err, model.ErrDataUnavailable)

	ids, err := svc.AvailableIDs(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"a"}, ids)
}

func TestCacheHitReturnsStoredValue(t *testing.T) {
	t.Parallel()

	p := availablePart()
	raw, err := json.Marshal(p)
	require.NoError(t, err)

	c := mocks.NewMockCache(t)
	c.On("Get", mock.Anything, Tag, "part?id="+p.ID).Return(raw, true, nil).Once()

	svc := NewStorefrontService(mocks.NewMockCatalog(t), c, time.Minute)
	got, err := svc.PartByID(context.Background(), p.ID)
	require.NoError(t, err)
	assert.Equal(t, p, got)
}

func TestListKeyIsCanonical(t *testing.T) {
	t.Parallel()

	a := listKey(publicQuery(model.PartsQuery{Search: "Door ", Year: 2010}))
	b := listKey(publicQuery(model.PartsQuery{Year: 2010, Search: "door"}))
	c := listKey(publicQuery(model.PartsQuery{Year: 2011, Search: "door"}))

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
}
