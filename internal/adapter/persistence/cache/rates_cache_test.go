package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"construction_estimator/internal/domain/entities"
	mock_interfaces "construction_estimator/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestCityRepository_GetByName(t *testing.T) {
	ctx := context.Background()
	khi := entities.CityRate{ID: "c-1", Name: "Karachi", LaborRatePerArea: 550}

	t.Run("hit is served from cache", func(t *testing.T) {
		inner := mock_interfaces.NewMockICityRepository(gomock.NewController(t))
		inner.EXPECT().GetByName(gomock.Any(), "Karachi").Return(khi, nil).Times(1)
		repo := NewRateCache(8, time.Minute).Cities(inner)

		for i := 0; i < 3; i++ {
			got, err := repo.GetByName(ctx, "Karachi")
			if err != nil || got != khi {
				t.Fatalf("unexpected result %+v, %v", got, err)
			}
		}
	})

	t.Run("miss is not cached", func(t *testing.T) {
		inner := mock_interfaces.NewMockICityRepository(gomock.NewController(t))
		inner.EXPECT().GetByName(gomock.Any(), "Lahore").Return(entities.CityRate{}, nil).Times(2)
		repo := NewRateCache(8, time.Minute).Cities(inner)

		for i := 0; i < 2; i++ {
			if got, err := repo.GetByName(ctx, "Lahore"); err != nil || got.ID != "" {
				t.Fatalf("unexpected result %+v, %v", got, err)
			}
		}
	})

	t.Run("error is not cached", func(t *testing.T) {
		inner := mock_interfaces.NewMockICityRepository(gomock.NewController(t))
		gomock.InOrder(
			inner.EXPECT().GetByName(gomock.Any(), "Karachi").Return(entities.CityRate{}, errors.New("db")),
			inner.EXPECT().GetByName(gomock.Any(), "Karachi").Return(khi, nil),
		)
		repo := NewRateCache(8, time.Minute).Cities(inner)

		if _, err := repo.GetByName(ctx, "Karachi"); err == nil {
			t.Fatalf("expected error")
		}
		if got, err := repo.GetByName(ctx, "Karachi"); err != nil || got != khi {
			t.Fatalf("unexpected result %+v, %v", got, err)
		}
	})

	t.Run("write purges", func(t *testing.T) {
		inner := mock_interfaces.NewMockICityRepository(gomock.NewController(t))
		updated := khi
		updated.LaborRatePerArea = 600
		gomock.InOrder(
			inner.EXPECT().GetByName(gomock.Any(), "Karachi").Return(khi, nil),
			inner.EXPECT().Update(gomock.Any(), updated).Return(updated, nil),
			inner.EXPECT().GetByName(gomock.Any(), "Karachi").Return(updated, nil),
		)
		repo := NewRateCache(8, time.Minute).Cities(inner)

		_, _ = repo.GetByName(ctx, "Karachi")
		if _, err := repo.Update(ctx, updated); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got, _ := repo.GetByName(ctx, "Karachi"); got.LaborRatePerArea != 600 {
			t.Fatalf("expected fresh rate after update, got %+v", got)
		}
	})

	t.Run("read overlapping a write is not cached", func(t *testing.T) {
		inner := mock_interfaces.NewMockICityRepository(gomock.NewController(t))
		updated := khi
		updated.LaborRatePerArea = 600
		repo := NewRateCache(8, time.Minute).Cities(inner)
		gomock.InOrder(
			inner.EXPECT().GetByName(gomock.Any(), "Karachi").DoAndReturn(
				func(ctx context.Context, _ string) (entities.CityRate, error) {
					if _, err := repo.Update(ctx, updated); err != nil {
						t.Fatalf("unexpected error: %v", err)
					}
					return khi, nil
				},
			),
			inner.EXPECT().Update(gomock.Any(), updated).Return(updated, nil),
			inner.EXPECT().GetByName(gomock.Any(), "Karachi").Return(updated, nil),
		)

		if got, _ := repo.GetByName(ctx, "Karachi"); got.LaborRatePerArea != 550 {
			t.Fatalf("expected the row read before the update, got %+v", got)
		}
		if got, _ := repo.GetByName(ctx, "Karachi"); got.LaborRatePerArea != 600 {
			t.Fatalf("expected fresh rate after overlapping update, got %+v", got)
		}
	})
}

func TestMaterialRepository_List(t *testing.T) {
	ctx := context.Background()
	list := []entities.MaterialRate{{ID: "m-1", Name: "Cement", StandardRate: 1250}}

	t.Run("cached copy", func(t *testing.T) {
		inner := mock_interfaces.NewMockIMaterialRepository(gomock.NewController(t))
		inner.EXPECT().List(gomock.Any()).Return([]entities.MaterialRate{list[0]}, nil).Times(1)
		repo := NewRateCache(8, time.Minute).Materials(inner)

		first, _ := repo.List(ctx)
		first[0].StandardRate = 1
		second, err := repo.List(ctx)
		if err != nil || second[0].StandardRate != 1250 {
			t.Fatalf("expected cached list unaffected by caller edits, got %+v, %v", second, err)
		}
	})

	t.Run("delete purges", func(t *testing.T) {
		inner := mock_interfaces.NewMockIMaterialRepository(gomock.NewController(t))
		gomock.InOrder(
			inner.EXPECT().List(gomock.Any()).Return(list, nil),
			inner.EXPECT().Delete(gomock.Any(), "m-1").Return(true, nil),
			inner.EXPECT().List(gomock.Any()).Return([]entities.MaterialRate{}, nil),
		)
		repo := NewRateCache(8, time.Minute).Materials(inner)

		_, _ = repo.List(ctx)
		if ok, err := repo.Delete(ctx, "m-1"); err != nil || !ok {
			t.Fatalf("unexpected delete result %v, %v", ok, err)
		}
		if got, _ := repo.List(ctx); len(got) != 0 {
			t.Fatalf("expected empty list after delete, got %+v", got)
		}
	})

	t.Run("list overlapping a write is not cached", func(t *testing.T) {
		inner := mock_interfaces.NewMockIMaterialRepository(gomock.NewController(t))
		repo := NewRateCache(8, time.Minute).Materials(inner)
		gomock.InOrder(
			inner.EXPECT().List(gomock.Any()).DoAndReturn(func(ctx context.Context) ([]entities.MaterialRate, error) {
				if _, err := repo.Delete(ctx, "m-1"); err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return []entities.MaterialRate{list[0]}, nil
			}),
			inner.EXPECT().Delete(gomock.Any(), "m-1").Return(true, nil),
			inner.EXPECT().List(gomock.Any()).Return([]entities.MaterialRate{}, nil),
		)

		_, _ = repo.List(ctx)
		if got, _ := repo.List(ctx); len(got) != 0 {
			t.Fatalf("expected reload after overlapping delete, got %+v", got)
		}
	})

	t.Run("expired entry reloads", func(t *testing.T) {
		inner := mock_interfaces.NewMockIMaterialRepository(gomock.NewController(t))
		inner.EXPECT().List(gomock.Any()).Return(list, nil).Times(2)
		repo := NewRateCache(8, 20*time.Millisecond).Materials(inner)

		_, _ = repo.List(ctx)
		time.Sleep(60 * time.Millisecond)
		_, _ = repo.List(ctx)
	})

	t.Run("purge all", func(t *testing.T) {
		inner := mock_interfaces.NewMockIMaterialRepository(gomock.NewController(t))
		inner.EXPECT().List(gomock.Any()).Return(list, nil).Times(2)
		c := NewRateCache(8, time.Minute)
		repo := c.Materials(inner)

		_, _ = repo.List(ctx)
		c.Purge()
		_, _ = repo.List(ctx)
	})
}
