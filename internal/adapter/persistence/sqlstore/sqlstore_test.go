package sqlstore

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"construction_estimator/internal/domain/entities"
	"construction_estimator/internal/infrastructure/database"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := database.OpenSQLite(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	if err := database.Migrate(db, database.DialectSQLite); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func TestRebind(t *testing.T) {
	q := `SELECT * FROM estimates WHERE user_id = ? LIMIT ? OFFSET ?`
	if got := (store{dialect: SQLite}).rebind(q); got != q {
		t.Fatalf("expected sqlite query unchanged, got %q", got)
	}
	want := `SELECT * FROM estimates WHERE user_id = $1 LIMIT $2 OFFSET $3`
	if got := (store{dialect: Postgres}).rebind(q); got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestCityRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewCityRepository(openTestDB(t), SQLite)

	khi := entities.CityRate{ID: "c-1", Name: "Karachi", Code: "KHI", LaborRatePerArea: 550, MaterialBaseRate: 1800, EquipmentRate: 250}
	hyd := entities.CityRate{ID: "c-2", Name: "Hyderabad", Code: "HYD", LaborRatePerArea: 450}
	for _, c := range []entities.CityRate{khi, hyd} {
		if _, err := repo.Create(ctx, c); err != nil {
			t.Fatalf("create %s: %v", c.Name, err)
		}
	}

	t.Run("duplicate name rejected", func(t *testing.T) {
		if _, err := repo.Create(ctx, entities.CityRate{ID: "c-9", Name: "Karachi", Code: "X"}); err == nil {
			t.Fatalf("expected unique violation")
		}
	})

	t.Run("list ordered by name", func(t *testing.T) {
		got, err := repo.List(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 2 || got[0].Name != "Hyderabad" || got[1] != khi {
			t.Fatalf("unexpected list: %+v", got)
		}
	})

	t.Run("get by name is exact", func(t *testing.T) {
		got, err := repo.GetByName(ctx, "Karachi")
		if err != nil || got != khi {
			t.Fatalf("unexpected result %+v, %v", got, err)
		}
		got, err = repo.GetByName(ctx, "karachi")
		if err != nil || got.ID != "" {
			t.Fatalf("expected no match for different case, got %+v, %v", got, err)
		}
	})

	t.Run("update", func(t *testing.T) {
		next := khi
		next.LaborRatePerArea = 600
		got, err := repo.Update(ctx, next)
		if err != nil || got.LaborRatePerArea != 600 {
			t.Fatalf("unexpected result %+v, %v", got, err)
		}
		stored, _ := repo.GetByID(ctx, "c-1")
		if stored.LaborRatePerArea != 600 {
			t.Fatalf("expected stored update, got %+v", stored)
		}

		missing, err := repo.Update(ctx, entities.CityRate{ID: "nope", Name: "X", Code: "X"})
		if err != nil || missing.ID != "" {
			t.Fatalf("expected zero value for missing city, got %+v, %v", missing, err)
		}
	})

	t.Run("delete", func(t *testing.T) {
		ok, err := repo.Delete(ctx, "c-2")
		if err != nil || !ok {
			t.Fatalf("expected delete, got %v, %v", ok, err)
		}
		ok, err = repo.Delete(ctx, "c-2")
		if err != nil || ok {
			t.Fatalf("expected second delete to report false, got %v, %v", ok, err)
		}
	})
}

func TestMaterialRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewMaterialRepository(openTestDB(t), SQLite)

	items := []entities.MaterialRate{
		{ID: "m-1", Name: "Tiles", Category: "tiles", Unit: "sq. ft.", StandardRate: 180, PremiumRate: 400, LuxuryRate: 800},
		{ID: "m-2", Name: "Cement", Category: "cement", Unit: "bag", StandardRate: 1250, PremiumRate: 1400, LuxuryRate: 1600},
	}
	for _, m := range items {
		if _, err := repo.Create(ctx, m); err != nil {
			t.Fatalf("create %s: %v", m.Name, err)
		}
	}

	got, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 || got[0].Name != "Cement" || got[1] != items[0] {
		t.Fatalf("expected category order, got %+v", got)
	}

	one, err := repo.GetByID(ctx, "m-2")
	if err != nil || one != items[1] {
		t.Fatalf("unexpected result %+v, %v", one, err)
	}
	none, err := repo.GetByID(ctx, "m-9")
	if err != nil || none.ID != "" {
		t.Fatalf("expected zero value, got %+v, %v", none, err)
	}

	upd := items[1]
	upd.LuxuryRate = 1700
	if res, err := repo.Update(ctx, upd); err != nil || res.LuxuryRate != 1700 {
		t.Fatalf("unexpected update %+v, %v", res, err)
	}
	if ok, err := repo.Delete(ctx, "m-1"); err != nil || !ok {
		t.Fatalf("expected delete, got %v, %v", ok, err)
	}
}

func TestEstimateRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewEstimateRepository(openTestDB(t), SQLite)

	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	record := func(i int, userID int64) entities.EstimateRecord {
		spec := entities.ProjectSpec{
			ProjectName: fmt.Sprintf("p-%d", i), Area: 1000, Location: "Karachi",
			QualityTier: entities.QualityPremium, Floors: 2, Rooms: 3,
			CeilingHeight: entities.CeilingHeight12, IncludesFinishes: true, FinishesQuality: entities.QualityLuxury,
		}
		b := entities.CostBreakdown{
			MaterialCost: 100, LaborCost: 50, TotalCost: int64(1000 * i), EstimatedDurationDays: 90,
			BillOfQuantities: []entities.BOQLine{{Material: "Cement", Unit: "bag", Quantity: 880, Rate: 1400, Total: 1232000}},
		}
		return entities.NewEstimateRecord(fmt.Sprintf("e-%d", i), userID, spec, b, base.Add(time.Duration(i)*time.Minute))
	}

	for i := 1; i <= 5; i++ {
		userID := int64(1)
		if i%2 == 0 {
			userID = 2
		}
		if _, err := repo.Create(ctx, record(i, userID)); err != nil {
			t.Fatalf("create %d: %v", i, err)
		}
	}

	t.Run("round trip", func(t *testing.T) {
		got, err := repo.GetByID(ctx, "e-3")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := record(3, 1)
		if got.Spec != want.Spec || !got.CreatedAt.Equal(want.CreatedAt) || got.TotalCost != 3000 {
			t.Fatalf("unexpected record:\n got  %+v\n want %+v", got, want)
		}
		if len(got.BillOfQuantities) != 1 || got.BillOfQuantities[0] != want.BillOfQuantities[0] {
			t.Fatalf("unexpected boq %+v", got.BillOfQuantities)
		}
	})

	t.Run("missing", func(t *testing.T) {
		got, err := repo.GetByID(ctx, "nope")
		if err != nil || got.ID != "" {
			t.Fatalf("expected zero value, got %+v, %v", got, err)
		}
	})

	t.Run("history newest first", func(t *testing.T) {
		page, err := repo.ListByUserID(ctx, 1, entities.PageRequest{Page: 1, PerPage: 2})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if page.Total != 3 || page.Pages() != 2 || len(page.Items) != 2 {
			t.Fatalf("unexpected page: %+v", page)
		}
		if page.Items[0].ID != "e-5" || page.Items[1].ID != "e-3" {
			t.Fatalf("unexpected order: %s, %s", page.Items[0].ID, page.Items[1].ID)
		}

		page, err = repo.ListByUserID(ctx, 1, entities.PageRequest{Page: 2, PerPage: 2})
		if err != nil || len(page.Items) != 1 || page.Items[0].ID != "e-1" {
			t.Fatalf("unexpected second page %+v, %v", page, err)
		}

		page, err = repo.ListByUserID(ctx, 1, entities.PageRequest{Page: 9, PerPage: 2})
		if err != nil || len(page.Items) != 0 || page.Total != 3 {
			t.Fatalf("unexpected out of range page %+v, %v", page, err)
		}
	})

	t.Run("global list", func(t *testing.T) {
		page, err := repo.List(ctx, entities.PageRequest{Page: 1, PerPage: 20})
		if err != nil || page.Total != 5 || page.Items[0].ID != "e-5" || page.Items[4].ID != "e-1" {
			t.Fatalf("unexpected page %+v, %v", page, err)
		}
	})

	t.Run("stats", func(t *testing.T) {
		s, err := repo.Stats(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if s.TotalEstimates != 5 || s.TotalCostSum != 15000 || s.ActiveUsers != 2 {
			t.Fatalf("unexpected stats: %+v", s)
		}
	})

	t.Run("delete", func(t *testing.T) {
		ok, err := repo.Delete(ctx, "e-1")
		if err != nil || !ok {
			t.Fatalf("expected delete, got %v, %v", ok, err)
		}
		ok, err = repo.Delete(ctx, "e-1")
		if err != nil || ok {
			t.Fatalf("expected false on second delete, got %v, %v", ok, err)
		}
	})
}
