package repository

import (
	"testing"

	"github.com/yunus-I/Hotel-App/entity"
	"github.com/yunus-I/Hotel-App/pkg/logging"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := db.AutoMigrate(&entity.CartEntry{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func TestImportLegacyRows(t *testing.T) {
	repo := NewCartRepository(testDB(t))

	raw := []byte(`[
		{"itemId":"1","tenantId":"hotel_001","name":"Club Sandwich","unitPrice":12.99,"quantity":2,"addedAt":"2024-05-01T10:00:00Z"},
		{"itemId":"2","tenantId":"hotel_001","name":"Orange Juice","unitPrice":3.99,"quantity":1,"addedAt":"2024-05-01T10:01:00Z","unknownField":true},
		{"itemId":"1","tenantId":"hotel_002","name":"Club Sandwich","unitPrice":12.99,"quantity":1,"addedAt":"2024-05-01T10:02:00Z"}
	]`)
	if err := repo.ImportLegacy(raw, logging.New()); err != nil {
		t.Fatalf("import: %v", err)
	}

	rows, err := repo.ListByHotel("hotel_001")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("want 2 entries for hotel_001, got %d", len(rows))
	}
	if rows[0].ItemID != "1" || rows[0].Qty != 2 || rows[0].UnitPrice.StringFixed(2) != "12.99" {
		t.Fatalf("bad first row: %+v", rows[0])
	}

	other, _ := repo.ListByHotel("hotel_002")
	if len(other) != 1 {
		t.Fatalf("want 1 entry for hotel_002, got %d", len(other))
	}
}

func TestImportLegacyMergesDuplicates(t *testing.T) {
	repo := NewCartRepository(testDB(t))

	raw := []byte(`[
		{"itemId":"1","tenantId":"h","name":"Fries","unitPrice":5.99,"quantity":1,"addedAt":"2024-05-01T10:00:00Z"},
		{"itemId":"1","tenantId":"h","name":"Fries","unitPrice":5.99,"quantity":2,"addedAt":"2024-05-01T11:00:00Z"}
	]`)
	if err := repo.ImportLegacy(raw, logging.New()); err != nil {
		t.Fatalf("import: %v", err)
	}

	rows, _ := repo.ListByHotel("h")
	if len(rows) != 1 || rows[0].Qty != 3 {
		t.Fatalf("duplicates must merge quantities, got %+v", rows)
	}
}

func TestImportLegacyCorruptPayload(t *testing.T) {
	repo := NewCartRepository(testDB(t))

	// Corrupt data is discarded as an empty cart, never an error.
	if err := repo.ImportLegacy([]byte(`{not json`), logging.New()); err != nil {
		t.Fatalf("corrupt payload must not error: %v", err)
	}
	rows, _ := repo.ListByHotel("h")
	if len(rows) != 0 {
		t.Fatalf("want empty cart, got %+v", rows)
	}
}

func TestImportLegacySkipsInvalidRows(t *testing.T) {
	repo := NewCartRepository(testDB(t))

	raw := []byte(`[
		{"itemId":"","tenantId":"h","name":"no id","unitPrice":1.00,"quantity":1},
		{"itemId":"1","tenantId":"h","name":"bad qty","unitPrice":1.00,"quantity":0},
		{"itemId":"2","tenantId":"h","name":"bad price","unitPrice":-1.00,"quantity":1},
		{"itemId":"3","tenantId":"h","name":"good","unitPrice":2.50,"quantity":1}
	]`)
	if err := repo.ImportLegacy(raw, logging.New()); err != nil {
		t.Fatalf("import: %v", err)
	}

	rows, _ := repo.ListByHotel("h")
	if len(rows) != 1 || rows[0].ItemID != "3" {
		t.Fatalf("only the valid row should land, got %+v", rows)
	}
}
