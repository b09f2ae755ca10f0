package mysql

import (
	"context"
	"errors"
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	adminDomain "sellsi-admin-backend/internal/domain/admin"
	domain "sellsi-admin-backend/internal/domain/financing"
	"sellsi-admin-backend/internal/domain/uow"
	"sellsi-admin-backend/pkg/id"
)

// --- SQLite-friendly schemas only for tests ---

type financingSQLite struct {
	ID             uint64         `gorm:"primaryKey;column:id"`
	RequestID      string         `gorm:"size:32;column:request_id"`
	BuyerID        string         `gorm:"size:32;column:buyer_id"`
	BuyerName      string         `gorm:"column:buyer_name"`
	BuyerRUT       string         `gorm:"column:buyer_rut"`
	SupplierID     string         `gorm:"size:32;column:supplier_id"`
	SupplierName   string         `gorm:"column:supplier_name"`
	Status         string         `gorm:"type:text;column:status"`
	Paused         bool           `gorm:"column:paused"`
	Amount         float64        `gorm:"column:amount"`
	AmountUsed     float64        `gorm:"column:amount_used"`
	AmountPaid     float64        `gorm:"column:amount_paid"`
	AmountRefunded float64        `gorm:"column:amount_refunded"`
	TermDays       int            `gorm:"column:term_days"`
	CreatedAt      time.Time      `gorm:"column:created_at"`
	UpdatedAt      time.Time      `gorm:"column:updated_at"`
	ApprovedAt     *time.Time     `gorm:"column:approved_at"`
	ExpiresAt      *time.Time     `gorm:"column:expires_at"`
	DeletedAt      gorm.DeletedAt `gorm:"column:deleted_at"`
}

func (financingSQLite) TableName() string { return "financing_requests" }

type auditSQLite struct {
	ID          string    `gorm:"primaryKey;column:id"`
	AdminID     string    `gorm:"column:admin_id"`
	Action      string    `gorm:"column:action"`
	TargetTable string    `gorm:"column:target_table"`
	TargetID    string    `gorm:"column:target_id"`
	Details     string    `gorm:"column:details"`
	CreatedAt   time.Time `gorm:"column:created_at"`
}

func (auditSQLite) TableName() string { return "admin_audit_log" }

// openTestDB creates an in-memory sqlite DB and migrates ONLY the sqlite-safe
// shadow schemas.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&financingSQLite{}, &auditSQLite{}); err != nil {
		t.Fatalf("auto-migrate: %v", err)
	}
	return db
}

func makeRequest(requestID string) *domain.Request {
	return &domain.Request{
		RequestID:    requestID,
		BuyerID:      id.NewID32(),
		BuyerName:    "Comercial Andina",
		BuyerRUT:     "76.123.456-0",
		SupplierID:   id.NewID32(),
		SupplierName: "Proveedora Uno",
		Status:       domain.StatusPendingSellsiApproval,
		Amount:       1_000_000,
		TermDays:     30,
	}
}

func TestFinancingRepository_CreateGetSave(t *testing.T) {
	db := openTestDB(t)
	repo := NewFinancingRepository(db)
	ctx := context.Background()

	rid := id.NewID32()
	if err := repo.Create(ctx, makeRequest(rid)); err != nil {
		t.Fatalf("Create: %v", err)
	}

	got, err := repo.GetByRequestID(ctx, rid)
	if err != nil {
		t.Fatalf("GetByRequestID: %v", err)
	}
	if got.BuyerName != "Comercial Andina" || got.Status != domain.StatusPendingSellsiApproval {
		t.Fatalf("got %+v", got)
	}

	got.Status = domain.StatusApprovedBySellsi
	got.AmountUsed = 250_000
	if err := repo.Save(ctx, got); err != nil {
		t.Fatalf("Save: %v", err)
	}
	again, err := repo.GetByRequestID(ctx, rid)
	if err != nil {
		t.Fatalf("re-get: %v", err)
	}
	if again.Status != domain.StatusApprovedBySellsi || again.AmountUsed != 250_000 {
		t.Fatalf("after save: %+v", again)
	}
}

func TestFinancingRepository_NotFound(t *testing.T) {
	db := openTestDB(t)
	repo := NewFinancingRepository(db)

	_, err := repo.GetByRequestID(context.Background(), id.NewID32())
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("err = %v, want ErrRecordNotFound", err)
	}
}

func TestFinancingRepository_List(t *testing.T) {
	db := openTestDB(t)
	repo := NewFinancingRepository(db)
	ctx := context.Background()

	for range 3 {
		if err := repo.Create(ctx, makeRequest(id.NewID32())); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}
	rows, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("len = %d, want 3", len(rows))
	}
}

func TestGormUoW_WithinTx_RollsBackOnError(t *testing.T) {
	db := openTestDB(t)
	u := NewGormUoW(db)
	ctx := context.Background()

	rid := id.NewID32()
	boom := errors.New("boom")

	// create inside a failing tx must not persist
	err := u.WithinTx(ctx, func(r uow.Repos) error {
		if err := r.Financings.Create(ctx, makeRequest(rid)); err != nil {
			return err
		}
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("err = %v, want boom", err)
	}
	if _, err := NewFinancingRepository(db).GetByRequestID(ctx, rid); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("row persisted despite rollback: %v", err)
	}
}

func TestGormUoW_WithinTx_CommitsAudit(t *testing.T) {
	db := openTestDB(t)
	u := NewGormUoW(db)
	ctx := context.Background()

	rid := id.NewID32()
	err := u.WithinTx(ctx, func(r uow.Repos) error {
		if err := r.Financings.Create(ctx, makeRequest(rid)); err != nil {
			return err
		}
		return r.Audits.Append(ctx, adminDomain.NewAudit("admin-1", "financing_approve", "financing_requests", rid, ""))
	})
	if err != nil {
		t.Fatalf("WithinTx: %v", err)
	}

	logs, err := NewAuditRepository(db).ListByTarget(ctx, "financing_requests", rid)
	if err != nil {
		t.Fatalf("ListByTarget: %v", err)
	}
	if len(logs) != 1 || logs[0].Action != "financing_approve" {
		t.Fatalf("logs: %+v", logs)
	}
}
