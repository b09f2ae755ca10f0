package mysql

import (
	"context"
	"errors"
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	domain "sellsi-admin-backend/internal/domain/user"
	"sellsi-admin-backend/pkg/id"
)

type userSQLite struct {
	ID        uint64         `gorm:"primaryKey;column:id"`
	UserID    string         `gorm:"size:32;column:user_id"`
	Email     string         `gorm:"column:email"`
	FullName  string         `gorm:"column:full_name"`
	RUT       string         `gorm:"column:rut"`
	Role      string         `gorm:"type:text;column:role"`
	Banned    bool           `gorm:"column:banned"`
	BanReason string         `gorm:"column:ban_reason"`
	Verified  bool           `gorm:"column:verified"`
	CreatedAt time.Time      `gorm:"column:created_at"`
	UpdatedAt time.Time      `gorm:"column:updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"column:deleted_at"`
	DeletedBy string         `gorm:"column:deleted_by"`
}

func (userSQLite) TableName() string { return "users" }

func openUserTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&userSQLite{}); err != nil {
		t.Fatalf("auto-migrate: %v", err)
	}
	return db
}

func TestUserRepository_SoftDelete(t *testing.T) {
	db := openUserTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	uid := id.NewID32()
	if err := repo.Create(ctx, &domain.User{UserID: uid, Email: "x@y.cl", FullName: "X", Role: domain.RoleBuyer}); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := repo.SoftDelete(ctx, uid, "admin-1"); err != nil {
		t.Fatalf("SoftDelete: %v", err)
	}

	// soft-deleted rows are invisible to normal reads
	if _, err := repo.GetByUserID(ctx, uid); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("err = %v, want ErrRecordNotFound", err)
	}

	// but the row still exists with deleted_by stamped
	var raw userSQLite
	if err := db.Unscoped().Where("user_id = ?", uid).First(&raw).Error; err != nil {
		t.Fatalf("unscoped get: %v", err)
	}
	if raw.DeletedBy != "admin-1" || !raw.DeletedAt.Valid {
		t.Fatalf("raw: %+v", raw)
	}

	// deleting twice is a no-op (no matching live row)
	if err := repo.SoftDelete(ctx, uid, "admin-2"); err != nil {
		t.Fatalf("second SoftDelete: %v", err)
	}
}
