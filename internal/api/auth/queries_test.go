package auth

import (
	"errors"
	"fmt"
	"testing"

	"bulletin-board/database"
	"bulletin-board/internal/domain/access"
	"bulletin-board/internal/domain/users"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("db handle: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func TestCreateAccountGrantsDefaultGroup(t *testing.T) {
	db := newTestDB(t)

	u := users.User{Username: "alice", AuthProvider: "local"}
	if err := CreateAccount(db, &u); err != nil {
		t.Fatalf("CreateAccount: %v", err)
	}

	// A fresh registration must be able to view home immediately.
	ident, err := access.IdentityFor(db, u.ID)
	if err != nil {
		t.Fatalf("IdentityFor: %v", err)
	}
	if !ident.InGroup(access.GroupDefault) {
		t.Errorf("expected default membership, got groups %v", ident.Groups)
	}
	if !access.CanViewHome(ident) {
		t.Error("fresh registration must satisfy CanViewHome")
	}
	if !access.CanCreatePost(ident) {
		t.Error("default group should carry add_post")
	}
	if access.IsModerator(ident) {
		t.Error("fresh registration must not be a moderator")
	}
}

func TestCreateAccountDuplicateUsername(t *testing.T) {
	db := newTestDB(t)

	first := users.User{Username: "alice"}
	if err := CreateAccount(db, &first); err != nil {
		t.Fatalf("CreateAccount: %v", err)
	}

	dup := users.User{Username: "alice"}
	err := CreateAccount(db, &dup)
	if err == nil {
		t.Fatal("expected duplicate username to fail")
	}
	if !errors.Is(err, gorm.ErrDuplicatedKey) {
		t.Errorf("duplicate username error = %v, want ErrDuplicatedKey", err)
	}

	var count int64
	db.Model(&users.User{}).Count(&count)
	if count != 1 {
		t.Errorf("user count = %d, want 1", count)
	}
}
