package posts

import (
	"errors"
	"fmt"
	"testing"

	"bulletin-board/database"
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

func seedAuthor(t *testing.T, db *gorm.DB, username string) users.User {
	t.Helper()

	u := users.User{Username: username}
	if err := db.Create(&u).Error; err != nil {
		t.Fatalf("create author: %v", err)
	}
	return u
}

func TestCreatePostStampsAuthor(t *testing.T) {
	db := newTestDB(t)
	alice := seedAuthor(t, db, "alice")

	post, err := CreatePost(db, alice.ID, "first!")
	if err != nil {
		t.Fatalf("CreatePost: %v", err)
	}
	if post.AuthorID != alice.ID {
		t.Errorf("author id = %d, want %d", post.AuthorID, alice.ID)
	}
	if post.CreatedAt.IsZero() {
		t.Error("expected creation timestamp")
	}

	listed, err := ListPosts(db)
	if err != nil {
		t.Fatalf("ListPosts: %v", err)
	}
	if len(listed) != 1 {
		t.Fatalf("listed %d posts, want 1", len(listed))
	}
	if listed[0].Author.Username != "alice" {
		t.Errorf("listed author = %q, want alice", listed[0].Author.Username)
	}
}

func TestListPostsNewestFirst(t *testing.T) {
	db := newTestDB(t)
	alice := seedAuthor(t, db, "alice")

	if _, err := CreatePost(db, alice.ID, "older"); err != nil {
		t.Fatalf("CreatePost: %v", err)
	}
	newer, err := CreatePost(db, alice.ID, "newer")
	if err != nil {
		t.Fatalf("CreatePost: %v", err)
	}

	listed, err := ListPosts(db)
	if err != nil {
		t.Fatalf("ListPosts: %v", err)
	}
	if len(listed) != 2 {
		t.Fatalf("listed %d posts, want 2", len(listed))
	}
	if listed[0].ID != newer.ID {
		t.Errorf("first listed id = %d, want newest %d", listed[0].ID, newer.ID)
	}
}

func TestDeletePost(t *testing.T) {
	db := newTestDB(t)
	alice := seedAuthor(t, db, "alice")

	post, err := CreatePost(db, alice.ID, "soon gone")
	if err != nil {
		t.Fatalf("CreatePost: %v", err)
	}

	if err := DeletePost(db, post.ID); err != nil {
		t.Fatalf("DeletePost: %v", err)
	}

	listed, err := ListPosts(db)
	if err != nil {
		t.Fatalf("ListPosts: %v", err)
	}
	if len(listed) != 0 {
		t.Errorf("listed %d posts after delete, want 0", len(listed))
	}
}

func TestDeletePostNotFound(t *testing.T) {
	db := newTestDB(t)

	err := DeletePost(db, 42)
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("DeletePost(42) = %v, want ErrRecordNotFound", err)
	}
}
