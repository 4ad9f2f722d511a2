package posts

import (
	"bytes"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"bulletin-board/database"
	"bulletin-board/internal/domain/access"
	"bulletin-board/internal/domain/users"
	"bulletin-board/internal/infra/audit"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func useGlobalDB(t *testing.T, db *gorm.DB) {
	t.Helper()

	prev := database.DB
	database.DB = db
	t.Cleanup(func() { database.DB = prev })
}

func captureAudit(t *testing.T) *bytes.Buffer {
	t.Helper()

	buf := &bytes.Buffer{}
	audit.SetOutput(buf)
	t.Cleanup(func() { audit.SetOutput(os.Stdout) })
	return buf
}

func seedMember(t *testing.T, db *gorm.DB, username string, groups ...string) users.User {
	t.Helper()

	u := users.User{Username: username}
	if err := db.Create(&u).Error; err != nil {
		t.Fatalf("create user %s: %v", username, err)
	}
	for _, name := range groups {
		var g users.Group
		if err := db.Where("name = ?", name).First(&g).Error; err != nil {
			t.Fatalf("load group %s: %v", name, err)
		}
		if err := db.Model(&u).Association("Groups").Append(&g); err != nil {
			t.Fatalf("grant %s: %v", name, err)
		}
	}
	return u
}

// actingAs stands in for AuthMiddleware: the handlers only read the claims
// it would have placed in the context.
func actingAs(u users.User) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("user_id", u.ID)
		c.Set("username", u.Username)
		c.Next()
	}
}

func postRouter(u users.User) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/post", actingAs(u), CreatePostHandler)
	r.DELETE("/delete_post/:id", actingAs(u), DeletePostHandler)
	return r
}

func TestCreatePostHandlerAuditsAuthor(t *testing.T) {
	db := newTestDB(t)
	useGlobalDB(t, db)
	auditLog := captureAudit(t)

	alice := seedMember(t, db, "alice", access.GroupDefault)
	r := postRouter(alice)

	req := httptest.NewRequest(http.MethodPost, "/post", strings.NewReader(`{"content":"hello board"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200; body %s", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), "Post created successfully") {
		t.Errorf("body = %s, want success notification", w.Body.String())
	}
	if !strings.Contains(auditLog.String(), "New post created by alice") {
		t.Errorf("audit log = %q, want post-created line for alice", auditLog.String())
	}

	listed, err := ListPosts(db)
	if err != nil {
		t.Fatalf("ListPosts: %v", err)
	}
	if len(listed) != 1 || listed[0].AuthorID != alice.ID {
		t.Errorf("persisted posts = %+v, want one by alice", listed)
	}
}

func TestCreatePostHandlerDeniedRedirectsHome(t *testing.T) {
	db := newTestDB(t)
	useGlobalDB(t, db)
	auditLog := captureAudit(t)

	// groupless: no add_post flag
	banned := seedMember(t, db, "banned")
	r := postRouter(banned)

	req := httptest.NewRequest(http.MethodPost, "/post", strings.NewReader(`{"content":"sneaky"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want 303 redirect", w.Code)
	}
	if loc := w.Header().Get("Location"); loc != "/" {
		t.Errorf("redirect location = %q, want /", loc)
	}
	if strings.Contains(auditLog.String(), "New post created") {
		t.Error("denied request must not write an audit line")
	}

	listed, err := ListPosts(db)
	if err != nil {
		t.Fatalf("ListPosts: %v", err)
	}
	if len(listed) != 0 {
		t.Errorf("persisted %d posts after denied request, want 0", len(listed))
	}
}

func TestDeletePostHandlerAuditsActor(t *testing.T) {
	db := newTestDB(t)
	useGlobalDB(t, db)
	auditLog := captureAudit(t)

	alice := seedMember(t, db, "alice", access.GroupDefault)
	mona := seedMember(t, db, "mona", access.GroupMod)
	post, err := CreatePost(db, alice.ID, "to be removed")
	if err != nil {
		t.Fatalf("CreatePost: %v", err)
	}

	r := postRouter(mona)
	req := httptest.NewRequest(http.MethodDelete, fmt.Sprintf("/delete_post/%d", post.ID), nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200; body %s", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), "Post deleted successfully") {
		t.Errorf("body = %s, want success notification", w.Body.String())
	}
	if !strings.Contains(auditLog.String(), "Post deleted by mona") {
		t.Errorf("audit log = %q, want post-deleted line for mona", auditLog.String())
	}

	listed, err := ListPosts(db)
	if err != nil {
		t.Fatalf("ListPosts: %v", err)
	}
	if len(listed) != 0 {
		t.Errorf("listed %d posts after delete, want 0", len(listed))
	}
}

func TestDeletePostHandlerDeniedRedirectsHome(t *testing.T) {
	db := newTestDB(t)
	useGlobalDB(t, db)

	alice := seedMember(t, db, "alice", access.GroupDefault)
	post, err := CreatePost(db, alice.ID, "stays put")
	if err != nil {
		t.Fatalf("CreatePost: %v", err)
	}

	// default members hold add_post but not delete_post
	r := postRouter(alice)
	req := httptest.NewRequest(http.MethodDelete, fmt.Sprintf("/delete_post/%d", post.ID), nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want 303 redirect", w.Code)
	}
	if loc := w.Header().Get("Location"); loc != "/" {
		t.Errorf("redirect location = %q, want /", loc)
	}

	listed, err := ListPosts(db)
	if err != nil {
		t.Fatalf("ListPosts: %v", err)
	}
	if len(listed) != 1 {
		t.Errorf("listed %d posts after denied delete, want 1", len(listed))
	}
}

func TestDeletePostHandlerNotFound(t *testing.T) {
	db := newTestDB(t)
	useGlobalDB(t, db)

	mona := seedMember(t, db, "mona", access.GroupMod)
	r := postRouter(mona)

	req := httptest.NewRequest(http.MethodDelete, "/delete_post/99", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}
}
