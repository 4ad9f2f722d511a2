package database

import (
	"fmt"
	"log"
	"os"

	"bulletin-board/internal/domain/access"
	"bulletin-board/internal/domain/posts"
	"bulletin-board/internal/domain/users"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func InitDB() {
	dsn := os.Getenv("DB_URL")
	if dsn == "" {
		log.Fatal("❌ DB_URL not set")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatal("❌ Failed to connect to database:", err)
	}

	DB = db

	if err := Migrate(DB); err != nil {
		log.Fatal("❌ Migration error:", err)
	}

	fmt.Println("✅ Connected and migrated successfully")
}

// Migrate builds the schema and seeds the role groups. Tests reuse it
// against an in-memory database.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&users.User{},
		&users.Group{},
		&users.Permission{},
		&users.ResetToken{},
		&posts.Post{},
	); err != nil {
		return err
	}
	return seedAccessControl(db)
}

// seedAccessControl guarantees the default/mod groups and their permission
// grants exist. Registration and unban both look the default group up by
// name, so it has to be there before the first request.
func seedAccessControl(db *gorm.DB) error {
	perms := map[string]users.Permission{}
	for _, p := range []users.Permission{
		{Code: access.PermAddPost, Description: "Can add post"},
		{Code: access.PermDeletePost, Description: "Can delete post"},
	} {
		perm := p
		if err := db.Where(users.Permission{Code: perm.Code}).
			FirstOrCreate(&perm).Error; err != nil {
			return err
		}
		perms[perm.Code] = perm
	}

	grants := []struct {
		group string
		codes []string
	}{
		{access.GroupDefault, []string{access.PermAddPost}},
		{access.GroupMod, []string{access.PermAddPost, access.PermDeletePost}},
	}

	for _, g := range grants {
		group := users.Group{Name: g.group}
		if err := db.Where(users.Group{Name: g.group}).
			FirstOrCreate(&group).Error; err != nil {
			return err
		}
		for _, code := range g.codes {
			perm := perms[code]
			if err := db.Model(&group).Association("Permissions").Append(&perm); err != nil {
				return err
			}
		}
	}

	return nil
}
