package main

import (
	"log"

	"github.com/redis/go-redis/v9"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/campuskit/campus-portal/internal/config"
	"github.com/campuskit/campus-portal/internal/entity"
	"github.com/campuskit/campus-portal/internal/server"
	"github.com/campuskit/campus-portal/internal/token"
	"github.com/campuskit/campus-portal/pkg/database"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	db := database.Connect()
	if err := migrate(db); err != nil {
		log.Fatalf("migration failed: %v", err)
	}

	if cfg.AppEnv == "development" {
		if err := seedAccounts(db); err != nil {
			log.Fatalf("failed to seed accounts: %v", err)
		}
	}

	var redisClient *redis.Client
	if cfg.RedisURL != "" {
		opts, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			log.Fatalf("invalid REDIS_URL: %v", err)
		}
		redisClient = redis.NewClient(opts)
	}

	srv := server.NewServer(cfg, db, redisClient)
	if err := srv.Run(":" + cfg.Port); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}

func migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&entity.User{},
		&entity.TeacherNotice{},
		&entity.HODNotice{},
		&entity.PersonalFile{},
		&entity.StudentUpload{},
		&entity.UploadIndexEntry{},
	)
}

// seedAccounts creates one demo account per role so a fresh development
// database is immediately usable.
func seedAccounts(db *gorm.DB) error {
	accounts := []struct {
		name, email, password, role string
	}{
		{"Portal Admin", "admin@campus.local", "admin-password", token.RoleAdmin},
		{"Demo Teacher", "teacher@campus.local", "teacher-password", token.RoleTeacher},
		{"Demo Student", "student@campus.local", "student-password", token.RoleStudent},
	}

	for _, a := range accounts {
		var count int64
		if err := db.Model(&entity.User{}).Where("email = ?", a.email).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			continue
		}

		hashed, err := bcrypt.GenerateFromPassword([]byte(a.password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}

		user := &entity.User{
			Name:         a.name,
			Email:        a.email,
			PasswordHash: string(hashed),
			Role:         a.role,
		}
		if err := db.Create(user).Error; err != nil {
			return err
		}
		log.Printf("seeded %s account %s", a.role, a.email)
	}

	return nil
}
