package database

import (
	"fmt"
	"log"

	"github.com/tomaspozo/hackathon-platform/config"
	"github.com/tomaspozo/hackathon-platform/models"
	"github.com/tomaspozo/hackathon-platform/utils"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

var DefaultAdminEmail = "admin@admin.com"
var DefaultPassword = "admin"

// InitDB initializes the database connection, migrates the models and seeds
// the default admin account if the database is empty
func InitDB() {
	dsn := fmt.Sprintf("host=%s port=%s user=%s dbname=%s password=%s sslmode=disable TimeZone=UTC",
		config.PostgresHost, config.PostgresPort, config.PostgresUser, config.PostgresDB, config.PostgresPassword)

	var err error
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal("failed to connect database: ", err)
	}

	if err := Migrate(DB); err != nil {
		log.Fatal("failed to migrate database: ", err)
	}

	Populate()
}

// Migrate runs the schema migration for all models
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.PasswordReset{},
		&models.Hackathon{},
		&models.Category{},
		&models.JudgingCriterion{},
		&models.Participant{},
		&models.Team{},
		&models.TeamMember{},
		&models.TeamInvite{},
		&models.Submission{},
		&models.JudgeAssignment{},
		&models.JudgingScore{},
	)
}

// Populate seeds the default admin user when no users exist yet
func Populate() {
	var countUser int64
	DB.Model(&models.User{}).Count(&countUser)
	if countUser != 0 {
		return
	}

	password := DefaultPassword
	if config.DefaultPassword != "" {
		password = config.DefaultPassword
	}

	hashed, err := utils.HashPassword(password)
	if err != nil {
		panic(err)
	}

	admin := models.User{
		Email:     DefaultAdminEmail,
		Firstname: "Admin",
		Lastname:  "Admin",
		Password:  hashed,
		Role:      models.RoleAdmin,
	}
	DB.Create(&admin)
	log.Println("Default admin user created")
}
