package database

import (
	"campus_cms/config"
	"campus_cms/constants"
	"campus_cms/model"
	"log"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// SeedData creates the bootstrap admin account if it does not exist yet.
// The default password comes from config and must be changed after first login.
func SeedData(db *gorm.DB) {
	app := config.Current()

	bytes, err := bcrypt.GenerateFromPassword([]byte(app.DefaultPassword), 10)
	if err != nil {
		log.Println("failed to hash seed password:", err)
		return
	}

	accounts := []model.Account{
		{
			Username: "admin",
			Email:    "admin@" + app.OrgMailDomain,
			Password: string(bytes),
			Role:     constants.ROLE_ADMIN,
			IsActive: true,
		},
	}

	for _, account := range accounts {
		if err := db.Where(model.Account{Username: account.Username}).FirstOrCreate(&account).Error; err != nil {
			log.Println("failed to seed account:", account.Username, "error:", err)
		}
	}
}
