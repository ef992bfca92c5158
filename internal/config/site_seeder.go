package config

import (
	"log"

	"nitp-innovhub/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// SeedSiteData seeds the site configuration and catalog data
func SeedSiteData(db *gorm.DB) error {
	if err := seedSiteConfiguration(db); err != nil {
		return err
	}

	if err := seedNavbarLinks(db); err != nil {
		return err
	}

	if err := seedBentoCards(db); err != nil {
		return err
	}

	if err := seedBranches(db); err != nil {
		return err
	}

	log.Println("✅ Site data seeded successfully")
	return nil
}

func seedSiteConfiguration(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.SiteConfiguration{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil // Singleton row already exists
	}

	cfg := models.SiteConfiguration{
		SiteName: "Innovation Hub",
		VisionStatement: "Beyond placements: To build a culture at NIT Patna where students " +
			"learn from each other, explore innovation fearlessly, share knowledge selflessly, " +
			"and grow into engineers who create solutions, not just resumes.",
		FooterText: "© 2026 Innovation Hub NIT Patna • By Students, For Students",
	}
	if err := db.Create(&cfg).Error; err != nil {
		return err
	}
	log.Printf("   Created site configuration: %s", cfg.SiteName)
	return nil
}

func seedNavbarLinks(db *gorm.DB) error {
	links := []models.NavbarLink{
		{Label: "Home", URL: "/", SortOrder: 1, IsActive: true},
		{Label: "Guidance", URL: "/guidance", SortOrder: 2, IsActive: true},
		{Label: "Vault", URL: "/vault", SortOrder: 3, IsActive: true},
		{Label: "Apply as Mentor", URL: "/apply-mentor", SortOrder: 4, IsActive: true},
		{Label: "Contact", URL: "/send-inquiry", SortOrder: 5, IsActive: true},
	}

	for _, link := range links {
		var existing models.NavbarLink
		if err := db.Where("label = ?", link.Label).First(&existing).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				if err := db.Create(&link).Error; err != nil {
					return err
				}
				log.Printf("   Created navbar_link: %s", link.Label)
			}
		}
	}
	return nil
}

func seedBentoCards(db *gorm.DB) error {
	cards := []models.BentoCard{
		{
			Title:       "Resource Vault",
			Description: "PYQs, notes and reference books for every branch and semester.",
			IconName:    "library",
			LinkURL:     "/vault",
			ButtonText:  "Browse Vault",
			SortOrder:   1,
			GridCols:    2,
			IsActive:    true,
		},
		{
			Title:       "Senior Guidance",
			Description: "Connect with approved senior mentors for one-to-one guidance.",
			IconName:    "users",
			LinkURL:     "/guidance",
			ButtonText:  "Find a Mentor",
			SortOrder:   2,
			GridCols:    2,
			IsActive:    true,
		},
		{
			Title:       "Become a Mentor",
			Description: "Share your expertise with juniors. Apply to join the mentor directory.",
			IconName:    "trending-up",
			LinkURL:     "/apply-mentor",
			ButtonText:  "Apply Now",
			SortOrder:   3,
			IsActive:    true,
		},
	}

	for _, card := range cards {
		var existing models.BentoCard
		if err := db.Where("title = ?", card.Title).First(&existing).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				if err := db.Create(&card).Error; err != nil {
					return err
				}
				log.Printf("   Created bento_card: %s", card.Title)
			}
		}
	}
	return nil
}

func seedBranches(db *gorm.DB) error {
	branches := []models.Branch{
		{Code: models.BranchCSE, Name: "Computer Science & Engineering", IsActive: true},
		{Code: models.BranchECE, Name: "Electronics & Communication", IsActive: true},
		{Code: models.BranchEE, Name: "Electrical Engineering", IsActive: true},
		{Code: models.BranchME, Name: "Mechanical Engineering", IsActive: true},
		{Code: models.BranchCE, Name: "Civil Engineering", IsActive: true},
		{Code: models.BranchARCH, Name: "Architecture", IsActive: true},
	}

	for _, branch := range branches {
		var existing models.Branch
		if err := db.Where("code = ?", branch.Code).First(&existing).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				if err := db.Create(&branch).Error; err != nil {
					return err
				}
				log.Printf("   Created branch: %s", branch.Code)
			}
		}
	}
	return nil
}
