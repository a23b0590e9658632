//go:build ignore

// Seeds a local database with the admin account and a few sample builds.
// Run with: go run scripts/seed.go
package main

import (
	"fmt"
	"log"
	"time"

	"mybricks/internal/config"
	"mybricks/internal/models"
	"mybricks/internal/utils"
)

type sampleBuild struct {
	title       string
	description string
	pieces      int
	status      string
}

var samples = []sampleBuild{
	{
		title:       "Galaxy Ship",
		description: "A deep-space explorer with a detachable cockpit and folding wings.",
		pieces:      842,
		status:      "published",
	},
	{
		title:       "Medieval Castle",
		description: "Working drawbridge, two towers, and a dungeon under the keep.",
		pieces:      1520,
		status:      "published",
	},
	{
		title:       "City Fire Station",
		description: "Still missing the ladder truck, so it stays in drafts for now.",
		pieces:      430,
		status:      "draft",
	},
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("config load failed: ", err)
	}

	db, err := utils.InitDatabase(cfg.Database.Path)
	if err != nil {
		log.Fatal("database init failed: ", err)
	}
	if err := utils.SeedAdminUser(db, cfg.Admin.Email, cfg.Admin.Password); err != nil {
		log.Fatal("admin seed failed: ", err)
	}

	for _, s := range samples {
		pieces := s.pieces
		post := models.Post{
			Title:       s.title,
			Slug:        utils.Slugify(s.title),
			Description: s.description,
			PieceCount:  &pieces,
			Status:      s.status,
		}
		if s.status == "published" {
			now := time.Now()
			post.PublishedAt = &now
		}

		var count int64
		db.Model(&models.Post{}).Where("slug = ?", post.Slug).Count(&count)
		if count > 0 {
			continue
		}
		if err := db.Create(&post).Error; err != nil {
			log.Fatalf("seeding %q failed: %v", s.title, err)
		}
		fmt.Printf("seeded %s (%s)\n", post.Title, post.Status)
	}
}
