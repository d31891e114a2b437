package database

import (
	"fmt"

	"gorm.io/gorm"
)

// AddIndexes adds performance-critical indexes to the database
func AddIndexes(db *gorm.DB) error {
	indexes := []struct {
		table   string
		name    string
		columns string
	}{
		// Ownership-scoped dashboard queries
		{"projects", "idx_projects_user_id", "user_id"},
		{"skills", "idx_skills_user_id", "user_id"},
		{"blog_posts", "idx_blog_posts_user_id", "user_id"},
		{"social_links", "idx_social_links_user_id", "user_id"},

		// Public listing orders
		{"projects", "idx_projects_featured_order", "is_featured, display_order"},
		{"blog_posts", "idx_blog_posts_published_at", "published_at"},
		{"social_links", "idx_social_links_order", "display_order"},

		// Public lookups
		{"profiles", "idx_profiles_username", "username"},
		{"blog_posts", "idx_blog_posts_slug", "slug"},
	}

	for _, idx := range indexes {
		// Check if index already exists
		var count int64
		err := db.Raw(`
			SELECT COUNT(*)
			FROM pg_indexes
			WHERE tablename = ? AND indexname = ?
		`, idx.table, idx.name).Count(&count).Error

		if err != nil {
			return fmt.Errorf("failed to check index %s: %w", idx.name, err)
		}

		if count > 0 {
			continue
		}

		sql := fmt.Sprintf("CREATE INDEX %s ON %s (%s)", idx.name, idx.table, idx.columns)
		if err := db.Exec(sql).Error; err != nil {
			return fmt.Errorf("failed to create index %s: %w", idx.name, err)
		}

		fmt.Printf("Created index %s on %s(%s)\n", idx.name, idx.table, idx.columns)
	}

	return nil
}
