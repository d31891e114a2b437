package dto

import (
	"sort"

	"github.com/foliohub/portfolio-api/internal/models"
)

// PublicProfileDTO is the profile subset shown on public pages.
type PublicProfileDTO struct {
	Username    string `json:"username"`
	DisplayName string `json:"display_name"`
	Bio         string `json:"bio"`
	AvatarURL   string `json:"avatar_url"`
}

// SkillCategoryDTO groups a category's skills for display.
type SkillCategoryDTO struct {
	Category string         `json:"category"`
	Skills   []models.Skill `json:"skills"`
}

// PortfolioDTO is the aggregated public profile page payload.
type PortfolioDTO struct {
	Profile     PublicProfileDTO      `json:"profile"`
	Projects    []models.Project      `json:"projects"`
	Skills      []SkillCategoryDTO    `json:"skills"`
	RecentPosts []BlogPostListItemDTO `json:"recent_posts"`
	SocialLinks []models.SocialLink   `json:"social_links"`
}

// ToPublicProfileDTO converts a Profile model to its public subset
func ToPublicProfileDTO(profile models.Profile) PublicProfileDTO {
	return PublicProfileDTO{
		Username:    profile.Username,
		DisplayName: profile.DisplayName,
		Bio:         profile.Bio,
		AvatarURL:   profile.AvatarURL,
	}
}

// GroupSkillsByCategory buckets skills by category. Input order (proficiency
// desc, featured desc, name asc) is preserved inside each bucket; buckets
// are sorted by category name for a stable payload.
func GroupSkillsByCategory(skills []models.Skill) []SkillCategoryDTO {
	buckets := map[string][]models.Skill{}
	for _, skill := range skills {
		buckets[skill.Category] = append(buckets[skill.Category], skill)
	}

	categories := make([]string, 0, len(buckets))
	for category := range buckets {
		categories = append(categories, category)
	}
	sort.Strings(categories)

	grouped := make([]SkillCategoryDTO, 0, len(categories))
	for _, category := range categories {
		grouped = append(grouped, SkillCategoryDTO{
			Category: category,
			Skills:   buckets[category],
		})
	}
	return grouped
}
