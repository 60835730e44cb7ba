package models

// Category tags used by convention on influencer profiles
// Not enforced as a foreign key; search filters pass values through as-is
const (
	CategoryBeauty         = "beauty"
	CategoryFashion        = "fashion"
	CategoryHealthWellness = "health/wellness"
	CategoryFood           = "food"
	CategoryHomeLiving     = "home/living"
	CategoryParenting      = "parenting"
	CategoryTravel         = "travel"
	CategorySports         = "sports"
	CategoryPhotoVideo     = "photo/video"
	CategoryBusiness       = "business"
	CategoryEducation      = "education"
	CategoryEntertainment  = "entertainment"
	CategoryPets           = "pets"
	CategoryAutomotive     = "automotive"
	CategoryGaming         = "gaming"
)

// CategoryAll is the sentinel filter value meaning "no category filter"
const CategoryAll = "all"

// CategoryTags lists every known category tag in display order
func CategoryTags() []string {
	return []string{
		CategoryBeauty,
		CategoryFashion,
		CategoryHealthWellness,
		CategoryFood,
		CategoryHomeLiving,
		CategoryParenting,
		CategoryTravel,
		CategorySports,
		CategoryPhotoVideo,
		CategoryBusiness,
		CategoryEducation,
		CategoryEntertainment,
		CategoryPets,
		CategoryAutomotive,
		CategoryGaming,
	}
}

// IsKnownCategory reports whether tag is one of the enumerated categories.
// Search never rejects unknown tags; this exists for seed data and tooling.
func IsKnownCategory(tag string) bool {
	for _, c := range CategoryTags() {
		if c == tag {
			return true
		}
	}
	return false
}
