package entity

// CategoryDescriptor describes one configured category.
type CategoryDescriptor struct {
	ID          string `json:"id" mapstructure:"id" yaml:"id"`
	Label       string `json:"label" mapstructure:"label" yaml:"label"`
	Tag         string `json:"tag" mapstructure:"tag" yaml:"tag"`
	Description string `json:"description" mapstructure:"description" yaml:"description"`
}

// CategoryRef is the resolved category of a single entity: either a
// configured category or an unknown raw value.
type CategoryRef interface {
	Key() string
	isCategoryRef()
}

// KnownCategory refers to a configured category.
type KnownCategory struct {
	Descriptor CategoryDescriptor
}

func (k KnownCategory) Key() string  { return k.Descriptor.ID }
func (KnownCategory) isCategoryRef() {}

// UnknownCategory carries a category value with no configuration.
type UnknownCategory struct {
	Raw string
}

func (u UnknownCategory) Key() string  { return u.Raw }
func (UnknownCategory) isCategoryRef() {}

// CategoryGroup is a category with the entities that belong to it.
type CategoryGroup[T any] struct {
	CategoryDescriptor
	Synthetic bool `json:"synthetic,omitempty"`
	Items     []T  `json:"items"`
}

// Default category ids used when an entity has no category.
const (
	DefaultServiceCategoryID = "it-solutions"
	DefaultProgramCategoryID = "student-career"
)

// Tag and description given to categories that are not configured.
const (
	SyntheticCategoryTag         = "Additional Offerings"
	SyntheticCategoryDescription = "More solutions from JivIT Solutions."
)

// DefaultServiceCategories is used when settings define no service categories.
func DefaultServiceCategories() []CategoryDescriptor {
	return []CategoryDescriptor{
		{
			ID:          "it-solutions",
			Label:       "IT Solutions",
			Tag:         "Enterprise-Grade Technology",
			Description: "Revenue-driving, scalable technology infrastructure for modern enterprises.",
		},
		{
			ID:          "wellness",
			Label:       "Wellness & Healing Services",
			Tag:         "Digital Platform & Ecosystem",
			Description: "Empowering personal growth, balance, and transformation through technology-enabled wellness experiences.",
		},
		{
			ID:          "platform-enablement",
			Label:       "Platform Enablement for Small-Scale Businesses",
			Tag:         "Long-term Vision Initiative",
			Description: "Empowering small businesses and independent professionals with accessible, scalable technology.",
		},
	}
}

// DefaultProgramCategories is used when settings define no program categories.
func DefaultProgramCategories() []CategoryDescriptor {
	return []CategoryDescriptor{
		{
			ID:          "student-career",
			Label:       "Student & Career Services",
			Tag:         "Development, Exposure & Growth",
			Description: "Rigorous programs that bridge academic theory with real-world application in IT and wellness domains.",
		},
		{
			ID:          "research",
			Label:       "Research & Innovation",
			Tag:         "Knowledge-Driven Public Good",
			Description: "Conducting ethical, open research at the intersection of technology, mental health, and organizational efficiency.",
		},
	}
}
