package entity

type Category struct {
	Base

	Name  string `gorm:"uniqueIndex"`
	Icon  string
	Color string
}

// SeedCategories is the fixed category set every deployment starts with.
var SeedCategories = []Category{
	{Base: Base{ID: "skill"}, Name: "Skill", Icon: "zap", Color: "#F59E0B"},
	{Base: Base{ID: "creative"}, Name: "Creative", Icon: "palette", Color: "#EC4899"},
	{Base: Base{ID: "adventure"}, Name: "Adventure", Icon: "compass", Color: "#10B981"},
	{Base: Base{ID: "self-discovery"}, Name: "Self-Discovery", Icon: "sparkles", Color: "#8B5CF6"},
	{Base: Base{ID: "mini"}, Name: "Mini", Icon: "clock", Color: "#6366F1"},
	{Base: Base{ID: "irl-challenge"}, Name: "IRL Challenge", Icon: "flag", Color: "#EF4444"},
	{Base: Base{ID: "social"}, Name: "Social", Icon: "users", Color: "#3B82F6"},
	{Base: Base{ID: "local-gem"}, Name: "Local Gem", Icon: "map-pin", Color: "#14B8A6"},
}
