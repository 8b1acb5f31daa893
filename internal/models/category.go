package models

// CategoryCount is the width of every prediction vector produced by the upstream model
const CategoryCount = 15

// CategoryUnknown is the label for customers without a dominant category
const CategoryUnknown = ""

// categoryLabels is positionally aligned with the prediction vector.
// The order is shared with the model that produced the vectors and must not change.
var categoryLabels = [CategoryCount]string{
	"Automotive",
	"Beauty",
	"Books & Media",
	"Clothing",
	"Electronics",
	"Food & Grocery",
	"Furniture",
	"Health & Wellness",
	"Home & Kitchen",
	"Jewelry & Accessories",
	"Office Supplies",
	"Pet Supplies",
	"Sports & Outdoors",
	"Toys & Games",
	CategoryUnknown,
}

// categoryIndexes is the label -> index view of categoryLabels, built once at startup
var categoryIndexes = func() map[string]int {
	m := make(map[string]int, CategoryCount)
	for i, label := range categoryLabels {
		m[label] = i
	}
	return m
}()

// CategoryLabels returns the category labels in vector order
func CategoryLabels() []string {
	labels := make([]string, CategoryCount)
	copy(labels, categoryLabels[:])
	return labels
}

// CategoryMapping returns a copy of the label -> vector index mapping
func CategoryMapping() map[string]int {
	m := make(map[string]int, len(categoryIndexes))
	for label, index := range categoryIndexes {
		m[label] = index
	}
	return m
}

// CategoryLabel returns the label stored at the given vector index
func CategoryLabel(index int) (string, bool) {
	if index < 0 || index >= CategoryCount {
		return "", false
	}
	return categoryLabels[index], true
}

// CategoryIndex returns the vector index of the given label
func CategoryIndex(label string) (int, bool) {
	index, ok := categoryIndexes[label]
	return index, ok
}

// IsValidCategory checks if a category label is part of the mapping
func IsValidCategory(label string) bool {
	_, ok := categoryIndexes[label]
	return ok
}
