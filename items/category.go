package items

import (
	"regexp"
	"strings"

	"guidec/common"
)

type family struct {
	category common.ItemCategory
	keywords *regexp.Regexp
}

// Order matters, first matching family wins.
var families = []family{
	{common.ItemCategoryMagick, regexp.MustCompile(`(?i)\b(magicks?|spells?)\b`)},
	{common.ItemCategoryTechnick, regexp.MustCompile(`(?i)\b(technicks?|techs?)\b`)},
	{common.ItemCategoryWeapon, regexp.MustCompile(`(?i)\b(weapons?|swords?|greatswords?|katanas?|daggers?|spears?|poles?|axes|hammers?|maces?|rods?|staffs?|staves|bows?|crossbows?|guns?|measures?|hand-bombs?)\b`)},
	{common.ItemCategoryArmor, regexp.MustCompile(`(?i)\b(armou?rs?|shields?|helms?|helmets?|hats?|mail|vests?|robes?|shirts?|clothes|cuirass(es)?|jerkins?|hauberks?)\b`)},
	{common.ItemCategoryAccessory, regexp.MustCompile(`(?i)\b(accessor(y|ies)|rings?|bangles?|gloves?|gauntlets?|shoes|boots|necklaces?|armlets?|belts?|amulets?|earrings?)\b`)},
	{common.ItemCategoryAmmunition, regexp.MustCompile(`(?i)\b(ammo|ammunition|arrows?|bolts?|shots?|bombs?)\b`)},
	{common.ItemCategoryKey, regexp.MustCompile(`(?i)\b(key[ -]items?|licen[cs]es?|monographs?)\b`)},
	{common.ItemCategoryItem, regexp.MustCompile(`(?i)\b(potions?|ethers?|elixirs?|megalixirs?|phoenix downs?|antidotes?|remed(y|ies)|eye drops|echo herbs|gold needles?|handkerchiefs?|chronos tears?|vaccines?|smelling salts|alarm clocks?|consumables?)\b`)},
}

// Generic words allowing mention without category signal to be kept as "other".
var contextKeywords = regexp.MustCompile(`(?i)\b(loot|shops?|items?)\b`)

// Classify returns the category of the first keyword family found in s.
func Classify(s string) common.ItemCategory {
	for _, f := range families {
		if f.keywords.MatchString(s) {
			return f.category
		}
	}
	return common.ItemCategoryOther
}

// ShopCategory derives category hint from the shop name.
func ShopCategory(name string) common.ItemCategory {
	n := strings.ToLower(name)
	switch {
	case strings.Contains(n, "weapon"):
		return common.ItemCategoryWeapon
	case strings.Contains(n, "armor"), strings.Contains(n, "armour"):
		return common.ItemCategoryArmor
	case strings.Contains(n, "magick"), strings.Contains(n, "magic"):
		return common.ItemCategoryMagick
	case strings.Contains(n, "tech"):
		return common.ItemCategoryTechnick
	case strings.Contains(n, "accessor"):
		return common.ItemCategoryAccessory
	case strings.Contains(n, "ammo"):
		return common.ItemCategoryAmmunition
	case strings.Contains(n, "item"), strings.Contains(n, "bazaar"):
		return common.ItemCategoryItem
	case strings.Contains(n, "license"), strings.Contains(n, "licence"):
		return common.ItemCategoryKey
	}
	return common.ItemCategoryOther
}
