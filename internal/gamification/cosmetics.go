package gamification

// Slot is the avatar position a cosmetic is worn in.
type Slot string

const (
	SlotFace       Slot = "face"
	SlotOutfit     Slot = "outfit"
	SlotShoes      Slot = "shoes"
	SlotHeaddress  Slot = "headdress"
	SlotBackground Slot = "background"
)

// Cosmetic is a catalog entry. The catalog itself is static, only the
// per-user unlock state changes at runtime.
//
// A cosmetic unlocks when the user reaches RequiredLevel or earns the
// RequiredBadge. Default cosmetics are unlocked from the start.
type Cosmetic struct {
	ID            string `json:"id"`
	Slot          Slot   `json:"slot"`
	Name          string `json:"name"`
	Default       bool   `json:"-"`
	RequiredLevel int    `json:"requiredLevel,omitempty"`
	RequiredBadge string `json:"requiredBadge,omitempty"`
}

// Satisfied reports whether the unlock predicate of the cosmetic holds for
// the given level and badge set.
func (c Cosmetic) Satisfied(level int, badges map[string]bool) bool {
	if c.Default {
		return true
	}

	if c.RequiredLevel > 0 && level >= c.RequiredLevel {
		return true
	}

	return c.RequiredBadge != "" && badges[c.RequiredBadge]
}

// catalog is the full fixed cosmetic table.
var catalog = []Cosmetic{
	{ID: "face-classic-1", Slot: SlotFace, Name: "Classic", Default: true},
	{ID: "face-classic-2", Slot: SlotFace, Name: "Friendly", RequiredLevel: 3},
	{ID: "face-classic-3", Slot: SlotFace, Name: "Wise", RequiredLevel: 6},
	{ID: "face-classic-4", Slot: SlotFace, Name: "Young", RequiredLevel: 9},
	{ID: "face-classic-5", Slot: SlotFace, Name: "Mature", RequiredLevel: 12},
	{ID: "face-classic-6", Slot: SlotFace, Name: "Sporty", RequiredLevel: 15},
	{ID: "face-classic-7", Slot: SlotFace, Name: "Professional", RequiredLevel: 18},
	{ID: "face-classic-8", Slot: SlotFace, Name: "Adventurous", RequiredLevel: 21},

	{ID: "outfit-casual", Slot: SlotOutfit, Name: "Casual Wear", Default: true},
	{ID: "outfit-business", Slot: SlotOutfit, Name: "Business Suit", RequiredLevel: 4},
	{ID: "outfit-sporty", Slot: SlotOutfit, Name: "Athletic Wear", RequiredLevel: 6},
	{ID: "outfit-formal", Slot: SlotOutfit, Name: "Formal Attire", RequiredLevel: 8},
	{ID: "outfit-hoodie", Slot: SlotOutfit, Name: "Cozy Hoodie", RequiredLevel: 10},
	{ID: "outfit-jacket", Slot: SlotOutfit, Name: "Leather Jacket", RequiredLevel: 12},
	{ID: "outfit-summer", Slot: SlotOutfit, Name: "Summer Outfit", RequiredLevel: 18},
	{ID: "outfit-winter", Slot: SlotOutfit, Name: "Winter Coat", RequiredLevel: 20},
	{ID: "outfit-superhero", Slot: SlotOutfit, Name: "Hero Costume", RequiredLevel: 25},
	{ID: "outfit-ninja", Slot: SlotOutfit, Name: "Ninja Outfit", RequiredLevel: 28},
	{ID: "outfit-royal", Slot: SlotOutfit, Name: "Royal Robes", RequiredLevel: 30},

	{ID: "shoes-sneakers", Slot: SlotShoes, Name: "Sneakers", Default: true},
	{ID: "shoes-boots", Slot: SlotShoes, Name: "Boots", RequiredLevel: 4},
	{ID: "shoes-dress", Slot: SlotShoes, Name: "Dress Shoes", RequiredLevel: 7},
	{ID: "shoes-sandals", Slot: SlotShoes, Name: "Sandals", RequiredLevel: 9},
	{ID: "shoes-running", Slot: SlotShoes, Name: "Running Shoes", RequiredLevel: 13},
	{ID: "shoes-loafers", Slot: SlotShoes, Name: "Loafers", RequiredLevel: 15},
	{ID: "shoes-slippers", Slot: SlotShoes, Name: "Slippers", RequiredLevel: 17},
	{ID: "shoes-combat", Slot: SlotShoes, Name: "Combat Boots", RequiredLevel: 19},

	{ID: "headdress-none", Slot: SlotHeaddress, Name: "None", Default: true},
	{ID: "headdress-cap", Slot: SlotHeaddress, Name: "Baseball Cap", RequiredLevel: 3},
	{ID: "headdress-beanie", Slot: SlotHeaddress, Name: "Beanie", RequiredLevel: 5},
	{ID: "headdress-fedora", Slot: SlotHeaddress, Name: "Fedora", RequiredLevel: 7},
	{ID: "headdress-bandana", Slot: SlotHeaddress, Name: "Bandana", RequiredLevel: 11},
	{ID: "headdress-beret", Slot: SlotHeaddress, Name: "Beret", RequiredLevel: 15},
	{ID: "headdress-cowboy", Slot: SlotHeaddress, Name: "Cowboy Hat", RequiredLevel: 17},
	{ID: "headdress-crown", Slot: SlotHeaddress, Name: "Crown", RequiredBadge: "Month Master"},
	{ID: "headdress-tiara", Slot: SlotHeaddress, Name: "Tiara", RequiredBadge: "Century Club"},
	{ID: "headdress-halo", Slot: SlotHeaddress, Name: "Halo", RequiredLevel: 30},
	{ID: "headdress-wizard", Slot: SlotHeaddress, Name: "Wizard Hat", RequiredLevel: 35},

	{ID: "bg-simple", Slot: SlotBackground, Name: "Simple", Default: true},
	{ID: "bg-gradient-blue", Slot: SlotBackground, Name: "Blue Gradient", RequiredLevel: 4},
	{ID: "bg-gradient-warm", Slot: SlotBackground, Name: "Warm Gradient", RequiredLevel: 6},
	{ID: "bg-stars", Slot: SlotBackground, Name: "Starry Night", RequiredLevel: 10},
	{ID: "bg-office", Slot: SlotBackground, Name: "Office", RequiredLevel: 12},
	{ID: "bg-nature", Slot: SlotBackground, Name: "Nature", RequiredLevel: 14},
	{ID: "bg-city", Slot: SlotBackground, Name: "City Skyline", RequiredLevel: 16},
	{ID: "bg-beach", Slot: SlotBackground, Name: "Beach", RequiredLevel: 18},
	{ID: "bg-mountain", Slot: SlotBackground, Name: "Mountains", RequiredLevel: 20},
	{ID: "bg-space", Slot: SlotBackground, Name: "Space", RequiredLevel: 22},
	{ID: "bg-luxury", Slot: SlotBackground, Name: "Luxury", RequiredLevel: 25},
}

// Catalog returns the full cosmetic catalog.
func Catalog() []Cosmetic {
	return catalog
}

// CosmeticByID looks up a catalog entry.
func CosmeticByID(id string) (Cosmetic, bool) {
	for _, c := range catalog {
		if c.ID == id {
			return c, true
		}
	}

	return Cosmetic{}, false
}

// DefaultCosmeticIDs returns the ids of all cosmetics that are unlocked from
// the start.
func DefaultCosmeticIDs() []string {
	var ids []string
	for _, c := range catalog {
		if c.Default {
			ids = append(ids, c.ID)
		}
	}

	return ids
}
