package gamification

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/google/uuid"
	"github.com/pocketquest/backend/internal/models"
)

// giftCardProvider is an entry of the fixed provider catalog. Providers only
// issue cards within their value range.
type giftCardProvider struct {
	Name     string
	MinValue int
	MaxValue int
}

var giftCardProviders = []giftCardProvider{
	{Name: "Amazon", MinValue: 50, MaxValue: 500},
	{Name: "Flipkart", MinValue: 50, MaxValue: 500},
	{Name: "Swiggy", MinValue: 25, MaxValue: 200},
	{Name: "Zomato", MinValue: 25, MaxValue: 200},
	{Name: "BookMyShow", MinValue: 50, MaxValue: 300},
	{Name: "Myntra", MinValue: 50, MaxValue: 500},
	{Name: "Nykaa", MinValue: 50, MaxValue: 300},
}

const (
	rewardBaseValue = 25
	rewardMaxValue  = 500
)

// Badges that come with a gift card in addition to the badge itself.
var rewardedBadges = map[string]bool{
	"Month Master":      true,
	"Dedicated Tracker": true,
	"Century Club":      true,
}

const codeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// generateGiftCard creates a simulated gift card. The value scales with the
// level and is capped, the provider is chosen at random from the catalog
// entries whose range covers the value.
func generateGiftCard(rng *rand.Rand, userID uuid.UUID, level int, reason string) models.Reward {
	value := rewardBaseValue * (level/5 + 1)
	if value > rewardMaxValue {
		value = rewardMaxValue
	}

	var candidates []giftCardProvider
	for _, p := range giftCardProviders {
		if value >= p.MinValue && value <= p.MaxValue {
			candidates = append(candidates, p)
		}
	}

	// The base value is below the smallest provider minimum, fall back to
	// the full catalog instead of panicking on an empty slice.
	if len(candidates) == 0 {
		candidates = giftCardProviders
	}

	provider := candidates[rng.Intn(len(candidates))]

	var code strings.Builder
	code.WriteString("GC-")
	for i := 0; i < 8; i++ {
		code.WriteByte(codeAlphabet[rng.Intn(len(codeAlphabet))])
	}

	return models.Reward{
		UserID:   userID,
		Name:     fmt.Sprintf("%s Gift Card", provider.Name),
		Provider: provider.Name,
		Value:    value,
		Code:     code.String(),
		Reason:   reason,
	}
}

// rewardForLevel returns a gift card for every 5th level, nil otherwise.
func rewardForLevel(rng *rand.Rand, userID uuid.UUID, level int) *models.Reward {
	if level <= 0 || level%5 != 0 {
		return nil
	}

	reward := generateGiftCard(rng, userID, level, fmt.Sprintf("Reached Level %d", level))
	return &reward
}

// rewardForBadge returns a gift card for special badges, nil for all others.
func rewardForBadge(rng *rand.Rand, userID uuid.UUID, badgeName string, level int) *models.Reward {
	if !rewardedBadges[badgeName] {
		return nil
	}

	reward := generateGiftCard(rng, userID, level, fmt.Sprintf("Earned %s badge", badgeName))
	return &reward
}
