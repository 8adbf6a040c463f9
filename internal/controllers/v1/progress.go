package v1

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/pocketquest/backend/internal/gamification"
	"github.com/pocketquest/backend/internal/httperror"
	"github.com/pocketquest/backend/internal/httputil"
	"github.com/pocketquest/backend/internal/models"
)

// BadgeResponse is the API representation of an earned badge.
type BadgeResponse struct {
	ID          string    `json:"id" example:"c1d2e3f4-1111-2222-3333-444455556666"`
	Name        string    `json:"name" example:"Week Warrior"`
	Description string    `json:"description" example:"7-day logging streak"`
	Icon        string    `json:"icon" example:"flame"`
	EarnedAt    time.Time `json:"earnedAt" example:"2026-03-20T14:42:12.32Z"`
}

func newBadgeResponse(badge models.Badge) BadgeResponse {
	return BadgeResponse{
		ID:          badge.ID.String(),
		Name:        badge.Name,
		Description: badge.Description,
		Icon:        badge.Icon,
		EarnedAt:    badge.CreatedAt,
	}
}

// RewardResponse is the API representation of a simulated gift card.
type RewardResponse struct {
	ID       string    `json:"id" example:"d4e5f6a7-1111-2222-3333-444455556666"`
	Name     string    `json:"name" example:"$25 Amazon Gift Card"`
	Provider string    `json:"provider" example:"Amazon"`
	Value    int       `json:"value" example:"25"`
	Code     string    `json:"code" example:"GC-7KQ2M9XP"`
	Reason   string    `json:"reason" example:"Reached level 5"`
	Claimed  bool      `json:"claimed" example:"false"`
	IssuedAt time.Time `json:"issuedAt" example:"2026-03-20T14:42:12.32Z"`
}

func newRewardResponse(reward models.Reward) RewardResponse {
	return RewardResponse{
		ID:       reward.ID.String(),
		Name:     reward.Name,
		Provider: reward.Provider,
		Value:    reward.Value,
		Code:     reward.Code,
		Reason:   reward.Reason,
		Claimed:  reward.Claimed,
		IssuedAt: reward.CreatedAt,
	}
}

// AvatarResponse is the currently selected cosmetic per slot.
type AvatarResponse struct {
	Face       string `json:"face" example:"face-classic-1"`
	Outfit     string `json:"outfit" example:"outfit-casual"`
	Shoes      string `json:"shoes" example:"shoes-sneakers"`
	Headdress  string `json:"headdress" example:"headdress-none"`
	Background string `json:"background" example:"bg-simple"`
}

// ProgressResponse is the full gamification state of the current user.
type ProgressResponse struct {
	Points      int              `json:"points" example:"215"`
	Level       int              `json:"level" example:"3"`
	Streak      int              `json:"streak" example:"4"`
	LastLogDate *time.Time       `json:"lastLogDate"`
	Avatar      AvatarResponse   `json:"avatar"`
	Badges      []BadgeResponse  `json:"badges"`
	Rewards     []RewardResponse `json:"rewards"`
}

// AvatarEditable selects cosmetics per slot. Unset slots keep their current
// selection.
type AvatarEditable struct {
	Face       string `json:"face" example:"face-classic-2"`
	Outfit     string `json:"outfit" example:"outfit-formal"`
	Shoes      string `json:"shoes" example:"shoes-boots"`
	Headdress  string `json:"headdress" example:"headdress-cap"`
	Background string `json:"background" example:"bg-city"`
}

// CosmeticResponse is a catalog entry together with the per-user unlock
// state.
type CosmeticResponse struct {
	gamification.Cosmetic
	Unlocked   bool       `json:"unlocked" example:"true"`
	UnlockedAt *time.Time `json:"unlockedAt,omitempty"`
}

// CosmeticListResponse wraps the cosmetic catalog.
type CosmeticListResponse struct {
	Data []CosmeticResponse `json:"data"`
}

// RewardListResponse wraps a list of rewards.
type RewardListResponse struct {
	Data []RewardResponse `json:"data"`
}

// GetProgress returns points, level, streak, avatar, badges and rewards of
// the current user.
//
//	@Summary		Get progress
//	@Description	Returns the gamification state of the logged in user
//	@Tags			Progress
//	@Produce		json
//	@Success		200	{object}	ProgressResponse
//	@Failure		401	{object}	httperror.Error
//	@Failure		500	{object}	httperror.Error
//	@Router			/v1/progress [get]
func GetProgress(c *gin.Context) {
	userID := currentUserID(c)

	progress, err := models.ProgressForUser(models.DB, userID)
	if err != nil {
		c.JSON(status(err), httperror.New(err))
		return
	}

	var badges []models.Badge
	err = models.DB.Where("user_id = ?", userID).Order("created_at ASC").Find(&badges).Error
	if err != nil {
		c.JSON(status(err), httperror.New(err))
		return
	}

	var rewards []models.Reward
	err = models.DB.Where("user_id = ?", userID).Order("created_at DESC").Find(&rewards).Error
	if err != nil {
		c.JSON(status(err), httperror.New(err))
		return
	}

	badgeData := make([]BadgeResponse, 0, len(badges))
	for _, badge := range badges {
		badgeData = append(badgeData, newBadgeResponse(badge))
	}

	rewardData := make([]RewardResponse, 0, len(rewards))
	for _, reward := range rewards {
		rewardData = append(rewardData, newRewardResponse(reward))
	}

	c.JSON(http.StatusOK, ProgressResponse{
		Points:      progress.Points,
		Level:       progress.Level,
		Streak:      progress.Streak,
		LastLogDate: progress.LastLogDate,
		Avatar: AvatarResponse{
			Face:       progress.SelectedFace,
			Outfit:     progress.SelectedOutfit,
			Shoes:      progress.SelectedShoes,
			Headdress:  progress.SelectedHeaddress,
			Background: progress.SelectedBackground,
		},
		Badges:  badgeData,
		Rewards: rewardData,
	})
}

// UpdateAvatar changes the selected cosmetics. Every selection has to be
// unlocked and worn in its own slot.
//
//	@Summary		Update avatar
//	@Description	Selects unlocked cosmetics for the avatar. Only slots to be changed need to be specified
//	@Tags			Progress
//	@Accept			json
//	@Produce		json
//	@Success		200	{object}	AvatarResponse
//	@Failure		400	{object}	httperror.Error
//	@Failure		401	{object}	httperror.Error
//	@Failure		500	{object}	httperror.Error
//	@Param			body	body	AvatarEditable	true	"Avatar"
//	@Router			/v1/progress/avatar [patch]
func UpdateAvatar(c *gin.Context) {
	var editable AvatarEditable
	if err := httputil.BindData(c, &editable); err != nil {
		c.JSON(status(err), httperror.New(err))
		return
	}

	userID := currentUserID(c)

	progress, err := models.ProgressForUser(models.DB, userID)
	if err != nil {
		c.JSON(status(err), httperror.New(err))
		return
	}

	unlocked, err := models.UnlockedCosmeticIDs(models.DB, userID)
	if err != nil {
		c.JSON(status(err), httperror.New(err))
		return
	}

	selections := []struct {
		id     string
		slot   gamification.Slot
		target *string
	}{
		{editable.Face, gamification.SlotFace, &progress.SelectedFace},
		{editable.Outfit, gamification.SlotOutfit, &progress.SelectedOutfit},
		{editable.Shoes, gamification.SlotShoes, &progress.SelectedShoes},
		{editable.Headdress, gamification.SlotHeaddress, &progress.SelectedHeaddress},
		{editable.Background, gamification.SlotBackground, &progress.SelectedBackground},
	}

	for _, selection := range selections {
		if selection.id == "" {
			continue
		}

		cosmetic, ok := gamification.CosmeticByID(selection.id)
		if !ok || cosmetic.Slot != selection.slot {
			c.JSON(status(errCosmeticUnknown), httperror.New(errCosmeticUnknown))
			return
		}

		if _, ok := unlocked[selection.id]; !ok {
			c.JSON(status(errCosmeticNotUnlocked), httperror.New(errCosmeticNotUnlocked))
			return
		}

		*selection.target = selection.id
	}

	err = models.DB.Save(&progress).Error
	if err != nil {
		c.JSON(status(err), httperror.New(err))
		return
	}

	c.JSON(http.StatusOK, AvatarResponse{
		Face:       progress.SelectedFace,
		Outfit:     progress.SelectedOutfit,
		Shoes:      progress.SelectedShoes,
		Headdress:  progress.SelectedHeaddress,
		Background: progress.SelectedBackground,
	})
}

// GetCosmetics returns the full catalog with the unlock state of the current
// user.
//
//	@Summary		List cosmetics
//	@Description	Returns the cosmetic catalog with per-user unlock state
//	@Tags			Progress
//	@Produce		json
//	@Success		200	{object}	CosmeticListResponse
//	@Failure		401	{object}	httperror.Error
//	@Failure		500	{object}	httperror.Error
//	@Router			/v1/progress/cosmetics [get]
func GetCosmetics(c *gin.Context) {
	unlocked, err := models.UnlockedCosmeticIDs(models.DB, currentUserID(c))
	if err != nil {
		c.JSON(status(err), httperror.New(err))
		return
	}

	data := make([]CosmeticResponse, 0, len(gamification.Catalog()))
	for _, cosmetic := range gamification.Catalog() {
		response := CosmeticResponse{Cosmetic: cosmetic}

		if at, ok := unlocked[cosmetic.ID]; ok {
			response.Unlocked = true
			response.UnlockedAt = &at
		}

		data = append(data, response)
	}

	c.JSON(http.StatusOK, CosmeticListResponse{Data: data})
}

// GetRewards lists the rewards of the current user, newest first.
//
//	@Summary		List rewards
//	@Description	Returns the rewards of the logged in user
//	@Tags			Rewards
//	@Produce		json
//	@Success		200	{object}	RewardListResponse
//	@Failure		401	{object}	httperror.Error
//	@Failure		500	{object}	httperror.Error
//	@Router			/v1/rewards [get]
func GetRewards(c *gin.Context) {
	var rewards []models.Reward
	err := models.DB.Where("user_id = ?", currentUserID(c)).Order("created_at DESC").Find(&rewards).Error
	if err != nil {
		c.JSON(status(err), httperror.New(err))
		return
	}

	data := make([]RewardResponse, 0, len(rewards))
	for _, reward := range rewards {
		data = append(data, newRewardResponse(reward))
	}

	c.JSON(http.StatusOK, RewardListResponse{Data: data})
}

// ClaimReward marks a reward as claimed. Claiming is one-way and reveals
// nothing beyond the already visible code, it only tracks that the user
// acknowledged the reward.
//
//	@Summary		Claim reward
//	@Description	Marks a reward as claimed
//	@Tags			Rewards
//	@Produce		json
//	@Success		200	{object}	RewardResponse
//	@Failure		400	{object}	httperror.Error
//	@Failure		401	{object}	httperror.Error
//	@Failure		404	{object}	httperror.Error
//	@Failure		500	{object}	httperror.Error
//	@Param			id	path	string	true	"ID formatted as string"
//	@Router			/v1/rewards/{id}/claim [post]
func ClaimReward(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		c.JSON(status(err), httperror.New(err))
		return
	}

	var reward models.Reward
	err = models.DB.Where("user_id = ?", currentUserID(c)).First(&reward, id.UUID).Error
	if err != nil {
		c.JSON(status(err), httperror.New(err))
		return
	}

	if reward.Claimed {
		c.JSON(status(errRewardAlreadyClaimed), httperror.New(errRewardAlreadyClaimed))
		return
	}

	reward.Claimed = true
	err = models.DB.Save(&reward).Error
	if err != nil {
		c.JSON(status(err), httperror.New(err))
		return
	}

	c.JSON(http.StatusOK, newRewardResponse(reward))
}
