package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"gin-giftregistry/constants"
	"gin-giftregistry/dto"
	"gin-giftregistry/models"
	"gin-giftregistry/repositories"
)

// PreviewFetcher resolves a preview image for a linked page. Any error means
// no preview is available.
type PreviewFetcher interface {
	Fetch(ctx context.Context, rawURL string) (string, error)
}

type IGiftService interface {
	List(viewer *models.User) ([]dto.GiftView, error)
	Create(ctx context.Context, input dto.CreateGiftInput, user *models.User) (*models.Gift, error)
	Claim(giftID uint, user *models.User) (*models.Claim, error)
}

type GiftService struct {
	repository      repositories.IGiftRepository
	claimRepository repositories.IClaimRepository
	previews        PreviewFetcher
	now             func() time.Time
}

func NewGiftService(repository repositories.IGiftRepository, claimRepository repositories.IClaimRepository, previews PreviewFetcher) IGiftService {
	return &GiftService{
		repository:      repository,
		claimRepository: claimRepository,
		previews:        previews,
		now:             func() time.Time { return time.Now().UTC() },
	}
}

// List returns what viewer may see: parents get every gift, members only the
// unrestricted ones.
func (s *GiftService) List(viewer *models.User) ([]dto.GiftView, error) {
	gifts, err := s.repository.FindAll(viewer.IsParent())
	if err != nil {
		return nil, err
	}

	views := make([]dto.GiftView, 0, len(gifts))
	for i := range gifts {
		views = append(views, toGiftView(&gifts[i], viewer))
	}
	return views, nil
}

func toGiftView(gift *models.Gift, viewer *models.User) dto.GiftView {
	view := dto.GiftView{
		ID:          gift.ID,
		Name:        gift.Name,
		DateEntered: gift.DateEntered,
		ParentsOnly: gift.ParentsOnly,
		Claimants:   displayClaimants(gift, viewer),
	}
	if gift.DescriptionOrURL != nil {
		view.DescriptionOrURL = *gift.DescriptionOrURL
	}
	if gift.PreviewImageURL != nil {
		view.PreviewImageURL = *gift.PreviewImageURL
	}
	if gift.EnteredBy != nil {
		view.EnteredBy = gift.EnteredBy.Name
	}
	return view
}

// displayClaimants shows only the latest claim. Members never learn who
// made it.
func displayClaimants(gift *models.Gift, viewer *models.User) []string {
	latest := gift.LatestClaim()
	if latest == nil {
		return nil
	}
	if !viewer.IsParent() {
		return []string{constants.AnonymousClaimant}
	}
	if latest.ClaimedBy == nil {
		return []string{constants.AnonymousClaimant}
	}
	return []string{latest.ClaimedBy.Name}
}

func (s *GiftService) Create(ctx context.Context, input dto.CreateGiftInput, user *models.User) (*models.Gift, error) {
	newGift := models.Gift{
		Name:        strings.TrimSpace(input.Name),
		DateEntered: s.now(),
		ParentsOnly: input.ParentsOnly,
		EnteredByID: user.ID,
	}

	if link := strings.TrimSpace(input.URL); link != "" {
		newGift.DescriptionOrURL = &link
		// Preview failures are dropped on purpose; the gift is stored either way.
		if image, err := s.previews.Fetch(ctx, link); err == nil && image != "" {
			newGift.PreviewImageURL = &image
		}
	}

	if err := s.repository.Create(&newGift); err != nil {
		return nil, err
	}
	return &newGift, nil
}

// Claim appends a claim. Already claimed gifts may be claimed again; the
// newest claim is the one displayed.
func (s *GiftService) Claim(giftID uint, user *models.User) (*models.Claim, error) {
	gift, err := s.repository.FindById(giftID)
	if err != nil {
		if errors.Is(err, repositories.ErrGiftNotFound) {
			return nil, ErrGiftNotFound
		}
		return nil, err
	}

	if gift.ParentsOnly && !user.IsParent() {
		return nil, ErrClaimNotAllowed
	}

	claim := models.Claim{
		GiftID:      gift.ID,
		ClaimedByID: user.ID,
		DateClaimed: s.now(),
	}
	if err := s.claimRepository.Create(&claim); err != nil {
		return nil, err
	}
	return &claim, nil
}
