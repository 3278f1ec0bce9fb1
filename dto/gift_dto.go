package dto

import "time"

type CreateGiftInput struct {
	Name        string `form:"name" binding:"required"`
	URL         string `form:"url"`
	ParentsOnly bool   `form:"-"`
}

// GiftView is a gift as one particular viewer is allowed to see it.
type GiftView struct {
	ID               uint
	Name             string
	DescriptionOrURL string
	PreviewImageURL  string
	DateEntered      time.Time
	ParentsOnly      bool
	EnteredBy        string
	Claimants        []string
}

func (v GiftView) Claimed() bool {
	return len(v.Claimants) > 0
}
