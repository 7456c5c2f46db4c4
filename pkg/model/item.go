package model

import "strings"

// ItemStatus is the lifecycle status of a listed item.
type ItemStatus string

const (
	ItemAvailable ItemStatus = "available"
	ItemPending   ItemStatus = "pending"
	ItemReserved  ItemStatus = "reserved"
	ItemCompleted ItemStatus = "completed"
	ItemRemoved   ItemStatus = "removed"
	ItemCancelled ItemStatus = "cancelled"
)

// ItemStatuses lists the item statuses in filter menu order.
var ItemStatuses = []ItemStatus{
	ItemAvailable,
	ItemPending,
	ItemReserved,
	ItemCompleted,
	ItemRemoved,
	ItemCancelled,
}

var itemStatusLabels = map[ItemStatus]string{
	ItemAvailable: "可用",
	ItemPending:   "待处理",
	ItemReserved:  "已预订",
	ItemCompleted: "已完成",
	ItemRemoved:   "已下架",
	ItemCancelled: "已取消",
}

// Label returns the display text of the status; unknown values pass through.
func (s ItemStatus) Label() string {
	if l, ok := itemStatusLabels[s]; ok {
		return l
	}
	return string(s)
}

// ItemCondition describes the wear of an item.
type ItemCondition string

const (
	ConditionNew     ItemCondition = "new"
	ConditionLikeNew ItemCondition = "like_new"
	ConditionGood    ItemCondition = "good"
	ConditionFair    ItemCondition = "fair"
	ConditionPoor    ItemCondition = "poor"
)

var conditionLabels = map[ItemCondition]string{
	ConditionNew:     "全新",
	ConditionLikeNew: "几乎全新",
	ConditionGood:    "良好",
	ConditionFair:    "一般",
	ConditionPoor:    "较差",
}

// Label returns the display text of the condition; unknown values pass through.
func (c ItemCondition) Label() string {
	if l, ok := conditionLabels[c]; ok {
		return l
	}
	return string(c)
}

// ItemImage is one picture attached to an item.
type ItemImage struct {
	ImageID   int    `json:"image_id"`
	ItemID    int    `json:"item_id"`
	ImageURL  string `json:"image_url"`
	IsPrimary bool   `json:"is_primary"`
	CreatedAt string `json:"created_at,omitempty"`
}

// Item is a listed second-hand good.
type Item struct {
	ItemID        int           `json:"item_id"`
	UserID        int           `json:"user_id"`
	Title         string        `json:"title"`
	Description   string        `json:"description"`
	CategoryID    int           `json:"category_id"`
	CategoryName  string        `json:"category_name,omitempty"`
	Status        ItemStatus    `json:"status"`
	Condition     ItemCondition `json:"condition"`
	Price         float64       `json:"price,omitempty"`
	OwnerUsername string        `json:"owner_username,omitempty"`
	Images        []ItemImage   `json:"images,omitempty"`
	CreatedAt     string        `json:"created_at,omitempty"`
	UpdatedAt     string        `json:"updated_at,omitempty"`
}

// PrimaryImage returns the URL of the first image, or "" when the item has none.
func (i *Item) PrimaryImage() string {
	for _, img := range i.Images {
		if img.IsPrimary {
			return img.ImageURL
		}
	}
	if len(i.Images) > 0 {
		return i.Images[0].ImageURL
	}
	return ""
}

// ItemInput is the body of POST /items and PUT /items/{id}.
type ItemInput struct {
	Title       string        `json:"title"`
	Description string        `json:"description"`
	CategoryID  int           `json:"category_id"`
	Condition   ItemCondition `json:"condition"`
	Status      ItemStatus    `json:"status,omitempty"`
	Price       *float64      `json:"price,omitempty"`
	OwnerID     int           `json:"user_id,omitempty"`
	ImageURLs   []string      `json:"image_urls"`
}

// Validate checks required fields, a positive price when one is given, and at least one image.
func (in *ItemInput) Validate() error {
	in.Title = strings.TrimSpace(in.Title)
	in.Description = strings.TrimSpace(in.Description)

	switch {
	case in.Title == "":
		return newValidationError("title", MsgRequiredFields)
	case in.Description == "":
		return newValidationError("description", MsgRequiredFields)
	case in.CategoryID <= 0:
		return newValidationError("category_id", MsgRequiredFields)
	case in.Condition == "":
		return newValidationError("condition", MsgRequiredFields)
	}
	if _, ok := conditionLabels[in.Condition]; !ok {
		return newValidationError("condition", MsgUnknownStatus)
	}
	if in.Status != "" {
		if _, ok := itemStatusLabels[in.Status]; !ok {
			return newValidationError("status", MsgUnknownStatus)
		}
	}
	if in.Price != nil && *in.Price <= 0 {
		return newValidationError("price", MsgNonPositive)
	}
	if len(in.ImageURLs) == 0 {
		return newValidationError("image_urls", MsgNoImages)
	}
	return nil
}
