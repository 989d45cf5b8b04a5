// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"encoding/json"
	"time"

	"eatery/internal/core/domain/model/kernel"
	"eatery/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Items are stored denormalized as a JSONB document; they are immutable after
// creation, so nothing ever updates them row by row.
type OrderDTO struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey"`
	Number           string    `gorm:"type:varchar(16);uniqueIndex"`
	UserID           uuid.UUID `gorm:"type:uuid;index"`
	RestaurantID     uuid.UUID `gorm:"type:uuid;index"`
	Items            []byte    `gorm:"type:jsonb"`
	TotalAmount      int64
	Status           string `gorm:"type:varchar(16);index"`
	PaymentStatus    string `gorm:"type:varchar(16)"`
	PaymentMethod    string `gorm:"type:varchar(16)"`
	PickupTime       time.Time
	PickupType       string `gorm:"type:varchar(16)"`
	PrepTimeMinutes  int
	ActualPickupTime *time.Time
	Notes            string
	CreatedAt        time.Time `gorm:"index"`
	UpdatedAt        time.Time
	Version          int64
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// itemDTO is the JSON shape of one order line inside the items document.
// The field names are shared with the read-side response models.
type itemDTO struct {
	MenuItemID string      `json:"menuItemId"`
	Quantity   int         `json:"quantity"`
	UnitPrice  int64       `json:"unitPrice"`
	Options    []optionDTO `json:"options,omitempty"`
	Notes      string      `json:"notes,omitempty"`
}

type optionDTO struct {
	Name  string `json:"name"`
	Price int64  `json:"price"`
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) (OrderDTO, error) {
	items := aggregate.Items()
	itemDTOs := make([]itemDTO, 0, len(items))
	for _, item := range items {
		options := item.Options()
		optionDTOs := make([]optionDTO, 0, len(options))
		for _, opt := range options {
			optionDTOs = append(optionDTOs, optionDTO{Name: opt.Name(), Price: opt.Price()})
		}

		itemDTOs = append(itemDTOs, itemDTO{
			MenuItemID: item.MenuItemID().String(),
			Quantity:   item.Quantity(),
			UnitPrice:  item.UnitPrice(),
			Options:    optionDTOs,
			Notes:      item.Notes(),
		})
	}

	itemsRaw, err := json.Marshal(itemDTOs)
	if err != nil {
		return OrderDTO{}, err
	}

	return OrderDTO{
		ID:               aggregate.ID().Bytes(),
		Number:           aggregate.Number().String(),
		UserID:           aggregate.UserID().Bytes(),
		RestaurantID:     aggregate.RestaurantID().Bytes(),
		Items:            itemsRaw,
		TotalAmount:      aggregate.TotalAmount(),
		Status:           aggregate.Status().String(),
		PaymentStatus:    aggregate.PaymentStatus().String(),
		PaymentMethod:    aggregate.PaymentMethod().String(),
		PickupTime:       aggregate.PickupTime(),
		PickupType:       aggregate.PickupType().String(),
		PrepTimeMinutes:  aggregate.PrepTimeMinutes(),
		ActualPickupTime: aggregate.ActualPickupTime(),
		Notes:            aggregate.Notes(),
		CreatedAt:        aggregate.CreatedAt(),
		UpdatedAt:        aggregate.UpdatedAt(),
		Version:          aggregate.Version(),
	}, nil
}

// toDomain converts a database DTO to an order domain aggregate using
// RestoreOrder, bypassing the creation-only rules like future pickup time.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	userID, err := kernel.UUIDFromBytes(dto.UserID[:])
	if err != nil {
		return nil, err
	}

	restaurantID, err := kernel.UUIDFromBytes(dto.RestaurantID[:])
	if err != nil {
		return nil, err
	}

	number, err := order.OrderNumberFromString(dto.Number)
	if err != nil {
		return nil, err
	}

	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	paymentStatus, err := order.PaymentStatusFromString(dto.PaymentStatus)
	if err != nil {
		return nil, err
	}

	paymentMethod, err := order.PaymentMethodFromString(dto.PaymentMethod)
	if err != nil {
		return nil, err
	}

	pickupType, err := order.PickupTypeFromString(dto.PickupType)
	if err != nil {
		return nil, err
	}

	var itemDTOs []itemDTO
	if err = json.Unmarshal(dto.Items, &itemDTOs); err != nil {
		return nil, err
	}

	items := make([]order.Item, 0, len(itemDTOs))
	for _, raw := range itemDTOs {
		menuItemID, idErr := kernel.UUIDFromString(raw.MenuItemID)
		if idErr != nil {
			return nil, idErr
		}

		options := make([]order.ItemOption, 0, len(raw.Options))
		for _, opt := range raw.Options {
			option, optErr := order.NewItemOption(opt.Name, opt.Price)
			if optErr != nil {
				return nil, optErr
			}
			options = append(options, option)
		}

		item, itemErr := order.NewItem(menuItemID, raw.Quantity, raw.UnitPrice, options, raw.Notes)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return order.RestoreOrder(order.RestoreOrderParams{
		ID:               id,
		Number:           number,
		UserID:           userID,
		RestaurantID:     restaurantID,
		Items:            items,
		TotalAmount:      dto.TotalAmount,
		Status:           status,
		PaymentStatus:    paymentStatus,
		PaymentMethod:    paymentMethod,
		PickupTime:       dto.PickupTime,
		PickupType:       pickupType,
		PrepTimeMinutes:  dto.PrepTimeMinutes,
		ActualPickupTime: dto.ActualPickupTime,
		Notes:            dto.Notes,
		CreatedAt:        dto.CreatedAt,
		UpdatedAt:        dto.UpdatedAt,
		Version:          dto.Version,
	})
}
