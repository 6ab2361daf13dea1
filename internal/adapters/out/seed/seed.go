// Package seed provides the in-memory reference-data adapters the
// marketplace launches with: the restaurant catalog and the actor directory,
// loaded with the SwiftDrop launch fixtures. Both are read-only after
// construction and therefore safe for concurrent use.
package seed

import (
	"context"
	"strings"

	"swiftdrop/internal/core/domain/model/actor"
	"swiftdrop/internal/core/domain/model/catalog"
	"swiftdrop/internal/core/domain/model/kernel"
	"swiftdrop/internal/core/ports"
	"swiftdrop/internal/pkg/errs"
)

// Fixture identifiers, stable across restarts so the apps can hold on to them.
var (
	OwnerID         = mustUUID("0a35dbb0-1111-4a61-9e2b-0d6a6a1f0001")
	KotaAdminID     = mustUUID("0a35dbb0-1111-4a61-9e2b-0d6a6a1f0002")
	DriverSiphoID   = mustUUID("0a35dbb0-1111-4a61-9e2b-0d6a6a1f0003")
	CustomerThaboID = mustUUID("0a35dbb0-1111-4a61-9e2b-0d6a6a1f0004")

	RestaurantKotaKingID  = mustUUID("1b46ecc1-2222-4b72-8f3c-1e7b7b2f0001")
	RestaurantDebonairsID = mustUUID("1b46ecc1-2222-4b72-8f3c-1e7b7b2f0002")
	DebonairsOwnerID      = mustUUID("1b46ecc1-2222-4b72-8f3c-1e7b7b2f0003")

	MenuItemFullHouseKotaID = mustUUID("2c57fdd2-3333-4c83-9a4d-2f8c8c3f0001")
	MenuItemSlapChipsID     = mustUUID("2c57fdd2-3333-4c83-9a4d-2f8c8c3f0002")

	VariationStandardID     = mustUUID("3d68aee3-4444-4d94-ab5e-3a9d9d4f0001")
	VariationDoubleCheeseID = mustUUID("3d68aee3-4444-4d94-ab5e-3a9d9d4f0002")
	VariationChipsSmallID   = mustUUID("3d68aee3-4444-4d94-ab5e-3a9d9d4f0003")
	VariationChipsMediumID  = mustUUID("3d68aee3-4444-4d94-ab5e-3a9d9d4f0004")
	VariationChipsLargeID   = mustUUID("3d68aee3-4444-4d94-ab5e-3a9d9d4f0005")
	VariationChipsXLID      = mustUUID("3d68aee3-4444-4d94-ab5e-3a9d9d4f0006")

	ModifierExtraPolonyID = mustUUID("4e79bff4-5555-4ea5-bc6f-4baeae5f0001")
	ModifierAtchaarID     = mustUUID("4e79bff4-5555-4ea5-bc6f-4baeae5f0002")
)

// Catalog is the seeded ports.ReferenceCatalog.
type Catalog struct {
	restaurants map[kernel.UUID]*catalog.Restaurant
	items       map[kernel.UUID]*catalog.MenuItem
}

// NewCatalog builds the launch catalog.
func NewCatalog() (*Catalog, error) {
	kotaKing, err := catalog.NewRestaurant(
		RestaurantKotaKingID,
		"The Kota King",
		"Vilikazi Street, Orlando West",
		"Soweto",
		KotaAdminID,
	)
	if err != nil {
		return nil, err
	}

	debonairs, err := catalog.NewRestaurant(
		RestaurantDebonairsID,
		"Debonairs Pizza - Jabulani",
		"Jabulani Mall, Soweto",
		"Soweto",
		DebonairsOwnerID,
	)
	if err != nil {
		return nil, err
	}

	fullHouse, err := catalog.NewMenuItem(
		MenuItemFullHouseKotaID,
		RestaurantKotaKingID,
		"The Full House Kota",
		"Quarter loaf, chips, polony, cheese, egg, and special sauce",
		kernel.MoneyFromFloat(45.00),
		true,
		[]catalog.Variation{
			{ID: VariationStandardID, Name: "Standard", Price: kernel.ZeroMoney()},
			{ID: VariationDoubleCheeseID, Name: "Double Cheese", Price: kernel.MoneyFromFloat(10.00)},
		},
		false,
		[]catalog.Modifier{
			{ID: ModifierExtraPolonyID, Name: "Extra Polony", Price: kernel.MoneyFromFloat(7.00)},
			{ID: ModifierAtchaarID, Name: "Atchaar", Price: kernel.MoneyFromFloat(5.00)},
		},
	)
	if err != nil {
		return nil, err
	}

	slapChips, err := catalog.NewMenuItem(
		MenuItemSlapChipsID,
		RestaurantKotaKingID,
		"Slap Chips",
		"Freshly cut township style slap chips",
		kernel.MoneyFromFloat(20.00),
		true,
		[]catalog.Variation{
			{ID: VariationChipsSmallID, Name: "Small", Price: kernel.ZeroMoney()},
			{ID: VariationChipsMediumID, Name: "Medium", Price: kernel.MoneyFromFloat(15.00)},
			{ID: VariationChipsLargeID, Name: "Large", Price: kernel.MoneyFromFloat(25.00)},
			{ID: VariationChipsXLID, Name: "Extra Large", Price: kernel.MoneyFromFloat(40.00)},
		},
		false,
		nil,
	)
	if err != nil {
		return nil, err
	}

	return &Catalog{
		restaurants: map[kernel.UUID]*catalog.Restaurant{
			kotaKing.ID():  kotaKing,
			debonairs.ID(): debonairs,
		},
		items: map[kernel.UUID]*catalog.MenuItem{
			fullHouse.ID(): fullHouse,
			slapChips.ID(): slapChips,
		},
	}, nil
}

// GetRestaurant implements ports.ReferenceCatalog.
func (c *Catalog) GetRestaurant(_ context.Context, id kernel.UUID) (*catalog.Restaurant, error) {
	restaurant, ok := c.restaurants[id]
	if !ok {
		return nil, errs.NewObjectNotFoundError("restaurantID", id)
	}
	return restaurant, nil
}

// GetMenuItem implements ports.ReferenceCatalog.
func (c *Catalog) GetMenuItem(_ context.Context, id kernel.UUID) (*catalog.MenuItem, error) {
	item, ok := c.items[id]
	if !ok {
		return nil, errs.NewObjectNotFoundError("menuItemID", id)
	}
	return item, nil
}

var _ ports.ReferenceCatalog = (*Catalog)(nil)

// Directory is the seeded ports.ActorDirectory.
type Directory struct {
	actors map[string]*actor.Actor
}

// PlatformOwner returns the platform operator. Background maintenance acts
// under this identity.
func PlatformOwner() (*actor.Actor, error) {
	return actor.NewActor(OwnerID, "Zanele Khumalo", "owner@swiftdrop.co.za", actor.RoleOwner)
}

// NewDirectory builds the launch actor directory.
func NewDirectory() (*Directory, error) {
	owner, err := PlatformOwner()
	if err != nil {
		return nil, err
	}
	admin, err := actor.NewRestaurantAdmin(KotaAdminID, "Kota King Admin", "kota@business.co.za", RestaurantKotaKingID)
	if err != nil {
		return nil, err
	}
	driver, err := actor.NewActor(DriverSiphoID, "Speedy Sipho", "sipho@driver.co.za", actor.RoleDriver)
	if err != nil {
		return nil, err
	}
	customer, err := actor.NewActor(CustomerThaboID, "Thabo Mokoena", "thabo@gmail.com", actor.RoleCustomer)
	if err != nil {
		return nil, err
	}

	directory := &Directory{actors: make(map[string]*actor.Actor)}
	for _, a := range []*actor.Actor{owner, admin, driver, customer} {
		directory.actors[strings.ToLower(a.Email())] = a
	}
	return directory, nil
}

// FindByEmail implements ports.ActorDirectory. Lookup is case-insensitive.
func (d *Directory) FindByEmail(_ context.Context, email string) (*actor.Actor, error) {
	found, ok := d.actors[strings.ToLower(email)]
	if !ok {
		return nil, errs.NewObjectNotFoundError("email", email)
	}
	return found, nil
}

var _ ports.ActorDirectory = (*Directory)(nil)

func mustUUID(s string) kernel.UUID {
	id, err := kernel.UUIDFromString(s)
	if err != nil {
		panic(err)
	}
	return id
}
