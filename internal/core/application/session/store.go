package session

import (
	"context"
	"sync"

	"swiftdrop/internal/core/application/usecases/commands"
	"swiftdrop/internal/core/application/usecases/queries"
	"swiftdrop/internal/core/domain/model/actor"
	"swiftdrop/internal/core/domain/model/cart"
	"swiftdrop/internal/core/domain/model/kernel"
	"swiftdrop/internal/core/domain/model/order"
	"swiftdrop/internal/core/domain/services"
	"swiftdrop/internal/core/ports"
	"swiftdrop/internal/pkg/errs"
)

// anonymousRole names the absent actor in authorization errors.
const anonymousRole = "ANONYMOUS"

// Selection is a customer's menu choice as the apps submit it: an item, an
// optional variation, any number of modifiers and a quantity.
type Selection struct {
	MenuItemID  kernel.UUID
	VariationID *kernel.UUID
	ModifierIDs []kernel.UUID
	Quantity    int
}

// CartView is an immutable snapshot of the session cart.
type CartView struct {
	Lines        []cart.Line
	RestaurantID *kernel.UUID
	FoodSubtotal kernel.Money
}

// Store is the session component: it authenticates actors, carries the cart
// between operations, and hands fully priced commands to the use-case layer.
//
// All exported methods are safe for concurrent use.
type Store struct {
	mu      sync.Mutex
	current *actor.Actor
	cart    *cart.Cart

	directory ports.ActorDirectory
	catalog   ports.ReferenceCatalog
	pricing   services.PricingService

	checkout   commands.CheckoutCommandHandler
	parcel     commands.SendParcelCommandHandler
	transition commands.TransitionOrderCommandHandler
	list       queries.ListOrdersQueryHandler
}

// NewStore creates a session store wired to the given ports and handlers.
func NewStore(
	directory ports.ActorDirectory,
	catalog ports.ReferenceCatalog,
	pricing services.PricingService,
	checkout commands.CheckoutCommandHandler,
	parcel commands.SendParcelCommandHandler,
	transition commands.TransitionOrderCommandHandler,
	list queries.ListOrdersQueryHandler,
) (*Store, error) {
	if directory == nil {
		return nil, errs.NewValueIsRequiredError("directory")
	}
	if catalog == nil {
		return nil, errs.NewValueIsRequiredError("catalog")
	}

	return &Store{
		cart:       cart.NewCart(),
		directory:  directory,
		catalog:    catalog,
		pricing:    pricing,
		checkout:   checkout,
		parcel:     parcel,
		transition: transition,
		list:       list,
	}, nil
}

// Authenticate signs the actor registered under email into the session.
// Any previous session state, including the cart, is discarded.
func (s *Store) Authenticate(ctx context.Context, email string) (*actor.Actor, error) {
	acting, err := s.directory.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.current = acting
	s.cart = cart.NewCart()
	return acting, nil
}

// Logout ends the session, discarding the actor and the cart.
func (s *Store) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.current = nil
	s.cart = cart.NewCart()
}

// CurrentActor returns the signed-in actor.
func (s *Store) CurrentActor() (*actor.Actor, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.requireActor()
}

// AddToCart prices the selection against the catalog and appends the
// resulting line to the session cart. Only customers carry carts; a line
// from a different restaurant than the cart's current one is rejected by
// the cart itself.
func (s *Store) AddToCart(ctx context.Context, selection Selection) (cart.Line, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.requireRole(actor.RoleCustomer, "add to cart"); err != nil {
		return cart.Line{}, err
	}

	item, err := s.catalog.GetMenuItem(ctx, selection.MenuItemID)
	if err != nil {
		return cart.Line{}, err
	}

	line, err := s.pricing.PriceSelection(item, selection.VariationID, selection.ModifierIDs, selection.Quantity)
	if err != nil {
		return cart.Line{}, err
	}

	if err = s.cart.AddLine(line, item.RestaurantID()); err != nil {
		return cart.Line{}, err
	}
	return line, nil
}

// RemoveFromCart deletes the line at index from the session cart.
func (s *Store) RemoveFromCart(index int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.requireRole(actor.RoleCustomer, "remove from cart"); err != nil {
		return err
	}

	return s.cart.RemoveLine(index)
}

// ClearCart empties the session cart without checking out.
func (s *Store) ClearCart() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.requireRole(actor.RoleCustomer, "clear cart"); err != nil {
		return err
	}

	s.cart.Clear()
	return nil
}

// CartSnapshot returns a copy of the cart the caller can render freely.
func (s *Store) CartSnapshot() CartView {
	s.mu.Lock()
	defer s.mu.Unlock()

	lines := s.cart.Lines()
	subtotal := kernel.ZeroMoney()
	for _, line := range lines {
		subtotal = subtotal.Add(line.Total())
	}

	return CartView{
		Lines:        lines,
		RestaurantID: s.cart.RestaurantID(),
		FoodSubtotal: subtotal,
	}
}

// Checkout turns the session cart into a PENDING order delivered to
// dropoffAddress and clears the cart. The two steps happen under the session
// lock, so no observer sees the order exist while the cart still holds its
// lines. An empty cart fails with errs.ErrEmptyCart and leaves everything
// unchanged.
func (s *Store) Checkout(ctx context.Context, dropoffAddress string, paymentMethod order.PaymentMethod) (kernel.UUID, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	acting, err := s.requireRole(actor.RoleCustomer, "checkout")
	if err != nil {
		return kernel.UUID{}, err
	}

	if s.cart.IsEmpty() {
		return kernel.UUID{}, errs.ErrEmptyCart
	}

	restaurant, err := s.catalog.GetRestaurant(ctx, *s.cart.RestaurantID())
	if err != nil {
		return kernel.UUID{}, err
	}

	lines := s.cart.Lines()
	totals, err := s.pricing.PriceOrder(lines, restaurant.Zone())
	if err != nil {
		return kernel.UUID{}, err
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCheckoutCommand(
		orderID,
		acting.ID(),
		restaurant.ID(),
		lines,
		restaurant.Address(),
		dropoffAddress,
		paymentMethod,
		totals,
	)
	if err != nil {
		return kernel.UUID{}, err
	}

	if err = s.checkout.Handle(ctx, cmd); err != nil {
		return kernel.UUID{}, err
	}

	s.cart.Clear()
	return orderID, nil
}

// SendParcel creates a pure parcel-logistics order from pickupAddress to
// dropoffAddress. The session cart is not involved.
func (s *Store) SendParcel(ctx context.Context, pickupAddress, dropoffAddress, zone string, paymentMethod order.PaymentMethod) (kernel.UUID, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	acting, err := s.requireRole(actor.RoleCustomer, "send parcel")
	if err != nil {
		return kernel.UUID{}, err
	}

	totals, err := s.pricing.PriceParcel(zone)
	if err != nil {
		return kernel.UUID{}, err
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewSendParcelCommand(
		orderID,
		acting.ID(),
		pickupAddress,
		dropoffAddress,
		paymentMethod,
		totals,
	)
	if err != nil {
		return kernel.UUID{}, err
	}

	if err = s.parcel.Handle(ctx, cmd); err != nil {
		return kernel.UUID{}, err
	}
	return orderID, nil
}

// TransitionOrder requests a lifecycle transition on behalf of the signed-in
// actor. Legality and authorization are the order aggregate's decision.
func (s *Store) TransitionOrder(ctx context.Context, orderID kernel.UUID, target order.Status) error {
	s.mu.Lock()
	acting, err := s.requireActor()
	s.mu.Unlock()
	if err != nil {
		return err
	}

	cmd, err := commands.NewTransitionOrderCommand(orderID, target, acting)
	if err != nil {
		return err
	}

	return s.transition.Handle(ctx, cmd)
}

// ListOrders returns the orders the signed-in actor is allowed to see:
// customers their own, restaurant admins their restaurant's, drivers their
// assignments, the platform owner everything.
func (s *Store) ListOrders(ctx context.Context) ([]queries.ListOrdersQueryResponse, error) {
	s.mu.Lock()
	acting, err := s.requireActor()
	s.mu.Unlock()
	if err != nil {
		return nil, err
	}

	var customerID, restaurantID, driverID *kernel.UUID
	switch acting.Role() {
	case actor.RoleCustomer:
		id := acting.ID()
		customerID = &id
	case actor.RoleRestaurantAdmin:
		restaurantID = acting.RestaurantID()
	case actor.RoleDriver:
		id := acting.ID()
		driverID = &id
	case actor.RoleOwner:
		// Sees everything.
	default:
		return nil, errs.NewUnauthorizedError(acting.Role().String(), "list orders")
	}

	query, err := queries.NewListOrdersQuery(customerID, restaurantID, driverID, nil)
	if err != nil {
		return nil, err
	}

	return s.list.Handle(ctx, query)
}

// requireActor returns the signed-in actor. Callers must hold s.mu.
func (s *Store) requireActor() (*actor.Actor, error) {
	if s.current == nil {
		return nil, errs.NewUnauthorizedError(anonymousRole, "use session")
	}
	return s.current, nil
}

// requireRole returns the signed-in actor if it carries the role.
// Callers must hold s.mu.
func (s *Store) requireRole(role actor.Role, action string) (*actor.Actor, error) {
	acting, err := s.requireActor()
	if err != nil {
		return nil, err
	}
	if acting.Role() != role {
		return nil, errs.NewUnauthorizedError(acting.Role().String(), action)
	}
	return acting, nil
}
