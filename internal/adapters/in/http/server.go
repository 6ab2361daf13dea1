package http

import (
	"errors"
	"net/http"

	"swiftdrop/internal/core/application/session"
	"swiftdrop/internal/core/domain/model/kernel"
	"swiftdrop/internal/core/domain/model/order"
	"swiftdrop/internal/core/domain/services"
	"swiftdrop/internal/generated/servers"
	"swiftdrop/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// Server implements the ServerInterface for handling HTTP requests.
// It is a thin presentation layer over the session store: requests are
// translated to session operations and domain errors to HTTP statuses.
type Server struct {
	store *session.Store
}

// NewServer creates a new HTTP server backed by the given session store.
func NewServer(store *session.Store) *Server {
	return &Server{store: store}
}

// Login handles POST /api/v1/session - authenticates an actor by email.
func (s *Server) Login(ctx echo.Context) error {
	var req servers.LoginRequest
	if err := ctx.Bind(&req); err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid request body")
	}

	acting, err := s.store.Authenticate(ctx.Request().Context(), string(req.Email))
	if err != nil {
		return s.domainError(ctx, err)
	}

	response := servers.Actor{
		Id:    acting.ID().Bytes(),
		Name:  acting.Name(),
		Email: acting.Email(),
		Role:  servers.ActorRole(acting.Role().String()),
	}
	if restaurantID := acting.RestaurantID(); restaurantID != nil {
		raw := restaurantID.Bytes()
		response.RestaurantId = &raw
	}

	return ctx.JSON(http.StatusOK, response)
}

// Logout handles DELETE /api/v1/session - closes the current session.
func (s *Server) Logout(ctx echo.Context) error {
	s.store.Logout()
	return ctx.NoContent(http.StatusNoContent)
}

// GetCart handles GET /api/v1/cart - returns the session cart snapshot.
func (s *Server) GetCart(ctx echo.Context) error {
	view := s.store.CartSnapshot()

	response := servers.Cart{
		Lines:        make([]servers.CartLine, 0, len(view.Lines)),
		FoodSubtotal: view.FoodSubtotal.String(),
	}
	for _, line := range view.Lines {
		response.Lines = append(response.Lines, servers.CartLine{
			MenuItemId: line.MenuItemID().Bytes(),
			Name:       line.Name(),
			Quantity:   line.Quantity(),
			UnitPrice:  line.UnitPrice().String(),
			Total:      line.Total().String(),
		})
	}
	if view.RestaurantID != nil {
		raw := view.RestaurantID.Bytes()
		response.RestaurantId = &raw
	}

	return ctx.JSON(http.StatusOK, response)
}

// ClearCart handles DELETE /api/v1/cart - empties the session cart.
func (s *Server) ClearCart(ctx echo.Context) error {
	if err := s.store.ClearCart(); err != nil {
		return s.domainError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// AddCartLine handles POST /api/v1/cart/lines - prices a selection and adds it.
func (s *Server) AddCartLine(ctx echo.Context) error {
	var req servers.NewCartLine
	if err := ctx.Bind(&req); err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid request body")
	}

	selection, err := toSelection(req)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid selection: "+err.Error())
	}

	line, err := s.store.AddToCart(ctx.Request().Context(), selection)
	if err != nil {
		return s.domainError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, servers.CartLine{
		MenuItemId: line.MenuItemID().Bytes(),
		Name:       line.Name(),
		Quantity:   line.Quantity(),
		UnitPrice:  line.UnitPrice().String(),
		Total:      line.Total().String(),
	})
}

// RemoveCartLine handles DELETE /api/v1/cart/lines/{index} - removes one line.
func (s *Server) RemoveCartLine(ctx echo.Context, index int) error {
	if err := s.store.RemoveFromCart(index); err != nil {
		return s.domainError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// Checkout handles POST /api/v1/orders - checks out the cart, or dispatches
// a parcel when parcel details are present.
func (s *Server) Checkout(ctx echo.Context) error {
	var req servers.CheckoutRequest
	if err := ctx.Bind(&req); err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid request body")
	}

	paymentMethod, err := order.PaymentMethodFromString(string(req.PaymentMethod))
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid payment method")
	}

	var orderID kernel.UUID
	if req.Parcel != nil {
		orderID, err = s.store.SendParcel(ctx.Request().Context(),
			req.Parcel.PickupAddress, req.Parcel.DropoffAddress, req.Parcel.Zone, paymentMethod)
	} else {
		dropoffAddress := ""
		if req.DropoffAddress != nil {
			dropoffAddress = *req.DropoffAddress
		}
		orderID, err = s.store.Checkout(ctx.Request().Context(), dropoffAddress, paymentMethod)
	}
	if err != nil {
		return s.domainError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, servers.OrderCreated{OrderId: orderID.Bytes()})
}

// GetOrders handles GET /api/v1/orders - lists orders visible to the actor.
func (s *Server) GetOrders(ctx echo.Context) error {
	orders, err := s.store.ListOrders(ctx.Request().Context())
	if err != nil {
		return s.domainError(ctx, err)
	}

	response := make([]servers.Order, len(orders))
	for i, o := range orders {
		response[i] = servers.Order{
			Id:            o.ID.Bytes(),
			Status:        o.Status.String(),
			PaymentMethod: o.PaymentMethod.String(),
			TotalFee:      o.TotalFee.String(),
			CreatedAt:     o.CreatedAt,
			UpdatedAt:     o.UpdatedAt,
		}
		if o.RestaurantID != nil {
			raw := o.RestaurantID.Bytes()
			response[i].RestaurantId = &raw
		}
		if o.DriverID != nil {
			raw := o.DriverID.Bytes()
			response[i].DriverId = &raw
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// TransitionOrder handles POST /api/v1/orders/{orderId}/status - drives one
// lifecycle transition on behalf of the current actor.
func (s *Server) TransitionOrder(ctx echo.Context, orderId openapi_types.UUID) error {
	var req servers.TransitionRequest
	if err := ctx.Bind(&req); err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid request body")
	}

	target, err := order.StatusFromString(req.Status)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid status: "+req.Status)
	}

	orderID, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid order id")
	}

	if err = s.store.TransitionOrder(ctx.Request().Context(), orderID, target); err != nil {
		return s.domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// toSelection converts the wire selection into the session's shape.
func toSelection(req servers.NewCartLine) (session.Selection, error) {
	menuItemID, err := kernel.UUIDFromBytes(req.MenuItemId[:])
	if err != nil {
		return session.Selection{}, err
	}

	selection := session.Selection{
		MenuItemID: menuItemID,
		Quantity:   req.Quantity,
	}
	if req.VariationId != nil {
		variationID, idErr := kernel.UUIDFromBytes((*req.VariationId)[:])
		if idErr != nil {
			return session.Selection{}, idErr
		}
		selection.VariationID = &variationID
	}
	if req.ModifierIds != nil {
		for _, raw := range *req.ModifierIds {
			modifierID, idErr := kernel.UUIDFromBytes(raw[:])
			if idErr != nil {
				return session.Selection{}, idErr
			}
			selection.ModifierIDs = append(selection.ModifierIDs, modifierID)
		}
	}

	return selection, nil
}

// domainError maps domain errors onto HTTP statuses. An unauthorized error
// means 401 when nobody is logged in and 403 when the actor simply may not
// perform the operation.
func (s *Server) domainError(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return errorResponse(ctx, http.StatusNotFound, err.Error())
	case errors.Is(err, errs.ErrUnauthorized):
		if _, actorErr := s.store.CurrentActor(); actorErr != nil {
			return errorResponse(ctx, http.StatusUnauthorized, err.Error())
		}
		return errorResponse(ctx, http.StatusForbidden, err.Error())
	case errors.Is(err, errs.ErrIllegalTransition),
		errors.Is(err, errs.ErrVersionConflict):
		return errorResponse(ctx, http.StatusConflict, err.Error())
	case errors.Is(err, errs.ErrEmptyCart),
		errors.Is(err, services.ErrMenuItemUnavailable),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange),
		errors.Is(err, errs.ErrPricingIntegrity):
		return errorResponse(ctx, http.StatusBadRequest, err.Error())
	default:
		return errorResponse(ctx, http.StatusInternalServerError, "Internal server error")
	}
}

func errorResponse(ctx echo.Context, code int, message string) error {
	return ctx.JSON(code, servers.Error{
		Code:    code,
		Message: message,
	})
}
