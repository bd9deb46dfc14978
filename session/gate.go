// Package session owns the anonymous/authenticated state transition and
// the registration rule that guards it.
package session

import (
	"errors"
	"strings"

	"github.com/littlelemon/restaurant-app/cart"
	"github.com/littlelemon/restaurant-app/models"
	"github.com/littlelemon/restaurant-app/navigation"
	"github.com/littlelemon/restaurant-app/prefs"
)

// ErrMissingField reports a registration attempt with a blank first name,
// last name or email. No state changes on rejection.
var ErrMissingField = errors.New("missing required field")

// ErrNotValidated reports a LogIn call whose profile would not pass
// ValidateRegistration.
var ErrNotValidated = errors.New("registration has not been validated")

// Gate tracks whether a user is authenticated. State lives behind the
// prefs store so it survives restarts; the gate itself holds no storage
// concerns beyond the port.
type Gate struct {
	store  prefs.Store
	ledger *cart.Ledger
	nav    *navigation.Dispatcher
}

func NewGate(store prefs.Store, ledger *cart.Ledger, nav *navigation.Dispatcher) *Gate {
	return &Gate{store: store, ledger: ledger, nav: nav}
}

// ValidateRegistration accepts only when all three fields are non-blank
// after trimming. This is the sole rule guarding the transition from
// anonymous to authenticated.
func (g *Gate) ValidateRegistration(firstName, lastName, email string) error {
	if strings.TrimSpace(firstName) == "" ||
		strings.TrimSpace(lastName) == "" ||
		strings.TrimSpace(email) == "" {
		return ErrMissingField
	}
	return nil
}

// LogIn records the authenticated flag and the profile fields. It
// re-checks the registration rule so the logged-in flag can never be set
// alongside an empty profile.
func (g *Gate) LogIn(p models.Profile) error {
	if err := g.ValidateRegistration(p.FirstName, p.LastName, p.Email); err != nil {
		return ErrNotValidated
	}

	if err := g.store.PutString(prefs.KeyFirstName, p.FirstName); err != nil {
		return err
	}
	if err := g.store.PutString(prefs.KeyLastName, p.LastName); err != nil {
		return err
	}
	if err := g.store.PutString(prefs.KeyEmail, p.Email); err != nil {
		return err
	}
	if err := g.store.PutBool(prefs.KeyIsLoggedIn, true); err != nil {
		return err
	}

	g.nav.Emit(navigation.ToHome())
	return nil
}

// LogOut clears the authenticated flag, the persisted profile and
// notification preferences, and the cart. A user never keeps cart contents
// across a logout boundary.
func (g *Gate) LogOut() error {
	if err := g.store.ClearAll(); err != nil {
		return err
	}
	if g.ledger != nil {
		g.ledger.Clear()
	}

	g.nav.Emit(navigation.ToOnboarding())
	return nil
}

func (g *Gate) IsLoggedIn() bool {
	return g.store.GetBool(prefs.KeyIsLoggedIn, false)
}

// Profile reads the persisted profile fields, blank when absent.
func (g *Gate) Profile() models.Profile {
	return models.Profile{
		FirstName: g.store.GetString(prefs.KeyFirstName, ""),
		LastName:  g.store.GetString(prefs.KeyLastName, ""),
		Email:     g.store.GetString(prefs.KeyEmail, ""),
	}
}

// Notifications reads the three toggles, enabled by default.
func (g *Gate) Notifications() models.NotificationPrefs {
	return models.NotificationPrefs{
		OrderStatus:    g.store.GetBool(prefs.KeyOrderStatusNotifications, true),
		PasswordChange: g.store.GetBool(prefs.KeyPasswordChangeNotifications, true),
		SpecialOffers:  g.store.GetBool(prefs.KeySpecialOffersNotifications, true),
	}
}

func (g *Gate) SetNotifications(n models.NotificationPrefs) error {
	if err := g.store.PutBool(prefs.KeyOrderStatusNotifications, n.OrderStatus); err != nil {
		return err
	}
	if err := g.store.PutBool(prefs.KeyPasswordChangeNotifications, n.PasswordChange); err != nil {
		return err
	}
	return g.store.PutBool(prefs.KeySpecialOffersNotifications, n.SpecialOffers)
}
