package models

// Profile holds the fields collected at onboarding.
type Profile struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
}

// NotificationPrefs are the three independent toggles on the profile
// screen. All default to enabled for a fresh session.
type NotificationPrefs struct {
	OrderStatus    bool `json:"order_status"`
	PasswordChange bool `json:"password_change"`
	SpecialOffers  bool `json:"special_offers"`
}
