package models

type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

type SubscriptionTier string

const (
	TierFree    SubscriptionTier = "free"
	TierMonthly SubscriptionTier = "monthly"
	TierYearly  SubscriptionTier = "yearly"
)

// Defaults applied when the remote profile row leaves a column empty.
const (
	DefaultLanguage = "English"
	DefaultTheme    = ThemeLight
)

// UserProfile is the signed-in driver. Exactly one profile is cached locally.
type UserProfile struct {
	ID               string           `json:"id"`
	Name             string           `json:"name"`
	Email            string           `json:"email,omitempty"`
	Mobile           string           `json:"mobile,omitempty"`
	Avatar           string           `json:"avatar,omitempty"`
	Language         string           `json:"language"`
	Premium          bool             `json:"premium"`
	IsAdmin          bool             `json:"isAdmin,omitempty"`
	SubscriptionTier SubscriptionTier `json:"subscriptionTier,omitempty"`
	Theme            Theme            `json:"theme,omitempty"`
}

// ProfileUpdate is the partial field set an administrator may change.
// Nil fields are left untouched.
type ProfileUpdate struct {
	Premium *bool
	IsAdmin *bool
}

// Empty reports whether the update changes nothing.
func (u ProfileUpdate) Empty() bool {
	return u.Premium == nil && u.IsAdmin == nil
}

// Apply returns a copy of p with the non-nil fields of u applied.
func (p UserProfile) Apply(u ProfileUpdate) UserProfile {
	if u.Premium != nil {
		p.Premium = *u.Premium
	}
	if u.IsAdmin != nil {
		p.IsAdmin = *u.IsAdmin
	}
	return p
}
