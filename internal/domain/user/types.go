package user

type Role string

const (
	RoleMember Role = "member"
	RoleAdmin  Role = "admin"
)

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	switch r {
	case RoleMember, RoleAdmin:
		return true
	default:
		return false
	}
}

func NewRole(s string) (Role, error) {
	role := Role(s)
	if !role.IsValid() {
		return "", ErrInvalidRole
	}
	return role, nil
}

type Subscription string

const (
	SubscriptionSingle    Subscription = "single"
	SubscriptionMonthly   Subscription = "monthly"
	SubscriptionUnlimited Subscription = "unlimited"
)

func (s Subscription) String() string {
	return string(s)
}

func NewSubscription(s string) (Subscription, error) {
	switch Subscription(s) {
	case SubscriptionSingle, SubscriptionMonthly, SubscriptionUnlimited:
		return Subscription(s), nil
	default:
		return "", ErrInvalidSubscription
	}
}
