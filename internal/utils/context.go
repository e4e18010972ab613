package utils

// Roles carried by a session.
const (
	RoleClient      = "client"
	RoleFarmer      = "farmer"
	RoleShopManager = "shop-manager"
	RoleDeliverer   = "deliverer"
)

func IsKnownRole(role string) bool {
	switch role {
	case RoleClient, RoleFarmer, RoleShopManager, RoleDeliverer:
		return true
	}
	return false
}
