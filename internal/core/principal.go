package core

// Roles carried in dashboard tokens.
const (
	RoleAdmin   = "ADMIN"
	RoleManager = "MANAGER"
)

// Principal is the signed-in dashboard user. It is passed explicitly into
// services instead of being read from request-global state.
type Principal struct {
	UserID    string
	Email     string
	Role      string
	CanteenID int // zero for admins
}

// CanAccess reports whether the principal may act on the given canteen.
// Admins see every canteen, managers only their own.
func (p Principal) CanAccess(canteenID int) bool {
	if p.IsAdmin() {
		return true
	}
	return p.Role == RoleManager && p.CanteenID != 0 && p.CanteenID == canteenID
}

func (p Principal) IsAdmin() bool {
	return p.Role == RoleAdmin
}
