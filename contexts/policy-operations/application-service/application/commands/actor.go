package commands

// Actor roles as carried in the session token.
const (
	roleAdmin    = "admin"
	roleCustomer = "customer"
)

func isAdmin(role string) bool {
	return role == roleAdmin
}
