package commands

const (
	roleAdmin    = "admin"
	roleCustomer = "customer"
)

func isAdmin(role string) bool { return role == roleAdmin }
