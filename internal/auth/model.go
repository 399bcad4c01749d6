package auth

// Staff roles. Baristas ring up orders; admins can additionally
// archive receipts.
const (
	RoleBarista = "BARISTA"
	RoleAdmin   = "ADMIN"
)

// User is a staff account.
type User struct {
	ID       string
	Name     string
	Email    string
	Password string
	Role     string
}
