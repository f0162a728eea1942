package domain

// Role is the closed set of authorization levels a user can hold. The
// numeric values are part of the wire contract for role updates.
type Role int

const (
	RoleRegular Role = 1
	RoleAdmin   Role = 2
)

func (r Role) Valid() bool {
	return r == RoleRegular || r == RoleAdmin
}

func (r Role) String() string {
	switch r {
	case RoleAdmin:
		return "ROLE_ADMIN"
	case RoleRegular:
		return "ROLE_USER"
	}
	return "ROLE_UNKNOWN"
}

type User struct {
	ID             int64  `db:"id" json:"id"`
	Username       string `db:"username" json:"username"`
	HashedPassword string `db:"hashed_password" json:"-"`
	Role           Role   `db:"role" json:"role"`
	CreatedAt      int64  `db:"created_at" json:"created_at"`
	UpdatedAt      int64  `db:"updated_at" json:"updated_at"`
}

type Address struct {
	ID         int64  `db:"id" json:"id"`
	UserID     int64  `db:"user_id" json:"user_id"`
	Street     string `db:"street" json:"street"`
	City       string `db:"city" json:"city"`
	PostalCode string `db:"postal_code" json:"postal_code"`
	Country    string `db:"country" json:"country"`
	CreatedAt  int64  `db:"created_at" json:"created_at"`
	UpdatedAt  int64  `db:"updated_at" json:"updated_at"`
}
