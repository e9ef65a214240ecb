package domain

import "time"

type Role string

const (
	RoleCustomer Role = "Customer"
	RoleAdmin    Role = "Admin"
)

func (r Role) Valid() bool {
	return r == RoleCustomer || r == RoleAdmin
}

type User struct {
	Id        UserId    `json:"id"`
	Name      string    `json:"name"`
	Email     Email     `json:"email"`
	PassHash  string    `json:"-"`
	Role      Role      `json:"role"`
	CreatedAt time.Time `json:"-"`
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
