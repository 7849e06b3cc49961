package auth

import (
	"fmt"

	"medStudyBot/pkg/msg"
)

type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"

	metaCurUser = "curUser"
)

type User struct {
	UserID int64
	Name   string
	Role   Role
}

func (u *User) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}

func (u *User) String() string {
	return fmt.Sprintf("%d (%s)", u.UserID, u.Role)
}

// GetUserFromReq returns the user resolved by the middleware or nil.
func GetUserFromReq(req *msg.Request) *User {
	if req == nil || req.Meta == nil {
		return nil
	}

	u, _ := req.Meta[metaCurUser].(*User)

	return u
}
