// Package authz is the explicit authorization check for the three fixed
// account roles (Admin, Employee, User). The presentation layer hides
// controls the actor cannot use, but every route still asks this package
// before touching a service; UI visibility is not an access control.
package authz

import (
	"github.com/casbin/casbin/v2"
)

const (
	RoleAdmin    = "Admin"
	RoleEmployee = "Employee"
	RoleUser     = "User" // unprivileged account awaiting promotion
)

//go:generate mockgen -source=authz.go -destination=mock/authz_mock.go -package=mock
type Service interface {
	Authorize(role, resource, action string) (bool, error)
}

type service struct {
	enforcer *casbin.Enforcer
}

// NewService loads the static RBAC model and policy. The role set never
// changes at runtime, so the policy lives in a file instead of the database.
func NewService(modelPath, policyPath string) (Service, error) {
	enforcer, err := casbin.NewEnforcer(modelPath, policyPath)
	if err != nil {
		return nil, err
	}
	return &service{enforcer: enforcer}, nil
}

func (s *service) Authorize(role, resource, action string) (bool, error) {
	return s.enforcer.Enforce(role, resource, action)
}
