package authz_test

import (
	"testing"

	"github.com/pareverse/hrms/internal/authz"

	"github.com/stretchr/testify/assert"
)

func TestAuthorize(t *testing.T) {
	svc, err := authz.NewService("model.conf", "policy.csv")
	assert.NoError(t, err)

	cases := []struct {
		name     string
		role     string
		resource string
		action   string
		allowed  bool
	}{
		{"admin decides leaves", authz.RoleAdmin, "leave", "decide", true},
		{"admin reads all leaves", authz.RoleAdmin, "leave", "read", true},
		{"admin inherits employee create", authz.RoleAdmin, "leave", "create", true},
		{"admin manages leave types", authz.RoleAdmin, "leavetype", "delete", true},
		{"employee creates leave", authz.RoleEmployee, "leave", "create", true},
		{"employee reads own leaves", authz.RoleEmployee, "leave", "read_self", true},
		{"employee cannot decide", authz.RoleEmployee, "leave", "decide", false},
		{"employee cannot read all leaves", authz.RoleEmployee, "leave", "read", false},
		{"employee cannot manage types", authz.RoleEmployee, "leavetype", "create", false},
		{"employee reads memos", authz.RoleEmployee, "holiday", "read", true},
		{"employee reads own reports", authz.RoleEmployee, "report", "read_self", true},
		{"employee cannot read all reports", authz.RoleEmployee, "report", "read", false},
		{"unprivileged user denied everywhere", authz.RoleUser, "leave", "create", false},
		{"unprivileged user cannot read memos", authz.RoleUser, "announcement", "read", false},
		{"unknown role denied", "Ghost", "leave", "read", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			allowed, err := svc.Authorize(tc.role, tc.resource, tc.action)
			assert.NoError(t, err)
			assert.Equal(t, tc.allowed, allowed)
		})
	}
}
