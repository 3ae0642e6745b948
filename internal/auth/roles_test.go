package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeRoles(t *testing.T) {
	tests := []struct {
		name  string
		claim any
		want  []string
	}{
		{"plain string", "ROLE_ADMIN", []string{"ROLE_ADMIN"}},
		{"empty string", "", []string{}},
		{"missing claim", nil, []string{}},
		{
			"authority objects",
			[]any{
				map[string]any{"authority": "ROLE_USER"},
				map[string]any{"authority": "ROLE_ADMIN"},
			},
			[]string{"ROLE_USER", "ROLE_ADMIN"},
		},
		{
			"skips malformed entries",
			[]any{
				map[string]any{"authority": "ROLE_USER"},
				map[string]any{"name": "ROLE_ADMIN"},
				"ROLE_STAFF",
				map[string]any{"authority": 7},
			},
			[]string{"ROLE_USER"},
		},
		{"unrecognized shape", map[string]any{"authority": "ROLE_USER"}, []string{}},
		{"numeric claim", 42, []string{}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, NormalizeRoles(tc.claim))
		})
	}
}

func TestPrimaryRole(t *testing.T) {
	assert.Equal(t, "ROLE_ADMIN", PrimaryRole([]string{"ROLE_ADMIN", "ROLE_USER"}))
	assert.Equal(t, RoleUser, PrimaryRole(nil))
	assert.Equal(t, RoleUser, PrimaryRole([]string{}))
}
