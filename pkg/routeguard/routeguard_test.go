package routeguard

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecide(t *testing.T) {
	active := &Session{Role: "finance", IsActive: true}
	inactive := &Session{Role: "admin", IsActive: false}

	tests := []struct {
		name          string
		authenticated bool
		user          *Session
		required      []string
		want          Decision
	}{
		{"unauthenticated", false, nil, nil, DecisionLogin},
		{"authenticated flag without session", true, nil, nil, DecisionLogin},
		{"inactive account", true, inactive, nil, DecisionInactive},
		{"inactive account outranks role check", true, inactive, []string{"admin"}, DecisionInactive},
		{"no role requirement", true, active, nil, DecisionAllow},
		{"empty role requirement", true, active, []string{}, DecisionAllow},
		{"role matches", true, active, []string{"finance"}, DecisionAllow},
		{"role matches among several", true, active, []string{"admin", "finance"}, DecisionAllow},
		{"role does not match", true, active, []string{"admin"}, DecisionForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Decide(tt.authenticated, tt.user, tt.required))
		})
	}
}
