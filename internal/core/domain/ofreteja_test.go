package domain_test

import (
	"testing"

	"github.com/kieltransportes011-pixel/controlfretev1-sub001/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func TestCanTransitionTo(t *testing.T) {
	tests := []struct {
		name string
		from domain.OFretejaStatus
		to   domain.OFretejaStatus
		want bool
	}{
		{"review to approval", domain.OFretejaAwaitingReview, domain.OFretejaAwaitingApproval, true},
		{"review to rejected", domain.OFretejaAwaitingReview, domain.OFretejaRejected, true},
		{"review to cancelled", domain.OFretejaAwaitingReview, domain.OFretejaCancelled, true},
		{"review cannot skip to approved", domain.OFretejaAwaitingReview, domain.OFretejaApproved, false},
		{"review cannot be imported", domain.OFretejaAwaitingReview, domain.OFretejaImported, false},
		{"approval to approved", domain.OFretejaAwaitingApproval, domain.OFretejaApproved, true},
		{"approval to rejected", domain.OFretejaAwaitingApproval, domain.OFretejaRejected, true},
		{"approval cannot be imported", domain.OFretejaAwaitingApproval, domain.OFretejaImported, false},
		{"approved to imported", domain.OFretejaApproved, domain.OFretejaImported, true},
		{"approved to cancelled", domain.OFretejaApproved, domain.OFretejaCancelled, true},
		{"approved cannot go back", domain.OFretejaApproved, domain.OFretejaAwaitingReview, false},
		{"rejected is terminal", domain.OFretejaRejected, domain.OFretejaAwaitingReview, false},
		{"cancelled is terminal", domain.OFretejaCancelled, domain.OFretejaApproved, false},
		{"imported is terminal", domain.OFretejaImported, domain.OFretejaCancelled, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := domain.OFretejaFreight{Status: tt.from}
			assert.Equal(t, tt.want, r.CanTransitionTo(tt.to))
		})
	}
}
