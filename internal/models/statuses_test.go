package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVerificationTransitions(t *testing.T) {
	cases := []struct {
		from, to VerificationStatus
		allowed  bool
	}{
		{VerificationPending, VerificationUnderReview, true},
		{VerificationPending, VerificationApproved, true},
		{VerificationPending, VerificationRejected, true},
		{VerificationUnderReview, VerificationApproved, true},
		{VerificationUnderReview, VerificationRejected, true},
		{VerificationUnderReview, VerificationPending, false},
		{VerificationApproved, VerificationRejected, false},
		{VerificationApproved, VerificationPending, false},
		{VerificationApproved, VerificationUnderReview, false},
		{VerificationRejected, VerificationApproved, false},
		{VerificationRejected, VerificationPending, false},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.allowed, CanTransitionVerification(tc.from, tc.to),
			"%s -> %s", tc.from, tc.to)
	}
}

func TestDuplicateKeyDistinguishesFields(t *testing.T) {
	a := QuoteRequest{CustomerName: "A", CustomerEmail: "a@example.com", Message: "hello"}
	b := QuoteRequest{CustomerName: "A", CustomerEmail: "a@example.com", Message: "hello"}
	c := QuoteRequest{CustomerName: "A", CustomerEmail: "other@example.com", Message: "hello"}

	assert.Equal(t, a.DuplicateKey(), b.DuplicateKey())
	assert.NotEqual(t, a.DuplicateKey(), c.DuplicateKey())

	// Field boundaries matter: ("ab","c") is not ("a","bc").
	d := QuoteRequest{CustomerName: "ab", CustomerEmail: "c", Message: "m"}
	e := QuoteRequest{CustomerName: "a", CustomerEmail: "bc", Message: "m"}
	assert.NotEqual(t, d.DuplicateKey(), e.DuplicateKey())
}
