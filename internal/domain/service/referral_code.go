package service

// ReferralCodeGenerator produces a fresh referral code for a new account.
// Codes are uncoordinated random samples; the store's unique index is the
// only collision defense.
type ReferralCodeGenerator interface {
	Generate() string
}
