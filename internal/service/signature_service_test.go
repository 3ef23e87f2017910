package service

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHMACSignatureService_SignAndVerify(t *testing.T) {
	svc := NewHMACSignatureService()
	payload := svc.BuildCanonicalString(1767225600, `{"external_ref":"pay_1","status":"PAID"}`)

	sig := svc.Sign("whsec", payload)
	assert.Regexp(t, `^[0-9a-f]{64}$`, sig)
	assert.True(t, svc.Verify("whsec", payload, sig))
	assert.True(t, svc.Verify("whsec", payload, "sha256="+strings.ToUpper(sig)))
}

func TestHMACSignatureService_VerifyFails(t *testing.T) {
	svc := NewHMACSignatureService()
	payload := svc.BuildCanonicalString(1767225600, `{"amount":100000}`)
	sig := svc.Sign("whsec", payload)

	tests := []struct {
		name    string
		secret  string
		payload string
		sig     string
	}{
		{"wrong secret", "other", payload, sig},
		{"tampered body", "whsec", svc.BuildCanonicalString(1767225600, `{"amount":900000}`), sig},
		{"replayed timestamp", "whsec", svc.BuildCanonicalString(1767225601, `{"amount":100000}`), sig},
		{"empty signature", "whsec", payload, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.False(t, svc.Verify(tt.secret, tt.payload, tt.sig))
		})
	}
}

func TestHMACSignatureService_CanonicalString(t *testing.T) {
	svc := NewHMACSignatureService()
	assert.Equal(t, "1767225600.{}", svc.BuildCanonicalString(1767225600, "{}"))
}
