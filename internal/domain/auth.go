package domain

// LoginOutcome is the discriminated result of the login operation. Exactly
// one of the three shapes is populated:
//
//   - Token non-empty: authentication is complete, Token is a session credential.
//   - MFARequired: the user has MFA enabled, TempToken is a pending credential
//     and the caller must present an OTP via the MFA login verification.
//   - MFASetupRequired: deployment policy mandates MFA and the user has no
//     secret enrolled yet; TempToken lets the caller run the setup flow.
type LoginOutcome struct {
	Token string
	User  User

	MFARequired      bool
	MFASetupRequired bool
	TempToken        string
}

// MFAEnrollment is the provisioning artifact returned by the MFA setup
// initiation: the raw base32 secret for manual entry plus the otpauth URL
// rendered as a scannable base64 PNG data URI.
type MFAEnrollment struct {
	Secret string
	QRCode string
}
