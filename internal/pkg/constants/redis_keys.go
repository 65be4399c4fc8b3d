package constants

// Redis key formats
const (
	KeyProspectionOTP = "prospection:otp:%s" // Format: prospection:otp:{phone}
)
