package utils

// IsTenDigitPhone reports whether phone is exactly ten ASCII digits
func IsTenDigitPhone(phone string) bool {
	if len(phone) != 10 {
		return false
	}
	for i := 0; i < len(phone); i++ {
		if phone[i] < '0' || phone[i] > '9' {
			return false
		}
	}
	return true
}
