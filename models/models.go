package models

// All returns every model the application migrates, in dependency-free order
func All() []interface{} {
	return []interface{}{
		&ServicePackage{},
		&CustomerReview{},
		&Partner{},
		&OpeningDiscount{},
		&User{},
	}
}
