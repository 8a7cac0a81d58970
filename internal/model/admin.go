package model

import "fmt"

// Admin represents a staff account as stored by the backend. Password holds a
// bcrypt hash; this front-end never sends or compares plaintext.
type Admin struct {
	AdminID     int64  `json:"adminId"`
	Username    string `json:"username"`
	Password    string `json:"password,omitempty"`
	Email       string `json:"email,omitempty"`
	FullName    string `json:"fullName,omitempty"`
	PhoneNumber string `json:"phoneNumber,omitempty"`
}

// MinPasswordLength is the minimum accepted password length.
const MinPasswordLength = 8

// ValidatePassword checks password strength requirements.
func ValidatePassword(password string) error {
	if len(password) < MinPasswordLength {
		return fmt.Errorf("password must be at least %d characters", MinPasswordLength)
	}
	return nil
}

// ValidatePasswordPair checks strength and confirm-match in one step, the way
// the registration and profile forms need it.
func ValidatePasswordPair(password, confirm string) error {
	if err := ValidatePassword(password); err != nil {
		return err
	}
	if password != confirm {
		return fmt.Errorf("passwords do not match")
	}
	return nil
}

// ValidateRegistration checks the required registration fields before any
// request is sent to the backend.
func ValidateRegistration(a *Admin) error {
	switch {
	case a.FullName == "":
		return fmt.Errorf("full name is required")
	case a.Email == "":
		return fmt.Errorf("email is required")
	case a.Username == "":
		return fmt.Errorf("username is required")
	case a.PhoneNumber == "":
		return fmt.Errorf("phone number is required")
	}
	return nil
}

// ValidateItemForm checks the required item fields before any request is sent
// to the backend.
func ValidateItemForm(name string, categoryID, locationID int64) error {
	switch {
	case name == "":
		return fmt.Errorf("item name is required")
	case categoryID == 0:
		return fmt.Errorf("category is required")
	case locationID == 0:
		return fmt.Errorf("location is required")
	}
	return nil
}

// ValidateClaimForm checks the required claim fields before any request is
// sent to the backend.
func ValidateClaimForm(itemID int64, firstName, lastName, studEmail string) error {
	switch {
	case itemID == 0:
		return fmt.Errorf("please select an item")
	case firstName == "":
		return fmt.Errorf("first name is required")
	case lastName == "":
		return fmt.Errorf("last name is required")
	case studEmail == "":
		return fmt.Errorf("email is required")
	}
	return nil
}
