package model

import "testing"

func TestValidatePassword(t *testing.T) {
	tests := []struct {
		password string
		wantErr  bool
	}{
		{"", true},
		{"short", true},
		{"1234567", true},
		{"12345678", false},
		{"a-valid-password", false},
	}

	for _, tt := range tests {
		err := ValidatePassword(tt.password)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidatePassword(%q) error = %v, wantErr %v", tt.password, err, tt.wantErr)
		}
	}
}

func TestValidatePasswordPair(t *testing.T) {
	if err := ValidatePasswordPair("longenough", "longenough"); err != nil {
		t.Errorf("matching pair rejected: %v", err)
	}
	if err := ValidatePasswordPair("longenough", "different1"); err == nil {
		t.Error("mismatched pair accepted")
	}
	if err := ValidatePasswordPair("short", "short"); err == nil {
		t.Error("weak password accepted")
	}
}

func TestValidateRegistration(t *testing.T) {
	valid := Admin{
		Username:    "maria",
		Email:       "maria@cit.edu",
		FullName:    "Maria Santos",
		PhoneNumber: "09170000000",
	}
	if err := ValidateRegistration(&valid); err != nil {
		t.Errorf("valid registration rejected: %v", err)
	}

	tests := []struct {
		name  string
		admin Admin
	}{
		{"missing full name", Admin{Username: "a", Email: "b", PhoneNumber: "c"}},
		{"missing email", Admin{Username: "a", FullName: "b", PhoneNumber: "c"}},
		{"missing username", Admin{Email: "a", FullName: "b", PhoneNumber: "c"}},
		{"missing phone", Admin{Username: "a", Email: "b", FullName: "c"}},
	}
	for _, tt := range tests {
		if err := ValidateRegistration(&tt.admin); err == nil {
			t.Errorf("%s: expected error", tt.name)
		}
	}
}

func TestValidateItemForm(t *testing.T) {
	if err := ValidateItemForm("Wallet", 1, 2); err != nil {
		t.Errorf("valid item rejected: %v", err)
	}
	if err := ValidateItemForm("", 1, 2); err == nil {
		t.Error("empty name accepted")
	}
	if err := ValidateItemForm("Wallet", 0, 2); err == nil {
		t.Error("missing category accepted")
	}
	if err := ValidateItemForm("Wallet", 1, 0); err == nil {
		t.Error("missing location accepted")
	}
}

func TestValidateClaimForm(t *testing.T) {
	if err := ValidateClaimForm(1, "Maria", "Santos", "maria@cit.edu"); err != nil {
		t.Errorf("valid claim rejected: %v", err)
	}
	if err := ValidateClaimForm(0, "Maria", "Santos", "maria@cit.edu"); err == nil {
		t.Error("missing item accepted")
	}
	if err := ValidateClaimForm(1, "", "Santos", "maria@cit.edu"); err == nil {
		t.Error("missing first name accepted")
	}
	if err := ValidateClaimForm(1, "Maria", "Santos", ""); err == nil {
		t.Error("missing email accepted")
	}
}

func TestLocationDisplayName(t *testing.T) {
	tests := []struct {
		loc  *Location
		want string
	}{
		{nil, "N/A"},
		{&Location{LocationBuilding: "NGE"}, "N/A"},
		{&Location{LocationFloor: "2F"}, "N/A"},
		{&Location{LocationBuilding: "NGE", LocationFloor: "2F"}, "NGE - 2F"},
	}
	for _, tt := range tests {
		if got := tt.loc.DisplayName(); got != tt.want {
			t.Errorf("DisplayName() = %q, want %q", got, tt.want)
		}
	}
}

func TestItemFallbacks(t *testing.T) {
	item := Item{ItemID: 1, ItemName: "Wallet"}
	if got := item.CategoryName(); got != "N/A" {
		t.Errorf("CategoryName() = %q, want N/A", got)
	}
	if got := item.LocationName(); got != "N/A" {
		t.Errorf("LocationName() = %q, want N/A", got)
	}

	item.Category = &Category{CategoryID: 1, CategoryName: "Electronics"}
	if got := item.CategoryName(); got != "Electronics" {
		t.Errorf("CategoryName() = %q, want Electronics", got)
	}
}
