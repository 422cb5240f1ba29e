package validation

import "testing"

func TestEntryText(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		wantErr bool
	}{
		{name: "valid text", text: "had a rough morning", wantErr: false},
		{name: "empty", text: "", wantErr: true},
		{name: "whitespace only", text: "   \n\t", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := EntryText(tt.text)
			if (err != nil) != tt.wantErr {
				t.Errorf("EntryText(%q) error = %v, wantErr %v", tt.text, err, tt.wantErr)
			}
		})
	}
}

func TestMoodScore(t *testing.T) {
	tests := []struct {
		score   int
		wantErr bool
	}{
		{score: 0, wantErr: false}, // skipped
		{score: 1, wantErr: false},
		{score: 5, wantErr: false},
		{score: 6, wantErr: true},
		{score: -1, wantErr: true},
	}

	for _, tt := range tests {
		err := MoodScore(tt.score)
		if (err != nil) != tt.wantErr {
			t.Errorf("MoodScore(%d) error = %v, wantErr %v", tt.score, err, tt.wantErr)
		}
	}
}

func TestEmail(t *testing.T) {
	tests := []struct {
		email   string
		wantErr bool
	}{
		{email: "user@example.com", wantErr: false},
		{email: "", wantErr: true},
		{email: "no-at-sign", wantErr: true},
		{email: "@leading", wantErr: true},
		{email: "trailing@", wantErr: true},
	}

	for _, tt := range tests {
		err := Email(tt.email)
		if (err != nil) != tt.wantErr {
			t.Errorf("Email(%q) error = %v, wantErr %v", tt.email, err, tt.wantErr)
		}
	}
}

func TestRegistration(t *testing.T) {
	tests := []struct {
		name     string
		userName string
		email    string
		password string
		confirm  string
		wantErr  bool
	}{
		{name: "valid", userName: "Ada", email: "ada@example.com", password: "longenough", confirm: "longenough", wantErr: false},
		{name: "empty name", userName: "", email: "ada@example.com", password: "longenough", confirm: "longenough", wantErr: true},
		{name: "short password", userName: "Ada", email: "ada@example.com", password: "short", confirm: "short", wantErr: true},
		{name: "password mismatch", userName: "Ada", email: "ada@example.com", password: "longenough", confirm: "different", wantErr: true},
		{name: "bad email", userName: "Ada", email: "nope", password: "longenough", confirm: "longenough", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Registration(tt.userName, tt.email, tt.password, tt.confirm)
			if (err != nil) != tt.wantErr {
				t.Errorf("Registration() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
