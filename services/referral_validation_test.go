package services

import "testing"

func validInput() ReferralInput {
	return ReferralInput{
		ChildName:       "Ava",
		ChildAge:        10,
		GuardianName:    "Bea",
		GuardianEmail:   "b@x.com",
		WishDescription: "Wants to make a short film about her dog",
		Consent:         true,
	}
}

func TestValidateReferralInput(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*ReferralInput)
		wantField string
	}{
		{
			name:   "complete input passes",
			mutate: func(in *ReferralInput) {},
		},
		{
			name:      "missing child name",
			mutate:    func(in *ReferralInput) { in.ChildName = "  " },
			wantField: "child_name",
		},
		{
			name:      "missing age",
			mutate:    func(in *ReferralInput) { in.ChildAge = 0 },
			wantField: "child_age",
		},
		{
			name:      "age below range",
			mutate:    func(in *ReferralInput) { in.ChildAge = 2 },
			wantField: "child_age",
		},
		{
			name:      "age above range",
			mutate:    func(in *ReferralInput) { in.ChildAge = 19 },
			wantField: "child_age",
		},
		{
			name:      "missing guardian name",
			mutate:    func(in *ReferralInput) { in.GuardianName = "" },
			wantField: "guardian_name",
		},
		{
			name:      "missing guardian email",
			mutate:    func(in *ReferralInput) { in.GuardianEmail = "" },
			wantField: "guardian_email",
		},
		{
			name:      "malformed email",
			mutate:    func(in *ReferralInput) { in.GuardianEmail = "not-an-email" },
			wantField: "guardian_email",
		},
		{
			name:      "missing wish",
			mutate:    func(in *ReferralInput) { in.WishDescription = "" },
			wantField: "wish_description",
		},
		{
			name:      "wish under 20 characters",
			mutate:    func(in *ReferralInput) { in.WishDescription = "A short film" },
			wantField: "wish_description",
		},
		{
			name:      "wish of only whitespace padding still too short",
			mutate:    func(in *ReferralInput) { in.WishDescription = "   tiny wish        " },
			wantField: "wish_description",
		},
		{
			name:      "invalid phone",
			mutate:    func(in *ReferralInput) { in.GuardianPhone = "12345" },
			wantField: "guardian_phone",
		},
		{
			name:   "valid formatted phone accepted",
			mutate: func(in *ReferralInput) { in.GuardianPhone = "(555) 123-4567" },
		},
		{
			name:   "valid bare phone accepted",
			mutate: func(in *ReferralInput) { in.GuardianPhone = "5551234567" },
		},
		{
			name:      "unknown urgency",
			mutate:    func(in *ReferralInput) { in.UrgencyLevel = "urgent" },
			wantField: "urgency_level",
		},
		{
			name:   "known urgency accepted",
			mutate: func(in *ReferralInput) { in.UrgencyLevel = "critical" },
		},
		{
			name:      "consent not given",
			mutate:    func(in *ReferralInput) { in.Consent = false },
			wantField: "consent",
		},
		{
			name: "oversize attachment rejected",
			mutate: func(in *ReferralInput) {
				in.UploadedFiles = []UploadedFile{{Name: "video.mp4", Size: MaxAttachmentSize + 1}}
			},
			wantField: "uploaded_files",
		},
		{
			name: "attachment at limit accepted",
			mutate: func(in *ReferralInput) {
				in.UploadedFiles = []UploadedFile{{Name: "video.mp4", Size: MaxAttachmentSize}}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validInput()
			tt.mutate(&in)
			errs := ValidateReferralInput(in)

			if tt.wantField == "" {
				if len(errs) != 0 {
					t.Fatalf("expected no errors, got %v", errs)
				}
				return
			}
			if _, ok := errs[tt.wantField]; !ok {
				t.Fatalf("expected error on %q, got %v", tt.wantField, errs)
			}
		})
	}
}

func TestFormatPhoneNumber(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"5551234567", "(555) 123-4567"},
		{"555-123-4567", "(555) 123-4567"},
		{"(555) 123-4567", "(555) 123-4567"},
		{"555", "555"},
		{"555123", "(555) 123"},
		{"55512345678901", "(555) 123-4567"}, // extra digits dropped
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := FormatPhoneNumber(tt.in); got != tt.want {
				t.Errorf("FormatPhoneNumber(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
