package jobs

import "testing"

func TestEncodeDecode_WelcomeEmail(t *testing.T) {
	payload := WelcomeEmailPayload{
		Email:    "j@x.com",
		Username: "jdoe",
	}

	j, err := NewWelcomeEmail(payload.Email, payload.Username)
	if err != nil {
		t.Fatalf("NewWelcomeEmail error: %v", err)
	}

	if j.ID == "" {
		t.Fatalf("expected job id to be assigned")
	}
	if j.Type != JobWelcomeEmail {
		t.Fatalf("expected type %s, got %s", JobWelcomeEmail, j.Type)
	}

	decoded, err := DecodePayload(j)
	if err != nil {
		t.Fatalf("DecodePayload error: %v", err)
	}

	p, ok := decoded.(WelcomeEmailPayload)
	if !ok {
		t.Fatalf("expected WelcomeEmailPayload, got %T", decoded)
	}

	if p.Email != payload.Email || p.Username != payload.Username {
		t.Fatalf("round trip mismatch: %+v", p)
	}
}

func TestEncodePayload_TypeMismatch(t *testing.T) {
	_, err := EncodePayload(JobWelcomeEmail, struct{ X int }{X: 1})
	if err == nil {
		t.Fatalf("expected error, got nil")
	}
	if err != ErrPayloadTypeMismatch {
		t.Fatalf("expected ErrPayloadTypeMismatch, got %v", err)
	}
}

func TestValidatePayload_RequiredFields(t *testing.T) {
	err := ValidatePayload(JobWelcomeEmail, WelcomeEmailPayload{Email: "", Username: "jdoe"})
	if err == nil {
		t.Fatalf("expected error")
	}

	err = ValidatePayload(JobWelcomeEmail, WelcomeEmailPayload{Email: "j@x.com", Username: ""})
	if err == nil {
		t.Fatalf("expected error")
	}
}

func TestNewJob_InvalidType(t *testing.T) {
	_, err := NewJob(JobType("bogus"), nil)
	if err != ErrInvalidJobType {
		t.Fatalf("expected ErrInvalidJobType, got %v", err)
	}
}
