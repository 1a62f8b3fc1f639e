package validator

import (
	"errors"
	"testing"

	"github.com/baditaflorin/go_card_input/internal/core/domain"
)

func completeRecord() domain.CardRecord {
	return domain.CardRecord{
		CardNumber:   "4111 1111 1111 1111",
		NameOnCard:   "John Doe",
		ExpiryDate:   "12/30",
		SecurityCode: "123",
	}
}

func TestValidateCompleteRecord(t *testing.T) {
	v := NewCardValidator()
	if err := v.Validate(completeRecord()); err != nil {
		t.Fatalf("Validate() = %v, want nil", err)
	}
}

func TestValidateFields(t *testing.T) {
	v := NewCardValidator()

	tests := []struct {
		name      string
		mutate    func(*domain.CardRecord)
		wantField string
	}{
		{name: "partial card number", mutate: func(r *domain.CardRecord) { r.CardNumber = "4111 1111" }, wantField: "cardNumber"},
		{name: "ungrouped card number", mutate: func(r *domain.CardRecord) { r.CardNumber = "4111111111111111" }, wantField: "cardNumber"},
		{name: "empty name", mutate: func(r *domain.CardRecord) { r.NameOnCard = "" }, wantField: "nameOnCard"},
		{name: "whitespace-only name", mutate: func(r *domain.CardRecord) { r.NameOnCard = "   " }, wantField: "nameOnCard"},
		{name: "name with digits", mutate: func(r *domain.CardRecord) { r.NameOnCard = "John 2" }, wantField: "nameOnCard"},
		{name: "name too long", mutate: func(r *domain.CardRecord) { r.NameOnCard = "ABCDEFGHIJKLMNOPQRSTUVWXYZA" }, wantField: "nameOnCard"},
		{name: "expiry without year", mutate: func(r *domain.CardRecord) { r.ExpiryDate = "12/" }, wantField: "cardExpiryDate"},
		{name: "expiry with one year digit", mutate: func(r *domain.CardRecord) { r.ExpiryDate = "12/3" }, wantField: "cardExpiryDate"},
		{name: "expiry month thirteen", mutate: func(r *domain.CardRecord) { r.ExpiryDate = "13/30" }, wantField: "cardExpiryDate"},
		{name: "expiry month zero", mutate: func(r *domain.CardRecord) { r.ExpiryDate = "00/30" }, wantField: "cardExpiryDate"},
		{name: "short security code", mutate: func(r *domain.CardRecord) { r.SecurityCode = "12" }, wantField: "cardSecurityCode"},
		{name: "empty security code", mutate: func(r *domain.CardRecord) { r.SecurityCode = "" }, wantField: "cardSecurityCode"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			record := completeRecord()
			tc.mutate(&record)

			err := v.Validate(record)
			if err == nil {
				t.Fatal("expected validation error")
			}
			var verrs ValidationErrors
			if !errors.As(err, &verrs) {
				t.Fatalf("expected ValidationErrors, got %T", err)
			}
			if len(verrs) != 1 || verrs[0].Field != tc.wantField {
				t.Errorf("got %+v, want a single error on %s", verrs, tc.wantField)
			}
			if !errors.Is(err, domain.ErrIncompleteRecord) {
				t.Error("expected error to wrap ErrIncompleteRecord")
			}
		})
	}
}

func TestValidateEmptyRecordReportsEveryField(t *testing.T) {
	v := NewCardValidator()

	err := v.Validate(domain.CardRecord{})
	var verrs ValidationErrors
	if !errors.As(err, &verrs) {
		t.Fatalf("expected ValidationErrors, got %v", err)
	}
	if len(verrs) != 4 {
		t.Fatalf("expected 4 errors, got %d: %+v", len(verrs), verrs)
	}
	if verrs.Error() != "validation failed: 4 error(s)" {
		t.Errorf("unexpected message %q", verrs.Error())
	}
	if verrs[0].Message != "must contain 16 digits" {
		t.Errorf("unexpected message for card number: %q", verrs[0].Message)
	}
}

func TestFourDigitSecurityCodeAccepted(t *testing.T) {
	v := NewCardValidator()
	record := completeRecord()
	record.SecurityCode = "1234"
	if err := v.Validate(record); err != nil {
		t.Errorf("Validate() = %v, want nil", err)
	}
}
