package domain

import (
	"errors"
	"strconv"
	"strings"
)

// FieldKind selects which normalization rule applies to a form field.
type FieldKind int

const (
	// CardNumber is the primary account number, displayed in groups of four digits.
	CardNumber FieldKind = iota
	// NameOnCard is the cardholder name as embossed on the card.
	NameOnCard
	// ExpiryDate is the MM/YY expiry date.
	ExpiryDate
	// SecurityCode is the CVC/CVV printed on the card.
	SecurityCode
)

// Field limits shared by the normalizer and the validator.
const (
	MaxCardNumberDigits   = 16
	CardNumberGroupSize   = 4
	MaxNameLength         = 26
	MaxExpiryDigits       = 4
	MaxSecurityCodeDigits = 4
	MinSecurityCodeDigits = 3
	ExpirySeparator       = "/"
)

var (
	// ErrUnknownFieldKind is returned when a field name cannot be resolved.
	ErrUnknownFieldKind = errors.New("unknown field kind")
	// ErrIncompleteRecord is wrapped by validation failures of a card record.
	ErrIncompleteRecord = errors.New("card record is incomplete")
	// ErrPaymentDeclined is returned when the payment backend rejects a submission.
	ErrPaymentDeclined = errors.New("payment declined")
)

var kindNames = [...]string{
	CardNumber:   "CardNumber",
	NameOnCard:   "NameOnCard",
	ExpiryDate:   "ExpiryDate",
	SecurityCode: "SecurityCode",
}

var kindKeys = [...]string{
	CardNumber:   "cardNumber",
	NameOnCard:   "nameOnCard",
	ExpiryDate:   "cardExpiryDate",
	SecurityCode: "cardSecurityCode",
}

var kindAliases = map[string]FieldKind{
	"number":        CardNumber,
	"card-number":   CardNumber,
	"card_number":   CardNumber,
	"pan":           CardNumber,
	"name":          NameOnCard,
	"name-on-card":  NameOnCard,
	"holder":        NameOnCard,
	"expiry":        ExpiryDate,
	"exp":           ExpiryDate,
	"expiry-date":   ExpiryDate,
	"cvc":           SecurityCode,
	"cvv":           SecurityCode,
	"code":          SecurityCode,
	"security-code": SecurityCode,
}

// AllFieldKinds returns every field kind in declaration order.
func AllFieldKinds() []FieldKind {
	return []FieldKind{CardNumber, NameOnCard, ExpiryDate, SecurityCode}
}

// Valid reports whether k is one of the declared field kinds.
func (k FieldKind) Valid() bool {
	return k >= CardNumber && k <= SecurityCode
}

func (k FieldKind) String() string {
	if !k.Valid() {
		return "FieldKind(" + strconv.Itoa(int(k)) + ")"
	}
	return kindNames[k]
}

// Key returns the payload key the payment backend expects for this field.
func (k FieldKind) Key() string {
	if !k.Valid() {
		return ""
	}
	return kindKeys[k]
}

// ParseFieldKind resolves a field name, payload key or short alias, ignoring case.
func ParseFieldKind(s string) (FieldKind, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for _, k := range AllFieldKinds() {
		if name == strings.ToLower(kindNames[k]) || name == strings.ToLower(kindKeys[k]) {
			return k, nil
		}
	}
	if k, ok := kindAliases[name]; ok {
		return k, nil
	}
	return 0, &UnknownFieldKindError{Name: s}
}

// UnknownFieldKindError carries the name that failed to resolve.
type UnknownFieldKindError struct {
	Name string
}

func (e *UnknownFieldKindError) Error() string {
	return ErrUnknownFieldKind.Error() + ": " + strings.TrimSpace(e.Name)
}

func (e *UnknownFieldKindError) Unwrap() error {
	return ErrUnknownFieldKind
}

// CardRecord holds the canonical value of every card field of one form.
type CardRecord struct {
	CardNumber   string `json:"cardNumber" validate:"cardnumber"`
	NameOnCard   string `json:"nameOnCard" validate:"cardname"`
	ExpiryDate   string `json:"cardExpiryDate" validate:"cardexpiry"`
	SecurityCode string `json:"cardSecurityCode" validate:"cardcode"`
}

// Get returns the stored value for kind, or "" for an unknown kind.
func (r CardRecord) Get(kind FieldKind) string {
	switch kind {
	case CardNumber:
		return r.CardNumber
	case NameOnCard:
		return r.NameOnCard
	case ExpiryDate:
		return r.ExpiryDate
	case SecurityCode:
		return r.SecurityCode
	}
	return ""
}

// Set returns a copy of r with the value for kind replaced.
func (r CardRecord) Set(kind FieldKind, value string) CardRecord {
	switch kind {
	case CardNumber:
		r.CardNumber = value
	case NameOnCard:
		r.NameOnCard = value
	case ExpiryDate:
		r.ExpiryDate = value
	case SecurityCode:
		r.SecurityCode = value
	}
	return r
}

// IsEmpty reports whether no field has a value.
func (r CardRecord) IsEmpty() bool {
	return r == CardRecord{}
}

// Payment builds the payload submitted to the payment backend.
func (r CardRecord) Payment() Payment {
	return Payment{
		CardNumber:       r.CardNumber,
		NameOnCard:       r.NameOnCard,
		CardExpiryDate:   r.ExpiryDate,
		CardSecurityCode: r.SecurityCode,
	}
}

// Payment is the submission payload accepted by the payment backend.
type Payment struct {
	CardNumber       string `json:"cardNumber"`
	NameOnCard       string `json:"nameOnCard"`
	CardExpiryDate   string `json:"cardExpiryDate"`
	CardSecurityCode string `json:"cardSecurityCode"`
}

// Receipt is the backend's answer to a submission.
type Receipt struct {
	Approved  bool   `json:"approved"`
	Reference string `json:"reference,omitempty"`
}
