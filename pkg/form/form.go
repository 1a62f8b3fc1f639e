// Package form owns the card record behind a card-entry screen.
//
// The UI calls Apply with the raw field content after every edit and displays the
// returned canonical value. The form keeps the previous value of each field, which the
// expiry rule needs to tell a backspace from a keystroke. A Form belongs to one UI event
// loop and must not be mutated from several goroutines at once.
package form

import (
	"context"
	"fmt"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/baditaflorin/go_card_input/internal/adapters/logger"
	"github.com/baditaflorin/go_card_input/internal/adapters/normalizer"
	"github.com/baditaflorin/go_card_input/internal/core/domain"
	"github.com/baditaflorin/go_card_input/internal/core/field"
	"github.com/baditaflorin/go_card_input/internal/ports"
	"github.com/baditaflorin/go_card_input/internal/validator"
	"github.com/baditaflorin/l"
)

// Form applies keystrokes to a card record and submits it once complete.
type Form struct {
	id         string
	record     domain.CardRecord
	normalizer ports.FieldNormalizer
	validator  *validator.CardValidator
	logger     ports.Logger
}

// Option defines a functional option for configuring a Form.
type Option func(*formConfig)

type formConfig struct {
	Logger         ports.Logger
	Normalizer     ports.FieldNormalizer
	UnicodeFolding bool
	Record         domain.CardRecord
}

// WithLogger sets a custom l logger.
func WithLogger(lg l.Logger) Option {
	return func(cfg *formConfig) {
		cfg.Logger = logger.FromExisting(lg)
	}
}

// WithPortLogger sets any logger implementing the library's logging interface.
func WithPortLogger(lg ports.Logger) Option {
	return func(cfg *formConfig) {
		cfg.Logger = lg
	}
}

// WithNormalizer replaces the field normalizer.
func WithNormalizer(n ports.FieldNormalizer) Option {
	return func(cfg *formConfig) {
		cfg.Normalizer = n
	}
}

// WithUnicodeFolding maps fullwidth digits and accented letters to ASCII before
// normalizing, so "４１１１" and "José" are accepted as "4111" and "Jose".
func WithUnicodeFolding() Option {
	return func(cfg *formConfig) {
		cfg.UnicodeFolding = true
	}
}

// WithRecord pre-populates the form, e.g. when editing a saved card.
// Every value is normalized on load.
func WithRecord(r Record) Option {
	return func(cfg *formConfig) {
		cfg.Record = r
	}
}

// New creates an empty Form, or a pre-populated one when WithRecord is given.
func New(opts ...Option) (*Form, error) {
	config := &formConfig{}

	for _, opt := range opts {
		opt(config)
	}

	if config.Logger == nil {
		var err error
		config.Logger, err = logger.NewStdLogger()
		if err != nil {
			return nil, fmt.Errorf("create logger: %w", err)
		}
	}

	if config.Normalizer == nil {
		config.Normalizer = normalizer.NewDefaultNormalizer()
	}
	if config.UnicodeFolding {
		config.Normalizer = normalizer.NewFoldingNormalizer(config.Normalizer)
	}

	f := &Form{
		id:         uuid.NewString(),
		normalizer: config.Normalizer,
		validator:  validator.NewCardValidator(),
		logger:     config.Logger,
	}

	for _, kind := range domain.AllFieldKinds() {
		if v := config.Record.Get(kind); v != "" {
			f.record = f.record.Set(kind, f.normalizer.Normalize(kind, "", v))
		}
	}

	f.logger.Debug("Card form opened",
		"form_id", f.id,
		"prefilled", !f.record.IsEmpty(),
	)

	return f, nil
}

// ID identifies the form in log entries.
func (f *Form) ID() string {
	return f.id
}

// Apply normalizes raw, the content of the field after an edit, stores the result
// and returns it for display. Unknown kinds leave the record untouched and return raw.
func (f *Form) Apply(kind FieldKind, raw string) string {
	if !kind.Valid() {
		f.logger.Warn("Ignoring edit of unknown field", "form_id", f.id, "field", kind.String())
		return raw
	}

	previous := f.record.Get(kind)
	value := f.normalizer.Normalize(kind, previous, raw)
	f.record = f.record.Set(kind, value)

	f.logger.Debug("Field normalized",
		"form_id", f.id,
		"field", kind.String(),
		"input_len", utf8.RuneCountInString(raw),
		"output_len", utf8.RuneCountInString(value),
		"deleting", utf8.RuneCountInString(raw) < utf8.RuneCountInString(previous),
		"value", field.Mask(kind, value),
	)

	return value
}

// Value returns the canonical value currently stored for kind.
func (f *Form) Value(kind FieldKind) string {
	return f.record.Get(kind)
}

// Record returns a copy of the current record.
func (f *Form) Record() Record {
	return f.record
}

// Reset clears every field.
func (f *Form) Reset() {
	f.record = domain.CardRecord{}
	f.logger.Debug("Card form reset", "form_id", f.id)
}

// Validate reports every incomplete or malformed field as ValidationErrors.
func (f *Form) Validate() error {
	return f.validator.Validate(f.record)
}

// Complete reports whether the record would pass Validate.
func (f *Form) Complete() bool {
	return f.Validate() == nil
}

// Submit validates the record and hands it to s. A declined payment returns the
// receipt together with ErrPaymentDeclined. The record is kept either way.
func (f *Form) Submit(ctx context.Context, s Submitter) (Receipt, error) {
	if err := f.Validate(); err != nil {
		f.logger.Warn("Card form incomplete", "form_id", f.id, "error", err.Error())
		return Receipt{}, err
	}

	if err := ctx.Err(); err != nil {
		return Receipt{}, err
	}

	f.logger.Info("Submitting card",
		"form_id", f.id,
		"card_number", field.Mask(domain.CardNumber, f.record.CardNumber),
	)

	receipt, err := s.Submit(ctx, f.record.Payment())
	if err != nil {
		f.logger.Error("Card submission failed", "form_id", f.id, "error", err.Error())
		return Receipt{}, fmt.Errorf("submit card: %w", err)
	}

	if !receipt.Approved {
		f.logger.Warn("Card declined", "form_id", f.id)
		return receipt, ErrPaymentDeclined
	}

	f.logger.Info("Card approved", "form_id", f.id, "reference", receipt.Reference)
	return receipt, nil
}

// Close releases the form's logger.
func (f *Form) Close() error {
	return f.logger.Close()
}
