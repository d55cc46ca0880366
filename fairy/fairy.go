// Package fairy wires configuration, random sources, text producers and the
// bewitcher into one entry point.
//
//	f, err := fairy.New(options.Config{Seed: 42})
//	if err != nil {
//		return err
//	}
//
//	var p store.Product
//	_ = f.Bewitch(&p)
package fairy

import (
	"fairy-generator/internal/diagnostic"
	"fairy-generator/magic"
	"fairy-generator/options"
	"fairy-generator/source"
	"fairy-generator/text"
	"fmt"
	"log"

	"github.com/brianvoe/gofakeit/v7"
)

// Fairy generates test data. It is not safe for concurrent use.
type Fairy struct {
	cfg      options.Config
	rng      *source.Range
	temporal *source.Temporal
	producer text.Texts
	texts    text.Texts
	magic    *magic.Bewitcher
}

type Option func(*settings)

type settings struct {
	logger *log.Logger
}

// WithLogger receives the fields skipped while bewitching.
func WithLogger(logger *log.Logger) Option {
	return func(s *settings) {
		s.logger = logger
	}
}

func New(cfg options.Config, opts ...Option) (*Fairy, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if cfg.Seed == 0 {
		seed, err := source.NewSeed()
		if err != nil {
			return nil, fmt.Errorf("fairy: %w", err)
		}
		cfg.Seed = seed
	}

	var s settings
	for _, opt := range opts {
		opt(&s)
	}

	faker := gofakeit.New(cfg.Seed)
	rng := source.NewRange(cfg.Seed)
	producer := text.NewProducer(faker, rng).LimitedTo(cfg.TextLimit)

	texts := producer
	if cfg.Unique {
		texts = text.Unique(producer)
	}

	f := &Fairy{
		cfg:      cfg,
		rng:      rng,
		temporal: source.NewTemporal(faker),
		producer: producer,
		texts:    texts,
	}

	var magicOpts []magic.Option
	if s.logger != nil {
		magicOpts = append(magicOpts, magic.WithLogger(s.logger))
	}

	f.magic = magic.New(magic.Sources{Range: f.rng, Temporal: f.temporal, Words: f.texts}, magicOpts...)

	return f, nil
}

// Seed returns the seed in use, useful to reproduce a run that picked a random one.
func (f *Fairy) Seed() uint64 {
	return f.cfg.Seed
}

// Texts returns the configured text producer. When the config asks for unique
// texts it is shared with Bewitch, so words used for fields are not repeated.
func (f *Fairy) Texts() text.Texts {
	return f.texts
}

// UniqueTexts returns a fresh decorator with its own memory of produced values.
func (f *Fairy) UniqueTexts() text.Texts {
	return text.Unique(f.producer)
}

func (f *Fairy) Range() *source.Range {
	return f.rng
}

func (f *Fairy) Temporal() *source.Temporal {
	return f.temporal
}

// Bewitch fills target's fields, see magic.Bewitcher.Bewitch.
func (f *Fairy) Bewitch(target any, fieldNames ...string) error {
	return f.magic.Bewitch(target, fieldNames...)
}

// Explain reports how Bewitch would treat target's fields.
func (f *Fairy) Explain(target any, fieldNames ...string) diagnostic.Diagnostics {
	return magic.Explain(target, fieldNames...)
}
