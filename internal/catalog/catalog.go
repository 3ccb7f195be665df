// Package catalog manages the pool of candidate offerings the engine draws
// from. It is deliberately dumb storage with validation: the combination and
// ranking logic lives in internal/engine, which consumes a snapshot produced by
// ListOfferings.
package catalog

import (
	"errors"
	"fmt"
	"sync"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/liyu-tw/coursepick/pkg/model"
)

var (
	// ErrDuplicateOffering is returned when an offering with the same course
	// name and section already exists.
	ErrDuplicateOffering = errors.New("offering already exists")
	// ErrOfferingNotFound is returned when no offering matches the given course
	// name and section.
	ErrOfferingNotFound = errors.New("offering not found")
)

// Catalog is the command surface of the offering pool. Offerings are keyed by
// (name, sectionId). ListOfferings returns an insertion-ordered snapshot safe
// to hand to a concurrent engine run.
type Catalog interface {
	AddOffering(offering model.Offering) (model.Offering, error)
	UpdateOffering(name, sectionID string, offering model.Offering) (model.Offering, error)
	RemoveOffering(name, sectionID string) error
	ListOfferings() []model.Offering
	Get(name, sectionID string) (model.Offering, bool)
}

type memoryCatalog struct {
	validate *validator.Validate
	logger   *zap.Logger

	mu        sync.RWMutex
	offerings []model.Offering
}

// New builds an empty in-memory catalog. A nil validator or logger falls back
// to a fresh validator and a no-op logger.
func New(validate *validator.Validate, logger *zap.Logger) Catalog {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	registerRules(validate)
	return &memoryCatalog{validate: validate, logger: logger}
}

func registerRules(validate *validator.Validate) {
	validate.RegisterValidation("category", func(fl validator.FieldLevel) bool {
		switch model.Category(fl.Field().String()) {
		case model.Required, model.Elective:
			return true
		default:
			return false
		}
	})
	validate.RegisterValidation("weekday", func(fl validator.FieldLevel) bool {
		return model.Weekday(fl.Field().String()).Valid()
	})
}

// normalize applies construction-time defaults and canonicalisation before
// validation: a zero priority becomes the default weight, and duplicate
// (day, period) entries collapse to one.
func (c *memoryCatalog) normalize(offering model.Offering) (model.Offering, error) {
	if offering.Priority == 0 {
		offering.Priority = model.DefaultPriority
	}
	offering.TimeSlots = model.NormalizeTimeSlots(offering.TimeSlots)
	if err := c.validate.Struct(offering); err != nil {
		return model.Offering{}, fmt.Errorf("invalid offering: %w", err)
	}
	return offering, nil
}

func (c *memoryCatalog) AddOffering(offering model.Offering) (model.Offering, error) {
	offering, err := c.normalize(offering)
	if err != nil {
		return model.Offering{}, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.indexOf(offering.Name, offering.SectionID) >= 0 {
		return model.Offering{}, fmt.Errorf("%w: %s/%s", ErrDuplicateOffering, offering.Name, offering.SectionID)
	}
	c.offerings = append(c.offerings, offering)
	c.logger.Debug("offering added",
		zap.String("name", offering.Name),
		zap.String("section", offering.SectionID),
	)
	return offering, nil
}

func (c *memoryCatalog) UpdateOffering(name, sectionID string, offering model.Offering) (model.Offering, error) {
	offering, err := c.normalize(offering)
	if err != nil {
		return model.Offering{}, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	i := c.indexOf(name, sectionID)
	if i < 0 {
		return model.Offering{}, fmt.Errorf("%w: %s/%s", ErrOfferingNotFound, name, sectionID)
	}
	if j := c.indexOf(offering.Name, offering.SectionID); j >= 0 && j != i {
		return model.Offering{}, fmt.Errorf("%w: %s/%s", ErrDuplicateOffering, offering.Name, offering.SectionID)
	}
	c.offerings[i] = offering
	return offering, nil
}

func (c *memoryCatalog) RemoveOffering(name, sectionID string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	i := c.indexOf(name, sectionID)
	if i < 0 {
		return fmt.Errorf("%w: %s/%s", ErrOfferingNotFound, name, sectionID)
	}
	c.offerings = append(c.offerings[:i], c.offerings[i+1:]...)
	return nil
}

func (c *memoryCatalog) ListOfferings() []model.Offering {
	c.mu.RLock()
	defer c.mu.RUnlock()
	snapshot := make([]model.Offering, len(c.offerings))
	copy(snapshot, c.offerings)
	return snapshot
}

func (c *memoryCatalog) Get(name, sectionID string) (model.Offering, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	i := c.indexOf(name, sectionID)
	if i < 0 {
		return model.Offering{}, false
	}
	return c.offerings[i], true
}

// indexOf must be called with the mutex held.
func (c *memoryCatalog) indexOf(name, sectionID string) int {
	for i, offering := range c.offerings {
		if offering.Name == name && offering.SectionID == sectionID {
			return i
		}
	}
	return -1
}
