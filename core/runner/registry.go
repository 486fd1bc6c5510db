package runner

import (
	"errors"
	"fmt"
	"sort"

	"github.com/gofiber/fiber/v2"
)

// ErrUnknownApp is returned when a locator has no registered factory.
var ErrUnknownApp = errors.New("unknown application")

// Factory builds a fresh application instance. It is called once at start and
// again on every reload.
type Factory func() (*fiber.App, error)

// Registry maps application locators (e.g. "main:app") to their factories.
type Registry map[string]Factory

// Resolve returns the factory registered for locator.
func (r Registry) Resolve(locator string) (Factory, error) {
	factory, ok := r[locator]
	if !ok || factory == nil {
		return nil, fmt.Errorf("%w %q (registered: %v)", ErrUnknownApp, locator, r.Locators())
	}
	return factory, nil
}

// Locators lists the registered locators in sorted order.
func (r Registry) Locators() []string {
	locators := make([]string, 0, len(r))
	for locator := range r {
		locators = append(locators, locator)
	}
	sort.Strings(locators)
	return locators
}
