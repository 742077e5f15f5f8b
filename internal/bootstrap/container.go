package bootstrap

import (
	"fmt"
	"sync"

	"github.com/AI2HU/sitekit/internal/settings"
)

// Service names bound by the built-in providers
const (
	ServiceConfig    = "config"
	ServicePostStore = "store.posts"
)

// Container holds the services registered during startup and the settings
// builder providers configure.
type Container struct {
	mu       sync.RWMutex
	services map[string]interface{}
	settings *settings.Builder
}

// NewContainer creates an empty container
func NewContainer() *Container {
	return &Container{
		services: make(map[string]interface{}),
		settings: settings.NewBuilder(),
	}
}

// Bind registers svc under name, replacing any previous binding
func (c *Container) Bind(name string, svc interface{}) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.services[name] = svc
}

// Resolve returns the service bound under name
func (c *Container) Resolve(name string) (interface{}, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	svc, ok := c.services[name]
	return svc, ok
}

// Settings returns the builder for boot-time settings
func (c *Container) Settings() *settings.Builder {
	return c.settings
}

// Resolve returns the service bound under name as a T
func Resolve[T any](c *Container, name string) (T, error) {
	var zero T
	svc, ok := c.Resolve(name)
	if !ok {
		return zero, fmt.Errorf("service %q is not registered", name)
	}
	typed, ok := svc.(T)
	if !ok {
		return zero, fmt.Errorf("service %q has type %T, want %T", name, svc, zero)
	}
	return typed, nil
}
