// Package plugins manages externally supplied inference extensions. Plugins
// run beside the rule engine, never instead of it: the registry returns its
// best plugin result and the caller decides whether it beats the core
// inference.
package plugins

import (
	"sort"
	"sync"

	"istari/contexts/intent-analytics/intent-engine/domain/entities"
	domainerrors "istari/contexts/intent-analytics/intent-engine/domain/errors"
	"istari/contexts/intent-analytics/intent-engine/ports"
)

type Registry struct {
	mu      sync.RWMutex
	plugins map[string]ports.InferencePlugin
}

func NewRegistry() *Registry {
	return &Registry{plugins: map[string]ports.InferencePlugin{}}
}

func (r *Registry) Register(plugin ports.InferencePlugin) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.plugins[plugin.Name()]; exists {
		return domainerrors.ErrPluginRegistered
	}
	r.plugins[plugin.Name()] = plugin
	return nil
}

func (r *Registry) Unregister(name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.plugins[name]; !exists {
		return domainerrors.ErrPluginNotFound
	}
	delete(r.plugins, name)
	return nil
}

func (r *Registry) Get(name string) (ports.InferencePlugin, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	plugin, ok := r.plugins[name]
	return plugin, ok
}

// List returns registered plugins ordered by priority descending, name
// ascending for equal priorities.
func (r *Registry) List() []ports.InferencePlugin {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]ports.InferencePlugin, 0, len(r.plugins))
	for _, plugin := range r.plugins {
		out = append(out, plugin)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Priority() != out[j].Priority() {
			return out[i].Priority() > out[j].Priority()
		}
		return out[i].Name() < out[j].Name()
	})
	return out
}

// InferBest consults plugins in priority order and keeps the
// highest-confidence result any of them produced.
func (r *Registry) InferBest(session *entities.Session) (entities.IntentState, bool) {
	var best entities.IntentState
	found := false
	for _, plugin := range r.List() {
		state, ok := plugin.Infer(session)
		if !ok {
			continue
		}
		if !found || state.Confidence > best.Confidence {
			best = state
			found = true
		}
	}
	return best, found
}
