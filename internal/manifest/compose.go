package manifest

import (
	"fmt"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	apiPublishedPort = "8080:80"
	cachePort        = "11211"
)

// ComposeFile is the subset of a Compose definition the checks look at.
type ComposeFile struct {
	Services map[string]ComposeService `yaml:"services"`
}

type ComposeService struct {
	Image       string       `yaml:"image"`
	Build       yaml.Node    `yaml:"build"`
	Ports       []string     `yaml:"ports"`
	Environment yaml.Node    `yaml:"environment"`
	HealthCheck *HealthCheck `yaml:"healthcheck"`
	DependsOn   yaml.Node    `yaml:"depends_on"`
}

type HealthCheck struct {
	Test yaml.Node `yaml:"test"`
}

// LoadCompose parses a Compose definition.
func LoadCompose(data []byte) (*ComposeFile, error) {
	var f ComposeFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse compose file: %w", err)
	}
	if len(f.Services) == 0 {
		return nil, fmt.Errorf("parse compose file: no services defined")
	}
	return &f, nil
}

// Env returns the service environment, accepting both the map and the
// KEY=VALUE list forms.
func (s ComposeService) Env() (map[string]string, error) {
	env := map[string]string{}
	switch s.Environment.Kind {
	case 0:
		return env, nil
	case yaml.MappingNode:
		if err := s.Environment.Decode(&env); err != nil {
			return nil, err
		}
	case yaml.SequenceNode:
		var items []string
		if err := s.Environment.Decode(&items); err != nil {
			return nil, err
		}
		for _, item := range items {
			k, v, _ := strings.Cut(item, "=")
			env[k] = v
		}
	default:
		return nil, fmt.Errorf("environment: unexpected yaml node kind %d", s.Environment.Kind)
	}
	return env, nil
}

// Dependencies maps each dependency to its start condition. The short list
// form has no condition and maps to "service_started".
func (s ComposeService) Dependencies() (map[string]string, error) {
	deps := map[string]string{}
	switch s.DependsOn.Kind {
	case 0:
		return deps, nil
	case yaml.SequenceNode:
		var names []string
		if err := s.DependsOn.Decode(&names); err != nil {
			return nil, err
		}
		for _, n := range names {
			deps[n] = "service_started"
		}
	case yaml.MappingNode:
		var long map[string]struct {
			Condition string `yaml:"condition"`
		}
		if err := s.DependsOn.Decode(&long); err != nil {
			return nil, err
		}
		for n, d := range long {
			cond := d.Condition
			if cond == "" {
				cond = "service_started"
			}
			deps[n] = cond
		}
	default:
		return nil, fmt.Errorf("depends_on: unexpected yaml node kind %d", s.DependsOn.Kind)
	}
	return deps, nil
}

// Command flattens a health check test given as a string or a list.
func (h *HealthCheck) Command() string {
	if h == nil {
		return ""
	}
	switch h.Test.Kind {
	case yaml.ScalarNode:
		return h.Test.Value
	case yaml.SequenceNode:
		var parts []string
		if err := h.Test.Decode(&parts); err != nil {
			return ""
		}
		return strings.Join(parts, " ")
	}
	return ""
}

// CheckCompose verifies that the API service publishes 8080:80, points
// MEMCACHED_IP at a cache service with a stats health check, and waits for
// that cache to be healthy.
func CheckCompose(f *ComposeFile) []string {
	var problems []string

	names := make([]string, 0, len(f.Services))
	for name := range f.Services {
		names = append(names, name)
	}
	sort.Strings(names)

	apiName, cacheName := "", ""
	for _, name := range names {
		env, err := f.Services[name].Env()
		if err != nil {
			problems = append(problems, fmt.Sprintf("service %s: %v", name, err))
			continue
		}
		if host, ok := env[cacheEnvVar]; ok {
			apiName, cacheName = name, host
			break
		}
	}
	if apiName == "" {
		return append(problems, fmt.Sprintf("no service sets %s", cacheEnvVar))
	}

	api := f.Services[apiName]
	if api.Image == "" && api.Build.Kind == 0 {
		problems = append(problems, fmt.Sprintf("service %s: neither image nor build is set", apiName))
	}
	if !containsPort(api.Ports, apiPublishedPort) {
		problems = append(problems, fmt.Sprintf("service %s: port %s is not published", apiName, apiPublishedPort))
	}

	cache, ok := f.Services[cacheName]
	if !ok {
		return append(problems, fmt.Sprintf("service %s: %s points at unknown service %q", apiName, cacheEnvVar, cacheName))
	}
	cmd := cache.HealthCheck.Command()
	if !strings.Contains(cmd, "stats") || !strings.Contains(cmd, cachePort) {
		problems = append(problems, fmt.Sprintf("service %s: health check does not query stats on port %s", cacheName, cachePort))
	}

	deps, err := api.Dependencies()
	if err != nil {
		return append(problems, fmt.Sprintf("service %s: %v", apiName, err))
	}
	if cond, ok := deps[cacheName]; !ok {
		problems = append(problems, fmt.Sprintf("service %s: does not depend on %s", apiName, cacheName))
	} else if cond != "service_healthy" {
		problems = append(problems, fmt.Sprintf("service %s: depends on %s with condition %s, want service_healthy", apiName, cacheName, cond))
	}

	return problems
}

func containsPort(ports []string, want string) bool {
	for _, p := range ports {
		if strings.Trim(p, `"`) == want {
			return true
		}
	}
	return false
}
