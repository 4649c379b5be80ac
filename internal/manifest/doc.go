// Package manifest validates the deployment descriptors shipped with the
// service: the Docker Compose definitions and the Kubernetes manifest.
//
// Checks return human-readable problems instead of failing fast so that a
// single run reports everything wrong with a descriptor. An empty result
// means the descriptor wires the API, the cache and the readiness gate the
// way the service expects.
package manifest
