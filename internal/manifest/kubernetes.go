package manifest

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	appsv1 "k8s.io/api/apps/v1"
	corev1 "k8s.io/api/core/v1"
	"k8s.io/apimachinery/pkg/labels"
	utilyaml "k8s.io/apimachinery/pkg/util/yaml"
	"k8s.io/client-go/kubernetes/scheme"
)

const (
	// curlEmptyReply is the exit code curl returns when memcached closes an
	// HTTP request without answering.
	curlEmptyReply = "52"

	apiPort     = 80
	cacheEnvVar = "MEMCACHED_IP"
)

// KubernetesObjects holds the typed objects of a manifest.
type KubernetesObjects struct {
	Services    []*corev1.Service
	Deployments []*appsv1.Deployment
}

// LoadKubernetes decodes a multi-document manifest. Kinds other than Service
// and Deployment are rejected.
func LoadKubernetes(data []byte) (*KubernetesObjects, error) {
	reader := utilyaml.NewYAMLReader(bufio.NewReader(bytes.NewReader(data)))
	decoder := scheme.Codecs.UniversalDeserializer()

	objs := &KubernetesObjects{}
	for i := 0; ; i++ {
		doc, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read document %d: %w", i, err)
		}
		if len(bytes.TrimSpace(doc)) == 0 {
			continue
		}

		obj, gvk, err := decoder.Decode(doc, nil, nil)
		if err != nil {
			return nil, fmt.Errorf("decode document %d: %w", i, err)
		}

		switch o := obj.(type) {
		case *corev1.Service:
			objs.Services = append(objs.Services, o)
		case *appsv1.Deployment:
			objs.Deployments = append(objs.Deployments, o)
		default:
			return nil, fmt.Errorf("document %d: unsupported kind %s", i, gvk.Kind)
		}
	}
	return objs, nil
}

// CheckKubernetes verifies that a LoadBalancer Service exposes the API on
// port 80, that every Service selects a Deployment, and that the API
// Deployment is gated on cache reachability.
func CheckKubernetes(objs *KubernetesObjects) []string {
	var problems []string

	for _, d := range objs.Deployments {
		if d.Spec.Selector == nil {
			problems = append(problems, fmt.Sprintf("deployment %s: missing selector", d.Name))
			continue
		}
		if !labels.SelectorFromSet(d.Spec.Selector.MatchLabels).Matches(labels.Set(d.Spec.Template.Labels)) {
			problems = append(problems, fmt.Sprintf("deployment %s: selector does not match pod template labels", d.Name))
		}
	}

	var api *corev1.Service
	for _, svc := range objs.Services {
		if len(svc.Spec.Selector) == 0 {
			problems = append(problems, fmt.Sprintf("service %s: missing selector", svc.Name))
			continue
		}
		if selectedDeployment(objs, svc) == nil {
			problems = append(problems, fmt.Sprintf("service %s: selector %v matches no deployment pod labels", svc.Name, svc.Spec.Selector))
		}
		if svc.Spec.Type == corev1.ServiceTypeLoadBalancer && exposesPort(svc, apiPort) {
			api = svc
		}
	}

	if api == nil {
		return append(problems, fmt.Sprintf("no LoadBalancer service exposes port %d", apiPort))
	}

	d := selectedDeployment(objs, api)
	if d == nil {
		return problems
	}
	return append(problems, checkAPIDeployment(d)...)
}

func checkAPIDeployment(d *appsv1.Deployment) []string {
	var problems []string

	if d.Spec.Replicas != nil && *d.Spec.Replicas < 1 {
		problems = append(problems, fmt.Sprintf("deployment %s: replicas must be at least 1", d.Name))
	}

	gated := false
	for _, c := range d.Spec.Template.Spec.InitContainers {
		script := strings.Join(append(append([]string{}, c.Command...), c.Args...), " ")
		if strings.Contains(script, "curl") && strings.Contains(script, curlEmptyReply) {
			gated = true
			break
		}
	}
	if !gated {
		problems = append(problems, fmt.Sprintf("deployment %s: no init container waits for curl exit code %s", d.Name, curlEmptyReply))
	}

	hasEnv, hasPort := false, false
	for _, c := range d.Spec.Template.Spec.Containers {
		for _, e := range c.Env {
			if e.Name == cacheEnvVar && (e.Value != "" || e.ValueFrom != nil) {
				hasEnv = true
			}
		}
		for _, p := range c.Ports {
			if p.ContainerPort == apiPort {
				hasPort = true
			}
		}
	}
	if !hasEnv {
		problems = append(problems, fmt.Sprintf("deployment %s: no container sets %s", d.Name, cacheEnvVar))
	}
	if !hasPort {
		problems = append(problems, fmt.Sprintf("deployment %s: no container exposes port %d", d.Name, apiPort))
	}
	return problems
}

func selectedDeployment(objs *KubernetesObjects, svc *corev1.Service) *appsv1.Deployment {
	selector := labels.SelectorFromSet(svc.Spec.Selector)
	for _, d := range objs.Deployments {
		if selector.Matches(labels.Set(d.Spec.Template.Labels)) {
			return d
		}
	}
	return nil
}

func exposesPort(svc *corev1.Service, port int32) bool {
	for _, p := range svc.Spec.Ports {
		if p.Port == port {
			return true
		}
	}
	return false
}
