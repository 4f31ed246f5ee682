package registry

import "context"

// ServiceIdentity names a dependency to resolve through the discovery
// broker, plus the transport compatibility tags the caller requires.
type ServiceIdentity struct {
	Namespace              string `json:"namespace"`
	Name                   string `json:"name"`
	Version                string `json:"version"`
	CommunicationKind      string `json:"communication_kind"`
	CommunicationReference string `json:"communication_reference"`
}

// RemoteService is one resolved endpoint, fresh per lookup.
type RemoteService struct {
	URI                    string `json:"uri"`
	CommunicationKind      string `json:"communication_kind"`
	CommunicationReference string `json:"communication_reference"`
}

type Endpoint struct {
	Protocol   string   `json:"protocol"`
	Operations []string `json:"operations"`
	URI        string   `json:"uri"`
	Context    string   `json:"context"`
}

// Entity is a capability published to the registry so consumers can route
// reads to this provider.
type Entity struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Endpoints   []Endpoint `json:"endpoints"`
}

type Discoverer interface {
	Discover(ctx context.Context, brokerURI string, id ServiceIdentity) (*RemoteService, error)
}

type Registrar interface {
	Register(ctx context.Context, registryURI string, entities []*Entity) error
}
