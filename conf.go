package trailerd

import (
	"time"

	"github.com/go-sdv/trailerd/registry"
)

// Defaults mirror the in-vehicle deployment layout: broker and provider on
// fixed well-known ports.
const (
	DefaultBrokerURI       = "http://0.0.0.0:50000"
	DefaultProviderAddress = "0.0.0.0:55000"

	RegistryNamespace              = "sdv.ibeji"
	RegistryName                   = "invehicle_digital_twin"
	RegistryVersion                = "1.0"
	RegistryCommunicationKind      = "grpc+proto"
	RegistryCommunicationReference = "https://github.com/eclipse-ibeji/ibeji/blob/main/interfaces/digital_twin/v1/digital_twin.proto"
)

type ServerConf struct {
	Network string `json:"network" yaml:"network"`
	Address string `json:"address" yaml:"address"`
}

type DiscoveryConf struct {
	BrokerURI              string `json:"broker_uri" yaml:"broker_uri"`
	Namespace              string `json:"namespace" yaml:"namespace"`
	Name                   string `json:"name" yaml:"name"`
	Version                string `json:"version" yaml:"version"`
	CommunicationKind      string `json:"communication_kind" yaml:"communication_kind"`
	CommunicationReference string `json:"communication_reference" yaml:"communication_reference"`
	TimeoutMS              int    `json:"timeout_ms" yaml:"timeout_ms"`
	Retries                int    `json:"retries" yaml:"retries"`
	RetryDelayMS           int    `json:"retry_delay_ms" yaml:"retry_delay_ms"`
}

type LogConf struct {
	Level string `json:"level" yaml:"level"`
}

type Config struct {
	Server    ServerConf    `json:"server" yaml:"server"`
	Discovery DiscoveryConf `json:"discovery" yaml:"discovery"`
	Log       LogConf       `json:"log" yaml:"log"`
}

func DefaultConfig() *Config {
	return &Config{
		Server: ServerConf{
			Network: "tcp",
			Address: DefaultProviderAddress,
		},
		Discovery: DiscoveryConf{
			BrokerURI:              DefaultBrokerURI,
			Namespace:              RegistryNamespace,
			Name:                   RegistryName,
			Version:                RegistryVersion,
			CommunicationKind:      RegistryCommunicationKind,
			CommunicationReference: RegistryCommunicationReference,
			TimeoutMS:              5000,
			Retries:                0,
			RetryDelayMS:           500,
		},
		Log: LogConf{
			Level: "debug",
		},
	}
}

func (c *Config) Identity() registry.ServiceIdentity {
	return registry.ServiceIdentity{
		Namespace:              c.Discovery.Namespace,
		Name:                   c.Discovery.Name,
		Version:                c.Discovery.Version,
		CommunicationKind:      c.Discovery.CommunicationKind,
		CommunicationReference: c.Discovery.CommunicationReference,
	}
}

func (c *Config) Timeout() time.Duration {
	return time.Duration(c.Discovery.TimeoutMS) * time.Millisecond
}

func (c *Config) RetryDelay() time.Duration {
	return time.Duration(c.Discovery.RetryDelayMS) * time.Millisecond
}
