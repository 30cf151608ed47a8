package main

import (
	"fmt"
	"net"
	"strconv"

	"github.com/0xalexb/hjarta-config/builder"
	"github.com/0xalexb/hjarta-config/config"
	yamlparser "github.com/0xalexb/hjarta-config/config/parser/yaml"
	"github.com/0xalexb/hjarta-config/validate"

	"github.com/spf13/cobra"
)

// Service is the immutable description of a configured service.
type Service struct {
	name       string
	address    string
	poolSize   int
	enabled    bool
	properties map[string]any
}

// Name returns the service name.
func (s Service) Name() string { return s.name }

// Address returns host:port.
func (s Service) Address() string { return s.address }

// PoolSize returns the database pool size.
func (s Service) PoolSize() int { return s.poolSize }

// Enabled reports whether the service is enabled.
func (s Service) Enabled() bool { return s.enabled }

// Property returns a single property.
func (s Service) Property(name string) (any, bool) {
	value, ok := s.properties[name]

	return value, ok
}

func (s Service) view() map[string]any {
	return map[string]any{
		"name":       s.name,
		"address":    s.address,
		"pool":       s.poolSize,
		"enabled":    s.enabled,
		"properties": s.properties,
	}
}

// ServiceBuilder assembles Service values.
type ServiceBuilder struct {
	builder.Base[*ServiceBuilder]

	host     string
	port     int
	poolSize int
}

// NewServiceBuilder returns a bound ServiceBuilder.
func NewServiceBuilder() *ServiceBuilder {
	b := &ServiceBuilder{}
	b.Bind(b)

	return b
}

// WithEndpoint sets the listen host and port.
func (b *ServiceBuilder) WithEndpoint(host string, port int) *ServiceBuilder {
	b.host = host
	b.port = port

	return b
}

// WithPoolSize sets the database pool size.
func (b *ServiceBuilder) WithPoolSize(size int) *ServiceBuilder {
	b.poolSize = size

	return b
}

// Validate extends the name check with endpoint and pool checks.
func (b *ServiceBuilder) Validate() error {
	err := b.Base.Validate()
	if err != nil {
		return err //nolint:wrapcheck // already a ValidationError.
	}

	if b.host == "" {
		return &validate.ValidationError{Key: "host", Message: "Host is required"}
	}

	if b.poolSize < 1 {
		return &validate.ValidationError{Key: "pool", Message: "Pool size must be positive", Value: b.poolSize}
	}

	return nil
}

// CreateProduct assembles the Service from the builder state.
func (b *ServiceBuilder) CreateProduct() Service {
	return Service{
		name:       b.Name(),
		address:    net.JoinHostPort(b.host, strconv.Itoa(b.port)),
		poolSize:   b.poolSize,
		enabled:    b.IsEnabled(),
		properties: b.Properties(),
	}
}

// Build validates the builder and returns the Service.
func (b *ServiceBuilder) Build() (Service, error) {
	return builder.Build[Service](b) //nolint:wrapcheck // already a ValidationError.
}

// serviceFromSection fills a ServiceBuilder from a loaded root section.
func serviceFromSection(root *config.Section) *ServiceBuilder {
	server := root.Section("server")
	database := root.Section("database")
	service := root.Section("service")

	name, _ := config.Get(service, nameKey)
	enabled, _ := config.Get(service, enabledKey)
	host, _ := config.Get(server, hostKey)
	port, _ := config.Get(server, portKey)
	pool, _ := config.Get(database, poolKey)

	b := NewServiceBuilder().
		WithName(name).
		Enabled(enabled).
		WithEndpoint(host, port).
		WithPoolSize(pool)

	url, ok := config.Get(database, urlKey)
	if ok {
		b.WithProperty("database", url)
	}

	return b
}

func newServiceCommand(opts *cliOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "service",
		Short: "Build the service description from the configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			root, err := opts.load(cmd)
			if err != nil {
				return err
			}

			service, err := serviceFromSection(root).Build()
			if err != nil {
				return fmt.Errorf("building service: %w", err)
			}

			data, err := yamlparser.Encode(service.view())
			if err != nil {
				return fmt.Errorf("encoding service: %w", err)
			}

			_, err = cmd.OutOrStdout().Write(data)
			if err != nil {
				return fmt.Errorf("writing output: %w", err)
			}

			return nil
		},
	}
}
