package main

import (
	"regexp"

	"github.com/0xalexb/hjarta-config/config"
	"github.com/0xalexb/hjarta-config/typekey"
	"github.com/0xalexb/hjarta-config/validate"
)

const (
	defaultPoolSize    = 10
	defaultServiceName = "hjarta"
)

//nolint:gochecknoglobals // typed keys and patterns are immutable.
var (
	hostKey    = typekey.Of[string]("host")
	portKey    = typekey.Of[int]("port")
	urlKey     = typekey.Of[string]("url")
	poolKey    = typekey.Of[int]("pool")
	nameKey    = typekey.Of[string]("name")
	enabledKey = typekey.Of[bool]("enabled")

	urlScheme = regexp.MustCompile(`^[a-z][a-z0-9+.-]*://`)
)

// bindings maps the document layout onto sections:
//
//	server:   host, port
//	database: url, pool
//	service:  name, enabled
func bindings() []config.Binding {
	return []config.Binding{
		config.Bind(hostKey, "server:host", validate.MinStringLength[string](1)),
		config.Bind(portKey, "server:port", validate.Range(1024, 65535)),
		config.Bind(urlKey, "database:url", validate.Pattern[string](urlScheme)),
		config.BindDefault(poolKey, "database:pool", defaultPoolSize, validate.Range(1, 100)),
		config.BindDefault(nameKey, "service:name", defaultServiceName, validate.MinStringLength[string](1)),
		config.BindDefault(enabledKey, "service:enabled", true),
	}
}
