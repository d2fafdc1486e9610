package main

import "runtime/debug"

// version is injected by release builds:
//
//	go build -ldflags "-X main.version=v1.2.3"
var version = ""

// getVersion reports the build's version: the injected value when present,
// the module version recorded by `go install @version` otherwise, and "dev"
// for plain local builds.
func getVersion() string {
	if version != "" {
		return version
	}

	if info, ok := debug.ReadBuildInfo(); ok {
		if v := info.Main.Version; v != "" && v != "(devel)" {
			return v
		}
	}

	return "dev"
}
