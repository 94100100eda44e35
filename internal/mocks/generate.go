// Package mocks provides generated mocks for the runtime's ports.
//
// This package uses go.uber.org/mock (gomock) to generate type-safe mocks for
// the port interfaces. To regenerate after interface changes, run:
//
//	go generate ./internal/mocks
package mocks

// Generate mocks for the StateStore and Directory ports. Platform is not
// mocked: tests use the memplatform adapter, which emulates real platform
// history semantics instead of scripted expectations.
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=ports_mock.go github.com/campusware/campus-admin/internal/ports StateStore,Directory
