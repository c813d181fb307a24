// Package mocks provides mock implementations for testing the admin console.
//
// This package uses go.uber.org/mock (gomock) to generate type-safe mocks for our port interfaces.
// The mocks are generated using go:generate directives and provide a fluent API for setting up test expectations.
//
// To regenerate mocks after interface changes, run:
//
//	go generate ./internal/mocks
//
// Usage in tests:
//
//	ctrl := gomock.NewController(t)
//	storage := mocks.NewMockLocalStorage(ctrl)
//	storage.EXPECT().Store(gomock.Any(), gomock.Any()).Return(nil)
package mocks

// Generate mock for LocalStorage interface from internal/ports package.
// This creates MockLocalStorage with methods for all LocalStorage interface methods:
// Load, Store, Remove
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=local_storage_mock.go github.com/learnhub/admin-console/internal/ports LocalStorage

// Generate mock for Requester interface from internal/core package.
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=requester_mock.go github.com/learnhub/admin-console/internal/core Requester
