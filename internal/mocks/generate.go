// Package mocks provides mock implementations for testing the console's
// ports.
//
// This package uses go.uber.org/mock (gomock) to generate type-safe mocks
// for the upstream directory interface. The mocks are generated using
// go:generate directives and provide a fluent API for setting up test
// expectations.
//
// To regenerate mocks after interface changes, run:
//
//	go generate ./internal/mocks
//
// Usage in tests:
//
//	ctrl := gomock.NewController(t)
//	defer ctrl.Finish()
//	dir := mocks.NewMockDirectory(ctrl)
//	dir.EXPECT().Login(gomock.Any(), "a@b.c", "pw").Return(grant, nil)
//
// Hand-written doubles for the auth ports live in the auth subpackage.
package mocks

// Generate mock for the Directory interface from internal/ports.
// This creates MockDirectory covering the full upstream surface:
// Register, Login, RefreshToken, User, Users, Role, Roles, CreateRole,
// Permission, Permissions, Tenant, UpdateSettings, UpdateFeatures, UpdateAssets
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=directory_mock.go github.com/atendo-hq/console-api/internal/ports Directory
