// Package ports holds the interfaces that connect the board service's layers.
//
// Inbound ports (BoardService, BoardRegistry) are implemented by package app
// and consumed by the HTTP handlers. Outbound ports (BoardRepository,
// ProjectClient, HealthChecker) are implemented by the persistence adapters
// and consumed by app and the composition root. Mocks for every port live in
// the top-level mocks package and are generated by mockery.
package ports
