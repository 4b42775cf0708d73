// Package domain contains shared domain types used across entity sub-packages.
// The board tree and its pure operations live in domain/board. This root
// package holds the sentinel errors and validation types shared by every
// layer: the board engine, the persistence adapters and the HTTP adapter.
package domain
