// Package domain contains shared domain types used across entity sub-packages.
// Entity-specific types live in sub-packages (domain/stage, domain/board,
// domain/block, domain/level). This root package holds sentinel errors, the
// path-keyed validation error, and the drawing-context abstraction that
// renderable entities accept.
package domain
