// Package ports holds the interfaces that separate twinboard's layers.
//
// StageService and RenderLoop are implemented in internal/app and called by
// the HTTP handlers. LevelClient is implemented by the level repository
// adapter and called by the application layer. HealthChecker and
// HealthRegistry back the readiness endpoint.
package ports
