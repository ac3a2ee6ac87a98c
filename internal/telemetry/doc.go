// Package telemetry wraps a zerolog.Logger with the level/format
// configuration the cmd/torpedosched dispatcher uses to log phase
// transitions ("finding initial solution", "optimizing solution",
// "resolving conflicts") around its solve calls; package solve itself
// does not log. This mirrors the way
// original_source/main.py's main() prints phase banners. Grounded on
// jhkimqd-chaos-utils/pkg/reporting/logger.go (LoggerConfig, console
// vs. JSON writer selection) and pkg/config/config.go (YAML load with
// graceful fallback to defaults when the file is absent).
package telemetry
