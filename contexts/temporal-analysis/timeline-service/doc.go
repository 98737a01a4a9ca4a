// Package timelineservice implements the temporal pattern-discovery
// engine: date-window event loading, astrological signature similarity,
// forward-in-time trigger discovery, and pattern cluster analysis.
//
// Domain and application logic stay decoupled from runtime/platform
// concerns through ports and adapter composition.
package timelineservice
