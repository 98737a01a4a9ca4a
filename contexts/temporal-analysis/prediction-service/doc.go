// Package predictionservice fuses two prediction components: an
// astrological aspect-density score derived from the event timeline and
// a quantum success probability, blended through a sigmoid. It also
// serves ephemeris positions from a mean-orbit model.
package predictionservice
