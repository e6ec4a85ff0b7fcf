// Package geo provides great-circle distance on a spherical Earth and the
// time-distance conversion used throughout the breitling module: every
// downstream package (adjacency, lowerbound, natural, labelsetting) works in
// time-distance units (hours of flight time), not nautical miles, so that
// "distance" and "elapsed flight time" are interchangeable.
//
// The spherical law of cosines here follows the original solver's
// geometry.cpp. The package is a small, pure leaf: it imports only the
// standard library.
package geo
