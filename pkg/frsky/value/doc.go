// Package value converts physical quantities to and from the fixed-point
// integers carried by FrSky D and Smart Port telemetry.
//
// Every function is pure. Nothing here knows about frames or packets; the
// hub and sport packages put the returned integers on the wire.
package value
