// Package telemetry defines the per-request records captured during a
// pattern run and the aggregate statistics derived from them.
//
// Records and run results are immutable once produced by the driver;
// aggregation is a pure function over them and can be repeated at will.
package telemetry
