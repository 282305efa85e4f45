// Package courses provides test fixtures for markbook courses. It offers a
// fluent API for building a course with known entries so tests never share
// mutable state.
//
// Example usage:
//
//	course := courses.NewBuilder(t).
//		WithCode("MDM4U1").
//		WithSampleEntries().
//		Build()
package courses
