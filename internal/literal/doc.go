// Package literal translates IR tokens from layer test descriptions into
// C++ literal snippets that the generated OpenVINO tests splice verbatim.
//
// Every translator is a pure function over a fixed table. Tables are switch
// statements, so the accepted vocabulary is closed at compile time and a
// token outside it always fails with an UnknownToken error. There is no
// fallback value.
//
// All functions are safe for concurrent use.
package literal
