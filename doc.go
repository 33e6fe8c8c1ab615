// Package reportkit defines the drawing and measurement abstractions consumed
// by the report layout engine.
//
// The engine itself lives in the layout and table packages; it lays report
// content out across fixed-size pages but never encodes a document format on
// its own. Instead it draws through the Canvas and Page interfaces and
// measures text through TextMeasurer. The pdfcanvas package provides a PDF
// implementation of all three; internal/fakecanvas provides a recording
// implementation for tests.
package reportkit
