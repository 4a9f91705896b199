// Package render provides lsystem.Renderer implementations: a turtle that
// traces line segments and writes them as SVG, plus small helpers for
// inspecting an instruction stream.
package render
