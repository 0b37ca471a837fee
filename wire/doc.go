// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

// Package wire defines the in-memory shapes of the generativelanguage-style
// messages the simulator transport exchanges with the plugin.
//
// The types mirror the proto schema field for field: enums are numeric,
// Part payloads are a oneof with a single discriminant, 64-bit count fields
// serialize as decimal strings, and binary data crosses the boundary as
// base64 text. All fields default to their zero value rather than being
// absent; nullable distinctions live on the SDK side.
//
// The types carry proto3-JSON field tags, and [Part] flattens its oneof
// payload into the usual named-member encoding, so messages round-trip
// through any encoding/json-compatible codec. Which codec carries them is
// the transport's concern, not this package's.
package wire
