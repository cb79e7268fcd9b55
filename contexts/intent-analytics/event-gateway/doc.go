// Package eventgateway normalizes vendor analytics payloads into the
// canonical event record consumed by the intent engine.
//
// Each supported platform (segment, mixpanel, amplitude, plus a generic
// fallback) ships a schema that maps its payload shape onto the canonical
// fields and guarantees id consistency within a batch. The gateway never
// talks to vendor APIs; it only reshapes payloads handed to it.
package eventgateway
