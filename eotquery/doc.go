/*
Package eotquery interprets fields of a decoded EOT container.

The sister package `eot` exposes the container's header fields verbatim;
this package answers the questions clients actually have: which names does
the font carry, may it be embedded at all, which web origins is it bound to,
and which processing transforms does it declare.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package eotquery

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'font.eotype'
func tracer() tracing.Trace {
	return tracing.Select("font.eotype")
}
