// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/bureau-foundation/ostime/lib/codec"
	"github.com/bureau-foundation/ostime/lib/config"
)

type field struct {
	name  string
	value string
}

// record is one reading printed by a subcommand. JSON and CBOR output
// encode the struct itself; text output prints fields.
type record interface {
	fields() []field
}

func (a *app) emit(r record) error {
	switch a.output {
	case config.FormatJSON:
		return json.NewEncoder(a.stdout).Encode(r)
	case config.FormatCBOR:
		return codec.NewEncoder(a.stdout).Encode(r)
	default:
		tw := tabwriter.NewWriter(a.stdout, 0, 0, 2, ' ', 0)
		for _, f := range r.fields() {
			fmt.Fprintf(tw, "%s:\t%s\n", f.name, f.value)
		}
		return tw.Flush()
	}
}

// emitSeparator separates consecutive text records. Structured formats
// are self-delimiting.
func (a *app) emitSeparator() {
	if a.output == config.FormatText {
		fmt.Fprintln(a.stdout)
	}
}
