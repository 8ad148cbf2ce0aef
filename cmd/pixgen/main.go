// Copyright 2026 go-pixmath Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Command pixgen regenerates the lookup tables in package pix from their
// computed counterparts.
//
// Usage:
//
//	pixgen -table rainbow -output hue_table.go
//	pixgen -table sin8 -output trig_table.go
//
// Or via go:generate:
//
//	//go:generate go run -tags pixmath_lowmem github.com/ajroetker/go-pixmath/cmd/pixgen -table rainbow -output hue_table.go
//
// The pixmath_lowmem tag matters: it selects the computed paths inside
// package pix, so the emitted tables are derived from the arithmetic they
// replace rather than from a previous table.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"go/format"
	"os"

	"github.com/ajroetker/go-pixmath/pix"
)

var (
	table      = flag.String("table", "", "Table to generate: rainbow or sin8 (required)")
	outputFile = flag.String("output", "", "Output file (required)")
)

const perLine = 16

func main() {
	flag.Parse()

	if *table == "" || *outputFile == "" {
		fmt.Fprintf(os.Stderr, "Error: -table and -output flags are required\n\n")
		flag.Usage()
		os.Exit(1)
	}

	var body []byte
	var err error
	switch *table {
	case "rainbow":
		body, err = genRainbow()
	case "sin8":
		body, err = genSin8()
	default:
		err = fmt.Errorf("unknown table %q", *table)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := os.WriteFile(*outputFile, body, 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "Error: writing %s: %v\n", *outputFile, err)
		os.Exit(1)
	}
}

func header(buf *bytes.Buffer, name string) {
	fmt.Fprintf(buf, "// Code generated by pixgen -table %s; DO NOT EDIT.\n\n", name)
	buf.WriteString("//go:build !pixmath_lowmem\n\n")
	buf.WriteString("package pix\n\n")
}

func genRainbow() ([]byte, error) {
	var buf bytes.Buffer
	header(&buf, "rainbow")
	buf.WriteString(`// rainbowTable holds the balanced rainbow wheel at full saturation and
// value, one entry per hue. It is identical to rainbowCompute for every
// input; the equivalence is asserted by tests.
func hueRainbow(hue uint8) Pixel {
	return rainbowTable[hue]
}

var rainbowTable = [256]Pixel{
`)
	for i := 0; i < 256; i++ {
		c := pix.HSV{H: uint8(i), S: 255, V: 255}.Rainbow()
		fmt.Fprintf(&buf, "{%d, %d, %d},", c.R, c.G, c.B)
		if i%4 == 3 {
			buf.WriteByte('\n')
		}
	}
	buf.WriteString("}\n")
	return format.Source(buf.Bytes())
}

func genSin8() ([]byte, error) {
	var buf bytes.Buffer
	header(&buf, "sin8")
	buf.WriteString(`// sin8Table holds one full byte-sine wave, one entry per input. It is
// identical to sin8Compute for every input; the equivalence is asserted by
// tests.
func sin8(theta uint8) uint8 {
	return sin8Table[theta]
}

var sin8Table = [256]uint8{
`)
	for i := 0; i < 256; i++ {
		fmt.Fprintf(&buf, "%d,", pix.Sin8(uint8(i)))
		if i%perLine == perLine-1 {
			buf.WriteByte('\n')
		}
	}
	buf.WriteString("}\n")
	return format.Source(buf.Bytes())
}
