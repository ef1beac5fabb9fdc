// Command contourklip runs a Boolean contour operation against two
// CBOR-encoded contour sets and writes the CBOR result to stdout or a
// file.
package main

import (
	"flag"
	"log"
	"os"

	"github.com/fxamacker/cbor/v2"

	"github.com/cetz-package/contourklip/clippath"
)

func main() {
	var (
		subjectPath = flag.String("subject", "", "path to CBOR-encoded subject contour set")
		maskPath    = flag.String("mask", "", "path to CBOR-encoded clipping contour set")
		op          = flag.String("op", "intersection", "union, intersection, difference, xor, or divide")
		output      = flag.String("output", "", "output path for the CBOR result (default: stdout)")
	)
	flag.Parse()

	if *subjectPath == "" || *maskPath == "" {
		log.Fatal("both -subject and -mask are required")
	}

	subjectCBOR, err := os.ReadFile(*subjectPath)
	if err != nil {
		log.Fatalf("reading subject: %v", err)
	}
	maskCBOR, err := os.ReadFile(*maskPath)
	if err != nil {
		log.Fatalf("reading mask: %v", err)
	}
	opCBOR, err := cbor.Marshal(*op)
	if err != nil {
		log.Fatalf("encoding operation: %v", err)
	}

	result := clippath.ClipPath(subjectCBOR, maskCBOR, opCBOR)

	if *output == "" {
		if _, err := os.Stdout.Write(result); err != nil {
			log.Fatalf("writing result: %v", err)
		}
		return
	}
	if err := os.WriteFile(*output, result, 0o644); err != nil {
		log.Fatalf("writing result: %v", err)
	}
	log.Printf("wrote result to %s", *output)
}
