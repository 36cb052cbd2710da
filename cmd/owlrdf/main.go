// owlrdf reconstructs an OWL 2 ontology (declarations, class and property
// expressions, axioms) from an RDF graph serialised per the W3C Mapping to
// RDF Graphs specification, and can write a reconstructed ontology's
// header and flat axioms back out as Turtle.
//
// Input is read from -in (or stdin if unset) in the format named by
// -format (any MIME type rdf2go understands: text/turtle,
// application/rdf+xml, application/n-triples, ...). With -strict, any
// residual triple left over after parsing is a fatal error instead of a
// logged warning.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/kahefi/owlrdf"
)

func main() {
	var (
		in     = flag.String("in", "", "input RDF file (default: stdin)")
		out    = flag.String("out", "", "output Turtle file (default: stdout)")
		format = flag.String("format", "text/turtle", "input RDF MIME type")
		strict = flag.Bool("strict", false, "fail if any triple is left unrecognised")
	)
	flag.Parse()

	r := os.Stdin
	if *in != "" {
		f, err := os.Open(*in)
		if err != nil {
			log.Fatalf("owlrdf: %v", err)
		}
		defer f.Close()
		r = f
	}

	build := owlrdf.NewIRIFactory()
	ont, residuals, err := owlrdf.ParseReader(r, *format, build, owlrdf.Options{StrictMode: *strict})
	if err != nil {
		log.Fatalf("owlrdf: %v", err)
	}
	for _, res := range residuals {
		switch {
		case res.Triple != nil:
			fmt.Fprintf(os.Stderr, "owlrdf: residual: %s %s %s (%s)\n",
				res.Triple.Subject, res.Triple.Predicate, res.Triple.Object, res.Reason)
		default:
			fmt.Fprintf(os.Stderr, "owlrdf: residual: blank node %s (%s)\n", res.Blank, res.Reason)
		}
	}
	log.Printf("owlrdf: reconstructed %d axioms (%d residual triples)", ont.Len(), len(residuals))

	w := os.Stdout
	if *out != "" {
		f, err := os.Create(*out)
		if err != nil {
			log.Fatalf("owlrdf: %v", err)
		}
		defer f.Close()
		w = f
	}
	if err := owlrdf.WriteTurtle(w, ont, build); err != nil {
		log.Fatalf("owlrdf: %v", err)
	}
}
