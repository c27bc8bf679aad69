package main

import (
	"flag"
	"io"
	"io/ioutil"
	"log"
	"os"

	"github.com/mastercactapus/gpr/gcode"
)

// gcodefmt parses G-code and writes the canonical rendering: whitespace
// normalized, numbers in their shortest form, blank lines dropped. Reads
// stdin when no files are given.
func main() {
	log.SetFlags(log.Lshortfile)
	flag.Parse()

	if flag.NArg() == 0 {
		err := format(os.Stdin, os.Stdout)
		if err != nil {
			log.Fatalf("stdin: %v", err)
		}
		return
	}

	for _, name := range flag.Args() {
		f, err := os.Open(name)
		if err != nil {
			log.Fatal(err)
		}
		err = format(f, os.Stdout)
		f.Close()
		if err != nil {
			log.Fatalf("%s: %v", name, err)
		}
	}
}

func format(r io.Reader, w io.Writer) error {
	data, err := ioutil.ReadAll(r)
	if err != nil {
		return err
	}
	p, err := gcode.Parse(string(data))
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, p.String())
	return err
}
