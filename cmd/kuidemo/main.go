// kuidemo echoes the name of each key as it is pressed, with a couple
// of demo mappings installed. Press q or Ctrl-C to quit.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/cgouldman/kui"
	"golang.org/x/term"
)

func main() {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		log.Fatal("stdin is not a terminal")
	}

	oldState, err := term.MakeRaw(fd)
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = term.Restore(fd, oldState) }()

	m, err := kui.New(fd)
	if err != nil {
		log.Fatal(err)
	}
	defer m.Close()

	ms := kui.NewMapSet()
	if err := ms.Register("jj", "<Esc>"); err != nil {
		log.Fatal(err)
	}
	if err := ms.Register("<Up>", "<PageUp>"); err != nil {
		log.Fatal(err)
	}
	m.AddMapSet(ms)

	fmt.Print("jj is mapped to Esc, Up to PageUp; press q to quit\r\n")
	for {
		k, err := m.GetKey()
		if err != nil {
			log.Fatal(err)
		}
		if k == 0 {
			continue
		}
		fmt.Printf("%s\r\n", k)
		if k == 'q' || k == 3 {
			return
		}
	}
}
