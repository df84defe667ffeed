// kuidump reads keys from the controlling terminal in raw mode and
// prints one line per logical key: its name, numeric code, and the key
// itself in visual encoding (a raw byte's visual form, or a symbolic
// key's bracketed name; the escape-sequence bytes that produced a
// symbolic key are not shown). It is the tool to reach
// for when a terminal sends a sequence the built-in table does not
// know. With -feed, a visual-encoded byte string is replayed through
// the pipeline instead of reading the terminal, so recorded streams
// can be inspected offline.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/cgouldman/kui"
	"github.com/mattn/go-runewidth"
	"golang.org/x/term"
)

var (
	mapFile = flag.String("map", "", "load user mappings from a file (YAML for .yaml/.yml, map directives otherwise)")
	feed    = flag.String("feed", "", "replay a visual-encoded byte string instead of reading the terminal")
)

func loadMappings(path string) (*kui.MapSet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if strings.HasSuffix(path, ".yaml") || strings.HasSuffix(path, ".yml") {
		return kui.LoadMapSetYAML(bytes.NewReader(data))
	}
	return kui.ParseMapDirectives(string(data))
}

func printKey(k kui.KeyCode) {
	fmt.Printf("%s %5d  %s\r\n",
		runewidth.FillRight(k.String(), 12), int(k), kui.VisKeys([]kui.KeyCode{k}))
}

func replay(text string, userMaps *kui.MapSet) error {
	queue, err := kui.ParseVisKeys(text)
	if err != nil {
		return err
	}
	m, err := kui.New(-1,
		kui.WithReadKey(func(int, time.Duration) (kui.KeyCode, error) {
			if len(queue) == 0 {
				return 0, nil
			}
			k := queue[0]
			queue = queue[1:]
			return k, nil
		}),
		kui.WithDataReady(func(int, time.Duration) (bool, error) {
			return len(queue) > 0, nil
		}))
	if err != nil {
		return err
	}
	defer m.Close()
	if userMaps != nil {
		m.AddMapSet(userMaps)
	}

	for {
		k, err := m.GetKey()
		if err != nil {
			return err
		}
		if k == 0 {
			return nil
		}
		printKey(k)
	}
}

func main() {
	flag.Parse()

	var userMaps *kui.MapSet
	if *mapFile != "" {
		ms, err := loadMappings(*mapFile)
		if err != nil {
			log.Fatalf("loading %s: %v", *mapFile, err)
		}
		userMaps = ms
	}

	if *feed != "" {
		if err := replay(*feed, userMaps); err != nil {
			log.Fatal(err)
		}
		return
	}

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
	if userMaps != nil {
		m.AddMapSet(userMaps)
	}

	fmt.Print("press keys, Ctrl-C to quit\r\n")
	for {
		k, err := m.GetKey()
		if err != nil {
			fmt.Printf("error: %v\r\n", err)
			break
		}
		if k == 0 {
			continue
		}
		printKey(k)
		if k == 3 {
			break
		}
	}
}
