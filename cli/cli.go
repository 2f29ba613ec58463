package cli

import (
	"bufio"
	"context"
	"strconv"
	"strings"

	"github.com/Aran404/BPlusTree-Database/database/store"
	"github.com/fatih/color"
)

type Cli struct {
	scanner *bufio.Scanner
	store   *store.Store

	prompt *color.Color
	ok     *color.Color
	fail   *color.Color
}

func NewCli(s *bufio.Scanner, kv *store.Store) *Cli {
	return &Cli{
		scanner: s,
		store:   kv,
		prompt:  color.New(color.FgCyan),
		ok:      color.New(color.FgGreen),
		fail:    color.New(color.FgRed),
	}
}

func (c *Cli) Start() {
	c.printHelp()
	c.printPrompt()
	for c.scanner.Scan() {
		if !c.processInput(c.scanner.Text()) {
			return
		}
		c.printPrompt()
	}
}

func (c *Cli) printHelp() {
	color.White(`
B+ Tree Store CLI

Available Commands:
  SET <key> <val>      Insert or overwrite a key-value pair
  GET <key>            Retrieve the value for key
  DEL <key>            Remove a key-value pair
  RANGE <lo> <hi>      List pairs with lo <= key <= hi
  SCAN <key> <n>       List the first n pairs with key >= <key>
  SIZE                 Number of pairs in the store
  EXIT                 Terminate this session
`)
}

func (c *Cli) printPrompt() {
	c.prompt.Print("> ")
}

// processInput dispatches one command line. Returns false to end the
// session.
func (c *Cli) processInput(line string) bool {
	fields := strings.Fields(line)
	if len(fields) < 1 {
		return true
	}

	switch strings.ToLower(fields[0]) {
	default:
		c.fail.Printf("Unknown command %q\n", fields[0])
	case "set":
		c.processSet(fields[1:])
	case "get":
		c.processGet(fields[1:])
	case "del":
		c.processDelete(fields[1:])
	case "range":
		c.processRange(fields[1:])
	case "scan":
		c.processScan(fields[1:])
	case "size":
		c.ok.Printf("%d\n", c.store.Size())
	case "exit":
		return false
	}
	return true
}

func (c *Cli) processSet(args []string) {
	if len(args) != 2 {
		c.fail.Println("Usage: SET <key> <value>")
		return
	}

	if prev := c.store.SetString(args[0], []byte(args[1])); prev != nil {
		c.ok.Printf("OK (was %q)\n", prev.Value)
		return
	}
	c.ok.Println("OK")
}

func (c *Cli) processGet(args []string) {
	if len(args) != 1 {
		c.fail.Println("Usage: GET <key>")
		return
	}

	v := c.store.GetString(args[0])
	if v == nil {
		c.fail.Println("Key not found.")
		return
	}
	c.ok.Println(string(v.Value))
}

func (c *Cli) processDelete(args []string) {
	if len(args) != 1 {
		c.fail.Println("Usage: DEL <key>")
		return
	}

	if c.store.DeleteString(args[0]) == nil {
		c.fail.Println("Key not found.")
		return
	}
	c.ok.Println("Deleted.")
}

func (c *Cli) processRange(args []string) {
	if len(args) != 2 {
		c.fail.Println("Usage: RANGE <lo> <hi>")
		return
	}

	pairs := c.store.Range(context.Background(), []byte(args[0]), []byte(args[1]))
	for _, p := range pairs {
		c.ok.Printf("%s = %s\n", p.Key, p.Value)
	}
	c.prompt.Printf("(%d pairs)\n", len(pairs))
}

func (c *Cli) processScan(args []string) {
	if len(args) != 2 {
		c.fail.Println("Usage: SCAN <key> <n>")
		return
	}

	n, err := strconv.Atoi(args[1])
	if err != nil || n < 0 {
		c.fail.Println("SCAN count must be a nonnegative integer")
		return
	}

	count := 0
	for _, entry := range c.store.Tree.RangeCount([]byte(args[0]), n) {
		v := c.store.Get(entry.Key)
		if v == nil {
			continue
		}
		c.ok.Printf("%s = %s\n", v.Key, v.Value)
		count++
	}
	c.prompt.Printf("(%d pairs)\n", count)
}
