package main

import (
	"bufio"
	"os"

	"github.com/Aran404/BPlusTree-Database/cli"
	"github.com/Aran404/BPlusTree-Database/database/store"
)

func main() {
	kv := store.New()
	defer kv.Close()

	scanner := bufio.NewScanner(os.Stdin)
	demo := cli.NewCli(scanner, kv)
	demo.Start()
}
