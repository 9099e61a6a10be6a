package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/dmitrijs2005/matchly/internal/client/cli"
	"github.com/dmitrijs2005/matchly/internal/client/client"
)

func usage() {
	fmt.Fprintf(os.Stderr, "usage: %s [-a server] register|login\n", os.Args[0])
	os.Exit(2)
}

func main() {

	addr := flag.String("a", "http://localhost:8080", "auth server base URL")
	flag.Parse()

	if flag.NArg() != 1 {
		usage()
	}

	ctx := context.Background()
	app := cli.NewApp(client.New(*addr))

	var err error
	switch flag.Arg(0) {
	case "register":
		err = app.Register(ctx)
	case "login":
		err = app.Login(ctx)
	default:
		usage()
	}

	if err != nil {
		log.Fatalf("%v", err)
	}
}
